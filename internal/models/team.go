package models

import "github.com/google/uuid"

// ===========================================================================
// Team (Đội nhóm)
// Nhóm nhân viên; mỗi team có thể có một dự án mặc định
// Roster của một dự án = nhân viên thuộc các team có default project đó
// ===========================================================================

// Team đại diện cho một đội nhân viên
type Team struct {
	BaseModel

	// Code mã team (unique, VD: "TEAM-A")
	Code string `gorm:"size:50;not null;uniqueIndex" json:"code"`

	// Name tên team
	Name string `gorm:"size:255;not null" json:"name"`

	// DefaultProjectID dự án mặc định của team (nullable)
	DefaultProjectID *uuid.UUID `gorm:"type:uuid;index" json:"default_project_id,omitempty"`

	// Relations
	DefaultProject *Project   `gorm:"foreignKey:DefaultProjectID" json:"default_project,omitempty"`
	Employees      []Employee `gorm:"many2many:team_employees" json:"employees,omitempty"`
}

// TableName trả về tên bảng
func (Team) TableName() string {
	return "teams"
}

// TeamEmployee bảng liên kết team-employee
type TeamEmployee struct {
	TeamID     uuid.UUID `gorm:"type:uuid;primaryKey" json:"team_id"`
	EmployeeID uuid.UUID `gorm:"type:uuid;primaryKey" json:"employee_id"`
}

// TableName trả về tên bảng
func (TeamEmployee) TableName() string {
	return "team_employees"
}
