package models

// ===========================================================================
// Project (Dự án)
// Nhóm khách hàng và nhân viên theo chiến dịch gọi điện
// Reference bất biến: chỉ tạo/sửa tên, không có lifecycle phức tạp
// ===========================================================================

// Project đại diện cho một dự án/chiến dịch
type Project struct {
	BaseModel

	// Code mã dự án (unique, VD: "PRJ-001")
	Code string `gorm:"size:50;not null;uniqueIndex" json:"code"`

	// Name tên dự án
	Name string `gorm:"size:255;not null" json:"name"`

	// Description mô tả (tùy chọn)
	Description *string `gorm:"size:1000" json:"description,omitempty"`

	// Relations
	Customers   []Customer   `gorm:"foreignKey:ProjectID" json:"customers,omitempty"`
	Assignments []Assignment `gorm:"foreignKey:ProjectID" json:"assignments,omitempty"`
}

// TableName trả về tên bảng
func (Project) TableName() string {
	return "projects"
}
