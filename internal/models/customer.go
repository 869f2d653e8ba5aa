package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"

	"github.com/google/uuid"
)

// ===========================================================================
// Customer (Khách hàng)
// Đại diện cho một khách hàng cần liên hệ
// Một khách hàng có thể chưa được gán (không có Assignment active)
// hoặc đã gán (đúng một Assignment active trong phạm vi một dự án)
// ===========================================================================

// ContactLinks các link liên hệ ngoài số điện thoại/email
type ContactLinks struct {
	// Facebook URL profile Facebook
	Facebook string `json:"facebook,omitempty"`

	// LinkedIn URL profile LinkedIn
	LinkedIn string `json:"linkedin,omitempty"`

	// Other link liên hệ khác (website, Telegram, etc.)
	Other string `json:"other,omitempty"`
}

// Value implement driver.Valuer cho JSONB
func (l ContactLinks) Value() (driver.Value, error) {
	return json.Marshal(l)
}

// Scan implement sql.Scanner cho JSONB
func (l *ContactLinks) Scan(value interface{}) error {
	if value == nil {
		*l = ContactLinks{}
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(bytes, l)
}

// Customer đại diện cho khách hàng
type Customer struct {
	BaseModel

	// Code mã khách hàng (unique, VD: "CUS-10293")
	Code string `gorm:"size:50;not null;uniqueIndex" json:"code"`

	// Name tên khách hàng
	Name string `gorm:"size:255;not null" json:"name"`

	// Mobile số điện thoại di động
	Mobile *string `gorm:"size:50;index" json:"mobile,omitempty"`

	// Email địa chỉ email
	Email *string `gorm:"size:255" json:"email,omitempty"`

	// Links các link liên hệ (Facebook, LinkedIn, khác)
	Links ContactLinks `gorm:"type:jsonb;default:'{}'" json:"links"`

	// NeverCall cấm gọi điện vĩnh viễn (kênh nhắn tin vẫn được phép)
	NeverCall bool `gorm:"not null;default:false" json:"never_call"`

	// NeverCallReason lý do cấm gọi
	NeverCallReason *string `gorm:"size:500" json:"never_call_reason,omitempty"`

	// ProjectID dự án mà khách hàng thuộc về (nullable)
	ProjectID *uuid.UUID `gorm:"type:uuid;index" json:"project_id,omitempty"`

	// Relations
	Project     *Project     `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Assignments []Assignment `gorm:"foreignKey:CustomerID" json:"assignments,omitempty"`
}

// TableName trả về tên bảng
func (Customer) TableName() string {
	return "customers"
}

// MarkNeverCall bật cờ cấm gọi với lý do
func (c *Customer) MarkNeverCall(reason string) {
	c.NeverCall = true
	c.NeverCallReason = &reason
}

// GetMobile trả về số điện thoại hoặc chuỗi rỗng
func (c *Customer) GetMobile() string {
	if c.Mobile != nil {
		return *c.Mobile
	}
	return ""
}

// BelongsToProject kiểm tra khách có thuộc dự án không
func (c *Customer) BelongsToProject(projectID uuid.UUID) bool {
	return c.ProjectID != nil && *c.ProjectID == projectID
}
