package models

import (
	"time"

	"github.com/google/uuid"
)

// ===========================================================================
// InteractionLog (Nhật ký liên hệ)
// Bản ghi bất biến cho MỖI lần liên hệ: không update, không delete
// Assignment chỉ giữ snapshot (status/counter mới nhất); lịch sử nằm ở đây
// ===========================================================================

// InteractionChannel kênh liên hệ của một lần interaction
type InteractionChannel string

const (
	// ChannelCall gọi điện thoại (kênh voice duy nhất)
	ChannelCall InteractionChannel = "call"

	// ChannelSMS nhắn tin SMS
	ChannelSMS InteractionChannel = "sms"

	// ChannelWhatsApp nhắn tin WhatsApp
	ChannelWhatsApp InteractionChannel = "whatsapp"
)

// IsValid kiểm tra kênh hợp lệ
func (c InteractionChannel) IsValid() bool {
	return c == ChannelCall || c == ChannelSMS || c == ChannelWhatsApp
}

// IsVoice kiểm tra kênh có phải voice không
// Kênh voice bị chặn với khách hàng never_call
func (c InteractionChannel) IsVoice() bool {
	return c == ChannelCall
}

// InteractionLog một lần liên hệ đã ghi nhận
type InteractionLog struct {
	BaseModel

	// AssignmentID ID assignment được liên hệ
	AssignmentID uuid.UUID `gorm:"type:uuid;not null;index" json:"assignment_id"`

	// EmployeeID nhân viên thực hiện liên hệ
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index" json:"employee_id"`

	// Channel kênh: call, sms, whatsapp
	Channel InteractionChannel `gorm:"size:20;not null" json:"channel"`

	// OccurredAt thời điểm liên hệ
	OccurredAt time.Time `gorm:"not null;default:now()" json:"occurred_at"`

	// ResultStatus status sau lần liên hệ này
	ResultStatus CallStatus `gorm:"size:50;not null" json:"result_status"`

	// ResultNote ghi chú sau lần liên hệ này
	ResultNote *string `gorm:"size:1000" json:"result_note,omitempty"`

	// FollowUpAt lịch hẹn được đặt trong lần liên hệ này (nếu có)
	FollowUpAt *time.Time `json:"follow_up_at,omitempty"`

	// Relations
	Assignment Assignment `gorm:"foreignKey:AssignmentID" json:"assignment,omitempty"`
	Employee   Employee   `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
}

// TableName trả về tên bảng
func (InteractionLog) TableName() string {
	return "interaction_logs"
}
