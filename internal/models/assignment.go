package models

import (
	"time"

	"github.com/google/uuid"
)

// ===========================================================================
// Assignment (Phân công)
// Entity trung tâm: gán một Customer cho một Employee trong một Project
// Invariant: mỗi cặp (customer, project) chỉ có tối đa MỘT assignment
// với status chưa terminal tại một thời điểm
// Không bao giờ hard-delete: chuyển status sang closed/not_relevant thay vì xóa
// ===========================================================================

// CallStatus trạng thái gọi điện của assignment
type CallStatus string

const (
	// CallStatusPending chưa liên hệ, trạng thái khởi tạo
	CallStatusPending CallStatus = "pending"

	// CallStatusSalesGenerated đã chốt được sale
	CallStatusSalesGenerated CallStatus = "sales_generated"

	// CallStatusReceived khách đã nghe máy
	CallStatusReceived CallStatus = "received"

	// CallStatusNotReachable không liên lạc được
	CallStatusNotReachable CallStatus = "not_reachable"

	// CallStatusNoResponsive khách không phản hồi
	CallStatusNoResponsive CallStatus = "no_responsive"

	// CallStatusClosed đã đóng (terminal - giải phóng khách cho lần gán sau)
	CallStatusClosed CallStatus = "closed"

	// CallStatusNotRelevant không phù hợp (terminal - giải phóng khách)
	CallStatusNotRelevant CallStatus = "not_relevant"

	// CallStatusScheduled đã hẹn lịch gọi lại
	CallStatusScheduled CallStatus = "scheduled"
)

// AllCallStatuses danh sách tất cả call status hợp lệ
func AllCallStatuses() []CallStatus {
	return []CallStatus{
		CallStatusPending,
		CallStatusSalesGenerated,
		CallStatusReceived,
		CallStatusNotReachable,
		CallStatusNoResponsive,
		CallStatusClosed,
		CallStatusNotRelevant,
		CallStatusScheduled,
	}
}

// TerminalCallStatuses các status terminal: giải phóng khách hàng
// để có thể gán lại (phân loại tường minh, không hardcode rải rác)
func TerminalCallStatuses() []CallStatus {
	return []CallStatus{CallStatusClosed, CallStatusNotRelevant}
}

// IsTerminal kiểm tra status có phải terminal không
func (s CallStatus) IsTerminal() bool {
	for _, t := range TerminalCallStatuses() {
		if s == t {
			return true
		}
	}
	return false
}

// IsValid kiểm tra status có nằm trong tập cho phép không
func (s CallStatus) IsValid() bool {
	for _, v := range AllCallStatuses() {
		if s == v {
			return true
		}
	}
	return false
}

// CallPriority mức độ ưu tiên gọi
type CallPriority string

const (
	PriorityLow    CallPriority = "low"
	PriorityMedium CallPriority = "medium"
	PriorityHigh   CallPriority = "high"
)

// IsValid kiểm tra priority hợp lệ
func (p CallPriority) IsValid() bool {
	return p == PriorityLow || p == PriorityMedium || p == PriorityHigh
}

// Assignment gán khách hàng cho nhân viên trong một dự án
type Assignment struct {
	BaseModel

	// CustomerID ID khách hàng
	CustomerID uuid.UUID `gorm:"type:uuid;not null;index" json:"customer_id"`

	// EmployeeID ID nhân viên được gán
	EmployeeID uuid.UUID `gorm:"type:uuid;not null;index" json:"employee_id"`

	// ProjectID ID dự án
	ProjectID uuid.UUID `gorm:"type:uuid;not null;index" json:"project_id"`

	// AssignDate thời điểm gán
	AssignDate time.Time `gorm:"not null;default:now()" json:"assign_date"`

	// CallTargetDate hạn liên hệ (nullable - không có nghĩa là không có deadline)
	// Nếu ngày này đã qua, assignment bị đóng băng: mọi mutation bị từ chối
	CallTargetDate *CalendarDate `gorm:"type:date;index" json:"call_target_date,omitempty"`

	// CallPriority mức độ ưu tiên: low, medium, high
	CallPriority CallPriority `gorm:"size:20;not null;default:'low'" json:"call_priority"`

	// CallStatus trạng thái hiện tại
	CallStatus CallStatus `gorm:"size:50;not null;default:'pending';index" json:"call_status"`

	// StatusNote ghi chú tự do kèm status
	StatusNote *string `gorm:"size:1000" json:"status_note,omitempty"`

	// LastCalledAt thời điểm liên hệ gần nhất
	LastCalledAt *time.Time `json:"last_called_at,omitempty"`

	// FollowUpAt lịch hẹn liên hệ tiếp theo (ngày + giờ gộp chung)
	FollowUpAt *time.Time `json:"follow_up_at,omitempty"`

	// CountCall số cuộc gọi đã thực hiện
	CountCall int `gorm:"not null;default:0" json:"count_call"`

	// CountMessage số tin nhắn đã gửi
	CountMessage int `gorm:"not null;default:0" json:"count_message"`

	// Relations
	Customer Customer         `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Employee Employee         `gorm:"foreignKey:EmployeeID" json:"employee,omitempty"`
	Project  Project          `gorm:"foreignKey:ProjectID" json:"project,omitempty"`
	Logs     []InteractionLog `gorm:"foreignKey:AssignmentID" json:"logs,omitempty"`
}

// TableName trả về tên bảng
func (Assignment) TableName() string {
	return "assignments"
}

// IsActive kiểm tra assignment còn active (status chưa terminal)
func (a *Assignment) IsActive() bool {
	return !a.CallStatus.IsTerminal()
}

// IsFrozen kiểm tra assignment bị đóng băng do target date đã qua
// So sánh theo ngày lịch, không theo timestamp
func (a *Assignment) IsFrozen(today CalendarDate) bool {
	if a.CallTargetDate == nil {
		return false
	}
	return a.CallTargetDate.Before(today)
}

// ApplyInteraction cập nhật snapshot sau một lần liên hệ thành công
// Đúng MỘT counter tăng 1: count_call cho kênh gọi, count_message cho kênh nhắn
func (a *Assignment) ApplyInteraction(voice bool, status CallStatus, note *string, followUp *time.Time, at time.Time) {
	a.CallStatus = status
	a.StatusNote = note
	a.LastCalledAt = &at
	a.FollowUpAt = followUp
	if voice {
		a.CountCall++
	} else {
		a.CountMessage++
	}
}
