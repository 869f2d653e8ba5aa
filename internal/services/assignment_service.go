package services

import (
	"context"

	"callcenter-gin/internal/models"

	"github.com/google/uuid"
)

// ===========================================================================
// Assignment Service Interface
// Trả lời "ai được gán cho ai", gán batch, và màn "My Customers"
// ===========================================================================

// RosterCustomer một khách hàng trong roster, annotate trạng thái gán
type RosterCustomer struct {
	models.Customer

	// IsAssigned khách đã có assignment active trong dự án chưa
	IsAssigned bool `json:"is_assigned"`

	// AssignedToEmployeeID ID nhân viên đang giữ khách (nếu có)
	AssignedToEmployeeID *uuid.UUID `json:"assigned_to_employee_id,omitempty"`

	// AssignedToEmployeeName tên nhân viên đang giữ khách (nếu có)
	AssignedToEmployeeName *string `json:"assigned_to_employee_name,omitempty"`
}

// RosterResult dữ liệu cho màn gán khách hàng của một dự án
type RosterResult struct {
	// Project dự án được hỏi
	Project *models.Project `json:"project"`

	// Employees nhân viên thuộc các team của dự án
	Employees []models.Employee `json:"employees"`

	// Customers khách hàng của dự án, annotate trạng thái gán
	Customers []RosterCustomer `json:"customers"`
}

// BulkAssignInput input cho gán batch
type BulkAssignInput struct {
	// ProjectID dự án đích
	ProjectID uuid.UUID

	// EmployeeID nhân viên nhận toàn bộ batch
	EmployeeID uuid.UUID

	// CustomerIDs tập khách hàng cần gán (không rỗng, tất cả phải
	// đang unassigned trong dự án)
	CustomerIDs []uuid.UUID

	// CallTargetDate hạn liên hệ chung cho cả batch (nullable)
	CallTargetDate *models.CalendarDate

	// CallPriority ưu tiên chung, mặc định low
	CallPriority models.CallPriority
}

// MyAssignmentsQuery bộ lọc + phân trang cho màn "My Customers"
type MyAssignmentsQuery struct {
	Search       string
	CallStatus   *models.CallStatus
	CallPriority *models.CallPriority
	ProjectID    *uuid.UUID

	// StartDate/EndDate khoảng inclusive trên call_target_date
	// Nếu CẢ HAI vắng mặt thì mặc định hôm nay..hôm nay (chủ đích,
	// không phải thiếu sót: mặc định chỉ hiện khách đến hạn hôm nay)
	StartDate *models.CalendarDate
	EndDate   *models.CalendarDate

	// Page 1-based; Limit thuộc {5, 10, 25, 50}, mặc định 10
	Page  int
	Limit int
}

// MyAssignmentsResult trang kết quả "My Customers"
type MyAssignmentsResult struct {
	// Assignments các row denormalized (kèm Customer, Project)
	Assignments []models.Assignment

	// Total tổng số row khớp filter
	Total int64

	// Page/Limit đã normalize
	Page  int
	Limit int
}

// AssignmentService interface cho assignment workflow
type AssignmentService interface {
	// ProjectRoster trả về nhân viên + khách hàng (annotate gán) của dự án
	// Read-only, không side effect
	ProjectRoster(ctx context.Context, projectID uuid.UUID) (*RosterResult, error)

	// BulkAssign gán N khách cho MỘT nhân viên, all-or-nothing
	// Bất kỳ khách nào đã gán -> reject toàn bộ với danh sách conflict
	BulkAssign(ctx context.Context, input BulkAssignInput) ([]models.Assignment, error)

	// MyAssignments danh sách assignment của employee đang đăng nhập
	// employeeID lấy từ JWT, không bao giờ từ client
	MyAssignments(ctx context.Context, employeeID uuid.UUID, query MyAssignmentsQuery) (*MyAssignmentsResult, error)
}
