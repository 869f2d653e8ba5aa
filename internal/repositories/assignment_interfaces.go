package repositories

import (
	"context"

	"callcenter-gin/internal/models"

	"github.com/google/uuid"
)

// ===========================================================================
// Assignment Repository Interface
// Data access cho entity trung tâm của workflow
// ===========================================================================

// MyAssignmentsFilter bộ lọc cho màn "My Customers"
// Tất cả filter là optional và AND với nhau
type MyAssignmentsFilter struct {
	// Search tìm tự do theo tên/số điện thoại khách hàng
	Search string

	// CallStatus lọc chính xác theo status
	CallStatus *models.CallStatus

	// CallPriority lọc chính xác theo priority
	CallPriority *models.CallPriority

	// ProjectID lọc theo dự án
	ProjectID *uuid.UUID

	// StartDate/EndDate khoảng [from, to] inclusive trên call_target_date
	StartDate *models.CalendarDate
	EndDate   *models.CalendarDate

	// Offset/Limit phân trang
	Offset int
	Limit  int
}

// BatchResult kết quả tạo batch assignment
type BatchResult struct {
	// Created các assignment đã tạo (rỗng nếu batch bị reject)
	Created []models.Assignment

	// Conflicted ID các khách hàng đã có assignment active
	// Nếu không rỗng thì KHÔNG có row nào được tạo
	Conflicted []uuid.UUID
}

// AssignmentRepository interface cho assignment data access
type AssignmentRepository interface {
	// FindByID tìm assignment theo ID (kèm Customer, Project)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error)

	// FindActiveByProject lấy các assignment chưa terminal trong project
	// (kèm Employee để annotate roster)
	FindActiveByProject(ctx context.Context, projectID uuid.UUID) ([]models.Assignment, error)

	// CreateBatchIfUnassigned tạo toàn bộ batch trong MỘT transaction:
	// lock các assignment active của những customer liên quan (FOR UPDATE),
	// nếu bất kỳ customer nào đã được gán thì rollback và trả về danh sách
	// conflicted - không bao giờ gán một phần
	CreateBatchIfUnassigned(ctx context.Context, projectID uuid.UUID, assignments []models.Assignment) (*BatchResult, error)

	// FindMine lấy assignments của một employee theo filter, phân trang
	FindMine(ctx context.Context, employeeID uuid.UUID, filter MyAssignmentsFilter) ([]models.Assignment, int64, error)

	// Update cập nhật assignment
	Update(ctx context.Context, assignment *models.Assignment) error
}

// ===========================================================================
// InteractionLog Repository Interface
// Append-only: chỉ Create và đọc, không update/delete
// ===========================================================================

// InteractionLogRepository interface cho interaction log data access
type InteractionLogRepository interface {
	// Create ghi một interaction log mới
	Create(ctx context.Context, log *models.InteractionLog) error

	// FindByAssignment lấy lịch sử liên hệ của một assignment
	FindByAssignment(ctx context.Context, assignmentID uuid.UUID, opts FindOptions) ([]models.InteractionLog, int64, error)
}
