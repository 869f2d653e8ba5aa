package repositories

import (
	"context"

	"callcenter-gin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ===========================================================================
// Assignment Repository GORM Implementation
// Batch create chạy trong MỘT transaction với row lock (FOR UPDATE)
// Partial unique index uq_assignments_active là tầng bảo vệ cuối cùng
// nếu hai batch ghi đồng thời
// ===========================================================================

// assignmentRepo triển khai AssignmentRepository với GORM
type assignmentRepo struct {
	db *gorm.DB
}

// NewAssignmentRepository tạo instance mới của AssignmentRepository
func NewAssignmentRepository(db *gorm.DB) AssignmentRepository {
	return &assignmentRepo{db: db}
}

// FindByID tìm assignment theo ID (kèm Customer, Project)
func (r *assignmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	if err := r.db.WithContext(ctx).
		Preload("Customer").
		Preload("Project").
		First(&assignment, id).Error; err != nil {
		return nil, err
	}
	return &assignment, nil
}

// FindActiveByProject lấy các assignment chưa terminal trong project
func (r *assignmentRepo) FindActiveByProject(ctx context.Context, projectID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Where("call_status NOT IN ?", models.TerminalCallStatuses()).
		Preload("Employee").
		Find(&assignments).Error
	return assignments, err
}

// CreateBatchIfUnassigned tạo toàn bộ batch all-or-nothing
// 1. Lock các assignment active của những customer liên quan (FOR UPDATE)
// 2. Nếu có bất kỳ conflict nào -> trả về danh sách, không ghi gì
// 3. Nếu sạch -> insert toàn bộ trong cùng transaction
func (r *assignmentRepo) CreateBatchIfUnassigned(ctx context.Context, projectID uuid.UUID, assignments []models.Assignment) (*BatchResult, error) {
	result := &BatchResult{}

	customerIDs := make([]uuid.UUID, len(assignments))
	for i, a := range assignments {
		customerIDs[i] = a.CustomerID
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing []models.Assignment
		if err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("project_id = ?", projectID).
			Where("customer_id IN ?", customerIDs).
			Where("call_status NOT IN ?", models.TerminalCallStatuses()).
			Find(&existing).Error; err != nil {
			return err
		}

		if len(existing) > 0 {
			for _, e := range existing {
				result.Conflicted = append(result.Conflicted, e.CustomerID)
			}
			// Không có gì để rollback nhưng vẫn kết thúc transaction sạch
			return nil
		}

		if err := tx.Create(&assignments).Error; err != nil {
			return err
		}
		result.Created = assignments
		return nil
	})
	if err != nil {
		return nil, err
	}

	return result, nil
}

// FindMine lấy assignments của một employee theo filter, phân trang
// Join sẵn Customer và Project cho row denormalized của màn "My Customers"
func (r *assignmentRepo) FindMine(ctx context.Context, employeeID uuid.UUID, filter MyAssignmentsFilter) ([]models.Assignment, int64, error) {
	var assignments []models.Assignment
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.Assignment{}).
		Where("assignments.employee_id = ?", employeeID)

	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		query = query.
			Joins("JOIN customers ON customers.id = assignments.customer_id").
			Where("customers.name ILIKE ? OR customers.mobile ILIKE ?", pattern, pattern)
	}
	if filter.CallStatus != nil {
		query = query.Where("assignments.call_status = ?", *filter.CallStatus)
	}
	if filter.CallPriority != nil {
		query = query.Where("assignments.call_priority = ?", *filter.CallPriority)
	}
	if filter.ProjectID != nil {
		query = query.Where("assignments.project_id = ?", *filter.ProjectID)
	}
	if filter.StartDate != nil {
		query = query.Where("assignments.call_target_date >= ?", filter.StartDate.Time())
	}
	if filter.EndDate != nil {
		query = query.Where("assignments.call_target_date <= ?", filter.EndDate.Time())
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 10
	}

	err := query.
		Preload("Customer").
		Preload("Project").
		Order("assignments.call_target_date ASC NULLS LAST, assignments.created_at DESC").
		Offset(filter.Offset).
		Limit(limit).
		Find(&assignments).Error

	return assignments, total, err
}

// Update cập nhật assignment
func (r *assignmentRepo) Update(ctx context.Context, assignment *models.Assignment) error {
	return r.db.WithContext(ctx).Save(assignment).Error
}
