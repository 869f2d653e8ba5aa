package repositories

import (
	"context"

	"callcenter-gin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Team Repository GORM Implementation
// ===========================================================================

// teamRepo triển khai TeamRepository với GORM
type teamRepo struct {
	db *gorm.DB
}

// NewTeamRepository tạo instance mới của TeamRepository
func NewTeamRepository(db *gorm.DB) TeamRepository {
	return &teamRepo{db: db}
}

// FindByID tìm team theo ID (kèm employees và default project)
func (r *teamRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	var team models.Team
	if err := r.db.WithContext(ctx).
		Preload("Employees").
		Preload("DefaultProject").
		First(&team, id).Error; err != nil {
		return nil, err
	}
	return &team, nil
}

// List lấy danh sách teams
func (r *teamRepo) List(ctx context.Context, opts FindOptions) ([]models.Team, int64, error) {
	opts.SetDefaults()

	var teams []models.Team
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Team{})

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("DefaultProject").
		Order(opts.GetOrderClause()).
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&teams).Error

	return teams, total, err
}

// Create tạo team mới
func (r *teamRepo) Create(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Create(team).Error
}

// Update cập nhật team
func (r *teamRepo) Update(ctx context.Context, team *models.Team) error {
	return r.db.WithContext(ctx).Save(team).Error
}

// Delete xóa team (soft delete)
func (r *teamRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Team{}, id).Error
}

// SetEmployees thay toàn bộ danh sách thành viên của team
func (r *teamRepo) SetEmployees(ctx context.Context, team *models.Team, employeeIDs []uuid.UUID) error {
	employees := make([]models.Employee, len(employeeIDs))
	for i, id := range employeeIDs {
		employees[i] = models.Employee{BaseModel: models.BaseModel{ID: id}}
	}
	return r.db.WithContext(ctx).Model(team).Association("Employees").Replace(employees)
}
