package repositories

import (
	"context"

	"callcenter-gin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Project Repository GORM Implementation
// ===========================================================================

// projectRepo triển khai ProjectRepository với GORM
type projectRepo struct {
	db *gorm.DB
}

// NewProjectRepository tạo instance mới của ProjectRepository
func NewProjectRepository(db *gorm.DB) ProjectRepository {
	return &projectRepo{db: db}
}

// FindByID tìm project theo ID
func (r *projectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).First(&project, id).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// FindByCode tìm project theo code
func (r *projectRepo) FindByCode(ctx context.Context, code string) (*models.Project, error) {
	var project models.Project
	if err := r.db.WithContext(ctx).Where("code = ?", code).First(&project).Error; err != nil {
		return nil, err
	}
	return &project, nil
}

// List lấy danh sách projects
func (r *projectRepo) List(ctx context.Context, opts FindOptions) ([]models.Project, int64, error) {
	opts.SetDefaults()

	var projects []models.Project
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Project{})

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where("name ILIKE ? OR code ILIKE ?", pattern, pattern)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order(opts.GetOrderClause()).
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&projects).Error

	return projects, total, err
}

// Create tạo project mới
func (r *projectRepo) Create(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Create(project).Error
}

// Update cập nhật project
func (r *projectRepo) Update(ctx context.Context, project *models.Project) error {
	return r.db.WithContext(ctx).Save(project).Error
}

// Delete xóa project (soft delete)
func (r *projectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Project{}, id).Error
}
