package repositories

import (
	"context"

	"callcenter-gin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// InteractionLog Repository GORM Implementation
// Append-only: không có Update/Delete
// ===========================================================================

// interactionLogRepo triển khai InteractionLogRepository với GORM
type interactionLogRepo struct {
	db *gorm.DB
}

// NewInteractionLogRepository tạo instance mới của InteractionLogRepository
func NewInteractionLogRepository(db *gorm.DB) InteractionLogRepository {
	return &interactionLogRepo{db: db}
}

// Create ghi một interaction log mới
func (r *interactionLogRepo) Create(ctx context.Context, log *models.InteractionLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

// FindByAssignment lấy lịch sử liên hệ của một assignment
// Mới nhất trước
func (r *interactionLogRepo) FindByAssignment(ctx context.Context, assignmentID uuid.UUID, opts FindOptions) ([]models.InteractionLog, int64, error) {
	opts.SetDefaults()

	var logs []models.InteractionLog
	var total int64

	query := r.db.WithContext(ctx).
		Model(&models.InteractionLog{}).
		Where("assignment_id = ?", assignmentID)

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order("occurred_at DESC").
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&logs).Error

	return logs, total, err
}
