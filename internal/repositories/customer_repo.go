package repositories

import (
	"context"

	"callcenter-gin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Customer Repository GORM Implementation
// ===========================================================================

// customerRepo triển khai CustomerRepository với GORM
type customerRepo struct {
	db *gorm.DB
}

// NewCustomerRepository tạo instance mới của CustomerRepository
func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepo{db: db}
}

// FindByID tìm customer theo ID
func (r *customerRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.WithContext(ctx).
		Preload("Project").
		First(&customer, id).Error; err != nil {
		return nil, err
	}
	return &customer, nil
}

// FindByIDs tìm nhiều customers theo danh sách ID
// Trả về những gì tìm thấy; caller tự so số lượng để phát hiện ID lạ
func (r *customerRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Customer, error) {
	var customers []models.Customer
	if len(ids) == 0 {
		return customers, nil
	}
	err := r.db.WithContext(ctx).Where("id IN ?", ids).Find(&customers).Error
	return customers, err
}

// FindByProject lấy khách hàng thuộc một project
func (r *customerRepo) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Customer, error) {
	var customers []models.Customer
	err := r.db.WithContext(ctx).
		Where("project_id = ?", projectID).
		Order("name ASC").
		Find(&customers).Error
	return customers, err
}

// List lấy danh sách customers
func (r *customerRepo) List(ctx context.Context, opts FindOptions) ([]models.Customer, int64, error) {
	opts.SetDefaults()

	var customers []models.Customer
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Customer{})

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where("name ILIKE ? OR mobile ILIKE ? OR code ILIKE ?", pattern, pattern, pattern)
	}
	if opts.Filters != nil {
		if projectID, ok := opts.Filters["project_id"]; ok {
			query = query.Where("project_id = ?", projectID)
		}
		if neverCall, ok := opts.Filters["never_call"]; ok {
			query = query.Where("never_call = ?", neverCall)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Preload("Project").
		Order(opts.GetOrderClause()).
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&customers).Error

	return customers, total, err
}

// Create tạo customer mới
func (r *customerRepo) Create(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Create(customer).Error
}

// Update cập nhật customer
func (r *customerRepo) Update(ctx context.Context, customer *models.Customer) error {
	return r.db.WithContext(ctx).Save(customer).Error
}

// Delete xóa customer (soft delete)
func (r *customerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Customer{}, id).Error
}
