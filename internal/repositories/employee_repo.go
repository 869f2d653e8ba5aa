package repositories

import (
	"context"

	"callcenter-gin/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// Employee Repository GORM Implementation
// ===========================================================================

// employeeRepo triển khai EmployeeRepository với GORM
type employeeRepo struct {
	db *gorm.DB
}

// NewEmployeeRepository tạo instance mới của EmployeeRepository
func NewEmployeeRepository(db *gorm.DB) EmployeeRepository {
	return &employeeRepo{db: db}
}

// FindByID tìm employee theo ID
func (r *employeeRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).First(&employee, id).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByEmail tìm employee theo email đăng nhập
func (r *employeeRepo) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	var employee models.Employee
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&employee).Error; err != nil {
		return nil, err
	}
	return &employee, nil
}

// FindByProject lấy nhân viên thuộc các team có default project này
// Roster của dự án = thành viên các team gắn với dự án
func (r *employeeRepo) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Employee, error) {
	var employees []models.Employee
	err := r.db.WithContext(ctx).
		Distinct("employees.*").
		Joins("JOIN team_employees ON team_employees.employee_id = employees.id").
		Joins("JOIN teams ON teams.id = team_employees.team_id").
		Where("teams.default_project_id = ?", projectID).
		Where("teams.deleted_at IS NULL").
		Where("employees.is_active = ?", true).
		Order("employees.name ASC").
		Find(&employees).Error
	return employees, err
}

// List lấy danh sách employees
func (r *employeeRepo) List(ctx context.Context, opts FindOptions) ([]models.Employee, int64, error) {
	opts.SetDefaults()

	var employees []models.Employee
	var total int64

	query := r.db.WithContext(ctx).Model(&models.Employee{})

	if opts.Search != "" {
		pattern := "%" + opts.Search + "%"
		query = query.Where("name ILIKE ? OR emp_no ILIKE ? OR email ILIKE ?", pattern, pattern, pattern)
	}
	if opts.Filters != nil {
		if role, ok := opts.Filters["role"]; ok {
			query = query.Where("role = ?", role)
		}
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	err := query.
		Order(opts.GetOrderClause()).
		Offset(opts.Offset).
		Limit(opts.Limit).
		Find(&employees).Error

	return employees, total, err
}

// Create tạo employee mới
func (r *employeeRepo) Create(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Create(employee).Error
}

// Update cập nhật employee
func (r *employeeRepo) Update(ctx context.Context, employee *models.Employee) error {
	return r.db.WithContext(ctx).Save(employee).Error
}

// Delete xóa employee (soft delete)
func (r *employeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Delete(&models.Employee{}, id).Error
}
