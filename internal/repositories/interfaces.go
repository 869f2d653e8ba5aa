package repositories

import (
	"context"

	"callcenter-gin/internal/models"

	"github.com/google/uuid"
)

// ===========================================================================
// Project Repository Interface
// Quản lý CRUD cho projects
// ===========================================================================

// ProjectRepository interface cho project data access
type ProjectRepository interface {
	// FindByID tìm project theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error)

	// FindByCode tìm project theo code
	FindByCode(ctx context.Context, code string) (*models.Project, error)

	// List lấy danh sách projects (limit lớn cho use case "fetch all")
	List(ctx context.Context, opts FindOptions) ([]models.Project, int64, error)

	// Create tạo project mới
	Create(ctx context.Context, project *models.Project) error

	// Update cập nhật project
	Update(ctx context.Context, project *models.Project) error

	// Delete xóa project (soft delete)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ===========================================================================
// Team Repository Interface
// Quản lý CRUD cho teams và membership
// ===========================================================================

// TeamRepository interface cho team data access
type TeamRepository interface {
	// FindByID tìm team theo ID (kèm employees)
	FindByID(ctx context.Context, id uuid.UUID) (*models.Team, error)

	// List lấy danh sách teams
	List(ctx context.Context, opts FindOptions) ([]models.Team, int64, error)

	// Create tạo team mới
	Create(ctx context.Context, team *models.Team) error

	// Update cập nhật team
	Update(ctx context.Context, team *models.Team) error

	// Delete xóa team (soft delete)
	Delete(ctx context.Context, id uuid.UUID) error

	// SetEmployees thay toàn bộ danh sách thành viên của team
	SetEmployees(ctx context.Context, team *models.Team, employeeIDs []uuid.UUID) error
}

// ===========================================================================
// Employee Repository Interface
// Quản lý CRUD cho employees (kiêm user đăng nhập)
// ===========================================================================

// EmployeeRepository interface cho employee data access
type EmployeeRepository interface {
	// FindByID tìm employee theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error)

	// FindByEmail tìm employee theo email đăng nhập
	FindByEmail(ctx context.Context, email string) (*models.Employee, error)

	// FindByProject lấy nhân viên thuộc các team có default project này
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Employee, error)

	// List lấy danh sách employees
	List(ctx context.Context, opts FindOptions) ([]models.Employee, int64, error)

	// Create tạo employee mới
	Create(ctx context.Context, employee *models.Employee) error

	// Update cập nhật employee
	Update(ctx context.Context, employee *models.Employee) error

	// Delete xóa employee (soft delete)
	Delete(ctx context.Context, id uuid.UUID) error
}

// ===========================================================================
// Customer Repository Interface
// Quản lý CRUD cho customers
// ===========================================================================

// CustomerRepository interface cho customer data access
type CustomerRepository interface {
	// FindByID tìm customer theo ID
	FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)

	// FindByIDs tìm nhiều customers theo danh sách ID
	FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Customer, error)

	// FindByProject lấy khách hàng thuộc một project
	FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Customer, error)

	// List lấy danh sách customers (search theo name/mobile/code)
	List(ctx context.Context, opts FindOptions) ([]models.Customer, int64, error)

	// Create tạo customer mới
	Create(ctx context.Context, customer *models.Customer) error

	// Update cập nhật customer
	Update(ctx context.Context, customer *models.Customer) error

	// Delete xóa customer (soft delete)
	Delete(ctx context.Context, id uuid.UUID) error
}
