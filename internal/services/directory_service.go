package services

import (
	"context"

	"callcenter-gin/internal/models"
	"callcenter-gin/internal/repositories"

	"github.com/google/uuid"
)

// ===========================================================================
// Directory Service Interface
// CRUD cho danh mục: projects, teams, employees, customers
// Workflow (gán, liên hệ) nằm ở AssignmentService/InteractionService
// ===========================================================================

// CreateEmployeeInput input tạo nhân viên mới
type CreateEmployeeInput struct {
	EmpNo    string
	Name     string
	Email    string
	Password string
	Role     models.EmployeeRole
	Capacity int
}

// UpdateEmployeeInput các field cho phép sửa, nil = giữ nguyên
type UpdateEmployeeInput struct {
	Name     *string
	Role     *models.EmployeeRole
	Capacity *int
	IsActive *bool
	Password *string
}

// CreateCustomerInput input tạo khách hàng mới
type CreateCustomerInput struct {
	Code      string
	Name      string
	Mobile    *string
	Email     *string
	Links     models.ContactLinks
	ProjectID *uuid.UUID
}

// UpdateCustomerInput các field cho phép sửa, nil = giữ nguyên
type UpdateCustomerInput struct {
	Name      *string
	Mobile    *string
	Email     *string
	Links     *models.ContactLinks
	ProjectID *uuid.UUID
}

// CreateTeamInput input tạo team mới
type CreateTeamInput struct {
	Code             string
	Name             string
	DefaultProjectID *uuid.UUID
	EmployeeIDs      []uuid.UUID
}

// DirectoryService interface cho CRUD danh mục
type DirectoryService interface {
	// Projects
	ListProjects(ctx context.Context, opts repositories.FindOptions) ([]models.Project, int64, error)
	GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error)
	CreateProject(ctx context.Context, project *models.Project) error
	UpdateProject(ctx context.Context, project *models.Project) error
	DeleteProject(ctx context.Context, id uuid.UUID) error

	// Teams
	ListTeams(ctx context.Context, opts repositories.FindOptions) ([]models.Team, int64, error)
	GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error)
	CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error)
	SetTeamMembers(ctx context.Context, teamID uuid.UUID, employeeIDs []uuid.UUID) (*models.Team, error)
	DeleteTeam(ctx context.Context, id uuid.UUID) error

	// Employees
	ListEmployees(ctx context.Context, opts repositories.FindOptions) ([]models.Employee, int64, error)
	GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error)
	CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*models.Employee, error)
	UpdateEmployee(ctx context.Context, id uuid.UUID, input UpdateEmployeeInput) (*models.Employee, error)

	// Customers
	ListCustomers(ctx context.Context, opts repositories.FindOptions) ([]models.Customer, int64, error)
	GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	CreateCustomer(ctx context.Context, input CreateCustomerInput) (*models.Customer, error)
	UpdateCustomer(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*models.Customer, error)

	// MarkNeverCall đánh dấu khách hàng cấm gọi vĩnh viễn
	// Một chiều: không có API gỡ cờ
	MarkNeverCall(ctx context.Context, customerID uuid.UUID, reason string) (*models.Customer, error)
}
