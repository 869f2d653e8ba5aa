package services

import (
	"context"
	"fmt"

	"callcenter-gin/internal/errors"
	"callcenter-gin/internal/models"
	"callcenter-gin/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Directory Service Implementation
// ===========================================================================

// directoryService triển khai DirectoryService
type directoryService struct {
	projectRepo  repositories.ProjectRepository
	teamRepo     repositories.TeamRepository
	employeeRepo repositories.EmployeeRepository
	customerRepo repositories.CustomerRepository
	logger       *zap.Logger
}

// NewDirectoryService tạo instance mới của DirectoryService
func NewDirectoryService(
	projectRepo repositories.ProjectRepository,
	teamRepo repositories.TeamRepository,
	employeeRepo repositories.EmployeeRepository,
	customerRepo repositories.CustomerRepository,
	logger *zap.Logger,
) DirectoryService {
	return &directoryService{
		projectRepo:  projectRepo,
		teamRepo:     teamRepo,
		employeeRepo: employeeRepo,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// ===========================================================================
// Projects
// ===========================================================================

func (s *directoryService) ListProjects(ctx context.Context, opts repositories.FindOptions) ([]models.Project, int64, error) {
	return s.projectRepo.List(ctx, opts)
}

func (s *directoryService) GetProject(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Dự án không tồn tại")
	}
	return project, nil
}

func (s *directoryService) CreateProject(ctx context.Context, project *models.Project) error {
	if project.Code == "" || project.Name == "" {
		return errors.New(errors.ErrInvalidInput, "Thiếu mã hoặc tên dự án")
	}
	if err := s.projectRepo.Create(ctx, project); err != nil {
		return errors.Wrap(err, "failed to create project")
	}
	s.logger.Info("project created", zap.String("code", project.Code))
	return nil
}

func (s *directoryService) UpdateProject(ctx context.Context, project *models.Project) error {
	if err := s.projectRepo.Update(ctx, project); err != nil {
		return errors.Wrap(err, "failed to update project")
	}
	return nil
}

func (s *directoryService) DeleteProject(ctx context.Context, id uuid.UUID) error {
	if _, err := s.projectRepo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "Dự án không tồn tại")
	}
	return s.projectRepo.Delete(ctx, id)
}

// ===========================================================================
// Teams
// ===========================================================================

func (s *directoryService) ListTeams(ctx context.Context, opts repositories.FindOptions) ([]models.Team, int64, error) {
	return s.teamRepo.List(ctx, opts)
}

func (s *directoryService) GetTeam(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Team không tồn tại")
	}
	return team, nil
}

func (s *directoryService) CreateTeam(ctx context.Context, input CreateTeamInput) (*models.Team, error) {
	if input.Code == "" || input.Name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "Thiếu mã hoặc tên team")
	}

	if input.DefaultProjectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *input.DefaultProjectID); err != nil {
			return nil, notFoundOr(err, "Dự án mặc định không tồn tại")
		}
	}

	team := &models.Team{
		Code:             input.Code,
		Name:             input.Name,
		DefaultProjectID: input.DefaultProjectID,
	}
	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, errors.Wrap(err, "failed to create team")
	}

	if len(input.EmployeeIDs) > 0 {
		if err := s.teamRepo.SetEmployees(ctx, team, input.EmployeeIDs); err != nil {
			return nil, errors.Wrap(err, "failed to set team members")
		}
	}

	s.logger.Info("team created", zap.String("code", team.Code))
	return s.GetTeam(ctx, team.ID)
}

func (s *directoryService) SetTeamMembers(ctx context.Context, teamID uuid.UUID, employeeIDs []uuid.UUID) (*models.Team, error) {
	team, err := s.teamRepo.FindByID(ctx, teamID)
	if err != nil {
		return nil, notFoundOr(err, "Team không tồn tại")
	}

	if err := s.teamRepo.SetEmployees(ctx, team, dedupeIDs(employeeIDs)); err != nil {
		return nil, errors.Wrap(err, "failed to set team members")
	}
	return s.GetTeam(ctx, teamID)
}

func (s *directoryService) DeleteTeam(ctx context.Context, id uuid.UUID) error {
	if _, err := s.teamRepo.FindByID(ctx, id); err != nil {
		return notFoundOr(err, "Team không tồn tại")
	}
	return s.teamRepo.Delete(ctx, id)
}

// ===========================================================================
// Employees
// ===========================================================================

func (s *directoryService) ListEmployees(ctx context.Context, opts repositories.FindOptions) ([]models.Employee, int64, error) {
	return s.employeeRepo.List(ctx, opts)
}

func (s *directoryService) GetEmployee(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Nhân viên không tồn tại")
	}
	return employee, nil
}

func (s *directoryService) CreateEmployee(ctx context.Context, input CreateEmployeeInput) (*models.Employee, error) {
	if input.EmpNo == "" || input.Name == "" || input.Email == "" {
		return nil, errors.New(errors.ErrInvalidInput, "Thiếu mã, tên hoặc email nhân viên")
	}
	if len(input.Password) < 8 {
		return nil, errors.New(errors.ErrInvalidInput, "Mật khẩu phải có ít nhất 8 ký tự")
	}

	role := input.Role
	if role == "" {
		role = models.RoleAgent
	}

	employee := &models.Employee{
		EmpNo:    input.EmpNo,
		Name:     input.Name,
		Email:    input.Email,
		Role:     role,
		Capacity: input.Capacity,
		IsActive: true,
	}
	if err := employee.SetPassword(input.Password); err != nil {
		return nil, errors.Wrap(err, "failed to hash password")
	}

	if err := s.employeeRepo.Create(ctx, employee); err != nil {
		return nil, errors.Wrap(err, "failed to create employee")
	}

	s.logger.Info("employee created",
		zap.String("emp_no", employee.EmpNo),
		zap.String("role", string(employee.Role)))
	return employee, nil
}

func (s *directoryService) UpdateEmployee(ctx context.Context, id uuid.UUID, input UpdateEmployeeInput) (*models.Employee, error) {
	employee, err := s.employeeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Nhân viên không tồn tại")
	}

	if input.Name != nil {
		employee.Name = *input.Name
	}
	if input.Role != nil {
		employee.Role = *input.Role
	}
	if input.Capacity != nil {
		employee.Capacity = *input.Capacity
	}
	if input.IsActive != nil {
		employee.IsActive = *input.IsActive
	}
	if input.Password != nil {
		if len(*input.Password) < 8 {
			return nil, errors.New(errors.ErrInvalidInput, "Mật khẩu phải có ít nhất 8 ký tự")
		}
		if err := employee.SetPassword(*input.Password); err != nil {
			return nil, errors.Wrap(err, "failed to hash password")
		}
	}

	if err := s.employeeRepo.Update(ctx, employee); err != nil {
		return nil, errors.Wrap(err, "failed to update employee")
	}
	return employee, nil
}

// ===========================================================================
// Customers
// ===========================================================================

func (s *directoryService) ListCustomers(ctx context.Context, opts repositories.FindOptions) ([]models.Customer, int64, error) {
	return s.customerRepo.List(ctx, opts)
}

func (s *directoryService) GetCustomer(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Khách hàng không tồn tại")
	}
	return customer, nil
}

func (s *directoryService) CreateCustomer(ctx context.Context, input CreateCustomerInput) (*models.Customer, error) {
	if input.Code == "" || input.Name == "" {
		return nil, errors.New(errors.ErrInvalidInput, "Thiếu mã hoặc tên khách hàng")
	}

	if input.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *input.ProjectID); err != nil {
			return nil, notFoundOr(err, "Dự án không tồn tại")
		}
	}

	customer := &models.Customer{
		Code:      input.Code,
		Name:      input.Name,
		Mobile:    input.Mobile,
		Email:     input.Email,
		Links:     input.Links,
		ProjectID: input.ProjectID,
	}
	if err := s.customerRepo.Create(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to create customer")
	}

	s.logger.Info("customer created", zap.String("code", customer.Code))
	return customer, nil
}

func (s *directoryService) UpdateCustomer(ctx context.Context, id uuid.UUID, input UpdateCustomerInput) (*models.Customer, error) {
	customer, err := s.customerRepo.FindByID(ctx, id)
	if err != nil {
		return nil, notFoundOr(err, "Khách hàng không tồn tại")
	}

	if input.Name != nil {
		customer.Name = *input.Name
	}
	if input.Mobile != nil {
		customer.Mobile = input.Mobile
	}
	if input.Email != nil {
		customer.Email = input.Email
	}
	if input.Links != nil {
		customer.Links = *input.Links
	}
	if input.ProjectID != nil {
		if _, err := s.projectRepo.FindByID(ctx, *input.ProjectID); err != nil {
			return nil, notFoundOr(err, "Dự án không tồn tại")
		}
		customer.ProjectID = input.ProjectID
	}

	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to update customer")
	}
	return customer, nil
}

// MarkNeverCall đánh dấu khách hàng cấm gọi vĩnh viễn
func (s *directoryService) MarkNeverCall(ctx context.Context, customerID uuid.UUID, reason string) (*models.Customer, error) {
	if reason == "" {
		return nil, errors.New(errors.ErrInvalidInput, "Cần lý do khi đánh dấu cấm gọi")
	}

	customer, err := s.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, notFoundOr(err, "Khách hàng không tồn tại")
	}

	if customer.NeverCall {
		return nil, errors.New(errors.ErrConflict,
			fmt.Sprintf("Khách hàng %s đã nằm trong danh sách cấm gọi", customer.Code))
	}

	customer.MarkNeverCall(reason)
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		return nil, errors.Wrap(err, "failed to mark never call")
	}

	s.logger.Warn("customer marked never_call",
		zap.String("code", customer.Code),
		zap.String("reason", reason))
	return customer, nil
}

// notFoundOr map gorm.ErrRecordNotFound sang lỗi NotFound, còn lại wrap
func notFoundOr(err error, message string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return errors.New(errors.ErrNotFound, message)
	}
	return errors.Wrap(err, "database error")
}
