package services

import (
	"context"
	"strings"

	"callcenter-gin/internal/models"
	"callcenter-gin/internal/repositories"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ===========================================================================
// In-memory fakes cho repository interfaces
// Test service logic không cần Postgres thật
// ===========================================================================

// repoFindOptions FindOptions mặc định cho test
func repoFindOptions() repositories.FindOptions {
	return repositories.FindOptions{Limit: 20}
}

// fakeProjectRepo in-memory ProjectRepository
type fakeProjectRepo struct {
	projects map[uuid.UUID]*models.Project
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{projects: make(map[uuid.UUID]*models.Project)}
}

func (f *fakeProjectRepo) add(project *models.Project) *models.Project {
	if project.ID == uuid.Nil {
		project.ID = uuid.New()
	}
	f.projects[project.ID] = project
	return project
}

func (f *fakeProjectRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Project, error) {
	if p, ok := f.projects[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProjectRepo) FindByCode(ctx context.Context, code string) (*models.Project, error) {
	for _, p := range f.projects {
		if p.Code == code {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeProjectRepo) List(ctx context.Context, opts repositories.FindOptions) ([]models.Project, int64, error) {
	var out []models.Project
	for _, p := range f.projects {
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProjectRepo) Create(ctx context.Context, project *models.Project) error {
	f.add(project)
	return nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, project *models.Project) error {
	f.projects[project.ID] = project
	return nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.projects, id)
	return nil
}

// fakeTeamRepo in-memory TeamRepository
type fakeTeamRepo struct {
	teams map[uuid.UUID]*models.Team
}

func newFakeTeamRepo() *fakeTeamRepo {
	return &fakeTeamRepo{teams: make(map[uuid.UUID]*models.Team)}
}

func (f *fakeTeamRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Team, error) {
	if t, ok := f.teams[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeTeamRepo) List(ctx context.Context, opts repositories.FindOptions) ([]models.Team, int64, error) {
	var out []models.Team
	for _, t := range f.teams {
		out = append(out, *t)
	}
	return out, int64(len(out)), nil
}

func (f *fakeTeamRepo) Create(ctx context.Context, team *models.Team) error {
	if team.ID == uuid.Nil {
		team.ID = uuid.New()
	}
	f.teams[team.ID] = team
	return nil
}

func (f *fakeTeamRepo) Update(ctx context.Context, team *models.Team) error {
	f.teams[team.ID] = team
	return nil
}

func (f *fakeTeamRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.teams, id)
	return nil
}

func (f *fakeTeamRepo) SetEmployees(ctx context.Context, team *models.Team, employeeIDs []uuid.UUID) error {
	team.Employees = nil
	for _, id := range employeeIDs {
		team.Employees = append(team.Employees, models.Employee{BaseModel: models.BaseModel{ID: id}})
	}
	return nil
}

// fakeEmployeeRepo in-memory EmployeeRepository
type fakeEmployeeRepo struct {
	employees map[uuid.UUID]*models.Employee

	// byProject map projectID -> employee IDs, set trực tiếp trong test
	byProject map[uuid.UUID][]uuid.UUID
}

func newFakeEmployeeRepo() *fakeEmployeeRepo {
	return &fakeEmployeeRepo{
		employees: make(map[uuid.UUID]*models.Employee),
		byProject: make(map[uuid.UUID][]uuid.UUID),
	}
}

func (f *fakeEmployeeRepo) add(employee *models.Employee) *models.Employee {
	if employee.ID == uuid.Nil {
		employee.ID = uuid.New()
	}
	f.employees[employee.ID] = employee
	return employee
}

func (f *fakeEmployeeRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Employee, error) {
	if e, ok := f.employees[id]; ok {
		return e, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindByEmail(ctx context.Context, email string) (*models.Employee, error) {
	for _, e := range f.employees {
		if strings.EqualFold(e.Email, email) {
			return e, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeEmployeeRepo) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Employee, error) {
	var out []models.Employee
	for _, id := range f.byProject[projectID] {
		if e, ok := f.employees[id]; ok {
			out = append(out, *e)
		}
	}
	return out, nil
}

func (f *fakeEmployeeRepo) List(ctx context.Context, opts repositories.FindOptions) ([]models.Employee, int64, error) {
	var out []models.Employee
	for _, e := range f.employees {
		out = append(out, *e)
	}
	return out, int64(len(out)), nil
}

func (f *fakeEmployeeRepo) Create(ctx context.Context, employee *models.Employee) error {
	f.add(employee)
	return nil
}

func (f *fakeEmployeeRepo) Update(ctx context.Context, employee *models.Employee) error {
	f.employees[employee.ID] = employee
	return nil
}

func (f *fakeEmployeeRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.employees, id)
	return nil
}

// fakeCustomerRepo in-memory CustomerRepository
type fakeCustomerRepo struct {
	customers map[uuid.UUID]*models.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*models.Customer)}
}

func (f *fakeCustomerRepo) add(customer *models.Customer) *models.Customer {
	if customer.ID == uuid.Nil {
		customer.ID = uuid.New()
	}
	f.customers[customer.ID] = customer
	return customer
}

func (f *fakeCustomerRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	if c, ok := f.customers[id]; ok {
		return c, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCustomerRepo) FindByIDs(ctx context.Context, ids []uuid.UUID) ([]models.Customer, error) {
	var out []models.Customer
	for _, id := range ids {
		if c, ok := f.customers[id]; ok {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) FindByProject(ctx context.Context, projectID uuid.UUID) ([]models.Customer, error) {
	var out []models.Customer
	for _, c := range f.customers {
		if c.BelongsToProject(projectID) {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (f *fakeCustomerRepo) List(ctx context.Context, opts repositories.FindOptions) ([]models.Customer, int64, error) {
	var out []models.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

func (f *fakeCustomerRepo) Create(ctx context.Context, customer *models.Customer) error {
	f.add(customer)
	return nil
}

func (f *fakeCustomerRepo) Update(ctx context.Context, customer *models.Customer) error {
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.customers, id)
	return nil
}

// fakeAssignmentRepo in-memory AssignmentRepository
// Mô phỏng check-and-insert all-or-nothing của bản GORM
type fakeAssignmentRepo struct {
	assignments map[uuid.UUID]*models.Assignment

	// customers để preload relation Customer khi FindByID
	customers *fakeCustomerRepo
}

func newFakeAssignmentRepo(customers *fakeCustomerRepo) *fakeAssignmentRepo {
	return &fakeAssignmentRepo{
		assignments: make(map[uuid.UUID]*models.Assignment),
		customers:   customers,
	}
}

func (f *fakeAssignmentRepo) add(assignment *models.Assignment) *models.Assignment {
	if assignment.ID == uuid.Nil {
		assignment.ID = uuid.New()
	}
	f.assignments[assignment.ID] = assignment
	return assignment
}

func (f *fakeAssignmentRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.Assignment, error) {
	a, ok := f.assignments[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *a
	if f.customers != nil {
		if c, ok := f.customers.customers[a.CustomerID]; ok {
			copied.Customer = *c
		}
	}
	return &copied, nil
}

func (f *fakeAssignmentRepo) FindActiveByProject(ctx context.Context, projectID uuid.UUID) ([]models.Assignment, error) {
	var out []models.Assignment
	for _, a := range f.assignments {
		if a.ProjectID == projectID && a.IsActive() {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (f *fakeAssignmentRepo) CreateBatchIfUnassigned(ctx context.Context, projectID uuid.UUID, assignments []models.Assignment) (*repositories.BatchResult, error) {
	result := &repositories.BatchResult{}

	for _, candidate := range assignments {
		for _, existing := range f.assignments {
			if existing.ProjectID == projectID && existing.CustomerID == candidate.CustomerID && existing.IsActive() {
				result.Conflicted = append(result.Conflicted, candidate.CustomerID)
			}
		}
	}
	if len(result.Conflicted) > 0 {
		return result, nil
	}

	for i := range assignments {
		assignments[i].ID = uuid.New()
		copied := assignments[i]
		f.assignments[copied.ID] = &copied
	}
	result.Created = assignments
	return result, nil
}

func (f *fakeAssignmentRepo) FindMine(ctx context.Context, employeeID uuid.UUID, filter repositories.MyAssignmentsFilter) ([]models.Assignment, int64, error) {
	var out []models.Assignment
	for _, a := range f.assignments {
		if a.EmployeeID != employeeID {
			continue
		}
		if filter.CallStatus != nil && a.CallStatus != *filter.CallStatus {
			continue
		}
		if filter.CallPriority != nil && a.CallPriority != *filter.CallPriority {
			continue
		}
		if filter.ProjectID != nil && a.ProjectID != *filter.ProjectID {
			continue
		}
		if filter.StartDate != nil {
			if a.CallTargetDate == nil || a.CallTargetDate.Before(*filter.StartDate) {
				continue
			}
		}
		if filter.EndDate != nil {
			if a.CallTargetDate == nil || filter.EndDate.Before(*a.CallTargetDate) {
				continue
			}
		}
		out = append(out, *a)
	}

	total := int64(len(out))
	if filter.Offset >= len(out) {
		return nil, total, nil
	}
	out = out[filter.Offset:]
	if filter.Limit > 0 && filter.Limit < len(out) {
		out = out[:filter.Limit]
	}
	return out, total, nil
}

func (f *fakeAssignmentRepo) Update(ctx context.Context, assignment *models.Assignment) error {
	copied := *assignment
	f.assignments[assignment.ID] = &copied
	return nil
}

// fakeInteractionRepo in-memory InteractionLogRepository
type fakeInteractionRepo struct {
	logs []models.InteractionLog
}

func newFakeInteractionRepo() *fakeInteractionRepo {
	return &fakeInteractionRepo{}
}

func (f *fakeInteractionRepo) Create(ctx context.Context, log *models.InteractionLog) error {
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeInteractionRepo) FindByAssignment(ctx context.Context, assignmentID uuid.UUID, opts repositories.FindOptions) ([]models.InteractionLog, int64, error) {
	var out []models.InteractionLog
	for _, l := range f.logs {
		if l.AssignmentID == assignmentID {
			out = append(out, l)
		}
	}
	return out, int64(len(out)), nil
}
