package services

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"callcenter-gin/internal/errors"
	"callcenter-gin/internal/models"
	"callcenter-gin/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Assignment Service Implementation
// ===========================================================================

// assignmentService triển khai AssignmentService
type assignmentService struct {
	assignmentRepo repositories.AssignmentRepository
	customerRepo   repositories.CustomerRepository
	employeeRepo   repositories.EmployeeRepository
	projectRepo    repositories.ProjectRepository
	logger         *zap.Logger
}

// NewAssignmentService tạo instance mới của AssignmentService
func NewAssignmentService(
	assignmentRepo repositories.AssignmentRepository,
	customerRepo repositories.CustomerRepository,
	employeeRepo repositories.EmployeeRepository,
	projectRepo repositories.ProjectRepository,
	logger *zap.Logger,
) AssignmentService {
	return &assignmentService{
		assignmentRepo: assignmentRepo,
		customerRepo:   customerRepo,
		employeeRepo:   employeeRepo,
		projectRepo:    projectRepo,
		logger:         logger,
	}
}

// ProjectRoster trả về nhân viên + khách hàng (annotate gán) của dự án
func (s *assignmentService) ProjectRoster(ctx context.Context, projectID uuid.UUID) (*RosterResult, error) {
	project, err := s.projectRepo.FindByID(ctx, projectID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.ErrNotFound, "Dự án không tồn tại")
		}
		return nil, errors.Wrap(err, "failed to find project")
	}

	employees, err := s.employeeRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list project employees")
	}

	customers, err := s.customerRepo.FindByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list project customers")
	}

	active, err := s.assignmentRepo.FindActiveByProject(ctx, projectID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list active assignments")
	}

	// Map customer -> assignment active để annotate O(1)
	holders := make(map[uuid.UUID]*models.Assignment, len(active))
	for i := range active {
		holders[active[i].CustomerID] = &active[i]
	}

	roster := make([]RosterCustomer, 0, len(customers))
	for _, c := range customers {
		rc := RosterCustomer{Customer: c}
		if a, ok := holders[c.ID]; ok {
			rc.IsAssigned = true
			empID := a.EmployeeID
			rc.AssignedToEmployeeID = &empID
			if a.Employee.Name != "" {
				name := a.Employee.Name
				rc.AssignedToEmployeeName = &name
			}
		}
		roster = append(roster, rc)
	}

	return &RosterResult{
		Project:   project,
		Employees: employees,
		Customers: roster,
	}, nil
}

// BulkAssign gán N khách cho MỘT nhân viên, all-or-nothing
func (s *assignmentService) BulkAssign(ctx context.Context, input BulkAssignInput) ([]models.Assignment, error) {
	if len(input.CustomerIDs) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "Chưa chọn khách hàng nào để gán")
	}

	if input.CallPriority == "" {
		input.CallPriority = models.PriorityLow
	}
	if !input.CallPriority.IsValid() {
		return nil, errors.New(errors.ErrInvalidInput, fmt.Sprintf("Mức ưu tiên không hợp lệ: %s", input.CallPriority))
	}

	employee, err := s.employeeRepo.FindByID(ctx, input.EmployeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.ErrNotFound, "Nhân viên không tồn tại")
		}
		return nil, errors.Wrap(err, "failed to find employee")
	}
	if !employee.IsActive {
		return nil, errors.New(errors.ErrInvalidInput, "Nhân viên đã ngưng hoạt động, không thể nhận khách")
	}

	// Loại trùng ID ngay từ input, client có thể gửi lặp
	customerIDs := dedupeIDs(input.CustomerIDs)

	customers, err := s.customerRepo.FindByIDs(ctx, customerIDs)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find customers")
	}
	if len(customers) != len(customerIDs) {
		return nil, errors.New(errors.ErrNotFound, "Một hoặc nhiều khách hàng không tồn tại")
	}

	codeByID := make(map[uuid.UUID]string, len(customers))
	for _, c := range customers {
		if !c.BelongsToProject(input.ProjectID) {
			return nil, errors.New(errors.ErrInvalidInput,
				fmt.Sprintf("Khách hàng %s không thuộc dự án được chọn", c.Code))
		}
		codeByID[c.ID] = c.Code
	}

	now := time.Now()
	assignments := make([]models.Assignment, 0, len(customerIDs))
	for _, cid := range customerIDs {
		assignments = append(assignments, models.Assignment{
			CustomerID:     cid,
			EmployeeID:     employee.ID,
			ProjectID:      input.ProjectID,
			AssignDate:     now,
			CallTargetDate: input.CallTargetDate,
			CallPriority:   input.CallPriority,
			CallStatus:     models.CallStatusPending,
		})
	}

	result, err := s.assignmentRepo.CreateBatchIfUnassigned(ctx, input.ProjectID, assignments)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create assignments")
	}

	if len(result.Conflicted) > 0 {
		codes := make([]string, 0, len(result.Conflicted))
		for _, cid := range result.Conflicted {
			codes = append(codes, codeByID[cid])
		}
		sort.Strings(codes)
		s.logger.Info("bulk assign rejected, customers already assigned",
			zap.String("project_id", input.ProjectID.String()),
			zap.Strings("customer_codes", codes))
		return nil, errors.New(errors.ErrAlreadyAssigned,
			fmt.Sprintf("Khách hàng đã được gán trong dự án: %s", strings.Join(codes, ", ")))
	}

	s.logger.Info("bulk assign created",
		zap.String("project_id", input.ProjectID.String()),
		zap.String("employee_id", employee.ID.String()),
		zap.Int("count", len(result.Created)))

	return result.Created, nil
}

// MyAssignments danh sách assignment của employee đang đăng nhập
func (s *assignmentService) MyAssignments(ctx context.Context, employeeID uuid.UUID, query MyAssignmentsQuery) (*MyAssignmentsResult, error) {
	page := query.Page
	if page <= 0 {
		page = 1
	}
	limit := normalizePageSize(query.Limit)

	startDate := query.StartDate
	endDate := query.EndDate
	if startDate == nil && endDate == nil {
		// Mặc định chỉ hiện khách đến hạn hôm nay
		today := models.Today()
		startDate = &today
		endDate = &today
	}

	filter := repositories.MyAssignmentsFilter{
		Search:       query.Search,
		CallStatus:   query.CallStatus,
		CallPriority: query.CallPriority,
		ProjectID:    query.ProjectID,
		StartDate:    startDate,
		EndDate:      endDate,
		Offset:       (page - 1) * limit,
		Limit:        limit,
	}

	assignments, total, err := s.assignmentRepo.FindMine(ctx, employeeID, filter)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list my assignments")
	}

	return &MyAssignmentsResult{
		Assignments: assignments,
		Total:       total,
		Page:        page,
		Limit:       limit,
	}, nil
}

// dedupeIDs loại bỏ ID trùng, giữ nguyên thứ tự xuất hiện đầu tiên
func dedupeIDs(ids []uuid.UUID) []uuid.UUID {
	seen := make(map[uuid.UUID]bool, len(ids))
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, id)
	}
	return out
}

// normalizePageSize ép limit về tập {5, 10, 25, 50}, mặc định 10
func normalizePageSize(limit int) int {
	switch limit {
	case 5, 10, 25, 50:
		return limit
	}
	return 10
}
