package services

import (
	"context"
	"fmt"
	"time"

	"callcenter-gin/internal/channel"
	"callcenter-gin/internal/errors"
	"callcenter-gin/internal/models"
	"callcenter-gin/internal/repositories"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ===========================================================================
// Interaction Service Implementation
// ===========================================================================

// interactionService triển khai InteractionService
type interactionService struct {
	assignmentRepo  repositories.AssignmentRepository
	interactionRepo repositories.InteractionLogRepository
	employeeRepo    repositories.EmployeeRepository
	registry        *channel.Registry
	logger          *zap.Logger
}

// NewInteractionService tạo instance mới của InteractionService
func NewInteractionService(
	assignmentRepo repositories.AssignmentRepository,
	interactionRepo repositories.InteractionLogRepository,
	employeeRepo repositories.EmployeeRepository,
	registry *channel.Registry,
	logger *zap.Logger,
) InteractionService {
	return &interactionService{
		assignmentRepo:  assignmentRepo,
		interactionRepo: interactionRepo,
		employeeRepo:    employeeRepo,
		registry:        registry,
		logger:          logger,
	}
}

// Record ghi nhận một lần liên hệ trên assignment
func (s *interactionService) Record(ctx context.Context, employeeID, assignmentID uuid.UUID, input RecordInteractionInput) (*RecordInteractionResult, error) {
	if !input.Channel.IsValid() {
		return nil, errors.New(errors.ErrInvalidInput, fmt.Sprintf("Kênh liên hệ không hợp lệ: %s", input.Channel))
	}
	if !input.CallStatus.IsValid() {
		return nil, errors.New(errors.ErrInvalidInput, fmt.Sprintf("Trạng thái không hợp lệ: %s", input.CallStatus))
	}

	followUp, err := combineFollowUp(input.FollowUpDate, input.FollowUpTime)
	if err != nil {
		return nil, err
	}

	assignment, err := s.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errors.New(errors.ErrNotFound, "Assignment không tồn tại")
		}
		return nil, errors.Wrap(err, "failed to find assignment")
	}

	if err := s.authorize(ctx, assignment, employeeID); err != nil {
		return nil, err
	}

	// Assignment terminal đã giải phóng khách - không cho sửa lại,
	// nếu không exclusivity có thể bị phá khi khách đã được gán lại
	if !assignment.IsActive() {
		return nil, errors.New(errors.ErrConflict,
			fmt.Sprintf("Assignment đã kết thúc với trạng thái %s, không thể ghi nhận thêm", assignment.CallStatus))
	}

	// Gate never_call: chặn kênh voice bất kể target date
	if input.Channel.IsVoice() && assignment.Customer.NeverCall {
		s.logger.Warn("voice interaction blocked on never_call customer",
			zap.String("assignment_id", assignment.ID.String()),
			zap.String("customer_code", assignment.Customer.Code))
		return nil, errors.New(errors.ErrNeverCall,
			fmt.Sprintf("Khách hàng %s thuộc danh sách cấm gọi", assignment.Customer.Code))
	}

	// Gate target date: ngày hẹn đã qua thì assignment đóng băng
	if assignment.IsFrozen(models.Today()) {
		return nil, errors.New(errors.ErrStaleTarget,
			fmt.Sprintf("Hạn liên hệ %s đã qua, assignment bị đóng băng", assignment.CallTargetDate))
	}

	// Gate capability: kênh phải hỗ trợ loại liên hệ và resolve được target
	ch, err := s.registry.Get(channel.ContactChannelFor(input.Channel))
	if err != nil {
		return nil, errors.Wrap(err, "failed to resolve contact channel")
	}
	if input.Channel.IsVoice() && !ch.SupportsCall() {
		return nil, errors.New(errors.ErrInvalidInput,
			fmt.Sprintf("Kênh %s không hỗ trợ gọi thoại", ch.Type()))
	}
	if !input.Channel.IsVoice() && !ch.SupportsMessage() {
		return nil, errors.New(errors.ErrInvalidInput,
			fmt.Sprintf("Kênh %s không hỗ trợ nhắn tin", ch.Type()))
	}
	if _, ok := ch.Resolve(&assignment.Customer); !ok {
		return nil, errors.New(errors.ErrInvalidInput,
			fmt.Sprintf("Khách hàng %s không có thông tin liên hệ cho kênh %s", assignment.Customer.Code, ch.Type()))
	}

	now := time.Now()
	assignment.ApplyInteraction(input.Channel.IsVoice(), input.CallStatus, input.StatusNote, followUp, now)

	if err := s.assignmentRepo.Update(ctx, assignment); err != nil {
		return nil, errors.Wrap(err, "failed to update assignment")
	}

	log := &models.InteractionLog{
		AssignmentID: assignment.ID,
		EmployeeID:   employeeID,
		Channel:      input.Channel,
		OccurredAt:   now,
		ResultStatus: input.CallStatus,
		ResultNote:   input.StatusNote,
		FollowUpAt:   followUp,
	}
	if err := s.interactionRepo.Create(ctx, log); err != nil {
		// Snapshot đã ghi thành công; thiếu một dòng log không chặn nghiệp vụ
		s.logger.Error("failed to append interaction log",
			zap.String("assignment_id", assignment.ID.String()),
			zap.Error(err))
	}

	s.logger.Info("interaction recorded",
		zap.String("assignment_id", assignment.ID.String()),
		zap.String("channel", string(input.Channel)),
		zap.String("call_status", string(input.CallStatus)))

	return &RecordInteractionResult{
		Assignment: assignment,
		Log:        log,
	}, nil
}

// History lịch sử liên hệ của một assignment
func (s *interactionService) History(ctx context.Context, employeeID, assignmentID uuid.UUID, opts repositories.FindOptions) ([]models.InteractionLog, int64, error) {
	assignment, err := s.assignmentRepo.FindByID(ctx, assignmentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, 0, errors.New(errors.ErrNotFound, "Assignment không tồn tại")
		}
		return nil, 0, errors.Wrap(err, "failed to find assignment")
	}

	if err := s.authorize(ctx, assignment, employeeID); err != nil {
		return nil, 0, err
	}

	return s.interactionRepo.FindByAssignment(ctx, assignmentID, opts)
}

// authorize chỉ nhân viên được gán hoặc manager/admin được đụng vào assignment
func (s *interactionService) authorize(ctx context.Context, assignment *models.Assignment, employeeID uuid.UUID) error {
	if assignment.EmployeeID == employeeID {
		return nil
	}

	employee, err := s.employeeRepo.FindByID(ctx, employeeID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New(errors.ErrForbidden, "Bạn không có quyền trên assignment này")
		}
		return errors.Wrap(err, "failed to find employee")
	}
	if !employee.CanManage() {
		return errors.New(errors.ErrForbidden, "Bạn không có quyền trên assignment này")
	}
	return nil
}

// combineFollowUp ghép ngày + giờ hẹn thành một timestamp
// Cả hai phải cùng có hoặc cùng vắng; nil nghĩa là xóa lịch hẹn
func combineFollowUp(date *models.CalendarDate, clock *string) (*time.Time, error) {
	hasDate := date != nil
	hasClock := clock != nil && *clock != ""

	if !hasDate && !hasClock {
		return nil, nil
	}
	if hasDate != hasClock {
		return nil, errors.New(errors.ErrInvalidInput, "Lịch hẹn phải có đủ cả ngày và giờ")
	}

	t, err := time.Parse("15:04", *clock)
	if err != nil {
		return nil, errors.New(errors.ErrInvalidInput, fmt.Sprintf("Giờ hẹn không hợp lệ: %s", *clock))
	}

	combined := time.Date(date.Year, date.Month, date.Day, t.Hour(), t.Minute(), 0, 0, time.Local)
	return &combined, nil
}
