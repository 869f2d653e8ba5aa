package services

import (
	"context"
	"testing"
	"time"

	"callcenter-gin/internal/channel"
	"callcenter-gin/internal/errors"
	"callcenter-gin/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// ===========================================================================
// Interaction Service Tests
// Trọng tâm: các gate (never_call, target date, capability) và counters
// ===========================================================================

type interactionFixture struct {
	service      InteractionService
	employees    *fakeEmployeeRepo
	customers    *fakeCustomerRepo
	assignments  *fakeAssignmentRepo
	interactions *fakeInteractionRepo

	agent      *models.Employee
	customer   *models.Customer
	assignment *models.Assignment
}

func newInteractionFixture(t *testing.T) *interactionFixture {
	t.Helper()

	employees := newFakeEmployeeRepo()
	customers := newFakeCustomerRepo()
	assignments := newFakeAssignmentRepo(customers)
	interactions := newFakeInteractionRepo()

	agent := employees.add(&models.Employee{
		EmpNo:    "EMP-0001",
		Name:     "Agent Một",
		Email:    "agent1@test.local",
		Role:     models.RoleAgent,
		IsActive: true,
	})

	mobile := "+84900000000"
	projectID := uuid.New()
	customer := customers.add(&models.Customer{
		Code:      "CUS-0001",
		Name:      "Khách Test",
		Mobile:    &mobile,
		ProjectID: &projectID,
	})

	tomorrow := models.Today().AddDays(1)
	assignment := assignments.add(&models.Assignment{
		CustomerID:     customer.ID,
		EmployeeID:     agent.ID,
		ProjectID:      projectID,
		CallTargetDate: &tomorrow,
		CallPriority:   models.PriorityMedium,
		CallStatus:     models.CallStatusPending,
	})

	return &interactionFixture{
		service:      NewInteractionService(assignments, interactions, employees, channel.NewDefaultRegistry(), zap.NewNop()),
		employees:    employees,
		customers:    customers,
		assignments:  assignments,
		interactions: interactions,
		agent:        agent,
		customer:     customer,
		assignment:   assignment,
	}
}

func validInput() RecordInteractionInput {
	return RecordInteractionInput{
		Channel:    models.ChannelCall,
		CallStatus: models.CallStatusReceived,
	}
}

func TestRecord_CallIncrementsOnlyCallCounter(t *testing.T) {
	f := newInteractionFixture(t)

	result, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, validInput())
	require.NoError(t, err)

	assert.Equal(t, 1, result.Assignment.CountCall)
	assert.Equal(t, 0, result.Assignment.CountMessage)
	assert.Equal(t, models.CallStatusReceived, result.Assignment.CallStatus)
	require.NotNil(t, result.Assignment.LastCalledAt)

	// Snapshot phải được lưu lại
	stored, err := f.assignments.FindByID(context.Background(), f.assignment.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, stored.CountCall)
}

func TestRecord_MessageIncrementsOnlyMessageCounter(t *testing.T) {
	f := newInteractionFixture(t)

	input := validInput()
	input.Channel = models.ChannelSMS
	input.CallStatus = models.CallStatusNoResponsive

	result, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, input)
	require.NoError(t, err)

	assert.Equal(t, 0, result.Assignment.CountCall)
	assert.Equal(t, 1, result.Assignment.CountMessage)
}

func TestRecord_AppendsImmutableLog(t *testing.T) {
	f := newInteractionFixture(t)
	note := "khách hẹn gọi lại"

	input := validInput()
	input.StatusNote = &note

	result, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, input)
	require.NoError(t, err)
	require.NotNil(t, result.Log)

	logs, total, err := f.interactions.FindByAssignment(context.Background(), f.assignment.ID, repoFindOptions())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, logs, 1)
	assert.Equal(t, models.ChannelCall, logs[0].Channel)
	assert.Equal(t, models.CallStatusReceived, logs[0].ResultStatus)
	require.NotNil(t, logs[0].ResultNote)
	assert.Equal(t, note, *logs[0].ResultNote)
	assert.Equal(t, f.agent.ID, logs[0].EmployeeID)
}

func TestRecord_NeverCallBlocksVoiceOnly(t *testing.T) {
	f := newInteractionFixture(t)
	f.customer.MarkNeverCall("khách yêu cầu")

	// Kênh voice bị chặn với 403
	_, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, validInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNeverCall))

	// Kênh nhắn tin vẫn được phép
	input := validInput()
	input.Channel = models.ChannelSMS
	result, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, input)
	require.NoError(t, err)
	assert.Equal(t, 1, result.Assignment.CountMessage)
}

func TestRecord_NeverCallWinsOverStaleTarget(t *testing.T) {
	f := newInteractionFixture(t)
	f.customer.MarkNeverCall("khách yêu cầu")
	yesterday := models.Today().AddDays(-1)
	f.assignment.CallTargetDate = &yesterday

	// Gọi khách never_call luôn trả về NEVER_CALL, kể cả khi đã quá hạn
	_, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, validInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNeverCall))
}

func TestRecord_PastTargetDateFreezes(t *testing.T) {
	f := newInteractionFixture(t)
	yesterday := models.Today().AddDays(-1)
	f.assignment.CallTargetDate = &yesterday

	// Mọi kênh đều bị chặn với STALE_TARGET
	for _, ch := range []models.InteractionChannel{models.ChannelCall, models.ChannelSMS, models.ChannelWhatsApp} {
		input := validInput()
		input.Channel = ch
		_, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, input)
		require.Error(t, err, "channel %s", ch)
		assert.True(t, errors.Is(err, errors.ErrStaleTarget), "channel %s", ch)
	}

	// Counters không đổi
	stored, err := f.assignments.FindByID(context.Background(), f.assignment.ID)
	require.NoError(t, err)
	assert.Zero(t, stored.CountCall)
	assert.Zero(t, stored.CountMessage)
}

func TestRecord_TargetDateTodayIsNotFrozen(t *testing.T) {
	f := newInteractionFixture(t)
	today := models.Today()
	f.assignment.CallTargetDate = &today

	_, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, validInput())
	assert.NoError(t, err)
}

func TestRecord_NilTargetDateNeverFreezes(t *testing.T) {
	f := newInteractionFixture(t)
	f.assignment.CallTargetDate = nil

	_, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, validInput())
	assert.NoError(t, err)
}

func TestRecord_FollowUpRequiresBothDateAndTime(t *testing.T) {
	f := newInteractionFixture(t)
	date := models.Today().AddDays(2)
	clock := "14:30"

	// Chỉ có ngày -> lỗi
	input := validInput()
	input.FollowUpDate = &date
	_, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	// Chỉ có giờ -> lỗi
	input = validInput()
	input.FollowUpTime = &clock
	_, err = f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	// Đủ cả hai -> lưu timestamp gộp
	input = validInput()
	input.FollowUpDate = &date
	input.FollowUpTime = &clock
	result, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, input)
	require.NoError(t, err)
	require.NotNil(t, result.Assignment.FollowUpAt)
	assert.Equal(t, 14, result.Assignment.FollowUpAt.Hour())
	assert.Equal(t, 30, result.Assignment.FollowUpAt.Minute())
	assert.True(t, date.Equal(models.CalendarDateOf(*result.Assignment.FollowUpAt)))
}

func TestRecord_EmptyFollowUpClearsSchedule(t *testing.T) {
	f := newInteractionFixture(t)
	existing := time.Now().Add(24 * time.Hour)
	f.assignment.FollowUpAt = &existing

	result, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, validInput())
	require.NoError(t, err)
	assert.Nil(t, result.Assignment.FollowUpAt)
}

func TestRecord_InvalidFollowUpTime(t *testing.T) {
	f := newInteractionFixture(t)
	date := models.Today().AddDays(1)
	badClock := "25:99"

	input := validInput()
	input.FollowUpDate = &date
	input.FollowUpTime = &badClock

	_, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestRecord_InvalidChannelAndStatus(t *testing.T) {
	f := newInteractionFixture(t)

	input := validInput()
	input.Channel = "telepathy"
	_, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))

	input = validInput()
	input.CallStatus = "teleported"
	_, err = f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestRecord_CustomerWithoutMobileCannotBeCalled(t *testing.T) {
	f := newInteractionFixture(t)
	f.customer.Mobile = nil

	_, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, validInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrInvalidInput))
}

func TestRecord_TerminalAssignmentRejected(t *testing.T) {
	f := newInteractionFixture(t)
	f.assignment.CallStatus = models.CallStatusClosed

	_, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, validInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrConflict))
}

func TestRecord_UnknownAssignment(t *testing.T) {
	f := newInteractionFixture(t)

	_, err := f.service.Record(context.Background(), f.agent.ID, uuid.New(), validInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrNotFound))
}

func TestRecord_OtherAgentForbidden(t *testing.T) {
	f := newInteractionFixture(t)
	other := f.employees.add(&models.Employee{
		EmpNo:    "EMP-0002",
		Name:     "Agent Hai",
		Email:    "agent2@test.local",
		Role:     models.RoleAgent,
		IsActive: true,
	})

	_, err := f.service.Record(context.Background(), other.ID, f.assignment.ID, validInput())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrForbidden))
}

func TestRecord_ManagerCanTouchAnyAssignment(t *testing.T) {
	f := newInteractionFixture(t)
	manager := f.employees.add(&models.Employee{
		EmpNo:    "EMP-0099",
		Name:     "Trần Quản Lý",
		Email:    "manager@test.local",
		Role:     models.RoleManager,
		IsActive: true,
	})

	result, err := f.service.Record(context.Background(), manager.ID, f.assignment.ID, validInput())
	require.NoError(t, err)
	// Log ghi người thực sự thao tác, không phải người được gán
	assert.Equal(t, manager.ID, result.Log.EmployeeID)
}

func TestHistory_OwnerOnly(t *testing.T) {
	f := newInteractionFixture(t)
	_, err := f.service.Record(context.Background(), f.agent.ID, f.assignment.ID, validInput())
	require.NoError(t, err)

	logs, total, err := f.service.History(context.Background(), f.agent.ID, f.assignment.ID, repoFindOptions())
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	assert.Len(t, logs, 1)

	other := f.employees.add(&models.Employee{
		EmpNo:    "EMP-0002",
		Name:     "Agent Hai",
		Email:    "agent2@test.local",
		Role:     models.RoleAgent,
		IsActive: true,
	})
	_, _, err = f.service.History(context.Background(), other.ID, f.assignment.ID, repoFindOptions())
	require.Error(t, err)
	assert.True(t, errors.Is(err, errors.ErrForbidden))
}
