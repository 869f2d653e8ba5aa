package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallStatus_IsTerminal(t *testing.T) {
	assert.True(t, CallStatusClosed.IsTerminal())
	assert.True(t, CallStatusNotRelevant.IsTerminal())

	for _, s := range []CallStatus{
		CallStatusPending,
		CallStatusSalesGenerated,
		CallStatusReceived,
		CallStatusNotReachable,
		CallStatusNoResponsive,
		CallStatusScheduled,
	} {
		assert.False(t, s.IsTerminal(), "status %s", s)
	}
}

func TestCallStatus_IsValid(t *testing.T) {
	for _, s := range AllCallStatuses() {
		assert.True(t, s.IsValid(), "status %s", s)
	}
	assert.False(t, CallStatus("deleted").IsValid())
	assert.False(t, CallStatus("").IsValid())
}

func TestAssignment_IsFrozen(t *testing.T) {
	today := NewCalendarDate(2026, time.August, 30)
	yesterday := today.AddDays(-1)
	tomorrow := today.AddDays(1)

	// Không có target date thì không bao giờ đóng băng
	a := &Assignment{}
	assert.False(t, a.IsFrozen(today))

	// Hạn hôm nay vẫn thao tác được
	a.CallTargetDate = &today
	assert.False(t, a.IsFrozen(today))

	// Hạn ngày mai
	a.CallTargetDate = &tomorrow
	assert.False(t, a.IsFrozen(today))

	// Hạn đã qua -> đóng băng
	a.CallTargetDate = &yesterday
	assert.True(t, a.IsFrozen(today))
}

func TestAssignment_ApplyInteraction(t *testing.T) {
	a := &Assignment{CallStatus: CallStatusPending}
	now := time.Now()
	note := "đã tư vấn xong"

	// Kênh voice tăng đúng count_call
	a.ApplyInteraction(true, CallStatusReceived, &note, nil, now)
	assert.Equal(t, 1, a.CountCall)
	assert.Equal(t, 0, a.CountMessage)
	assert.Equal(t, CallStatusReceived, a.CallStatus)
	require.NotNil(t, a.LastCalledAt)
	assert.Equal(t, now, *a.LastCalledAt)
	require.NotNil(t, a.StatusNote)
	assert.Equal(t, note, *a.StatusNote)

	// Kênh nhắn tin tăng đúng count_message
	followUp := now.Add(48 * time.Hour)
	a.ApplyInteraction(false, CallStatusScheduled, nil, &followUp, now)
	assert.Equal(t, 1, a.CountCall)
	assert.Equal(t, 1, a.CountMessage)
	assert.Nil(t, a.StatusNote)
	require.NotNil(t, a.FollowUpAt)
	assert.Equal(t, followUp, *a.FollowUpAt)
}

func TestCallPriority_IsValid(t *testing.T) {
	assert.True(t, PriorityLow.IsValid())
	assert.True(t, PriorityMedium.IsValid())
	assert.True(t, PriorityHigh.IsValid())
	assert.False(t, CallPriority("urgent").IsValid())
}

func TestInteractionChannel(t *testing.T) {
	assert.True(t, ChannelCall.IsValid())
	assert.True(t, ChannelSMS.IsValid())
	assert.True(t, ChannelWhatsApp.IsValid())
	assert.False(t, InteractionChannel("email").IsValid())

	// call là kênh voice duy nhất
	assert.True(t, ChannelCall.IsVoice())
	assert.False(t, ChannelSMS.IsVoice())
	assert.False(t, ChannelWhatsApp.IsVoice())
}
