package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCalendarDate(t *testing.T) {
	d, err := ParseCalendarDate("2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, 2026, d.Year)
	assert.Equal(t, time.August, d.Month)
	assert.Equal(t, 30, d.Day)
	assert.Equal(t, "2026-08-30", d.String())

	_, err = ParseCalendarDate("30/08/2026")
	assert.Error(t, err)

	_, err = ParseCalendarDate("")
	assert.Error(t, err)
}

func TestCalendarDate_Before(t *testing.T) {
	d := NewCalendarDate(2026, time.March, 15)

	assert.True(t, NewCalendarDate(2026, time.March, 14).Before(d))
	assert.True(t, NewCalendarDate(2026, time.February, 28).Before(d))
	assert.True(t, NewCalendarDate(2025, time.December, 31).Before(d))
	assert.False(t, d.Before(d))
	assert.False(t, NewCalendarDate(2026, time.March, 16).Before(d))
}

func TestCalendarDate_AddDays(t *testing.T) {
	d := NewCalendarDate(2026, time.February, 28)

	// 2026 không nhuận
	assert.Equal(t, NewCalendarDate(2026, time.March, 1), d.AddDays(1))
	assert.Equal(t, NewCalendarDate(2026, time.February, 27), d.AddDays(-1))

	// Qua năm
	assert.Equal(t, NewCalendarDate(2027, time.January, 1), NewCalendarDate(2026, time.December, 31).AddDays(1))
}

func TestCalendarDate_JSON(t *testing.T) {
	d := NewCalendarDate(2026, time.August, 30)

	data, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2026-08-30"`, string(data))

	var parsed CalendarDate
	require.NoError(t, json.Unmarshal([]byte(`"2026-08-30"`), &parsed))
	assert.True(t, d.Equal(parsed))

	// null -> zero value
	require.NoError(t, json.Unmarshal([]byte(`null`), &parsed))
	assert.True(t, parsed.IsZero())
}

func TestCalendarDate_Scan(t *testing.T) {
	var d CalendarDate

	require.NoError(t, d.Scan(time.Date(2026, time.August, 30, 23, 59, 0, 0, time.UTC)))
	assert.Equal(t, "2026-08-30", d.String())

	require.NoError(t, d.Scan("2026-01-02"))
	assert.Equal(t, "2026-01-02", d.String())

	require.NoError(t, d.Scan(nil))
	assert.True(t, d.IsZero())

	assert.Error(t, d.Scan(12345))
}

func TestCalendarDateOf_StripsTime(t *testing.T) {
	// So sánh theo ngày lịch: 23:59 và 00:01 cùng ngày là một
	late := time.Date(2026, time.August, 30, 23, 59, 0, 0, time.Local)
	early := time.Date(2026, time.August, 30, 0, 1, 0, 0, time.Local)
	assert.True(t, CalendarDateOf(late).Equal(CalendarDateOf(early)))
}
