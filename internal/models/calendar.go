package models

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// ===========================================================================
// CalendarDate (Ngày theo lịch, không có giờ)
// Dùng cho call target date: so sánh "quá hạn" theo ngày lịch,
// KHÔNG so sánh timestamp để tránh lệch múi giờ
// ===========================================================================

// CalendarDateLayout format chuẩn YYYY-MM-DD
const CalendarDateLayout = "2006-01-02"

// CalendarDate đại diện cho một ngày (không có giờ/phút/giây)
type CalendarDate struct {
	Year  int
	Month time.Month
	Day   int
}

// NewCalendarDate tạo CalendarDate từ năm/tháng/ngày
func NewCalendarDate(year int, month time.Month, day int) CalendarDate {
	return CalendarDate{Year: year, Month: month, Day: day}
}

// CalendarDateOf lấy phần ngày từ một time.Time (theo location của t)
func CalendarDateOf(t time.Time) CalendarDate {
	y, m, d := t.Date()
	return CalendarDate{Year: y, Month: m, Day: d}
}

// Today trả về ngày hiện tại theo local time
func Today() CalendarDate {
	return CalendarDateOf(time.Now())
}

// ParseCalendarDate parse chuỗi YYYY-MM-DD
func ParseCalendarDate(s string) (CalendarDate, error) {
	t, err := time.Parse(CalendarDateLayout, s)
	if err != nil {
		return CalendarDate{}, fmt.Errorf("parse calendar date %q: %w", s, err)
	}
	return CalendarDateOf(t), nil
}

// Time trả về time.Time lúc 00:00:00 UTC của ngày này
func (d CalendarDate) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String format YYYY-MM-DD
func (d CalendarDate) String() string {
	return d.Time().Format(CalendarDateLayout)
}

// IsZero kiểm tra ngày rỗng
func (d CalendarDate) IsZero() bool {
	return d.Year == 0 && d.Month == 0 && d.Day == 0
}

// Before so sánh theo ngày lịch
func (d CalendarDate) Before(other CalendarDate) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}

// Equal kiểm tra hai ngày bằng nhau
func (d CalendarDate) Equal(other CalendarDate) bool {
	return d.Year == other.Year && d.Month == other.Month && d.Day == other.Day
}

// AddDays trả về ngày sau n ngày (n có thể âm)
func (d CalendarDate) AddDays(n int) CalendarDate {
	return CalendarDateOf(d.Time().AddDate(0, 0, n))
}

// Value implement driver.Valuer cho cột kiểu date
func (d CalendarDate) Value() (driver.Value, error) {
	if d.IsZero() {
		return nil, nil
	}
	return d.Time(), nil
}

// Scan implement sql.Scanner cho cột kiểu date
func (d *CalendarDate) Scan(value interface{}) error {
	if value == nil {
		*d = CalendarDate{}
		return nil
	}
	switch v := value.(type) {
	case time.Time:
		*d = CalendarDateOf(v)
		return nil
	case []byte:
		parsed, err := ParseCalendarDate(string(v))
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	case string:
		parsed, err := ParseCalendarDate(v)
		if err != nil {
			return err
		}
		*d = parsed
		return nil
	default:
		return errors.New("unsupported type for CalendarDate")
	}
}

// GormDataType báo cho GORM dùng kiểu date
func (CalendarDate) GormDataType() string {
	return "date"
}

// MarshalJSON encode thành "YYYY-MM-DD"
func (d CalendarDate) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON decode từ "YYYY-MM-DD"
func (d *CalendarDate) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		*d = CalendarDate{}
		return nil
	}
	parsed, err := ParseCalendarDate(s)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
