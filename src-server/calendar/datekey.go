package calendar

import (
	"fmt"
	"time"
)

// DateKey is the canonical YYYY-MM-DD identifier an event bucket is filed
// under. Two times map to the same key iff they fall on the same local
// calendar day.
type DateKey string

const dateKeyLayout = "2006-01-02"

func NewDateKey(t time.Time) DateKey {
	return DateKey(fmt.Sprintf("%04d-%02d-%02d", t.Year(), int(t.Month()), t.Day()))
}

// Valid reports whether the key is a canonical zero-padded calendar day;
// time.Parse alone is too lenient about padding.
func (k DateKey) Valid() bool {
	t, err := time.ParseInLocation(dateKeyLayout, string(k), time.Local)
	return err == nil && NewDateKey(t) == k
}

// Time parses the key back into midnight of that local calendar day.
func (k DateKey) Time() (time.Time, error) {
	t, err := time.ParseInLocation(dateKeyLayout, string(k), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("DateKey.Time: %w: %s", ErrFormat, k)
	}
	return t, nil
}

// MonthDays enumerates the month-grid slots for a Sunday-first grid: one 0
// per weekday before the 1st, then 1..daysInMonth. No trailing padding.
func MonthDays(year int, month time.Month) []int {
	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	lastDay := firstDay.AddDate(0, 1, -1)

	days := make([]int, 0, int(firstDay.Weekday())+lastDay.Day())
	for i := 0; i < int(firstDay.Weekday()); i++ {
		days = append(days, 0)
	}
	for i := 1; i <= lastDay.Day(); i++ {
		days = append(days, i)
	}
	return days
}

// IsToday reports whether the given day number, in the month/year of ref,
// is the current local date.
func IsToday(day int, ref time.Time) bool {
	return isTodayAt(day, ref, time.Now())
}

func isTodayAt(day int, ref, now time.Time) bool {
	return day == now.Day() &&
		ref.Month() == now.Month() &&
		ref.Year() == now.Year()
}
