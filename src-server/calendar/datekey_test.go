package calendar_test

import (
	"testing"
	"time"

	"moncal/src-server/calendar"
)

func TestDateKeySameDay(t *testing.T) {
	morning := time.Date(2024, time.March, 4, 0, 0, 1, 0, time.Local)
	night := time.Date(2024, time.March, 4, 23, 59, 59, 0, time.Local)
	if calendar.NewDateKey(morning) != calendar.NewDateKey(night) {
		t.Error("same calendar day should produce the same key")
	}
	if calendar.NewDateKey(morning) != "2024-03-04" {
		t.Error("unexpected key", calendar.NewDateKey(morning))
	}

	nextDay := time.Date(2024, time.March, 5, 0, 0, 0, 0, time.Local)
	if calendar.NewDateKey(morning) == calendar.NewDateKey(nextDay) {
		t.Error("different days should produce different keys")
	}
}

func TestDateKeyZeroPadding(t *testing.T) {
	key := calendar.NewDateKey(time.Date(2024, time.January, 2, 12, 0, 0, 0, time.Local))
	if key != "2024-01-02" {
		t.Error("key should be zero padded, got", key)
	}
	if !key.Valid() {
		t.Error("key should be valid")
	}
	if calendar.DateKey("2024-1-2").Valid() {
		t.Error("unpadded key should be invalid")
	}
	if calendar.DateKey("not a date").Valid() {
		t.Error("garbage should be invalid")
	}
}

func TestDateKeyTimeRoundTrip(t *testing.T) {
	key := calendar.DateKey("2024-03-04")
	parsed, err := key.Time()
	if err != nil {
		t.Fatal(err)
	}
	if calendar.NewDateKey(parsed) != key {
		t.Error("parsing a key should land on the same day")
	}
	if _, err := calendar.DateKey("2024-13-99").Time(); err == nil {
		t.Error("impossible date should not parse")
	}
}

func TestMonthDays(t *testing.T) {
	// March 2024 starts on a Friday and has 31 days
	days := calendar.MonthDays(2024, time.March)
	if len(days) != 5+31 {
		t.Error("want 36 slots, got", len(days))
	}
	for i := 0; i < 5; i++ {
		if days[i] != 0 {
			t.Error("slot", i, "should be a leading blank")
		}
	}
	if days[5] != 1 {
		t.Error("first day slot should hold 1, got", days[5])
	}
	if days[len(days)-1] != 31 {
		t.Error("last slot should hold 31, got", days[len(days)-1])
	}

	// September 2024 starts on a Sunday: no leading blanks
	days = calendar.MonthDays(2024, time.September)
	if len(days) != 30 {
		t.Error("want 30 slots, got", len(days))
	}
	if days[0] != 1 {
		t.Error("first slot should hold 1, got", days[0])
	}

	// February in a leap year
	days = calendar.MonthDays(2024, time.February)
	if days[len(days)-1] != 29 {
		t.Error("leap February should end on 29, got", days[len(days)-1])
	}
}

func TestIsToday(t *testing.T) {
	now := time.Now()
	if !calendar.IsToday(now.Day(), now) {
		t.Error("today should be today")
	}
	if calendar.IsToday(0, now) {
		t.Error("a blank grid slot is never today")
	}
	if calendar.IsToday(now.Day(), now.AddDate(1, 0, 0)) {
		t.Error("same day number a year out should not be today")
	}
}
