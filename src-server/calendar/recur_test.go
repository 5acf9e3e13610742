package calendar_test

import (
	"testing"
	"time"

	"moncal/src-server/calendar"
)

func TestOccurrencesWeekly(t *testing.T) {
	start := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	dates := calendar.Occurrences(start, calendar.FreqWeekly, 12)
	if len(dates) != 12 {
		t.Fatal("want 12 occurrences, got", len(dates))
	}
	for i, date := range dates {
		want := calendar.NewDateKey(start.AddDate(0, 0, 7*(i+1)))
		if calendar.NewDateKey(date) != want {
			t.Error("occurrence", i, "should fall on", want, "got", calendar.NewDateKey(date))
		}
	}
}

func TestOccurrencesDaily(t *testing.T) {
	start := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	dates := calendar.Occurrences(start, calendar.FreqDaily, 12)
	if len(dates) != 12 {
		t.Fatal("want 12 occurrences, got", len(dates))
	}
	if calendar.NewDateKey(dates[0]) != "2024-03-05" {
		t.Error("first occurrence should be the next day, got", dates[0])
	}
	if calendar.NewDateKey(dates[11]) != "2024-03-16" {
		t.Error("last occurrence should be 12 days out, got", dates[11])
	}
}

func TestOccurrencesMonthlyRollover(t *testing.T) {
	// Jan 31 + 1 month rolls over through February instead of clamping
	start := time.Date(2024, time.January, 31, 0, 0, 0, 0, time.Local)
	dates := calendar.Occurrences(start, calendar.FreqMonthly, 2)
	if len(dates) != 2 {
		t.Fatal("want 2 occurrences, got", len(dates))
	}
	if calendar.NewDateKey(dates[0]) != "2024-03-02" {
		t.Error("leap-year February should roll over to Mar 2, got", dates[0])
	}
}

func TestOccurrencesYearly(t *testing.T) {
	start := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	dates := calendar.Occurrences(start, calendar.FreqYearly, 3)
	if len(dates) != 3 {
		t.Fatal("want 3 occurrences, got", len(dates))
	}
	if dates[2].Year() != 2027 || dates[2].Month() != time.March || dates[2].Day() != 4 {
		t.Error("third yearly occurrence should be 2027-03-04, got", dates[2])
	}
}

func TestOccurrencesNone(t *testing.T) {
	start := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	if dates := calendar.Occurrences(start, calendar.FreqNone, 12); len(dates) != 0 {
		t.Error("frequency none should yield nothing, got", len(dates))
	}
	if dates := calendar.Occurrences(start, calendar.FreqDaily, 0); len(dates) != 0 {
		t.Error("zero horizon should yield nothing, got", len(dates))
	}
}

func TestOccurrencesHardCap(t *testing.T) {
	start := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	dates := calendar.Occurrences(start, calendar.FreqDaily, 100000)
	if len(dates) > 101 {
		t.Error("generator must stop at the safety cap, got", len(dates))
	}
}
