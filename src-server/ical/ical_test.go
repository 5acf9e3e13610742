package ical_test

import (
	"strings"
	"testing"
	"time"

	"moncal/src-server/calendar"
	"moncal/src-server/ical"
)

func TestFromStoreStandalone(t *testing.T) {
	store := calendar.NewStore()
	form := calendar.EventForm{
		Title:     "Dentist; bring card",
		StartTime: "14:30",
		EndTime:   "15:00",
		Category:  calendar.CategoryImportant,
	}
	target := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	if _, err := store.Create(form, target, calendar.DefaultHorizon); err != nil {
		t.Fatal(err)
	}

	cal, err := ical.FromStore(store, "test")
	if err != nil {
		t.Fatal(err)
	}
	out, err := cal.ToIcal()
	if err != nil {
		t.Fatal(err)
	}

	if strings.Count(out, "BEGIN:VEVENT") != 1 {
		t.Error("want exactly one VEVENT")
	}
	if !strings.Contains(out, "SUMMARY:Dentist\\; bring card") {
		t.Error("summary should be escaped, got:\n", out)
	}
	if !strings.Contains(out, "DTSTART:20240304T143000") {
		t.Error("timed event should carry its clock, got:\n", out)
	}
	if strings.Contains(out, "RRULE") {
		t.Error("standalone event must not carry an RRULE")
	}
}

func TestFromStoreRecurringGroupCollapses(t *testing.T) {
	store := calendar.NewStore()
	form := calendar.EventForm{
		Title:     "Standup",
		AllDay:    true,
		Category:  calendar.CategoryWork,
		Recurring: calendar.FreqDaily,
	}
	target := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	if _, err := store.Create(form, target, 12); err != nil {
		t.Fatal(err)
	}

	cal, err := ical.FromStore(store, "test")
	if err != nil {
		t.Fatal(err)
	}
	out, err := cal.ToIcal()
	if err != nil {
		t.Fatal(err)
	}

	if got := strings.Count(out, "BEGIN:VEVENT"); got != 1 {
		t.Error("a recurring group should collapse into one VEVENT, got", got)
	}
	if !strings.Contains(out, "RRULE:") {
		t.Error("recurring VEVENT should carry an RRULE")
	}
	if !strings.Contains(out, "FREQ=DAILY") {
		t.Error("RRULE should carry the group's frequency, got:\n", out)
	}
	if !strings.Contains(out, "COUNT=13") {
		t.Error("RRULE count should cover the whole group, got:\n", out)
	}
	if !strings.Contains(out, "DTSTART;VALUE=DATE:20240304") {
		t.Error("all-day VEVENT should anchor on the group's first day, got:\n", out)
	}
}

func TestToIcalEnvelope(t *testing.T) {
	cal, err := ical.FromStore(calendar.NewStore(), "moncal")
	if err != nil {
		t.Fatal(err)
	}
	out, err := cal.ToIcal()
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(out, "BEGIN:VCALENDAR\r\n") || !strings.HasSuffix(out, "END:VCALENDAR\r\n") {
		t.Error("calendar envelope is malformed:\n", out)
	}
	if !strings.Contains(out, "VERSION:2.0") {
		t.Error("missing VERSION property")
	}
}
