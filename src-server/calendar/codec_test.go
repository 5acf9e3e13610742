package calendar_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"
	"time"

	"moncal/src-server/calendar"
)

func storesEqual(t *testing.T, a, b *calendar.Store) bool {
	t.Helper()
	if !reflect.DeepEqual(a.Days(), b.Days()) {
		return false
	}
	for _, day := range a.Days() {
		if !reflect.DeepEqual(a.Events(day), b.Events(day)) {
			return false
		}
	}
	return true
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	store := calendar.NewStore()
	form := calendar.EventForm{
		Title:       "Standup",
		Description: "daily sync",
		StartTime:   "09:00",
		EndTime:     "09:15",
		Category:    calendar.CategoryWork,
		Recurring:   calendar.FreqWeekly,
	}
	target := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	if _, err := store.Create(form, target, 12); err != nil {
		t.Fatal(err)
	}
	standalone := calendar.EventForm{
		Title:    "Dentist",
		AllDay:   true,
		Category: calendar.CategoryImportant,
	}
	if _, err := store.Create(standalone, target, calendar.DefaultHorizon); err != nil {
		t.Fatal(err)
	}

	data, err := store.Encode()
	if err != nil {
		t.Fatal(err)
	}
	decoded, err := calendar.DecodeStore(data)
	if err != nil {
		t.Fatal(err)
	}
	if !storesEqual(t, store, decoded) {
		t.Error("decode(encode(store)) should equal the original")
	}
}

func TestImportReplacesStore(t *testing.T) {
	store := calendar.NewStore()
	target := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	if _, err := store.Create(standupForm(), target, calendar.DefaultHorizon); err != nil {
		t.Fatal(err)
	}

	raw := []byte(`{
	  "2025-01-01": [
	    {
	      "id": "abc",
	      "title": "New Year",
	      "description": "",
	      "startTime": "",
	      "endTime": "",
	      "allDay": true,
	      "category": "personal",
	      "recurring": "none",
	      "recurringId": null,
	      "date": "2025-01-01"
	    }
	  ]
	}`)
	if err := store.Import(raw); err != nil {
		t.Fatal(err)
	}
	if store.Len() != 1 {
		t.Error("import must replace, not merge, got", store.Len())
	}
	events := store.Events("2025-01-01")
	if len(events) != 1 || events[0].Title != "New Year" {
		t.Error("imported event missing")
	}
	if events[0].RecurringID != "" {
		t.Error("null recurringId should decode to standalone")
	}
}

func TestImportLegacyNumericIDs(t *testing.T) {
	store := calendar.NewStore()
	raw := []byte(`{"2024-06-01": [{"id": 1717200000000, "title": "Legacy", "allDay": true, "category": "other", "recurring": "none", "date": "2024-06-01"}]}`)
	if err := store.Import(raw); err != nil {
		t.Fatal(err)
	}
	events := store.Events("2024-06-01")
	if len(events) != 1 {
		t.Fatal("want 1 event, got", len(events))
	}
	if events[0].ID != "1717200000000" {
		t.Error("numeric id should become its decimal string, got", events[0].ID)
	}
}

func TestImportMalformed(t *testing.T) {
	store := calendar.NewStore()
	target := time.Date(2024, time.March, 4, 0, 0, 0, 0, time.Local)
	if _, err := store.Create(standupForm(), target, calendar.DefaultHorizon); err != nil {
		t.Fatal(err)
	}
	snapshot, err := store.Encode()
	if err != nil {
		t.Fatal(err)
	}

	for _, raw := range [][]byte{
		[]byte("definitely not json"),
		[]byte(`[1, 2, 3]`),
		[]byte(`"just a string"`),
		[]byte(`{"2024-03-04": "not an array"}`),
		[]byte(`{"not a date key": []}`),
		[]byte(`null`),
	} {
		if err := store.Import(raw); !errors.Is(err, calendar.ErrFormat) {
			t.Error("want format error for", string(raw), "got", err)
		}
	}

	after, err := store.Encode()
	if err != nil {
		t.Fatal(err)
	}
	if string(snapshot) != string(after) {
		t.Error("failed imports must leave the store untouched")
	}
}

func TestImportDropsEmptyBuckets(t *testing.T) {
	store := calendar.NewStore()
	raw := []byte(`{"2024-03-04": [], "2024-03-05": [{"id": "x", "title": "Kept", "allDay": true, "category": "other", "recurring": "none", "date": "2024-03-05"}]}`)
	if err := store.Import(raw); err != nil {
		t.Fatal(err)
	}
	if len(store.Days()) != 1 || store.Days()[0] != "2024-03-05" {
		t.Error("empty buckets must not be imported, got", store.Days())
	}
}

func TestExportFile(t *testing.T) {
	store := calendar.NewStore()
	now := time.Date(2024, time.March, 4, 15, 30, 0, 0, time.Local)
	filename, data, err := store.ExportFile(now)
	if err != nil {
		t.Fatal(err)
	}
	if filename != "calendar-events-2024-03-04.json" {
		t.Error("unexpected export filename", filename)
	}
	if strings.TrimSpace(string(data)) != "{}" {
		t.Error("empty store should export an empty mapping, got", string(data))
	}
}
