package ical

import (
	"fmt"
	"strings"
	"time"

	"moncal/src-server/calendar"

	"github.com/google/uuid"
	"github.com/xyedo/rrule"
)

// One-way iCalendar rendering of the event store, so other calendar apps
// can subscribe to it. Import stays JSON-only.

type Event struct {
	id          string
	summary     string
	description string
	start       time.Time
	end         time.Time
	wholeDay    bool
	rrule       *rrule.RRule
}

type Calendar struct {
	prodID string
	name   string
	events []Event
}

func NewCalendar(name string) *Calendar {
	return &Calendar{
		prodID: "-//moncal//" + uuid.NewString() + "//EN",
		name:   name,
	}
}

func (c *Calendar) AddEvent(event Event) {
	c.events = append(c.events, event)
}

// FromStore renders every bucket of the store into one calendar. Each
// recurring group collapses into a single VEVENT anchored on the group's
// first date, carrying an RRULE with the group's frequency and total count;
// standalone events become plain VEVENTs.
func FromStore(store *calendar.Store, name string) (*Calendar, error) {
	cal := NewCalendar(name)
	seenGroups := make(map[string]bool)

	for _, key := range store.Days() {
		for _, event := range store.Events(key) {
			if event.RecurringID != "" {
				if seenGroups[event.RecurringID] {
					continue
				}
				seenGroups[event.RecurringID] = true

				icalEvent, err := newEvent(event)
				if err != nil {
					return nil, fmt.Errorf("ical.FromStore: %w", err)
				}
				rule, err := groupRule(event, store.CountRecurringGroup(event.RecurringID), icalEvent.start)
				if err != nil {
					return nil, fmt.Errorf("ical.FromStore: %w", err)
				}
				icalEvent.rrule = rule
				cal.AddEvent(icalEvent)
				continue
			}

			icalEvent, err := newEvent(event)
			if err != nil {
				return nil, fmt.Errorf("ical.FromStore: %w", err)
			}
			cal.AddEvent(icalEvent)
		}
	}
	return cal, nil
}

func (c *Calendar) ToIcal() (string, error) {
	var sb strings.Builder
	writer := sb.WriteString

	writer("BEGIN:VCALENDAR\r\n")
	writer(fmt.Sprintf("PRODID:%s\r\n", c.prodID))
	writer("VERSION:2.0\r\n")
	if c.name != "" {
		writer(fmt.Sprintf("X-WR-CALNAME:%s\r\n", escapeText(c.name)))
	}

	for _, event := range c.events {
		eventStr, err := event.marshal()
		if err != nil {
			return "", fmt.Errorf("(*Calendar).ToIcal: can't marshal event %s: %w", event.id, err)
		}
		writer(eventStr)
	}
	writer("END:VCALENDAR\r\n")

	return sb.String(), nil
}

func (e *Event) marshal() (string, error) {
	if e.id == "" {
		return "", fmt.Errorf("(*Event).marshal: id not initialized")
	}
	if e.summary == "" {
		return "", fmt.Errorf("(*Event).marshal: summary not set")
	}

	var sb strings.Builder
	writer := sb.WriteString

	writer("BEGIN:VEVENT\r\n")
	writer(fmt.Sprintf("UID:%s\r\n", e.id))
	writer(fmt.Sprintf("SUMMARY:%s\r\n", escapeText(e.summary)))
	if e.description != "" {
		writer(fmt.Sprintf("DESCRIPTION:%s\r\n", escapeText(e.description)))
	}
	switch e.wholeDay {
	case true:
		writer(fmt.Sprintf("DTSTART;VALUE=DATE:%s\r\n", e.start.Format("20060102")))
		writer(fmt.Sprintf("DTEND;VALUE=DATE:%s\r\n", e.start.AddDate(0, 0, 1).Format("20060102")))
	case false:
		writer(fmt.Sprintf("DTSTART:%s\r\n", e.start.Format("20060102T150405")))
		writer(fmt.Sprintf("DTEND:%s\r\n", e.end.Format("20060102T150405")))
	}
	if e.rrule != nil {
		writer(fmt.Sprintf("RRULE:%s\r\n", e.rrule.String()))
	}
	writer("END:VEVENT\r\n")

	return sb.String(), nil
}

func newEvent(event calendar.Event) (Event, error) {
	day, err := event.Date.Time()
	if err != nil {
		return Event{}, fmt.Errorf("newEvent: %w", err)
	}

	icalEvent := Event{
		id:          event.ID,
		summary:     event.Title,
		description: event.Description,
		wholeDay:    event.AllDay,
		start:       day,
		end:         day,
	}
	if !event.AllDay {
		icalEvent.start = atClock(day, event.StartTime)
		icalEvent.end = atClock(day, event.EndTime)
		if !icalEvent.end.After(icalEvent.start) {
			icalEvent.end = icalEvent.start.Add(time.Hour)
		}
	}
	return icalEvent, nil
}

func groupRule(event calendar.Event, count int, anchor time.Time) (*rrule.RRule, error) {
	var freq rrule.Frequency
	switch event.Recurring {
	case calendar.FreqDaily:
		freq = rrule.DAILY
	case calendar.FreqWeekly:
		freq = rrule.WEEKLY
	case calendar.FreqMonthly:
		freq = rrule.MONTHLY
	case calendar.FreqYearly:
		freq = rrule.YEARLY
	default:
		return nil, fmt.Errorf("groupRule: group %s has frequency %q", event.RecurringID, event.Recurring)
	}

	rule, err := rrule.NewRRule(rrule.ROption{
		Freq:    freq,
		Count:   count,
		Dtstart: anchor,
	})
	if err != nil {
		return nil, fmt.Errorf("groupRule: %w", err)
	}
	return rule, nil
}

// "HH:MM" onto a calendar day; blank or unparsable clocks stay at midnight.
func atClock(day time.Time, clock string) time.Time {
	parsed, err := time.Parse("15:04", clock)
	if err != nil {
		return day
	}
	return time.Date(day.Year(), day.Month(), day.Day(),
		parsed.Hour(), parsed.Minute(), 0, 0, day.Location())
}

// RFC 5545 TEXT escaping.
func escapeText(s string) string {
	replacer := strings.NewReplacer(
		"\\", "\\\\",
		";", "\\;",
		",", "\\,",
		"\n", "\\n",
	)
	return replacer.Replace(s)
}
