package calendar

import (
	"encoding/json"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// Wire format: a JSON object mapping date keys to arrays of event records,
// the same shape the durable slot, the export file and the import contract
// all share.

// wireEvent tolerates the field looseness of older exports: numeric ids
// and null recurring group ids.
type wireEvent struct {
	ID          any       `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	AllDay      bool      `json:"allDay"`
	Category    Category  `json:"category"`
	Recurring   Frequency `json:"recurring"`
	RecurringID *string   `json:"recurringId"`
	Date        DateKey   `json:"date"`
}

// Encode serializes the store as pretty-printed JSON for the durable slot
// and the export file.
func (s *Store) Encode() ([]byte, error) {
	data, err := json.MarshalIndent(s.buckets, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("(*Store).Encode: %w", err)
	}
	return data, nil
}

// DecodeStore parses wire-format bytes into a fresh store. Anything that is
// not an object of date-key → event-array fails with ErrFormat.
func DecodeStore(raw []byte) (*Store, error) {
	var wire map[DateKey][]wireEvent
	if err := json.Unmarshal(raw, &wire); err != nil {
		return nil, fmt.Errorf("DecodeStore: %w: %s", ErrFormat, err.Error())
	}
	if wire == nil {
		return nil, fmt.Errorf("DecodeStore: %w: not an event mapping", ErrFormat)
	}

	store := NewStore()
	for key, bucket := range wire {
		if !key.Valid() {
			return nil, fmt.Errorf("DecodeStore: %w: bad date key %q", ErrFormat, key)
		}
		if len(bucket) == 0 {
			continue
		}
		events := make([]Event, 0, len(bucket))
		for _, w := range bucket {
			events = append(events, w.event(key))
		}
		store.buckets[key] = events
	}
	return store, nil
}

// Import atomically replaces the whole store with the parsed content; on
// any parse failure the store is left untouched.
func (s *Store) Import(raw []byte) error {
	imported, err := DecodeStore(raw)
	if err != nil {
		return fmt.Errorf("(*Store).Import: %w", err)
	}
	s.buckets = imported.buckets
	return nil
}

// ExportFile renders the store as a downloadable file: pretty-printed JSON
// named after the current date.
func (s *Store) ExportFile(now time.Time) (string, []byte, error) {
	data, err := s.Encode()
	if err != nil {
		return "", nil, fmt.Errorf("(*Store).ExportFile: %w", err)
	}
	return fmt.Sprintf("calendar-events-%s.json", NewDateKey(now)), data, nil
}

func (w *wireEvent) event(key DateKey) Event {
	var recurringID string
	if w.RecurringID != nil {
		recurringID = *w.RecurringID
	}
	return Event{
		ID:          w.eventID(),
		Title:       w.Title,
		Description: w.Description,
		StartTime:   w.StartTime,
		EndTime:     w.EndTime,
		AllDay:      w.AllDay,
		Category:    w.Category,
		Recurring:   w.Recurring,
		RecurringID: recurringID,
		Date:        key,
	}
}

func (w *wireEvent) eventID() string {
	switch id := w.ID.(type) {
	case string:
		if id != "" {
			return id
		}
		return uuid.NewString()
	case float64:
		// ids from the old web client are epoch-millis plus a random
		// fraction
		return strconv.FormatFloat(id, 'f', -1, 64)
	default:
		return uuid.NewString()
	}
}
