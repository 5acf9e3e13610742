package calendar

import "fmt"

type Category string

const (
	CategoryPersonal  Category = "personal"
	CategoryWork      Category = "work"
	CategoryImportant Category = "important"
	CategoryOther     Category = "other"
)

func ParseCategory(s string) (Category, error) {
	switch c := Category(s); c {
	case CategoryPersonal, CategoryWork, CategoryImportant, CategoryOther:
		return c, nil
	case "":
		return CategoryPersonal, nil
	default:
		return "", fmt.Errorf("ParseCategory: %w: unknown category %q", ErrValidation, s)
	}
}

type Frequency string

const (
	FreqNone    Frequency = "none"
	FreqDaily   Frequency = "daily"
	FreqWeekly  Frequency = "weekly"
	FreqMonthly Frequency = "monthly"
	FreqYearly  Frequency = "yearly"
)

func ParseFrequency(s string) (Frequency, error) {
	switch f := Frequency(s); f {
	case FreqNone, FreqDaily, FreqWeekly, FreqMonthly, FreqYearly:
		return f, nil
	case "":
		return FreqNone, nil
	default:
		return "", fmt.Errorf("ParseFrequency: %w: unknown frequency %q", ErrValidation, s)
	}
}

// Event is one calendar entry filed under a single date bucket. Instances
// generated from one recurring creation share a RecurringID; standalone
// events carry an empty one. StartTime/EndTime are wall-clock "HH:MM"
// strings and are ignored when AllDay is set.
type Event struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	StartTime   string    `json:"startTime"`
	EndTime     string    `json:"endTime"`
	AllDay      bool      `json:"allDay"`
	Category    Category  `json:"category"`
	Recurring   Frequency `json:"recurring"`
	RecurringID string    `json:"recurringId,omitempty"`
	Date        DateKey   `json:"date"`
}

// EventForm holds the caller-supplied fields of a create/update; IDs, the
// recurring group and the bucket key are minted by the store.
type EventForm struct {
	Title       string
	Description string
	StartTime   string
	EndTime     string
	AllDay      bool
	Category    Category
	Recurring   Frequency
}

// validate also normalizes blank enum fields onto their defaults.
func (f *EventForm) validate() error {
	if f.Title == "" {
		return fmt.Errorf("(*EventForm).validate: %w: title is blank", ErrValidation)
	}
	category, err := ParseCategory(string(f.Category))
	if err != nil {
		return fmt.Errorf("(*EventForm).validate: %w", err)
	}
	f.Category = category
	recurring, err := ParseFrequency(string(f.Recurring))
	if err != nil {
		return fmt.Errorf("(*EventForm).validate: %w", err)
	}
	f.Recurring = recurring
	return nil
}

func (f *EventForm) event(id string, recurringID string, date DateKey) Event {
	return Event{
		ID:          id,
		Title:       f.Title,
		Description: f.Description,
		StartTime:   f.StartTime,
		EndTime:     f.EndTime,
		AllDay:      f.AllDay,
		Category:    f.Category,
		Recurring:   f.Recurring,
		RecurringID: recurringID,
		Date:        date,
	}
}
