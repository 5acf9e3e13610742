package calendar

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Store is the single source of truth for events: a mapping from DateKey to
// the ordered list of events filed on that day. A key is present iff its
// bucket is non-empty; mutation happens only through the methods below and
// each one either fully applies or fully rejects.
type Store struct {
	buckets map[DateKey][]Event
}

func NewStore() *Store {
	return &Store{buckets: make(map[DateKey][]Event)}
}

// Create files a new event on target's calendar day. A recurring form also
// mints one shared group ID and files one sibling per generated occurrence,
// each with its own ID and its own date key. Returns how many events were
// created in total.
func (s *Store) Create(form EventForm, target time.Time, horizon int) (int, error) {
	if err := form.validate(); err != nil {
		return 0, fmt.Errorf("(*Store).Create: %w", err)
	}

	var recurringID string
	if form.Recurring != FreqNone {
		recurringID = newRecurringID()
	}

	key := NewDateKey(target)
	s.buckets[key] = append(s.buckets[key], form.event(uuid.NewString(), recurringID, key))
	created := 1

	for _, occurrence := range Occurrences(target, form.Recurring, horizon) {
		siblingKey := NewDateKey(occurrence)
		s.buckets[siblingKey] = append(
			s.buckets[siblingKey],
			form.event(uuid.NewString(), recurringID, siblingKey),
		)
		created++
	}
	return created, nil
}

// Update replaces the event with the given ID inside one bucket, in place,
// keeping its ID and recurring group. Sibling instances are untouched.
func (s *Store) Update(key DateKey, eventID string, form EventForm) error {
	if err := form.validate(); err != nil {
		return fmt.Errorf("(*Store).Update: %w", err)
	}
	bucket, ok := s.buckets[key]
	if !ok {
		return fmt.Errorf("(*Store).Update: %w: no events on %s", ErrNotFound, key)
	}
	for i, event := range bucket {
		if event.ID == eventID {
			bucket[i] = form.event(event.ID, event.RecurringID, key)
			return nil
		}
	}
	return fmt.Errorf("(*Store).Update: %w: id %s on %s", ErrNotFound, eventID, key)
}

// DeleteOne removes the matching event from one bucket, pruning the bucket
// if it empties. Deleting something already gone is a no-op.
func (s *Store) DeleteOne(key DateKey, eventID string) {
	bucket, ok := s.buckets[key]
	if !ok {
		return
	}
	kept := bucket[:0]
	for _, event := range bucket {
		if event.ID != eventID {
			kept = append(kept, event)
		}
	}
	if len(kept) == 0 {
		delete(s.buckets, key)
		return
	}
	s.buckets[key] = kept
}

// DeleteRecurringGroup removes every event sharing the group ID, across all
// buckets, pruning the ones left empty. Returns how many were removed.
func (s *Store) DeleteRecurringGroup(recurringID string) int {
	if recurringID == "" {
		return 0
	}
	deleted := 0
	for key, bucket := range s.buckets {
		kept := bucket[:0]
		for _, event := range bucket {
			if event.RecurringID == recurringID {
				deleted++
				continue
			}
			kept = append(kept, event)
		}
		if len(kept) == 0 {
			delete(s.buckets, key)
			continue
		}
		s.buckets[key] = kept
	}
	return deleted
}

// CountRecurringGroup reports how many events share the group ID, so
// callers can confirm a delete-all before running it.
func (s *Store) CountRecurringGroup(recurringID string) int {
	if recurringID == "" {
		return 0
	}
	count := 0
	for _, bucket := range s.buckets {
		for _, event := range bucket {
			if event.RecurringID == recurringID {
				count++
			}
		}
	}
	return count
}

// Events returns a copy of one day's bucket, in insertion order.
func (s *Store) Events(key DateKey) []Event {
	bucket, ok := s.buckets[key]
	if !ok {
		return nil
	}
	out := make([]Event, len(bucket))
	copy(out, bucket)
	return out
}

// Days returns every non-empty date key in ascending order.
func (s *Store) Days() []DateKey {
	days := make([]DateKey, 0, len(s.buckets))
	for key := range s.buckets {
		days = append(days, key)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })
	return days
}

// Len is the total event count across all buckets.
func (s *Store) Len() int {
	n := 0
	for _, bucket := range s.buckets {
		n += len(bucket)
	}
	return n
}

func newRecurringID() string {
	return "recurring_" + uuid.NewString()
}
