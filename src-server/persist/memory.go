package persist

import (
	"context"
	"fmt"

	"moncal/src-server/calendar"
)

// MemorySlot is an in-memory Slot for tests and throwaway runs.
type MemorySlot struct {
	value []byte
	// FailSaves makes every Save return a storage error.
	FailSaves bool
}

var _ Slot = (*MemorySlot)(nil)

func (m *MemorySlot) Load(ctx context.Context) (*calendar.Store, error) {
	if m.value == nil {
		return calendar.NewStore(), nil
	}
	store, err := calendar.DecodeStore(m.value)
	if err != nil {
		return calendar.NewStore(), fmt.Errorf("(*MemorySlot).Load: %w", err)
	}
	return store, nil
}

func (m *MemorySlot) Save(ctx context.Context, store *calendar.Store) error {
	if m.FailSaves {
		return fmt.Errorf("(*MemorySlot).Save: %w: slot rejects writes", calendar.ErrStorage)
	}
	data, err := store.Encode()
	if err != nil {
		return fmt.Errorf("(*MemorySlot).Save: %w", err)
	}
	m.value = data
	return nil
}

// Seed overwrites the raw slot contents, bypassing encoding, so tests can
// plant corrupt or legacy payloads.
func (m *MemorySlot) Seed(raw []byte) {
	m.value = raw
}
