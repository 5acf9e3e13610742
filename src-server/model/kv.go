package model

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
)

// KVSlot is one durable key-value slot, the localStorage-like persistence
// target the engine serializes the whole event store into.
type KVSlot struct {
	bun.BaseModel `bun:"table:kv_slots"`

	Key       string `bun:"key,pk,notnull"`
	Value     string `bun:"value,notnull"`
	UpdatedAt int64  `bun:"updated_at"`
}

func (s *KVSlot) Upsert(ctx context.Context, db bun.IDB) error {
	if s.Key == "" {
		return fmt.Errorf("(*KVSlot).Upsert: key is blank")
	}
	s.UpdatedAt = time.Now().UTC().Unix()

	if _, err := db.NewInsert().
		Model(s).
		On("CONFLICT (key) DO UPDATE").
		Set("value = EXCLUDED.value").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx); err != nil {
		return fmt.Errorf("(*KVSlot).Upsert: %w", err)
	}
	return nil
}
