package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"moncal/src-server/calendar"
	"moncal/src-server/model"

	"github.com/uptrace/bun"
)

// SqliteSlot persists the encoded store into a single row of the kv_slots
// table.
type SqliteSlot struct {
	db  bun.IDB
	key string
}

func NewSqliteSlot(db bun.IDB) *SqliteSlot {
	return &SqliteSlot{db: db, key: SlotKey}
}

var _ Slot = (*SqliteSlot)(nil)

func (s *SqliteSlot) Load(ctx context.Context) (*calendar.Store, error) {
	slotModel := new(model.KVSlot)
	if err := s.db.NewSelect().
		Model(slotModel).
		Where("key = ?", s.key).
		Scan(ctx); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return calendar.NewStore(), nil
		}
		return calendar.NewStore(), fmt.Errorf("(*SqliteSlot).Load: %w: %s", calendar.ErrStorage, err.Error())
	}

	store, err := calendar.DecodeStore([]byte(slotModel.Value))
	if err != nil {
		return calendar.NewStore(), fmt.Errorf("(*SqliteSlot).Load: %w", err)
	}
	return store, nil
}

func (s *SqliteSlot) Save(ctx context.Context, store *calendar.Store) error {
	data, err := store.Encode()
	if err != nil {
		return fmt.Errorf("(*SqliteSlot).Save: %w", err)
	}
	slotModel := model.KVSlot{
		Key:   s.key,
		Value: string(data),
	}
	if err := slotModel.Upsert(ctx, s.db); err != nil {
		return fmt.Errorf("(*SqliteSlot).Save: %w: %s", calendar.ErrStorage, err.Error())
	}
	return nil
}
