package persist

import (
	"context"

	"moncal/src-server/calendar"
)

// SlotKey is the single durable key the whole event store is serialized
// under, kept identical to the old web client's localStorage key so its
// data can be carried over.
const SlotKey = "calendarEvents"

// Slot is the injected persistence collaborator: one durable key-value
// slot holding the encoded store. Implementations must make Load usable
// even when nothing was ever saved.
type Slot interface {
	// Load reads the slot. An absent slot is not an error: it yields an
	// empty store and a nil error. A present-but-corrupt slot also yields
	// an empty store, with an error wrapping calendar.ErrFormat so the
	// caller can tell "empty because new" from "empty because corrupted".
	Load(ctx context.Context) (*calendar.Store, error)
	// Save writes the encoded store. Failures wrap calendar.ErrStorage
	// and leave the in-memory store authoritative.
	Save(ctx context.Context, store *calendar.Store) error
}
