package utils

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"moncal/src-server/calendar"
	"moncal/src-server/persist"
)

// Store state shared by the HTTP handlers. Kept separate from AppState
// construction: main wires the slot and the loaded store in after the
// database schema exists.
type storeState struct {
	StoreMu sync.Mutex
	Store   *calendar.Store
	Slot    persist.Slot
}

// SaveStore persists the current store into the durable slot, feeding the
// write latency metric. A failed save is logged and reported as false; the
// in-memory store stays authoritative either way.
func (as *AppState) SaveStore(ctx context.Context) bool {
	if as.Slot == nil {
		return false
	}
	startTimer := time.Now()
	if err := as.Slot.Save(ctx, as.Store); err != nil {
		slog.Error("can't save event store", "error", err)
		return false
	}
	select {
	case as.MetricChans.StoreSave <- float64(time.Since(startTimer).Microseconds()):
	default:
	}
	return true
}

// LoadStore reads the slot into AppState, distinguishing a fresh slot from
// a corrupted one: both yield a usable empty store, but corruption gets
// logged loudly.
func (as *AppState) LoadStore(ctx context.Context) {
	startTimer := time.Now()
	store, err := as.Slot.Load(ctx)
	if err != nil {
		slog.Error("event store slot is unreadable, starting empty", "error", err)
	}
	as.Store = store
	select {
	case as.MetricChans.StoreLoad <- float64(time.Since(startTimer).Microseconds()):
	default:
	}
}
