package calendar

import "errors"

// Error kinds for engine operations; wrap with fmt.Errorf("...: %w", ...)
// and check with errors.Is. No operation that returns one of these leaves
// the store partially mutated.
var (
	// Bad input shape, e.g. blank title or unknown enum value.
	ErrValidation = errors.New("invalid input")
	// Update target missing from its bucket.
	ErrNotFound = errors.New("event not found")
	// Imported/persisted bytes are not an encoded store.
	ErrFormat = errors.New("malformed event data")
	// Durable slot write/read failed; in-memory state stays authoritative.
	ErrStorage = errors.New("storage failure")
)
