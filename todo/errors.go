package todo

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is wrapped by every lookup failure.
	ErrNotFound = errors.New("not found")

	// ErrProjectNotFound is returned when no project matches an ID.
	ErrProjectNotFound = fmt.Errorf("project %w", ErrNotFound)

	// ErrTaskNotFound is returned when no task matches an ID.
	ErrTaskNotFound = fmt.Errorf("task %w", ErrNotFound)

	// ErrAmbiguousIDPrefix is returned when an ID prefix matches several entities.
	ErrAmbiguousIDPrefix = errors.New("ambiguous ID prefix")

	// ErrCorruptData is returned when the persisted payload cannot be decoded.
	ErrCorruptData = errors.New("corrupt project data")
)

// PersistenceError reports a failed read or write of the durable store.
// In-memory changes made before a failed write are kept.
type PersistenceError struct {
	Op  string
	Key string
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Key, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}
