package lists

import (
	"errors"
	"fmt"
)

// Error kinds returned by the engine. Test with errors.Is.
var (
	ErrValidation   = errors.New("validation failed")
	ErrUnauthorized = errors.New("unauthorized")
	ErrArchived     = errors.New("list is archived")
	ErrNotFound     = errors.New("list not found")

	// ErrOwnerRemoval is an ErrUnauthorized raised when the owner would be
	// removed from the members of their own list.
	ErrOwnerRemoval = fmt.Errorf("%w: owner cannot be removed from members", ErrUnauthorized)
)

// Error describes a rejected command.
type Error struct {
	// Op is the command name (e.g., "AddItem").
	Op string

	// ListID is the target list, empty for CreateList.
	ListID string

	// Err is one of the error kinds, possibly wrapped with detail.
	Err error
}

func (e *Error) Error() string {
	if e.ListID == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.ListID, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

func newError(op, listID string, err error) error {
	return &Error{Op: op, ListID: listID, Err: err}
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
