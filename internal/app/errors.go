package app

import "errors"

var (
	// ErrRecordNotFound is returned when a menu action targets a record that
	// no longer exists.
	ErrRecordNotFound = errors.New("record not found")
	// ErrConfirmationRequired is returned by destructive actions invoked
	// without confirmation.
	ErrConfirmationRequired = errors.New("confirmation required")
)

// ConfirmationError carries the prompt to show before a destructive action.
// It matches ErrConfirmationRequired with errors.Is.
type ConfirmationError struct {
	Prompt string
}

func (e *ConfirmationError) Error() string {
	return ErrConfirmationRequired.Error() + ": " + e.Prompt
}

func (e *ConfirmationError) Is(target error) bool {
	return target == ErrConfirmationRequired
}
