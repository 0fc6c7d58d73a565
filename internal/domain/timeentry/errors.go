package timeentry

import "errors"

var (
	// ErrTimeEntryNotFound indicates the entry doesn't exist.
	ErrTimeEntryNotFound = errors.New("time entry not found")
	// ErrInvalidInput indicates invalid time entry input.
	ErrInvalidInput = errors.New("invalid time entry input")
)
