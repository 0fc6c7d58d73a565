package timeentry

import "context"

// Repository persists the time entry array as a whole.
type Repository interface {
	Load(ctx context.Context) ([]TimeEntry, error)
	Save(ctx context.Context, entries []TimeEntry) error
}
