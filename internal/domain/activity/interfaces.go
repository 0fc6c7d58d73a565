package activity

import "context"

// Repository provides persistence operations for activity entries.
type Repository interface {
	Log(ctx context.Context, entry *ActivityEntry) error
	List(ctx context.Context, opts ListActivityOptions) ([]ActivityEntry, error)
}

// Notifier records user-facing notices for mutations. *Service implements it.
type Notifier interface {
	Notify(ctx context.Context, entity, recordID string, typ ActivityType, summary string, details any)
}
