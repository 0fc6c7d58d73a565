package project

import "context"

// Repository persists the project array as a whole.
type Repository interface {
	Load(ctx context.Context) ([]Project, error)
	Save(ctx context.Context, projects []Project) error
}
