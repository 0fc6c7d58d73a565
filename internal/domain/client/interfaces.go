package client

import "context"

// Repository persists the client array as a whole.
type Repository interface {
	Load(ctx context.Context) ([]Client, error)
	Save(ctx context.Context, clients []Client) error
}
