package settings

import "context"

// Store persists single-value documents. *storage.Adapter implements it.
type Store interface {
	LoadObject(ctx context.Context, key string, out any) (bool, error)
	SaveObject(ctx context.Context, key string, v any) error
	GetString(ctx context.Context, key string) (string, bool, error)
	SetString(ctx context.Context, key, value string) error
}
