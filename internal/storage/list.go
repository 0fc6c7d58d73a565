package storage

import "context"

// List binds a storage key to a typed array. It satisfies the per-entity
// repository interfaces of the domain packages.
type List[T any] struct {
	adapter *Adapter
	key     string
}

// NewList creates a List stored under key.
func NewList[T any](adapter *Adapter, key string) *List[T] {
	return &List[T]{adapter: adapter, key: key}
}

// Load returns the stored array, empty when missing or corrupt.
func (l *List[T]) Load(ctx context.Context) ([]T, error) {
	return Load[T](ctx, l.adapter, l.key)
}

// Save overwrites the stored array.
func (l *List[T]) Save(ctx context.Context, items []T) error {
	return Save(ctx, l.adapter, l.key, items)
}

// Key returns the storage key backing the list.
func (l *List[T]) Key() string {
	return l.key
}
