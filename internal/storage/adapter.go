package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ganot/freelanceflow/internal/repository"
)

// KV is the raw key-value backend.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}

// Adapter reads and writes JSON documents held in a KV backend.
type Adapter struct {
	kv     KV
	logger *slog.Logger

	mu sync.Mutex
	// held keeps, per key, the elements the last Load could not decode so
	// that Save writes them back instead of dropping them.
	held map[string][]json.RawMessage
}

// NewAdapter creates a new Adapter.
func NewAdapter(kv KV, logger *slog.Logger) *Adapter {
	return &Adapter{kv: kv, logger: logger, held: make(map[string][]json.RawMessage)}
}

func (a *Adapter) hold(key string, elems []json.RawMessage) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if len(elems) == 0 {
		delete(a.held, key)
		return
	}
	a.held[key] = elems
}

func (a *Adapter) heldFor(key string) []json.RawMessage {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.held[key]
}

// Load returns the array stored under key. A missing key, malformed JSON or a
// non-array value all read as an empty slice. Elements that fail to decode are
// left out of the result but kept raw, and the next Save of key appends them
// after the decoded items. Only backend failures are returned as errors.
func Load[T any](ctx context.Context, a *Adapter, key string) ([]T, error) {
	raw, err := a.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return []T{}, nil
		}
		return nil, fmt.Errorf("loading %s: %w", key, err)
	}

	var elems []json.RawMessage
	if err := json.Unmarshal([]byte(raw), &elems); err != nil {
		a.warn("discarding unreadable list", key, err)
		a.hold(key, nil)
		return []T{}, nil
	}

	items := make([]T, 0, len(elems))
	var unreadable []json.RawMessage
	for i, elem := range elems {
		if bytes.Equal(bytes.TrimSpace(elem), []byte("null")) {
			continue
		}
		var item T
		if err := json.Unmarshal(elem, &item); err != nil {
			a.warn(fmt.Sprintf("keeping unreadable element %d", i), key, err)
			unreadable = append(unreadable, elem)
			continue
		}
		items = append(items, item)
	}
	a.hold(key, unreadable)
	return items, nil
}

// Save serializes items, followed by any elements the last Load of key could
// not decode, and overwrites whatever is stored under key.
func Save[T any](ctx context.Context, a *Adapter, key string, items []T) error {
	held := a.heldFor(key)
	elems := make([]json.RawMessage, 0, len(items)+len(held))
	for _, item := range items {
		elem, err := json.Marshal(item)
		if err != nil {
			return fmt.Errorf("encoding %s: %w", key, err)
		}
		elems = append(elems, elem)
	}
	elems = append(elems, held...)
	data, err := json.Marshal(elems)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := a.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// LoadObject decodes the JSON object stored under key into out. It reports
// false, leaving out untouched, when the key is missing or unreadable.
func (a *Adapter) LoadObject(ctx context.Context, key string, out any) (bool, error) {
	raw, err := a.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("loading %s: %w", key, err)
	}
	if err := json.Unmarshal([]byte(raw), out); err != nil {
		a.warn("discarding unreadable object", key, err)
		return false, nil
	}
	return true, nil
}

// SaveObject serializes v and overwrites whatever is stored under key.
func (a *Adapter) SaveObject(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encoding %s: %w", key, err)
	}
	if err := a.kv.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// GetString returns the plain string stored under key and whether it exists.
func (a *Adapter) GetString(ctx context.Context, key string) (string, bool, error) {
	raw, err := a.kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("loading %s: %w", key, err)
	}
	return raw, true, nil
}

// SetString stores a plain string under key.
func (a *Adapter) SetString(ctx context.Context, key, value string) error {
	if err := a.kv.Set(ctx, key, value); err != nil {
		return fmt.Errorf("saving %s: %w", key, err)
	}
	return nil
}

// Remove deletes key.
func (a *Adapter) Remove(ctx context.Context, key string) error {
	if err := a.kv.Delete(ctx, key); err != nil {
		return fmt.Errorf("removing %s: %w", key, err)
	}
	return nil
}

// EnsureInitialized writes the dataInitialized sentinel on first run. It never
// seeds demo data. It reports whether this call performed the initialization.
func (a *Adapter) EnsureInitialized(ctx context.Context) (bool, error) {
	value, ok, err := a.GetString(ctx, KeyDataInitialized)
	if err != nil {
		return false, err
	}
	if ok && value == "true" {
		return false, nil
	}
	if err := a.SetString(ctx, KeyDataInitialized, "true"); err != nil {
		return false, err
	}
	return true, nil
}

func (a *Adapter) warn(msg, key string, err error) {
	if a.logger != nil {
		a.logger.Warn(msg, "key", key, "error", err)
	}
}
