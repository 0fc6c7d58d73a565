package storage_test

import (
	"context"
	"errors"
	"testing"

	"github.com/ganot/freelanceflow/internal/sqlite"
	"github.com/ganot/freelanceflow/internal/storage"
	"github.com/stretchr/testify/require"
)

type note struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

func newAdapter(t *testing.T) (*storage.Adapter, *sqlite.KVRepository) {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	kv := sqlite.NewKVRepository(db)
	return storage.NewAdapter(kv, nil), kv
}

func TestLoad_MissingKeyIsEmpty(t *testing.T) {
	adapter, _ := newAdapter(t)

	items, err := storage.Load[note](context.Background(), adapter, storage.KeyClients)
	require.NoError(t, err)
	require.NotNil(t, items)
	require.Empty(t, items)
}

func TestLoad_CorruptValuesAreEmpty(t *testing.T) {
	ctx := context.Background()
	adapter, kv := newAdapter(t)

	for _, raw := range []string{`not json`, `{"name":"x"}`, `"text"`, `42`, ``} {
		require.NoError(t, kv.Set(ctx, storage.KeyClients, raw))
		items, err := storage.Load[note](ctx, adapter, storage.KeyClients)
		require.NoError(t, err, raw)
		require.Empty(t, items, raw)
	}
}

func TestLoad_SkipsUnreadableElements(t *testing.T) {
	ctx := context.Background()
	adapter, kv := newAdapter(t)

	require.NoError(t, kv.Set(ctx, storage.KeyClients, `[{"id":"1","name":"a"},null,"oops",{"id":"2","name":"b"}]`))
	items, err := storage.Load[note](ctx, adapter, storage.KeyClients)
	require.NoError(t, err)
	require.Equal(t, []note{{ID: "1", Name: "a"}, {ID: "2", Name: "b"}}, items)
}

func TestSave_KeepsUnreadableElements(t *testing.T) {
	ctx := context.Background()
	adapter, kv := newAdapter(t)
	list := storage.NewList[note](adapter, storage.KeyClients)

	require.NoError(t, kv.Set(ctx, storage.KeyClients, `[{"name":"A"},{"name":42},{"name":"B"}]`))
	items, err := list.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []note{{Name: "A"}, {Name: "B"}}, items)

	items = append([]note{{Name: "New"}}, items...)
	require.NoError(t, list.Save(ctx, items))

	raw, err := kv.Get(ctx, storage.KeyClients)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"","name":"New"},{"id":"","name":"A"},{"id":"","name":"B"},{"name":42}]`, raw)

	// a second cycle neither loses nor duplicates the element
	items, err = list.Load(ctx)
	require.NoError(t, err)
	require.Len(t, items, 3)
	require.NoError(t, list.Save(ctx, items[1:]))

	raw, err = kv.Get(ctx, storage.KeyClients)
	require.NoError(t, err)
	require.JSONEq(t, `[{"id":"","name":"A"},{"id":"","name":"B"},{"name":42}]`, raw)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	ctx := context.Background()
	adapter, _ := newAdapter(t)
	list := storage.NewList[note](adapter, storage.KeyProjects)

	want := []note{{ID: "3", Name: "c"}, {ID: "1", Name: "a"}, {ID: "2", Name: "b"}}
	require.NoError(t, list.Save(ctx, want))

	got, err := list.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, want, got)

	require.NoError(t, list.Save(ctx, nil))
	got, err = list.Load(ctx)
	require.NoError(t, err)
	require.Empty(t, got)
}

func TestObjectAndStringHelpers(t *testing.T) {
	ctx := context.Background()
	adapter, kv := newAdapter(t)

	var out note
	ok, err := adapter.LoadObject(ctx, storage.KeyUserSettings, &out)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, adapter.SaveObject(ctx, storage.KeyUserSettings, note{Name: "Rahul"}))
	ok, err = adapter.LoadObject(ctx, storage.KeyUserSettings, &out)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "Rahul", out.Name)

	require.NoError(t, kv.Set(ctx, storage.KeyUserSettings, "{broken"))
	ok, err = adapter.LoadObject(ctx, storage.KeyUserSettings, &out)
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, adapter.SetString(ctx, storage.KeyTheme, "dark"))
	theme, ok, err := adapter.GetString(ctx, storage.KeyTheme)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, "dark", theme)

	require.NoError(t, adapter.Remove(ctx, storage.KeyTheme))
	_, ok, err = adapter.GetString(ctx, storage.KeyTheme)
	require.NoError(t, err)
	require.False(t, ok)
}

func TestEnsureInitialized(t *testing.T) {
	ctx := context.Background()
	adapter, kv := newAdapter(t)

	first, err := adapter.EnsureInitialized(ctx)
	require.NoError(t, err)
	require.True(t, first)

	second, err := adapter.EnsureInitialized(ctx)
	require.NoError(t, err)
	require.False(t, second)

	_, err = kv.Get(ctx, storage.KeyClients)
	require.Error(t, err, "initialization must not seed data")
}

type failingKV struct{}

func (failingKV) Get(context.Context, string) (string, error) { return "", errors.New("io failure") }
func (failingKV) Set(context.Context, string, string) error   { return errors.New("io failure") }
func (failingKV) Delete(context.Context, string) error        { return errors.New("io failure") }

func TestBackendFailuresSurface(t *testing.T) {
	ctx := context.Background()
	adapter := storage.NewAdapter(failingKV{}, nil)

	_, err := storage.Load[note](ctx, adapter, storage.KeyInvoices)
	require.Error(t, err)
	require.Error(t, storage.Save(ctx, adapter, storage.KeyInvoices, []note{}))
}
