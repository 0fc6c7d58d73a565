package settings_test

import (
	"context"
	"testing"

	"github.com/ganot/freelanceflow/internal/domain/settings"
	"github.com/ganot/freelanceflow/internal/sqlite"
	"github.com/ganot/freelanceflow/internal/storage"
	"github.com/stretchr/testify/require"
)

func newService(t *testing.T, defaultCurrency string) (*settings.Service, *sqlite.KVRepository) {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	kv := sqlite.NewKVRepository(db)
	return settings.NewService(storage.NewAdapter(kv, nil), nil, nil, defaultCurrency), kv
}

func TestSettings_Defaults(t *testing.T) {
	svc, _ := newService(t, "")

	st, err := svc.Get(context.Background())
	require.NoError(t, err)
	require.Equal(t, "Rahul singh", st.DisplayName())
	require.Equal(t, "Welcome back, Rahul!", st.Welcome())
	require.Equal(t, "USD", st.Currency)
	require.True(t, st.EmailNotify)
}

func TestSettings_ConfiguredDefaultCurrency(t *testing.T) {
	svc, _ := newService(t, "eur")
	require.Equal(t, "EUR", svc.Currency(context.Background()))
}

func TestSettings_SaveMergesOverDefaults(t *testing.T) {
	ctx := context.Background()
	svc, kv := newService(t, "")

	require.NoError(t, kv.Set(ctx, storage.KeyUserSettings, `{"firstName":"Alex"}`))
	st, err := svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "Alex", st.FirstName)
	require.Equal(t, "singh", st.LastName)

	saved, err := svc.Save(ctx, settings.Settings{FirstName: " Alex ", LastName: "Doe", Email: "alex.doe@example.com", Currency: "gbp"})
	require.NoError(t, err)
	require.Equal(t, "GBP", saved.Currency)
	require.Equal(t, "en", saved.Language)

	st, err = svc.Get(ctx)
	require.NoError(t, err)
	require.Equal(t, "Alex Doe", st.DisplayName())
	require.Equal(t, "GBP", svc.Currency(ctx))
}

func TestSettings_SaveValidation(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, "")

	_, err := svc.Save(ctx, settings.Settings{Email: "nope"})
	require.ErrorIs(t, err, settings.ErrInvalidInput)

	_, err = svc.Save(ctx, settings.Settings{Currency: "DOUBLOONS"})
	require.ErrorIs(t, err, settings.ErrInvalidInput)
}

func TestSettings_Avatar(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, "")

	avatar, err := svc.Avatar(ctx)
	require.NoError(t, err)
	require.Empty(t, avatar)

	require.ErrorIs(t, svc.SetAvatar(ctx, "https://example.com/me.png"), settings.ErrInvalidAvatar)
	require.NoError(t, svc.SetAvatar(ctx, "data:image/png;base64,iVBORw0KGgo="))

	avatar, err = svc.Avatar(ctx)
	require.NoError(t, err)
	require.Equal(t, "data:image/png;base64,iVBORw0KGgo=", avatar)
}

func TestSettings_ThemeToggle(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService(t, "")

	theme, err := svc.Theme(ctx)
	require.NoError(t, err)
	require.Equal(t, settings.ThemeLight, theme)

	theme, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	require.Equal(t, settings.ThemeDark, theme)

	theme, err = svc.ToggleTheme(ctx)
	require.NoError(t, err)
	require.Equal(t, settings.ThemeLight, theme)

	require.ErrorIs(t, svc.SetTheme(ctx, "sepia"), settings.ErrInvalidInput)
}
