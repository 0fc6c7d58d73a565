package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/ganot/freelanceflow/internal/currency"
	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/storage"
)

// Notices shown after settings changes.
const (
	MsgSaved         = "Settings saved successfully!"
	MsgAvatarUpdated = "Profile picture updated!"
)

// Service manages user settings, avatar and theme.
type Service struct {
	mu              sync.Mutex
	store           Store
	activities      activity.Notifier
	logger          *slog.Logger
	defaultCurrency string
}

// NewService creates a new settings service. defaultCurrency overrides the
// built-in USD default when set.
func NewService(store Store, activities activity.Notifier, logger *slog.Logger, defaultCurrency string) *Service {
	return &Service{store: store, activities: activities, logger: logger, defaultCurrency: defaultCurrency}
}

func (s *Service) defaults() Settings {
	d := Defaults()
	if currency.Valid(s.defaultCurrency) {
		d.Currency = strings.ToUpper(s.defaultCurrency)
	}
	return d
}

// Get returns the stored settings merged over the defaults.
func (s *Service) Get(ctx context.Context) (Settings, error) {
	out := s.defaults()
	if _, err := s.store.LoadObject(ctx, storage.KeyUserSettings, &out); err != nil {
		return Settings{}, fmt.Errorf("loading settings: %w", err)
	}
	if !currency.Valid(out.Currency) {
		out.Currency = s.defaults().Currency
	}
	return out, nil
}

// Currency returns the configured currency code.
func (s *Service) Currency(ctx context.Context) string {
	st, err := s.Get(ctx)
	if err != nil {
		if s.logger != nil {
			s.logger.Warn("falling back to default currency", "error", err)
		}
		return s.defaults().Currency
	}
	return st.Currency
}

// Save validates and overwrites the settings.
func (s *Service) Save(ctx context.Context, in Settings) (Settings, error) {
	in.FirstName = strings.TrimSpace(in.FirstName)
	in.LastName = strings.TrimSpace(in.LastName)
	in.Email = strings.TrimSpace(in.Email)
	in.Bio = strings.TrimSpace(in.Bio)
	in.Currency = strings.ToUpper(strings.TrimSpace(in.Currency))
	in.Language = strings.TrimSpace(in.Language)

	if in.Email != "" && !strings.Contains(in.Email, "@") {
		return Settings{}, fmt.Errorf("%w: email %q is not an address", ErrInvalidInput, in.Email)
	}
	if in.Currency == "" {
		in.Currency = s.defaults().Currency
	}
	if !currency.Valid(in.Currency) {
		return Settings{}, fmt.Errorf("%w: unknown currency %q", ErrInvalidInput, in.Currency)
	}
	if in.Language == "" {
		in.Language = "en"
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveObject(ctx, storage.KeyUserSettings, in); err != nil {
		return Settings{}, fmt.Errorf("saving settings: %w", err)
	}
	if s.activities != nil {
		s.activities.Notify(ctx, activity.EntitySettings, "", activity.TypeSaved, MsgSaved, nil)
	}
	return in, nil
}

// Avatar returns the stored avatar data URI, or "" when none is set.
func (s *Service) Avatar(ctx context.Context) (string, error) {
	avatar, _, err := s.store.GetString(ctx, storage.KeyUserAvatar)
	if err != nil {
		return "", fmt.Errorf("loading avatar: %w", err)
	}
	return avatar, nil
}

// SetAvatar stores an image data URI.
func (s *Service) SetAvatar(ctx context.Context, dataURI string) error {
	dataURI = strings.TrimSpace(dataURI)
	if !strings.HasPrefix(dataURI, "data:image/") || !strings.Contains(dataURI, ",") {
		return ErrInvalidAvatar
	}
	if err := s.store.SetString(ctx, storage.KeyUserAvatar, dataURI); err != nil {
		return fmt.Errorf("saving avatar: %w", err)
	}
	if s.activities != nil {
		s.activities.Notify(ctx, activity.EntitySettings, "", activity.TypeSaved, MsgAvatarUpdated, nil)
	}
	return nil
}

// Theme returns the stored theme, light by default.
func (s *Service) Theme(ctx context.Context) (Theme, error) {
	value, _, err := s.store.GetString(ctx, storage.KeyTheme)
	if err != nil {
		return "", fmt.Errorf("loading theme: %w", err)
	}
	if Theme(value) == ThemeDark {
		return ThemeDark, nil
	}
	return ThemeLight, nil
}

// SetTheme persists theme.
func (s *Service) SetTheme(ctx context.Context, theme Theme) error {
	if theme != ThemeLight && theme != ThemeDark {
		return fmt.Errorf("%w: unknown theme %q", ErrInvalidInput, theme)
	}
	if err := s.store.SetString(ctx, storage.KeyTheme, string(theme)); err != nil {
		return fmt.Errorf("saving theme: %w", err)
	}
	return nil
}

// ToggleTheme flips between light and dark and returns the new theme.
func (s *Service) ToggleTheme(ctx context.Context) (Theme, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, err := s.Theme(ctx)
	if err != nil {
		return "", err
	}
	next := ThemeDark
	if current == ThemeDark {
		next = ThemeLight
	}
	if err := s.SetTheme(ctx, next); err != nil {
		return "", err
	}
	return next, nil
}
