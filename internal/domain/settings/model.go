package settings

import "strings"

// Settings is the profile and preference record of the single user.
type Settings struct {
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	Email         string `json:"email"`
	Bio           string `json:"bio"`
	Currency      string `json:"currency"`
	Language      string `json:"language"`
	EmailNotify   bool   `json:"emailNotify"`
	DesktopNotify bool   `json:"desktopNotify"`
}

// Defaults returns the settings used before anything is saved.
func Defaults() Settings {
	return Settings{
		FirstName:     "Rahul",
		LastName:      "singh",
		Currency:      "USD",
		Language:      "en",
		EmailNotify:   true,
		DesktopNotify: true,
	}
}

// DisplayName joins first and last name.
func (s Settings) DisplayName() string {
	return strings.TrimSpace(s.FirstName + " " + s.LastName)
}

// Welcome returns the dashboard greeting.
func (s Settings) Welcome() string {
	name := strings.TrimSpace(s.FirstName)
	if name == "" {
		name = "there"
	}
	return "Welcome back, " + name + "!"
}

// Theme is the persisted colour scheme.
type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)
