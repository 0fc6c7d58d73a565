package client

import (
	"fmt"
	"strings"
)

func normalize(f *Fields) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Email = strings.TrimSpace(f.Email)
	f.Country = strings.TrimSpace(f.Country)
	f.Note = strings.TrimSpace(f.Note)

	if f.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if f.Email != "" && !strings.Contains(f.Email, "@") {
		return fmt.Errorf("%w: email %q is not an address", ErrInvalidInput, f.Email)
	}
	switch f.Status {
	case "":
		f.Status = StatusActive
	case StatusActive, StatusOnboarding, StatusInactive:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, f.Status)
	}
	return nil
}
