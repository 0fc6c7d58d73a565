package project

import (
	"fmt"
	"strings"
	"time"
)

func normalize(f *Fields) error {
	f.Name = strings.TrimSpace(f.Name)
	f.Client = strings.TrimSpace(f.Client)
	f.Deadline = strings.TrimSpace(f.Deadline)
	f.Note = strings.TrimSpace(f.Note)

	if f.Name == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if f.Deadline != "" {
		if _, err := time.Parse(time.DateOnly, f.Deadline); err != nil {
			return fmt.Errorf("%w: deadline %q is not a YYYY-MM-DD date", ErrInvalidInput, f.Deadline)
		}
	}
	if f.Progress < 0 || f.Progress > 100 {
		return fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidInput)
	}
	switch f.Status {
	case "":
		f.Status = StatusPending
	case StatusActive, StatusPending, StatusReview, StatusCompleted:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, f.Status)
	}
	return nil
}
