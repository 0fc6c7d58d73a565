package invoice

import (
	"fmt"
	"strings"
	"time"

	"github.com/ganot/freelanceflow/internal/currency"
)

func normalize(f *Fields) error {
	f.Client = strings.TrimSpace(f.Client)
	f.Date = strings.TrimSpace(f.Date)
	f.Due = strings.TrimSpace(f.Due)
	f.Note = strings.TrimSpace(f.Note)

	if f.Client == "" {
		return fmt.Errorf("%w: client is required", ErrInvalidInput)
	}
	for _, d := range []string{f.Date, f.Due} {
		if d == "" {
			continue
		}
		if _, err := time.Parse(time.DateOnly, d); err != nil {
			return fmt.Errorf("%w: %q is not a YYYY-MM-DD date", ErrInvalidInput, d)
		}
	}
	if f.Amount.IsNegative() {
		return fmt.Errorf("%w: amount must not be negative", ErrInvalidInput)
	}
	if f.Amount.GreaterThan(currency.MaxAmount) {
		return fmt.Errorf("%w: amount must not exceed %s", ErrInvalidInput, currency.MaxAmount.String())
	}
	switch f.Status {
	case "":
		f.Status = StatusPending
	case StatusPaid, StatusPending, StatusOverdue:
	default:
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, f.Status)
	}
	return nil
}
