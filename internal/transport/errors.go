package transport

import (
	"errors"
	"net/http"

	"github.com/ganot/freelanceflow/internal/app"
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/domain/settings"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
	"github.com/ganot/freelanceflow/internal/render"
	"github.com/ganot/freelanceflow/internal/timer"
	"github.com/ganot/freelanceflow/internal/ui/form"
	"github.com/ganot/freelanceflow/internal/ui/menu"
)

// ErrBadRequest indicates a malformed request body or parameter.
var ErrBadRequest = errors.New("bad request")

var notFoundErrors = []error{
	app.ErrRecordNotFound,
	client.ErrClientNotFound,
	project.ErrProjectNotFound,
	invoice.ErrInvoiceNotFound,
	timeentry.ErrTimeEntryNotFound,
	render.ErrUnknownPage,
	form.ErrUnknownEntity,
	menu.ErrUnknownMenu,
	menu.ErrUnknownAction,
}

var invalidErrors = []error{
	ErrBadRequest,
	form.ErrMissingField,
	client.ErrInvalidInput,
	client.ErrNoEmail,
	project.ErrInvalidInput,
	invoice.ErrInvalidInput,
	timeentry.ErrInvalidInput,
	settings.ErrInvalidInput,
	settings.ErrInvalidAvatar,
}

var conflictErrors = []error{
	app.ErrConfirmationRequired,
	menu.ErrMenuClosed,
	timer.ErrAlreadyRunning,
	timer.ErrNotRunning,
}

func classify(err error) (int, string) {
	switch {
	case matchesAny(err, notFoundErrors):
		return http.StatusNotFound, "not_found"
	case errors.Is(err, app.ErrConfirmationRequired):
		return http.StatusConflict, "confirmation_required"
	case matchesAny(err, conflictErrors):
		return http.StatusConflict, "conflict"
	case matchesAny(err, invalidErrors):
		return http.StatusBadRequest, "invalid_input"
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	default:
		return http.StatusInternalServerError, "internal"
	}
}

func matchesAny(err error, targets []error) bool {
	for _, target := range targets {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func confirmationPrompt(err error) (string, bool) {
	var confirmErr *app.ConfirmationError
	if errors.As(err, &confirmErr) {
		return confirmErr.Prompt, true
	}
	return "", false
}
