package mcp

import (
	"errors"
	"fmt"

	"github.com/ganot/freelanceflow/internal/app"
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/domain/settings"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
	"github.com/ganot/freelanceflow/internal/timer"
)

// APIError represents an MCP error response.
type APIError struct {
	Code         string `json:"code"`
	Message      string `json:"message"`
	RecoveryHint string `json:"recovery_hint,omitempty"`
}

func (e *APIError) Error() string {
	if e.RecoveryHint == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.RecoveryHint)
}

// MapError maps domain errors to MCP error codes.
func MapError(err error) *APIError {
	if err == nil {
		return nil
	}
	var confirmErr *app.ConfirmationError
	switch {
	case errors.As(err, &confirmErr):
		return &APIError{Code: "CONFIRMATION_REQUIRED", Message: confirmErr.Prompt, RecoveryHint: "Call again with confirm=true"}
	case errors.Is(err, client.ErrClientNotFound):
		return &APIError{Code: "CLIENT_NOT_FOUND", Message: "client not found", RecoveryHint: "Use list_clients to find the id"}
	case errors.Is(err, project.ErrProjectNotFound):
		return &APIError{Code: "PROJECT_NOT_FOUND", Message: "project not found", RecoveryHint: "Use list_projects to find the id"}
	case errors.Is(err, invoice.ErrInvoiceNotFound):
		return &APIError{Code: "INVOICE_NOT_FOUND", Message: "invoice not found", RecoveryHint: "Use list_invoices to find the number"}
	case errors.Is(err, timeentry.ErrTimeEntryNotFound):
		return &APIError{Code: "TIME_ENTRY_NOT_FOUND", Message: "time entry not found", RecoveryHint: "Use list_time_entries to find the id"}
	case errors.Is(err, client.ErrNoEmail):
		return &APIError{Code: "NO_EMAIL", Message: err.Error()}
	case errors.Is(err, client.ErrInvalidInput),
		errors.Is(err, project.ErrInvalidInput),
		errors.Is(err, invoice.ErrInvalidInput),
		errors.Is(err, timeentry.ErrInvalidInput),
		errors.Is(err, settings.ErrInvalidInput):
		return &APIError{Code: "INVALID_INPUT", Message: err.Error()}
	case errors.Is(err, timer.ErrAlreadyRunning), errors.Is(err, timer.ErrNotRunning):
		return &APIError{Code: "TIMER_STATE", Message: err.Error()}
	default:
		return nil
	}
}

func mapError(err error) error {
	if apiErr := MapError(err); apiErr != nil {
		return apiErr
	}
	return err
}
