package invoice

import "errors"

var (
	// ErrInvoiceNotFound indicates the invoice doesn't exist.
	ErrInvoiceNotFound = errors.New("invoice not found")
	// ErrInvalidInput indicates invalid invoice input.
	ErrInvalidInput = errors.New("invalid invoice input")
)
