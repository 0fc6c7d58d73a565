package invoice

import "context"

// Repository persists the invoice array as a whole.
type Repository interface {
	Load(ctx context.Context) ([]Invoice, error)
	Save(ctx context.Context, invoices []Invoice) error
}

// DocumentRenderer produces the standalone export document of an invoice.
type DocumentRenderer interface {
	InvoiceDocument(inv Invoice) ([]byte, error)
}
