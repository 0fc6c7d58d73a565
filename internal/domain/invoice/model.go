package invoice

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ganot/freelanceflow/internal/currency"
)

// Status is the payment state of an invoice.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusPending Status = "pending"
	StatusOverdue Status = "overdue"
	// StatusActive is a legacy spelling of paid found in older stores. It
	// renders as Paid but does not count towards income.
	StatusActive Status = "active"
)

// Label returns the badge text. Unknown values read as Overdue.
func (s Status) Label() string {
	switch s {
	case StatusPaid, StatusActive:
		return "Paid"
	case StatusPending:
		return "Pending"
	default:
		return "Overdue"
	}
}

// Invoice is a bill issued to a client, referenced by client name.
type Invoice struct {
	ID     string          `json:"id"`
	Client string          `json:"client"`
	Date   string          `json:"date"`
	Due    string          `json:"due"`
	Amount currency.Amount `json:"amount"`
	Status Status          `json:"status"`
	Note   string          `json:"note"`
}

// Paid reports whether the invoice counts towards income.
func (i Invoice) Paid() bool {
	return i.Status == StatusPaid
}

// FileName is the download name of the exported document.
func (i Invoice) FileName() string {
	return "Invoice_" + Number(i.ID) + ".html"
}

const (
	idPrefix      = "#INV-"
	firstSequence = 1026
)

// Number strips the leading '#' from an invoice id, giving a URL-safe form.
func Number(id string) string {
	return strings.TrimPrefix(id, "#")
}

// ParseID accepts "#INV-1026", "INV-1026" or "1026" and returns the stored id.
func ParseID(s string) (string, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "#")
	s = strings.TrimPrefix(strings.ToUpper(s), "INV-")
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return "", fmt.Errorf("%w: invoice number %q", ErrInvalidInput, s)
	}
	return formatID(n), nil
}

func formatID(n int) string {
	return idPrefix + strconv.Itoa(n)
}

func sequence(id string) (int, bool) {
	if !strings.HasPrefix(id, idPrefix) {
		return 0, false
	}
	n, err := strconv.Atoi(strings.TrimPrefix(id, idPrefix))
	if err != nil {
		return 0, false
	}
	return n, true
}

// NextID returns the id for a new invoice: one past the highest existing
// sequence, starting at #INV-1026. Ids are never reused after a delete.
func NextID(invoices []Invoice) string {
	next := firstSequence
	for _, inv := range invoices {
		if n, ok := sequence(inv.ID); ok && n >= next {
			next = n + 1
		}
	}
	return formatID(next)
}
