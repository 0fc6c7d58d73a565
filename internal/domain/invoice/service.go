package invoice

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/ganot/freelanceflow/internal/currency"
	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/search"
)

// Notices shown after invoice mutations.
const (
	MsgCreated  = "Invoice created successfully!"
	MsgUpdated  = "Invoice updated successfully!"
	MsgDeleted  = "Invoice deleted!"
	MsgExported = "Invoice %s exported."
)

// Service handles invoice operations.
type Service struct {
	mu         sync.Mutex
	repo       Repository
	activities activity.Notifier
	logger     *slog.Logger
}

// NewService creates a new invoice service.
func NewService(repo Repository, activities activity.Notifier, logger *slog.Logger) *Service {
	return &Service{repo: repo, activities: activities, logger: logger}
}

// Fields are the form-editable invoice attributes.
type Fields struct {
	Client string          `json:"client"`
	Date   string          `json:"date"`
	Due    string          `json:"due"`
	Amount currency.Amount `json:"amount"`
	Status Status          `json:"status"`
	Note   string          `json:"note"`
}

// UpdateRequest replaces the editable fields of the invoice with ID.
type UpdateRequest struct {
	ID string
	Fields
}

// Document is an exported invoice ready for download.
type Document struct {
	FileName string
	Content  []byte
}

// List returns every stored invoice in insertion order.
func (s *Service) List(ctx context.Context) ([]Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.load(ctx)
}

// Search applies the status tab and the text query together.
func (s *Service) Search(ctx context.Context, filter Filter) ([]Invoice, error) {
	invoices, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]Invoice, 0, len(invoices))
	for _, inv := range invoices {
		if filter.Status != "" && filter.Status != StatusAll && string(inv.Status) != filter.Status {
			continue
		}
		if !search.Matches(filter.Query, inv.Client, inv.ID, inv.Note) {
			continue
		}
		out = append(out, inv)
	}
	return out, nil
}

// Get fetches an invoice by its "#INV-" id.
func (s *Service) Get(ctx context.Context, id string) (*Invoice, error) {
	invoices, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(invoices, id)
	if i < 0 {
		return nil, ErrInvoiceNotFound
	}
	inv := invoices[i]
	return &inv, nil
}

// Create assigns the next invoice id and inserts the invoice at the front.
func (s *Service) Create(ctx context.Context, fields Fields) (*Invoice, error) {
	if err := normalize(&fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	invoices, err := s.load(ctx)
	if err != nil {
		return nil, err
	}

	inv := Invoice{
		ID:     NextID(invoices),
		Client: fields.Client,
		Date:   fields.Date,
		Due:    fields.Due,
		Amount: fields.Amount,
		Status: fields.Status,
		Note:   fields.Note,
	}
	invoices = append([]Invoice{inv}, invoices...)
	if err := s.repo.Save(ctx, invoices); err != nil {
		return nil, fmt.Errorf("creating invoice: %w", err)
	}

	s.notify(ctx, inv.ID, activity.TypeCreated, MsgCreated, map[string]string{"amount": inv.Amount.String()})
	return &inv, nil
}

// Update replaces an existing invoice's editable fields, keeping its id.
func (s *Service) Update(ctx context.Context, req UpdateRequest) (*Invoice, error) {
	if err := normalize(&req.Fields); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	invoices, err := s.load(ctx)
	if err != nil {
		return nil, err
	}
	i := indexOf(invoices, req.ID)
	if i < 0 {
		return nil, ErrInvoiceNotFound
	}

	inv := invoices[i]
	inv.Client = req.Client
	inv.Date = req.Date
	inv.Due = req.Due
	inv.Amount = req.Amount
	inv.Status = req.Status
	inv.Note = req.Note
	invoices[i] = inv

	if err := s.repo.Save(ctx, invoices); err != nil {
		return nil, fmt.Errorf("updating invoice: %w", err)
	}

	s.notify(ctx, inv.ID, activity.TypeUpdated, MsgUpdated, nil)
	return &inv, nil
}

// Delete removes the invoice with id.
func (s *Service) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	invoices, err := s.load(ctx)
	if err != nil {
		return err
	}
	i := indexOf(invoices, id)
	if i < 0 {
		return ErrInvoiceNotFound
	}
	invoices = append(invoices[:i:i], invoices[i+1:]...)

	if err := s.repo.Save(ctx, invoices); err != nil {
		return fmt.Errorf("deleting invoice: %w", err)
	}

	s.notify(ctx, id, activity.TypeDeleted, MsgDeleted, nil)
	return nil
}

// Export renders the standalone document for the invoice with id.
func (s *Service) Export(ctx context.Context, id string, renderer DocumentRenderer) (*Document, error) {
	inv, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	content, err := renderer.InvoiceDocument(*inv)
	if err != nil {
		return nil, fmt.Errorf("exporting invoice: %w", err)
	}
	s.notify(ctx, inv.ID, activity.TypeExported, fmt.Sprintf(MsgExported, inv.ID), nil)
	return &Document{FileName: inv.FileName(), Content: content}, nil
}

func (s *Service) load(ctx context.Context) ([]Invoice, error) {
	invoices, err := s.repo.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading invoices: %w", err)
	}
	// Oldest records sit at the end; they keep a contested id and later
	// duplicates are renumbered.
	changed := false
	seen := make(map[string]bool, len(invoices))
	for i := len(invoices) - 1; i >= 0; i-- {
		if id := invoices[i].ID; id == "" || seen[id] {
			invoices[i].ID = NextID(invoices)
			changed = true
		}
		seen[invoices[i].ID] = true
	}
	if changed {
		if err := s.repo.Save(ctx, invoices); err != nil {
			return nil, fmt.Errorf("assigning invoice ids: %w", err)
		}
		if s.logger != nil {
			s.logger.Info("assigned ids to legacy invoices", "count", len(invoices))
		}
	}
	return invoices, nil
}

func (s *Service) notify(ctx context.Context, id string, typ activity.ActivityType, summary string, details any) {
	if s.activities != nil {
		s.activities.Notify(ctx, activity.EntityInvoice, id, typ, summary, details)
	}
}

func indexOf(invoices []Invoice, id string) int {
	if id == "" {
		return -1
	}
	for i, inv := range invoices {
		if inv.ID == id {
			return i
		}
	}
	return -1
}
