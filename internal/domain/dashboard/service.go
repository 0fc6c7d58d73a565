package dashboard

import (
	"context"
	"fmt"

	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
)

// ClientLister lists clients.
type ClientLister interface {
	List(ctx context.Context) ([]client.Client, error)
}

// ProjectLister lists projects.
type ProjectLister interface {
	List(ctx context.Context) ([]project.Project, error)
}

// InvoiceLister lists invoices.
type InvoiceLister interface {
	List(ctx context.Context) ([]invoice.Invoice, error)
}

// TimeEntryLister lists time entries.
type TimeEntryLister interface {
	List(ctx context.Context) ([]timeentry.TimeEntry, error)
}

// Service aggregates dashboard figures from the entity services.
type Service struct {
	clients     ClientLister
	projects    ProjectLister
	invoices    InvoiceLister
	timeEntries TimeEntryLister
}

// NewService creates a new dashboard service.
func NewService(clients ClientLister, projects ProjectLister, invoices InvoiceLister, timeEntries TimeEntryLister) *Service {
	return &Service{clients: clients, projects: projects, invoices: invoices, timeEntries: timeEntries}
}

// Summary loads all four arrays and recomputes the dashboard.
func (s *Service) Summary(ctx context.Context) (Summary, error) {
	clients, err := s.clients.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing clients: %w", err)
	}
	projects, err := s.projects.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing projects: %w", err)
	}
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing invoices: %w", err)
	}
	entries, err := s.timeEntries.List(ctx)
	if err != nil {
		return Summary{}, fmt.Errorf("summarizing time entries: %w", err)
	}
	return Aggregate(clients, projects, invoices, entries), nil
}

// ClientRows joins clients with their project counts and paid earnings.
func (s *Service) ClientRows(ctx context.Context, clients []client.Client) ([]ClientSummary, error) {
	projects, err := s.projects.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("joining projects: %w", err)
	}
	invoices, err := s.invoices.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("joining invoices: %w", err)
	}
	return Summarize(clients, projects, invoices), nil
}
