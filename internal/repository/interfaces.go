package repository

import (
	"context"

	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
)

// ClientRepository manages the client array
type ClientRepository interface {
	Load(ctx context.Context) ([]client.Client, error)
	Save(ctx context.Context, clients []client.Client) error
}

// ProjectRepository manages the project array
type ProjectRepository interface {
	Load(ctx context.Context) ([]project.Project, error)
	Save(ctx context.Context, projects []project.Project) error
}

// InvoiceRepository manages the invoice array
type InvoiceRepository interface {
	Load(ctx context.Context) ([]invoice.Invoice, error)
	Save(ctx context.Context, invoices []invoice.Invoice) error
}

// TimeEntryRepository manages the time entry array
type TimeEntryRepository interface {
	Load(ctx context.Context) ([]timeentry.TimeEntry, error)
	Save(ctx context.Context, entries []timeentry.TimeEntry) error
}

// ActivityRepository manages activity log persistence
type ActivityRepository interface {
	Log(ctx context.Context, entry *activity.ActivityEntry) error
	List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error)
}

// Repositories bundles every repository the services are built from.
type Repositories struct {
	Clients     ClientRepository
	Projects    ProjectRepository
	Invoices    InvoiceRepository
	TimeEntries TimeEntryRepository
	Activity    ActivityRepository
}
