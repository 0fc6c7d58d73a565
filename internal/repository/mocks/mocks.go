package mocks

import (
	"context"

	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
	"github.com/stretchr/testify/mock"
)

// ClientRepository is a mock for repository.ClientRepository.
type ClientRepository struct {
	mock.Mock
}

func (m *ClientRepository) Load(ctx context.Context) ([]client.Client, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]client.Client); ok {
		return append([]client.Client(nil), list...), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ClientRepository) Save(ctx context.Context, clients []client.Client) error {
	args := m.Called(ctx, clients)
	return args.Error(0)
}

// ProjectRepository is a mock for repository.ProjectRepository.
type ProjectRepository struct {
	mock.Mock
}

func (m *ProjectRepository) Load(ctx context.Context) ([]project.Project, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]project.Project); ok {
		return append([]project.Project(nil), list...), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *ProjectRepository) Save(ctx context.Context, projects []project.Project) error {
	args := m.Called(ctx, projects)
	return args.Error(0)
}

// InvoiceRepository is a mock for repository.InvoiceRepository.
type InvoiceRepository struct {
	mock.Mock
}

func (m *InvoiceRepository) Load(ctx context.Context) ([]invoice.Invoice, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]invoice.Invoice); ok {
		return append([]invoice.Invoice(nil), list...), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *InvoiceRepository) Save(ctx context.Context, invoices []invoice.Invoice) error {
	args := m.Called(ctx, invoices)
	return args.Error(0)
}

// TimeEntryRepository is a mock for repository.TimeEntryRepository.
type TimeEntryRepository struct {
	mock.Mock
}

func (m *TimeEntryRepository) Load(ctx context.Context) ([]timeentry.TimeEntry, error) {
	args := m.Called(ctx)
	if list, ok := args.Get(0).([]timeentry.TimeEntry); ok {
		return append([]timeentry.TimeEntry(nil), list...), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *TimeEntryRepository) Save(ctx context.Context, entries []timeentry.TimeEntry) error {
	args := m.Called(ctx, entries)
	return args.Error(0)
}

// ActivityRepository is a mock for repository.ActivityRepository.
type ActivityRepository struct {
	mock.Mock
}

func (m *ActivityRepository) Log(ctx context.Context, entry *activity.ActivityEntry) error {
	args := m.Called(ctx, entry)
	return args.Error(0)
}

func (m *ActivityRepository) List(ctx context.Context, opts activity.ListActivityOptions) ([]activity.ActivityEntry, error) {
	args := m.Called(ctx, opts)
	if list, ok := args.Get(0).([]activity.ActivityEntry); ok {
		return list, args.Error(1)
	}
	return nil, args.Error(1)
}

// Notifier is a mock for activity.Notifier.
type Notifier struct {
	mock.Mock
}

func (m *Notifier) Notify(ctx context.Context, entity, recordID string, typ activity.ActivityType, summary string, details any) {
	m.Called(ctx, entity, recordID, typ, summary, details)
}
