package app

import (
	"context"
	"log/slog"

	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/dashboard"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/domain/settings"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
	"github.com/ganot/freelanceflow/internal/repository"
	"github.com/ganot/freelanceflow/internal/sqlite"
	"github.com/ganot/freelanceflow/internal/storage"
)

// Services bundles the domain services behind every surface.
type Services struct {
	Clients     *client.Service
	Projects    *project.Service
	Invoices    *invoice.Service
	TimeEntries *timeentry.Service
	Settings    *settings.Service
	Activity    *activity.Service
	Dashboard   *dashboard.Service
}

// NewRepositories binds the entity arrays and the activity log to db.
func NewRepositories(db *sqlite.DB, logger *slog.Logger) (repository.Repositories, *storage.Adapter) {
	adapter := storage.NewAdapter(sqlite.NewKVRepository(db), logger)
	return repository.Repositories{
		Clients:     storage.NewList[client.Client](adapter, storage.KeyClients),
		Projects:    storage.NewList[project.Project](adapter, storage.KeyProjects),
		Invoices:    storage.NewList[invoice.Invoice](adapter, storage.KeyInvoices),
		TimeEntries: storage.NewList[timeentry.TimeEntry](adapter, storage.KeyTimeEntries),
		Activity:    sqlite.NewActivityRepository(db),
	}, adapter
}

// NewServices builds the domain services over repos. store backs settings.
func NewServices(repos repository.Repositories, store settings.Store, defaultCurrency string, logger *slog.Logger) Services {
	activitySvc := activity.NewService(repos.Activity, logger)
	clientSvc := client.NewService(repos.Clients, activitySvc, logger)
	projectSvc := project.NewService(repos.Projects, activitySvc, logger)
	invoiceSvc := invoice.NewService(repos.Invoices, activitySvc, logger)
	timeSvc := timeentry.NewService(repos.TimeEntries, activitySvc, logger)
	return Services{
		Clients:     clientSvc,
		Projects:    projectSvc,
		Invoices:    invoiceSvc,
		TimeEntries: timeSvc,
		Settings:    settings.NewService(store, activitySvc, logger, defaultCurrency),
		Activity:    activitySvc,
		Dashboard:   dashboard.NewService(clientSvc, projectSvc, invoiceSvc, timeSvc),
	}
}

// Open wires services onto db and marks the store initialized.
func Open(ctx context.Context, db *sqlite.DB, defaultCurrency string, logger *slog.Logger) (Services, error) {
	repos, adapter := NewRepositories(db, logger)
	if _, err := adapter.EnsureInitialized(ctx); err != nil {
		return Services{}, err
	}
	return NewServices(repos, adapter, defaultCurrency, logger), nil
}
