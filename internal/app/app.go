// Package app owns the dashboard's UI state (open menu, entity forms, timer)
// and drives the domain services for every surface.
package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
	"github.com/ganot/freelanceflow/internal/render"
	"github.com/ganot/freelanceflow/internal/timer"
	"github.com/ganot/freelanceflow/internal/ui/form"
	"github.com/ganot/freelanceflow/internal/ui/menu"
)

// Views that need re-rendering after a mutation.
const (
	ViewDashboard = "dashboard"
	ViewClients   = "clients"
	ViewProjects  = "projects"
	ViewInvoices  = "invoices"
	ViewTime      = "time"
)

// RecentActivityLimit caps the notifications shown on the dashboard.
const RecentActivityLimit = 5

// Options tune an App.
type Options struct {
	// Ticks drives the timer; nil uses one tick per second.
	Ticks timer.TickSource
	// Location renders time entry dates; nil uses the local zone.
	Location *time.Location
}

// App is the application controller.
type App struct {
	svc      Services
	renderer *render.Renderer
	menus    *menu.Manager
	forms    map[form.Entity]*form.State
	timer    *timer.Timer
	loc      *time.Location
	logger   *slog.Logger
}

// New creates an App with every menu and form closed and the timer idle.
func New(svc Services, renderer *render.Renderer, opts Options, logger *slog.Logger) *App {
	a := &App{
		svc:      svc,
		renderer: renderer,
		menus:    menu.NewManager(),
		forms:    make(map[form.Entity]*form.State),
		loc:      opts.Location,
		logger:   logger,
	}
	for _, entity := range []form.Entity{form.Client, form.Project, form.Invoice} {
		schema, _ := form.SchemaFor(entity)
		a.forms[entity] = form.NewState(schema)
	}
	a.timer = timer.New(svc.TimeEntries, opts.Ticks, logger)
	return a
}

// Services exposes the domain services.
func (a *App) Services() Services {
	return a.svc
}

// Renderer exposes the page renderer.
func (a *App) Renderer() *render.Renderer {
	return a.renderer
}

// Close stops the timer without recording the running session.
func (a *App) Close() {
	a.timer.Shutdown()
}

// Currency returns the currency amounts are displayed in.
func (a *App) Currency(ctx context.Context) string {
	return a.svc.Settings.Currency(ctx)
}

// Export renders the download document of the invoice with id.
func (a *App) Export(ctx context.Context, id string) (*invoice.Document, error) {
	return a.svc.Invoices.Export(ctx, id, a.renderer.Exporter(a.Currency(ctx)))
}

// RecentActivity returns the newest notices.
func (a *App) RecentActivity(ctx context.Context, limit int) ([]activity.ActivityEntry, error) {
	if limit <= 0 {
		limit = RecentActivityLimit
	}
	return a.svc.Activity.GetRecentActivity(ctx, activity.ListActivityOptions{Limit: limit})
}

// ToggleTimer starts an idle timer or stops a running one. Stopping after at
// least one second returns the recorded entry.
func (a *App) ToggleTimer(ctx context.Context, description string) (timer.Snapshot, *Result, error) {
	entry, err := a.timer.Toggle(ctx, description)
	if err != nil {
		return a.timer.Snapshot(), nil, err
	}
	if entry == nil {
		return a.timer.Snapshot(), nil, nil
	}
	return a.timer.Snapshot(), &Result{
		Notice:   timeentry.MsgSaved,
		RecordID: entry.ID,
		Refresh:  []string{ViewTime, ViewDashboard},
	}, nil
}

// Timer returns the timer state.
func (a *App) Timer() timer.Snapshot {
	return a.timer.Snapshot()
}

// DeleteTimeEntry removes a time entry.
func (a *App) DeleteTimeEntry(ctx context.Context, id string) (*Result, error) {
	if err := a.svc.TimeEntries.Delete(ctx, id); err != nil {
		return nil, err
	}
	return &Result{Notice: timeentry.MsgDeleted, RecordID: id, Refresh: []string{ViewTime, ViewDashboard}}, nil
}

// Result reports a successful mutation.
type Result struct {
	Notice   string   `json:"notice"`
	RecordID string   `json:"record_id,omitempty"`
	Refresh  []string `json:"refresh"`
}
