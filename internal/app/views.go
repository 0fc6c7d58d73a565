package app

import (
	"context"
	"fmt"

	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/render"
)

// Dashboard recomputes the dashboard from all four arrays.
func (a *App) Dashboard(ctx context.Context) (render.DashboardView, error) {
	summary, err := a.svc.Dashboard.Summary(ctx)
	if err != nil {
		return render.DashboardView{}, err
	}
	st, err := a.svc.Settings.Get(ctx)
	if err != nil {
		return render.DashboardView{}, err
	}
	recent, err := a.RecentActivity(ctx, RecentActivityLimit)
	if err != nil {
		return render.DashboardView{}, err
	}
	return render.NewDashboardView(summary, st, recent, st.Currency), nil
}

// Clients renders the clients table filtered by query.
func (a *App) Clients(ctx context.Context, query string) (render.ClientsView, error) {
	all, err := a.svc.Clients.List(ctx)
	if err != nil {
		return render.ClientsView{}, err
	}
	matched, err := a.svc.Clients.Search(ctx, query)
	if err != nil {
		return render.ClientsView{}, err
	}
	rows, err := a.svc.Dashboard.ClientRows(ctx, matched)
	if err != nil {
		return render.ClientsView{}, err
	}
	return render.NewClientsView(len(all), rows, query, a.Currency(ctx)), nil
}

// Projects renders the projects grid filtered by query.
func (a *App) Projects(ctx context.Context, query string) (render.ProjectsView, error) {
	all, err := a.svc.Projects.List(ctx)
	if err != nil {
		return render.ProjectsView{}, err
	}
	matched, err := a.svc.Projects.Search(ctx, query)
	if err != nil {
		return render.ProjectsView{}, err
	}
	return render.NewProjectsView(len(all), matched, query), nil
}

// Invoices renders the invoices table for a status tab and query.
func (a *App) Invoices(ctx context.Context, filter invoice.Filter) (render.InvoicesView, error) {
	matched, err := a.svc.Invoices.Search(ctx, filter)
	if err != nil {
		return render.InvoicesView{}, err
	}
	return render.NewInvoicesView(matched, filter, a.Currency(ctx)), nil
}

// Invoice renders the detail view of one invoice.
func (a *App) Invoice(ctx context.Context, id string) (render.InvoiceDetail, error) {
	inv, err := a.svc.Invoices.Get(ctx, id)
	if err != nil {
		return render.InvoiceDetail{}, err
	}
	return render.NewInvoiceDetail(*inv, a.Currency(ctx)), nil
}

// TimeEntries renders the time tracking page filtered by query.
func (a *App) TimeEntries(ctx context.Context, query string) (render.TimeView, error) {
	all, err := a.svc.TimeEntries.List(ctx)
	if err != nil {
		return render.TimeView{}, err
	}
	matched, err := a.svc.TimeEntries.Search(ctx, query)
	if err != nil {
		return render.TimeView{}, err
	}
	return render.NewTimeView(len(all), matched, query, a.timer.Snapshot(), a.loc), nil
}

// PageFor assembles the full page data around content. The open form of the
// page's entity, if any, is included.
func (a *App) PageFor(ctx context.Context, name, title, notice string, content any) (render.Page, error) {
	theme, err := a.svc.Settings.Theme(ctx)
	if err != nil {
		return render.Page{}, fmt.Errorf("loading theme: %w", err)
	}
	p := render.Page{Title: title, Active: name, Theme: string(theme), Notice: notice, Content: content}
	if entity, ok := pageForms[name]; ok {
		fv, err := a.OpenFormView(ctx, entity)
		if err != nil {
			return render.Page{}, err
		}
		p.Form = fv
	}
	return p, nil
}
