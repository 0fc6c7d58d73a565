package mcp

import (
	"context"
	"fmt"
	"log/slog"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/ganot/freelanceflow/internal/app"
	"github.com/ganot/freelanceflow/internal/currency"
	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/dashboard"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
)

type tools struct {
	app    *app.App
	logger *slog.Logger
}

func registerTools(server *sdkmcp.Server, t *tools) {
	// Clients
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_clients",
		Description: "List clients with their paid earnings and project count, optionally filtered by name, email or note",
	}, t.listClients)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_client",
		Description: "Add a new client",
	}, t.createClient)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_client",
		Description: "Replace the editable fields of a client",
	}, t.updateClient)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_client",
		Description: "Remove a client. Projects and invoices referencing it by name are kept",
	}, t.deleteClient)

	// Projects
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_projects",
		Description: "List projects, optionally filtered by name or client",
	}, t.listProjects)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_project",
		Description: "Create a new project",
	}, t.createProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_project",
		Description: "Replace the editable fields of a project",
	}, t.updateProject)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_project",
		Description: "Delete a project",
	}, t.deleteProject)

	// Invoices
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_invoices",
		Description: "List invoices for a status tab, optionally filtered by client, number or note",
	}, t.listInvoices)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "create_invoice",
		Description: "Issue a new invoice. Numbers are assigned sequentially and never reused",
	}, t.createInvoice)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "update_invoice",
		Description: "Replace the editable fields of an invoice",
	}, t.updateInvoice)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_invoice",
		Description: "Delete an invoice",
	}, t.deleteInvoice)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "export_invoice",
		Description: "Render an invoice as a printable HTML document",
	}, t.exportInvoice)

	// Time tracking
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "list_time_entries",
		Description: "List recorded time entries, newest first",
	}, t.listTimeEntries)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "delete_time_entry",
		Description: "Delete a time entry",
	}, t.deleteTimeEntry)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "toggle_timer",
		Description: "Start the timer, or stop it and record the elapsed whole seconds as a time entry",
	}, t.toggleTimer)

	// Overview
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_dashboard",
		Description: "Get the dashboard KPIs, active projects and recent clients",
	}, t.getDashboard)
	sdkmcp.AddTool(server, &sdkmcp.Tool{
		Name:        "get_recent_activity",
		Description: "Get the most recent notices, newest first",
	}, t.getRecentActivity)
}

func (t *tools) svc() app.Services {
	return t.app.Services()
}

func (t *tools) listClients(ctx context.Context, _ *sdkmcp.CallToolRequest, in QueryParams) (*sdkmcp.CallToolResult, ClientListResponse, error) {
	matched, err := t.svc().Clients.Search(ctx, in.Query)
	if err != nil {
		return nil, ClientListResponse{}, mapError(err)
	}
	rows, err := t.svc().Dashboard.ClientRows(ctx, matched)
	if err != nil {
		return nil, ClientListResponse{}, mapError(err)
	}
	code := t.app.Currency(ctx)
	out := ClientListResponse{Clients: make([]ClientResponse, 0, len(rows))}
	for _, row := range rows {
		out.Clients = append(out.Clients, clientResponse(row, code))
	}
	return nil, out, nil
}

// describeClient joins a single client with its earnings and projects.
func (t *tools) describeClient(ctx context.Context, c *client.Client) (ClientResponse, error) {
	rows, err := t.svc().Dashboard.ClientRows(ctx, []client.Client{*c})
	if err != nil {
		return ClientResponse{}, mapError(err)
	}
	row := dashboard.ClientSummary{Client: *c}
	if len(rows) > 0 {
		row = rows[0]
	}
	return clientResponse(row, t.app.Currency(ctx)), nil
}

func (t *tools) createClient(ctx context.Context, _ *sdkmcp.CallToolRequest, in ClientParams) (*sdkmcp.CallToolResult, ClientResponse, error) {
	c, err := t.svc().Clients.Create(ctx, client.Fields{
		Name:    in.Name,
		Email:   in.Email,
		Country: in.Country,
		Status:  client.Status(in.Status),
		Note:    in.Note,
	})
	if err != nil {
		return nil, ClientResponse{}, mapError(err)
	}
	out, err := t.describeClient(ctx, c)
	return nil, out, err
}

func (t *tools) updateClient(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateClientParams) (*sdkmcp.CallToolResult, ClientResponse, error) {
	c, err := t.svc().Clients.Update(ctx, client.UpdateRequest{ID: in.ID, Fields: client.Fields{
		Name:    in.Name,
		Email:   in.Email,
		Country: in.Country,
		Status:  client.Status(in.Status),
		Note:    in.Note,
	}})
	if err != nil {
		return nil, ClientResponse{}, mapError(err)
	}
	out, err := t.describeClient(ctx, c)
	return nil, out, err
}

func (t *tools) deleteClient(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteParams) (*sdkmcp.CallToolResult, NoticeResponse, error) {
	c, err := t.svc().Clients.Get(ctx, in.ID)
	if err != nil {
		return nil, NoticeResponse{}, mapError(err)
	}
	if !in.Confirm {
		return nil, NoticeResponse{}, mapError(&app.ConfirmationError{Prompt: fmt.Sprintf("Are you sure you want to remove client: %s?", c.Name)})
	}
	if err := t.svc().Clients.Delete(ctx, c.ID); err != nil {
		return nil, NoticeResponse{}, mapError(err)
	}
	return nil, NoticeResponse{Notice: fmt.Sprintf(client.MsgDeleted, c.Name)}, nil
}

func (t *tools) listProjects(ctx context.Context, _ *sdkmcp.CallToolRequest, in QueryParams) (*sdkmcp.CallToolResult, ProjectListResponse, error) {
	projects, err := t.svc().Projects.Search(ctx, in.Query)
	if err != nil {
		return nil, ProjectListResponse{}, mapError(err)
	}
	out := ProjectListResponse{Projects: make([]ProjectResponse, 0, len(projects))}
	for _, p := range projects {
		out.Projects = append(out.Projects, projectResponse(p))
	}
	return nil, out, nil
}

func (t *tools) createProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in ProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	p, err := t.svc().Projects.Create(ctx, project.Fields{
		Name:     in.Name,
		Client:   in.Client,
		Deadline: in.Deadline,
		Status:   project.Status(in.Status),
		Progress: project.Progress(in.Progress).Clamp(),
		Note:     in.Note,
	})
	if err != nil {
		return nil, ProjectResponse{}, mapError(err)
	}
	return nil, projectResponse(*p), nil
}

func (t *tools) updateProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateProjectParams) (*sdkmcp.CallToolResult, ProjectResponse, error) {
	p, err := t.svc().Projects.Update(ctx, project.UpdateRequest{ID: in.ID, Fields: project.Fields{
		Name:     in.Name,
		Client:   in.Client,
		Deadline: in.Deadline,
		Status:   project.Status(in.Status),
		Progress: project.Progress(in.Progress).Clamp(),
		Note:     in.Note,
	}})
	if err != nil {
		return nil, ProjectResponse{}, mapError(err)
	}
	return nil, projectResponse(*p), nil
}

func (t *tools) deleteProject(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteParams) (*sdkmcp.CallToolResult, NoticeResponse, error) {
	p, err := t.svc().Projects.Get(ctx, in.ID)
	if err != nil {
		return nil, NoticeResponse{}, mapError(err)
	}
	if !in.Confirm {
		return nil, NoticeResponse{}, mapError(&app.ConfirmationError{Prompt: "Delete this project?"})
	}
	if err := t.svc().Projects.Delete(ctx, p.ID); err != nil {
		return nil, NoticeResponse{}, mapError(err)
	}
	return nil, NoticeResponse{Notice: fmt.Sprintf(project.MsgDeleted, p.Name)}, nil
}

func (t *tools) listInvoices(ctx context.Context, _ *sdkmcp.CallToolRequest, in ListInvoicesParams) (*sdkmcp.CallToolResult, InvoiceListResponse, error) {
	invoices, err := t.svc().Invoices.Search(ctx, invoice.Filter{Status: in.Status, Query: in.Query})
	if err != nil {
		return nil, InvoiceListResponse{}, mapError(err)
	}
	code := t.app.Currency(ctx)
	out := InvoiceListResponse{Invoices: make([]InvoiceResponse, 0, len(invoices))}
	for _, inv := range invoices {
		out.Invoices = append(out.Invoices, invoiceResponse(inv, code))
	}
	return nil, out, nil
}

func invoiceFields(in InvoiceParams) invoice.Fields {
	return invoice.Fields{
		Client: in.Client,
		Date:   in.Date,
		Due:    in.Due,
		Amount: currency.AmountFromFloat(in.Amount),
		Status: invoice.Status(in.Status),
		Note:   in.Note,
	}
}

func (t *tools) createInvoice(ctx context.Context, _ *sdkmcp.CallToolRequest, in InvoiceParams) (*sdkmcp.CallToolResult, InvoiceResponse, error) {
	inv, err := t.svc().Invoices.Create(ctx, invoiceFields(in))
	if err != nil {
		return nil, InvoiceResponse{}, mapError(err)
	}
	return nil, invoiceResponse(*inv, t.app.Currency(ctx)), nil
}

func (t *tools) updateInvoice(ctx context.Context, _ *sdkmcp.CallToolRequest, in UpdateInvoiceParams) (*sdkmcp.CallToolResult, InvoiceResponse, error) {
	id, err := invoice.ParseID(in.Number)
	if err != nil {
		return nil, InvoiceResponse{}, mapError(err)
	}
	inv, err := t.svc().Invoices.Update(ctx, invoice.UpdateRequest{ID: id, Fields: invoiceFields(InvoiceParams{
		Client: in.Client,
		Date:   in.Date,
		Due:    in.Due,
		Amount: in.Amount,
		Status: in.Status,
		Note:   in.Note,
	})})
	if err != nil {
		return nil, InvoiceResponse{}, mapError(err)
	}
	return nil, invoiceResponse(*inv, t.app.Currency(ctx)), nil
}

func (t *tools) deleteInvoice(ctx context.Context, _ *sdkmcp.CallToolRequest, in DeleteInvoiceParams) (*sdkmcp.CallToolResult, NoticeResponse, error) {
	id, err := invoice.ParseID(in.Number)
	if err != nil {
		return nil, NoticeResponse{}, mapError(err)
	}
	if _, err := t.svc().Invoices.Get(ctx, id); err != nil {
		return nil, NoticeResponse{}, mapError(err)
	}
	if !in.Confirm {
		return nil, NoticeResponse{}, mapError(&app.ConfirmationError{Prompt: fmt.Sprintf("Delete invoice %s?", id)})
	}
	if err := t.svc().Invoices.Delete(ctx, id); err != nil {
		return nil, NoticeResponse{}, mapError(err)
	}
	return nil, NoticeResponse{Notice: invoice.MsgDeleted}, nil
}

func (t *tools) exportInvoice(ctx context.Context, _ *sdkmcp.CallToolRequest, in InvoiceNumberParams) (*sdkmcp.CallToolResult, ExportResponse, error) {
	id, err := invoice.ParseID(in.Number)
	if err != nil {
		return nil, ExportResponse{}, mapError(err)
	}
	doc, err := t.app.Export(ctx, id)
	if err != nil {
		return nil, ExportResponse{}, mapError(err)
	}
	return nil, ExportResponse{FileName: doc.FileName, HTML: string(doc.Content)}, nil
}

func (t *tools) listTimeEntries(ctx context.Context, _ *sdkmcp.CallToolRequest, in QueryParams) (*sdkmcp.CallToolResult, TimeEntryListResponse, error) {
	entries, err := t.svc().TimeEntries.Search(ctx, in.Query)
	if err != nil {
		return nil, TimeEntryListResponse{}, mapError(err)
	}
	out := TimeEntryListResponse{Entries: make([]TimeEntryResponse, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, timeEntryResponse(e))
	}
	return nil, out, nil
}

func (t *tools) deleteTimeEntry(ctx context.Context, _ *sdkmcp.CallToolRequest, in IDParams) (*sdkmcp.CallToolResult, NoticeResponse, error) {
	res, err := t.app.DeleteTimeEntry(ctx, in.ID)
	if err != nil {
		return nil, NoticeResponse{}, mapError(err)
	}
	return nil, NoticeResponse{Notice: res.Notice}, nil
}

func (t *tools) toggleTimer(ctx context.Context, _ *sdkmcp.CallToolRequest, in ToggleTimerParams) (*sdkmcp.CallToolResult, TimerResponse, error) {
	snap, res, err := t.app.ToggleTimer(ctx, in.Description)
	if err != nil {
		return nil, TimerResponse{}, mapError(err)
	}
	out := timerResponse(snap)
	if res != nil {
		out.Notice = res.Notice
		entries, err := t.svc().TimeEntries.List(ctx)
		if err != nil {
			return nil, TimerResponse{}, mapError(err)
		}
		for _, e := range entries {
			if e.ID == res.RecordID {
				entry := timeEntryResponse(e)
				out.Entry = &entry
				break
			}
		}
	}
	return nil, out, nil
}

func (t *tools) getDashboard(ctx context.Context, _ *sdkmcp.CallToolRequest, _ struct{}) (*sdkmcp.CallToolResult, DashboardResponse, error) {
	sum, err := t.svc().Dashboard.Summary(ctx)
	if err != nil {
		return nil, DashboardResponse{}, mapError(err)
	}
	code := t.app.Currency(ctx)
	out := DashboardResponse{
		ActiveClients:   sum.ActiveClients,
		PendingProjects: sum.PendingProjects,
		Income:          sum.Income.StringFixed(2),
		IncomeDisplay:   currency.Format(sum.Income, code),
		HoursTracked:    sum.HoursLabel(),
		ActiveProjects:  make([]ProjectResponse, 0, len(sum.ActiveProjects)),
		RecentClients:   make([]ClientResponse, 0, len(sum.RecentClients)),
	}
	for _, p := range sum.ActiveProjects {
		out.ActiveProjects = append(out.ActiveProjects, projectResponse(p))
	}
	for _, row := range sum.RecentClients {
		out.RecentClients = append(out.RecentClients, clientResponse(row, code))
	}
	return nil, out, nil
}

func (t *tools) getRecentActivity(ctx context.Context, _ *sdkmcp.CallToolRequest, in RecentActivityParams) (*sdkmcp.CallToolResult, ActivityListResponse, error) {
	limit := in.Limit
	if limit <= 0 {
		limit = app.RecentActivityLimit
	}
	entries, err := t.svc().Activity.GetRecentActivity(ctx, activity.ListActivityOptions{Entity: in.Entity, Limit: limit})
	if err != nil {
		return nil, ActivityListResponse{}, mapError(err)
	}
	out := ActivityListResponse{Entries: make([]ActivityEntryResponse, 0, len(entries))}
	for _, e := range entries {
		out.Entries = append(out.Entries, activityResponse(e))
	}
	return nil, out, nil
}
