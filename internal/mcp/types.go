package mcp

import (
	"time"

	"github.com/ganot/freelanceflow/internal/currency"
	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/domain/dashboard"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
	"github.com/ganot/freelanceflow/internal/timer"
)

type QueryParams struct {
	Query string `json:"query,omitempty" jsonschema:"case-insensitive substring filter"`
}

type IDParams struct {
	ID string `json:"id" jsonschema:"record id"`
}

type DeleteParams struct {
	ID      string `json:"id" jsonschema:"record id"`
	Confirm bool   `json:"confirm,omitempty" jsonschema:"must be true to delete"`
}

type ClientParams struct {
	Name    string `json:"name" jsonschema:"client name, used as the join key by projects and invoices"`
	Email   string `json:"email,omitempty"`
	Country string `json:"country,omitempty"`
	Status  string `json:"status,omitempty" jsonschema:"active, onboarding or inactive"`
	Note    string `json:"note,omitempty"`
}

type UpdateClientParams struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email,omitempty"`
	Country string `json:"country,omitempty"`
	Status  string `json:"status,omitempty" jsonschema:"active, onboarding or inactive"`
	Note    string `json:"note,omitempty"`
}

type ProjectParams struct {
	Name     string `json:"name"`
	Client   string `json:"client,omitempty" jsonschema:"client name"`
	Deadline string `json:"deadline,omitempty" jsonschema:"YYYY-MM-DD"`
	Status   string `json:"status,omitempty" jsonschema:"active, pending, review or completed"`
	Progress int    `json:"progress,omitempty" jsonschema:"percentage, clamped to 0..100"`
	Note     string `json:"note,omitempty"`
}

type UpdateProjectParams struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Client   string `json:"client,omitempty" jsonschema:"client name"`
	Deadline string `json:"deadline,omitempty" jsonschema:"YYYY-MM-DD"`
	Status   string `json:"status,omitempty" jsonschema:"active, pending, review or completed"`
	Progress int    `json:"progress,omitempty" jsonschema:"percentage, clamped to 0..100"`
	Note     string `json:"note,omitempty"`
}

type ListInvoicesParams struct {
	Status string `json:"status,omitempty" jsonschema:"all, paid, pending or overdue"`
	Query  string `json:"query,omitempty"`
}

type InvoiceParams struct {
	Client string  `json:"client" jsonschema:"client name"`
	Date   string  `json:"date" jsonschema:"issue date, YYYY-MM-DD"`
	Due    string  `json:"due,omitempty" jsonschema:"due date, YYYY-MM-DD"`
	Amount float64 `json:"amount"`
	Status string  `json:"status,omitempty" jsonschema:"paid, pending or overdue"`
	Note   string  `json:"note,omitempty" jsonschema:"Markdown note shown on the exported invoice"`
}

type UpdateInvoiceParams struct {
	Number string  `json:"number" jsonschema:"invoice number, e.g. INV-1026"`
	Client string  `json:"client" jsonschema:"client name"`
	Date   string  `json:"date" jsonschema:"issue date, YYYY-MM-DD"`
	Due    string  `json:"due,omitempty" jsonschema:"due date, YYYY-MM-DD"`
	Amount float64 `json:"amount"`
	Status string  `json:"status,omitempty" jsonschema:"paid, pending or overdue"`
	Note   string  `json:"note,omitempty"`
}

type InvoiceNumberParams struct {
	Number string `json:"number" jsonschema:"invoice number, e.g. INV-1026"`
}

type DeleteInvoiceParams struct {
	Number  string `json:"number" jsonschema:"invoice number, e.g. INV-1026"`
	Confirm bool   `json:"confirm,omitempty" jsonschema:"must be true to delete"`
}

type ToggleTimerParams struct {
	Description string `json:"description,omitempty" jsonschema:"what was worked on, recorded when the timer stops"`
}

type RecentActivityParams struct {
	Entity string `json:"entity,omitempty" jsonschema:"client, project, invoice, time_entry or settings"`
	Limit  int    `json:"limit,omitempty"`
}

type ClientResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Country      string `json:"country"`
	Status       string `json:"status"`
	StatusLabel  string `json:"status_label"`
	Note         string `json:"note"`
	DateAdded    string `json:"date_added"`
	Earnings     string `json:"earnings"`
	ProjectCount int    `json:"project_count"`
}

type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

type ProjectResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Client      string `json:"client"`
	Deadline    string `json:"deadline"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Progress    int    `json:"progress"`
	Note        string `json:"note"`
}

type ProjectListResponse struct {
	Projects []ProjectResponse `json:"projects"`
}

type InvoiceResponse struct {
	ID          string `json:"id"`
	Client      string `json:"client"`
	Date        string `json:"date"`
	Due         string `json:"due"`
	Amount      string `json:"amount"`
	Display     string `json:"display"`
	Status      string `json:"status"`
	StatusLabel string `json:"status_label"`
	Note        string `json:"note"`
}

type InvoiceListResponse struct {
	Invoices []InvoiceResponse `json:"invoices"`
}

type ExportResponse struct {
	FileName string `json:"file_name"`
	HTML     string `json:"html"`
}

type TimeEntryResponse struct {
	ID              string `json:"id"`
	Project         string `json:"project"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	Duration        string `json:"duration"`
	DurationSeconds int64  `json:"duration_seconds"`
}

type TimeEntryListResponse struct {
	Entries []TimeEntryResponse `json:"entries"`
}

type TimerResponse struct {
	State   string             `json:"state"`
	Seconds int64              `json:"seconds"`
	Display string             `json:"display"`
	Notice  string             `json:"notice,omitempty"`
	Entry   *TimeEntryResponse `json:"entry,omitempty"`
}

type DashboardResponse struct {
	ActiveClients   int               `json:"active_clients"`
	PendingProjects int               `json:"pending_projects"`
	Income          string            `json:"income"`
	IncomeDisplay   string            `json:"income_display"`
	HoursTracked    string            `json:"hours_tracked"`
	ActiveProjects  []ProjectResponse `json:"active_projects"`
	RecentClients   []ClientResponse  `json:"recent_clients"`
}

type ActivityEntryResponse struct {
	ID        int64  `json:"id"`
	Entity    string `json:"entity"`
	RecordID  string `json:"record_id,omitempty"`
	Type      string `json:"type"`
	Summary   string `json:"summary"`
	CreatedAt string `json:"created_at"`
}

type ActivityListResponse struct {
	Entries []ActivityEntryResponse `json:"entries"`
}

type NoticeResponse struct {
	Notice string `json:"notice"`
}

func clientResponse(row dashboard.ClientSummary, code string) ClientResponse {
	c := row.Client
	return ClientResponse{
		ID:           c.ID,
		Name:         c.Name,
		Email:        c.Email,
		Country:      c.Country,
		Status:       string(c.Status),
		StatusLabel:  c.Status.Label(),
		Note:         c.Note,
		DateAdded:    c.DateAdded,
		Earnings:     currency.Format(row.Earnings, code),
		ProjectCount: row.ProjectCount,
	}
}

func projectResponse(p project.Project) ProjectResponse {
	return ProjectResponse{
		ID:          p.ID,
		Name:        p.Name,
		Client:      p.Client,
		Deadline:    p.Deadline,
		Status:      string(p.Status),
		StatusLabel: p.Status.Label(),
		Progress:    int(p.Progress.Clamp()),
		Note:        p.Note,
	}
}

func invoiceResponse(inv invoice.Invoice, code string) InvoiceResponse {
	return InvoiceResponse{
		ID:          inv.ID,
		Client:      inv.Client,
		Date:        inv.Date,
		Due:         inv.Due,
		Amount:      inv.Amount.StringFixed(2),
		Display:     currency.Format(inv.Amount.Decimal, code),
		Status:      string(inv.Status),
		StatusLabel: inv.Status.Label(),
		Note:        inv.Note,
	}
}

func timeEntryResponse(e timeentry.TimeEntry) TimeEntryResponse {
	return TimeEntryResponse{
		ID:              e.ID,
		Project:         e.ProjectName(),
		Description:     e.Description,
		Date:            e.Date,
		Duration:        e.Duration,
		DurationSeconds: e.DurationSeconds,
	}
}

func timerResponse(snap timer.Snapshot) TimerResponse {
	return TimerResponse{State: string(snap.State), Seconds: snap.Seconds, Display: snap.Display}
}

func activityResponse(e activity.ActivityEntry) ActivityEntryResponse {
	return ActivityEntryResponse{
		ID:        e.ID,
		Entity:    e.Entity,
		RecordID:  e.RecordID,
		Type:      string(e.ActivityType),
		Summary:   e.Summary,
		CreatedAt: e.CreatedAt.UTC().Format(time.RFC3339),
	}
}
