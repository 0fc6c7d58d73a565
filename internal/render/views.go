package render

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/ganot/freelanceflow/internal/currency"
	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/dashboard"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/domain/settings"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
	"github.com/ganot/freelanceflow/internal/timer"
)

// Empty-state messages.
const (
	EmptyClients        = "No clients found. Add a new client to get started."
	EmptyProjects       = "No projects yet. Create a new project to start tracking."
	EmptyInvoices       = "No invoices found."
	EmptyTimeEntries    = "No time entries recorded."
	EmptyActiveProjects = "No active projects."
	EmptyRecentClients  = "No recent clients found."
)

// Badge is a coloured status label.
type Badge struct {
	Class string `json:"class"`
	Label string `json:"label"`
}

const (
	classActive   = "status-active"
	classPending  = "status-pending"
	classInactive = "status-inactive"
)

// ClientBadge maps a client status to its badge.
func ClientBadge(s client.Status) Badge {
	switch s {
	case client.StatusActive:
		return Badge{Class: classActive, Label: s.Label()}
	case client.StatusOnboarding:
		return Badge{Class: classPending, Label: s.Label()}
	default:
		return Badge{Class: classInactive, Label: s.Label()}
	}
}

// ProjectBadge maps a project status to its badge.
func ProjectBadge(s project.Status) Badge {
	switch s {
	case project.StatusActive, project.StatusReview:
		return Badge{Class: classActive, Label: s.Label()}
	case project.StatusPending:
		return Badge{Class: classPending, Label: s.Label()}
	default:
		return Badge{Class: classInactive, Label: s.Label()}
	}
}

// InvoiceBadge maps an invoice status to its badge.
func InvoiceBadge(s invoice.Status) Badge {
	switch s {
	case invoice.StatusPaid, invoice.StatusActive:
		return Badge{Class: classActive, Label: s.Label()}
	case invoice.StatusPending:
		return Badge{Class: classPending, Label: s.Label()}
	default:
		return Badge{Class: classInactive, Label: s.Label()}
	}
}

// ClientRow is one line of the clients table.
type ClientRow struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	AvatarURL    string `json:"avatar_url"`
	Email        string `json:"email"`
	Country      string `json:"country"`
	Note         string `json:"note"`
	Badge        Badge  `json:"badge"`
	ProjectCount int    `json:"project_count"`
	Earnings     string `json:"earnings"`
}

// ClientsView is the clients page.
type ClientsView struct {
	Query        string      `json:"query"`
	Rows         []ClientRow `json:"rows"`
	EmptyMessage string      `json:"empty_message,omitempty"`
}

// NewClientsView builds the clients table from the filtered summaries. The
// empty state shows only when nothing is stored at all.
func NewClientsView(stored int, rows []dashboard.ClientSummary, query, code string) ClientsView {
	v := ClientsView{Query: query, Rows: make([]ClientRow, 0, len(rows))}
	if stored == 0 {
		v.EmptyMessage = EmptyClients
		return v
	}
	for _, r := range rows {
		c := r.Client
		v.Rows = append(v.Rows, ClientRow{
			ID:           c.ID,
			Name:         c.Name,
			AvatarURL:    client.AvatarURL(c.Name),
			Email:        orDash(c.Email),
			Country:      orDash(c.Country),
			Note:         orDash(c.Note),
			Badge:        ClientBadge(c.Status),
			ProjectCount: r.ProjectCount,
			Earnings:     currency.Format(r.Earnings, code),
		})
	}
	return v
}

// ProjectCard is one card of the projects grid.
type ProjectCard struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Client    string `json:"client"`
	Initials  string `json:"initials"`
	AvatarURL string `json:"avatar_url"`
	Deadline  string `json:"deadline"`
	Progress  int    `json:"progress"`
	Note      string `json:"note,omitempty"`
	Badge     Badge  `json:"badge"`
}

// ProjectsView is the projects page.
type ProjectsView struct {
	Query        string        `json:"query"`
	Cards        []ProjectCard `json:"cards"`
	EmptyMessage string        `json:"empty_message,omitempty"`
}

// NewProjectsView builds the projects grid.
func NewProjectsView(stored int, projects []project.Project, query string) ProjectsView {
	v := ProjectsView{Query: query, Cards: make([]ProjectCard, 0, len(projects))}
	if stored == 0 {
		v.EmptyMessage = EmptyProjects
		return v
	}
	for _, p := range projects {
		initials := project.Initials(p.Client)
		v.Cards = append(v.Cards, ProjectCard{
			ID:        p.ID,
			Name:      p.Name,
			Client:    p.Client,
			Initials:  initials,
			AvatarURL: client.AvatarURL(initials),
			Deadline:  orDash(p.Deadline),
			Progress:  int(p.Progress.Clamp()),
			Note:      p.Note,
			Badge:     ProjectBadge(p.Status),
		})
	}
	return v
}

// InvoiceRow is one line of the invoices table.
type InvoiceRow struct {
	ID     string `json:"id"`
	Number string `json:"number"`
	Client string `json:"client"`
	Status string `json:"status"`
	Date   string `json:"date"`
	Due    string `json:"due"`
	Amount string `json:"amount"`
	Note   string `json:"note"`
	Badge  Badge  `json:"badge"`
}

// Tab is a status filter of the invoices page.
type Tab struct {
	Value  string `json:"value"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

// InvoicesView is the invoices page.
type InvoicesView struct {
	Query        string       `json:"query"`
	Status       string       `json:"status"`
	Tabs         []Tab        `json:"tabs"`
	Rows         []InvoiceRow `json:"rows"`
	EmptyMessage string       `json:"empty_message,omitempty"`
}

var invoiceTabs = []Tab{
	{Value: invoice.StatusAll, Label: "All"},
	{Value: string(invoice.StatusPaid), Label: "Paid"},
	{Value: string(invoice.StatusPending), Label: "Pending"},
	{Value: string(invoice.StatusOverdue), Label: "Overdue"},
}

// NewInvoiceRow formats one invoice.
func NewInvoiceRow(inv invoice.Invoice, code string) InvoiceRow {
	return InvoiceRow{
		ID:     inv.ID,
		Number: invoice.Number(inv.ID),
		Client: inv.Client,
		Status: string(inv.Status),
		Date:   DisplayDate(inv.Date),
		Due:    DisplayDate(inv.Due),
		Amount: currency.Format(inv.Amount.Decimal, code),
		Note:   orDash(inv.Note),
		Badge:  InvoiceBadge(inv.Status),
	}
}

// NewInvoicesView builds the invoices table for the already filtered rows.
func NewInvoicesView(invoices []invoice.Invoice, filter invoice.Filter, code string) InvoicesView {
	status := filter.Status
	if status == "" {
		status = invoice.StatusAll
	}
	v := InvoicesView{
		Query:  filter.Query,
		Status: status,
		Tabs:   make([]Tab, len(invoiceTabs)),
		Rows:   make([]InvoiceRow, 0, len(invoices)),
	}
	for i, tab := range invoiceTabs {
		tab.Active = tab.Value == status
		v.Tabs[i] = tab
	}
	for _, inv := range invoices {
		v.Rows = append(v.Rows, NewInvoiceRow(inv, code))
	}
	if len(v.Rows) == 0 {
		v.EmptyMessage = EmptyInvoices
	}
	return v
}

// InvoiceDetail is the read-only invoice view.
type InvoiceDetail struct {
	InvoiceRow
	NoteText string `json:"note_text"`
}

// NewInvoiceDetail builds the detail view of inv.
func NewInvoiceDetail(inv invoice.Invoice, code string) InvoiceDetail {
	d := InvoiceDetail{InvoiceRow: NewInvoiceRow(inv, code), NoteText: "No additional notes."}
	if inv.Note != "" {
		d.NoteText = "Note: " + inv.Note
	}
	return d
}

// TimeEntryRow is one line of the time tracking table.
type TimeEntryRow struct {
	ID          string `json:"id"`
	Project     string `json:"project"`
	Description string `json:"description"`
	Date        string `json:"date"`
	Duration    string `json:"duration"`
}

// TimeView is the time tracking page.
type TimeView struct {
	Query        string         `json:"query"`
	Timer        timer.Snapshot `json:"timer"`
	Rows         []TimeEntryRow `json:"rows"`
	EmptyMessage string         `json:"empty_message,omitempty"`
}

// NewTimeView builds the time tracking page.
func NewTimeView(stored int, entries []timeentry.TimeEntry, query string, snap timer.Snapshot, loc *time.Location) TimeView {
	v := TimeView{Query: query, Timer: snap, Rows: make([]TimeEntryRow, 0, len(entries))}
	if stored == 0 {
		v.EmptyMessage = EmptyTimeEntries
		return v
	}
	for _, e := range entries {
		v.Rows = append(v.Rows, TimeEntryRow{
			ID:          e.ID,
			Project:     e.ProjectName(),
			Description: orDash(e.Description),
			Date:        EntryDate(e.Date, loc),
			Duration:    e.Duration,
		})
	}
	return v
}

// KPI is one dashboard figure.
type KPI struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// ActiveProjectItem is a progress line of the dashboard.
type ActiveProjectItem struct {
	Name     string `json:"name"`
	Client   string `json:"client"`
	Note     string `json:"note,omitempty"`
	Progress int    `json:"progress"`
}

// RecentClientRow is a line of the dashboard's recent clients table.
type RecentClientRow struct {
	Name      string `json:"name"`
	AvatarURL string `json:"avatar_url"`
	Note      string `json:"note"`
	Badge     Badge  `json:"badge"`
	Earnings  string `json:"earnings"`
}

// ActivityItem is a line of the notifications list.
type ActivityItem struct {
	Summary string `json:"summary"`
	When    string `json:"when"`
}

// DashboardView is the dashboard page.
type DashboardView struct {
	Welcome             string              `json:"welcome"`
	KPIs                []KPI               `json:"kpis"`
	ActiveProjects      []ActiveProjectItem `json:"active_projects"`
	ActiveProjectsEmpty string              `json:"active_projects_empty,omitempty"`
	RecentClients       []RecentClientRow   `json:"recent_clients"`
	RecentClientsEmpty  string              `json:"recent_clients_empty,omitempty"`
	Activity            []ActivityItem      `json:"activity"`
}

// NewDashboardView formats the dashboard summary.
func NewDashboardView(s dashboard.Summary, st settings.Settings, recent []activity.ActivityEntry, code string) DashboardView {
	v := DashboardView{
		Welcome: st.Welcome(),
		KPIs: []KPI{
			{Label: "Active Clients", Value: humanize.Comma(int64(s.ActiveClients))},
			{Label: "Pending Projects", Value: humanize.Comma(int64(s.PendingProjects))},
			{Label: "Monthly Income", Value: currency.Format(s.Income, code)},
			{Label: "Hours Tracked", Value: s.HoursLabel()},
		},
		ActiveProjects: make([]ActiveProjectItem, 0, len(s.ActiveProjects)),
		RecentClients:  make([]RecentClientRow, 0, len(s.RecentClients)),
		Activity:       make([]ActivityItem, 0, len(recent)),
	}
	for _, p := range s.ActiveProjects {
		v.ActiveProjects = append(v.ActiveProjects, ActiveProjectItem{
			Name:     p.Name,
			Client:   p.Client,
			Note:     p.Note,
			Progress: int(p.Progress.Clamp()),
		})
	}
	if len(v.ActiveProjects) == 0 {
		v.ActiveProjectsEmpty = EmptyActiveProjects
	}
	for _, r := range s.RecentClients {
		v.RecentClients = append(v.RecentClients, RecentClientRow{
			Name:      r.Client.Name,
			AvatarURL: client.AvatarURL(r.Client.Name),
			Note:      orDash(r.Client.Note),
			Badge:     ClientBadge(r.Client.Status),
			Earnings:  currency.Format(r.Earnings, code),
		})
	}
	if len(v.RecentClients) == 0 {
		v.RecentClientsEmpty = EmptyRecentClients
	}
	for _, e := range recent {
		v.Activity = append(v.Activity, ActivityItem{Summary: e.Summary, When: humanize.Time(e.CreatedAt)})
	}
	return v
}
