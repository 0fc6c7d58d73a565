package dashboard

import (
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
	"github.com/shopspring/decimal"
)

// Income sums the amounts of invoices whose status is exactly paid.
func Income(invoices []invoice.Invoice) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.Paid() {
			total = total.Add(inv.Amount.Decimal)
		}
	}
	return total
}

// Earnings sums the paid invoices billed to the client named name.
func Earnings(invoices []invoice.Invoice, name string) decimal.Decimal {
	total := decimal.Zero
	for _, inv := range invoices {
		if inv.Client == name && inv.Paid() {
			total = total.Add(inv.Amount.Decimal)
		}
	}
	return total
}

// ProjectCount counts the projects of the client named name.
func ProjectCount(projects []project.Project, name string) int {
	n := 0
	for _, p := range projects {
		if p.Client == name {
			n++
		}
	}
	return n
}

// Summarize joins each named client with its projects and earnings.
func Summarize(clients []client.Client, projects []project.Project, invoices []invoice.Invoice) []ClientSummary {
	out := make([]ClientSummary, 0, len(clients))
	for _, c := range clients {
		if !c.Named() {
			continue
		}
		out = append(out, ClientSummary{
			Client:       c,
			Earnings:     Earnings(invoices, c.Name),
			ProjectCount: ProjectCount(projects, c.Name),
		})
	}
	return out
}

// Aggregate recomputes every dashboard figure from the four arrays.
func Aggregate(clients []client.Client, projects []project.Project, invoices []invoice.Invoice, entries []timeentry.TimeEntry) Summary {
	var s Summary

	for _, c := range clients {
		if c.Status == client.StatusActive {
			s.ActiveClients++
		}
	}
	for _, p := range projects {
		if p.Status == project.StatusPending {
			s.PendingProjects++
		}
	}
	s.Income = Income(invoices)
	for _, e := range entries {
		if e.DurationSeconds > 0 {
			s.TotalSeconds += e.DurationSeconds
		}
	}

	s.ActiveProjects = make([]project.Project, 0, MaxActiveProjects)
	for _, p := range projects {
		if p.Status != project.StatusActive {
			continue
		}
		s.ActiveProjects = append(s.ActiveProjects, p)
		if len(s.ActiveProjects) == MaxActiveProjects {
			break
		}
	}

	recent := clients
	if len(recent) > MaxRecentClients {
		recent = recent[:MaxRecentClients]
	}
	s.RecentClients = Summarize(recent, projects, invoices)

	return s
}
