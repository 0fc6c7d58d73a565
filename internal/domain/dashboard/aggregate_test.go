package dashboard

import (
	"testing"

	"github.com/ganot/freelanceflow/internal/currency"
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/domain/timeentry"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestIncome_OnlyPaidAndNumeric(t *testing.T) {
	invoices := []invoice.Invoice{
		{Client: "Acme Co", Amount: currency.AmountFromFloat(500), Status: invoice.StatusPaid},
		{Client: "Acme Co", Amount: currency.AmountFromFloat(0.1), Status: invoice.StatusPaid},
		{Client: "Acme Co", Amount: currency.AmountFromFloat(0.2), Status: invoice.StatusPaid},
		{Client: "Acme Co", Status: invoice.StatusPaid}, // non-numeric amounts decode to zero
		{Client: "Acme Co", Amount: currency.AmountFromFloat(999), Status: invoice.StatusPending},
		{Client: "Acme Co", Amount: currency.AmountFromFloat(999), Status: invoice.StatusActive},
	}
	require.True(t, Income(invoices).Equal(decimal.RequireFromString("500.3")))
}

func TestAggregate(t *testing.T) {
	clients := []client.Client{
		{ID: "c6", Name: "F", Status: client.StatusActive},
		{ID: "c5", Name: "", Status: client.StatusActive},
		{ID: "c4", Name: "D", Status: client.StatusOnboarding},
		{ID: "c3", Name: "C", Status: client.StatusInactive},
		{ID: "c2", Name: "Acme Co", Status: client.StatusActive},
		{ID: "c1", Name: "Old", Status: client.StatusActive},
	}
	projects := []project.Project{
		{Name: "p1", Client: "Acme Co", Status: project.StatusActive},
		{Name: "p2", Client: "Acme Co", Status: project.StatusPending},
		{Name: "p3", Status: project.StatusActive},
		{Name: "p4", Status: project.StatusActive},
		{Name: "p5", Status: project.StatusActive},
		{Name: "p6", Status: project.StatusPending},
	}
	invoices := []invoice.Invoice{
		{Client: "Acme Co", Amount: currency.AmountFromFloat(500), Status: invoice.StatusPaid},
	}
	entries := []timeentry.TimeEntry{
		{DurationSeconds: 3600},
		{DurationSeconds: 1800},
		{DurationSeconds: -10},
	}

	s := Aggregate(clients, projects, invoices, entries)
	require.Equal(t, 4, s.ActiveClients)
	require.Equal(t, 2, s.PendingProjects)
	require.Equal(t, "500", s.Income.String())
	require.Equal(t, "1.5h", s.HoursLabel())

	require.Len(t, s.ActiveProjects, 3)
	require.Equal(t, "p1", s.ActiveProjects[0].Name)
	require.Equal(t, "p4", s.ActiveProjects[2].Name)

	// first five records, nameless one skipped
	require.Len(t, s.RecentClients, 4)
	require.Equal(t, "F", s.RecentClients[0].Client.Name)
	acme := s.RecentClients[3]
	require.Equal(t, "Acme Co", acme.Client.Name)
	require.Equal(t, 2, acme.ProjectCount)
	require.Equal(t, "500", acme.Earnings.String())
}

func TestAggregate_Empty(t *testing.T) {
	s := Aggregate(nil, nil, nil, nil)
	require.Zero(t, s.ActiveClients)
	require.True(t, s.Income.IsZero())
	require.Equal(t, "0.0h", s.HoursLabel())
	require.Empty(t, s.ActiveProjects)
	require.Empty(t, s.RecentClients)
}
