package dashboard

import (
	"fmt"

	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/shopspring/decimal"
)

// Limits of the dashboard lists.
const (
	MaxActiveProjects = 3
	MaxRecentClients  = 5
)

// ClientSummary is a client joined with its projects and paid invoices.
type ClientSummary struct {
	Client       client.Client
	Earnings     decimal.Decimal
	ProjectCount int
}

// Summary holds the dashboard KPIs and lists.
type Summary struct {
	ActiveClients   int
	PendingProjects int
	Income          decimal.Decimal
	TotalSeconds    int64
	ActiveProjects  []project.Project
	RecentClients   []ClientSummary
}

// Hours returns total tracked time in hours.
func (s Summary) Hours() float64 {
	return float64(s.TotalSeconds) / 3600
}

// HoursLabel renders tracked hours with one decimal, e.g. "1.5h".
func (s Summary) HoursLabel() string {
	return fmt.Sprintf("%.1fh", s.Hours())
}
