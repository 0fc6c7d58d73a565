package cli

import (
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"
)

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "dashboard",
		Short: "Show the dashboard figures, active projects and recent clients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(s *session) error {
				view, err := s.app.Dashboard(cmd.Context())
				if err != nil {
					return err
				}
				return writeOut(cmd, app, view, func(w io.Writer) error {
					if _, err := fmt.Fprintln(w, view.Welcome); err != nil {
						return err
					}
					kpis := make([][]string, 0, len(view.KPIs))
					for _, k := range view.KPIs {
						kpis = append(kpis, []string{k.Label, k.Value})
					}
					if err := writeTable(w, []string{"Metric", "Value"}, kpis, ""); err != nil {
						return err
					}

					projects := make([][]string, 0, len(view.ActiveProjects))
					for _, p := range view.ActiveProjects {
						projects = append(projects, []string{p.Name, p.Client, strconv.Itoa(p.Progress) + "%"})
					}
					if err := writeTable(w, []string{"Active Project", "Client", "Progress"}, projects, view.ActiveProjectsEmpty); err != nil {
						return err
					}

					clients := make([][]string, 0, len(view.RecentClients))
					for _, c := range view.RecentClients {
						clients = append(clients, []string{c.Name, c.Badge.Label, c.Earnings})
					}
					return writeTable(w, []string{"Recent Client", "Status", "Earnings"}, clients, view.RecentClientsEmpty)
				})
			})
		},
	}
}
