package cli

import (
	"io"
	"strings"

	"github.com/spf13/cobra"
)

func newTimeCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "time",
		Short: "Inspect tracked time",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "list [query]",
		Short: "List time entries, optionally filtered by project or description",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withSession(cmd, app, func(s *session) error {
				view, err := s.app.TimeEntries(cmd.Context(), strings.Join(args, " "))
				if err != nil {
					return err
				}
				return writeOut(cmd, app, view.Rows, func(w io.Writer) error {
					rows := make([][]string, 0, len(view.Rows))
					for _, r := range view.Rows {
						rows = append(rows, []string{r.Project, r.Description, r.Date, r.Duration})
					}
					return writeTable(w, []string{"Project", "Description", "Date", "Duration"}, rows, view.EmptyMessage)
				})
			})
		},
	})
	return cmd
}
