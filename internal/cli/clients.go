package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/render"
)

func newClientsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clients",
		Short: "List and add clients",
	}
	cmd.AddCommand(newClientsListCmd(app))
	cmd.AddCommand(newClientsAddCmd(app))
	return cmd
}

type clientListing struct {
	render.ClientRow
	Status string `json:"status"`
	Added  string `json:"added"`
}

func newClientsListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list [query]",
		Short: "List clients, optionally filtered by name, email or note",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			return withSession(cmd, app, func(s *session) error {
				ctx := cmd.Context()
				view, err := s.app.Clients(ctx, query)
				if err != nil {
					return err
				}
				stored, err := s.app.Services().Clients.List(ctx)
				if err != nil {
					return err
				}
				byID := make(map[string]client.Client, len(stored))
				for _, c := range stored {
					byID[c.ID] = c
				}

				listing := make([]clientListing, 0, len(view.Rows))
				for _, row := range view.Rows {
					c := byID[row.ID]
					listing = append(listing, clientListing{
						ClientRow: row,
						Status:    row.Badge.Label,
						Added:     clientAge(c),
					})
				}
				return writeOut(cmd, app, listing, func(w io.Writer) error {
					rows := make([][]string, 0, len(listing))
					for _, l := range listing {
						rows = append(rows, []string{
							l.Name, l.Email, l.Country, l.Status,
							strconv.Itoa(l.ProjectCount), l.Earnings, l.Added,
						})
					}
					return writeTable(w,
						[]string{"Name", "Email", "Country", "Status", "Projects", "Earnings", "Added"},
						rows, view.EmptyMessage)
				})
			})
		},
	}
}

func clientAge(c client.Client) string {
	added, ok := c.Added()
	if !ok {
		return "-"
	}
	return humanize.Time(added)
}

func newClientsAddCmd(app *App) *cobra.Command {
	var fields client.Fields
	var status string
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a client",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fields.Status = client.Status(status)
			return withSession(cmd, app, func(s *session) error {
				c, err := s.app.Services().Clients.Create(cmd.Context(), fields)
				if err != nil {
					return err
				}
				return writeOut(cmd, app, c, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "%s (%s)\n", client.MsgCreated, c.ID)
					return err
				})
			})
		},
	}
	cmd.Flags().StringVar(&fields.Name, "name", "", "Client name")
	cmd.Flags().StringVar(&fields.Email, "email", "", "Contact email")
	cmd.Flags().StringVar(&fields.Country, "country", "", "Country")
	cmd.Flags().StringVar(&status, "status", string(client.StatusActive), "Status (active|onboarding|inactive)")
	cmd.Flags().StringVar(&fields.Note, "note", "", "Free-form note")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}
