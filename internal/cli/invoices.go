package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ganot/freelanceflow/internal/domain/invoice"
)

func newInvoicesCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "invoices",
		Short: "List and export invoices",
	}
	cmd.AddCommand(newInvoicesListCmd(app))
	cmd.AddCommand(newInvoicesExportCmd(app))
	return cmd
}

func newInvoicesListCmd(app *App) *cobra.Command {
	var status string
	cmd := &cobra.Command{
		Use:   "list [query]",
		Short: "List invoices for a status tab, optionally filtered by client, number or note",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			filter := invoice.Filter{Status: status, Query: strings.Join(args, " ")}
			return withSession(cmd, app, func(s *session) error {
				view, err := s.app.Invoices(cmd.Context(), filter)
				if err != nil {
					return err
				}
				return writeOut(cmd, app, view.Rows, func(w io.Writer) error {
					rows := make([][]string, 0, len(view.Rows))
					for _, r := range view.Rows {
						rows = append(rows, []string{r.Number, r.Client, r.Badge.Label, r.Date, r.Due, r.Amount})
					}
					return writeTable(w,
						[]string{"Invoice", "Client", "Status", "Date", "Due", "Amount"},
						rows, view.EmptyMessage)
				})
			})
		},
	}
	cmd.Flags().StringVar(&status, "status", invoice.StatusAll, "Status tab (all|paid|pending|overdue)")
	return cmd
}

func newInvoicesExportCmd(app *App) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "export <number>",
		Short: "Export an invoice as a standalone HTML document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := invoice.ParseID(args[0])
			if err != nil {
				return err
			}
			return withSession(cmd, app, func(s *session) error {
				doc, err := s.app.Export(cmd.Context(), id)
				if err != nil {
					return err
				}
				if output == "-" {
					_, err := cmd.OutOrStdout().Write(doc.Content)
					return err
				}
				path := output
				if path == "" {
					path = doc.FileName
				}
				if err := os.WriteFile(path, doc.Content, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", path, err)
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "%s Written to %s\n", fmt.Sprintf(invoice.MsgExported, id), path)
				return err
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination file (default: the invoice file name; - for stdout)")
	return cmd
}
