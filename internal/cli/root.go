// Package cli implements flowctl, a terminal view over the dashboard store.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ganot/freelanceflow/internal/app"
	"github.com/ganot/freelanceflow/internal/config"
	"github.com/ganot/freelanceflow/internal/render"
	"github.com/ganot/freelanceflow/internal/sqlite"
)

// Output formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

type App struct {
	DBPath   string
	Currency string
	Format   string
}

func NewRootCmd() *cobra.Command {
	cfg, err := config.Load()
	if err != nil {
		cfg = config.Default()
	}
	app := &App{}

	cmd := &cobra.Command{
		Use:           "flowctl",
		Short:         "Inspect and update the FreelanceFlow store from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&app.DBPath, "db", cfg.DB.Path, "Path to the SQLite database")
	cmd.PersistentFlags().StringVar(&app.Currency, "currency", cfg.Currency, "Fallback display currency")
	cmd.PersistentFlags().StringVar(&app.Format, "format", FormatTable, "Output format (table|json)")

	cmd.AddCommand(newClientsCmd(app))
	cmd.AddCommand(newInvoicesCmd(app))
	cmd.AddCommand(newTimeCmd(app))
	cmd.AddCommand(newDashboardCmd(app))

	return cmd
}

// Execute runs the root command and reports the error on stderr.
func Execute() error {
	cmd := NewRootCmd()
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		return err
	}
	return nil
}

// session is one open store for the duration of a command.
type session struct {
	db  *sqlite.DB
	app *app.App
}

func (s *session) Close() {
	s.app.Close()
	s.db.Close()
}

func openSession(ctx context.Context, a *App) (*session, error) {
	db, err := sqlite.New(a.DBPath)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", a.DBPath, err)
	}
	if err := db.RunMigrations(); err != nil {
		db.Close()
		return nil, err
	}
	svc, err := app.Open(ctx, db, a.Currency, nil)
	if err != nil {
		db.Close()
		return nil, err
	}
	renderer, err := render.New()
	if err != nil {
		db.Close()
		return nil, err
	}
	return &session{db: db, app: app.New(svc, renderer, app.Options{}, nil)}, nil
}

// withSession opens the store, runs fn and closes the store again.
func withSession(cmd *cobra.Command, a *App, fn func(*session) error) error {
	s, err := openSession(cmd.Context(), a)
	if err != nil {
		return err
	}
	defer s.Close()
	return fn(s)
}

func writeOut(cmd *cobra.Command, a *App, v any, table func(io.Writer) error) error {
	out := cmd.OutOrStdout()
	switch a.Format {
	case FormatJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case FormatTable, "":
		return table(out)
	default:
		return fmt.Errorf("unknown format %q", a.Format)
	}
}
