package cli

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/ganot/freelanceflow/internal/app"
	"github.com/ganot/freelanceflow/internal/currency"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/sqlite"
)

func run(t *testing.T, dbPath string, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := NewRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--db", dbPath, "--currency", "USD"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func seedInvoice(t *testing.T, dbPath string, fields invoice.Fields) *invoice.Invoice {
	t.Helper()

	db, err := sqlite.New(dbPath)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.RunMigrations())

	svc, err := app.Open(context.Background(), db, "USD", nil)
	require.NoError(t, err)
	inv, err := svc.Invoices.Create(context.Background(), fields)
	require.NoError(t, err)
	return inv
}

func TestClientsAddAndList(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "flow.db")

	out, err := run(t, dbPath, "clients", "list")
	require.NoError(t, err)
	require.Contains(t, out, "No clients found.")

	out, err = run(t, dbPath, "clients", "add", "--name", "Acme Co", "--email", "ops@acme.test", "--country", "Canada")
	require.NoError(t, err)
	require.Contains(t, out, "Client saved successfully!")

	_, err = run(t, dbPath, "clients", "add", "--name", "Globex", "--status", "onboarding")
	require.NoError(t, err)

	out, err = run(t, dbPath, "clients", "list", "acme")
	require.NoError(t, err)
	require.Contains(t, out, "Acme Co")
	require.Contains(t, out, "ops@acme.test")
	require.Contains(t, out, "Added")
	require.NotContains(t, out, "Globex")
}

func TestClientsAddRejectsUnknownStatus(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "flow.db")

	_, err := run(t, dbPath, "clients", "add", "--name", "Acme Co", "--status", "archived")
	require.Error(t, err)
}

func TestClientsListJSON(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "flow.db")

	_, err := run(t, dbPath, "clients", "add", "--name", "Acme Co")
	require.NoError(t, err)

	out, err := run(t, dbPath, "--format", "json", "clients", "list")
	require.NoError(t, err)

	var listing []clientListing
	require.NoError(t, json.Unmarshal([]byte(out), &listing))
	require.Len(t, listing, 1)
	require.Equal(t, "Acme Co", listing[0].Name)
	require.Equal(t, "Active", listing[0].Status)
	require.Equal(t, "$0.00", listing[0].Earnings)
}

func TestInvoicesListAndExport(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "flow.db")
	seedInvoice(t, dbPath, invoice.Fields{
		Client: "Acme Co",
		Date:   "2024-05-01",
		Amount: currency.NewAmount(decimal.RequireFromString("500")),
		Status: invoice.StatusPaid,
		Note:   "**redesign**",
	})
	seedInvoice(t, dbPath, invoice.Fields{
		Client: "Globex",
		Amount: currency.NewAmount(decimal.RequireFromString("120.5")),
	})

	out, err := run(t, dbPath, "invoices", "list", "--status", "paid")
	require.NoError(t, err)
	require.Contains(t, out, "INV-1026")
	require.Contains(t, out, "$500.00")
	require.NotContains(t, out, "Globex")

	out, err = run(t, dbPath, "invoices", "list", "globex")
	require.NoError(t, err)
	require.Contains(t, out, "INV-1027")
	require.Contains(t, out, "$120.50")

	target := filepath.Join(t.TempDir(), "acme.html")
	out, err = run(t, dbPath, "invoices", "export", "1026", "-o", target)
	require.NoError(t, err)
	require.Contains(t, out, "Invoice #INV-1026 exported.")

	content, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Contains(t, string(content), "<strong>redesign</strong>")
	require.Contains(t, string(content), "$500.00")

	_, err = run(t, dbPath, "invoices", "export", "9999", "-o", target)
	require.ErrorIs(t, err, invoice.ErrInvoiceNotFound)
}

func TestTimeListEmpty(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "flow.db")

	out, err := run(t, dbPath, "time", "list")
	require.NoError(t, err)
	require.Contains(t, out, "No time entries recorded.")
}

func TestDashboard(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "flow.db")
	_, err := run(t, dbPath, "clients", "add", "--name", "Acme Co")
	require.NoError(t, err)
	seedInvoice(t, dbPath, invoice.Fields{
		Client: "Acme Co",
		Amount: currency.NewAmount(decimal.RequireFromString("500")),
		Status: invoice.StatusPaid,
	})

	out, err := run(t, dbPath, "dashboard")
	require.NoError(t, err)
	require.Contains(t, out, "Monthly Income")
	require.Contains(t, out, "$500.00")
	require.Contains(t, out, "No active projects.")
	require.Contains(t, out, "Acme Co")
}

func TestUnknownFormat(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "flow.db")

	_, err := run(t, dbPath, "--format", "yaml", "time", "list")
	require.Error(t, err)
}
