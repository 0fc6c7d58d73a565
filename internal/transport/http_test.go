package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"

	"github.com/ganot/freelanceflow/internal/app"
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/render"
	"github.com/ganot/freelanceflow/internal/sqlite"
	"github.com/ganot/freelanceflow/internal/timer"
	"github.com/ganot/freelanceflow/internal/ui/menu"
)

func newTestRouter(t *testing.T, auth func(http.Handler) http.Handler) *chi.Mux {
	t.Helper()

	db, err := sqlite.New(":memory:")
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())
	t.Cleanup(func() { db.Close() })

	svc, err := app.Open(context.Background(), db, "USD", nil)
	require.NoError(t, err)
	renderer, err := render.New()
	require.NoError(t, err)

	ticks := make(chan time.Time)
	a := app.New(svc, renderer, app.Options{
		Ticks:    func() (<-chan time.Time, func()) { return ticks, func() {} },
		Location: time.UTC,
	}, nil)
	t.Cleanup(a.Close)

	return NewServer(a, nil, auth, nil)
}

func serve(router http.Handler, method, target string, body string, contentType string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, target, reader)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func postForm(router http.Handler, target string, values url.Values) *httptest.ResponseRecorder {
	return serve(router, http.MethodPost, target, values.Encode(), "application/x-www-form-urlencoded")
}

func postJSON(router http.Handler, method, target string, v any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	_ = json.NewEncoder(&buf).Encode(v)
	return serve(router, method, target, buf.String(), "application/json")
}

func createClient(t *testing.T, router http.Handler, name string) client.Client {
	t.Helper()
	rec := postJSON(router, http.MethodPost, "/api/clients", map[string]string{
		"name": name, "email": "billing@acme.test", "status": "active",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var c client.Client
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &c))
	require.NotEmpty(t, c.ID)
	return c
}

func TestHTTPServer_Health(t *testing.T) {
	router := newTestRouter(t, AuthMiddleware(StaticToken("secret")))

	rec := serve(router, http.MethodGet, "/health", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, "/clients", "", "")
	require.Equal(t, http.StatusUnauthorized, rec.Code)

	req := httptest.NewRequest(http.MethodGet, "/clients", nil)
	req.Header.Set("Authorization", "Bearer secret")
	authed := httptest.NewRecorder()
	router.ServeHTTP(authed, req)
	require.Equal(t, http.StatusOK, authed.Code)
}

func TestHTTPServer_EmptyClientsPage(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := serve(router, http.MethodGet, "/clients", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "No clients found. Add a new client to get started.")
	require.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestHTTPServer_FormSubmit(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postForm(router, "/forms/client/open", nil)
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/clients", rec.Header().Get("Location"))

	rec = serve(router, http.MethodGet, "/clients", "", "")
	require.Contains(t, rec.Body.String(), `id="clientModal"`)

	rec = postForm(router, "/forms/client", url.Values{"name": {"Acme Co"}, "email": {"billing@acme.test"}, "status": {"active"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)
	require.Equal(t, "/clients?notice="+url.QueryEscape(client.MsgCreated), rec.Header().Get("Location"))

	rec = serve(router, http.MethodGet, "/clients?notice="+url.QueryEscape(client.MsgCreated), "", "")
	body := rec.Body.String()
	require.Contains(t, body, "Acme Co")
	require.Contains(t, body, client.MsgCreated)
	require.NotContains(t, body, `id="clientModal"`)
}

func TestHTTPServer_FormSubmit_MissingField(t *testing.T) {
	router := newTestRouter(t, nil)

	postForm(router, "/forms/client/open", nil)
	rec := postForm(router, "/forms/client", url.Values{"email": {"billing@acme.test"}})
	require.Equal(t, http.StatusBadRequest, rec.Code)
	body := rec.Body.String()
	require.Contains(t, body, "missing required field")
	require.Contains(t, body, `id="clientModal"`)
}

func TestHTTPServer_UnknownForm(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postForm(router, "/forms/widget/open", nil)
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPServer_MenuDeleteNeedsConfirmation(t *testing.T) {
	router := newTestRouter(t, nil)
	c := createClient(t, router, "Acme Co")

	rec := postJSON(router, http.MethodPost, "/ui/menus/clients/toggle", menu.Trigger{
		RecordID: c.ID,
		Rect:     menu.Rect{Top: 100, Left: 400, Bottom: 120, Right: 420},
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var st menu.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	require.True(t, st.Open)
	require.Equal(t, c.ID, st.RecordID)

	rec = serve(router, http.MethodPost, "/ui/menus/clients/actions/delete", "", "")
	require.Equal(t, http.StatusConflict, rec.Code)
	var errBody ErrorBody
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &errBody))
	require.Equal(t, "confirmation_required", errBody.Code)
	require.Equal(t, "Are you sure you want to remove client: Acme Co?", errBody.Prompt)

	rec = serve(router, http.MethodPost, "/ui/menus/clients/actions/delete?confirm=true", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var res app.ActionResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.Equal(t, "Client removed: Acme Co", res.Notice)

	rec = serve(router, http.MethodGet, "/api/clients/"+c.ID, "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPServer_MenuScrollCloses(t *testing.T) {
	router := newTestRouter(t, nil)
	c := createClient(t, router, "Acme Co")

	postJSON(router, http.MethodPost, "/ui/menus/clients/toggle", menu.Trigger{RecordID: c.ID})
	rec := serve(router, http.MethodPost, "/ui/scroll", "", "")
	require.Equal(t, http.StatusOK, rec.Code)

	rec = serve(router, http.MethodGet, "/ui/menu", "", "")
	var st menu.State
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &st))
	require.False(t, st.Open)

	rec = postJSON(router, http.MethodPost, "/ui/menus/reports/toggle", menu.Trigger{RecordID: c.ID})
	require.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHTTPServer_InvoiceExportAndDashboard(t *testing.T) {
	router := newTestRouter(t, nil)
	createClient(t, router, "Acme Co")

	rec := postJSON(router, http.MethodPost, "/api/invoices", map[string]any{
		"client": "Acme Co",
		"date":   "2025-03-14",
		"due":    "2025-04-14",
		"amount": 500,
		"status": "paid",
		"note":   "Landing page **redesign**",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var inv invoice.Invoice
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &inv))
	require.Equal(t, "#INV-1026", inv.ID)

	rec = serve(router, http.MethodGet, "/invoices/INV-1026/export", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Header().Get("Content-Disposition"), "Invoice_INV-1026.html")
	require.Contains(t, rec.Body.String(), "<strong>redesign</strong>")

	rec = serve(router, http.MethodGet, "/invoices/INV-1026", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), "#INV-1026")

	rec = serve(router, http.MethodGet, "/invoices/INV-9999/export", "", "")
	require.Equal(t, http.StatusNotFound, rec.Code)

	rec = serve(router, http.MethodGet, "/api/dashboard", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var dash dashboardResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dash))
	require.Equal(t, "$500.00", dash.IncomeDisplay)
	require.Equal(t, 1, dash.ActiveClients)
}

func TestHTTPServer_InvoiceDeepLink(t *testing.T) {
	router := newTestRouter(t, nil)
	createClient(t, router, "Acme Co")

	rec := serve(router, http.MethodGet, "/invoices?client="+url.QueryEscape("Acme Co"), "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Contains(t, rec.Body.String(), `<option value="Acme Co" selected>`)
}

func TestHTTPServer_ThemeToggle(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := serve(router, http.MethodPost, "/api/theme/toggle", "", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `{"theme":"dark"}`, rec.Body.String())

	rec = serve(router, http.MethodGet, "/", "", "")
	require.Contains(t, rec.Body.String(), `data-theme="dark"`)
}

func TestHTTPServer_Timer(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postForm(router, "/timer/toggle", url.Values{"description": {"Wireframes"}})
	require.Equal(t, http.StatusSeeOther, rec.Code)

	rec = serve(router, http.MethodGet, "/timer", "", "")
	var snap timer.Snapshot
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &snap))
	require.Equal(t, timer.StateRunning, snap.State)

	// stopping before a whole second elapsed records nothing
	rec = postJSON(router, http.MethodPost, "/api/timer/toggle", map[string]string{})
	require.Equal(t, http.StatusOK, rec.Code)
	var out timerToggleResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	require.Equal(t, timer.StateIdle, out.Timer.State)
	require.Nil(t, out.Result)

	rec = serve(router, http.MethodGet, "/api/time-entries", "", "")
	require.JSONEq(t, `[]`, rec.Body.String())
}

func TestHTTPServer_Settings(t *testing.T) {
	router := newTestRouter(t, nil)

	rec := postJSON(router, http.MethodPut, "/api/settings/avatar", map[string]string{"avatar": "not-an-image"})
	require.Equal(t, http.StatusBadRequest, rec.Code)

	rec = postJSON(router, http.MethodPut, "/api/settings/avatar", map[string]string{"avatar": "data:image/png;base64,AAAA"})
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = serve(router, http.MethodGet, "/api/settings/avatar", "", "")
	require.JSONEq(t, `{"avatar":"data:image/png;base64,AAAA"}`, rec.Body.String())
}
