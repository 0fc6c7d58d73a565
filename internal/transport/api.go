package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/ganot/freelanceflow/internal/app"
	"github.com/ganot/freelanceflow/internal/currency"
	"github.com/ganot/freelanceflow/internal/domain/activity"
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/dashboard"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/domain/settings"
	"github.com/ganot/freelanceflow/internal/timer"
)

func (s *Server) apiRoutes(r chi.Router) {
	r.Get("/dashboard", s.apiDashboard)

	r.Get("/clients", s.apiListClients)
	r.Post("/clients", s.apiCreateClient)
	r.Get("/clients/{id}", s.apiGetClient)
	r.Put("/clients/{id}", s.apiUpdateClient)
	r.Delete("/clients/{id}", s.apiDeleteClient)

	r.Get("/projects", s.apiListProjects)
	r.Post("/projects", s.apiCreateProject)
	r.Get("/projects/{id}", s.apiGetProject)
	r.Put("/projects/{id}", s.apiUpdateProject)
	r.Delete("/projects/{id}", s.apiDeleteProject)

	r.Get("/invoices", s.apiListInvoices)
	r.Post("/invoices", s.apiCreateInvoice)
	r.Get("/invoices/{number}", s.apiGetInvoice)
	r.Put("/invoices/{number}", s.apiUpdateInvoice)
	r.Delete("/invoices/{number}", s.apiDeleteInvoice)

	r.Get("/time-entries", s.apiListTimeEntries)
	r.Delete("/time-entries/{id}", s.apiDeleteTimeEntry)
	r.Post("/timer/toggle", s.apiToggleTimer)

	r.Get("/settings", s.apiGetSettings)
	r.Put("/settings", s.apiSaveSettings)
	r.Get("/settings/avatar", s.apiGetAvatar)
	r.Put("/settings/avatar", s.apiSetAvatar)
	r.Post("/theme/toggle", s.apiToggleTheme)

	r.Get("/activity", s.apiActivity)
}

type dashboardResponse struct {
	ActiveClients   int                   `json:"active_clients"`
	PendingProjects int                   `json:"pending_projects"`
	Income          decimal.Decimal       `json:"income"`
	IncomeDisplay   string                `json:"income_display"`
	TotalSeconds    int64                 `json:"total_seconds"`
	Hours           string                `json:"hours"`
	ActiveProjects  []project.Project     `json:"active_projects"`
	RecentClients   []clientSummaryOutput `json:"recent_clients"`
}

type clientSummaryOutput struct {
	client.Client
	Earnings     decimal.Decimal `json:"earnings"`
	ProjectCount int             `json:"project_count"`
}

func newDashboardResponse(sum dashboard.Summary, code string) dashboardResponse {
	out := dashboardResponse{
		ActiveClients:   sum.ActiveClients,
		PendingProjects: sum.PendingProjects,
		Income:          sum.Income,
		IncomeDisplay:   currency.Format(sum.Income, code),
		TotalSeconds:    sum.TotalSeconds,
		Hours:           sum.HoursLabel(),
		ActiveProjects:  sum.ActiveProjects,
		RecentClients:   make([]clientSummaryOutput, 0, len(sum.RecentClients)),
	}
	for _, row := range sum.RecentClients {
		out.RecentClients = append(out.RecentClients, clientSummaryOutput{
			Client:       row.Client,
			Earnings:     row.Earnings,
			ProjectCount: row.ProjectCount,
		})
	}
	return out
}

func (s *Server) apiDashboard(w http.ResponseWriter, r *http.Request) {
	sum, err := s.app.Services().Dashboard.Summary(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, newDashboardResponse(sum, s.app.Currency(r.Context())))
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, err error) {
	s.logError(r, err)
	WriteError(w, err)
}

// Clients

func (s *Server) apiListClients(w http.ResponseWriter, r *http.Request) {
	clients, err := s.app.Services().Clients.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, clients)
}

func (s *Server) apiGetClient(w http.ResponseWriter, r *http.Request) {
	c, err := s.app.Services().Clients.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, c)
}

func (s *Server) apiCreateClient(w http.ResponseWriter, r *http.Request) {
	var fields client.Fields
	if err := DecodeJSON(r.Body, &fields); err != nil {
		WriteError(w, err)
		return
	}
	c, err := s.app.Services().Clients.Create(r.Context(), fields)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, c)
}

func (s *Server) apiUpdateClient(w http.ResponseWriter, r *http.Request) {
	var fields client.Fields
	if err := DecodeJSON(r.Body, &fields); err != nil {
		WriteError(w, err)
		return
	}
	c, err := s.app.Services().Clients.Update(r.Context(), client.UpdateRequest{ID: chi.URLParam(r, "id"), Fields: fields})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, c)
}

func (s *Server) apiDeleteClient(w http.ResponseWriter, r *http.Request) {
	if err := s.app.Services().Clients.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Projects

func (s *Server) apiListProjects(w http.ResponseWriter, r *http.Request) {
	projects, err := s.app.Services().Projects.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, projects)
}

func (s *Server) apiGetProject(w http.ResponseWriter, r *http.Request) {
	p, err := s.app.Services().Projects.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

func (s *Server) apiCreateProject(w http.ResponseWriter, r *http.Request) {
	var fields project.Fields
	if err := DecodeJSON(r.Body, &fields); err != nil {
		WriteError(w, err)
		return
	}
	p, err := s.app.Services().Projects.Create(r.Context(), fields)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, p)
}

func (s *Server) apiUpdateProject(w http.ResponseWriter, r *http.Request) {
	var fields project.Fields
	if err := DecodeJSON(r.Body, &fields); err != nil {
		WriteError(w, err)
		return
	}
	p, err := s.app.Services().Projects.Update(r.Context(), project.UpdateRequest{ID: chi.URLParam(r, "id"), Fields: fields})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, p)
}

func (s *Server) apiDeleteProject(w http.ResponseWriter, r *http.Request) {
	if err := s.app.Services().Projects.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Invoices

func (s *Server) apiListInvoices(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	invoices, err := s.app.Services().Invoices.Search(r.Context(), invoice.Filter{Status: q.Get("status"), Query: q.Get("q")})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, invoices)
}

func (s *Server) apiGetInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := invoice.ParseID(chi.URLParam(r, "number"))
	if err != nil {
		WriteError(w, err)
		return
	}
	inv, err := s.app.Services().Invoices.Get(r.Context(), id)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, inv)
}

func (s *Server) apiCreateInvoice(w http.ResponseWriter, r *http.Request) {
	var fields invoice.Fields
	if err := DecodeJSON(r.Body, &fields); err != nil {
		WriteError(w, err)
		return
	}
	inv, err := s.app.Services().Invoices.Create(r.Context(), fields)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusCreated, inv)
}

func (s *Server) apiUpdateInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := invoice.ParseID(chi.URLParam(r, "number"))
	if err != nil {
		WriteError(w, err)
		return
	}
	var fields invoice.Fields
	if err := DecodeJSON(r.Body, &fields); err != nil {
		WriteError(w, err)
		return
	}
	inv, err := s.app.Services().Invoices.Update(r.Context(), invoice.UpdateRequest{ID: id, Fields: fields})
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, inv)
}

func (s *Server) apiDeleteInvoice(w http.ResponseWriter, r *http.Request) {
	id, err := invoice.ParseID(chi.URLParam(r, "number"))
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := s.app.Services().Invoices.Delete(r.Context(), id); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Time entries

func (s *Server) apiListTimeEntries(w http.ResponseWriter, r *http.Request) {
	entries, err := s.app.Services().TimeEntries.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}

func (s *Server) apiDeleteTimeEntry(w http.ResponseWriter, r *http.Request) {
	if _, err := s.app.DeleteTimeEntry(r.Context(), chi.URLParam(r, "id")); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type timerToggleRequest struct {
	Description string `json:"description"`
}

type timerToggleResponse struct {
	Timer  timer.Snapshot `json:"timer"`
	Result *app.Result    `json:"result,omitempty"`
}

func (s *Server) apiToggleTimer(w http.ResponseWriter, r *http.Request) {
	var req timerToggleRequest
	if r.ContentLength != 0 {
		if err := DecodeJSON(r.Body, &req); err != nil {
			WriteError(w, err)
			return
		}
	}
	snap, res, err := s.app.ToggleTimer(r.Context(), req.Description)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, timerToggleResponse{Timer: snap, Result: res})
}

// Settings

func (s *Server) apiGetSettings(w http.ResponseWriter, r *http.Request) {
	st, err := s.app.Services().Settings.Get(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, st)
}

func (s *Server) apiSaveSettings(w http.ResponseWriter, r *http.Request) {
	var in settings.Settings
	if err := DecodeJSON(r.Body, &in); err != nil {
		WriteError(w, err)
		return
	}
	st, err := s.app.Services().Settings.Save(r.Context(), in)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, st)
}

type avatarBody struct {
	Avatar string `json:"avatar"`
}

func (s *Server) apiGetAvatar(w http.ResponseWriter, r *http.Request) {
	avatar, err := s.app.Services().Settings.Avatar(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, avatarBody{Avatar: avatar})
}

func (s *Server) apiSetAvatar(w http.ResponseWriter, r *http.Request) {
	var body avatarBody
	if err := DecodeJSON(r.Body, &body); err != nil {
		WriteError(w, err)
		return
	}
	if err := s.app.Services().Settings.SetAvatar(r.Context(), body.Avatar); err != nil {
		s.fail(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) apiToggleTheme(w http.ResponseWriter, r *http.Request) {
	theme, err := s.app.Services().Settings.ToggleTheme(r.Context())
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, map[string]settings.Theme{"theme": theme})
}

// Activity

func (s *Server) apiActivity(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	opts := activity.ListActivityOptions{Entity: q.Get("entity"), Limit: app.RecentActivityLimit}
	if raw := q.Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n <= 0 {
			WriteError(w, ErrBadRequest)
			return
		}
		opts.Limit = n
	}
	if id := q.Get("record_id"); id != "" {
		opts.RecordID = &id
	}
	entries, err := s.app.Services().Activity.GetRecentActivity(r.Context(), opts)
	if err != nil {
		s.fail(w, r, err)
		return
	}
	WriteJSON(w, http.StatusOK, entries)
}
