package transport

import (
	"bytes"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/render"
	"github.com/ganot/freelanceflow/internal/ui/form"
)

type pageKey string

const (
	pageDashboard pageKey = render.PageDashboard
	pageClients   pageKey = render.PageClients
	pageProjects  pageKey = render.PageProjects
	pageInvoices  pageKey = render.PageInvoices
	pageInvoice   pageKey = render.PageInvoice
	pageTime      pageKey = render.PageTime
)

type pageSpec struct {
	title string
	build func(r *http.Request) (any, error)
}

var entityPages = map[form.Entity]pageKey{
	form.Client:  pageClients,
	form.Project: pageProjects,
	form.Invoice: pageInvoices,
}

var pagePaths = map[pageKey]string{
	pageDashboard: "/",
	pageClients:   "/clients",
	pageProjects:  "/projects",
	pageInvoices:  "/invoices",
	pageTime:      "/time",
}

func (s *Server) pageSpecs() map[string]pageSpec {
	return map[string]pageSpec{
		render.PageDashboard: {title: "Dashboard", build: func(r *http.Request) (any, error) {
			return s.app.Dashboard(r.Context())
		}},
		render.PageClients: {title: "Clients", build: func(r *http.Request) (any, error) {
			return s.app.Clients(r.Context(), r.URL.Query().Get("q"))
		}},
		render.PageProjects: {title: "Projects", build: func(r *http.Request) (any, error) {
			return s.app.Projects(r.Context(), r.URL.Query().Get("q"))
		}},
		render.PageInvoices: {title: "Invoices", build: func(r *http.Request) (any, error) {
			q := r.URL.Query()
			if name := q.Get("client"); name != "" && r.Method == http.MethodGet {
				if _, err := s.app.OpenForm(r.Context(), form.Invoice, url.Values{"client": {name}}); err != nil {
					return nil, err
				}
			}
			return s.app.Invoices(r.Context(), invoice.Filter{Status: q.Get("status"), Query: q.Get("q")})
		}},
		render.PageInvoice: {title: "Invoice", build: func(r *http.Request) (any, error) {
			id, err := invoice.ParseID(chi.URLParam(r, "number"))
			if err != nil {
				return nil, err
			}
			return s.app.Invoice(r.Context(), id)
		}},
		render.PageTime: {title: "Time Tracking", build: func(r *http.Request) (any, error) {
			return s.app.TimeEntries(r.Context(), r.URL.Query().Get("q"))
		}},
	}
}

func (s *Server) handlePage(key pageKey) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, r, key, r.URL.Query().Get("notice"), http.StatusOK)
	}
}

// renderPage buffers the page so a template error never leaves a half
// written response.
func (s *Server) renderPage(w http.ResponseWriter, r *http.Request, key pageKey, notice string, status int) {
	spec, ok := s.pages[string(key)]
	if !ok {
		WriteError(w, render.ErrUnknownPage)
		return
	}
	content, err := spec.build(r)
	if err != nil {
		s.logError(r, err)
		WriteError(w, err)
		return
	}
	page, err := s.app.PageFor(r.Context(), string(key), spec.title, notice, content)
	if err != nil {
		s.logError(r, err)
		WriteError(w, err)
		return
	}

	var buf bytes.Buffer
	if err := s.app.Renderer().Page(&buf, string(key), page); err != nil {
		s.logError(r, err)
		WriteError(w, err)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
}

func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	id, err := invoice.ParseID(chi.URLParam(r, "number"))
	if err != nil {
		WriteError(w, err)
		return
	}
	doc, err := s.app.Export(r.Context(), id)
	if err != nil {
		s.logError(r, err)
		WriteError(w, err)
		return
	}
	writeDocument(w, doc)
}

func writeDocument(w http.ResponseWriter, doc *invoice.Document) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(doc.FileName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc.Content)
}

func formEntity(r *http.Request) (form.Entity, pageKey, error) {
	entity := form.Entity(chi.URLParam(r, "entity"))
	key, ok := entityPages[entity]
	if !ok {
		return "", "", form.ErrUnknownEntity
	}
	return entity, key, nil
}

func (s *Server) handleFormOpen(w http.ResponseWriter, r *http.Request) {
	entity, key, err := formEntity(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		WriteError(w, ErrBadRequest)
		return
	}
	if _, err := s.app.OpenForm(r.Context(), entity, r.PostForm); err != nil {
		s.logError(r, err)
		WriteError(w, err)
		return
	}
	redirectWithNotice(w, r, pagePaths[key], "")
}

func (s *Server) handleFormClose(w http.ResponseWriter, r *http.Request) {
	entity, key, err := formEntity(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := s.app.CloseForm(entity); err != nil {
		WriteError(w, err)
		return
	}
	redirectWithNotice(w, r, pagePaths[key], "")
}

// handleFormSubmit redirects to the entity's page on success. On failure the
// page is rendered again with the form still open and the error as notice.
func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	entity, key, err := formEntity(r)
	if err != nil {
		WriteError(w, err)
		return
	}
	if err := r.ParseForm(); err != nil {
		WriteError(w, ErrBadRequest)
		return
	}
	res, err := s.app.SubmitForm(r.Context(), entity, r.PostForm)
	if err != nil {
		s.logError(r, err)
		status, _ := classify(err)
		s.renderPage(w, r, key, err.Error(), status)
		return
	}
	redirectWithNotice(w, r, pagePaths[key], res.Notice)
}

func (s *Server) handleTimerToggle(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		WriteError(w, ErrBadRequest)
		return
	}
	_, res, err := s.app.ToggleTimer(r.Context(), r.PostForm.Get("description"))
	if err != nil {
		s.logError(r, err)
		WriteError(w, err)
		return
	}
	notice := ""
	if res != nil {
		notice = res.Notice
	}
	redirectWithNotice(w, r, pagePaths[pageTime], notice)
}

func (s *Server) handleTimeEntryDelete(w http.ResponseWriter, r *http.Request) {
	res, err := s.app.DeleteTimeEntry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		s.logError(r, err)
		WriteError(w, err)
		return
	}
	redirectWithNotice(w, r, pagePaths[pageTime], res.Notice)
}
