package transport

import (
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/ganot/freelanceflow/internal/app"
)

// Server wires HTTP handlers.
type Server struct {
	app    *app.App
	pages  map[string]pageSpec
	logger *slog.Logger
}

// NewServer creates an HTTP server router with middleware. mcpHandler is
// mounted at /mcp when non-nil. Every route except /health sits behind
// authMiddleware when one is given.
func NewServer(a *app.App, mcpHandler http.Handler, authMiddleware func(http.Handler) http.Handler, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()
	r.Use(LoggingMiddleware(logger))

	srv := &Server{app: a, logger: logger}
	srv.pages = srv.pageSpecs()

	r.Get("/health", srv.handleHealth)

	r.Group(func(r chi.Router) {
		if authMiddleware != nil {
			r.Use(authMiddleware)
		}

		r.Get("/", srv.handlePage(pageDashboard))
		r.Get("/clients", srv.handlePage(pageClients))
		r.Get("/projects", srv.handlePage(pageProjects))
		r.Get("/invoices", srv.handlePage(pageInvoices))
		r.Get("/invoices/{number}", srv.handlePage(pageInvoice))
		r.Get("/invoices/{number}/export", srv.handleExport)
		r.Get("/time", srv.handlePage(pageTime))

		r.Post("/forms/{entity}/open", srv.handleFormOpen)
		r.Post("/forms/{entity}/close", srv.handleFormClose)
		r.Post("/forms/{entity}", srv.handleFormSubmit)

		r.Get("/ui/menu", srv.handleMenu)
		r.Post("/ui/menus/{menu}/toggle", srv.handleMenuToggle)
		r.Post("/ui/menus/{menu}/actions/{action}", srv.handleMenuAction)
		r.Post("/ui/click", srv.handleClick)
		r.Post("/ui/scroll", srv.handleScroll)

		r.Get("/timer", srv.handleTimer)
		r.Post("/timer/toggle", srv.handleTimerToggle)
		r.Post("/time/{id}/delete", srv.handleTimeEntryDelete)

		r.Route("/api", srv.apiRoutes)

		if mcpHandler != nil {
			r.Handle("/mcp", mcpHandler)
		}
	})

	return r
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("ok"))
}

func redirectWithNotice(w http.ResponseWriter, r *http.Request, path, notice string) {
	if notice != "" {
		path += "?notice=" + url.QueryEscape(notice)
	}
	http.Redirect(w, r, path, http.StatusSeeOther)
}

func (s *Server) logError(r *http.Request, err error) {
	if s.logger == nil {
		return
	}
	if status, _ := classify(err); status >= http.StatusInternalServerError {
		s.logger.Error("request failed", "method", r.Method, "path", r.URL.Path, "error", err)
	}
}
