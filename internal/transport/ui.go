package transport

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ganot/freelanceflow/internal/ui/menu"
)

func (s *Server) handleMenu(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, s.app.Menu())
}

func (s *Server) handleMenuToggle(w http.ResponseWriter, r *http.Request) {
	id, err := menu.ParseID(chi.URLParam(r, "menu"))
	if err != nil {
		WriteError(w, err)
		return
	}
	var tr menu.Trigger
	if err := DecodeJSON(r.Body, &tr); err != nil {
		WriteError(w, err)
		return
	}
	tr.Menu = id
	if tr.RecordID == "" {
		WriteError(w, ErrBadRequest)
		return
	}
	st, err := s.app.ToggleMenu(tr)
	if err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, st)
}

func (s *Server) handleClick(w http.ResponseWriter, r *http.Request) {
	var target menu.Target
	if err := DecodeJSON(r.Body, &target); err != nil {
		WriteError(w, err)
		return
	}
	WriteJSON(w, http.StatusOK, s.app.ClickDocument(target))
}

func (s *Server) handleScroll(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, s.app.ScrollDocument())
}

// handleMenuAction runs an action of the open menu. Export answers with the
// document as a download, everything else with the JSON result.
func (s *Server) handleMenuAction(w http.ResponseWriter, r *http.Request) {
	id, err := menu.ParseID(chi.URLParam(r, "menu"))
	if err != nil {
		WriteError(w, err)
		return
	}
	confirm, _ := strconv.ParseBool(r.URL.Query().Get("confirm"))

	res, err := s.app.MenuAction(r.Context(), id, menu.Action(chi.URLParam(r, "action")), confirm)
	if err != nil {
		s.logError(r, err)
		WriteError(w, err)
		return
	}
	if res.Document != nil {
		writeDocument(w, res.Document)
		return
	}
	WriteJSON(w, http.StatusOK, res)
}

func (s *Server) handleTimer(w http.ResponseWriter, _ *http.Request) {
	WriteJSON(w, http.StatusOK, s.app.Timer())
}
