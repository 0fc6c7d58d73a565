// Package menu tracks the single open contextual action menu.
package menu

import (
	"errors"
	"sync"
)

// ID names one of the action menus.
type ID string

const (
	Clients  ID = "clients"
	Projects ID = "projects"
	Invoices ID = "invoices"
)

// Action is an entry of an action menu.
type Action string

const (
	ActionEdit          Action = "edit"
	ActionDelete        Action = "delete"
	ActionEmail         Action = "email"
	ActionCreateInvoice Action = "create_invoice"
	ActionView          Action = "view"
	ActionExport        Action = "export"
)

var (
	// ErrUnknownMenu is returned for a menu id outside Clients, Projects, Invoices.
	ErrUnknownMenu = errors.New("unknown menu")
	// ErrUnknownAction is returned for an action the menu does not offer.
	ErrUnknownAction = errors.New("unknown menu action")
	// ErrMenuClosed is returned when an action fires with no open menu.
	ErrMenuClosed = errors.New("menu is not open")
)

var catalog = map[ID][]Action{
	Clients:  {ActionEdit, ActionEmail, ActionCreateInvoice, ActionDelete},
	Projects: {ActionEdit, ActionDelete},
	Invoices: {ActionView, ActionEdit, ActionExport, ActionDelete},
}

// horizontal distance between the trigger's left edge and the menu's
var leftOffsets = map[ID]float64{
	Clients:  100,
	Projects: 100,
	Invoices: 130,
}

const verticalGap = 5

// ParseID validates a menu id.
func ParseID(s string) (ID, error) {
	id := ID(s)
	if _, ok := catalog[id]; !ok {
		return "", ErrUnknownMenu
	}
	return id, nil
}

// Actions lists the actions a menu offers, in display order.
func Actions(id ID) []Action {
	return append([]Action(nil), catalog[id]...)
}

// Supports reports whether menu id offers action.
func Supports(id ID, action Action) bool {
	for _, a := range catalog[id] {
		if a == action {
			return true
		}
	}
	return false
}

// Rect is the viewport-relative bounding box of a trigger.
type Rect struct {
	Top    float64 `json:"top"`
	Left   float64 `json:"left"`
	Bottom float64 `json:"bottom"`
	Right  float64 `json:"right"`
}

// Position is the document-relative placement of an open menu.
type Position struct {
	Top  float64 `json:"top"`
	Left float64 `json:"left"`
}

// Trigger is a click on a row's action button.
type Trigger struct {
	Menu      ID      `json:"menu"`
	RecordID  string  `json:"record_id"`
	Rect      Rect    `json:"rect"`
	ScrollTop float64 `json:"scroll_top"`
}

// Target describes where a document click landed.
type Target struct {
	InsideMenu bool `json:"inside_menu"`
	OnTrigger  bool `json:"on_trigger"`
}

// State is the observable menu state.
type State struct {
	Open     bool     `json:"open"`
	Menu     ID       `json:"menu,omitempty"`
	RecordID string   `json:"record_id,omitempty"`
	Position Position `json:"position"`
	Actions  []Action `json:"actions,omitempty"`
}

// Manager owns the one open menu and the record it acts on.
type Manager struct {
	mu       sync.Mutex
	open     ID
	recordID string
	position Position
}

// NewManager creates a manager with every menu closed.
func NewManager() *Manager {
	return &Manager{}
}

// Toggle handles a trigger click. Clicking the trigger of the open menu for
// the same record closes it; any other trigger (re)opens its menu positioned
// below and to the left of the trigger.
func (m *Manager) Toggle(tr Trigger) (State, error) {
	if _, ok := catalog[tr.Menu]; !ok {
		return State{}, ErrUnknownMenu
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.open == tr.Menu && m.recordID == tr.RecordID {
		m.closeLocked()
		return m.stateLocked(), nil
	}

	m.open = tr.Menu
	m.recordID = tr.RecordID
	m.position = Position{
		Top:  tr.Rect.Bottom + tr.ScrollTop + verticalGap,
		Left: tr.Rect.Left - leftOffsets[tr.Menu],
	}
	return m.stateLocked(), nil
}

// Click closes the open menu when the click landed outside both the menu and
// its trigger.
func (m *Manager) Click(target Target) State {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !target.InsideMenu && !target.OnTrigger {
		m.closeLocked()
	}
	return m.stateLocked()
}

// Scroll closes any open menu.
func (m *Manager) Scroll() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
	return m.stateLocked()
}

// Close closes any open menu.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.closeLocked()
}

// Take validates that action belongs to the open menu id, closes the menu,
// and returns the record the menu was opened for.
func (m *Manager) Take(id ID, action Action) (string, error) {
	if _, ok := catalog[id]; !ok {
		return "", ErrUnknownMenu
	}
	if !Supports(id, action) {
		return "", ErrUnknownAction
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	if m.open != id || m.recordID == "" {
		return "", ErrMenuClosed
	}
	recordID := m.recordID
	m.closeLocked()
	return recordID, nil
}

// State returns the current menu state.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.stateLocked()
}

func (m *Manager) closeLocked() {
	m.open = ""
	m.recordID = ""
	m.position = Position{}
}

func (m *Manager) stateLocked() State {
	if m.open == "" {
		return State{}
	}
	return State{
		Open:     true,
		Menu:     m.open,
		RecordID: m.recordID,
		Position: m.position,
		Actions:  Actions(m.open),
	}
}
