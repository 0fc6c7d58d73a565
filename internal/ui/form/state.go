package form

import "sync"

// Mode is whether a submission creates or edits.
type Mode string

const (
	ModeCreate Mode = "create"
	ModeEdit   Mode = "edit"
)

// View is the rendered state of a form.
type View struct {
	Entity    Entity  `json:"entity"`
	Open      bool    `json:"open"`
	Mode      Mode    `json:"mode"`
	EditingID string  `json:"editing_id,omitempty"`
	Title     string  `json:"title"`
	Button    string  `json:"button"`
	Values    Values  `json:"values"`
	Fields    []Field `json:"fields"`
}

// State tracks one entity form: closed, creating, or editing a record by id.
type State struct {
	mu        sync.Mutex
	schema    Schema
	open      bool
	mode      Mode
	editingID string
	values    Values
}

// NewState creates a closed form for schema.
func NewState(schema Schema) *State {
	return &State{schema: schema, mode: ModeCreate}
}

// OpenCreate opens a blank form, optionally prefilled.
func (s *State) OpenCreate(prefill Values) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	s.mode = ModeCreate
	s.editingID = ""
	s.values = copyValues(prefill)
	return s.viewLocked()
}

// OpenEdit opens the form on the record with id, prefilled with its values.
func (s *State) OpenEdit(id string, values Values) View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
	s.mode = ModeEdit
	s.editingID = id
	s.values = copyValues(values)
	return s.viewLocked()
}

// Close resets the form and clears the editing id.
func (s *State) Close() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
	s.mode = ModeCreate
	s.editingID = ""
	s.values = nil
	return s.viewLocked()
}

// Target returns the mode a submission runs in and, in edit mode, the id of
// the record under edit. A closed form submits as create.
func (s *State) Target() (Mode, string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.open && s.mode == ModeEdit {
		return ModeEdit, s.editingID
	}
	return ModeCreate, ""
}

// View returns the current form state.
func (s *State) View() View {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.viewLocked()
}

func (s *State) viewLocked() View {
	v := View{
		Entity:    s.schema.Entity,
		Open:      s.open,
		Mode:      s.mode,
		EditingID: s.editingID,
		Title:     s.schema.Titles.Create,
		Button:    s.schema.Titles.CreateButton,
		Values:    copyValues(s.values),
		Fields:    s.schema.Fields,
	}
	if s.mode == ModeEdit {
		v.Title = s.schema.Titles.Edit
		v.Button = s.schema.Titles.EditButton
	}
	return v
}

func copyValues(v Values) Values {
	out := make(Values, len(v))
	for k, val := range v {
		out[k] = val
	}
	return out
}
