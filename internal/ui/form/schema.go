// Package form binds submitted entity forms by field name and tracks whether
// a form is creating a record or editing one.
package form

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Entity names a form.
type Entity string

const (
	Client  Entity = "client"
	Project Entity = "project"
	Invoice Entity = "invoice"
)

var (
	// ErrUnknownEntity is returned for a form name without a schema.
	ErrUnknownEntity = errors.New("unknown form")
	// ErrMissingField is returned when a required field is blank.
	ErrMissingField = errors.New("missing required field")
)

// Field is one named input of a form.
type Field struct {
	Key      string `json:"key"`
	Label    string `json:"label"`
	Required bool   `json:"required"`
}

// Titles are the heading and submit button captions per mode.
type Titles struct {
	Create       string `json:"create"`
	Edit         string `json:"edit"`
	CreateButton string `json:"create_button"`
	EditButton   string `json:"edit_button"`
}

// Schema describes a form by field name.
type Schema struct {
	Entity Entity  `json:"entity"`
	Fields []Field `json:"fields"`
	Titles Titles  `json:"titles"`
}

var schemas = map[Entity]Schema{
	Client: {
		Entity: Client,
		Fields: []Field{
			{Key: "name", Label: "Client Name", Required: true},
			{Key: "email", Label: "Email"},
			{Key: "country", Label: "Country"},
			{Key: "status", Label: "Status"},
			{Key: "note", Label: "Note"},
		},
		Titles: Titles{Create: "Add New Client", Edit: "Edit Client", CreateButton: "Add Client", EditButton: "Update Client"},
	},
	Project: {
		Entity: Project,
		Fields: []Field{
			{Key: "name", Label: "Project Name", Required: true},
			{Key: "client", Label: "Client"},
			{Key: "deadline", Label: "Deadline"},
			{Key: "status", Label: "Status"},
			{Key: "progress", Label: "Progress (%)"},
			{Key: "note", Label: "Note"},
		},
		Titles: Titles{Create: "Create New Project", Edit: "Edit Project", CreateButton: "Create Project", EditButton: "Save Changes"},
	},
	Invoice: {
		Entity: Invoice,
		Fields: []Field{
			{Key: "client", Label: "Client", Required: true},
			{Key: "date", Label: "Issue Date"},
			{Key: "due", Label: "Due Date"},
			{Key: "amount", Label: "Amount", Required: true},
			{Key: "status", Label: "Status"},
			{Key: "note", Label: "Note"},
		},
		Titles: Titles{Create: "Create New Invoice", Edit: "Edit Invoice", CreateButton: "Create Invoice", EditButton: "Update Invoice"},
	},
}

// SchemaFor returns the schema of entity.
func SchemaFor(entity Entity) (Schema, error) {
	s, ok := schemas[entity]
	if !ok {
		return Schema{}, fmt.Errorf("%w: %q", ErrUnknownEntity, entity)
	}
	return s, nil
}

// Values are bound form values keyed by field name.
type Values map[string]string

// Get returns the value of key, or "".
func (v Values) Get(key string) string {
	return v[key]
}

// Bind reads every schema field from submitted by key, trimming whitespace.
// Unknown keys are ignored.
func (s Schema) Bind(submitted url.Values) (Values, error) {
	out := make(Values, len(s.Fields))
	for _, f := range s.Fields {
		v := strings.TrimSpace(submitted.Get(f.Key))
		if f.Required && v == "" {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, f.Key)
		}
		out[f.Key] = v
	}
	return out, nil
}
