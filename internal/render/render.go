// Package render turns entity lists into the dashboard's HTML views and the
// standalone invoice export document.
package render

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/ui/form"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Page names.
const (
	PageDashboard = "dashboard"
	PageClients   = "clients"
	PageProjects  = "projects"
	PageInvoices  = "invoices"
	PageInvoice   = "invoice"
	PageTime      = "time"
)

var pageNames = []string{PageDashboard, PageClients, PageProjects, PageInvoices, PageInvoice, PageTime}

// ErrUnknownPage is returned by Page for a name without a template.
var ErrUnknownPage = errors.New("unknown page")

// Page is the data of a full dashboard page.
type Page struct {
	Title   string
	Active  string
	Theme   string
	Notice  string
	Form    *FormView
	Content any
}

// FormView is an open entity form with its select options.
type FormView struct {
	form.View
	ClientOptions []string
	StatusOptions []string
}

var statusOptions = map[form.Entity][]string{
	form.Client:  {"active", "onboarding", "inactive"},
	form.Project: {"active", "pending", "review", "completed"},
	form.Invoice: {"paid", "pending", "overdue"},
}

// NewFormView pairs a form state with the options its selects offer.
func NewFormView(v form.View, clientOptions []string) *FormView {
	return &FormView{View: v, ClientOptions: clientOptions, StatusOptions: statusOptions[v.Entity]}
}

var funcs = template.FuncMap{
	"markdown": renderMarkdownHTML,
	"upper":    strings.ToUpper,
	"inputType": func(key string) string {
		switch key {
		case "email":
			return "email"
		case "date", "due", "deadline":
			return "date"
		case "progress", "amount":
			return "number"
		default:
			return "text"
		}
	},
}

// Renderer holds the parsed templates.
type Renderer struct {
	pages    map[string]*template.Template
	document *template.Template
}

// New parses the embedded templates.
func New() (*Renderer, error) {
	base, err := template.New("base").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", "templates/form.html")
	if err != nil {
		return nil, fmt.Errorf("parsing layout: %w", err)
	}

	r := &Renderer{pages: make(map[string]*template.Template, len(pageNames))}
	for _, name := range pageNames {
		clone, err := base.Clone()
		if err != nil {
			return nil, err
		}
		t, err := clone.ParseFS(templatesFS, "templates/"+name+".html")
		if err != nil {
			return nil, fmt.Errorf("parsing page %s: %w", name, err)
		}
		r.pages[name] = t
	}

	r.document, err = template.New("invoice_document.html").Funcs(funcs).ParseFS(templatesFS, "templates/invoice_document.html")
	if err != nil {
		return nil, fmt.Errorf("parsing invoice document: %w", err)
	}
	return r, nil
}

// Page writes the named page.
func (r *Renderer) Page(w io.Writer, name string, p Page) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownPage, name)
	}
	if p.Active == "" {
		p.Active = name
	}
	return t.ExecuteTemplate(w, "layout", p)
}

// Exporter renders invoice documents with amounts in one currency.
type Exporter struct {
	r    *Renderer
	code string
}

// Exporter returns an invoice.DocumentRenderer formatting amounts in code.
func (r *Renderer) Exporter(code string) Exporter {
	return Exporter{r: r, code: code}
}

type documentData struct {
	InvoiceRow
	StatusUpper string
	Note        template.HTML
}

// InvoiceDocument renders the printable, self-contained invoice.
func (e Exporter) InvoiceDocument(inv invoice.Invoice) ([]byte, error) {
	data := documentData{
		InvoiceRow:  NewInvoiceRow(inv, e.code),
		StatusUpper: strings.ToUpper(string(inv.Status)),
		Note:        renderMarkdownHTML(inv.Note),
	}
	var buf bytes.Buffer
	if err := e.r.document.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("rendering invoice %s: %w", inv.ID, err)
	}
	return buf.Bytes(), nil
}
