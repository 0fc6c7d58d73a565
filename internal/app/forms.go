package app

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strconv"

	"github.com/ganot/freelanceflow/internal/currency"
	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/render"
	"github.com/ganot/freelanceflow/internal/ui/form"
)

var pageForms = map[string]form.Entity{
	render.PageClients:  form.Client,
	render.PageProjects: form.Project,
	render.PageInvoices: form.Invoice,
}

func (a *App) formState(entity form.Entity) (*form.State, error) {
	st, ok := a.forms[entity]
	if !ok {
		return nil, fmt.Errorf("%w: %q", form.ErrUnknownEntity, entity)
	}
	return st, nil
}

// OpenForm opens the entity's form in create mode. prefill preselects values
// by field name, e.g. client=Acme+Co for the invoice deep link.
func (a *App) OpenForm(ctx context.Context, entity form.Entity, prefill url.Values) (*render.FormView, error) {
	st, err := a.formState(entity)
	if err != nil {
		return nil, err
	}
	schema, _ := form.SchemaFor(entity)
	values := form.Values{}
	for _, f := range schema.Fields {
		if v := prefill.Get(f.Key); v != "" {
			values[f.Key] = v
		}
	}
	a.menus.Close()
	return a.formView(ctx, st.OpenCreate(values))
}

// CloseForm cancels the entity's form and clears its editing id.
func (a *App) CloseForm(entity form.Entity) error {
	st, err := a.formState(entity)
	if err != nil {
		return err
	}
	st.Close()
	return nil
}

// OpenFormView returns the entity's form when it is open, or nil.
func (a *App) OpenFormView(ctx context.Context, entity form.Entity) (*render.FormView, error) {
	st, err := a.formState(entity)
	if err != nil {
		return nil, err
	}
	v := st.View()
	if !v.Open {
		return nil, nil
	}
	return a.formView(ctx, v)
}

func (a *App) formView(ctx context.Context, v form.View) (*render.FormView, error) {
	if v.Entity == form.Client {
		return render.NewFormView(v, nil), nil
	}
	options, err := a.ClientOptions(ctx)
	if err != nil {
		return nil, err
	}
	// a preselected client that is not stored still gets an option
	if name := v.Values.Get("client"); name != "" && !slices.Contains(options, name) {
		options = append(options, name)
	}
	return render.NewFormView(v, options), nil
}

// ClientOptions lists the names of every named client.
func (a *App) ClientOptions(ctx context.Context) ([]string, error) {
	clients, err := a.svc.Clients.List(ctx)
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(clients))
	for _, c := range clients {
		if c.Named() {
			names = append(names, c.Name)
		}
	}
	return names, nil
}

// SubmitForm binds the submitted values by field name and creates or updates
// the record depending on the form's mode. On success the form closes.
func (a *App) SubmitForm(ctx context.Context, entity form.Entity, submitted url.Values) (*Result, error) {
	st, err := a.formState(entity)
	if err != nil {
		return nil, err
	}
	schema, _ := form.SchemaFor(entity)
	values, err := schema.Bind(submitted)
	if err != nil {
		return nil, err
	}

	mode, editingID := st.Target()
	var res *Result
	switch entity {
	case form.Client:
		res, err = a.submitClient(ctx, mode, editingID, values)
	case form.Project:
		res, err = a.submitProject(ctx, mode, editingID, values)
	case form.Invoice:
		res, err = a.submitInvoice(ctx, mode, editingID, values)
	}
	if err != nil {
		return nil, err
	}

	st.Close()
	if a.logger != nil {
		a.logger.Debug("form submitted", "entity", entity, "mode", mode, "record_id", res.RecordID)
	}
	return res, nil
}

func (a *App) submitClient(ctx context.Context, mode form.Mode, id string, v form.Values) (*Result, error) {
	fields := client.Fields{
		Name:    v.Get("name"),
		Email:   v.Get("email"),
		Country: v.Get("country"),
		Status:  client.Status(v.Get("status")),
		Note:    v.Get("note"),
	}
	refresh := []string{ViewClients, ViewDashboard}
	if mode == form.ModeEdit {
		c, err := a.svc.Clients.Update(ctx, client.UpdateRequest{ID: id, Fields: fields})
		if err != nil {
			return nil, err
		}
		return &Result{Notice: client.MsgUpdated, RecordID: c.ID, Refresh: refresh}, nil
	}
	c, err := a.svc.Clients.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	return &Result{Notice: client.MsgCreated, RecordID: c.ID, Refresh: refresh}, nil
}

func (a *App) submitProject(ctx context.Context, mode form.Mode, id string, v form.Values) (*Result, error) {
	progress, err := parseProgress(v.Get("progress"))
	if err != nil {
		return nil, err
	}
	fields := project.Fields{
		Name:     v.Get("name"),
		Client:   v.Get("client"),
		Deadline: v.Get("deadline"),
		Status:   project.Status(v.Get("status")),
		Progress: progress,
		Note:     v.Get("note"),
	}
	var p *project.Project
	if mode == form.ModeEdit {
		p, err = a.svc.Projects.Update(ctx, project.UpdateRequest{ID: id, Fields: fields})
	} else {
		p, err = a.svc.Projects.Create(ctx, fields)
	}
	if err != nil {
		return nil, err
	}
	return &Result{Notice: project.MsgSaved, RecordID: p.ID, Refresh: []string{ViewProjects, ViewDashboard}}, nil
}

func (a *App) submitInvoice(ctx context.Context, mode form.Mode, id string, v form.Values) (*Result, error) {
	amount, ok := currency.Parse(v.Get("amount"))
	if !ok {
		return nil, fmt.Errorf("%w: amount %q is not a number", invoice.ErrInvalidInput, v.Get("amount"))
	}
	fields := invoice.Fields{
		Client: v.Get("client"),
		Date:   v.Get("date"),
		Due:    v.Get("due"),
		Amount: currency.NewAmount(amount),
		Status: invoice.Status(v.Get("status")),
		Note:   v.Get("note"),
	}
	refresh := []string{ViewInvoices, ViewClients, ViewDashboard}
	if mode == form.ModeEdit {
		inv, err := a.svc.Invoices.Update(ctx, invoice.UpdateRequest{ID: id, Fields: fields})
		if err != nil {
			return nil, err
		}
		return &Result{Notice: invoice.MsgUpdated, RecordID: inv.ID, Refresh: refresh}, nil
	}
	inv, err := a.svc.Invoices.Create(ctx, fields)
	if err != nil {
		return nil, err
	}
	return &Result{Notice: invoice.MsgCreated, RecordID: inv.ID, Refresh: refresh}, nil
}

func parseProgress(s string) (project.Progress, error) {
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("%w: progress %q is not a whole number", project.ErrInvalidInput, s)
	}
	return project.Progress(n), nil
}

func clientValues(c client.Client) form.Values {
	return form.Values{
		"name":    c.Name,
		"email":   c.Email,
		"country": c.Country,
		"status":  string(c.Status),
		"note":    c.Note,
	}
}

func projectValues(p project.Project) form.Values {
	return form.Values{
		"name":     p.Name,
		"client":   p.Client,
		"deadline": p.Deadline,
		"status":   string(p.Status),
		"progress": strconv.Itoa(int(p.Progress)),
		"note":     p.Note,
	}
}

func invoiceValues(inv invoice.Invoice) form.Values {
	return form.Values{
		"client": inv.Client,
		"date":   inv.Date,
		"due":    inv.Due,
		"amount": inv.Amount.StringFixed(2),
		"status": string(inv.Status),
		"note":   inv.Note,
	}
}
