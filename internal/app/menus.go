package app

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/ganot/freelanceflow/internal/domain/client"
	"github.com/ganot/freelanceflow/internal/domain/invoice"
	"github.com/ganot/freelanceflow/internal/domain/project"
	"github.com/ganot/freelanceflow/internal/render"
	"github.com/ganot/freelanceflow/internal/ui/form"
	"github.com/ganot/freelanceflow/internal/ui/menu"
)

// ActionResult is the outcome of a menu action. At most one of Form,
// Invoice, Document and Redirect is set.
type ActionResult struct {
	Notice   string                `json:"notice,omitempty"`
	Redirect string                `json:"redirect,omitempty"`
	Form     *render.FormView      `json:"form,omitempty"`
	Invoice  *render.InvoiceDetail `json:"invoice,omitempty"`
	Document *invoice.Document     `json:"-"`
	Refresh  []string              `json:"refresh,omitempty"`
}

// ToggleMenu handles a click on a row's action trigger.
func (a *App) ToggleMenu(tr menu.Trigger) (menu.State, error) {
	return a.menus.Toggle(tr)
}

// ClickDocument handles a click anywhere in the page.
func (a *App) ClickDocument(target menu.Target) menu.State {
	return a.menus.Click(target)
}

// ScrollDocument handles a page scroll.
func (a *App) ScrollDocument() menu.State {
	return a.menus.Scroll()
}

// Menu returns the open menu, if any.
func (a *App) Menu() menu.State {
	return a.menus.State()
}

// MenuAction runs action on the record the open menu was opened for. Deletes
// without confirm leave the menu open and fail with a *ConfirmationError
// carrying the prompt.
func (a *App) MenuAction(ctx context.Context, id menu.ID, action menu.Action, confirm bool) (*ActionResult, error) {
	if _, err := menu.ParseID(string(id)); err != nil {
		return nil, err
	}
	if !menu.Supports(id, action) {
		return nil, menu.ErrUnknownAction
	}

	if action == menu.ActionDelete && !confirm {
		st := a.menus.State()
		if !st.Open || st.Menu != id {
			return nil, menu.ErrMenuClosed
		}
		prompt, err := a.deletePrompt(ctx, id, st.RecordID)
		if err != nil {
			a.menus.Close()
			return nil, err
		}
		return nil, &ConfirmationError{Prompt: prompt}
	}

	recordID, err := a.menus.Take(id, action)
	if err != nil {
		return nil, err
	}

	var res *ActionResult
	switch id {
	case menu.Clients:
		res, err = a.clientAction(ctx, action, recordID)
	case menu.Projects:
		res, err = a.projectAction(ctx, action, recordID)
	case menu.Invoices:
		res, err = a.invoiceAction(ctx, action, recordID)
	}
	if err != nil {
		return nil, notFound(err)
	}
	return res, nil
}

func (a *App) deletePrompt(ctx context.Context, id menu.ID, recordID string) (string, error) {
	switch id {
	case menu.Clients:
		c, err := a.svc.Clients.Get(ctx, recordID)
		if err != nil {
			return "", notFound(err)
		}
		return fmt.Sprintf("Are you sure you want to remove client: %s?", c.Name), nil
	case menu.Projects:
		if _, err := a.svc.Projects.Get(ctx, recordID); err != nil {
			return "", notFound(err)
		}
		return "Delete this project?", nil
	default:
		inv, err := a.svc.Invoices.Get(ctx, recordID)
		if err != nil {
			return "", notFound(err)
		}
		return fmt.Sprintf("Delete invoice %s?", inv.ID), nil
	}
}

func (a *App) clientAction(ctx context.Context, action menu.Action, id string) (*ActionResult, error) {
	c, err := a.svc.Clients.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch action {
	case menu.ActionEdit:
		fv, err := a.formView(ctx, a.forms[form.Client].OpenEdit(c.ID, clientValues(*c)))
		if err != nil {
			return nil, err
		}
		return &ActionResult{Form: fv}, nil
	case menu.ActionEmail:
		link, err := client.ComposeURL(*c)
		if err != nil {
			return nil, err
		}
		return &ActionResult{Redirect: link}, nil
	case menu.ActionCreateInvoice:
		return &ActionResult{Redirect: "/invoices?client=" + url.QueryEscape(c.Name)}, nil
	default:
		if err := a.svc.Clients.Delete(ctx, c.ID); err != nil {
			return nil, err
		}
		return &ActionResult{
			Notice:  fmt.Sprintf(client.MsgDeleted, c.Name),
			Refresh: []string{ViewClients, ViewDashboard},
		}, nil
	}
}

func (a *App) projectAction(ctx context.Context, action menu.Action, id string) (*ActionResult, error) {
	p, err := a.svc.Projects.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if action == menu.ActionEdit {
		fv, err := a.formView(ctx, a.forms[form.Project].OpenEdit(p.ID, projectValues(*p)))
		if err != nil {
			return nil, err
		}
		return &ActionResult{Form: fv}, nil
	}
	if err := a.svc.Projects.Delete(ctx, p.ID); err != nil {
		return nil, err
	}
	return &ActionResult{
		Notice:  fmt.Sprintf(project.MsgDeleted, p.Name),
		Refresh: []string{ViewProjects, ViewDashboard},
	}, nil
}

func (a *App) invoiceAction(ctx context.Context, action menu.Action, id string) (*ActionResult, error) {
	inv, err := a.svc.Invoices.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	switch action {
	case menu.ActionView:
		detail := render.NewInvoiceDetail(*inv, a.Currency(ctx))
		return &ActionResult{Invoice: &detail}, nil
	case menu.ActionEdit:
		fv, err := a.formView(ctx, a.forms[form.Invoice].OpenEdit(inv.ID, invoiceValues(*inv)))
		if err != nil {
			return nil, err
		}
		return &ActionResult{Form: fv}, nil
	case menu.ActionExport:
		doc, err := a.Export(ctx, inv.ID)
		if err != nil {
			return nil, err
		}
		return &ActionResult{
			Notice:   fmt.Sprintf(invoice.MsgExported, inv.ID),
			Document: doc,
		}, nil
	default:
		if err := a.svc.Invoices.Delete(ctx, inv.ID); err != nil {
			return nil, err
		}
		return &ActionResult{
			Notice:  invoice.MsgDeleted,
			Refresh: []string{ViewInvoices, ViewClients, ViewDashboard},
		}, nil
	}
}

func notFound(err error) error {
	if errors.Is(err, client.ErrClientNotFound) ||
		errors.Is(err, project.ErrProjectNotFound) ||
		errors.Is(err, invoice.ErrInvoiceNotFound) {
		return fmt.Errorf("%w: %w", ErrRecordNotFound, err)
	}
	return err
}
