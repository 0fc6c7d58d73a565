package mcp

import (
	"context"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
)

const serverInstructions = `freelanceflow is a freelancer's dashboard: clients, projects, invoices and tracked time.

Core concepts:
- Client: a customer. Its name is the join key; projects and invoices reference clients by name, not id.
- Project: work for a client with a status and a 0-100 progress.
- Invoice: a bill numbered #INV-1026 upwards. Numbers are never reused after a delete.
- Time entry: a finished timer session, recorded only when at least one whole second elapsed.

Workflow:
1) Orient with get_dashboard (income counts paid invoices only).
2) Browse with list_clients / list_projects / list_invoices / list_time_entries.
3) Mutate with the create_* and update_* tools. Deletes need confirm=true.
4) export_invoice returns a printable HTML document.

Docs:
- freelanceflow://docs/index
- freelanceflow://docs/data-model
`

type docResource struct {
	URI         string
	Name        string
	Title       string
	Description string
	Content     string
}

var docResources = []docResource{
	{
		URI:         "freelanceflow://docs/index",
		Name:        "docs_index",
		Title:       "freelanceflow docs index",
		Description: "Entry point: the tools grouped by task.",
		Content: `# freelanceflow: Agent Docs Index

## Tools

- Clients: ` + "`list_clients`, `create_client`, `update_client`, `delete_client`" + `
- Projects: ` + "`list_projects`, `create_project`, `update_project`, `delete_project`" + `
- Invoices: ` + "`list_invoices`, `create_invoice`, `update_invoice`, `delete_invoice`, `export_invoice`" + `
- Time: ` + "`list_time_entries`, `delete_time_entry`, `toggle_timer`" + `
- Overview: ` + "`get_dashboard`, `get_recent_activity`" + `

## Errors

Tool errors carry a code such as ` + "`CLIENT_NOT_FOUND`, `INVALID_INPUT`" + ` or
` + "`CONFIRMATION_REQUIRED`" + ` followed by a recovery hint.
`,
	},
	{
		URI:         "freelanceflow://docs/data-model",
		Name:        "docs_data_model",
		Title:       "freelanceflow data model",
		Description: "Entities, statuses and how they relate.",
		Content: `# Data model

## Client
- status: ` + "`active` | `onboarding` | `inactive`" + `
- earnings: sum of the client's invoices with status exactly ` + "`paid`" + `

## Project
- status: ` + "`active` (In Progress) | `pending` (Planning) | `review` | `completed`" + `
- progress: integer percentage clamped to 0..100

## Invoice
- id: ` + "`#INV-<n>`" + `; tools accept ` + "`INV-1026`" + `, ` + "`#INV-1026`" + ` or ` + "`1026`" + `
- status: ` + "`paid` | `pending` | `overdue`" + `
- note: Markdown, rendered on the exported document

## Time entry
- duration: ` + "`HH:MM:SS`" + `, project defaults to General
`,
	},
}

func registerDocResources(server *sdkmcp.Server) {
	for _, doc := range docResources {
		server.AddResource(&sdkmcp.Resource{
			URI:         doc.URI,
			Name:        doc.Name,
			Title:       doc.Title,
			Description: doc.Description,
			MIMEType:    "text/markdown",
			Size:        int64(len(doc.Content)),
		}, func(_ context.Context, req *sdkmcp.ReadResourceRequest) (*sdkmcp.ReadResourceResult, error) {
			uri := doc.URI
			if req != nil && req.Params != nil && req.Params.URI != "" {
				uri = req.Params.URI
			}
			return &sdkmcp.ReadResourceResult{
				Contents: []*sdkmcp.ResourceContents{{
					URI:      uri,
					MIMEType: "text/markdown",
					Text:     doc.Content,
				}},
			}, nil
		})
	}
}
