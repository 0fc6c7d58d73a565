package testserver

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"strings"
	"testing"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func TestEndToEnd_FormsAndPages(t *testing.T) {
	ts := New(t, "secret")

	resp, err := http.Get(ts.Server.URL + "/clients")
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	form := url.Values{"name": {"Acme Co"}, "email": {"billing@acme.test"}, "status": {"active"}}
	status, header, _ := ts.Do(t, http.MethodPost, "/forms/client", "application/x-www-form-urlencoded", strings.NewReader(form.Encode()))
	require.Equal(t, http.StatusSeeOther, status)
	require.True(t, strings.HasPrefix(header.Get("Location"), "/clients?notice="))

	invoice := url.Values{"client": {"Acme Co"}, "date": {"2025-03-14"}, "amount": {"500"}, "status": {"paid"}}
	status, _, _ = ts.Do(t, http.MethodPost, "/forms/invoice", "application/x-www-form-urlencoded", strings.NewReader(invoice.Encode()))
	require.Equal(t, http.StatusSeeOther, status)

	status, _, body := ts.Do(t, http.MethodGet, "/", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "$500.00")
	require.Contains(t, body, "Acme Co")
}

func TestEndToEnd_MCPOverHTTP(t *testing.T) {
	ts := New(t, "secret")
	session := ts.ConnectMCP(t)
	ctx := context.Background()

	res, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
		Name:      "create_client",
		Arguments: map[string]any{"name": "Globex", "email": "ap@globex.test"},
	})
	require.NoError(t, err)
	require.False(t, res.IsError)

	res, err = session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "list_clients", Arguments: map[string]any{}})
	require.NoError(t, err)
	require.False(t, res.IsError)
	data, err := json.Marshal(res.StructuredContent)
	require.NoError(t, err)
	require.Contains(t, string(data), "Globex")

	status, _, body := ts.Do(t, http.MethodGet, "/api/clients", "", nil)
	require.Equal(t, http.StatusOK, status)
	require.Contains(t, body, "Globex")
}
