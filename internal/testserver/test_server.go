// Package testserver runs the complete HTTP surface, MCP endpoint included,
// over an in-memory database for end-to-end tests.
package testserver

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"

	"github.com/ganot/freelanceflow/internal/app"
	"github.com/ganot/freelanceflow/internal/mcp"
	"github.com/ganot/freelanceflow/internal/render"
	"github.com/ganot/freelanceflow/internal/sqlite"
	"github.com/ganot/freelanceflow/internal/transport"
)

type TestServer struct {
	Server *httptest.Server
	DB     *sqlite.DB
	App    *app.App
	Token  string
}

// New starts a server requiring token as bearer credential.
func New(t *testing.T, token string) *TestServer {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := sqlite.New(dsn)
	require.NoError(t, err)
	require.NoError(t, db.RunMigrations())

	svc, err := app.Open(context.Background(), db, "USD", nil)
	require.NoError(t, err)
	renderer, err := render.New()
	require.NoError(t, err)
	a := app.New(svc, renderer, app.Options{Location: time.UTC}, nil)

	mcpServer := mcp.NewServer(mcp.Config{App: a, Version: "test"})
	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(*http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{SessionTimeout: time.Minute},
	)

	router := transport.NewServer(a, mcpHandler, transport.AuthMiddleware(transport.StaticToken(token)), nil)
	server := httptest.NewServer(router)

	ts := &TestServer{
		Server: server,
		DB:     db,
		App:    a,
		Token:  token,
	}

	t.Cleanup(func() {
		server.Close()
		a.Close()
		_ = db.Close()
	})

	return ts
}

// Client returns an HTTP client that sends the bearer token and does not
// follow redirects.
func (ts *TestServer) Client() *http.Client {
	return &http.Client{
		Transport: &bearerTransport{token: ts.Token, base: http.DefaultTransport},
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}
}

// Do sends an authenticated request and returns the status and body.
func (ts *TestServer) Do(t *testing.T, method, path, contentType string, body io.Reader) (int, http.Header, string) {
	t.Helper()
	req, err := http.NewRequest(method, ts.Server.URL+path, body)
	require.NoError(t, err)
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	resp, err := ts.Client().Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, resp.Header, string(data)
}

// ConnectMCP opens an MCP client session over the streamable HTTP endpoint.
func (ts *TestServer) ConnectMCP(t *testing.T) *sdkmcp.ClientSession {
	t.Helper()
	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "test"}, nil)
	session, err := client.Connect(context.Background(), &sdkmcp.StreamableClientTransport{
		Endpoint:   ts.Server.URL + "/mcp",
		HTTPClient: ts.Client(),
	}, nil)
	require.NoError(t, err)
	t.Cleanup(func() { session.Close() })
	return session
}

type bearerTransport struct {
	token string
	base  http.RoundTripper
}

func (b *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req = req.Clone(req.Context())
	req.Header.Set("Authorization", "Bearer "+b.token)
	return b.base.RoundTrip(req)
}
