package main_test

import (
	"context"
	"os"
	"os/exec"
	"testing"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/require"
)

func serverBinary(t *testing.T) string {
	t.Helper()
	for _, path := range []string{"./bin/freelanceflow", "../../bin/freelanceflow"} {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	t.Skip("Server binary not found. Build it with 'go build -o bin/freelanceflow ./cmd/server' first.")
	return ""
}

func stdioEnv() []string {
	return append(os.Environ(),
		"FREELANCEFLOW_TRANSPORT_MODE=stdio",
		"FREELANCEFLOW_DB_PATH=:memory:",
		"FREELANCEFLOW_LOG_PATH=",
	)
}

// TestStdioProtocolCompliance drives the server binary over stdio with the
// SDK client.
func TestStdioProtocolCompliance(t *testing.T) {
	binaryPath := serverBinary(t)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Env = stdioEnv()

	client := sdkmcp.NewClient(&sdkmcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, &sdkmcp.CommandTransport{Command: cmd}, nil)
	require.NoError(t, err, "Failed to connect to server")
	defer session.Close()

	t.Run("ServerInfo", func(t *testing.T) {
		initResult := session.InitializeResult()
		require.NotNil(t, initResult)
		require.NotNil(t, initResult.ServerInfo)
		require.Equal(t, "freelanceflow", initResult.ServerInfo.Name)
	})

	t.Run("ListTools", func(t *testing.T) {
		tools, err := session.ListTools(ctx, nil)
		require.NoError(t, err, "tools/list failed")

		names := make(map[string]bool)
		for _, tool := range tools.Tools {
			names[tool.Name] = true
		}
		for _, name := range []string{"list_clients", "create_client", "create_invoice", "export_invoice", "get_dashboard"} {
			require.True(t, names[name], "Missing expected tool: %s", name)
		}
	})

	t.Run("CreateAndListClients", func(t *testing.T) {
		result, err := session.CallTool(ctx, &sdkmcp.CallToolParams{
			Name:      "create_client",
			Arguments: map[string]any{"name": "Acme Co"},
		})
		require.NoError(t, err, "tools/call create_client failed")
		require.False(t, result.IsError, "create_client returned error: %v", result)

		result, err = session.CallTool(ctx, &sdkmcp.CallToolParams{Name: "list_clients"})
		require.NoError(t, err, "tools/call list_clients failed")
		require.False(t, result.IsError, "list_clients returned error: %v", result)
		require.NotEmpty(t, result.Content)
	})
}

// TestStdioProtocol_StdoutHygiene checks that stdout carries nothing but
// JSON-RPC messages.
func TestStdioProtocol_StdoutHygiene(t *testing.T) {
	binaryPath := serverBinary(t)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	cmd := exec.CommandContext(ctx, binaryPath)
	cmd.Env = append(stdioEnv(), "FREELANCEFLOW_LOG_LEVEL=debug")

	stdin, err := cmd.StdinPipe()
	require.NoError(t, err)
	stdout, err := cmd.StdoutPipe()
	require.NoError(t, err)
	stderr, err := cmd.StderrPipe()
	require.NoError(t, err)
	require.NoError(t, cmd.Start())

	initReq := `{"jsonrpc":"2.0","method":"initialize","params":{"protocolVersion":"2024-11-05","capabilities":{},"clientInfo":{"name":"test","version":"1.0"}},"id":1}`
	_, err = stdin.Write([]byte(initReq + "\n"))
	require.NoError(t, err)

	done := make(chan struct{})
	var stdoutBytes, stderrBytes []byte
	go func() {
		stdoutBytes, _ = readWithTimeout(stdout, 2*time.Second)
		stderrBytes, _ = readWithTimeout(stderr, 2*time.Second)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		cmd.Process.Kill()
		t.Fatal("Timeout waiting for server response")
	}

	stdin.Close()
	cmd.Process.Kill()
	cmd.Wait()

	require.NotEmpty(t, stdoutBytes, "Server produced no stdout output")
	require.Equal(t, byte('{'), stdoutBytes[0], "stdout should start with JSON, got: %q", string(stdoutBytes[:min(50, len(stdoutBytes))]))
	t.Logf("Stderr output (logs): %s", string(stderrBytes))
}

func readWithTimeout(r interface{ Read([]byte) (int, error) }, timeout time.Duration) ([]byte, error) {
	result := make([]byte, 0, 4096)
	buf := make([]byte, 1024)

	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		done := make(chan struct{})
		var n int
		var err error
		go func() {
			n, err = r.Read(buf)
			close(done)
		}()

		select {
		case <-done:
			if n > 0 {
				result = append(result, buf[:n]...)
			}
			if err != nil {
				return result, err
			}
		case <-time.After(100 * time.Millisecond):
			if len(result) > 0 {
				return result, nil
			}
		}
	}
	return result, nil
}
