package e2e

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/seoulgreet/seoulgreet/internal/mcp"
)

// projectRoot returns the repository root (the parent of the e2e dir).
func projectRoot(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	return filepath.Dir(wd)
}

// buildBinary compiles the seoulgreet binary into a temp dir.
func buildBinary(t *testing.T) string {
	t.Helper()
	bin := filepath.Join(t.TempDir(), "seoulgreet")
	build := exec.Command("go", "build", "-o", bin, ".")
	build.Dir = projectRoot(t)
	if out, err := build.CombinedOutput(); err != nil {
		t.Fatalf("build seoulgreet: %v\n%s", err, out)
	}
	return bin
}

// startStdioClient spawns the binary with the given serve args and returns
// an initialized client speaking MCP over its stdio.
func startStdioClient(t *testing.T, bin string, serveArgs ...string) *mcp.Client {
	t.Helper()

	args := append([]string{"serve"}, serveArgs...)
	transport := mcp.NewStdioTransport(bin, args, nil)
	if err := transport.Start(); err != nil {
		t.Fatalf("start server process: %v", err)
	}

	client := mcp.NewClient(transport)
	t.Cleanup(func() { client.Close() })

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if _, err := client.Initialize(ctx, "seoulgreet-e2e", "test"); err != nil {
		t.Fatalf("initialize: %v", err)
	}
	return client
}

func toolText(t *testing.T, result *mcp.CallToolResult) string {
	t.Helper()
	if len(result.Content) != 1 {
		t.Fatalf("expected one content block, got %d", len(result.Content))
	}
	if result.Content[0].Type != "text" {
		t.Fatalf("expected text content, got %q", result.Content[0].Type)
	}
	return result.Content[0].Text
}

func TestStdioServer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}

	bin := buildBinary(t)
	client := startStdioClient(t, bin)
	ctx := context.Background()

	t.Run("tools are listed", func(t *testing.T) {
		tools, err := client.ListTools(ctx)
		if err != nil {
			t.Fatalf("tools/list: %v", err)
		}
		names := make([]string, len(tools))
		for i, tool := range tools {
			names[i] = tool.Name
		}
		want := "say_hello,say_hello_multiple,say_place,say_place_multiple"
		if strings.Join(names, ",") != want {
			t.Errorf("tools = %v", names)
		}
	})

	t.Run("say_hello", func(t *testing.T) {
		result, err := client.CallTool(ctx, "say_hello", map[string]any{"name": "김철수"})
		if err != nil {
			t.Fatalf("tools/call: %v", err)
		}
		if got := toolText(t, result); got != "안녕하세요, 김철수님!" {
			t.Errorf("say_hello = %q", got)
		}
	})

	t.Run("say_place_multiple preserves order", func(t *testing.T) {
		result, err := client.CallTool(ctx, "say_place_multiple", map[string]any{
			"names": []any{"경복궁", "명동"},
		})
		if err != nil {
			t.Fatalf("tools/call: %v", err)
		}
		got := toolText(t, result)
		gyeongbok := strings.Index(got, "경복궁")
		myeongdong := strings.Index(got, "명동")
		if gyeongbok < 0 || myeongdong < 0 || gyeongbok > myeongdong {
			t.Errorf("expected 경복궁 before 명동:\n%s", got)
		}
		if !strings.Contains(got, "여유상태") {
			t.Errorf("expected 경복궁 to report 여유상태:\n%s", got)
		}
	})

	t.Run("unknown tool is a protocol error", func(t *testing.T) {
		if _, err := client.CallTool(ctx, "say_nothing", nil); err == nil {
			t.Error("expected error for unknown tool name")
		}
	})

	t.Run("readme resource", func(t *testing.T) {
		result, err := client.ReadResource(ctx, "docs://seoulgreet/readme")
		if err != nil {
			t.Fatalf("resources/read: %v", err)
		}
		if len(result.Contents) != 1 || !strings.Contains(result.Contents[0].Text, "say_place") {
			t.Errorf("unexpected readme contents: %+v", result.Contents)
		}
	})

	t.Run("explain prompt", func(t *testing.T) {
		result, err := client.GetPrompt(ctx, "explain_result", map[string]string{
			"tool_name": "say_place",
			"name":      "경복궁",
		})
		if err != nil {
			t.Fatalf("prompts/get: %v", err)
		}
		if len(result.Messages) != 1 {
			t.Fatalf("expected one message, got %d", len(result.Messages))
		}
		if !strings.Contains(result.Messages[0].Content.Text, "경복궁") {
			t.Errorf("prompt does not mention the place:\n%s", result.Messages[0].Content.Text)
		}
	})
}

func TestIncludeToolsFlag(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}

	bin := buildBinary(t)
	client := startStdioClient(t, bin, "--include-tools", "say_hello,say_hello_multiple")
	ctx := context.Background()

	tools, err := client.ListTools(ctx)
	if err != nil {
		t.Fatalf("tools/list: %v", err)
	}
	if len(tools) != 2 {
		t.Fatalf("expected 2 tools, got %v", tools)
	}

	// A filtered-out tool must be unknown at the protocol level.
	if _, err := client.CallTool(ctx, "say_place", map[string]any{"name": "경복궁"}); err == nil {
		t.Error("expected error calling a hidden tool")
	}
}

func TestHTTPServer(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping E2E test in short mode")
	}

	bin := buildBinary(t)
	port := freePort(t)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serve := exec.CommandContext(ctx, bin, "serve",
		"--transport", "http",
		"--host", "127.0.0.1",
		"--port", fmt.Sprint(port),
	)
	serve.Stderr = os.Stderr
	if err := serve.Start(); err != nil {
		t.Fatalf("start http server: %v", err)
	}
	t.Cleanup(func() {
		cancel()
		_ = serve.Wait()
	})

	url := fmt.Sprintf("http://127.0.0.1:%d/mcp", port)
	client := waitForServer(t, url)
	defer client.Close()

	result, err := client.CallTool(context.Background(), "say_hello_multiple", map[string]any{
		"names": []any{"김철수", "이영희"},
	})
	if err != nil {
		t.Fatalf("tools/call over http: %v", err)
	}
	want := "• 안녕하세요, 김철수님!\n• 안녕하세요, 이영희님!"
	if got := toolText(t, result); got != want {
		t.Errorf("say_hello_multiple = %q, want %q", got, want)
	}
}

// waitForServer polls the HTTP endpoint until the initialize handshake
// succeeds, then returns the initialized client.
func waitForServer(t *testing.T, url string) *mcp.Client {
	t.Helper()

	deadline := time.Now().Add(10 * time.Second)
	for {
		client := mcp.NewClient(mcp.NewHTTPTransport(url))
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		_, err := client.Initialize(ctx, "seoulgreet-e2e", "test")
		cancel()
		if err == nil {
			return client
		}
		client.Close()
		if time.Now().After(deadline) {
			t.Fatalf("server at %s did not become ready: %v", url, err)
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// freePort grabs an ephemeral port and releases it for the server to use.
func freePort(t *testing.T) int {
	t.Helper()
	l, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	defer l.Close()
	return l.Addr().(*net.TCPAddr).Port
}
