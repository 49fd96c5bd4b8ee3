// Package mcpserver assembles the seoulgreet MCP server: the tool
// registry, the documentation resource, the explain_result prompt, and
// both transports (stdio and stateless Streamable HTTP).
package mcpserver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/mark3labs/mcp-go/server"
	"github.com/rs/zerolog/log"
)

const (
	// AppName is the server name reported during the initialize handshake.
	AppName = "seoulgreet"

	// Instructions tells clients what the server is for.
	Instructions = "이름 기반 한국어 인사말과 서울 주요 장소의 혼잡도 안내 도구를 제공합니다."

	// HTTPEndpointPath is where the Streamable HTTP transport is mounted.
	HTTPEndpointPath = "/mcp"

	shutdownTimeout = 5 * time.Second
)

// Options control how the server is assembled.
type Options struct {
	// Version is reported to clients; empty means "dev".
	Version string
	// Include and Exclude restrict the exposed tools by name. They are
	// mutually exclusive; see the toolfilter package for semantics.
	Include []string
	Exclude []string
}

// New builds the MCP server with the (optionally filtered) tool registry,
// the readme resource, and the explain_result prompt attached.
func New(opts Options) (*server.MCPServer, error) {
	reg, err := Tools().Filter(opts.Include, opts.Exclude)
	if err != nil {
		return nil, err
	}

	version := opts.Version
	if version == "" {
		version = "dev"
	}

	s := server.NewMCPServer(
		AppName,
		version,
		server.WithInstructions(Instructions),
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
		server.WithLogging(),
		server.WithRecovery(),
	)

	reg.Install(s)
	addReadmeResource(s)
	addExplainPrompt(s)

	log.Debug().Strs("tools", reg.Names()).Msg("mcp server assembled")
	return s, nil
}

// ServeStdio runs s over stdin/stdout until the stream closes.
func ServeStdio(s *server.MCPServer) error {
	log.Info().Msg("serving MCP over stdio")
	return server.ServeStdio(s)
}

// ServeHTTP runs the stateless Streamable HTTP transport on addr until ctx
// is cancelled, then shuts down gracefully.
func ServeHTTP(ctx context.Context, s *server.MCPServer, addr string) error {
	httpServer := server.NewStreamableHTTPServer(s,
		server.WithEndpointPath(HTTPEndpointPath),
		server.WithStateLess(true),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.Start(addr)
	}()

	log.Info().Str("addr", addr).Str("path", HTTPEndpointPath).Msg("serving MCP over streamable HTTP")

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown http server: %w", err)
		}
		log.Info().Msg("http server stopped")
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	}
}
