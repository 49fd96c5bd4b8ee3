package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/seoulgreet/seoulgreet/internal/logging"
	"github.com/seoulgreet/seoulgreet/internal/mcpserver"
	"github.com/seoulgreet/seoulgreet/internal/toolfilter"
)

const defaultHTTPPort = 8080

var (
	flagTransport    string
	flagHost         string
	flagPort         int
	flagIncludeTools string
	flagExcludeTools string
	flagDebug        bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the seoulgreet MCP server",
	Long: `Run the seoulgreet MCP server.

By default the server speaks MCP over stdin/stdout, which is what desktop
MCP clients expect. With --transport http it serves the stateless
Streamable HTTP transport at POST /mcp instead.

Examples:
  # Stdio server (default)
  seoulgreet serve

  # Streamable HTTP on $PORT (falls back to 8080)
  seoulgreet serve --transport http

  # Expose only the greeting tools
  seoulgreet serve --include-tools say_hello,say_hello_multiple`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	f := serveCmd.Flags()
	f.StringVar(&flagTransport, "transport", "stdio", "transport to serve on: stdio or http")
	f.StringVar(&flagHost, "host", "0.0.0.0", "host to bind in http mode")
	f.IntVar(&flagPort, "port", 0, "port to listen on in http mode (default: $PORT or 8080)")
	f.StringVar(&flagIncludeTools, "include-tools", "", "only expose these tools (comma-separated)")
	f.StringVar(&flagExcludeTools, "exclude-tools", "", "hide these tools (comma-separated)")
	f.BoolVar(&flagDebug, "debug", false, "enable debug logging")
}

func runServe(cmd *cobra.Command, args []string) error {
	// Stdout carries JSON-RPC framing in stdio mode, so logs go to stderr.
	logging.Setup(cmd.ErrOrStderr(), flagDebug)

	if flagTransport != "stdio" && flagTransport != "http" {
		return fmt.Errorf("unknown transport %q: use stdio or http", flagTransport)
	}
	if flagIncludeTools != "" && flagExcludeTools != "" {
		return fmt.Errorf("--include-tools and --exclude-tools cannot be used together")
	}

	s, err := mcpserver.New(mcpserver.Options{
		Version: appVersion,
		Include: toolfilter.ParseToolList(flagIncludeTools),
		Exclude: toolfilter.ParseToolList(flagExcludeTools),
	})
	if err != nil {
		return err
	}

	if flagTransport == "stdio" {
		return mcpserver.ServeStdio(s)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		sig := <-sigCh
		log.Info().Str("signal", sig.String()).Msg("shutting down")
		cancel()
	}()

	addr := fmt.Sprintf("%s:%d", flagHost, resolvePort())
	return mcpserver.ServeHTTP(ctx, s, addr)
}

// resolvePort picks the HTTP listen port: --port flag first, then the PORT
// environment variable, then the default.
func resolvePort() int {
	if flagPort != 0 {
		return flagPort
	}
	if env := os.Getenv("PORT"); env != "" {
		if p, err := strconv.Atoi(env); err == nil && p > 0 {
			return p
		}
		log.Warn().Str("PORT", env).Msg("ignoring invalid PORT value")
	}
	return defaultHTTPPort
}
