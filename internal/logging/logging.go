// Package logging configures the process-wide zerolog logger.
package logging

import (
	"io"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs a console writer on w as the global logger. Callers in
// stdio mode must pass stderr, since stdout is owned by the JSON-RPC stream.
func Setup(w io.Writer, debug bool) {
	level := zerolog.InfoLevel
	if debug {
		level = zerolog.DebugLevel
	}

	console := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}

	log.Logger = zerolog.New(console).
		Level(level).
		With().
		Timestamp().
		Logger()
}
