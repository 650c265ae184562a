// Package log builds the zerolog loggers used across the server.
package log

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for building a logger.
type Config struct {
	Level   string    // "debug", "info", ... (defaults to info)
	Format  string    // "json" or "console"
	Output  io.Writer // defaults to os.Stderr
	Service string
	Version string
}

// New returns a logger annotated with service and version fields.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(strings.ToLower(cfg.Level)); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	if strings.EqualFold(cfg.Format, "console") {
		writer = zerolog.ConsoleWriter{Out: writer, TimeFormat: time.RFC3339, NoColor: true}
	}

	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", cfg.Service).
		Str("version", cfg.Version).
		Logger()
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

// Nop is a disabled logger for callers that do not care about output.
func Nop() zerolog.Logger {
	return zerolog.Nop()
}
