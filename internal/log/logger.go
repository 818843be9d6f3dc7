// Package log configures the zerolog logger used by skillscand.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Config captures options for configuring the global logger.
type Config struct {
	Level   string    // optional log level ("debug", "info", etc.)
	Output  io.Writer // optional writer (defaults to os.Stderr)
	Service string    // optional service name attached to every log entry
	Version string
}

var (
	once sync.Once
	base zerolog.Logger
)

// New builds a logger from cfg without touching the global one.
func New(cfg Config) zerolog.Logger {
	level := zerolog.InfoLevel
	if cfg.Level != "" {
		if parsed, err := zerolog.ParseLevel(cfg.Level); err == nil {
			level = parsed
		}
	}

	writer := cfg.Output
	if writer == nil {
		writer = os.Stderr
	}
	service := cfg.Service
	if service == "" {
		service = "skillscand"
	}

	return zerolog.New(writer).Level(level).With().
		Timestamp().
		Str("service", service).
		Str("version", cfg.Version).
		Logger()
}

// Configure initialises the global logger exactly once.
func Configure(cfg Config) {
	once.Do(func() {
		zerolog.TimeFieldFormat = time.RFC3339
		base = New(cfg)
	})
}

// Base returns the configured base logger instance.
func Base() zerolog.Logger {
	Configure(Config{})
	return base
}

// WithComponent returns a child logger annotated with the given component name.
func WithComponent(component string) zerolog.Logger {
	return Base().With().Str("component", component).Logger()
}
