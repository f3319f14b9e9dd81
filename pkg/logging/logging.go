// Package logging configures the process-wide zerolog logger.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"

	"passagens/pkg/config"
)

var Logger zerolog.Logger

// Init sets the global logger from config. Format "console" renders
// human-readable output for local dev; anything else emits JSON.
func Init(cfg config.Config) {
	zerolog.SetGlobalLevel(parseLevel(cfg.LogLevel))
	zerolog.TimeFieldFormat = time.RFC3339

	var out = zerolog.New(os.Stderr)
	if cfg.LogFormat == "console" {
		out = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"})
	}
	Logger = out.With().Timestamp().Logger()
}

// Component returns a child logger tagged with a component name. The pointer
// return keeps chained level calls valid at the call site.
func Component(name string) *zerolog.Logger {
	l := Logger.With().Str("component", name).Logger()
	return &l
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "info":
		return zerolog.InfoLevel
	case "warn", "warning":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}

func init() {
	Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: "15:04:05"}).With().Timestamp().Logger()
}
