// Package logger configures the operational logging sink for the service.
//
// Every store failure is logged here with its original driver detail before
// the caller-facing category error is returned, so the log is the only place
// low-level failure detail ever appears.
package logger

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// New builds the root zerolog logger. format "pretty" enables the console
// writer for local development; anything else emits JSON. Unknown levels
// fall back to info.
func New(level, format string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	var out = os.Stderr
	logger := zerolog.New(out)
	if format == "pretty" {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339})
	}

	return logger.Level(lvl).With().Timestamp().Logger()
}
