// Package logging configures the process-wide zerolog logger. Logs go to
// stderr so result records on stdout stay machine-readable.
package logging

import (
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Setup builds the root logger. verbose forces debug level regardless of
// the configured level string.
func Setup(level string, verbose bool) zerolog.Logger {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
	}
	if verbose {
		parsed = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: time.Kitchen,
		NoColor:    os.Getenv("NO_COLOR") != "",
	}
	return zerolog.New(writer).Level(parsed).With().Timestamp().Logger()
}
