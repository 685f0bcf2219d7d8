package observability

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// NewLogger builds the process-wide logger. Verbose mode switches to a
// human-readable console writer at debug level; otherwise output is JSON
// at the configured level.
func NewLogger(level string, verbose bool) zerolog.Logger {
	var out io.Writer = os.Stderr
	lvl := parseLevel(level)

	if verbose {
		out = zerolog.ConsoleWriter{Out: os.Stderr}
		if lvl > zerolog.DebugLevel {
			lvl = zerolog.DebugLevel
		}
	}

	return zerolog.New(out).Level(lvl).With().Timestamp().Logger()
}

func parseLevel(level string) zerolog.Level {
	switch level {
	case "debug":
		return zerolog.DebugLevel
	case "warn":
		return zerolog.WarnLevel
	case "error":
		return zerolog.ErrorLevel
	default:
		return zerolog.InfoLevel
	}
}
