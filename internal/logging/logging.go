// Package logging configures the zerolog logger used for diagnostics.
//
// All log output goes to stderr so that command results on stdout stay
// machine-readable.
package logging

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// New returns a console logger at the given level, writing to stderr.
// An unparseable level falls back to info.
func New(level string) zerolog.Logger {
	return NewWithWriter(level, os.Stderr)
}

// NewWithWriter is New with an explicit output writer.
func NewWithWriter(level string, w io.Writer) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	output := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: "15:04:05",
	}

	return zerolog.New(output).
		Level(lvl).
		With().
		Timestamp().
		Logger()
}
