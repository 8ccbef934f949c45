// Package logging constructs the zerolog console logger.
//
// Diagnostics go to stderr so the report on stdout stays clean. Color is
// disabled when stderr is not a terminal or NO_COLOR is set.
package logging

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// New returns a console logger writing to stderr at Info level, or Debug
// level when verbose is set.
func New(verbose bool) zerolog.Logger {
	return NewWithWriter(os.Stderr, verbose)
}

// NewWithWriter is New with an explicit output, for tests.
func NewWithWriter(w io.Writer, verbose bool) zerolog.Logger {
	noColor := os.Getenv("NO_COLOR") != ""
	if f, ok := w.(*os.File); ok {
		if fi, err := f.Stat(); err == nil && (fi.Mode()&os.ModeCharDevice) == 0 {
			noColor = true
		}
	} else {
		noColor = true
	}

	out := zerolog.ConsoleWriter{
		Out:        w,
		TimeFormat: time.RFC3339,
		NoColor:    noColor,
	}

	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
