package logging

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// New builds the sdkrun diagnostic logger. Diagnostics go to stderr (the
// caller passes the writer) so query output on stdout stays clean; verbose
// lowers the level to debug.
func New(out io.Writer, verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}
	writer := zerolog.ConsoleWriter{Out: out, TimeFormat: time.Kitchen}
	return zerolog.New(writer).Level(level).With().Timestamp().Str("app", "sdkrun").Logger()
}
