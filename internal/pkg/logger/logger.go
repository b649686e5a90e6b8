// Package logger owns the process-wide zerolog logger.
package logger

import (
	"io"
	"os"
	"strings"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/term"
)

// Output formats
const (
	FormatJSON    = "json"
	FormatConsole = "console"
)

// Options configures the process logger.
type Options struct {
	// Level is a zerolog level name. Unknown names mean info.
	Level string
	// Format is FormatJSON or FormatConsole. Anything else is treated as console.
	Format string
	// Caller adds the file:line of every call site.
	Caller bool
	// Output defaults to os.Stdout.
	Output io.Writer
}

var current atomic.Pointer[zerolog.Logger]

// Configure installs a logger built from opts, also as the zerolog/log
// global, and returns it for injection into components.
func Configure(opts Options) zerolog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	if !strings.EqualFold(opts.Format, FormatJSON) {
		out = zerolog.ConsoleWriter{Out: out, TimeFormat: time.RFC3339, NoColor: !isTerminal(out)}
	}

	level, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(opts.Level)))
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
	}
	zerolog.TimeFieldFormat = time.RFC3339
	zerolog.SetGlobalLevel(level)

	ctx := zerolog.New(out).With().Timestamp()
	if opts.Caller {
		ctx = ctx.Caller()
	}
	l := ctx.Logger()
	if err != nil {
		l.Warn().Str("level", opts.Level).Msg("Unknown log level, using info")
	}

	current.Store(&l)
	log.Logger = l
	return l
}

// isTerminal reports whether w is a terminal, which is the only place colors are written to.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Component returns a child of the process logger tagged with name.
func Component(name string) zerolog.Logger {
	return current.Load().With().Str("component", name).Logger()
}

// Debug starts a debug event on the process logger.
func Debug() *zerolog.Event { return current.Load().Debug() }

// Info starts an info event on the process logger.
func Info() *zerolog.Event { return current.Load().Info() }

// Warn starts a warn event on the process logger.
func Warn() *zerolog.Event { return current.Load().Warn() }

// Error starts an error event on the process logger.
func Error() *zerolog.Event { return current.Load().Error() }

// Fatal starts an event that exits the process once sent.
func Fatal() *zerolog.Event { return current.Load().Fatal() }

func init() {
	Configure(Options{Level: "info", Format: FormatConsole})
}
