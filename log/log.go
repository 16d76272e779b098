// Package log provides a minimal logging facade for dynmotd.
//
// The relevant log/slog types are shadowed here so the rest of the codebase
// does not need to import slog directly. By default nothing is logged; the
// CLI installs a real handler at startup.
package log

import (
	"io"
	"log/slog"
	"sync/atomic"
)

type Attr = slog.Attr
type Level = slog.Level
type Logger = slog.Logger

const (
	LevelDebug = slog.LevelDebug // low level detail such as individual commands being run
	LevelInfo  = slog.LevelInfo  // general progress messages
	LevelWarn  = slog.LevelWarn  // recoverable problems, such as a degraded render mode
	LevelError = slog.LevelError // failures
)

// Attr constructors (log.String("key", "value"), etc).
var (
	String   = slog.String
	Int      = slog.Int
	Bool     = slog.Bool
	Duration = slog.Duration
	Any      = slog.Any

	defaultLogger atomic.Value
)

// Common attribute keys used across the codebase.
const (
	KeyCommand = "command"
	KeyPath    = "path"
	KeyError   = "error"
	KeyMethod  = "method"
)

func init() {
	defaultLogger.Store(slog.New(NopHandler))
}

// Default returns the default Logger.
func Default() *Logger { return defaultLogger.Load().(*Logger) } //nolint:forcetypeassert

// SetLogger sets the logger used by dynmotd.
func SetLogger(l *Logger) { defaultLogger.Store(l) }

// New returns a plain text logger writing to out at the given level.
func New(out io.Writer, lvl Level) *Logger {
	return slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl}))
}
