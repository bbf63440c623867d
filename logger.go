package shape

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// The Enabled method returns false so the caller skips message formatting
// entirely, making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

// newNopLogger creates a logger that silently discards all output.
func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called concurrently with drawing from any goroutine.
var loggerPtr atomic.Pointer[slog.Logger]

// traceMask holds one bit per enabled trace category.
var traceMask atomic.Uint64

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for shape and its sub-packages.
// By default, shape produces no log output. Pass nil to restore the
// default silent behavior.
//
// Trace events (construction and draw calls) are logged at
// [slog.LevelDebug] and only for the categories enabled with
// SetTraceFlags.
//
// Example:
//
//	shape.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
//	shape.SetTraceFlags("cd")
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the current logger used by shape.
// Sub-packages (raster, recording, scene) call this to share the same
// logger configuration.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}

// Trace categories understood by SetTraceFlags.
const (
	TraceConstruct = 'c' // shape construction
	TraceDraw      = 'd' // Draw calls
	TraceAll       = '@' // every category
)

// SetTraceFlags enables the trace categories named by the characters of
// flags and disables all others. Categories are single characters and
// letters are case-insensitive; '@' enables every category. An empty
// string turns tracing off.
func SetTraceFlags(flags string) {
	var mask uint64
	for i := 0; i < len(flags); i++ {
		if flags[i] == TraceAll {
			mask = ^uint64(0)
			break
		}
		mask |= categoryBit(flags[i])
	}
	traceMask.Store(mask)
}

// TraceEnabled reports whether the given trace category is enabled.
func TraceEnabled(category byte) bool {
	return traceMask.Load()&categoryBit(category) != 0
}

// Trace logs msg at debug level when category is enabled. Sub-packages
// use it for their own categories.
func Trace(category byte, msg string, args ...any) {
	if !TraceEnabled(category) {
		return
	}
	Logger().Debug(msg, append(args, slog.String("trace", string(rune(category))))...)
}

// categoryBit maps the printable ASCII range onto 64 bits. Upper and
// lower case letters share a bit.
func categoryBit(c byte) uint64 {
	if c >= 'a' && c <= 'z' {
		c -= 'a' - 'A'
	}
	if c < ' ' || c > '_' {
		return 0
	}
	return 1 << (c - ' ')
}
