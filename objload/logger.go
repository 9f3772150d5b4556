package objload

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler drops every record. Enabled returns false so slog never formats
// the message.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func new_nop_logger() *slog.Logger { return slog.New(nopHandler{}) }

var logger_ptr atomic.Pointer[slog.Logger]

func init() {
	logger_ptr.Store(new_nop_logger())
}

// SetLogger sets the logger used by parses that were not given one with
// WithLogger. The package is silent until SetLogger is called; nil restores
// that.
//
// Levels:
//   - [slog.LevelDebug]: ignored directives (usemtl, s), object declarations
//   - [slog.LevelWarn]: unknown line headers, invalid header, skipped records
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = new_nop_logger()
	}
	logger_ptr.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return logger_ptr.Load()
}
