package logger

import (
	"context"
	"log/slog"
	"runtime"
)

type levelSourceHandler struct {
	handler    slog.Handler
	sourceFrom slog.Level
}

// NewLevelSourceHandler wraps handler so that records at or above sourceFrom
// carry a source attribute. The wrapped handler must not add source itself.
func NewLevelSourceHandler(handler slog.Handler, sourceFrom slog.Level) slog.Handler {
	return &levelSourceHandler{
		handler:    handler,
		sourceFrom: sourceFrom,
	}
}

func (h *levelSourceHandler) Handle(ctx context.Context, r slog.Record) error {
	if r.Level >= h.sourceFrom {
		// Record.PC points at the logging call site.
		pc := r.PC
		if pc == 0 {
			var pcs [1]uintptr
			runtime.Callers(4, pcs[:])
			pc = pcs[0]
		}
		frame, _ := runtime.CallersFrames([]uintptr{pc}).Next()
		r.AddAttrs(slog.Any(slog.SourceKey, &slog.Source{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		}))
	}
	return h.handler.Handle(ctx, r)
}

func (h *levelSourceHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &levelSourceHandler{handler: h.handler.WithAttrs(attrs), sourceFrom: h.sourceFrom}
}

func (h *levelSourceHandler) WithGroup(name string) slog.Handler {
	return &levelSourceHandler{handler: h.handler.WithGroup(name), sourceFrom: h.sourceFrom}
}

func (h *levelSourceHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return h.handler.Enabled(ctx, level)
}
