// Package extensions provides opt-in tooling around ranno containers:
// slog-backed observation of annotation lifecycles and a debug renderer for
// annotated trees.
package extensions

import (
	"context"
	"log/slog"
)

// LoggingObserver logs annotation lifecycle events through a slog.Handler.
//
// Usage:
//
//	// Structured JSON logging
//	obs := extensions.NewLoggingObserver(slog.NewJSONHandler(os.Stdout, nil), "index")
//
//	// Silent (for testing)
//	obs := extensions.NewLoggingObserver(extensions.NewSilentHandler(), "index")
//
//	a := ranno.New(child, derive, ranno.WithObserver[C, A](obs))
//
// Events log at DEBUG level; derivation and invalidation are hot paths and
// should stay quiet in production configurations.
type LoggingObserver struct {
	logger *slog.Logger
	label  string
}

// NewLoggingObserver creates an observer logging through handler. The label
// identifies the observed container in the log output.
func NewLoggingObserver(handler slog.Handler, label string) *LoggingObserver {
	return &LoggingObserver{
		logger: slog.New(handler),
		label:  label,
	}
}

func (o *LoggingObserver) OnDerive(epoch uint64) {
	o.logger.Debug("annotation derived",
		"container", o.label,
		"epoch", epoch,
	)
}

func (o *LoggingObserver) OnInvalidate(epoch uint64) {
	o.logger.Debug("annotation invalidated",
		"container", o.label,
		"epoch", epoch,
	)
}

func (o *LoggingObserver) OnSplit(cached bool) {
	o.logger.Debug("container split",
		"container", o.label,
		"cached", cached,
	)
}

// SilentHandler is a slog.Handler that discards all log output.
// Useful for testing when you don't want log output.
type SilentHandler struct{}

// NewSilentHandler creates a new silent log handler.
func NewSilentHandler() *SilentHandler {
	return &SilentHandler{}
}

func (h *SilentHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return false
}

func (h *SilentHandler) Handle(ctx context.Context, record slog.Record) error {
	return nil
}

func (h *SilentHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return h
}

func (h *SilentHandler) WithGroup(name string) slog.Handler {
	return h
}
