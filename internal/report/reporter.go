// Package report defines the exception-reporting sink the execution
// envelope drains handler failures into.
package report

import "log/slog"

// Reporter receives every failure isolated by the execution envelope.
// Implementations must never fail themselves; the envelope has no
// fallback path.
type Reporter interface {
	Handle(err error, keyvals ...any)
}

// SlogReporter forwards failures to a structured logger. Production
// deployments wrap it with an external error-tracking client.
type SlogReporter struct {
	log *slog.Logger
}

// NewSlogReporter creates a Reporter writing to the given logger.
func NewSlogReporter(logger *slog.Logger) *SlogReporter {
	return &SlogReporter{log: logger.With("component", "reporter")}
}

// Handle logs the failure with its context metadata.
func (r *SlogReporter) Handle(err error, keyvals ...any) {
	args := make([]any, 0, len(keyvals)+2)
	args = append(args, slog.String("error", err.Error()))
	args = append(args, keyvals...)
	r.log.Error("handler failure", args...)
}
