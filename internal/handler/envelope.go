package handler

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/citywatch/storage-service/internal/event"
	"github.com/citywatch/storage-service/internal/report"
	"github.com/citywatch/storage-service/pkg/ctxutil"
)

// Envelope wraps handler bodies so that no failure ever escapes into the
// message-consumption loop. A failed body is reported exactly once through
// the Reporter, annotated with the event type name, and then dropped;
// retry, if any, belongs to the bus redelivery policy.
type Envelope struct {
	log      *slog.Logger
	reporter report.Reporter
}

// NewEnvelope creates an Envelope reporting through the given sink.
func NewEnvelope(logger *slog.Logger, reporter report.Reporter) *Envelope {
	return &Envelope{log: logger, reporter: reporter}
}

// Run starts an execution for the given event. The returned Execution is
// configured with OnError and fired with Execute.
func (e *Envelope) Run(ev event.Event, body func(ctx context.Context) error) *Execution {
	return &Execution{env: e, event: ev, body: body}
}

// Execution is a single configured envelope invocation.
type Execution struct {
	env     *Envelope
	event   event.Event
	body    func(ctx context.Context) error
	onError func(err error, log *slog.Logger)
}

// OnError registers a callback receiving the caught failure and the
// envelope's logging sink before the failure is reported.
func (x *Execution) OnError(fn func(err error, log *slog.Logger)) *Execution {
	x.onError = fn
	return x
}

// Execute invokes the body. Any failure, including a panic from an
// unexpected payload shape, is routed to OnError and the reporter;
// Execute itself always returns normally.
func (x *Execution) Execute(ctx context.Context) {
	err := x.run(ctx)
	if err == nil {
		return
	}
	if x.onError != nil {
		x.onError(err, x.env.log)
	}
	x.env.reporter.Handle(err, "event", x.event.Name())
}

func (x *Execution) run(ctx context.Context) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("handler panic: %v", r)
		}
	}()

	if carrier, ok := x.event.(interface{ Metadata() event.Meta }); ok {
		m := carrier.Metadata()
		ctx = ctxutil.WithEventID(ctx, m.EventID)
		ctx = ctxutil.WithRequestID(ctx, m.RequestID)
	}
	return x.body(ctx)
}
