package telemetry

import (
	"context"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// Outcome values recorded on the operation counter.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

var (
	opCounterOnce sync.Once
	opCounter     metric.Int64Counter
)

func operationCounter() metric.Int64Counter {
	opCounterOnce.Do(func() {
		c, err := otel.Meter(instrumentationName).Int64Counter(
			"todo.operations",
			metric.WithDescription("Application operations by name and outcome"),
		)
		if err != nil {
			otel.Handle(err)
			return
		}

		opCounter = c
	})

	return opCounter
}

// StartOperation opens a span for an application operation. The returned func ends
// the span and counts the operation; pass it the operation's final error.
func StartOperation(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, func(error)) {
	ctx, span := Tracer().Start(ctx, name, trace.WithAttributes(attrs...))

	return ctx, func(err error) {
		outcome := OutcomeOK

		if err != nil {
			outcome = OutcomeError

			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}

		if c := operationCounter(); c != nil {
			c.Add(ctx, 1, metric.WithAttributes(
				attribute.String("operation", name),
				attribute.String("outcome", outcome),
			))
		}

		span.End()
	}
}
