package http

import (
	"errors"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/metric/noop"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/freekieb7/hddp/http"

type instruments struct {
	tracer      trace.Tracer
	connections metric.Int64Counter
	requests    metric.Int64Counter
	errors      metric.Int64Counter
}

func newInstruments(tracerProvider trace.TracerProvider, meterProvider metric.MeterProvider) instruments {
	meter := meterProvider.Meter(instrumentationName)

	return instruments{
		tracer: tracerProvider.Tracer(instrumentationName),
		connections: counter(meter, "hddp.connections",
			metric.WithDescription("Accepted connections"),
			metric.WithUnit("{connection}")),
		requests: counter(meter, "hddp.requests",
			metric.WithDescription("Parsed requests by route match"),
			metric.WithUnit("{request}")),
		errors: counter(meter, "hddp.connection.errors",
			metric.WithDescription("Connections abandoned by failure kind"),
			metric.WithUnit("{connection}")),
	}
}

func counter(meter metric.Meter, name string, options ...metric.Int64CounterOption) metric.Int64Counter {
	c, err := meter.Int64Counter(name, options...)
	if err != nil {
		otel.Handle(err)
		return noop.Int64Counter{}
	}

	return c
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrRead):
		return "read"
	case errors.Is(err, ErrWrite):
		return "write"
	default:
		return "parse"
	}
}
