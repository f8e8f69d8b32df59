package oteladapters

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/libraryops/lending-go/lending"
)

// TracingCollector implements lending.TracingCollector using the
// OpenTelemetry tracing API, creating one span per borrow/return call.
type TracingCollector struct {
	tracer trace.Tracer
}

// NewTracingCollector creates a tracing collector on top of a tracer
// obtained from your OpenTelemetry TracerProvider.
func NewTracingCollector(tracer trace.Tracer) *TracingCollector {
	return &TracingCollector{tracer: tracer}
}

// StartSpan starts an OpenTelemetry span with the given name and
// attributes and returns the derived context plus a span handle.
func (t *TracingCollector) StartSpan(ctx context.Context, name string, attrs map[string]string) (context.Context, lending.SpanContext) {
	spanCtx, span := t.tracer.Start(ctx, name, trace.WithAttributes(attributesFrom(attrs)...))

	return spanCtx, &otelSpanContext{span: span}
}

// FinishSpan adds the final attributes, maps the status onto the span,
// and ends it.
func (t *TracingCollector) FinishSpan(spanCtx lending.SpanContext, status string, attrs map[string]string) {
	otelSpan, ok := spanCtx.(*otelSpanContext)
	if !ok {
		return
	}

	otelSpan.span.SetAttributes(attributesFrom(attrs)...)
	otelSpan.SetStatus(status)
	otelSpan.span.End()
}

// Ensure TracingCollector implements lending.TracingCollector.
var _ lending.TracingCollector = (*TracingCollector)(nil)

// otelSpanContext implements lending.SpanContext by wrapping an
// OpenTelemetry span.
type otelSpanContext struct {
	span trace.Span
}

// SetStatus maps the lending status strings onto OpenTelemetry status
// codes. A rejected operation is a business outcome, not a failure, so it
// keeps the Ok code and is distinguished by its attributes.
func (s *otelSpanContext) SetStatus(status string) {
	switch status {
	case "success", "rejected":
		s.span.SetStatus(codes.Ok, status)
	case "error":
		s.span.SetStatus(codes.Error, status)
	default:
		s.span.SetStatus(codes.Unset, status)
	}
}

// AddAttribute adds a string attribute to the span.
func (s *otelSpanContext) AddAttribute(key, value string) {
	s.span.SetAttributes(attribute.String(key, value))
}
