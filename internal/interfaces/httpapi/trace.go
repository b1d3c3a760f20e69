package httpapi

import (
	"context"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

const handlerSpanPrefix = "httpapi.Handler."

var apiTracer = otel.Tracer("infootball/internal/interfaces/httpapi")

// startHandlerSpan opens a child span of the request span named after the handler and
// tagged with the matched route. Requests filtered out of tracing get no span.
func startHandlerSpan(r *http.Request, handler string) (context.Context, trace.Span) {
	ctx := r.Context()
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() {
		return ctx, parent
	}

	attrs := []attribute.KeyValue{attribute.String("http.request.method", r.Method)}
	if r.Pattern != "" {
		attrs = append(attrs, attribute.String("http.route", r.Pattern))
	}
	return apiTracer.Start(ctx, handlerSpanPrefix+handler, trace.WithAttributes(attrs...))
}
