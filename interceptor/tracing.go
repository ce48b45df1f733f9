package interceptor

import (
	"context"

	"github.com/erraggy/commandable/command"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/erraggy/commandable/interceptor"

// Attribute keys recorded on dispatch spans.
const (
	AttrCommand       = attribute.Key("command.name")
	AttrCorrelationID = attribute.Key("command.correlation_id")
)

// Tracing returns an interceptor that wraps each dispatch in a span named
// "command <name>". Failed dispatches record the error and set an error status.
// A nil tracer uses the global tracer provider.
func Tracing(tracer trace.Tracer) command.Interceptor {
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}
	return command.InterceptorFunc(func(ctx context.Context, name, correlationID string, args command.Parameters, next command.Invoker) (any, error) {
		attrs := []attribute.KeyValue{AttrCommand.String(name)}
		if correlationID != "" {
			attrs = append(attrs, AttrCorrelationID.String(correlationID))
		}
		ctx, span := tracer.Start(ctx, "command "+name,
			trace.WithSpanKind(trace.SpanKindInternal),
			trace.WithAttributes(attrs...),
		)
		defer span.End()

		result, err := next(ctx, correlationID, args)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
		}
		return result, err
	})
}
