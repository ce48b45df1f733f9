package telemetry

import (
	"context"
	"testing"
	"time"

	"github.com/erraggy/commandable/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

func TestSetupDisabled(t *testing.T) {
	before := otel.GetTracerProvider()

	tests := []struct {
		name string
		cfg  config.Telemetry
	}{
		{"disabled", config.Telemetry{Enabled: false, Endpoint: "http://localhost:4318"}},
		{"no endpoint", config.Telemetry{Enabled: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shutdown, err := Setup(context.Background(), tt.cfg, "svc", "1")
			require.NoError(t, err)
			require.NotNil(t, shutdown)
			assert.NoError(t, shutdown(context.Background()))
			assert.Equal(t, before, otel.GetTracerProvider(), "no global provider is installed")
		})
	}
}

func TestSetupEnabled(t *testing.T) {
	before := otel.GetTracerProvider()
	t.Cleanup(func() { otel.SetTracerProvider(before) })

	shutdown, err := Setup(context.Background(), config.Telemetry{Enabled: true, Endpoint: "http://127.0.0.1:1"}, "svc", "1")
	require.NoError(t, err)
	assert.NotEqual(t, before, otel.GetTracerProvider())

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	_ = shutdown(ctx)
}

func TestNewProvider(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	tp, err := NewProvider(context.Background(), sdktrace.WithSpanProcessor(recorder), "dummy-service", "2.0")
	require.NoError(t, err)
	t.Cleanup(func() { _ = tp.Shutdown(context.Background()) })

	_, span := tp.Tracer("test").Start(context.Background(), "op")
	span.End()

	spans := recorder.Ended()
	require.Len(t, spans, 1)
	attrs := spans[0].Resource().Attributes()
	assert.Contains(t, attrs, semconv.ServiceName("dummy-service"))
	assert.Contains(t, attrs, semconv.ServiceVersion("2.0"))
}
