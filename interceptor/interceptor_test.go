package interceptor

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/erraggy/commandable/cmderrors"
	"github.com/erraggy/commandable/command"
	"github.com/erraggy/commandable/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/codes"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"
)

var errDomain = errors.New("dummy error in commandset")

func newSet(t *testing.T, interceptors ...command.Interceptor) *command.Set {
	t.Helper()
	set := command.NewSet()
	require.NoError(t, set.AddCommands(
		command.New("ok", nil, command.HandlerFunc(func(context.Context, string, command.Parameters) (any, error) {
			return "done", nil
		})),
		command.New("fail", nil, command.HandlerFunc(func(context.Context, string, command.Parameters) (any, error) {
			return nil, errDomain
		})),
		command.New("strict", schema.Object().WithRequired("id", schema.String()), command.HandlerFunc(func(context.Context, string, command.Parameters) (any, error) {
			return nil, nil
		})),
	))
	for _, i := range interceptors {
		set.AddInterceptor(i)
	}
	return set
}

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestLogging(t *testing.T) {
	tests := []struct {
		name    string
		command string
		args    command.Parameters
		level   string
		msg     string
	}{
		{"success", "ok", nil, "DEBUG", "command executed"},
		{"validation", "strict", command.Parameters{}, "WARN", "command rejected"},
		{"handler error", "fail", nil, "ERROR", "command failed"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
			set := newSet(t, Logging(logger))

			_, _ = set.Execute(context.Background(), tt.command, "corr-7", tt.args)

			entries := decodeLines(t, &buf)
			require.Len(t, entries, 1)
			assert.Equal(t, tt.level, entries[0]["level"])
			assert.Equal(t, tt.msg, entries[0]["msg"])
			assert.Equal(t, tt.command, entries[0]["command"])
			assert.Equal(t, "corr-7", entries[0]["correlation_id"])
		})
	}
}

func TestLoggingPassesErrorThrough(t *testing.T) {
	set := newSet(t, Logging(nil))
	_, err := set.Execute(context.Background(), "fail", "", nil)
	assert.Same(t, errDomain, err)

	result, err := set.Execute(context.Background(), "ok", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "done", result)
}

func TestNopLogger(t *testing.T) {
	var l Logger = NopLogger{}
	l.Debug("x")
	l.Info("x")
	l.Warn("x")
	l.Error("x")
	assert.Equal(t, NopLogger{}, l.With("k", "v"))
}

func TestSlogAdapterWith(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogAdapter(slog.New(slog.NewJSONHandler(&buf, nil))).With("service", "dummy")
	logger.Info("hello", "n", 1)

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	assert.Equal(t, "dummy", entries[0]["service"])
	assert.EqualValues(t, 1, entries[0]["n"])

	assert.NotNil(t, NewSlogAdapter(nil))
}

func TestTracing(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	set := newSet(t, Tracing(provider.Tracer("test")))

	_, err := set.Execute(context.Background(), "ok", "corr-1", nil)
	require.NoError(t, err)
	_, err = set.Execute(context.Background(), "fail", "", nil)
	assert.Same(t, errDomain, err)

	spans := recorder.Ended()
	require.Len(t, spans, 2)

	assert.Equal(t, "command ok", spans[0].Name())
	assert.Equal(t, codes.Unset, spans[0].Status().Code)
	assert.Contains(t, spans[0].Attributes(), AttrCommand.String("ok"))
	assert.Contains(t, spans[0].Attributes(), AttrCorrelationID.String("corr-1"))

	assert.Equal(t, "command fail", spans[1].Name())
	assert.Equal(t, codes.Error, spans[1].Status().Code)
	assert.Equal(t, errDomain.Error(), spans[1].Status().Description)
	require.Len(t, spans[1].Events(), 1)
	assert.Equal(t, "exception", spans[1].Events()[0].Name)
	for _, kv := range spans[1].Attributes() {
		assert.NotEqual(t, AttrCorrelationID, kv.Key, "empty correlation ids are not recorded")
	}
}

func TestTracingSkipsUnknownCommands(t *testing.T) {
	recorder := tracetest.NewSpanRecorder()
	provider := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(recorder))
	t.Cleanup(func() { _ = provider.Shutdown(context.Background()) })

	set := newSet(t, Tracing(provider.Tracer("test")))
	_, err := set.Execute(context.Background(), "missing", "", nil)
	assert.ErrorIs(t, err, cmderrors.ErrCommandNotFound)
	assert.Empty(t, recorder.Ended())
}

func TestTiming(t *testing.T) {
	type observation struct {
		name string
		err  error
	}
	var seen []observation
	set := newSet(t, Timing(func(name string, elapsed time.Duration, err error) {
		assert.GreaterOrEqual(t, elapsed, time.Duration(0))
		seen = append(seen, observation{name, err})
	}))

	_, _ = set.Execute(context.Background(), "ok", "", nil)
	_, _ = set.Execute(context.Background(), "fail", "", nil)

	require.Len(t, seen, 2)
	assert.Equal(t, "ok", seen[0].name)
	assert.NoError(t, seen[0].err)
	assert.Equal(t, "fail", seen[1].name)
	assert.Same(t, errDomain, seen[1].err)

	result, err := newSet(t, Timing(nil)).Execute(context.Background(), "ok", "", nil)
	require.NoError(t, err)
	assert.Equal(t, "done", result)
}
