// Package interceptor provides ready-made command.Interceptor implementations
// for cross-cutting concerns around command dispatch.
//
//   - [Logging] writes one structured entry per dispatch.
//   - [Tracing] opens an OpenTelemetry span per dispatch.
//   - [Timing] reports the duration and outcome of each dispatch to a callback.
//
// Interceptors never alter the result or the error of the call they wrap:
// handler errors pass through with their identity intact.
//
//	set := command.NewSet()
//	set.AddInterceptor(interceptor.Tracing(otel.Tracer("commandable")))
//	set.AddInterceptor(interceptor.Logging(interceptor.NewSlogAdapter(slog.Default())))
package interceptor
