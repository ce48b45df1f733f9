package command

import "context"

// Invoker runs the rest of a dispatch: the next interceptor or the command.
type Invoker func(ctx context.Context, correlationID string, args Parameters) (any, error)

// Interceptor wraps dispatch of every command in a Set.
//
// An interceptor sees the command name and may delegate by calling next,
// possibly with a derived context or arguments, or return without
// delegating to short-circuit the call.
type Interceptor interface {
	Intercept(ctx context.Context, name, correlationID string, args Parameters, next Invoker) (any, error)
}

// InterceptorFunc adapts a function to the Interceptor interface.
type InterceptorFunc func(ctx context.Context, name, correlationID string, args Parameters, next Invoker) (any, error)

// Intercept calls f.
func (f InterceptorFunc) Intercept(ctx context.Context, name, correlationID string, args Parameters, next Invoker) (any, error) {
	return f(ctx, name, correlationID, args, next)
}
