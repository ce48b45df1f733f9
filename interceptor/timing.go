package interceptor

import (
	"context"
	"time"

	"github.com/erraggy/commandable/command"
)

// Observer receives the outcome of one dispatch.
type Observer func(name string, elapsed time.Duration, err error)

// Timing returns an interceptor that reports how long each dispatch took.
// A nil observer makes the interceptor a pass-through.
func Timing(observe Observer) command.Interceptor {
	return command.InterceptorFunc(func(ctx context.Context, name, correlationID string, args command.Parameters, next command.Invoker) (any, error) {
		if observe == nil {
			return next(ctx, correlationID, args)
		}
		start := time.Now()
		result, err := next(ctx, correlationID, args)
		observe(name, time.Since(start), err)
		return result, err
	})
}
