package interceptor

import (
	"context"
	"errors"
	"time"

	"github.com/erraggy/commandable/cmderrors"
	"github.com/erraggy/commandable/command"
)

// Logging returns an interceptor that logs every dispatch.
//
// Successful calls log at debug level. Validation failures and argument type
// mismatches log at warn level. Every other error logs at error level.
// A nil logger disables logging.
func Logging(logger Logger) command.Interceptor {
	if logger == nil {
		logger = NopLogger{}
	}
	return command.InterceptorFunc(func(ctx context.Context, name, correlationID string, args command.Parameters, next command.Invoker) (any, error) {
		start := time.Now()
		result, err := next(ctx, correlationID, args)

		log := logger.With("command", name, "correlation_id", correlationID)
		elapsed := time.Since(start)
		switch {
		case err == nil:
			log.Debug("command executed", "duration", elapsed)
		case errors.Is(err, cmderrors.ErrValidation), errors.Is(err, cmderrors.ErrTypeMismatch):
			log.Warn("command rejected", "duration", elapsed, "error", err)
		default:
			log.Error("command failed", "duration", elapsed, "error", err)
		}
		return result, err
	})
}
