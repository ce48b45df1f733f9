// Package cmderrors provides structured error types for command dispatch.
//
// Import path: github.com/erraggy/commandable/cmderrors
//
// Each error type has a matching sentinel so transports can map failures to
// responses with [errors.Is] and pull details out with [errors.As]:
//
//   - [ValidationError] / [ErrValidation]: arguments failed the command schema
//   - [CommandNotFoundError] / [ErrCommandNotFound]: no command with that name
//   - [DuplicateNameError] / [ErrDuplicateName]: a name was registered twice
//   - [TypeMismatchError] / [ErrTypeMismatch]: a typed argument accessor failed
//   - [ConfigError] / [ErrConfig]: invalid wiring or configuration
//
// Errors returned by command handlers are not represented here. They reach
// the caller unchanged, so the handler's own error values stay comparable:
//
//	_, err := set.Execute(ctx, "get_item", "req-1", args)
//	switch {
//	case errors.Is(err, cmderrors.ErrValidation):
//	    var vErr *cmderrors.ValidationError
//	    errors.As(err, &vErr)
//	    for _, v := range vErr.Violations {
//	        fmt.Println(v.Path, v.Expected)
//	    }
//	case errors.Is(err, cmderrors.ErrCommandNotFound):
//	    // 404
//	case errors.Is(err, store.ErrNotFound):
//	    // handler error, untouched
//	}
package cmderrors
