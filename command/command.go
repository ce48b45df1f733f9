// Package command binds named operations to input schemas and handlers and
// dispatches them by name.
//
// A [Command] validates its arguments against an optional schema and then
// calls its [Handler]. A [Set] is an ordered registry of commands with
// set-wide [Interceptor]s:
//
//	set := command.NewSet()
//	err := set.AddCommand(command.New(
//	    "get_item",
//	    schema.Object().WithRequired("id", schema.String()),
//	    command.HandlerFunc(func(ctx context.Context, correlationID string, args command.Parameters) (any, error) {
//	        id, _ := args.GetAsString("id")
//	        return store.Get(ctx, id)
//	    }),
//	))
//
//	result, err := set.Execute(ctx, "get_item", "req-42", command.Parameters{"id": "1"})
//
// Concurrency: register commands and interceptors while wiring the service.
// After that a Set is read-only and Execute may be called concurrently.
package command

import (
	"context"

	"github.com/erraggy/commandable/cmderrors"
	"github.com/erraggy/commandable/schema"
)

// Handler carries out a command's business logic.
//
// The correlation id is an opaque caller-supplied token for tracing; it is
// never interpreted. Handlers that block must honor ctx.
type Handler interface {
	Handle(ctx context.Context, correlationID string, args Parameters) (any, error)
}

// HandlerFunc adapts a function to the Handler interface.
type HandlerFunc func(ctx context.Context, correlationID string, args Parameters) (any, error)

// Handle calls f.
func (f HandlerFunc) Handle(ctx context.Context, correlationID string, args Parameters) (any, error) {
	return f(ctx, correlationID, args)
}

// Command is an immutable binding of a name, an optional schema and a handler.
type Command struct {
	name    string
	schema  *schema.Schema
	handler Handler
}

// New creates a command. A nil schema disables argument validation.
// The name and handler are checked when the command is added to a Set.
func New(name string, s *schema.Schema, handler Handler) *Command {
	return &Command{name: name, schema: s, handler: handler}
}

// Name returns the command name.
func (c *Command) Name() string {
	return c.name
}

// Schema returns the input schema, or nil when arguments are not validated.
func (c *Command) Schema() *schema.Schema {
	return c.schema
}

// Validate checks args against the command schema.
func (c *Command) Validate(args Parameters) []schema.Violation {
	if c.schema == nil {
		return nil
	}
	return c.schema.Validate(map[string]any(args))
}

// Execute validates args and invokes the handler once.
//
// When a schema is attached and args violate it, Execute returns a
// *cmderrors.ValidationError listing every violation and the handler is not
// called. Without a schema args reach the handler unmodified, nil included.
// Handler errors are returned as is.
func (c *Command) Execute(ctx context.Context, correlationID string, args Parameters) (any, error) {
	if violations := c.Validate(args); len(violations) > 0 {
		return nil, &cmderrors.ValidationError{Command: c.name, Violations: violations}
	}
	return c.handler.Handle(ctx, correlationID, args)
}
