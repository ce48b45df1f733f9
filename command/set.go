package command

import (
	"context"

	"github.com/erraggy/commandable/cmderrors"
)

// Set is an ordered registry of commands keyed by unique name.
// Insertion order is the lookup and documentation order.
type Set struct {
	commands     []*Command
	index        map[string]*Command
	interceptors []Interceptor
}

// NewSet creates an empty command set.
func NewSet() *Set {
	return &Set{index: make(map[string]*Command)}
}

// AddCommand registers a command.
//
// It fails with *cmderrors.DuplicateNameError when the name is taken and with
// *cmderrors.ConfigError when the command has no name or no handler.
func (s *Set) AddCommand(c *Command) error {
	if c == nil {
		return &cmderrors.ConfigError{Option: "command", Message: "command is nil"}
	}
	if c.name == "" {
		return &cmderrors.ConfigError{Option: "name", Message: "command name is empty"}
	}
	if c.handler == nil {
		return &cmderrors.ConfigError{Option: "handler", Value: c.name, Message: "command handler is nil"}
	}
	if _, exists := s.index[c.name]; exists {
		return &cmderrors.DuplicateNameError{Name: c.name}
	}
	if s.index == nil {
		s.index = make(map[string]*Command)
	}
	s.commands = append(s.commands, c)
	s.index[c.name] = c
	return nil
}

// AddCommands registers commands in order, stopping at the first error.
func (s *Set) AddCommands(commands ...*Command) error {
	for _, c := range commands {
		if err := s.AddCommand(c); err != nil {
			return err
		}
	}
	return nil
}

// AddCommandSet registers every command of other, in other's order.
// Interceptors of other are not copied.
func (s *Set) AddCommandSet(other *Set) error {
	if other == nil {
		return nil
	}
	return s.AddCommands(other.commands...)
}

// AddInterceptor wraps every dispatch through the set. Interceptors compose
// in registration order: the first one added is the outermost.
func (s *Set) AddInterceptor(i Interceptor) {
	if i != nil {
		s.interceptors = append(s.interceptors, i)
	}
}

// FindCommand looks up a command by exact name.
func (s *Set) FindCommand(name string) (*Command, bool) {
	c, ok := s.index[name]
	return c, ok
}

// Commands returns the registered commands in insertion order.
// The returned slice is a copy.
func (s *Set) Commands() []*Command {
	out := make([]*Command, len(s.commands))
	copy(out, s.commands)
	return out
}

// Len returns the number of registered commands.
func (s *Set) Len() int {
	return len(s.commands)
}

// Execute dispatches to the named command through the interceptor chain.
//
// Unknown names fail with *cmderrors.CommandNotFoundError before any
// interceptor runs. A context that is already done fails with ctx.Err().
// Validation and handler errors are returned unchanged.
func (s *Set) Execute(ctx context.Context, name, correlationID string, args Parameters) (any, error) {
	c, ok := s.index[name]
	if !ok {
		return nil, &cmderrors.CommandNotFoundError{Name: name}
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	next := Invoker(c.Execute)
	for i := len(s.interceptors) - 1; i >= 0; i-- {
		next = chain(s.interceptors[i], name, next)
	}
	return next(ctx, correlationID, args)
}

func chain(i Interceptor, name string, next Invoker) Invoker {
	return func(ctx context.Context, correlationID string, args Parameters) (any, error) {
		return i.Intercept(ctx, name, correlationID, args, next)
	}
}
