package cmderrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrValidation indicates command arguments failed schema validation.
	ErrValidation = errors.New("validation error")

	// ErrCommandNotFound indicates a dispatch to an unregistered command name.
	ErrCommandNotFound = errors.New("command not found")

	// ErrDuplicateName indicates a command name was registered twice.
	ErrDuplicateName = errors.New("duplicate command name")

	// ErrTypeMismatch indicates a value did not have the expected kind.
	ErrTypeMismatch = errors.New("type mismatch")

	// ErrConfig indicates an invalid configuration.
	ErrConfig = errors.New("configuration error")
)

// Violation codes.
const (
	// CodeRequired marks a required property that is missing or null.
	CodeRequired = "required"
	// CodeTypeMismatch marks a value whose kind differs from the declared kind.
	CodeTypeMismatch = "type_mismatch"
)

// Violation is a single schema validation problem.
type Violation struct {
	// Path is the dotted path of the offending value (e.g., "dummy.id", "items[2]")
	Path string
	// Code is CodeRequired or CodeTypeMismatch
	Code string
	// Expected is the declared kind at Path
	Expected string
	// Actual is the kind that was found (empty for missing values)
	Actual string
	// Message is a human-readable description
	Message string
}

// String returns "path: message", or just the message at the root.
func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// ValidationError reports every violation found for one command invocation.
// It is returned before the handler runs.
type ValidationError struct {
	// Command is the name of the command whose schema rejected the arguments
	Command string
	// Violations is the complete list; never empty
	Violations []Violation
}

// Error returns a human-readable error message.
func (e *ValidationError) Error() string {
	msg := "validation error"
	if e.Command != "" {
		msg += " for command " + e.Command
	}
	if len(e.Violations) == 0 {
		return msg
	}
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.String())
	}
	return msg + ": " + strings.Join(parts, "; ")
}

// Is reports whether target matches this error type.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}

// CommandNotFoundError is returned when a dispatch name does not resolve.
type CommandNotFoundError struct {
	// Name is the requested command name
	Name string
}

// Error returns a human-readable error message.
func (e *CommandNotFoundError) Error() string {
	return fmt.Sprintf("command not found: %q", e.Name)
}

// Is reports whether target matches this error type.
func (e *CommandNotFoundError) Is(target error) bool {
	return target == ErrCommandNotFound
}

// DuplicateNameError is returned at registration time when a command name is
// already taken in the set.
type DuplicateNameError struct {
	// Name is the colliding command name
	Name string
}

// Error returns a human-readable error message.
func (e *DuplicateNameError) Error() string {
	return fmt.Sprintf("duplicate command name: %q", e.Name)
}

// Is reports whether target matches this error type.
func (e *DuplicateNameError) Is(target error) bool {
	return target == ErrDuplicateName
}

// TypeMismatchError is returned by typed argument accessors when a value
// is missing or has the wrong kind.
type TypeMismatchError struct {
	// Path is the key or dotted path that was read
	Path string
	// Expected is the requested kind
	Expected string
	// Actual is the kind found; empty when the value is missing
	Actual string
}

// Error returns a human-readable error message.
func (e *TypeMismatchError) Error() string {
	msg := "type mismatch"
	if e.Path != "" {
		msg += " at " + e.Path
	}
	if e.Actual == "" {
		return msg + fmt.Sprintf(": expected %s but value is missing", e.Expected)
	}
	return msg + fmt.Sprintf(": expected %s but got %s", e.Expected, e.Actual)
}

// Is reports whether target matches this error type.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}

// ConfigError represents invalid wiring or configuration input.
type ConfigError struct {
	// Option is the name of the problematic configuration option
	Option string
	// Value is the invalid value that was provided (may be nil)
	Value any
	// Message describes the configuration error
	Message string
	// Cause is the underlying error, if any
	Cause error
}

// Error returns a human-readable error message.
func (e *ConfigError) Error() string {
	msg := "configuration error"
	if e.Option != "" {
		msg += " for " + e.Option
	}
	if e.Value != nil {
		msg += fmt.Sprintf(" (value: %v)", e.Value)
	}
	if e.Message != "" {
		msg += ": " + e.Message
	}
	if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

// Unwrap returns the underlying cause for error chaining.
func (e *ConfigError) Unwrap() error {
	return e.Cause
}

// Is reports whether target matches this error type.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}
