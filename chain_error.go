package chainerr

import (
	"maps"

	pkgerrors "github.com/pkg/errors"
)

// defaultName is the discriminator of errors created without a name.
const defaultName = "ChainError"

// Error is an error that optionally wraps the error that caused it, carries
// informational properties and a debug trace.
//
// An Error is immutable once constructed and safe for concurrent use.
// Build one with New, Newf, Wrap, Wrapf, NewFrom or a Kind.
type Error struct {
	name             string
	current          string
	message          string
	cause            error
	info             map[string]any
	detail           any
	skipCauseMessage bool
	trace            Trace
}

// Error returns the composed message: the error's own message followed by
// ": " and the cause's message, unless the cause message is skipped.
func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	return e.message
}

// Message returns the message supplied at construction, without any cause text.
func (e *Error) Message() string {
	if e == nil {
		return ""
	}
	return e.current
}

// Name returns the discriminator.
func (e *Error) Name() string {
	if e == nil || e.name == "" {
		return defaultName
	}
	return e.name
}

// Unwrap returns the cause for errors.Is and errors.As compatibility.
// Returns nil if the error has no cause.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.cause
}

// Cause is the method form of the package-level Cause.
func (e *Error) Cause() error {
	return e.Unwrap()
}

// SkipsCauseMessage reports whether the cause's message was left out of Error().
func (e *Error) SkipsCauseMessage() bool {
	return e != nil && e.skipCauseMessage
}

// OwnInfo returns a copy of the properties set on this error only.
func (e *Error) OwnInfo() map[string]any {
	if e == nil {
		return map[string]any{}
	}
	return maps.Clone(e.info)
}

// Info returns the properties of this error merged over those of its causes.
func (e *Error) Info() map[string]any {
	info, err := defaultInspector.Info(e)
	if err != nil {
		return map[string]any{}
	}
	return info
}

// Detail returns the payload attached with WithDetail, or nil.
func (e *Error) Detail() any {
	if e == nil {
		return nil
	}
	return e.detail
}

// Trace returns the trace captured at construction.
func (e *Error) Trace() Trace {
	if e == nil {
		return nil
	}
	return e.trace
}

// StackTrace exposes the trace in the form expected by github.com/pkg/errors
// consumers.
func (e *Error) StackTrace() pkgerrors.StackTrace {
	return e.Trace().StackTrace()
}

// Stack returns this error's own debug trace: a "Name: message" header
// followed by the captured frames.
func (e *Error) Stack() string {
	return e.header() + e.Trace().String()
}

// FullStack is the method form of the package-level FullStack.
func (e *Error) FullStack() string {
	s, err := defaultInspector.FullStack(e)
	if err != nil {
		return e.Stack()
	}
	return s
}

// String renders the error with its name. When the cause message is skipped
// and the cause has a message, the cause is appended as "; caused by <cause>".
//
//	ChainError: top; caused by ChainError: mid: root cause
func (e *Error) String() string {
	s := e.header()
	if e.SkipsCauseMessage() && e.cause != nil && e.cause.Error() != "" {
		s += "; caused by " + Describe(e.cause)
	}
	return s
}

func (e *Error) header() string {
	if msg := e.Error(); msg != "" {
		return e.Name() + ": " + msg
	}
	return e.Name()
}
