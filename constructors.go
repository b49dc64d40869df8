package chainerr

import (
	"fmt"
	"reflect"
)

// New creates an error with the given message.
//
// Example:
//
//	err := chainerr.New("lookup failed",
//	    chainerr.WithName("DNSError"),
//	    chainerr.WithInfo(map[string]any{"host": host}),
//	)
func New(message string, opts ...Option) *Error {
	return newError(message, newConfig(opts), 1)
}

// Newf creates an error with a formatted message.
func Newf(format string, args ...any) *Error {
	return newError(fmt.Sprintf(format, args...), newConfig(nil), 1)
}

// Wrap creates an error caused by cause. The message becomes
// "message: <cause message>" unless SkipCauseMessage is given.
//
// A nil cause yields an error without a cause, the same as New.
//
// Example:
//
//	if err := conn.Query(ctx, q); err != nil {
//	    return chainerr.Wrap(err, "failed to load user", chainerr.WithInfoValue("user_id", id))
//	}
func Wrap(cause error, message string, opts ...Option) *Error {
	cfg := newConfig(opts)
	if cause != nil {
		cfg.cause = cause
	}
	return newError(message, cfg, 1)
}

// Wrapf wraps cause with a formatted message.
func Wrapf(cause error, format string, args ...any) *Error {
	cfg := newConfig(nil)
	cfg.cause = cause
	return newError(fmt.Sprintf(format, args...), cfg, 1)
}

// NewFrom builds an error from loosely typed arguments, for callers that
// assemble construction input dynamically.
//
// message must be a string or nil (treated as ""). optsOrCause may be:
//   - an error, used as the cause;
//   - an Options value or *Options;
//   - a map[string]any with the keys "cause", "name", "info" and "traceCutoff";
//   - nil, for no options.
//
// Anything else, a non-error "cause" or a non-function trace cutoff fails
// with an *ArgumentError matching ErrInvalidArgument.
func NewFrom(message any, optsOrCause any, skipCauseMessage bool) (*Error, error) {
	const op = "NewFrom"

	var msg string
	switch m := message.(type) {
	case nil:
	case string:
		msg = m
	default:
		return nil, invalidArgument(op, "message must be a string")
	}

	cfg := newConfig(nil)
	cfg.skipCauseMessage = skipCauseMessage

	switch v := optsOrCause.(type) {
	case nil:
	case error:
		cfg.cause = v
	case Options:
		if err := validateOptions(op, v); err != nil {
			return nil, err
		}
		cfg.applyOptions(v)
	case *Options:
		if v != nil {
			if err := validateOptions(op, *v); err != nil {
				return nil, err
			}
			cfg.applyOptions(*v)
		}
	case map[string]any:
		o, err := optionsFromMap(op, v)
		if err != nil {
			return nil, err
		}
		cfg.applyOptions(o)
	default:
		return nil, invalidArgument(op, "second argument must be an options record or an error")
	}

	return newError(msg, cfg, 1), nil
}

func validateOptions(op string, o Options) error {
	if o.TraceCutoff != nil && !isFunc(o.TraceCutoff) {
		return invalidArgument(op, "traceCutoff must be a function")
	}
	return nil
}

func optionsFromMap(op string, m map[string]any) (Options, error) {
	var o Options

	if v, ok := m["cause"]; ok && v != nil {
		cause, isErr := v.(error)
		if !isErr {
			return o, invalidArgument(op, "cause is not an error")
		}
		o.Cause = cause
	}

	if v, ok := m["name"]; ok && v != nil {
		name, isStr := v.(string)
		if !isStr {
			return o, invalidArgument(op, "name must be a string")
		}
		o.Name = name
	}

	if v, ok := m["info"]; ok && v != nil {
		info, isMap := v.(map[string]any)
		if !isMap {
			return o, invalidArgument(op, fmt.Sprintf("info must be a map[string]any, got %s", reflect.TypeOf(v)))
		}
		o.Info = info
	}

	if v, ok := m["traceCutoff"]; ok && v != nil {
		o.TraceCutoff = v
	}

	return o, validateOptions(op, o)
}

// newError assembles the error. skip is the number of frames between the
// public entry point's caller and newError, excluding newError itself.
func newError(message string, cfg *config, skip int) *Error {
	e := &Error{
		name:             defaultName,
		current:          message,
		message:          message,
		cause:            cfg.cause,
		info:             cfg.info,
		detail:           cfg.detail,
		skipCauseMessage: cfg.skipCauseMessage,
	}

	if cfg.name != "" {
		e.name = cfg.name
	}

	if e.cause != nil && !e.skipCauseMessage {
		e.message += ": " + e.cause.Error()
	}

	// cfg.info is always a fresh map built by mergeInfo.
	if e.info == nil {
		e.info = map[string]any{}
	}

	e.trace = cfg.tracer.Capture(skip+1+cfg.skip, cfg.cutoff)
	return e
}
