package chainerr

import (
	"fmt"
	"go/token"
	"reflect"

	pkgerrors "github.com/pkg/errors"
)

// Cause returns the next error in err's cause chain, or nil if there is none.
//
// For an *Error this is its cause. For any other error it is the result of its
// Unwrap() error method, if it has one. Errors that only implement
// Unwrap() []error (errors.Join) have no single cause and yield nil.
//
// A nil err fails with an *ArgumentError.
//
// Example:
//
//	for cause, _ := chainerr.Cause(err); cause != nil; cause, _ = chainerr.Cause(cause) {
//	    fmt.Println(chainerr.Describe(cause))
//	}
func Cause(err error) (error, error) {
	return defaultInspector.Cause(err)
}

// Info returns the informational properties of err and all of its causes.
// Properties not set on err are inherited from its causes; a property set
// closer to err overrides the same key set deeper in the chain.
//
// Returns an empty map when no error in the chain carries properties.
//
// Example:
//
//	err := chainerr.Wrap(dbErr, "load failed", chainerr.WithInfoValue("user_id", 42))
//	info, _ := chainerr.Info(err) // {"user_id": 42, ...properties of dbErr's chain}
func Info(err error) (map[string]any, error) {
	return defaultInspector.Info(err)
}

// FindCauseByName walks err's chain, starting at err itself, and returns the
// first error whose name (see NameOf) equals name. It returns nil when no
// error matches.
//
// A nil err or an empty name fails with an *ArgumentError.
func FindCauseByName(err error, name string) (error, error) {
	return defaultInspector.FindCauseByName(err, name)
}

// HasCauseWithName reports whether FindCauseByName(err, name) finds an error.
func HasCauseWithName(err error, name string) (bool, error) {
	return defaultInspector.HasCauseWithName(err, name)
}

// FullStack returns the trace of err followed by the trace of every cause,
// each introduced by "\ncaused by: ".
func FullStack(err error) (string, error) {
	return defaultInspector.FullStack(err)
}

// Walk calls visit for err and each error in its cause chain, outermost first,
// stopping early when visit returns false.
func Walk(err error, visit func(error) bool) error {
	return defaultInspector.Walk(err, visit)
}

// DetailOf returns the first payload of type T attached with WithDetail in
// err's chain.
func DetailOf[T any](err error) (T, bool) {
	var (
		out   T
		found bool
	)
	if err == nil {
		return out, false
	}
	_ = defaultInspector.Walk(err, func(e error) bool {
		ce, ok := e.(*Error)
		if !ok {
			return true
		}
		if v, ok := ce.Detail().(T); ok {
			out, found = v, true
			return false
		}
		return true
	})
	return out, found
}

// NameOf returns the discriminator of err:
//   - the result of a Name() string method, when err has one and it is non-empty;
//   - otherwise the name of err's exported dynamic type, without package or
//     pointer (*fs.PathError yields "PathError");
//   - otherwise "Error", e.g. for errors.New and fmt.Errorf values.
func NameOf(err error) string {
	if err == nil {
		return ""
	}
	if n, ok := err.(interface{ Name() string }); ok {
		if name := n.Name(); name != "" {
			return name
		}
	}
	t := reflect.TypeOf(err)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if name := t.Name(); name != "" && token.IsExported(name) {
		return name
	}
	return "Error"
}

// Describe renders err as "<name>: <message>", or just the name when the
// message is empty. An *Error renders with its String method, which includes
// skipped causes.
func Describe(err error) string {
	if err == nil {
		return ""
	}
	if e, ok := err.(*Error); ok {
		return e.String()
	}
	return describeHeader(err)
}

// StackOf returns the own debug trace of err. For an *Error it is Stack().
// Errors carrying a github.com/pkg/errors stack trace render it below their
// header; other errors render the header alone.
func StackOf(err error) string {
	switch e := err.(type) {
	case nil:
		return ""
	case *Error:
		return e.Stack()
	case interface{ StackTrace() pkgerrors.StackTrace }:
		return describeHeader(err) + fmt.Sprintf("%+v", e.StackTrace())
	default:
		return describeHeader(err)
	}
}

func describeHeader(err error) string {
	name := NameOf(err)
	if msg := err.Error(); msg != "" {
		return name + ": " + msg
	}
	return name
}

// causeOf returns the single error wrapped by err, if any.
func causeOf(err error) error {
	if u, ok := err.(interface{ Unwrap() error }); ok {
		return u.Unwrap()
	}
	return nil
}
