// Package chainerr provides errors that keep their root cause.
//
// An *Error optionally wraps the error that caused it, carries informational
// properties ("info") that are inherited along the cause chain, and captures a
// debug trace at construction. Wrapping a low-level failure in a more
// meaningful error therefore never loses the original diagnostics.
//
// # Features
//
//   - Message composition: "top: mid: root cause"
//   - Info inheritance with shallow-to-deep override
//   - Lookup of causes by name (FindCauseByName, HasCauseWithName)
//   - Multi-level traces (FullStack) with trace cutoffs for helper functions
//   - Named variants (Kind) that share all chain behavior
//   - Standard library compatibility (errors.Is, errors.As, errors.Unwrap)
//   - Structured logging through log/slog and zerolog
//
// # Quick Start
//
// Creating errors:
//
//	err := chainerr.New("user not found")
//
//	err := chainerr.New("lookup failed",
//	    chainerr.WithName("DNSError"),
//	    chainerr.WithInfo(map[string]any{"hostname": host}),
//	)
//
// Wrapping errors:
//
//	if err := conn.Ping(ctx); err != nil {
//	    return chainerr.Wrap(err, "database unavailable")
//	}
//
// The composed message of the result is "database unavailable: <cause>". Pass
// SkipCauseMessage to keep the cause out of the message; the cause is then
// rendered by String as "; caused by <cause>" instead.
//
// Inspecting chains:
//
//	info, _ := chainerr.Info(err)
//	if ok, _ := chainerr.HasCauseWithName(err, "DNSError"); ok {
//	    // handle DNS failures
//	}
//	stack, _ := chainerr.FullStack(err)
//
// The chain walkers return an *ArgumentError matching ErrInvalidArgument when
// given a nil error or an empty name. Method forms on *Error (Info, Cause,
// FullStack) cannot fail.
//
// # Names
//
// Every error in a chain has a name (see NameOf). Errors from this package are
// named "ChainError" unless WithName or a Kind says otherwise. Other errors use
// a Name() string method when they have one, then their exported type name,
// then "Error".
//
// # Chains of foreign errors
//
// Any error with an Unwrap() error method continues the chain, so errors from
// fmt.Errorf("%w") and github.com/pkg/errors are walked like *Error values.
// Chains are assumed finite. Callers that may see cyclic Unwrap
// implementations should use an Inspector with WithMaxDepth.
//
// # Traces
//
// Traces are captured by a Tracer. The default records up to 32 frames with
// runtime.Callers. WithTraceCutoff(fn) drops fn and everything it called, which
// lets factory functions hide themselves:
//
//	func notFound(id string) *chainerr.Error {
//	    return chainerr.New("not found: "+id, chainerr.WithTraceCutoff(notFound))
//	}
package chainerr
