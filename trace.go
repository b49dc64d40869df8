package chainerr

import (
	"fmt"
	"reflect"
	"runtime"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

// defaultTraceDepth bounds the number of frames a CallersTracer records.
const defaultTraceDepth = 32

// Trace is a captured call stack, innermost frame first.
type Trace []runtime.Frame

// String renders the trace one frame per entry in the layout used by
// github.com/pkg/errors for %+v:
//
//	\n<function>\n\t<file>:<line>
func (t Trace) String() string {
	var b strings.Builder
	for _, fr := range t {
		fmt.Fprintf(&b, "\n%s\n\t%s:%d", fr.Function, fr.File, fr.Line)
	}
	return b.String()
}

// StackTrace converts the trace to a pkg/errors stack trace so that tooling
// built around that package (error reporters, %+v formatting) can consume it.
func (t Trace) StackTrace() pkgerrors.StackTrace {
	if len(t) == 0 {
		return nil
	}
	st := make(pkgerrors.StackTrace, len(t))
	for i, fr := range t {
		// pkg/errors subtracts one to land on the call instruction.
		st[i] = pkgerrors.Frame(fr.PC + 1)
	}
	return st
}

// Tracer captures the call stack of an error under construction.
//
// skip is the number of frames above the caller of Capture to omit. When
// cutoff is non-empty, every frame up to and including the first frame whose
// function name equals cutoff is omitted as well.
type Tracer interface {
	Capture(skip int, cutoff string) Trace
}

// CallersTracer captures stacks with runtime.Callers.
type CallersTracer struct {
	// MaxDepth bounds the number of frames captured. Zero uses the default.
	MaxDepth int
}

// Capture implements Tracer.
func (t *CallersTracer) Capture(skip int, cutoff string) Trace {
	depth := t.MaxDepth
	if depth <= 0 {
		depth = defaultTraceDepth
	}

	// +2 skips runtime.Callers and Capture itself.
	pcs := make([]uintptr, depth)
	n := runtime.Callers(skip+2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	out := make(Trace, 0, n)
	for {
		fr, more := frames.Next()
		out = append(out, fr)
		if !more {
			break
		}
	}
	// Inlined calls expand to more frames than program counters.
	if len(out) > depth {
		out = out[:depth]
	}

	if cutoff != "" {
		for i, fr := range out {
			if fr.Function == cutoff {
				return out[i+1:]
			}
		}
	}
	return out
}

// NopTracer captures nothing. Useful for sentinel errors and hot paths.
type NopTracer struct{}

// Capture implements Tracer.
func (NopTracer) Capture(int, string) Trace { return nil }

var defaultTracer Tracer = &CallersTracer{MaxDepth: defaultTraceDepth}

// funcName resolves the fully-qualified name of a function value.
// Anything that is not a non-nil function yields "".
func funcName(fn any) string {
	if !isFunc(fn) {
		return ""
	}
	f := runtime.FuncForPC(reflect.ValueOf(fn).Pointer())
	if f == nil {
		return ""
	}
	// Method values resolve to a "-fm" wrapper; frames report the method.
	return strings.TrimSuffix(f.Name(), "-fm")
}

func isFunc(fn any) bool {
	if fn == nil {
		return false
	}
	v := reflect.ValueOf(fn)
	return v.Kind() == reflect.Func && !v.IsNil()
}
