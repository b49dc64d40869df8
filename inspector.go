package chainerr

import (
	"fmt"
	"log/slog"
	"maps"
	"strings"
)

// Inspector walks cause chains. The zero configuration walks chains of any
// length; WithMaxDepth adds a safety cap for callers that cannot rule out
// cyclic chains built from foreign Unwrap implementations.
//
// An Inspector holds only immutable configuration and is safe to share.
type Inspector struct {
	maxDepth int
	logger   *slog.Logger
}

// InspectorOption configures an Inspector.
type InspectorOption func(*Inspector)

// WithMaxDepth caps the number of errors visited per walk. Walks that would
// go further fail with ErrChainTooDeep. Zero or less means unlimited.
func WithMaxDepth(n int) InspectorOption {
	return func(in *Inspector) {
		if n > 0 {
			in.maxDepth = n
		}
	}
}

// WithLogger sets the logger used to report truncated walks.
func WithLogger(logger *slog.Logger) InspectorOption {
	return func(in *Inspector) {
		if logger != nil {
			in.logger = logger
		}
	}
}

// NewInspector creates an Inspector.
func NewInspector(opts ...InspectorOption) *Inspector {
	in := &Inspector{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(in)
	}
	return in
}

var defaultInspector = NewInspector()

// MaxDepth returns the configured cap, 0 when unlimited.
func (in *Inspector) MaxDepth() int {
	return in.maxDepth
}

// walk calls visit for err and each successive cause, outermost first, until
// visit returns false or the chain ends.
func (in *Inspector) walk(op string, err error, visit func(error) bool) error {
	if err == nil {
		return invalidArgument(op, "err must be an error")
	}

	for depth := 0; err != nil; depth++ {
		if in.maxDepth > 0 && depth >= in.maxDepth {
			in.logger.Debug("cause chain exceeds maximum depth",
				"op", op,
				"max_depth", in.maxDepth,
				"outermost", Describe(err),
			)
			return fmt.Errorf("chainerr: %s: %w (stopped after %d errors)", op, ErrChainTooDeep, depth)
		}
		if !visit(err) {
			return nil
		}
		err = causeOf(err)
	}
	return nil
}

// Walk calls visit for err and each error in its cause chain, outermost first.
// The walk stops early when visit returns false.
func (in *Inspector) Walk(err error, visit func(error) bool) error {
	return in.walk("Walk", err, visit)
}

// Cause returns the next error in err's chain, or nil when there is none.
func (in *Inspector) Cause(err error) (error, error) {
	if err == nil {
		return nil, invalidArgument("Cause", "err must be an error")
	}
	return causeOf(err), nil
}

// Info merges the informational properties of err's chain. Properties set on
// a deeper cause are visible unless a shallower error sets the same key.
// The result is a fresh map; stored properties are never modified.
func (in *Inspector) Info(err error) (map[string]any, error) {
	var levels []map[string]any
	walkErr := in.walk("Info", err, func(e error) bool {
		if ce, ok := e.(*Error); ok && ce != nil {
			levels = append(levels, ce.info)
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}

	info := make(map[string]any)
	for i := len(levels) - 1; i >= 0; i-- {
		maps.Copy(info, levels[i])
	}
	return info, nil
}

// FindCauseByName returns the first error in err's chain, starting with err
// itself, whose name equals name. It returns nil when nothing matches.
func (in *Inspector) FindCauseByName(err error, name string) (error, error) {
	const op = "FindCauseByName"
	if err == nil {
		return nil, invalidArgument(op, "err must be an error")
	}
	if name == "" {
		return nil, invalidArgument(op, "name must be a non-empty string")
	}

	var found error
	walkErr := in.walk(op, err, func(e error) bool {
		if NameOf(e) == name {
			found = e
			return false
		}
		return true
	})
	if walkErr != nil {
		return nil, walkErr
	}
	return found, nil
}

// HasCauseWithName reports whether FindCauseByName would find an error.
func (in *Inspector) HasCauseWithName(err error, name string) (bool, error) {
	found, findErr := in.FindCauseByName(err, name)
	if findErr != nil {
		return false, findErr
	}
	return found != nil, nil
}

// FullStack returns err's own trace followed by "\ncaused by: " and the trace
// of each cause in turn.
func (in *Inspector) FullStack(err error) (string, error) {
	var b strings.Builder
	depth := 0
	walkErr := in.walk("FullStack", err, func(e error) bool {
		if depth > 0 {
			b.WriteString("\ncaused by: ")
		}
		b.WriteString(StackOf(e))
		depth++
		return true
	})
	if walkErr != nil {
		return "", walkErr
	}
	return b.String(), nil
}
