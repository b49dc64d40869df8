package chainerr

import "maps"

// Options is the record form of the construction options, accepted by NewFrom.
type Options struct {
	// Name overrides the discriminator. Empty keeps the default ("ChainError").
	Name string

	// Cause is the error that caused the new one.
	Cause error

	// Info holds informational properties. It is shallow-copied; nested values
	// are shared with the caller.
	Info map[string]any

	// TraceCutoff is a function value. Frames up to and including the first
	// call to it are left out of the captured trace, so wrappers and factories
	// can hide themselves. Must be a function when set.
	TraceCutoff any
}

// Option configures an error under construction.
type Option func(*config)

// config holds the resolved construction settings.
type config struct {
	name             string
	cause            error
	info             map[string]any
	detail           any
	cutoff           string
	skip             int
	skipCauseMessage bool
	tracer           Tracer
}

func newConfig(opts []Option) *config {
	cfg := &config{tracer: defaultTracer}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// mergeInfo copies src into the config, creating the map on first use so the
// caller's map is never aliased.
func (c *config) mergeInfo(src map[string]any) {
	if src == nil {
		return
	}
	if c.info == nil {
		c.info = make(map[string]any, len(src))
	}
	maps.Copy(c.info, src)
}

func (c *config) applyOptions(o Options) {
	if o.Name != "" {
		c.name = o.Name
	}
	if o.Cause != nil {
		c.cause = o.Cause
	}
	c.mergeInfo(o.Info)
	if name := funcName(o.TraceCutoff); name != "" {
		c.cutoff = name
	}
}

// WithName sets the discriminator used by FindCauseByName and String.
func WithName(name string) Option {
	return func(c *config) {
		if name != "" {
			c.name = name
		}
	}
}

// WithCause links the error to its cause.
func WithCause(cause error) Option {
	return func(c *config) {
		c.cause = cause
	}
}

// WithInfo merges informational properties into the error. It may be given
// more than once; later keys win.
func WithInfo(info map[string]any) Option {
	return func(c *config) {
		c.mergeInfo(info)
	}
}

// WithInfoValue sets a single informational property.
func WithInfoValue(key string, value any) Option {
	return func(c *config) {
		c.mergeInfo(map[string]any{key: value})
	}
}

// WithDetail attaches a typed payload for variant-specific fields.
// Retrieve it with DetailOf.
func WithDetail(detail any) Option {
	return func(c *config) {
		c.detail = detail
	}
}

// WithTraceCutoff hides fn, and everything it called, from the captured trace.
// Values that are not functions are ignored.
func WithTraceCutoff(fn any) Option {
	return func(c *config) {
		c.cutoff = funcName(fn)
	}
}

// WithTraceSkip omits n additional frames from the top of the captured trace.
func WithTraceSkip(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.skip = n
		}
	}
}

// WithTracer replaces the trace collaborator for this error.
func WithTracer(t Tracer) Option {
	return func(c *config) {
		if t != nil {
			c.tracer = t
		}
	}
}

// SkipCauseMessage keeps the cause's message out of Error(). The cause stays
// linked and is rendered by String and FullStack.
func SkipCauseMessage() Option {
	return func(c *config) {
		c.skipCauseMessage = true
	}
}
