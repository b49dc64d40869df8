package chainerr

import "fmt"

// Kind is a named error variant. Errors built through a Kind share all chain
// behavior with plain errors and differ only by their discriminator, so
// variants stay interchangeable and are matched by name rather than by type.
//
// Kinds are usually declared once at package level:
//
//	var ErrNotFound = chainerr.Define("NotFoundError")
//
//	func load(id string) error {
//	    row, err := db.Get(id)
//	    if err != nil {
//	        return ErrNotFound.Wrap(err, "load "+id)
//	    }
//	    ...
//	}
//
//	if ok, _ := ErrNotFound.In(err); ok { ... }
type Kind struct {
	name string
}

// Define creates a Kind. It panics if name is empty, as kinds are declared
// at package initialization.
func Define(name string) Kind {
	if name == "" {
		panic("chainerr: Define: name must be a non-empty string")
	}
	return Kind{name: name}
}

// Name returns the discriminator shared by errors of this kind.
func (k Kind) Name() string {
	return k.name
}

// New creates an error of this kind.
func (k Kind) New(message string, opts ...Option) *Error {
	return newError(message, k.config(opts), 1)
}

// Newf creates an error of this kind with a formatted message.
func (k Kind) Newf(format string, args ...any) *Error {
	return newError(fmt.Sprintf(format, args...), k.config(nil), 1)
}

// Wrap creates an error of this kind caused by cause.
func (k Kind) Wrap(cause error, message string, opts ...Option) *Error {
	cfg := k.config(opts)
	if cause != nil {
		cfg.cause = cause
	}
	return newError(message, cfg, 1)
}

// Wrapf wraps cause in an error of this kind with a formatted message.
func (k Kind) Wrapf(cause error, format string, args ...any) *Error {
	cfg := k.config(nil)
	cfg.cause = cause
	return newError(fmt.Sprintf(format, args...), cfg, 1)
}

// Find returns the first error of this kind in err's chain.
func (k Kind) Find(err error) (error, error) {
	return FindCauseByName(err, k.name)
}

// In reports whether err's chain contains an error of this kind.
func (k Kind) In(err error) (bool, error) {
	return HasCauseWithName(err, k.name)
}

// config applies opts, then pins the kind's name so options cannot rename it.
func (k Kind) config(opts []Option) *config {
	cfg := newConfig(opts)
	if k.name != "" {
		cfg.name = k.name
	}
	return cfg
}
