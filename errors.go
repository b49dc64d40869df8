package chainerr

import "errors"

var (
	// ErrInvalidArgument is matched by every validation failure returned from
	// this package. Use errors.Is(err, ErrInvalidArgument) to detect it.
	ErrInvalidArgument = errors.New("invalid argument")

	// ErrChainTooDeep is returned by an Inspector configured with a maximum
	// depth when a cause chain is longer than that depth.
	ErrChainTooDeep = errors.New("cause chain too deep")
)

// ArgumentError reports an argument that violates an operation's contract,
// such as a nil error where an error is required or an empty name.
type ArgumentError struct {
	// Op is the operation that rejected the argument (e.g. "FindCauseByName").
	Op string

	// Msg names the violated constraint (e.g. "err must be an error").
	Msg string
}

// Error implements the error interface.
func (e *ArgumentError) Error() string {
	return "chainerr: " + e.Op + ": " + e.Msg
}

// Name returns the discriminator used by FindCauseByName.
func (e *ArgumentError) Name() string {
	return "InvalidArgument"
}

// Unwrap returns ErrInvalidArgument for errors.Is compatibility.
func (e *ArgumentError) Unwrap() error {
	return ErrInvalidArgument
}

func invalidArgument(op, msg string) error {
	return &ArgumentError{Op: op, Msg: msg}
}
