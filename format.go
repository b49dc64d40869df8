package chainerr

import (
	"fmt"
	"io"
)

// Format implements fmt.Formatter.
//
//	%s, %v  composed message (Error())
//	%+v     full stack of the chain (FullStack())
//	%q      quoted composed message
func (e *Error) Format(s fmt.State, verb rune) {
	switch verb {
	case 'v':
		if s.Flag('+') {
			_, _ = io.WriteString(s, e.FullStack())
			return
		}
		_, _ = io.WriteString(s, e.Error())
	case 's':
		_, _ = io.WriteString(s, e.Error())
	case 'q':
		_, _ = fmt.Fprintf(s, "%q", e.Error())
	default:
		_, _ = fmt.Fprintf(s, "%%!%c(chainerr.Error=%s)", verb, e.Error())
	}
}
