package mesh

import (
	"errors"
	"fmt"
)

// ErrMalformed is wrapped by every DecodeError.
var ErrMalformed = errors.New("malformed record")

// DecodeError reports a line that carries a known descriptor but does not
// match the shape of its kind.
type DecodeError struct {
	Kind Kind
	Text string
	Err  error // underlying numeric error, if any
}

func (e *DecodeError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("mesh: could not convert %s %q: %v", e.Kind, e.Text, e.Err)
	}
	return fmt.Sprintf("mesh: could not convert %s %q", e.Kind, e.Text)
}

func (e *DecodeError) Unwrap() []error {
	if e.Err != nil {
		return []error{ErrMalformed, e.Err}
	}
	return []error{ErrMalformed}
}

// Diagnostic describes one malformed line. The line was replaced by the zero
// record of Kind.
type Diagnostic struct {
	Line int // 1-based line number
	Kind Kind
	Text string
	Err  error
}

func (d Diagnostic) String() string {
	return fmt.Sprintf("line %d: %v", d.Line, d.Err)
}
