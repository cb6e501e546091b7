// Package errs defines the single error channel the evaluator raises
// through: a thrown Value. Native errors (parse failures, I/O failures,
// type/arity errors, lookup failures) are converted to thrown String
// values; `throw` lets user code raise any Value unchanged.
package errs

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/miDeb/malgo/internal/value"
)

// Thrown wraps a Value propagating out of evaluation until a try*/catch*
// catches it or it reaches the REPL driver.
type Thrown struct {
	Value value.Value
}

func (t *Thrown) Error() string {
	return value.PrStr(t.Value, true)
}

// New wraps v as a thrown error, unchanged — this is what `throw` does.
func New(v value.Value) error {
	return &Thrown{Value: v}
}

// Newf builds a thrown String value from a format string, the MAL
// convention for native errors (lookup failures, arity errors, div by
// zero, bad map keys, and so on).
func Newf(format string, args ...any) error {
	return &Thrown{Value: value.String(fmt.Sprintf(format, args...))}
}

// FromError converts an arbitrary Go error into a thrown String value. If
// it is already a *Thrown, its Value is preserved verbatim (so a throw
// that bubbles through a native helper keeps the user's original value
// instead of getting re-stringified).
func FromError(err error) error {
	if err == nil {
		return nil
	}
	if t, ok := err.(*Thrown); ok {
		return t
	}
	return &Thrown{Value: value.String(err.Error())}
}

// AsValue reports whether err is a thrown value and returns it.
func AsValue(err error) (value.Value, bool) {
	t, ok := err.(*Thrown)
	if !ok {
		return value.Nil, false
	}
	return t.Value, true
}

// WrapIO wraps an I/O-layer error (file read failures from slurp/load-file)
// with msg and a stack trace via github.com/pkg/errors. slurp then converts
// it to a thrown String of its message ("slurp: ..."), so the stack trace
// itself is not printed anywhere.
func WrapIO(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
