// Package trap handles internal invariant violations: conditions that
// static analysis guarantees never happen, such as stack underflow in a well
// annotated program. They panic rather than return errors, and are turned
// back into errors only at the outermost boundary by Recover.
package trap

import (
	"errors"
	"fmt"
	"runtime/debug"
)

// Violation is the panic value of Invariant.
type Violation struct{ Message string }

func (v Violation) Error() string { return "internal invariant violated: " + v.Message }

// Invariant panics with a Violation.
func Invariant(mess string, args ...interface{}) {
	if len(args) > 0 {
		mess = fmt.Sprintf(mess, args...)
	}
	panic(Violation{mess})
}

// Recover runs f, returning its error or converting any panic into one. The
// returned error retains the panic stack, shown by the "%+v" verb.
func Recover(name string, f func() error) (err error) {
	defer func() {
		if e := recover(); e != nil {
			err = panicError{name, e, debug.Stack()}
		}
	}()
	return f()
}

type panicError struct {
	name  string
	e     interface{}
	stack []byte
}

func (pe panicError) Error() string {
	return fmt.Sprint(pe)
}

func (pe panicError) Format(f fmt.State, c rune) {
	if pe.name == "" {
		fmt.Fprintf(f, "paniced: %v", pe.e)
	} else {
		fmt.Fprintf(f, "%v paniced: %v", pe.name, pe.e)
	}
	if c == 'v' && f.Flag('+') {
		fmt.Fprintf(f, "\nPanic stack: %s", pe.stack)
	}
}

func (pe panicError) Unwrap() error {
	err, _ := pe.e.(error)
	return err
}

// IsPanic returns true if err is a recovered panic.
func IsPanic(err error) bool {
	var pe panicError
	return errors.As(err, &pe)
}

// IsViolation returns true if err is a recovered invariant violation.
func IsViolation(err error) bool {
	var v Violation
	return errors.As(err, &v)
}

// Stack returns a non-empty stacktrace string if err is a recovered panic.
func Stack(err error) string {
	var pe panicError
	if errors.As(err, &pe) {
		return string(pe.stack)
	}
	return ""
}
