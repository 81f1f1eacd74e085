package eval

import (
	"errors"
	"fmt"
	"strings"
)

// Error kinds; test with errors.Is.
var (
	ErrType   = errors.New("type error")
	ErrList   = errors.New("list error")
	ErrPrint  = errors.New("print error")
	ErrArity  = errors.New("arity error")
	ErrDivide = errors.New("division by zero")
)

// Error is the single failure of a program run: which construct failed, in
// which way, and why.
type Error struct {
	Kind   error
	Op     string
	Detail string
	Err    error
}

func (err *Error) Error() string {
	var sb strings.Builder
	if err.Op != "" {
		sb.WriteString(err.Op)
		sb.WriteString(": ")
	}
	sb.WriteString(err.Kind.Error())
	if err.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(err.Detail)
	}
	if err.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(err.Err.Error())
	}
	return sb.String()
}

// Is matches the error's kind.
func (err *Error) Is(target error) bool { return target == err.Kind }

func (err *Error) Unwrap() error { return err.Err }

func failf(kind error, op string, detail string, args ...interface{}) *Error {
	if len(args) > 0 {
		detail = fmt.Sprintf(detail, args...)
	}
	return &Error{Kind: kind, Op: op, Detail: detail}
}

func typeError(op string, vals ...Value) *Error {
	var sb strings.Builder
	sb.WriteString("unexpected ")
	for i, val := range vals {
		if i > 0 {
			sb.WriteString(" and ")
		}
		sb.WriteString(val.Kind())
		sb.WriteByte(' ')
		sb.WriteString(val.String())
	}
	return failf(ErrType, op, sb.String())
}
