package eval

import (
	"math"
	"strconv"
	"strings"

	"github.com/jcorbin/obsc/internal/arity"
)

// Value is a runtime stack cell.
type Value interface {
	Kind() string
	String() string
}

type (
	Integer int64
	Float   float64
	Text    string
	Bool    bool
)

// Quotation is a deferred program fragment carried as a value. It owns its
// body: copies of a quotation never share one.
type Quotation struct{ Body arity.Node }

// List is a sequence of values that grows at the back and shrinks from the
// front.
type List struct {
	vals []Value
}

// NewList returns a list holding vals.
func NewList(vals ...Value) *List {
	return &List{vals: vals}
}

// PushBack appends val to the back of the list.
func (l *List) PushBack(val Value) { l.vals = append(l.vals, val) }

// PopFront removes and returns the front value, or false if the list is empty.
func (l *List) PopFront() (Value, bool) {
	if len(l.vals) == 0 {
		return nil, false
	}
	val := l.vals[0]
	l.vals[0] = nil
	if l.vals = l.vals[1:]; len(l.vals) == 0 {
		l.vals = nil
	}
	return val, true
}

func (Integer) Kind() string    { return "integer" }
func (Float) Kind() string      { return "float" }
func (Text) Kind() string       { return "text" }
func (Bool) Kind() string       { return "boolean" }
func (*List) Kind() string      { return "list" }
func (Quotation) Kind() string { return "quotation" }

func (i Integer) String() string { return strconv.FormatInt(int64(i), 10) }
func (s Text) String() string    { return strconv.Quote(string(s)) }
func (b Bool) String() string    { return strconv.FormatBool(bool(b)) }

func (f Float) String() string {
	switch {
	case math.IsInf(float64(f), 1):
		return "inf"
	case math.IsInf(float64(f), -1):
		return "-inf"
	}
	return strconv.FormatFloat(float64(f), 'f', -1, 64)
}

func (l *List) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, val := range l.vals {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(val.String())
	}
	sb.WriteByte(')')
	return sb.String()
}

func (q Quotation) String() string { return "[" + arity.Format(q.Body) + "]" }

// clone returns an independent copy of val, so that no two stack cells ever
// alias the same list or quotation body.
func clone(val Value) Value {
	switch val := val.(type) {
	case *List:
		dup := &List{}
		for _, v := range val.vals {
			dup.vals = append(dup.vals, clone(v))
		}
		return dup
	case Quotation:
		return Quotation{Body: arity.Clone(val.Body)}
	}
	return val
}

// printable returns the textual form written by the print word, or false
// for values that have none.
func printable(val Value) (string, bool) {
	switch val := val.(type) {
	case Integer, Float, Bool:
		return val.String(), true
	case Text:
		return string(val), true
	}
	return "", false
}
