package eval

import (
	"fmt"
	"io"

	"github.com/jcorbin/obsc/internal/arity"
	"github.com/jcorbin/obsc/internal/syntax"
	"github.com/jcorbin/obsc/internal/trap"
)

var wordTable []func(m *Machine) error

// wordTable refers back to Execute through rec, so it must be filled in
// after package initialization.
func init() {
	wordTable = []func(m *Machine) error{
		syntax.Gt: func(m *Machine) error { return m.compare(syntax.Gt) },
		syntax.Eq: func(m *Machine) error { return m.compare(syntax.Eq) },
		syntax.Lt: func(m *Machine) error { return m.compare(syntax.Lt) },

		syntax.Plus:  func(m *Machine) error { return m.arith(syntax.Plus) },
		syntax.Minus: func(m *Machine) error { return m.arith(syntax.Minus) },
		syntax.Prod:  func(m *Machine) error { return m.arith(syntax.Prod) },
		syntax.Div:   func(m *Machine) error { return m.arith(syntax.Div) },

		syntax.Swap: (*Machine).swap,
		syntax.Dup:  (*Machine).dup,
		syntax.Drop: (*Machine).drop,
		syntax.Id:   func(*Machine) error { return nil },

		syntax.Zilde:  (*Machine).zilde,
		syntax.Comma:  (*Machine).comma,
		syntax.Behead: (*Machine).behead,

		syntax.Print: (*Machine).print,
		syntax.Rec:   (*Machine).rec,
	}
}

func (m *Machine) execWord(w syntax.Word) error {
	if int(w) >= len(wordTable) || wordTable[w] == nil {
		trap.Invariant("no implementation for word %v", w.Name())
	}
	return wordTable[w](m)
}

// Symbol   Name      Function
//   > = <  compare   pop right then left; push the comparison as a boolean
func (m *Machine) compare(w syntax.Word) error {
	left, right := m.pop2()
	var res bool
	switch l := left.(type) {
	case Integer:
		r, ok := right.(Integer)
		if !ok {
			return typeError(w.String(), left, right)
		}
		switch w {
		case syntax.Gt:
			res = l > r
		case syntax.Eq:
			res = l == r
		case syntax.Lt:
			res = l < r
		}
	case Float:
		r, ok := right.(Float)
		if !ok {
			return typeError(w.String(), left, right)
		}
		switch w {
		case syntax.Gt:
			res = l > r
		case syntax.Eq:
			res = l == r
		case syntax.Lt:
			res = l < r
		}
	default:
		return typeError(w.String(), left, right)
	}
	m.push(Bool(res))
	return nil
}

// Symbol    Name        Function
//   + − × ÷  arithmetic  pop right then left; push the result, of the same
//                        numeric kind as both operands
func (m *Machine) arith(w syntax.Word) error {
	left, right := m.pop2()
	switch l := left.(type) {
	case Integer:
		r, ok := right.(Integer)
		if !ok {
			break
		}
		switch w {
		case syntax.Plus:
			m.push(l + r)
		case syntax.Minus:
			m.push(l - r)
		case syntax.Prod:
			m.push(l * r)
		case syntax.Div:
			if r == 0 {
				return failf(ErrDivide, w.String(), "%v ÷ 0", l)
			}
			m.push(l / r)
		}
		return nil

	case Float:
		r, ok := right.(Float)
		if !ok {
			break
		}
		switch w {
		case syntax.Plus:
			m.push(l + r)
		case syntax.Minus:
			m.push(l - r)
		case syntax.Prod:
			m.push(l * r)
		case syntax.Div:
			m.push(l / r)
		}
		return nil
	}
	return typeError(w.String(), left, right)
}

// Symbol   Name   Function
//    ↔     swap   exchange the top two values
func (m *Machine) swap() error {
	left, right := m.pop2()
	m.push(right)
	m.push(left)
	return nil
}

// Symbol   Name   Function
//    ⇈     dup    push an independent copy of the top value
func (m *Machine) dup() error {
	val := m.pop()
	m.push(clone(val))
	m.push(val)
	return nil
}

// Symbol   Name   Function
//    ↓     drop   discard the top value
func (m *Machine) drop() error {
	m.pop()
	return nil
}

// Symbol   Name    Function
//    ⍬     zilde   push a new empty list
func (m *Machine) zilde() error {
	m.push(NewList())
	return nil
}

// Symbol   Name    Function
//    ,     comma   pop a value, then a list; push the list with the value
//                  appended at its back
func (m *Machine) comma() error {
	list, val := m.pop2()
	l, ok := list.(*List)
	if !ok {
		return typeError(syntax.Comma.String(), list, val)
	}
	l.PushBack(val)
	m.push(l)
	return nil
}

// Symbol   Name     Function
//    ⍘     behead   pop a list; push its front value, then the rest of it
func (m *Machine) behead() error {
	list := m.pop()
	l, ok := list.(*List)
	if !ok {
		return typeError(syntax.Behead.String(), list)
	}
	val, ok := l.PopFront()
	if !ok {
		return failf(ErrList, syntax.Behead.String(), "empty list")
	}
	m.push(val)
	m.push(l)
	return nil
}

// Symbol   Name    Function
//    ⎕     print   pop a number, boolean, or text, and write it out with no
//                  trailing separator
func (m *Machine) print() error {
	val := m.pop()
	s, ok := printable(val)
	if !ok {
		return failf(ErrPrint, syntax.Print.String(), "cannot print %v %v", val.Kind(), val)
	}
	if _, err := io.WriteString(m.out, s); err != nil {
		return fmt.Errorf("%v: %w", syntax.Print, err)
	}
	if err := m.out.Flush(); err != nil {
		return fmt.Errorf("%v: %w", syntax.Print, err)
	}
	return nil
}

// Symbol   Name   Function
//    ∇     rec    pop a quotation, then a seed value; run the quotation on
//                 the seed until it leaves a false flag on top, leaving the
//                 last value it produced under that flag
func (m *Machine) rec() error {
	seed, quot := m.pop2()
	q, ok := quot.(Quotation)
	if !ok {
		return typeError(syntax.Rec.String(), seed, quot)
	}
	if a := q.Body.Arity(); a != arity.LoopArity {
		return failf(ErrArity, syntax.Rec.String(), "quotation %v has arity %v, need %v", q, a, arity.LoopArity)
	}

	m.push(seed)
	for {
		if err := m.Execute(q.Body); err != nil {
			return err
		}
		flag := m.pop()
		more, ok := flag.(Bool)
		if !ok {
			return typeError(syntax.Rec.String(), flag)
		}
		if !more {
			return nil
		}
	}
}
