package eval

import (
	"bufio"
	"fmt"
	"io"

	"github.com/jcorbin/obsc/internal/arity"
	"github.com/jcorbin/obsc/internal/trap"
)

// Machine executes annotated programs. It owns two stacks: the primary
// stack, whose last element is the top, and a retained stack used as scratch
// space while running the nodes of a juxtaposition. A Machine runs one
// program at a time.
type Machine struct {
	logfn func(mess string, args ...interface{})
	outs  []io.Writer
	out   *bufio.Writer

	stack    []Value
	retained []Value
}

// New returns a machine configured by opts.
func New(opts ...Option) *Machine {
	var m Machine
	m.apply(opts...)
	return &m
}

// Stack returns the primary stack, bottom first.
func (m *Machine) Stack() []Value { return m.stack }

// Retained returns how many values are held on the retained stack.
func (m *Machine) Retained() int { return len(m.retained) }

// ExecuteProgram runs a whole program, which must need no inputs and
// contain only balanced branches; such programs fail with ErrArity before
// anything executes. Printed output is flushed before returning.
func (m *Machine) ExecuteProgram(n arity.Node) (err error) {
	if a := n.Arity(); a.In != 0 {
		return failf(ErrArity, "program", "needs %v inputs, has none", a.In)
	}
	if err := arity.Check(n); err != nil {
		return &Error{Kind: ErrArity, Op: "program", Err: err}
	}

	defer func() {
		// values stranded by a failed juxtaposition are simply discarded
		for i := range m.retained {
			m.retained[i] = nil
		}
		m.retained = m.retained[:0]
		if ferr := m.out.Flush(); err == nil {
			err = ferr
		}
	}()
	return m.Execute(n)
}

// Execute runs n against the current stacks. The first failure aborts
// the rest of n.
func (m *Machine) Execute(n arity.Node) error {
	switch n := n.(type) {
	case *arity.Composition:
		if m.logfn != nil {
			m.logf("%v compose -- s:%v", n.Arity(), m.stack)
			defer m.withLogPrefix("  ")()
		}
		for _, node := range n.Nodes {
			if err := m.Execute(node); err != nil {
				return err
			}
		}

	case *arity.Concatenation:
		if m.logfn != nil {
			m.logf("%v juxtapose -- s:%v", n.Arity(), m.stack)
			defer m.withLogPrefix("  ")()
		}
		m.retain(n.Arity().In)
		for _, node := range n.Nodes {
			m.restore(node.Arity().In)
			if err := m.Execute(node); err != nil {
				return err
			}
		}

	case *arity.Branch:
		cond := m.pop()
		m.logf("%v branch %v -- s:%v", n.Arity(), cond, m.stack)
		b, ok := cond.(Bool)
		if !ok {
			return typeError("branch", cond)
		}
		if b {
			return m.Execute(n.Then)
		}
		return m.Execute(n.Else)

	case *arity.WordNode:
		m.logf("%v %v %v -- s:%v", n.Arity(), n.Word, n.Word.Name(), m.stack)
		return m.execWord(n.Word)

	case arity.Integer:
		m.push(Integer(n))
	case arity.Float:
		m.push(Float(n))
	case arity.Text:
		m.push(Text(n))

	case *arity.Quotation:
		m.push(Quotation{Body: arity.Clone(n.Body)})

	case arity.IdN:
		// padding only

	default:
		trap.Invariant("unknown node %T", n)
	}
	return nil
}

func (m *Machine) push(val Value) {
	m.stack = append(m.stack, val)
}

func (m *Machine) pop() (val Value) {
	i := len(m.stack) - 1
	if i < 0 {
		trap.Invariant("stack underflow")
	}
	val, m.stack[i], m.stack = m.stack[i], nil, m.stack[:i]
	return val
}

// pop2 pops the right operand, then the left one beneath it.
func (m *Machine) pop2() (left, right Value) {
	right = m.pop()
	left = m.pop()
	return left, right
}

// retain moves the top n values onto the retained stack, top first.
func (m *Machine) retain(n uint) {
	for ; n > 0; n-- {
		m.retained = append(m.retained, m.pop())
	}
}

// restore moves n values back from the retained stack, undoing retain in
// reverse so that operand order is preserved.
func (m *Machine) restore(n uint) {
	for ; n > 0; n-- {
		i := len(m.retained) - 1
		if i < 0 {
			trap.Invariant("retained stack underflow")
		}
		var val Value
		val, m.retained[i], m.retained = m.retained[i], nil, m.retained[:i]
		m.push(val)
	}
}

func (m *Machine) logf(mess string, args ...interface{}) {
	if m.logfn != nil {
		m.logfn(mess, args...)
	}
}

func (m *Machine) withLogPrefix(prefix string) func() {
	logfn := m.logfn
	m.logfn = func(mess string, args ...interface{}) {
		logfn(prefix+mess, args...)
	}
	return func() {
		m.logfn = logfn
	}
}

func (m *Machine) String() string {
	return fmt.Sprintf("s:%v r:%v", m.stack, m.retained)
}
