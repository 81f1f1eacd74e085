package eval

import (
	"bufio"
	"io"
)

// Option configures a Machine.
type Option interface{ apply(m *Machine) }

func (m *Machine) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(m)
		}
	}
	m.out = bufio.NewWriter(io.MultiWriter(m.outs...))
}

// WithOutput sets where the print word writes, replacing any prior output
// and tees; output is discarded by default.
func WithOutput(w io.Writer) Option { return outputOption{w} }

// WithTee copies printed output to w as well.
func WithTee(w io.Writer) Option { return teeOption{w} }

// WithLogf enables trace logging of every executed node.
func WithLogf(logfn func(mess string, args ...interface{})) Option { return withLogfn(logfn) }

// WithStack seeds the stack, bottom first.
func WithStack(vals ...Value) Option { return stackOption(vals) }

type withLogfn func(mess string, args ...interface{})

func (logfn withLogfn) apply(m *Machine) {
	m.logfn = logfn
}

type outputOption struct{ io.Writer }
type teeOption struct{ io.Writer }
type stackOption []Value

func (o outputOption) apply(m *Machine) { m.outs = []io.Writer{o.Writer} }
func (o teeOption) apply(m *Machine)    { m.outs = append(m.outs, o.Writer) }

func (vals stackOption) apply(m *Machine) {
	m.stack = append(m.stack, vals...)
}
