package main

import (
	"io"

	"github.com/jcorbin/obsc/internal/arity"
	"github.com/jcorbin/obsc/internal/eval"
	"github.com/jcorbin/obsc/internal/syntax"
	"github.com/jcorbin/obsc/internal/trap"
)

// Run parses the program read from r, infers its arity, and executes it on a
// fresh machine. The machine is returned even on failure, so that callers may
// inspect whatever stack remains. Invariant violations come back as errors
// for which trap.IsPanic holds.
func Run(name string, r io.Reader, opts ...Option) (*eval.Machine, error) {
	var rn runner
	rn.apply(opts...)
	m := eval.New(rn.mach...)
	err := trap.Recover(name, func() error {
		expr, err := syntax.Parse(name, r)
		if err != nil {
			return err
		}
		node := arity.Annotate(expr)
		if rn.dump != nil {
			if err := arity.Dump(rn.dump, node); err != nil {
				return err
			}
		}
		return m.ExecuteProgram(node)
	})
	return m, err
}

// WithOutput sets where printed output goes; it is discarded by default.
func WithOutput(w io.Writer) Option { return machOption{eval.WithOutput(w)} }

// WithTee copies printed output to w as well.
func WithTee(w io.Writer) Option { return machOption{eval.WithTee(w)} }

// WithDump writes the annotated tree to w before the program runs.
func WithDump(w io.Writer) Option { return dumpOption{w} }

// WithLogf traces every executed node through logfn.
func WithLogf(logfn func(mess string, args ...interface{})) Option {
	return machOption{eval.WithLogf(logfn)}
}
