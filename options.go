package main

import (
	"io"

	"github.com/jcorbin/obsc/internal/eval"
)

// Option configures a Run.
type Option interface{ apply(r *runner) }

type runner struct {
	mach []eval.Option
	dump io.Writer
}

func (r *runner) apply(opts ...Option) {
	for _, opt := range opts {
		if opt != nil {
			opt.apply(r)
		}
	}
}

type machOption struct{ eval.Option }
type dumpOption struct{ io.Writer }

func (o machOption) apply(r *runner) { r.mach = append(r.mach, o.Option) }
func (o dumpOption) apply(r *runner) { r.dump = o.Writer }
