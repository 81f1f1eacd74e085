package arity

import "fmt"

// Arity is the net stack effect of a program fragment: how many values it
// consumes, and how many it produces.
type Arity struct {
	In, Out uint
}

func (a Arity) String() string { return fmt.Sprintf("(%v→%v)", a.In, a.Out) }

// Concat is the arity of a and b run side by side, each on its own operands.
func Concat(a, b Arity) Arity {
	return Arity{a.In + b.In, a.Out + b.Out}
}

// Compose is the arity of a followed by b, with a's outputs feeding b's
// inputs. A shortfall of b's inputs is taken from beneath a, while a surplus
// of a's outputs passes through underneath b.
func Compose(a, b Arity) Arity {
	c := Arity{a.In, b.Out}
	if b.In > a.Out {
		c.In += b.In - a.Out
	} else {
		c.Out += a.Out - b.In
	}
	return c
}

// Net returns Out-In as a signed value.
func (a Arity) Net() int { return int(a.Out) - int(a.In) }
