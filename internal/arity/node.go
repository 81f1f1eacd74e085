package arity

import (
	"github.com/jcorbin/obsc/internal/syntax"
)

// Node is an annotated tree node: every node knows its net stack effect.
// Annotated trees are immutable once built, and may be executed any number
// of times.
type Node interface {
	Arity() Arity
	isNode()
}

// Composition runs its nodes in order, each feeding the next.
type Composition struct {
	Nodes []Node
	arity Arity
}

// Concatenation runs its nodes side by side, each on its own window of the
// stack; its input is the sum of its nodes' inputs.
type Concatenation struct {
	Nodes []Node
	arity Arity
}

// Branch pops a boolean, then runs Then or Else. Both arms share a single
// arity when the branch is balanced.
type Branch struct {
	Then, Else Node
	arity      Arity
	unbalanced bool
}

// WordNode invokes a primitive.
type WordNode struct {
	Word  syntax.Word
	arity Arity
}

// Integer, Float and Text push a literal.
type (
	Integer int64
	Float   float64
	Text    string
)

// Quotation pushes its Body, unexecuted, as a value.
type Quotation struct{ Body Node }

// IdN is N parallel identity slots: arity (N,N) with no runtime effect.
type IdN uint

var literalArity = Arity{0, 1}

func (n *Composition) Arity() Arity   { return n.arity }
func (n *Concatenation) Arity() Arity { return n.arity }
func (n *Branch) Arity() Arity        { return n.arity }
func (n *WordNode) Arity() Arity      { return n.arity }
func (Integer) Arity() Arity          { return literalArity }
func (Float) Arity() Arity            { return literalArity }
func (Text) Arity() Arity             { return literalArity }
func (*Quotation) Arity() Arity       { return literalArity }
func (n IdN) Arity() Arity            { return Arity{uint(n), uint(n)} }

func (*Composition) isNode()   {}
func (*Concatenation) isNode() {}
func (*Branch) isNode()        {}
func (*WordNode) isNode()      {}
func (Integer) isNode()        {}
func (Float) isNode()          {}
func (Text) isNode()           {}
func (*Quotation) isNode()     {}
func (IdN) isNode()            {}

// BodyArity is the arity of the quoted body, consulted when the quotation
// is invoked.
func (q *Quotation) BodyArity() Arity { return q.Body.Arity() }

// Balanced reports whether both arms share an arity.
func (n *Branch) Balanced() bool { return !n.unbalanced }

// NewComposition folds the arities of nodes with Compose.
func NewComposition(nodes ...Node) *Composition {
	var a Arity
	for _, node := range nodes {
		a = Compose(a, node.Arity())
	}
	return &Composition{Nodes: nodes, arity: a}
}

// NewConcatenation folds the arities of nodes with Concat.
func NewConcatenation(nodes ...Node) *Concatenation {
	var a Arity
	for _, node := range nodes {
		a = Concat(a, node.Arity())
	}
	return &Concatenation{Nodes: nodes, arity: a}
}

// NewWord annotates w with its fixed arity.
func NewWord(w syntax.Word) *WordNode {
	return &WordNode{Word: w, arity: WordArity(w)}
}

// NewBranch builds a branch over then and els. Arms that differ in arity
// but agree on net effect are balanced by juxtaposing identity slots in
// front of the narrower arm, so that ambient values stay beneath its
// outputs. Arms with differing net effects yield an unbalanced branch,
// rejected later by Check.
func NewBranch(then, els Node) *Branch {
	br := &Branch{Then: then, Else: els}
	a, b := then.Arity(), els.Arity()
	switch {
	case a == b:
	case a.Net() == b.Net():
		if a.In < b.In {
			br.Then = NewConcatenation(IdN(b.In-a.In), then)
		} else {
			br.Else = NewConcatenation(IdN(a.In-b.In), els)
		}
		a = br.Then.Arity()
	default:
		br.unbalanced = true
		if b.In > a.In {
			a.In = b.In
		}
		if b.Out > a.Out {
			a.Out = b.Out
		}
	}
	br.arity = Arity{a.In + 1, a.Out}
	return br
}
