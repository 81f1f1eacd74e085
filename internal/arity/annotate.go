package arity

import (
	"github.com/jcorbin/obsc/internal/syntax"
	"github.com/jcorbin/obsc/internal/trap"
)

var wordArities = [...]Arity{
	syntax.Gt: {2, 1},
	syntax.Eq: {2, 1},
	syntax.Lt: {2, 1},

	syntax.Plus:  {2, 1},
	syntax.Minus: {2, 1},
	syntax.Prod:  {2, 1},
	syntax.Div:   {2, 1},

	syntax.Swap: {2, 2},
	syntax.Dup:  {1, 2},
	syntax.Drop: {1, 0},
	syntax.Id:   {1, 1},

	syntax.Zilde:  {0, 1},
	syntax.Comma:  {2, 1},
	syntax.Behead: {1, 2},

	syntax.Print: {1, 0},
	syntax.Rec:   {2, 1},
}

// LoopArity is the arity a quotation must have to be driven by the loop
// combinator: it takes the current value, and leaves the next value under a
// continue flag.
var LoopArity = Arity{1, 2}

// WordArity returns the fixed arity of w.
func WordArity(w syntax.Word) Arity {
	if int(w) >= len(wordArities) {
		trap.Invariant("no arity for word %v", w.Name())
	}
	return wordArities[w]
}

// Annotate infers the arity of every node in expr, desugaring infix
// notation and no-ops into identity padding. It never fails.
func Annotate(expr syntax.Expr) Node {
	switch e := expr.(type) {
	case nil, syntax.Nop:
		return IdN(0)

	case syntax.Composition:
		return NewComposition(annotateAll(e.Exprs)...)

	case syntax.Concatenation:
		return NewConcatenation(annotateAll(e.Exprs)...)

	case syntax.WordExpr:
		return NewWord(e.Word)

	case syntax.Integer:
		return Integer(e)
	case syntax.Float:
		return Float(e)
	case syntax.Text:
		return Text(e)

	case syntax.Quotation:
		return &Quotation{Body: Annotate(e.Body)}

	case syntax.InfixLeft:
		operand, op := Annotate(e.Expr), NewWord(e.Op)
		return NewComposition(NewConcatenation(operand, infixPadding(operand, op)), op)

	case syntax.InfixRight:
		operand, op := Annotate(e.Expr), NewWord(e.Op)
		return NewComposition(NewConcatenation(infixPadding(operand, op), operand), op)

	case syntax.Branch:
		return NewBranch(Annotate(e.Then), Annotate(e.Else))
	}
	trap.Invariant("unknown syntax node %T", expr)
	return nil
}

func annotateAll(exprs []syntax.Expr) []Node {
	nodes := make([]Node, len(exprs))
	for i, expr := range exprs {
		nodes[i] = Annotate(expr)
	}
	return nodes
}

// infixPadding reserves slots for whatever inputs op still needs beyond
// what operand supplies.
func infixPadding(operand, op Node) IdN {
	if need, have := op.Arity().In, operand.Arity().Out; need > have {
		return IdN(need - have)
	}
	return 0
}
