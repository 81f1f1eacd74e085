package arity

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcorbin/obsc/internal/syntax"
)

func annotateSource(t *testing.T, src string) Node {
	expr, err := syntax.ParseString(t.Name(), src)
	require.NoError(t, err, "must parse %q", src)
	return Annotate(expr)
}

func Test_Annotate(t *testing.T) {
	for _, tc := range []struct {
		name   string
		src    string
		arity  Arity
		expect Node
	}{
		{"empty", "", Arity{}, IdN(0)},
		{"postfix add", "2 2 +", Arity{0, 1}, NewComposition(Integer(2), Integer(2), NewWord(syntax.Plus))},
		{"needs input", "1 +", Arity{1, 1}, nil},
		{"juxtaposed products", "2 2 3 3 ×;× +", Arity{0, 1}, nil},
		{"juxtaposition sums inputs", "×;×", Arity{4, 2}, nil},
		{"list building", "⍬ 1 , 2 , ⍘", Arity{0, 2}, nil},

		{"infix left", "2`×`", Arity{1, 1}, NewComposition(
			NewConcatenation(Integer(2), IdN(1)),
			NewWord(syntax.Prod),
		)},
		{"infix right", "`−`1", Arity{1, 1}, NewComposition(
			NewConcatenation(IdN(1), Integer(1)),
			NewWord(syntax.Minus),
		)},
		{"infix without padding", "(1 2)`+`", Arity{0, 1}, NewComposition(
			NewConcatenation(NewComposition(Integer(1), Integer(2)), IdN(0)),
			NewWord(syntax.Plus),
		)},
		{"infix chain", "⍬`,`1`,`2", Arity{0, 1}, nil},

		{"quotation pushes one", "[⇈ ⍘]", Arity{0, 1}, nil},
		{"loop", "0 [`+`1 ⇈ `<`10] ∇", Arity{0, 1}, nil},

		{"balanced branch", "{1 | 2}", Arity{1, 1}, NewBranch(Integer(1), Integer(2))},
		{"padded branch", "{+ | ↓}", Arity{3, 1}, nil},
		{"unbalanced branch", "{1 | ↓}", Arity{2, 1}, nil},
	} {
		t.Run(tc.name, func(t *testing.T) {
			n := annotateSource(t, tc.src)
			assert.Equal(t, tc.arity, n.Arity(), "expected %q arity", tc.src)
			if tc.expect != nil {
				assert.Equal(t, tc.expect, n, "expected %q tree", tc.src)
			}
		})
	}
}

func Test_WordArity(t *testing.T) {
	expect := map[syntax.Word]Arity{
		syntax.Gt: {2, 1}, syntax.Eq: {2, 1}, syntax.Lt: {2, 1},
		syntax.Plus: {2, 1}, syntax.Minus: {2, 1}, syntax.Prod: {2, 1}, syntax.Div: {2, 1},
		syntax.Swap: {2, 2}, syntax.Dup: {1, 2}, syntax.Drop: {1, 0}, syntax.Id: {1, 1},
		syntax.Zilde: {0, 1}, syntax.Comma: {2, 1}, syntax.Behead: {1, 2},
		syntax.Print: {1, 0}, syntax.Rec: {2, 1},
	}
	for _, w := range syntax.Words() {
		assert.Equal(t, expect[w], WordArity(w), "expected %v arity", w.Name())
	}
}

func Test_Annotate_quotation(t *testing.T) {
	n := annotateSource(t, "[⇈ ⍘]")
	q, ok := n.(*Quotation)
	require.True(t, ok, "expected a quotation, got %T", n)
	assert.Equal(t, Arity{1, 3}, q.BodyArity())
}

func Test_Annotate_padsNarrowArm(t *testing.T) {
	br, ok := annotateSource(t, "{+ | ↓}").(*Branch)
	require.True(t, ok, "expected a branch")
	assert.True(t, br.Balanced())
	assert.Equal(t, NewWord(syntax.Plus), br.Then)
	assert.Equal(t, NewConcatenation(IdN(1), NewWord(syntax.Drop)), br.Else)
	assert.Equal(t, br.Then.Arity(), br.Else.Arity())
}

// randLiteralExpr builds a word free tree, returning it along with its
// count of value producing leaves.
func randLiteralExpr(rng *rand.Rand, depth int) (syntax.Expr, uint) {
	if depth <= 0 {
		switch rng.Intn(4) {
		case 0:
			return syntax.Integer(rng.Int63()), 1
		case 1:
			return syntax.Float(rng.Float64()), 1
		case 2:
			return syntax.Text("x"), 1
		default:
			return syntax.Nop{}, 0
		}
	}
	switch rng.Intn(3) {
	case 0:
		body, _ := randLiteralExpr(rng, depth-1)
		return syntax.Quotation{Body: body}, 1
	case 1:
		exprs, n := randLiteralExprs(rng, depth-1)
		return syntax.Composition{Exprs: exprs}, n
	default:
		exprs, n := randLiteralExprs(rng, depth-1)
		return syntax.Concatenation{Exprs: exprs}, n
	}
}

func randLiteralExprs(rng *rand.Rand, depth int) (exprs []syntax.Expr, total uint) {
	for i := rng.Intn(4); i >= 0; i-- {
		expr, n := randLiteralExpr(rng, rng.Intn(depth+1))
		exprs = append(exprs, expr)
		total += n
	}
	return exprs, total
}

func Test_Annotate_literalsOnly(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 200; i++ {
		expr, leaves := randLiteralExpr(rng, 4)
		assert.Equal(t, Arity{0, leaves}, Annotate(expr).Arity(), "expected leaf count arity for %#v", expr)
	}
}

func Test_Check(t *testing.T) {
	assert.NoError(t, Check(annotateSource(t, "1 {2 | 3} ⎕")))
	assert.NoError(t, Check(annotateSource(t, "{+ | ↓}")))
	assert.EqualError(t, Check(annotateSource(t, "{1 | ↓}")), "unbalanced branch: (0→1) vs (1→0)")
	assert.Equal(t,
		UnbalancedError{Arity{0, 2}, Arity{0, 0}},
		Check(annotateSource(t, "[{1 2 | ()}] ↓")),
		"expected quoted branches to be checked")
}

func Test_Clone(t *testing.T) {
	n := annotateSource(t, "[1 {2 | 3} ⍬`,`'a'] ⇈")
	dup := Clone(n)
	assert.Equal(t, n, dup)

	orig := n.(*Composition).Nodes[0].(*Quotation)
	copied := dup.(*Composition).Nodes[0].(*Quotation)
	assert.NotSame(t, orig, copied, "expected a new quotation")
	assert.NotSame(t, orig.Body, copied.Body, "expected a new body")
}

func Test_Format(t *testing.T) {
	for _, tc := range []struct{ src, expect string }{
		{"2 2 +", "2 2 +"},
		{"2 2 3 3 ×;× +", "2 2 3 3 (×;×) +"},
		{"'it\\'s' 2.0 ⎕", "'it\\'s' 2.0 ⎕"},
		{"[⇈ ⍘]", "[⇈ ⍘]"},
		{"{1 | 2}", "{1 | 2}"},
		{"2`×`", "(2;·) ×"},
		{"", "()"},
	} {
		assert.Equal(t, tc.expect, Format(annotateSource(t, tc.src)), "expected %q format", tc.src)
	}
}

func Test_Dump(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Dump(&sb, annotateSource(t, "2 [`+`1] {⇈ | 0}")))
	assert.Equal(t, strings.Join([]string{
		`# Tree Dump`,
		`  (0→2)   compose`,
		`    (0→1)   2`,
		`    (0→1)   quote`,
		`      (1→1)   compose`,
		`        (1→2)   juxtapose`,
		`          (1→1)   id×1`,
		`          (0→1)   1`,
		`        (2→1)   + plus`,
		`    (2→2)   branch`,
		`      (1→2)   ⇈ dup`,
		`      (1→2)   juxtapose`,
		`        (1→1)   id×1`,
		`        (0→1)   0`,
		``,
	}, "\n"), sb.String())
}
