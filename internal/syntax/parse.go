package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/obsc/internal/fileinput"
)

// Error is a parse failure at a source location.
type Error struct {
	Location fileinput.Location
	Message  string
}

func (err *Error) Error() string { return fmt.Sprintf("%v: %v", err.Location, err.Message) }

// Parse reads a whole program from r. Juxtaposition (;) binds tighter than
// composition (plain sequencing), and infix (`op`) binds tighter than both.
func Parse(name string, r io.Reader) (Expr, error) {
	p := parser{lex: lexer{in: fileinput.New(name, r)}}
	if err := p.advance(); err != nil {
		return nil, err
	}
	expr, err := p.sequence()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokEOF {
		return nil, p.unexpected()
	}
	return expr, nil
}

// ParseString is Parse over an in-memory source.
func ParseString(name, src string) (Expr, error) {
	return Parse(name, strings.NewReader(src))
}

type parser struct {
	lex lexer
	tok token
}

func (p *parser) advance() (err error) {
	p.tok, err = p.lex.next()
	return err
}

func (p *parser) unexpected() error {
	return p.lex.errorf(p.tok.at, "unexpected %v", p.tok)
}

func (p *parser) expect(kind tokenKind, what string) error {
	if p.tok.kind != kind {
		return p.lex.errorf(p.tok.at, "expected %v, got %v", what, p.tok)
	}
	return p.advance()
}

func (p *parser) startsSimple() bool {
	switch p.tok.kind {
	case tokLParen, tokLBracket, tokLBrace,
		tokInteger, tokFloat, tokText, tokWord:
		return true
	}
	return false
}

func (p *parser) sequence() (Expr, error) {
	var exprs []Expr
	for p.startsSimple() || p.tok.kind == tokGrave {
		expr, err := p.juxt()
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	switch len(exprs) {
	case 0:
		return Nop{}, nil
	case 1:
		return exprs[0], nil
	default:
		return Composition{exprs}, nil
	}
}

func (p *parser) juxt() (Expr, error) {
	expr, err := p.infix()
	if err != nil {
		return nil, err
	}
	if p.tok.kind != tokSemi {
		return expr, nil
	}
	exprs := []Expr{expr}
	for p.tok.kind == tokSemi {
		if err := p.advance(); err != nil {
			return nil, err
		}
		if expr, err = p.infix(); err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return Concatenation{exprs}, nil
}

func (p *parser) infixOp() (Word, error) {
	if err := p.expect(tokGrave, "`"); err != nil {
		return 0, err
	}
	if p.tok.kind != tokWord {
		return 0, p.lex.errorf(p.tok.at, "expected infix word, got %v", p.tok)
	}
	w := p.tok.word
	if err := p.advance(); err != nil {
		return 0, err
	}
	return w, p.expect(tokGrave, "closing `")
}

// infix parses a simple expression with any infix sugar around it.
// A chained "a `w` b" becomes (a;b) w, while a dangling operator on either
// side becomes an InfixLeft or InfixRight for arity inference to pad.
func (p *parser) infix() (acc Expr, err error) {
	if p.tok.kind == tokGrave {
		op, err := p.infixOp()
		if err != nil {
			return nil, err
		}
		expr, err := p.simple()
		if err != nil {
			return nil, err
		}
		acc = InfixRight{Op: op, Expr: expr}
	} else if acc, err = p.simple(); err != nil {
		return nil, err
	}

	for p.tok.kind == tokGrave {
		op, err := p.infixOp()
		if err != nil {
			return nil, err
		}
		if !p.startsSimple() {
			return InfixLeft{Expr: acc, Op: op}, nil
		}
		expr, err := p.simple()
		if err != nil {
			return nil, err
		}
		acc = Composition{[]Expr{
			Concatenation{[]Expr{acc, expr}},
			WordExpr{op},
		}}
	}
	return acc, nil
}

func (p *parser) simple() (Expr, error) {
	tok := p.tok
	switch tok.kind {
	case tokLParen:
		if err := p.advance(); err != nil {
			return nil, err
		}
		expr, err := p.sequence()
		if err != nil {
			return nil, err
		}
		return expr, p.expect(tokRParen, ")")

	case tokLBracket:
		if err := p.advance(); err != nil {
			return nil, err
		}
		body, err := p.sequence()
		if err != nil {
			return nil, err
		}
		return Quotation{body}, p.expect(tokRBracket, "]")

	case tokLBrace:
		if err := p.advance(); err != nil {
			return nil, err
		}
		then, err := p.sequence()
		if err != nil {
			return nil, err
		}
		if err := p.expect(tokBar, "|"); err != nil {
			return nil, err
		}
		els, err := p.sequence()
		if err != nil {
			return nil, err
		}
		return Branch{Then: then, Else: els}, p.expect(tokRBrace, "}")

	case tokInteger:
		n, err := strconv.ParseInt(tok.text, 10, 64)
		if err != nil {
			return nil, p.lex.errorf(tok.at, "invalid integer %q: %v", tok.text, unwrapNumError(err))
		}
		return Integer(n), p.advance()

	case tokFloat:
		f, err := strconv.ParseFloat(tok.text, 64)
		if err != nil {
			return nil, p.lex.errorf(tok.at, "invalid float %q: %v", tok.text, unwrapNumError(err))
		}
		return Float(f), p.advance()

	case tokText:
		return Text(tok.text), p.advance()

	case tokWord:
		return WordExpr{tok.word}, p.advance()
	}
	return nil, p.unexpected()
}

func unwrapNumError(err error) error {
	if ne, ok := err.(*strconv.NumError); ok {
		return ne.Err
	}
	return err
}
