package syntax

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"

	"github.com/jcorbin/obsc/internal/fileinput"
	"github.com/jcorbin/obsc/internal/trap"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokInteger
	tokFloat
	tokText
	tokWord
	tokLParen   // (
	tokRParen   // )
	tokLBracket // [
	tokRBracket // ]
	tokLBrace   // {
	tokRBrace   // }
	tokBar      // |
	tokSemi     // ;
	tokGrave    // `
)

var punctKinds = map[rune]tokenKind{
	'(': tokLParen,
	')': tokRParen,
	'[': tokLBracket,
	']': tokRBracket,
	'{': tokLBrace,
	'}': tokRBrace,
	'|': tokBar,
	';': tokSemi,
	'`': tokGrave,
}

// commentRune starts a comment running to the end of its line.
const commentRune = '⍝'

type token struct {
	kind tokenKind
	text string
	word Word
	at   fileinput.Location
}

func (tok token) String() string {
	switch tok.kind {
	case tokEOF:
		return "end of input"
	case tokText:
		return strconv.Quote(tok.text)
	default:
		return fmt.Sprintf("%q", tok.text)
	}
}

type lexer struct {
	in *fileinput.Input
}

func (lex *lexer) errorf(at fileinput.Location, mess string, args ...interface{}) *Error {
	return &Error{Location: at, Message: fmt.Sprintf(mess, args...)}
}

func (lex *lexer) read() (rune, error) {
	r, _, err := lex.in.ReadRune()
	return r, err
}

// unread pushes back the rune just read; it must follow a successful read.
func (lex *lexer) unread() {
	if err := lex.in.UnreadRune(); err != nil {
		trap.Invariant("lexer unread at %v: %v", lex.in.At(), err)
	}
}

// skipSpace consumes whitespace and comments, returning the first other rune.
func (lex *lexer) skipSpace() (rune, error) {
	for {
		r, err := lex.read()
		if err != nil {
			return 0, err
		}
		if r == commentRune {
			for r != '\n' {
				if r, err = lex.read(); err != nil {
					return 0, err
				}
			}
			continue
		}
		if !unicode.IsSpace(r) {
			return r, nil
		}
	}
}

func (lex *lexer) next() (token, error) {
	r, err := lex.skipSpace()
	if err == io.EOF {
		return token{kind: tokEOF, at: lex.in.At()}, nil
	} else if err != nil {
		return token{}, err
	}
	at := lex.in.At()

	if kind, ok := punctKinds[r]; ok {
		return token{kind: kind, text: string(r), at: at}, nil
	}
	if w, ok := LookupGlyph(r); ok {
		return token{kind: tokWord, text: string(r), word: w, at: at}, nil
	}
	switch {
	case r == '\'':
		return lex.text(at)
	case '0' <= r && r <= '9':
		lex.unread()
		return lex.number(at)
	}
	return token{}, lex.errorf(at, "unexpected character %q", r)
}

func (lex *lexer) digits(sb *strings.Builder) error {
	for {
		r, err := lex.read()
		if err == io.EOF {
			return nil
		} else if err != nil {
			return err
		}
		if r < '0' || r > '9' {
			lex.unread()
			return nil
		}
		sb.WriteRune(r)
	}
}

func (lex *lexer) number(at fileinput.Location) (token, error) {
	var sb strings.Builder
	if err := lex.digits(&sb); err != nil {
		return token{}, err
	}

	r, err := lex.read()
	if err == io.EOF {
		return token{kind: tokInteger, text: sb.String(), at: at}, nil
	} else if err != nil {
		return token{}, err
	}
	if r != '.' {
		lex.unread()
		return token{kind: tokInteger, text: sb.String(), at: at}, nil
	}

	sb.WriteRune(r)
	n := sb.Len()
	if err := lex.digits(&sb); err != nil {
		return token{}, err
	}
	if sb.Len() == n {
		return token{}, lex.errorf(at, "malformed float %q", sb.String())
	}
	return token{kind: tokFloat, text: sb.String(), at: at}, nil
}

func (lex *lexer) text(at fileinput.Location) (token, error) {
	var sb strings.Builder
	for {
		r, err := lex.read()
		if err == io.EOF {
			return token{}, lex.errorf(at, "unterminated text literal")
		} else if err != nil {
			return token{}, err
		}
		switch r {
		case '\'':
			return token{kind: tokText, text: sb.String(), at: at}, nil
		case '\\':
			esc, err := lex.read()
			if err == io.EOF {
				return token{}, lex.errorf(at, "unterminated text literal")
			} else if err != nil {
				return token{}, err
			}
			if esc != '\'' && esc != '\\' {
				sb.WriteRune(r)
			}
			sb.WriteRune(esc)
		default:
			sb.WriteRune(r)
		}
	}
}
