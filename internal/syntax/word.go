package syntax

import "fmt"

// Word names one primitive operation. Words are opaque tags; their glyphs
// only matter to the parser and to dumps.
type Word uint8

const (
	Gt     Word = iota // >  greater than
	Eq                 // =  equals
	Lt                 // <  less than
	Plus               // +  addition
	Minus              // −  subtraction
	Prod               // ×  product
	Div                // ÷  division
	Swap               // ↔  exchange the top two values
	Dup                // ⇈  duplicate the top value
	Drop               // ↓  discard the top value
	Id                 // ·  identity
	Zilde              // ⍬  empty list
	Comma              // ,  append to list
	Behead             // ⍘  remove the front of a list
	Print              // ⎕  print a value
	Rec                // ∇  loop combinator

	wordMax
)

var wordGlyphs = [wordMax]rune{
	'>', '=', '<',
	'+', '−', '×', '÷',
	'↔', '⇈', '↓', '·',
	'⍬', ',', '⍘',
	'⎕', '∇',
}

var wordNames = [wordMax]string{
	"gt", "eq", "lt",
	"plus", "minus", "prod", "div",
	"swap", "dup", "drop", "id",
	"zilde", "comma", "behead",
	"print", "rec",
}

// glyphWords maps every accepted spelling, including ASCII aliases, back to
// its word.
var glyphWords = make(map[rune]Word, wordMax+3)

func init() {
	for w := Word(0); w < wordMax; w++ {
		glyphWords[wordGlyphs[w]] = w
	}
	glyphWords['-'] = Minus
	glyphWords['*'] = Prod
	glyphWords['/'] = Div
}

// Words returns every defined word in declaration order.
func Words() []Word {
	words := make([]Word, wordMax)
	for i := range words {
		words[i] = Word(i)
	}
	return words
}

// LookupGlyph returns the word spelled by r, if any.
func LookupGlyph(r rune) (Word, bool) {
	w, ok := glyphWords[r]
	return w, ok
}

// Glyph returns the canonical spelling of w.
func (w Word) Glyph() rune {
	if w < wordMax {
		return wordGlyphs[w]
	}
	return '?'
}

// Name returns a plain ASCII name for w, used in logs and error messages.
func (w Word) Name() string {
	if w < wordMax {
		return wordNames[w]
	}
	return fmt.Sprintf("word%d", uint8(w))
}

func (w Word) String() string { return string(w.Glyph()) }
