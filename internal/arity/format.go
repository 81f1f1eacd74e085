package arity

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jcorbin/obsc/internal/syntax"
)

// Format renders n back into source form. Identity padding is rendered as
// juxtaposed identity words, which have the same arity.
func Format(n Node) string {
	var sb strings.Builder
	format(&sb, n, false)
	return sb.String()
}

func format(sb *strings.Builder, n Node, nested bool) {
	switch n := n.(type) {
	case *Composition:
		formatJoined(sb, n.Nodes, " ", nested)
	case *Concatenation:
		formatJoined(sb, n.Nodes, ";", nested)
	case *Branch:
		sb.WriteByte('{')
		format(sb, n.Then, false)
		sb.WriteString(" | ")
		format(sb, n.Else, false)
		sb.WriteByte('}')
	case *WordNode:
		sb.WriteRune(n.Word.Glyph())
	case Integer:
		sb.WriteString(strconv.FormatInt(int64(n), 10))
	case Float:
		s := strconv.FormatFloat(float64(n), 'f', -1, 64)
		sb.WriteString(s)
		if !strings.ContainsRune(s, '.') {
			sb.WriteString(".0")
		}
	case Text:
		sb.WriteByte('\'')
		for _, r := range string(n) {
			if r == '\'' || r == '\\' {
				sb.WriteByte('\\')
			}
			sb.WriteRune(r)
		}
		sb.WriteByte('\'')
	case *Quotation:
		sb.WriteByte('[')
		format(sb, n.Body, false)
		sb.WriteByte(']')
	case IdN:
		if n == 0 {
			sb.WriteString("()")
			return
		}
		if nested && n > 1 {
			sb.WriteByte('(')
		}
		for i := IdN(0); i < n; i++ {
			if i > 0 {
				sb.WriteByte(';')
			}
			sb.WriteRune(syntax.Id.Glyph())
		}
		if nested && n > 1 {
			sb.WriteByte(')')
		}
	}
}

func formatJoined(sb *strings.Builder, nodes []Node, sep string, nested bool) {
	if len(nodes) == 0 {
		sb.WriteString("()")
		return
	}
	paren := nested && len(nodes) > 1
	if paren {
		sb.WriteByte('(')
	}
	for i, node := range nodes {
		if i > 0 {
			sb.WriteString(sep)
		}
		format(sb, node, true)
	}
	if paren {
		sb.WriteByte(')')
	}
}

// Dump writes an indented listing of n, one node per line, each headed by
// its arity.
func Dump(w io.Writer, n Node) error {
	dump := treeDumper{out: w}
	dump.line(0, n.Arity(), "# Tree Dump")
	dump.dump(1, n)
	return dump.err
}

type treeDumper struct {
	out io.Writer
	buf bytes.Buffer
	err error
}

func (dump *treeDumper) line(depth int, a Arity, mess string, args ...interface{}) {
	if dump.err != nil {
		return
	}
	for i := 0; i < depth; i++ {
		dump.buf.WriteString("  ")
	}
	if depth > 0 {
		fmt.Fprintf(&dump.buf, "%-7v ", a)
	}
	if len(args) > 0 {
		fmt.Fprintf(&dump.buf, mess, args...)
	} else {
		dump.buf.WriteString(mess)
	}
	dump.buf.WriteByte('\n')
	_, dump.err = dump.buf.WriteTo(dump.out)
}

func (dump *treeDumper) dump(depth int, n Node) {
	a := n.Arity()
	switch n := n.(type) {
	case *Composition:
		dump.line(depth, a, "compose")
		for _, node := range n.Nodes {
			dump.dump(depth+1, node)
		}
	case *Concatenation:
		dump.line(depth, a, "juxtapose")
		for _, node := range n.Nodes {
			dump.dump(depth+1, node)
		}
	case *Branch:
		if n.Balanced() {
			dump.line(depth, a, "branch")
		} else {
			dump.line(depth, a, "branch unbalanced")
		}
		dump.dump(depth+1, n.Then)
		dump.dump(depth+1, n.Else)
	case *WordNode:
		dump.line(depth, a, "%v %v", n.Word, n.Word.Name())
	case *Quotation:
		dump.line(depth, a, "quote")
		dump.dump(depth+1, n.Body)
	case IdN:
		dump.line(depth, a, "id×%d", uint(n))
	default:
		dump.line(depth, a, "%v", Format(n))
	}
}
