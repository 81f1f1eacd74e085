package fileinput

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
)

// Location names a line in an Input file.
type Location struct {
	Name string
	Line int
}

// Line combines a Location along with a bytes.Buffer for handling it.
type Line struct {
	Location
	bytes.Buffer
}

func (loc Location) String() string { return fmt.Sprintf("%v:%v", loc.Name, loc.Line) }
func (il Line) String() string      { return fmt.Sprintf("%v %q", il.Location, il.Buffer.String()) }

// Input implements sequential rune reading through a Queue of one or more
// input streams. Both the current and last scanned lines are tracked to
// facilitate user feedback. A single rune may be pushed back with UnreadRune.
type Input struct {
	rr    io.RuneReader
	Queue []io.Reader
	Last  Line
	Scan  Line

	at        Location
	pending   rune
	pendingAt Location
	hasUnread bool
	lastRune  rune
	hasLast   bool
	lastAt    Location
}

// New returns an Input reading from r, reporting locations under name.
func New(name string, r io.Reader) *Input {
	return &Input{Queue: []io.Reader{Named(name, r)}}
}

// Named attaches a Name() to r unless it already has one.
func Named(name string, r io.Reader) io.Reader {
	if _, ok := r.(interface{ Name() string }); ok {
		return r
	}
	return namedReader{r, name}
}

type namedReader struct {
	io.Reader
	name string
}

func (nr namedReader) Name() string { return nr.name }

// At returns the location of the most recently read rune.
func (in *Input) At() Location { return in.at }

// ReadRune reads one rune from the current input stream, appending it into the
// current Scan line, and rolling Scan over to Last after line feed.
func (in *Input) ReadRune() (rune, int, error) {
	if in.hasUnread {
		in.hasUnread = false
		in.at = in.pendingAt
		in.lastRune, in.lastAt, in.hasLast = in.pending, in.pendingAt, true
		return in.pending, len(string(in.pending)), nil
	}

	for {
		if in.rr == nil && !in.nextIn() {
			return 0, 0, io.EOF
		}
		r, n, err := in.rr.ReadRune()
		if n > 0 {
			in.at = in.Scan.Location
			in.lastRune, in.lastAt, in.hasLast = r, in.at, true
			if r == '\n' {
				in.nextLine()
			} else {
				in.Scan.WriteRune(r)
			}
			return r, n, nil
		}
		if err == io.EOF {
			in.closeIn()
			continue
		}
		return 0, 0, err
	}
}

// UnreadRune pushes back the last rune returned by ReadRune; only one rune
// of push back is supported.
func (in *Input) UnreadRune() error {
	if in.hasUnread || !in.hasLast {
		return bufio.ErrInvalidUnreadRune
	}
	in.pending, in.pendingAt = in.lastRune, in.lastAt
	in.hasUnread = true
	in.hasLast = false
	return nil
}

func (in *Input) nextLine() {
	in.Last.Reset()
	in.Last.Name = in.Scan.Name
	in.Last.Line = in.Scan.Line
	in.Last.Write(in.Scan.Bytes())
	in.Scan.Reset()
	in.Scan.Line++
}

func (in *Input) closeIn() {
	if in.Scan.Len() > 0 {
		in.nextLine()
	}
	if cl, ok := in.rr.(io.Closer); ok {
		cl.Close()
	}
	in.rr = nil
}

func (in *Input) nextIn() bool {
	if len(in.Queue) == 0 {
		return false
	}
	r := in.Queue[0]
	in.Queue = in.Queue[1:]
	in.rr = newRuneReader(r)
	in.Scan.Reset()
	in.Scan.Name = nameOf(r)
	in.Scan.Line = 1
	in.at = in.Scan.Location
	return true
}

type runeReader struct {
	io.Reader
	io.RuneReader
}

// newRuneReader returns r if it already reads runes; otherwise it wraps r in
// a bufio.Reader, keeping any Close method reachable.
func newRuneReader(r io.Reader) io.RuneReader {
	if rr, ok := r.(io.RuneReader); ok {
		return rr
	}
	rr := runeReader{r, bufio.NewReader(r)}
	if cl, ok := r.(io.Closer); ok {
		return struct {
			runeReader
			io.Closer
		}{rr, cl}
	}
	return rr
}

func nameOf(obj interface{}) string {
	if nom, ok := obj.(interface{ Name() string }); ok {
		return nom.Name()
	}
	return fmt.Sprintf("<unnamed %T>", obj)
}
