package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"

	"github.com/jcorbin/obsc/internal/logio"
	"github.com/jcorbin/obsc/internal/trap"
)

// lineReader is the part of *readline.Instance used by repl.
type lineReader interface {
	Readline() (string, error)
}

// repl runs each line read from lines as its own program on a fresh machine,
// writing printed output and then any remaining stack to out. Program errors
// are logged without ending the session or failing the exit code; traps
// still do fail it.
func repl(log *logio.Logger, lines lineReader, out io.Writer, opts ...Option) {
	for n := 1; ; n++ {
		line, err := lines.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		} else if err != nil {
			if !errors.Is(err, io.EOF) {
				log.Errorf("%v", err)
			}
			return
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		cw := countingWriter{Writer: out}
		m, err := Run(fmt.Sprintf("<repl %d>", n), strings.NewReader(line), append([]Option{WithOutput(&cw)}, opts...)...)
		if cw.n > 0 {
			fmt.Fprintln(out)
		}
		if err != nil {
			if trap.IsPanic(err) {
				log.Trapf("%+v", err)
			} else {
				log.Printf("ERROR", "%v", err)
			}
		}
		if stack := m.Stack(); len(stack) > 0 {
			fmt.Fprintf(out, "%v\n", stack)
		}
	}
}
