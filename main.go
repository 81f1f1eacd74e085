package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/mattn/go-isatty"

	"github.com/jcorbin/obsc/internal/logio"
	"github.com/jcorbin/obsc/internal/trap"
)

func main() {
	var log logio.Logger
	log.SetOutput(os.Stderr)
	run(&log)
	os.Exit(log.ExitCode())
}

func run(log *logio.Logger) {
	var trace, dump, interactive bool
	var teePath string
	flag.BoolVar(&trace, "trace", false, "enable trace logging")
	flag.BoolVar(&dump, "dump", false, "dump the annotated tree before running")
	flag.BoolVar(&interactive, "i", false, "run an interactive session")
	flag.StringVar(&teePath, "tee", "", "also write printed output to this file")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [file]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	var opts []Option
	if trace {
		opts = append(opts, WithLogf(log.Leveledf("TRACE")))
	}
	if dump {
		dw := &logio.Writer{Logf: log.Leveledf("DUMP")}
		defer dw.Close()
		opts = append(opts, WithDump(dw))
	}

	if teePath != "" {
		f, err := os.Create(teePath)
		if err != nil {
			log.ErrorIf(err)
			return
		}
		defer func() { log.ErrorIf(f.Close()) }()
		opts = append(opts, WithTee(f))
	}

	name, in := "<stdin>", io.Reader(os.Stdin)
	switch flag.NArg() {
	case 0:
	case 1:
		f, err := os.Open(flag.Arg(0))
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		defer f.Close()
		name, in = f.Name(), f
	default:
		flag.Usage()
		log.Errorf("expected at most one file argument, got %v", flag.NArg())
		return
	}

	if interactive || (flag.NArg() == 0 && isTerminal(os.Stdin)) {
		rl, err := readline.New("obsc> ")
		if err != nil {
			log.Errorf("%v", err)
			return
		}
		defer rl.Close()
		repl(log, rl, rl.Stdout(), opts...)
		return
	}

	out := countingWriter{Writer: os.Stdout}
	_, err := Run(name, in, append([]Option{WithOutput(&out)}, opts...)...)
	report(log, err)
	if out.n > 0 && isTerminal(os.Stdout) {
		fmt.Fprintln(os.Stdout)
	}
}

// report logs a Run failure, telling invariant traps apart from program
// errors for the sake of the exit code.
func report(log *logio.Logger, err error) {
	if err == nil {
		return
	}
	if trap.IsPanic(err) {
		log.Trapf("%+v", err)
	} else {
		log.ErrorIf(err)
	}
}

func isTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type countingWriter struct {
	io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (n int, err error) {
	n, err = cw.Writer.Write(p)
	cw.n += int64(n)
	return n, err
}
