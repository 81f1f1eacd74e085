// Package logio provides the leveled diagnostic logger used by the command
// line, which remembers the worst failure it reported as a process exit code.
package logio

import (
	"bytes"
	"fmt"
	"io"
	"sync"
)

// Exit codes returned by Logger.ExitCode.
const (
	ExitOK    = 0
	ExitError = 1
	ExitIO    = 2
	ExitTrap  = 3
)

// Logger implements a leveled logging facility around an output stream.
type Logger struct {
	sync.Mutex
	output   io.Writer
	buf      bytes.Buffer
	exitCode int
}

// SetOutput sets the logger's output stream.
func (log *Logger) SetOutput(out io.Writer) {
	log.Lock()
	defer log.Unlock()
	log.output = out
}

// ExitCode returns a code to pass to os.Exit, facilitating "exit non-zero if
// any error log" semantics.
func (log *Logger) ExitCode() int {
	log.Lock()
	defer log.Unlock()
	return log.exitCode
}

// Leveledf returns a typical printf-style formatting function that logs
// messages with the given level.
func (log *Logger) Leveledf(level string) func(mess string, args ...interface{}) {
	return func(mess string, args ...interface{}) { log.Printf(level, mess, args...) }
}

// ErrorIf logs any non-nil error through Errorf.
func (log *Logger) ErrorIf(err error) {
	if err != nil {
		log.Errorf("%v", err)
	}
}

// Errorf is like `Printf("ERROR", ...)` but additionally retains state so that
// ExitCode() will return non-zero.
func (log *Logger) Errorf(mess string, args ...interface{}) {
	log.fail(ExitError, "ERROR", mess, args...)
}

// Trapf logs an internal failure, such as a recovered invariant violation;
// ExitCode() will return ExitTrap thereafter.
func (log *Logger) Trapf(mess string, args ...interface{}) {
	log.fail(ExitTrap, "TRAP", mess, args...)
}

// Printf prints a line to the output stream like "level: message...\n".
// Reports any io error as an "ERROR" level log, and retains similar state for ExitCode().
func (log *Logger) Printf(level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.reportError(err)
	}
}

func (log *Logger) fail(code int, level, mess string, args ...interface{}) {
	log.Lock()
	defer log.Unlock()
	if err := log.printf(level, mess, args...); err != nil {
		log.reportError(err)
	}
	if code > log.exitCode {
		log.exitCode = code
	}
}

func (log *Logger) printf(level, mess string, args ...interface{}) error {
	if log.output == nil {
		return nil
	}
	if level != "" {
		log.buf.WriteString(level)
		log.buf.WriteString(": ")
	}
	if len(args) > 0 {
		fmt.Fprintf(&log.buf, mess, args...)
	} else {
		log.buf.WriteString(mess)
	}
	if b := log.buf.Bytes(); len(b) > 0 && b[len(b)-1] != '\n' {
		log.buf.WriteByte('\n')
	}
	_, err := log.buf.WriteTo(log.output)
	return err
}

// reportError makes a best effort to describe a failed log write on the
// same stream; the write failure itself is what ExitCode reflects.
func (log *Logger) reportError(err error) {
	log.buf.Reset()
	log.printf("ERROR", "%+v", err)
	if log.exitCode < ExitIO {
		log.exitCode = ExitIO
	}
}
