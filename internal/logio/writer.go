package logio

import "bytes"

// Writer adapts a formatted logging function into an io.Writer, logging each
// completed line written to it; Close logs any final partial line.
type Writer struct {
	Logf func(string, ...interface{})

	buf bytes.Buffer
}

// Write buffers p and logs every line it completes. It never fails.
func (lw *Writer) Write(p []byte) (n int, err error) {
	lw.buf.Write(p)
	lw.flushLines(false)
	return len(p), nil
}

// Close logs whatever remains buffered.
func (lw *Writer) Close() error {
	lw.flushLines(true)
	return nil
}

func (lw *Writer) flushLines(all bool) {
	for lw.buf.Len() > 0 {
		if i := bytes.IndexByte(lw.buf.Bytes(), '\n'); i >= 0 {
			lw.Logf("%s", lw.buf.Next(i))
			lw.buf.Next(1)
		} else if all {
			lw.Logf("%s", lw.buf.Next(lw.buf.Len()))
		} else {
			break
		}
	}
}
