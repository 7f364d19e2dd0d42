package sample

import (
	"bufio"
	"fmt"
	"io"
	"syscall"

	"github.com/cockroachdb/errors"
)

// Input lines longer than maxLineSize abort the run instead of
// exhausting memory.
const (
	scanBufferSize = 64 * 1024
	maxLineSize    = 50 * 1024 * 1024
)

func newScanner(r io.Reader) *bufio.Scanner {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, scanBufferSize), maxLineSize)
	return sc
}

// ErrOutputClosed marks a write failure caused by the consumer of the
// output closing its end of the pipe. A run stopped by it has produced
// everything the consumer wanted; callers should treat it as success,
// not as a failure. Test with errors.Is.
var ErrOutputClosed = errors.New("output closed by consumer")

// Sink writes sampled lines to an underlying writer, one write per
// line, so output reaches the consumer as soon as it is decided and a
// vanished consumer is noticed on the very next line.
type Sink struct {
	w io.Writer
}

// NewSink returns a Sink writing to w.
func NewSink(w io.Writer) *Sink {
	return &Sink{w: w}
}

// Write emits line followed by a newline. A broken-pipe failure comes
// back marked with ErrOutputClosed; any other failure is fatal.
func (s *Sink) Write(line string) error {
	if _, err := fmt.Fprintln(s.w, line); err != nil {
		if errors.Is(err, syscall.EPIPE) || errors.Is(err, io.ErrClosedPipe) {
			return errors.Mark(err, ErrOutputClosed)
		}
		return errors.Wrap(err, "write output")
	}
	return nil
}
