package rank

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/bastiangx/wordrank/internal/utils"
)

// ErrSinkClosed means the output stopped accepting data, usually because the
// reading end of a pipe exited. It marks the end of output, not a failure.
var ErrSinkClosed = errors.New("output closed")

// Format renders one candidate as "<score>: <word>" with two decimal places.
func Format(c Candidate) string {
	return c.Score.StringFixed(2) + ": " + c.Word
}

// Write emits list to w one line per candidate and returns the number of
// complete lines w accepted. It stops at the first failed write; a broken
// pipe is reported as ErrSinkClosed.
func Write(w io.Writer, list ScoredList) (int, error) {
	sink := &lineCounter{w: w}
	bw := bufio.NewWriter(sink)
	for _, c := range list {
		if _, err := fmt.Fprintln(bw, Format(c)); err != nil {
			return sink.lines, writeError(err)
		}
	}
	if err := bw.Flush(); err != nil {
		return sink.lines, writeError(err)
	}
	return sink.lines, nil
}

// lineCounter counts the newlines that made it through to w.
type lineCounter struct {
	w     io.Writer
	lines int
}

func (c *lineCounter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	if n > 0 && n <= len(p) {
		c.lines += bytes.Count(p[:n], []byte{'\n'})
	}
	return n, err
}

func writeError(err error) error {
	if utils.IsBrokenPipe(err) {
		return fmt.Errorf("%w: %w", ErrSinkClosed, err)
	}
	return fmt.Errorf("write output: %w", err)
}
