package ics

import (
	"bufio"
	"io"
)

// LineReader reads logical content lines back out of a folded iCalendar
// stream. Lines in an iCalendar file are folded by inserting CRLF followed by
// a single whitespace; ReadLine removes that so callers see each property on
// one line.
type LineReader struct {
	b *bufio.Reader
}

// NewLineReader wraps r in a buffered reader. Both CRLF and bare LF line
// endings are accepted.
func NewLineReader(r io.Reader) *LineReader {
	return &LineReader{
		b: bufio.NewReader(r),
	}
}

// ReadLine returns the next unfolded line without its line break. Empty
// physical lines are skipped. At the end of the stream it returns io.EOF,
// possibly together with a final unterminated line.
func (lr *LineReader) ReadLine() (string, error) {
	var line []byte
	for {
		b, err := lr.b.ReadBytes('\n')
		b = trimLineBreak(b)
		line = append(line, b...)
		if err != nil {
			return string(line), err
		}
		if len(line) == 0 {
			continue
		}
		p, _ := lr.b.Peek(1)
		if len(p) == 0 || (p[0] != ' ' && p[0] != '\t') {
			return string(line), nil
		}
		_, _ = lr.b.Discard(1)
	}
}

func trimLineBreak(b []byte) []byte {
	if n := len(b); n > 0 && b[n-1] == '\n' {
		b = b[:n-1]
		if n := len(b); n > 0 && b[n-1] == '\r' {
			b = b[:n-1]
		}
	}
	return b
}

// Unfold reads every logical line from r.
func Unfold(r io.Reader) ([]string, error) {
	lr := NewLineReader(r)
	var lines []string
	for {
		l, err := lr.ReadLine()
		if l != "" {
			lines = append(lines, l)
		}
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
	}
}
