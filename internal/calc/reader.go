package calc

import (
	"bufio"
	"io"
	"strings"
)

// maxLineBytes fits the largest decimal value a BigInt can hold plus an
// operator and a second operand of the same size.
const maxLineBytes = 20_000_000

// Line is one expression read from input together with its 1-based line number.
type Line struct {
	No   int
	Text string
}

// LineReader yields expressions one per line, skipping blank lines and lines
// starting with '#'.
type LineReader struct {
	sc *bufio.Scanner
	no int
}

// NewLineReader returns a LineReader over r.
func NewLineReader(r io.Reader) *LineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &LineReader{sc: sc}
}

// Next returns the next expression. ok is false at end of input or on error;
// check Err afterwards.
func (lr *LineReader) Next() (Line, bool) {
	for lr.sc.Scan() {
		lr.no++
		text := strings.TrimSpace(lr.sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		return Line{No: lr.no, Text: text}, true
	}
	return Line{}, false
}

// Err returns the first read error, if any.
func (lr *LineReader) Err() error {
	return lr.sc.Err()
}

// ReadLines drains r into a slice of expressions.
func ReadLines(r io.Reader) ([]Line, error) {
	lr := NewLineReader(r)
	var lines []Line
	for {
		l, ok := lr.Next()
		if !ok {
			break
		}
		lines = append(lines, l)
	}
	return lines, lr.Err()
}
