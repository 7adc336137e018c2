package jvalue

import (
	"errors"
	"fmt"
	"strconv"
	"unicode/utf8"
)

// ErrSyntax is matched by every error returned for malformed JSON text.
var ErrSyntax = errors.New("syntax error")

// contextRadius is how many bytes of input are kept on each side of an error
// position.
const contextRadius = 10

// SyntaxError describes where decoding stopped. Line and Column are 1-based;
// Column counts characters, not bytes.
type SyntaxError struct {
	Msg     string
	Offset  int
	Line    int
	Column  int
	Context string
}

func (e *SyntaxError) Error() string {
	sample := strconv.Quote(e.Context)
	sample = sample[1 : len(sample)-1]
	return fmt.Sprintf("%s: %s: `...%s...` at offset %d (line=%d, col=%d)",
		ErrSyntax, e.Msg, sample, e.Offset, e.Line, e.Column)
}

func (e *SyntaxError) Unwrap() error {
	return ErrSyntax
}

func newSyntaxError(data []byte, off int, msg string) *SyntaxError {
	off = min(max(off, 0), len(data))
	line, lineStart := 1, 0
	for i := 0; i < off; i++ {
		if data[i] == '\n' {
			line++
			lineStart = i + 1
		}
	}
	return &SyntaxError{
		Msg:     msg,
		Offset:  off,
		Line:    line,
		Column:  utf8.RuneCount(data[lineStart:off]) + 1,
		Context: string(data[contextStart(data, off):contextEnd(data, off)]),
	}
}

// contextStart moves back from off-contextRadius to the start of a character.
func contextStart(data []byte, off int) int {
	i := max(0, off-contextRadius)
	for i > 0 && !utf8.RuneStart(data[i]) {
		i--
	}
	return i
}

// contextEnd moves forward from off+contextRadius to the start of a character,
// so the last character in the window is whole.
func contextEnd(data []byte, off int) int {
	i := min(len(data), off+contextRadius)
	for i < len(data) && !utf8.RuneStart(data[i]) {
		i++
	}
	return i
}
