// Package stream wraps raw query or document text and yields it one rune at
// a time while tracking the line and column of the read position.
package stream

import (
	"fmt"
	"unicode/utf8"

	fterrors "github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/errors"
)

// EOF is returned by Peek and Next once the input is exhausted.
const EOF rune = -1

// Position is a 1-based line and the number of runes consumed on that line.
type Position struct {
	Line int
	Col  int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

type Stream struct {
	input string
	pos   int
	line  int
	col   int
}

func New(input string) *Stream {
	return &Stream{input: input, line: 1}
}

func (s *Stream) Peek() rune {
	if s.pos >= len(s.input) {
		return EOF
	}
	r, _ := utf8.DecodeRuneInString(s.input[s.pos:])
	return r
}

func (s *Stream) Next() rune {
	if s.pos >= len(s.input) {
		return EOF
	}
	r, size := utf8.DecodeRuneInString(s.input[s.pos:])
	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 0
	} else {
		s.col++
	}
	return r
}

func (s *Stream) EOF() bool {
	return s.pos >= len(s.input)
}

func (s *Stream) Pos() Position {
	return Position{Line: s.line, Col: s.col}
}

// Errorf returns a malformed-input error tagged with the current position.
func (s *Stream) Errorf(format string, args ...any) error {
	return fterrors.NewSyntaxf(s.line, s.col, format, args...)
}

// ErrorAt is Errorf for a position recorded earlier.
func ErrorAt(pos Position, format string, args ...any) error {
	return fterrors.NewSyntaxf(pos.Line, pos.Col, format, args...)
}
