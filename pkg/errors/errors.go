package errors

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyID          = errors.New("document id is empty")
	ErrInvalidDelimiter = errors.New("invalid delimiter")
	ErrMalformedQuery   = errors.New("malformed query")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidInput     = errors.New("invalid input")
	ErrIndexFull        = errors.New("document ordinal space exhausted")
)

// SyntaxError is a diagnostic tagged with the line and column of the input
// at which it was raised.
type SyntaxError struct {
	Err     error
	Message string
	Line    int
	Col     int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s (%d:%d)", e.Err.Error(), e.Message, e.Line, e.Col)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

func NewSyntax(line, col int, message string) *SyntaxError {
	return &SyntaxError{
		Err:     ErrMalformedQuery,
		Message: message,
		Line:    line,
		Col:     col,
	}
}

func NewSyntaxf(line, col int, format string, args ...any) *SyntaxError {
	return NewSyntax(line, col, fmt.Sprintf(format, args...))
}

// Position returns the line and column of a SyntaxError found anywhere in
// err's chain.
func Position(err error) (line, col int, ok bool) {
	var synErr *SyntaxError
	if errors.As(err, &synErr) {
		return synErr.Line, synErr.Col, true
	}
	return 0, 0, false
}

