// Package lexer groups the runes of a stream into query tokens: words,
// the reserved operators "and" and "or", and brackets. Every other rune is
// a separator and is dropped.
package lexer

import (
	"fmt"
	"strings"

	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/ast"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/stream"
)

type Kind int

const (
	KindEOF Kind = iota
	KindWord
	KindOperator
	KindBracket
)

func (k Kind) String() string {
	switch k {
	case KindWord:
		return "WORD"
	case KindOperator:
		return "OPERATOR"
	case KindBracket:
		return "BRACKET"
	default:
		return "EOF"
	}
}

type Token struct {
	Kind Kind
	// Text is the word, the lower-cased operator keyword, or the bracket.
	Text string
	// Op is set for operator tokens only.
	Op ast.Operator
	// Pos is the stream position just before the token's first rune.
	Pos stream.Position
}

func (t Token) String() string {
	if t.Kind == KindEOF {
		return t.Kind.String()
	}
	return fmt.Sprintf("%s(%s)", t.Kind, t.Text)
}

// IsOpen reports whether t is an opening bracket.
func (t Token) IsOpen() bool {
	return t.Kind == KindBracket && t.Text == "("
}

type Lexer struct {
	input   *stream.Stream
	current *Token
}

func New(input *stream.Stream) *Lexer {
	return &Lexer{input: input}
}

// FromString is New(stream.New(text)).
func FromString(text string) *Lexer {
	return New(stream.New(text))
}

// Next consumes and returns the next token, or a KindEOF token once the
// input is exhausted.
func (l *Lexer) Next() Token {
	if l.current != nil {
		t := *l.current
		l.current = nil
		return t
	}
	return l.read()
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	if l.current == nil {
		t := l.read()
		l.current = &t
	}
	return *l.current
}

func (l *Lexer) EOF() bool {
	return l.Peek().Kind == KindEOF
}

// Stream exposes the underlying stream for diagnostics.
func (l *Lexer) Stream() *stream.Stream {
	return l.input
}

// All drains the lexer.
func (l *Lexer) All() []Token {
	var tokens []Token
	for !l.EOF() {
		tokens = append(tokens, l.Next())
	}
	return tokens
}

func (l *Lexer) read() Token {
	for !l.input.EOF() {
		ch := l.input.Peek()
		switch {
		case isBracket(ch):
			pos := l.input.Pos()
			return Token{Kind: KindBracket, Text: string(l.input.Next()), Pos: pos}
		case isAlphaNumeric(ch):
			return l.readWord()
		default:
			l.input.Next()
		}
	}
	return Token{Kind: KindEOF, Pos: l.input.Pos()}
}

func (l *Lexer) readWord() Token {
	pos := l.input.Pos()
	var sb strings.Builder
	for isAlphaNumeric(l.input.Peek()) {
		sb.WriteRune(l.input.Next())
	}
	word := sb.String()
	folded := strings.ToLower(word)
	if op, ok := ast.ParseOperator(folded); ok {
		return Token{Kind: KindOperator, Text: folded, Op: op, Pos: pos}
	}
	return Token{Kind: KindWord, Text: word, Pos: pos}
}

func isBracket(ch rune) bool {
	return ch == '(' || ch == ')'
}

// isAlphaNumeric is locale independent: ASCII letters and digits only.
func isAlphaNumeric(ch rune) bool {
	return ('a' <= ch && ch <= 'z') || ('A' <= ch && ch <= 'Z') || ('0' <= ch && ch <= '9')
}
