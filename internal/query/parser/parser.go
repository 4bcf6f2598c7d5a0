// Package parser turns query text into an ast.Node by recursive descent and
// provides the flat split pass used to tokenize documents at index time.
//
// Malformed fragments never fail a parse: operators without a left operand
// are skipped, operators without a right operand are dropped, a stray ")"
// ends the expression and a missing ")" is implied at end of input. Each of
// these is recorded as a diagnostic that ParseStrict reports as an error.
package parser

import (
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/ast"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/lexer"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/stream"
)

// outcome is the result of one parse step: an operand, an operator handed
// back to the enclosing call, or neither (end of expression).
type outcome struct {
	node    ast.Node
	pending ast.Operator
}

func (o outcome) isPending() bool {
	return o.pending != ast.OpNone
}

type Parser struct {
	input       *lexer.Lexer
	closed      bool
	closedAt    stream.Position
	diagnostics []error
}

func New(input *lexer.Lexer) *Parser {
	return &Parser{input: input}
}

// Parse returns the AST for query, or nil when query holds no words.
func Parse(query string) ast.Node {
	return New(lexer.FromString(query)).Parse()
}

// ParseStrict is Parse, but reports the first malformed fragment as an
// error wrapping errors.ErrMalformedQuery.
func ParseStrict(query string) (ast.Node, error) {
	p := New(lexer.FromString(query))
	node := p.Parse()
	if diags := p.Diagnostics(); len(diags) > 0 {
		return node, diags[0]
	}
	return node, nil
}

// Split returns the words of text in order. Operators and brackets are
// discarded.
func Split(text string) []string {
	return New(lexer.FromString(text)).Split()
}

func (p *Parser) Parse() ast.Node {
	node := p.parse(0).node
	if p.closed {
		p.closed = false
		p.report(p.closedAt, "unmatched closing bracket")
	}
	return node
}

func (p *Parser) Split() []string {
	var words []string
	for _, tok := range p.input.All() {
		if tok.Kind == lexer.KindWord {
			words = append(words, tok.Text)
		}
	}
	return words
}

// Diagnostics returns the malformed fragments seen by Parse in the order
// they were detected.
func (p *Parser) Diagnostics() []error {
	return p.diagnostics
}

// parse reads one operand and, if tokens remain, the operator and right
// operand joined to it. level is 0 when no left operand is pending in the
// caller.
func (p *Parser) parse(level int) outcome {
	if p.input.EOF() {
		return outcome{}
	}
	tok := p.input.Next()

	var node ast.Node
	switch tok.Kind {
	case lexer.KindWord:
		node = ast.Word{Text: tok.Text}
	case lexer.KindBracket:
		if !tok.IsOpen() {
			p.closed = true
			p.closedAt = tok.Pos
			return outcome{}
		}
		inner := p.parse(0).node
		if p.closed {
			p.closed = false
		} else {
			p.report(tok.Pos, "unclosed bracket")
		}
		node = ast.Group{Inner: inner}
	case lexer.KindOperator:
		if level == 0 {
			p.report(tok.Pos, "operator %q has no left operand", tok.Text)
			return p.parse(0)
		}
		return outcome{pending: tok.Op}
	}

	if p.input.EOF() {
		return outcome{node: node}
	}

	op := ast.OpAnd
	explicit := false
	right := p.parse(level + 1)
	for right.isPending() {
		op = right.pending
		explicit = true
		right = p.parse(level + 1)
	}
	if right.node == nil {
		if explicit {
			p.report(p.input.Stream().Pos(), "operator %q has no right operand", op)
		}
		return outcome{node: node}
	}
	return outcome{node: ast.Binary{Op: op, Left: node, Right: right.node}}
}

func (p *Parser) report(pos stream.Position, format string, args ...any) {
	p.diagnostics = append(p.diagnostics, stream.ErrorAt(pos, format, args...))
}
