package lexer

import (
	"testing"

	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/ast"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/stream"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kindsAndTexts(tokens []Token) []string {
	out := make([]string, 0, len(tokens))
	for _, tok := range tokens {
		out = append(out, tok.String())
	}
	return out
}

func TestTokenKinds(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"words", "this that", []string{"WORD(this)", "WORD(that)"}},
		{"operators fold", "a AND b Or c", []string{"WORD(a)", "OPERATOR(and)", "WORD(b)", "OPERATOR(or)", "WORD(c)"}},
		{"brackets", "(a)(b)", []string{"BRACKET(()", "WORD(a)", "BRACKET())", "BRACKET(()", "WORD(b)", "BRACKET())"}},
		{"separators dropped", `"you're" a,b; c-d`, []string{"WORD(you)", "WORD(re)", "WORD(a)", "WORD(b)", "WORD(c)", "WORD(d)"}},
		{"non ascii separates", "naïve42", []string{"WORD(na)", "WORD(ve42)"}},
		{"operator inside word", "android oracle", []string{"WORD(android)", "WORD(oracle)"}},
		{"empty", "", nil},
		{"only separators", " \t\n!?", nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FromString(tt.input).All()
			if tt.want == nil {
				assert.Empty(t, got)
				return
			}
			assert.Equal(t, tt.want, kindsAndTexts(got))
		})
	}
}

func TestOperatorToken(t *testing.T) {
	tok := FromString("OR").Next()
	assert.Equal(t, KindOperator, tok.Kind)
	assert.Equal(t, ast.OpOr, tok.Op)
	assert.Equal(t, "or", tok.Text)
}

func TestPeekDoesNotConsume(t *testing.T) {
	l := FromString("one two")
	assert.Equal(t, "one", l.Peek().Text)
	assert.Equal(t, "one", l.Peek().Text)
	assert.Equal(t, "one", l.Next().Text)
	assert.Equal(t, "two", l.Peek().Text)
	assert.Equal(t, "two", l.Next().Text)
	assert.True(t, l.EOF())
	assert.Equal(t, KindEOF, l.Next().Kind)
	assert.Equal(t, KindEOF, l.Next().Kind)
}

func TestTokenPositions(t *testing.T) {
	l := New(stream.New("ab (\n cd)"))
	tokens := l.All()
	require.Len(t, tokens, 4)
	assert.Equal(t, stream.Position{Line: 1, Col: 0}, tokens[0].Pos)
	assert.Equal(t, stream.Position{Line: 1, Col: 3}, tokens[1].Pos)
	assert.True(t, tokens[1].IsOpen())
	assert.Equal(t, stream.Position{Line: 2, Col: 1}, tokens[2].Pos)
	assert.Equal(t, stream.Position{Line: 2, Col: 3}, tokens[3].Pos)
	assert.False(t, tokens[3].IsOpen())
}
