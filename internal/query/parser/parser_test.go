package parser

import (
	"errors"
	"testing"

	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/ast"
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/lexer"
	fterrors "github.com/Adithya-Monish-Kumar-K/ftsearch/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func word(text string) ast.Word {
	return ast.Word{Text: text}
}

func TestParseShapes(t *testing.T) {
	tests := []struct {
		query string
		want  ast.Node
	}{
		{"this that", ast.Binary{Op: ast.OpAnd, Left: word("this"), Right: word("that")}},
		{"this or that", ast.Binary{Op: ast.OpOr, Left: word("this"), Right: word("that")}},
		{"this and that", ast.Binary{Op: ast.OpAnd, Left: word("this"), Right: word("that")}},
		{"this or or or that", ast.Binary{Op: ast.OpOr, Left: word("this"), Right: word("that")}},
		{"this or", word("this")},
		{"(this) or (that)", ast.Binary{
			Op:    ast.OpOr,
			Left:  ast.Group{Inner: word("this")},
			Right: ast.Group{Inner: word("that")},
		}},
		{"a b c", ast.Binary{
			Op:    ast.OpAnd,
			Left:  word("a"),
			Right: ast.Binary{Op: ast.OpAnd, Left: word("b"), Right: word("c")},
		}},
		{"one and (two or eight)", ast.Binary{
			Op:    ast.OpAnd,
			Left:  word("one"),
			Right: ast.Group{Inner: ast.Binary{Op: ast.OpOr, Left: word("two"), Right: word("eight")}},
		}},
		{"or this", word("this")},
		{"and or this", word("this")},
		{"", nil},
		{"or", nil},
		{"()", ast.Group{}},
		{"(a", ast.Group{Inner: word("a")}},
		{"a) b", word("a")},
		{")", nil},
		{"a OR b", ast.Binary{Op: ast.OpOr, Left: word("a"), Right: word("b")}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			assert.Equal(t, tt.want, Parse(tt.query))
		})
	}
}

func TestParseRendering(t *testing.T) {
	tests := map[string]string{
		"this that":                "and(this, that)",
		"this or that":             "or(this, that)",
		"(this) or (that)":         "or(group(this), group(that))",
		"a or b c":                 "or(a, and(b, c))",
		"a b or c":                 "and(a, or(b, c))",
		"(a b) or c":               "or(group(and(a, b)), c)",
		"((a or b)) c":             "and(group(group(or(a, b))), c)",
		"a (b or (c d)) e":         "and(a, and(group(or(b, group(and(c, d)))), e))",
		"x or (y or) z":            "or(x, and(group(y), z))",
		"first (or second) third":  "and(first, and(group(second), third))",
		"alpha ! beta, \"gamma\"":  "and(alpha, and(beta, gamma))",
	}
	for query, want := range tests {
		t.Run(query, func(t *testing.T) {
			assert.Equal(t, want, ast.String(Parse(query)))
		})
	}
}

func TestParseStrictAcceptsWellFormed(t *testing.T) {
	for _, q := range []string{"a", "a b", "a or b", "(a or b) and c", "a or or b", "(a)(b)", ""} {
		node, err := ParseStrict(q)
		require.NoError(t, err, q)
		assert.Equal(t, Parse(q), node, q)
	}
}

func TestParseStrictDiagnostics(t *testing.T) {
	tests := []struct {
		query   string
		message string
		line    int
		col     int
	}{
		{"or a", `operator "or" has no left operand`, 1, 0},
		{"a or", `operator "or" has no right operand`, 1, 4},
		{"a and", `operator "and" has no right operand`, 1, 5},
		{"a) b", "unmatched closing bracket", 1, 1},
		{"(a", "unclosed bracket", 1, 0},
		{"x\n(y or", `operator "or" has no right operand`, 2, 5},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			node, err := ParseStrict(tt.query)
			require.Error(t, err)
			assert.True(t, errors.Is(err, fterrors.ErrMalformedQuery))
			assert.Contains(t, err.Error(), tt.message)
			line, col, ok := fterrors.Position(err)
			require.True(t, ok)
			assert.Equal(t, tt.line, line)
			assert.Equal(t, tt.col, col)
			assert.Equal(t, Parse(tt.query), node)
		})
	}
}

func TestDiagnosticsCollectsAll(t *testing.T) {
	p := New(lexer.FromString("or (a and"))
	assert.Equal(t, ast.Group{Inner: word("a")}, p.Parse())
	require.Len(t, p.Diagnostics(), 3)
	assert.Contains(t, p.Diagnostics()[0].Error(), "no left operand")
	assert.Contains(t, p.Diagnostics()[1].Error(), "no right operand")
	assert.Contains(t, p.Diagnostics()[2].Error(), "unclosed bracket")
}

func TestSplit(t *testing.T) {
	assert.Equal(t, []string{"this", "is", "some", "text", "this"}, Split("this is (some) text, this"))
	assert.Equal(t, []string{"cats", "dogs"}, Split("cats and dogs or"))
	assert.Empty(t, Split(" () and ,"))
}
