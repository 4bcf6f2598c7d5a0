// Package executor evaluates a parsed query against an inverted index. The
// evaluation follows the shape of the AST exactly; precedence is decided by
// the parser alone.
package executor

import (
	"github.com/Adithya-Monish-Kumar-K/ftsearch/internal/query/ast"
	"github.com/RoaringBitmap/roaring/v2"
)

// PostingSource resolves a word to the ordinals of the documents that
// contain it. The returned bitmap is owned by the caller and is empty for
// unknown words.
type PostingSource interface {
	Postings(word string) *roaring.Bitmap
}

// Stats counts the work done by one evaluation.
type Stats struct {
	Lookups      int
	ShortCircuit int
}

type Executor struct {
	source PostingSource
	stats  Stats
}

func New(source PostingSource) *Executor {
	return &Executor{source: source}
}

// Evaluate is New(source).Execute(node).
func Evaluate(node ast.Node, source PostingSource) *roaring.Bitmap {
	return New(source).Execute(node)
}

// Execute returns the ordinals matching node. A nil node matches nothing.
func (e *Executor) Execute(node ast.Node) *roaring.Bitmap {
	switch n := node.(type) {
	case ast.Word:
		e.stats.Lookups++
		return e.source.Postings(n.Text)
	case ast.Group:
		return e.Execute(n.Inner)
	case ast.Binary:
		return e.executeBinary(n)
	default:
		return roaring.New()
	}
}

func (e *Executor) Stats() Stats {
	return e.stats
}

func (e *Executor) executeBinary(n ast.Binary) *roaring.Bitmap {
	left := e.Execute(n.Left)
	if n.Op == ast.OpAnd && left.IsEmpty() {
		e.stats.ShortCircuit++
		return left
	}
	right := e.Execute(n.Right)
	switch n.Op {
	case ast.OpOr:
		left.Or(right)
	default:
		left.And(right)
	}
	return left
}
