// Package ast defines the parsed form of a boolean keyword query.
//
// The node set is closed: Word, Group and Binary are the only
// implementations of Node.
package ast

import "fmt"

// Operator joins the two operands of a Binary node.
type Operator int

const (
	// OpNone is the zero Operator.
	OpNone Operator = iota
	OpAnd
	OpOr
)

func (o Operator) String() string {
	switch o {
	case OpAnd:
		return "and"
	case OpOr:
		return "or"
	default:
		return "none"
	}
}

// ParseOperator maps a lower-cased keyword to its Operator.
func ParseOperator(keyword string) (Operator, bool) {
	switch keyword {
	case "and":
		return OpAnd, true
	case "or":
		return OpOr, true
	}
	return OpNone, false
}

type Node interface {
	fmt.Stringer
	node()
}

// Word is a leaf that resolves to the posting list of Text.
type Word struct {
	Text string
}

// Group is a parenthesized sub-expression. Inner is nil for "()".
type Group struct {
	Inner Node
}

type Binary struct {
	Op    Operator
	Left  Node
	Right Node
}

func (Word) node()   {}
func (Group) node()  {}
func (Binary) node() {}

func (w Word) String() string {
	return w.Text
}

func (g Group) String() string {
	return fmt.Sprintf("group(%s)", str(g.Inner))
}

func (b Binary) String() string {
	return fmt.Sprintf("%s(%s, %s)", b.Op, str(b.Left), str(b.Right))
}

// String renders n, including a nil tree, in the form "and(a, or(b, c))".
func String(n Node) string {
	return str(n)
}

func str(n Node) string {
	if n == nil {
		return "<nil>"
	}
	return n.String()
}

// Words returns the leaf texts of n in left-to-right order.
func Words(n Node) []string {
	var out []string
	var walk func(Node)
	walk = func(n Node) {
		switch v := n.(type) {
		case Word:
			out = append(out, v.Text)
		case Group:
			walk(v.Inner)
		case Binary:
			walk(v.Left)
			walk(v.Right)
		}
	}
	walk(n)
	return out
}
