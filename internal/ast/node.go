// Package ast defines the syntax tree for JavaScript sources.
//
// Every node embeds Node, which carries the type tag and byte span, so a
// single json.Marshal pass over a Program yields the serialized tree: the
// struct tags are the schema. Union slots from the grammar (for-loop heads,
// export default values, object members) are typed as Expr; the parser only
// stores the grammatically valid alternatives there, the same convention
// go/ast uses for its Expr slots.
package ast

import "whittle/internal/source"

// Node is the common prefix of every syntax node: the type tag written to
// serialized output plus the half-open byte span.
type Node struct {
	Type  string `json:"type"`
	Start uint32 `json:"start"`
	End   uint32 `json:"end"`
}

// Span returns the node's byte range.
func (n *Node) Span() source.Span {
	return source.Span{Start: n.Start, End: n.End}
}

// SetSpan overwrites the node's byte range.
func (n *Node) SetSpan(sp source.Span) {
	n.Start = sp.Start
	n.End = sp.End
}

func nodeAt(typ string, sp source.Span) Node {
	return Node{Type: typ, Start: sp.Start, End: sp.End}
}

// Expr is implemented by every node that can sit in an expression slot.
type Expr interface {
	Span() source.Span
	exprNode()
}

// Stmt is implemented by statements and declarations.
type Stmt interface {
	Span() source.Span
	stmtNode()
}

// Pattern is implemented by binding targets: identifiers, array and object
// patterns, defaults, and rest elements.
type Pattern interface {
	Span() source.Span
	patternNode()
}

// ClassElement is implemented by the members of a class body.
type ClassElement interface {
	Span() source.Span
	classElementNode()
}

// ImportSpec is implemented by the three import specifier forms.
type ImportSpec interface {
	Span() source.Span
	importSpecNode()
}
