package ast

import "whittle/internal/source"

// Patterns also implement Expr: destructuring assignment targets live in
// expression slots after the parser converts the parenthesized reading.

// ArrayPattern is [a, b = 1, ...rest] in binding position. Holes are nil.
type ArrayPattern struct {
	Node
	Elements []Pattern `json:"elements"`
}

func NewArrayPattern(sp source.Span, elements []Pattern) *ArrayPattern {
	if elements == nil {
		elements = []Pattern{}
	}
	return &ArrayPattern{Node: nodeAt("ArrayPattern", sp), Elements: elements}
}

func (*ArrayPattern) patternNode() {}
func (*ArrayPattern) exprNode()    {}

// ObjectPattern is {a, b: c, ...rest} in binding position; Properties holds
// *Property (with pattern values) and *RestElement.
type ObjectPattern struct {
	Node
	Properties []Expr `json:"properties"`
}

func NewObjectPattern(sp source.Span, properties []Expr) *ObjectPattern {
	if properties == nil {
		properties = []Expr{}
	}
	return &ObjectPattern{Node: nodeAt("ObjectPattern", sp), Properties: properties}
}

func (*ObjectPattern) patternNode() {}
func (*ObjectPattern) exprNode()    {}

// AssignPattern is a default value: left = right.
type AssignPattern struct {
	Node
	Left  Pattern `json:"left"`
	Right Expr    `json:"right"`
}

func NewAssignPattern(sp source.Span, left Pattern, right Expr) *AssignPattern {
	return &AssignPattern{Node: nodeAt("AssignmentPattern", sp), Left: left, Right: right}
}

func (*AssignPattern) patternNode() {}
func (*AssignPattern) exprNode()    {}

// RestElement is ...target in patterns.
type RestElement struct {
	Node
	Argument Pattern `json:"argument"`
}

func NewRestElement(sp source.Span, argument Pattern) *RestElement {
	return &RestElement{Node: nodeAt("RestElement", sp), Argument: argument}
}

func (*RestElement) patternNode() {}
func (*RestElement) exprNode()    {}
