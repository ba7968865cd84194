package ast

import "whittle/internal/source"

// ClassDecl is a class declaration. ID is nil only for
// export default class {}.
type ClassDecl struct {
	Node
	ID         *Ident     `json:"id"`
	SuperClass Expr       `json:"superClass"`
	Body       *ClassBody `json:"body"`
}

func NewClassDecl(sp source.Span, id *Ident, superClass Expr, body *ClassBody) *ClassDecl {
	return &ClassDecl{Node: nodeAt("ClassDeclaration", sp), ID: id, SuperClass: superClass, Body: body}
}

func (*ClassDecl) stmtNode() {}
func (*ClassDecl) exprNode() {}

// ClassExpr is a class expression.
type ClassExpr struct {
	Node
	ID         *Ident     `json:"id"`
	SuperClass Expr       `json:"superClass"`
	Body       *ClassBody `json:"body"`
}

func NewClassExpr(sp source.Span, id *Ident, superClass Expr, body *ClassBody) *ClassExpr {
	return &ClassExpr{Node: nodeAt("ClassExpression", sp), ID: id, SuperClass: superClass, Body: body}
}

func (*ClassExpr) exprNode() {}

// ClassBody is the braced member list of a class.
type ClassBody struct {
	Node
	Body []ClassElement `json:"body"`
}

func NewClassBody(sp source.Span, body []ClassElement) *ClassBody {
	if body == nil {
		body = []ClassElement{}
	}
	return &ClassBody{Node: nodeAt("ClassBody", sp), Body: body}
}

// MethodKind is the role of a method definition.
type MethodKind string

const (
	MethodConstructor MethodKind = "constructor"
	MethodMethod      MethodKind = "method"
	MethodGet         MethodKind = "get"
	MethodSet         MethodKind = "set"
)

// MethodDef is a method, constructor, or accessor in a class body. Key is
// an Ident, Literal, PrivateIdent, or computed expression.
type MethodDef struct {
	Node
	Key      Expr       `json:"key"`
	Value    *FuncExpr  `json:"value"`
	Kind     MethodKind `json:"kind"`
	Computed bool       `json:"computed"`
	Static   bool       `json:"static"`
}

func NewMethodDef(sp source.Span, key Expr, value *FuncExpr, kind MethodKind, computed, static bool) *MethodDef {
	return &MethodDef{
		Node:     nodeAt("MethodDefinition", sp),
		Key:      key,
		Value:    value,
		Kind:     kind,
		Computed: computed,
		Static:   static,
	}
}

func (*MethodDef) classElementNode() {}

// PropertyDef is a class field; Value may be nil.
type PropertyDef struct {
	Node
	Key      Expr `json:"key"`
	Value    Expr `json:"value"`
	Computed bool `json:"computed"`
	Static   bool `json:"static"`
}

func NewPropertyDef(sp source.Span, key Expr, value Expr, computed, static bool) *PropertyDef {
	return &PropertyDef{
		Node:     nodeAt("PropertyDefinition", sp),
		Key:      key,
		Value:    value,
		Computed: computed,
		Static:   static,
	}
}

func (*PropertyDef) classElementNode() {}

// StaticBlock is a static {} initializer block.
type StaticBlock struct {
	Node
	Body []Stmt `json:"body"`
}

func NewStaticBlock(sp source.Span, body []Stmt) *StaticBlock {
	if body == nil {
		body = []Stmt{}
	}
	return &StaticBlock{Node: nodeAt("StaticBlock", sp), Body: body}
}

func (*StaticBlock) classElementNode() {}
