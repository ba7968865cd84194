package ast

import "whittle/internal/source"

// DeclKind is the keyword of a variable declaration.
type DeclKind string

const (
	DeclVar   DeclKind = "var"
	DeclLet   DeclKind = "let"
	DeclConst DeclKind = "const"
)

// VarDecl is a var, let, or const declaration with one or more declarators.
// It implements Expr as well as Stmt because for-loop heads hold
// declarations in expression slots.
type VarDecl struct {
	Node
	Kind         DeclKind         `json:"kind"`
	Declarations []*VarDeclarator `json:"declarations"`
}

func NewVarDecl(sp source.Span, kind DeclKind, declarations []*VarDeclarator) *VarDecl {
	return &VarDecl{Node: nodeAt("VariableDeclaration", sp), Kind: kind, Declarations: declarations}
}

func (*VarDecl) stmtNode() {}
func (*VarDecl) exprNode() {}

// VarDeclarator is one id = init pair; Init may be nil.
type VarDeclarator struct {
	Node
	ID   Pattern `json:"id"`
	Init Expr    `json:"init"`
}

func NewVarDeclarator(sp source.Span, id Pattern, init Expr) *VarDeclarator {
	return &VarDeclarator{Node: nodeAt("VariableDeclarator", sp), ID: id, Init: init}
}

// FuncDecl is a function declaration. ID is nil only for
// export default function () {}.
type FuncDecl struct {
	Node
	ID        *Ident     `json:"id"`
	Params    []Pattern  `json:"params"`
	Body      *BlockStmt `json:"body"`
	Generator bool       `json:"generator"`
	Async     bool       `json:"async"`
}

func NewFuncDecl(sp source.Span, id *Ident, params []Pattern, body *BlockStmt, generator, async bool) *FuncDecl {
	if params == nil {
		params = []Pattern{}
	}
	return &FuncDecl{
		Node:      nodeAt("FunctionDeclaration", sp),
		ID:        id,
		Params:    params,
		Body:      body,
		Generator: generator,
		Async:     async,
	}
}

func (*FuncDecl) stmtNode() {}
func (*FuncDecl) exprNode() {}

// FuncExpr is a function expression.
type FuncExpr struct {
	Node
	ID        *Ident     `json:"id"`
	Params    []Pattern  `json:"params"`
	Body      *BlockStmt `json:"body"`
	Generator bool       `json:"generator"`
	Async     bool       `json:"async"`
}

func NewFuncExpr(sp source.Span, id *Ident, params []Pattern, body *BlockStmt, generator, async bool) *FuncExpr {
	if params == nil {
		params = []Pattern{}
	}
	return &FuncExpr{
		Node:      nodeAt("FunctionExpression", sp),
		ID:        id,
		Params:    params,
		Body:      body,
		Generator: generator,
		Async:     async,
	}
}

func (*FuncExpr) exprNode() {}

// ArrowFuncExpr is an arrow function. When Expression is true, Body holds
// the bare expression; otherwise it holds a *BlockStmt.
type ArrowFuncExpr struct {
	Node
	Params     []Pattern `json:"params"`
	Body       Expr      `json:"body"`
	Expression bool      `json:"expression"`
	Async      bool      `json:"async"`
}

func NewArrowFuncExpr(sp source.Span, params []Pattern, body Expr, expression, async bool) *ArrowFuncExpr {
	if params == nil {
		params = []Pattern{}
	}
	return &ArrowFuncExpr{
		Node:       nodeAt("ArrowFunctionExpression", sp),
		Params:     params,
		Body:       body,
		Expression: expression,
		Async:      async,
	}
}

func (*ArrowFuncExpr) exprNode() {}

// BlockBody returns the arrow body as a block, or nil for expression bodies.
func (a *ArrowFuncExpr) BlockBody() *BlockStmt {
	if b, ok := a.Body.(*BlockStmt); ok {
		return b
	}
	return nil
}

// ExprBody returns the arrow body as an expression, or nil for block bodies.
func (a *ArrowFuncExpr) ExprBody() Expr {
	if e, ok := a.Body.(Expr); ok {
		return e
	}
	return nil
}
