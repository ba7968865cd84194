package ast

import "whittle/internal/source"

// ExprStmt is an expression used as a statement. Directive is set for
// string-literal prologue entries like "use strict".
type ExprStmt struct {
	Node
	Expression Expr   `json:"expression"`
	Directive  string `json:"directive,omitempty"`
}

func NewExprStmt(sp source.Span, expression Expr) *ExprStmt {
	return &ExprStmt{Node: nodeAt("ExpressionStatement", sp), Expression: expression}
}

func (*ExprStmt) stmtNode() {}

// BlockStmt is { ... }.
type BlockStmt struct {
	Node
	Body []Stmt `json:"body"`
}

func NewBlockStmt(sp source.Span, body []Stmt) *BlockStmt {
	if body == nil {
		body = []Stmt{}
	}
	return &BlockStmt{Node: nodeAt("BlockStatement", sp), Body: body}
}

func (*BlockStmt) stmtNode() {}

// exprNode lets a block sit in the arrow-function body slot.
func (*BlockStmt) exprNode() {}

// EmptyStmt is a lone semicolon.
type EmptyStmt struct {
	Node
}

func NewEmptyStmt(sp source.Span) *EmptyStmt {
	return &EmptyStmt{Node: nodeAt("EmptyStatement", sp)}
}

func (*EmptyStmt) stmtNode() {}

// DebuggerStmt is the debugger keyword.
type DebuggerStmt struct {
	Node
}

func NewDebuggerStmt(sp source.Span) *DebuggerStmt {
	return &DebuggerStmt{Node: nodeAt("DebuggerStatement", sp)}
}

func (*DebuggerStmt) stmtNode() {}

// ReturnStmt is return with an optional argument.
type ReturnStmt struct {
	Node
	Argument Expr `json:"argument"`
}

func NewReturnStmt(sp source.Span, argument Expr) *ReturnStmt {
	return &ReturnStmt{Node: nodeAt("ReturnStatement", sp), Argument: argument}
}

func (*ReturnStmt) stmtNode() {}

// IfStmt is if/else; Alternate may be nil.
type IfStmt struct {
	Node
	Test       Expr `json:"test"`
	Consequent Stmt `json:"consequent"`
	Alternate  Stmt `json:"alternate"`
}

func NewIfStmt(sp source.Span, test Expr, consequent, alternate Stmt) *IfStmt {
	return &IfStmt{Node: nodeAt("IfStatement", sp), Test: test, Consequent: consequent, Alternate: alternate}
}

func (*IfStmt) stmtNode() {}

// SwitchStmt is switch over its cases.
type SwitchStmt struct {
	Node
	Discriminant Expr          `json:"discriminant"`
	Cases        []*SwitchCase `json:"cases"`
}

func NewSwitchStmt(sp source.Span, discriminant Expr, cases []*SwitchCase) *SwitchStmt {
	if cases == nil {
		cases = []*SwitchCase{}
	}
	return &SwitchStmt{Node: nodeAt("SwitchStatement", sp), Discriminant: discriminant, Cases: cases}
}

func (*SwitchStmt) stmtNode() {}

// SwitchCase is one case clause; a nil Test is the default clause.
type SwitchCase struct {
	Node
	Test       Expr   `json:"test"`
	Consequent []Stmt `json:"consequent"`
}

func NewSwitchCase(sp source.Span, test Expr, consequent []Stmt) *SwitchCase {
	if consequent == nil {
		consequent = []Stmt{}
	}
	return &SwitchCase{Node: nodeAt("SwitchCase", sp), Test: test, Consequent: consequent}
}

// LabeledStmt is label: stmt.
type LabeledStmt struct {
	Node
	Label *Ident `json:"label"`
	Body  Stmt   `json:"body"`
}

func NewLabeledStmt(sp source.Span, label *Ident, body Stmt) *LabeledStmt {
	return &LabeledStmt{Node: nodeAt("LabeledStatement", sp), Label: label, Body: body}
}

func (*LabeledStmt) stmtNode() {}

// BreakStmt is break with an optional label.
type BreakStmt struct {
	Node
	Label *Ident `json:"label"`
}

func NewBreakStmt(sp source.Span, label *Ident) *BreakStmt {
	return &BreakStmt{Node: nodeAt("BreakStatement", sp), Label: label}
}

func (*BreakStmt) stmtNode() {}

// ContinueStmt is continue with an optional label.
type ContinueStmt struct {
	Node
	Label *Ident `json:"label"`
}

func NewContinueStmt(sp source.Span, label *Ident) *ContinueStmt {
	return &ContinueStmt{Node: nodeAt("ContinueStatement", sp), Label: label}
}

func (*ContinueStmt) stmtNode() {}

// WhileStmt is a while loop.
type WhileStmt struct {
	Node
	Test Expr `json:"test"`
	Body Stmt `json:"body"`
}

func NewWhileStmt(sp source.Span, test Expr, body Stmt) *WhileStmt {
	return &WhileStmt{Node: nodeAt("WhileStatement", sp), Test: test, Body: body}
}

func (*WhileStmt) stmtNode() {}

// DoWhileStmt is a do/while loop.
type DoWhileStmt struct {
	Node
	Body Stmt `json:"body"`
	Test Expr `json:"test"`
}

func NewDoWhileStmt(sp source.Span, body Stmt, test Expr) *DoWhileStmt {
	return &DoWhileStmt{Node: nodeAt("DoWhileStatement", sp), Body: body, Test: test}
}

func (*DoWhileStmt) stmtNode() {}

// ForStmt is a classic for loop. Init holds a *VarDecl or an expression;
// any of the three head slots may be nil.
type ForStmt struct {
	Node
	Init   Expr `json:"init"`
	Test   Expr `json:"test"`
	Update Expr `json:"update"`
	Body   Stmt `json:"body"`
}

func NewForStmt(sp source.Span, init, test, update Expr, body Stmt) *ForStmt {
	return &ForStmt{Node: nodeAt("ForStatement", sp), Init: init, Test: test, Update: update, Body: body}
}

func (*ForStmt) stmtNode() {}

// ForInStmt is for (left in right). Left holds a *VarDecl or a pattern.
type ForInStmt struct {
	Node
	Left  Expr `json:"left"`
	Right Expr `json:"right"`
	Body  Stmt `json:"body"`
}

func NewForInStmt(sp source.Span, left, right Expr, body Stmt) *ForInStmt {
	return &ForInStmt{Node: nodeAt("ForInStatement", sp), Left: left, Right: right, Body: body}
}

func (*ForInStmt) stmtNode() {}

// ForOfStmt is for (left of right), with Await set for for await.
type ForOfStmt struct {
	Node
	Await bool `json:"await"`
	Left  Expr `json:"left"`
	Right Expr `json:"right"`
	Body  Stmt `json:"body"`
}

func NewForOfStmt(sp source.Span, await bool, left, right Expr, body Stmt) *ForOfStmt {
	return &ForOfStmt{Node: nodeAt("ForOfStatement", sp), Await: await, Left: left, Right: right, Body: body}
}

func (*ForOfStmt) stmtNode() {}

// ThrowStmt is throw expr.
type ThrowStmt struct {
	Node
	Argument Expr `json:"argument"`
}

func NewThrowStmt(sp source.Span, argument Expr) *ThrowStmt {
	return &ThrowStmt{Node: nodeAt("ThrowStatement", sp), Argument: argument}
}

func (*ThrowStmt) stmtNode() {}

// TryStmt is try/catch/finally; Handler and Finalizer may each be nil but
// not both.
type TryStmt struct {
	Node
	Block     *BlockStmt   `json:"block"`
	Handler   *CatchClause `json:"handler"`
	Finalizer *BlockStmt   `json:"finalizer"`
}

func NewTryStmt(sp source.Span, block *BlockStmt, handler *CatchClause, finalizer *BlockStmt) *TryStmt {
	return &TryStmt{Node: nodeAt("TryStatement", sp), Block: block, Handler: handler, Finalizer: finalizer}
}

func (*TryStmt) stmtNode() {}

// CatchClause is catch with an optional binding.
type CatchClause struct {
	Node
	Param Pattern    `json:"param"`
	Body  *BlockStmt `json:"body"`
}

func NewCatchClause(sp source.Span, param Pattern, body *BlockStmt) *CatchClause {
	return &CatchClause{Node: nodeAt("CatchClause", sp), Param: param, Body: body}
}

// WithStmt is the with statement, legal only in sloppy scripts.
type WithStmt struct {
	Node
	Object Expr `json:"object"`
	Body   Stmt `json:"body"`
}

func NewWithStmt(sp source.Span, object Expr, body Stmt) *WithStmt {
	return &WithStmt{Node: nodeAt("WithStatement", sp), Object: object, Body: body}
}

func (*WithStmt) stmtNode() {}
