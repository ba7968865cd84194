package ast

import "whittle/internal/source"

// Syntax is satisfied by every node pointer through the embedded Node.
type Syntax interface {
	Span() source.Span
}

// Walk traverses the tree under root in source order, calling visit for each
// node before its children. Returning false skips the node's children. Nil
// slots (array holes, absent else branches) are never visited.
func Walk(root Syntax, visit func(Syntax) bool) {
	if root == nil || !visit(root) {
		return
	}

	switch n := root.(type) {
	case *Program:
		if n.Hashbang != nil {
			Walk(n.Hashbang, visit)
		}
		for _, s := range n.Body {
			Walk(s, visit)
		}

	// Leaves.
	case *Hashbang, *Ident, *PrivateIdent, *Literal, *ThisExpr, *Super,
		*TemplateElement, *EmptyStmt, *DebuggerStmt:

	case *MetaProperty:
		Walk(n.Meta, visit)
		Walk(n.Property, visit)

	case *ArrayExpr:
		for _, e := range n.Elements {
			walkExpr(e, visit)
		}

	case *ObjectExpr:
		for _, e := range n.Properties {
			walkExpr(e, visit)
		}

	case *Property:
		walkExpr(n.Key, visit)
		walkExpr(n.Value, visit)

	case *SpreadElement:
		walkExpr(n.Argument, visit)

	case *TemplateLiteral:
		// Interleave quasis and substitutions to keep source order.
		for i, q := range n.Quasis {
			Walk(q, visit)
			if i < len(n.Expressions) {
				walkExpr(n.Expressions[i], visit)
			}
		}

	case *TaggedTemplateExpr:
		walkExpr(n.Tag, visit)
		Walk(n.Quasi, visit)

	case *MemberExpr:
		walkExpr(n.Object, visit)
		walkExpr(n.Property, visit)

	case *CallExpr:
		walkExpr(n.Callee, visit)
		for _, a := range n.Arguments {
			walkExpr(a, visit)
		}

	case *NewExpr:
		walkExpr(n.Callee, visit)
		for _, a := range n.Arguments {
			walkExpr(a, visit)
		}

	case *ChainExpr:
		walkExpr(n.Expression, visit)

	case *ImportExpr:
		walkExpr(n.Source, visit)
		walkExpr(n.Options, visit)

	case *UnaryExpr:
		walkExpr(n.Argument, visit)

	case *UpdateExpr:
		walkExpr(n.Argument, visit)

	case *BinaryExpr:
		walkExpr(n.Left, visit)
		walkExpr(n.Right, visit)

	case *LogicalExpr:
		walkExpr(n.Left, visit)
		walkExpr(n.Right, visit)

	case *AssignExpr:
		walkExpr(n.Left, visit)
		walkExpr(n.Right, visit)

	case *CondExpr:
		walkExpr(n.Test, visit)
		walkExpr(n.Consequent, visit)
		walkExpr(n.Alternate, visit)

	case *SequenceExpr:
		for _, e := range n.Expressions {
			walkExpr(e, visit)
		}

	case *YieldExpr:
		walkExpr(n.Argument, visit)

	case *AwaitExpr:
		walkExpr(n.Argument, visit)

	case *ArrowFuncExpr:
		for _, p := range n.Params {
			walkPattern(p, visit)
		}
		walkExpr(n.Body, visit)

	case *FuncExpr:
		if n.ID != nil {
			Walk(n.ID, visit)
		}
		for _, p := range n.Params {
			walkPattern(p, visit)
		}
		Walk(n.Body, visit)

	case *FuncDecl:
		if n.ID != nil {
			Walk(n.ID, visit)
		}
		for _, p := range n.Params {
			walkPattern(p, visit)
		}
		Walk(n.Body, visit)

	case *ClassExpr:
		if n.ID != nil {
			Walk(n.ID, visit)
		}
		walkExpr(n.SuperClass, visit)
		Walk(n.Body, visit)

	case *ClassDecl:
		if n.ID != nil {
			Walk(n.ID, visit)
		}
		walkExpr(n.SuperClass, visit)
		Walk(n.Body, visit)

	case *ClassBody:
		for _, m := range n.Body {
			if m != nil {
				Walk(m, visit)
			}
		}

	case *MethodDef:
		walkExpr(n.Key, visit)
		Walk(n.Value, visit)

	case *PropertyDef:
		walkExpr(n.Key, visit)
		walkExpr(n.Value, visit)

	case *StaticBlock:
		for _, s := range n.Body {
			walkStmt(s, visit)
		}

	case *VarDecl:
		for _, d := range n.Declarations {
			Walk(d, visit)
		}

	case *VarDeclarator:
		walkPattern(n.ID, visit)
		walkExpr(n.Init, visit)

	case *ArrayPattern:
		for _, e := range n.Elements {
			walkPattern(e, visit)
		}

	case *ObjectPattern:
		for _, e := range n.Properties {
			walkExpr(e, visit)
		}

	case *AssignPattern:
		walkPattern(n.Left, visit)
		walkExpr(n.Right, visit)

	case *RestElement:
		walkPattern(n.Argument, visit)

	case *ExprStmt:
		walkExpr(n.Expression, visit)

	case *BlockStmt:
		for _, s := range n.Body {
			walkStmt(s, visit)
		}

	case *ReturnStmt:
		walkExpr(n.Argument, visit)

	case *IfStmt:
		walkExpr(n.Test, visit)
		walkStmt(n.Consequent, visit)
		walkStmt(n.Alternate, visit)

	case *SwitchStmt:
		walkExpr(n.Discriminant, visit)
		for _, c := range n.Cases {
			Walk(c, visit)
		}

	case *SwitchCase:
		walkExpr(n.Test, visit)
		for _, s := range n.Consequent {
			walkStmt(s, visit)
		}

	case *LabeledStmt:
		Walk(n.Label, visit)
		walkStmt(n.Body, visit)

	case *BreakStmt:
		if n.Label != nil {
			Walk(n.Label, visit)
		}

	case *ContinueStmt:
		if n.Label != nil {
			Walk(n.Label, visit)
		}

	case *WhileStmt:
		walkExpr(n.Test, visit)
		walkStmt(n.Body, visit)

	case *DoWhileStmt:
		walkStmt(n.Body, visit)
		walkExpr(n.Test, visit)

	case *ForStmt:
		walkExpr(n.Init, visit)
		walkExpr(n.Test, visit)
		walkExpr(n.Update, visit)
		walkStmt(n.Body, visit)

	case *ForInStmt:
		walkExpr(n.Left, visit)
		walkExpr(n.Right, visit)
		walkStmt(n.Body, visit)

	case *ForOfStmt:
		walkExpr(n.Left, visit)
		walkExpr(n.Right, visit)
		walkStmt(n.Body, visit)

	case *ThrowStmt:
		walkExpr(n.Argument, visit)

	case *TryStmt:
		Walk(n.Block, visit)
		if n.Handler != nil {
			Walk(n.Handler, visit)
		}
		if n.Finalizer != nil {
			Walk(n.Finalizer, visit)
		}

	case *CatchClause:
		walkPattern(n.Param, visit)
		Walk(n.Body, visit)

	case *WithStmt:
		walkExpr(n.Object, visit)
		walkStmt(n.Body, visit)

	case *ImportDecl:
		for _, s := range n.Specifiers {
			if s != nil {
				Walk(s, visit)
			}
		}
		if n.Source != nil {
			Walk(n.Source, visit)
		}
		for _, a := range n.Attributes {
			Walk(a, visit)
		}

	case *ImportAttribute:
		walkExpr(n.Key, visit)
		if n.Value != nil {
			Walk(n.Value, visit)
		}

	case *ImportSpecifier:
		walkExpr(n.Imported, visit)
		Walk(n.Local, visit)

	case *ImportDefaultSpecifier:
		Walk(n.Local, visit)

	case *ImportNamespaceSpecifier:
		Walk(n.Local, visit)

	case *ExportNamedDecl:
		walkStmt(n.Declaration, visit)
		for _, s := range n.Specifiers {
			Walk(s, visit)
		}
		if n.Source != nil {
			Walk(n.Source, visit)
		}

	case *ExportSpecifier:
		walkExpr(n.Local, visit)
		walkExpr(n.Exported, visit)

	case *ExportDefaultDecl:
		walkExpr(n.Declaration, visit)

	case *ExportAllDecl:
		walkExpr(n.Exported, visit)
		if n.Source != nil {
			Walk(n.Source, visit)
		}
	}
}

func walkExpr(e Expr, visit func(Syntax) bool) {
	if e != nil {
		Walk(e, visit)
	}
}

func walkStmt(s Stmt, visit func(Syntax) bool) {
	if s != nil {
		Walk(s, visit)
	}
}

func walkPattern(p Pattern, visit func(Syntax) bool) {
	if p != nil {
		Walk(p, visit)
	}
}
