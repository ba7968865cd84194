package codegen

import (
	"fmt"

	"whittle/internal/ast"
)

func (p *printer) stmt(s ast.Stmt) {
	p.mark(s.Span().Start, "")
	switch t := s.(type) {
	case *ast.ExprStmt:
		if stmtStartsAmbiguously(t.Expression) {
			p.print("(")
			p.expr(t.Expression, lLowest)
			p.print(")")
		} else {
			p.expr(t.Expression, lLowest)
		}
		p.print(";")
	case *ast.BlockStmt:
		p.block(t)
	case *ast.EmptyStmt:
		p.print(";")
	case *ast.DebuggerStmt:
		p.print("debugger;")
	case *ast.ReturnStmt:
		p.word("return")
		if t.Argument != nil {
			p.space()
			p.expr(t.Argument, lLowest)
		}
		p.print(";")
	case *ast.ThrowStmt:
		p.word("throw")
		p.space()
		p.expr(t.Argument, lLowest)
		p.print(";")
	case *ast.IfStmt:
		p.ifStmt(t)
	case *ast.SwitchStmt:
		p.switchStmt(t)
	case *ast.LabeledStmt:
		p.word(t.Label.Name)
		p.print(":")
		p.space()
		p.stmt(t.Body)
	case *ast.BreakStmt:
		p.word("break")
		if t.Label != nil {
			p.print(" ")
			p.print(t.Label.Name)
		}
		p.print(";")
	case *ast.ContinueStmt:
		p.word("continue")
		if t.Label != nil {
			p.print(" ")
			p.print(t.Label.Name)
		}
		p.print(";")
	case *ast.WhileStmt:
		p.word("while")
		p.space()
		p.print("(")
		p.expr(t.Test, lLowest)
		p.print(")")
		p.nested(t.Body)
	case *ast.DoWhileStmt:
		p.word("do")
		if _, ok := t.Body.(*ast.BlockStmt); ok {
			p.space()
		} else {
			p.print(" ")
		}
		p.stmt(t.Body)
		p.space()
		p.word("while")
		p.space()
		p.print("(")
		p.expr(t.Test, lLowest)
		p.print(");")
	case *ast.ForStmt:
		p.forStmt(t)
	case *ast.ForInStmt:
		p.word("for")
		p.space()
		p.print("(")
		p.forHead(t.Left)
		p.word("in")
		p.expr(t.Right, lLowest)
		p.print(")")
		p.nested(t.Body)
	case *ast.ForOfStmt:
		p.word("for")
		if t.Await {
			p.print(" await")
		}
		p.space()
		p.print("(")
		p.forHead(t.Left)
		p.word("of")
		p.expr(t.Right, lAssign)
		p.print(")")
		p.nested(t.Body)
	case *ast.TryStmt:
		p.word("try")
		p.space()
		p.block(t.Block)
		if t.Handler != nil {
			p.space()
			p.word("catch")
			if t.Handler.Param != nil {
				p.space()
				p.print("(")
				p.pattern(t.Handler.Param)
				p.print(")")
			}
			p.space()
			p.block(t.Handler.Body)
		}
		if t.Finalizer != nil {
			p.space()
			p.word("finally")
			p.space()
			p.block(t.Finalizer)
		}
	case *ast.WithStmt:
		p.word("with")
		p.space()
		p.print("(")
		p.expr(t.Object, lLowest)
		p.print(")")
		p.nested(t.Body)
	case *ast.VarDecl:
		p.varDecl(t)
		p.print(";")
	case *ast.FuncDecl:
		p.funcDecl(t)
	case *ast.ClassDecl:
		p.classHead(t.ID, t.SuperClass)
		p.classBody(t.Body)
	case *ast.ImportDecl:
		p.importDecl(t)
	case *ast.ExportNamedDecl:
		p.exportNamed(t)
	case *ast.ExportDefaultDecl:
		p.exportDefault(t)
	case *ast.ExportAllDecl:
		p.exportAll(t)
	default:
		panic(fmt.Sprintf("codegen: unhandled statement %T", s))
	}
}

// block prints { stmts }.
func (p *printer) block(b *ast.BlockStmt) {
	if len(b.Body) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.indent++
	for _, s := range b.Body {
		p.nl()
		p.stmt(s)
	}
	p.indent--
	p.nl()
	p.print("}")
}

// nested prints the body of a control statement: blocks inline, single
// statements indented on their own line.
func (p *printer) nested(s ast.Stmt) {
	if b, ok := s.(*ast.BlockStmt); ok {
		p.space()
		p.block(b)
		return
	}
	p.indent++
	p.nl()
	p.stmt(s)
	p.indent--
}

func (p *printer) ifStmt(t *ast.IfStmt) {
	p.word("if")
	p.space()
	p.print("(")
	p.expr(t.Test, lLowest)
	p.print(")")
	cons := t.Consequent
	if t.Alternate != nil {
		// Force braces around the consequent so a nested if cannot
		// capture this statement's else.
		if _, ok := cons.(*ast.BlockStmt); !ok {
			cons = ast.NewBlockStmt(cons.Span(), []ast.Stmt{cons})
		}
	}
	p.nested(cons)
	if t.Alternate != nil {
		p.space()
		p.word("else")
		if alt, ok := t.Alternate.(*ast.IfStmt); ok {
			p.print(" ")
			p.ifStmt(alt)
			return
		}
		p.nested(t.Alternate)
	}
}

func (p *printer) switchStmt(t *ast.SwitchStmt) {
	p.word("switch")
	p.space()
	p.print("(")
	p.expr(t.Discriminant, lLowest)
	p.print(")")
	p.space()
	p.print("{")
	p.indent++
	for _, c := range t.Cases {
		p.nl()
		if c.Test != nil {
			p.word("case")
			p.print(" ")
			p.expr(c.Test, lLowest)
			p.print(":")
		} else {
			p.print("default:")
		}
		p.indent++
		for _, s := range c.Consequent {
			p.nl()
			p.stmt(s)
		}
		p.indent--
	}
	p.indent--
	p.nl()
	p.print("}")
}

func (p *printer) forStmt(t *ast.ForStmt) {
	p.word("for")
	p.space()
	p.print("(")
	if t.Init != nil {
		p.forHead(t.Init)
	}
	p.print(";")
	if t.Test != nil {
		p.space()
		p.expr(t.Test, lLowest)
	}
	p.print(";")
	if t.Update != nil {
		p.space()
		p.expr(t.Update, lLowest)
	}
	p.print(")")
	p.nested(t.Body)
}

// forHead prints a for-loop head slot: a declaration without its trailing
// semicolon, or a plain expression or pattern.
func (p *printer) forHead(e ast.Expr) {
	switch t := e.(type) {
	case *ast.VarDecl:
		p.varDecl(t)
	default:
		p.expr(e, lLowest)
	}
}

func (p *printer) varDecl(t *ast.VarDecl) {
	p.word(string(t.Kind))
	p.print(" ")
	for i, d := range t.Declarations {
		if i > 0 {
			p.print(",")
			p.space()
		}
		p.pattern(d.ID)
		if d.Init != nil {
			p.space()
			p.print("=")
			p.space()
			p.expr(d.Init, lAssign)
		}
	}
}

func (p *printer) funcDecl(t *ast.FuncDecl) {
	if t.Async {
		p.word("async")
		p.print(" ")
	}
	p.word("function")
	if t.Generator {
		p.print("*")
	}
	if t.ID != nil {
		p.word(t.ID.Name)
	}
	p.params(t.Params)
	p.space()
	p.block(t.Body)
}

func (p *printer) params(params []ast.Pattern) {
	p.print("(")
	for i, param := range params {
		if i > 0 {
			p.print(",")
			p.space()
		}
		p.pattern(param)
	}
	p.print(")")
}

func (p *printer) classHead(id *ast.Ident, superClass ast.Expr) {
	p.word("class")
	if id != nil {
		p.word(id.Name)
	}
	if superClass != nil {
		p.word("extends")
		p.expr(superClass, lCall)
	}
}

func (p *printer) classBody(b *ast.ClassBody) {
	p.space()
	if len(b.Body) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	p.indent++
	for _, el := range b.Body {
		p.nl()
		p.classElement(el)
	}
	p.indent--
	p.nl()
	p.print("}")
}

func (p *printer) classElement(el ast.ClassElement) {
	switch t := el.(type) {
	case *ast.MethodDef:
		if t.Static {
			p.word("static")
			p.print(" ")
		}
		p.methodHead(t.Key, t.Value, string(t.Kind), t.Computed)
		p.params(t.Value.Params)
		p.space()
		p.block(t.Value.Body)
	case *ast.PropertyDef:
		if t.Static {
			p.word("static")
			p.print(" ")
		}
		p.propertyKey(t.Key, t.Computed)
		if t.Value != nil {
			p.space()
			p.print("=")
			p.space()
			p.expr(t.Value, lAssign)
		}
		p.print(";")
	case *ast.StaticBlock:
		p.word("static")
		p.space()
		p.print("{")
		p.indent++
		for _, s := range t.Body {
			p.nl()
			p.stmt(s)
		}
		p.indent--
		p.nl()
		p.print("}")
	default:
		panic(fmt.Sprintf("codegen: unhandled class element %T", el))
	}
}

// methodHead prints the modifiers and key of a method-shaped definition:
// accessor keywords, async/generator markers, then the key itself.
func (p *printer) methodHead(key ast.Expr, fn *ast.FuncExpr, kind string, computed bool) {
	switch kind {
	case "get", "set":
		p.word(kind)
		p.print(" ")
	default:
		if fn.Async {
			p.word("async")
			p.print(" ")
		}
		if fn.Generator {
			p.print("*")
		}
	}
	p.propertyKey(key, computed)
}

func (p *printer) propertyKey(key ast.Expr, computed bool) {
	if computed {
		p.print("[")
		p.expr(key, lAssign)
		p.print("]")
		return
	}
	switch k := key.(type) {
	case *ast.Ident:
		p.word(k.Name)
	case *ast.PrivateIdent:
		p.word("#" + k.Name)
	default:
		p.expr(key, lLowest)
	}
}

func (p *printer) importDecl(t *ast.ImportDecl) {
	p.word("import")
	if len(t.Specifiers) == 0 {
		p.space()
		p.literal(t.Source)
		p.print(";")
		return
	}
	wroteAny := false
	needsBrace := false
	var named []*ast.ImportSpecifier
	for _, spec := range t.Specifiers {
		switch s := spec.(type) {
		case *ast.ImportDefaultSpecifier:
			p.print(" ")
			p.print(s.Local.Name)
			wroteAny = true
		case *ast.ImportNamespaceSpecifier:
			if wroteAny {
				p.print(",")
			}
			p.space()
			p.print("*")
			p.space()
			p.word("as")
			p.word(s.Local.Name)
			wroteAny = true
		case *ast.ImportSpecifier:
			named = append(named, s)
			needsBrace = true
		}
	}
	if needsBrace {
		if wroteAny {
			p.print(",")
		}
		p.space()
		p.print("{")
		for i, s := range named {
			if i > 0 {
				p.print(",")
				p.space()
			}
			p.moduleName(s.Imported)
			if local, ok := s.Imported.(*ast.Ident); !ok || local.Name != s.Local.Name {
				p.word("as")
				p.word(s.Local.Name)
			}
		}
		p.print("}")
	}
	p.space()
	p.word("from")
	p.space()
	p.literal(t.Source)
	p.print(";")
}

func (p *printer) exportNamed(t *ast.ExportNamedDecl) {
	p.word("export")
	if t.Declaration != nil {
		p.print(" ")
		p.stmt(t.Declaration)
		return
	}
	p.space()
	p.print("{")
	for i, s := range t.Specifiers {
		if i > 0 {
			p.print(",")
			p.space()
		}
		p.moduleName(s.Local)
		sameName := false
		if local, ok := s.Local.(*ast.Ident); ok {
			if exported, ok := s.Exported.(*ast.Ident); ok && local.Name == exported.Name {
				sameName = true
			}
		}
		if !sameName {
			p.word("as")
			p.moduleName(s.Exported)
		}
	}
	p.print("}")
	if t.Source != nil {
		p.space()
		p.word("from")
		p.space()
		p.literal(t.Source)
	}
	p.print(";")
}

func (p *printer) exportDefault(t *ast.ExportDefaultDecl) {
	p.word("export")
	p.print(" ")
	p.word("default")
	p.print(" ")
	switch d := t.Declaration.(type) {
	case *ast.FuncDecl:
		p.funcDecl(d)
	case *ast.ClassDecl:
		p.classHead(d.ID, d.SuperClass)
		p.classBody(d.Body)
	default:
		// A leading function or class keyword would parse as a
		// declaration form, so expression forms get parentheses.
		if stmtStartsAmbiguously(t.Declaration) {
			p.print("(")
			p.expr(t.Declaration, lAssign)
			p.print(")")
		} else {
			p.expr(t.Declaration, lAssign)
		}
		p.print(";")
	}
}

func (p *printer) exportAll(t *ast.ExportAllDecl) {
	p.word("export")
	p.space()
	p.print("*")
	if t.Exported != nil {
		p.space()
		p.word("as")
		p.moduleName(t.Exported)
	}
	p.space()
	p.word("from")
	p.space()
	p.literal(t.Source)
	p.print(";")
}

// moduleName prints an import/export name, which is an identifier or, in
// re-export forms, a string literal.
func (p *printer) moduleName(e ast.Expr) {
	switch n := e.(type) {
	case *ast.Ident:
		p.word(n.Name)
	case *ast.Literal:
		p.literal(n)
	default:
		p.expr(e, lLowest)
	}
}

// stmtStartsAmbiguously reports whether the expression's leftmost token
// would be misread at statement start: an object literal reads as a block,
// function and class keywords read as declarations.
func stmtStartsAmbiguously(e ast.Expr) bool {
	for {
		switch t := e.(type) {
		case *ast.ObjectExpr, *ast.ObjectPattern, *ast.FuncExpr, *ast.ClassExpr:
			return true
		case *ast.BinaryExpr:
			e = t.Left
		case *ast.LogicalExpr:
			e = t.Left
		case *ast.AssignExpr:
			e = t.Left
		case *ast.CondExpr:
			e = t.Test
		case *ast.SequenceExpr:
			if len(t.Expressions) == 0 {
				return false
			}
			e = t.Expressions[0]
		case *ast.CallExpr:
			e = t.Callee
		case *ast.MemberExpr:
			e = t.Object
		case *ast.TaggedTemplateExpr:
			e = t.Tag
		case *ast.UpdateExpr:
			if t.Prefix {
				return false
			}
			e = t.Argument
		case *ast.ChainExpr:
			e = t.Expression
		default:
			return false
		}
	}
}
