// Package compress implements the tree-shrinking passes that run before
// mangling. Transformations:
//  1. Remove debugger statements and statement-level console.* calls
//  2. Fold literal operands through operators and branches
//  3. Prune if/else arms with literal conditions
//  4. Remove statements after a terminator, keeping hoisted declarations
//  5. Elide unused catch bindings when the target allows it
//
// All passes mutate the tree in place and preserve evaluation order and
// hoisting semantics.
package compress

import (
	"whittle/internal/ast"
	"whittle/internal/es"
)

// Options selects which rewrites run.
type Options struct {
	// Target bounds the syntax the rewrites may produce.
	Target es.Target
	// DropConsole removes statement-level console.* calls.
	DropConsole bool
	// DropDebugger removes debugger statements.
	DropDebugger bool
}

// Default is the configuration used when compression is enabled without
// detail settings.
func Default() Options {
	return Options{Target: es.Next, DropConsole: false, DropDebugger: true}
}

// Compress rewrites the program in place.
func Compress(prog *ast.Program, opts Options) {
	c := &compressor{opts: opts}
	prog.Body = c.stmts(prog.Body)
}

type compressor struct {
	opts Options
}

// stmts rewrites a statement list. After a terminating statement only
// declarations that hoist out of the dead region survive.
func (c *compressor) stmts(list []ast.Stmt) []ast.Stmt {
	out := list[:0]
	terminated := false
	for _, s := range list {
		s, keep := c.stmt(s)
		if !keep {
			continue
		}
		if _, empty := s.(*ast.EmptyStmt); empty {
			continue
		}
		if terminated {
			if h := hoistedPart(s); h != nil {
				out = append(out, h)
			}
			continue
		}
		out = append(out, s)
		if terminates(s) {
			terminated = true
		}
	}
	if out == nil {
		out = []ast.Stmt{}
	}
	return out
}

// stmt rewrites one statement; the bool is false when the statement should
// be removed from its list.
func (c *compressor) stmt(s ast.Stmt) (ast.Stmt, bool) {
	switch t := s.(type) {
	case *ast.DebuggerStmt:
		if c.opts.DropDebugger {
			return nil, false
		}

	case *ast.ExprStmt:
		if t.Directive != "" {
			return t, true
		}
		t.Expression = c.expr(t.Expression)
		if c.opts.DropConsole && isConsoleCall(t.Expression) {
			return nil, false
		}

	case *ast.BlockStmt:
		t.Body = c.stmts(t.Body)

	case *ast.VarDecl:
		for _, d := range t.Declarations {
			c.pattern(d.ID)
			d.Init = c.expr(d.Init)
		}

	case *ast.FuncDecl:
		c.funcBody(t.Params, t.Body)

	case *ast.ClassDecl:
		t.SuperClass = c.expr(t.SuperClass)
		c.classBody(t.Body)

	case *ast.IfStmt:
		return c.ifStmt(t)

	case *ast.SwitchStmt:
		t.Discriminant = c.expr(t.Discriminant)
		for _, cs := range t.Cases {
			cs.Test = c.expr(cs.Test)
			cs.Consequent = c.stmts(cs.Consequent)
		}

	case *ast.LabeledStmt:
		body, keep := c.stmt(t.Body)
		if !keep {
			return nil, false
		}
		t.Body = body

	case *ast.WhileStmt:
		t.Test = c.expr(t.Test)
		t.Body = c.loopBody(t.Body)

	case *ast.DoWhileStmt:
		t.Body = c.loopBody(t.Body)
		t.Test = c.expr(t.Test)

	case *ast.ForStmt:
		t.Init = c.expr(t.Init)
		t.Test = c.expr(t.Test)
		t.Update = c.expr(t.Update)
		t.Body = c.loopBody(t.Body)

	case *ast.ForInStmt:
		t.Right = c.expr(t.Right)
		t.Body = c.loopBody(t.Body)

	case *ast.ForOfStmt:
		t.Right = c.expr(t.Right)
		t.Body = c.loopBody(t.Body)

	case *ast.ReturnStmt:
		t.Argument = c.expr(t.Argument)

	case *ast.ThrowStmt:
		t.Argument = c.expr(t.Argument)

	case *ast.TryStmt:
		t.Block.Body = c.stmts(t.Block.Body)
		if t.Handler != nil {
			t.Handler.Body.Body = c.stmts(t.Handler.Body.Body)
			c.elideCatchBinding(t.Handler)
		}
		if t.Finalizer != nil {
			t.Finalizer.Body = c.stmts(t.Finalizer.Body)
		}

	case *ast.WithStmt:
		t.Object = c.expr(t.Object)
		if body, keep := c.stmt(t.Body); keep {
			t.Body = body
		} else {
			t.Body = ast.NewEmptyStmt(t.Body.Span())
		}

	case *ast.ExportNamedDecl:
		if t.Declaration != nil {
			decl, _ := c.stmt(t.Declaration)
			t.Declaration = decl
		}

	case *ast.ExportDefaultDecl:
		switch d := t.Declaration.(type) {
		case *ast.FuncDecl:
			c.funcBody(d.Params, d.Body)
		case *ast.ClassDecl:
			d.SuperClass = c.expr(d.SuperClass)
			c.classBody(d.Body)
		default:
			t.Declaration = c.expr(t.Declaration)
		}
	}

	return s, true
}

// loopBody rewrites a loop body slot, which must stay non-nil.
func (c *compressor) loopBody(body ast.Stmt) ast.Stmt {
	s, keep := c.stmt(body)
	if !keep {
		return ast.NewEmptyStmt(body.Span())
	}
	return s
}

// ifStmt folds a literal condition down to the taken branch. The untaken
// branch is only removable when nothing hoists out of it.
func (c *compressor) ifStmt(t *ast.IfStmt) (ast.Stmt, bool) {
	t.Test = c.expr(t.Test)

	truth, known := literalTruth(t.Test)
	if !known {
		if cons, keep := c.stmt(t.Consequent); keep {
			t.Consequent = cons
		} else {
			t.Consequent = ast.NewEmptyStmt(t.Consequent.Span())
		}
		if t.Alternate != nil {
			if alt, keep := c.stmt(t.Alternate); keep {
				t.Alternate = alt
			} else {
				t.Alternate = nil
			}
		}
		return t, true
	}

	taken, dropped := t.Consequent, t.Alternate
	if !truth {
		taken, dropped = t.Alternate, t.Consequent
	}

	if dropped != nil && hoistsDecls(dropped) {
		// The dead branch declares names visible outside it; keep the
		// statement as written rather than lose them.
		cons, keep := c.stmt(t.Consequent)
		if !keep {
			cons = ast.NewEmptyStmt(t.Consequent.Span())
		}
		t.Consequent = cons
		if t.Alternate != nil {
			if alt, keep := c.stmt(t.Alternate); keep {
				t.Alternate = alt
			} else {
				t.Alternate = nil
			}
		}
		return t, true
	}

	if taken == nil {
		return nil, false
	}
	return c.stmt(taken)
}

// funcBody rewrites parameter defaults and the body statement list.
func (c *compressor) funcBody(params []ast.Pattern, body *ast.BlockStmt) {
	for _, p := range params {
		c.pattern(p)
	}
	body.Body = c.stmts(body.Body)
}

func (c *compressor) classBody(body *ast.ClassBody) {
	for _, m := range body.Body {
		switch el := m.(type) {
		case *ast.MethodDef:
			el.Key = c.expr(el.Key)
			c.funcBody(el.Value.Params, el.Value.Body)
		case *ast.PropertyDef:
			el.Key = c.expr(el.Key)
			el.Value = c.expr(el.Value)
		case *ast.StaticBlock:
			el.Body = c.stmts(el.Body)
		}
	}
}

// pattern folds default values inside binding patterns.
func (c *compressor) pattern(p ast.Pattern) {
	switch t := p.(type) {
	case *ast.ArrayPattern:
		for _, e := range t.Elements {
			if e != nil {
				c.pattern(e)
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range t.Properties {
			switch m := prop.(type) {
			case *ast.Property:
				if v, ok := m.Value.(ast.Pattern); ok {
					c.pattern(v)
				}
			case *ast.RestElement:
				c.pattern(m.Argument)
			}
		}
	case *ast.AssignPattern:
		c.pattern(t.Left)
		t.Right = c.expr(t.Right)
	case *ast.RestElement:
		c.pattern(t.Argument)
	}
}

// elideCatchBinding removes an identifier catch binding that the handler
// never mentions. Optional catch binding needs es2019.
func (c *compressor) elideCatchBinding(h *ast.CatchClause) {
	if !c.opts.Target.AtLeast(es.ES2019) {
		return
	}
	id, ok := h.Param.(*ast.Ident)
	if !ok {
		return
	}
	if referencesName(h.Body, id.Name) {
		return
	}
	h.Param = nil
}

// referencesName reports whether any identifier under root has the name.
// Shadowing declarations count, which errs on the side of keeping bindings.
func referencesName(root ast.Syntax, name string) bool {
	found := false
	ast.Walk(root, func(n ast.Syntax) bool {
		if id, ok := n.(*ast.Ident); ok && id.Name == name {
			found = true
		}
		return !found
	})
	return found
}

// terminates reports whether control never reaches the statement after s.
func terminates(s ast.Stmt) bool {
	switch s.(type) {
	case *ast.ReturnStmt, *ast.ThrowStmt, *ast.BreakStmt, *ast.ContinueStmt:
		return true
	}
	return false
}

// hoistsDecls reports whether s declares names visible outside itself:
// function declarations or var bindings. Nested function scopes are opaque.
func hoistsDecls(s ast.Stmt) bool {
	found := false
	ast.Walk(s, func(n ast.Syntax) bool {
		switch t := n.(type) {
		case *ast.FuncDecl:
			found = true
			return false
		case *ast.VarDecl:
			if t.Kind == ast.DeclVar {
				found = true
			}
			return false
		case *ast.FuncExpr, *ast.ArrowFuncExpr, *ast.ClassExpr, *ast.ClassDecl:
			return false
		}
		return !found
	})
	return found
}

// hoistedPart reduces a dead statement to the declarations that must
// survive it: the whole function declaration, or var names without their
// initializers. Statements with hoisted names buried deeper are kept whole;
// they are unreachable, so keeping them is only a size cost.
func hoistedPart(s ast.Stmt) ast.Stmt {
	switch t := s.(type) {
	case *ast.FuncDecl:
		return t
	case *ast.VarDecl:
		if t.Kind != ast.DeclVar {
			return nil
		}
		var decls []*ast.VarDeclarator
		for _, d := range t.Declarations {
			for _, id := range patternBindings(d.ID) {
				decls = append(decls, ast.NewVarDeclarator(id.Span(), id, nil))
			}
		}
		if len(decls) == 0 {
			return nil
		}
		t.Declarations = decls
		return t
	default:
		if hoistsDecls(s) {
			return s
		}
		return nil
	}
}

// patternBindings collects the identifiers a binding pattern declares.
func patternBindings(p ast.Pattern) []*ast.Ident {
	var out []*ast.Ident
	var walk func(p ast.Pattern)
	walk = func(p ast.Pattern) {
		switch t := p.(type) {
		case *ast.Ident:
			out = append(out, t)
		case *ast.ArrayPattern:
			for _, e := range t.Elements {
				if e != nil {
					walk(e)
				}
			}
		case *ast.ObjectPattern:
			for _, prop := range t.Properties {
				switch m := prop.(type) {
				case *ast.Property:
					if v, ok := m.Value.(ast.Pattern); ok {
						walk(v)
					}
				case *ast.RestElement:
					walk(m.Argument)
				}
			}
		case *ast.AssignPattern:
			walk(t.Left)
		case *ast.RestElement:
			walk(t.Argument)
		}
	}
	walk(p)
	return out
}

// isConsoleCall matches a call whose callee is a member chain rooted at the
// console global, optionally behind ?. links.
func isConsoleCall(e ast.Expr) bool {
	if chain, ok := e.(*ast.ChainExpr); ok {
		e = chain.Expression
	}
	call, ok := e.(*ast.CallExpr)
	if !ok {
		return false
	}
	obj := call.Callee
	for {
		m, ok := obj.(*ast.MemberExpr)
		if !ok {
			break
		}
		obj = m.Object
	}
	id, ok := obj.(*ast.Ident)
	return ok && id.Name == "console"
}
