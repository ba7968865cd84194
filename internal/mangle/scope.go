package mangle

import (
	"whittle/internal/ast"
)

type scopeKind uint8

const (
	scopeProgram scopeKind = iota
	scopeFunction
	scopeBlock
	scopeCatch
)

type declKind uint8

const (
	declVar      declKind = iota // var declarations
	declFunc                     // function declarations
	declLexical                  // let, const, class
	declParam                    // function and catch parameters
	declFuncName                 // function or class expression self-name
	declImport                   // import bindings
)

// binding is one declared name with every identifier that must follow a
// rename: declaration sites plus resolved references.
type binding struct {
	name    string
	kind    declKind
	decls   []*ast.Ident
	refs    []*ast.Ident
	kept    bool
	order   int
	newName string
}

// finalName is the name the binding will have in the output.
func (b *binding) finalName() string {
	if b.newName != "" {
		return b.newName
	}
	return b.name
}

// scope is one lexical environment. names maps to the live binding; a
// shadowed binding (a parameter over a function expression name) stays in
// bindings so its declaration site still renames.
type scope struct {
	kind     scopeKind
	parent   *scope
	children []*scope
	names    map[string]*binding
	bindings []*binding

	// filled by resolve and collectKept:
	outerRefs map[*binding]struct{} // enclosing-scope bindings referenced under this scope
	freeRefs  map[string]struct{}   // names referenced under this scope that resolve nowhere
	keptBelow map[string]struct{}   // kept binding names declared under this scope
}

func newScope(kind scopeKind, parent *scope) *scope {
	s := &scope{
		kind:      kind,
		parent:    parent,
		names:     map[string]*binding{},
		outerRefs: map[*binding]struct{}{},
		freeRefs:  map[string]struct{}{},
	}
	if parent != nil {
		parent.children = append(parent.children, s)
	}
	return s
}

type pendingRef struct {
	scope *scope
	id    *ast.Ident
}

// annexBRef records a sloppy-mode block function declaration whose name must
// also pin any same-named var in the enclosing function scope.
type annexBRef struct {
	scope *scope
	name  string
}

type analyzer struct {
	root *scope
	cur  *scope

	refs         []pendingRef
	exportLocals []*ast.Ident
	annexB       []annexBRef

	strict    bool
	exporting bool
	bail      bool
}

// analyze builds the scope tree and records every declaration and
// reference without resolving them; resolution runs once the whole tree is
// known so that hoisted and forward-referenced bindings land correctly.
func analyze(prog *ast.Program) *analyzer {
	a := &analyzer{}
	a.root = newScope(scopeProgram, nil)
	a.cur = a.root
	a.strict = prog.SourceType == ast.SourceTypeModule || hasUseStrict(prog.Body)
	a.stmts(prog.Body)
	return a
}

func hasUseStrict(body []ast.Stmt) bool {
	for _, s := range body {
		es, ok := s.(*ast.ExprStmt)
		if !ok || es.Directive == "" {
			return false
		}
		if es.Directive == "use strict" {
			return true
		}
	}
	return false
}

func (a *analyzer) enter(kind scopeKind) {
	a.cur = newScope(kind, a.cur)
}

func (a *analyzer) leave() {
	a.cur = a.cur.parent
}

// hoistScope is where var declarations land.
func (a *analyzer) hoistScope() *scope {
	s := a.cur
	for s.kind == scopeBlock || s.kind == scopeCatch {
		s = s.parent
	}
	return s
}

// declare binds a name. var declarations hoist past blocks and catch
// clauses; everything else binds in the current scope. Redeclarations of
// var-like names merge into one binding.
func (a *analyzer) declare(id *ast.Ident, kind declKind) {
	if id == nil {
		return
	}
	target := a.cur
	pinned := false
	if kind == declVar {
		for target.kind == scopeBlock || target.kind == scopeCatch {
			if target.kind == scopeCatch {
				if b, ok := target.names[id.Name]; ok {
					// A var sharing its catch parameter's name interacts
					// with it through the clause; pin both names.
					b.kept = true
					pinned = true
				}
			}
			target = target.parent
		}
	}

	if prev, ok := target.names[id.Name]; ok && kind != declFuncName && prev.kind != declFuncName {
		prev.decls = append(prev.decls, id)
		if pinned || (a.exporting && target.kind == scopeProgram) {
			prev.kept = true
		}
		return
	}

	b := &binding{name: id.Name, kind: kind, decls: []*ast.Ident{id}, order: len(target.bindings)}
	b.kept = pinned
	if a.exporting && target.kind == scopeProgram {
		b.kept = true
	}
	if kind == declFunc && !a.strict && target.kind != scopeFunction && target.kind != scopeProgram {
		// Sloppy-mode block function declarations also create a var alias
		// in the enclosing function; renaming either side detaches them.
		b.kept = true
		a.annexB = append(a.annexB, annexBRef{scope: a.hoistScope(), name: id.Name})
	}
	target.names[id.Name] = b
	target.bindings = append(target.bindings, b)
}

func (a *analyzer) ref(id *ast.Ident) {
	a.refs = append(a.refs, pendingRef{scope: a.cur, id: id})
}

func (a *analyzer) stmts(list []ast.Stmt) {
	for _, s := range list {
		a.stmt(s)
	}
}

func (a *analyzer) stmt(s ast.Stmt) {
	switch t := s.(type) {
	case *ast.ExprStmt:
		if t.Directive != "" {
			return
		}
		a.expr(t.Expression)

	case *ast.BlockStmt:
		a.enter(scopeBlock)
		a.stmts(t.Body)
		a.leave()

	case *ast.VarDecl:
		a.varDecl(t)

	case *ast.FuncDecl:
		a.declare(t.ID, declFunc)
		a.function(t.Params, t.Body)

	case *ast.ClassDecl:
		a.declare(t.ID, declLexical)
		a.class(t.SuperClass, t.Body, nil)

	case *ast.IfStmt:
		a.expr(t.Test)
		a.stmt(t.Consequent)
		if t.Alternate != nil {
			a.stmt(t.Alternate)
		}

	case *ast.SwitchStmt:
		a.expr(t.Discriminant)
		a.enter(scopeBlock)
		for _, cs := range t.Cases {
			a.expr(cs.Test)
			a.stmts(cs.Consequent)
		}
		a.leave()

	case *ast.LabeledStmt:
		// Labels live in their own namespace; only the body has names.
		a.stmt(t.Body)

	case *ast.ReturnStmt:
		a.expr(t.Argument)

	case *ast.ThrowStmt:
		a.expr(t.Argument)

	case *ast.WhileStmt:
		a.expr(t.Test)
		a.stmt(t.Body)

	case *ast.DoWhileStmt:
		a.stmt(t.Body)
		a.expr(t.Test)

	case *ast.ForStmt:
		a.enter(scopeBlock)
		a.forHead(t.Init)
		a.expr(t.Test)
		a.expr(t.Update)
		a.stmt(t.Body)
		a.leave()

	case *ast.ForInStmt:
		a.enter(scopeBlock)
		a.forTarget(t.Left)
		a.expr(t.Right)
		a.stmt(t.Body)
		a.leave()

	case *ast.ForOfStmt:
		a.enter(scopeBlock)
		a.forTarget(t.Left)
		a.expr(t.Right)
		a.stmt(t.Body)
		a.leave()

	case *ast.TryStmt:
		a.stmt(t.Block)
		if t.Handler != nil {
			a.enter(scopeCatch)
			if t.Handler.Param != nil {
				a.declarePattern(t.Handler.Param, declParam)
			}
			a.stmt(t.Handler.Body)
			a.leave()
		}
		if t.Finalizer != nil {
			a.stmt(t.Finalizer)
		}

	case *ast.WithStmt:
		a.bail = true
		a.expr(t.Object)
		a.stmt(t.Body)

	case *ast.ImportDecl:
		for _, spec := range t.Specifiers {
			switch sp := spec.(type) {
			case *ast.ImportSpecifier:
				a.declare(sp.Local, declImport)
			case *ast.ImportDefaultSpecifier:
				a.declare(sp.Local, declImport)
			case *ast.ImportNamespaceSpecifier:
				a.declare(sp.Local, declImport)
			}
		}

	case *ast.ExportNamedDecl:
		if t.Declaration != nil {
			a.exporting = true
			a.stmt(t.Declaration)
			a.exporting = false
			return
		}
		if t.Source != nil {
			return
		}
		for _, sp := range t.Specifiers {
			if id, ok := sp.Local.(*ast.Ident); ok {
				a.exportLocals = append(a.exportLocals, id)
			}
		}

	case *ast.ExportDefaultDecl:
		switch d := t.Declaration.(type) {
		case *ast.FuncDecl:
			a.exporting = true
			a.declare(d.ID, declFunc)
			a.exporting = false
			a.function(d.Params, d.Body)
		case *ast.ClassDecl:
			a.exporting = true
			a.declare(d.ID, declLexical)
			a.exporting = false
			a.class(d.SuperClass, d.Body, nil)
		default:
			a.expr(t.Declaration)
		}
	}
}

func (a *analyzer) varDecl(t *ast.VarDecl) {
	kind := declLexical
	if t.Kind == ast.DeclVar {
		kind = declVar
	}
	for _, d := range t.Declarations {
		a.declarePattern(d.ID, kind)
		a.expr(d.Init)
	}
}

func (a *analyzer) forHead(init ast.Expr) {
	if vd, ok := init.(*ast.VarDecl); ok {
		a.varDecl(vd)
		return
	}
	a.expr(init)
}

func (a *analyzer) forTarget(left ast.Expr) {
	if vd, ok := left.(*ast.VarDecl); ok {
		a.varDecl(vd)
		return
	}
	if p, ok := left.(ast.Pattern); ok {
		a.assignTarget(p)
		return
	}
	a.expr(left)
}

// declarePattern binds every name a binding pattern introduces; default
// values and computed keys inside it are ordinary references.
func (a *analyzer) declarePattern(p ast.Pattern, kind declKind) {
	switch t := p.(type) {
	case *ast.Ident:
		a.declare(t, kind)
	case *ast.ArrayPattern:
		for _, e := range t.Elements {
			if e != nil {
				a.declarePattern(e, kind)
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range t.Properties {
			switch m := prop.(type) {
			case *ast.Property:
				if m.Computed {
					a.expr(m.Key)
				}
				if v, ok := m.Value.(ast.Pattern); ok {
					a.declarePattern(v, kind)
				}
			case *ast.RestElement:
				a.declarePattern(m.Argument, kind)
			}
		}
	case *ast.AssignPattern:
		a.declarePattern(t.Left, kind)
		a.expr(t.Right)
	case *ast.RestElement:
		a.declarePattern(t.Argument, kind)
	}
}

// assignTarget walks a destructuring assignment target, where identifiers
// are references to existing bindings rather than declarations.
func (a *analyzer) assignTarget(p ast.Pattern) {
	switch t := p.(type) {
	case *ast.Ident:
		a.ref(t)
	case *ast.MemberExpr:
		a.expr(t)
	case *ast.ArrayPattern:
		for _, e := range t.Elements {
			if e != nil {
				a.assignTarget(e)
			}
		}
	case *ast.ObjectPattern:
		for _, prop := range t.Properties {
			switch m := prop.(type) {
			case *ast.Property:
				if m.Computed {
					a.expr(m.Key)
				}
				if v, ok := m.Value.(ast.Pattern); ok {
					a.assignTarget(v)
				} else {
					a.expr(m.Value)
				}
			case *ast.RestElement:
				a.assignTarget(m.Argument)
			}
		}
	case *ast.AssignPattern:
		a.assignTarget(t.Left)
		a.expr(t.Right)
	case *ast.RestElement:
		a.assignTarget(t.Argument)
	}
}

func (a *analyzer) function(params []ast.Pattern, body *ast.BlockStmt) {
	outerStrict := a.strict
	if !a.strict && hasUseStrict(body.Body) {
		a.strict = true
	}
	a.enter(scopeFunction)
	for _, p := range params {
		a.declarePattern(p, declParam)
	}
	a.stmts(body.Body)
	a.leave()
	a.strict = outerStrict
}

// funcExpr handles function expressions, whose optional name is visible
// only inside the function and is shadowed by a same-named parameter.
func (a *analyzer) funcExpr(t *ast.FuncExpr) {
	outerStrict := a.strict
	if !a.strict && hasUseStrict(t.Body.Body) {
		a.strict = true
	}
	a.enter(scopeFunction)
	if t.ID != nil {
		a.declare(t.ID, declFuncName)
	}
	for _, p := range t.Params {
		a.declarePattern(p, declParam)
	}
	a.stmts(t.Body.Body)
	a.leave()
	a.strict = outerStrict
}

func (a *analyzer) arrow(t *ast.ArrowFuncExpr) {
	outerStrict := a.strict
	if b := t.BlockBody(); b != nil && !a.strict && hasUseStrict(b.Body) {
		a.strict = true
	}
	a.enter(scopeFunction)
	for _, p := range t.Params {
		a.declarePattern(p, declParam)
	}
	if b := t.BlockBody(); b != nil {
		a.stmts(b.Body)
	} else {
		a.expr(t.Body)
	}
	a.leave()
	a.strict = outerStrict
}

// class walks a class body. A class expression's name binds in a scope of
// its own wrapped around the body; class bodies are always strict.
func (a *analyzer) class(superClass ast.Expr, body *ast.ClassBody, name *ast.Ident) {
	outerStrict := a.strict
	a.strict = true
	a.enter(scopeBlock)
	if name != nil {
		a.declare(name, declFuncName)
	}
	a.expr(superClass)
	for _, el := range body.Body {
		switch m := el.(type) {
		case *ast.MethodDef:
			if m.Computed {
				a.expr(m.Key)
			}
			a.funcExpr(m.Value)
		case *ast.PropertyDef:
			if m.Computed {
				a.expr(m.Key)
			}
			a.expr(m.Value)
		case *ast.StaticBlock:
			a.enter(scopeFunction)
			a.stmts(m.Body)
			a.leave()
		}
	}
	a.leave()
	a.strict = outerStrict
}

func (a *analyzer) expr(e ast.Expr) {
	if e == nil {
		return
	}
	switch t := e.(type) {
	case *ast.Ident:
		a.ref(t)

	case *ast.Literal, *ast.ThisExpr, *ast.Super, *ast.PrivateIdent, *ast.MetaProperty:

	case *ast.ArrayExpr:
		for _, el := range t.Elements {
			a.expr(el)
		}

	case *ast.ObjectExpr:
		for _, p := range t.Properties {
			a.expr(p)
		}

	case *ast.Property:
		if t.Computed {
			a.expr(t.Key)
		}
		a.expr(t.Value)

	case *ast.SpreadElement:
		a.expr(t.Argument)

	case *ast.TemplateLiteral:
		for _, x := range t.Expressions {
			a.expr(x)
		}

	case *ast.TaggedTemplateExpr:
		a.expr(t.Tag)
		a.expr(t.Quasi)

	case *ast.MemberExpr:
		a.expr(t.Object)
		if t.Computed {
			a.expr(t.Property)
		}

	case *ast.CallExpr:
		if id, ok := t.Callee.(*ast.Ident); ok && id.Name == "eval" {
			// A direct eval can read any local name at runtime.
			a.bail = true
		}
		a.expr(t.Callee)
		for _, arg := range t.Arguments {
			a.expr(arg)
		}

	case *ast.NewExpr:
		a.expr(t.Callee)
		for _, arg := range t.Arguments {
			a.expr(arg)
		}

	case *ast.ChainExpr:
		a.expr(t.Expression)

	case *ast.ImportExpr:
		a.expr(t.Source)
		a.expr(t.Options)

	case *ast.UnaryExpr:
		a.expr(t.Argument)

	case *ast.UpdateExpr:
		a.expr(t.Argument)

	case *ast.BinaryExpr:
		a.expr(t.Left)
		a.expr(t.Right)

	case *ast.LogicalExpr:
		a.expr(t.Left)
		a.expr(t.Right)

	case *ast.AssignExpr:
		if p, ok := t.Left.(ast.Pattern); ok {
			a.assignTarget(p)
		} else {
			a.expr(t.Left)
		}
		a.expr(t.Right)

	case *ast.CondExpr:
		a.expr(t.Test)
		a.expr(t.Consequent)
		a.expr(t.Alternate)

	case *ast.SequenceExpr:
		for _, x := range t.Expressions {
			a.expr(x)
		}

	case *ast.YieldExpr:
		a.expr(t.Argument)

	case *ast.AwaitExpr:
		a.expr(t.Argument)

	case *ast.FuncExpr:
		a.funcExpr(t)

	case *ast.ArrowFuncExpr:
		a.arrow(t)

	case *ast.ClassExpr:
		a.class(t.SuperClass, t.Body, t.ID)
	}
}

// resolve binds every recorded reference to the nearest declaration up the
// scope chain and accumulates, per scope, the outside names its subtree
// observes. Unresolved names are globals and stay fixed.
func (a *analyzer) resolve() {
	for _, r := range a.refs {
		def := r.scope
		var b *binding
		for def != nil {
			if found, ok := def.names[r.id.Name]; ok {
				b = found
				break
			}
			def = def.parent
		}
		if b == nil {
			for s := r.scope; s != nil; s = s.parent {
				s.freeRefs[r.id.Name] = struct{}{}
			}
			continue
		}
		b.refs = append(b.refs, r.id)
		for s := r.scope; s != def; s = s.parent {
			s.outerRefs[b] = struct{}{}
		}
	}

	for _, id := range a.exportLocals {
		if b, ok := a.root.names[id.Name]; ok {
			b.kept = true
		}
	}
	for _, ab := range a.annexB {
		if b, ok := ab.scope.names[ab.name]; ok {
			b.kept = true
		}
	}
}

// collectKept fills keptBelow bottom-up: the kept binding names declared
// anywhere under each scope. New names must not shadow any of them.
func collectKept(s *scope) map[string]struct{} {
	s.keptBelow = map[string]struct{}{}
	for _, b := range s.bindings {
		if b.kept {
			s.keptBelow[b.name] = struct{}{}
		}
	}
	for _, c := range s.children {
		for name := range collectKept(c) {
			s.keptBelow[name] = struct{}{}
		}
	}
	return s.keptBelow
}
