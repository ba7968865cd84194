package compress_test

import (
	"testing"

	"whittle/internal/ast"
	"whittle/internal/compress"
	"whittle/internal/diag"
	"whittle/internal/es"
	"whittle/internal/parser"
	"whittle/internal/source"
)

func parse(t *testing.T, src string) *ast.Program {
	t.Helper()
	file := source.NewFile("test.js", []byte(src))
	bag := diag.NewBag(16)
	res := parser.Parse(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("parse %q: %v", src, bag.Items())
	}
	return res.Program
}

func run(t *testing.T, src string, opts compress.Options) *ast.Program {
	t.Helper()
	prog := parse(t, src)
	compress.Compress(prog, opts)
	return prog
}

// firstExpr digs the expression out of the program's first statement.
func firstExpr(t *testing.T, prog *ast.Program) ast.Expr {
	t.Helper()
	if len(prog.Body) == 0 {
		t.Fatal("empty program body")
	}
	stmt, ok := prog.Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("first statement is %T", prog.Body[0])
	}
	return stmt.Expression
}

// foldedValue extracts the literal assigned in `x = <expr>;`.
func foldedValue(t *testing.T, src string) any {
	t.Helper()
	prog := run(t, src, compress.Default())
	assign := firstExpr(t, prog).(*ast.AssignExpr)
	lit, ok := assign.Right.(*ast.Literal)
	if !ok {
		t.Fatalf("%q folded to %T, want literal", src, assign.Right)
	}
	return lit.Value
}

func TestDropDebugger(t *testing.T) {
	prog := run(t, "function f() { debugger; return 1; }", compress.Default())
	fn := prog.Body[0].(*ast.FuncDecl)
	if len(fn.Body.Body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(fn.Body.Body))
	}
	if _, ok := fn.Body.Body[0].(*ast.ReturnStmt); !ok {
		t.Fatalf("remaining statement is %T, want return", fn.Body.Body[0])
	}

	kept := run(t, "debugger;", compress.Options{Target: es.Next, DropDebugger: false})
	if len(kept.Body) != 1 {
		t.Fatal("debugger should survive when DropDebugger is off")
	}
}

func TestDropConsole(t *testing.T) {
	opts := compress.Default()
	opts.DropConsole = true
	prog := run(t, "console.log('hi');\nconsole?.warn(1);\nwork();", opts)
	if len(prog.Body) != 1 {
		t.Fatalf("body has %d statements, want 1", len(prog.Body))
	}

	// Default keeps console calls.
	kept := run(t, "console.log('hi');", compress.Default())
	if len(kept.Body) != 1 {
		t.Fatal("console call dropped without DropConsole")
	}
}

func TestFoldArithmetic(t *testing.T) {
	tests := []struct {
		src  string
		want any
	}{
		{"x = 1 + 2 * 3;", float64(7)},
		{"x = 10 % 3;", float64(1)},
		{"x = 2 ** 10;", float64(1024)},
		{"x = 'a' + 'b';", "ab"},
		{"x = 1 < 2;", true},
		{"x = 'a' === 'b';", false},
		{"x = 1 << 4;", float64(16)},
		{"x = -1 >>> 0;", float64(4294967295)},
		{"x = 5 & 3;", float64(1)},
		{"x = !0;", true},
		{"x = typeof 'a';", "string"},
		{"x = typeof null;", "object"},
		{"x = -3;", float64(-3)},
	}
	for _, tt := range tests {
		if got := foldedValue(t, tt.src); got != tt.want {
			t.Errorf("%s -> %#v, want %#v", tt.src, got, tt.want)
		}
	}
}

func TestFoldKeepsNonFinite(t *testing.T) {
	for _, src := range []string{"x = 1 / 0;", "x = 0 / 0;", "x = 2 ** 10000;"} {
		prog := run(t, src, compress.Default())
		assign := firstExpr(t, prog).(*ast.AssignExpr)
		if _, ok := assign.Right.(*ast.Literal); ok {
			t.Errorf("%s folded to a literal; non-finite results must stay expressions", src)
		}
	}
}

func TestFoldLogical(t *testing.T) {
	prog := run(t, "x = true && y;", compress.Default())
	if id, ok := firstExpr(t, prog).(*ast.AssignExpr).Right.(*ast.Ident); !ok || id.Name != "y" {
		t.Fatal("true && y should fold to y")
	}

	if got := foldedValue(t, "x = false && y;"); got != false {
		t.Fatalf("false && y -> %#v, want false", got)
	}
	if got := foldedValue(t, "x = 0 || 'fallback';"); got != "fallback" {
		t.Fatalf("0 || 'fallback' -> %#v", got)
	}

	prog = run(t, "x = null ?? y;", compress.Default())
	if id, ok := firstExpr(t, prog).(*ast.AssignExpr).Right.(*ast.Ident); !ok || id.Name != "y" {
		t.Fatal("null ?? y should fold to y")
	}
	if got := foldedValue(t, "x = 'kept' ?? y;"); got != "kept" {
		t.Fatalf("'kept' ?? y -> %#v", got)
	}
}

func TestFoldConditional(t *testing.T) {
	prog := run(t, "x = 1 ? a : b;", compress.Default())
	if id, ok := firstExpr(t, prog).(*ast.AssignExpr).Right.(*ast.Ident); !ok || id.Name != "a" {
		t.Fatal("1 ? a : b should fold to a")
	}
}

func TestFoldStringConcatEscapes(t *testing.T) {
	prog := run(t, `x = "\x07" + "!";`, compress.Default())
	lit, ok := firstExpr(t, prog).(*ast.AssignExpr).Right.(*ast.Literal)
	if !ok {
		t.Fatal("concat did not fold to a literal")
	}
	if lit.Value != "\a!" {
		t.Fatalf("value = %q", lit.Value)
	}
	// \a is a Go escape, not a JavaScript one; the raw form must stay \x07.
	if lit.Raw != `"\x07!"` {
		t.Errorf("raw = %s, want %s", lit.Raw, `"\x07!"`)
	}
}

func TestPruneIf(t *testing.T) {
	prog := run(t, "if (true) { a(); } else { b(); }", compress.Default())
	if len(prog.Body) != 1 {
		t.Fatalf("body has %d statements", len(prog.Body))
	}
	block, ok := prog.Body[0].(*ast.BlockStmt)
	if !ok || len(block.Body) != 1 {
		t.Fatalf("taken branch = %#v", prog.Body[0])
	}

	gone := run(t, "if (false) a();\nkeep();", compress.Default())
	if len(gone.Body) != 1 {
		t.Fatalf("false if without else should vanish, body = %d", len(gone.Body))
	}

	alt := run(t, "if (false) a(); else b();", compress.Default())
	call := alt.Body[0].(*ast.ExprStmt).Expression.(*ast.CallExpr)
	if call.Callee.(*ast.Ident).Name != "b" {
		t.Fatal("false if should fold to the else branch")
	}
}

func TestPruneIfKeepsHoistedDecls(t *testing.T) {
	prog := run(t, "if (false) { var v = 1; } else { b(); }", compress.Default())
	ifStmt, ok := prog.Body[0].(*ast.IfStmt)
	if !ok {
		t.Fatalf("statement is %T; an if with vars in the dead branch must stay", prog.Body[0])
	}
	if ifStmt.Alternate == nil {
		t.Fatal("alternate lost")
	}
}

func TestTruncateAfterTerminator(t *testing.T) {
	prog := run(t, `function f() {
	return 1;
	sideEffect();
	var y = g();
	function h() {}
	let dead = 2;
}`, compress.Default())

	fn := prog.Body[0].(*ast.FuncDecl)
	body := fn.Body.Body
	if len(body) != 3 {
		t.Fatalf("body has %d statements, want return + var + function", len(body))
	}
	if _, ok := body[0].(*ast.ReturnStmt); !ok {
		t.Fatalf("statement 0 is %T", body[0])
	}
	varDecl, ok := body[1].(*ast.VarDecl)
	if !ok || varDecl.Kind != ast.DeclVar {
		t.Fatalf("statement 1 = %#v, want hoisted var", body[1])
	}
	if varDecl.Declarations[0].Init != nil {
		t.Fatal("dead var must lose its initializer")
	}
	if _, ok := body[2].(*ast.FuncDecl); !ok {
		t.Fatalf("statement 2 is %T, want hoisted function", body[2])
	}
}

func TestTruncateKeepsDestructuredNames(t *testing.T) {
	prog := run(t, "function f() { return; var [a, {b}] = g(); }", compress.Default())
	fn := prog.Body[0].(*ast.FuncDecl)
	varDecl := fn.Body.Body[1].(*ast.VarDecl)
	if len(varDecl.Declarations) != 2 {
		t.Fatalf("declarators = %d, want a and b", len(varDecl.Declarations))
	}
	for i, want := range []string{"a", "b"} {
		id, ok := varDecl.Declarations[i].ID.(*ast.Ident)
		if !ok || id.Name != want {
			t.Fatalf("declarator %d = %#v, want %s", i, varDecl.Declarations[i].ID, want)
		}
	}
}

func TestCatchBindingElision(t *testing.T) {
	src := "try { a(); } catch (e) { recover(); }"

	prog := run(t, src, compress.Default())
	try := prog.Body[0].(*ast.TryStmt)
	if try.Handler.Param != nil {
		t.Fatal("unused catch binding should be elided at esnext")
	}

	old := run(t, src, compress.Options{Target: es.ES2018, DropDebugger: true})
	if old.Body[0].(*ast.TryStmt).Handler.Param == nil {
		t.Fatal("es2018 cannot use optional catch binding")
	}

	used := run(t, "try { a(); } catch (e) { log(e); }", compress.Default())
	if used.Body[0].(*ast.TryStmt).Handler.Param == nil {
		t.Fatal("referenced catch binding must stay")
	}

	destructured := run(t, "try { a(); } catch ({message}) { b(); }", compress.Default())
	if destructured.Body[0].(*ast.TryStmt).Handler.Param == nil {
		t.Fatal("pattern bindings are never elided")
	}
}

func TestCompressNestedFunctions(t *testing.T) {
	prog := run(t, "const f = () => { debugger; };\nconst g = function () { debugger; };", compress.Default())

	arrow := prog.Body[0].(*ast.VarDecl).Declarations[0].Init.(*ast.ArrowFuncExpr)
	if len(arrow.Body.(*ast.BlockStmt).Body) != 0 {
		t.Fatal("arrow body should lose its debugger")
	}
	fnExpr := prog.Body[1].(*ast.VarDecl).Declarations[0].Init.(*ast.FuncExpr)
	if len(fnExpr.Body.Body) != 0 {
		t.Fatal("function expression body should lose its debugger")
	}
}

func TestEmptyStatementsDropped(t *testing.T) {
	prog := run(t, "a();;;b();", compress.Default())
	if len(prog.Body) != 2 {
		t.Fatalf("body has %d statements, want 2", len(prog.Body))
	}
}

func TestDirectivesSurvive(t *testing.T) {
	prog := run(t, "\"use strict\";\nwork();", compress.Default())
	stmt, ok := prog.Body[0].(*ast.ExprStmt)
	if !ok || stmt.Directive != "use strict" {
		t.Fatal("directive prologue must survive compression")
	}
}
