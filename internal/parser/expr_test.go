package parser

import (
	"math"
	"testing"

	"whittle/internal/ast"
	"whittle/internal/diag"
)

// exprOf parses src as a module and returns the expression of its first
// statement.
func exprOf(t *testing.T, src string) ast.Expr {
	t.Helper()
	res, rep := parseModule(t, src)
	noErrors(t, rep, src)
	if len(res.Program.Body) == 0 {
		t.Fatalf("no statements parsed from %q", src)
	}
	stmt, ok := res.Program.Body[0].(*ast.ExprStmt)
	if !ok {
		t.Fatalf("statement is %T, want *ast.ExprStmt", res.Program.Body[0])
	}
	return stmt.Expression
}

func TestBinaryPrecedence(t *testing.T) {
	// 1 + 2 * 3 groups as 1 + (2 * 3).
	add, ok := exprOf(t, "1 + 2 * 3;").(*ast.BinaryExpr)
	if !ok || add.Operator != "+" {
		t.Fatalf("top operator wrong: %#v", add)
	}
	mul, ok := add.Right.(*ast.BinaryExpr)
	if !ok || mul.Operator != "*" {
		t.Fatalf("right branch = %#v, want multiplication", add.Right)
	}

	// Same precedence groups left to right.
	sub := exprOf(t, "1 - 2 - 3;").(*ast.BinaryExpr)
	if _, ok := sub.Left.(*ast.BinaryExpr); !ok {
		t.Fatal("subtraction should associate left")
	}
}

func TestExponentRightAssociative(t *testing.T) {
	pow := exprOf(t, "a ** b ** c;").(*ast.BinaryExpr)
	if pow.Operator != "**" {
		t.Fatalf("operator = %q", pow.Operator)
	}
	if _, ok := pow.Right.(*ast.BinaryExpr); !ok {
		t.Fatal("** should associate right")
	}
	if _, ok := pow.Left.(*ast.Ident); !ok {
		t.Fatal("** left branch should stay flat")
	}
}

func TestUnaryBeforeExponentRejected(t *testing.T) {
	_, rep := parseModule(t, "x = -a ** 2;")
	if !rep.hasCode(diag.SynUnexpectedToken) {
		t.Fatal("unparenthesized unary operand of ** must error")
	}

	_, rep = parseModule(t, "x = (-a) ** 2;")
	noErrors(t, rep, "(-a) ** 2")
}

func TestNullishMixing(t *testing.T) {
	_, rep := parseModule(t, "x = a ?? b || c;")
	if !rep.hasCode(diag.SynUnexpectedToken) {
		t.Fatal("?? mixed with || must error")
	}

	_, rep = parseModule(t, "x = a ?? (b || c);")
	noErrors(t, rep, "parenthesized mix")

	_, rep = parseModule(t, "x = a && b || c;")
	noErrors(t, rep, "&& with ||")
}

func TestLogicalOperators(t *testing.T) {
	or := exprOf(t, "a && b || c && d;").(*ast.LogicalExpr)
	if or.Operator != "||" {
		t.Fatalf("top operator = %q, want ||", or.Operator)
	}
	if l, ok := or.Left.(*ast.LogicalExpr); !ok || l.Operator != "&&" {
		t.Fatal("&& should bind tighter than ||")
	}
}

func TestConditionalExpression(t *testing.T) {
	cond := exprOf(t, "a ? b : c ? d : e;").(*ast.CondExpr)
	if _, ok := cond.Alternate.(*ast.CondExpr); !ok {
		t.Fatal("conditional should nest in the alternate branch")
	}
}

func TestSequenceExpression(t *testing.T) {
	seq := exprOf(t, "a, b, c;").(*ast.SequenceExpr)
	if len(seq.Expressions) != 3 {
		t.Fatalf("sequence length = %d, want 3", len(seq.Expressions))
	}
}

func TestAssignmentOperators(t *testing.T) {
	for _, op := range []string{"=", "+=", "**=", "&&=", "||=", "??=", ">>>="} {
		src := "a " + op + " b;"
		assign, ok := exprOf(t, src).(*ast.AssignExpr)
		if !ok || assign.Operator != op {
			t.Errorf("%q: got %#v", src, assign)
		}
	}

	// Assignment associates right.
	chain := exprOf(t, "a = b = c;").(*ast.AssignExpr)
	if _, ok := chain.Right.(*ast.AssignExpr); !ok {
		t.Fatal("chained assignment should nest right")
	}
}

func TestAssignTargetErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"1 = x;", diag.SynBadAssignTarget},
		{"a?.b = 1;", diag.SynBadAssignTarget},
		{"a() = 1;", diag.SynBadAssignTarget},
		{"[...a, b] = c;", diag.SynRestNotLast},
	}
	for _, tt := range tests {
		_, rep := parseModule(t, tt.src)
		if !rep.hasCode(tt.code) {
			t.Errorf("%q: expected %s", tt.src, tt.code.ID())
		}
	}
}

func TestDestructuringAssignment(t *testing.T) {
	assign := exprOf(t, "[a, b.c, ...rest] = xs;").(*ast.AssignExpr)
	arr, ok := assign.Left.(*ast.ArrayPattern)
	if !ok {
		t.Fatalf("left = %T, want *ast.ArrayPattern after conversion", assign.Left)
	}
	if _, ok := arr.Elements[1].(*ast.MemberExpr); !ok {
		t.Fatal("member expressions stay legal in assignment patterns")
	}
	if _, ok := arr.Elements[2].(*ast.RestElement); !ok {
		t.Fatal("trailing spread should convert to a rest element")
	}

	obj := exprOf(t, "({a, b: c = 1} = o);").(*ast.AssignExpr)
	pat, ok := obj.Left.(*ast.ObjectPattern)
	if !ok {
		t.Fatalf("left = %T, want *ast.ObjectPattern", obj.Left)
	}
	prop := pat.Properties[1].(*ast.Property)
	if _, ok := prop.Value.(*ast.AssignPattern); !ok {
		t.Fatal("defaulted property should convert to an assign pattern")
	}
}

func TestMemberAndCallChains(t *testing.T) {
	call := exprOf(t, "a.b[c](1)(2);").(*ast.CallExpr)
	inner, ok := call.Callee.(*ast.CallExpr)
	if !ok {
		t.Fatalf("callee = %T, want inner call", call.Callee)
	}
	member, ok := inner.Callee.(*ast.MemberExpr)
	if !ok || !member.Computed {
		t.Fatalf("inner callee = %#v, want computed member", inner.Callee)
	}
	dot, ok := member.Object.(*ast.MemberExpr)
	if !ok || dot.Computed {
		t.Fatal("a.b should be a plain member access")
	}
}

func TestOptionalChains(t *testing.T) {
	chain, ok := exprOf(t, "a?.b.c;").(*ast.ChainExpr)
	if !ok {
		t.Fatalf("optional chain should wrap in ChainExpression, got %T", exprOf(t, "a?.b.c;"))
	}
	outer := chain.Expression.(*ast.MemberExpr)
	if outer.Optional {
		t.Fatal(".c link itself is not optional")
	}
	if inner := outer.Object.(*ast.MemberExpr); !inner.Optional {
		t.Fatal("?.b link should be optional")
	}

	callChain := exprOf(t, "a?.(1);").(*ast.ChainExpr)
	if call := callChain.Expression.(*ast.CallExpr); !call.Optional {
		t.Fatal("?.() should mark the call optional")
	}

	if _, ok := exprOf(t, "a.b(c);").(*ast.CallExpr); !ok {
		t.Fatal("plain calls must not gain a chain wrapper")
	}
}

func TestOptionalChainErrors(t *testing.T) {
	tests := []string{
		"new a?.b();",
		"a?.b`t`;",
	}
	for _, src := range tests {
		_, rep := parseModule(t, src)
		if !rep.hasCode(diag.SynBadOptionalChain) {
			t.Errorf("%q: expected SynBadOptionalChain", src)
		}
	}
}

func TestNewExpressions(t *testing.T) {
	bare := exprOf(t, "new A;").(*ast.NewExpr)
	if len(bare.Arguments) != 0 {
		t.Fatal("new without parens should have empty arguments")
	}

	withArgs := exprOf(t, "new A(1, 2);").(*ast.NewExpr)
	if len(withArgs.Arguments) != 2 {
		t.Fatalf("arguments = %d, want 2", len(withArgs.Arguments))
	}

	// new a.b() binds the member access to the callee.
	member := exprOf(t, "new a.b();").(*ast.NewExpr)
	if _, ok := member.Callee.(*ast.MemberExpr); !ok {
		t.Fatalf("callee = %T, want member expression", member.Callee)
	}

	// new new A()() nests.
	nested := exprOf(t, "new new A()();").(*ast.NewExpr)
	if _, ok := nested.Callee.(*ast.NewExpr); !ok {
		t.Fatalf("callee = %T, want nested new", nested.Callee)
	}
}

func TestNewTarget(t *testing.T) {
	res, rep := parseModule(t, "function f() { return new.target; }")
	noErrors(t, rep, "new.target")
	fn := res.Program.Body[0].(*ast.FuncDecl)
	ret := fn.Body.Body[0].(*ast.ReturnStmt)
	meta := ret.Argument.(*ast.MetaProperty)
	if meta.Meta.Name != "new" || meta.Property.Name != "target" {
		t.Fatalf("meta property = %s.%s", meta.Meta.Name, meta.Property.Name)
	}

	_, rep = parseModule(t, "new.target;")
	if !rep.hasCode(diag.SynNewTargetOutsideFn) {
		t.Fatal("top-level new.target must error")
	}

	// Arrows do not create a new.target scope of their own.
	_, rep = parseModule(t, "const f = () => new.target;")
	if !rep.hasCode(diag.SynNewTargetOutsideFn) {
		t.Fatal("new.target inside a top-level arrow must error")
	}
}

func TestArrowFunctions(t *testing.T) {
	// Bare identifier head.
	one := exprOf(t, "x => x + 1;").(*ast.ArrowFuncExpr)
	if len(one.Params) != 1 || !one.Expression {
		t.Fatalf("bare arrow shape wrong: %#v", one)
	}

	// Parenthesized head with default and rest.
	multi := exprOf(t, "(a, b = 1, ...c) => { return a; };").(*ast.ArrowFuncExpr)
	if len(multi.Params) != 3 || multi.Expression {
		t.Fatalf("paren arrow shape wrong: params=%d expr=%v", len(multi.Params), multi.Expression)
	}
	if _, ok := multi.Body.(*ast.BlockStmt); !ok {
		t.Fatalf("body = %T, want block", multi.Body)
	}

	// Empty head.
	zero := exprOf(t, "() => 0;").(*ast.ArrowFuncExpr)
	if len(zero.Params) != 0 {
		t.Fatal("empty arrow head should have no params")
	}

	// Async arrows, both head shapes.
	asyncBare := exprOf(t, "async x => x;").(*ast.ArrowFuncExpr)
	if !asyncBare.Async {
		t.Fatal("async bare arrow lost Async")
	}
	asyncParen := exprOf(t, "async (a, b) => a;").(*ast.ArrowFuncExpr)
	if !asyncParen.Async || len(asyncParen.Params) != 2 {
		t.Fatalf("async paren arrow shape wrong: %#v", asyncParen)
	}

	// Destructuring parameters.
	pat := exprOf(t, "({a}, [b]) => a + b;").(*ast.ArrowFuncExpr)
	if _, ok := pat.Params[0].(*ast.ObjectPattern); !ok {
		t.Fatalf("param 0 = %T, want object pattern", pat.Params[0])
	}
	if _, ok := pat.Params[1].(*ast.ArrayPattern); !ok {
		t.Fatalf("param 1 = %T, want array pattern", pat.Params[1])
	}
}

func TestArrowHeadErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{"(a, ...b);", diag.SynBadArrowParams},
		{"(a.b) => 1;", diag.SynBadArrowParams},
		{"(1) => 1;", diag.SynBadArrowParams},
	}
	for _, tt := range tests {
		_, rep := parseModule(t, tt.src)
		if !rep.hasCode(tt.code) {
			t.Errorf("%q: expected %s", tt.src, tt.code.ID())
		}
	}
}

func TestParenthesizedExpressionUnwrap(t *testing.T) {
	// Grouping parens leave no node behind.
	if _, ok := exprOf(t, "(a);").(*ast.Ident); !ok {
		t.Fatal("parenthesized identifier should unwrap")
	}
	seq := exprOf(t, "(a, b);").(*ast.SequenceExpr)
	if len(seq.Expressions) != 2 {
		t.Fatal("parenthesized comma list should parse as a sequence")
	}
}

func TestFunctionAndClassExpressions(t *testing.T) {
	fn := exprOf(t, "(function named() {});").(*ast.FuncExpr)
	if fn.ID == nil || fn.ID.Name != "named" {
		t.Fatalf("function expression name lost: %#v", fn.ID)
	}

	anon := exprOf(t, "(function () {});").(*ast.FuncExpr)
	if anon.ID != nil {
		t.Fatal("anonymous function expression should have nil ID")
	}

	cls := exprOf(t, "(class extends B {});").(*ast.ClassExpr)
	if cls.ID != nil {
		t.Fatal("anonymous class expression should have nil ID")
	}
	if _, ok := cls.SuperClass.(*ast.Ident); !ok {
		t.Fatal("class expression lost its superclass")
	}
}

func TestObjectLiteralForms(t *testing.T) {
	obj := exprOf(t, `x = {
	a: 1,
	b,
	[k]: 2,
	m() {},
	get g() { return 1; },
	set s(v) {},
	async am() {},
	*gen() {},
	...spread,
	"str": 3,
	42: 4,
};`).(*ast.AssignExpr).Right.(*ast.ObjectExpr)

	props := obj.Properties
	if len(props) != 11 {
		t.Fatalf("properties = %d, want 11", len(props))
	}

	if p := props[1].(*ast.Property); !p.Shorthand {
		t.Fatal("b should be shorthand")
	}
	if p := props[2].(*ast.Property); !p.Computed {
		t.Fatal("[k] should be computed")
	}
	if p := props[3].(*ast.Property); !p.Method {
		t.Fatal("m() should be a method")
	}
	if p := props[4].(*ast.Property); p.Kind != ast.PropertyGet {
		t.Fatalf("g kind = %q, want get", p.Kind)
	}
	if p := props[5].(*ast.Property); p.Kind != ast.PropertySet {
		t.Fatalf("s kind = %q, want set", p.Kind)
	}
	if p := props[6].(*ast.Property); !p.Value.(*ast.FuncExpr).Async {
		t.Fatal("am should be async")
	}
	if p := props[7].(*ast.Property); !p.Value.(*ast.FuncExpr).Generator {
		t.Fatal("gen should be a generator")
	}
	if _, ok := props[8].(*ast.SpreadElement); !ok {
		t.Fatal("...spread should be a spread element")
	}
}

func TestShorthandKeyValueSeparate(t *testing.T) {
	obj := exprOf(t, "x = {a};").(*ast.AssignExpr).Right.(*ast.ObjectExpr)
	prop := obj.Properties[0].(*ast.Property)
	key := prop.Key.(*ast.Ident)
	val := prop.Value.(*ast.Ident)
	if key == val {
		t.Fatal("shorthand key and value must be distinct nodes")
	}
	if key.Name != val.Name {
		t.Fatal("shorthand key and value must share the name")
	}
}

func TestArrayLiteralHoles(t *testing.T) {
	arr := exprOf(t, "x = [1, , 3,];").(*ast.AssignExpr).Right.(*ast.ArrayExpr)
	if len(arr.Elements) != 3 {
		t.Fatalf("elements = %d, want 3 (trailing comma adds none)", len(arr.Elements))
	}
	if arr.Elements[1] != nil {
		t.Fatal("hole should stay nil")
	}

	tail := exprOf(t, "x = [,];").(*ast.AssignExpr).Right.(*ast.ArrayExpr)
	if len(tail.Elements) != 1 || tail.Elements[0] != nil {
		t.Fatalf("[,] should be a single hole, got %#v", tail.Elements)
	}
}

func TestTemplateLiterals(t *testing.T) {
	tpl := exprOf(t, "x = `a${b}c${d}e`;").(*ast.AssignExpr).Right.(*ast.TemplateLiteral)
	if len(tpl.Quasis) != 3 || len(tpl.Expressions) != 2 {
		t.Fatalf("quasis=%d exprs=%d, want 3 and 2", len(tpl.Quasis), len(tpl.Expressions))
	}
	if tpl.Quasis[0].Value.Raw != "a" || tpl.Quasis[0].Value.Cooked != "a" {
		t.Fatalf("first quasi = %#v", tpl.Quasis[0].Value)
	}
	if tpl.Quasis[0].Tail || !tpl.Quasis[2].Tail {
		t.Fatal("only the last quasi is the tail")
	}

	plain := exprOf(t, "x = `only`;").(*ast.AssignExpr).Right.(*ast.TemplateLiteral)
	if len(plain.Quasis) != 1 || len(plain.Expressions) != 0 {
		t.Fatal("no-substitution template should have one quasi")
	}

	esc := exprOf(t, "x = `\\n`;").(*ast.AssignExpr).Right.(*ast.TemplateLiteral)
	if esc.Quasis[0].Value.Cooked != "\n" {
		t.Fatalf("cooked = %#v, want newline", esc.Quasis[0].Value.Cooked)
	}

	// Invalid escapes cook to nil in tagged templates.
	tagged := exprOf(t, "tag`\\u{FFFFFFFF}`;").(*ast.TaggedTemplateExpr)
	if tagged.Quasi.Quasis[0].Value.Cooked != nil {
		t.Fatal("invalid escape should cook to nil")
	}
}

func TestTaggedTemplates(t *testing.T) {
	tagged := exprOf(t, "a.b`x${1}y`;").(*ast.TaggedTemplateExpr)
	if _, ok := tagged.Tag.(*ast.MemberExpr); !ok {
		t.Fatalf("tag = %T, want member expression", tagged.Tag)
	}
	if len(tagged.Quasi.Expressions) != 1 {
		t.Fatal("tagged template lost its substitution")
	}
}

func TestRegexVersusDivision(t *testing.T) {
	re := exprOf(t, "x = /ab+c/gi;").(*ast.AssignExpr).Right.(*ast.Literal)
	if re.Regex == nil {
		t.Fatal("expected a regex literal")
	}
	if re.Regex.Pattern != "ab+c" || re.Regex.Flags != "gi" {
		t.Fatalf("regex = %q flags %q", re.Regex.Pattern, re.Regex.Flags)
	}

	div := exprOf(t, "a / b / c;").(*ast.BinaryExpr)
	if div.Operator != "/" {
		t.Fatalf("operator = %q, want /", div.Operator)
	}

	// After a ) the slash is division; in statement position it is a regex.
	_, rep := parseModule(t, "if (a) /re/.test(b);")
	noErrors(t, rep, "regex in statement position")
}

func TestNumberCooking(t *testing.T) {
	tests := []struct {
		src  string
		want float64
	}{
		{"0x10", 16},
		{"0o17", 15},
		{"0b101", 5},
		{"1_000", 1000},
		{"1e3", 1000},
		{".5", 0.5},
		{"0755", 493}, // legacy octal
		{"0788", 788}, // 8 forces decimal
	}
	for _, tt := range tests {
		res, rep := parseScript(t, "x = "+tt.src+";")
		noErrors(t, rep, tt.src)
		lit := res.Program.Body[0].(*ast.ExprStmt).Expression.(*ast.AssignExpr).Right.(*ast.Literal)
		if lit.Value != tt.want {
			t.Errorf("%s = %#v, want %v", tt.src, lit.Value, tt.want)
		}
	}

	// Overflow keeps the infinity rather than erroring.
	inf := exprOf(t, "x = 1e999;").(*ast.AssignExpr).Right.(*ast.Literal)
	if f, ok := inf.Value.(float64); !ok || !math.IsInf(f, 1) {
		t.Fatalf("1e999 = %#v, want +Inf", inf.Value)
	}
}

func TestBigIntLiterals(t *testing.T) {
	lit := exprOf(t, "x = 123n;").(*ast.AssignExpr).Right.(*ast.Literal)
	if lit.BigInt != "123" {
		t.Fatalf("bigint = %q, want 123", lit.BigInt)
	}
	hex := exprOf(t, "x = 0xFFn;").(*ast.AssignExpr).Right.(*ast.Literal)
	if hex.BigInt != "255" {
		t.Fatalf("hex bigint = %q, want 255", hex.BigInt)
	}
}

func TestStringCooking(t *testing.T) {
	tests := []struct {
		src  string
		want string
	}{
		{`'a\nb'`, "a\nb"},
		{`"\x41"`, "A"},
		{`"A"`, "A"},
		{`"\u{1F600}"`, "\U0001F600"},
		{`"😀"`, "\U0001F600"}, // surrogate pair
		{`'a\` + "\n" + `b'`, "ab"},      // line continuation
		{`"\101"`, "A"},                  // legacy octal escape
	}
	for _, tt := range tests {
		lit := exprOf(t, "x = "+tt.src+";").(*ast.AssignExpr).Right.(*ast.Literal)
		if lit.Value != tt.want {
			t.Errorf("%s = %#v, want %q", tt.src, lit.Value, tt.want)
		}
	}
}

func TestUnaryAndUpdate(t *testing.T) {
	not := exprOf(t, "!a;").(*ast.UnaryExpr)
	if not.Operator != "!" || !not.Prefix {
		t.Fatalf("unary shape wrong: %#v", not)
	}

	tof := exprOf(t, "typeof a;").(*ast.UnaryExpr)
	if tof.Operator != "typeof" {
		t.Fatalf("operator = %q, want typeof", tof.Operator)
	}

	pre := exprOf(t, "++a;").(*ast.UpdateExpr)
	if !pre.Prefix {
		t.Fatal("++a should be prefix")
	}
	post := exprOf(t, "a--;").(*ast.UpdateExpr)
	if post.Prefix {
		t.Fatal("a-- should be postfix")
	}

	_, rep := parseModule(t, "a()++;")
	if !rep.hasCode(diag.SynBadAssignTarget) {
		t.Fatal("update needs an assignable target")
	}
}

func TestDeleteAndVoid(t *testing.T) {
	del := exprOf(t, "delete a.b;").(*ast.UnaryExpr)
	if del.Operator != "delete" {
		t.Fatalf("operator = %q", del.Operator)
	}
	if _, ok := exprOf(t, "void 0;").(*ast.UnaryExpr); !ok {
		t.Fatal("void 0 should parse as unary")
	}
}

func TestYieldExpressions(t *testing.T) {
	res, rep := parseModule(t, "function* g() { yield; yield 1; yield* inner(); }")
	noErrors(t, rep, "yield")

	body := res.Program.Body[0].(*ast.FuncDecl).Body.Body
	bare := body[0].(*ast.ExprStmt).Expression.(*ast.YieldExpr)
	if bare.Argument != nil || bare.Delegate {
		t.Fatalf("bare yield shape wrong: %#v", bare)
	}
	valued := body[1].(*ast.ExprStmt).Expression.(*ast.YieldExpr)
	if valued.Argument == nil {
		t.Fatal("yield 1 lost its argument")
	}
	delegated := body[2].(*ast.ExprStmt).Expression.(*ast.YieldExpr)
	if !delegated.Delegate {
		t.Fatal("yield* should set Delegate")
	}

	// yield is a plain identifier outside generators in sloppy scripts.
	resScript, repScript := parseScript(t, "var yield = 1;")
	noErrors(t, repScript, "yield as identifier")
	if resScript.Program == nil {
		t.Fatal("nil program")
	}
}

func TestAwaitExpressions(t *testing.T) {
	res, rep := parseModule(t, "async function f() { await g(); }")
	noErrors(t, rep, "await")
	body := res.Program.Body[0].(*ast.FuncDecl).Body.Body
	if _, ok := body[0].(*ast.ExprStmt).Expression.(*ast.AwaitExpr); !ok {
		t.Fatal("await should parse inside async functions")
	}

	// Top-level await is module-legal.
	_, rep = parseModule(t, "await g();")
	noErrors(t, rep, "top-level await")

	// In a sloppy script, await is an ordinary identifier.
	script, rep := parseScript(t, "var await = 1;")
	noErrors(t, rep, "await as identifier")
	if script.Program == nil {
		t.Fatal("nil program")
	}
}

func TestSpreadInCalls(t *testing.T) {
	call := exprOf(t, "f(a, ...b);").(*ast.CallExpr)
	if len(call.Arguments) != 2 {
		t.Fatalf("arguments = %d, want 2", len(call.Arguments))
	}
	if _, ok := call.Arguments[1].(*ast.SpreadElement); !ok {
		t.Fatal("...b should be a spread element")
	}
}

func TestPrivateFieldAccess(t *testing.T) {
	res, rep := parseModule(t, "class C { #x = 1; m() { return this.#x; } }")
	noErrors(t, rep, "private access")

	cls := res.Program.Body[0].(*ast.ClassDecl)
	m := cls.Body.Body[1].(*ast.MethodDef)
	ret := m.Value.Body.Body[0].(*ast.ReturnStmt)
	member := ret.Argument.(*ast.MemberExpr)
	if _, ok := member.Property.(*ast.PrivateIdent); !ok {
		t.Fatalf("property = %T, want private identifier", member.Property)
	}

	// #x in c requires an enclosing class.
	_, rep = parseModule(t, "class C { m() { return #x in this; } }")
	noErrors(t, rep, "private in")
}

func TestKeywordPropertyNames(t *testing.T) {
	// Reserved words are fine as property names.
	_, rep := parseModule(t, "x = {new: 1, class: 2, default: 3}; y = a.new.class;")
	noErrors(t, rep, "keyword property names")
}

func TestInOperatorInForHead(t *testing.T) {
	// The noIn restriction: in inside a for head initializer is the loop's
	// in, but parenthesized it is the operator.
	res, rep := parseModule(t, "for (x = (\"a\" in o); f(); ) {}")
	noErrors(t, rep, "parenthesized in")
	if _, ok := res.Program.Body[0].(*ast.ForStmt); !ok {
		t.Fatal("should parse as a classic for loop")
	}

	bin := exprOf(t, "a in b;").(*ast.BinaryExpr)
	if bin.Operator != "in" {
		t.Fatalf("operator = %q, want in", bin.Operator)
	}
}
