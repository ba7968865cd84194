package codegen_test

import (
	"strings"
	"testing"

	"whittle/internal/ast"
	"whittle/internal/codegen"
	"whittle/internal/diag"
	"whittle/internal/mangle"
	"whittle/internal/parser"
	"whittle/internal/source"
)

func parse(t *testing.T, src string) (*ast.Program, *source.File) {
	t.Helper()
	file := source.NewFile("test.js", []byte(src))
	bag := diag.NewBag(16)
	res := parser.Parse(file, parser.Options{Reporter: &diag.BagReporter{Bag: bag}})
	if bag.HasErrors() {
		t.Fatalf("parse %q: %v", src, bag.Items())
	}
	return res.Program, file
}

func minified(t *testing.T, src string) string {
	t.Helper()
	prog, _ := parse(t, src)
	return codegen.Print(prog, codegen.Options{Minify: true}).Code
}

func TestMinifyStatements(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "let declaration", src: "let a = 1;", want: "let a=1;"},
		{name: "multiple declarators", src: "var a = 1, b = 2;", want: "var a=1,b=2;"},
		{name: "if else", src: "if (a) { b(); } else { c(); }", want: "if(a){b()}else{c()}"},
		{name: "single statement body", src: "if (a) b();", want: "if(a)b();"},
		{name: "dangling else guarded", src: "if (a) if (b) c(); else d();", want: "if(a)if(b){c()}else d();"},
		{name: "while", src: "while (x) { f(); }", want: "while(x){f()}"},
		{name: "do while", src: "do f(); while (x);", want: "do f();while(x);"},
		{name: "for", src: "for (let i = 0; i < n; i++) f(i);", want: "for(let i=0;i<n;i++)f(i);"},
		{name: "for in", src: "for (const k in o) f(k);", want: "for(const k in o)f(k);"},
		{name: "for of", src: "for (const v of xs) f(v);", want: "for(const v of xs)f(v);"},
		{name: "switch", src: "switch (x) { case 1: f(); break; default: g(); }", want: "switch(x){case 1:f();break;default:g()}"},
		{name: "try catch finally", src: "try { f(); } catch (e) { g(e); } finally { h(); }", want: "try{f()}catch(e){g(e)}finally{h()}"},
		{name: "optional catch binding", src: "try { f(); } catch { g(); }", want: "try{f()}catch{g()}"},
		{name: "throw", src: "throw new Error('boom');", want: "throw new Error('boom');"},
		{name: "labeled break", src: "outer: for (;;) { break outer; }", want: "outer:for(;;){break outer}"},
		{name: "function declaration", src: "function add(a, b) { return a + b; }", want: "function add(a,b){return a+b}"},
		{name: "generator", src: "function* gen() { yield 1; }", want: "function*gen(){yield 1}"},
		{name: "async function", src: "async function go() { await f(); }", want: "async function go(){await f()}"},
		{name: "class", src: "class A extends B { constructor() { super(); } get x() { return 1; } static m() {} }", want: "class A extends B{constructor(){super()}get x(){return 1}static m(){}}"},
		{name: "class field", src: "class A { static count = 0; #secret = 1; }", want: "class A{static count=0;#secret=1;}"},
		{name: "empty statement dropped spacing", src: "debugger;", want: "debugger;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minified(t, tt.src); got != tt.want {
				t.Errorf("minify(%q)\n got %q\nwant %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestMinifyExpressions(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "precedence keeps parens", src: "x = (a + b) * c;", want: "x=(a+b)*c;"},
		{name: "redundant parens dropped", src: "x = (a * b) + c;", want: "x=a*b+c;"},
		{name: "right assoc exponent", src: "x = a ** b ** c;", want: "x=a**b**c;"},
		{name: "exponent left grouping", src: "x = (a ** b) ** c;", want: "x=(a**b)**c;"},
		{name: "unary base of exponent", src: "x = (-a) ** b;", want: "x=(-a)**b;"},
		{name: "conditional", src: "x = a ? b : c;", want: "x=a?b:c;"},
		{name: "sequence in statement", src: "a(), b();", want: "a(),b();"},
		{name: "nullish keeps parens around or", src: "x = (a || b) ?? c;", want: "x=(a||b)??c;"},
		{name: "member chain", src: "a.b.c[d].e;", want: "a.b.c[d].e;"},
		{name: "optional chain", src: "a?.b?.[c]?.();", want: "a?.b?.[c]?.();"},
		{name: "new with args", src: "x = new Foo(1, 2);", want: "x=new Foo(1,2);"},
		{name: "new of call needs parens", src: "x = new (factory())();", want: "x=new(factory())();"},
		{name: "object literal statement parenthesized", src: "({ a: 1 });", want: "({a:1});"},
		{name: "object shorthand", src: "x = { a, b: 2 };", want: "x={a,b:2};"},
		{name: "object method", src: "x = { m() { return 1; }, get g() { return 2; } };", want: "x={m(){return 1},get g(){return 2}};"},
		{name: "array holes", src: "x = [1, , 3];", want: "x=[1,,3];"},
		{name: "trailing hole keeps comma", src: "x = [1, , ];", want: "x=[1,,];"},
		{name: "spread", src: "f(...xs);", want: "f(...xs);"},
		{name: "arrow single param", src: "x = (a) => a + 1;", want: "x=a=>a+1;"},
		{name: "arrow object body", src: "x = () => ({ a: 1 });", want: "x=()=>({a:1});"},
		{name: "arrow block body", src: "x = (a, b) => { return a; };", want: "x=(a,b)=>{return a};"},
		{name: "async arrow", src: "x = async (a) => await a;", want: "x=async a=>await a;"},
		{name: "typeof keeps space", src: "x = typeof a === 'string';", want: "x=typeof a==='string';"},
		{name: "unary minus of negative", src: "x = a - -b;", want: "x=a- -b;"},
		{name: "plus plus split", src: "x = a + +b;", want: "x=a+ +b;"},
		{name: "in operator", src: "x = 'a' in o;", want: "x='a'in o;"},
		{name: "instanceof", src: "x = a instanceof B;", want: "x=a instanceof B;"},
		{name: "template", src: "x = `a${b}c`;", want: "x=`a${b}c`;"},
		{name: "tagged template", src: "x = tag`v${n}`;", want: "x=tag`v${n}`;"},
		{name: "destructuring assignment", src: "({ a, b } = o);", want: "({a,b}=o);"},
		{name: "array destructuring", src: "[a, b = 1, ...rest] = xs;", want: "[a,b=1,...rest]=xs;"},
		{name: "regex literal", src: "x = /ab+c/gi;", want: "x=/ab+c/gi;"},
		{name: "dynamic import", src: "p = import('./m.js');", want: "p=import('./m.js');"},
		{name: "comma in computed member", src: "x = o[(a, b)];", want: "x=o[a,b];"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minified(t, tt.src); got != tt.want {
				t.Errorf("minify(%q)\n got %q\nwant %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestMinifyModules(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{name: "default import", src: "import d from 'm';", want: "import d from'm';"},
		{name: "named imports", src: "import { a, b as c } from 'm';", want: "import{a,b as c}from'm';"},
		{name: "namespace import", src: "import * as ns from 'm';", want: "import*as ns from'm';"},
		{name: "mixed import", src: "import d, { a } from 'm';", want: "import d,{a}from'm';"},
		{name: "bare import", src: "import 'm';", want: "import'm';"},
		{name: "export named", src: "export { a, b as c };", want: "export{a,b as c};"},
		{name: "export declaration", src: "export const a = 1;", want: "export const a=1;"},
		{name: "export default expression", src: "export default a + 1;", want: "export default a+1;"},
		{name: "export default function", src: "export default function f() {}", want: "export default function f(){}"},
		{name: "export all", src: "export * from 'm';", want: "export*from'm';"},
		{name: "export all as", src: "export * as ns from 'm';", want: "export*as ns from'm';"},
		{name: "re-export", src: "export { a } from 'm';", want: "export{a}from'm';"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := minified(t, tt.src); got != tt.want {
				t.Errorf("minify(%q)\n got %q\nwant %q", tt.src, got, tt.want)
			}
		})
	}
}

func TestReadableOutput(t *testing.T) {
	prog, _ := parse(t, "if(a){b()}else{c()}")
	got := codegen.Print(prog, codegen.Options{Minify: false}).Code
	want := "if (a) {\n  b();\n} else {\n  c();\n}\n"
	if got != want {
		t.Errorf("readable output\n got %q\nwant %q", got, want)
	}
}

func TestHashbangPreserved(t *testing.T) {
	got := minified(t, "#!/usr/bin/env node\nf();")
	if !strings.HasPrefix(got, "#!/usr/bin/env node\n") {
		t.Errorf("hashbang lost: %q", got)
	}
}

func TestSourceMapEmission(t *testing.T) {
	prog, file := parse(t, "let answer = 42;\nuse(answer);")
	res := codegen.Print(prog, codegen.Options{Minify: true, SourceMap: true, File: file})
	if res.Map == nil {
		t.Fatal("no source map produced")
	}
	if res.Map.Version != 3 {
		t.Errorf("map version = %d, want 3", res.Map.Version)
	}
	if len(res.Map.Sources) != 1 || res.Map.Sources[0] != "test.js" {
		t.Errorf("map sources = %v", res.Map.Sources)
	}
	if res.Map.Mappings == "" {
		t.Error("map has no mappings")
	}
	found := false
	for _, name := range res.Map.Names {
		if name == "answer" {
			found = true
		}
	}
	if !found {
		t.Errorf("map names %v missing identifier", res.Map.Names)
	}
}

// Printing after mangling exercises the shorthand fallback: a renamed
// shorthand property must come back out in long form.
func TestPrintAfterMangle(t *testing.T) {
	prog, _ := parse(t, "function f() { let value = 1; return { value }; }")
	mangle.Mangle(prog, mangle.Default())
	got := codegen.Print(prog, codegen.Options{Minify: true}).Code
	// The binding gets a short name while the property key survives, so
	// the shorthand comes back out in long form.
	if !strings.Contains(got, "value:") {
		t.Errorf("property key lost after mangle: %q", got)
	}
	if !strings.HasPrefix(got, "function f(){let ") {
		t.Errorf("unexpected shape: %q", got)
	}
}

func TestRoundTripReparse(t *testing.T) {
	sources := []string{
		"let a = 1; function f(x) { return x * 2; } f(a);",
		"class A { m() { return this.#x; } #x = 1; }",
		"const { a, b = 2, ...rest } = o; export { a };",
		"async function* g() { for await (const v of src) yield v; }",
	}
	for _, src := range sources {
		prog, _ := parse(t, src)
		out := codegen.Print(prog, codegen.Options{Minify: true}).Code
		reparsed, _ := parse(t, out)
		if len(reparsed.Body) != len(prog.Body) {
			t.Errorf("round trip of %q changed statement count: %q", src, out)
		}
	}
}
