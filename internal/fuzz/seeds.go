package fuzztests

import "testing"

const maxFuzzInput = 1 << 16 // 64 KiB

var languageSeeds = []string{
	"",
	"let a = 1;",
	"const {a, b = 2, ...rest} = obj;",
	"function* gen() { yield* inner(); }",
	"async function f() { await g(); }",
	"class A extends B { #x = 1; get x() { return this.#x; } }",
	"export default function () {}\nimport d, {n as m} from 'mod';",
	"a?.b?.[c]?.(d) ?? e;",
	"`head ${x + `nested ${y}`} tail`",
	"/ab+c/giu.test(s) ? l1 : l2;",
	"#!/usr/bin/env node\nconsole.log('hi');",
	"for await (const x of xs) { if (x) continue; else break; }",
	"label: for (;;) { break label; }",
	"x **= 2 ** -3;",
	"switch (v) { case 1: case 2: break; default: }",
	"try { t(); } catch { /* drop */ } finally { f(); }",
	"let \\u0061 = '\\u{1F600}\\n\\x41';",
	"0b101 + 0o17 + 0xFF + 1_000_000n;",
	"(a, b) => ({c: a, [b]: 1});",
	"new new.target(...args)();",
	"'unterminated",
	"let = ;",
	"){[}",
}

func addCorpusSeeds(f *testing.F) {
	f.Helper()
	for _, seed := range languageSeeds {
		f.Add([]byte(seed))
	}
}

func clampSeed(input []byte) []byte {
	if len(input) > maxFuzzInput {
		input = input[:maxFuzzInput]
	}
	return append([]byte(nil), input...)
}
