// Package fuzztests houses Go fuzz harnesses that exercise the engine
// front end (source -> lexer -> parser) and the full minify pipeline. The
// goal is to smoke test robustness: arbitrary bytes must never panic, hang,
// or explode the allocator.
package fuzztests
