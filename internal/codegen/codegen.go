// Package codegen prints a syntax tree back to JavaScript text.
//
// Two output shapes: readable (newlines, indentation, spaces around
// operators) and minified (no whitespace beyond what the grammar forces).
// Both are driven by the same printer; Options.Minify selects the shape.
// Parentheses are inserted from operator precedence, never copied from the
// source, so the output is correct for trees the rewrite passes have
// changed. The printer can also record a source map while it writes.
package codegen

import (
	"strings"

	"whittle/internal/ast"
	"whittle/internal/source"
	"whittle/sourcemap"
)

// Options configures one print.
type Options struct {
	// Minify drops all optional whitespace.
	Minify bool
	// SourceMap enables mapping collection; requires File.
	SourceMap bool
	// File is the original source, used to resolve node spans into
	// line/column pairs for the source map.
	File *source.File
}

// Default is the configuration used when code generation is enabled
// without detail settings.
func Default() Options {
	return Options{Minify: true}
}

// Result is the printed text plus the source map when one was requested.
type Result struct {
	Code string
	Map  *sourcemap.Map
}

// Print renders the program.
func Print(prog *ast.Program, opts Options) Result {
	p := &printer{opts: opts}
	if opts.SourceMap && opts.File != nil {
		p.smap = sourcemap.NewBuilder("", opts.File.Path, string(opts.File.Content))
	}
	p.program(prog)
	res := Result{Code: p.sb.String()}
	if p.smap != nil {
		res.Map = p.smap.Build()
	}
	return res
}

type printer struct {
	opts   Options
	sb     strings.Builder
	smap   *sourcemap.Builder
	indent int
	// generated position, 0-based, for source map segments
	line int
	col  int
}

// print appends raw text and keeps the generated position current.
func (p *printer) print(s string) {
	p.sb.WriteString(s)
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			p.line++
			p.col = 0
		} else {
			p.col++
		}
	}
}

func isIdentByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9') || b >= 0x80
}

func (p *printer) lastByte() byte {
	s := p.sb.String()
	if len(s) == 0 {
		return 0
	}
	return s[len(s)-1]
}

// word writes s, separating it from a preceding identifier or keyword so
// the two do not fuse into one token.
func (p *printer) word(s string) {
	if len(s) > 0 && isIdentByte(s[0]) && isIdentByte(p.lastByte()) {
		p.print(" ")
	}
	p.print(s)
}

// op writes an operator, guarding the +/- doubling cases: `a+ +b` must not
// become `a++b`.
func (p *printer) op(s string) {
	if len(s) > 0 {
		last := p.lastByte()
		if (s[0] == '+' && last == '+') || (s[0] == '-' && last == '-') {
			p.print(" ")
		}
	}
	p.print(s)
}

// space writes one optional space; dropped when minifying.
func (p *printer) space() {
	if !p.opts.Minify {
		p.print(" ")
	}
}

// nl starts a new indented line; dropped when minifying.
func (p *printer) nl() {
	if p.opts.Minify {
		return
	}
	p.print("\n")
	for i := 0; i < p.indent; i++ {
		p.print("  ")
	}
}

// mark records a source map segment for the node starting at off.
func (p *printer) mark(off uint32, name string) {
	if p.smap == nil {
		return
	}
	lc := p.opts.File.Resolve(off)
	p.smap.AddMapping(p.line, p.col, int(lc.Line)-1, int(lc.Col)-1, name)
}

func (p *printer) program(prog *ast.Program) {
	if prog.Hashbang != nil {
		p.print("#!" + prog.Hashbang.Value)
		p.print("\n")
	}
	for i, s := range prog.Body {
		if i > 0 {
			p.nl()
		}
		p.stmt(s)
	}
	if !p.opts.Minify && len(prog.Body) > 0 {
		p.print("\n")
	}
}
