// Package parser builds the syntax tree for one JavaScript file.
//
// The grammar's two lexical ambiguities are resolved here by directing the
// lexer: a '/' where an expression is expected is rescanned as a regular
// expression, and a '}' closing a template substitution is rescanned as the
// next template chunk. Arrow functions are handled with the cover grammar:
// a parenthesized expression is parsed first and converted to parameters
// when '=>' follows.
package parser

import (
	"whittle/internal/ast"
	"whittle/internal/diag"
	"whittle/internal/lexer"
	"whittle/internal/source"
	"whittle/internal/token"
)

// Options configures a single parse.
type Options struct {
	// SourceType selects script or module semantics. The zero value means
	// module.
	SourceType ast.SourceType
	// MaxErrors caps reported syntax errors; 0 means no cap. When the cap
	// is hit, a summary diagnostic without a source label is emitted and
	// further errors are dropped.
	MaxErrors uint
	Reporter  diag.Reporter
}

// Result is the outcome of parsing one file.
type Result struct {
	Program  *ast.Program
	Comments []token.Comment
}

// Parser holds the state for one file.
type Parser struct {
	file *source.File
	lx   *lexer.Lexer
	opts Options

	cur      token.Token // current, not yet consumed token
	lastSpan source.Span // span of the last consumed token

	errorCount uint
	sawTooMany bool

	// Grammar context.
	strict         bool
	inFunction     bool
	inGenerator    bool
	inAsync        bool
	inClass        bool
	inClassMethod  bool
	allowNewTarget bool
	loopDepth      int
	switchDepth    int
	labels         []labelInfo

	// parens marks expressions that were written in parentheses. The tree
	// drops grouping nodes, but ?? may not mix with && or || without them,
	// so that one fact survives here.
	parens map[ast.Expr]bool
}

func (p *Parser) markParen(e ast.Expr) {
	if p.parens == nil {
		p.parens = make(map[ast.Expr]bool)
	}
	p.parens[e] = true
}

type labelInfo struct {
	name   string
	isLoop bool
}

// Parse runs the parser over a file.
func Parse(file *source.File, opts Options) *Result {
	if opts.SourceType == "" {
		opts.SourceType = ast.SourceTypeModule
	}
	p := &Parser{file: file, opts: opts}
	// Route lexer diagnostics through the same cap-counting logic.
	p.lx = lexer.New(file, lexer.Options{Reporter: reporterFunc(p.emit)})
	p.strict = opts.SourceType == ast.SourceTypeModule
	p.inAsync = opts.SourceType == ast.SourceTypeModule // top-level await
	p.next()

	prog := p.parseProgram()
	return &Result{Program: prog, Comments: p.lx.Comments()}
}

// reporterFunc adapts a function to diag.Reporter.
type reporterFunc func(diag.Diagnostic)

func (f reporterFunc) Report(d diag.Diagnostic) {
	if f != nil {
		f(d)
	}
}

func (p *Parser) parseProgram() *ast.Program {
	start := p.cur.Span

	var hashbang *ast.Hashbang
	if sp, ok := p.lx.Hashbang(); ok {
		// Value excludes the #! marker.
		content := source.Span{Start: sp.Start + 2, End: sp.End}
		hashbang = ast.NewHashbang(sp, p.file.Slice(content))
		start = sp
	}

	body := p.parseDirectivePrologue()
	for !p.at(token.EOF) {
		body = append(body, p.parseStatement(true))
	}

	sp := start.Cover(p.lastSpan)
	if len(body) == 0 {
		sp = source.Span{Start: start.Start, End: p.cur.Span.End}
	}
	prog := ast.NewProgram(sp, p.opts.SourceType, body)
	prog.Hashbang = hashbang
	return prog
}

// parseDirectivePrologue consumes leading string-literal statements,
// marking them as directives and switching on strict mode.
func (p *Parser) parseDirectivePrologue() []ast.Stmt {
	var body []ast.Stmt
	for p.at(token.Str) {
		raw := p.cur.Text
		stmt := p.parseStatement(true)
		es, ok := stmt.(*ast.ExprStmt)
		if !ok {
			body = append(body, stmt)
			break
		}
		// A directive only counts when the statement is exactly the
		// string literal.
		lit, ok := es.Expression.(*ast.Literal)
		if !ok || len(raw) < 2 || lit.Raw != raw {
			body = append(body, stmt)
			break
		}
		es.Directive = raw[1 : len(raw)-1]
		if es.Directive == "use strict" {
			p.strict = true
		}
		body = append(body, es)
	}
	return body
}

// ---- token plumbing ----

// next loads the following token into cur.
func (p *Parser) next() {
	if p.cur.Kind != token.EOF && p.cur.Kind != token.Invalid {
		p.lastSpan = p.cur.Span
	}
	p.cur = p.lx.Next()
}

// advance consumes and returns the current token.
func (p *Parser) advance() token.Token {
	tok := p.cur
	p.next()
	return tok
}

// peek looks one token past cur without consuming anything.
func (p *Parser) peek() token.Token {
	return p.lx.Peek()
}

func (p *Parser) at(k token.Kind) bool {
	return p.cur.Kind == k
}

// atIdent reports whether the current token is the identifier name (used
// for contextual keywords: let, async, of, static, get, set, as, from).
func (p *Parser) atIdent(name string) bool {
	return p.cur.Kind == token.Ident && p.cur.Text == name
}

// eat consumes the current token when it matches.
func (p *Parser) eat(k token.Kind) bool {
	if p.at(k) {
		p.next()
		return true
	}
	return false
}

// expect consumes a token of kind k or reports and synthesizes one.
func (p *Parser) expect(k token.Kind, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	sp := p.diagSpan()
	p.errAt(diag.SynExpectToken, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: p.cur.Text}, false
}

// diagSpan picks the span diagnostics should point at: the current token,
// or the position right after the last one at end of input.
func (p *Parser) diagSpan() source.Span {
	if p.at(token.EOF) && p.lastSpan.End > 0 {
		return source.Span{Start: p.lastSpan.End, End: p.lastSpan.End}
	}
	return p.cur.Span
}

// ---- diagnostics ----

func (p *Parser) err(code diag.Code, msg string) {
	p.errAt(code, p.diagSpan(), msg)
}

func (p *Parser) errAt(code diag.Code, sp source.Span, msg string) {
	p.emit(diag.New(diag.SevError, code, sp, msg))
}

// emit forwards a diagnostic, honoring the error cap. At the cap a single
// summary without labels goes out and everything after is dropped.
func (p *Parser) emit(d diag.Diagnostic) {
	if p.opts.Reporter == nil {
		return
	}
	if d.Severity == diag.SevError {
		p.errorCount++
		if p.opts.MaxErrors > 0 && p.errorCount > p.opts.MaxErrors {
			if !p.sawTooMany {
				p.sawTooMany = true
				p.opts.Reporter.Report(diag.Unlabeled(diag.SevError, diag.SynTooManyErrors,
					"too many syntax errors; giving up reporting"))
			}
			return
		}
	}
	p.opts.Reporter.Report(d)
}

// ---- recovery ----

// resyncStatement skips tokens until a plausible statement boundary so one
// error does not cascade over the whole file.
func (p *Parser) resyncStatement() {
	for !p.at(token.EOF) {
		if p.eat(token.Semicolon) {
			return
		}
		switch p.cur.Kind {
		case token.RBrace, token.KwVar, token.KwConst, token.KwFunction,
			token.KwClass, token.KwIf, token.KwFor, token.KwWhile, token.KwDo,
			token.KwSwitch, token.KwTry, token.KwReturn, token.KwThrow,
			token.KwBreak, token.KwContinue, token.KwImport, token.KwExport:
			return
		}
		if p.cur.NewlineBefore {
			return
		}
		p.next()
	}
}

// consumeSemicolon applies automatic semicolon insertion after a statement:
// an explicit ';' is eaten; a line break, '}', or end of input inserts one;
// anything else is an error.
func (p *Parser) consumeSemicolon() {
	if p.eat(token.Semicolon) {
		return
	}
	if p.cur.NewlineBefore || p.at(token.RBrace) || p.at(token.EOF) {
		return
	}
	p.err(diag.SynExpectToken, "expected ';' after statement but found "+p.cur.Kind.String())
	p.resyncStatement()
}

// spanFrom builds a span from a start offset to the end of the last
// consumed token.
func (p *Parser) spanFrom(start source.Span) source.Span {
	return source.Span{Start: start.Start, End: p.lastSpan.End}
}
