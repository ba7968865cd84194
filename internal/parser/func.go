package parser

import (
	"whittle/internal/ast"
	"whittle/internal/diag"
	"whittle/internal/source"
	"whittle/internal/token"
)

// enterFunction switches the grammar context for a function body and
// returns the restore. Arrows keep the enclosing this, super, and
// new.target context.
func (p *Parser) enterFunction(generator, async, arrow bool) func() {
	savedFn, savedGen, savedAsync := p.inFunction, p.inGenerator, p.inAsync
	savedMethod, savedNewTarget := p.inClassMethod, p.allowNewTarget
	savedLoop, savedSwitch, savedLabels := p.loopDepth, p.switchDepth, p.labels

	p.inFunction, p.inGenerator, p.inAsync = true, generator, async
	if !arrow {
		p.inClassMethod = false
		p.allowNewTarget = true
	}
	p.loopDepth, p.switchDepth, p.labels = 0, 0, nil

	return func() {
		p.inFunction, p.inGenerator, p.inAsync = savedFn, savedGen, savedAsync
		p.inClassMethod, p.allowNewTarget = savedMethod, savedNewTarget
		p.loopDepth, p.switchDepth, p.labels = savedLoop, savedSwitch, savedLabels
	}
}

// parseFunctionDeclaration parses a function statement. async means the
// current token is the async keyword.
func (p *Parser) parseFunctionDeclaration(async bool) ast.Stmt {
	return p.parseFunctionDecl(async, false)
}

// parseFunctionDecl is the shared body; nameOptional permits the anonymous
// form that export default allows.
func (p *Parser) parseFunctionDecl(async, nameOptional bool) *ast.FuncDecl {
	start := p.cur.Span
	if async {
		p.next() // async
	}
	p.expect(token.KwFunction, "expected 'function'")
	generator := p.eat(token.Star)

	var id *ast.Ident
	if p.at(token.Ident) {
		id = p.bindingIdent()
	} else if !nameOptional {
		p.err(diag.SynExpectIdent, "expected function name")
	}

	restore := p.enterFunction(generator, async, false)
	params := p.parseParams()
	body := p.parseFunctionBody()
	restore()

	return ast.NewFuncDecl(p.spanFrom(start), id, params, body, generator, async)
}

// parseFunctionExpression parses function and async function in expression
// position; the name is optional and only visible inside the body.
func (p *Parser) parseFunctionExpression() ast.Expr {
	start := p.cur.Span
	async := false
	if p.atIdent("async") {
		async = true
		p.next()
	}
	p.expect(token.KwFunction, "expected 'function'")
	generator := p.eat(token.Star)

	var id *ast.Ident
	if p.at(token.Ident) {
		id = p.bindingIdent()
	}

	restore := p.enterFunction(generator, async, false)
	params := p.parseParams()
	body := p.parseFunctionBody()
	restore()

	return ast.NewFuncExpr(p.spanFrom(start), id, params, body, generator, async)
}

// parseMethodFunction parses the parameter list and body of an object or
// class method. The current token is the opening parenthesis.
func (p *Parser) parseMethodFunction(generator, async bool) *ast.FuncExpr {
	start := p.cur.Span

	restore := p.enterFunction(generator, async, false)
	p.inClassMethod = true
	params := p.parseParams()
	body := p.parseFunctionBody()
	restore()

	return ast.NewFuncExpr(p.spanFrom(start), nil, params, body, generator, async)
}

// parseArrowBody parses the => and body of an arrow whose parameters are
// already converted.
func (p *Parser) parseArrowBody(start source.Span, params []ast.Pattern, async bool) ast.Expr {
	p.expect(token.Arrow, "expected '=>'")

	restore := p.enterFunction(false, async, true)
	defer restore()

	if p.at(token.LBrace) {
		body := p.parseFunctionBody()
		return ast.NewArrowFuncExpr(p.spanFrom(start), params, body, false, async)
	}
	expr := p.parseAssignExpr(false)
	return ast.NewArrowFuncExpr(p.spanFrom(start), params, expr, true, async)
}

// parseParams parses a parenthesized parameter list.
func (p *Parser) parseParams() []ast.Pattern {
	p.expect(token.LParen, "expected '(' before parameters")
	var params []ast.Pattern
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			rest := p.parseRestBinding()
			params = append(params, rest)
			if !p.at(token.RParen) {
				p.errAt(diag.SynRestNotLast, rest.Span(), "rest parameter must be last")
			}
		} else {
			params = append(params, p.parseBindingElement())
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, "expected ')' after parameters")
	return params
}

// parseFunctionBody parses a braced body with its directive prologue. A
// "use strict" directive applies for the body only.
func (p *Parser) parseFunctionBody() *ast.BlockStmt {
	start := p.cur.Span
	p.expect(token.LBrace, "expected '{' to open function body")

	savedStrict := p.strict
	body := p.parseDirectivePrologue()
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		body = append(body, p.parseStatement(false))
	}
	p.expect(token.RBrace, "expected '}' to close function body")
	p.strict = savedStrict

	return ast.NewBlockStmt(p.spanFrom(start), body)
}
