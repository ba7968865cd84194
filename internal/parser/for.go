package parser

import (
	"whittle/internal/ast"
	"whittle/internal/diag"
	"whittle/internal/source"
	"whittle/internal/token"
)

// parseForStatement parses the three for forms. The head is parsed with the
// in operator suppressed so that a following 'in' or 'of' can be claimed by
// the loop itself.
func (p *Parser) parseForStatement() ast.Stmt {
	start := p.advance().Span // for

	isAwait := false
	var awaitSpan source.Span
	if p.atIdent("await") {
		tok := p.advance()
		isAwait = true
		awaitSpan = tok.Span
		if !p.inAsync {
			p.errAt(diag.SynUnexpectedToken, tok.Span, "for await is only allowed in async contexts")
		}
	}
	p.expect(token.LParen, "expected '(' after for")

	// Empty init.
	if p.at(token.Semicolon) {
		if isAwait {
			p.errAt(diag.SynBadForInOfTarget, awaitSpan, "for await requires a for-of loop")
		}
		p.next()
		return p.parseForRest(start, nil)
	}

	var init ast.Expr
	switch {
	case p.at(token.KwVar):
		init = p.parseVarDecl(ast.DeclVar, true)
	case p.at(token.KwConst):
		init = p.parseVarDecl(ast.DeclConst, true)
	case p.atIdent("let") && p.letStartsDeclaration():
		init = p.parseVarDecl(ast.DeclLet, true)
	default:
		init = p.parseExpression(true)
	}

	if p.at(token.KwIn) {
		if isAwait {
			p.errAt(diag.SynBadForInOfTarget, awaitSpan, "for await requires a for-of loop")
		}
		p.next()
		left := p.forTarget(init)
		right := p.parseExpression(false)
		p.expect(token.RParen, "expected ')' after for-in head")
		body := p.parseLoopBody()
		return ast.NewForInStmt(p.spanFrom(start), left, right, body)
	}

	if p.atIdent("of") {
		p.next()
		left := p.forTarget(init)
		right := p.parseAssignExpr(false)
		p.expect(token.RParen, "expected ')' after for-of head")
		body := p.parseLoopBody()
		return ast.NewForOfStmt(p.spanFrom(start), isAwait, left, right, body)
	}

	if isAwait {
		p.errAt(diag.SynBadForInOfTarget, awaitSpan, "for await requires a for-of loop")
	}
	p.expect(token.Semicolon, "expected ';' after for initializer")
	return p.parseForRest(start, init)
}

// parseForRest parses the test and update clauses of a classic for loop.
// The initializer and its semicolon are already consumed.
func (p *Parser) parseForRest(start source.Span, init ast.Expr) ast.Stmt {
	var test ast.Expr
	if !p.at(token.Semicolon) {
		test = p.parseExpression(false)
	}
	p.expect(token.Semicolon, "expected ';' after for condition")

	var update ast.Expr
	if !p.at(token.RParen) {
		update = p.parseExpression(false)
	}
	p.expect(token.RParen, "expected ')' after for head")

	body := p.parseLoopBody()
	return ast.NewForStmt(p.spanFrom(start), init, test, update, body)
}

func (p *Parser) parseLoopBody() ast.Stmt {
	p.loopDepth++
	body := p.parseStatement(false)
	p.loopDepth--
	return body
}

// forTarget validates the left side of a for-in or for-of head. A
// declaration must have a single binding without an initializer; anything
// else must be an assignment target.
func (p *Parser) forTarget(init ast.Expr) ast.Expr {
	if decl, ok := init.(*ast.VarDecl); ok {
		if len(decl.Declarations) != 1 {
			p.errAt(diag.SynBadForInOfTarget, decl.Span(),
				"for-in/of head allows a single declaration only")
		} else if decl.Declarations[0].Init != nil {
			p.errAt(diag.SynBadForInOfTarget, decl.Declarations[0].Span(),
				"for-in/of declaration may not have an initializer")
		}
		return decl
	}
	return p.toAssignTarget(init)
}
