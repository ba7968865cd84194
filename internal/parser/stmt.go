package parser

import (
	"whittle/internal/ast"
	"whittle/internal/diag"
	"whittle/internal/token"
)

// parseStatement parses one statement or declaration. topLevel marks
// program-level position, the only place import and export may appear.
func (p *Parser) parseStatement(topLevel bool) ast.Stmt {
	switch p.cur.Kind {
	case token.LBrace:
		return p.parseBlock()

	case token.Semicolon:
		tok := p.advance()
		return ast.NewEmptyStmt(tok.Span)

	case token.KwVar:
		return p.parseVarStatement(ast.DeclVar)

	case token.KwConst:
		return p.parseVarStatement(ast.DeclConst)

	case token.KwFunction:
		return p.parseFunctionDeclaration(false)

	case token.KwClass:
		return p.parseClassDeclaration()

	case token.KwIf:
		return p.parseIfStatement()

	case token.KwSwitch:
		return p.parseSwitchStatement()

	case token.KwFor:
		return p.parseForStatement()

	case token.KwWhile:
		return p.parseWhileStatement()

	case token.KwDo:
		return p.parseDoWhileStatement()

	case token.KwTry:
		return p.parseTryStatement()

	case token.KwThrow:
		return p.parseThrowStatement()

	case token.KwReturn:
		return p.parseReturnStatement()

	case token.KwBreak:
		return p.parseBreakStatement()

	case token.KwContinue:
		return p.parseContinueStatement()

	case token.KwDebugger:
		start := p.advance().Span
		p.consumeSemicolon()
		return ast.NewDebuggerStmt(p.spanFrom(start))

	case token.KwWith:
		return p.parseWithStatement()

	case token.KwImport:
		// import( and import.meta are expressions, not declarations.
		if next := p.lx.Peek(); next.Kind == token.LParen || next.Kind == token.Dot {
			return p.parseExpressionStatement()
		}
		if p.opts.SourceType != ast.SourceTypeModule {
			p.err(diag.SynImportOutsideModule, "import declarations require module source type")
		} else if !topLevel {
			p.err(diag.SynImportOutsideModule, "import declarations are only allowed at the top level")
		}
		return p.parseImportDeclaration()

	case token.KwExport:
		if p.opts.SourceType != ast.SourceTypeModule {
			p.err(diag.SynExportOutsideModule, "export declarations require module source type")
		} else if !topLevel {
			p.err(diag.SynExportOutsideModule, "export declarations are only allowed at the top level")
		}
		return p.parseExportDeclaration()

	case token.Ident:
		switch p.cur.Text {
		case "let":
			if p.letStartsDeclaration() {
				return p.parseVarStatement(ast.DeclLet)
			}
		case "async":
			if next := p.lx.Peek(); next.Kind == token.KwFunction && !next.NewlineBefore {
				return p.parseFunctionDeclaration(true)
			}
		}
		if p.lx.Peek().Kind == token.Colon {
			return p.parseLabeledStatement()
		}
		return p.parseExpressionStatement()

	case token.EOF:
		p.err(diag.SynUnexpectedToken, "unexpected end of input")
		return ast.NewEmptyStmt(p.cur.Span)

	default:
		return p.parseExpressionStatement()
	}
}

// letStartsDeclaration decides whether a leading let begins a declaration
// rather than an identifier expression. In strict mode let is reserved, so
// it always does.
func (p *Parser) letStartsDeclaration() bool {
	next := p.lx.Peek()
	switch next.Kind {
	case token.Ident, token.LBracket, token.LBrace:
		return true
	}
	return p.strict
}

func (p *Parser) parseBlock() *ast.BlockStmt {
	start := p.cur.Span
	p.expect(token.LBrace, "expected '{'")
	var body []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		body = append(body, p.parseStatement(false))
	}
	p.expect(token.RBrace, "expected '}' to close block")
	return ast.NewBlockStmt(p.spanFrom(start), body)
}

// parseVarStatement parses var/let/const plus its declarator list and
// terminating semicolon.
func (p *Parser) parseVarStatement(kind ast.DeclKind) ast.Stmt {
	decl := p.parseVarDecl(kind, false)
	p.consumeSemicolon()
	return decl
}

// parseVarDecl parses the declaration without the semicolon; for-loop heads
// use it with noIn set.
func (p *Parser) parseVarDecl(kind ast.DeclKind, noIn bool) *ast.VarDecl {
	start := p.advance().Span // var/let/const

	var decls []*ast.VarDeclarator
	for {
		dStart := p.cur.Span
		id := p.parseBindingPattern()
		var init ast.Expr
		if p.eat(token.Assign) {
			init = p.parseAssignExpr(noIn)
		} else if kind == ast.DeclConst && !noIn {
			p.errAt(diag.SynConstWithoutInit, dStart.Cover(p.lastSpan),
				"const declaration needs an initializer")
		} else if !noIn {
			if _, isIdent := id.(*ast.Ident); !isIdent {
				p.errAt(diag.SynBadDestructuring, dStart.Cover(p.lastSpan),
					"destructuring declaration needs an initializer")
			}
		}
		decls = append(decls, ast.NewVarDeclarator(p.spanFrom(dStart), id, init))
		if !p.eat(token.Comma) {
			break
		}
	}

	return ast.NewVarDecl(p.spanFrom(start), kind, decls)
}

func (p *Parser) parseIfStatement() ast.Stmt {
	start := p.advance().Span // if
	p.expect(token.LParen, "expected '(' after if")
	test := p.parseExpression(false)
	p.expect(token.RParen, "expected ')' after if condition")
	consequent := p.parseStatement(false)
	var alternate ast.Stmt
	if p.eat(token.KwElse) {
		alternate = p.parseStatement(false)
	}
	return ast.NewIfStmt(p.spanFrom(start), test, consequent, alternate)
}

func (p *Parser) parseSwitchStatement() ast.Stmt {
	start := p.advance().Span // switch
	p.expect(token.LParen, "expected '(' after switch")
	discriminant := p.parseExpression(false)
	p.expect(token.RParen, "expected ')' after switch value")
	p.expect(token.LBrace, "expected '{' to open switch body")

	p.switchDepth++
	var cases []*ast.SwitchCase
	sawDefault := false
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		cStart := p.cur.Span
		var test ast.Expr
		if p.eat(token.KwCase) {
			test = p.parseExpression(false)
		} else if def := p.cur; p.eat(token.KwDefault) {
			if sawDefault {
				p.errAt(diag.SynDuplicateDefault, def.Span, "switch already has a default clause")
			}
			sawDefault = true
		} else {
			p.err(diag.SynExpectToken, "expected 'case' or 'default' in switch body")
			p.resyncStatement()
			continue
		}
		p.expect(token.Colon, "expected ':' after case")
		var stmts []ast.Stmt
		for !p.at(token.KwCase) && !p.at(token.KwDefault) && !p.at(token.RBrace) && !p.at(token.EOF) {
			stmts = append(stmts, p.parseStatement(false))
		}
		cases = append(cases, ast.NewSwitchCase(p.spanFrom(cStart), test, stmts))
	}
	p.switchDepth--
	p.expect(token.RBrace, "expected '}' to close switch")

	return ast.NewSwitchStmt(p.spanFrom(start), discriminant, cases)
}

func (p *Parser) parseWhileStatement() ast.Stmt {
	start := p.advance().Span // while
	p.expect(token.LParen, "expected '(' after while")
	test := p.parseExpression(false)
	p.expect(token.RParen, "expected ')' after while condition")
	p.loopDepth++
	body := p.parseStatement(false)
	p.loopDepth--
	return ast.NewWhileStmt(p.spanFrom(start), test, body)
}

func (p *Parser) parseDoWhileStatement() ast.Stmt {
	start := p.advance().Span // do
	p.loopDepth++
	body := p.parseStatement(false)
	p.loopDepth--
	p.expect(token.KwWhile, "expected 'while' after do body")
	p.expect(token.LParen, "expected '(' after while")
	test := p.parseExpression(false)
	p.expect(token.RParen, "expected ')' after do-while condition")
	// The semicolon after do-while inserts even without a line break.
	p.eat(token.Semicolon)
	return ast.NewDoWhileStmt(p.spanFrom(start), body, test)
}

func (p *Parser) parseThrowStatement() ast.Stmt {
	start := p.advance().Span // throw
	if p.cur.NewlineBefore {
		p.err(diag.SynExpectExpr, "line break not allowed between throw and its expression")
	}
	arg := p.parseExpression(false)
	p.consumeSemicolon()
	return ast.NewThrowStmt(p.spanFrom(start), arg)
}

func (p *Parser) parseReturnStatement() ast.Stmt {
	start := p.cur.Span
	if !p.inFunction {
		p.errAt(diag.SynReturnOutsideFn, start, "return is only allowed inside a function")
	}
	p.advance() // return
	var arg ast.Expr
	if !p.cur.NewlineBefore && !p.at(token.Semicolon) && !p.at(token.RBrace) && !p.at(token.EOF) {
		arg = p.parseExpression(false)
	}
	p.consumeSemicolon()
	return ast.NewReturnStmt(p.spanFrom(start), arg)
}

func (p *Parser) parseBreakStatement() ast.Stmt {
	start := p.advance().Span // break
	var label *ast.Ident
	if p.at(token.Ident) && !p.cur.NewlineBefore {
		tok := p.advance()
		label = ast.NewIdent(tok.Span, tok.Text)
		if !p.hasLabel(label.Name) {
			p.errAt(diag.SynIllegalBreak, label.Span(), "break references unknown label "+label.Name)
		}
	} else if p.loopDepth == 0 && p.switchDepth == 0 {
		p.errAt(diag.SynIllegalBreak, start, "break is only allowed inside a loop or switch")
	}
	p.consumeSemicolon()
	return ast.NewBreakStmt(p.spanFrom(start), label)
}

func (p *Parser) parseContinueStatement() ast.Stmt {
	start := p.advance().Span // continue
	var label *ast.Ident
	if p.at(token.Ident) && !p.cur.NewlineBefore {
		tok := p.advance()
		label = ast.NewIdent(tok.Span, tok.Text)
		if !p.hasLoopLabel(label.Name) {
			p.errAt(diag.SynIllegalContinue, label.Span(), "continue references no enclosing loop label "+label.Name)
		}
	} else if p.loopDepth == 0 {
		p.errAt(diag.SynIllegalContinue, start, "continue is only allowed inside a loop")
	}
	p.consumeSemicolon()
	return ast.NewContinueStmt(p.spanFrom(start), label)
}

func (p *Parser) parseTryStatement() ast.Stmt {
	start := p.advance().Span // try
	block := p.parseBlock()

	var handler *ast.CatchClause
	if p.at(token.KwCatch) {
		cStart := p.advance().Span
		var param ast.Pattern
		if p.eat(token.LParen) {
			param = p.parseBindingPattern()
			p.expect(token.RParen, "expected ')' after catch binding")
		}
		body := p.parseBlock()
		handler = ast.NewCatchClause(p.spanFrom(cStart), param, body)
	}

	var finalizer *ast.BlockStmt
	if p.eat(token.KwFinally) {
		finalizer = p.parseBlock()
	}

	if handler == nil && finalizer == nil {
		p.err(diag.SynExpectToken, "try needs a catch or finally clause")
	}
	return ast.NewTryStmt(p.spanFrom(start), block, handler, finalizer)
}

func (p *Parser) parseWithStatement() ast.Stmt {
	start := p.cur.Span
	if p.strict {
		p.errAt(diag.SynUnexpectedToken, start, "with statements are not allowed in strict mode")
	}
	p.advance() // with
	p.expect(token.LParen, "expected '(' after with")
	object := p.parseExpression(false)
	p.expect(token.RParen, "expected ')' after with object")
	body := p.parseStatement(false)
	return ast.NewWithStmt(p.spanFrom(start), object, body)
}

// parseLabeledStatement parses a run of labels and the statement they
// annotate. The whole chain is collected first so that every label on a
// loop is a valid continue target.
func (p *Parser) parseLabeledStatement() ast.Stmt {
	var chain []token.Token
	for p.at(token.Ident) && p.lx.Peek().Kind == token.Colon {
		tok := p.advance()
		p.advance() // ':'
		chain = append(chain, tok)
	}

	isLoop := false
	switch p.cur.Kind {
	case token.KwFor, token.KwWhile, token.KwDo:
		isLoop = true
	}

	base := len(p.labels)
	for _, tok := range chain {
		if p.hasLabel(tok.Text) {
			p.errAt(diag.SynLabelRedeclared, tok.Span, "label "+tok.Text+" already declared")
		}
		p.labels = append(p.labels, labelInfo{name: tok.Text, isLoop: isLoop})
	}
	body := p.parseStatement(false)
	p.labels = p.labels[:base]

	for i := len(chain) - 1; i >= 0; i-- {
		tok := chain[i]
		label := ast.NewIdent(tok.Span, tok.Text)
		body = ast.NewLabeledStmt(tok.Span.Cover(p.lastSpan), label, body)
	}
	return body
}

func (p *Parser) hasLabel(name string) bool {
	for _, l := range p.labels {
		if l.name == name {
			return true
		}
	}
	return false
}

func (p *Parser) hasLoopLabel(name string) bool {
	for _, l := range p.labels {
		if l.name == name && l.isLoop {
			return true
		}
	}
	return false
}

func (p *Parser) parseExpressionStatement() ast.Stmt {
	start := p.cur.Span
	expr := p.parseExpression(false)
	p.consumeSemicolon()
	return ast.NewExprStmt(p.spanFrom(start), expr)
}
