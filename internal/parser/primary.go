package parser

import (
	"whittle/internal/ast"
	"whittle/internal/diag"
	"whittle/internal/token"
)

func (p *Parser) parsePrimary() ast.Expr {
	switch p.cur.Kind {
	case token.Num:
		tok := p.advance()
		return ast.NewLiteral(tok.Span, cookNumber(tok.Text), tok.Text)

	case token.BigInt:
		tok := p.advance()
		return ast.NewBigIntLiteral(tok.Span, bigintDigits(tok.Text), tok.Text)

	case token.Str:
		tok := p.advance()
		value, _ := cookString(tok.Text)
		return ast.NewLiteral(tok.Span, value, tok.Text)

	case token.KwTrue:
		tok := p.advance()
		return ast.NewLiteral(tok.Span, true, tok.Text)

	case token.KwFalse:
		tok := p.advance()
		return ast.NewLiteral(tok.Span, false, tok.Text)

	case token.KwNull:
		tok := p.advance()
		return ast.NewLiteral(tok.Span, nil, tok.Text)

	case token.Slash, token.SlashAssign:
		return p.parseRegexLiteral()

	case token.NoSubTemplate, token.TemplateHead:
		return p.parseTemplateLiteral()

	case token.Ident:
		if p.cur.Text == "async" && p.peek().Kind == token.KwFunction && !p.peek().NewlineBefore {
			return p.parseFunctionExpression()
		}
		tok := p.advance()
		return ast.NewIdent(tok.Span, tok.Text)

	case token.KwThis:
		tok := p.advance()
		return ast.NewThisExpr(tok.Span)

	case token.KwSuper:
		return p.parseSuper()

	case token.KwFunction:
		return p.parseFunctionExpression()

	case token.KwClass:
		return p.parseClassExpression()

	case token.KwImport:
		return p.parseImportExprOrMeta()

	case token.LParen:
		return p.parseParenOrArrow()

	case token.LBracket:
		return p.parseArrayLiteral()

	case token.LBrace:
		return p.parseObjectLiteral()

	default:
		sp := p.diagSpan()
		p.errAt(diag.SynExpectExpr, sp, "expected an expression but found "+p.cur.Kind.String())
		if !p.at(token.EOF) && !p.at(token.RBrace) && !p.at(token.RParen) && !p.at(token.RBracket) {
			p.next()
		}
		return ast.NewIdent(sp, "")
	}
}

// parseSuper parses the super keyword; it is only valid inside class methods
// and must be immediately followed by an access or a constructor call.
func (p *Parser) parseSuper() ast.Expr {
	tok := p.advance()
	if !p.inClassMethod {
		p.errAt(diag.SynSuperOutsideClass, tok.Span, "'super' is only allowed inside class methods")
	}
	switch p.cur.Kind {
	case token.Dot, token.LBracket, token.LParen:
	default:
		p.errAt(diag.SynUnexpectedToken, tok.Span, "'super' must be followed by a call or member access")
	}
	return ast.NewSuper(tok.Span)
}

// parseImportExprOrMeta parses import(...) and import.meta in expression
// position.
func (p *Parser) parseImportExprOrMeta() ast.Expr {
	impTok := p.advance()

	if p.eat(token.Dot) {
		prop, _ := p.expect(token.Ident, "expected 'meta' after 'import.'")
		if prop.Text != "meta" {
			p.errAt(diag.SynUnexpectedToken, prop.Span, "the only valid meta property for import is import.meta")
		}
		if p.opts.SourceType != ast.SourceTypeModule {
			p.errAt(diag.SynImportOutsideModule, impTok.Span.Cover(prop.Span),
				"import.meta is only allowed in modules")
		}
		meta := ast.NewIdent(impTok.Span, "import")
		return ast.NewMetaProperty(p.spanFrom(impTok.Span), meta, ast.NewIdent(prop.Span, prop.Text))
	}

	p.expect(token.LParen, "expected '(' after 'import'")
	src := p.parseAssignExpr(false)
	var opts ast.Expr
	if p.eat(token.Comma) && !p.at(token.RParen) {
		opts = p.parseAssignExpr(false)
		p.eat(token.Comma)
	}
	p.expect(token.RParen, "expected ')' after import arguments")
	return ast.NewImportExpr(p.spanFrom(impTok.Span), src, opts)
}

// parseParenOrArrow parses a parenthesized form without deciding up front
// whether it is a grouping or an arrow head. The list is parsed as
// expressions; if '=>' follows, they are reinterpreted as parameters.
func (p *Parser) parseParenOrArrow() ast.Expr {
	start := p.advance().Span

	var items []ast.Expr
	sawSpread := false
	trailingComma := false
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			spreadStart := p.advance().Span
			arg := p.parseAssignExpr(false)
			items = append(items, ast.NewSpreadElement(p.spanFrom(spreadStart), arg))
			sawSpread = true
		} else {
			items = append(items, p.parseAssignExpr(false))
		}
		if !p.eat(token.Comma) {
			break
		}
		if p.at(token.RParen) {
			trailingComma = true
		}
	}
	rparen, _ := p.expect(token.RParen, "expected ')'")

	if p.at(token.Arrow) && !p.cur.NewlineBefore {
		params := p.exprsToParams(items)
		return p.parseArrowBody(start, params, false)
	}

	if len(items) == 0 {
		p.errAt(diag.SynExpectExpr, start.Cover(rparen.Span), "empty parentheses are not an expression")
		return ast.NewIdent(start.Cover(rparen.Span), "")
	}
	if sawSpread {
		p.errAt(diag.SynBadArrowParams, start.Cover(rparen.Span),
			"'...' is only allowed in parameter lists")
	}
	if trailingComma {
		p.errAt(diag.SynUnexpectedToken, rparen.Span,
			"trailing comma is not allowed in a parenthesized expression")
	}

	var inner ast.Expr
	if len(items) == 1 {
		inner = items[0]
	} else {
		sp := items[0].Span().Cover(items[len(items)-1].Span())
		inner = ast.NewSequenceExpr(sp, items)
	}
	p.markParen(inner)
	return inner
}

func (p *Parser) parseArrayLiteral() ast.Expr {
	start := p.advance().Span

	var elements []ast.Expr
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			p.next()
			elements = append(elements, nil) // hole
			continue
		}
		if p.at(token.DotDotDot) {
			spreadStart := p.advance().Span
			arg := p.parseAssignExpr(false)
			elements = append(elements, ast.NewSpreadElement(p.spanFrom(spreadStart), arg))
		} else {
			elements = append(elements, p.parseAssignExpr(false))
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBracket, "expected ']' to close array literal")
	return ast.NewArrayExpr(p.spanFrom(start), elements)
}

func (p *Parser) parseObjectLiteral() ast.Expr {
	start := p.advance().Span

	var props []ast.Expr
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		props = append(props, p.parseObjectMember())
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, "expected '}' to close object literal")
	return ast.NewObjectExpr(p.spanFrom(start), props)
}

// parseObjectMember parses one object-literal entry: a spread, a method, an
// accessor, key: value, or a shorthand property.
func (p *Parser) parseObjectMember() ast.Expr {
	if p.at(token.DotDotDot) {
		start := p.advance().Span
		arg := p.parseAssignExpr(false)
		return ast.NewSpreadElement(p.spanFrom(start), arg)
	}

	start := p.cur.Span
	async := false
	generator := false

	if p.atIdent("async") && !p.peekStartsPropertyValue() && !p.peek().NewlineBefore {
		async = true
		p.next()
	}
	if p.at(token.Star) {
		generator = true
		p.next()
	}

	if !async && !generator && (p.atIdent("get") || p.atIdent("set")) && !p.peekStartsPropertyValue() {
		kind := ast.PropertyGet
		if p.cur.Text == "set" {
			kind = ast.PropertySet
		}
		p.next()
		key, computed := p.parsePropertyKey()
		fn := p.parseMethodFunction(false, false)
		if kind == ast.PropertyGet {
			p.checkGetter(fn)
		} else {
			p.checkSetter(fn)
		}
		prop := ast.NewProperty(p.spanFrom(start), key, fn, kind)
		prop.Computed = computed
		return prop
	}

	key, computed := p.parsePropertyKey()

	if p.at(token.LParen) || async || generator {
		fn := p.parseMethodFunction(generator, async)
		prop := ast.NewProperty(p.spanFrom(start), key, fn, ast.PropertyInit)
		prop.Computed = computed
		prop.Method = true
		return prop
	}

	if p.eat(token.Colon) {
		value := p.parseAssignExpr(false)
		prop := ast.NewProperty(p.spanFrom(start), key, value, ast.PropertyInit)
		prop.Computed = computed
		return prop
	}

	keyIdent, ok := key.(*ast.Ident)
	if !ok || computed {
		p.err(diag.SynExpectToken, "expected ':' after property key")
		prop := ast.NewProperty(p.spanFrom(start), key, key, ast.PropertyInit)
		prop.Computed = computed
		return prop
	}

	// Shorthand; the value gets its own node so later renames leave the key
	// alone.
	var value ast.Expr = ast.NewIdent(keyIdent.Span(), keyIdent.Name)
	if p.at(token.Assign) {
		// Cover grammar for destructuring defaults like ({a = 1} = x).
		p.next()
		right := p.parseAssignExpr(false)
		value = ast.NewAssignPattern(p.spanFrom(start), value.(*ast.Ident), right)
	}
	prop := ast.NewProperty(p.spanFrom(start), key, value, ast.PropertyInit)
	prop.Shorthand = true
	return prop
}

// peekStartsPropertyValue reports whether the token after the current one
// terminates a key, meaning the current identifier is a key rather than a
// get/set/async modifier.
func (p *Parser) peekStartsPropertyValue() bool {
	switch p.peek().Kind {
	case token.Colon, token.Comma, token.RBrace, token.LParen, token.Assign:
		return true
	}
	return false
}

// parsePropertyKey parses an object or class member key: an identifier name,
// string or number literal, private name, or computed [expr].
func (p *Parser) parsePropertyKey() (ast.Expr, bool) {
	switch {
	case p.at(token.LBracket):
		p.next()
		key := p.parseAssignExpr(false)
		p.expect(token.RBracket, "expected ']' after computed key")
		return key, true

	case p.at(token.Str):
		tok := p.advance()
		value, _ := cookString(tok.Text)
		return ast.NewLiteral(tok.Span, value, tok.Text), false

	case p.at(token.Num):
		tok := p.advance()
		return ast.NewLiteral(tok.Span, cookNumber(tok.Text), tok.Text), false

	case p.at(token.BigInt):
		tok := p.advance()
		return ast.NewBigIntLiteral(tok.Span, bigintDigits(tok.Text), tok.Text), false

	case p.at(token.PrivateIdent):
		tok := p.advance()
		return ast.NewPrivateIdent(tok.Span, tok.Text), false

	case p.at(token.Ident) || p.cur.IsKeyword():
		tok := p.advance()
		return ast.NewIdent(tok.Span, tok.Text), false

	default:
		sp := p.diagSpan()
		p.errAt(diag.SynExpectIdent, sp, "expected a property key but found "+p.cur.Kind.String())
		if !p.at(token.EOF) && !p.at(token.RBrace) {
			p.next()
		}
		return ast.NewIdent(sp, ""), false
	}
}

// checkGetter and checkSetter validate accessor arity.
func (p *Parser) checkGetter(fn *ast.FuncExpr) {
	if len(fn.Params) != 0 {
		p.errAt(diag.SynBadGetterSetter, fn.Span(), "a getter must not have parameters")
	}
}

func (p *Parser) checkSetter(fn *ast.FuncExpr) {
	if len(fn.Params) != 1 {
		p.errAt(diag.SynBadGetterSetter, fn.Span(), "a setter must have exactly one parameter")
		return
	}
	if _, isRest := fn.Params[0].(*ast.RestElement); isRest {
		p.errAt(diag.SynBadGetterSetter, fn.Span(), "a setter may not have a rest parameter")
	}
}
