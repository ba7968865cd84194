package parser

import (
	"whittle/internal/ast"
	"whittle/internal/diag"
	"whittle/internal/source"
	"whittle/internal/token"
)

// parseBindingPattern parses a binding target: a name, an array pattern, or
// an object pattern. Defaults are attached by parseBindingElement.
func (p *Parser) parseBindingPattern() ast.Pattern {
	switch p.cur.Kind {
	case token.LBracket:
		return p.parseArrayPattern()
	case token.LBrace:
		return p.parseObjectPattern()
	case token.Ident:
		return p.bindingIdent()
	default:
		sp := p.diagSpan()
		p.errAt(diag.SynExpectIdent, sp, "expected a binding name but found "+p.cur.Kind.String())
		return ast.NewIdent(sp, "")
	}
}

// parseBindingElement parses a binding pattern with an optional default.
func (p *Parser) parseBindingElement() ast.Pattern {
	start := p.cur.Span
	pat := p.parseBindingPattern()
	if p.eat(token.Assign) {
		right := p.parseAssignExpr(false)
		return ast.NewAssignPattern(p.spanFrom(start), pat, right)
	}
	return pat
}

func (p *Parser) bindingIdent() *ast.Ident {
	tok := p.advance()
	p.checkBindingName(tok.Span, tok.Text)
	return ast.NewIdent(tok.Span, tok.Text)
}

// checkBindingName rejects names that are reserved in the current context.
func (p *Parser) checkBindingName(sp source.Span, name string) {
	switch name {
	case "yield":
		if p.strict || p.inGenerator {
			p.errAt(diag.SynExpectIdent, sp, "yield may not be used as a binding name here")
		}
	case "await":
		if p.inAsync {
			p.errAt(diag.SynExpectIdent, sp, "await may not be used as a binding name here")
		}
	case "let", "static":
		if p.strict {
			p.errAt(diag.SynExpectIdent, sp, name+" may not be used as a binding name in strict mode")
		}
	case "eval", "arguments":
		if p.strict {
			p.errAt(diag.SynBadAssignTarget, sp, name+" may not be bound in strict mode")
		}
	}
}

func (p *Parser) parseArrayPattern() ast.Pattern {
	start := p.advance().Span // '['

	var elements []ast.Pattern
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		if p.at(token.Comma) {
			p.next()
			elements = append(elements, nil) // hole
			continue
		}
		if p.at(token.DotDotDot) {
			rest := p.parseRestBinding()
			elements = append(elements, rest)
			if !p.at(token.RBracket) {
				p.errAt(diag.SynRestNotLast, rest.Span(), "rest element must be the last pattern element")
			}
		} else {
			elements = append(elements, p.parseBindingElement())
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBracket, "expected ']' to close array pattern")
	return ast.NewArrayPattern(p.spanFrom(start), elements)
}

func (p *Parser) parseObjectPattern() ast.Pattern {
	start := p.advance().Span // '{'

	var props []ast.Expr
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			rest := p.parseRestBinding()
			if _, ok := rest.Argument.(*ast.Ident); !ok {
				p.errAt(diag.SynBadDestructuring, rest.Span(),
					"object rest target must be a plain identifier")
			}
			props = append(props, rest)
			if !p.at(token.RBrace) {
				p.errAt(diag.SynRestNotLast, rest.Span(), "rest element must be the last pattern element")
			}
		} else {
			props = append(props, p.parseObjectPatternProp())
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, "expected '}' to close object pattern")
	return ast.NewObjectPattern(p.spanFrom(start), props)
}

func (p *Parser) parseRestBinding() *ast.RestElement {
	start := p.advance().Span // '...'
	target := p.parseBindingPattern()
	if p.at(token.Assign) {
		p.errAt(diag.SynBadDestructuring, p.cur.Span, "rest element may not have a default")
		p.next()
		p.parseAssignExpr(false)
	}
	return ast.NewRestElement(p.spanFrom(start), target)
}

func (p *Parser) parseObjectPatternProp() ast.Expr {
	start := p.cur.Span
	key, computed := p.parsePropertyKey()

	if p.eat(token.Colon) {
		value := p.parseBindingElement()
		prop := ast.NewProperty(p.spanFrom(start), key, value.(ast.Expr), ast.PropertyInit)
		prop.Computed = computed
		return prop
	}

	keyIdent, ok := key.(*ast.Ident)
	if !ok || computed {
		p.errAt(diag.SynBadDestructuring, key.Span(), "shorthand pattern property must be an identifier")
		prop := ast.NewProperty(p.spanFrom(start), key, key, ast.PropertyInit)
		prop.Computed = computed
		return prop
	}

	p.checkBindingName(keyIdent.Span(), keyIdent.Name)
	var value ast.Pattern = ast.NewIdent(keyIdent.Span(), keyIdent.Name)
	if p.eat(token.Assign) {
		right := p.parseAssignExpr(false)
		value = ast.NewAssignPattern(p.spanFrom(start), value, right)
	}
	prop := ast.NewProperty(p.spanFrom(start), key, value.(ast.Expr), ast.PropertyInit)
	prop.Shorthand = true
	return prop
}

// ---- expression-to-pattern conversion ----

// toAssignTarget reinterprets an expression as the target of '=' or of a
// for-in/of head, converting literal forms into patterns. Every pattern
// node also implements Expr, so the assertion always holds.
func (p *Parser) toAssignTarget(e ast.Expr) ast.Expr {
	return p.convertTarget(e, false).(ast.Expr)
}

// exprsToParams reinterprets a parenthesized expression list as arrow
// function parameters.
func (p *Parser) exprsToParams(items []ast.Expr) []ast.Pattern {
	params := make([]ast.Pattern, 0, len(items))
	for i, item := range items {
		if spread, ok := item.(*ast.SpreadElement); ok {
			if i != len(items)-1 {
				p.errAt(diag.SynRestNotLast, spread.Span(), "rest parameter must be last")
			}
			arg := p.convertTarget(spread.Argument, true)
			params = append(params, ast.NewRestElement(spread.Span(), arg))
			continue
		}
		params = append(params, p.convertTarget(item, true))
	}
	return params
}

// arrowHeadFromExpr recognizes the two arrow heads that reach the parser as
// ordinary expressions: a bare identifier and an async(...) call shape.
func (p *Parser) arrowHeadFromExpr(left ast.Expr) ([]ast.Pattern, bool, bool) {
	switch t := left.(type) {
	case *ast.Ident:
		p.checkBindingName(t.Span(), t.Name)
		return []ast.Pattern{t}, false, true
	case *ast.CallExpr:
		callee, ok := t.Callee.(*ast.Ident)
		if ok && callee.Name == "async" && !t.Optional && !p.parens[callee] {
			return p.exprsToParams(t.Arguments), true, true
		}
	}
	return nil, false, false
}

// parseAsyncIdentArrow parses async x => body, decided by lookahead before
// the normal expression machinery runs.
func (p *Parser) parseAsyncIdentArrow(noIn bool) ast.Expr {
	start := p.advance().Span // async
	tok := p.advance()
	p.checkBindingName(tok.Span, tok.Text)
	param := ast.NewIdent(tok.Span, tok.Text)
	return p.parseArrowBody(start, []ast.Pattern{param}, true)
}

// convertTarget turns an already-parsed expression into a pattern. binding
// restricts the result to binding forms, which arrow parameters require;
// otherwise member expressions are also accepted.
func (p *Parser) convertTarget(e ast.Expr, binding bool) ast.Pattern {
	switch t := e.(type) {
	case *ast.Ident:
		if binding {
			p.checkBindingName(t.Span(), t.Name)
		} else if p.strict && (t.Name == "eval" || t.Name == "arguments") {
			p.errAt(diag.SynBadAssignTarget, t.Span(), t.Name+" may not be assigned in strict mode")
		}
		return t

	case *ast.MemberExpr:
		if binding {
			p.errAt(diag.SynBadArrowParams, t.Span(), "parameter must be a binding, not a member access")
		} else if t.Optional {
			p.errAt(diag.SynBadAssignTarget, t.Span(), "optional member is not a valid assignment target")
		}
		return t

	case *ast.ChainExpr:
		p.errAt(diag.SynBadAssignTarget, t.Span(), "optional chain is not a valid assignment target")
		return p.convertTarget(t.Expression, binding)

	case *ast.ArrayExpr:
		elems := make([]ast.Pattern, len(t.Elements))
		for i, el := range t.Elements {
			if el == nil {
				continue
			}
			if spread, ok := el.(*ast.SpreadElement); ok {
				if i != len(t.Elements)-1 {
					p.errAt(diag.SynRestNotLast, spread.Span(), "rest element must be the last pattern element")
				}
				elems[i] = ast.NewRestElement(spread.Span(), p.convertTarget(spread.Argument, binding))
				continue
			}
			elems[i] = p.convertTarget(el, binding)
		}
		return ast.NewArrayPattern(t.Span(), elems)

	case *ast.ObjectExpr:
		props := make([]ast.Expr, 0, len(t.Properties))
		for i, el := range t.Properties {
			switch m := el.(type) {
			case *ast.SpreadElement:
				if i != len(t.Properties)-1 {
					p.errAt(diag.SynRestNotLast, m.Span(), "rest element must be the last pattern element")
				}
				arg := p.convertTarget(m.Argument, binding)
				if _, ok := arg.(*ast.Ident); !ok {
					p.errAt(diag.SynBadDestructuring, m.Span(), "object rest target must be a plain identifier")
				}
				props = append(props, ast.NewRestElement(m.Span(), arg))
			case *ast.Property:
				if m.Kind != ast.PropertyInit || m.Method {
					p.errAt(diag.SynBadDestructuring, m.Span(), "methods are not valid destructuring targets")
					props = append(props, m)
					continue
				}
				if _, done := m.Value.(*ast.AssignPattern); !done {
					m.Value = p.convertTarget(m.Value, binding).(ast.Expr)
				}
				props = append(props, m)
			default:
				p.errAt(diag.SynBadDestructuring, el.Span(), "invalid destructuring property")
				props = append(props, el)
			}
		}
		return ast.NewObjectPattern(t.Span(), props)

	case *ast.AssignExpr:
		if t.Operator != "=" {
			p.errAt(diag.SynBadDestructuring, t.Span(), "only '=' defaults are allowed in patterns")
		}
		left := p.convertTarget(t.Left, binding)
		return ast.NewAssignPattern(t.Span(), left, t.Right)

	case *ast.ArrayPattern, *ast.ObjectPattern, *ast.RestElement:
		return t.(ast.Pattern)

	case *ast.AssignPattern:
		return t

	default:
		code := diag.SynBadAssignTarget
		msg := "invalid assignment target"
		if binding {
			code = diag.SynBadArrowParams
			msg = "invalid arrow function parameter"
		}
		p.errAt(code, e.Span(), msg)
		return ast.NewIdent(e.Span(), "")
	}
}
