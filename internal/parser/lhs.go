package parser

import (
	"strings"

	"whittle/internal/ast"
	"whittle/internal/diag"
	"whittle/internal/source"
	"whittle/internal/token"
)

// parseLHSExpr parses member accesses, calls, optional chains, tagged
// templates, and new expressions.
func (p *Parser) parseLHSExpr() ast.Expr {
	start := p.cur.Span
	var expr ast.Expr
	if p.at(token.KwNew) {
		expr = p.parseNewExpr()
	} else {
		expr = p.parsePrimary()
	}
	return p.parseCallTail(start, expr)
}

// parseNewExpr parses new Callee(...) and new.target.
func (p *Parser) parseNewExpr() ast.Expr {
	newTok := p.advance()

	if p.eat(token.Dot) {
		prop, _ := p.expect(token.Ident, "expected 'target' after 'new.'")
		if prop.Text != "target" {
			p.errAt(diag.SynUnexpectedToken, prop.Span, "the only valid meta property for new is new.target")
		}
		if !p.allowNewTarget {
			p.errAt(diag.SynNewTargetOutsideFn, newTok.Span.Cover(prop.Span),
				"new.target is only allowed inside a function")
		}
		meta := ast.NewIdent(newTok.Span, "new")
		return ast.NewMetaProperty(p.spanFrom(newTok.Span), meta, ast.NewIdent(prop.Span, prop.Text))
	}

	var callee ast.Expr
	if p.at(token.KwNew) {
		callee = p.parseNewExpr()
	} else {
		callee = p.parsePrimary()
	}
	callee = p.parseMemberTail(newTok.Span, callee)

	var args []ast.Expr
	if p.at(token.LParen) {
		args = p.parseArguments()
	}
	return ast.NewNewExpr(p.spanFrom(newTok.Span), callee, args)
}

// parseMemberTail extends the new-expression callee with plain member
// accesses and template tags; calls bind to the new itself and optional
// chains are not allowed here.
func (p *Parser) parseMemberTail(start source.Span, expr ast.Expr) ast.Expr {
	for {
		switch p.cur.Kind {
		case token.Dot:
			p.next()
			prop := p.parseMemberProp()
			expr = ast.NewMemberExpr(p.spanFrom(start), expr, prop, false, false)

		case token.LBracket:
			p.next()
			index := p.parseExpression(false)
			p.expect(token.RBracket, "expected ']' after computed member")
			expr = ast.NewMemberExpr(p.spanFrom(start), expr, index, true, false)

		case token.QuestionDot:
			p.err(diag.SynBadOptionalChain, "optional chains are not allowed in new callees")
			p.next()

		case token.NoSubTemplate, token.TemplateHead:
			quasi := p.parseTemplateLiteral()
			expr = ast.NewTaggedTemplateExpr(p.spanFrom(start), expr, quasi)

		default:
			return expr
		}
	}
}

// parseCallTail extends expr with every postfix form: members, calls,
// optional links, and template tags. A chain containing any optional link
// is wrapped in a ChainExpression.
func (p *Parser) parseCallTail(start source.Span, expr ast.Expr) ast.Expr {
	sawOptional := false
	for {
		switch p.cur.Kind {
		case token.Dot:
			p.next()
			prop := p.parseMemberProp()
			expr = ast.NewMemberExpr(p.spanFrom(start), expr, prop, false, false)

		case token.QuestionDot:
			sawOptional = true
			p.next()
			switch p.cur.Kind {
			case token.LParen:
				args := p.parseArguments()
				expr = ast.NewCallExpr(p.spanFrom(start), expr, args, true)
			case token.LBracket:
				p.next()
				index := p.parseExpression(false)
				p.expect(token.RBracket, "expected ']' after computed member")
				expr = ast.NewMemberExpr(p.spanFrom(start), expr, index, true, true)
			default:
				prop := p.parseMemberProp()
				expr = ast.NewMemberExpr(p.spanFrom(start), expr, prop, false, true)
			}

		case token.LBracket:
			p.next()
			index := p.parseExpression(false)
			p.expect(token.RBracket, "expected ']' after computed member")
			expr = ast.NewMemberExpr(p.spanFrom(start), expr, index, true, false)

		case token.LParen:
			args := p.parseArguments()
			expr = ast.NewCallExpr(p.spanFrom(start), expr, args, false)

		case token.NoSubTemplate, token.TemplateHead:
			if sawOptional {
				p.err(diag.SynBadOptionalChain, "tagged templates are not allowed inside optional chains")
			}
			quasi := p.parseTemplateLiteral()
			expr = ast.NewTaggedTemplateExpr(p.spanFrom(start), expr, quasi)

		default:
			if sawOptional {
				expr = ast.NewChainExpr(expr.Span(), expr)
			}
			return expr
		}
	}
}

// parseMemberProp parses the name after '.': any identifier name including
// reserved words, or a private name.
func (p *Parser) parseMemberProp() ast.Expr {
	if p.at(token.PrivateIdent) {
		tok := p.advance()
		return ast.NewPrivateIdent(tok.Span, tok.Text)
	}
	if p.at(token.Ident) || p.cur.IsKeyword() {
		tok := p.advance()
		return ast.NewIdent(tok.Span, tok.Text)
	}
	sp := p.diagSpan()
	p.errAt(diag.SynExpectIdent, sp, "expected property name after '.' but found "+p.cur.Kind.String())
	return ast.NewIdent(sp, "")
}

// parseArguments parses a parenthesized argument list with spreads and an
// optional trailing comma.
func (p *Parser) parseArguments() []ast.Expr {
	p.expect(token.LParen, "expected '('")
	var args []ast.Expr
	for !p.at(token.RParen) && !p.at(token.EOF) {
		if p.at(token.DotDotDot) {
			start := p.advance().Span
			arg := p.parseAssignExpr(false)
			args = append(args, ast.NewSpreadElement(p.spanFrom(start), arg))
		} else {
			args = append(args, p.parseAssignExpr(false))
		}
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RParen, "expected ')' after arguments")
	return args
}

// parseTemplateLiteral parses `...` with its substitutions, rescanning each
// closing brace as the next template chunk.
func (p *Parser) parseTemplateLiteral() *ast.TemplateLiteral {
	start := p.cur.Span
	tok := p.advance()

	if tok.Kind == token.NoSubTemplate {
		quasi := p.templateElement(tok, true)
		return ast.NewTemplateLiteral(tok.Span, []*ast.TemplateElement{quasi}, nil)
	}

	quasis := []*ast.TemplateElement{p.templateElement(tok, false)}
	var exprs []ast.Expr
	for {
		exprs = append(exprs, p.parseExpression(false))
		if !p.at(token.RBrace) {
			p.err(diag.SynExpectToken, "expected '}' to close template substitution")
			break
		}
		part := p.lx.RescanTemplatePart(p.cur)
		p.cur = part
		tail := part.Kind == token.TemplateTail
		quasis = append(quasis, p.templateElement(part, tail))
		p.next()
		if tail {
			break
		}
	}
	return ast.NewTemplateLiteral(p.spanFrom(start), quasis, exprs)
}

// templateElement strips the delimiters off a template token and cooks its
// value. The element span covers only the chunk text.
func (p *Parser) templateElement(tok token.Token, tail bool) *ast.TemplateElement {
	sp := tok.Span
	if sp.End > sp.Start {
		sp.Start++ // leading ` or }
	}
	trail := uint32(1) // closing ` at the end
	if tok.Kind == token.TemplateHead || tok.Kind == token.TemplateMiddle {
		trail = 2 // closing ${
	}
	if sp.End >= sp.Start+trail {
		sp.End -= trail
	} else {
		sp.End = sp.Start
	}

	raw := p.file.Slice(sp)
	var value ast.TemplateValue
	value.Raw = raw
	if cooked, ok := cookTemplate(raw); ok {
		value.Cooked = cooked
	}
	return ast.NewTemplateElement(sp, value, tail)
}

// parseRegexLiteral rescans the current '/' token as a regular expression.
func (p *Parser) parseRegexLiteral() ast.Expr {
	p.cur = p.lx.RescanRegExp(p.cur)
	tok := p.advance()

	pattern, flags := splitRegex(tok.Text)
	return ast.NewRegexLiteral(tok.Span, pattern, flags, tok.Text)
}

func splitRegex(text string) (pattern, flags string) {
	end := strings.LastIndexByte(text, '/')
	if end <= 0 {
		if len(text) > 1 {
			return text[1:], ""
		}
		return "", ""
	}
	return text[1:end], text[end+1:]
}
