package parser

import (
	"whittle/internal/ast"
	"whittle/internal/diag"
	"whittle/internal/token"
)

// parseImportDeclaration parses every import form: bare, default,
// namespace, named, and their combinations, plus import attributes.
func (p *Parser) parseImportDeclaration() ast.Stmt {
	start := p.advance().Span // import

	if p.at(token.Str) {
		src := p.stringLiteral()
		attrs := p.parseImportAttributes()
		p.consumeSemicolon()
		return ast.NewImportDecl(p.spanFrom(start), nil, src, attrs)
	}

	var specs []ast.ImportSpec
	if p.at(token.Ident) {
		id := p.bindingIdent()
		specs = append(specs, ast.NewImportDefaultSpecifier(id.Span(), id))
		if p.eat(token.Comma) {
			specs = p.parseImportClauseRest(specs)
		}
	} else {
		specs = p.parseImportClauseRest(specs)
	}

	p.expectIdent("from")
	src := p.stringLiteral()
	attrs := p.parseImportAttributes()
	p.consumeSemicolon()
	return ast.NewImportDecl(p.spanFrom(start), specs, src, attrs)
}

// parseImportClauseRest parses the namespace or named part of an import
// clause.
func (p *Parser) parseImportClauseRest(specs []ast.ImportSpec) []ast.ImportSpec {
	switch {
	case p.at(token.Star):
		star := p.advance().Span
		p.expectIdent("as")
		local := p.bindingIdent()
		return append(specs, ast.NewImportNamespaceSpecifier(p.spanFrom(star), local))

	case p.at(token.LBrace):
		p.next()
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			specs = append(specs, p.parseImportSpecifier())
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace, "expected '}' after import specifiers")
		return specs

	default:
		p.err(diag.SynExpectToken, "expected '*', '{', or a binding after import")
		return specs
	}
}

// parseImportSpecifier parses one name inside an import brace list. The
// imported name may be any identifier name or a string; reserved words and
// strings need an as rename.
func (p *Parser) parseImportSpecifier() ast.ImportSpec {
	start := p.cur.Span

	var imported ast.Expr
	reserved := false
	switch {
	case p.at(token.Str):
		imported = p.stringLiteralExpr()
	case p.at(token.Ident) || p.cur.IsKeyword():
		reserved = p.cur.IsKeyword()
		tok := p.advance()
		imported = ast.NewIdent(tok.Span, tok.Text)
	default:
		p.err(diag.SynExpectIdent, "expected an import name")
		imported = ast.NewIdent(p.diagSpan(), "")
	}

	var local *ast.Ident
	if p.atIdent("as") {
		p.next()
		local = p.bindingIdent()
	} else {
		id, ok := imported.(*ast.Ident)
		if !ok || reserved {
			p.errAt(diag.SynExpectToken, imported.Span(), "this import name needs an 'as' rename")
			local = ast.NewIdent(imported.Span(), "")
		} else {
			p.checkBindingName(id.Span(), id.Name)
			local = ast.NewIdent(id.Span(), id.Name)
		}
	}
	return ast.NewImportSpecifier(p.spanFrom(start), imported, local)
}

// parseImportAttributes parses the with { key: "value" } clause; the older
// assert keyword is accepted too.
func (p *Parser) parseImportAttributes() []*ast.ImportAttribute {
	if !p.at(token.KwWith) && !p.atIdent("assert") {
		return nil
	}
	if p.cur.NewlineBefore && p.cur.Kind != token.KwWith {
		// assert requires the same line; with is unambiguous either way.
		return nil
	}
	p.next()
	p.expect(token.LBrace, "expected '{' to open import attributes")

	var attrs []*ast.ImportAttribute
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		aStart := p.cur.Span
		var key ast.Expr
		switch {
		case p.at(token.Str):
			key = p.stringLiteralExpr()
		case p.at(token.Ident) || p.cur.IsKeyword():
			tok := p.advance()
			key = ast.NewIdent(tok.Span, tok.Text)
		default:
			p.err(diag.SynExpectIdent, "expected an attribute key")
			p.resyncStatement()
			return attrs
		}
		p.expect(token.Colon, "expected ':' in import attribute")
		value := p.stringLiteral()
		attrs = append(attrs, ast.NewImportAttribute(p.spanFrom(aStart), key, value))
		if !p.eat(token.Comma) {
			break
		}
	}
	p.expect(token.RBrace, "expected '}' to close import attributes")
	return attrs
}

// parseExportDeclaration parses export default, export *, export lists,
// and exported declarations.
func (p *Parser) parseExportDeclaration() ast.Stmt {
	start := p.advance().Span // export

	if p.eat(token.KwDefault) {
		var decl ast.Expr
		switch {
		case p.at(token.KwFunction):
			decl = p.parseFunctionDecl(false, true)
		case p.atIdent("async") && p.peek().Kind == token.KwFunction && !p.peek().NewlineBefore:
			decl = p.parseFunctionDecl(true, true)
		case p.at(token.KwClass):
			decl = p.parseClassDecl(true)
		default:
			decl = p.parseAssignExpr(false)
			p.consumeSemicolon()
		}
		return ast.NewExportDefaultDecl(p.spanFrom(start), decl)
	}

	if p.at(token.Star) {
		p.next()
		var exported ast.Expr
		if p.atIdent("as") {
			p.next()
			exported = p.moduleExportName()
		}
		p.expectIdent("from")
		src := p.stringLiteral()
		p.consumeSemicolon()
		return ast.NewExportAllDecl(p.spanFrom(start), exported, src)
	}

	if p.at(token.LBrace) {
		p.next()
		var specs []*ast.ExportSpecifier
		for !p.at(token.RBrace) && !p.at(token.EOF) {
			specs = append(specs, p.parseExportSpecifier())
			if !p.eat(token.Comma) {
				break
			}
		}
		p.expect(token.RBrace, "expected '}' after export specifiers")
		var src *ast.Literal
		if p.atIdent("from") {
			p.next()
			src = p.stringLiteral()
		}
		p.consumeSemicolon()
		return ast.NewExportNamedDecl(p.spanFrom(start), nil, specs, src)
	}

	var decl ast.Stmt
	switch {
	case p.at(token.KwVar):
		decl = p.parseVarStatement(ast.DeclVar)
	case p.at(token.KwConst):
		decl = p.parseVarStatement(ast.DeclConst)
	case p.atIdent("let") && p.letStartsDeclaration():
		decl = p.parseVarStatement(ast.DeclLet)
	case p.at(token.KwFunction):
		decl = p.parseFunctionDeclaration(false)
	case p.atIdent("async") && p.peek().Kind == token.KwFunction && !p.peek().NewlineBefore:
		decl = p.parseFunctionDeclaration(true)
	case p.at(token.KwClass):
		decl = p.parseClassDeclaration()
	default:
		p.err(diag.SynExpectToken, "expected a declaration or export list after export")
		p.resyncStatement()
	}
	return ast.NewExportNamedDecl(p.spanFrom(start), decl, nil, nil)
}

// parseExportSpecifier parses one name in an export brace list; both sides
// accept identifier names and strings.
func (p *Parser) parseExportSpecifier() *ast.ExportSpecifier {
	start := p.cur.Span
	local := p.moduleExportName()
	exported := local
	if p.atIdent("as") {
		p.next()
		exported = p.moduleExportName()
	} else if id, ok := local.(*ast.Ident); ok {
		exported = ast.NewIdent(id.Span(), id.Name)
	}
	return ast.NewExportSpecifier(p.spanFrom(start), local, exported)
}

// moduleExportName is an identifier name or string literal.
func (p *Parser) moduleExportName() ast.Expr {
	switch {
	case p.at(token.Str):
		return p.stringLiteralExpr()
	case p.at(token.Ident) || p.cur.IsKeyword():
		tok := p.advance()
		return ast.NewIdent(tok.Span, tok.Text)
	default:
		p.err(diag.SynExpectIdent, "expected an export name")
		return ast.NewIdent(p.diagSpan(), "")
	}
}

// expectIdent consumes a contextual keyword spelled as an identifier.
func (p *Parser) expectIdent(name string) bool {
	if p.atIdent(name) {
		p.next()
		return true
	}
	p.err(diag.SynExpectToken, "expected '"+name+"' but found "+p.cur.Kind.String())
	return false
}

// stringLiteral parses a required string literal token.
func (p *Parser) stringLiteral() *ast.Literal {
	if !p.at(token.Str) {
		sp := p.diagSpan()
		p.errAt(diag.SynExpectToken, sp, "expected a string literal but found "+p.cur.Kind.String())
		return ast.NewLiteral(sp, "", "")
	}
	return p.stringLiteralExpr()
}

func (p *Parser) stringLiteralExpr() *ast.Literal {
	tok := p.advance()
	value, _ := cookString(tok.Text)
	return ast.NewLiteral(tok.Span, value, tok.Text)
}
