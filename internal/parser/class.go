package parser

import (
	"whittle/internal/ast"
	"whittle/internal/diag"
	"whittle/internal/source"
	"whittle/internal/token"
)

// parseClassDeclaration parses a class statement.
func (p *Parser) parseClassDeclaration() ast.Stmt {
	return p.parseClassDecl(false)
}

// parseClassDecl is the shared body; nameOptional permits the anonymous
// form that export default allows.
func (p *Parser) parseClassDecl(nameOptional bool) *ast.ClassDecl {
	start := p.advance().Span // class

	var id *ast.Ident
	if p.at(token.Ident) {
		id = p.bindingIdent()
	} else if !nameOptional {
		p.err(diag.SynExpectIdent, "expected class name")
	}

	superClass, body := p.parseClassRest()
	return ast.NewClassDecl(p.spanFrom(start), id, superClass, body)
}

func (p *Parser) parseClassExpression() ast.Expr {
	start := p.advance().Span // class

	var id *ast.Ident
	if p.at(token.Ident) {
		id = p.bindingIdent()
	}

	superClass, body := p.parseClassRest()
	return ast.NewClassExpr(p.spanFrom(start), id, superClass, body)
}

// parseClassRest parses the heritage clause and class body. Class bodies
// are always strict.
func (p *Parser) parseClassRest() (ast.Expr, *ast.ClassBody) {
	savedStrict, savedInClass := p.strict, p.inClass
	p.strict = true
	p.inClass = true

	var superClass ast.Expr
	if p.eat(token.KwExtends) {
		superClass = p.parseLHSExpr()
	}

	bodyStart := p.cur.Span
	p.expect(token.LBrace, "expected '{' to open class body")

	var members []ast.ClassElement
	sawConstructor := false
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.eat(token.Semicolon) {
			continue
		}
		member := p.parseClassMember()
		if m, ok := member.(*ast.MethodDef); ok && m.Kind == ast.MethodConstructor {
			if sawConstructor {
				p.errAt(diag.SynUnexpectedToken, m.Span(), "a class may only have one constructor")
			}
			sawConstructor = true
		}
		members = append(members, member)
	}
	p.expect(token.RBrace, "expected '}' to close class body")

	p.strict = savedStrict
	p.inClass = savedInClass
	return superClass, ast.NewClassBody(bodyStart.Cover(p.lastSpan), members)
}

// parseClassMember parses one class element: a method, accessor, field, or
// static initialization block.
func (p *Parser) parseClassMember() ast.ClassElement {
	start := p.cur.Span

	static := false
	if p.atIdent("static") && !p.peekEndsClassKey() {
		static = true
		p.next()
	}

	if static && p.at(token.LBrace) {
		return p.parseStaticBlock(start)
	}

	async := false
	generator := false
	if p.atIdent("async") && !p.peekEndsClassKey() && !p.peek().NewlineBefore {
		async = true
		p.next()
	}
	if p.at(token.Star) {
		generator = true
		p.next()
	}

	if !async && !generator && (p.atIdent("get") || p.atIdent("set")) && !p.peekEndsClassKey() {
		kind := ast.MethodGet
		if p.cur.Text == "set" {
			kind = ast.MethodSet
		}
		p.next()
		key, computed := p.parsePropertyKey()
		p.checkClassKeyName(key, computed, true)
		fn := p.parseMethodFunction(false, false)
		if kind == ast.MethodGet {
			p.checkGetter(fn)
		} else {
			p.checkSetter(fn)
		}
		return ast.NewMethodDef(p.spanFrom(start), key, fn, kind, computed, static)
	}

	key, computed := p.parsePropertyKey()

	if p.at(token.LParen) {
		kind := ast.MethodMethod
		if !static && !computed && isConstructorKey(key) {
			kind = ast.MethodConstructor
			if async || generator {
				p.errAt(diag.SynUnexpectedToken, key.Span(), "constructor may not be async or a generator")
			}
		}
		if static && !computed && isConstructorKey(key) {
			p.errAt(diag.SynUnexpectedToken, key.Span(), "static member may not be named constructor")
		}
		p.checkClassKeyName(key, computed, true)
		fn := p.parseMethodFunction(generator, async)
		return ast.NewMethodDef(p.spanFrom(start), key, fn, kind, computed, static)
	}

	if async || generator {
		p.errAt(diag.SynExpectToken, key.Span(), "expected '(' after method name")
	}
	p.checkClassKeyName(key, computed, false)

	var value ast.Expr
	if p.eat(token.Assign) {
		value = p.parseAssignExpr(false)
	}
	p.consumeSemicolon()
	return ast.NewPropertyDef(p.spanFrom(start), key, value, computed, static)
}

// peekEndsClassKey reports whether the next token closes off the current
// identifier as a full member key, so that static/async/get/set are keys
// rather than modifiers.
func (p *Parser) peekEndsClassKey() bool {
	switch p.peek().Kind {
	case token.LParen, token.Assign, token.Semicolon, token.RBrace:
		return true
	}
	return false
}

// checkClassKeyName rejects the member names the grammar reserves. Fields
// may not shadow the constructor slot, and #constructor is never allowed.
func (p *Parser) checkClassKeyName(key ast.Expr, computed, method bool) {
	if computed {
		return
	}
	if pv, ok := key.(*ast.PrivateIdent); ok {
		if pv.Name == "constructor" {
			p.errAt(diag.SynUnexpectedToken, key.Span(), "class member may not be named #constructor")
		}
		return
	}
	if !method && isConstructorKey(key) {
		p.errAt(diag.SynUnexpectedToken, key.Span(), "class field may not be named constructor")
	}
}

func isConstructorKey(key ast.Expr) bool {
	switch k := key.(type) {
	case *ast.Ident:
		return k.Name == "constructor"
	case *ast.Literal:
		s, ok := k.Value.(string)
		return ok && s == "constructor"
	}
	return false
}

func (p *Parser) parseStaticBlock(start source.Span) ast.ClassElement {
	savedFn, savedGen, savedAsync := p.inFunction, p.inGenerator, p.inAsync
	savedMethod, savedNewTarget := p.inClassMethod, p.allowNewTarget
	savedLoop, savedSwitch, savedLabels := p.loopDepth, p.switchDepth, p.labels

	// return is not allowed in a static block, so inFunction stays false;
	// super and new.target are available.
	p.inFunction, p.inGenerator, p.inAsync = false, false, false
	p.inClassMethod, p.allowNewTarget = true, true
	p.loopDepth, p.switchDepth, p.labels = 0, 0, nil

	block := p.parseBlock()

	p.inFunction, p.inGenerator, p.inAsync = savedFn, savedGen, savedAsync
	p.inClassMethod, p.allowNewTarget = savedMethod, savedNewTarget
	p.loopDepth, p.switchDepth, p.labels = savedLoop, savedSwitch, savedLabels

	return ast.NewStaticBlock(p.spanFrom(start), block.Body)
}
