package parser

import (
	"whittle/internal/ast"
	"whittle/internal/diag"
	"whittle/internal/token"
)

// parseExpression parses a full expression including comma sequences.
// noIn suppresses the in operator inside for-loop heads.
func (p *Parser) parseExpression(noIn bool) ast.Expr {
	start := p.cur.Span
	first := p.parseAssignExpr(noIn)
	if !p.at(token.Comma) {
		return first
	}
	exprs := []ast.Expr{first}
	for p.eat(token.Comma) {
		exprs = append(exprs, p.parseAssignExpr(noIn))
	}
	return ast.NewSequenceExpr(p.spanFrom(start), exprs)
}

// parseAssignExpr parses one assignment-level expression: arrows, yield,
// conditionals, and assignment operators.
func (p *Parser) parseAssignExpr(noIn bool) ast.Expr {
	if p.inGenerator && p.atIdent("yield") {
		return p.parseYieldExpr(noIn)
	}

	// async x => ... needs a decision before normal parsing: two adjacent
	// identifiers cannot be anything else.
	if p.atIdent("async") {
		next := p.lx.Peek()
		if next.Kind == token.Ident && !next.NewlineBefore {
			return p.parseAsyncIdentArrow(noIn)
		}
	}

	start := p.cur.Span
	left := p.parseCondExpr(noIn)

	// Arrow with a bare or call-shaped head: x => ..., async(x, y) => ...
	// Parenthesized heads are handled inside parsePrimary.
	if p.at(token.Arrow) && !p.cur.NewlineBefore {
		if params, async, ok := p.arrowHeadFromExpr(left); ok {
			return p.parseArrowBody(start, params, async)
		}
		p.errAt(diag.SynBadArrowParams, left.Span(), "invalid arrow function parameter list")
	}

	if p.cur.IsAssignOp() {
		op := p.advance()
		if op.Kind == token.Assign {
			left = p.toAssignTarget(left)
		} else if !isSimpleTarget(left) {
			p.errAt(diag.SynBadAssignTarget, left.Span(),
				"invalid target for compound assignment")
		}
		right := p.parseAssignExpr(noIn)
		return ast.NewAssignExpr(p.spanFrom(start), assignOpText(op.Kind), left, right)
	}

	return left
}

// assignOpText maps assignment operator kinds to their source spelling.
func assignOpText(k token.Kind) string {
	switch k {
	case token.Assign:
		return "="
	case token.PlusAssign:
		return "+="
	case token.MinusAssign:
		return "-="
	case token.StarAssign:
		return "*="
	case token.StarStarAssign:
		return "**="
	case token.SlashAssign:
		return "/="
	case token.PercentAssign:
		return "%="
	case token.ShlAssign:
		return "<<="
	case token.ShrAssign:
		return ">>="
	case token.UShrAssign:
		return ">>>="
	case token.AmpAssign:
		return "&="
	case token.PipeAssign:
		return "|="
	case token.CaretAssign:
		return "^="
	case token.AmpAmpAssign:
		return "&&="
	case token.PipePipeAssign:
		return "||="
	case token.QuestionQuestionAssign:
		return "??="
	}
	return k.String()
}

func (p *Parser) parseYieldExpr(noIn bool) ast.Expr {
	start := p.advance().Span // yield
	delegate := false
	var arg ast.Expr
	if !p.cur.NewlineBefore {
		delegate = p.eat(token.Star)
		if delegate || p.curStartsExpr() {
			arg = p.parseAssignExpr(noIn)
		}
	}
	return ast.NewYieldExpr(p.spanFrom(start), arg, delegate)
}

// curStartsExpr reports whether the current token can begin an expression;
// decides whether yield has an operand.
func (p *Parser) curStartsExpr() bool {
	switch p.cur.Kind {
	case token.Ident, token.PrivateIdent, token.Num, token.BigInt, token.Str,
		token.NoSubTemplate, token.TemplateHead, token.Regex,
		token.LParen, token.LBracket, token.LBrace,
		token.Bang, token.Tilde, token.Plus, token.Minus,
		token.PlusPlus, token.MinusMinus, token.Slash, token.SlashAssign,
		token.KwTypeof, token.KwVoid, token.KwDelete, token.KwNew,
		token.KwThis, token.KwSuper, token.KwFunction, token.KwClass,
		token.KwTrue, token.KwFalse, token.KwNull, token.KwImport:
		return true
	}
	return false
}

// parseCondExpr parses the ?: level.
func (p *Parser) parseCondExpr(noIn bool) ast.Expr {
	start := p.cur.Span
	test := p.parseBinaryExpr(precLowest, noIn)
	if !p.eat(token.Question) {
		return test
	}
	consequent := p.parseAssignExpr(false)
	p.expect(token.Colon, "expected ':' in conditional expression")
	alternate := p.parseAssignExpr(noIn)
	return ast.NewCondExpr(p.spanFrom(start), test, consequent, alternate)
}

// Binary precedence levels, tightest last.
const (
	precLowest = iota + 1
	precNullish
	precOr
	precAnd
	precBitOr
	precBitXor
	precBitAnd
	precEquality
	precRelational
	precShift
	precAdditive
	precMultiplicative
	precExponent
)

// binPrec returns the precedence for the current token as a binary
// operator, or 0 when it is not one. noIn masks the in operator.
func (p *Parser) binPrec(noIn bool) int {
	switch p.cur.Kind {
	case token.QuestionQuestion:
		return precNullish
	case token.PipePipe:
		return precOr
	case token.AmpAmp:
		return precAnd
	case token.Pipe:
		return precBitOr
	case token.Caret:
		return precBitXor
	case token.Amp:
		return precBitAnd
	case token.EqEq, token.BangEq, token.EqEqEq, token.BangEqEq:
		return precEquality
	case token.Lt, token.Gt, token.LtEq, token.GtEq, token.KwInstanceof:
		return precRelational
	case token.KwIn:
		if noIn {
			return 0
		}
		return precRelational
	case token.Shl, token.Shr, token.UShr:
		return precShift
	case token.Plus, token.Minus:
		return precAdditive
	case token.Star, token.Slash, token.Percent:
		return precMultiplicative
	case token.StarStar:
		return precExponent
	}
	return 0
}

// parseBinaryExpr climbs precedence starting at minPrec.
func (p *Parser) parseBinaryExpr(minPrec int, noIn bool) ast.Expr {
	start := p.cur.Span
	left := p.parseUnaryExpr()

	for {
		prec := p.binPrec(noIn)
		if prec == 0 || prec < minPrec {
			return left
		}

		op := p.cur
		if op.Kind == token.StarStar {
			if u, isUnary := left.(*ast.UnaryExpr); isUnary && u.Prefix && !p.parens[left] {
				p.errAt(diag.SynUnexpectedToken, left.Span(),
					"unary operand of ** must be parenthesized")
			}
		}
		if op.Kind == token.QuestionQuestion {
			p.checkNullishMix(left)
		}
		p.next()

		// ** is right-associative; everything else binds left.
		nextMin := prec + 1
		if op.Kind == token.StarStar {
			nextMin = prec
		}
		right := p.parseBinaryExpr(nextMin, noIn)
		if op.Kind == token.QuestionQuestion {
			p.checkNullishMix(right)
		}

		opText := binOpText(op.Kind)
		sp := p.spanFrom(start)
		switch op.Kind {
		case token.AmpAmp, token.PipePipe, token.QuestionQuestion:
			left = ast.NewLogicalExpr(sp, opText, left, right)
		default:
			left = ast.NewBinaryExpr(sp, opText, left, right)
		}
	}
}

// checkNullishMix rejects an unparenthesized && or || operand of ??.
func (p *Parser) checkNullishMix(operand ast.Expr) {
	if l, isLogical := operand.(*ast.LogicalExpr); isLogical && l.Operator != "??" && !p.parens[operand] {
		p.errAt(diag.SynUnexpectedToken, operand.Span(),
			"cannot mix ?? with && or || without parentheses")
	}
}

// binOpText maps operator kinds to their source spelling.
func binOpText(k token.Kind) string {
	switch k {
	case token.QuestionQuestion:
		return "??"
	case token.PipePipe:
		return "||"
	case token.AmpAmp:
		return "&&"
	case token.Pipe:
		return "|"
	case token.Caret:
		return "^"
	case token.Amp:
		return "&"
	case token.EqEq:
		return "=="
	case token.BangEq:
		return "!="
	case token.EqEqEq:
		return "==="
	case token.BangEqEq:
		return "!=="
	case token.Lt:
		return "<"
	case token.Gt:
		return ">"
	case token.LtEq:
		return "<="
	case token.GtEq:
		return ">="
	case token.KwInstanceof:
		return "instanceof"
	case token.KwIn:
		return "in"
	case token.Shl:
		return "<<"
	case token.Shr:
		return ">>"
	case token.UShr:
		return ">>>"
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	case token.Star:
		return "*"
	case token.Slash:
		return "/"
	case token.Percent:
		return "%"
	case token.StarStar:
		return "**"
	}
	return k.String()
}

// parseUnaryExpr parses prefix operators and their operand.
func (p *Parser) parseUnaryExpr() ast.Expr {
	start := p.cur.Span

	switch p.cur.Kind {
	case token.Bang, token.Tilde, token.Plus, token.Minus:
		op := p.advance()
		arg := p.parseUnaryExpr()
		return ast.NewUnaryExpr(p.spanFrom(start), unaryOpText(op.Kind), arg)

	case token.KwTypeof, token.KwVoid, token.KwDelete:
		op := p.advance()
		arg := p.parseUnaryExpr()
		return ast.NewUnaryExpr(p.spanFrom(start), op.Text, arg)

	case token.PlusPlus, token.MinusMinus:
		op := p.advance()
		arg := p.parseUnaryExpr()
		if !isSimpleTarget(arg) {
			p.errAt(diag.SynBadAssignTarget, arg.Span(), "invalid increment or decrement target")
		}
		return ast.NewUpdateExpr(p.spanFrom(start), updateOpText(op.Kind), true, arg)

	case token.PrivateIdent:
		// Only valid as the left side of: #name in obj.
		tok := p.advance()
		if !p.at(token.KwIn) {
			p.errAt(diag.SynUnexpectedToken, tok.Span, "private name is only valid with the in operator here")
		}
		return ast.NewPrivateIdent(tok.Span, tok.Text)

	case token.Ident:
		if p.cur.Text == "await" && p.inAsync {
			p.advance()
			arg := p.parseUnaryExpr()
			return ast.NewAwaitExpr(p.spanFrom(start), arg)
		}
	}

	return p.parsePostfixExpr()
}

func unaryOpText(k token.Kind) string {
	switch k {
	case token.Bang:
		return "!"
	case token.Tilde:
		return "~"
	case token.Plus:
		return "+"
	case token.Minus:
		return "-"
	}
	return k.String()
}

func updateOpText(k token.Kind) string {
	if k == token.PlusPlus {
		return "++"
	}
	return "--"
}

// parsePostfixExpr parses a left-hand-side expression with an optional
// postfix increment or decrement, which must not follow a line break.
func (p *Parser) parsePostfixExpr() ast.Expr {
	start := p.cur.Span
	expr := p.parseLHSExpr()

	if (p.at(token.PlusPlus) || p.at(token.MinusMinus)) && !p.cur.NewlineBefore {
		op := p.advance()
		if !isSimpleTarget(expr) {
			p.errAt(diag.SynBadAssignTarget, expr.Span(), "invalid increment or decrement target")
		}
		return ast.NewUpdateExpr(p.spanFrom(start), updateOpText(op.Kind), false, expr)
	}
	return expr
}

// isSimpleTarget reports whether e may be assigned through without
// destructuring: an identifier or member access.
func isSimpleTarget(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Ident, *ast.MemberExpr:
		return true
	}
	return false
}
