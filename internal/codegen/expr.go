package codegen

import (
	"fmt"
	"strconv"

	"whittle/internal/ast"
)

// level is the binding strength of an expression position. An expression
// whose own level is below the level of the slot it sits in gets
// parentheses.
type level uint8

const (
	lLowest level = iota
	lComma
	lAssign
	lCond
	lNullish
	lOr
	lAnd
	lBitOr
	lBitXor
	lBitAnd
	lEquals
	lCompare
	lShift
	lAdd
	lMul
	lExp
	lUnary
	lPostfix
	lNew
	lCall
	lMember
)

func binaryLevel(op string) level {
	switch op {
	case "==", "!=", "===", "!==":
		return lEquals
	case "<", ">", "<=", ">=", "in", "instanceof":
		return lCompare
	case "<<", ">>", ">>>":
		return lShift
	case "+", "-":
		return lAdd
	case "*", "/", "%":
		return lMul
	case "**":
		return lExp
	case "|":
		return lBitOr
	case "^":
		return lBitXor
	case "&":
		return lBitAnd
	}
	panic(fmt.Sprintf("codegen: unknown binary operator %q", op))
}

func logicalLevel(op string) level {
	switch op {
	case "??":
		return lNullish
	case "||":
		return lOr
	case "&&":
		return lAnd
	}
	panic(fmt.Sprintf("codegen: unknown logical operator %q", op))
}

// expr prints e in a slot of the given level, adding parentheses when the
// expression binds more loosely than the slot requires.
func (p *printer) expr(e ast.Expr, lv level) {
	switch t := e.(type) {
	case *ast.Ident:
		p.mark(t.Start, t.Name)
		p.word(t.Name)
	case *ast.PrivateIdent:
		p.word("#" + t.Name)
	case *ast.Literal:
		p.literal(t)
	case *ast.ThisExpr:
		p.word("this")
	case *ast.Super:
		p.word("super")
	case *ast.MetaProperty:
		p.word(t.Meta.Name)
		p.print("." + t.Property.Name)
	case *ast.ArrayExpr:
		p.arrayExpr(t)
	case *ast.ObjectExpr:
		p.objectExpr(t)
	case *ast.TemplateLiteral:
		p.template(t)
	case *ast.TaggedTemplateExpr:
		p.expr(t.Tag, lMember)
		p.template(t.Quasi)
	case *ast.SpreadElement:
		p.print("...")
		p.expr(t.Argument, lAssign)
	case *ast.MemberExpr:
		p.memberExpr(t, lv)
	case *ast.CallExpr:
		p.callExpr(t, lv)
	case *ast.NewExpr:
		p.newExpr(t, lv)
	case *ast.ChainExpr:
		p.expr(t.Expression, lv)
	case *ast.ImportExpr:
		p.word("import")
		p.print("(")
		p.expr(t.Source, lAssign)
		if t.Options != nil {
			p.print(",")
			p.space()
			p.expr(t.Options, lAssign)
		}
		p.print(")")
	case *ast.UnaryExpr:
		p.unaryExpr(t, lv)
	case *ast.UpdateExpr:
		p.updateExpr(t, lv)
	case *ast.BinaryExpr:
		p.binaryExpr(t, lv)
	case *ast.LogicalExpr:
		p.logicalExpr(t, lv)
	case *ast.AssignExpr:
		p.parenIf(lAssign < lv, func() {
			p.expr(t.Left, lMember)
			p.space()
			p.op(t.Operator)
			p.space()
			p.expr(t.Right, lAssign)
		})
	case *ast.CondExpr:
		p.parenIf(lCond < lv, func() {
			p.expr(t.Test, lCond+1)
			p.space()
			p.print("?")
			p.space()
			p.expr(t.Consequent, lAssign)
			p.space()
			p.print(":")
			p.space()
			p.expr(t.Alternate, lAssign)
		})
	case *ast.SequenceExpr:
		p.parenIf(lComma < lv, func() {
			for i, sub := range t.Expressions {
				if i > 0 {
					p.print(",")
					p.space()
				}
				p.expr(sub, lAssign)
			}
		})
	case *ast.YieldExpr:
		p.parenIf(lAssign < lv, func() {
			p.word("yield")
			if t.Delegate {
				p.print("*")
			}
			if t.Argument != nil {
				p.space()
				p.expr(t.Argument, lAssign)
			}
		})
	case *ast.AwaitExpr:
		p.parenIf(lUnary < lv, func() {
			p.word("await")
			p.expr(t.Argument, lUnary)
		})
	case *ast.FuncExpr:
		p.funcExpr(t)
	case *ast.ArrowFuncExpr:
		p.parenIf(lAssign < lv, func() { p.arrowExpr(t) })
	case *ast.ClassExpr:
		p.classHead(t.ID, t.SuperClass)
		p.classBody(t.Body)
	case *ast.ArrayPattern, *ast.ObjectPattern, *ast.AssignPattern, *ast.RestElement:
		// Destructuring targets land in expression slots after the
		// parser converts the parenthesized reading.
		p.pattern(e.(ast.Pattern))
	case *ast.VarDecl:
		// Declarations reach expression printing only through for-loop
		// heads, which forHead handles.
		panic("codegen: declaration outside a for-loop head")
	case *ast.Property:
		p.property(t)
	default:
		panic(fmt.Sprintf("codegen: unhandled expression %T", e))
	}
}

func (p *printer) parenIf(cond bool, body func()) {
	if cond {
		p.print("(")
		body()
		p.print(")")
		return
	}
	body()
}

func (p *printer) literal(t *ast.Literal) {
	p.mark(t.Start, "")
	if t.Raw != "" {
		p.word(t.Raw)
		return
	}
	switch v := t.Value.(type) {
	case nil:
		if t.Regex != nil {
			p.print("/" + t.Regex.Pattern + "/" + t.Regex.Flags)
			return
		}
		if t.BigInt != "" {
			p.word(t.BigInt + "n")
			return
		}
		p.word("null")
	case bool:
		if v {
			p.word("true")
		} else {
			p.word("false")
		}
	case string:
		p.print(ast.QuoteString(v))
	case float64:
		p.word(strconv.FormatFloat(v, 'g', -1, 64))
	default:
		panic(fmt.Sprintf("codegen: unhandled literal value %T", t.Value))
	}
}

func (p *printer) arrayExpr(t *ast.ArrayExpr) {
	p.print("[")
	for i, el := range t.Elements {
		if i > 0 {
			p.print(",")
			if el != nil {
				p.space()
			}
		}
		if el == nil {
			continue // hole
		}
		p.expr(el, lAssign)
	}
	// A trailing hole needs its comma kept: [1,,] has length 2.
	if n := len(t.Elements); n > 0 && t.Elements[n-1] == nil {
		p.print(",")
	}
	p.print("]")
}

func (p *printer) objectExpr(t *ast.ObjectExpr) {
	if len(t.Properties) == 0 {
		p.print("{}")
		return
	}
	p.print("{")
	for i, prop := range t.Properties {
		if i > 0 {
			p.print(",")
			p.space()
		}
		p.expr(prop, lAssign)
	}
	p.print("}")
}

func (p *printer) property(t *ast.Property) {
	if t.Kind == ast.PropertyGet || t.Kind == ast.PropertySet || t.Method {
		fn, ok := t.Value.(*ast.FuncExpr)
		if !ok {
			panic(fmt.Sprintf("codegen: method property carries %T", t.Value))
		}
		kind := "method"
		if t.Kind != ast.PropertyInit {
			kind = string(t.Kind)
		}
		p.methodHead(t.Key, fn, kind, t.Computed)
		p.params(fn.Params)
		p.space()
		p.block(fn.Body)
		return
	}
	if t.Shorthand && !t.Computed {
		// The value may have been renamed away from the key; fall back
		// to the long form when they no longer agree.
		if id, ok := t.Value.(*ast.Ident); ok {
			if key, isIdent := t.Key.(*ast.Ident); isIdent && key.Name == id.Name {
				p.word(id.Name)
				return
			}
		}
	}
	p.propertyKey(t.Key, t.Computed)
	p.print(":")
	p.space()
	p.expr(t.Value, lAssign)
}

func (p *printer) template(t *ast.TemplateLiteral) {
	p.print("`")
	for i, q := range t.Quasis {
		p.print(q.Value.Raw)
		if i < len(t.Expressions) {
			p.print("${")
			p.expr(t.Expressions[i], lLowest)
			p.print("}")
		}
	}
	p.print("`")
}

func (p *printer) memberExpr(t *ast.MemberExpr, lv level) {
	_ = lv // member access binds tighter than every slot
	p.expr(t.Object, lMember)
	if t.Computed {
		if t.Optional {
			p.print("?.")
		}
		p.print("[")
		p.expr(t.Property, lLowest)
		p.print("]")
		return
	}
	if t.Optional {
		p.print("?.")
	} else {
		p.print(".")
	}
	switch prop := t.Property.(type) {
	case *ast.Ident:
		p.print(prop.Name)
	case *ast.PrivateIdent:
		p.print("#" + prop.Name)
	default:
		panic(fmt.Sprintf("codegen: unhandled member property %T", t.Property))
	}
}

func (p *printer) callExpr(t *ast.CallExpr, lv level) {
	p.parenIf(lCall < lv, func() {
		p.expr(t.Callee, lCall)
		if t.Optional {
			p.print("?.")
		}
		p.args(t.Arguments)
	})
}

func (p *printer) newExpr(t *ast.NewExpr, lv level) {
	_ = lv // new with arguments binds tighter than every slot
	p.word("new")
	// The callee must not swallow the argument parentheses: any call
	// inside the member chain needs its own wrapping.
	if calleeContainsCall(t.Callee) {
		p.print("(")
		p.expr(t.Callee, lLowest)
		p.print(")")
	} else {
		p.expr(t.Callee, lMember)
	}
	p.args(t.Arguments)
}

func calleeContainsCall(e ast.Expr) bool {
	for {
		switch t := e.(type) {
		case *ast.CallExpr, *ast.ImportExpr, *ast.ChainExpr:
			return true
		case *ast.MemberExpr:
			e = t.Object
		case *ast.TaggedTemplateExpr:
			e = t.Tag
		default:
			return false
		}
	}
}

func (p *printer) args(args []ast.Expr) {
	p.print("(")
	for i, a := range args {
		if i > 0 {
			p.print(",")
			p.space()
		}
		p.expr(a, lAssign)
	}
	p.print(")")
}

func (p *printer) unaryExpr(t *ast.UnaryExpr, lv level) {
	p.parenIf(lUnary < lv, func() {
		switch t.Operator {
		case "typeof", "void", "delete":
			p.word(t.Operator)
		default:
			p.op(t.Operator)
		}
		p.expr(t.Argument, lUnary)
	})
}

func (p *printer) updateExpr(t *ast.UpdateExpr, lv level) {
	if t.Prefix {
		p.parenIf(lUnary < lv, func() {
			p.op(t.Operator)
			p.expr(t.Argument, lUnary)
		})
		return
	}
	p.parenIf(lPostfix < lv, func() {
		p.expr(t.Argument, lPostfix)
		p.op(t.Operator)
	})
}

func (p *printer) binaryExpr(t *ast.BinaryExpr, lv level) {
	own := binaryLevel(t.Operator)
	p.parenIf(own < lv, func() {
		leftLv, rightLv := own, own+1
		if t.Operator == "**" {
			// Exponentiation is right associative, and its base may not
			// be an unparenthesized unary expression.
			leftLv, rightLv = own+1, own
			if _, unary := t.Left.(*ast.UnaryExpr); unary {
				leftLv = lCall
			}
			if _, await := t.Left.(*ast.AwaitExpr); await {
				leftLv = lCall
			}
		}
		p.expr(t.Left, leftLv)
		p.binOp(t.Operator)
		p.expr(t.Right, rightLv)
	})
}

func (p *printer) logicalExpr(t *ast.LogicalExpr, lv level) {
	own := logicalLevel(t.Operator)
	p.parenIf(own < lv, func() {
		// ?? may not mix with && or || without parentheses.
		leftLv, rightLv := own, own+1
		if t.Operator == "??" {
			if mixesWithNullish(t.Left) {
				leftLv = lCall
			}
			if mixesWithNullish(t.Right) {
				rightLv = lCall
			}
		}
		p.expr(t.Left, leftLv)
		p.binOp(t.Operator)
		p.expr(t.Right, rightLv)
	})
}

func mixesWithNullish(e ast.Expr) bool {
	l, ok := e.(*ast.LogicalExpr)
	return ok && l.Operator != "??"
}

// binOp prints an infix operator with the spacing its form needs: word
// operators always separate, symbols only outside minified output.
func (p *printer) binOp(op string) {
	if op == "in" || op == "instanceof" {
		p.word(op)
		p.print(" ")
		return
	}
	p.space()
	p.op(op)
	p.space()
}

func (p *printer) funcExpr(t *ast.FuncExpr) {
	if t.Async {
		p.word("async")
		p.print(" ")
	}
	p.word("function")
	if t.Generator {
		p.print("*")
	}
	if t.ID != nil {
		p.word(t.ID.Name)
	}
	p.params(t.Params)
	p.space()
	p.block(t.Body)
}

func (p *printer) arrowExpr(t *ast.ArrowFuncExpr) {
	if t.Async {
		p.word("async")
		p.print(" ")
	}
	if id, ok := singleIdentParam(t.Params); ok && p.opts.Minify {
		p.word(id.Name)
	} else {
		p.params(t.Params)
	}
	p.space()
	p.print("=>")
	p.space()
	if b := t.BlockBody(); b != nil {
		p.block(b)
		return
	}
	body := t.ExprBody()
	if _, isObj := body.(*ast.ObjectExpr); isObj {
		p.print("(")
		p.expr(body, lAssign)
		p.print(")")
		return
	}
	if _, isSeq := body.(*ast.SequenceExpr); isSeq {
		p.print("(")
		p.expr(body, lLowest)
		p.print(")")
		return
	}
	p.expr(body, lAssign)
}

func singleIdentParam(params []ast.Pattern) (*ast.Ident, bool) {
	if len(params) != 1 {
		return nil, false
	}
	id, ok := params[0].(*ast.Ident)
	return id, ok
}
