package compress

import (
	"math"
	"strconv"

	"whittle/internal/ast"
	"whittle/internal/source"
)

// expr folds literal subtrees bottom-up and recurses into nested function
// bodies. It returns the replacement expression; callers store it back.
func (c *compressor) expr(e ast.Expr) ast.Expr {
	switch t := e.(type) {
	case nil:
		return nil

	case *ast.BinaryExpr:
		t.Left = c.expr(t.Left)
		t.Right = c.expr(t.Right)
		return foldBinary(t)

	case *ast.LogicalExpr:
		t.Left = c.expr(t.Left)
		if folded, ok := foldLogical(t); ok {
			if folded == t.Right {
				return c.expr(folded)
			}
			return folded
		}
		t.Right = c.expr(t.Right)
		return t

	case *ast.UnaryExpr:
		t.Argument = c.expr(t.Argument)
		return foldUnary(t)

	case *ast.CondExpr:
		t.Test = c.expr(t.Test)
		if truth, known := literalTruth(t.Test); known {
			if truth {
				return c.expr(t.Consequent)
			}
			return c.expr(t.Alternate)
		}
		t.Consequent = c.expr(t.Consequent)
		t.Alternate = c.expr(t.Alternate)
		return t

	case *ast.SequenceExpr:
		for i, sub := range t.Expressions {
			t.Expressions[i] = c.expr(sub)
		}
		return t

	case *ast.ArrayExpr:
		for i, el := range t.Elements {
			if el != nil {
				t.Elements[i] = c.expr(el)
			}
		}
		return t

	case *ast.ObjectExpr:
		for _, prop := range t.Properties {
			switch m := prop.(type) {
			case *ast.Property:
				if m.Computed {
					m.Key = c.expr(m.Key)
				}
				m.Value = c.expr(m.Value)
			case *ast.SpreadElement:
				m.Argument = c.expr(m.Argument)
			}
		}
		return t

	case *ast.SpreadElement:
		t.Argument = c.expr(t.Argument)
		return t

	case *ast.TemplateLiteral:
		for i, sub := range t.Expressions {
			t.Expressions[i] = c.expr(sub)
		}
		return t

	case *ast.TaggedTemplateExpr:
		t.Tag = c.expr(t.Tag)
		for i, sub := range t.Quasi.Expressions {
			t.Quasi.Expressions[i] = c.expr(sub)
		}
		return t

	case *ast.MemberExpr:
		t.Object = c.expr(t.Object)
		if t.Computed {
			t.Property = c.expr(t.Property)
		}
		return t

	case *ast.CallExpr:
		t.Callee = c.expr(t.Callee)
		for i, a := range t.Arguments {
			t.Arguments[i] = c.expr(a)
		}
		return t

	case *ast.NewExpr:
		t.Callee = c.expr(t.Callee)
		for i, a := range t.Arguments {
			t.Arguments[i] = c.expr(a)
		}
		return t

	case *ast.ChainExpr:
		t.Expression = c.expr(t.Expression)
		return t

	case *ast.ImportExpr:
		t.Source = c.expr(t.Source)
		t.Options = c.expr(t.Options)
		return t

	case *ast.UpdateExpr:
		t.Argument = c.expr(t.Argument)
		return t

	case *ast.AssignExpr:
		if p, ok := t.Left.(ast.Pattern); ok {
			c.pattern(p)
		} else {
			t.Left = c.expr(t.Left)
		}
		t.Right = c.expr(t.Right)
		return t

	case *ast.YieldExpr:
		t.Argument = c.expr(t.Argument)
		return t

	case *ast.AwaitExpr:
		t.Argument = c.expr(t.Argument)
		return t

	case *ast.FuncExpr:
		c.funcBody(t.Params, t.Body)
		return t

	case *ast.ArrowFuncExpr:
		for _, p := range t.Params {
			c.pattern(p)
		}
		if block, ok := t.Body.(*ast.BlockStmt); ok {
			block.Body = c.stmts(block.Body)
		} else {
			t.Body = c.expr(t.Body)
		}
		return t

	case *ast.ClassExpr:
		t.SuperClass = c.expr(t.SuperClass)
		c.classBody(t.Body)
		return t
	}

	return e
}

// literalTruth evaluates the boolean coercion of a literal.
func literalTruth(e ast.Expr) (truth, known bool) {
	lit, ok := e.(*ast.Literal)
	if !ok {
		return false, false
	}
	if lit.Regex != nil {
		return true, true
	}
	if lit.BigInt != "" {
		return lit.BigInt != "0", true
	}
	switch v := lit.Value.(type) {
	case bool:
		return v, true
	case float64:
		return v != 0, true
	case string:
		return v != "", true
	case nil:
		return false, true
	}
	return false, false
}

// isNullLiteral matches the null literal only; undefined is an identifier
// and is left alone.
func isNullLiteral(e ast.Expr) bool {
	lit, ok := e.(*ast.Literal)
	return ok && lit.Value == nil && lit.BigInt == "" && lit.Regex == nil
}

// foldLogical resolves a logical operator with a literal left operand. The
// returned expression may be the untouched right side, which the caller
// still folds.
func foldLogical(t *ast.LogicalExpr) (ast.Expr, bool) {
	switch t.Operator {
	case "&&":
		if truth, known := literalTruth(t.Left); known {
			if truth {
				return t.Right, true
			}
			return t.Left, true
		}
	case "||":
		if truth, known := literalTruth(t.Left); known {
			if truth {
				return t.Left, true
			}
			return t.Right, true
		}
	case "??":
		if _, isLit := t.Left.(*ast.Literal); isLit {
			if isNullLiteral(t.Left) {
				return t.Right, true
			}
			return t.Left, true
		}
	}
	return nil, false
}

func foldUnary(t *ast.UnaryExpr) ast.Expr {
	switch t.Operator {
	case "!":
		if truth, known := literalTruth(t.Argument); known {
			return boolLiteral(t.Span(), !truth)
		}
	case "-":
		if v, ok := numericValue(t.Argument); ok {
			return numberLiteral(t.Span(), -v)
		}
	case "+":
		if v, ok := numericValue(t.Argument); ok {
			return numberLiteral(t.Span(), v)
		}
	case "typeof":
		if name, ok := typeofLiteral(t.Argument); ok {
			return stringLiteral(t.Span(), name)
		}
	}
	return t
}

func typeofLiteral(e ast.Expr) (string, bool) {
	lit, ok := e.(*ast.Literal)
	if !ok {
		return "", false
	}
	if lit.Regex != nil {
		return "object", true
	}
	if lit.BigInt != "" {
		return "bigint", true
	}
	switch lit.Value.(type) {
	case bool:
		return "boolean", true
	case float64:
		return "number", true
	case string:
		return "string", true
	case nil:
		return "object", true
	}
	return "", false
}

// numericValue unwraps a plain number literal.
func numericValue(e ast.Expr) (float64, bool) {
	lit, ok := e.(*ast.Literal)
	if !ok || lit.Regex != nil || lit.BigInt != "" {
		return 0, false
	}
	v, ok := lit.Value.(float64)
	return v, ok
}

// foldBinary evaluates an operator over two same-typed literals. Anything
// that would produce NaN or an infinity is left as written, so folding never
// creates a value the output encodings cannot carry.
func foldBinary(t *ast.BinaryExpr) ast.Expr {
	l, lok := t.Left.(*ast.Literal)
	r, rok := t.Right.(*ast.Literal)
	if !lok || !rok {
		return t
	}
	if l.Regex != nil || r.Regex != nil || l.BigInt != "" || r.BigInt != "" {
		return t
	}

	switch lv := l.Value.(type) {
	case float64:
		rv, ok := r.Value.(float64)
		if !ok {
			return t
		}
		return foldNumeric(t, lv, rv)

	case string:
		rv, ok := r.Value.(string)
		if !ok {
			return t
		}
		switch t.Operator {
		case "+":
			return stringLiteral(t.Span(), lv+rv)
		case "==", "===":
			return boolLiteral(t.Span(), lv == rv)
		case "!=", "!==":
			return boolLiteral(t.Span(), lv != rv)
		}

	case bool:
		rv, ok := r.Value.(bool)
		if !ok {
			return t
		}
		switch t.Operator {
		case "==", "===":
			return boolLiteral(t.Span(), lv == rv)
		case "!=", "!==":
			return boolLiteral(t.Span(), lv != rv)
		}
	}
	return t
}

func foldNumeric(t *ast.BinaryExpr, l, r float64) ast.Expr {
	sp := t.Span()
	switch t.Operator {
	case "+":
		return finiteNumber(t, sp, l+r)
	case "-":
		return finiteNumber(t, sp, l-r)
	case "*":
		return finiteNumber(t, sp, l*r)
	case "/":
		return finiteNumber(t, sp, l/r)
	case "%":
		return finiteNumber(t, sp, math.Mod(l, r))
	case "**":
		return finiteNumber(t, sp, math.Pow(l, r))
	case "<":
		return boolLiteral(sp, l < r)
	case ">":
		return boolLiteral(sp, l > r)
	case "<=":
		return boolLiteral(sp, l <= r)
	case ">=":
		return boolLiteral(sp, l >= r)
	case "==", "===":
		return boolLiteral(sp, l == r)
	case "!=", "!==":
		return boolLiteral(sp, l != r)
	case "&":
		return numberLiteral(sp, float64(toInt32(l)&toInt32(r)))
	case "|":
		return numberLiteral(sp, float64(toInt32(l)|toInt32(r)))
	case "^":
		return numberLiteral(sp, float64(toInt32(l)^toInt32(r)))
	case "<<":
		return numberLiteral(sp, float64(toInt32(l)<<(toUint32(r)&31)))
	case ">>":
		return numberLiteral(sp, float64(toInt32(l)>>(toUint32(r)&31)))
	case ">>>":
		return numberLiteral(sp, float64(toUint32(l)>>(toUint32(r)&31)))
	}
	return t
}

func finiteNumber(orig ast.Expr, sp source.Span, v float64) ast.Expr {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return orig
	}
	return numberLiteral(sp, v)
}

// toInt32 applies the ToInt32 coercion: truncate, wrap modulo 2^32, and
// reinterpret the low 32 bits as signed.
func toInt32(f float64) int32 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	m := math.Mod(math.Trunc(f), 1<<32)
	if m < 0 {
		m += 1 << 32
	}
	return int32(uint32(m))
}

func toUint32(f float64) uint32 {
	return uint32(toInt32(f))
}

func numberLiteral(sp source.Span, v float64) *ast.Literal {
	return ast.NewLiteral(sp, v, strconv.FormatFloat(v, 'g', -1, 64))
}

func stringLiteral(sp source.Span, v string) *ast.Literal {
	return ast.NewLiteral(sp, v, ast.QuoteString(v))
}

func boolLiteral(sp source.Span, v bool) *ast.Literal {
	if v {
		return ast.NewLiteral(sp, true, "true")
	}
	return ast.NewLiteral(sp, false, "false")
}
