package codegen

import (
	"fmt"

	"whittle/internal/ast"
)

// pattern prints a binding or assignment target.
func (p *printer) pattern(pat ast.Pattern) {
	switch t := pat.(type) {
	case *ast.Ident:
		p.mark(t.Start, t.Name)
		p.word(t.Name)
	case *ast.ArrayPattern:
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
			p.pattern(el)
		}
		if n := len(t.Elements); n > 0 && t.Elements[n-1] == nil {
			p.print(",")
		}
		p.print("]")
	case *ast.ObjectPattern:
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
			switch pr := prop.(type) {
			case *ast.Property:
				p.patternProperty(pr)
			case *ast.RestElement:
				p.print("...")
				p.pattern(pr.Argument)
			default:
				panic(fmt.Sprintf("codegen: unhandled object pattern member %T", prop))
			}
		}
		p.print("}")
	case *ast.AssignPattern:
		p.pattern(t.Left)
		p.space()
		p.print("=")
		p.space()
		p.expr(t.Right, lAssign)
	case *ast.RestElement:
		p.print("...")
		p.pattern(t.Argument)
	case *ast.MemberExpr:
		// Destructuring assignment targets may name member slots.
		p.memberExpr(t, lMember)
	default:
		panic(fmt.Sprintf("codegen: unhandled pattern %T", pat))
	}
}

// patternProperty prints one object pattern member: shorthand when the key
// still names the bound value, long form otherwise.
func (p *printer) patternProperty(t *ast.Property) {
	value, ok := t.Value.(ast.Pattern)
	if !ok {
		panic(fmt.Sprintf("codegen: object pattern value %T", t.Value))
	}
	if t.Shorthand && !t.Computed {
		if key, isIdent := t.Key.(*ast.Ident); isIdent {
			switch v := value.(type) {
			case *ast.Ident:
				if v.Name == key.Name {
					p.word(v.Name)
					return
				}
			case *ast.AssignPattern:
				if id, isID := v.Left.(*ast.Ident); isID && id.Name == key.Name {
					p.pattern(v)
					return
				}
			}
		}
	}
	p.propertyKey(t.Key, t.Computed)
	p.print(":")
	p.space()
	p.pattern(value)
}
