package ast

import (
	"fmt"
	"strings"
	"testing"
)

func TestWalkVisitsInSourceOrder(t *testing.T) {
	// function f(a) { return a + 1; }
	param := NewIdent(span(11, 12), "a")
	ref := NewIdent(span(23, 24), "a")
	one := NewLiteral(span(27, 28), float64(1), "1")
	sum := NewBinaryExpr(span(23, 28), "+", ref, one)
	ret := NewReturnStmt(span(16, 29), sum)
	body := NewBlockStmt(span(14, 31), []Stmt{ret})
	fn := NewFuncDecl(span(0, 31), NewIdent(span(9, 10), "f"), []Pattern{param}, body, false, false)
	prog := NewProgram(span(0, 31), SourceTypeModule, []Stmt{fn})

	var types []string
	Walk(prog, func(n Syntax) bool {
		types = append(types, strings.TrimPrefix(fmt.Sprintf("%T", n), "*ast."))
		return true
	})

	want := []string{
		"Program", "FuncDecl", "Ident", "Ident",
		"BlockStmt", "ReturnStmt", "BinaryExpr",
		"Ident", "Literal",
	}
	if len(types) != len(want) {
		t.Fatalf("visited %d nodes %v, want %d", len(types), types, len(want))
	}
	for i := range want {
		if types[i] != want[i] {
			t.Fatalf("visit %d = %s, want %s (full: %v)", i, types[i], want[i], types)
		}
	}
}

func TestWalkPrune(t *testing.T) {
	inner := NewIdent(span(1, 2), "x")
	block := NewBlockStmt(span(0, 4), []Stmt{NewExprStmt(span(1, 3), inner)})
	prog := NewProgram(span(0, 4), SourceTypeModule, []Stmt{block})

	seen := 0
	Walk(prog, func(n Syntax) bool {
		seen++
		_, isBlock := n.(*BlockStmt)
		return !isBlock
	})
	// Program and BlockStmt only; pruning stops before ExprStmt.
	if seen != 2 {
		t.Fatalf("visited %d nodes, want 2", seen)
	}
}

func TestWalkSkipsNilSlots(t *testing.T) {
	arr := NewArrayExpr(span(0, 6), []Expr{
		NewLiteral(span(1, 2), float64(1), "1"),
		nil,
		NewLiteral(span(4, 5), float64(2), "2"),
	})
	count := 0
	Walk(arr, func(n Syntax) bool {
		count++
		return true
	})
	if count != 3 {
		t.Fatalf("visited %d nodes, want 3 (array and two literals)", count)
	}
}
