package token

import (
	"testing"

	"whittle/internal/source"
)

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		ident string
		want  Kind
	}{
		{"break", KwBreak},
		{"instanceof", KwInstanceof},
		{"typeof", KwTypeof},
		{"null", KwNull},
		{"true", KwTrue},
		{"enum", KwEnum},
		// Contextual keywords stay identifiers.
		{"let", Ident},
		{"async", Ident},
		{"await", Ident},
		{"yield", Ident},
		{"of", Ident},
		{"static", Ident},
		{"get", Ident},
		{"from", Ident},
		{"foo", Ident},
		{"", Ident},
	}
	for _, tt := range tests {
		if got := LookupKeyword(tt.ident); got != tt.want {
			t.Errorf("LookupKeyword(%q) = %v, want %v", tt.ident, got, tt.want)
		}
	}
}

func TestTokenPredicates(t *testing.T) {
	sp := source.Span{Start: 0, End: 3}

	kw := Token{Kind: KwVar, Span: sp, Text: "var"}
	if !kw.IsKeyword() {
		t.Errorf("KwVar.IsKeyword() = false, want true")
	}
	if kw.IsLiteral() {
		t.Errorf("KwVar.IsLiteral() = true, want false")
	}

	null := Token{Kind: KwNull, Text: "null"}
	if !null.IsLiteral() {
		t.Errorf("KwNull.IsLiteral() = false, want true")
	}

	num := Token{Kind: Num, Text: "42"}
	if num.IsKeyword() {
		t.Errorf("Num.IsKeyword() = true, want false")
	}
	if !num.IsLiteral() {
		t.Errorf("Num.IsLiteral() = false, want true")
	}

	head := Token{Kind: TemplateHead}
	if !head.IsTemplatePart() {
		t.Errorf("TemplateHead.IsTemplatePart() = false, want true")
	}

	for _, k := range []Kind{Assign, PlusAssign, UShrAssign, QuestionQuestionAssign} {
		tok := Token{Kind: k}
		if !tok.IsAssignOp() {
			t.Errorf("%v.IsAssignOp() = false, want true", k)
		}
	}
	if (Token{Kind: EqEq}).IsAssignOp() {
		t.Errorf("EqEq.IsAssignOp() = true, want false")
	}

	id := Token{Kind: Ident, Text: "foo"}
	if got := id.IdentText(); got != "foo" {
		t.Errorf("IdentText() = %q, want %q", got, "foo")
	}
	if got := num.IdentText(); got != "" {
		t.Errorf("IdentText() on Num = %q, want empty", got)
	}
}
