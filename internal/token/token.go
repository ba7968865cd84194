package token

import (
	"fmt"

	"whittle/internal/source"
)

// Token is a single lexeme with its source span.
type Token struct {
	Kind Kind
	Span source.Span
	// Text is the raw source text of the token. For strings and templates it
	// includes the delimiters.
	Text string
	// NewlineBefore is true when a line terminator appears between this token
	// and the previous one. Automatic semicolon insertion depends on it.
	NewlineBefore bool
}

// Is reports whether the token has the given kind.
func (t Token) Is(k Kind) bool { return t.Kind == k }

// IsKeyword reports whether the token is a reserved word.
func (t Token) IsKeyword() bool { return t.Kind >= KwBreak && t.Kind <= KwWith }

// IsLiteral reports whether the token is a literal value: a number, bigint,
// string, regular expression, or the keywords true, false, and null.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case Num, BigInt, Str, Regex, KwTrue, KwFalse, KwNull:
		return true
	}
	return false
}

// IsTemplatePart reports whether the token belongs to a template literal.
func (t Token) IsTemplatePart() bool {
	switch t.Kind {
	case NoSubTemplate, TemplateHead, TemplateMiddle, TemplateTail:
		return true
	}
	return false
}

// IsAssignOp reports whether the token is an assignment operator,
// including plain = and all compound forms.
func (t Token) IsAssignOp() bool {
	if t.Kind == Assign {
		return true
	}
	return t.Kind >= PlusAssign && t.Kind <= QuestionQuestionAssign
}

// IdentText returns the identifier text, or "" for non-identifier tokens.
func (t Token) IdentText() string {
	if t.Kind != Ident && t.Kind != PrivateIdent {
		return ""
	}
	return t.Text
}

func (t Token) String() string {
	switch t.Kind {
	case Ident, PrivateIdent, Num, BigInt, Str, Regex:
		return fmt.Sprintf("%s %q %s", t.Kind, t.Text, t.Span)
	default:
		return fmt.Sprintf("%s %s", t.Kind, t.Span)
	}
}
