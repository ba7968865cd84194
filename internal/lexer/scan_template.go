package lexer

import (
	"whittle/internal/diag"
	"whittle/internal/token"
)

// scanTemplate scans a template literal from its opening backtick. It
// produces NoSubTemplate for `...` or TemplateHead for `...${; the parser
// comes back through RescanTemplatePart for the parts after each
// substitution.
func (lx *Lexer) scanTemplate() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '`'
	return lx.scanTemplateRest(start, token.NoSubTemplate, token.TemplateHead)
}

// RescanTemplatePart re-reads a closing brace as the continuation of a
// template literal, producing TemplateMiddle or TemplateTail. rbrace must be
// the most recently returned token.
func (lx *Lexer) RescanTemplatePart(rbrace token.Token) token.Token {
	lx.look = nil
	lx.cursor.Reset(Mark(rbrace.Span.Start))
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '}'
	tok := lx.scanTemplateRest(start, token.TemplateTail, token.TemplateMiddle)
	tok.NewlineBefore = rbrace.NewlineBefore
	return tok
}

// scanTemplateRest scans template characters until the closing backtick
// (closed kind) or the next ${ (open kind).
func (lx *Lexer) scanTemplateRest(start Mark, closed, open token.Kind) token.Token {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '`' {
			lx.cursor.Bump()
			return lx.tokenAt(closed, lx.cursor.SpanFrom(start))
		}

		if b == '$' {
			if lx.try2('$', '{') {
				return lx.tokenAt(open, lx.cursor.SpanFrom(start))
			}
			lx.cursor.Bump()
			continue
		}

		if b == '\\' {
			lx.cursor.Bump()
			lx.scanStringEscape(start)
			continue
		}

		// Line terminators are legal inside templates.
		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedTemplate, sp, "unterminated template literal")
	return lx.tokenAt(closed, sp)
}
