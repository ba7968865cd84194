package lexer

import (
	"whittle/internal/diag"
	"whittle/internal/token"
)

// RescanRegExp re-reads a '/' or '/=' token as a regular expression literal.
// The parser calls this when the grammar expects an expression; at the
// lexical level alone the two readings cannot be told apart. slash must be
// the most recently returned token.
func (lx *Lexer) RescanRegExp(slash token.Token) token.Token {
	lx.look = nil
	lx.cursor.Reset(Mark(slash.Span.Start))
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '/'

	inClass := false
	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedRegExp, sp, "unterminated regular expression")
			tok := lx.tokenAt(token.Regex, sp)
			tok.NewlineBefore = slash.NewlineBefore
			return tok
		}

		b := lx.cursor.Peek()
		r, _ := lx.peekRune()
		if isLineTerminator(r) {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedRegExp, sp, "unterminated regular expression")
			tok := lx.tokenAt(token.Regex, sp)
			tok.NewlineBefore = slash.NewlineBefore
			return tok
		}

		switch b {
		case '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() {
				r2, _ := lx.peekRune()
				if !isLineTerminator(r2) {
					lx.bumpRune()
				}
			}
			continue
		case '[':
			inClass = true
		case ']':
			inClass = false
		case '/':
			if !inClass {
				lx.cursor.Bump()
				lx.scanRegExpFlags()
				tok := lx.tokenAt(token.Regex, lx.cursor.SpanFrom(start))
				tok.NewlineBefore = slash.NewlineBefore
				return tok
			}
		}
		lx.bumpRune()
	}
}

// scanRegExpFlags consumes the flag characters after the closing slash.
// Flag validity is left to the host engine; anything identifier-shaped is
// taken.
func (lx *Lexer) scanRegExpFlags() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if isIdentContinueByte(b) {
			lx.cursor.Bump()
			continue
		}
		if b >= utf8RuneSelf {
			if r, _ := lx.peekRune(); isIdentContinueRune(r) {
				lx.bumpRune()
				continue
			}
		}
		break
	}
}
