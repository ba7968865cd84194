package lexer

import (
	"whittle/internal/diag"
	"whittle/internal/token"
)

// scanString scans a single- or double-quoted string literal. The token text
// keeps the quotes. LF and CR terminate the literal with an error; U+2028
// and U+2029 are legal inside strings.
func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Mark()
	quote := lx.cursor.Bump()

	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == quote {
			lx.cursor.Bump()
			return lx.tokenAt(token.Str, lx.cursor.SpanFrom(start))
		}

		if b == '\\' {
			lx.cursor.Bump()
			lx.scanStringEscape(start)
			continue
		}

		if b == '\n' || b == '\r' {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexNewlineInString, sp, "string literal contains an unescaped line break")
			return lx.tokenAt(token.Str, sp)
		}

		lx.bumpRune()
	}

	sp := lx.cursor.SpanFrom(start)
	lx.errLex(diag.LexUnterminatedString, sp, "unterminated string literal")
	return lx.tokenAt(token.Str, sp)
}

// scanStringEscape validates the escape after a consumed backslash. Most
// escapes are a single character; \x, \u, and line continuations need more.
func (lx *Lexer) scanStringEscape(start Mark) {
	if lx.cursor.EOF() {
		return
	}
	b := lx.cursor.Peek()
	switch b {
	case 'x':
		lx.cursor.Bump()
		for i := 0; i < 2; i++ {
			if !isHex(lx.cursor.Peek()) {
				lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start),
					"\\x escape needs two hex digits")
				return
			}
			lx.cursor.Bump()
		}
	case 'u':
		lx.cursor.Bump()
		if lx.cursor.Eat('{') {
			digits := 0
			for isHex(lx.cursor.Peek()) {
				lx.cursor.Bump()
				digits++
			}
			if digits == 0 || !lx.cursor.Eat('}') {
				lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start),
					"malformed \\u{...} escape")
			}
			return
		}
		for i := 0; i < 4; i++ {
			if !isHex(lx.cursor.Peek()) {
				lx.errLex(diag.LexBadEscape, lx.cursor.SpanFrom(start),
					"\\u escape needs four hex digits")
				return
			}
			lx.cursor.Bump()
		}
	case '\r':
		// Line continuation; CRLF counts once.
		lx.cursor.Bump()
		lx.cursor.Eat('\n')
	default:
		// Any other escaped rune stands for itself, including \n \t \0
		// and line continuations via LS/PS.
		lx.bumpRune()
	}
}
