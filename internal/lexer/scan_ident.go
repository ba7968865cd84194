package lexer

import (
	"strings"

	"whittle/internal/diag"
	"whittle/internal/token"
)

// scanIdentOrKeyword scans an identifier, decoding \uXXXX and \u{...}
// escapes. Reserved words written with escapes stay identifiers; the
// escape is reported because no keyword may be spelled that way.
func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Mark()
	hadEscape := false
	var decoded strings.Builder

	first := true
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		if b == '\\' {
			r, ok := lx.scanIdentEscape()
			if !ok {
				break
			}
			valid := isIdentContinueRune(r)
			if first {
				valid = isIdentStartRune(r)
			}
			if !valid {
				lx.errLex(diag.LexBadIdentEscape, lx.cursor.SpanFrom(start),
					"escape sequence is not a valid identifier character")
			}
			hadEscape = true
			decoded.WriteRune(r)
			first = false
			continue
		}

		if b < utf8RuneSelf {
			ok := isIdentContinueByte(b)
			if first {
				ok = isIdentStartByte(b)
			}
			if !ok {
				break
			}
			decoded.WriteByte(b)
			lx.cursor.Bump()
			first = false
			continue
		}

		r, _ := lx.peekRune()
		ok := isIdentContinueRune(r)
		if first {
			ok = isIdentStartRune(r)
		}
		if !ok {
			break
		}
		decoded.WriteRune(r)
		lx.bumpRune()
		first = false
	}

	sp := lx.cursor.SpanFrom(start)
	if first {
		// No identifier characters consumed. Either a failed escape already
		// advanced past the backslash and reported, or the dispatch byte was
		// a stray non-identifier rune: skip it so lexing always advances.
		if sp.Empty() {
			lx.bumpRune()
			sp = lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnexpectedChar, sp, "unexpected character "+lx.file.Slice(sp))
		}
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Slice(sp)}
	}

	text := decoded.String()
	kind := token.LookupKeyword(text)
	if kind != token.Ident && hadEscape {
		lx.errLex(diag.LexBadIdentEscape, sp, "keywords may not contain escape sequences")
		kind = token.Ident
	}
	return token.Token{Kind: kind, Span: sp, Text: text}
}

// scanPrivateIdent scans #name. The token text is the name without the hash;
// the span covers the hash too.
func (lx *Lexer) scanPrivateIdent() token.Token {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '#'

	b := lx.cursor.Peek()
	r, _ := lx.peekRune()
	if !isIdentStartByte(b) && b != '\\' && !(b >= utf8RuneSelf && isIdentStartRune(r)) {
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnexpectedChar, sp, "expected identifier after '#'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: lx.file.Slice(sp)}
	}

	name := lx.scanIdentOrKeyword()
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: token.PrivateIdent, Span: sp, Text: name.Text}
}

// scanIdentEscape decodes \uXXXX or \u{CodePoint} with the cursor on the
// backslash. On malformed input it reports, consumes the backslash, and
// returns false.
func (lx *Lexer) scanIdentEscape() (rune, bool) {
	start := lx.cursor.Mark()
	lx.cursor.Bump() // '\\'

	if !lx.cursor.Eat('u') {
		lx.errLex(diag.LexBadIdentEscape, lx.cursor.SpanFrom(start),
			"only \\u escapes are allowed in identifiers")
		return 0, false
	}

	if lx.cursor.Eat('{') {
		var v rune
		digits := 0
		for isHex(lx.cursor.Peek()) {
			v = v*16 + rune(hexVal(lx.cursor.Bump()))
			digits++
			if v > 0x10FFFF {
				break
			}
		}
		if digits == 0 || v > 0x10FFFF || !lx.cursor.Eat('}') {
			lx.errLex(diag.LexBadIdentEscape, lx.cursor.SpanFrom(start),
				"malformed \\u{...} escape")
			lx.cursor.Reset(start)
			lx.cursor.Bump()
			return 0, false
		}
		return v, true
	}

	var v rune
	for i := 0; i < 4; i++ {
		b := lx.cursor.Peek()
		if !isHex(b) {
			lx.errLex(diag.LexBadIdentEscape, lx.cursor.SpanFrom(start),
				"\\u escape needs four hex digits")
			lx.cursor.Reset(start)
			lx.cursor.Bump()
			return 0, false
		}
		v = v*16 + rune(hexVal(lx.cursor.Bump()))
	}
	return v, true
}

func hexVal(b byte) byte {
	switch {
	case b >= '0' && b <= '9':
		return b - '0'
	case b >= 'a' && b <= 'f':
		return b - 'a' + 10
	default:
		return b - 'A' + 10
	}
}
