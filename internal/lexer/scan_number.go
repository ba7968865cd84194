package lexer

import (
	"whittle/internal/diag"
	"whittle/internal/source"
	"whittle/internal/token"
)

// scanNumber scans numeric literals in every base, with underscore
// separators and an optional BigInt suffix.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()

	if lx.cursor.Peek() == '0' {
		if _, b1, ok := lx.cursor.Peek2(); ok {
			switch b1 {
			case 'x', 'X':
				return lx.scanRadixNumber(start, isHex, "hex")
			case 'o', 'O':
				return lx.scanRadixNumber(start, isOctal, "octal")
			case 'b', 'B':
				return lx.scanRadixNumber(start, isBinary, "binary")
			}
			if isDec(b1) {
				return lx.scanLegacyOctal(start)
			}
		}
	}

	// Decimal: integer part, optional fraction, optional exponent.
	sawDot := false
	sawExp := false

	lx.scanDigits()
	if lx.cursor.Peek() == '.' {
		sawDot = true
		lx.cursor.Bump()
		lx.scanDigits()
	}
	if e := lx.cursor.Peek(); e == 'e' || e == 'E' {
		sawExp = true
		lx.cursor.Bump()
		if s := lx.cursor.Peek(); s == '+' || s == '-' {
			lx.cursor.Bump()
		}
		if lx.scanDigits() == 0 {
			lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start),
				"exponent has no digits")
		}
	}

	kind := token.Num
	if lx.cursor.Peek() == 'n' {
		lx.cursor.Bump()
		if sawDot || sawExp {
			lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start),
				"BigInt literal cannot have a decimal point or exponent")
		} else {
			kind = token.BigInt
		}
	}

	lx.checkNumberBoundary(start)
	return lx.tokenAt(kind, lx.cursor.SpanFrom(start))
}

// scanRadixNumber scans 0x/0o/0b literals. The cursor sits on the leading 0.
func (lx *Lexer) scanRadixNumber(start Mark, pred func(byte) bool, base string) token.Token {
	lx.cursor.Bump() // 0
	lx.cursor.Bump() // x/o/b

	if lx.scanDigitsBy(pred) == 0 {
		lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start),
			"missing digits after "+base+" prefix")
	}

	kind := token.Num
	if lx.cursor.Peek() == 'n' {
		lx.cursor.Bump()
		kind = token.BigInt
	}

	lx.checkNumberBoundary(start)
	return lx.tokenAt(kind, lx.cursor.SpanFrom(start))
}

// scanLegacyOctal scans 0-prefixed digit runs. All-octal digits read as
// base 8; a digit 8 or 9 anywhere makes the run plain decimal. Separators
// and the BigInt suffix are not allowed in this form.
func (lx *Lexer) scanLegacyOctal(start Mark) token.Token {
	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() == '_' {
		lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start),
			"numeric separator not allowed in legacy octal literal")
		lx.cursor.Bump()
		for isDec(lx.cursor.Peek()) || lx.cursor.Peek() == '_' {
			lx.cursor.Bump()
		}
	}
	if lx.cursor.Peek() == 'n' {
		lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start),
			"BigInt suffix not allowed on legacy octal literal")
		lx.cursor.Bump()
	}
	lx.checkNumberBoundary(start)
	return lx.tokenAt(token.Num, lx.cursor.SpanFrom(start))
}

// scanDigits consumes decimal digits with underscore separators.
// Returns the digit count.
func (lx *Lexer) scanDigits() int {
	return lx.scanDigitsBy(isDec)
}

// scanDigitsBy consumes digits matching pred, allowing single underscores
// between digits.
func (lx *Lexer) scanDigitsBy(pred func(byte) bool) int {
	n := 0
	lastWasSep := false
	for {
		b := lx.cursor.Peek()
		if pred(b) {
			lx.cursor.Bump()
			n++
			lastWasSep = false
			continue
		}
		if b == '_' {
			if n == 0 || lastWasSep {
				lx.errLex(diag.LexBadNumber,
					source.Span{Start: lx.cursor.Off, End: lx.cursor.Off + 1},
					"numeric separator must sit between digits")
			}
			lx.cursor.Bump()
			lastWasSep = true
			continue
		}
		break
	}
	if lastWasSep {
		lx.errLex(diag.LexBadNumber,
			source.Span{Start: lx.cursor.Off - 1, End: lx.cursor.Off},
			"numeric separator must sit between digits")
	}
	return n
}

// checkNumberBoundary reports an identifier character glued to the end of a
// numeric literal, like 3in or 0x1p.
func (lx *Lexer) checkNumberBoundary(start Mark) {
	b := lx.cursor.Peek()
	r, _ := lx.peekRune()
	if isIdentStartByte(b) || isDec(b) || (b >= utf8RuneSelf && isIdentStartRune(r)) {
		lx.errLex(diag.LexBadNumber, lx.cursor.SpanFrom(start),
			"identifier characters cannot directly follow a number")
	}
}
