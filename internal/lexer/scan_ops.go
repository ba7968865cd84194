package lexer

import (
	"whittle/internal/diag"
	"whittle/internal/token"
)

// scanOperatorOrPunct scans punctuators greedily, longest match first.
func (lx *Lexer) scanOperatorOrPunct() token.Token {
	start := lx.cursor.Mark()
	var kind token.Kind

	switch lx.cursor.Peek() {
	case '(':
		lx.cursor.Bump()
		kind = token.LParen
	case ')':
		lx.cursor.Bump()
		kind = token.RParen
	case '[':
		lx.cursor.Bump()
		kind = token.LBracket
	case ']':
		lx.cursor.Bump()
		kind = token.RBracket
	case '{':
		lx.cursor.Bump()
		kind = token.LBrace
	case '}':
		lx.cursor.Bump()
		kind = token.RBrace
	case ';':
		lx.cursor.Bump()
		kind = token.Semicolon
	case ',':
		lx.cursor.Bump()
		kind = token.Comma
	case ':':
		lx.cursor.Bump()
		kind = token.Colon
	case '~':
		lx.cursor.Bump()
		kind = token.Tilde

	case '.':
		if lx.try3('.', '.', '.') {
			kind = token.DotDotDot
		} else {
			lx.cursor.Bump()
			kind = token.Dot
		}

	case '?':
		switch {
		case lx.try3('?', '?', '='):
			kind = token.QuestionQuestionAssign
		case lx.try2('?', '?'):
			kind = token.QuestionQuestion
		// ?. only when not followed by a digit: a?.5:b is a conditional.
		case lx.cursor.PeekAt(1) == '.' && !isDec(lx.cursor.PeekAt(2)):
			lx.cursor.Bump()
			lx.cursor.Bump()
			kind = token.QuestionDot
		default:
			lx.cursor.Bump()
			kind = token.Question
		}

	case '=':
		switch {
		case lx.try3('=', '=', '='):
			kind = token.EqEqEq
		case lx.try2('=', '='):
			kind = token.EqEq
		case lx.try2('=', '>'):
			kind = token.Arrow
		default:
			lx.cursor.Bump()
			kind = token.Assign
		}

	case '!':
		switch {
		case lx.try3('!', '=', '='):
			kind = token.BangEqEq
		case lx.try2('!', '='):
			kind = token.BangEq
		default:
			lx.cursor.Bump()
			kind = token.Bang
		}

	case '<':
		switch {
		case lx.try3('<', '<', '='):
			kind = token.ShlAssign
		case lx.try2('<', '<'):
			kind = token.Shl
		case lx.try2('<', '='):
			kind = token.LtEq
		default:
			lx.cursor.Bump()
			kind = token.Lt
		}

	case '>':
		switch {
		case lx.try3('>', '>', '>'):
			if lx.cursor.Eat('=') {
				kind = token.UShrAssign
			} else {
				kind = token.UShr
			}
		case lx.try3('>', '>', '='):
			kind = token.ShrAssign
		case lx.try2('>', '>'):
			kind = token.Shr
		case lx.try2('>', '='):
			kind = token.GtEq
		default:
			lx.cursor.Bump()
			kind = token.Gt
		}

	case '+':
		switch {
		case lx.try2('+', '+'):
			kind = token.PlusPlus
		case lx.try2('+', '='):
			kind = token.PlusAssign
		default:
			lx.cursor.Bump()
			kind = token.Plus
		}

	case '-':
		switch {
		case lx.try2('-', '-'):
			kind = token.MinusMinus
		case lx.try2('-', '='):
			kind = token.MinusAssign
		default:
			lx.cursor.Bump()
			kind = token.Minus
		}

	case '*':
		switch {
		case lx.try3('*', '*', '='):
			kind = token.StarStarAssign
		case lx.try2('*', '*'):
			kind = token.StarStar
		case lx.try2('*', '='):
			kind = token.StarAssign
		default:
			lx.cursor.Bump()
			kind = token.Star
		}

	case '/':
		// Comments were consumed as trivia; the parser rescans '/' and '/='
		// into regular expressions where the grammar wants one.
		if lx.try2('/', '=') {
			kind = token.SlashAssign
		} else {
			lx.cursor.Bump()
			kind = token.Slash
		}

	case '%':
		if lx.try2('%', '=') {
			kind = token.PercentAssign
		} else {
			lx.cursor.Bump()
			kind = token.Percent
		}

	case '&':
		switch {
		case lx.try3('&', '&', '='):
			kind = token.AmpAmpAssign
		case lx.try2('&', '&'):
			kind = token.AmpAmp
		case lx.try2('&', '='):
			kind = token.AmpAssign
		default:
			lx.cursor.Bump()
			kind = token.Amp
		}

	case '|':
		switch {
		case lx.try3('|', '|', '='):
			kind = token.PipePipeAssign
		case lx.try2('|', '|'):
			kind = token.PipePipe
		case lx.try2('|', '='):
			kind = token.PipeAssign
		default:
			lx.cursor.Bump()
			kind = token.Pipe
		}

	case '^':
		if lx.try2('^', '=') {
			kind = token.CaretAssign
		} else {
			lx.cursor.Bump()
			kind = token.Caret
		}

	default:
		lx.bumpRune()
		sp := lx.cursor.SpanFrom(start)
		lx.errLex(diag.LexUnexpectedChar, sp, "unexpected character "+lx.file.Slice(sp))
		return lx.tokenAt(token.Invalid, sp)
	}

	return lx.tokenAt(kind, lx.cursor.SpanFrom(start))
}
