package lexer

import (
	"whittle/internal/diag"
	"whittle/internal/source"
	"whittle/internal/token"
)

// skipTrivia advances past whitespace, line terminators, and comments,
// recording comments and whether a line terminator was crossed.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()

		// ASCII fast path.
		switch b {
		case ' ', '\t', 0x0B, 0x0C:
			lx.cursor.Bump()
			continue
		case '\n':
			lx.cursor.Bump()
			lx.sawNewline = true
			continue
		case '\r':
			lx.cursor.Bump()
			lx.cursor.Eat('\n')
			lx.sawNewline = true
			continue
		case '/':
			if lx.scanComment() {
				continue
			}
			return
		}

		if b >= utf8RuneSelf {
			r, _ := lx.peekRune()
			if isLineTerminator(r) {
				lx.bumpRune()
				lx.sawNewline = true
				continue
			}
			if isWhitespaceRune(r) {
				lx.bumpRune()
				continue
			}
		}
		return
	}
}

// scanComment consumes a // or /* comment at the cursor and records it.
// Returns false when the cursor is not actually at a comment.
func (lx *Lexer) scanComment() bool {
	b0, b1, ok := lx.cursor.Peek2()
	if !ok || b0 != '/' || (b1 != '/' && b1 != '*') {
		return false
	}

	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	contentStart := lx.cursor.Mark()

	if b1 == '/' {
		for !lx.cursor.EOF() {
			r, _ := lx.peekRune()
			if isLineTerminator(r) {
				break
			}
			lx.bumpRune()
		}
		lx.comments = append(lx.comments, token.Comment{
			Kind:        token.CommentLine,
			Span:        lx.cursor.SpanFrom(start),
			ContentSpan: lx.cursor.SpanFrom(contentStart),
		})
		return true
	}

	// Block comment. No nesting; a line terminator inside still counts
	// for automatic semicolon insertion.
	for {
		if lx.cursor.EOF() {
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedComment, sp, "unterminated block comment")
			lx.comments = append(lx.comments, token.Comment{
				Kind:        token.CommentBlock,
				Span:        sp,
				ContentSpan: lx.cursor.SpanFrom(contentStart),
			})
			return true
		}
		if c0, c1, ok := lx.cursor.Peek2(); ok && c0 == '*' && c1 == '/' {
			contentEnd := lx.cursor.Off
			lx.cursor.Bump()
			lx.cursor.Bump()
			lx.comments = append(lx.comments, token.Comment{
				Kind:        token.CommentBlock,
				Span:        lx.cursor.SpanFrom(start),
				ContentSpan: source.Span{Start: uint32(contentStart), End: contentEnd},
			})
			return true
		}
		r, _ := lx.peekRune()
		if isLineTerminator(r) {
			lx.sawNewline = true
		}
		lx.bumpRune()
	}
}
