package lexer

import (
	"whittle/internal/source"
	"whittle/internal/token"
)

// Lexer turns a source file into a stream of tokens. Comments are collected
// on the side rather than attached to tokens; call Comments after the stream
// is exhausted to retrieve them in source order.
//
// Regular expression literals and the middle/tail parts of template literals
// are ambiguous at the lexical level, so the lexer never produces them on its
// own. The parser requests them with RescanRegExp and RescanTemplatePart when
// the grammar calls for one.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	opts     Options
	look     *token.Token // one-token lookahead buffer
	comments []token.Comment

	// sawNewline is set while skipping trivia when a line terminator was
	// crossed; the next token gets it as NewlineBefore.
	sawNewline bool

	hashbang    source.Span
	hasHashbang bool
}

// New creates a lexer over the file. A leading #! line is consumed here so
// the first Next call starts at real content.
func New(file *source.File, opts Options) *Lexer {
	lx := &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
	lx.scanHashbang()
	return lx
}

// Next returns the next significant token. After the end of input it keeps
// returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()

	if lx.cursor.EOF() {
		return token.Token{
			Kind:          token.EOF,
			Span:          lx.emptySpan(),
			NewlineBefore: lx.takeNewline(),
		}
	}

	ch := lx.cursor.Peek()
	var tok token.Token

	switch {
	case isIdentStartByte(ch) || ch >= utf8RuneSelf || ch == '\\':
		tok = lx.scanIdentOrKeyword()

	case ch == '#':
		tok = lx.scanPrivateIdent()

	case isDec(ch):
		tok = lx.scanNumber()

	case ch == '.' && lx.isNumberAfterDot():
		tok = lx.scanNumber()

	case ch == '"' || ch == '\'':
		tok = lx.scanString()

	case ch == '`':
		tok = lx.scanTemplate()

	default:
		tok = lx.scanOperatorOrPunct()
	}

	tok.NewlineBefore = lx.takeNewline()
	return tok
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// Comments returns every comment seen so far, in source order.
func (lx *Lexer) Comments() []token.Comment {
	return lx.comments
}

// Hashbang returns the span of the leading #! line, if the file has one.
func (lx *Lexer) Hashbang() (source.Span, bool) {
	return lx.hashbang, lx.hasHashbang
}

// takeNewline returns and clears the pending newline flag.
func (lx *Lexer) takeNewline() bool {
	nl := lx.sawNewline
	lx.sawNewline = false
	return nl
}

func (lx *Lexer) emptySpan() source.Span {
	return source.Span{Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) tokenAt(kind token.Kind, sp source.Span) token.Token {
	return token.Token{Kind: kind, Span: sp, Text: lx.file.Slice(sp)}
}

// scanHashbang consumes a #! line at offset zero.
func (lx *Lexer) scanHashbang() {
	if b0, b1, ok := lx.cursor.Peek2(); !ok || b0 != '#' || b1 != '!' {
		return
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		r, _ := lx.peekRune()
		if isLineTerminator(r) {
			break
		}
		lx.bumpRune()
	}
	lx.hashbang = lx.cursor.SpanFrom(start)
	lx.hasHashbang = true
}
