package token

import "whittle/internal/source"

// CommentKind distinguishes // line comments from /* block */ comments.
type CommentKind uint8

const (
	// CommentLine is a // comment running to the end of the line.
	CommentLine CommentKind = iota
	// CommentBlock is a /* ... */ comment.
	CommentBlock
)

func (k CommentKind) String() string {
	if k == CommentBlock {
		return "Block"
	}
	return "Line"
}

// Comment is a source comment. Span covers the whole comment including the
// delimiters; ContentSpan covers only the text between them, so slicing
// ContentSpan out of the source yields the comment body.
type Comment struct {
	Kind        CommentKind
	Span        source.Span
	ContentSpan source.Span
}
