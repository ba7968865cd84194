package source

import (
	"fmt"

	"fortio.org/safecast"
)

// File holds one JavaScript source text. Each engine invocation owns its own
// File; there is no identity shared between calls.
type File struct {
	Path    string
	Content []byte
	lineIdx []uint32 // byte offsets of '\n', for human-readable positions
}

// LineCol is a 1-based human-readable position.
type LineCol struct {
	Line uint32
	Col  uint32
}

// NewFile wraps raw source bytes. The content is used as-is: offsets produced
// by the lexer and parser index into exactly these bytes.
func NewFile(path string, content []byte) *File {
	return &File{
		Path:    path,
		Content: content,
		lineIdx: buildLineIndex(content),
	}
}

// Len returns the content length in bytes.
func (f *File) Len() uint32 {
	n, err := safecast.Conv[uint32](len(f.Content))
	if err != nil {
		panic(fmt.Errorf("source length overflow: %w", err))
	}
	return n
}

// Slice returns the exact substring covered by sp. An out-of-range span is a
// broken invariant in whoever produced it, not a recoverable condition, so it
// panics instead of returning an error.
func (f *File) Slice(sp Span) string {
	if sp.Start > sp.End || sp.End > f.Len() {
		panic(fmt.Sprintf("span %s out of range for %q (len %d)", sp, f.Path, len(f.Content)))
	}
	return string(f.Content[sp.Start:sp.End])
}

// Resolve converts a byte offset into a 1-based line/column pair.
func (f *File) Resolve(off uint32) LineCol {
	return toLineCol(f.lineIdx, off)
}

// ResolveSpan resolves both ends of a span.
func (f *File) ResolveSpan(sp Span) (start, end LineCol) {
	return f.Resolve(sp.Start), f.Resolve(sp.End)
}

// Line returns the text of the 1-based line number, without the trailing
// newline. Missing lines come back empty.
func (f *File) Line(lineNum uint32) string {
	if lineNum == 0 {
		return ""
	}
	lenIdx, err := safecast.Conv[uint32](len(f.lineIdx))
	if err != nil {
		panic(fmt.Errorf("line index overflow: %w", err))
	}
	lenContent := f.Len()

	var start, end uint32
	switch {
	case lineNum == 1:
		start = 0
	case (lineNum - 2) < lenIdx:
		start = f.lineIdx[lineNum-2] + 1
	default:
		return ""
	}

	if (lineNum - 1) < lenIdx {
		end = f.lineIdx[lineNum-1]
	} else {
		end = lenContent
	}

	if start >= lenContent {
		return ""
	}
	if end > lenContent {
		end = lenContent
	}
	return string(f.Content[start:end])
}
