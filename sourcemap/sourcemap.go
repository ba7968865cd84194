// Package sourcemap builds Source Map revision 3 documents for generated
// JavaScript. A Builder collects generated-to-original position pairs in
// generated order; Map is the serializable document with the segment list
// encoded into the base64-VLQ Mappings string.
package sourcemap

import "strings"

// Map is a source map document, revision 3. It marshals with encoding/json
// into the form consumers of the format expect.
type Map struct {
	Version        int      `json:"version"`
	File           string   `json:"file,omitempty"`
	SourceRoot     string   `json:"sourceRoot,omitempty"`
	Sources        []string `json:"sources"`
	SourcesContent []string `json:"sourcesContent,omitempty"`
	Names          []string `json:"names"`
	Mappings       string   `json:"mappings"`
}

// Builder accumulates mappings for one generated file. Mappings must be
// added in generated order (line, then column); the VLQ encoding is
// delta-based, so out-of-order additions would corrupt the stream.
type Builder struct {
	file      string
	sources   []string
	contents  []string
	names     []string
	nameIndex map[string]int

	mappings strings.Builder
	// previous segment fields, for delta encoding
	genLine   int
	genCol    int
	srcIndex  int
	srcLine   int
	srcCol    int
	nameIdx   int
	onNewLine bool
}

// NewBuilder starts a map for one generated file with one original source.
func NewBuilder(file, sourcePath, sourceContent string) *Builder {
	return &Builder{
		file:      file,
		sources:   []string{sourcePath},
		contents:  []string{sourceContent},
		names:     []string{},
		nameIndex: make(map[string]int),
		onNewLine: true,
	}
}

// AddMapping records that generated position (genLine, genCol) comes from
// original position (srcLine, srcCol). Lines and columns are 0-based. An
// empty name adds a four-field segment; otherwise the name is interned and
// a five-field segment is written.
func (b *Builder) AddMapping(genLine, genCol, srcLine, srcCol int, name string) {
	for b.genLine < genLine {
		b.mappings.WriteByte(';')
		b.genLine++
		b.genCol = 0
		b.onNewLine = true
	}
	if !b.onNewLine {
		b.mappings.WriteByte(',')
	}
	b.onNewLine = false

	writeVLQ(&b.mappings, genCol-b.genCol)
	b.genCol = genCol
	writeVLQ(&b.mappings, 0-b.srcIndex)
	b.srcIndex = 0
	writeVLQ(&b.mappings, srcLine-b.srcLine)
	b.srcLine = srcLine
	writeVLQ(&b.mappings, srcCol-b.srcCol)
	b.srcCol = srcCol

	if name != "" {
		idx, ok := b.nameIndex[name]
		if !ok {
			idx = len(b.names)
			b.names = append(b.names, name)
			b.nameIndex[name] = idx
		}
		writeVLQ(&b.mappings, idx-b.nameIdx)
		b.nameIdx = idx
	}
}

// Build finalizes the document. The builder must not be reused afterwards.
func (b *Builder) Build() *Map {
	return &Map{
		Version:        3,
		File:           b.file,
		Sources:        b.sources,
		SourcesContent: b.contents,
		Names:          b.names,
		Mappings:       b.mappings.String(),
	}
}

const base64Chars = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// writeVLQ encodes one signed value as base64 VLQ: the sign moves into the
// lowest bit, then the magnitude is emitted in 5-bit groups, low group
// first, with bit 6 as the continuation flag.
func writeVLQ(sb *strings.Builder, value int) {
	v := value << 1
	if value < 0 {
		v = (-value)<<1 | 1
	}
	for {
		digit := v & 0x1f
		v >>= 5
		if v != 0 {
			digit |= 0x20
		}
		sb.WriteByte(base64Chars[digit])
		if v == 0 {
			return
		}
	}
}
