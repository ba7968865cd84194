package ast

import "whittle/internal/source"

// SourceType says whether a file parses with module or script semantics.
type SourceType string

const (
	SourceTypeScript SourceType = "script"
	SourceTypeModule SourceType = "module"
)

// Program is the root node of a parsed file.
type Program struct {
	Node
	SourceType SourceType `json:"sourceType"`
	Hashbang   *Hashbang  `json:"hashbang"`
	Body       []Stmt     `json:"body"`
}

// Hashbang is the #! line at the top of a file, kept apart from comments.
type Hashbang struct {
	Node
	Value string `json:"value"`
}

// NewProgram builds the root node. Body is normalized to an empty non-nil
// slice so the serialized form always has a body array.
func NewProgram(sp source.Span, sourceType SourceType, body []Stmt) *Program {
	if body == nil {
		body = []Stmt{}
	}
	return &Program{
		Node:       nodeAt("Program", sp),
		SourceType: sourceType,
		Body:       body,
	}
}

// NewHashbang builds the #! node; value is the text after the marker.
func NewHashbang(sp source.Span, value string) *Hashbang {
	return &Hashbang{Node: nodeAt("Hashbang", sp), Value: value}
}
