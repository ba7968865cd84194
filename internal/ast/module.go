package ast

import "whittle/internal/source"

// ImportDecl is a static import statement.
type ImportDecl struct {
	Node
	Specifiers []ImportSpec       `json:"specifiers"`
	Source     *Literal           `json:"source"`
	Attributes []*ImportAttribute `json:"attributes"`
}

func NewImportDecl(sp source.Span, specifiers []ImportSpec, src *Literal, attributes []*ImportAttribute) *ImportDecl {
	if specifiers == nil {
		specifiers = []ImportSpec{}
	}
	if attributes == nil {
		attributes = []*ImportAttribute{}
	}
	return &ImportDecl{Node: nodeAt("ImportDeclaration", sp), Specifiers: specifiers, Source: src, Attributes: attributes}
}

func (*ImportDecl) stmtNode() {}

// ImportAttribute is one key: "value" entry of a with clause.
type ImportAttribute struct {
	Node
	Key   Expr     `json:"key"`
	Value *Literal `json:"value"`
}

func NewImportAttribute(sp source.Span, key Expr, value *Literal) *ImportAttribute {
	return &ImportAttribute{Node: nodeAt("ImportAttribute", sp), Key: key, Value: value}
}

// ImportSpecifier is {name} or {name as local} or {"str" as local};
// Imported is an Ident or a string Literal.
type ImportSpecifier struct {
	Node
	Imported Expr   `json:"imported"`
	Local    *Ident `json:"local"`
}

func NewImportSpecifier(sp source.Span, imported Expr, local *Ident) *ImportSpecifier {
	return &ImportSpecifier{Node: nodeAt("ImportSpecifier", sp), Imported: imported, Local: local}
}

func (*ImportSpecifier) importSpecNode() {}

// ImportDefaultSpecifier is the bare name in import name from "...".
type ImportDefaultSpecifier struct {
	Node
	Local *Ident `json:"local"`
}

func NewImportDefaultSpecifier(sp source.Span, local *Ident) *ImportDefaultSpecifier {
	return &ImportDefaultSpecifier{Node: nodeAt("ImportDefaultSpecifier", sp), Local: local}
}

func (*ImportDefaultSpecifier) importSpecNode() {}

// ImportNamespaceSpecifier is * as name.
type ImportNamespaceSpecifier struct {
	Node
	Local *Ident `json:"local"`
}

func NewImportNamespaceSpecifier(sp source.Span, local *Ident) *ImportNamespaceSpecifier {
	return &ImportNamespaceSpecifier{Node: nodeAt("ImportNamespaceSpecifier", sp), Local: local}
}

func (*ImportNamespaceSpecifier) importSpecNode() {}

// ExportNamedDecl covers export {a, b}, export {a} from "m", and
// export <declaration>.
type ExportNamedDecl struct {
	Node
	Declaration Stmt               `json:"declaration"`
	Specifiers  []*ExportSpecifier `json:"specifiers"`
	Source      *Literal           `json:"source"`
}

func NewExportNamedDecl(sp source.Span, declaration Stmt, specifiers []*ExportSpecifier, src *Literal) *ExportNamedDecl {
	if specifiers == nil {
		specifiers = []*ExportSpecifier{}
	}
	return &ExportNamedDecl{Node: nodeAt("ExportNamedDeclaration", sp), Declaration: declaration, Specifiers: specifiers, Source: src}
}

func (*ExportNamedDecl) stmtNode() {}

// ExportSpecifier is local or local as exported; either side may be a
// string Literal in re-exports.
type ExportSpecifier struct {
	Node
	Local    Expr `json:"local"`
	Exported Expr `json:"exported"`
}

func NewExportSpecifier(sp source.Span, local, exported Expr) *ExportSpecifier {
	return &ExportSpecifier{Node: nodeAt("ExportSpecifier", sp), Local: local, Exported: exported}
}

// ExportDefaultDecl is export default <declaration or expression>.
type ExportDefaultDecl struct {
	Node
	Declaration Expr `json:"declaration"`
}

func NewExportDefaultDecl(sp source.Span, declaration Expr) *ExportDefaultDecl {
	return &ExportDefaultDecl{Node: nodeAt("ExportDefaultDeclaration", sp), Declaration: declaration}
}

func (*ExportDefaultDecl) stmtNode() {}

// ExportAllDecl is export * from "m" or export * as name from "m".
type ExportAllDecl struct {
	Node
	Exported Expr     `json:"exported"`
	Source   *Literal `json:"source"`
}

func NewExportAllDecl(sp source.Span, exported Expr, src *Literal) *ExportAllDecl {
	return &ExportAllDecl{Node: nodeAt("ExportAllDeclaration", sp), Exported: exported, Source: src}
}

func (*ExportAllDecl) stmtNode() {}
