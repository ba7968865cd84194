package ast

import "whittle/internal/source"

// Ident is an identifier reference, binding, or label.
type Ident struct {
	Node
	Name string `json:"name"`
}

func NewIdent(sp source.Span, name string) *Ident {
	return &Ident{Node: nodeAt("Identifier", sp), Name: name}
}

func (*Ident) exprNode()    {}
func (*Ident) patternNode() {}

// PrivateIdent is a #name inside a class, or the left side of #name in obj.
type PrivateIdent struct {
	Node
	Name string `json:"name"`
}

func NewPrivateIdent(sp source.Span, name string) *PrivateIdent {
	return &PrivateIdent{Node: nodeAt("PrivateIdentifier", sp), Name: name}
}

func (*PrivateIdent) exprNode() {}

// Literal is any literal value: string, number, boolean, null, bigint, or
// regular expression. Value holds the runtime value where one is
// representable; bigints and regular expressions keep Value null and carry
// their text in the extra fields.
type Literal struct {
	Node
	Value  any           `json:"value"`
	Raw    string        `json:"raw,omitempty"`
	BigInt string        `json:"bigint,omitempty"`
	Regex  *RegexLiteral `json:"regex,omitempty"`
}

// RegexLiteral carries the pattern and flags of a regular expression.
type RegexLiteral struct {
	Pattern string `json:"pattern"`
	Flags   string `json:"flags"`
}

func NewLiteral(sp source.Span, value any, raw string) *Literal {
	return &Literal{Node: nodeAt("Literal", sp), Value: value, Raw: raw}
}

func NewBigIntLiteral(sp source.Span, digits, raw string) *Literal {
	return &Literal{Node: nodeAt("Literal", sp), BigInt: digits, Raw: raw}
}

func NewRegexLiteral(sp source.Span, pattern, flags, raw string) *Literal {
	return &Literal{
		Node:  nodeAt("Literal", sp),
		Raw:   raw,
		Regex: &RegexLiteral{Pattern: pattern, Flags: flags},
	}
}

func (*Literal) exprNode() {}

// ThisExpr is the this keyword.
type ThisExpr struct {
	Node
}

func NewThisExpr(sp source.Span) *ThisExpr {
	return &ThisExpr{Node: nodeAt("ThisExpression", sp)}
}

func (*ThisExpr) exprNode() {}

// Super is the super keyword in calls and member accesses.
type Super struct {
	Node
}

func NewSuper(sp source.Span) *Super {
	return &Super{Node: nodeAt("Super", sp)}
}

func (*Super) exprNode() {}

// MetaProperty is new.target or import.meta.
type MetaProperty struct {
	Node
	Meta     *Ident `json:"meta"`
	Property *Ident `json:"property"`
}

func NewMetaProperty(sp source.Span, meta, property *Ident) *MetaProperty {
	return &MetaProperty{Node: nodeAt("MetaProperty", sp), Meta: meta, Property: property}
}

func (*MetaProperty) exprNode() {}

// ArrayExpr is an array literal. Holes are nil elements.
type ArrayExpr struct {
	Node
	Elements []Expr `json:"elements"`
}

func NewArrayExpr(sp source.Span, elements []Expr) *ArrayExpr {
	if elements == nil {
		elements = []Expr{}
	}
	return &ArrayExpr{Node: nodeAt("ArrayExpression", sp), Elements: elements}
}

func (*ArrayExpr) exprNode() {}

// ObjectExpr is an object literal; Properties holds *Property and
// *SpreadElement values.
type ObjectExpr struct {
	Node
	Properties []Expr `json:"properties"`
}

func NewObjectExpr(sp source.Span, properties []Expr) *ObjectExpr {
	if properties == nil {
		properties = []Expr{}
	}
	return &ObjectExpr{Node: nodeAt("ObjectExpression", sp), Properties: properties}
}

func (*ObjectExpr) exprNode() {}

// PropertyKind distinguishes plain properties from accessors.
type PropertyKind string

const (
	PropertyInit PropertyKind = "init"
	PropertyGet  PropertyKind = "get"
	PropertySet  PropertyKind = "set"
)

// Property is one member of an object literal or object pattern. In pattern
// position Value holds a Pattern.
type Property struct {
	Node
	Key       Expr         `json:"key"`
	Value     Expr         `json:"value"`
	Kind      PropertyKind `json:"kind"`
	Method    bool         `json:"method"`
	Shorthand bool         `json:"shorthand"`
	Computed  bool         `json:"computed"`
}

func NewProperty(sp source.Span, key, value Expr, kind PropertyKind) *Property {
	return &Property{Node: nodeAt("Property", sp), Key: key, Value: value, Kind: kind}
}

func (*Property) exprNode() {}

// SpreadElement is ...expr in array literals, calls, and object literals.
type SpreadElement struct {
	Node
	Argument Expr `json:"argument"`
}

func NewSpreadElement(sp source.Span, argument Expr) *SpreadElement {
	return &SpreadElement{Node: nodeAt("SpreadElement", sp), Argument: argument}
}

func (*SpreadElement) exprNode() {}

// TemplateLiteral is a template string; Quasis always has one more element
// than Expressions.
type TemplateLiteral struct {
	Node
	Expressions []Expr             `json:"expressions"`
	Quasis      []*TemplateElement `json:"quasis"`
}

func NewTemplateLiteral(sp source.Span, quasis []*TemplateElement, exprs []Expr) *TemplateLiteral {
	if exprs == nil {
		exprs = []Expr{}
	}
	return &TemplateLiteral{Node: nodeAt("TemplateLiteral", sp), Expressions: exprs, Quasis: quasis}
}

func (*TemplateLiteral) exprNode() {}

// TemplateElement is one text chunk of a template literal.
type TemplateElement struct {
	Node
	Value TemplateValue `json:"value"`
	Tail  bool          `json:"tail"`
}

// TemplateValue holds the raw chunk text and, when the escapes are valid,
// its cooked value.
type TemplateValue struct {
	Raw    string `json:"raw"`
	Cooked any    `json:"cooked"`
}

func NewTemplateElement(sp source.Span, value TemplateValue, tail bool) *TemplateElement {
	return &TemplateElement{Node: nodeAt("TemplateElement", sp), Value: value, Tail: tail}
}

// TaggedTemplateExpr is tag`...`.
type TaggedTemplateExpr struct {
	Node
	Tag   Expr             `json:"tag"`
	Quasi *TemplateLiteral `json:"quasi"`
}

func NewTaggedTemplateExpr(sp source.Span, tag Expr, quasi *TemplateLiteral) *TaggedTemplateExpr {
	return &TaggedTemplateExpr{Node: nodeAt("TaggedTemplateExpression", sp), Tag: tag, Quasi: quasi}
}

func (*TaggedTemplateExpr) exprNode() {}

// MemberExpr is obj.prop, obj[prop], or obj.#priv. Optional marks ?. access.
type MemberExpr struct {
	Node
	Object   Expr `json:"object"`
	Property Expr `json:"property"`
	Computed bool `json:"computed"`
	Optional bool `json:"optional"`
}

func NewMemberExpr(sp source.Span, object, property Expr, computed, optional bool) *MemberExpr {
	return &MemberExpr{
		Node:     nodeAt("MemberExpression", sp),
		Object:   object,
		Property: property,
		Computed: computed,
		Optional: optional,
	}
}

func (*MemberExpr) exprNode() {}

// patternNode lets member expressions appear in destructuring assignment
// targets like [a.b] = c; binding patterns never contain them.
func (*MemberExpr) patternNode() {}

// CallExpr is a function call; Optional marks ?.().
type CallExpr struct {
	Node
	Callee    Expr   `json:"callee"`
	Arguments []Expr `json:"arguments"`
	Optional  bool   `json:"optional"`
}

func NewCallExpr(sp source.Span, callee Expr, args []Expr, optional bool) *CallExpr {
	if args == nil {
		args = []Expr{}
	}
	return &CallExpr{Node: nodeAt("CallExpression", sp), Callee: callee, Arguments: args, Optional: optional}
}

func (*CallExpr) exprNode() {}

// NewExpr is new Callee(...).
type NewExpr struct {
	Node
	Callee    Expr   `json:"callee"`
	Arguments []Expr `json:"arguments"`
}

func NewNewExpr(sp source.Span, callee Expr, args []Expr) *NewExpr {
	if args == nil {
		args = []Expr{}
	}
	return &NewExpr{Node: nodeAt("NewExpression", sp), Callee: callee, Arguments: args}
}

func (*NewExpr) exprNode() {}

// ChainExpr wraps the outermost link of an optional chain.
type ChainExpr struct {
	Node
	Expression Expr `json:"expression"`
}

func NewChainExpr(sp source.Span, expression Expr) *ChainExpr {
	return &ChainExpr{Node: nodeAt("ChainExpression", sp), Expression: expression}
}

func (*ChainExpr) exprNode() {}

// ImportExpr is a dynamic import(...) call.
type ImportExpr struct {
	Node
	Source  Expr `json:"source"`
	Options Expr `json:"options"`
}

func NewImportExpr(sp source.Span, src, options Expr) *ImportExpr {
	return &ImportExpr{Node: nodeAt("ImportExpression", sp), Source: src, Options: options}
}

func (*ImportExpr) exprNode() {}

// UnaryExpr is a prefix operator application: -x, !x, typeof x, void x,
// delete x, ~x, +x.
type UnaryExpr struct {
	Node
	Operator string `json:"operator"`
	Prefix   bool   `json:"prefix"`
	Argument Expr   `json:"argument"`
}

func NewUnaryExpr(sp source.Span, op string, argument Expr) *UnaryExpr {
	return &UnaryExpr{Node: nodeAt("UnaryExpression", sp), Operator: op, Prefix: true, Argument: argument}
}

func (*UnaryExpr) exprNode() {}

// UpdateExpr is ++x, --x, x++, or x--.
type UpdateExpr struct {
	Node
	Operator string `json:"operator"`
	Prefix   bool   `json:"prefix"`
	Argument Expr   `json:"argument"`
}

func NewUpdateExpr(sp source.Span, op string, prefix bool, argument Expr) *UpdateExpr {
	return &UpdateExpr{Node: nodeAt("UpdateExpression", sp), Operator: op, Prefix: prefix, Argument: argument}
}

func (*UpdateExpr) exprNode() {}

// BinaryExpr covers arithmetic, comparison, bit, in, and instanceof
// operators. The left side is a PrivateIdent only for #name in obj.
type BinaryExpr struct {
	Node
	Operator string `json:"operator"`
	Left     Expr   `json:"left"`
	Right    Expr   `json:"right"`
}

func NewBinaryExpr(sp source.Span, op string, left, right Expr) *BinaryExpr {
	return &BinaryExpr{Node: nodeAt("BinaryExpression", sp), Operator: op, Left: left, Right: right}
}

func (*BinaryExpr) exprNode() {}

// LogicalExpr is &&, ||, or ??.
type LogicalExpr struct {
	Node
	Operator string `json:"operator"`
	Left     Expr   `json:"left"`
	Right    Expr   `json:"right"`
}

func NewLogicalExpr(sp source.Span, op string, left, right Expr) *LogicalExpr {
	return &LogicalExpr{Node: nodeAt("LogicalExpression", sp), Operator: op, Left: left, Right: right}
}

func (*LogicalExpr) exprNode() {}

// AssignExpr is an assignment; Left is an Ident, MemberExpr, or a
// destructuring pattern converted from expression form.
type AssignExpr struct {
	Node
	Operator string `json:"operator"`
	Left     Expr   `json:"left"`
	Right    Expr   `json:"right"`
}

func NewAssignExpr(sp source.Span, op string, left, right Expr) *AssignExpr {
	return &AssignExpr{Node: nodeAt("AssignmentExpression", sp), Operator: op, Left: left, Right: right}
}

func (*AssignExpr) exprNode() {}

// CondExpr is test ? consequent : alternate.
type CondExpr struct {
	Node
	Test       Expr `json:"test"`
	Consequent Expr `json:"consequent"`
	Alternate  Expr `json:"alternate"`
}

func NewCondExpr(sp source.Span, test, consequent, alternate Expr) *CondExpr {
	return &CondExpr{Node: nodeAt("ConditionalExpression", sp), Test: test, Consequent: consequent, Alternate: alternate}
}

func (*CondExpr) exprNode() {}

// SequenceExpr is a comma expression.
type SequenceExpr struct {
	Node
	Expressions []Expr `json:"expressions"`
}

func NewSequenceExpr(sp source.Span, exprs []Expr) *SequenceExpr {
	return &SequenceExpr{Node: nodeAt("SequenceExpression", sp), Expressions: exprs}
}

func (*SequenceExpr) exprNode() {}

// YieldExpr is yield or yield* inside a generator.
type YieldExpr struct {
	Node
	Argument Expr `json:"argument"`
	Delegate bool `json:"delegate"`
}

func NewYieldExpr(sp source.Span, argument Expr, delegate bool) *YieldExpr {
	return &YieldExpr{Node: nodeAt("YieldExpression", sp), Argument: argument, Delegate: delegate}
}

func (*YieldExpr) exprNode() {}

// AwaitExpr is await inside an async function or module top level.
type AwaitExpr struct {
	Node
	Argument Expr `json:"argument"`
}

func NewAwaitExpr(sp source.Span, argument Expr) *AwaitExpr {
	return &AwaitExpr{Node: nodeAt("AwaitExpression", sp), Argument: argument}
}

func (*AwaitExpr) exprNode() {}
