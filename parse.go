package whittle

import (
	"encoding/json"
	"path/filepath"

	"whittle/internal/ast"
	"whittle/internal/diag"
	"whittle/internal/parser"
	"whittle/internal/source"
	"whittle/internal/token"
)

// maxParseDiagnostics caps the error report of one call; a pathological
// input cannot balloon the boundary payload.
const maxParseDiagnostics = 100

// ParseOptions configures one Parse call. The zero value parses as a
// module.
type ParseOptions struct {
	// SourceType is "script", "module", or empty. Empty means infer from
	// SourceFilename; any other value is a ConfigError.
	SourceType string `json:"sourceType"`
	// SourceFilename names the input for type inference and diagnostics.
	// A .cjs extension infers script; everything else infers module.
	SourceFilename string `json:"sourceFilename"`
}

// ParseResult is the boundary-safe outcome of a parse. Program is the
// whole tree serialized once; Comments and Errors are never nil. A result
// with a non-empty Errors collection is still a successful call: engine
// diagnostics are data, not call failures.
type ParseResult struct {
	Program  json.RawMessage `json:"program"`
	Comments []Comment       `json:"comments"`
	Errors   []Diagnostic    `json:"errors"`
}

// CommentType distinguishes the two comment forms.
type CommentType string

const (
	CommentLine  CommentType = "Line"
	CommentBlock CommentType = "Block"
)

// Comment is one source comment. Value is the text between the delimiters;
// Start and End bound the whole comment including them, so slicing
// [Start:End] out of the source shows the comment as written.
type Comment struct {
	Type  CommentType `json:"type"`
	Value string      `json:"value"`
	Start uint32      `json:"start"`
	End   uint32      `json:"end"`
}

// Severity is the importance of a Diagnostic. The engine currently only
// produces Error; Warning is part of the surface for forward
// compatibility.
type Severity string

const (
	SeverityError   Severity = "Error"
	SeverityWarning Severity = "Warning"
)

// Diagnostic is one positioned report about the input source. Start and
// End are byte offsets into the original text.
type Diagnostic struct {
	Start    uint     `json:"start"`
	End      uint     `json:"end"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
}

// Parse builds the serialized syntax tree for sourceText along with its
// comments and syntax diagnostics. Only an invalid option or a failed
// serialization rejects the call; malformed input source never does.
func Parse(sourceText string, opts *ParseOptions) (*ParseResult, error) {
	if opts == nil {
		opts = &ParseOptions{}
	}
	sourceType, err := resolveSourceType(opts.SourceType, opts.SourceFilename)
	if err != nil {
		return nil, err
	}

	file := source.NewFile(opts.SourceFilename, []byte(sourceText))
	bag := diag.NewBag(maxParseDiagnostics)
	res := parser.Parse(file, parser.Options{
		SourceType: sourceType,
		MaxErrors:  maxParseDiagnostics,
		Reporter:   &diag.BagReporter{Bag: bag},
	})

	program, err := json.Marshal(res.Program)
	if err != nil {
		return nil, &MarshalError{Err: err}
	}
	return &ParseResult{
		Program:  program,
		Comments: packageComments(file, res.Comments),
		Errors:   fanOutDiagnostics(bag.Items()),
	}, nil
}

func resolveSourceType(explicit, filename string) (ast.SourceType, error) {
	switch explicit {
	case "script":
		return ast.SourceTypeScript, nil
	case "module":
		return ast.SourceTypeModule, nil
	case "":
		if filepath.Ext(filename) == ".cjs" {
			return ast.SourceTypeScript, nil
		}
		return ast.SourceTypeModule, nil
	default:
		return "", &ConfigError{
			Field:  "sourceType",
			Value:  explicit,
			Reason: `expected "script" or "module"`,
		}
	}
}

// packageComments converts engine comment records into the boundary form:
// the value sliced from the content span, the bounds taken from the full
// span. Order is parse order, which is monotonic in source position.
func packageComments(file *source.File, comments []token.Comment) []Comment {
	if len(comments) == 0 {
		return []Comment{}
	}
	out := make([]Comment, 0, len(comments))
	for _, c := range comments {
		kind := CommentLine
		if c.Kind == token.CommentBlock {
			kind = CommentBlock
		}
		out = append(out, Comment{
			Type:  kind,
			Value: file.Slice(c.ContentSpan),
			Start: c.Span.Start,
			End:   c.Span.End,
		})
	}
	return out
}

// fanOutDiagnostics flattens engine diagnostics into the boundary form:
// one entry per label, every entry of one diagnostic sharing its rendered
// message. A diagnostic with no labels has no position to report and
// contributes nothing.
func fanOutDiagnostics(items []diag.Diagnostic) []Diagnostic {
	if len(items) == 0 {
		return []Diagnostic{}
	}
	out := make([]Diagnostic, 0, len(items))
	for _, d := range items {
		severity := SeverityError
		if d.Severity == diag.SevWarning {
			severity = SeverityWarning
		}
		for _, label := range d.Labels {
			out = append(out, Diagnostic{
				Start:    uint(label.Span.Start),
				End:      uint(label.Span.End),
				Severity: severity,
				Message:  d.Message,
			})
		}
	}
	return out
}
