package whittle_test

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"whittle"
)

func TestParseLineComment(t *testing.T) {
	src := "// hi\nconst a = 1;"
	res, err := whittle.Parse(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Errors) != 0 {
		t.Fatalf("errors = %v, want none", res.Errors)
	}
	if len(res.Comments) != 1 {
		t.Fatalf("comments = %v, want one", res.Comments)
	}
	c := res.Comments[0]
	if c.Type != whittle.CommentLine || c.Value != " hi" || c.Start != 0 || c.End != 5 {
		t.Errorf("comment = %+v, want {Line, \" hi\", 0, 5}", c)
	}
	// The full span contains the delimiters plus the value; the value
	// itself never does.
	if got := src[c.Start:c.End]; got != "// hi" {
		t.Errorf("full span slices to %q", got)
	}
	if strings.Contains(c.Value, "//") {
		t.Errorf("value %q contains delimiters", c.Value)
	}
}

func TestParseBlockComment(t *testing.T) {
	src := "/* note */ x;"
	res, err := whittle.Parse(src, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Comments) != 1 {
		t.Fatalf("comments = %v", res.Comments)
	}
	c := res.Comments[0]
	if c.Type != whittle.CommentBlock || c.Value != " note " {
		t.Errorf("comment = %+v", c)
	}
	if got := src[c.Start:c.End]; got != "/* note */" {
		t.Errorf("full span slices to %q", got)
	}
}

func TestParseCommentsKeepSourceOrder(t *testing.T) {
	res, err := whittle.Parse("// a\nx; /* b */ y; // c", nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Comments) != 3 {
		t.Fatalf("comments = %v", res.Comments)
	}
	for i := 1; i < len(res.Comments); i++ {
		if res.Comments[i].Start < res.Comments[i-1].End {
			t.Errorf("comments out of source order: %v", res.Comments)
		}
	}
}

func TestParseEmptyCollectionsNotNil(t *testing.T) {
	res, err := whittle.Parse("let a = 1;", nil)
	if err != nil {
		t.Fatal(err)
	}
	if res.Comments == nil {
		t.Error("Comments is nil, want empty slice")
	}
	if res.Errors == nil {
		t.Error("Errors is nil, want empty slice")
	}
	raw, err := json.Marshal(res)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(raw), `"comments":[]`) || !strings.Contains(string(raw), `"errors":[]`) {
		t.Errorf("empty collections serialize absent: %s", raw)
	}
}

func TestParseProgramShape(t *testing.T) {
	res, err := whittle.Parse("let a = 1;", nil)
	if err != nil {
		t.Fatal(err)
	}
	var program struct {
		Type       string `json:"type"`
		SourceType string `json:"sourceType"`
		Start      uint32 `json:"start"`
		End        uint32 `json:"end"`
		Body       []struct {
			Type string `json:"type"`
		} `json:"body"`
	}
	if err := json.Unmarshal(res.Program, &program); err != nil {
		t.Fatal(err)
	}
	if program.Type != "Program" || program.SourceType != "module" {
		t.Errorf("program header = %+v", program)
	}
	if len(program.Body) != 1 || program.Body[0].Type != "VariableDeclaration" {
		t.Errorf("program body = %+v", program.Body)
	}
}

func TestParseInvalidSource(t *testing.T) {
	src := "let = ;"
	res, err := whittle.Parse(src, nil)
	if err != nil {
		t.Fatalf("syntax errors must be data, not call errors: %v", err)
	}
	if len(res.Errors) == 0 {
		t.Fatal("no diagnostics for invalid source")
	}
	for _, d := range res.Errors {
		if d.End > uint(len(src)) || d.Start > d.End {
			t.Errorf("diagnostic span [%d,%d) outside source", d.Start, d.End)
		}
		if d.Severity != whittle.SeverityError {
			t.Errorf("severity = %q, want Error", d.Severity)
		}
		if d.Message == "" {
			t.Error("empty diagnostic message")
		}
	}
}

func TestParseSourceTypeResolution(t *testing.T) {
	tests := []struct {
		name string
		opts *whittle.ParseOptions
		want string
	}{
		{name: "default is module", opts: nil, want: "module"},
		{name: "explicit script", opts: &whittle.ParseOptions{SourceType: "script"}, want: "script"},
		{name: "cjs extension infers script", opts: &whittle.ParseOptions{SourceFilename: "lib.cjs"}, want: "script"},
		{name: "mjs extension infers module", opts: &whittle.ParseOptions{SourceFilename: "lib.mjs"}, want: "module"},
		{name: "explicit beats extension", opts: &whittle.ParseOptions{SourceType: "module", SourceFilename: "lib.cjs"}, want: "module"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := whittle.Parse("x;", tt.opts)
			if err != nil {
				t.Fatal(err)
			}
			var program struct {
				SourceType string `json:"sourceType"`
			}
			if err := json.Unmarshal(res.Program, &program); err != nil {
				t.Fatal(err)
			}
			if program.SourceType != tt.want {
				t.Errorf("sourceType = %q, want %q", program.SourceType, tt.want)
			}
		})
	}
}

func TestParseUnknownSourceType(t *testing.T) {
	_, err := whittle.Parse("x;", &whittle.ParseOptions{SourceType: "commonjs"})
	var cfgErr *whittle.ConfigError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigError", err)
	}
	if cfgErr.Field != "sourceType" || cfgErr.Value != "commonjs" {
		t.Errorf("ConfigError = %+v", cfgErr)
	}
}

func TestParseModuleOnlySyntaxInScript(t *testing.T) {
	res, err := whittle.Parse("export const a = 1;", &whittle.ParseOptions{SourceType: "script"})
	if err != nil {
		t.Fatal(err)
	}
	if len(res.Errors) == 0 {
		t.Error("export in a script should produce a diagnostic")
	}
}
