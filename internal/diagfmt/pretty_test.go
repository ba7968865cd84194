package diagfmt

import (
	"bytes"
	"testing"

	"whittle/internal/diag"
	"whittle/internal/source"
)

func render(t *testing.T, file *source.File, d diag.Diagnostic, opts PrettyOpts) string {
	t.Helper()
	bag := diag.NewBag(16)
	bag.Add(d)
	var buf bytes.Buffer
	Pretty(&buf, bag, file, opts)
	return buf.String()
}

func TestPrettySingleError(t *testing.T) {
	file := source.NewFile("a.js", []byte("let x = ;\nlet y;\n"))
	d := diag.New(diag.SevError, diag.SynExpectExpr, source.Span{Start: 8, End: 9}, "expected expression")

	got := render(t, file, d, PrettyOpts{})
	want := "a.js:1:9: ERROR JS2004: expected expression\n" +
		"1 | let x = ;\n" +
		"  |         ^\n"
	if got != want {
		t.Errorf("Pretty output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyContextLines(t *testing.T) {
	file := source.NewFile("a.js", []byte("a();\nb(;\nc();\n"))
	d := diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{Start: 7, End: 8}, "unexpected token")

	got := render(t, file, d, PrettyOpts{Context: 1})
	want := "a.js:2:3: ERROR JS2001: unexpected token\n" +
		"1 | a();\n" +
		"2 | b(;\n" +
		"  |   ^\n" +
		"3 | c();\n"
	if got != want {
		t.Errorf("Pretty output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyUnlabeled(t *testing.T) {
	file := source.NewFile("a.js", []byte("x;\n"))
	d := diag.Unlabeled(diag.SevError, diag.SynTooManyErrors, "too many parse errors")

	got := render(t, file, d, PrettyOpts{})
	if got != "ERROR JS2018: too many parse errors\n" {
		t.Errorf("unlabeled output = %q", got)
	}
}

func TestPrettySecondaryLabel(t *testing.T) {
	file := source.NewFile("a.js", []byte("lab: lab: x;\n"))
	d := diag.New(diag.SevError, diag.SynLabelRedeclared, source.Span{Start: 5, End: 8}, "label redeclared").
		WithLabel(source.Span{Start: 0, End: 3}, "first declared here")

	got := render(t, file, d, PrettyOpts{})
	want := "a.js:1:6: ERROR JS2022: label redeclared\n" +
		"1 | lab: lab: x;\n" +
		"  |      ^~~\n" +
		"a.js:1:1: NOTE: first declared here\n" +
		"1 | lab: lab: x;\n" +
		"  | ^~~\n"
	if got != want {
		t.Errorf("Pretty output mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyMultilineUnderline(t *testing.T) {
	file := source.NewFile("a.js", []byte("foo(\nbar;\n"))
	d := diag.New(diag.SevError, diag.SynExpectToken, source.Span{Start: 0, End: 9}, "unclosed call")

	got := render(t, file, d, PrettyOpts{})
	want := "a.js:1:1: ERROR JS2002: unclosed call\n" +
		"1 | foo(\n" +
		"  | ^~~~\n"
	if got != want {
		t.Errorf("multiline underline mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyTabExpansion(t *testing.T) {
	file := source.NewFile("a.js", []byte("\tx;\n"))
	d := diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{Start: 1, End: 2}, "unexpected token")

	got := render(t, file, d, PrettyOpts{})
	want := "a.js:1:2: ERROR JS2001: unexpected token\n" +
		"1 |     x;\n" +
		"  |     ^\n"
	if got != want {
		t.Errorf("tab expansion mismatch:\ngot:\n%s\nwant:\n%s", got, want)
	}
}

func TestPrettyBasenamePath(t *testing.T) {
	file := source.NewFile("src/deep/a.js", []byte("x(;\n"))
	d := diag.New(diag.SevError, diag.SynUnexpectedToken, source.Span{Start: 2, End: 3}, "unexpected token")

	got := render(t, file, d, PrettyOpts{PathMode: PathModeBasename})
	if want := "a.js:1:3:"; !bytes.HasPrefix([]byte(got), []byte(want)) {
		t.Errorf("basename path: got %q, want prefix %q", got, want)
	}
}
