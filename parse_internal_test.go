package whittle

import (
	"testing"

	"whittle/internal/diag"
	"whittle/internal/source"
)

func TestFanOutDiagnostics(t *testing.T) {
	multi := diag.New(diag.SevError, diag.SynExpectExpr, source.Span{Start: 4, End: 5}, "expected expression").
		WithLabel(source.Span{Start: 0, End: 3}, "statement starts here")

	out := fanOutDiagnostics([]diag.Diagnostic{
		diag.Unlabeled(diag.SevError, diag.UnknownCode, "too many errors"),
		multi,
		diag.New(diag.SevWarning, diag.UnknownCode, source.Span{Start: 7, End: 9}, "odd but legal"),
	})

	if len(out) != 3 {
		t.Fatalf("entries = %d, want 3 (unlabeled drops, two labels fan out)", len(out))
	}
	if out[0].Message != "expected expression" || out[1].Message != "expected expression" {
		t.Errorf("fanned entries do not share the message: %q / %q", out[0].Message, out[1].Message)
	}
	if out[0].Start != 4 || out[0].End != 5 || out[1].Start != 0 || out[1].End != 3 {
		t.Errorf("spans = (%d,%d) (%d,%d), want label order preserved",
			out[0].Start, out[0].End, out[1].Start, out[1].End)
	}
	if out[0].Severity != SeverityError || out[2].Severity != SeverityWarning {
		t.Errorf("severities = %v / %v", out[0].Severity, out[2].Severity)
	}
}

func TestFanOutDiagnosticsEmpty(t *testing.T) {
	out := fanOutDiagnostics(nil)
	if out == nil || len(out) != 0 {
		t.Fatalf("fanOutDiagnostics(nil) = %#v, want empty non-nil slice", out)
	}
}
