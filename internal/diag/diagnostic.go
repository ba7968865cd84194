package diag

import (
	"whittle/internal/source"
)

// Label points one span of the source at a human-readable hint. A diagnostic
// fans out across the boundary one entry per label.
type Label struct {
	Span source.Span
	Msg  string
}

// Diagnostic is one structured report about the input source. Labels may be
// empty for reports that describe the run as a whole rather than a location;
// such reports carry no positional information and marshal to nothing.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Labels   []Label
}

// New builds a diagnostic with a single label whose hint is the message itself.
func New(sev Severity, code Code, primary source.Span, msg string) Diagnostic {
	return Diagnostic{
		Severity: sev,
		Code:     code,
		Message:  msg,
		Labels:   []Label{{Span: primary, Msg: msg}},
	}
}

// Unlabeled builds a diagnostic that has no positional labels.
func Unlabeled(sev Severity, code Code, msg string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: msg}
}

// WithLabel appends a secondary labeled span.
func (d Diagnostic) WithLabel(sp source.Span, msg string) Diagnostic {
	d.Labels = append(d.Labels, Label{Span: sp, Msg: msg})
	return d
}

// Primary returns the first label's span, if any label exists.
func (d *Diagnostic) Primary() (source.Span, bool) {
	if len(d.Labels) == 0 {
		return source.Span{}, false
	}
	return d.Labels[0].Span, true
}
