// Package diagfmt renders diagnostics for terminal consumption.
package diagfmt

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-runewidth"

	"whittle/internal/diag"
	"whittle/internal/source"
)

var (
	errorColor   = color.New(color.FgRed, color.Bold)
	warningColor = color.New(color.FgYellow, color.Bold)
	noteColor    = color.New(color.Faint)
	codeColor    = color.New(color.FgCyan)
	caretColor   = color.New(color.FgRed, color.Bold)
)

// Pretty renders every diagnostic in the bag in a human-readable form:
//
//	<path>:<line>:<col>: ERROR JS2004: expected expression
//	1 | let x = ;
//	  |         ^
//
// Diagnostics come out in the bag's current order; call bag.Sort() first for
// a position-ordered report.
func Pretty(w io.Writer, bag *diag.Bag, file *source.File, opts PrettyOpts) {
	for _, d := range bag.Items() {
		writeDiagnostic(w, file, d, opts)
	}
}

func writeDiagnostic(w io.Writer, file *source.File, d diag.Diagnostic, opts PrettyOpts) {
	sev := severityTag(d.Severity, opts.Color)
	code := paint(codeColor, d.Code.ID(), opts.Color)

	if len(d.Labels) == 0 {
		fmt.Fprintf(w, "%s %s: %s\n", sev, code, d.Message)
		return
	}
	for i, lb := range d.Labels {
		if i == 0 {
			writeLabel(w, file, lb.Span, fmt.Sprintf("%s %s: %s", sev, code, d.Message), opts)
			continue
		}
		writeLabel(w, file, lb.Span, fmt.Sprintf("%s: %s", paint(noteColor, "NOTE", opts.Color), lb.Msg), opts)
	}
}

func writeLabel(w io.Writer, file *source.File, sp source.Span, header string, opts PrettyOpts) {
	start := file.Resolve(sp.Start)
	end := file.Resolve(sp.End)
	fmt.Fprintf(w, "%s:%d:%d: %s\n", displayPath(file.Path, opts.PathMode), start.Line, start.Col, header)

	firstLine := start.Line
	if ctx := uint32(max(opts.Context, 0)); ctx < firstLine { //nolint:gosec // negative clamped above
		firstLine -= ctx
	} else {
		firstLine = 1
	}
	numWidth := len(fmt.Sprint(start.Line + uint32(max(opts.Context, 0)))) //nolint:gosec // negative clamped

	for ln := firstLine; ln < start.Line; ln++ {
		fmt.Fprintf(w, "%*d | %s\n", numWidth, ln, expandTabs(file.Line(ln)))
	}

	lineText := file.Line(start.Line)
	fmt.Fprintf(w, "%*d | %s\n", numWidth, start.Line, expandTabs(lineText))
	fmt.Fprintf(w, "%*s | %s%s\n", numWidth, "",
		strings.Repeat(" ", prefixWidth(lineText, start.Col)),
		paint(caretColor, underline(lineText, start, end), opts.Color))

	for ln := start.Line + 1; ln <= start.Line+uint32(max(opts.Context, 0)); ln++ { //nolint:gosec // negative clamped
		text := file.Line(ln)
		if text == "" && ln > lastLine(file) {
			break
		}
		fmt.Fprintf(w, "%*d | %s\n", numWidth, ln, expandTabs(text))
	}
}

// prefixWidth is the display width of the line text before the 1-based byte
// column, with tabs expanded.
func prefixWidth(lineText string, col uint32) int {
	cut := int(col) - 1
	if cut > len(lineText) {
		cut = len(lineText)
	}
	if cut < 0 {
		cut = 0
	}
	return runewidth.StringWidth(expandTabs(lineText[:cut]))
}

// underline covers the labeled bytes on the label's first line. Labels that
// continue onto later lines underline to the end of the first line.
func underline(lineText string, start, end source.LineCol) string {
	from := int(start.Col) - 1
	to := len(lineText)
	if end.Line == start.Line && int(end.Col)-1 < to {
		to = int(end.Col) - 1
	}
	if from > len(lineText) {
		from = len(lineText)
	}
	width := 1
	if to > from {
		width = runewidth.StringWidth(expandTabs(lineText[from:to]))
	}
	if width < 1 {
		width = 1
	}
	return "^" + strings.Repeat("~", width-1)
}

func severityTag(sev diag.Severity, colored bool) string {
	switch sev {
	case diag.SevError:
		return paint(errorColor, sev.String(), colored)
	case diag.SevWarning:
		return paint(warningColor, sev.String(), colored)
	}
	return sev.String()
}

func displayPath(path string, mode PathMode) string {
	if mode == PathModeBasename {
		return filepath.Base(path)
	}
	return path
}

func paint(c *color.Color, s string, colored bool) string {
	if !colored {
		return s
	}
	return c.Sprint(s)
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

func lastLine(f *source.File) uint32 {
	lc := f.Resolve(f.Len())
	return lc.Line
}
