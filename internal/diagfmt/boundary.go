package diagfmt

import (
	"fmt"
	"io"

	"whittle"
	"whittle/internal/source"
)

// PrettyList renders boundary diagnostics, which carry byte offsets and a
// severity but no code.
func PrettyList(w io.Writer, diags []whittle.Diagnostic, file *source.File, opts PrettyOpts) {
	for _, d := range diags {
		sp := source.Span{
			Start: uint32(d.Start), //nolint:gosec // offsets originate from uint32 spans
			End:   uint32(d.End),   //nolint:gosec // offsets originate from uint32 spans
		}
		tag := paint(errorColor, "ERROR", opts.Color)
		if d.Severity == whittle.SeverityWarning {
			tag = paint(warningColor, "WARNING", opts.Color)
		}
		writeLabel(w, file, sp, fmt.Sprintf("%s: %s", tag, d.Message), opts)
	}
}
