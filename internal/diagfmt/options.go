package diagfmt

// PathMode specifies how file paths are displayed.
type PathMode uint8

const (
	// PathModeAuto keeps the path as the caller supplied it.
	PathModeAuto PathMode = iota
	// PathModeBasename strips the directory part.
	PathModeBasename
)

// PrettyOpts configures pretty-printing of diagnostics.
type PrettyOpts struct {
	Color    bool
	Context  int // extra source lines shown above and below each label
	PathMode PathMode
}
