package driver

import (
	"fmt"

	"whittle"
	"whittle/internal/source"
)

// ParseFileResult pairs the loaded source with the boundary result, so
// callers can render diagnostics against the original text.
type ParseFileResult struct {
	Path   string
	File   *source.File
	Result *whittle.ParseResult
}

// ParseFile loads one file from disk and parses it. The source filename in
// the options defaults to the path so source type inference sees the real
// extension.
func ParseFile(path string, opts *whittle.ParseOptions) (*ParseFileResult, error) {
	file, err := source.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	var o whittle.ParseOptions
	if opts != nil {
		o = *opts
	}
	if o.SourceFilename == "" {
		o.SourceFilename = path
	}

	result, err := whittle.Parse(string(file.Content), &o)
	if err != nil {
		return nil, err
	}
	return &ParseFileResult{Path: path, File: file, Result: result}, nil
}
