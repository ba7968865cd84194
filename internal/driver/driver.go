// Package driver runs the minification pipeline over real files: loading,
// caching, parallel directory walks, output writing, and progress
// reporting. It is the layer between the command line and the whittle API.
package driver

import (
	"path/filepath"
	"strings"

	"whittle"
	"whittle/internal/cache"
	"whittle/internal/pipeline"
)

// Config carries the run-wide knobs shared by every file in one
// invocation.
type Config struct {
	// Options configures the engine; nil runs every stage with defaults.
	Options *whittle.MinifyOptions

	// OutPath names the output of a single-file run. Empty derives the
	// name from the input (app.js becomes app.min.js).
	OutPath string

	// OutDir mirrors outputs into a separate tree. Paths are kept
	// relative to BaseDir.
	OutDir string

	// BaseDir anchors relative output paths for directory runs.
	BaseDir string

	// Write controls whether outputs reach the filesystem. When false the
	// caller consumes FileResult.Code itself.
	Write bool

	// Cache holds previously minified outputs; nil disables caching.
	Cache *cache.Cache

	// Jobs bounds the worker count for directory runs; zero or negative
	// means one worker per CPU.
	Jobs int

	// Sink receives progress events; nil discards them.
	Sink pipeline.Sink
}

func (c Config) sink() pipeline.Sink {
	if c.Sink == nil {
		return pipeline.NopSink{}
	}
	return c.Sink
}

// FileResult is the outcome of processing one file. Err is set instead of
// returned so directory runs can report per-file failures without
// abandoning the rest.
type FileResult struct {
	Path    string
	OutPath string
	MapPath string
	Code    string
	Map     []byte // JSON-encoded source map, nil when none was requested
	Cached  bool
	Err     error
	Timings pipeline.Timings
}

// IsSourceFile reports whether path looks like a JavaScript input. Already
// minified outputs are excluded so a run never feeds on its own results.
func IsSourceFile(path string) bool {
	base := strings.ToLower(filepath.Base(path))
	for _, ext := range []string{".js", ".mjs", ".cjs"} {
		if strings.HasSuffix(base, ".min"+ext) {
			return false
		}
		if strings.HasSuffix(base, ext) {
			return true
		}
	}
	return false
}

// outPathFor derives where the minified form of path is written.
func (c Config) outPathFor(path string) string {
	if c.OutPath != "" {
		return c.OutPath
	}
	name := minifiedName(filepath.Base(path))
	if c.OutDir == "" {
		return filepath.Join(filepath.Dir(path), name)
	}
	rel := filepath.Base(path)
	if c.BaseDir != "" {
		if r, err := filepath.Rel(c.BaseDir, path); err == nil && !strings.HasPrefix(r, "..") {
			rel = r
		}
	}
	return filepath.Join(c.OutDir, filepath.Dir(rel), minifiedName(filepath.Base(rel)))
}

func minifiedName(base string) string {
	ext := filepath.Ext(base)
	switch strings.ToLower(ext) {
	case ".js", ".mjs", ".cjs":
		return strings.TrimSuffix(base, ext) + ".min" + ext
	}
	return base + ".min.js"
}
