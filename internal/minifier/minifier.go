// Package minifier runs the tree-shrinking passes in their required order:
// compression first, then mangling, so renaming sees the statements that
// actually survive. Either pass can be switched off independently; printing
// is the caller's step.
package minifier

import (
	"time"

	"whittle/internal/ast"
	"whittle/internal/compress"
	"whittle/internal/mangle"
)

// Options selects the passes. A nil field skips that pass entirely.
type Options struct {
	Compress *compress.Options
	Mangle   *mangle.Options

	// Observe, when set, receives the wall time of each pass that ran.
	Observe func(pass string, elapsed time.Duration)
}

// Default enables both passes with their defaults.
func Default() Options {
	c := compress.Default()
	m := mangle.Default()
	return Options{Compress: &c, Mangle: &m}
}

// Minify rewrites the program in place.
func Minify(prog *ast.Program, opts Options) {
	if opts.Compress != nil {
		start := time.Now()
		compress.Compress(prog, *opts.Compress)
		observe(opts, "compress", start)
	}
	if opts.Mangle != nil {
		start := time.Now()
		mangle.Mangle(prog, *opts.Mangle)
		observe(opts, "mangle", start)
	}
}

func observe(opts Options, pass string, start time.Time) {
	if opts.Observe != nil {
		opts.Observe(pass, time.Since(start))
	}
}
