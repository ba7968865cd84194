package whittle

import (
	"fmt"
	"strings"
	"time"

	"whittle/internal/codegen"
	"whittle/internal/diag"
	"whittle/internal/minifier"
	"whittle/internal/parser"
	"whittle/internal/source"
	"whittle/sourcemap"
)

// MinifyResult is the transformed code plus its source map when one was
// requested.
type MinifyResult struct {
	Code string         `json:"code"`
	Map  *sourcemap.Map `json:"map,omitempty"`
}

// StageTimer receives the elapsed wall time of each pipeline stage as it
// finishes. Stage names are "parse", "compress", "mangle", and "print";
// skipped stages are never reported.
type StageTimer func(stage string, elapsed time.Duration)

// Minify parses sourceText, runs the enabled transformation stages, and
// prints the result. Configuration is validated in full before any parsing
// happens. Unlike Parse, this pipeline has no diagnostics side channel, so
// source the parser rejects fails the call.
func Minify(filename, sourceText string, opts *MinifyOptions) (*MinifyResult, error) {
	return MinifyTimed(filename, sourceText, opts, nil)
}

// MinifyTimed is Minify with per-stage timing reported to timer. A nil
// timer behaves exactly like Minify.
func MinifyTimed(filename, sourceText string, opts *MinifyOptions, timer StageTimer) (*MinifyResult, error) {
	cfg, err := resolveOptions(opts)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	file := source.NewFile(filename, []byte(sourceText))
	bag := diag.NewBag(maxParseDiagnostics)
	res := parser.Parse(file, parser.Options{
		MaxErrors: maxParseDiagnostics,
		Reporter:  &diag.BagReporter{Bag: bag},
	})
	if bag.HasErrors() {
		return nil, fmt.Errorf("parse %s: %s", filename, joinMessages(bag.Items()))
	}
	report(timer, "parse", start)

	minifier.Minify(res.Program, minifier.Options{
		Compress: cfg.compress,
		Mangle:   cfg.mangle,
		Observe:  timer,
	})

	printOpts := cfg.codegen
	if cfg.srcmap {
		printOpts.SourceMap = true
		printOpts.File = file
	}
	start = time.Now()
	printed := codegen.Print(res.Program, printOpts)
	report(timer, "print", start)

	out := &MinifyResult{Code: printed.Code}
	if cfg.srcmap {
		printed.Map.File = outputName(filename)
		out.Map = printed.Map
	}
	return out, nil
}

func report(timer StageTimer, stage string, start time.Time) {
	if timer != nil {
		timer(stage, time.Since(start))
	}
}

func joinMessages(items []diag.Diagnostic) string {
	msgs := make([]string, 0, len(items))
	for _, d := range items {
		if d.Severity >= diag.SevError {
			msgs = append(msgs, d.Message)
		}
	}
	return strings.Join(msgs, "; ")
}

// outputName derives the generated file's name recorded in the source map.
func outputName(filename string) string {
	if ext := ".js"; strings.HasSuffix(filename, ext) {
		return strings.TrimSuffix(filename, ext) + ".min.js"
	}
	return filename + ".min.js"
}
