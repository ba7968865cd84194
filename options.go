package whittle

import (
	"whittle/internal/codegen"
	"whittle/internal/compress"
	"whittle/internal/es"
	"whittle/internal/mangle"
)

// MinifyOptions is the caller-facing configuration of the minify pipeline.
// Each stage is a tri-state Toggle; see Toggle for the absent/flag/detail
// semantics. The zero value runs every stage with defaults.
type MinifyOptions struct {
	Compress  Toggle[CompressConfig] `json:"compress"`
	Mangle    Toggle[MangleConfig]   `json:"mangle"`
	Codegen   Toggle[CodegenConfig]  `json:"codegen"`
	Sourcemap bool                   `json:"sourcemap"`
}

// CompressConfig is the detail record of the compress stage. Nil fields
// fall back to the stage defaults individually.
type CompressConfig struct {
	// Target is an ECMAScript edition tag, es2015 through es2024 or
	// esnext. Default esnext.
	Target *string `json:"target"`
	// DropConsole removes console.* calls. Default false.
	DropConsole *bool `json:"dropConsole"`
	// DropDebugger removes debugger statements. Default true.
	DropDebugger *bool `json:"dropDebugger"`
}

// MangleConfig is the detail record of the mangle stage.
type MangleConfig struct {
	// TopLevel renames top-level bindings too. Default false.
	TopLevel *bool `json:"toplevel"`
	// Debug appends original names to mangled ones. Default false.
	Debug *bool `json:"debug"`
}

// CodegenConfig is the detail record of the code generation stage.
type CodegenConfig struct {
	// RemoveWhitespace prints without optional whitespace. Default true.
	RemoveWhitespace *bool `json:"removeWhitespace"`
}

// resolved is the fully-determined engine configuration one call runs
// with. Nil stage pointers mean the stage is skipped.
type resolved struct {
	compress *compress.Options
	mangle   *mangle.Options
	codegen  codegen.Options
	srcmap   bool
}

// resolveOptions collapses the caller configuration into engine options.
// Validation is all-or-nothing: the first invalid field aborts the whole
// assembly and nothing downstream runs.
func resolveOptions(opts *MinifyOptions) (resolved, error) {
	if opts == nil {
		opts = &MinifyOptions{}
	}
	var r resolved
	var err error
	if r.compress, err = resolveCompress(opts.Compress); err != nil {
		return resolved{}, err
	}
	r.mangle = resolveMangle(opts.Mangle)
	r.codegen = resolveCodegen(opts.Codegen)
	r.srcmap = opts.Sourcemap
	return r, nil
}

func resolveCompress(t Toggle[CompressConfig]) (*compress.Options, error) {
	cfg, enabled := t.Resolve()
	if !enabled {
		return nil, nil
	}
	out := compress.Default()
	if cfg != nil {
		if cfg.Target != nil {
			target, err := es.ParseTarget(*cfg.Target)
			if err != nil {
				return nil, &ConfigError{
					Field:  "compress.target",
					Value:  *cfg.Target,
					Reason: "unrecognized ECMAScript edition tag",
				}
			}
			out.Target = target
		}
		if cfg.DropConsole != nil {
			out.DropConsole = *cfg.DropConsole
		}
		if cfg.DropDebugger != nil {
			out.DropDebugger = *cfg.DropDebugger
		}
	}
	return &out, nil
}

// resolveMangle cannot fail: both detail fields are plain booleans.
func resolveMangle(t Toggle[MangleConfig]) *mangle.Options {
	cfg, enabled := t.Resolve()
	if !enabled {
		return nil
	}
	out := mangle.Default()
	if cfg != nil {
		if cfg.TopLevel != nil {
			out.TopLevel = *cfg.TopLevel
		}
		if cfg.Debug != nil {
			out.Debug = *cfg.Debug
		}
	}
	return &out
}

// resolveCodegen cannot fail either. A disabled stage still prints, just
// with whitespace kept, since some output text must always exist.
func resolveCodegen(t Toggle[CodegenConfig]) codegen.Options {
	cfg, enabled := t.Resolve()
	if !enabled {
		return codegen.Options{Minify: false}
	}
	out := codegen.Default()
	if cfg != nil && cfg.RemoveWhitespace != nil {
		out.Minify = *cfg.RemoveWhitespace
	}
	return out
}
