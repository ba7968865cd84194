package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"whittle"
)

// mergeOptionFlags layers command-line flags over the base option set from
// whittle.toml. Stage flags replace the whole toggle; detail flags merge
// into whatever the toggle already carries.
func mergeOptionFlags(f *pflag.FlagSet, base whittle.MinifyOptions) (whittle.MinifyOptions, error) {
	opts := base

	if err := mergeCompress(f, &opts); err != nil {
		return opts, err
	}
	if err := mergeMangle(f, &opts); err != nil {
		return opts, err
	}
	if f.Changed("pretty") {
		pretty, _ := f.GetBool("pretty")
		removeWhitespace := !pretty
		opts.Codegen = whittle.With(whittle.CodegenConfig{RemoveWhitespace: &removeWhitespace})
	}
	if f.Changed("sourcemap") {
		opts.Sourcemap, _ = f.GetBool("sourcemap")
	}
	return opts, nil
}

func mergeCompress(f *pflag.FlagSet, opts *whittle.MinifyOptions) error {
	if f.Changed("compress") {
		toggle, err := stageToggle[whittle.CompressConfig](f, "compress")
		if err != nil {
			return err
		}
		opts.Compress = toggle
	}
	if !f.Changed("target") && !f.Changed("drop-console") && !f.Changed("keep-debugger") {
		return nil
	}

	detail, enabled := opts.Compress.Resolve()
	if !enabled {
		return errors.New("--target, --drop-console and --keep-debugger require the compress stage")
	}
	var cfg whittle.CompressConfig
	if detail != nil {
		cfg = *detail
	}
	if f.Changed("target") {
		v, _ := f.GetString("target")
		cfg.Target = &v
	}
	if f.Changed("drop-console") {
		v, _ := f.GetBool("drop-console")
		cfg.DropConsole = &v
	}
	if f.Changed("keep-debugger") {
		keep, _ := f.GetBool("keep-debugger")
		drop := !keep
		cfg.DropDebugger = &drop
	}
	opts.Compress = whittle.With(cfg)
	return nil
}

func mergeMangle(f *pflag.FlagSet, opts *whittle.MinifyOptions) error {
	if f.Changed("mangle") {
		toggle, err := stageToggle[whittle.MangleConfig](f, "mangle")
		if err != nil {
			return err
		}
		opts.Mangle = toggle
	}
	if !f.Changed("toplevel") && !f.Changed("mangle-debug") {
		return nil
	}

	detail, enabled := opts.Mangle.Resolve()
	if !enabled {
		return errors.New("--toplevel and --mangle-debug require the mangle stage")
	}
	var cfg whittle.MangleConfig
	if detail != nil {
		cfg = *detail
	}
	if f.Changed("toplevel") {
		v, _ := f.GetBool("toplevel")
		cfg.TopLevel = &v
	}
	if f.Changed("mangle-debug") {
		v, _ := f.GetBool("mangle-debug")
		cfg.Debug = &v
	}
	opts.Mangle = whittle.With(cfg)
	return nil
}

func stageToggle[T any](f *pflag.FlagSet, name string) (whittle.Toggle[T], error) {
	v, _ := f.GetString(name)
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "on":
		return whittle.On[T](), nil
	case "off":
		return whittle.Off[T](), nil
	default:
		return whittle.Toggle[T]{}, fmt.Errorf("invalid --%s value %q (expected on|off)", name, v)
	}
}
