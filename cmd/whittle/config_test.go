package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"

	"whittle"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, configFileName)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestFindConfigFileWalksUp(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "")
	nested := filepath.Join(root, "a", "b")
	if err := os.MkdirAll(nested, 0o750); err != nil {
		t.Fatal(err)
	}

	path, ok, err := findConfigFile(nested)
	if err != nil {
		t.Fatalf("findConfigFile: %v", err)
	}
	if !ok {
		t.Fatal("config not found from nested directory")
	}
	if want := filepath.Join(root, configFileName); path != want {
		t.Errorf("found %q, want %q", path, want)
	}
}

func TestLoadFileConfigToggles(t *testing.T) {
	dir := t.TempDir()
	writeConfig(t, dir, `
[minify]
mangle = false
sourcemap = true
out_dir = "dist"

[minify.compress]
target = "es2019"
dropConsole = true

[cache]
disabled = true
`)

	cfg, ok, err := loadFileConfig(dir)
	if err != nil {
		t.Fatalf("loadFileConfig: %v", err)
	}
	if !ok {
		t.Fatal("config not found")
	}

	if _, enabled := cfg.Minify.Mangle.Resolve(); enabled {
		t.Error("mangle = false did not disable the stage")
	}
	detail, enabled := cfg.Minify.Compress.Resolve()
	if !enabled || detail == nil {
		t.Fatal("compress detail table not decoded")
	}
	if detail.Target == nil || *detail.Target != "es2019" {
		t.Errorf("target = %v, want es2019", detail.Target)
	}
	if detail.DropConsole == nil || !*detail.DropConsole {
		t.Error("dropConsole = true not decoded")
	}
	if !cfg.Minify.Sourcemap {
		t.Error("sourcemap = true not decoded")
	}
	if cfg.Minify.OutDir != "dist" {
		t.Errorf("out_dir = %q, want dist", cfg.Minify.OutDir)
	}
	if !cfg.Cache.Disabled {
		t.Error("cache.disabled = true not decoded")
	}
}

func TestLoadFileConfigMissing(t *testing.T) {
	// An isolated temp dir has parents, but none carries a whittle.toml
	// with this marker, so decode must report "not found" rather than
	// fail. Guard against a stray config above the temp root.
	dir := t.TempDir()
	_, ok, err := loadFileConfig(dir)
	if err != nil {
		t.Fatalf("loadFileConfig: %v", err)
	}
	if ok {
		t.Skip("ambient whittle.toml above the temp dir")
	}
}

func minifyFlagSet(t *testing.T, args ...string) *pflag.FlagSet {
	t.Helper()
	f := pflag.NewFlagSet("minify", pflag.ContinueOnError)
	registerMinifyFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("parse flags %v: %v", args, err)
	}
	return f
}

func TestMergeOptionFlagsStageToggles(t *testing.T) {
	f := minifyFlagSet(t, "--compress=off", "--mangle=on", "--sourcemap")

	opts, err := mergeOptionFlags(f, whittle.MinifyOptions{})
	if err != nil {
		t.Fatalf("mergeOptionFlags: %v", err)
	}
	if _, enabled := opts.Compress.Resolve(); enabled {
		t.Error("--compress=off did not disable the stage")
	}
	if _, enabled := opts.Mangle.Resolve(); !enabled {
		t.Error("--mangle=on disabled the stage")
	}
	if !opts.Sourcemap {
		t.Error("--sourcemap not applied")
	}
}

func TestMergeOptionFlagsDetailMergesOverConfig(t *testing.T) {
	target := "es2015"
	base := whittle.MinifyOptions{
		Compress: whittle.With(whittle.CompressConfig{Target: &target}),
	}

	f := minifyFlagSet(t, "--drop-console")
	opts, err := mergeOptionFlags(f, base)
	if err != nil {
		t.Fatalf("mergeOptionFlags: %v", err)
	}
	detail, enabled := opts.Compress.Resolve()
	if !enabled || detail == nil {
		t.Fatal("compress detail lost")
	}
	if detail.Target == nil || *detail.Target != "es2015" {
		t.Error("config-file target overwritten by unrelated flag")
	}
	if detail.DropConsole == nil || !*detail.DropConsole {
		t.Error("--drop-console not merged")
	}
}

func TestMergeOptionFlagsDetailConflicts(t *testing.T) {
	f := minifyFlagSet(t, "--compress=off", "--target=es2020")
	if _, err := mergeOptionFlags(f, whittle.MinifyOptions{}); err == nil {
		t.Error("detail flag with disabled stage did not error")
	}

	f = minifyFlagSet(t, "--mangle=off", "--toplevel")
	if _, err := mergeOptionFlags(f, whittle.MinifyOptions{}); err == nil {
		t.Error("--toplevel with --mangle=off did not error")
	}
}

func TestMergeOptionFlagsBadToggleValue(t *testing.T) {
	f := minifyFlagSet(t, "--compress=maybe")
	if _, err := mergeOptionFlags(f, whittle.MinifyOptions{}); err == nil {
		t.Error("invalid toggle value accepted")
	}
}

func TestMergeOptionFlagsPretty(t *testing.T) {
	f := minifyFlagSet(t, "--pretty")
	opts, err := mergeOptionFlags(f, whittle.MinifyOptions{})
	if err != nil {
		t.Fatalf("mergeOptionFlags: %v", err)
	}
	detail, enabled := opts.Codegen.Resolve()
	if !enabled || detail == nil || detail.RemoveWhitespace == nil || *detail.RemoveWhitespace {
		t.Error("--pretty did not keep whitespace")
	}
}

func TestMergeOptionFlagsKeepDebugger(t *testing.T) {
	f := minifyFlagSet(t, "--keep-debugger")
	opts, err := mergeOptionFlags(f, whittle.MinifyOptions{})
	if err != nil {
		t.Fatalf("mergeOptionFlags: %v", err)
	}
	detail, _ := opts.Compress.Resolve()
	if detail == nil || detail.DropDebugger == nil || *detail.DropDebugger {
		t.Error("--keep-debugger did not clear dropDebugger")
	}
}
