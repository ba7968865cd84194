package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"whittle"
)

// configFileName is discovered by walking up from the input, so one file
// at the project root covers every subdirectory.
const configFileName = "whittle.toml"

type fileConfig struct {
	Minify minifySection `toml:"minify"`
	Cache  cacheSection  `toml:"cache"`
}

type minifySection struct {
	Compress  whittle.Toggle[whittle.CompressConfig] `toml:"compress"`
	Mangle    whittle.Toggle[whittle.MangleConfig]   `toml:"mangle"`
	Codegen   whittle.Toggle[whittle.CodegenConfig]  `toml:"codegen"`
	Sourcemap bool                                   `toml:"sourcemap"`
	OutDir    string                                 `toml:"out_dir"`
}

type cacheSection struct {
	Disabled bool   `toml:"disabled"`
	Dir      string `toml:"dir"`
}

func findConfigFile(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadFileConfig reads the nearest whittle.toml above startDir. A missing
// file is not an error; the zero config applies.
func loadFileConfig(startDir string) (fileConfig, bool, error) {
	path, ok, err := findConfigFile(startDir)
	if err != nil || !ok {
		return fileConfig{}, ok, err
	}
	var cfg fileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return fileConfig{}, true, fmt.Errorf("%s: parse TOML: %w", path, err)
	}
	return cfg, true, nil
}

func (c fileConfig) options() whittle.MinifyOptions {
	return whittle.MinifyOptions{
		Compress:  c.Minify.Compress,
		Mangle:    c.Minify.Mangle,
		Codegen:   c.Minify.Codegen,
		Sourcemap: c.Minify.Sourcemap,
	}
}
