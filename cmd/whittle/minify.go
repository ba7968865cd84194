package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"whittle/internal/cache"
	"whittle/internal/driver"
	"whittle/internal/pipeline"
)

var minifyCmd = &cobra.Command{
	Use:   "minify [flags] <file.js|directory>",
	Short: "Minify JavaScript sources",
	Long: "Minify compresses, mangles and reprints a JavaScript file or every " +
		"source file under a directory. Options come from whittle.toml when one " +
		"is found above the input; flags override it.",
	Args: cobra.ExactArgs(1),
	RunE: runMinify,
}

func init() {
	registerMinifyFlags(minifyCmd.Flags())
}

func registerMinifyFlags(f *pflag.FlagSet) {
	f.StringP("out", "o", "", "output file (single-file mode)")
	f.String("out-dir", "", "write outputs into this directory")
	f.Bool("stdout", false, "print minified code instead of writing files")
	f.Bool("sourcemap", false, "emit a source map next to each output")
	f.String("compress", "", "compress stage (on|off)")
	f.String("target", "", "ECMAScript edition for compression (es2015..es2024|esnext)")
	f.Bool("drop-console", false, "remove console.* calls")
	f.Bool("keep-debugger", false, "keep debugger statements")
	f.String("mangle", "", "mangle stage (on|off)")
	f.Bool("toplevel", false, "mangle top-level bindings too")
	f.Bool("mangle-debug", false, "append original names to mangled ones")
	f.Bool("pretty", false, "keep readable whitespace in the output")
	f.Bool("watch", false, "watch for changes and rebuild")
	f.Bool("no-cache", false, "bypass the result cache")
	f.String("cache-dir", "", "cache directory (defaults to the user cache dir)")
	f.Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	f.String("ui", "auto", "interactive progress for directory runs (auto|on|off)")
}

func runMinify(cmd *cobra.Command, args []string) error {
	input := args[0]
	st, err := os.Stat(input)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	configStart := input
	if !st.IsDir() {
		configStart = filepath.Dir(input)
	}
	fileCfg, _, err := loadFileConfig(configStart)
	if err != nil {
		return err
	}
	opts, err := mergeOptionFlags(cmd.Flags(), fileCfg.options())
	if err != nil {
		return err
	}

	toStdout, _ := cmd.Flags().GetBool("stdout")
	outPath, _ := cmd.Flags().GetString("out")
	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		outDir = fileCfg.Minify.OutDir
	}
	jobs, _ := cmd.Flags().GetInt("jobs")

	cfg := driver.Config{
		Options: &opts,
		OutPath: outPath,
		OutDir:  outDir,
		Write:   !toStdout,
		Cache:   openRunCache(cmd, fileCfg),
		Jobs:    jobs,
	}

	if st.IsDir() {
		return minifyDirectory(cmd, cfg, input)
	}
	return minifySingle(cmd, cfg, input, toStdout)
}

func minifySingle(cmd *cobra.Command, cfg driver.Config, path string, toStdout bool) error {
	res := driver.MinifyFile(cfg, path)
	if res.Err != nil {
		return res.Err
	}
	if toStdout {
		fmt.Fprintln(cmd.OutOrStdout(), res.Code)
	} else if !quietMode(cmd) {
		fmt.Fprintln(cmd.OutOrStdout(), summarize(res))
	}
	if showTimings(cmd) {
		printStageTimings(cmd.OutOrStdout(), res.Timings)
	}
	return nil
}

func minifyDirectory(cmd *cobra.Command, cfg driver.Config, dir string) error {
	if cfg.OutPath != "" {
		return fmt.Errorf("--out applies to single files; use --out-dir for directories")
	}

	if watch, _ := cmd.Flags().GetBool("watch"); watch {
		return runWatch(cmd, cfg, dir)
	}

	uiValue, _ := cmd.Flags().GetString("ui")
	useUI, err := wantProgressUI(uiValue, quietMode(cmd))
	if err != nil {
		return err
	}

	var results []driver.FileResult
	if useUI {
		results, err = runMinifyDirWithUI(cmd, cfg, dir)
	} else {
		results, err = driver.MinifyDir(cmd.Context(), cfg, dir)
	}
	if err != nil {
		return err
	}

	var failed int
	quiet := quietMode(cmd)
	total := pipeline.Timings{}
	for _, res := range results {
		if res.Err != nil {
			failed++
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, res.Err)
			continue
		}
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), summarize(res))
		}
		for _, stage := range []pipeline.Stage{pipeline.StageParse, pipeline.StageCompress, pipeline.StageMangle, pipeline.StagePrint, pipeline.StageWrite} {
			total.Add(stage, res.Timings.Duration(stage))
		}
	}
	if showTimings(cmd) {
		printStageTimings(cmd.OutOrStdout(), total)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d files failed", failed, len(results))
	}
	return nil
}

func runWatch(cmd *cobra.Command, cfg driver.Config, dir string) error {
	if !cfg.Write {
		return fmt.Errorf("--watch needs file output; drop --stdout")
	}
	quiet := quietMode(cmd)
	if !quiet {
		fmt.Fprintf(cmd.OutOrStdout(), "watching %s\n", dir)
	}
	return driver.Watch(cmd.Context(), cfg, dir, func(res driver.FileResult) {
		if res.Err != nil {
			fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", res.Path, res.Err)
			return
		}
		if !quiet {
			fmt.Fprintln(cmd.OutOrStdout(), summarize(res))
		}
	})
}

// openRunCache returns nil when caching is off; a cache that fails to open
// only costs speed, so the failure is reported and ignored.
func openRunCache(cmd *cobra.Command, fileCfg fileConfig) *cache.Cache {
	if noCache, _ := cmd.Flags().GetBool("no-cache"); noCache || fileCfg.Cache.Disabled {
		return nil
	}
	dir, _ := cmd.Flags().GetString("cache-dir")
	if dir == "" {
		dir = fileCfg.Cache.Dir
	}

	var c *cache.Cache
	var err error
	if dir != "" {
		c, err = cache.OpenDir(dir)
	} else {
		c, err = cache.Open("whittle")
	}
	if err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "cache disabled: %v\n", err)
		return nil
	}
	return c
}

func summarize(res driver.FileResult) string {
	target := res.OutPath
	if target == "" {
		target = res.Path
	}
	line := fmt.Sprintf("%s (%d bytes)", target, len(res.Code))
	if res.Cached {
		line += " [cached]"
	}
	return line
}
