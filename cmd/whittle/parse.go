package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"whittle"
	"whittle/internal/diagfmt"
	"whittle/internal/driver"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <file.js|directory>",
	Short: "Parse JavaScript and output the syntax tree",
	Long: "Parse analyzes a JavaScript file or every source file in a directory " +
		"and prints the serialized syntax tree together with comments and " +
		"diagnostics. Malformed source still produces a tree; the errors ride " +
		"along in the result.",
	Args: cobra.ExactArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().String("format", "json", "output format (json|diagnostics)")
	parseCmd.Flags().String("source-type", "", "force source type (script|module)")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return err
	}
	switch format {
	case "json", "diagnostics":
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	sourceType, _ := cmd.Flags().GetString("source-type")
	opts := &whittle.ParseOptions{SourceType: sourceType}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat input: %w", err)
	}

	if !st.IsDir() {
		res, err := driver.ParseFile(path, opts)
		if err != nil {
			return err
		}
		return emitParseResult(cmd, res, format)
	}

	jobs, _ := cmd.Flags().GetInt("jobs")
	results, err := driver.ParseDir(cmd.Context(), path, opts, jobs)
	if err != nil {
		return err
	}
	for _, res := range results {
		if err := emitParseResult(cmd, res, format); err != nil {
			return err
		}
	}
	return nil
}

func emitParseResult(cmd *cobra.Command, res *driver.ParseFileResult, format string) error {
	prettyOpts := diagfmt.PrettyOpts{
		Color:   useColor(cmd, os.Stderr),
		Context: 1,
	}

	switch format {
	case "json":
		if len(res.Result.Errors) > 0 && !quietMode(cmd) {
			diagfmt.PrettyList(cmd.ErrOrStderr(), res.Result.Errors, res.File, prettyOpts)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(res.Result)
	case "diagnostics":
		diagfmt.PrettyList(cmd.OutOrStdout(), res.Result.Errors, res.File, prettyOpts)
		if !quietMode(cmd) {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d errors, %d comments\n",
				res.Path, len(res.Result.Errors), len(res.Result.Comments))
		}
		return nil
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}
