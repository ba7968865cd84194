package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"whittle/internal/cache"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the minify result cache",
	Args:  cobra.NoArgs,
	RunE:  runClean,
}

func init() {
	cleanCmd.Flags().String("cache-dir", "", "cache directory (defaults to the user cache dir)")
}

func runClean(cmd *cobra.Command, _ []string) error {
	dir, _ := cmd.Flags().GetString("cache-dir")

	var c *cache.Cache
	var err error
	if dir != "" {
		c, err = cache.OpenDir(dir)
	} else {
		c, err = cache.Open("whittle")
	}
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}
	if err := c.Clear(); err != nil {
		return fmt.Errorf("clear cache: %w", err)
	}
	if !quietMode(cmd) {
		fmt.Fprintf(cmd.OutOrStdout(), "cleared %s\n", c.Dir())
	}
	return nil
}
