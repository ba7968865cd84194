package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"whittle/internal/driver"
	"whittle/internal/pipeline"
	"whittle/internal/ui"
)

// wantProgressUI decides whether a directory run gets the progress view.
// --ui=on and --ui=off are explicit; the default follows stdout being a
// terminal, and --quiet wins over everything.
func wantProgressUI(value string, quiet bool) (bool, error) {
	if quiet {
		return false, nil
	}
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "on":
		return true, nil
	case "off":
		return false, nil
	case "", "auto":
		return isTerminal(os.Stdout), nil
	}
	return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
}

type minifyOutcome struct {
	results []driver.FileResult
	err     error
}

// runMinifyDirWithUI drives MinifyDir behind a Bubble Tea progress view.
// The driver runs in its own goroutine and streams events through a
// channel the model drains; closing the channel ends the program.
func runMinifyDirWithUI(cmd *cobra.Command, cfg driver.Config, dir string) ([]driver.FileResult, error) {
	files, err := driver.ListSourceFiles(dir)
	if err != nil {
		return nil, err
	}

	events := make(chan pipeline.Event, 256)
	outcomeCh := make(chan minifyOutcome, 1)

	go func() {
		cfgCopy := cfg
		cfgCopy.Sink = pipeline.ChannelSink{Ch: events}
		results, err := driver.MinifyDir(cmd.Context(), cfgCopy, dir)
		outcomeCh <- minifyOutcome{results: results, err: err}
		close(events)
	}()

	model := ui.NewProgressModel("minifying "+dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.results, uiErr
	}
	return outcome.results, outcome.err
}
