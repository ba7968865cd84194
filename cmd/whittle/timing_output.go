package main

import (
	"fmt"
	"io"
	"time"

	"whittle/internal/pipeline"
)

func printStageTimings(out io.Writer, timings pipeline.Timings) {
	if out == nil {
		return
	}
	stages := []struct {
		stage pipeline.Stage
		label string
	}{
		{pipeline.StageParse, "parsed"},
		{pipeline.StageCompress, "compressed"},
		{pipeline.StageMangle, "mangled"},
		{pipeline.StagePrint, "printed"},
		{pipeline.StageWrite, "written"},
	}
	for _, s := range stages {
		if d := timings.Duration(s.stage); d > 0 {
			fmt.Fprintf(out, "%s %.1f ms\n", s.label, toMillis(d))
		}
	}
	if total := timings.Total(); total > 0 {
		fmt.Fprintf(out, "total %.1f ms\n", toMillis(total))
	}
}

func toMillis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
