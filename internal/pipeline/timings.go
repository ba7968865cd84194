package pipeline

import "time"

// Timings holds per-stage durations for one run.
type Timings struct {
	stages map[Stage]time.Duration
}

// Add accumulates a duration for the given stage.
func (t *Timings) Add(stage Stage, dur time.Duration) {
	if t == nil {
		return
	}
	if t.stages == nil {
		t.stages = make(map[Stage]time.Duration)
	}
	t.stages[stage] += dur
}

// Duration returns the accumulated duration for stage.
func (t Timings) Duration(stage Stage) time.Duration {
	return t.stages[stage]
}

// Total sums all recorded stages.
func (t Timings) Total() time.Duration {
	var sum time.Duration
	for _, d := range t.stages {
		sum += d
	}
	return sum
}
