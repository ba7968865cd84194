// Package pipeline defines the progress vocabulary the driver reports
// while working through files: which stage a file is in, how far along it
// is, and how long each stage took.
package pipeline

import "time"

// Stage is a high-level phase of processing one file.
type Stage string

const (
	// StageParse covers reading and parsing the input.
	StageParse Stage = "parse"
	// StageCompress covers the tree-shrinking passes.
	StageCompress Stage = "compress"
	// StageMangle covers binding renaming.
	StageMangle Stage = "mangle"
	// StagePrint covers code generation.
	StagePrint Stage = "print"
	// StageWrite covers writing output files.
	StageWrite Stage = "write"
)

// Status is the progress state within a stage.
type Status string

const (
	// StatusQueued means the file is waiting to start.
	StatusQueued Status = "queued"
	// StatusWorking means the file is being processed.
	StatusWorking Status = "working"
	// StatusDone means the file finished cleanly.
	StatusDone Status = "done"
	// StatusError means processing the file failed.
	StatusError Status = "error"
)

// Event reports progress for one file, or for the run as a whole when
// File is empty.
type Event struct {
	File    string
	Stage   Stage
	Status  Status
	Err     error
	Elapsed time.Duration
}

// Sink consumes progress events. Implementations must tolerate concurrent
// calls; the driver reports from its worker goroutines.
type Sink interface {
	OnEvent(Event)
}

// ChannelSink forwards events into a channel.
type ChannelSink struct {
	Ch chan<- Event
}

func (s ChannelSink) OnEvent(evt Event) {
	if s.Ch == nil {
		return
	}
	s.Ch <- evt
}

// NopSink discards events.
type NopSink struct{}

func (NopSink) OnEvent(Event) {}
