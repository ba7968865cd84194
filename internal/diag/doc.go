// Package diag carries structured reports about the input source between the
// engine phases and whoever renders or marshals them. A Diagnostic is data,
// not a Go error: a phase that reports diagnostics has still completed.
package diag
