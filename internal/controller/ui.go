// Package controller provides output controllers for displaying
// highlighted buffers and coverage summaries.
package controller

import (
	m "github.com/mouse-blink/covlight/internal/model"
)

// SummaryRow holds the coverage summary for a single source file.
type SummaryRow struct {
	Source     string
	Uncovered  int
	Executable int
	// Tracked is false when the report carries no entry for the file.
	Tracked bool
}

// UI defines the interface for displaying buffers and summaries.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	// DisplayBuffer renders the buffer with its current marker set.
	DisplayBuffer(buf *m.Buffer) error
	// DisplayNoCoverage notifies that the report has no entry for source.
	DisplayNoCoverage(source m.Path)
	// DisplayInteractive opens the buffer in an interactive viewer where
	// highlighting can be re-applied and cleared.
	DisplayInteractive(buf *m.Buffer, regions []m.Region, color string) error
	// DisplaySummary shows per-file uncovered line counts.
	DisplaySummary(rows []SummaryRow) error
}
