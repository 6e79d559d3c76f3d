package controller

import (
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	m "github.com/mouse-blink/covlight/internal/model"
)

// TUI implements UI using Bubble Tea for interactive display.
type TUI struct {
	output io.Writer
}

// NewTUI creates a new TUI.
func NewTUI(output io.Writer) *TUI {
	return &TUI{output: output}
}

// DisplayBuffer renders the buffer with its current markers.
func (t *TUI) DisplayBuffer(buf *m.Buffer) error {
	_, err := fmt.Fprint(t.output, renderBuffer(buf))

	return err
}

// DisplayNoCoverage notifies that the report has no entry for source.
func (t *TUI) DisplayNoCoverage(source m.Path) {
	_, _ = fmt.Fprintf(t.output, "no coverage recorded for %s\n", source)
}

// DisplayInteractive opens the buffer in a scrollable viewer where
// highlighting can be toggled with h and c.
func (t *TUI) DisplayInteractive(buf *m.Buffer, regions []m.Region, color string) error {
	model := newViewModel(buf, regions, color)

	program := tea.NewProgram(model, tea.WithOutput(t.output), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return err
	}

	return nil
}

// DisplaySummary prints per-file uncovered counts.
func (t *TUI) DisplaySummary(rows []SummaryRow) error {
	for _, row := range rows {
		if !row.Tracked {
			_, _ = fmt.Fprintf(t.output, "%s: no coverage data\n", row.Source)
			continue
		}

		_, _ = fmt.Fprintf(t.output, "%s: %d uncovered of %d executable line(s)\n",
			row.Source, row.Uncovered, row.Executable)
	}

	return nil
}
