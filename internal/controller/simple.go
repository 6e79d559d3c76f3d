package controller

import (
	"bytes"
	"fmt"

	m "github.com/mouse-blink/covlight/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// SimpleUI implements UI using cobra Command's output writer.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayBuffer renders the buffer with its current markers.
func (s *SimpleUI) DisplayBuffer(buf *m.Buffer) error {
	s.printf("%s", renderBuffer(buf))

	return nil
}

// DisplayNoCoverage notifies that the report has no entry for source.
func (s *SimpleUI) DisplayNoCoverage(source m.Path) {
	s.printf("no coverage recorded for %s\n", source)
}

// DisplayInteractive falls back to a one-shot render; interactive
// viewing needs a TTY.
func (s *SimpleUI) DisplayInteractive(buf *m.Buffer, _ []m.Region, _ string) error {
	return s.DisplayBuffer(buf)
}

// DisplaySummary prints per-file uncovered counts as a table.
func (s *SimpleUI) DisplaySummary(rows []SummaryRow) error {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Uncovered", "Executable"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_CENTER,
	})

	totalUncovered := 0
	totalExecutable := 0

	for _, row := range rows {
		if !row.Tracked {
			table.Append([]string{row.Source, "-", "-"})
			continue
		}

		table.Append([]string{
			row.Source,
			fmt.Sprintf("%d", row.Uncovered),
			fmt.Sprintf("%d", row.Executable),
		})

		totalUncovered += row.Uncovered
		totalExecutable += row.Executable
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(rows)),
		fmt.Sprintf("%d", totalUncovered),
		fmt.Sprintf("%d", totalExecutable),
	})

	table.Render()
	s.printf("\n%s", tableBuffer.String())

	return nil
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
