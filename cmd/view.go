package cmd

import (
	"github.com/mouse-blink/covlight/internal/domain"
	m "github.com/mouse-blink/covlight/internal/model"
	"github.com/spf13/cobra"
)

// viewCmd represents the view command.
var viewCmd = newViewCmd()

func newViewCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "view <file>",
		Short: "Open a file in the interactive coverage viewer",
		Long: `View opens the file in a scrollable viewer with uncovered lines
highlighted. Press h to re-apply highlighting, c to clear it and q to quit.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.View(domain.ViewArgs{
				Source: m.Path(args[0]),
				Color:  colorFlag,
				Report: m.Path(reportFlag),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(viewCmd)
}
