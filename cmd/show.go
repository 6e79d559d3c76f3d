package cmd

import (
	"github.com/mouse-blink/covlight/internal/domain"
	m "github.com/mouse-blink/covlight/internal/model"
	"github.com/spf13/cobra"
)

// showCmd represents the show command.
var showCmd = newShowCmd()

func newShowCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Show coverage highlighting for a file",
		Long: `Show runs the full pipeline against the file: locate the coverage
report, extract its uncovered lines and render the file with those
lines painted with the highlight color.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Show(domain.ShowArgs{
				Source: m.Path(args[0]),
				Color:  colorFlag,
				Report: m.Path(reportFlag),
			})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(showCmd)
}
