package cmd

import (
	"github.com/mouse-blink/covlight/internal/domain"
	m "github.com/mouse-blink/covlight/internal/model"
	"github.com/spf13/cobra"
)

var summaryParallelFlag int

// summaryCmd represents the summary command.
var summaryCmd = newSummaryCmd()

func newSummaryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary <files...>",
		Short: "Summarize uncovered line counts per file",
		Long: `Summary resolves coverage for each file and prints a table of
uncovered and executable line counts. Files without an entry in their
report are listed without counts.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			sources := make([]m.Path, 0, len(args))
			for _, arg := range args {
				sources = append(sources, m.Path(arg))
			}

			return workflow.Summary(domain.SummaryArgs{
				Sources: sources,
				Threads: summaryParallelFlag,
				Report:  m.Path(reportFlag),
			})
		},
	}
	cmd.Flags().IntVarP(&summaryParallelFlag, "parallel", "p", 1, "number of parallel workers for resolving files")

	return cmd
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}
