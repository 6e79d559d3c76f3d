// Package cmd provides the root command and CLI setup for covlight.
package cmd

import (
	"os"

	"github.com/mouse-blink/covlight/internal/adapter"
	"github.com/mouse-blink/covlight/internal/controller"
	"github.com/mouse-blink/covlight/internal/domain"
	m "github.com/mouse-blink/covlight/internal/model"
	"github.com/spf13/cobra"
)

var reportLocator adapter.ReportLocator
var reportStore adapter.ReportStore
var bufferFS adapter.BufferFS
var ui controller.UI
var workflow domain.Workflow

func init() {
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	reportLocator = adapter.NewLocalReportLocator()
	reportStore = adapter.NewLocalReportStore()
	bufferFS = adapter.NewLocalBufferFS()
	workflow = domain.NewWorkflow(reportLocator, reportStore, bufferFS, ui)
}

var colorFlag string
var reportFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "covlight [file]",
		Short: "Highlight untested source lines",
		Long: `Covlight renders a source file with its untested lines highlighted,
using coverage data from a .resultset.json report. The report is found
by walking parent directories upward from the file, looking for the
well-known coverage/.resultset.json location.

Running covlight with a file argument is the same as 'covlight show'.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				return c.Help()
			}

			return workflow.Show(domain.ShowArgs{
				Source: m.Path(args[0]),
				Color:  colorFlag,
				Report: m.Path(reportFlag),
			})
		},
	}
	cmd.PersistentFlags().StringVarP(&colorFlag, "color", "c", domain.DefaultHighlightColor, "background color for uncovered lines")
	cmd.PersistentFlags().StringVarP(&reportFlag, "report", "r", "", "explicit report path (skips the upward search)")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
