package cmd

import (
	"github.com/mouse-blink/covlight/internal/domain"
	m "github.com/mouse-blink/covlight/internal/model"
	"github.com/spf13/cobra"
)

// clearCmd represents the clear command.
var clearCmd = newClearCmd()

func newClearCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "clear <file>",
		Short: "Show a file with all coverage highlighting removed",
		Long:  "Clear removes every coverage marker from the buffer and renders it plain.",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Clear(domain.ClearArgs{Source: m.Path(args[0])})
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(clearCmd)
}
