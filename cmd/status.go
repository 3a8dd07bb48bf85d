package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// statusCmd represents the status command.
var statusCmd = newStatusCmd()

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Inspect an existing environment",
		Long: `Report whether the virtual environment, its packages and the directory
layout are in place. Exits non-zero when something is missing.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			args, err := statusArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Status(context.Background(), args)
		},
	}
}

func init() {
	rootCmd.AddCommand(statusCmd)
}
