package cmd

import (
	"context"

	"github.com/spf13/cobra"
)

// planCmd represents the plan command.
var planCmd = newPlanCmd()

func newPlanCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Show the provisioning steps and packages without running them",
		Long: `Print the ordered provisioning steps and the packages that would be installed
after the GPU policy is applied. Nothing is created or downloaded.`,
		Args: cobra.NoArgs,
		RunE: func(_ *cobra.Command, _ []string) error {
			args, err := provisionArgsFromConfig()
			if err != nil {
				return err
			}

			return workflow.Plan(context.Background(), args)
		},
	}
}

func init() {
	rootCmd.AddCommand(planCmd)
}
