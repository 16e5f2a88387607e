package cmd

import (
	"github.com/spf13/cobra"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "list [PATH=MODULE...]",
		Short:        "Preview the outcome for each target file",
		Long:         listLongDescription,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			batchArgs, err := batchArgsFromConfig(args)
			if err != nil {
				return err
			}

			wf, err := workflowFactory()
			if err != nil {
				return err
			}

			return wf.List(cmd.Context(), batchArgs)
		},
	}

	return cmd
}

func init() {
	rootCmd.AddCommand(listCmd)
}
