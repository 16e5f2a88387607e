package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"hocwrap.dev/pkg/hocwrap/internal/domain"
	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

var runParallelFlag int
var runDryRunFlag bool
var runStrictFlag bool
var runDiffFlag bool

// runCmd represents the run command.
var runCmd = newRunCmd()

func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "run [PATH=MODULE...]",
		Short:        "Wrap the exported component of each target file",
		Long:         runLongDescription,
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

			return wf.Run(cmd.Context(), domain.RunArgs{
				BatchArgs: batchArgs,
				Reports:   m.Path(viper.GetString(outputFlagName)),
			})
		},
	}

	configureRunFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func configureRunFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&runParallelFlag, runParallelFlagName, "p", viper.GetInt(runParallelConfigKey), "number of files processed in parallel")
	bindFlagToConfig(cmd.Flags().Lookup(runParallelFlagName), runParallelConfigKey)

	cmd.Flags().BoolVarP(&runDryRunFlag, runDryRunFlagName, "n", viper.GetBool(runDryRunConfigKey), "compute changes without writing files")
	bindFlagToConfig(cmd.Flags().Lookup(runDryRunFlagName), runDryRunConfigKey)

	cmd.Flags().BoolVar(&runStrictFlag, runStrictFlagName, viper.GetBool(runStrictConfigKey), "treat unsupported files as failures")
	bindFlagToConfig(cmd.Flags().Lookup(runStrictFlagName), runStrictConfigKey)

	cmd.Flags().BoolVarP(&runDiffFlag, runDiffFlagName, "d", viper.GetBool(runDiffConfigKey), "print a unified diff for each modified file")
	bindFlagToConfig(cmd.Flags().Lookup(runDiffFlagName), runDiffConfigKey)
}
