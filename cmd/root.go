// Package cmd provides the root command and CLI setup for hocwrap.
package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"hocwrap.dev/pkg/hocwrap/internal/adapter"
	"hocwrap.dev/pkg/hocwrap/internal/controller"
	"hocwrap.dev/pkg/hocwrap/internal/domain"
	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

var fsAdapter adapter.SourceFSAdapter
var reportStore adapter.ReportStore
var ui controller.UI

// reportsOutputDirFlag is a root-level flag shared by commands that read/write reports.
var reportsOutputDirFlag string

// rootDirFlag is the directory target paths are resolved against.
var rootDirFlag string

// verboseFlag switches the log file to debug level.
var verboseFlag bool

// workflowFactory builds the workflow a command runs against.
var workflowFactory = newWorkflow

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalSourceFSAdapter()
	reportStore = adapter.NewReportStore()
}

const targetsHelp = `Targets come from the "targets" list of hocwrap.yaml:

  targets:
    - path: src/components/hr/CreateEvaluationDialog.tsx
      module: hr

or from PATH=MODULE arguments, which replace the configured list.`

const rootLongDescription = `Hocwrap wraps exported UI components with a higher-order component.

For every target file it renames the exported component to <Name>Base,
imports the wrapper next to the dialog primitives import and appends

  export const <Name> = withUniversalDialog('<module>', <Name>Base);

Files already converted are left untouched.

` + targetsHelp

const runLongDescription = `Rewrite the configured target files.

` + targetsHelp

const listLongDescription = `Show what a run would do without writing any file.

` + targetsHelp

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "hocwrap",
		Short: "Wrap exported components with a higher-order component",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetString(logFilenameKey), viper.GetBool(logVerboseKey))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&reportsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for run reports (empty disables reports)",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringVarP(&rootDirFlag, rootFlagName, "C", viper.GetString(rootConfigKey), "directory target paths are resolved against")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(rootFlagName), rootConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", viper.GetBool(logVerboseKey), "write debug logs")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), logVerboseKey)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)

	err := rootCmd.ExecuteContext(ctx)

	stop()

	if err != nil {
		os.Exit(1)
	}
}

// newWorkflow builds the workflow from the current configuration.
func newWorkflow() (domain.Workflow, error) {
	spec := wrapperSpecFromConfig()
	if err := spec.Validate(); err != nil {
		return nil, fmt.Errorf("invalid wrapper configuration: %w", err)
	}

	runner := domain.NewBatchRunner(fsAdapter, domain.NewTransformer(spec))

	return domain.NewWorkflow(reportStore, ui, runner), nil
}

// parseTargets turns PATH=MODULE arguments into targets. The last '=' splits
// the pair so paths may contain '='.
func parseTargets(args []string) ([]m.Target, error) {
	targets := make([]m.Target, 0, len(args))

	for _, arg := range args {
		idx := strings.LastIndex(arg, "=")
		if idx <= 0 || idx == len(arg)-1 {
			return nil, fmt.Errorf("invalid target %q: expected PATH=MODULE", arg)
		}

		targets = append(targets, m.Target{
			Path:   m.Path(arg[:idx]),
			Module: m.ModuleTag(arg[idx+1:]),
		})
	}

	return targets, nil
}

// resolveTargets returns the positional targets when given, else the
// configured list.
func resolveTargets(args []string) ([]m.Target, error) {
	if len(args) > 0 {
		return parseTargets(args)
	}

	var targets []m.Target
	if err := viper.UnmarshalKey(targetsConfigKey, &targets); err != nil {
		return nil, fmt.Errorf("read %s from config: %w", targetsConfigKey, err)
	}

	if len(targets) == 0 {
		return nil, fmt.Errorf("no targets: pass PATH=MODULE arguments or configure %q in %s", targetsConfigKey, configFileName)
	}

	return targets, nil
}

func batchArgsFromConfig(args []string) (domain.BatchArgs, error) {
	targets, err := resolveTargets(args)
	if err != nil {
		return domain.BatchArgs{}, err
	}

	return domain.BatchArgs{
		Root:    m.Path(viper.GetString(rootConfigKey)),
		Targets: targets,
		Threads: viper.GetInt(runParallelConfigKey),
		DryRun:  viper.GetBool(runDryRunConfigKey),
		Strict:  viper.GetBool(runStrictConfigKey),
		Diff:    viper.GetBool(runDiffConfigKey),
	}, nil
}
