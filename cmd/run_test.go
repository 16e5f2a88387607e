package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"hocwrap.dev/pkg/hocwrap/internal/domain"
	domainmocks "hocwrap.dev/pkg/hocwrap/internal/domain/mocks"
	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

func stubWorkflow(t *testing.T, wf domain.Workflow) {
	t.Helper()

	original := workflowFactory
	workflowFactory = func() (domain.Workflow, error) { return wf, nil }
	t.Cleanup(func() { workflowFactory = original })
}

func newTestRootCmd(sub *cobra.Command) *cobra.Command {
	cmd := newRootCmd()
	configureRootFlags(cmd)
	cmd.AddCommand(sub)
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	return cmd
}

func TestRunCmd_DefaultFlags(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	cmd := newTestRootCmd(newRunCmd())

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Threads == 1 &&
			!args.DryRun &&
			!args.Strict &&
			!args.Diff &&
			args.Root == m.Path(".") &&
			args.Reports == m.Path(".hocwrap-reports") &&
			len(args.Targets) == 1 &&
			args.Targets[0] == m.Target{Path: "src/FooDialog.tsx", Module: "hr"}
	})).Return(nil)

	cmd.SetArgs([]string{"run", "src/FooDialog.tsx=hr"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_FlagsArePassedThrough(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	cmd := newTestRootCmd(newRunCmd())

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return args.Threads == 2 &&
			args.DryRun &&
			args.Strict &&
			args.Diff &&
			args.Root == m.Path("web") &&
			args.Reports == m.Path("./reports-dir")
	})).Return(nil)

	cmd.SetArgs([]string{
		"run", "--parallel", "2", "--dry-run", "--strict", "--diff",
		"-C", "web", "-o", "./reports-dir",
		"src/FooDialog.tsx=hr",
	})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_MultipleTargets(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	cmd := newTestRootCmd(newRunCmd())

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Targets) == 3 &&
			args.Targets[0] == m.Target{Path: "a/FooDialog.tsx", Module: "hr"} &&
			args.Targets[1] == m.Target{Path: "b/BarDialog.tsx", Module: "finance"} &&
			args.Targets[2] == m.Target{Path: "c/x=y.tsx", Module: "ops"}
	})).Return(nil)

	cmd.SetArgs([]string{"run", "a/FooDialog.tsx=hr", "b/BarDialog.tsx=finance", "c/x=y.tsx=ops"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_UsesConfiguredTargets(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	viper.Set(targetsConfigKey, []map[string]string{
		{"path": "src/components/hr/CreateEvaluationDialog.tsx", "module": "hr"},
	})
	t.Cleanup(func() { viper.Set(targetsConfigKey, []map[string]string{}) })

	cmd := newTestRootCmd(newRunCmd())

	mockWorkflow.On("Run", mock.Anything, mock.MatchedBy(func(args domain.RunArgs) bool {
		return len(args.Targets) == 1 &&
			args.Targets[0].Path == m.Path("src/components/hr/CreateEvaluationDialog.tsx") &&
			args.Targets[0].Module == m.ModuleTag("hr")
	})).Return(nil)

	cmd.SetArgs([]string{"run"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestRunCmd_NoTargets(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	cmd := newTestRootCmd(newRunCmd())

	cmd.SetArgs([]string{"run"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no targets")
}

func TestRunCmd_InvalidTarget(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	cmd := newTestRootCmd(newRunCmd())

	cmd.SetArgs([]string{"run", "src/FooDialog.tsx"})
	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected PATH=MODULE")
}

func TestRunCmd_WorkflowErrorIsReturned(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)
	stubWorkflow(t, mockWorkflow)

	cmd := newTestRootCmd(newRunCmd())

	mockWorkflow.EXPECT().Run(mock.Anything, mock.Anything).Return(domain.ErrRunFailed)

	cmd.SetArgs([]string{"run", "src/FooDialog.tsx=hr"})
	err := cmd.Execute()
	require.ErrorIs(t, err, domain.ErrRunFailed)
}

func TestNewRunCmd(t *testing.T) {
	cmd := newRunCmd()

	assert.Equal(t, "run [PATH=MODULE...]", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.Equal(t, runLongDescription, cmd.Long)

	for name, shorthand := range map[string]string{
		runParallelFlagName: "p",
		runDryRunFlagName:   "n",
		runStrictFlagName:   "",
		runDiffFlagName:     "d",
	} {
		flag := cmd.Flags().Lookup(name)
		require.NotNil(t, flag, name)
		assert.Equal(t, shorthand, flag.Shorthand, name)
	}
}
