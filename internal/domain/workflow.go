package domain

import (
	"context"
	"fmt"
	"log/slog"

	"hocwrap.dev/pkg/hocwrap/internal/adapter"
	"hocwrap.dev/pkg/hocwrap/internal/controller"
	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// RunArgs contains the arguments for a rewrite run.
type RunArgs struct {
	BatchArgs
	Reports m.Path
}

// ViewArgs contains the arguments for viewing the last saved report.
type ViewArgs struct {
	Reports m.Path
}

// Workflow is the entry point used by the CLI commands.
type Workflow interface {
	Run(ctx context.Context, args RunArgs) error
	List(ctx context.Context, args BatchArgs) error
	View(ctx context.Context, args ViewArgs) error
}

type workflow struct {
	adapter.ReportStore
	controller.UI
	BatchRunner
}

// NewWorkflow creates a new Workflow instance with the provided dependencies.
func NewWorkflow(
	reportStore adapter.ReportStore,
	ui controller.UI,
	runner BatchRunner,
) Workflow {
	return &workflow{
		ReportStore: reportStore,
		UI:          ui,
		BatchRunner: runner,
	}
}

// Run rewrites every target, prints the outcome of each file and the final
// counts, and saves the report when a reports directory is configured.
// It returns ErrRunFailed when the summary is not successful.
func (w *workflow) Run(ctx context.Context, args RunArgs) error {
	w.DisplayRunInfo(ctx, len(args.Targets), args.Threads, args.DryRun)

	summary := w.Process(ctx, args.BatchArgs)

	if err := w.display(ctx, summary); err != nil {
		return err
	}

	if args.Reports != "" {
		path, err := w.SaveReport(ctx, args.Reports, summary)
		if err != nil {
			slog.Error("Failed to save report", "dir", args.Reports, "error", err)
			return fmt.Errorf("save report: %w", err)
		}

		w.DisplayReportPath(ctx, path)
	}

	return summaryError(summary)
}

// List previews a run: nothing is written and no report is saved.
func (w *workflow) List(ctx context.Context, args BatchArgs) error {
	args.DryRun = true

	w.DisplayRunInfo(ctx, len(args.Targets), args.Threads, true)

	summary := w.Process(ctx, args)

	if err := w.display(ctx, summary); err != nil {
		return err
	}

	return summaryError(summary)
}

// View prints the report saved by the last run.
func (w *workflow) View(ctx context.Context, args ViewArgs) error {
	summary, err := w.LoadReport(ctx, args.Reports)
	if err != nil {
		slog.Error("Failed to load report", "dir", args.Reports, "error", err)
		return fmt.Errorf("load report: %w", err)
	}

	return w.DisplaySummary(ctx, summary)
}

func (w *workflow) display(ctx context.Context, summary m.Summary) error {
	for _, result := range summary.Results {
		w.DisplayResult(ctx, result)
	}

	if err := w.DisplaySummary(ctx, summary); err != nil {
		return fmt.Errorf("display: %w", err)
	}

	return nil
}

func summaryError(summary m.Summary) error {
	if summary.Success() {
		return nil
	}

	return fmt.Errorf("%w: %d modified, %d skipped, %d failed",
		ErrRunFailed, summary.Modified, summary.Skipped, summary.Failed)
}
