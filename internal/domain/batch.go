package domain

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"golang.org/x/sync/errgroup"

	"hocwrap.dev/pkg/hocwrap/internal/adapter"
	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// BatchArgs contains the arguments for processing a batch of targets.
type BatchArgs struct {
	Root    m.Path
	Targets []m.Target
	Threads int
	DryRun  bool
	Strict  bool
	Diff    bool
}

// BatchRunner applies the pipeline to every configured target.
type BatchRunner interface {
	Process(ctx context.Context, args BatchArgs) m.Summary
}

type batchRunner struct {
	adapter.SourceFSAdapter
	Transformer
}

// NewBatchRunner creates a BatchRunner backed by the provided filesystem
// adapter and per-file transformer.
func NewBatchRunner(fsAdapter adapter.SourceFSAdapter, transformer Transformer) BatchRunner {
	return &batchRunner{
		SourceFSAdapter: fsAdapter,
		Transformer:     transformer,
	}
}

// Process runs every target through the pipeline with at most args.Threads
// files in flight. Results keep configuration order; counters are updated
// once per target whatever its outcome. Targets resolving to an already
// scheduled path fail with ErrDuplicateTarget without being read.
func (br *batchRunner) Process(ctx context.Context, args BatchArgs) m.Summary {
	started := time.Now()
	results := make([]m.FileResult, len(args.Targets))

	var modified, skipped, failed atomic.Int64

	threads := args.Threads
	if threads <= 0 {
		threads = 1
	}

	var group errgroup.Group
	group.SetLimit(threads)

	seen := make(map[m.Path]int, len(args.Targets))

	for i, target := range args.Targets {
		path := br.ResolvePath(ctx, args.Root, target.Path)

		// Each file is read and written by at most one target.
		if first, ok := seen[path]; ok {
			slog.Error("Duplicate target", "path", path, "first", args.Targets[first].Path)
			results[i] = fail(m.FileResult{Target: target}, "duplicate target",
				fmt.Errorf("%w: %s", ErrDuplicateTarget, path))
			failed.Add(1)

			continue
		}

		seen[path] = i

		group.Go(func() error {
			result := br.processTarget(ctx, args, target, path)

			switch {
			case result.Outcome == m.Modified:
				modified.Add(1)
			case result.Outcome.IsSkip():
				skipped.Add(1)
			default:
				failed.Add(1)
			}

			results[i] = result

			return nil
		})
	}

	_ = group.Wait()

	summary := m.Summary{
		StartedAt: started,
		Duration:  time.Since(started).Round(time.Millisecond).String(),
		DryRun:    args.DryRun,
		Strict:    args.Strict,
		Modified:  int(modified.Load()),
		Skipped:   int(skipped.Load()),
		Failed:    int(failed.Load()),
		Results:   results,
	}

	slog.Info("Batch finished",
		"targets", len(args.Targets),
		"modified", summary.Modified,
		"skipped", summary.Skipped,
		"failed", summary.Failed,
		"dryRun", args.DryRun,
	)

	return summary
}

func (br *batchRunner) processTarget(ctx context.Context, args BatchArgs, target m.Target, path m.Path) m.FileResult {
	result := m.FileResult{Target: target}

	if err := ctx.Err(); err != nil {
		return fail(result, "cancelled", err)
	}

	info, err := br.FileInfo(ctx, path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			slog.Error("Target not found", "path", path)
			return fail(result, "not found", fmt.Errorf("%s: %w", path, ErrNotFound))
		}

		slog.Error("Failed to stat target", "path", path, "error", err)

		return fail(result, err.Error(), fmt.Errorf("%w: stat %s: %w", ErrIO, path, err))
	}

	if !info.Mode().IsRegular() {
		return fail(result, "not a regular file", fmt.Errorf("%w: %s is not a regular file", ErrIO, path))
	}

	content, err := br.ReadFile(ctx, path)
	if err != nil {
		slog.Error("Failed to read target", "path", path, "error", err)
		return fail(result, err.Error(), fmt.Errorf("%w: read %s: %w", ErrIO, path, err))
	}

	unit := m.NewSourceUnit(path, content)

	transformation, err := br.Transform(ctx, unit, target.Module)
	result.Outcome = transformation.Outcome
	result.Reason = transformation.Reason
	result.Err = err

	if transformation.Match.Matched() {
		result.Kind = transformation.Match.Kind.String()
	}

	if err != nil || !unit.Changed() {
		return br.withHash(ctx, result, path)
	}

	if args.Diff || args.DryRun {
		result.Diff = UnifiedDiff(string(target.Path), unit.Original, unit.Working)
	}

	if args.DryRun {
		slog.Info("Would modify target", "path", path, "kind", result.Kind)
		return result
	}

	if err := br.WriteFile(ctx, path, []byte(unit.Working), info.Mode().Perm()); err != nil {
		slog.Error("Failed to write target", "path", path, "error", err)
		return fail(result, err.Error(), fmt.Errorf("%w: write %s: %w", ErrIO, path, err))
	}

	slog.Info("Modified target", "path", path, "kind", result.Kind, "module", target.Module)

	return br.withHash(ctx, result, path)
}

func (br *batchRunner) withHash(ctx context.Context, result m.FileResult, path m.Path) m.FileResult {
	hash, err := br.HashFile(ctx, path)
	if err != nil {
		slog.Warn("Failed to hash target", "path", path, "error", err)
		return result
	}

	result.Hash = hash

	return result
}

func fail(result m.FileResult, reason string, err error) m.FileResult {
	result.Outcome = m.Failed
	result.Reason = reason
	result.Err = err

	return result
}
