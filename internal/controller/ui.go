// Package controller provides output adapters for displaying rewrite results.
package controller

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// UI defines how run progress and results are presented.
// Implementations can use different output methods (plain text, styled, etc).
type UI interface {
	DisplayRunInfo(ctx context.Context, targets int, threads int, dryRun bool)
	DisplayResult(ctx context.Context, result m.FileResult)
	DisplaySummary(ctx context.Context, summary m.Summary) error
	DisplayReportPath(ctx context.Context, path m.Path)
}

// NewUI returns the UI for cmd; colours are enabled only for terminals.
func NewUI(cmd *cobra.Command, isTTY bool) UI {
	return NewSimpleUI(cmd, isTTY)
}

// IsTTY reports whether f is attached to a terminal.
func IsTTY(f *os.File) bool {
	if f == nil {
		return false
	}

	return term.IsTerminal(int(f.Fd()))
}
