package controller

import (
	"bytes"
	"context"
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// SimpleUI implements UI by printing to the cobra command's output.
type SimpleUI struct {
	cmd    *cobra.Command
	styled bool
}

// NewSimpleUI creates a new SimpleUI. Styling is applied only when styled is true.
func NewSimpleUI(cmd *cobra.Command, styled bool) *SimpleUI {
	return &SimpleUI{cmd: cmd, styled: styled}
}

// DisplayRunInfo announces the batch about to be processed.
func (s *SimpleUI) DisplayRunInfo(ctx context.Context, targets int, threads int, dryRun bool) {
	if err := ctx.Err(); err != nil {
		return
	}

	mode := "rewriting"
	if dryRun {
		mode = "dry run"
	}

	s.printf("%s %d file(s) with %d worker(s)\n", s.render(styleSummary, mode), targets, max(threads, 1))
}

// DisplayResult prints one line per file and the diff when one was computed.
func (s *SimpleUI) DisplayResult(ctx context.Context, result m.FileResult) {
	if err := ctx.Err(); err != nil {
		return
	}

	line := fmt.Sprintf("%s [%s] %s",
		s.render(styleNoun, string(result.Target.Path)),
		result.Target.Module,
		s.render(outcomeStyle(result.Outcome), result.Outcome.String()),
	)

	if result.Reason != "" {
		line += s.render(styleDim, " ("+result.Reason+")")
	}

	s.printf("%s\n", line)

	if result.Diff != "" {
		s.printf("%s\n", result.Diff)
	}
}

// DisplaySummary renders the per-file table followed by the final counts.
func (s *SimpleUI) DisplaySummary(ctx context.Context, summary m.Summary) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.printf("\n%s", s.renderSummaryTable(summary))

	status := "success"
	statusStyle := outcomeStyle(m.Modified)

	if !summary.Success() {
		status = "failure"
		statusStyle = outcomeStyle(m.Failed)
	}

	s.printf("Done: %d modified, %d skipped, %d errors -> %s\n",
		summary.Modified, summary.Skipped, summary.Failed, s.render(statusStyle, status))

	return nil
}

// DisplayReportPath shows where the report was saved.
func (s *SimpleUI) DisplayReportPath(ctx context.Context, path m.Path) {
	if err := ctx.Err(); err != nil {
		return
	}

	s.printf("Report saved to %s\n", s.render(styleDim, string(path)))
}

func (s *SimpleUI) renderSummaryTable(summary m.Summary) string {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader([]string{"Path", "Module", "Outcome", "Detail"})
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_CENTER,
		tablewriter.ALIGN_LEFT,
		tablewriter.ALIGN_LEFT,
	})

	for _, result := range summary.Results {
		table.Append([]string{
			string(result.Target.Path),
			string(result.Target.Module),
			s.render(outcomeStyle(result.Outcome), result.Outcome.String()),
			result.Reason,
		})
	}

	table.SetFooter([]string{
		fmt.Sprintf("Total Files %d", len(summary.Results)),
		"",
		fmt.Sprintf("%d modified / %d skipped", summary.Modified, summary.Skipped),
		fmt.Sprintf("%d failed", summary.Failed),
	})

	table.Render()

	return tableBuffer.String()
}

func (s *SimpleUI) render(style lipgloss.Style, text string) string {
	if !s.styled {
		return text
	}

	return style.Render(text)
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}
