package adapter

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// ReportFileName is the name of the run report inside the reports directory.
const ReportFileName = "hocwrap-report.yaml"

// ErrNoReport is returned by LoadReport when no report was saved yet.
var ErrNoReport = errors.New("no report found")

// ReportStore persists the summary of the latest run.
type ReportStore interface {
	SaveReport(ctx context.Context, dir m.Path, summary m.Summary) (m.Path, error)
	LoadReport(ctx context.Context, dir m.Path) (m.Summary, error)
}

// YAMLReportStore stores reports as YAML documents.
type YAMLReportStore struct{}

// NewReportStore creates a YAMLReportStore.
func NewReportStore() *YAMLReportStore {
	return &YAMLReportStore{}
}

// SaveReport writes summary to dir, creating dir when needed, and returns the
// report path.
func (s *YAMLReportStore) SaveReport(ctx context.Context, dir m.Path, summary m.Summary) (m.Path, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return "", fmt.Errorf("create reports dir: %w", err)
	}

	data, err := yaml.Marshal(summary)
	if err != nil {
		return "", fmt.Errorf("encode report: %w", err)
	}

	path := filepath.Join(string(dir), ReportFileName)
	if err := os.WriteFile(path, data, 0o600); err != nil {
		return "", fmt.Errorf("write report: %w", err)
	}

	return m.Path(path), nil
}

// LoadReport reads the report saved in dir.
func (s *YAMLReportStore) LoadReport(ctx context.Context, dir m.Path) (m.Summary, error) {
	if err := ctx.Err(); err != nil {
		return m.Summary{}, err
	}

	path := filepath.Join(string(dir), ReportFileName)

	// #nosec G304 - path is the configured reports directory
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return m.Summary{}, fmt.Errorf("%w in %s", ErrNoReport, dir)
		}

		return m.Summary{}, fmt.Errorf("read report: %w", err)
	}

	var summary m.Summary
	if err := yaml.Unmarshal(data, &summary); err != nil {
		return m.Summary{}, fmt.Errorf("decode report: %w", err)
	}

	return summary, nil
}
