package model

import (
	"fmt"
	"time"
)

// Outcome is the per-file result of a run.
type Outcome int

const (
	// Modified indicates the file was rewritten (or would be, in a dry run).
	Modified Outcome = iota
	// SkippedAlreadyDone indicates the wrapper call was already present.
	SkippedAlreadyDone
	// SkippedUnsupported indicates no single supported declaration was found.
	SkippedUnsupported
	// MissingAnchor indicates the wrapper import could not be placed.
	MissingAnchor
	// Failed indicates the file could not be processed.
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Modified:
		return "modified"
	case SkippedAlreadyDone:
		return "already-done"
	case SkippedUnsupported:
		return "unsupported"
	case MissingAnchor:
		return "missing-anchor"
	case Failed:
		return "failed"
	default:
		return "unknown"
	}
}

// IsSkip reports whether the outcome is counted in the skipped counter.
func (o Outcome) IsSkip() bool {
	return o == SkippedAlreadyDone || o == SkippedUnsupported
}

// IsFailure reports whether the outcome is counted in the failed counter.
func (o Outcome) IsFailure() bool {
	return o == MissingAnchor || o == Failed
}

// MarshalText renders the outcome by name in reports.
func (o Outcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// UnmarshalText parses a name produced by MarshalText.
func (o *Outcome) UnmarshalText(text []byte) error {
	for candidate := Modified; candidate <= Failed; candidate++ {
		if candidate.String() == string(text) {
			*o = candidate
			return nil
		}
	}

	return fmt.Errorf("unknown outcome %q", text)
}

// FileResult is the recorded outcome for one target.
type FileResult struct {
	Target  Target  `yaml:"target"`
	Outcome Outcome `yaml:"outcome"`
	Reason  string  `yaml:"reason,omitempty"`
	Kind    string  `yaml:"kind,omitempty"`
	Hash    string  `yaml:"hash,omitempty"`
	Diff    string  `yaml:"-"`
	Err     error   `yaml:"-"`
}

// Summary aggregates the outcomes of a batch run.
type Summary struct {
	StartedAt time.Time    `yaml:"started_at"`
	Duration  string       `yaml:"duration"`
	DryRun    bool         `yaml:"dry_run"`
	Strict    bool         `yaml:"strict"`
	Modified  int          `yaml:"modified"`
	Skipped   int          `yaml:"skipped"`
	Failed    int          `yaml:"failed"`
	Results   []FileResult `yaml:"results"`
}

// Success reports the process-level outcome: no failures, and in strict mode
// no unsupported files either.
func (s Summary) Success() bool {
	if s.Failed > 0 {
		return false
	}

	if !s.Strict {
		return true
	}

	for _, result := range s.Results {
		if result.Outcome == SkippedUnsupported {
			return false
		}
	}

	return true
}
