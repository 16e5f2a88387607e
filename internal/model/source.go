// Package model defines the data structures shared by the rewrite pipeline.
package model

import (
	"path/filepath"
	"strings"
)

// Path represents a file system path.
type Path string

// Base returns the file name without directories or extension.
func (p Path) Base() string {
	base := filepath.Base(string(p))
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// SourceUnit is a single file travelling through the pipeline.
//
// Original is the snapshot read from disk and is never mutated; Working is
// rewritten in place by each stage. The unit is persisted only when the two
// differ after every stage succeeded.
type SourceUnit struct {
	Path     Path
	Original string
	Working  string
}

// NewSourceUnit creates a unit whose working text starts as a copy of content.
func NewSourceUnit(path Path, content []byte) *SourceUnit {
	text := string(content)

	return &SourceUnit{
		Path:     path,
		Original: text,
		Working:  text,
	}
}

// Changed reports whether the working text differs from the snapshot.
func (s *SourceUnit) Changed() bool {
	return s.Working != s.Original
}

// Newline returns the line terminator used by the original text.
// Files containing any CRLF are treated as CRLF files.
func (s *SourceUnit) Newline() string {
	if strings.Contains(s.Original, "\r\n") {
		return "\r\n"
	}

	return "\n"
}
