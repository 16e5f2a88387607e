package domain

import (
	"github.com/pmezard/go-difflib/difflib"
)

// diffContext is the number of unchanged lines shown around each hunk.
const diffContext = 3

// UnifiedDiff renders a unified patch between before and after for path.
// It returns an empty string when the texts are equal.
func UnifiedDiff(path, before, after string) string {
	if before == after {
		return ""
	}

	patch, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(before),
		B:        difflib.SplitLines(after),
		FromFile: "a/" + path,
		ToFile:   "b/" + path,
		Context:  diffContext,
	})
	if err != nil {
		return ""
	}

	return patch
}
