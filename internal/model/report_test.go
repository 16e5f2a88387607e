package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOutcome_Classification(t *testing.T) {
	tests := []struct {
		outcome Outcome
		name    string
		skip    bool
		failure bool
	}{
		{Modified, "modified", false, false},
		{SkippedAlreadyDone, "already-done", true, false},
		{SkippedUnsupported, "unsupported", true, false},
		{MissingAnchor, "missing-anchor", false, true},
		{Failed, "failed", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.name, tt.outcome.String())
			assert.Equal(t, tt.skip, tt.outcome.IsSkip())
			assert.Equal(t, tt.failure, tt.outcome.IsFailure())

			text, err := tt.outcome.MarshalText()
			require.NoError(t, err)

			var parsed Outcome
			require.NoError(t, parsed.UnmarshalText(text))
			assert.Equal(t, tt.outcome, parsed)
		})
	}
}

func TestOutcome_UnmarshalUnknown(t *testing.T) {
	var o Outcome
	assert.Error(t, o.UnmarshalText([]byte("exploded")))
}

func TestSummary_Success(t *testing.T) {
	unsupported := []FileResult{{Outcome: SkippedUnsupported}}

	assert.True(t, Summary{}.Success())
	assert.True(t, Summary{Modified: 2, Skipped: 1}.Success())
	assert.False(t, Summary{Modified: 2, Failed: 1}.Success())
	assert.True(t, Summary{Skipped: 1, Results: unsupported}.Success())
	assert.False(t, Summary{Skipped: 1, Strict: true, Results: unsupported}.Success())
	assert.True(t, Summary{Skipped: 1, Strict: true, Results: []FileResult{{Outcome: SkippedAlreadyDone}}}.Success())
}
