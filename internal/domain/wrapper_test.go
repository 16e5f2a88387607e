package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

func TestWrapperSpec_Validate(t *testing.T) {
	require.NoError(t, DefaultWrapperSpec().Validate())

	tests := []struct {
		name   string
		mutate func(*WrapperSpec)
	}{
		{"empty call", func(s *WrapperSpec) { s.Call = "" }},
		{"call with dot", func(s *WrapperSpec) { s.Call = "ui.withDialog" }},
		{"empty suffix", func(s *WrapperSpec) { s.Suffix = "" }},
		{"suffix with dash", func(s *WrapperSpec) { s.Suffix = "-base" }},
		{"empty import", func(s *WrapperSpec) { s.Import = "" }},
		{"quoted anchor", func(s *WrapperSpec) { s.Anchor = "@/ui'dialog" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spec := DefaultWrapperSpec()
			tt.mutate(&spec)
			assert.Error(t, spec.Validate())
		})
	}
}

func TestWrapperSpec_Fragments(t *testing.T) {
	spec := DefaultWrapperSpec()

	assert.Equal(t, "FooDialogBase", spec.BaseName("FooDialog"))
	assert.Equal(t, "withUniversalDialog('hr', FooDialogBase)", spec.CallExpr("hr", "FooDialog"))
	assert.Equal(t, "import { withUniversalDialog } from '@/components/ui/universal-dialog';", spec.ImportLine())
}

func TestTailBlock(t *testing.T) {
	block := NewTailBlock(DefaultWrapperSpec(), "FooDialog", "hr")

	assert.Equal(t, "// 🎨 Export with automatic mobile support + Hr theme", block.Comment)
	assert.Equal(t, "export const FooDialog = withUniversalDialog('hr', FooDialogBase);", block.Statement)
	assert.Contains(t, block.Statement, block.Signature)

	assert.Equal(t, "\n\n"+block.Comment+"\n"+block.Statement+"\n", block.Render("\n"))
	assert.Equal(t, "\r\n\r\n"+block.Comment+"\r\n"+block.Statement+"\r\n", block.Render("\r\n"))
}

func TestValidateModuleTag(t *testing.T) {
	for _, tag := range []m.ModuleTag{"hr", "tasks", "finance-ops", "module 2"} {
		assert.NoError(t, ValidateModuleTag(tag), "tag %q", tag)
	}

	for _, tag := range []m.ModuleTag{"", " \t", "o'clock", "line\nbreak", "back\\slash"} {
		assert.ErrorIs(t, ValidateModuleTag(tag), ErrInvalidModuleTag, "tag %q", tag)
	}
}
