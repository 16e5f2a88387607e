package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

func TestIdempotencyGuard_AlreadyApplied(t *testing.T) {
	guard := NewIdempotencyGuard()
	spec := DefaultWrapperSpec()
	converted := "const FooDialogBase = () => null;\n\nexport const FooDialog = withUniversalDialog('hr', FooDialogBase);\n"

	t.Run("same module", func(t *testing.T) {
		unit := m.NewSourceUnit("FooDialog.tsx", []byte(converted))
		assert.True(t, guard.AlreadyApplied(unit, NewTailBlock(spec, "FooDialog", "hr")))
	})

	t.Run("other module", func(t *testing.T) {
		unit := m.NewSourceUnit("FooDialog.tsx", []byte(converted))
		assert.False(t, guard.AlreadyApplied(unit, NewTailBlock(spec, "FooDialog", "tasks")))
	})

	t.Run("import alone is not enough", func(t *testing.T) {
		text := "import { withUniversalDialog } from '@/components/ui/universal-dialog';\nexport const FooDialog = () => null;\n"
		unit := m.NewSourceUnit("FooDialog.tsx", []byte(text))
		assert.False(t, guard.AlreadyApplied(unit, NewTailBlock(spec, "FooDialog", "hr")))
	})
}
