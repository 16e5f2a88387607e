package domain

import (
	"strings"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// IdempotencyGuard detects files already converted for a component/module pair.
type IdempotencyGuard interface {
	AlreadyApplied(unit *m.SourceUnit, block TailBlock) bool
}

type idempotencyGuard struct{}

// NewIdempotencyGuard creates a guard that trusts the presence of the
// wrapper call as proof of a previous successful run.
func NewIdempotencyGuard() IdempotencyGuard {
	return &idempotencyGuard{}
}

// AlreadyApplied is a pure containment test on the working text. A missing
// import does not matter once the signature is there.
func (g *idempotencyGuard) AlreadyApplied(unit *m.SourceUnit, block TailBlock) bool {
	return strings.Contains(unit.Working, block.Signature)
}
