// Package domain contains the rewrite pipeline and the batch workflow.
package domain

import (
	"context"
	"fmt"
	"log/slog"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// Transformation is the result of running the pipeline over one unit.
type Transformation struct {
	Outcome m.Outcome
	Match   m.Match
	Reason  string
}

// Transformer runs guard, matcher, injector and rewriter over a single unit.
type Transformer interface {
	Transform(ctx context.Context, unit *m.SourceUnit, module m.ModuleTag) (Transformation, error)
}

type transformer struct {
	spec WrapperSpec
	IdempotencyGuard
	DeclarationMatcher
	ImportInjector
	ExportRewriter
}

// NewTransformer wires the four stages for spec.
func NewTransformer(spec WrapperSpec) Transformer {
	return &transformer{
		spec:               spec,
		IdempotencyGuard:   NewIdempotencyGuard(),
		DeclarationMatcher: NewDeclarationMatcher(),
		ImportInjector:     NewImportInjector(spec),
		ExportRewriter:     NewExportRewriter(spec),
	}
}

// Transform mutates unit.Working. On any error the working text is reset to
// the original so callers can never persist a half-rewritten file.
func (t *transformer) Transform(ctx context.Context, unit *m.SourceUnit, module m.ModuleTag) (Transformation, error) {
	if err := ctx.Err(); err != nil {
		return Transformation{Outcome: m.Failed, Reason: "cancelled"}, err
	}

	if err := ValidateModuleTag(module); err != nil {
		return Transformation{Outcome: m.Failed, Reason: err.Error()}, err
	}

	component := unit.Path.Base()
	block := NewTailBlock(t.spec, component, module)

	if t.AlreadyApplied(unit, block) {
		slog.Debug("wrapper already applied", "path", unit.Path, "signature", block.Signature)

		return Transformation{Outcome: m.SkippedAlreadyDone, Reason: ErrAlreadyTransformed.Error()}, nil
	}

	match := t.Match(unit.Working, component)
	if !match.Matched() {
		slog.Debug("no declaration to rewrite", "path", unit.Path, "component", component, "reason", match.Reason)

		return Transformation{Outcome: m.SkippedUnsupported, Match: match, Reason: match.Reason}, nil
	}

	insertion, err := t.Inject(unit)
	if err != nil {
		unit.Working = unit.Original
		slog.Warn("wrapper import not injected", "path", unit.Path, "error", err)

		return Transformation{Outcome: m.MissingAnchor, Match: match, Reason: err.Error()}, err
	}

	decl := match.Declaration
	if insertion.Length > 0 && insertion.Offset <= decl.Head.Start {
		decl.Head = decl.Head.Shift(insertion.Length)
	}

	if err := t.Rewrite(unit, decl, block); err != nil {
		unit.Working = unit.Original

		return Transformation{Outcome: m.Failed, Match: match, Reason: err.Error()}, fmt.Errorf("rewrite %s: %w", unit.Path, err)
	}

	slog.Debug("rewrote declaration", "path", unit.Path, "kind", decl.Kind, "component", component, "module", module)

	return Transformation{Outcome: m.Modified, Match: match}, nil
}
