package domain

import (
	"fmt"
	"strings"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// ExportRewriter turns the matched export into a base declaration and
// appends the wrapper export.
type ExportRewriter interface {
	Rewrite(unit *m.SourceUnit, decl m.ComponentDeclaration, block TailBlock) error
}

type exportRewriter struct {
	spec WrapperSpec
}

// NewExportRewriter creates a rewriter for spec.
func NewExportRewriter(spec WrapperSpec) ExportRewriter {
	return &exportRewriter{spec: spec}
}

// Rewrite replaces only the declaration head span and appends block after
// the right-trimmed text. Everything past the opening parenthesis of the
// parameter list stays byte-identical.
func (er *exportRewriter) Rewrite(unit *m.SourceUnit, decl m.ComponentDeclaration, block TailBlock) error {
	text := unit.Working

	if decl.Head.Start < 0 || decl.Head.End > len(text) || decl.Head.Len() <= 0 {
		return fmt.Errorf("declaration head %d:%d out of range", decl.Head.Start, decl.Head.End)
	}

	head := text[decl.Head.Start:decl.Head.End]
	if !strings.HasPrefix(head, "export ") || !strings.HasSuffix(head, "(") {
		return fmt.Errorf("declaration head %q does not look like an export", head)
	}

	var replacement string

	switch decl.Kind {
	case m.ArrowConst:
		replacement = "const " + er.spec.BaseName(decl.Name) + decl.Annotations + "("
	case m.Function:
		replacement = "function " + er.spec.BaseName(decl.Name) + "("
	case m.Unmatched:
		return fmt.Errorf("%w: nothing to rewrite", ErrUnsupportedDeclaration)
	default:
		return fmt.Errorf("unknown declaration kind %v", decl.Kind)
	}

	rewritten := text[:decl.Head.Start] + replacement + text[decl.Head.End:]
	unit.Working = strings.TrimRight(rewritten, " \t\r\n") + block.Render(unit.Newline())

	return nil
}
