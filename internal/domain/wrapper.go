package domain

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// Defaults for the universal dialog wrapper.
const (
	DefaultWrapperCall   = "withUniversalDialog"
	DefaultWrapperImport = "@/components/ui/universal-dialog"
	DefaultAnchorImport  = "@/components/ui/dialog"
	DefaultBaseSuffix    = "Base"
)

var identifierPattern = regexp.MustCompile(`^[A-Za-z_$][A-Za-z0-9_$]*$`)

// WrapperSpec describes the higher-order wrapper being injected.
type WrapperSpec struct {
	// Call is the wrapper function identifier.
	Call string
	// Import is the module the wrapper is imported from.
	Import string
	// Anchor is the module whose import statement anchors the new import.
	Anchor string
	// Suffix is appended to the component name to form the base declaration.
	Suffix string
}

// DefaultWrapperSpec returns the spec for withUniversalDialog.
func DefaultWrapperSpec() WrapperSpec {
	return WrapperSpec{
		Call:   DefaultWrapperCall,
		Import: DefaultWrapperImport,
		Anchor: DefaultAnchorImport,
		Suffix: DefaultBaseSuffix,
	}
}

// Validate checks that every generated fragment is well formed.
func (w WrapperSpec) Validate() error {
	if !identifierPattern.MatchString(w.Call) {
		return fmt.Errorf("wrapper call %q is not an identifier", w.Call)
	}

	if w.Suffix == "" || !identifierPattern.MatchString("X"+w.Suffix) {
		return fmt.Errorf("base suffix %q is not an identifier fragment", w.Suffix)
	}

	for name, value := range map[string]string{"wrapper import": w.Import, "anchor import": w.Anchor} {
		if value == "" || strings.ContainsAny(value, "'\"\r\n") {
			return fmt.Errorf("%s %q is not a valid module specifier", name, value)
		}
	}

	return nil
}

// BaseName returns the renamed, no longer exported component identifier.
func (w WrapperSpec) BaseName(component string) string {
	return component + w.Suffix
}

// CallExpr returns the wrapper invocation; it doubles as the idempotency signature.
func (w WrapperSpec) CallExpr(module m.ModuleTag, component string) string {
	return fmt.Sprintf("%s('%s', %s)", w.Call, module, w.BaseName(component))
}

// ImportLine returns the import statement the wrapper requires.
func (w WrapperSpec) ImportLine() string {
	return fmt.Sprintf("import { %s } from '%s';", w.Call, w.Import)
}

// TailBlock is the generated text appended after the base declaration.
type TailBlock struct {
	Comment   string
	Statement string
	Signature string
}

// NewTailBlock builds the comment and wrapper export for a component.
func NewTailBlock(spec WrapperSpec, component string, module m.ModuleTag) TailBlock {
	signature := spec.CallExpr(module, component)

	return TailBlock{
		Comment:   fmt.Sprintf("// 🎨 Export with automatic mobile support + %s theme", titleModule(module)),
		Statement: fmt.Sprintf("export const %s = %s;", component, signature),
		Signature: signature,
	}
}

// Render returns the block as appended to a file: a blank line, the comment,
// the statement and a final line break, all using nl.
func (b TailBlock) Render(nl string) string {
	return nl + nl + b.Comment + nl + b.Statement + nl
}

// ValidateModuleTag rejects tags that would break the generated literal.
func ValidateModuleTag(module m.ModuleTag) error {
	if strings.TrimSpace(string(module)) == "" {
		return fmt.Errorf("%w: empty", ErrInvalidModuleTag)
	}

	if strings.ContainsAny(string(module), "'\r\n\\") {
		return fmt.Errorf("%w: %q", ErrInvalidModuleTag, module)
	}

	return nil
}

func titleModule(module m.ModuleTag) string {
	return cases.Title(language.Und).String(string(module))
}
