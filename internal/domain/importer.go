package domain

import (
	"fmt"
	"regexp"
	"strings"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// Insertion records where the injector added text. Length is zero when the
// import was already present.
type Insertion struct {
	Offset int
	Length int
}

// ImportInjector guarantees the wrapper import is present exactly once.
type ImportInjector interface {
	Inject(unit *m.SourceUnit) (Insertion, error)
}

type importInjector struct {
	spec    WrapperSpec
	present *regexp.Regexp
	anchor  *regexp.Regexp
}

// NewImportInjector creates an injector placing spec.ImportLine() after the
// first import from spec.Anchor.
func NewImportInjector(spec WrapperSpec) ImportInjector {
	return &importInjector{
		spec: spec,
		present: regexp.MustCompile(fmt.Sprintf(
			`(?m)^import\s[^;]*\b%s\b[^;]*\sfrom\s*['"]%s['"]`,
			regexp.QuoteMeta(spec.Call), regexp.QuoteMeta(spec.Import),
		)),
		anchor: regexp.MustCompile(fmt.Sprintf(
			`(?m)^import\s[^;]*?\sfrom\s*['"]%s['"]`,
			regexp.QuoteMeta(spec.Anchor),
		)),
	}
}

// Inject inserts the wrapper import on its own line right after the line
// that closes the anchor import. The unit is left untouched when the import
// already exists; ErrMissingAnchor is returned when it does not and no anchor
// import is found.
func (ii *importInjector) Inject(unit *m.SourceUnit) (Insertion, error) {
	text := unit.Working

	if ii.present.MatchString(text) {
		return Insertion{}, nil
	}

	loc := ii.anchor.FindStringIndex(text)
	if loc == nil {
		return Insertion{}, fmt.Errorf("%w: no import from '%s'", ErrMissingAnchor, ii.spec.Anchor)
	}

	nl := unit.Newline()

	var (
		offset   int
		inserted string
	)

	if eol := strings.IndexByte(text[loc[1]:], '\n'); eol >= 0 {
		offset = loc[1] + eol + 1
		inserted = ii.spec.ImportLine() + nl
	} else {
		offset = len(text)
		inserted = nl + ii.spec.ImportLine()
	}

	unit.Working = text[:offset] + inserted + text[offset:]

	return Insertion{Offset: offset, Length: len(inserted)}, nil
}
