package domain

import (
	"fmt"
	"regexp"

	m "hocwrap.dev/pkg/hocwrap/internal/model"
)

// maxAnnotationRun bounds the text scanned between an arrow component's name
// and the `=` that precedes its parameter list.
const maxAnnotationRun = 512

// Reasons attached to unmatched results.
const (
	ReasonNoDeclaration        = "no supported export declaration"
	ReasonMultipleDeclarations = "multiple candidate export declarations"
	ReasonInvalidName          = "component name is not an identifier"
)

// DeclarationMatcher recognizes the exported component declaration of a file.
type DeclarationMatcher interface {
	Match(text string, component string) m.Match
}

type declarationMatcher struct{}

// NewDeclarationMatcher creates a DeclarationMatcher for the arrow-const and
// function export forms.
func NewDeclarationMatcher() DeclarationMatcher {
	return &declarationMatcher{}
}

// Match looks for exactly one `export const <Name> ... = (` or
// `export function <Name>(` anchored at a line start. The arrow form wins
// when present; zero or several candidates yield an Unmatched result.
func (dm *declarationMatcher) Match(text string, component string) m.Match {
	if !identifierPattern.MatchString(component) {
		return unmatched(ReasonInvalidName)
	}

	arrows := findArrowDeclarations(text, component)
	functions := findFunctionDeclarations(text, component)

	switch {
	case len(arrows)+len(functions) == 0:
		return unmatched(ReasonNoDeclaration)
	case len(arrows)+len(functions) > 1:
		return unmatched(ReasonMultipleDeclarations)
	case len(arrows) == 1:
		return m.Match{Kind: m.ArrowConst, Declaration: arrows[0]}
	default:
		return m.Match{Kind: m.Function, Declaration: functions[0]}
	}
}

func unmatched(reason string) m.Match {
	return m.Match{Kind: m.Unmatched, Reason: reason}
}

// arrowPattern anchors `export const <Name>` at a line start. The
// annotations that follow are scanned by scanArrowAnnotations.
func arrowPattern(component string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?m)^export const %s`, regexp.QuoteMeta(component)))
}

func functionPattern(component string) *regexp.Regexp {
	return regexp.MustCompile(fmt.Sprintf(`(?m)^export function %s[ \t]*\(`, regexp.QuoteMeta(component)))
}

func findArrowDeclarations(text, component string) []m.ComponentDeclaration {
	var found []m.ComponentDeclaration

	for _, loc := range arrowPattern(component).FindAllStringIndex(text, -1) {
		rest := text[loc[1]:]
		// `export const FooDialogProps = (` must not match FooDialog.
		if rest != "" && isIdentifierByte(rest[0]) {
			continue
		}

		n, ok := scanArrowAnnotations(rest)
		if !ok {
			continue
		}

		found = append(found, m.ComponentDeclaration{
			Kind:        m.ArrowConst,
			Name:        component,
			Head:        m.Span{Start: loc[0], End: loc[1] + n + 1},
			Annotations: rest[:n],
		})
	}

	return found
}

// scanArrowAnnotations returns the offset of the `(` opening the parameter
// list: the first top-level `=` followed by optional whitespace and `(`.
// Brackets of every kind nest, so `;` and `=` inside an inline prop type are
// part of the annotation. A top-level `;`, any other top-level `=`, an
// unbalanced closer or running past maxAnnotationRun bytes ends the scan.
func scanArrowAnnotations(rest string) (int, bool) {
	depth := 0
	limit := min(len(rest), maxAnnotationRun)

	for i := 0; i < limit; i++ {
		switch rest[i] {
		case '(', '{', '[', '<':
			depth++
		case ')', '}', ']', '>':
			if depth == 0 {
				return 0, false
			}
			depth--
		case ';':
			if depth == 0 {
				return 0, false
			}
		case '=':
			// `=>` of a function type; its `>` is not a closer.
			if i+1 < len(rest) && rest[i+1] == '>' {
				i++
				continue
			}

			if depth > 0 {
				continue
			}

			j := i + 1
			for j < len(rest) && isSpace(rest[j]) {
				j++
			}

			if j < len(rest) && rest[j] == '(' {
				return j, true
			}

			return 0, false
		}
	}

	return 0, false
}

func findFunctionDeclarations(text, component string) []m.ComponentDeclaration {
	var found []m.ComponentDeclaration

	for _, loc := range functionPattern(component).FindAllStringIndex(text, -1) {
		found = append(found, m.ComponentDeclaration{
			Kind: m.Function,
			Name: component,
			Head: m.Span{Start: loc[0], End: loc[1]},
		})
	}

	return found
}

func isSpace(b byte) bool {
	return b == ' ' || b == '\t' || b == '\n' || b == '\r'
}

func isIdentifierByte(b byte) bool {
	return b == '_' || b == '$' ||
		(b >= 'a' && b <= 'z') ||
		(b >= 'A' && b <= 'Z') ||
		(b >= '0' && b <= '9')
}
