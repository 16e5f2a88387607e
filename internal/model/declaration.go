package model

// DeclarationKind is the recognized shape of an exported component.
type DeclarationKind int

const (
	// Unmatched means no supported declaration could be identified.
	Unmatched DeclarationKind = iota
	// ArrowConst is `export const Name<annotations> = (`.
	ArrowConst
	// Function is `export function Name(`.
	Function
)

func (k DeclarationKind) String() string {
	switch k {
	case ArrowConst:
		return "arrow-const"
	case Function:
		return "function"
	case Unmatched:
		return "unmatched"
	default:
		return "unknown"
	}
}

// Span is a half-open byte range [Start, End) into a text.
type Span struct {
	Start int
	End   int
}

// Len returns the number of bytes covered by the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Shift moves the span by delta bytes.
func (s Span) Shift(delta int) Span {
	return Span{Start: s.Start + delta, End: s.End + delta}
}

// ComponentDeclaration describes the exported declaration head to rewrite.
//
// Head covers `export const Name ... = (` or `export function Name(`, always
// ending with the opening parenthesis and never reaching into the body.
// Annotations holds the text between the name and the opening parenthesis
// for ArrowConst matches (type annotation, generics, `=` and whitespace).
type ComponentDeclaration struct {
	Kind        DeclarationKind
	Name        string
	Head        Span
	Annotations string
}

// Match is the tagged result of recognizing a declaration. When Kind is
// Unmatched, Reason explains why and Declaration is the zero value.
type Match struct {
	Kind        DeclarationKind
	Declaration ComponentDeclaration
	Reason      string
}

// Matched reports whether a supported declaration was found.
func (m Match) Matched() bool {
	return m.Kind != Unmatched
}
