package outbound

import "docaudit/internal/domain/valueobject"

// Parsed-signature model supplied by the external parsing collaborator.
// Source parsing and type inference happen upstream; these structs are
// the hand-off format.

// TypeSource describes a parameter's or member's declared type.
type TypeSource struct {
	// Kind is the parser's classification (any, object, primitive,
	// named, function, unknown).
	Kind valueobject.TypeKind
	// Text is the printed type text, empty for anonymous structural
	// types whose shape lives in Members.
	Text string
	// Nullable reports whether the declared type admits null/undefined.
	Nullable bool
	// Members holds the named members of an anonymous structural type,
	// in declared order.
	Members []MemberSource
}

// MemberSource is one named member of an anonymous structural type.
type MemberSource struct {
	Name     string
	Type     TypeSource
	Location valueobject.SourceLocation
}

// ParameterSource is one positional parameter of a signature. Name keeps
// the raw declared text, braces and all, so candidate-path generation
// can clean it under its own rules.
type ParameterSource struct {
	Name     string
	Type     TypeSource
	Location valueobject.SourceLocation
}

// SignatureSource is one function-like declaration handed over for
// declaration building.
type SignatureSource struct {
	Label      string
	Location   valueobject.SourceLocation
	Parameters []ParameterSource
	ReturnType string
	References int
	Comment    CommentSource
}

// CrossLinkResolver resolves a named type reference to a documentation
// cross-link target. Implementations return ok=false when the name does
// not resolve; the printed type text is then used verbatim.
type CrossLinkResolver interface {
	ResolveLink(typeName string) (ref string, ok bool)
}
