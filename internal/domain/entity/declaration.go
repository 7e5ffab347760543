package entity

import (
	"docaudit/internal/domain/valueobject"
)

// DeclarationKind distinguishes the node kinds the collector walks.
type DeclarationKind string

// Declaration kind constants.
const (
	DeclarationKindFunction  DeclarationKind = "function"
	DeclarationKindParameter DeclarationKind = "parameter"
	DeclarationKindProperty  DeclarationKind = "property"
)

// Declaration is one node of the extracted documentation tree: a
// function, a parameter or a destructured property. Trees are built once
// per signature scan and are immutable afterwards.
//
// Children ordering matches source declaration order, positional for
// parameters and declared order for properties. A node with a structural
// type carries its members as children and no independent rendered-type
// leaf value; a node with a named or primitive type is a leaf.
type Declaration struct {
	Label        string
	Kind         DeclarationKind
	Type         valueobject.TypeKind
	Description  []valueobject.TextFragment
	Children     []*Declaration
	IsRequired   bool
	RenderedType string
	Location     valueobject.SourceLocation

	// AnchorID is the positional identifier used for rendering anchors
	// ($1, $2, ... for parameters, parent-dotted for properties).
	AnchorID string

	// Function-only fields, zero otherwise.
	ReturnType    string
	HasReturnDoc  bool
	DocParamNames []string

	// References counts call sites found by the upstream reference
	// tracker; only meaningful when reference capture was requested.
	References int
}

// HasDescription returns true when comment resolution attached any text.
func (d *Declaration) HasDescription() bool {
	return len(d.Description) > 0
}

// IsFunctionLike returns true for nodes that carry a signature.
func (d *Declaration) IsFunctionLike() bool {
	return d.Kind == DeclarationKindFunction || d.Type == valueobject.TypeKindFunction
}

// ScopedForest is a declaration forest partitioned into named scopes.
// The collector accepts any such partition without caring how each
// partition was produced.
type ScopedForest map[valueobject.Scope][]*Declaration

// Count returns the total number of root declarations across scopes.
func (f ScopedForest) Count() int {
	n := 0
	for _, roots := range f {
		n += len(roots)
	}
	return n
}
