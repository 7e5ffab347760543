package valueobject

import "fmt"

// TypeKind classifies the declared type of a declaration for issue
// detection. The classification is supplied by the upstream parser; this
// package only enumerates it.
type TypeKind string

// Type kind constants.
const (
	// TypeKindAny is the dynamic/unchecked escape hatch: explicit any
	// annotations, unconstrained generic defaults and unconstrained
	// index signatures all classify here.
	TypeKindAny TypeKind = "any"
	// TypeKindObject is a structural/anonymous type declared inline as a
	// set of named members.
	TypeKindObject TypeKind = "object"
	// TypeKindPrimitive covers built-in scalar types.
	TypeKindPrimitive TypeKind = "primitive"
	// TypeKindNamed is a reference to a type declared elsewhere.
	TypeKindNamed TypeKind = "named"
	// TypeKindFunction is a function or method signature type.
	TypeKindFunction TypeKind = "function"
	// TypeKindUnknown is used when the parser could not classify.
	TypeKindUnknown TypeKind = "unknown"
)

// validTypeKinds contains all valid type kinds.
var validTypeKinds = map[TypeKind]bool{
	TypeKindAny:       true,
	TypeKindObject:    true,
	TypeKindPrimitive: true,
	TypeKindNamed:     true,
	TypeKindFunction:  true,
	TypeKindUnknown:   true,
}

// NewTypeKind creates a TypeKind with validation. The empty string maps
// to TypeKindUnknown so scan files may omit the field.
func NewTypeKind(kind string) (TypeKind, error) {
	if kind == "" {
		return TypeKindUnknown, nil
	}
	k := TypeKind(kind)
	if !validTypeKinds[k] {
		return "", fmt.Errorf("invalid type kind: %s", kind)
	}
	return k, nil
}

// String returns the string representation of the kind.
func (k TypeKind) String() string {
	return string(k)
}

// IsStructural returns true for inline object-literal types.
func (k TypeKind) IsStructural() bool {
	return k == TypeKindObject
}

// IsAny returns true for the dynamic/unchecked classification.
func (k TypeKind) IsAny() bool {
	return k == TypeKindAny
}
