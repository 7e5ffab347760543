package valueobject

import "fmt"

// Scope names the partition of a declaration forest a node belongs to.
// Partitions are produced upstream; the collector accepts any of the
// three without caring how each was populated.
type Scope string

// Scope constants.
const (
	ScopeClient Scope = "client"
	ScopeServer Scope = "server"
	ScopeCommon Scope = "common"
)

// validScopes contains all valid scopes.
var validScopes = map[Scope]bool{
	ScopeClient: true,
	ScopeServer: true,
	ScopeCommon: true,
}

// NewScope creates a Scope with validation.
func NewScope(scope string) (Scope, error) {
	s := Scope(scope)
	if !validScopes[s] {
		return "", fmt.Errorf("invalid scope: %s", scope)
	}
	return s, nil
}

// String returns the string representation of the scope.
func (s Scope) String() string {
	return string(s)
}

// AllScopes returns the scopes in traversal order.
func AllScopes() []Scope {
	return []Scope{ScopeClient, ScopeServer, ScopeCommon}
}
