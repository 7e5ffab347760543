// Package crosslink resolves named type references to documentation
// link targets from a static map, typically fed from configuration.
package crosslink

import "strings"

// MapResolver implements outbound.CrossLinkResolver over a fixed
// name-to-target map. Lookups trim surrounding whitespace; matching is
// otherwise exact.
type MapResolver struct {
	links map[string]string
}

// NewMapResolver creates a resolver. A nil map resolves nothing.
func NewMapResolver(links map[string]string) *MapResolver {
	return &MapResolver{links: links}
}

// ResolveLink returns the link target for a type name, if registered.
func (r *MapResolver) ResolveLink(typeName string) (string, bool) {
	ref, ok := r.links[strings.TrimSpace(typeName)]
	return ref, ok && ref != ""
}
