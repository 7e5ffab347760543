// Package declaration turns parsed signature descriptions into the
// documentation tree the stats collector walks. Structure comes from the
// parsed types; documentation is attached afterwards by path-string
// lookup against the signature's comment-source.
package declaration

import (
	"context"
	"fmt"
	"strconv"

	"docaudit/internal/adapter/outbound/jsdoc"
	"docaudit/internal/application/common/slogger"
	"docaudit/internal/domain/entity"
	"docaudit/internal/domain/valueobject"
	"docaudit/internal/port/outbound"
)

// Builder constructs declaration trees. The cross-link resolver is
// optional; without one, printed type text is used verbatim.
type Builder struct {
	links outbound.CrossLinkResolver
}

// NewBuilder creates a Builder.
func NewBuilder(links outbound.CrossLinkResolver) *Builder {
	return &Builder{links: links}
}

// BuildOptions carries the enclosing context of the signature being
// built.
type BuildOptions struct {
	Plugin string
	Scope  valueobject.Scope
	// ParentAnchor prefixes the positional anchors of the built
	// parameters, empty for top-level signatures.
	ParentAnchor string
}

// Build produces one declaration per parameter, in positional order.
//
// Construction and comment attachment are two independent passes: the
// tree is shaped purely from the parsed types, then every node is
// revisited and its description resolved from the comment-source keyed
// on the node's full path string from the root parameter.
func (b *Builder) Build(
	ctx context.Context,
	params []outbound.ParameterSource,
	opts BuildOptions,
	src outbound.CommentSource,
) []*entity.Declaration {
	nodes := make([]*entity.Declaration, 0, len(params))
	for i, param := range params {
		anchor := "$" + strconv.Itoa(i+1)
		if opts.ParentAnchor != "" {
			anchor = opts.ParentAnchor + "." + anchor
		}

		slogger.Debug(ctx, "Building parameter declaration", slogger.Fields{
			"plugin":    opts.Plugin,
			"scope":     opts.Scope.String(),
			"parameter": param.Name,
			"position":  i,
		})

		node := b.buildParameter(param, anchor)
		b.attachComments(node, []string{param.Name}, src)
		nodes = append(nodes, node)
	}
	return nodes
}

// BuildSignature builds the function-like node enclosing its parameter
// declarations, capturing the comment facts the collector's
// signature-level predicates need.
func (b *Builder) BuildSignature(
	ctx context.Context,
	sig outbound.SignatureSource,
	opts BuildOptions,
) *entity.Declaration {
	children := b.Build(ctx, sig.Parameters, opts, sig.Comment)
	// A parameter is reachable exactly when its signature is, so the
	// signature's reference count carries to every descendant.
	for _, child := range children {
		propagateReferences(child, sig.References)
	}
	return &entity.Declaration{
		Label:         sig.Label,
		Kind:          entity.DeclarationKindFunction,
		Type:          valueobject.TypeKindFunction,
		Description:   jsdoc.DescriptionText(sig.Comment),
		Children:      children,
		IsRequired:    true,
		Location:      sig.Location,
		AnchorID:      sig.Label,
		ReturnType:    sig.ReturnType,
		HasReturnDoc:  jsdoc.HasReturnTag(sig.Comment),
		DocParamNames: jsdoc.ParamTagNames(sig.Comment),
		References:    sig.References,
	}
}

func propagateReferences(node *entity.Declaration, references int) {
	node.References = references
	for _, child := range node.Children {
		propagateReferences(child, references)
	}
}

// buildParameter shapes one parameter node. Anonymous structural types
// recurse into their members; everything else is a leaf.
func (b *Builder) buildParameter(param outbound.ParameterSource, anchor string) *entity.Declaration {
	node := &entity.Declaration{
		Label:    param.Name,
		Kind:     entity.DeclarationKindParameter,
		Type:     param.Type.Kind,
		Location: param.Location,
		AnchorID: anchor,
	}
	if param.Type.Kind.IsStructural() && len(param.Type.Members) > 0 {
		node.IsRequired = !param.Type.Nullable
		for _, member := range param.Type.Members {
			node.Children = append(node.Children, b.buildMember(member, anchor))
		}
		return node
	}
	node.IsRequired = !param.Type.Nullable
	node.RenderedType = b.renderType(param.Type)
	return node
}

// buildMember shapes one member of a structural type, recursing through
// nested anonymous shapes.
func (b *Builder) buildMember(member outbound.MemberSource, parentAnchor string) *entity.Declaration {
	node := &entity.Declaration{
		Label:      member.Name,
		Kind:       entity.DeclarationKindProperty,
		Type:       member.Type.Kind,
		IsRequired: !member.Type.Nullable,
		Location:   member.Location,
		AnchorID:   parentAnchor + "." + member.Name,
	}
	if member.Type.Kind.IsStructural() && len(member.Type.Members) > 0 {
		for _, child := range member.Type.Members {
			node.Children = append(node.Children, b.buildMember(child, node.AnchorID))
		}
		return node
	}
	node.RenderedType = b.renderType(member.Type)
	return node
}

// attachComments is the second pass: resolve the node's description by
// its path string, then extend the path by each child's label and
// repeat. Candidates are generated fresh per node, never shared between
// siblings.
func (b *Builder) attachComments(node *entity.Declaration, path []string, src outbound.CommentSource) {
	if fragments := jsdoc.Resolve(src, valueobject.CandidatePaths(path)); len(fragments) > 0 {
		node.Description = fragments
	}
	for _, child := range node.Children {
		childPath := make([]string, 0, len(path)+1)
		childPath = append(childPath, path...)
		childPath = append(childPath, child.Label)
		b.attachComments(child, childPath, src)
	}
}

// renderType returns the printed type text, turning resolvable named
// references into documentation cross-links.
func (b *Builder) renderType(t outbound.TypeSource) string {
	if b.links != nil && t.Kind == valueobject.TypeKindNamed && t.Text != "" {
		if ref, ok := b.links.ResolveLink(t.Text); ok {
			return fmt.Sprintf("[%s](%s)", t.Text, ref)
		}
	}
	return t.Text
}
