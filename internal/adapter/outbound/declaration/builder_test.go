package declaration

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docaudit/internal/domain/entity"
	"docaudit/internal/domain/valueobject"
	"docaudit/internal/port/outbound"
)

type stubLinks map[string]string

func (s stubLinks) ResolveLink(typeName string) (string, bool) {
	ref, ok := s[typeName]
	return ref, ok
}

func location(t *testing.T, line int) valueobject.SourceLocation {
	t.Helper()
	loc, err := valueobject.NewSourceLocation("plugins/widgets/api.ts", line)
	require.NoError(t, err)
	return loc
}

func buildOpts() BuildOptions {
	return BuildOptions{Plugin: "widgets", Scope: valueobject.ScopeClient}
}

func TestBuild_LeafParameter(t *testing.T) {
	params := []outbound.ParameterSource{{
		Name:     "count",
		Type:     outbound.TypeSource{Kind: valueobject.TypeKindPrimitive, Text: "number"},
		Location: location(t, 12),
	}}

	nodes := NewBuilder(nil).Build(context.Background(), params, buildOpts(), nil)

	require.Len(t, nodes, 1)
	node := nodes[0]
	assert.Equal(t, "count", node.Label)
	assert.Equal(t, entity.DeclarationKindParameter, node.Kind)
	assert.Equal(t, "number", node.RenderedType)
	assert.True(t, node.IsRequired)
	assert.Empty(t, node.Children)
	assert.False(t, node.HasDescription())
	assert.Equal(t, "$1", node.AnchorID)
}

func TestBuild_NullableParameterIsOptional(t *testing.T) {
	params := []outbound.ParameterSource{{
		Name:     "filter",
		Type:     outbound.TypeSource{Kind: valueobject.TypeKindPrimitive, Text: "string", Nullable: true},
		Location: location(t, 3),
	}}

	nodes := NewBuilder(nil).Build(context.Background(), params, buildOpts(), nil)
	require.Len(t, nodes, 1)
	assert.False(t, nodes[0].IsRequired)
}

func TestBuild_StructuralParameterRecursesIntoMembers(t *testing.T) {
	params := []outbound.ParameterSource{{
		Name: "{ x, y }",
		Type: outbound.TypeSource{
			Kind: valueobject.TypeKindObject,
			Members: []outbound.MemberSource{
				{Name: "x", Type: outbound.TypeSource{Kind: valueobject.TypeKindPrimitive, Text: "number"}, Location: location(t, 5)},
				{Name: "y", Type: outbound.TypeSource{Kind: valueobject.TypeKindPrimitive, Text: "string"}, Location: location(t, 6)},
			},
		},
		Location: location(t, 4),
	}}

	nodes := NewBuilder(nil).Build(context.Background(), params, buildOpts(), nil)

	require.Len(t, nodes, 1)
	node := nodes[0]
	assert.Empty(t, node.RenderedType, "structural nodes carry no independent rendered-type leaf")
	require.Len(t, node.Children, 2)
	assert.Equal(t, "x", node.Children[0].Label)
	assert.Equal(t, "y", node.Children[1].Label)
	assert.Equal(t, entity.DeclarationKindProperty, node.Children[0].Kind)
	assert.Equal(t, "$1.x", node.Children[0].AnchorID)
	assert.Equal(t, "$1.y", node.Children[1].AnchorID)
}

func TestBuild_PositionalAnchors(t *testing.T) {
	params := []outbound.ParameterSource{
		{Name: "a", Type: outbound.TypeSource{Kind: valueobject.TypeKindPrimitive, Text: "number"}, Location: location(t, 1)},
		{Name: "b", Type: outbound.TypeSource{Kind: valueobject.TypeKindPrimitive, Text: "number"}, Location: location(t, 1)},
	}

	nodes := NewBuilder(nil).Build(context.Background(), params, buildOpts(), nil)
	require.Len(t, nodes, 2)
	assert.Equal(t, "$1", nodes[0].AnchorID)
	assert.Equal(t, "$2", nodes[1].AnchorID)
}

func TestBuild_AttachesCommentsBySecondPass(t *testing.T) {
	src := outbound.TagBlockList{Blocks: []outbound.CommentBlock{{
		Tags: []outbound.CommentTag{
			{Kind: outbound.TagKindParam, Name: "opts", Text: "the options"},
			{Kind: outbound.TagKindParam, Name: "opts.limit", Text: "max results"},
		},
	}}}
	params := []outbound.ParameterSource{{
		Name: "opts",
		Type: outbound.TypeSource{
			Kind: valueobject.TypeKindObject,
			Members: []outbound.MemberSource{
				{Name: "limit", Type: outbound.TypeSource{Kind: valueobject.TypeKindPrimitive, Text: "number"}, Location: location(t, 8)},
				{Name: "cursor", Type: outbound.TypeSource{Kind: valueobject.TypeKindPrimitive, Text: "string"}, Location: location(t, 9)},
			},
		},
		Location: location(t, 7),
	}}

	nodes := NewBuilder(nil).Build(context.Background(), params, buildOpts(), src)

	require.Len(t, nodes, 1)
	node := nodes[0]
	require.True(t, node.HasDescription())
	assert.Equal(t, "the options", node.Description[0].Text)

	// The child resolves independently through its dotted path.
	require.True(t, node.Children[0].HasDescription())
	assert.Equal(t, "max results", node.Children[0].Description[0].Text)

	// Undocumented siblings stay unset.
	assert.False(t, node.Children[1].HasDescription())
}

func TestBuild_CrossLinksNamedTypes(t *testing.T) {
	builder := NewBuilder(stubLinks{"WidgetOptions": "widgets/types#WidgetOptions"})
	params := []outbound.ParameterSource{{
		Name:     "options",
		Type:     outbound.TypeSource{Kind: valueobject.TypeKindNamed, Text: "WidgetOptions"},
		Location: location(t, 2),
	}}

	nodes := builder.Build(context.Background(), params, buildOpts(), nil)
	require.Len(t, nodes, 1)
	assert.Equal(t, "[WidgetOptions](widgets/types#WidgetOptions)", nodes[0].RenderedType)
}

func TestBuild_UnresolvableNamedTypeStaysVerbatim(t *testing.T) {
	builder := NewBuilder(stubLinks{})
	params := []outbound.ParameterSource{{
		Name:     "options",
		Type:     outbound.TypeSource{Kind: valueobject.TypeKindNamed, Text: "ExternalThing"},
		Location: location(t, 2),
	}}

	nodes := builder.Build(context.Background(), params, buildOpts(), nil)
	require.Len(t, nodes, 1)
	assert.Equal(t, "ExternalThing", nodes[0].RenderedType)
}

func TestBuildSignature(t *testing.T) {
	src := outbound.TagBlockList{Blocks: []outbound.CommentBlock{{
		Text: "/**\n * Creates a widget.\n * @param name display name\n * @returns the widget\n */",
		Tags: []outbound.CommentTag{
			{Kind: outbound.TagKindParam, Name: "name", Text: "display name"},
			{Kind: outbound.TagKindReturns, Text: "the widget"},
		},
	}}}
	sig := outbound.SignatureSource{
		Label:      "createWidget",
		Location:   location(t, 20),
		ReturnType: "Widget",
		References: 4,
		Comment:    src,
		Parameters: []outbound.ParameterSource{{
			Name:     "name",
			Type:     outbound.TypeSource{Kind: valueobject.TypeKindPrimitive, Text: "string"},
			Location: location(t, 20),
		}},
	}

	node := NewBuilder(nil).BuildSignature(context.Background(), sig, buildOpts())

	assert.Equal(t, "createWidget", node.Label)
	assert.Equal(t, entity.DeclarationKindFunction, node.Kind)
	assert.True(t, node.IsFunctionLike())
	assert.True(t, node.HasReturnDoc)
	assert.Equal(t, []string{"name"}, node.DocParamNames)
	assert.Equal(t, 4, node.References)
	require.True(t, node.HasDescription())
	assert.Equal(t, "Creates a widget.", node.Description[0].Text)

	require.Len(t, node.Children, 1)
	assert.Equal(t, "display name", node.Children[0].Description[0].Text)
	assert.Equal(t, 4, node.Children[0].References, "signature references carry to descendants")
}
