package jsdoc

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"docaudit/internal/port/outbound"
)

func TestHasReturnTag(t *testing.T) {
	tests := []struct {
		name     string
		src      outbound.CommentSource
		expected bool
	}{
		{
			name: "structured returns tag",
			src: tagList(outbound.CommentTag{
				Kind: outbound.TagKindReturns, Text: "the created widget",
			}),
			expected: true,
		},
		{
			name: "empty returns tag",
			src: tagList(outbound.CommentTag{
				Kind: outbound.TagKindReturns, Text: "  ",
			}),
			expected: false,
		},
		{
			name: "raw returns line",
			src: outbound.TagBlockList{Blocks: []outbound.CommentBlock{{
				Text: " * @returns the widget",
			}}},
			expected: true,
		},
		{
			name:     "raw node return line",
			src:      outbound.RawCommentNode{LeadingText: "// @return a value"},
			expected: true,
		},
		{
			name:     "no return documentation",
			src:      tagList(paramTag("a", "desc")),
			expected: false,
		},
		{
			name:     "nil source",
			src:      nil,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HasReturnTag(tt.src))
		})
	}
}

func TestParamTagNames(t *testing.T) {
	src := tagList(
		paramTag("a", "first"),
		outbound.CommentTag{Kind: outbound.TagKindReturns, Text: "out"},
		paramTag("obj.prop", "nested"),
	)
	assert.Equal(t, []string{"a", "obj.prop"}, ParamTagNames(src))
}

func TestParamTagNames_RawNode(t *testing.T) {
	src := outbound.RawCommentNode{
		LeadingText: "// @param {number} a first\n// @param b second",
	}
	assert.Equal(t, []string{"a", "b"}, ParamTagNames(src))
}

func TestDescriptionText(t *testing.T) {
	src := outbound.TagBlockList{Blocks: []outbound.CommentBlock{{
		Text: "/**\n * Creates a widget\n * with defaults.\n * @param opts options\n */",
	}}}

	got := DescriptionText(src)
	require.Len(t, got, 1)
	assert.Equal(t, "Creates a widget with defaults.", got[0].Text)
}

func TestDescriptionText_TagOnlyComment(t *testing.T) {
	src := outbound.TagBlockList{Blocks: []outbound.CommentBlock{{
		Text: " * @param opts options",
	}}}
	assert.Empty(t, DescriptionText(src))
}
