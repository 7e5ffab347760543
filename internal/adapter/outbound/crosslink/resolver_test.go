package crosslink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMapResolver(t *testing.T) {
	resolver := NewMapResolver(map[string]string{
		"WidgetOptions": "widgets/types#WidgetOptions",
		"Empty":         "",
	})

	ref, ok := resolver.ResolveLink("WidgetOptions")
	assert.True(t, ok)
	assert.Equal(t, "widgets/types#WidgetOptions", ref)

	ref, ok = resolver.ResolveLink(" WidgetOptions ")
	assert.True(t, ok, "lookups trim surrounding whitespace")
	assert.Equal(t, "widgets/types#WidgetOptions", ref)

	_, ok = resolver.ResolveLink("Unknown")
	assert.False(t, ok)

	_, ok = resolver.ResolveLink("Empty")
	assert.False(t, ok, "empty targets resolve nothing")
}

func TestMapResolver_NilMap(t *testing.T) {
	_, ok := NewMapResolver(nil).ResolveLink("Anything")
	assert.False(t, ok)
}
