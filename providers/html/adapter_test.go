package html

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `<!-- header -->
<div class="widget" data-name="x">
  <span>hello</span>
</div>
`

func parseFixture(t *testing.T, source string) []core.Node {
	t.Helper()
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return core.Flatten(tree, []byte(source), adapter, core.FlattenOptions{WithNames: true, WithNative: true})
}

func TestHTMLElementName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "element" && n.Name == "div" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestHTMLAttributeValue(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "attribute" && n.Name == "class" {
			found = true
			assert.Equal(t, "widget", n.Native.SignatureType)
		}
	}
	assert.True(t, found)
}

func TestHTMLCommentSummary(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "comment" && n.Name == "header" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestHTMLEverySymbolIsPublic(t *testing.T) {
	adapter := New()
	assert.True(t, adapter.IsPublic(nil, nil, "div"))
}
