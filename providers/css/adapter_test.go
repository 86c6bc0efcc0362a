package css

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `/* widget rules */
.widget {
  color: red;
  font-size: 12px;
}

@media (min-width: 600px) {
  .widget { color: blue; }
}
`

func parseFixture(t *testing.T, source string) []core.Node {
	t.Helper()
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return core.Flatten(tree, []byte(source), adapter, core.FlattenOptions{WithNames: true, WithNative: true})
}

func TestCSSRuleSetSelector(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "rule_set" && n.Name == ".widget" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCSSDeclarationName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "declaration" && n.Name == "color" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCSSCommentSummary(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "comment" && n.Name == "widget rules" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCSSEverySymbolIsPublic(t *testing.T) {
	adapter := New()
	assert.True(t, adapter.IsPublic(nil, nil, "color"))
}
