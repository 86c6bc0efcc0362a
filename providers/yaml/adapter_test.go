package yaml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `# widget config
name: widget
count: 3
tags:
  - alpha
  - beta
`

func parseFixture(t *testing.T, source string) []core.Node {
	t.Helper()
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return core.Flatten(tree, []byte(source), adapter, core.FlattenOptions{WithNames: true, WithNative: true})
}

func TestYAMLMappingPairKey(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "block_mapping_pair" && n.Name == "name" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestYAMLCommentSummary(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "comment" && n.Name == "widget config" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestYAMLEveryKeyIsPublic(t *testing.T) {
	adapter := New()
	assert.True(t, adapter.IsPublic(nil, nil, "name"))
}
