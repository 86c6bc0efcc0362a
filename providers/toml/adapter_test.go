package toml

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `# widget config
name = "widget"
count = 3

[server]
port = 8080
`

func parseFixture(t *testing.T, source string) []core.Node {
	t.Helper()
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return core.Flatten(tree, []byte(source), adapter, core.FlattenOptions{WithNames: true, WithNative: true})
}

func TestTOMLPairKey(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "pair" && n.Name == "name" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestTOMLTableName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "table" && n.Name == "server" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestTOMLEveryKeyIsPublic(t *testing.T) {
	adapter := New()
	assert.True(t, adapter.IsPublic(nil, nil, "name"))
}
