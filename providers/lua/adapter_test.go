package lua

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `-- widget helpers
local function describe(prefix)
  return prefix
end

function _internal()
  return true
end

describe("hi")
`

func parseFixture(t *testing.T, source string) []core.Node {
	t.Helper()
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return core.Flatten(tree, []byte(source), adapter, core.FlattenOptions{WithNames: true, WithNative: true})
}

func TestLuaFunctionDeclaration(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "function_declaration" && n.Name == "_internal" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLuaFunctionCallName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "function_call" && n.Name == "describe" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLuaCommentSummary(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "comment" && n.Name == "widget helpers" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestLuaUnderscoreConvention(t *testing.T) {
	adapter := New()
	assert.True(t, adapter.IsPublic(nil, nil, "describe"))
	assert.False(t, adapter.IsPublic(nil, nil, "_internal"))
}
