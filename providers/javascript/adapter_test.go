package javascript

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `class Widget {
  constructor(name) {
    this.name = name;
  }

  describe() {
    return this.name;
  }
}

function build(name) {
  return new Widget(name);
}

const instance = build("lamp");
`

func parseFixture(t *testing.T, source string) []core.Node {
	t.Helper()
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return core.Flatten(tree, []byte(source), adapter, core.FlattenOptions{WithNames: true, WithNative: true})
}

func TestJSFunctionSignature(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "function_declaration" && n.Name == "build" {
			found = true
			require.Len(t, n.Native.Parameters, 1)
			assert.Equal(t, "name", n.Native.Parameters[0].Name)
		}
	}
	assert.True(t, found)
}

func TestJSMethodDefinitionName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "method_definition" && n.Name == "describe" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestJSNewExpressionIsConstructorCall(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "new_expression" {
			found = true
			assert.True(t, core.IsCall(n.SemanticType))
		}
	}
	assert.True(t, found)
}

func TestJSAdapterMetadata(t *testing.T) {
	adapter := New()
	assert.Equal(t, "javascript", adapter.Language())
	assert.Contains(t, adapter.Aliases(), "js")
	assert.Contains(t, adapter.Extensions(), ".jsx")
}
