package typescript

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
)

const fixture = `interface Shape {
  area(): number;
}

enum Color {
  Red,
  Green,
}

function describe(shape: Shape): string {
  return "shape";
}
`

func parseFixture(t *testing.T, adapter providers.Adapter, source string) []core.Node {
	t.Helper()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return core.Flatten(tree, []byte(source), adapter, core.FlattenOptions{WithNames: true, WithNative: true})
}

func TestTypeScriptInterfaceDefinition(t *testing.T) {
	nodes := parseFixture(t, New(), fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "interface_declaration" && n.Name == "Shape" {
			found = true
			assert.True(t, core.IsDefinition(n.SemanticType))
		}
	}
	assert.True(t, found)
}

func TestTypeScriptEnumDefinition(t *testing.T) {
	nodes := parseFixture(t, New(), fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "enum_declaration" && n.Name == "Color" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestTypeScriptFunctionParameterType(t *testing.T) {
	nodes := parseFixture(t, New(), fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "function_declaration" && n.Name == "describe" {
			found = true
			require.Len(t, n.Native.Parameters, 1)
			assert.Equal(t, "shape", n.Native.Parameters[0].Name)
		}
	}
	assert.True(t, found)
}

func TestTSXAdapterExtension(t *testing.T) {
	adapter := NewTSX()
	assert.Equal(t, "tsx", adapter.Language())
	assert.Contains(t, adapter.Extensions(), ".tsx")
}
