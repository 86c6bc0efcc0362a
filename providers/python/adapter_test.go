package python

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `import os

class Greeter:
    def greet(self, name):
        return "hi " + name

def _helper():
    pass

greet = Greeter()
`

func parseFixture(t *testing.T, source string) []core.Node {
	t.Helper()
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return core.Flatten(tree, []byte(source), adapter, core.FlattenOptions{WithNames: true, WithNative: true})
}

func TestPythonMethodSignature(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "function_definition" && n.Name == "greet" {
			found = true
			require.Len(t, n.Native.Parameters, 2)
			assert.Equal(t, "self", n.Native.Parameters[0].Name)
			assert.Equal(t, "name", n.Native.Parameters[1].Name)
		}
	}
	assert.True(t, found)
}

func TestPythonClassDefinition(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "class_definition" && n.Name == "Greeter" {
			found = true
			assert.True(t, core.IsClassDefinition(n.SemanticType))
		}
	}
	assert.True(t, found)
}

func TestPythonUnderscoreConventionIsPublic(t *testing.T) {
	adapter := New()
	assert.True(t, adapter.IsPublic(nil, nil, "greet"))
	assert.False(t, adapter.IsPublic(nil, nil, "_helper"))
	assert.False(t, adapter.IsPublic(nil, nil, ""))
}

func TestPythonImportName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "import_statement" {
			found = true
			assert.Equal(t, "os", n.Name)
		}
	}
	assert.True(t, found)
}
