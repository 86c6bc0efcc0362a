package swift

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `import Foundation

class Widget {
    func describe(prefix: String) -> String {
        return prefix
    }
}

public func build(name: String) -> Widget {
    return Widget()
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

func TestSwiftClassDefinition(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "class_declaration" && n.Name == "Widget" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSwiftFunctionSignature(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "function_declaration" && n.Name == "build" {
			found = true
			assert.Contains(t, n.Native.Modifiers, "public")
		}
	}
	assert.True(t, found)
}

func TestSwiftImportName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "import_declaration" && n.Name == "Foundation" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSwiftInternalIsNotPublic(t *testing.T) {
	adapter := New()
	assert.False(t, adapter.IsPublic(nil, nil, "describe"))
}
