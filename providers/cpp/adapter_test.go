package cpp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `#include <string>

class Widget {
public:
    Widget(std::string name);
    std::string describe();
};

int build(int count) {
    return count * 2;
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

func TestCppClassDefinition(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "class_specifier" && n.Name == "Widget" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCppFunctionSignature(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "function_definition" && n.Name == "build" {
			found = true
			require.Len(t, n.Native.Parameters, 1)
			assert.Equal(t, "count", n.Native.Parameters[0].Name)
		}
	}
	assert.True(t, found)
}

func TestCppIncludeName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "preproc_include" && n.Name == "string" {
			found = true
		}
	}
	assert.True(t, found)
}
