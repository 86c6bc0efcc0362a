package rust

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `use std::fmt;

pub fn add(a: i32, b: i32) -> i32 {
    a + b
}

fn private_helper() -> bool {
    true
}

struct Widget {
    name: String,
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

func TestRustFunctionParams(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "function_item" && n.Name == "add" {
			found = true
			require.Len(t, n.Native.Parameters, 2)
			assert.Equal(t, "a", n.Native.Parameters[0].Name)
			assert.Equal(t, "i32", n.Native.Parameters[0].Type)
		}
	}
	assert.True(t, found)
}

func TestRustStructDefinition(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "struct_item" && n.Name == "Widget" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRustVisibilityRequiresPubKeyword(t *testing.T) {
	adapter := New()
	assert.False(t, adapter.IsPublic(nil, nil, "add"))
}
