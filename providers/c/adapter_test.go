package c

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `#include <stdio.h>

int add(int a, int b) {
    return a + b;
}

struct Widget {
    char *name;
};
`

func parseFixture(t *testing.T, source string) []core.Node {
	t.Helper()
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return core.Flatten(tree, []byte(source), adapter, core.FlattenOptions{WithNames: true, WithNative: true})
}

func TestCFunctionSignature(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "function_definition" && n.Name == "add" {
			found = true
			require.Len(t, n.Native.Parameters, 2)
			assert.Equal(t, "a", n.Native.Parameters[0].Name)
		}
	}
	assert.True(t, found)
}

func TestCStructDefinition(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "struct_specifier" && n.Name == "Widget" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCIncludeName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "preproc_include" && n.Name == "stdio.h" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCEverySymbolIsPublic(t *testing.T) {
	adapter := New()
	assert.True(t, adapter.IsPublic(nil, nil, "add"))
	assert.True(t, adapter.IsPublic(nil, nil, "_internal"))
}
