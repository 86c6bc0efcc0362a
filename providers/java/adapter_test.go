package java

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `package com.example;

import java.util.List;

public class Widget {
    private String name;

    public String describe(String prefix) {
        return prefix + name;
    }

    private void internalHelper() {
    }
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

func TestJavaClassDefinition(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "class_declaration" && n.Name == "Widget" {
			found = true
			assert.Contains(t, n.Native.Modifiers, "public")
		}
	}
	assert.True(t, found)
}

func TestJavaMethodSignature(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "method_declaration" && n.Name == "describe" {
			found = true
			require.Len(t, n.Native.Parameters, 1)
			assert.Equal(t, "prefix", n.Native.Parameters[0].Name)
			assert.Contains(t, n.Native.Modifiers, "public")
		}
	}
	assert.True(t, found)
}

func TestJavaImportName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "import_declaration" && n.Name == "java.util.List" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestJavaPublicRequiresExplicitModifier(t *testing.T) {
	adapter := New()
	assert.False(t, adapter.IsPublic(nil, nil, "describe"))
}
