package csharp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `using System;

namespace Example {
    public class Widget {
        public string Describe(string prefix) {
            return prefix;
        }

        private void InternalHelper() {
        }
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

func TestCSharpClassDefinition(t *testing.T) {
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

func TestCSharpMethodSignature(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "method_declaration" && n.Name == "Describe" {
			found = true
			require.Len(t, n.Native.Parameters, 1)
			assert.Equal(t, "prefix", n.Native.Parameters[0].Name)
			assert.Contains(t, n.Native.Modifiers, "public")
		}
	}
	assert.True(t, found)
}

func TestCSharpUsingDirectiveName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "using_directive" && n.Name == "System" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCSharpPublicRequiresExplicitModifier(t *testing.T) {
	adapter := New()
	assert.False(t, adapter.IsPublic(nil, nil, "InternalHelper"))
}
