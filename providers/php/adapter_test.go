package php

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

// findMethodNamed returns the first method_declaration descendant of n
// whose "name" field's text equals name.
func findMethodNamed(n *sitter.Node, source []byte, name string) *sitter.Node {
	if n == nil {
		return nil
	}
	if n.Type() == "method_declaration" {
		if nameNode := n.ChildByFieldName("name"); nameNode != nil {
			if string(source[nameNode.StartByte():nameNode.EndByte()]) == name {
				return n
			}
		}
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		if found := findMethodNamed(n.Child(i), source, name); found != nil {
			return found
		}
	}
	return nil
}

const fixture = `<?php

class Widget {
    private $name;

    public function describe($prefix) {
        return $prefix . $this->name;
    }

    private function internalHelper() {
        return true;
    }
}

function build($name) {
    return new Widget($name);
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

func TestPHPMethodSignature(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "method_declaration" && n.Name == "describe" {
			found = true
			require.Len(t, n.Native.Parameters, 1)
			assert.Equal(t, "prefix", n.Native.Parameters[0].Name)
		}
	}
	assert.True(t, found)
}

func TestPHPClassDefinition(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "class_declaration" && n.Name == "Widget" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestPHPUnderscoreConventionWithoutModifiers(t *testing.T) {
	adapter := New()
	assert.True(t, adapter.IsPublic(nil, nil, "describe"))
	assert.False(t, adapter.IsPublic(nil, nil, "_legacyHelper"))
}

func TestPHPExplicitPrivateModifierOverridesName(t *testing.T) {
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(fixture))
	require.NoError(t, err)
	defer tree.Close()

	// internalHelper has no underscore prefix, so the naming convention
	// alone would mark it public; the explicit "private" modifier must
	// still suppress that.
	methodNode := findMethodNamed(tree.RootNode(), []byte(fixture), "internalHelper")
	require.NotNil(t, methodNode)
	assert.False(t, adapter.IsPublic(methodNode, []byte(fixture), "internalHelper"))

	describeNode := findMethodNamed(tree.RootNode(), []byte(fixture), "describe")
	require.NotNil(t, describeNode)
	assert.True(t, adapter.IsPublic(describeNode, []byte(fixture), "describe"))
}
