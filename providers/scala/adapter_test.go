package scala

import (
	"context"
	"testing"

	sitter "github.com/smacker/go-tree-sitter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

// findFunctionNamed returns the first function_definition descendant of n
// whose "name" field's text equals name.
func findFunctionNamed(n *sitter.Node, source []byte, name string) *sitter.Node {
	if n == nil {
		return nil
	}
	if n.Type() == "function_definition" {
		if nameNode := n.ChildByFieldName("name"); nameNode != nil {
			if string(source[nameNode.StartByte():nameNode.EndByte()]) == name {
				return n
			}
		}
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		if found := findFunctionNamed(n.Child(i), source, name); found != nil {
			return found
		}
	}
	return nil
}

const fixture = `package com.example

import scala.collection.immutable.List

class Widget {
  def describe(prefix: String): String = {
    prefix
  }

  private def internalHelper(): Boolean = {
    true
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

func TestScalaClassDefinition(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "class_definition" && n.Name == "Widget" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScalaFunctionSignature(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "function_definition" && n.Name == "describe" {
			found = true
			require.Len(t, n.Native.Parameters, 1)
		}
	}
	assert.True(t, found)
}

func TestScalaImportName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "import_declaration" && n.Name == "scala.collection.immutable.List" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestScalaDefaultVisibilityIsPublic(t *testing.T) {
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(fixture))
	require.NoError(t, err)
	defer tree.Close()

	describeNode := findFunctionNamed(tree.RootNode(), []byte(fixture), "describe")
	require.NotNil(t, describeNode)
	assert.True(t, adapter.IsPublic(describeNode, []byte(fixture), "describe"))

	helperNode := findFunctionNamed(tree.RootNode(), []byte(fixture), "internalHelper")
	require.NotNil(t, helperNode)
	assert.False(t, adapter.IsPublic(helperNode, []byte(fixture), "internalHelper"))
}
