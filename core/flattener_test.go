package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/providers/golang"
)

const goFixture = `package main

import "fmt"

func add(a, b int) int {
	return a + b
}

func main() {
	fmt.Println(add(1, 2))
}
`

func flattenFixture(t *testing.T, source string) []Node {
	t.Helper()
	adapter := golang.New()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return Flatten(tree, []byte(source), adapter, FlattenOptions{WithNames: true, WithNative: true})
}

// I1: node_id is 0..N-1 in pre-order emission order.
func TestFlattenNodeIDsContiguous(t *testing.T) {
	nodes := flattenFixture(t, goFixture)
	require.NotEmpty(t, nodes)
	for i, n := range nodes {
		assert.Equal(t, uint64(i), n.NodeID)
	}
}

// I2: a node's subtree is exactly out[i+1 : i+1+descendant_count].
func TestFlattenSubtreeRangeMatchesDescendantCount(t *testing.T) {
	nodes := flattenFixture(t, goFixture)
	for i, n := range nodes {
		end := i + 1 + int(n.DescendantCount)
		require.LessOrEqual(t, end, len(nodes))
		for _, d := range nodes[i+1 : end] {
			assert.GreaterOrEqual(t, d.Depth, n.Depth)
		}
		if end < len(nodes) {
			assert.Less(t, nodes[end].Depth, n.Depth+1, "first node past the subtree must not be a descendant")
		}
	}
}

// I3: parent_id is ParentSentinel for roots, otherwise strictly smaller
// than the child's own node_id.
func TestFlattenParentIDInvariant(t *testing.T) {
	nodes := flattenFixture(t, goFixture)
	assert.Equal(t, ParentSentinel, nodes[0].ParentID)
	for _, n := range nodes[1:] {
		assert.NotEqual(t, ParentSentinel, n.ParentID)
		assert.Less(t, n.ParentID, int64(n.NodeID))
	}
}

// I4: sibling_index is 0-based among a node's own siblings.
func TestFlattenSiblingIndexing(t *testing.T) {
	nodes := flattenFixture(t, goFixture)
	byParent := make(map[int64][]uint32)
	for _, n := range nodes {
		byParent[n.ParentID] = append(byParent[n.ParentID], n.SiblingIndex)
	}
	for _, indices := range byParent {
		for i, idx := range indices {
			assert.Equal(t, uint32(i), idx)
		}
	}
}

// I5: children_count matches the number of direct children recorded
// against this node as parent.
func TestFlattenChildrenCountConsistent(t *testing.T) {
	nodes := flattenFixture(t, goFixture)
	childCounts := make(map[uint64]int)
	for _, n := range nodes {
		if n.ParentID != ParentSentinel {
			childCounts[uint64(n.ParentID)]++
		}
	}
	for _, n := range nodes {
		assert.Equal(t, childCounts[n.NodeID], int(n.ChildrenCount), "node %d (%s)", n.NodeID, n.Type)
	}
}

func TestFlattenEmptySourceReturnsNonNilSlice(t *testing.T) {
	nodes := flattenFixture(t, "")
	assert.NotNil(t, nodes)
}

func TestFlattenNamesAndSemanticTypesPopulated(t *testing.T) {
	nodes := flattenFixture(t, goFixture)

	var sawFunction, sawCall bool
	for _, n := range nodes {
		if n.Type == "function_declaration" {
			sawFunction = true
			assert.Contains(t, []string{"add", "main"}, n.Name)
			assert.True(t, IsFunctionDefinition(n.SemanticType))
			assert.True(t, n.IsConstruct())
			assert.True(t, n.IsEmbodied())
		}
		if n.Type == "call_expression" {
			sawCall = true
			assert.True(t, IsCall(n.SemanticType))
		}
	}
	assert.True(t, sawFunction, "expected to see a function_declaration node")
	assert.True(t, sawCall, "expected to see a call_expression node")
}

func TestFlattenNativeContextPopulatedForFunctions(t *testing.T) {
	nodes := flattenFixture(t, goFixture)
	for _, n := range nodes {
		if n.Type == "function_declaration" && n.Name == "add" {
			require.False(t, n.Native.Empty())
			assert.Equal(t, "function", n.Native.SignatureType)
			require.Len(t, n.Native.Parameters, 2)
			assert.Equal(t, "a", n.Native.Parameters[0].Name)
			assert.Equal(t, "b", n.Native.Parameters[1].Name)
		}
	}
}

func TestFlattenPeekModes(t *testing.T) {
	adapter := golang.New()
	tree, err := adapter.Parse(context.Background(), []byte(goFixture))
	require.NoError(t, err)
	defer tree.Close()

	none := Flatten(tree, []byte(goFixture), adapter, FlattenOptions{PeekMode: PeekNone})
	for _, n := range none {
		assert.Empty(t, n.Peek)
	}

	chars := Flatten(tree, []byte(goFixture), adapter, FlattenOptions{PeekMode: PeekChars, PeekSize: 5})
	assert.LessOrEqual(t, len(chars[0].Peek), 5)

	lines := Flatten(tree, []byte(goFixture), adapter, FlattenOptions{PeekMode: PeekLines, PeekSize: len(goFixture)})
	assert.Equal(t, goFixture, lines[0].Peek)

	auto := Flatten(tree, []byte(goFixture), adapter, FlattenOptions{PeekMode: PeekAuto, PeekSize: len(goFixture)})
	assert.Equal(t, goFixture, auto[0].Peek)
}
