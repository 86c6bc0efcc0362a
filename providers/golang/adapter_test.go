package golang

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `package widgets

// Widget is exported.
type Widget struct {
	Name string
}

func newWidget(name string) *Widget {
	return &Widget{Name: name}
}

func (w *Widget) Describe() string {
	return w.Name
}

func unexported() {}
`

func parseFixture(t *testing.T, source string) []core.Node {
	t.Helper()
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return core.Flatten(tree, []byte(source), adapter, core.FlattenOptions{WithNames: true, WithNative: true})
}

func TestGoFunctionNameAndParams(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "function_declaration" && n.Name == "newWidget" {
			found = true
			require.Len(t, n.Native.Parameters, 1)
			assert.Equal(t, "name", n.Native.Parameters[0].Name)
			assert.Equal(t, "string", n.Native.Parameters[0].Type)
		}
	}
	assert.True(t, found)
}

func TestGoMethodQualifiedName(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "method_declaration" && n.Name == "Describe" {
			found = true
			assert.Equal(t, "Widget.Describe", n.Native.QualifiedName)
		}
	}
	assert.True(t, found)
}

func TestGoExportConvention(t *testing.T) {
	adapter := New()
	assert.True(t, adapter.IsPublic(nil, nil, "NewWidget"))
	assert.False(t, adapter.IsPublic(nil, nil, "newWidget"))
	assert.False(t, adapter.IsPublic(nil, nil, ""))
}

func TestGoAdapterMetadata(t *testing.T) {
	adapter := New()
	assert.Equal(t, "go", adapter.Language())
	assert.Contains(t, adapter.Aliases(), "golang")
	assert.Contains(t, adapter.Extensions(), ".go")
}
