package ruby

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/termfx/morfx/core"
)

const fixture = `require 'set'

class Widget
  def describe(prefix)
    prefix + @name
  end

  def _internal_helper
    true
  end
end

def build(name)
  Widget.new(name)
end
`

func parseFixture(t *testing.T, source string) []core.Node {
	t.Helper()
	adapter := New()
	tree, err := adapter.Parse(context.Background(), []byte(source))
	require.NoError(t, err)
	defer tree.Close()
	return core.Flatten(tree, []byte(source), adapter, core.FlattenOptions{WithNames: true, WithNative: true})
}

func TestRubyClassDefinition(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "class" && n.Name == "Widget" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestRubyMethodSignature(t *testing.T) {
	nodes := parseFixture(t, fixture)
	var found bool
	for _, n := range nodes {
		if n.Type == "method" && n.Name == "describe" {
			found = true
			require.Len(t, n.Native.Parameters, 1)
			assert.Equal(t, "prefix", n.Native.Parameters[0].Name)
		}
	}
	assert.True(t, found)
}

func TestRubyUnderscoreConvention(t *testing.T) {
	adapter := New()
	assert.True(t, adapter.IsPublic(nil, nil, "describe"))
	assert.False(t, adapter.IsPublic(nil, nil, "_internal_helper"))
}
