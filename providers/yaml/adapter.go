// Package yaml adapts YAML documents through tree-sitter's YAML grammar
// into the shared semantic taxonomy. A mapping pair's key becomes a
// StructureField the same way a struct field does in a programming
// language grammar, and sequences/mappings as a whole become
// StructureElement containers.
package yaml

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsyaml "github.com/smacker/go-tree-sitter/yaml"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "yaml",
		Aliases:      []string{"yml"},
		Extensions:   []string{".yaml", ".yml"},
		Grammar:      tsyaml.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"stream":              {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"document":            {SemanticType: core.ScopeModule, Flags: core.FlagConstruct},
	"block_mapping_pair":  {SemanticType: core.StructureField, NameStrategy: core.NameCustom, NativeStrategy: core.NativeVariableWithType},
	"flow_pair":           {SemanticType: core.StructureField, NameStrategy: core.NameCustom, NativeStrategy: core.NativeVariableWithType},
	"block_sequence":      {SemanticType: core.StructureElement, Flags: core.FlagConstruct},
	"block_mapping":       {SemanticType: core.StructureElement, Flags: core.FlagConstruct},
	"anchor":              {SemanticType: core.IdentifierName},
	"alias":               {SemanticType: core.IdentifierQualified},
	"comment":             {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"string_scalar":       {SemanticType: core.LiteralString},
	"double_quote_scalar": {SemanticType: core.LiteralString},
	"single_quote_scalar": {SemanticType: core.LiteralString},
	"integer_scalar":      {SemanticType: core.LiteralNumber},
	"float_scalar":        {SemanticType: core.LiteralNumber},
	"boolean_scalar":      {SemanticType: core.LiteralBoolean},
	"ERROR":               {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameCustom: extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeVariableWithType: extractPairValue,
}

func asNode(n any) *sitter.Node { node, _ := n.(*sitter.Node); return node }

func text(n *sitter.Node, source []byte) string {
	if n == nil {
		return ""
	}
	start, end := n.StartByte(), n.EndByte()
	if int(end) > len(source) || start > end {
		return ""
	}
	return string(source[start:end])
}

func extractCustomName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "block_mapping_pair", "flow_pair":
		if key := node.ChildByFieldName("key"); key != nil {
			return strings.Trim(text(key, source), `"'`)
		}
	case "comment":
		trimmed := strings.TrimSpace(text(node, source))
		trimmed = strings.TrimPrefix(trimmed, "#")
		return strings.TrimSpace(trimmed)
	}
	return ""
}

func extractPairValue(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if v := node.ChildByFieldName("value"); v != nil {
		return core.NativeContext{SignatureType: v.Type()}
	}
	return core.NativeContext{}
}

// isPublic: YAML has no visibility concept; every named key counts as
// public.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	return len(name) > 0
}
