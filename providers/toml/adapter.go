// Package toml adapts TOML documents through tree-sitter's TOML
// grammar into the shared semantic taxonomy, following yaml's
// structural-only treatment of non-programming grammars.
package toml

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tstoml "github.com/smacker/go-tree-sitter/toml"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "toml",
		Extensions:   []string{".toml"},
		Grammar:      tstoml.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"document":            {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"table":               {SemanticType: core.StructureElement, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"table_array_element": {SemanticType: core.StructureElement, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"pair":                {SemanticType: core.StructureField, NameStrategy: core.NameCustom, NativeStrategy: core.NativeVariableWithType},
	"comment":             {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"string":              {SemanticType: core.LiteralString},
	"integer":             {SemanticType: core.LiteralNumber},
	"float":               {SemanticType: core.LiteralNumber},
	"boolean":             {SemanticType: core.LiteralBoolean},
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
	case "table", "table_array_element":
		if key := base.FindFirstChildOfType(node, "bare_key", "dotted_key", "quoted_key"); key != nil {
			return strings.Trim(text(key, source), `"'`)
		}
	case "pair":
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

// isPublic: TOML has no visibility concept; every named key counts as
// public.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	return len(name) > 0
}
