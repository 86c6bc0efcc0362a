// Package html adapts HTML documents through tree-sitter's HTML grammar
// into the shared semantic taxonomy. HTML has no definitions, calls, or
// control flow in the programming-language sense, so most semantic
// types here map onto structural concepts: elements become
// StructureElement, attributes become StructureField.
package html

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tshtml "github.com/smacker/go-tree-sitter/html"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "html",
		Extensions:   []string{".html", ".htm"},
		Grammar:      tshtml.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"document":               {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"element":                {SemanticType: core.StructureElement, NameStrategy: core.NameCustom, NativeStrategy: core.NativeNone, Flags: core.FlagConstruct},
	"script_element":         {SemanticType: core.StructureElement, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"style_element":          {SemanticType: core.StructureElement, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"attribute":              {SemanticType: core.StructureField, NameStrategy: core.NameCustom, NativeStrategy: core.NativeVariableWithType},
	"comment":                {SemanticType: core.CommentBlock, NameStrategy: core.NameCustom},
	"tag_name":               {SemanticType: core.IdentifierName},
	"attribute_value":        {SemanticType: core.LiteralString},
	"quoted_attribute_value": {SemanticType: core.LiteralString},
	"ERROR":                  {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameCustom: extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeVariableWithType: extractAttributeValue,
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
	case "element", "script_element", "style_element":
		if start := base.FindFirstChildOfType(node, "start_tag", "self_closing_tag"); start != nil {
			if tag := base.FindFirstChildOfType(start, "tag_name"); tag != nil {
				return text(tag, source)
			}
		}
	case "attribute":
		if name := base.FindFirstChildOfType(node, "attribute_name"); name != nil {
			return text(name, source)
		}
	case "comment":
		trimmed := strings.TrimSpace(text(node, source))
		trimmed = strings.TrimPrefix(trimmed, "<!--")
		trimmed = strings.TrimSuffix(trimmed, "-->")
		trimmed = strings.TrimSpace(trimmed)
		if idx := strings.Index(trimmed, "\n"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		return trimmed
	}
	return ""
}

func extractAttributeValue(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if v := base.FindFirstChildOfType(node, "quoted_attribute_value", "attribute_value"); v != nil {
		return core.NativeContext{SignatureType: strings.Trim(text(v, source), `"'`)}
	}
	return core.NativeContext{}
}

// isPublic: markup has no visibility concept; every named element or
// attribute counts as public.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	return len(name) > 0
}
