// Package css adapts stylesheets through tree-sitter's CSS grammar into
// the shared semantic taxonomy. Rule sets map onto StructureElement,
// declarations onto StructureField, matching html's structural-only
// treatment of non-programming grammars.
package css

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tscss "github.com/smacker/go-tree-sitter/css"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "css",
		Extensions:   []string{".css"},
		Grammar:      tscss.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"stylesheet":          {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"rule_set":            {SemanticType: core.StructureElement, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"at_rule":             {SemanticType: core.AnnotationDirective, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"media_statement":     {SemanticType: core.AnnotationDirective, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"keyframes_statement": {SemanticType: core.DefinitionClass, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"declaration":         {SemanticType: core.StructureField, NameStrategy: core.NameCustom, NativeStrategy: core.NativeVariableWithType},
	"class_selector":      {SemanticType: core.IdentifierName},
	"id_selector":         {SemanticType: core.IdentifierName},
	"tag_name":            {SemanticType: core.IdentifierName},
	"comment":             {SemanticType: core.CommentBlock, NameStrategy: core.NameCustom},
	"string_value":        {SemanticType: core.LiteralString},
	"integer_value":       {SemanticType: core.LiteralNumber},
	"float_value":         {SemanticType: core.LiteralNumber},
	"ERROR":               {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameCustom: extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeVariableWithType: extractDeclarationValue,
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
	case "rule_set":
		if sel := base.FindFirstChildOfType(node, "selectors"); sel != nil {
			return text(sel, source)
		}
	case "at_rule", "media_statement", "keyframes_statement":
		if kw := base.FindFirstChildOfType(node, "at_keyword"); kw != nil {
			return text(kw, source)
		}
		if fields := strings.Fields(text(node, source)); len(fields) > 0 {
			return fields[0]
		}
	case "declaration":
		if prop := base.FindFirstChildOfType(node, "property_name"); prop != nil {
			return text(prop, source)
		}
	case "comment":
		trimmed := strings.TrimSpace(text(node, source))
		trimmed = strings.TrimPrefix(trimmed, "/*")
		trimmed = strings.TrimSuffix(trimmed, "*/")
		trimmed = strings.TrimSpace(trimmed)
		if idx := strings.Index(trimmed, "\n"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		return trimmed
	}
	return ""
}

func extractDeclarationValue(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	return core.NativeContext{SignatureType: text(node, source)}
}

// isPublic: CSS has no visibility concept; everything named counts as
// public.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	return len(name) > 0
}
