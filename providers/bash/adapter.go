// Package bash adapts shell scripts through tree-sitter's Bash grammar
// into the shared semantic taxonomy.
package bash

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsbash "github.com/smacker/go-tree-sitter/bash"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "bash",
		Aliases:      []string{"sh", "shell"},
		Extensions:   []string{".sh", ".bash"},
		Grammar:      tsbash.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"program":             {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"function_definition": {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct | core.FlagEmbodied},
	"variable_assignment": {SemanticType: core.DefinitionVariable, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"command":             {SemanticType: core.CallFunction, NameStrategy: core.NameCustom, NativeStrategy: core.NativeFunctionCall},
	"comment":             {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"variable_name":       {SemanticType: core.IdentifierName},
	"string":              {SemanticType: core.LiteralString},
	"number":              {SemanticType: core.LiteralNumber},
	"if_statement":        {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"case_statement":      {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"for_statement":       {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_statement":     {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"ERROR":               {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier: base.NameField,
	core.NameCustom:         extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeFunctionCall: extractCommandArgs,
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
	case "variable_assignment":
		if name := node.ChildByFieldName("name"); name != nil {
			return text(name, source)
		}
	case "command":
		if name := node.ChildByFieldName("name"); name != nil {
			return text(name, source)
		}
	case "comment":
		return commentSummary(text(node, source))
	}
	return ""
}

func commentSummary(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "#")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}

func extractCommandArgs(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	var params []core.Param
	count := int(node.NamedChildCount())
	for i := 1; i < count; i++ {
		child := node.NamedChild(i)
		if child != nil {
			params = append(params, core.Param{Name: text(child, source)})
		}
	}
	return core.NativeContext{Parameters: params}
}

// isPublic: shell has no visibility concept at all, so every named
// symbol (function or variable) counts as public.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	return len(name) > 0
}
