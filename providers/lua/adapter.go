// Package lua adapts Lua source through tree-sitter's Lua grammar into
// the shared semantic taxonomy.
package lua

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tslua "github.com/smacker/go-tree-sitter/lua"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "lua",
		Extensions:   []string{".lua"},
		Grammar:      tslua.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"chunk":                      {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"function_declaration":       {SemanticType: core.DefinitionFunction, NameStrategy: core.NameCustom, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"function_definition":        {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeArrowFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"local_variable_declaration": {SemanticType: core.DefinitionVariable, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"variable_assignment":        {SemanticType: core.OperationAssignment, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"function_call":              {SemanticType: core.CallFunction, NameStrategy: core.NameCustom, NativeStrategy: core.NativeFunctionCall},
	"comment":                    {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"identifier":                 {SemanticType: core.IdentifierName},
	"string":                     {SemanticType: core.LiteralString},
	"number":                     {SemanticType: core.LiteralNumber},
	"true":                       {SemanticType: core.LiteralBoolean},
	"false":                      {SemanticType: core.LiteralBoolean},
	"if_statement":               {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"for_statement":              {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"for_in_statement":           {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_statement":            {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"return_statement":           {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"break_statement":            {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"parameters":                 {SemanticType: core.StructureParameter},
	"ERROR":                      {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameCustom: extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeFunctionWithParams: extractFunctionSignature,
	core.NativeArrowFunction:      extractFunctionSignature,
	core.NativeFunctionCall:       extractCallArgs,
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
	case "function_declaration":
		if name := node.ChildByFieldName("name"); name != nil {
			return text(name, source)
		}
	case "local_variable_declaration":
		if names := base.FindFirstChildOfType(node, "variable_list"); names != nil {
			if id := base.FindFirstChildOfType(names, "identifier"); id != nil {
				return text(id, source)
			}
		}
	case "variable_assignment":
		if names := base.FindFirstChildOfType(node, "variable_list"); names != nil {
			if id := base.FindFirstChildOfType(names, "identifier"); id != nil {
				return text(id, source)
			}
		}
	case "function_call":
		if name := node.ChildByFieldName("name"); name != nil {
			if name.Type() == "dot_index_expression" || name.Type() == "method_index_expression" {
				if field := name.ChildByFieldName("field"); field != nil {
					return text(field, source)
				}
			}
			return text(name, source)
		}
	case "comment":
		trimmed := strings.TrimSpace(text(node, source))
		trimmed = strings.TrimPrefix(trimmed, "--[[")
		trimmed = strings.TrimSuffix(trimmed, "]]")
		trimmed = strings.TrimPrefix(trimmed, "--")
		trimmed = strings.TrimSpace(trimmed)
		if idx := strings.Index(trimmed, "\n"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		return trimmed
	}
	return ""
}

func extractFunctionSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	params := base.FindFirstChildOfType(node, "parameters")
	var ps []core.Param
	if params != nil {
		count := int(params.NamedChildCount())
		for i := 0; i < count; i++ {
			child := params.NamedChild(i)
			if child != nil {
				ps = append(ps, core.Param{Name: text(child, source)})
			}
		}
	}
	return core.NativeContext{SignatureType: "function", Parameters: ps}
}

func extractCallArgs(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	args := base.FindFirstChildOfType(node, "arguments")
	if args == nil {
		return core.NativeContext{}
	}
	var params []core.Param
	count := int(args.NamedChildCount())
	for i := 0; i < count; i++ {
		child := args.NamedChild(i)
		if child != nil {
			params = append(params, core.Param{Name: text(child, source)})
		}
	}
	return core.NativeContext{Parameters: params}
}

// isPublic: Lua has no language-level visibility; the community
// convention of a leading underscore marking "private" is the closest
// available signal, mirroring ruby's and python's underscore
// convention.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 {
		return false
	}
	return !strings.HasPrefix(name, "_")
}
