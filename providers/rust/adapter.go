// Package rust adapts Rust source through tree-sitter's Rust grammar
// into the shared semantic taxonomy.
package rust

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsrust "github.com/smacker/go-tree-sitter/rust"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "rust",
		Extensions:   []string{".rs"},
		Grammar:      tsrust.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"source_file":         {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"mod_item":            {SemanticType: core.DefinitionNamespace, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"use_declaration":     {SemanticType: core.ImportImport, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"function_item":       {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"closure_expression":  {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeArrowFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"struct_item":         {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"enum_item":           {SemanticType: core.DefinitionEnum, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"trait_item":          {SemanticType: core.DefinitionInterface, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"impl_item":           {SemanticType: core.DefinitionClass, NameStrategy: core.NameCustom, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"let_declaration":     {SemanticType: core.DefinitionVariable, NameStrategy: core.NameFindInDeclarator, NativeStrategy: core.NativeVariableWithType, Flags: core.FlagConstruct},
	"const_item":          {SemanticType: core.DefinitionConstant, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"attribute_item":      {SemanticType: core.AnnotationDecorator, NameStrategy: core.NameCustom},
	"call_expression":     {SemanticType: core.CallFunction, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"macro_invocation":    {SemanticType: core.CallFunction, NameStrategy: core.NameFindIdentifier},
	"line_comment":        {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"block_comment":       {SemanticType: core.CommentBlock, NameStrategy: core.NameCustom},
	"identifier":          {SemanticType: core.IdentifierName},
	"field_identifier":    {SemanticType: core.IdentifierProperty},
	"string_literal":      {SemanticType: core.LiteralString},
	"integer_literal":     {SemanticType: core.LiteralNumber},
	"float_literal":       {SemanticType: core.LiteralNumber},
	"boolean_literal":     {SemanticType: core.LiteralBoolean},
	"if_expression":       {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"match_expression":    {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"for_expression":      {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_expression":    {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"loop_expression":     {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"return_expression":   {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"break_expression":    {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"continue_expression": {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"generic_type":        {SemanticType: core.TypeGeneric},
	"reference_type":      {SemanticType: core.TypeReference},
	"parameter":           {SemanticType: core.StructureParameter},
	"field_declaration":   {SemanticType: core.StructureField, NameStrategy: core.NameFindIdentifier},
	"ERROR":               {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier:   base.NameField,
	core.NameFindCallTarget:   extractCallTarget,
	core.NameFindInDeclarator: extractLetName,
	core.NameCustom:           extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeFunctionWithParams:   extractFunctionSignature,
	core.NativeClassWithInheritance: extractImplTarget,
	core.NativeVariableWithType:     extractLetType,
	core.NativeArrowFunction:        extractClosureSignature,
	core.NativeFunctionCall:         extractCallArgs,
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

func extractLetName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if pat := node.ChildByFieldName("pattern"); pat != nil {
		if pat.Type() == "identifier" {
			return text(pat, source)
		}
		if id := base.FindFirstChildOfType(pat, "identifier"); id != nil {
			return text(id, source)
		}
	}
	return ""
}

func extractCustomName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "use_declaration":
		if arg := node.ChildByFieldName("argument"); arg != nil {
			return text(arg, source)
		}
	case "impl_item":
		if t := node.ChildByFieldName("type"); t != nil {
			return text(t, source)
		}
	case "attribute_item":
		if id := base.FindFirstChildOfType(node, "identifier", "scoped_identifier"); id != nil {
			return text(id, source)
		}
	case "line_comment", "block_comment":
		return commentSummary(text(node, source))
	}
	return ""
}

func commentSummary(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "///")
	trimmed = strings.TrimPrefix(trimmed, "//")
	trimmed = strings.TrimPrefix(trimmed, "/*")
	trimmed = strings.TrimSuffix(trimmed, "*/")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}

func extractCallTarget(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if fn := node.ChildByFieldName("function"); fn != nil {
		if fn.Type() == "field_expression" {
			if field := fn.ChildByFieldName("field"); field != nil {
				return text(field, source)
			}
		}
		return text(fn, source)
	}
	return ""
}

func extractFunctionSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{
		SignatureType: "function",
		Parameters:    base.ParamsFromField(node, source, "parameters"),
		Modifiers:     base.ModifiersFromKeywords(node, source, "pub", "async", "unsafe"),
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		ctx.QualifiedName = text(ret, source)
	}
	return ctx
}

func extractImplTarget(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "impl"}
	if trait := node.ChildByFieldName("trait"); trait != nil {
		ctx.QualifiedName = text(trait, source)
	}
	return ctx
}

func extractLetType(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if t := node.ChildByFieldName("type"); t != nil {
		return core.NativeContext{SignatureType: text(t, source)}
	}
	return core.NativeContext{}
}

func extractClosureSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	return core.NativeContext{SignatureType: "closure", Parameters: base.ParamsFromField(node, source, "parameters")}
}

func extractCallArgs(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	args := node.ChildByFieldName("arguments")
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

// isPublic checks for Rust's explicit "pub" visibility modifier; items
// without it are module-private regardless of name shape.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 || node == nil {
		return false
	}
	return base.FindFirstChildOfType(node, "visibility_modifier") != nil
}
