// Package csharp adapts C# source through tree-sitter's C# grammar
// into the shared semantic taxonomy.
package csharp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tscsharp "github.com/smacker/go-tree-sitter/csharp"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "csharp",
		Aliases:      []string{"cs", "c#"},
		Extensions:   []string{".cs"},
		Grammar:      tscsharp.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"compilation_unit":            {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"namespace_declaration":       {SemanticType: core.DefinitionNamespace, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"using_directive":             {SemanticType: core.ImportImport, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"method_declaration":          {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeMethodDefinition, Flags: core.FlagConstruct | core.FlagEmbodied},
	"constructor_declaration":     {SemanticType: core.DefinitionConstructor, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeMethodDefinition, Flags: core.FlagConstruct | core.FlagEmbodied},
	"lambda_expression":           {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeArrowFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"class_declaration":           {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"interface_declaration":       {SemanticType: core.DefinitionInterface, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeInterfaceDefinition, Flags: core.FlagConstruct},
	"struct_declaration":          {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"enum_declaration":            {SemanticType: core.DefinitionEnum, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"property_declaration":        {SemanticType: core.StructureField, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeVariableWithType},
	"field_declaration":           {SemanticType: core.StructureField, NameStrategy: core.NameFindInDeclarator, NativeStrategy: core.NativeVariableWithType},
	"local_declaration_statement": {SemanticType: core.DefinitionVariable, NameStrategy: core.NameFindInDeclarator, Flags: core.FlagConstruct},
	"attribute":                   {SemanticType: core.AnnotationDecorator, NameStrategy: core.NameFindIdentifier},
	"invocation_expression":       {SemanticType: core.CallMethod, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"object_creation_expression":  {SemanticType: core.CallConstructor, NameStrategy: core.NameFindIdentifier},
	"comment":                     {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"identifier":                  {SemanticType: core.IdentifierName},
	"string_literal":              {SemanticType: core.LiteralString},
	"integer_literal":             {SemanticType: core.LiteralNumber},
	"real_literal":                {SemanticType: core.LiteralNumber},
	"true":                        {SemanticType: core.LiteralBoolean},
	"false":                       {SemanticType: core.LiteralBoolean},
	"if_statement":                {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"switch_statement":            {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"conditional_expression":      {SemanticType: core.ConditionalTernary},
	"for_statement":               {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"foreach_statement":           {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_statement":             {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"return_statement":            {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"break_statement":             {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"continue_statement":          {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"throw_statement":             {SemanticType: core.JumpThrow, Flags: core.FlagConstruct},
	"try_statement":               {SemanticType: core.ExceptionTry, Flags: core.FlagConstruct},
	"catch_clause":                {SemanticType: core.ExceptionCatch, Flags: core.FlagConstruct},
	"finally_clause":              {SemanticType: core.ExceptionFinally, Flags: core.FlagConstruct},
	"generic_name":                {SemanticType: core.TypeGeneric},
	"parameter":                   {SemanticType: core.StructureParameter},
	"ERROR":                       {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier:   base.NameField,
	core.NameFindCallTarget:   extractCallTarget,
	core.NameFindInDeclarator: extractDeclaratorName,
	core.NameCustom:           extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeMethodDefinition:     extractMethodSignature,
	core.NativeClassWithInheritance: extractClassHeritage,
	core.NativeInterfaceDefinition:  extractInterfaceBase,
	core.NativeVariableWithType:     extractVariableType,
	core.NativeArrowFunction:        extractLambdaSignature,
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

func extractDeclaratorName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if decl := base.FindFirstChildOfType(node, "variable_declarator"); decl != nil {
		if name := base.FindFirstChildOfType(decl, "identifier"); name != nil {
			return text(name, source)
		}
	}
	if decl := base.FindFirstChildOfType(node, "variable_declaration"); decl != nil {
		if v := base.FindFirstChildOfType(decl, "variable_declarator"); v != nil {
			if name := base.FindFirstChildOfType(v, "identifier"); name != nil {
				return text(name, source)
			}
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
	case "using_directive":
		if name := base.FindFirstChildOfType(node, "qualified_name", "identifier"); name != nil {
			return text(name, source)
		}
	case "comment":
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
	fn := node.ChildByFieldName("function")
	if fn == nil {
		return ""
	}
	if fn.Type() == "member_access_expression" {
		if name := fn.ChildByFieldName("name"); name != nil {
			return text(name, source)
		}
	}
	return text(fn, source)
}

func extractMethodSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{
		SignatureType: "method",
		Parameters:    base.ParamsFromField(node, source, "parameters"),
		Modifiers:     base.ModifiersFromKeywords(node, source, "public", "private", "protected", "internal", "static", "virtual", "override", "async", "abstract"),
	}
	if ret := node.ChildByFieldName("returns"); ret != nil {
		ctx.QualifiedName = text(ret, source)
	} else if ret := node.ChildByFieldName("type"); ret != nil {
		ctx.QualifiedName = text(ret, source)
	}
	return ctx
}

func extractClassHeritage(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{
		SignatureType: "class",
		Modifiers:     base.ModifiersFromKeywords(node, source, "public", "internal", "abstract", "sealed", "partial"),
	}
	if base := base.FindFirstChildOfType(node, "base_list"); base != nil {
		ctx.QualifiedName = text(base, source)
	}
	return ctx
}

func extractInterfaceBase(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "interface"}
	if base := base.FindFirstChildOfType(node, "base_list"); base != nil {
		ctx.QualifiedName = text(base, source)
	}
	return ctx
}

func extractVariableType(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{Modifiers: base.ModifiersFromKeywords(node, source, "public", "private", "protected", "internal", "static", "readonly")}
	if t := node.ChildByFieldName("type"); t != nil {
		ctx.SignatureType = text(t, source)
	}
	return ctx
}

func extractLambdaSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "lambda"}
	if params := node.ChildByFieldName("parameters"); params != nil {
		ctx.Parameters = base.ParamsFromField(node, source, "parameters")
	} else if single := node.ChildByFieldName("parameter"); single != nil {
		ctx.Parameters = []core.Param{{Name: text(single, source)}}
	}
	return ctx
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

// isPublic defers to the explicit "public" modifier keyword; C# has no
// naming-convention fallback for visibility.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 || node == nil {
		return false
	}
	for _, m := range base.ModifiersFromKeywords(node, source, "public") {
		if m == "public" {
			return true
		}
	}
	return false
}
