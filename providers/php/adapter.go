// Package php adapts PHP source through tree-sitter's PHP grammar into
// the shared semantic taxonomy.
package php

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsphp "github.com/smacker/go-tree-sitter/php"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "php",
		Aliases:      nil,
		Extensions:   []string{".php", ".phtml"},
		Grammar:      tsphp.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"program":                    {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"function_definition":        {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"method_declaration":         {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeMethodDefinition, Flags: core.FlagConstruct | core.FlagEmbodied},
	"anonymous_function":         {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"arrow_function":             {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeArrowFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"class_declaration":          {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"interface_declaration":      {SemanticType: core.DefinitionInterface, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeInterfaceDefinition, Flags: core.FlagConstruct},
	"trait_declaration":          {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"enum_declaration":           {SemanticType: core.DefinitionEnum, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"property_declaration":       {SemanticType: core.StructureField, NameStrategy: core.NameFindInDeclarator, NativeStrategy: core.NativeVariableWithType},
	"const_declaration":          {SemanticType: core.DefinitionConstant, Flags: core.FlagConstruct},
	"assignment_expression":      {SemanticType: core.OperationAssignment, NameStrategy: core.NameFindAssignmentTarget},
	"namespace_use_declaration":  {SemanticType: core.ImportImport, NativeStrategy: core.NativeImportStatement, Flags: core.FlagConstruct},
	"namespace_definition":       {SemanticType: core.ImportPackage, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"function_call_expression":   {SemanticType: core.CallFunction, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"member_call_expression":     {SemanticType: core.CallMethod, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"object_creation_expression": {SemanticType: core.CallConstructor, NameStrategy: core.NameFindCallTarget},
	"comment":                    {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"attribute":                  {SemanticType: core.AnnotationDecorator, NameStrategy: core.NameFindIdentifier},
	"name":                       {SemanticType: core.IdentifierName},
	"variable_name":              {SemanticType: core.IdentifierName},
	"string":                     {SemanticType: core.LiteralString},
	"integer":                    {SemanticType: core.LiteralNumber},
	"float":                      {SemanticType: core.LiteralNumber},
	"boolean":                    {SemanticType: core.LiteralBoolean},
	"if_statement":               {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"switch_statement":           {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"for_statement":              {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"foreach_statement":          {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_statement":            {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"return_statement":           {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"break_statement":            {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"continue_statement":         {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"throw_expression":           {SemanticType: core.JumpThrow, Flags: core.FlagConstruct},
	"try_statement":              {SemanticType: core.ExceptionTry, Flags: core.FlagConstruct},
	"catch_clause":               {SemanticType: core.ExceptionCatch, Flags: core.FlagConstruct},
	"finally_clause":             {SemanticType: core.ExceptionFinally, Flags: core.FlagConstruct},
	"simple_parameter":           {SemanticType: core.StructureParameter},
	"ERROR":                      {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier:       base.NameField,
	core.NameFindInDeclarator:     extractPropertyVariableName,
	core.NameFindCallTarget:       extractCallTarget,
	core.NameFindAssignmentTarget: extractAssignmentTarget,
	core.NameCustom:               extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeFunctionWithParams:   extractFunctionSignature,
	core.NativeMethodDefinition:     extractMethodSignature,
	core.NativeArrowFunction:        extractArrowSignature,
	core.NativeClassWithInheritance: extractClassHeritage,
	core.NativeInterfaceDefinition:  extractInterfaceExtends,
	core.NativeVariableWithType:     extractPropertyType,
	core.NativeImportStatement:      extractUseClause,
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

func extractPropertyVariableName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if v := base.FindFirstChildOfType(node, "property_element"); v != nil {
		if id := base.FindFirstChildOfType(v, "variable_name"); id != nil {
			return strings.TrimPrefix(text(id, source), "$")
		}
	}
	if id := base.FindFirstChildOfType(node, "variable_name"); id != nil {
		return strings.TrimPrefix(text(id, source), "$")
	}
	return ""
}

func extractAssignmentTarget(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	left := node.ChildByFieldName("left")
	if left == nil || left.Type() != "variable_name" {
		return ""
	}
	return strings.TrimPrefix(text(left, source), "$")
}

func extractCustomName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if node.Type() == "comment" {
		trimmed := strings.TrimSpace(text(node, source))
		trimmed = strings.TrimPrefix(trimmed, "//")
		trimmed = strings.TrimPrefix(trimmed, "#")
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

func extractCallTarget(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if fn := node.ChildByFieldName("function"); fn != nil {
		return text(fn, source)
	}
	if name := node.ChildByFieldName("name"); name != nil {
		return text(name, source)
	}
	return ""
}

func extractFunctionSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "function", Parameters: base.ParamsFromField(node, source, "parameters")}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		ctx.QualifiedName = text(ret, source)
	}
	return ctx
}

func extractMethodSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := extractFunctionSignature(n, source)
	ctx.SignatureType = "method"
	ctx.Modifiers = base.ModifiersFromKeywords(node, source, "public", "private", "protected", "static", "abstract", "final")
	return ctx
}

func extractArrowSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	return core.NativeContext{SignatureType: "arrow_function", Parameters: base.ParamsFromField(node, source, "parameters")}
}

func extractClassHeritage(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "class"}
	ctx.Modifiers = base.ModifiersFromKeywords(node, source, "abstract", "final")
	if base := node.ChildByFieldName("base_clause"); base != nil {
		ctx.QualifiedName = text(base, source)
	}
	return ctx
}

func extractInterfaceExtends(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "interface"}
	if base := node.ChildByFieldName("base_clause"); base != nil {
		ctx.QualifiedName = text(base, source)
	}
	return ctx
}

func extractPropertyType(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{}
	ctx.Modifiers = base.ModifiersFromKeywords(node, source, "public", "private", "protected", "static", "readonly")
	if t := node.ChildByFieldName("type"); t != nil {
		ctx.SignatureType = text(t, source)
	}
	return ctx
}

func extractUseClause(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if name := base.FindFirstChildOfType(node, "qualified_name", "name"); name != nil {
		return core.NativeContext{QualifiedName: text(name, source)}
	}
	return core.NativeContext{}
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

// isPublic applies PHP's underscore-prefix convention, except that an
// explicit private/protected modifier on the node always marks it
// non-public, whatever its name.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 {
		return false
	}
	if node != nil {
		mods := base.ModifiersFromKeywords(node, source, "private", "protected")
		if len(mods) > 0 {
			return false
		}
	}
	return !strings.HasPrefix(name, "_")
}
