// Package java adapts Java source through tree-sitter's Java grammar
// into the shared semantic taxonomy.
package java

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsjava "github.com/smacker/go-tree-sitter/java"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "java",
		Extensions:   []string{".java"},
		Grammar:      tsjava.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"program":                        {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"package_declaration":            {SemanticType: core.ImportPackage, NameStrategy: core.NameCustom},
	"import_declaration":             {SemanticType: core.ImportImport, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"method_declaration":             {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeMethodDefinition, Flags: core.FlagConstruct | core.FlagEmbodied},
	"constructor_declaration":        {SemanticType: core.DefinitionConstructor, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeMethodDefinition, Flags: core.FlagConstruct | core.FlagEmbodied},
	"lambda_expression":              {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeArrowFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"class_declaration":              {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"interface_declaration":          {SemanticType: core.DefinitionInterface, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeInterfaceDefinition, Flags: core.FlagConstruct},
	"enum_declaration":               {SemanticType: core.DefinitionEnum, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"record_declaration":             {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"field_declaration":              {SemanticType: core.StructureField, NameStrategy: core.NameFindInDeclarator, NativeStrategy: core.NativeVariableWithType},
	"local_variable_declaration":     {SemanticType: core.DefinitionVariable, NameStrategy: core.NameFindInDeclarator, NativeStrategy: core.NativeVariableWithType, Flags: core.FlagConstruct},
	"annotation":                     {SemanticType: core.AnnotationDecorator, NameStrategy: core.NameFindIdentifier},
	"marker_annotation":              {SemanticType: core.AnnotationDecorator, NameStrategy: core.NameFindIdentifier},
	"method_invocation":              {SemanticType: core.CallMethod, NameStrategy: core.NameFindProperty, NativeStrategy: core.NativeFunctionCall},
	"object_creation_expression":     {SemanticType: core.CallConstructor, NameStrategy: core.NameFindIdentifier},
	"line_comment":                   {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"block_comment":                  {SemanticType: core.CommentBlock, NameStrategy: core.NameCustom},
	"identifier":                     {SemanticType: core.IdentifierName},
	"string_literal":                 {SemanticType: core.LiteralString},
	"decimal_integer_literal":        {SemanticType: core.LiteralNumber},
	"decimal_floating_point_literal": {SemanticType: core.LiteralNumber},
	"true":                           {SemanticType: core.LiteralBoolean},
	"false":                          {SemanticType: core.LiteralBoolean},
	"if_statement":                   {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"switch_expression":              {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"ternary_expression":             {SemanticType: core.ConditionalTernary},
	"for_statement":                  {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"enhanced_for_statement":         {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_statement":                {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"return_statement":               {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"break_statement":                {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"continue_statement":             {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"throw_statement":                {SemanticType: core.JumpThrow, Flags: core.FlagConstruct},
	"try_statement":                  {SemanticType: core.ExceptionTry, Flags: core.FlagConstruct},
	"catch_clause":                   {SemanticType: core.ExceptionCatch, Flags: core.FlagConstruct},
	"finally_clause":                 {SemanticType: core.ExceptionFinally, Flags: core.FlagConstruct},
	"generic_type":                   {SemanticType: core.TypeGeneric},
	"formal_parameter":               {SemanticType: core.StructureParameter},
	"ERROR":                          {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier:   base.NameField,
	core.NameFindProperty:     extractMethodName,
	core.NameFindInDeclarator: extractDeclaratorName,
	core.NameCustom:           extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeMethodDefinition:     extractMethodSignature,
	core.NativeClassWithInheritance: extractClassHeritage,
	core.NativeInterfaceDefinition:  extractInterfaceExtends,
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

func extractMethodName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if name := node.ChildByFieldName("name"); name != nil {
		return text(name, source)
	}
	return ""
}

func extractDeclaratorName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if decl := base.FindFirstChildOfType(node, "variable_declarator"); decl != nil {
		if name := decl.ChildByFieldName("name"); name != nil {
			return text(name, source)
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
	case "package_declaration", "import_declaration":
		if name := base.FindFirstChildOfType(node, "scoped_identifier", "identifier"); name != nil {
			return text(name, source)
		}
	case "line_comment", "block_comment":
		return commentSummary(text(node, source))
	}
	return ""
}

func commentSummary(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "//")
	trimmed = strings.TrimPrefix(trimmed, "/*")
	trimmed = strings.TrimSuffix(trimmed, "*/")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}

func extractMethodSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{
		SignatureType: "method",
		Parameters:    base.ParamsFromField(node, source, "parameters"),
		Modifiers:     base.ModifiersFromKeywords(node, source, "public", "private", "protected", "static", "final", "abstract", "synchronized"),
	}
	if ret := node.ChildByFieldName("type"); ret != nil {
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
		Modifiers:     base.ModifiersFromKeywords(node, source, "public", "abstract", "final"),
	}
	if super := node.ChildByFieldName("superclass"); super != nil {
		ctx.QualifiedName = text(super, source)
	}
	return ctx
}

func extractInterfaceExtends(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "interface"}
	if ext := base.FindFirstChildOfType(node, "extends_interfaces"); ext != nil {
		ctx.QualifiedName = text(ext, source)
	}
	return ctx
}

func extractVariableType(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{Modifiers: base.ModifiersFromKeywords(node, source, "public", "private", "protected", "static", "final")}
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

// isPublic defers to the explicit "public" modifier keyword; Java has no
// naming convention fallback the way Python/PHP do.
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
