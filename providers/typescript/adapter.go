// Package typescript adapts TypeScript source through tree-sitter's
// TypeScript grammar with its own node mapping, which mirrors the
// JavaScript adapter's since the grammars share almost all
// statement/expression shapes, and adds the type-system-specific node
// types TypeScript introduces.
package typescript

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tstsx "github.com/smacker/go-tree-sitter/typescript/tsx"
	tsts "github.com/smacker/go-tree-sitter/typescript/typescript"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "typescript",
		Aliases:      []string{"ts"},
		Extensions:   []string{".ts"},
		Grammar:      tsts.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

// NewTSX builds the adapter for the .tsx dialect, which is a distinct
// grammar (JSX syntax grafted onto TypeScript) but shares this package's
// node mapping entirely.
func NewTSX() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "tsx",
		Aliases:      nil,
		Extensions:   []string{".tsx"},
		Grammar:      tstsx.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"program":                {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"function_declaration":   {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"method_definition":      {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindProperty, NativeStrategy: core.NativeMethodDefinition, Flags: core.FlagConstruct | core.FlagEmbodied},
	"method_signature":       {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindProperty, NativeStrategy: core.NativeFunctionWithParams},
	"arrow_function":         {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeArrowFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"function_expression":    {SemanticType: core.DefinitionLambda, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"class_declaration":      {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"interface_declaration":  {SemanticType: core.DefinitionInterface, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeInterfaceDefinition, Flags: core.FlagConstruct},
	"enum_declaration":       {SemanticType: core.DefinitionEnum, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeEnumDefinition, Flags: core.FlagConstruct},
	"type_alias_declaration": {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"variable_declarator":    {SemanticType: core.DefinitionVariable, NameStrategy: core.NameFindAssignmentTarget, NativeStrategy: core.NativeVariableWithType},
	"lexical_declaration":    {SemanticType: core.DefinitionVariable, Flags: core.FlagConstruct},
	"import_statement":       {SemanticType: core.ImportImport, NativeStrategy: core.NativeImportStatement, Flags: core.FlagConstruct},
	"export_statement":       {SemanticType: core.ImportExport, Flags: core.FlagConstruct},
	"call_expression":        {SemanticType: core.CallFunction, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"new_expression":         {SemanticType: core.CallConstructor, NameStrategy: core.NameFindCallTarget},
	"comment":                {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"decorator":              {SemanticType: core.AnnotationDecorator, NameStrategy: core.NameCustom},
	"identifier":             {SemanticType: core.IdentifierName},
	"property_identifier":    {SemanticType: core.IdentifierProperty},
	"type_identifier":        {SemanticType: core.TypeReference},
	"predefined_type":        {SemanticType: core.TypePrimitive},
	"union_type":             {SemanticType: core.TypeComposite},
	"intersection_type":      {SemanticType: core.TypeComposite},
	"generic_type":           {SemanticType: core.TypeGeneric},
	"string":                 {SemanticType: core.LiteralString},
	"number":                 {SemanticType: core.LiteralNumber},
	"true":                   {SemanticType: core.LiteralBoolean},
	"false":                  {SemanticType: core.LiteralBoolean},
	"if_statement":           {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"switch_statement":       {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"for_statement":          {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_statement":        {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"return_statement":       {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"throw_statement":        {SemanticType: core.JumpThrow, Flags: core.FlagConstruct},
	"try_statement":          {SemanticType: core.ExceptionTry, Flags: core.FlagConstruct},
	"catch_clause":           {SemanticType: core.ExceptionCatch, Flags: core.FlagConstruct},
	"required_parameter":     {SemanticType: core.StructureParameter},
	"optional_parameter":     {SemanticType: core.StructureParameter},
	"property_signature":     {SemanticType: core.StructureField, NameStrategy: core.NameFindProperty},
	"ERROR":                  {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier:       base.NameField,
	core.NameFindProperty:         extractPropertyName,
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
	core.NativeEnumDefinition:       extractEnumMembers,
	core.NativeVariableWithType:     extractDeclaratorType,
	core.NativeImportStatement:      extractImportSource,
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

func extractPropertyName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return text(nameNode, source)
	}
	return ""
}

func extractAssignmentTarget(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return text(nameNode, source)
	}
	return ""
}

func extractCallTarget(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	fn := node.ChildByFieldName("function")
	if fn == nil {
		fn = node.ChildByFieldName("constructor")
	}
	if fn == nil {
		return ""
	}
	if fn.Type() == "member_expression" {
		if prop := fn.ChildByFieldName("property"); prop != nil {
			return text(prop, source)
		}
	}
	return text(fn, source)
}

func extractCustomName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "comment":
		trimmed := strings.TrimSpace(text(node, source))
		trimmed = strings.TrimPrefix(trimmed, "//")
		trimmed = strings.TrimPrefix(trimmed, "/*")
		trimmed = strings.TrimSuffix(trimmed, "*/")
		trimmed = strings.TrimSpace(trimmed)
		if idx := strings.Index(trimmed, "\n"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		return trimmed
	case "decorator":
		if id := base.FindFirstChildOfType(node, "identifier", "call_expression"); id != nil {
			return text(id, source)
		}
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
	ctx.Modifiers = base.ModifiersFromKeywords(node, source, "public", "private", "protected", "static", "readonly", "async", "abstract")
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
	ctx.Modifiers = base.ModifiersFromKeywords(node, source, "abstract")
	if heritage := base.FindFirstChildOfType(node, "class_heritage"); heritage != nil {
		if id := base.FindFirstChildOfType(heritage, "identifier"); id != nil {
			ctx.QualifiedName = text(id, source)
		}
	}
	return ctx
}

func extractInterfaceExtends(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "interface"}
	if extends := base.FindFirstChildOfType(node, "extends_type_clause"); extends != nil {
		var bases []string
		count := int(extends.NamedChildCount())
		for i := 0; i < count; i++ {
			child := extends.NamedChild(i)
			if child != nil {
				bases = append(bases, text(child, source))
			}
		}
		ctx.Modifiers = bases
	}
	return ctx
}

func extractEnumMembers(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	body := node.ChildByFieldName("body")
	if body == nil {
		return core.NativeContext{SignatureType: "enum"}
	}
	var members []string
	count := int(body.NamedChildCount())
	for i := 0; i < count; i++ {
		child := body.NamedChild(i)
		if child != nil {
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				members = append(members, text(nameNode, source))
			}
		}
	}
	return core.NativeContext{SignatureType: "enum", Modifiers: members}
}

func extractDeclaratorType(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if t := node.ChildByFieldName("type"); t != nil {
		return core.NativeContext{SignatureType: text(t, source)}
	}
	return core.NativeContext{}
}

func extractImportSource(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if src := node.ChildByFieldName("source"); src != nil {
		return core.NativeContext{QualifiedName: strings.Trim(text(src, source), `"'`)}
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

// isPublic mirrors JavaScript's capital-letter convention; TypeScript's
// actual public/private/protected keywords are surfaced per-member
// through Modifiers instead (IsPublic applies to the name-level
// convention, not the class-member access modifier).
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 {
		return false
	}
	return name[0] >= 'A' && name[0] <= 'Z'
}
