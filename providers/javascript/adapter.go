// Package javascript adapts JavaScript (and JSX) source through
// tree-sitter's JavaScript grammar into the shared semantic taxonomy.
package javascript

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsjs "github.com/smacker/go-tree-sitter/javascript"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "javascript",
		Aliases:      []string{"js", "jsx"},
		Extensions:   []string{".js", ".jsx", ".mjs", ".cjs"},
		Grammar:      tsjs.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"program":                        {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"function_declaration":           {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"generator_function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"method_definition":              {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindProperty, NativeStrategy: core.NativeMethodDefinition, Flags: core.FlagConstruct | core.FlagEmbodied},
	"arrow_function":                 {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeArrowFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"function_expression":            {SemanticType: core.DefinitionLambda, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"class_declaration":              {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"class":                          {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"variable_declaration":           {SemanticType: core.DefinitionVariable, Flags: core.FlagConstruct},
	"lexical_declaration":            {SemanticType: core.DefinitionVariable, Flags: core.FlagConstruct},
	"variable_declarator":            {SemanticType: core.DefinitionVariable, NameStrategy: core.NameFindAssignmentTarget, NativeStrategy: core.NativeVariableWithType},
	"import_statement":               {SemanticType: core.ImportImport, NativeStrategy: core.NativeImportStatement, Flags: core.FlagConstruct},
	"export_statement":               {SemanticType: core.ImportExport, Flags: core.FlagConstruct},
	"call_expression":                {SemanticType: core.CallFunction, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"new_expression":                 {SemanticType: core.CallConstructor, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"comment":                        {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"identifier":                     {SemanticType: core.IdentifierName},
	"property_identifier":            {SemanticType: core.IdentifierProperty},
	"string":                         {SemanticType: core.LiteralString},
	"template_string":                {SemanticType: core.LiteralString},
	"number":                         {SemanticType: core.LiteralNumber},
	"true":                           {SemanticType: core.LiteralBoolean},
	"false":                          {SemanticType: core.LiteralBoolean},
	"if_statement":                   {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"switch_statement":               {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"ternary_expression":             {SemanticType: core.ConditionalTernary},
	"for_statement":                  {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"for_in_statement":               {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_statement":                {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"return_statement":               {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"break_statement":                {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"continue_statement":             {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"throw_statement":                {SemanticType: core.JumpThrow, Flags: core.FlagConstruct},
	"try_statement":                  {SemanticType: core.ExceptionTry, Flags: core.FlagConstruct},
	"catch_clause":                   {SemanticType: core.ExceptionCatch, Flags: core.FlagConstruct},
	"finally_clause":                 {SemanticType: core.ExceptionFinally, Flags: core.FlagConstruct},
	"decorator":                      {SemanticType: core.AnnotationDecorator, NameStrategy: core.NameCustom},
	"required_parameter":             {SemanticType: core.StructureParameter},
	"optional_parameter":             {SemanticType: core.StructureParameter},
	"ERROR":                          {SemanticType: core.SyntaxError},
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
	core.NativeVariableWithType:     extractDeclaratorInit,
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
	if nameNode := node.ChildByFieldName("name"); nameNode != nil && nameNode.Type() == "identifier" {
		return text(nameNode, source)
	}
	return ""
}

func extractCustomName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if node.Type() == "comment" {
		trimmed := strings.TrimSpace(text(node, source))
		trimmed = strings.TrimPrefix(trimmed, "//")
		trimmed = strings.TrimPrefix(trimmed, "/*")
		trimmed = strings.TrimSuffix(trimmed, "*/")
		trimmed = strings.TrimSpace(trimmed)
		if idx := strings.Index(trimmed, "\n"); idx >= 0 {
			trimmed = trimmed[:idx]
		}
		return trimmed
	}
	if node.Type() == "decorator" {
		if id := base.FindFirstChildOfType(node, "identifier", "call_expression"); id != nil {
			return text(id, source)
		}
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

func extractFunctionSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "function", Parameters: base.ParamsFromField(node, source, "parameters")}
	if isAsync(node) {
		ctx.SignatureType = "async_function"
	}
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
	ctx.Modifiers = base.ModifiersFromKeywords(node, source, "static", "get", "set", "async")
	return ctx
}

func extractArrowSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "arrow_function"}
	if params := node.ChildByFieldName("parameters"); params != nil {
		ctx.Parameters = base.ParamsFromField(node, source, "parameters")
	} else if single := node.ChildByFieldName("parameter"); single != nil {
		ctx.Parameters = []core.Param{{Name: text(single, source)}}
	}
	if isAsync(node) {
		ctx.SignatureType = "async_arrow_function"
	}
	return ctx
}

func isAsync(node *sitter.Node) bool {
	count := int(node.ChildCount())
	for i := 0; i < count; i++ {
		child := node.Child(i)
		if child != nil && child.Type() == "async" {
			return true
		}
	}
	return false
}

func extractClassHeritage(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "class"}
	if heritage := base.FindFirstChildOfType(node, "class_heritage"); heritage != nil {
		if id := base.FindFirstChildOfType(heritage, "identifier", "member_expression"); id != nil {
			ctx.Modifiers = []string{text(id, source)}
		}
	}
	return ctx
}

func extractDeclaratorInit(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if value := node.ChildByFieldName("value"); value != nil {
		return core.NativeContext{SignatureType: value.Type()}
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

// isPublic applies JavaScript's PascalCase-or-exported convention: since
// the grammar has no visibility keyword, a leading capital letter (the
// community convention for constructors/classes/exported symbols) marks
// public; everything else defers to whether an enclosing export_statement
// wraps the declaration, which the flattener surfaces via the
// IMPORT_EXPORT semantic type on that ancestor rather than here.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 {
		return false
	}
	return name[0] >= 'A' && name[0] <= 'Z'
}
