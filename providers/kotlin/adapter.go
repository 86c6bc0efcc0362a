// Package kotlin adapts Kotlin source through tree-sitter's Kotlin
// grammar into the shared semantic taxonomy.
package kotlin

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tskotlin "github.com/smacker/go-tree-sitter/kotlin"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "kotlin",
		Aliases:      []string{"kt"},
		Extensions:   []string{".kt", ".kts"},
		Grammar:      tskotlin.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"source_file":          {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"package_header":       {SemanticType: core.ImportPackage, NameStrategy: core.NameCustom},
	"import_header":        {SemanticType: core.ImportImport, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"lambda_literal":       {SemanticType: core.DefinitionLambda, Flags: core.FlagConstruct | core.FlagEmbodied},
	"class_declaration":    {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"object_declaration":   {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"property_declaration": {SemanticType: core.StructureField, NameStrategy: core.NameCustom, NativeStrategy: core.NativeVariableWithType, Flags: core.FlagConstruct},
	"annotation":           {SemanticType: core.AnnotationDecorator, NameStrategy: core.NameFindIdentifier},
	"call_expression":      {SemanticType: core.CallFunction, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"line_comment":         {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"multiline_comment":    {SemanticType: core.CommentBlock, NameStrategy: core.NameCustom},
	"simple_identifier":    {SemanticType: core.IdentifierName},
	"string_literal":       {SemanticType: core.LiteralString},
	"integer_literal":      {SemanticType: core.LiteralNumber},
	"real_literal":         {SemanticType: core.LiteralNumber},
	"boolean_literal":      {SemanticType: core.LiteralBoolean},
	"if_expression":        {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"when_expression":      {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"for_statement":        {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_statement":      {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"jump_expression":      {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"type_arguments":       {SemanticType: core.TypeGeneric},
	"parameter":            {SemanticType: core.StructureParameter},
	"ERROR":                {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier: base.NameField,
	core.NameFindCallTarget: extractCallTarget,
	core.NameCustom:         extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeFunctionWithParams:   extractFunctionSignature,
	core.NativeClassWithInheritance: extractClassHeritage,
	core.NativeVariableWithType:     extractPropertyType,
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

func extractCustomName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "package_header", "import_header":
		if id := base.FindFirstChildOfType(node, "identifier"); id != nil {
			return text(id, source)
		}
	case "property_declaration":
		if decl := base.FindFirstChildOfType(node, "variable_declaration"); decl != nil {
			if id := base.FindFirstChildOfType(decl, "simple_identifier"); id != nil {
				return text(id, source)
			}
		}
	case "line_comment", "multiline_comment":
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

func extractCallTarget(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if fn := node.ChildByFieldName("function"); fn != nil {
		if fn.Type() == "navigation_expression" {
			if suffix := base.FindFirstChildOfType(fn, "navigation_suffix"); suffix != nil {
				return text(suffix, source)
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
		Modifiers:     base.ModifiersFromKeywords(node, source, "public", "private", "protected", "internal", "open", "override", "suspend"),
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
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
		Modifiers:     base.ModifiersFromKeywords(node, source, "public", "private", "internal", "open", "abstract", "sealed", "data"),
	}
	if delegation := base.FindFirstChildOfType(node, "delegation_specifiers"); delegation != nil {
		ctx.QualifiedName = text(delegation, source)
	}
	return ctx
}

func extractPropertyType(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{Modifiers: base.ModifiersFromKeywords(node, source, "public", "private", "protected", "internal", "val", "var", "const")}
	if t := base.FindFirstChildOfType(node, "user_type"); t != nil {
		ctx.SignatureType = text(t, source)
	}
	return ctx
}

func extractCallArgs(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	args := base.FindFirstChildOfType(node, "value_arguments")
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

// isPublic treats the absence of private/protected/internal modifiers
// as public, matching Kotlin's default visibility.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 || node == nil {
		return false
	}
	mods := base.ModifiersFromKeywords(node, source, "private", "protected", "internal")
	return len(mods) == 0
}
