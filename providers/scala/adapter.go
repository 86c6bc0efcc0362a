// Package scala adapts Scala source through tree-sitter's Scala grammar
// into the shared semantic taxonomy.
package scala

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsscala "github.com/smacker/go-tree-sitter/scala"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "scala",
		Extensions:   []string{".scala", ".sc"},
		Grammar:      tsscala.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"compilation_unit":       {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"package_clause":         {SemanticType: core.ImportPackage, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"import_declaration":     {SemanticType: core.ImportImport, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"function_definition":    {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"lambda_expression":      {SemanticType: core.DefinitionLambda, Flags: core.FlagConstruct | core.FlagEmbodied},
	"class_definition":       {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"object_definition":      {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"trait_definition":       {SemanticType: core.DefinitionInterface, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"val_definition":         {SemanticType: core.DefinitionConstant, NameStrategy: core.NameCustom, NativeStrategy: core.NativeVariableWithType, Flags: core.FlagConstruct},
	"var_definition":         {SemanticType: core.DefinitionVariable, NameStrategy: core.NameCustom, NativeStrategy: core.NativeVariableWithType, Flags: core.FlagConstruct},
	"annotation":             {SemanticType: core.AnnotationDecorator, NameStrategy: core.NameFindIdentifier},
	"call_expression":        {SemanticType: core.CallFunction, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"comment":                {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"identifier":             {SemanticType: core.IdentifierName},
	"string":                 {SemanticType: core.LiteralString},
	"integer_literal":        {SemanticType: core.LiteralNumber},
	"floating_point_literal": {SemanticType: core.LiteralNumber},
	"boolean_literal":        {SemanticType: core.LiteralBoolean},
	"if_expression":          {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"match_expression":       {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"for_expression":         {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_expression":       {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"type_identifier":        {SemanticType: core.TypeReference},
	"generic_type":           {SemanticType: core.TypeGeneric},
	"parameter":              {SemanticType: core.StructureParameter},
	"ERROR":                  {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier: base.NameField,
	core.NameFindCallTarget: extractCallTarget,
	core.NameCustom:         extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeFunctionWithParams:   extractFunctionSignature,
	core.NativeClassWithInheritance: extractClassHeritage,
	core.NativeVariableWithType:     extractValDefType,
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
	case "import_declaration":
		if path := base.FindFirstChildOfType(node, "stable_identifier", "identifier"); path != nil {
			return text(path, source)
		}
	case "val_definition", "var_definition":
		if pat := node.ChildByFieldName("pattern"); pat != nil {
			return text(pat, source)
		}
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
	}
	return ""
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
		Modifiers:     base.ModifiersFromKeywords(node, source, "private", "protected", "override", "final"),
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
		Modifiers:     base.ModifiersFromKeywords(node, source, "private", "protected", "abstract", "final", "sealed", "case"),
	}
	if ext := base.FindFirstChildOfType(node, "extends_clause", "template_body"); ext != nil {
		ctx.QualifiedName = text(ext, source)
	}
	return ctx
}

func extractValDefType(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if t := node.ChildByFieldName("type"); t != nil {
		return core.NativeContext{SignatureType: text(t, source)}
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

// isPublic treats the absence of private/protected modifiers as
// public, matching Scala's default visibility.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 || node == nil {
		return false
	}
	mods := base.ModifiersFromKeywords(node, source, "private", "protected")
	return len(mods) == 0
}
