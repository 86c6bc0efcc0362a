// Package cpp adapts C++ source through tree-sitter's C++ grammar into
// the shared semantic taxonomy.
package cpp

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tscpp "github.com/smacker/go-tree-sitter/cpp"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "cpp",
		Aliases:      []string{"c++", "cxx"},
		Extensions:   []string{".cpp", ".cc", ".cxx", ".hpp", ".hh"},
		Grammar:      tscpp.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"translation_unit":      {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"function_definition":   {SemanticType: core.DefinitionFunction, NameStrategy: core.NameCustom, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"declaration":           {SemanticType: core.DefinitionVariable, NameStrategy: core.NameCustom, NativeStrategy: core.NativeVariableWithType, Flags: core.FlagConstruct},
	"class_specifier":       {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"struct_specifier":      {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"enum_specifier":        {SemanticType: core.DefinitionEnum, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"namespace_definition":  {SemanticType: core.DefinitionNamespace, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"template_declaration":  {SemanticType: core.TypeGeneric, Flags: core.FlagConstruct},
	"lambda_expression":     {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeArrowFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"preproc_include":       {SemanticType: core.ImportImport, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"call_expression":       {SemanticType: core.CallFunction, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"new_expression":        {SemanticType: core.CallConstructor, NameStrategy: core.NameCustom},
	"comment":               {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"identifier":            {SemanticType: core.IdentifierName},
	"field_identifier":      {SemanticType: core.IdentifierProperty},
	"string_literal":        {SemanticType: core.LiteralString},
	"number_literal":        {SemanticType: core.LiteralNumber},
	"true":                  {SemanticType: core.LiteralBoolean},
	"false":                 {SemanticType: core.LiteralBoolean},
	"if_statement":          {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"switch_statement":      {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"for_statement":         {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"for_range_loop":        {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_statement":       {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"return_statement":      {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"break_statement":       {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"continue_statement":    {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"throw_statement":       {SemanticType: core.JumpThrow, Flags: core.FlagConstruct},
	"try_statement":         {SemanticType: core.ExceptionTry, Flags: core.FlagConstruct},
	"catch_clause":          {SemanticType: core.ExceptionCatch, Flags: core.FlagConstruct},
	"template_type":         {SemanticType: core.TypeGeneric},
	"qualified_identifier":  {SemanticType: core.IdentifierQualified},
	"parameter_declaration": {SemanticType: core.StructureParameter},
	"field_declaration":     {SemanticType: core.StructureField, NameStrategy: core.NameCustom},
	"ERROR":                 {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier: base.NameField,
	core.NameFindCallTarget: extractCallTarget,
	core.NameCustom:         extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeFunctionWithParams:   extractFunctionSignature,
	core.NativeVariableWithType:     extractDeclarationType,
	core.NativeClassWithInheritance: extractClassHeritage,
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

func declaratorName(n *sitter.Node, source []byte) string {
	cur := n
	for cur != nil {
		switch cur.Type() {
		case "identifier", "field_identifier", "qualified_identifier", "destructor_name", "operator_name":
			return text(cur, source)
		}
		if inner := cur.ChildByFieldName("declarator"); inner != nil {
			cur = inner
			continue
		}
		if id := base.FindFirstChildOfType(cur, "identifier", "field_identifier", "qualified_identifier"); id != nil {
			return text(id, source)
		}
		return ""
	}
	return ""
}

func extractCustomName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "function_definition", "declaration", "field_declaration":
		if d := node.ChildByFieldName("declarator"); d != nil {
			return declaratorName(d, source)
		}
	case "new_expression":
		if t := node.ChildByFieldName("type"); t != nil {
			return text(t, source)
		}
	case "preproc_include":
		if path := base.FindFirstChildOfType(node, "string_literal", "system_lib_string"); path != nil {
			return strings.Trim(text(path, source), `"<>`)
		}
	case "comment":
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
	ctx := core.NativeContext{SignatureType: "function"}
	if d := node.ChildByFieldName("declarator"); d != nil {
		ctx.Parameters = base.ParamsFromField(d, source, "parameters")
	}
	if t := node.ChildByFieldName("type"); t != nil {
		ctx.QualifiedName = text(t, source)
	}
	return ctx
}

func extractDeclarationType(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if t := node.ChildByFieldName("type"); t != nil {
		return core.NativeContext{SignatureType: text(t, source)}
	}
	return core.NativeContext{}
}

func extractClassHeritage(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "class"}
	if base := base.FindFirstChildOfType(node, "base_class_clause"); base != nil {
		ctx.QualifiedName = text(base, source)
	}
	return ctx
}

func extractLambdaSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	return core.NativeContext{SignatureType: "lambda", Parameters: base.ParamsFromField(node, source, "parameters")}
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

// isPublic mirrors C: C++ visibility (public/private/protected) is a
// class-member-section concept, not a per-declaration grammar field, so
// every named symbol counts as public; access specifiers are not read.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	return len(name) > 0
}
