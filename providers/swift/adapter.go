// Package swift adapts Swift source through tree-sitter's Swift grammar
// into the shared semantic taxonomy.
package swift

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsswift "github.com/smacker/go-tree-sitter/swift"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "swift",
		Extensions:   []string{".swift"},
		Grammar:      tsswift.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"source_file":          {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"import_declaration":   {SemanticType: core.ImportImport, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"function_declaration": {SemanticType: core.DefinitionFunction, NameStrategy: core.NameCustom, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"lambda_literal":       {SemanticType: core.DefinitionLambda, Flags: core.FlagConstruct | core.FlagEmbodied},
	"class_declaration":    {SemanticType: core.DefinitionClass, NameStrategy: core.NameCustom, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"protocol_declaration": {SemanticType: core.DefinitionInterface, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"property_declaration": {SemanticType: core.StructureField, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"call_expression":      {SemanticType: core.CallFunction, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"comment":              {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"multiline_comment":    {SemanticType: core.CommentBlock, NameStrategy: core.NameCustom},
	"simple_identifier":    {SemanticType: core.IdentifierName},
	"line_string_literal":  {SemanticType: core.LiteralString},
	"integer_literal":      {SemanticType: core.LiteralNumber},
	"real_literal":         {SemanticType: core.LiteralNumber},
	"boolean_literal":      {SemanticType: core.LiteralBoolean},
	"if_statement":         {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"switch_statement":     {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"for_statement":        {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_statement":      {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"parameter":            {SemanticType: core.StructureParameter},
	"ERROR":                {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindCallTarget: extractCallTarget,
	core.NameCustom:         extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeFunctionWithParams:   extractFunctionSignature,
	core.NativeClassWithInheritance: extractClassHeritage,
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
	case "function_declaration":
		if id := base.FindFirstChildOfType(node, "simple_identifier"); id != nil {
			return text(id, source)
		}
	case "class_declaration", "protocol_declaration":
		if id := base.FindFirstChildOfType(node, "type_identifier"); id != nil {
			return text(id, source)
		}
	case "property_declaration":
		if pat := base.FindFirstChildOfType(node, "pattern"); pat != nil {
			if id := base.FindFirstChildOfType(pat, "simple_identifier"); id != nil {
				return text(id, source)
			}
		}
	case "import_declaration":
		if path := base.FindFirstChildOfType(node, "identifier"); path != nil {
			return text(path, source)
		}
	case "comment", "multiline_comment":
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
		Modifiers:     base.ModifiersFromKeywords(node, source, "public", "private", "internal", "fileprivate", "open", "static", "override", "async"),
	}
	if ret := base.FindFirstChildOfType(node, "function_type"); ret != nil {
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
		Modifiers:     base.ModifiersFromKeywords(node, source, "public", "private", "internal", "open", "final"),
	}
	if heritage := base.FindFirstChildOfType(node, "inheritance_specifier", "type_inheritance_clause"); heritage != nil {
		ctx.QualifiedName = text(heritage, source)
	}
	return ctx
}

func extractCallArgs(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	args := base.FindFirstChildOfType(node, "call_suffix")
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

// isPublic counts only an explicit public or open modifier as public;
// Swift's default access level is internal, which this implementation
// counts as not externally public.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 || node == nil {
		return false
	}
	for _, m := range base.ModifiersFromKeywords(node, source, "public", "open") {
		if m == "public" || m == "open" {
			return true
		}
	}
	return false
}
