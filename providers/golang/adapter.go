// Package golang adapts Go source through tree-sitter's Go grammar into
// the shared semantic taxonomy.
package golang

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsgolang "github.com/smacker/go-tree-sitter/golang"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

// New builds the Go language adapter.
func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "go",
		Aliases:      []string{"golang"},
		Extensions:   []string{".go"},
		Grammar:      tsgolang.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"source_file":                 {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"package_clause":              {SemanticType: core.ImportPackage, NameStrategy: core.NameFindIdentifier},
	"import_declaration":          {SemanticType: core.ImportImport, Flags: core.FlagConstruct},
	"import_spec":                 {SemanticType: core.ImportImport, NameStrategy: core.NameCustom, NativeStrategy: core.NativeImportStatement},
	"function_declaration":        {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"method_declaration":          {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeMethodDefinition, Flags: core.FlagConstruct | core.FlagEmbodied},
	"func_literal":                {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"type_spec":                   {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"type_declaration":            {SemanticType: core.DefinitionClass, Flags: core.FlagConstruct},
	"interface_type":              {SemanticType: core.DefinitionInterface, NativeStrategy: core.NativeInterfaceDefinition},
	"var_declaration":             {SemanticType: core.DefinitionVariable, NativeStrategy: core.NativeVariableWithType, Flags: core.FlagConstruct},
	"const_declaration":           {SemanticType: core.DefinitionConstant, NativeStrategy: core.NativeVariableWithType, Flags: core.FlagConstruct},
	"short_var_declaration":       {SemanticType: core.DefinitionVariable, NameStrategy: core.NameCustom, Flags: core.FlagConstruct},
	"var_spec":                    {SemanticType: core.DefinitionVariable, NameStrategy: core.NameFindInDeclarator, NativeStrategy: core.NativeVariableWithType},
	"const_spec":                  {SemanticType: core.DefinitionConstant, NameStrategy: core.NameFindInDeclarator},
	"call_expression":             {SemanticType: core.CallFunction, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"comment":                     {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"identifier":                  {SemanticType: core.IdentifierName},
	"field_identifier":            {SemanticType: core.IdentifierProperty},
	"interpreted_string_literal":  {SemanticType: core.LiteralString},
	"raw_string_literal":          {SemanticType: core.LiteralString},
	"int_literal":                 {SemanticType: core.LiteralNumber},
	"float_literal":               {SemanticType: core.LiteralNumber},
	"true":                        {SemanticType: core.LiteralBoolean},
	"false":                       {SemanticType: core.LiteralBoolean},
	"if_statement":                {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"expression_switch_statement": {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"type_switch_statement":       {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"for_statement":               {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"return_statement":            {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"break_statement":             {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"continue_statement":          {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"struct_type":                 {SemanticType: core.TypeComposite},
	"pointer_type":                {SemanticType: core.TypeReference},
	"generic_type":                {SemanticType: core.TypeGeneric},
	"qualified_type":              {SemanticType: core.TypeReference},
	"parameter_declaration":       {SemanticType: core.StructureParameter},
	"field_declaration":           {SemanticType: core.StructureField, NameStrategy: core.NameFindInDeclarator},
	"ERROR":                       {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier:   base.NameField,
	core.NameFindCallTarget:   extractCallTarget,
	core.NameFindInDeclarator: extractFirstDeclaratorName,
	core.NameCustom:           extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeFunctionWithParams:   extractFunctionSignature,
	core.NativeMethodDefinition:     extractMethodSignature,
	core.NativeClassWithInheritance: extractTypeSpec,
	core.NativeInterfaceDefinition:  extractInterface,
	core.NativeVariableWithType:     extractVariableType,
	core.NativeImportStatement:      extractImportSpec,
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

// extractCustomName handles node types whose name isn't a simple "name"
// field: short_var_declaration (first identifier on the left of :=),
// import_spec (alias, or trimmed path), and comments (first line of text).
func extractCustomName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "short_var_declaration":
		if left := base.FindFirstChildOfType(node, "expression_list"); left != nil {
			if id := base.FindFirstChildOfType(left, "identifier"); id != nil {
				return text(id, source)
			}
		}
	case "import_spec":
		if nameNode := node.ChildByFieldName("name"); nameNode != nil {
			return text(nameNode, source)
		}
		if pathNode := node.ChildByFieldName("path"); pathNode != nil {
			return strings.Trim(text(pathNode, source), `"`)
		}
	case "comment":
		return commentSummary(text(node, source))
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
		return ""
	}
	switch fn.Type() {
	case "selector_expression":
		if field := fn.ChildByFieldName("field"); field != nil {
			return text(field, source)
		}
	}
	return text(fn, source)
}

// extractFirstDeclaratorName handles var_spec/const_spec/field_declaration,
// whose declared names are direct identifier children rather than a
// single "name" field (Go allows `var a, b, c int`).
func extractFirstDeclaratorName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if id := base.FindFirstChildOfType(node, "identifier", "field_identifier"); id != nil {
		return text(id, source)
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
	return strings.TrimSpace(trimmed)
}

func extractFunctionSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "function"}
	// Go groups names sharing a type (`a, b int`) into one
	// parameter_declaration; each declared name becomes its own Param.
	if list := node.ChildByFieldName("parameters"); list != nil {
		for i := 0; i < int(list.NamedChildCount()); i++ {
			decl := list.NamedChild(i)
			typ := text(decl.ChildByFieldName("type"), source)
			named := false
			for j := 0; j < int(decl.NamedChildCount()); j++ {
				if id := decl.NamedChild(j); id.Type() == "identifier" {
					ctx.Parameters = append(ctx.Parameters, core.Param{Name: text(id, source), Type: typ})
					named = true
				}
			}
			if !named && typ != "" {
				ctx.Parameters = append(ctx.Parameters, core.Param{Name: typ, Type: typ})
			}
		}
	}
	if result := node.ChildByFieldName("result"); result != nil {
		ctx.QualifiedName = text(result, source)
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
	if recv := node.ChildByFieldName("receiver"); recv != nil {
		recvType := receiverType(recv, source)
		name := base.NameField(node, source)
		if recvType != "" && name != "" {
			ctx.QualifiedName = recvType + "." + name
		}
	}
	return ctx
}

func receiverType(recv *sitter.Node, source []byte) string {
	count := int(recv.ChildCount())
	for i := 0; i < count; i++ {
		child := recv.Child(i)
		if child == nil {
			continue
		}
		if child.Type() == "parameter_declaration" {
			if t := child.ChildByFieldName("type"); t != nil {
				s := text(t, source)
				return strings.TrimPrefix(s, "*")
			}
		}
	}
	return ""
}

func extractTypeSpec(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	t := node.ChildByFieldName("type")
	if t == nil {
		return core.NativeContext{}
	}
	switch t.Type() {
	case "struct_type":
		return core.NativeContext{SignatureType: "struct"}
	case "interface_type":
		return core.NativeContext{SignatureType: "interface"}
	default:
		return core.NativeContext{SignatureType: "alias"}
	}
}

func extractInterface(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	var methods []string
	count := int(node.NamedChildCount())
	for i := 0; i < count; i++ {
		child := node.NamedChild(i)
		if child != nil && child.Type() == "method_elem" {
			if name := child.ChildByFieldName("name"); name != nil {
				methods = append(methods, text(name, source))
			}
		}
	}
	return core.NativeContext{SignatureType: "interface", Modifiers: methods}
}

func extractVariableType(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if t := node.ChildByFieldName("type"); t != nil {
		return core.NativeContext{SignatureType: text(t, source)}
	}
	return core.NativeContext{}
}

func extractImportSpec(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if path := node.ChildByFieldName("path"); path != nil {
		return core.NativeContext{QualifiedName: strings.Trim(text(path, source), `"`)}
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
	count := int(args.ChildCount())
	for i := 0; i < count; i++ {
		child := args.Child(i)
		if child != nil && child.IsNamed() {
			params = append(params, core.Param{Name: text(child, source)})
		}
	}
	return core.NativeContext{Parameters: params}
}

// isPublic applies Go's capital-letter export convention.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 {
		return false
	}
	return name[0] >= 'A' && name[0] <= 'Z'
}
