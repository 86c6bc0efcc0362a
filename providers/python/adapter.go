// Package python adapts Python source through tree-sitter's Python
// grammar into the shared semantic taxonomy.
package python

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tspython "github.com/smacker/go-tree-sitter/python"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "python",
		Aliases:      []string{"py"},
		Extensions:   []string{".py", ".pyw", ".pyi"},
		Grammar:      tspython.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"module":                    {SemanticType: core.ScopeModule, Flags: core.FlagConstruct},
	"function_definition":       {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithDecorators, Flags: core.FlagConstruct | core.FlagEmbodied},
	"async_function_definition": {SemanticType: core.DefinitionAsyncFunc, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeAsyncFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"class_definition":          {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"lambda":                    {SemanticType: core.DefinitionLambda, NameStrategy: core.NameCustom, NativeStrategy: core.NativeArrowFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"decorator":                 {SemanticType: core.AnnotationDecorator, NameStrategy: core.NameCustom},
	"assignment":                {SemanticType: core.DefinitionVariable, NameStrategy: core.NameFindAssignmentTarget, NativeStrategy: core.NativeVariableWithType, Flags: core.FlagConstruct},
	"augmented_assignment":      {SemanticType: core.OperationAssignment, NameStrategy: core.NameFindAssignmentTarget, Flags: core.FlagConstruct},
	"type_alias_statement":      {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindAssignmentTarget},
	"import_statement":          {SemanticType: core.ImportImport, NameStrategy: core.NameCustom, NativeStrategy: core.NativeImportStatement, Flags: core.FlagConstruct},
	"import_from_statement":     {SemanticType: core.ImportImport, NameStrategy: core.NameCustom, NativeStrategy: core.NativeImportStatement, Flags: core.FlagConstruct},
	"call":                      {SemanticType: core.CallFunction, NameStrategy: core.NameFindCallTarget, NativeStrategy: core.NativeFunctionCall},
	"comment":                   {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"identifier":                {SemanticType: core.IdentifierName},
	"attribute":                 {SemanticType: core.IdentifierProperty},
	"string":                    {SemanticType: core.LiteralString},
	"integer":                   {SemanticType: core.LiteralNumber},
	"float":                     {SemanticType: core.LiteralNumber},
	"true":                      {SemanticType: core.LiteralBoolean},
	"false":                     {SemanticType: core.LiteralBoolean},
	"if_statement":              {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"match_statement":           {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"conditional_expression":    {SemanticType: core.ConditionalTernary},
	"for_statement":             {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while_statement":           {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"list_comprehension":        {SemanticType: core.LoopComprehension},
	"return_statement":          {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"break_statement":           {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"continue_statement":        {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"raise_statement":           {SemanticType: core.JumpThrow, Flags: core.FlagConstruct},
	"try_statement":             {SemanticType: core.ExceptionTry, Flags: core.FlagConstruct},
	"except_clause":             {SemanticType: core.ExceptionCatch, Flags: core.FlagConstruct},
	"finally_clause":            {SemanticType: core.ExceptionFinally, Flags: core.FlagConstruct},
	"parameter":                 {SemanticType: core.StructureParameter},
	"typed_parameter":           {SemanticType: core.StructureParameter},
	"default_parameter":         {SemanticType: core.StructureParameter},
	"ERROR":                     {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier:       base.NameField,
	core.NameFindCallTarget:       extractCallTarget,
	core.NameFindAssignmentTarget: extractAssignmentTarget,
	core.NameCustom:               extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeFunctionWithDecorators: extractFunctionSignature,
	core.NativeAsyncFunction:          extractFunctionSignature,
	core.NativeArrowFunction:          extractLambdaSignature,
	core.NativeClassWithInheritance:   extractClassBases,
	core.NativeVariableWithType:       extractAnnotatedType,
	core.NativeImportStatement:        extractImportNames,
	core.NativeFunctionCall:           extractCallArgs,
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

func extractAssignmentTarget(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	left := node.ChildByFieldName("left")
	if left == nil {
		return ""
	}
	if left.Type() == "identifier" {
		return text(left, source)
	}
	return ""
}

func extractCustomName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	switch node.Type() {
	case "lambda":
		return "anonymous"
	case "decorator":
		if id := base.FindFirstChildOfType(node, "identifier", "attribute", "call"); id != nil {
			return text(id, source)
		}
	case "import_statement":
		if name := base.FindFirstChildOfType(node, "dotted_name", "identifier"); name != nil {
			return text(name, source)
		}
	case "import_from_statement":
		if moduleNode := node.ChildByFieldName("module_name"); moduleNode != nil {
			return text(moduleNode, source)
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
	if fn := node.ChildByFieldName("function"); fn != nil {
		if fn.Type() == "attribute" {
			if attr := fn.ChildByFieldName("attribute"); attr != nil {
				return text(attr, source)
			}
		}
		return text(fn, source)
	}
	return ""
}

func commentSummary(raw string) string {
	trimmed := strings.TrimSpace(raw)
	trimmed = strings.TrimPrefix(trimmed, "#")
	trimmed = strings.TrimSpace(trimmed)
	if idx := strings.Index(trimmed, "\n"); idx >= 0 {
		trimmed = trimmed[:idx]
	}
	return trimmed
}

func extractFunctionSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{
		SignatureType: "function",
		Parameters:    base.ParamsFromField(node, source, "parameters"),
	}
	if ret := node.ChildByFieldName("return_type"); ret != nil {
		ctx.QualifiedName = text(ret, source)
	}
	if decorated := node.Parent(); decorated != nil && decorated.Type() == "decorated_definition" {
		ctx.Annotations = decoratorList(decorated, source)
	}
	return ctx
}

func decoratorList(decorated *sitter.Node, source []byte) string {
	var names []string
	count := int(decorated.NamedChildCount())
	for i := 0; i < count; i++ {
		child := decorated.NamedChild(i)
		if child != nil && child.Type() == "decorator" {
			names = append(names, strings.TrimPrefix(text(child, source), "@"))
		}
	}
	return strings.Join(names, ",")
}

func extractLambdaSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	return core.NativeContext{SignatureType: "lambda", Parameters: base.ParamsFromField(node, source, "parameters")}
}

func extractClassBases(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	sup := node.ChildByFieldName("superclasses")
	if sup == nil {
		return core.NativeContext{SignatureType: "class"}
	}
	var bases []string
	count := int(sup.NamedChildCount())
	for i := 0; i < count; i++ {
		child := sup.NamedChild(i)
		if child != nil {
			bases = append(bases, text(child, source))
		}
	}
	return core.NativeContext{SignatureType: "class", Modifiers: bases}
}

// extractAnnotatedType handles `x: int = 1` style annotated assignments,
// where the grammar exposes the annotation under a "type" field.
func extractAnnotatedType(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	if typeNode := node.ChildByFieldName("type"); typeNode != nil {
		return core.NativeContext{SignatureType: text(typeNode, source)}
	}
	return core.NativeContext{}
}

func extractImportNames(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	var names []string
	count := int(node.NamedChildCount())
	for i := 0; i < count; i++ {
		child := node.NamedChild(i)
		if child == nil {
			continue
		}
		switch child.Type() {
		case "dotted_name", "identifier":
			names = append(names, text(child, source))
		case "aliased_import":
			if nameNode := child.ChildByFieldName("name"); nameNode != nil {
				names = append(names, text(nameNode, source))
			}
		}
	}
	ctx := core.NativeContext{}
	if len(names) > 0 {
		ctx.QualifiedName = strings.Join(names, ",")
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

// isPublic applies Python's underscore-prefix convention: a single
// leading underscore marks "internal use", a double leading underscore
// triggers name mangling. Either way, anything not starting with `_` is
// public.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 {
		return false
	}
	return !strings.HasPrefix(name, "_")
}
