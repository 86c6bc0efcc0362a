// Package ruby adapts Ruby source through tree-sitter's Ruby grammar
// into the shared semantic taxonomy.
package ruby

import (
	"strings"

	sitter "github.com/smacker/go-tree-sitter"
	tsruby "github.com/smacker/go-tree-sitter/ruby"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
	"github.com/termfx/morfx/providers/base"
)

func New() providers.Adapter {
	return base.New(base.LanguageSpec{
		Language:     "ruby",
		Aliases:      []string{"rb"},
		Extensions:   []string{".rb", ".rake", ".gemspec"},
		Grammar:      tsruby.GetLanguage(),
		NodeConfigs:  nodeConfigs,
		NameTable:    nameTable,
		NativeTable:  nativeTable,
		IsPublicFunc: isPublic,
	})
}

var nodeConfigs = map[string]core.NodeConfig{
	"program":           {SemanticType: core.ScopeProgram, Flags: core.FlagConstruct},
	"method":            {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"singleton_method":  {SemanticType: core.DefinitionFunction, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionWithParams, Flags: core.FlagConstruct | core.FlagEmbodied},
	"lambda":            {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeArrowFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"block":             {SemanticType: core.DefinitionLambda, NativeStrategy: core.NativeArrowFunction, Flags: core.FlagConstruct | core.FlagEmbodied},
	"class":             {SemanticType: core.DefinitionClass, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeClassWithInheritance, Flags: core.FlagConstruct},
	"module":            {SemanticType: core.DefinitionNamespace, NameStrategy: core.NameFindIdentifier, Flags: core.FlagConstruct},
	"assignment":        {SemanticType: core.DefinitionVariable, NameStrategy: core.NameFindAssignmentTarget, Flags: core.FlagConstruct},
	"require":           {SemanticType: core.ImportImport, NameStrategy: core.NameCustom},
	"call":              {SemanticType: core.CallMethod, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionCall},
	"method_call":       {SemanticType: core.CallMethod, NameStrategy: core.NameFindIdentifier, NativeStrategy: core.NativeFunctionCall},
	"comment":           {SemanticType: core.CommentLine, NameStrategy: core.NameCustom},
	"identifier":        {SemanticType: core.IdentifierName},
	"constant":          {SemanticType: core.IdentifierName},
	"string":            {SemanticType: core.LiteralString},
	"integer":           {SemanticType: core.LiteralNumber},
	"float":             {SemanticType: core.LiteralNumber},
	"true":              {SemanticType: core.LiteralBoolean},
	"false":             {SemanticType: core.LiteralBoolean},
	"if":                {SemanticType: core.ConditionalIf, Flags: core.FlagConstruct},
	"case":              {SemanticType: core.ConditionalSwitch, Flags: core.FlagConstruct},
	"conditional":       {SemanticType: core.ConditionalTernary},
	"for":               {SemanticType: core.LoopFor, Flags: core.FlagConstruct},
	"while":             {SemanticType: core.LoopWhile, Flags: core.FlagConstruct},
	"return":            {SemanticType: core.JumpReturn, Flags: core.FlagConstruct},
	"break":             {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"next":              {SemanticType: core.JumpBreakContinue, Flags: core.FlagConstruct},
	"begin":             {SemanticType: core.ExceptionTry, Flags: core.FlagConstruct},
	"rescue":            {SemanticType: core.ExceptionCatch, Flags: core.FlagConstruct},
	"ensure":            {SemanticType: core.ExceptionFinally, Flags: core.FlagConstruct},
	"method_parameters": {SemanticType: core.StructureParameter},
	"ERROR":             {SemanticType: core.SyntaxError},
}

var nameTable = core.NameExtractorTable{
	core.NameFindIdentifier:       base.NameField,
	core.NameFindAssignmentTarget: extractAssignmentTarget,
	core.NameCustom:               extractCustomName,
}

var nativeTable = core.NativeExtractorTable{
	core.NativeFunctionWithParams:   extractMethodSignature,
	core.NativeClassWithInheritance: extractClassHeritage,
	core.NativeArrowFunction:        extractBlockSignature,
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

func extractAssignmentTarget(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	left := node.ChildByFieldName("left")
	if left == nil {
		return ""
	}
	switch left.Type() {
	case "identifier", "constant", "instance_variable", "class_variable", "global_variable":
		return text(left, source)
	}
	return ""
}

func extractCustomName(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if node.Type() == "comment" {
		return commentSummary(text(node, source))
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

func extractMethodSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	return core.NativeContext{SignatureType: "method", Parameters: base.ParamsFromField(node, source, "parameters")}
}

func extractClassHeritage(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	ctx := core.NativeContext{SignatureType: "class"}
	if super := node.ChildByFieldName("superclass"); super != nil {
		ctx.QualifiedName = text(super, source)
	}
	return ctx
}

func extractBlockSignature(n any, source []byte) core.NativeContext {
	node := asNode(n)
	if node == nil {
		return core.NativeContext{}
	}
	var params []core.Param
	if p := base.FindFirstChildOfType(node, "block_parameters"); p != nil {
		count := int(p.NamedChildCount())
		for i := 0; i < count; i++ {
			child := p.NamedChild(i)
			if child != nil {
				params = append(params, core.Param{Name: text(child, source)})
			}
		}
	}
	return core.NativeContext{SignatureType: "block", Parameters: params}
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

// isPublic applies Ruby's leading-underscore-as-internal convention;
// actual public/private/protected state toggles at the method-group
// level via `private`/`protected` calls, which this per-node check
// can't see, so the convention is the best available signal.
func isPublic(node *sitter.Node, source []byte, name string) bool {
	if len(name) == 0 {
		return false
	}
	return !strings.HasPrefix(name, "_")
}
