// Package base provides the shared Adapter scaffolding every language
// package builds on: a fresh-parser-per-call Parse, strategy dispatch
// tables built once at construction, and the handful of name/native
// extractors common enough across grammars to live here instead of
// being copy-pasted into every language package.
package base

import (
	"context"
	"fmt"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/termfx/morfx/core"
	"github.com/termfx/morfx/providers"
)

// LanguageSpec is what a concrete language package supplies; Adapter
// wraps it with the common plumbing (grammar parsing, strategy
// dispatch, visibility fallback).
type LanguageSpec struct {
	Language     string
	Aliases      []string
	Extensions   []string
	Grammar      *sitter.Language
	NodeConfigs  map[string]core.NodeConfig
	NameTable    core.NameExtractorTable
	NativeTable  core.NativeExtractorTable
	IsPublicFunc func(node *sitter.Node, source []byte, name string) bool
}

// Adapter implements providers.Adapter generically over a LanguageSpec.
type Adapter struct {
	spec LanguageSpec
}

// New builds an Adapter from spec. It panics if the grammar failed to
// load, matching the teacher's base.New behavior of failing loudly at
// construction rather than deferring to the first parse call.
func New(spec LanguageSpec) *Adapter {
	if spec.Grammar == nil {
		panic(fmt.Sprintf("morfx/providers/base: %s adapter has a nil grammar", spec.Language))
	}
	return &Adapter{spec: spec}
}

func (a *Adapter) Language() string                 { return a.spec.Language }
func (a *Adapter) Aliases() []string                { return a.spec.Aliases }
func (a *Adapter) Extensions() []string             { return a.spec.Extensions }
func (a *Adapter) SitterLanguage() *sitter.Language { return a.spec.Grammar }

func (a *Adapter) NodeConfigFor(nodeType string) (core.NodeConfig, bool) {
	cfg, ok := a.spec.NodeConfigs[nodeType]
	return cfg, ok
}

func (a *Adapter) ExtractName(node *sitter.Node, source []byte, strategy core.NameStrategy) string {
	if strategy == core.NameNodeText {
		return nodeText(node, source)
	}
	return a.spec.NameTable.Dispatch(strategy, node, source)
}

func (a *Adapter) ExtractNative(node *sitter.Node, source []byte, strategy core.NativeStrategy) core.NativeContext {
	if strategy == core.NativeNodeText {
		return core.NativeContext{SignatureType: nodeText(node, source)}
	}
	return a.spec.NativeTable.Dispatch(strategy, node, source)
}

func (a *Adapter) IsPublic(node *sitter.Node, source []byte, name string) bool {
	if a.spec.IsPublicFunc == nil {
		return false
	}
	return a.spec.IsPublicFunc(node, source, name)
}

// Parse creates a fresh sitter.Parser for this call (never reused across
// calls, so adapters stay trivially safe to invoke from multiple
// goroutines even though read_ast/parse_ast itself is single-threaded
// per call), parses source, and returns the resulting tree. The caller
// owns the returned tree and must Close it.
func (a *Adapter) Parse(ctx context.Context, source []byte) (*sitter.Tree, error) {
	parser := sitter.NewParser()
	parser.SetLanguage(a.spec.Grammar)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", core.ErrParseError, a.spec.Language, err)
	}
	if tree == nil {
		return nil, fmt.Errorf("%w: %s: parser returned no tree", core.ErrParseError, a.spec.Language)
	}
	return tree, nil
}

// compile-time interface check
var _ providers.Adapter = (*Adapter)(nil)

func nodeText(node *sitter.Node, source []byte) string {
	if node == nil {
		return ""
	}
	start, end := node.StartByte(), node.EndByte()
	if int(end) > len(source) || start > end {
		return ""
	}
	return string(source[start:end])
}

func asNode(n any) *sitter.Node {
	node, _ := n.(*sitter.Node)
	return node
}

// FindFirstChildOfType returns the first direct child of n whose grammar
// type is one of types, or nil.
func FindFirstChildOfType(n *sitter.Node, types ...string) *sitter.Node {
	if n == nil {
		return nil
	}
	want := make(map[string]bool, len(types))
	for _, t := range types {
		want[t] = true
	}
	count := int(n.ChildCount())
	for i := 0; i < count; i++ {
		child := n.Child(i)
		if child != nil && want[child.Type()] {
			return child
		}
	}
	return nil
}

// NameField is the common NameStrategy==NameFindIdentifier extractor: try
// the grammar's "name" field first, then fall back to the first
// "identifier"-typed direct child.
func NameField(n any, source []byte) string {
	node := asNode(n)
	if node == nil {
		return ""
	}
	if nameNode := node.ChildByFieldName("name"); nameNode != nil {
		return nodeText(nameNode, source)
	}
	if id := FindFirstChildOfType(node, "identifier"); id != nil {
		return nodeText(id, source)
	}
	return ""
}

// ParamsFromField walks the node's `fieldName` child (typically a
// "parameters"/"formal_parameters" list) and builds a Param slice from
// each direct child that exposes a "name" field (and, where present, a
// "type" field). Grammars whose parameter nodes don't follow this
// name/type field convention need their own extractor; this covers the
// common case across most C-family and Go-family grammars. A
// zero-argument parameter list correctly yields an empty (non-nil-vs-nil
// ambiguous) slice rather than any placeholder entry.
func ParamsFromField(node *sitter.Node, source []byte, fieldName string) []core.Param {
	if node == nil {
		return nil
	}
	list := node.ChildByFieldName(fieldName)
	if list == nil {
		return nil
	}
	var params []core.Param
	count := int(list.ChildCount())
	for i := 0; i < count; i++ {
		child := list.Child(i)
		if child == nil || !child.IsNamed() {
			continue
		}
		p := core.Param{}
		if nameNode := child.ChildByFieldName("name"); nameNode != nil {
			p.Name = nodeText(nameNode, source)
		} else if child.Type() == "identifier" {
			p.Name = nodeText(child, source)
		} else if id := FindFirstChildOfType(child, "identifier"); id != nil {
			p.Name = nodeText(id, source)
		} else {
			p.Name = nodeText(child, source)
		}
		if typeNode := child.ChildByFieldName("type"); typeNode != nil {
			p.Type = nodeText(typeNode, source)
		}
		if p.Name == "" {
			continue
		}
		params = append(params, p)
	}
	return params
}

// ModifiersFromKeywords scans node's direct children for any type listed
// in keywordTypes (most grammars lex `public`/`private`/`static`/`async`
// etc. as their own anonymous or named token type) and returns their
// source text in encounter order. Keywords nested inside a modifier
// wrapper node (`modifiers`, `modifier`, `visibility_modifier`,
// `access_modifier`, `accessibility_modifier`, `function_modifiers`)
// are found as well.
func ModifiersFromKeywords(node *sitter.Node, source []byte, keywordTypes ...string) []string {
	if node == nil {
		return nil
	}
	want := make(map[string]bool, len(keywordTypes))
	for _, t := range keywordTypes {
		want[t] = true
	}
	wrappers := map[string]bool{"modifiers": true, "modifier": true, "visibility_modifier": true,
		"access_modifier": true, "accessibility_modifier": true, "function_modifiers": true}
	var mods []string
	var scan func(n *sitter.Node)
	scan = func(n *sitter.Node) {
		count := int(n.ChildCount())
		for i := 0; i < count; i++ {
			child := n.Child(i)
			if child != nil && want[child.Type()] {
				mods = append(mods, nodeText(child, source))
			} else if child != nil && wrappers[child.Type()] {
				scan(child)
			}
		}
	}
	scan(node)
	return mods
}
