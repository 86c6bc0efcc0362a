package core

// NativeExtractorFunc is the shape of a per-strategy native-context
// extractor. Adapters register one of these per NativeStrategy they use;
// node is passed as `any` here to avoid a core->tree-sitter import (core
// stays parser-agnostic) and is type-asserted back to *sitter.Node by
// the extractor itself; source is passed as []byte.
type NativeExtractorFunc func(node any, source []byte) NativeContext

// NativeExtractorTable is a per-adapter function-pointer table indexed
// by strategy enum. This is the two-level dispatch the taxonomy calls
// for: the flattener picks a NodeConfig.NativeStrategy value per node
// type, and the adapter's table says what that strategy actually does
// for its grammar.
type NativeExtractorTable map[NativeStrategy]NativeExtractorFunc

// Dispatch runs the extractor registered for strategy, recovering from
// any panic a malformed parse tree might trigger deep in a language's
// extraction logic. A panicking extractor must never abort the whole
// file's emission; it degrades to an empty context instead.
func (t NativeExtractorTable) Dispatch(strategy NativeStrategy, node any, source []byte) (ctx NativeContext) {
	if strategy == NativeNone || t == nil {
		return NativeContext{}
	}
	fn, ok := t[strategy]
	if !ok || fn == nil {
		return NativeContext{}
	}
	defer func() {
		if recover() != nil {
			ctx = NativeContext{}
		}
	}()
	return fn(node, source)
}
