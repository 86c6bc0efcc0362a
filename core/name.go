package core

// NameExtractorFunc mirrors NativeExtractorFunc: node is a *sitter.Node
// behind an `any` so core has no parser dependency.
type NameExtractorFunc func(node any, source []byte) string

// NameExtractorTable is the per-adapter dispatch table for NameStrategy,
// same shape and recovery discipline as NativeExtractorTable.
type NameExtractorTable map[NameStrategy]NameExtractorFunc

func (t NameExtractorTable) Dispatch(strategy NameStrategy, node any, source []byte) (name string) {
	if strategy == NameNone || t == nil {
		return ""
	}
	fn, ok := t[strategy]
	if !ok || fn == nil {
		return ""
	}
	defer func() {
		if recover() != nil {
			name = ""
		}
	}()
	return fn(node, source)
}
