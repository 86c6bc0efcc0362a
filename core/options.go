package core

import "context"

// StructureLevel controls how much of the tree-shape metadata
// (parent_id, depth, sibling_index, children_count, descendant_count) is
// projected onto emitted rows. The flattener always computes every
// field internally — these are cheap to derive from the same
// single-pass walk — so this option only narrows the final projection,
// it never changes Flatten's algorithm.
//
// The zero value is deliberately not the documented default ("full"):
// an unset StructureLevel is indistinguishable from an explicit
// StructureNone, so structureLevel() treats the zero value as "caller
// didn't set this" and resolves it to StructureFull.
type StructureLevel byte

const (
	structureUnset StructureLevel = iota
	// StructureNone omits parent_id/depth/sibling_index/children_count/
	// descendant_count entirely.
	StructureNone
	// StructureMinimal keeps parent_id and depth only, enough to
	// reconstruct ancestry without the subtree range-scan fields.
	StructureMinimal
	// StructureFull keeps every tree-shape field, enabling O(1)
	// subtree range-scan queries via node_id/descendant_count. This is
	// the documented default.
	StructureFull
)

func (o Options) structureLevel() StructureLevel {
	if o.Structure == structureUnset {
		return StructureFull
	}
	return o.Structure
}

// SourceLevel controls how much source-position detail rows carry. The
// zero value is unset for the same reason as StructureLevel; the
// documented default is "lines", not "none".
type SourceLevel byte

const (
	sourceUnset SourceLevel = iota
	// SourceNone omits column numbers; only line ranges remain.
	SourceNone
	// SourceLines is identical to SourceNone for position detail; kept
	// distinct because some callers use it to also mean "no peek" while
	// still requesting named identifiers (see Options.Context). This is
	// the documented default.
	SourceLines
	// SourceFull includes start/end column numbers.
	SourceFull
)

func (o Options) sourceLevel() SourceLevel {
	if o.Source == sourceUnset {
		return SourceLines
	}
	return o.Source
}

// ContextLevel controls how much native-context detail rows carry.
// Each level is a strict superset of the one before it:
//
//	ContextNone         — no semantic_type, no name, no native fields.
//	ContextNodeTypesOnly — adds semantic_type (derived purely from the
//	                       grammar node type, no source text touched).
//	ContextNormalized    — adds name (the extractor-normalized identifier).
//	ContextNative        — adds signature_type/parameters/modifiers/
//	                       annotations/qualified_name.
//
// The zero value is unset, not ContextNone: the documented default is
// "native", the richest level, and a caller that never touches this
// field should get the rich default rather than the cheapest one.
type ContextLevel byte

const (
	contextUnset ContextLevel = iota
	ContextNone
	ContextNodeTypesOnly
	ContextNormalized
	ContextNative
)

func (o Options) contextLevel() ContextLevel {
	if o.Context == contextUnset {
		return ContextNative
	}
	return o.Context
}

// Options configures one read_ast/parse_ast call. Every parameter
// arrives through this struct rather than as positional arguments, so
// the call signature doesn't grow every time a new projection knob is
// added. The zero value of Options resolves, field by field, to the
// documented defaults: peek "auto", context "native", source "lines",
// structure "full", batch_size 2048.
type Options struct {
	// IgnoreErrors makes per-file failures (unknown language, missing
	// file, read error, parse error) skip that file instead of aborting
	// the whole call.
	IgnoreErrors bool

	// PeekMode selects whether Node.Peek is populated and how. PeekAuto
	// is both the zero value and the documented default, so an unset
	// PeekMode already behaves correctly without a resolver method.
	PeekMode PeekMode
	// PeekSize bounds the snippet length for PeekChars and the leading-
	// line accumulation for PeekLines/PeekAuto. A value <= 0 uses
	// DefaultPeekSize.
	PeekSize int

	// Context selects how much native-context detail (semantic_type,
	// name, signature_type/parameters/modifiers/annotations/
	// qualified_name) is populated on each row. Cheaper levels let the
	// flattener skip extractor dispatch entirely, which matters on very
	// large files where most rows never get looked at past node_id/type.
	Context ContextLevel

	// Source controls column-number projection.
	Source SourceLevel
	// Structure controls tree-shape field projection.
	Structure StructureLevel

	// BatchSize bounds how many rows RowBatcher.Next returns per call.
	// A value <= 0 uses DefaultBatchSize.
	BatchSize int

	// OnEvent is an optional structured-logging hook; see logEvent in
	// driver.go.
	OnEvent func(event string, fields map[string]any)
}

// DefaultBatchSize is used when Options.BatchSize is unset, matching the
// "bounded-memory" requirement without forcing every caller to pick a
// number.
const DefaultBatchSize = 2048

// DefaultPeekSize is used when Options.PeekSize is unset.
const DefaultPeekSize = 120

func (o Options) batchSize() int {
	if o.BatchSize > 0 {
		return o.BatchSize
	}
	return DefaultBatchSize
}

func (o Options) peekSize() int {
	if o.PeekSize > 0 {
		return o.PeekSize
	}
	return DefaultPeekSize
}

func (o Options) flattenOptions() FlattenOptions {
	ctx := o.contextLevel()
	return FlattenOptions{
		PeekMode:   o.PeekMode,
		PeekSize:   o.peekSize(),
		WithNames:  ctx >= ContextNormalized,
		WithNative: ctx == ContextNative,
	}
}

// withContext is a convenience for call sites that need a non-nil
// context.Context when the caller passed nil.
func withContext(ctx context.Context) context.Context {
	if ctx == nil {
		return context.Background()
	}
	return ctx
}
