package core

import (
	"context"
	"fmt"
	"os"
)

// AdapterResolver is the seam Driver uses to turn a language name or
// file extension into a parse-capable Adapter. providers.Registry
// implements this.
type AdapterResolver interface {
	Get(nameOrAlias string) (Adapter, error)
	GetByExtension(ext string) (Adapter, error)
}

// RowBatcher streams Rows in bounded batches. Next returns false once
// every resolved file has been fully emitted; a non-nil error from Next
// is terminal — the batcher does not resume after an error.
type RowBatcher struct {
	ctx      context.Context
	files    []ResolvedFile
	resolver AdapterResolver
	opts     Options

	fileIdx int
	pending []Row
	err     error
	done    bool
}

// Next fills a batch of up to Options.BatchSize rows, pulling from the
// current file and advancing to subsequent files as needed. Emission
// order preserves resolver order across files and ascending node_id
// within a file.
func (b *RowBatcher) Next() (RowBatch, bool, error) {
	if b.err != nil {
		return RowBatch{}, false, b.err
	}
	if b.done && len(b.pending) == 0 {
		return RowBatch{}, false, nil
	}

	limit := b.opts.batchSize()
	rows := make([]Row, 0, limit)

	for len(rows) < limit {
		if len(b.pending) == 0 {
			if !b.fillNextFile() {
				break
			}
			continue
		}
		take := limit - len(rows)
		if take > len(b.pending) {
			take = len(b.pending)
		}
		rows = append(rows, b.pending[:take]...)
		b.pending = b.pending[take:]
	}

	if b.err != nil {
		return RowBatch{}, false, b.err
	}
	if len(rows) == 0 {
		return RowBatch{}, false, nil
	}
	return RowBatch{Rows: rows}, true, nil
}

// fillNextFile advances to the next resolved file, parses and flattens
// it, and stages its rows into b.pending. It returns false once there
// are no more files or a fatal error occurred (recorded in b.err).
func (b *RowBatcher) fillNextFile() bool {
	for b.fileIdx < len(b.files) {
		rf := b.files[b.fileIdx]
		b.fileIdx++

		rows, err := emitFile(b.ctx, b.resolver, rf.Path, rf.Language, b.opts)
		if err != nil {
			if b.opts.IgnoreErrors && perFileError(err) {
				logEvent(b.opts, "emit_skip", map[string]any{"path": rf.Path, "error": err.Error()})
				continue
			}
			b.err = err
			return false
		}
		if len(rows) == 0 {
			continue
		}
		b.pending = rows
		return true
	}
	b.done = true
	return false
}

func logEvent(opts Options, event string, fields map[string]any) {
	if opts.OnEvent != nil {
		opts.OnEvent(event, fields)
	}
}

// ReadAST resolves patterns to files, then returns a RowBatcher that
// parses and flattens them lazily, one file at a time, as Next is
// called — this is what keeps memory bounded regardless of how many
// files a pattern expands to.
func ReadAST(ctx context.Context, patterns []string, resolver AdapterResolver, opts Options) (*RowBatcher, error) {
	ctx = withContext(ctx)

	lookup := func(ext string) (string, bool) {
		a, err := resolver.GetByExtension(ext)
		if err != nil {
			return "", false
		}
		return a.Language(), true
	}
	files, err := Resolve(patterns, lookup, opts.IgnoreErrors, opts.OnEvent)
	if err != nil {
		return nil, err
	}

	return &RowBatcher{ctx: ctx, files: files, resolver: resolver, opts: opts}, nil
}

// ParseAST is the source-string variant: no resolver, no filesystem
// access, a single synthetic file path, and a language given explicitly
// rather than detected from an extension.
func ParseAST(ctx context.Context, source []byte, language string, filePath string, resolver AdapterResolver, opts Options) (*RowBatcher, error) {
	ctx = withContext(ctx)
	if len(source) == 0 {
		return nil, fmt.Errorf("%w: empty source", ErrInvalidInput)
	}
	if filePath == "" {
		filePath = fmt.Sprintf("<source>.%s", language)
	}

	adapter, err := resolver.Get(language)
	if err != nil {
		return nil, err
	}

	rows, err := flattenSource(ctx, adapter, source, filePath, adapter.Language(), opts)
	if err != nil {
		return nil, err
	}
	return &RowBatcher{ctx: ctx, resolver: resolver, opts: opts, pending: rows, done: true}, nil
}

func emitFile(ctx context.Context, resolver AdapterResolver, path, language string, opts Options) ([]Row, error) {
	adapter, err := resolver.Get(language)
	if err != nil {
		return nil, err
	}
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrReadError, path, err)
	}
	return flattenSource(ctx, adapter, source, path, adapter.Language(), opts)
}

func flattenSource(ctx context.Context, adapter Adapter, source []byte, path, language string, opts Options) ([]Row, error) {
	tree, err := adapter.Parse(ctx, source)
	if err != nil {
		return nil, err
	}
	defer tree.Close()

	nodes := Flatten(tree, source, adapter, opts.flattenOptions())
	rows := make([]Row, len(nodes))
	for i, n := range nodes {
		rows[i] = project(n, path, language, opts)
	}
	return rows, nil
}

// project narrows a fully-populated Node down to the Row shape the
// caller's Options asked for.
func project(n Node, path, language string, opts Options) Row {
	row := Row{
		NodeID:    n.NodeID,
		Type:      n.Type,
		FilePath:  path,
		Language:  language,
		StartLine: n.StartLine,
		EndLine:   n.EndLine,
	}

	if n.Peek != "" {
		peek := n.Peek
		row.Peek = &peek
	}

	if opts.sourceLevel() == SourceFull {
		sc, ec := n.StartColumn, n.EndColumn
		row.StartColumn = &sc
		row.EndColumn = &ec
	}

	switch opts.structureLevel() {
	case StructureMinimal:
		pid, depth := n.ParentID, n.Depth
		row.ParentID = &pid
		row.Depth = &depth
	case StructureFull:
		pid, depth, sib, cc, dc := n.ParentID, n.Depth, n.SiblingIndex, n.ChildrenCount, n.DescendantCount
		row.ParentID = &pid
		row.Depth = &depth
		row.SiblingIndex = &sib
		row.ChildrenCount = &cc
		row.DescendantCount = &dc
	}

	// Context levels are cumulative: node_types_only adds semantic_type,
	// normalized adds name on top of that, native adds the full
	// extractor-derived context on top of that (L3 monotonicity).
	ctx := opts.contextLevel()
	if ctx >= ContextNodeTypesOnly {
		row.SemanticType = n.SemanticType
		row.Flags = n.Flags
	}
	if ctx >= ContextNormalized && n.Name != "" {
		name := n.Name
		row.Name = &name
	}
	if ctx == ContextNative && !n.Native.Empty() {
		if n.Native.SignatureType != "" {
			st := n.Native.SignatureType
			row.SignatureType = &st
		}
		if len(n.Native.Parameters) > 0 {
			row.Parameters = n.Native.Parameters
		}
		if len(n.Native.Modifiers) > 0 {
			row.Modifiers = n.Native.Modifiers
		}
		if n.Native.Annotations != "" {
			ann := n.Native.Annotations
			row.Annotations = &ann
		}
		if n.Native.QualifiedName != "" {
			qn := n.Native.QualifiedName
			row.QualifiedName = &qn
		}
	}

	return row
}
