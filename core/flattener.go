package core

import (
	"bytes"
	"context"

	sitter "github.com/smacker/go-tree-sitter"
)

// PeekMode controls whether and how a node's source snippet is captured
// into Node.Peek. PeekAuto is the zero value and the documented
// default: it behaves as PeekChars for a node whose text has no
// newline and as PeekLines otherwise.
type PeekMode byte

const (
	PeekAuto PeekMode = iota
	// PeekChars truncates the snippet at PeekSize characters.
	PeekChars
	// PeekLines returns whole leading lines, stopping once accumulating
	// another full line would exceed PeekSize characters. The first
	// line is always included even if it alone exceeds PeekSize.
	PeekLines
	// PeekNone leaves Node.Peek empty.
	PeekNone
)

// FlattenOptions configures one Flatten call. It mirrors the subset of
// core.Options the flattener itself cares about; Driver builds one of
// these per file from the caller's full Options.
type FlattenOptions struct {
	PeekMode   PeekMode
	PeekSize   int
	WithNames  bool
	WithNative bool
}

// Adapter is the minimal surface Flatten needs from a language adapter,
// kept separate from the full providers.Adapter interface so core never
// imports providers (providers imports core, not the other way around).
type Adapter interface {
	Language() string
	NodeConfigFor(nodeType string) (NodeConfig, bool)
	ExtractName(node *sitter.Node, source []byte, strategy NameStrategy) string
	ExtractNative(node *sitter.Node, source []byte, strategy NativeStrategy) NativeContext
	IsPublic(node *sitter.Node, source []byte, name string) bool
	Parse(ctx context.Context, source []byte) (*sitter.Tree, error)
}

// frame is one level of an explicit traversal stack, replacing call-stack
// recursion so descendant_count can be accumulated iteratively and deeply
// nested parse trees (generated or minified source) never risk a Go
// stack overflow. childIdx tracks how many of the node's children have
// been pushed so far; -1 means the node itself hasn't been emitted yet.
// running accumulates 1+descendant_count for every child that has
// finished, so when childIdx reaches the child count the frame's own
// descendant_count is already known.
type frame struct {
	node         *sitter.Node
	parentID     int64
	depth        uint32
	siblingIndex uint32
	outIndex     int
	childIdx     int
	running      uint32
}

// Flatten walks tree's root node in depth-first pre-order using an
// explicit stack and produces a contiguous Node array satisfying:
//
//	I1: node_id is 0..N-1 in pre-order emission order
//	I2: for every node at index i with descendant_count d, its subtree is
//	    exactly out[i+1 : i+1+d]
//	I3: parent_id is ParentSentinel for roots, otherwise a strictly
//	    smaller node_id than the child's
//	I4: sibling_index is 0-based among the node's own siblings
//	I5: children_count is len(direct children), consistent with the
//	    descendant_counts of those children summing into this one
func Flatten(tree *sitter.Tree, source []byte, lang Adapter, opts FlattenOptions) []Node {
	root := tree.RootNode()
	if root == nil {
		return nil
	}

	out := make([]Node, 0, root.ChildCount()*4+1)
	stack := make([]frame, 1, 64)
	stack[0] = frame{node: root, parentID: ParentSentinel, depth: 0, siblingIndex: 0, childIdx: -1}

	for len(stack) > 0 {
		top := &stack[len(stack)-1]

		if top.childIdx == -1 {
			n := top.node
			nodeID := uint64(len(out))
			cfg, ok := lang.NodeConfigFor(n.Type())
			if !ok {
				cfg = NodeConfig{SemanticType: SyntaxUnknown}
			}

			node := Node{
				NodeID:        nodeID,
				ParentID:      top.parentID,
				Type:          n.Type(),
				SemanticType:  cfg.SemanticType,
				Flags:         cfg.Flags,
				StartLine:     n.StartPoint().Row + 1,
				EndLine:       n.EndPoint().Row + 1,
				StartColumn:   n.StartPoint().Column + 1,
				EndColumn:     n.EndPoint().Column + 1,
				Depth:         top.depth,
				SiblingIndex:  top.siblingIndex,
				ChildrenCount: n.ChildCount(),
			}

			if opts.WithNames && cfg.NameStrategy != NameNone {
				node.Name = lang.ExtractName(n, source, cfg.NameStrategy)
			}
			if opts.WithNative && cfg.NativeStrategy != NativeNone {
				node.Native = lang.ExtractNative(n, source, cfg.NativeStrategy)
			}
			if opts.PeekMode != PeekNone {
				node.Peek = peekOf(n, source, opts)
			}

			out = append(out, node)
			top.outIndex = int(nodeID)
			top.childIdx = 0
			continue
		}

		childCount := int(top.node.ChildCount())
		if top.childIdx < childCount {
			child := top.node.Child(top.childIdx)
			siblingIndex := uint32(top.childIdx)
			top.childIdx++
			if child == nil {
				continue
			}
			stack = append(stack, frame{
				node:         child,
				parentID:     int64(out[top.outIndex].NodeID),
				depth:        top.depth + 1,
				siblingIndex: siblingIndex,
				childIdx:     -1,
			})
			continue
		}

		// All children visited: this frame's descendant_count is final.
		out[top.outIndex].DescendantCount = top.running
		finished := top.running + 1
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			stack[len(stack)-1].running += finished
		}
	}

	return out
}

func peekOf(n *sitter.Node, source []byte, opts FlattenOptions) string {
	start, end := n.StartByte(), n.EndByte()
	if int(end) > len(source) || start > end {
		return ""
	}
	snippet := source[start:end]

	size := opts.PeekSize
	if size <= 0 {
		size = DefaultPeekSize
	}

	mode := opts.PeekMode
	if mode == PeekAuto {
		if bytes.IndexByte(snippet, '\n') >= 0 {
			mode = PeekLines
		} else {
			mode = PeekChars
		}
	}

	if mode == PeekLines {
		return peekLines(snippet, size)
	}
	if len(snippet) > size {
		snippet = snippet[:size]
	}
	return string(snippet)
}

// peekLines accumulates whole leading lines of snippet (newline
// included) until the next line would push the total past size. The
// first line is always kept even if it alone exceeds size, since a
// line-oriented peek can never return a partial line.
func peekLines(snippet []byte, size int) string {
	var out []byte
	total := 0
	start := 0
	for i := 0; i <= len(snippet); i++ {
		if i != len(snippet) && snippet[i] != '\n' {
			continue
		}
		end := i
		if i < len(snippet) {
			end = i + 1
		}
		line := snippet[start:end]
		if total > 0 && total+len(line) > size {
			break
		}
		out = append(out, line...)
		total += len(line)
		start = i + 1
		if total >= size {
			break
		}
	}
	return string(out)
}
