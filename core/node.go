package core

// Flags is a bitset carried alongside the 8-bit semantic type. Reserved
// bits beyond the two defined here are zero for now.
type Flags uint8

const (
	// FlagConstruct marks a node whose subtree is a syntactically complete
	// construct (a definition, a statement, an expression) as opposed to a
	// bare token or punctuation node produced by the grammar.
	FlagConstruct Flags = 1 << iota
	// FlagEmbodied marks a definition node that carries an executable body
	// (as opposed to a forward declaration, an abstract/interface member,
	// or a signature-only prototype).
	FlagEmbodied
)

// ParentSentinel is the parent_id value used for every root node. Root
// nodes are the only nodes in a file's array with no parent; using a
// reserved negative value instead of a nullable column keeps node_id and
// parent_id in the same integer domain, which is what the descendant
// range-scan in is_construct queries relies on.
const ParentSentinel int64 = -1

// Param is a single entry in a native signature's parameter list. Type is
// empty when the language is untyped or the grammar doesn't expose an
// annotation for that parameter.
type Param struct {
	Name string
	Type string
}

// NativeContext carries the language-specific detail the flattener
// attaches to definition-like nodes. Every field is optional; adapters
// populate only what their NativeStrategy for that node type produces.
type NativeContext struct {
	SignatureType string
	Parameters    []Param
	Modifiers     []string
	Annotations   string
	QualifiedName string
}

// Empty reports whether the context carries no information, so the
// flattener can skip allocating a Row-level placeholder for it.
func (n NativeContext) Empty() bool {
	return n.SignatureType == "" && len(n.Parameters) == 0 &&
		len(n.Modifiers) == 0 && n.Annotations == "" && n.QualifiedName == ""
}

// Node is the flattener's internal, fully-populated representation of one
// parse-tree node. It always carries every computed field regardless of
// the caller's projection options; Driver.project narrows it down to a
// Row before a batch is emitted. Keeping Node complete means the
// stack-based walk in Flatten never has to branch on what the caller
// asked for.
type Node struct {
	NodeID          uint64
	ParentID        int64
	Type            string
	Name            string
	SemanticType    byte
	Flags           Flags
	StartLine       uint32
	EndLine         uint32
	StartColumn     uint32
	EndColumn       uint32
	Depth           uint32
	SiblingIndex    uint32
	ChildrenCount   uint32
	DescendantCount uint32
	Peek            string
	Native          NativeContext
}

// Row is the externally-visible, option-projected shape of a Node. Fields
// a caller's Options excluded from the projection are left at their zero
// value with the corresponding pointer nil, which the JSON/NDJSON
// encoding at the CLI boundary turns into a null column.
type Row struct {
	NodeID       uint64  `json:"node_id"`
	ParentID     *int64  `json:"parent_id,omitempty"`
	Type         string  `json:"type"`
	Name         *string `json:"name,omitempty"`
	SemanticType byte    `json:"semantic_type"`
	Flags        Flags   `json:"flags"`

	FilePath string `json:"file_path"`
	Language string `json:"language"`

	StartLine   uint32  `json:"start_line"`
	EndLine     uint32  `json:"end_line"`
	StartColumn *uint32 `json:"start_column,omitempty"`
	EndColumn   *uint32 `json:"end_column,omitempty"`

	Depth           *uint32 `json:"depth,omitempty"`
	SiblingIndex    *uint32 `json:"sibling_index,omitempty"`
	ChildrenCount   *uint32 `json:"children_count,omitempty"`
	DescendantCount *uint32 `json:"descendant_count,omitempty"`

	Peek *string `json:"peek,omitempty"`

	SignatureType *string  `json:"signature_type,omitempty"`
	Parameters    []Param  `json:"parameters,omitempty"`
	Modifiers     []string `json:"modifiers,omitempty"`
	Annotations   *string  `json:"annotations,omitempty"`
	QualifiedName *string  `json:"qualified_name,omitempty"`
}

// IsConstruct reports whether the node's flags mark it as a complete
// syntactic construct.
func (n Node) IsConstruct() bool { return n.Flags&FlagConstruct != 0 }

// IsEmbodied reports whether the node's flags mark it as carrying an
// executable body.
func (n Node) IsEmbodied() bool { return n.Flags&FlagEmbodied != 0 }

// RowBatch is one bounded-size slice of rows handed back by a
// RowBatcher's Next call. The batch itself records no file; FilePath/
// Language are duplicated onto every Row so a batch can span file
// boundaries without losing attribution.
type RowBatch struct {
	Rows []Row
}

// LanguageDescriptor is one entry of ASTSupportedLanguages.
type LanguageDescriptor struct {
	Language   string
	Aliases    []string
	Extensions []string
}
