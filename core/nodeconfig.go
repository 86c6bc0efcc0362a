package core

// NameStrategy selects how the flattener derives a node's short display
// name from its grammar-specific shape. Strategies are data, not code:
// an adapter picks one per node type in its NodeConfigs table, and the
// flattener dispatches through the shared extractors in name.go.
type NameStrategy byte

const (
	NameNone NameStrategy = iota
	NameNodeText
	NameFindIdentifier
	NameFindProperty
	NameFindQualifiedIdentifier
	NameFindCallTarget
	NameFindAssignmentTarget
	NameFindInDeclarator
	NameCustom
)

// NativeStrategy selects which native-context extractor runs for a node
// type. Like NameStrategy this is a dispatch key, not a callback: each
// Adapter supplies the actual per-language function through its
// NativeExtractorTable.
type NativeStrategy byte

const (
	NativeNone NativeStrategy = iota
	NativeNodeText
	NativeFunctionWithParams
	NativeFunctionWithDecorators
	NativeArrowFunction
	NativeAsyncFunction
	NativeClassWithInheritance
	NativeClassWithMethods
	NativeVariableWithType
	NativeGenericFunction
	NativeMethodDefinition
	NativeConstructorDefinition
	NativeInterfaceDefinition
	NativeEnumDefinition
	NativeImportStatement
	NativeFunctionCall
)

// NodeConfig is the per-grammar-node-type entry an adapter returns from
// NodeConfigs. It is a plain value (no behavior attached): the flattener
// looks it up per node through the adapter's NodeConfigFor and never
// branches on adapter identity.
type NodeConfig struct {
	SemanticType   byte
	NameStrategy   NameStrategy
	NativeStrategy NativeStrategy
	Flags          Flags
}
