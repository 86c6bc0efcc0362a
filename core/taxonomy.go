package core

import "fmt"

// Semantic types are packed into a single byte as [ss kk tt ll]: a 2-bit
// super-kind, a 2-bit kind within it, a 2-bit super-type within the kind,
// and 2 reserved low bits that some categories use to refine the meaning
// further (see the Function sub-kind refinement below). Adapters never
// construct these by hand; they select a name from the registry below
// through a NodeConfig's SemanticType field.

type superKind byte

const (
	skDataStructure superKind = iota
	skComputation
	skControlEffects
	skMetaExternal
)

const (
	shiftSuperKind = 6
	shiftKind      = 4
	shiftSuperType = 2
	maskTwoBits    = 0x03
)

func code(ss superKind, kk, tt, ll byte) byte {
	return byte(ss)<<shiftSuperKind | (kk&maskTwoBits)<<shiftKind | (tt&maskTwoBits)<<shiftSuperType | (ll & maskTwoBits)
}

// SuperKindOf extracts the super-kind field (bits 6-7).
func SuperKindOf(b byte) byte { return (b >> shiftSuperKind) & maskTwoBits }

// KindOf extracts the kind field (bits 4-5).
func KindOf(b byte) byte { return (b >> shiftKind) & maskTwoBits }

// SuperTypeOf extracts the super-type field (bits 2-3).
func SuperTypeOf(b byte) byte { return (b >> shiftSuperType) & maskTwoBits }

// RefinementOf extracts the reserved low two bits.
func RefinementOf(b byte) byte { return b & maskTwoBits }

// base masks the refinement bits off, so a refined code (e.g. an async
// lambda) still matches its unrefined category constant for predicates.
func base(b byte) byte { return b &^ maskTwoBits }

// kinds, per super-kind
const (
	kindType       = 0 // skDataStructure
	kindLiteral    = 1
	kindIdentifier = 2
	kindStructure  = 3

	kindDefinition = 0 // skComputation
	kindCall       = 1
	kindOperation  = 2
	kindAnnotation = 3

	kindConditional = 0 // skControlEffects
	kindLoop        = 1
	kindJump        = 2
	kindException   = 3

	kindImport  = 0 // skMetaExternal
	kindComment = 1
	kindScope   = 2
	kindSyntax  = 3
)

// super-types, meaning depends on (super-kind, kind)
const (
	ttTypePrimitive = 0
	ttTypeComposite = 1
	ttTypeReference = 2
	ttTypeGeneric   = 3

	ttLiteralString  = 0
	ttLiteralNumber  = 1
	ttLiteralBoolean = 2
	ttLiteralOther   = 3

	ttDefinitionFunction  = 0
	ttDefinitionClass     = 1
	ttDefinitionVariable  = 2
	ttDefinitionNamespace = 3

	ttCallFunction    = 0
	ttCallMethod      = 1
	ttCallConstructor = 2
	ttCallOther       = 3

	ttAnnotationDecorator  = 0
	ttAnnotationAnnotation = 1
	ttAnnotationDirective  = 2

	ttConditionalIf      = 0
	ttConditionalSwitch  = 1
	ttConditionalTernary = 2

	ttLoopFor           = 0
	ttLoopWhile         = 1
	ttLoopComprehension = 2

	ttJumpReturn        = 0
	ttJumpBreakContinue = 1
	ttJumpThrow         = 2

	ttImportImport  = 0
	ttImportExport  = 1
	ttImportPackage = 2

	ttCommentLine  = 0
	ttCommentBlock = 1
	ttCommentDoc   = 2

	ttScopeModule  = 0
	ttScopeBlock   = 1
	ttScopeProgram = 2

	ttSyntaxPunctuation = 0
	ttSyntaxOperator    = 1
	ttSyntaxError       = 2
	ttSyntaxUnknown     = 3
)

// Function sub-kind refinement (ll bits, only meaningful when
// SuperKind==Computation, Kind==Definition, SuperType==Function).
const (
	FnRegular = iota
	FnLambda
	FnConstructor
	FnAsync
)

// Named semantic type codes. These are the values adapters put in a
// NodeConfig's SemanticType field.
var (
	TypePrimitive = code(skDataStructure, kindType, ttTypePrimitive, 0)
	TypeComposite = code(skDataStructure, kindType, ttTypeComposite, 0)
	TypeReference = code(skDataStructure, kindType, ttTypeReference, 0)
	TypeGeneric   = code(skDataStructure, kindType, ttTypeGeneric, 0)

	LiteralString  = code(skDataStructure, kindLiteral, ttLiteralString, 0)
	LiteralNumber  = code(skDataStructure, kindLiteral, ttLiteralNumber, 0)
	LiteralBoolean = code(skDataStructure, kindLiteral, ttLiteralBoolean, 0)
	LiteralOther   = code(skDataStructure, kindLiteral, ttLiteralOther, 0)

	IdentifierName      = code(skDataStructure, kindIdentifier, 0, 0)
	IdentifierQualified = code(skDataStructure, kindIdentifier, 1, 0)
	IdentifierProperty  = code(skDataStructure, kindIdentifier, 2, 0)

	StructureField     = code(skDataStructure, kindStructure, 0, 0)
	StructureParameter = code(skDataStructure, kindStructure, 1, 0)
	StructureElement   = code(skDataStructure, kindStructure, 2, 0)

	DefinitionFunction    = code(skComputation, kindDefinition, ttDefinitionFunction, FnRegular)
	DefinitionLambda      = code(skComputation, kindDefinition, ttDefinitionFunction, FnLambda)
	DefinitionConstructor = code(skComputation, kindDefinition, ttDefinitionFunction, FnConstructor)
	DefinitionAsyncFunc   = code(skComputation, kindDefinition, ttDefinitionFunction, FnAsync)
	DefinitionClass       = code(skComputation, kindDefinition, ttDefinitionClass, 0)
	DefinitionInterface   = code(skComputation, kindDefinition, ttDefinitionClass, 1)
	DefinitionEnum        = code(skComputation, kindDefinition, ttDefinitionClass, 2)
	DefinitionVariable    = code(skComputation, kindDefinition, ttDefinitionVariable, 0)
	DefinitionConstant    = code(skComputation, kindDefinition, ttDefinitionVariable, 1)
	DefinitionNamespace   = code(skComputation, kindDefinition, ttDefinitionNamespace, 0)

	CallFunction    = code(skComputation, kindCall, ttCallFunction, 0)
	CallMethod      = code(skComputation, kindCall, ttCallMethod, 0)
	CallConstructor = code(skComputation, kindCall, ttCallConstructor, 0)

	OperationAssignment = code(skComputation, kindOperation, 0, 0)
	OperationBinary     = code(skComputation, kindOperation, 1, 0)
	OperationUnary      = code(skComputation, kindOperation, 2, 0)

	AnnotationDecorator = code(skComputation, kindAnnotation, ttAnnotationDecorator, 0)
	AnnotationGeneric   = code(skComputation, kindAnnotation, ttAnnotationAnnotation, 0)
	AnnotationDirective = code(skComputation, kindAnnotation, ttAnnotationDirective, 0)

	ConditionalIf      = code(skControlEffects, kindConditional, ttConditionalIf, 0)
	ConditionalSwitch  = code(skControlEffects, kindConditional, ttConditionalSwitch, 0)
	ConditionalTernary = code(skControlEffects, kindConditional, ttConditionalTernary, 0)

	LoopFor           = code(skControlEffects, kindLoop, ttLoopFor, 0)
	LoopWhile         = code(skControlEffects, kindLoop, ttLoopWhile, 0)
	LoopComprehension = code(skControlEffects, kindLoop, ttLoopComprehension, 0)

	JumpReturn        = code(skControlEffects, kindJump, ttJumpReturn, 0)
	JumpBreakContinue = code(skControlEffects, kindJump, ttJumpBreakContinue, 0)
	JumpThrow         = code(skControlEffects, kindJump, ttJumpThrow, 0)

	ExceptionTry     = code(skControlEffects, kindException, 0, 0)
	ExceptionCatch   = code(skControlEffects, kindException, 1, 0)
	ExceptionFinally = code(skControlEffects, kindException, 2, 0)

	ImportImport  = code(skMetaExternal, kindImport, ttImportImport, 0)
	ImportExport  = code(skMetaExternal, kindImport, ttImportExport, 0)
	ImportPackage = code(skMetaExternal, kindImport, ttImportPackage, 0)

	CommentLine  = code(skMetaExternal, kindComment, ttCommentLine, 0)
	CommentBlock = code(skMetaExternal, kindComment, ttCommentBlock, 0)
	CommentDoc   = code(skMetaExternal, kindComment, ttCommentDoc, 0)

	ScopeModule  = code(skMetaExternal, kindScope, ttScopeModule, 0)
	ScopeBlock   = code(skMetaExternal, kindScope, ttScopeBlock, 0)
	ScopeProgram = code(skMetaExternal, kindScope, ttScopeProgram, 0)

	SyntaxPunctuation = code(skMetaExternal, kindSyntax, ttSyntaxPunctuation, 0)
	SyntaxOperator    = code(skMetaExternal, kindSyntax, ttSyntaxOperator, 0)
	SyntaxError       = code(skMetaExternal, kindSyntax, ttSyntaxError, 0)
	SyntaxUnknown     = code(skMetaExternal, kindSyntax, ttSyntaxUnknown, 0)
)

var semanticNames = map[byte]string{
	TypePrimitive:  "TYPE_PRIMITIVE",
	TypeComposite:  "TYPE_COMPOSITE",
	TypeReference:  "TYPE_REFERENCE",
	TypeGeneric:    "TYPE_GENERIC",
	LiteralString:  "LITERAL_STRING",
	LiteralNumber:  "LITERAL_NUMBER",
	LiteralBoolean: "LITERAL_BOOLEAN",
	LiteralOther:   "LITERAL_OTHER",

	IdentifierName:      "IDENTIFIER_NAME",
	IdentifierQualified: "IDENTIFIER_QUALIFIED",
	IdentifierProperty:  "IDENTIFIER_PROPERTY",

	StructureField:     "STRUCTURE_FIELD",
	StructureParameter: "STRUCTURE_PARAMETER",
	StructureElement:   "STRUCTURE_ELEMENT",

	DefinitionFunction:    "DEFINITION_FUNCTION",
	DefinitionLambda:      "DEFINITION_FUNCTION_LAMBDA",
	DefinitionConstructor: "DEFINITION_FUNCTION_CONSTRUCTOR",
	DefinitionAsyncFunc:   "DEFINITION_FUNCTION_ASYNC",
	DefinitionClass:       "DEFINITION_CLASS",
	DefinitionInterface:   "DEFINITION_INTERFACE",
	DefinitionEnum:        "DEFINITION_ENUM",
	DefinitionVariable:    "DEFINITION_VARIABLE",
	DefinitionConstant:    "DEFINITION_CONSTANT",
	DefinitionNamespace:   "DEFINITION_NAMESPACE",

	CallFunction:    "CALL_FUNCTION",
	CallMethod:      "CALL_METHOD",
	CallConstructor: "CALL_CONSTRUCTOR",

	OperationAssignment: "OPERATION_ASSIGNMENT",
	OperationBinary:     "OPERATION_BINARY",
	OperationUnary:      "OPERATION_UNARY",

	AnnotationDecorator: "ANNOTATION_DECORATOR",
	AnnotationGeneric:   "ANNOTATION_GENERIC",
	AnnotationDirective: "ANNOTATION_DIRECTIVE",

	ConditionalIf:      "CONDITIONAL_IF",
	ConditionalSwitch:  "CONDITIONAL_SWITCH",
	ConditionalTernary: "CONDITIONAL_TERNARY",

	LoopFor:           "LOOP_FOR",
	LoopWhile:         "LOOP_WHILE",
	LoopComprehension: "LOOP_COMPREHENSION",

	JumpReturn:        "JUMP_RETURN",
	JumpBreakContinue: "JUMP_BREAK_CONTINUE",
	JumpThrow:         "JUMP_THROW",

	ExceptionTry:     "EXCEPTION_TRY",
	ExceptionCatch:   "EXCEPTION_CATCH",
	ExceptionFinally: "EXCEPTION_FINALLY",

	ImportImport:  "IMPORT_IMPORT",
	ImportExport:  "IMPORT_EXPORT",
	ImportPackage: "IMPORT_PACKAGE",

	CommentLine:  "COMMENT_LINE",
	CommentBlock: "COMMENT_BLOCK",
	CommentDoc:   "COMMENT_DOC",

	ScopeModule:  "SCOPE_MODULE",
	ScopeBlock:   "SCOPE_BLOCK",
	ScopeProgram: "SCOPE_PROGRAM",

	SyntaxPunctuation: "SYNTAX_PUNCTUATION",
	SyntaxOperator:    "SYNTAX_OPERATOR",
	SyntaxError:       "SYNTAX_ERROR",
	SyntaxUnknown:     "SYNTAX_UNKNOWN",
}

var namesToCode = func() map[string]byte {
	m := make(map[string]byte, len(semanticNames))
	for c, n := range semanticNames {
		m[n] = c
	}
	return m
}()

// SemanticTypeToString returns the registered name for b, or a
// hex-encoded fallback when b is an unregistered code (e.g. a refined
// value outside the Function sub-kind convention).
func SemanticTypeToString(b byte) string {
	if name, ok := semanticNames[b]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN_0x%02X", b)
}

// CodeOfSemanticType is the reverse lookup of SemanticTypeToString.
func CodeOfSemanticType(name string) (byte, bool) {
	c, ok := namesToCode[name]
	return c, ok
}

// IsConstruct reports whether flags mark a node as a complete construct.
func IsConstruct(flags Flags) bool { return flags&FlagConstruct != 0 }

// IsEmbodied reports whether flags mark a node as carrying a body.
func IsEmbodied(flags Flags) bool { return flags&FlagEmbodied != 0 }

func IsDefinition(b byte) bool {
	return SuperKindOf(b) == byte(skComputation) && KindOf(b) == kindDefinition
}
func IsCall(b byte) bool        { return SuperKindOf(b) == byte(skComputation) && KindOf(b) == kindCall }
func IsControlFlow(b byte) bool { return SuperKindOf(b) == byte(skControlEffects) }
func IsIdentifier(b byte) bool {
	return SuperKindOf(b) == byte(skDataStructure) && KindOf(b) == kindIdentifier
}
func IsLiteral(b byte) bool {
	return SuperKindOf(b) == byte(skDataStructure) && KindOf(b) == kindLiteral
}
func IsComment(b byte) bool {
	return SuperKindOf(b) == byte(skMetaExternal) && KindOf(b) == kindComment
}
func IsImport(b byte) bool { return SuperKindOf(b) == byte(skMetaExternal) && KindOf(b) == kindImport }
func IsConditional(b byte) bool {
	return SuperKindOf(b) == byte(skControlEffects) && KindOf(b) == kindConditional
}
func IsLoop(b byte) bool { return SuperKindOf(b) == byte(skControlEffects) && KindOf(b) == kindLoop }
func IsJump(b byte) bool { return SuperKindOf(b) == byte(skControlEffects) && KindOf(b) == kindJump }

func IsFunctionDefinition(b byte) bool {
	return IsDefinition(b) && SuperTypeOf(b) == ttDefinitionFunction
}
func IsClassDefinition(b byte) bool {
	return IsDefinition(b) && SuperTypeOf(b) == ttDefinitionClass
}
func IsVariableDefinition(b byte) bool {
	return IsDefinition(b) && SuperTypeOf(b) == ttDefinitionVariable
}

func IsStringLiteral(b byte) bool  { return IsLiteral(b) && SuperTypeOf(b) == ttLiteralString }
func IsNumberLiteral(b byte) bool  { return IsLiteral(b) && SuperTypeOf(b) == ttLiteralNumber }
func IsBooleanLiteral(b byte) bool { return IsLiteral(b) && SuperTypeOf(b) == ttLiteralBoolean }

func isType(b byte) bool { return SuperKindOf(b) == byte(skDataStructure) && KindOf(b) == kindType }

func IsTypePrimitive(b byte) bool { return isType(b) && SuperTypeOf(b) == ttTypePrimitive }
func IsTypeComposite(b byte) bool { return isType(b) && SuperTypeOf(b) == ttTypeComposite }
func IsTypeReference(b byte) bool { return isType(b) && SuperTypeOf(b) == ttTypeReference }
func IsTypeGeneric(b byte) bool   { return isType(b) && SuperTypeOf(b) == ttTypeGeneric }

func isAnnotationKind(b byte) bool {
	return SuperKindOf(b) == byte(skComputation) && KindOf(b) == kindAnnotation
}
func IsAnnotation(b byte) bool {
	return isAnnotationKind(b) && SuperTypeOf(b) == ttAnnotationAnnotation
}
func IsDirective(b byte) bool { return isAnnotationKind(b) && SuperTypeOf(b) == ttAnnotationDirective }
