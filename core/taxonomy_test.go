package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSemanticTypeRoundTrip(t *testing.T) {
	names := []string{
		"DEFINITION_FUNCTION", "DEFINITION_CLASS", "CALL_FUNCTION",
		"CONDITIONAL_IF", "LOOP_FOR", "LITERAL_STRING", "IDENTIFIER_NAME",
		"COMMENT_LINE", "SCOPE_PROGRAM", "SYNTAX_ERROR",
	}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			code, ok := CodeOfSemanticType(name)
			assert.True(t, ok, "expected %q to be a registered semantic type", name)
			assert.Equal(t, name, SemanticTypeToString(code))
		})
	}
}

func TestSemanticTypeToStringUnknownCode(t *testing.T) {
	assert.Equal(t, "UNKNOWN_0xFF", SemanticTypeToString(0xFF))
}

func TestCodeOfSemanticTypeUnknownName(t *testing.T) {
	_, ok := CodeOfSemanticType("not_a_real_type")
	assert.False(t, ok)
}

func TestIsPredicates(t *testing.T) {
	fn, _ := CodeOfSemanticType("DEFINITION_FUNCTION")
	assert.True(t, IsDefinition(fn))
	assert.True(t, IsFunctionDefinition(fn))
	assert.False(t, IsCall(fn))

	call, _ := CodeOfSemanticType("CALL_FUNCTION")
	assert.True(t, IsCall(call))
	assert.False(t, IsDefinition(call))

	str, _ := CodeOfSemanticType("LITERAL_STRING")
	assert.True(t, IsLiteral(str))
	assert.True(t, IsStringLiteral(str))
	assert.False(t, IsNumberLiteral(str))

	ifCode, _ := CodeOfSemanticType("CONDITIONAL_IF")
	assert.True(t, IsControlFlow(ifCode))
	assert.True(t, IsConditional(ifCode))
	assert.False(t, IsLoop(ifCode))
}

func TestFlagsPredicates(t *testing.T) {
	assert.True(t, IsConstruct(FlagConstruct))
	assert.True(t, IsEmbodied(FlagEmbodied))
	assert.True(t, IsConstruct(FlagConstruct|FlagEmbodied))
	assert.False(t, IsConstruct(0))
	assert.False(t, IsEmbodied(FlagConstruct))
}
