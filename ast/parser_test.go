package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parseOK(t *testing.T, src string) *Node {
	t.Helper()
	doc, errs := Parse(src)
	require.Empty(t, errs)
	return doc
}

func TestParseShorthandQuery(t *testing.T) {
	doc := parseOK(t, "{ field }")
	require.Equal(t, KindDocument, doc.Kind)
	require.Len(t, doc.Children(), 1)

	op := doc.Children()[0].Sub
	assert.Equal(t, KindOperationDefinition, op.Kind)
	assert.Equal(t, "{ field }", op.Text())
}

func TestParseUnclosedBraceIsSyntaxError(t *testing.T) {
	_, errs := Parse("{")
	require.NotEmpty(t, errs)
}

func TestParseNamedOperationWithVariablesAndDirective(t *testing.T) {
	doc := parseOK(t, "query Q($a: Int = 1) @dir { f }")
	op := doc.Children()[0].Sub
	require.Equal(t, KindOperationDefinition, op.Kind)

	var sawVarDefs, sawDirectives, sawSelectionSet bool
	for _, e := range op.Children() {
		if e.IsToken() {
			continue
		}
		switch e.Sub.Kind {
		case KindVariableDefinitions:
			sawVarDefs = true
		case KindDirectives:
			sawDirectives = true
		case KindSelectionSet:
			sawSelectionSet = true
		}
	}
	assert.True(t, sawVarDefs)
	assert.True(t, sawDirectives)
	assert.True(t, sawSelectionSet)
}

func TestParseObjectTypeDefinitionWithImplements(t *testing.T) {
	doc := parseOK(t, "type T implements A & B { id: ID }")
	def := doc.Children()[0].Sub
	require.Equal(t, KindObjectTypeDefinition, def.Kind)

	var sawImplements, sawFields bool
	for _, e := range def.Children() {
		if e.IsToken() {
			continue
		}
		switch e.Sub.Kind {
		case KindImplementsInterfaces:
			sawImplements = true
		case KindFieldsDefinition:
			sawFields = true
		}
	}
	assert.True(t, sawImplements)
	assert.True(t, sawFields)
}

func TestNodeSpanExcludesTrivia(t *testing.T) {
	doc := parseOK(t, "  { field }  ")
	op := doc.Children()[0].Sub
	assert.Equal(t, "{ field }", op.Text())
}

func TestShapeOfIgnoresCommentsAndWhitespace(t *testing.T) {
	a := parseOK(t, "{field}")
	b := parseOK(t, "{\n  # a comment\n  field\n}\n")
	assert.Equal(t, ShapeOf(a), ShapeOf(b))
}

func TestShapeOfDiffersOnStructuralChange(t *testing.T) {
	a := parseOK(t, "{ field }")
	b := parseOK(t, "{ other }")
	assert.NotEqual(t, ShapeOf(a), ShapeOf(b))
}
