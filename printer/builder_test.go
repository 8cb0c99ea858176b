package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-plane/pretty-graphql/ast"
	"github.com/g-plane/pretty-graphql/config"
	"github.com/g-plane/pretty-graphql/dom"
)

func format(t *testing.T, src string, raw map[string]string) string {
	t.Helper()
	doc, errs := ast.Parse(src)
	require.Empty(t, errs)
	cfg, err := config.Resolve(raw)
	require.NoError(t, err)
	// dom.Render emits no final line break; append the one the public façade
	// adds after rendering.
	return dom.Render(FormatDoc(doc, cfg), dom.Options{
		PrintWidth:  cfg.PrintWidth,
		IndentWidth: cfg.IndentWidth,
		NewLine:     "\n",
	}) + "\n"
}

func TestBuildUnionTypeDefinitionStaysFlatWhenShort(t *testing.T) {
	out := format(t, "union U = A | B", nil)
	assert.Equal(t, "union U = A | B\n", out)
}

func TestBuildEnumTypeDefinitionAlwaysBreaksValues(t *testing.T) {
	out := format(t, "enum E { A B }", nil)
	assert.Equal(t, "enum E {\n  A\n  B\n}\n", out)
}

func TestBuildDirectiveDefinitionWithLocations(t *testing.T) {
	out := format(t, "directive @d on FIELD | QUERY", nil)
	assert.Equal(t, "directive @d on FIELD | QUERY\n", out)
}

func TestBuildFragmentDefinition(t *testing.T) {
	out := format(t, "fragment F on T { j }", nil)
	assert.Equal(t, "fragment F on T {\n  j\n}\n", out)
}

func TestBuildBlockStringValuePreservedVerbatim(t *testing.T) {
	src := "\"\"\"\nhello\n  world\n\"\"\"\ntype T {\n  id: ID\n}\n"
	out := format(t, src, nil)
	assert.Equal(t, src, out)
}

func TestBuildFieldTrailingCommentStaysAfterField(t *testing.T) {
	out := format(t, "{\n  a # note\n  b\n}", nil)
	assert.Equal(t, "{\n  a # note\n  b\n}\n", out)
}

func TestBuildUnionTypeDefinitionBreaksWhenForcedByComment(t *testing.T) {
	src := "union U =\n  # comment\n  A | B"
	out := format(t, src, nil)
	assert.Equal(t, "union U =\n  | # comment\n  A\n  | B\n", out)
}
