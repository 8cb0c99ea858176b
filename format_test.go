package prettygraphql

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-plane/pretty-graphql/ast"
)

func TestFormatTextShorthandQuery(t *testing.T) {
	out, err := FormatText("{ field }", nil)
	require.NoError(t, err)
	assert.Equal(t, "{\n  field\n}\n", out)
}

func TestFormatTextSyntaxError(t *testing.T) {
	_, err := FormatText("{", nil)
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrorKindSyntax, fe.Kind)
	assert.NotEmpty(t, fe.SyntaxErrors)
}

// TestFormatTextSyntaxErrorWinsOverConfigError pins down spec.md §4.6's step
// order (parse, then resolve configuration): a source with a syntax error
// reports ErrorKindSyntax even when options also carries an invalid value.
func TestFormatTextSyntaxErrorWinsOverConfigError(t *testing.T) {
	_, err := FormatText("{", map[string]string{"printWidth": "0"})
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrorKindSyntax, fe.Kind)
}

func TestFormatTextVariableDefinitionsSingleLineNever(t *testing.T) {
	src := "query Query($a: A, $b: B) {\n  f\n}\n"
	out, err := FormatText(src, map[string]string{"variableDefinitions.singleLine": "never"})
	require.NoError(t, err)
	assert.Equal(t, "query Query(\n  $a: A\n  $b: B\n) {\n  f\n}\n", out)
}

func TestFormatTextPreservesSingleBlankLineBetweenDefinitions(t *testing.T) {
	src := "scalar A\n\nscalar B\n"
	out, err := FormatText(src, nil)
	require.NoError(t, err)
	assert.Equal(t, "scalar A\n\nscalar B\n", out)
}

func TestFormatTextIgnoreDirectiveKeepsVerbatimBlock(t *testing.T) {
	src := "{\n  # pretty-graphql-ignore\n  hero {\n       name\n    height\n  }\n}\n"
	out, err := FormatText(src, nil)
	require.NoError(t, err)
	assert.Contains(t, out, "hero {\n       name\n    height\n  }")
}

func TestFormatTextImplementsStaysOnOneLineWhenFieldsBreak(t *testing.T) {
	out, err := FormatText("type T implements A & B & C { id: ID }", nil)
	require.NoError(t, err)
	assert.Equal(t, "type T implements A & B & C {\n  id: ID\n}\n", out)
}

func TestFormatTextInvalidConfigValue(t *testing.T) {
	_, err := FormatText("{ f }", map[string]string{"printWidth": "0"})
	require.Error(t, err)
	var fe *Error
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, ErrorKindConfig, fe.Kind)
}

func TestFormatTextIdempotent(t *testing.T) {
	src := "query Q($a: Int = 1) @dir { f(a: 1) { g } ... on T { h } }"
	once, err := FormatText(src, nil)
	require.NoError(t, err)
	twice, err := FormatText(once, nil)
	require.NoError(t, err)
	assert.Equal(t, once, twice)
}

func TestFormatTextTrailingNewlineInvariant(t *testing.T) {
	out, err := FormatText("{ f }\n\n\n", nil)
	require.NoError(t, err)
	assert.Equal(t, "{\n  f\n}\n", out)
}

// TestFormatTextParsePreservation checks spec property 2: reparsing the
// formatted output yields a CST structurally equivalent to the original,
// ignoring trivia. It compares the two parses' [ast.Shape] rather than their
// text, the way protocompile's test helpers diff proto messages with
// cmp.Diff instead of comparing serialized bytes.
func TestFormatTextParsePreservation(t *testing.T) {
	src := "query Q($a:Int=1,$b:Int)@dir(x:1){f(a:1,b:[1,2]){g # trailing\n h}...on T{i}} fragment F on T{j}"
	out, err := FormatText(src, nil)
	require.NoError(t, err)

	before, errs := ast.Parse(src)
	require.Empty(t, errs)
	after, errs := ast.Parse(out)
	require.Empty(t, errs)

	if diff := cmp.Diff(ast.ShapeOf(before), ast.ShapeOf(after)); diff != "" {
		t.Errorf("reformatting changed the parse (-want +got):\n%s", diff)
	}
}

// TestFormatTextCommaOnlySingleLineDefault pins the global comma default
// down: onlySingleLine, not always, so a forced-broken list that isn't
// hardcoded to a different policy (like variableDefinitions) drops commas
// once it breaks but keeps them while flat.
func TestFormatTextCommaOnlySingleLineDefault(t *testing.T) {
	flat, err := FormatText("{ f(a: 1, b: 2) }", nil)
	require.NoError(t, err)
	assert.Equal(t, "{\n  f(a: 1, b: 2)\n}\n", flat)

	broken, err := FormatText("{ f(a: 1, b: 2) }", map[string]string{"arguments.singleLine": "never"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  f(\n    a: 1\n    b: 2\n  )\n}\n", broken)
}

// TestFormatTextFormatCommentsNormalizesSpacing pins down spec.md §4.2 rule
// 6: formatComments=true collapses the gap after '#' down to one space,
// while the default leaves a comment's text untouched.
func TestFormatTextFormatCommentsNormalizesSpacing(t *testing.T) {
	src := "{\n  #   note\n  f\n}"

	verbatim, err := FormatText(src, nil)
	require.NoError(t, err)
	assert.Equal(t, "{\n  #   note\n  f\n}\n", verbatim)

	normalized, err := FormatText(src, map[string]string{"formatComments": "true"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  # note\n  f\n}\n", normalized)
}
