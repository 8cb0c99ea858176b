package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/g-plane/pretty-graphql/config"
	"github.com/g-plane/pretty-graphql/dom"
)

func renderList(t *testing.T, p ListParams) string {
	t.Helper()
	return dom.Render(FormatList(p), dom.Options{PrintWidth: 80, IndentWidth: 2, NewLine: "\n"})
}

func items(names ...string) []Item {
	out := make([]Item, len(names))
	for i, n := range names {
		out[i] = Item{Doc: dom.Text(n), SameLineAsPrev: true}
	}
	return out
}

func TestFormatListFlatWithCommaAlways(t *testing.T) {
	out := renderList(t, ListParams{
		Open: "(", Close: ")",
		Comma: config.CommaAlways, SingleLine: config.SingleLineSmart,
		Items: items("a", "b"),
	})
	assert.Equal(t, "(a, b)", out)
}

func TestFormatListFlatWithCommaOnlySingleLineStillInsertsComma(t *testing.T) {
	out := renderList(t, ListParams{
		Open: "(", Close: ")",
		Comma: config.CommaOnlySingleLine, SingleLine: config.SingleLineSmart,
		Items: items("a", "b"),
	})
	assert.Equal(t, "(a, b)", out)
}

func TestFormatListBrokenWithCommaOnlySingleLineDropsCommas(t *testing.T) {
	out := renderList(t, ListParams{
		Open: "(", Close: ")",
		Comma: config.CommaOnlySingleLine, SingleLine: config.SingleLineNever,
		Items: items("a", "b"),
	})
	assert.Equal(t, "(\n  a\n  b\n)", out)
}

func TestFormatListBrokenWithCommaAlwaysAddsTrailingComma(t *testing.T) {
	out := renderList(t, ListParams{
		Open: "(", Close: ")",
		Comma: config.CommaAlways, SingleLine: config.SingleLineNever,
		Items: items("a", "b"),
	})
	assert.Equal(t, "(\n  a,\n  b,\n)", out)
}

func TestFormatListBrokenWithCommaNoTrailingOmitsLastComma(t *testing.T) {
	out := renderList(t, ListParams{
		Open: "(", Close: ")",
		Comma: config.CommaNoTrailing, SingleLine: config.SingleLineNever,
		Items: items("a", "b"),
	})
	assert.Equal(t, "(\n  a,\n  b\n)", out)
}

func TestFormatListForcesBreakOnLeadingComment(t *testing.T) {
	its := items("a", "b")
	its[1].HasLeadingComment = true
	out := renderList(t, ListParams{
		Open: "(", Close: ")",
		Comma: config.CommaNever, SingleLine: config.SingleLineSmart,
		Items: its,
	})
	assert.Equal(t, "(\n  a\n  b\n)", out)
}

func TestFormatListSmartBreaksWhenOriginallyMultiline(t *testing.T) {
	its := items("a", "b")
	its[1].SameLineAsPrev = false
	out := renderList(t, ListParams{
		Open: "(", Close: ")",
		Comma: config.CommaNever, SingleLine: config.SingleLineSmart,
		Items: its,
	})
	assert.Equal(t, "(\n  a\n  b\n)", out)
}

func TestFormatListSmartStaysFlatWhenOriginallySingleLine(t *testing.T) {
	out := renderList(t, ListParams{
		Open: "(", Close: ")",
		Comma: config.CommaNever, SingleLine: config.SingleLineSmart,
		Items: items("a", "b"),
	})
	assert.Equal(t, "(a b)", out)
}

func TestFormatListPreservesBlankLineBetweenItems(t *testing.T) {
	its := items("a", "b")
	its[1].BlankBefore = true
	out := renderList(t, ListParams{
		Open: "(", Close: ")",
		Comma: config.CommaNever, SingleLine: config.SingleLineNever,
		Items: its,
	})
	assert.Equal(t, "(\n  a\n\n  b\n)", out)
}

func TestFormatListEmptyHasNoInnerSpace(t *testing.T) {
	out := renderList(t, ListParams{Open: "(", Close: ")", Comma: config.CommaNever, SingleLine: config.SingleLineSmart})
	assert.Equal(t, "()", out)
}

func TestFormatListEmptyWithDanglingComment(t *testing.T) {
	out := renderList(t, ListParams{
		Open: "{", Close: "}",
		Comma: config.CommaNever, SingleLine: config.SingleLineSmart,
		Dangling: []string{"# only a comment"},
	})
	assert.Equal(t, "{\n  # only a comment\n}", out)
}

func TestFormatListUnbracketedHasNoWrappingLinesOrIndent(t *testing.T) {
	out := renderList(t, ListParams{
		Comma: config.CommaNever, SingleLine: config.SingleLineNever,
		Items: items("a", "b"),
	})
	assert.Equal(t, "a\nb", out)
}

func TestFormatListInnerSpacingAppliesOnlyWhenFlat(t *testing.T) {
	out := renderList(t, ListParams{
		Open: "{", Close: "}",
		Comma: config.CommaNever, SingleLine: config.SingleLineSmart,
		InnerSpacing: true,
		Items:        items("a"),
	})
	assert.Equal(t, "{ a }", out)
}
