package dom

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func render(t *testing.T, doc Doc, width uint32) string {
	t.Helper()
	return Render(doc, Options{PrintWidth: width, IndentWidth: 2, NewLine: "\n"})
}

func TestGroupStaysFlatWhenItFits(t *testing.T) {
	doc := Group(Concat(Text("("), Text("a"), Line, Text("b"), Text(")")))
	assert.Equal(t, "(a b)", render(t, doc, 80))
}

func TestGroupBreaksWhenTooWide(t *testing.T) {
	doc := Group(Concat(Text("("), Indent(Concat(Line, Text("aaaaaaaaaa"), Line, Text("bbbbbbbbbb"))), Line, Text(")")))
	out := render(t, doc, 5)
	assert.Equal(t, "(\n  aaaaaaaaaa\n  bbbbbbbbbb\n)", out)
}

func TestHardLineForcesEnclosingGroupToBreak(t *testing.T) {
	doc := Group(Concat(Text("a"), HardLine, Text("b")))
	assert.Equal(t, "a\nb", render(t, doc, 80))
}

func TestIndentAddsOneLevelPerNesting(t *testing.T) {
	doc := Concat(Text("a"), Indent(Concat(HardLine, Text("b"), Indent(Concat(HardLine, Text("c"))))))
	assert.Equal(t, "a\n  b\n    c", render(t, doc, 80))
}

func TestLineSuffixDefersToNextBreak(t *testing.T) {
	doc := Concat(Text("a"), LineSuffix(Text(" // trailing")), HardLine, Text("b"))
	assert.Equal(t, "a // trailing\nb", render(t, doc, 80))
}

func TestBlankLineIfBreakingOnlyWhenBreaking(t *testing.T) {
	flat := Group(IfBreak(
		Concat(Text("a"), BlankLineIfBreaking, HardLine, Text("b")),
		Text("ab"),
	))
	assert.Equal(t, "ab", render(t, flat, 80))

	broken := Concat(Text("a"), BlankLineIfBreaking, HardLine, Text("b"))
	assert.Equal(t, "a\n\nb", render(t, broken, 80))
}

func TestIfBreakPicksFlatBranchInsideFittingGroup(t *testing.T) {
	doc := Group(IfBreak(Text("broken"), Text("flat")))
	assert.Equal(t, "flat", render(t, doc, 80))
}

func TestIfBreakPicksBrokenBranchWhenForced(t *testing.T) {
	doc := Group(Concat(IfBreak(Text("broken"), Text("flat")), HardLine))
	assert.Equal(t, "broken\n", render(t, doc, 80))
}
