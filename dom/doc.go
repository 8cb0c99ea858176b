// Package dom implements the print-document algebra of spec §3/§6.2 and a
// Wadler/Oppen-style layout engine that renders it to text. It plays the
// role of the "assumed" layout engine: the printer package builds a [Doc]
// tree and hands it to [Render].
//
// The constructors mirror bufbuild/protocompile's experimental/dom package
// (Text, Group, Indent, Line) in naming and intent, simplified from that
// package's flat-array/closure representation to a conventional recursive
// tree, and extended with [LineSuffix] and [BlankLineIfBreaking], which
// protocompile's algebra has no equivalent for.
package dom

// Kind identifies the shape of a [Doc] node.
type Kind uint8

const (
	KindText Kind = iota
	KindConcat
	KindGroup
	KindIndent
	KindLine
	KindSoftLine
	KindHardLine
	KindLineSuffix
	KindIfBreak
	KindBlankLineIfBreaking
)

// Doc is one node of the print-document tree.
type Doc struct {
	Kind     Kind
	Text     string
	Children []Doc
	Broken   *Doc // IfBreak only: rendered when the enclosing group breaks.
	Flat     *Doc // IfBreak only: rendered when the enclosing group stays flat.
}

// Text wraps a literal string with no special layout behavior.
func Text(s string) Doc { return Doc{Kind: KindText, Text: s} }

// Concat joins docs with no separator or layout behavior of its own.
func Concat(docs ...Doc) Doc { return Doc{Kind: KindConcat, Children: docs} }

// Group marks doc as a unit that renders flat if it fits within the
// remaining print width, or fully broken otherwise.
func Group(doc Doc) Doc { return Doc{Kind: KindGroup, Children: []Doc{doc}} }

// Indent increases the indentation level for doc by one level.
func Indent(doc Doc) Doc { return Doc{Kind: KindIndent, Children: []Doc{doc}} }

// Line renders as a space when the enclosing group is flat, or a newline
// followed by the current indentation when it breaks.
var Line = Doc{Kind: KindLine}

// SoftLine renders as nothing when the enclosing group is flat, or a
// newline followed by the current indentation when it breaks.
var SoftLine = Doc{Kind: KindSoftLine}

// HardLine always renders as a newline followed by the current
// indentation, regardless of any enclosing group's mode, and forces any
// group directly containing it (not crossing a nested [Group]) to break.
var HardLine = Doc{Kind: KindHardLine}

// BlankLineIfBreaking renders as a second, blank line when the enclosing
// group breaks (used to preserve a user's blank line between list items),
// and as nothing when flat.
var BlankLineIfBreaking = Doc{Kind: KindBlankLineIfBreaking}

// LineSuffix defers doc's rendering to just before the next line break (of
// any kind) or the end of the document. Used for trailing same-line
// comments, which must not themselves push later content onto the next
// line.
func LineSuffix(doc Doc) Doc { return Doc{Kind: KindLineSuffix, Children: []Doc{doc}} }

// IfBreak renders broken when the enclosing group breaks and flat when it
// does not.
func IfBreak(broken, flat Doc) Doc {
	return Doc{Kind: KindIfBreak, Broken: &broken, Flat: &flat}
}

// willBreak reports whether doc must render broken regardless of available
// width: it (or one of its children, not crossing into a nested [Group])
// contains a [HardLine] or [BlankLineIfBreaking].
func willBreak(doc Doc) bool {
	switch doc.Kind {
	case KindHardLine, KindBlankLineIfBreaking:
		return true
	case KindGroup, KindLineSuffix:
		// A nested group picks its own mode independently; a line suffix
		// is deferred and never forces the surrounding layout to break.
		return false
	case KindConcat, KindIndent:
		for _, c := range doc.Children {
			if willBreak(c) {
				return true
			}
		}
		return false
	default:
		return false
	}
}
