package dom

import (
	"strings"

	"github.com/rivo/uniseg"
)

// Options configures [Render]. It is deliberately a subset of config.Config:
// the renderer only needs the knobs that affect layout, not any node-kind
// scoping, which is resolved away by the time a [Doc] reaches this package.
type Options struct {
	PrintWidth  uint32
	UseTabs     bool
	IndentWidth uint32
	// NewLine is the literal line terminator, e.g. "\n" or "\r\n".
	NewLine string
}

type mode uint8

const (
	modeBreak mode = iota
	modeFlat
)

type cmd struct {
	indent int
	mode   mode
	doc    Doc
}

// Render lays out doc honoring opt.PrintWidth and returns the resulting
// text. It implements the standard "fits on line" decision for [Group]:
// flat wins when the content (and whatever immediately follows it on the
// same line) fits within the remaining width and contains no unavoidable
// break; broken wins otherwise.
func Render(doc Doc, opt Options) string {
	var out strings.Builder
	pos := 0
	var suffixes []cmd
	cmds := []cmd{{indent: 0, mode: modeBreak, doc: doc}}

	newline := func(indent int) {
		out.WriteString(opt.NewLine)
		ind := indentText(indent, opt)
		out.WriteString(ind)
		pos = stringWidth(ind)
	}

	for {
		if len(cmds) == 0 {
			if len(suffixes) == 0 {
				break
			}
			for i := len(suffixes) - 1; i >= 0; i-- {
				cmds = append(cmds, suffixes[i])
			}
			suffixes = nil
			continue
		}

		c := cmds[len(cmds)-1]
		cmds = cmds[:len(cmds)-1]

		switch c.doc.Kind {
		case KindText:
			out.WriteString(c.doc.Text)
			pos += stringWidth(c.doc.Text)

		case KindConcat:
			for i := len(c.doc.Children) - 1; i >= 0; i-- {
				cmds = append(cmds, cmd{c.indent, c.mode, c.doc.Children[i]})
			}

		case KindIndent:
			cmds = append(cmds, cmd{c.indent + 1, c.mode, c.doc.Children[0]})

		case KindGroup:
			inner := c.doc.Children[0]
			if !willBreak(inner) && fits(cmd{c.indent, modeFlat, inner}, cmds, int(opt.PrintWidth)-pos, opt) {
				cmds = append(cmds, cmd{c.indent, modeFlat, inner})
			} else {
				cmds = append(cmds, cmd{c.indent, modeBreak, inner})
			}

		case KindIfBreak:
			if c.mode == modeBreak {
				cmds = append(cmds, cmd{c.indent, c.mode, *c.doc.Broken})
			} else {
				cmds = append(cmds, cmd{c.indent, c.mode, *c.doc.Flat})
			}

		case KindLineSuffix:
			suffixes = append(suffixes, cmd{c.indent, c.mode, c.doc.Children[0]})

		case KindLine:
			if c.mode == modeFlat {
				out.WriteString(" ")
				pos++
				continue
			}
			if len(suffixes) > 0 {
				cmds = append(cmds, c)
				cmds = append(cmds, suffixes...)
				suffixes = nil
				continue
			}
			newline(c.indent)

		case KindSoftLine:
			if c.mode == modeFlat {
				continue
			}
			if len(suffixes) > 0 {
				cmds = append(cmds, c)
				cmds = append(cmds, suffixes...)
				suffixes = nil
				continue
			}
			newline(c.indent)

		case KindHardLine:
			if len(suffixes) > 0 {
				cmds = append(cmds, c)
				cmds = append(cmds, suffixes...)
				suffixes = nil
				continue
			}
			newline(c.indent)

		case KindBlankLineIfBreaking:
			if c.mode != modeBreak {
				continue
			}
			if len(suffixes) > 0 {
				cmds = append(cmds, c)
				cmds = append(cmds, suffixes...)
				suffixes = nil
				continue
			}
			// Emits exactly one bare newline: the blank line itself. The
			// HardLine that always follows a BlankLineIfBreaking supplies
			// the line break (and indent) back into real content.
			out.WriteString(opt.NewLine)
		}
	}

	return out.String()
}

// fits reports whether next, followed by whatever the rest of the command
// stack would render on the same line, stays within width. Any group
// encountered while measuring is provisionally treated as flat, matching
// the classic single-pass "fits" check: if the outer attempt is flat,
// everything on this line renders flat too.
func fits(next cmd, rest []cmd, width int, opt Options) bool {
	if width < 0 {
		return false
	}
	stack := []cmd{next}
	restIdx := len(rest) - 1

	for width >= 0 {
		if len(stack) == 0 {
			if restIdx < 0 {
				return true
			}
			stack = append(stack, rest[restIdx])
			restIdx--
			continue
		}

		c := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		switch c.doc.Kind {
		case KindText:
			width -= stringWidth(c.doc.Text)

		case KindConcat:
			for i := len(c.doc.Children) - 1; i >= 0; i-- {
				stack = append(stack, cmd{c.indent, c.mode, c.doc.Children[i]})
			}

		case KindIndent:
			stack = append(stack, cmd{c.indent + 1, c.mode, c.doc.Children[0]})

		case KindGroup:
			stack = append(stack, cmd{c.indent, modeFlat, c.doc.Children[0]})

		case KindIfBreak:
			if c.mode == modeBreak {
				stack = append(stack, cmd{c.indent, c.mode, *c.doc.Broken})
			} else {
				stack = append(stack, cmd{c.indent, c.mode, *c.doc.Flat})
			}

		case KindLine:
			if c.mode == modeFlat {
				width--
				continue
			}
			return true

		case KindSoftLine:
			if c.mode == modeFlat {
				continue
			}
			return true

		case KindHardLine, KindBlankLineIfBreaking:
			return true

		case KindLineSuffix:
			// Deferred content never counts against the current line.
		}
	}

	return false
}

func indentText(level int, opt Options) string {
	if level <= 0 {
		return ""
	}
	if opt.UseTabs {
		return strings.Repeat("\t", level)
	}
	return strings.Repeat(" ", level*int(opt.IndentWidth))
}

func stringWidth(s string) int {
	if s == "" {
		return 0
	}
	return uniseg.StringWidth(s)
}
