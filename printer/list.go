package printer

import (
	"github.com/g-plane/pretty-graphql/config"
	"github.com/g-plane/pretty-graphql/dom"
)

// Item is one formatted element of a list passed to [FormatList]. The
// builder is responsible for rendering the item's own leading comments and
// trailing same-line comment into Doc; the flags below only drive the
// must-break decision of spec.md §4.4 step 1.
type Item struct {
	Doc dom.Doc

	// HasLeadingComment reports whether this item has a leading comment
	// (forces the whole list to break).
	HasLeadingComment bool
	// BlankBefore reports whether a blank-line marker sits between this
	// item and the previous one.
	BlankBefore bool
	// SameLineAsPrev reports whether this item began on the same source
	// line as the item before it (used by the `smart` singleLine policy).
	// Meaningless, and ignored, for the first item.
	SameLineAsPrev bool
}

// ListParams are the shared engine's parameters (spec.md §4.4's parameter
// table).
type ListParams struct {
	// Open and Close are the delimiter strings, or "" for an unbracketed
	// list (e.g. top-level definitions).
	Open, Close string

	Comma      config.Comma
	SingleLine config.SingleLine

	// InnerSpacing governs a space immediately after Open and before Close
	// in the flat rendering.
	InnerSpacing bool

	// ForcedBreak makes the list always render broken.
	ForcedBreak bool

	Items []Item

	// Dangling holds comments to render, one per line, after the last item
	// (or alone between the delimiters when Items is empty). Any dangling
	// comment forces the list to break.
	Dangling []string
}

// FormatList renders a delimited or unbracketed list of items per the
// layout algorithm of spec.md §4.4. It is the engine shared by every GraphQL
// construct that is a comma- or newline-separated list: arguments, argument
// and input-field definitions, fields, variables, enum values, selection
// sets, list/object values, schema root operation types, directives, and
// top-level definitions. The `&`/`|`-joined lists (union members,
// interfaces, directive locations) are laid out by the builder's
// buildKeywordSeparatorList instead.
func FormatList(p ListParams) dom.Doc {
	if len(p.Items) == 0 {
		return formatEmptyList(p)
	}

	mustBreak := p.ForcedBreak || p.SingleLine == config.SingleLineNever || len(p.Dangling) > 0
	if !mustBreak {
		for _, it := range p.Items {
			if it.HasLeadingComment || it.BlankBefore {
				mustBreak = true
				break
			}
		}
	}
	if !mustBreak && p.SingleLine == config.SingleLineSmart {
		for i, it := range p.Items {
			if i == 0 {
				continue
			}
			if !it.SameLineAsPrev {
				mustBreak = true
				break
			}
		}
	}

	broken := buildBroken(p)
	if mustBreak {
		return broken
	}
	flat := buildFlat(p)
	return dom.Group(dom.IfBreak(broken, flat))
}

func formatEmptyList(p ListParams) dom.Doc {
	if len(p.Dangling) == 0 {
		return dom.Concat(dom.Text(p.Open), dom.Text(p.Close))
	}
	inner := make([]dom.Doc, 0, len(p.Dangling)*2)
	for i, c := range p.Dangling {
		if i > 0 {
			inner = append(inner, dom.HardLine)
		}
		inner = append(inner, dom.Text(c))
	}
	if p.unbracketed() {
		return dom.Concat(inner...)
	}
	indented := append([]dom.Doc{dom.HardLine}, inner...)
	return dom.Concat(dom.Text(p.Open), dom.Indent(dom.Concat(indented...)), dom.HardLine, dom.Text(p.Close))
}

func buildFlat(p ListParams) dom.Doc {
	var parts []dom.Doc
	parts = append(parts, dom.Text(p.Open))
	if p.InnerSpacing {
		parts = append(parts, dom.Text(" "))
	}
	sep := " "
	if insertsCommaFlat(p.Comma) {
		sep = ", "
	}
	for i, it := range p.Items {
		if i > 0 {
			parts = append(parts, dom.Text(sep))
		}
		parts = append(parts, it.Doc)
	}
	if p.InnerSpacing {
		parts = append(parts, dom.Text(" "))
	}
	parts = append(parts, dom.Text(p.Close))
	return dom.Concat(parts...)
}

// insertsCommaFlat reports whether the comma policy puts a comma between
// items when the list is rendered on one line.
func insertsCommaFlat(c config.Comma) bool {
	switch c {
	case config.CommaAlways, config.CommaOnlySingleLine:
		return true
	default:
		return false
	}
}

// unbracketed lists (Document's top-level definitions, a node's Directives)
// have no delimiters and sit at their enclosing indentation: no wrapping
// HardLine before the first item or after the last, and no extra Indent
// level around the items.
func (p ListParams) unbracketed() bool {
	return p.Open == "" && p.Close == ""
}

func buildBroken(p ListParams) dom.Doc {
	var items []dom.Doc
	last := len(p.Items) - 1
	for i, it := range p.Items {
		if i > 0 {
			if p.Items[i].BlankBefore {
				items = append(items, dom.BlankLineIfBreaking)
			}
			items = append(items, dom.HardLine)
		}
		items = append(items, it.Doc)
		switch p.Comma {
		case config.CommaAlways:
			items = append(items, dom.Text(","))
		case config.CommaNoTrailing:
			if i != last {
				items = append(items, dom.Text(","))
			}
		}
	}
	for _, c := range p.Dangling {
		items = append(items, dom.HardLine, dom.Text(c))
	}

	if p.unbracketed() {
		return dom.Concat(items...)
	}

	indented := append([]dom.Doc{dom.HardLine}, items...)
	return dom.Concat(dom.Text(p.Open), dom.Indent(dom.Concat(indented...)), dom.HardLine, dom.Text(p.Close))
}
