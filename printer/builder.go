package printer

import (
	"strings"

	"github.com/g-plane/pretty-graphql/ast"
	"github.com/g-plane/pretty-graphql/config"
	"github.com/g-plane/pretty-graphql/dom"
	"github.com/g-plane/pretty-graphql/token"
)

// builder is the Document Builder of spec.md §4.5: it walks a parsed [ast.Node]
// CST and produces a [dom.Doc], consulting cfg for every node-kind-scoped
// layout decision and trivia for every comment and blank line along the way.
type builder struct {
	trivia *Trivia
	cfg    *config.Config

	// consumed marks a token whose leading comments have already been
	// emitted. A single physical token can be FirstToken() of several
	// nested nodes at once (e.g. Document > OperationDefinition >
	// SelectionSet all sharing the query's opening '{'), and Build is
	// called once per ancestor in that chain: without this guard, each
	// call would re-render the same leading comment.
	consumed map[token.ID]bool

	// curNS is the namespace of the innermost list currently being built
	// (set around the item loops in buildBracketedList and
	// buildKeywordSeparatorList), consulted for comment normalization.
	// It is the zero Namespace outside any such list, which FormatCommentsFor
	// resolves as "no scoped override possible", falling back to the global
	// formatComments toggle.
	curNS config.Namespace
}

// FormatDoc builds the complete [dom.Doc] for doc, ready for [dom.Render].
// It is the printer package's entry point, called by the root package's
// public façade after parsing and configuration resolution.
func FormatDoc(doc *ast.Node, cfg *config.Config) dom.Doc {
	b := &builder{trivia: BuildTrivia(doc.Stream()), cfg: cfg, consumed: map[token.ID]bool{}}
	return b.Build(doc)
}

// tok renders a single bare token: its leading comments (each on its own
// line), its literal text, and any same-line trailing comment deferred via
// [dom.LineSuffix]. Every token that appears directly in a composite node's
// element sequence (as opposed to inside a nested [ast.Node]) goes through
// here exactly once.
func (b *builder) tok(t token.Token) dom.Doc {
	if t.IsZero() {
		return dom.Text("")
	}
	return dom.Concat(b.leadingPrefix(t), dom.Text(t.Text()), b.trailingSuffix(t))
}

// leadingPrefix renders t's leading comments the first time it is asked
// for t, and nothing on any later call for the same token (see
// builder.consumed).
func (b *builder) leadingPrefix(t token.Token) dom.Doc {
	if t.IsZero() || b.consumed[t.ID()] {
		return dom.Text("")
	}
	b.consumed[t.ID()] = true
	format := b.cfg.FormatCommentsFor(b.curNS)
	var parts []dom.Doc
	for _, e := range b.trivia.Leading(t) {
		if e.Kind == EntryComment {
			parts = append(parts, dom.Text(normalizeComment(e.Text, format)), dom.HardLine)
		}
	}
	return dom.Concat(parts...)
}

func (b *builder) trailingSuffix(t token.Token) dom.Doc {
	entries := b.trivia.Trailing(t)
	if len(entries) == 0 {
		return dom.Text("")
	}
	text := normalizeComment(entries[0].Text, b.cfg.FormatCommentsFor(b.curNS))
	return dom.LineSuffix(dom.Text(" " + text))
}

// normalizeComment implements spec.md §4.2 rule 6: when format is true, a
// line comment is rewritten to have exactly one space between '#' and its
// first non-space character; otherwise it is returned verbatim. text always
// includes its leading '#'.
func normalizeComment(text string, format bool) string {
	if !format {
		return text
	}
	rest := strings.TrimLeft(strings.TrimPrefix(text, "#"), " ")
	if rest == "" {
		return "#"
	}
	return "# " + rest
}

// Build renders a sub-node in full: its leading comments, then either its
// exact source text (if its first token carries an ignore-comment directive,
// per spec.md §4.3, and it is not the Document itself) or its normally
// formatted content via buildKind. This is
// the only place an ignore directive is checked. leadingPrefix's per-token
// consumed guard makes the leading-comment emission idempotent across
// however many ancestors in the CST share n's first token (e.g. a bare
// SelectionSet reached through Document > OperationDefinition both
// delegating straight through to it), so nested Build calls on the same
// token never duplicate it.
func (b *builder) Build(n *ast.Node) dom.Doc {
	if n.IsZero() {
		return dom.Text("")
	}
	ft := n.FirstToken()
	leading := b.leadingPrefix(ft)
	if n.Kind == ast.KindDocument {
		// The Document shares its first definition's first token; the
		// directive applies to that definition, not to every definition.
		return dom.Concat(leading, b.buildKind(n))
	}
	for _, c := range b.trivia.LeadingComments(ft) {
		if IsIgnoreComment(c, b.cfg.IgnoreCommentDirective) {
			return dom.Concat(leading, dom.Text(n.Text()))
		}
	}
	return dom.Concat(leading, b.buildKind(n))
}

func sameLine(a, b token.Token) bool {
	return !a.IsZero() && !b.IsZero() && a.Line() == b.Line()
}

// peelDescription splits an optional leading Description off elems, which
// every type-system definition (but not extension) carries per spec.md §6.3.
func peelDescription(elems []ast.Elem) (*ast.Node, []ast.Elem) {
	if len(elems) > 0 && !elems[0].IsToken() && elems[0].Sub.Kind == ast.KindDescription {
		return elems[0].Sub, elems[1:]
	}
	return nil, elems
}

func (b *builder) buildKind(n *ast.Node) dom.Doc {
	switch n.Kind {
	case ast.KindDocument:
		return b.buildDocument(n)
	case ast.KindOperationDefinition:
		return b.buildOperationDefinition(n)
	case ast.KindFragmentDefinition:
		return b.buildFragmentDefinition(n)
	case ast.KindVariableDefinitions:
		return b.buildSimpleList(n, config.NsVariableDefinitions, b.cfg.ParenSpacingFor(config.NsVariableDefinitions))
	case ast.KindVariableDefinition:
		return b.buildVariableDefinition(n)
	case ast.KindVariable:
		return b.buildVariable(n)
	case ast.KindSelectionSet:
		return b.buildSimpleList(n, config.NsSelectionSet, b.cfg.BraceSpacingFor(config.NsSelectionSet))
	case ast.KindField:
		return b.buildField(n)
	case ast.KindAlias:
		return b.buildAlias(n)
	case ast.KindArgument:
		return b.buildArgument(n)
	case ast.KindArguments:
		return b.buildSimpleList(n, config.NsArguments, b.cfg.ParenSpacingFor(config.NsArguments))
	case ast.KindFragmentSpread:
		return b.buildFragmentSpread(n)
	case ast.KindInlineFragment:
		return b.buildInlineFragment(n)
	case ast.KindTypeCondition:
		return b.buildTypeCondition(n)
	case ast.KindDirective:
		return b.buildDirective(n)
	case ast.KindDirectives:
		return b.buildDirectives(n)
	case ast.KindListValue:
		return b.buildSimpleList(n, config.NsListValue, b.cfg.BracketSpacingFor(config.NsListValue))
	case ast.KindObjectValue:
		return b.buildSimpleList(n, config.NsObjectValue, b.cfg.BraceSpacingFor(config.NsObjectValue))
	case ast.KindObjectField:
		return b.buildObjectField(n)
	case ast.KindListType:
		return b.buildListType(n)
	case ast.KindNonNullType:
		return b.buildNonNullType(n)
	case ast.KindSchemaDefinition:
		return b.buildSchemaLike(n, config.NsSchemaDefinition)
	case ast.KindSchemaExtension:
		return b.buildSchemaLike(n, config.NsSchemaExtension)
	case ast.KindRootOperationTypeDefinition:
		return b.buildRootOperationTypeDefinition(n)
	case ast.KindScalarTypeDefinition, ast.KindScalarTypeExtension:
		return b.buildScalarLike(n)
	case ast.KindObjectTypeDefinition, ast.KindObjectTypeExtension,
		ast.KindInterfaceTypeDefinition, ast.KindInterfaceTypeExtension:
		return b.buildObjectLike(n)
	case ast.KindUnionTypeDefinition, ast.KindUnionTypeExtension:
		return b.buildUnionLike(n)
	case ast.KindEnumTypeDefinition, ast.KindEnumTypeExtension:
		return b.buildEnumLike(n)
	case ast.KindInputObjectTypeDefinition, ast.KindInputObjectTypeExtension:
		return b.buildInputObjectLike(n)
	case ast.KindFieldsDefinition:
		return b.buildSimpleList(n, config.NsFieldsDefinition, b.cfg.BraceSpacingFor(config.NsFieldsDefinition))
	case ast.KindFieldDefinition:
		return b.buildFieldDefinition(n)
	case ast.KindInputFieldsDefinition:
		return b.buildSimpleList(n, config.NsInputFieldsDefinition, b.cfg.BraceSpacingFor(config.NsInputFieldsDefinition))
	case ast.KindInputValueDefinition:
		return b.buildInputValueDefinition(n)
	case ast.KindArgumentsDefinition:
		return b.buildSimpleList(n, config.NsArgumentsDefinition, b.cfg.ParenSpacingFor(config.NsArgumentsDefinition))
	case ast.KindEnumValuesDefinition:
		return b.buildSimpleList(n, config.NsEnumValuesDefinition, b.cfg.BraceSpacingFor(config.NsEnumValuesDefinition))
	case ast.KindEnumValueDefinition:
		return b.buildEnumValueDefinition(n)
	case ast.KindUnionMemberTypes:
		return b.buildUnionMemberTypes(n)
	case ast.KindImplementsInterfaces:
		return b.buildImplementsInterfaces(n)
	case ast.KindDirectiveDefinition:
		return b.buildDirectiveDefinition(n)
	case ast.KindDirectiveLocations:
		return b.buildDirectiveLocationsStandalone(n)
	case ast.KindIntValue, ast.KindFloatValue, ast.KindStringValue, ast.KindBlockStringValue,
		ast.KindBooleanValue, ast.KindNullValue, ast.KindEnumValue, ast.KindNamedType,
		ast.KindDescription, ast.KindDirectiveLocation, ast.KindInvalid:
		// Build already emitted this token's leading comments via
		// leadingPrefix before calling buildKind; only the literal text and
		// a same-line trailing comment belong here, or they'd double up.
		t := n.Children()[0].Tok
		return dom.Concat(dom.Text(t.Text()), b.trailingSuffix(t))
	default:
		return dom.Text(n.Text())
	}
}

// buildDocument lays out top-level definitions one per line (never
// comma-separated, never joined on one line), preserving a single blank
// line between definitions that originally had one and recovering dangling
// comments before EOF.
func (b *builder) buildDocument(n *ast.Node) dom.Doc {
	elems := n.Children()
	items := make([]Item, len(elems))
	for i, e := range elems {
		ft := e.Sub.FirstToken()
		items[i] = Item{
			Doc:               b.Build(e.Sub),
			HasLeadingComment: b.trivia.HasLeadingComment(ft),
			BlankBefore:       b.trivia.HasBlankLineBefore(ft),
		}
	}
	stream := n.Stream()
	var dangling []string
	if stream != nil && stream.Len() > 0 {
		dangling = b.normalizeDangling(b.trivia.LeadingComments(stream.At(stream.Len()-1)), "")
	}
	return FormatList(ListParams{
		Comma:       config.CommaNever,
		SingleLine:  config.SingleLineNever,
		ForcedBreak: true,
		Items:       items,
		Dangling:    dangling,
	})
}

// normalizeDangling applies normalizeComment to every dangling comment at
// ns's effective formatComments setting.
func (b *builder) normalizeDangling(comments []string, ns config.Namespace) []string {
	if len(comments) == 0 {
		return comments
	}
	format := b.cfg.FormatCommentsFor(ns)
	out := make([]string, len(comments))
	for i, c := range comments {
		out[i] = normalizeComment(c, format)
	}
	return out
}

// buildSimpleList handles every node kind whose Elems are exactly
// [open, item, item, ..., close]: Arguments, VariableDefinitions,
// SelectionSet, ListValue, ObjectValue, FieldsDefinition,
// ArgumentsDefinition, EnumValuesDefinition, InputFieldsDefinition.
func (b *builder) buildSimpleList(n *ast.Node, ns config.Namespace, innerSpacing bool) dom.Doc {
	children := n.Children()
	open := children[0].Tok
	close := children[len(children)-1].Tok
	var items []*ast.Node
	for _, e := range children[1 : len(children)-1] {
		items = append(items, e.Sub)
	}
	return b.buildBracketedList(open, close, items, ns, innerSpacing)
}

func (b *builder) buildBracketedList(open, close token.Token, items []*ast.Node, ns config.Namespace, innerSpacing bool) dom.Doc {
	prevNS := b.curNS
	b.curNS = ns
	listItems := make([]Item, len(items))
	for i, it := range items {
		ft := it.FirstToken()
		listItems[i] = Item{
			Doc:               b.Build(it),
			HasLeadingComment: b.trivia.HasLeadingComment(ft),
			BlankBefore:       b.trivia.HasBlankLineBefore(ft),
			SameLineAsPrev:    i > 0 && sameLine(items[i-1].LastToken(), ft),
		}
	}
	b.curNS = prevNS
	return FormatList(ListParams{
		Open:         open.Text(),
		Close:        close.Text(),
		Comma:        b.cfg.CommaFor(ns),
		SingleLine:   b.cfg.SingleLineFor(ns),
		InnerSpacing: innerSpacing,
		Items:        listItems,
		Dangling:     b.normalizeDangling(b.trivia.LeadingComments(close), ns),
	})
}

// buildDirectives renders a Directives node: an unbracketed, space-joined
// (or one-per-line) sequence of `@name(...)` directives with no commas.
func (b *builder) buildDirectives(n *ast.Node) dom.Doc {
	elems := n.Children()
	items := make([]*ast.Node, len(elems))
	for i, e := range elems {
		items[i] = e.Sub
	}
	return b.buildBracketedList(token.Zero, token.Zero, items, config.NsDirectives, false)
}

// buildKeywordSeparatorList renders the `implements A & B`, `= A | B`, and
// `on A | B` shapes: a leading keyword/punctuation token followed by a
// separator-joined list of items that either stays on the keyword's line or
// breaks onto its own indented lines, each prefixed by the separator
// (including the first item, for visual symmetry regardless of whether the
// source had a leading separator).
func (b *builder) buildKeywordSeparatorList(kw token.Token, items []*ast.Node, flatSep, brokenPrefix string, ns config.Namespace) dom.Doc {
	prevNS := b.curNS
	b.curNS = ns
	docs := make([]dom.Doc, len(items))
	hasComment, hasBlank, sameLineAll := false, false, true
	for i, it := range items {
		docs[i] = b.Build(it)
		ft := it.FirstToken()
		if b.trivia.HasLeadingComment(ft) {
			hasComment = true
		}
		if b.trivia.HasBlankLineBefore(ft) {
			hasBlank = true
		}
		if i > 0 && !sameLine(items[i-1].LastToken(), ft) {
			sameLineAll = false
		}
	}
	b.curNS = prevNS
	sl := b.cfg.SingleLineFor(ns)
	mustBreak := sl == config.SingleLineNever || hasComment || hasBlank || (sl == config.SingleLineSmart && !sameLineAll)

	var flatItems []dom.Doc
	for i, d := range docs {
		if i > 0 {
			flatItems = append(flatItems, dom.Text(flatSep))
		}
		flatItems = append(flatItems, d)
	}
	// kw is rendered once and shared by both branches: tok consumes kw's
	// leading comments on its first call, so a second call would drop them.
	kwDoc := b.tok(kw)
	flat := dom.Concat(kwDoc, dom.Text(" "), dom.Concat(flatItems...))

	var brokenItems []dom.Doc
	for _, d := range docs {
		brokenItems = append(brokenItems, dom.HardLine, dom.Text(brokenPrefix), d)
	}
	broken := dom.Concat(kwDoc, dom.Indent(dom.Concat(brokenItems...)))

	if mustBreak {
		return broken
	}
	return dom.Group(dom.IfBreak(broken, flat))
}

func (b *builder) buildImplementsInterfaces(n *ast.Node) dom.Doc {
	children := n.Children()
	kw := children[0].Tok
	var items []*ast.Node
	for _, e := range children[1:] {
		if !e.IsToken() {
			items = append(items, e.Sub)
		}
	}
	return b.buildKeywordSeparatorList(kw, items, " & ", "& ", config.NsImplementsInterfaces)
}

func (b *builder) buildUnionMemberTypes(n *ast.Node) dom.Doc {
	children := n.Children()
	eq := children[0].Tok
	var items []*ast.Node
	for _, e := range children[1:] {
		if !e.IsToken() {
			items = append(items, e.Sub)
		}
	}
	return b.buildKeywordSeparatorList(eq, items, " | ", "| ", config.NsUnionMemberTypes)
}

// buildDirectiveLocationsStandalone is a defensive fallback for a bare
// DirectiveLocations node reached through Build directly, outside its usual
// home inside a DirectiveDefinition (which supplies the preceding `on`
// token itself). Every document produced by [ast.Parse] reaches
// DirectiveLocations only via buildDirectiveDefinition.
func (b *builder) buildDirectiveLocationsStandalone(n *ast.Node) dom.Doc {
	var items []*ast.Node
	for _, e := range n.Children() {
		if !e.IsToken() {
			items = append(items, e.Sub)
		}
	}
	return b.buildKeywordSeparatorList(token.Zero, items, " | ", "| ", config.NsDirectiveLocations)
}

func (b *builder) buildOperationDefinition(n *ast.Node) dom.Doc {
	children := n.Children()
	if len(children) == 1 && !children[0].IsToken() && children[0].Sub.Kind == ast.KindSelectionSet {
		return b.Build(children[0].Sub)
	}

	var parts []dom.Doc
	i := 0
	parts = append(parts, b.tok(children[i].Tok)) // query|mutation|subscription
	i++
	if i < len(children) && children[i].IsToken() {
		parts = append(parts, dom.Text(" "), b.tok(children[i].Tok)) // name
		i++
	}
	if i < len(children) && !children[i].IsToken() && children[i].Sub.Kind == ast.KindVariableDefinitions {
		parts = append(parts, b.Build(children[i].Sub))
		i++
	}
	if i < len(children) && !children[i].IsToken() && children[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(children[i].Sub))
		i++
	}
	parts = append(parts, dom.Text(" "), b.Build(children[i].Sub)) // SelectionSet
	return dom.Concat(parts...)
}

func (b *builder) buildVariableDefinition(n *ast.Node) dom.Doc {
	c := n.Children()
	var parts []dom.Doc
	i := 0
	parts = append(parts, b.Build(c[i].Sub)) // Variable
	i++
	parts = append(parts, b.tok(c[i].Tok)) // ':'
	i++
	parts = append(parts, dom.Text(" "), b.Build(c[i].Sub)) // Type
	i++
	if i < len(c) && c[i].IsToken() {
		parts = append(parts, dom.Text(" "), b.tok(c[i].Tok)) // '='
		i++
		parts = append(parts, dom.Text(" "), b.Build(c[i].Sub)) // default value
		i++
	}
	if i < len(c) && !c[i].IsToken() && c[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(c[i].Sub))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildVariable(n *ast.Node) dom.Doc {
	c := n.Children()
	return dom.Concat(b.tok(c[0].Tok), b.tok(c[1].Tok))
}

func (b *builder) buildField(n *ast.Node) dom.Doc {
	children := n.Children()
	var parts []dom.Doc
	i := 0
	if !children[i].IsToken() && children[i].Sub.Kind == ast.KindAlias {
		parts = append(parts, b.Build(children[i].Sub), dom.Text(" "))
		i++
		parts = append(parts, b.tok(children[i].Tok)) // name after alias
		i++
	} else {
		parts = append(parts, b.tok(children[i].Tok))
		i++
	}
	if i < len(children) && !children[i].IsToken() && children[i].Sub.Kind == ast.KindArguments {
		parts = append(parts, b.Build(children[i].Sub))
		i++
	}
	if i < len(children) && !children[i].IsToken() && children[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(children[i].Sub))
		i++
	}
	if i < len(children) && !children[i].IsToken() && children[i].Sub.Kind == ast.KindSelectionSet {
		parts = append(parts, dom.Text(" "), b.Build(children[i].Sub))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildAlias(n *ast.Node) dom.Doc {
	c := n.Children()
	return dom.Concat(b.tok(c[0].Tok), b.tok(c[1].Tok))
}

func (b *builder) buildArgument(n *ast.Node) dom.Doc {
	c := n.Children()
	return dom.Concat(b.tok(c[0].Tok), b.tok(c[1].Tok), dom.Text(" "), b.Build(c[2].Sub))
}

func (b *builder) buildObjectField(n *ast.Node) dom.Doc {
	c := n.Children()
	return dom.Concat(b.tok(c[0].Tok), b.tok(c[1].Tok), dom.Text(" "), b.Build(c[2].Sub))
}

func (b *builder) buildFragmentSpread(n *ast.Node) dom.Doc {
	c := n.Children()
	parts := []dom.Doc{b.tok(c[0].Tok), b.tok(c[1].Tok)} // '...' name
	if len(c) > 2 {
		parts = append(parts, dom.Text(" "), b.Build(c[2].Sub))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildInlineFragment(n *ast.Node) dom.Doc {
	c := n.Children()
	var parts []dom.Doc
	parts = append(parts, b.tok(c[0].Tok)) // '...'
	i := 1
	if i < len(c) && !c[i].IsToken() && c[i].Sub.Kind == ast.KindTypeCondition {
		parts = append(parts, dom.Text(" "), b.Build(c[i].Sub))
		i++
	}
	if i < len(c) && !c[i].IsToken() && c[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(c[i].Sub))
		i++
	}
	parts = append(parts, dom.Text(" "), b.Build(c[i].Sub)) // SelectionSet
	return dom.Concat(parts...)
}

func (b *builder) buildTypeCondition(n *ast.Node) dom.Doc {
	c := n.Children()
	return dom.Concat(b.tok(c[0].Tok), dom.Text(" "), b.tok(c[1].Tok))
}

func (b *builder) buildFragmentDefinition(n *ast.Node) dom.Doc {
	c := n.Children()
	parts := []dom.Doc{b.tok(c[0].Tok), dom.Text(" "), b.tok(c[1].Tok), dom.Text(" "), b.Build(c[2].Sub)}
	i := 3
	if i < len(c) && !c[i].IsToken() && c[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(c[i].Sub))
		i++
	}
	parts = append(parts, dom.Text(" "), b.Build(c[i].Sub))
	return dom.Concat(parts...)
}

func (b *builder) buildDirective(n *ast.Node) dom.Doc {
	c := n.Children()
	parts := []dom.Doc{b.tok(c[0].Tok), b.tok(c[1].Tok)} // '@' name
	if len(c) > 2 {
		parts = append(parts, b.Build(c[2].Sub))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildListType(n *ast.Node) dom.Doc {
	c := n.Children()
	return dom.Concat(b.tok(c[0].Tok), b.Build(c[1].Sub), b.tok(c[2].Tok))
}

func (b *builder) buildNonNullType(n *ast.Node) dom.Doc {
	c := n.Children()
	return dom.Concat(b.Build(c[0].Sub), b.tok(c[1].Tok))
}

// buildSchemaLike renders both SchemaDefinition and SchemaExtension: an
// optional Description, an optional `extend`, the `schema` keyword, an
// optional Directives, and an optional `{ ... }` block of
// RootOperationTypeDefinitions.
func (b *builder) buildSchemaLike(n *ast.Node, ns config.Namespace) dom.Doc {
	desc, rest := peelDescription(n.Children())
	var parts []dom.Doc
	if desc != nil {
		parts = append(parts, b.Build(desc), dom.HardLine)
	}
	i := 0
	parts = append(parts, b.tok(rest[i].Tok)) // 'extend' or 'schema'
	isExtend := rest[i].Tok.Text() == "extend"
	i++
	if isExtend {
		parts = append(parts, dom.Text(" "), b.tok(rest[i].Tok)) // 'schema'
		i++
	}
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
		i++
	}
	if i < len(rest) && rest[i].IsToken() && rest[i].Tok.Text() == "{" {
		open := rest[i].Tok
		j := i + 1
		var items []*ast.Node
		for j < len(rest) && !rest[j].IsToken() {
			items = append(items, rest[j].Sub)
			j++
		}
		close := rest[j].Tok
		parts = append(parts, dom.Text(" "), b.buildBracketedList(open, close, items, ns, b.cfg.BraceSpacingFor(ns)))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildRootOperationTypeDefinition(n *ast.Node) dom.Doc {
	c := n.Children()
	return dom.Concat(b.tok(c[0].Tok), b.tok(c[1].Tok), dom.Text(" "), b.Build(c[2].Sub))
}

// consumeKeywordAndName peels an optional leading `extend`, the definition
// keyword (scalar/type/interface/union/enum/input), and the defined name
// off rest (after any Description has already been peeled), returning the
// rendered prefix and whatever elements remain.
func (b *builder) consumeKeywordAndName(rest []ast.Elem) (dom.Doc, []ast.Elem) {
	i := 0
	var parts []dom.Doc
	parts = append(parts, b.tok(rest[i].Tok))
	isExtend := rest[i].Tok.Text() == "extend"
	i++
	if isExtend {
		parts = append(parts, dom.Text(" "), b.tok(rest[i].Tok))
		i++
	}
	parts = append(parts, dom.Text(" "), b.tok(rest[i].Tok)) // name
	i++
	return dom.Concat(parts...), rest[i:]
}

func (b *builder) buildScalarLike(n *ast.Node) dom.Doc {
	desc, rest := peelDescription(n.Children())
	var parts []dom.Doc
	if desc != nil {
		parts = append(parts, b.Build(desc), dom.HardLine)
	}
	prefix, rest := b.consumeKeywordAndName(rest)
	parts = append(parts, prefix)
	if len(rest) > 0 && !rest[0].IsToken() && rest[0].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(rest[0].Sub))
	}
	return dom.Concat(parts...)
}

// buildObjectLike renders both ObjectTypeDefinition/Extension and
// InterfaceTypeDefinition/Extension, which share one shape: keyword, name,
// optional ImplementsInterfaces, optional Directives, optional
// FieldsDefinition.
func (b *builder) buildObjectLike(n *ast.Node) dom.Doc {
	desc, rest := peelDescription(n.Children())
	var parts []dom.Doc
	if desc != nil {
		parts = append(parts, b.Build(desc), dom.HardLine)
	}
	prefix, rest := b.consumeKeywordAndName(rest)
	parts = append(parts, prefix)
	i := 0
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindImplementsInterfaces {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
		i++
	}
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
		i++
	}
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindFieldsDefinition {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildUnionLike(n *ast.Node) dom.Doc {
	desc, rest := peelDescription(n.Children())
	var parts []dom.Doc
	if desc != nil {
		parts = append(parts, b.Build(desc), dom.HardLine)
	}
	prefix, rest := b.consumeKeywordAndName(rest)
	parts = append(parts, prefix)
	i := 0
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
		i++
	}
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindUnionMemberTypes {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildEnumLike(n *ast.Node) dom.Doc {
	desc, rest := peelDescription(n.Children())
	var parts []dom.Doc
	if desc != nil {
		parts = append(parts, b.Build(desc), dom.HardLine)
	}
	prefix, rest := b.consumeKeywordAndName(rest)
	parts = append(parts, prefix)
	i := 0
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
		i++
	}
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindEnumValuesDefinition {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildInputObjectLike(n *ast.Node) dom.Doc {
	desc, rest := peelDescription(n.Children())
	var parts []dom.Doc
	if desc != nil {
		parts = append(parts, b.Build(desc), dom.HardLine)
	}
	prefix, rest := b.consumeKeywordAndName(rest)
	parts = append(parts, prefix)
	i := 0
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
		i++
	}
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindInputFieldsDefinition {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildFieldDefinition(n *ast.Node) dom.Doc {
	desc, rest := peelDescription(n.Children())
	var parts []dom.Doc
	if desc != nil {
		parts = append(parts, b.Build(desc), dom.HardLine)
	}
	i := 0
	parts = append(parts, b.tok(rest[i].Tok)) // name
	i++
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindArgumentsDefinition {
		parts = append(parts, b.Build(rest[i].Sub))
		i++
	}
	parts = append(parts, b.tok(rest[i].Tok)) // ':'
	i++
	parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub)) // Type
	i++
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildInputValueDefinition(n *ast.Node) dom.Doc {
	desc, rest := peelDescription(n.Children())
	var parts []dom.Doc
	if desc != nil {
		parts = append(parts, b.Build(desc), dom.HardLine)
	}
	i := 0
	parts = append(parts, b.tok(rest[i].Tok)) // name
	i++
	parts = append(parts, b.tok(rest[i].Tok)) // ':'
	i++
	parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub)) // Type
	i++
	if i < len(rest) && rest[i].IsToken() {
		parts = append(parts, dom.Text(" "), b.tok(rest[i].Tok)) // '='
		i++
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub)) // default value
		i++
	}
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindDirectives {
		parts = append(parts, dom.Text(" "), b.Build(rest[i].Sub))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildEnumValueDefinition(n *ast.Node) dom.Doc {
	desc, rest := peelDescription(n.Children())
	var parts []dom.Doc
	if desc != nil {
		parts = append(parts, b.Build(desc), dom.HardLine)
	}
	parts = append(parts, b.tok(rest[0].Tok))
	if len(rest) > 1 {
		parts = append(parts, dom.Text(" "), b.Build(rest[1].Sub))
	}
	return dom.Concat(parts...)
}

func (b *builder) buildDirectiveDefinition(n *ast.Node) dom.Doc {
	desc, rest := peelDescription(n.Children())
	var parts []dom.Doc
	if desc != nil {
		parts = append(parts, b.Build(desc), dom.HardLine)
	}
	i := 0
	parts = append(parts, b.tok(rest[i].Tok)) // 'directive'
	i++
	parts = append(parts, dom.Text(" "), b.tok(rest[i].Tok)) // '@'
	i++
	parts = append(parts, b.tok(rest[i].Tok)) // name, directly after '@'
	i++
	if i < len(rest) && !rest[i].IsToken() && rest[i].Sub.Kind == ast.KindArgumentsDefinition {
		parts = append(parts, b.Build(rest[i].Sub))
		i++
	}
	if i < len(rest) && rest[i].IsToken() && rest[i].Tok.Text() == "repeatable" {
		parts = append(parts, dom.Text(" "), b.tok(rest[i].Tok))
		i++
	}
	onTok := rest[i].Tok // 'on'
	i++
	locations := rest[i].Sub
	var items []*ast.Node
	for _, e := range locations.Children() {
		if !e.IsToken() {
			items = append(items, e.Sub)
		}
	}
	parts = append(parts, dom.Text(" "), b.buildKeywordSeparatorList(onTok, items, " | ", "| ", config.NsDirectiveLocations))
	return dom.Concat(parts...)
}
