package ast

import (
	"fmt"

	"github.com/g-plane/pretty-graphql/lexer"
	"github.com/g-plane/pretty-graphql/token"
)

// Error reports a single syntax error produced while parsing.
type Error struct {
	Offset  int
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Parse lexes and parses a complete GraphQL document (executable or
// type-system, possibly mixing both, as the grammar itself does not forbid
// it). It returns every error encountered; a non-empty error slice means the
// returned [Node] is incomplete and must not be formatted. This is the
// "assumed" external parser of spec.md §1, made concrete so that
// [github.com/g-plane/pretty-graphql.FormatText] has something to call.
func Parse(source string) (*Node, []*Error) {
	stream, lexErrs := lexer.Lex(source)
	p := &parser{stream: stream, cursor: stream.Cursor()}
	for _, le := range lexErrs {
		p.errs = append(p.errs, &Error{Offset: le.Offset, Line: le.Line, Column: le.Column, Message: le.Message})
	}
	doc := p.parseDocument()
	return doc, p.errs
}

type parser struct {
	stream *token.Stream
	cursor *token.Cursor
	errs   []*Error
}

func (p *parser) errorf(tok token.Token, format string, args ...any) {
	p.errs = append(p.errs, &Error{
		Offset:  tok.Offset(),
		Line:    tok.Line(),
		Column:  tok.Column(),
		Message: fmt.Sprintf(format, args...),
	})
}

func (p *parser) peek() token.Token { return p.cursor.PeekToken() }

func (p *parser) next() token.Token { return p.cursor.NextToken() }

// expectPunct consumes and returns the next token if it is Punct text,
// otherwise records an error and returns the zero token without advancing.
func (p *parser) expectPunct(text string) token.Token {
	t := p.peek()
	if t.Kind() == token.Punct && t.Text() == text {
		return p.next()
	}
	p.errorf(t, "expected %q, found %q", text, t.Text())
	return token.Zero
}

func (p *parser) atPunct(text string) bool {
	t := p.peek()
	return t.Kind() == token.Punct && t.Text() == text
}

func (p *parser) atKeyword(kw string) bool {
	t := p.peek()
	return t.Kind() == token.Ident && t.Text() == kw
}

// expectIdent consumes and returns the next token if it is an Ident,
// otherwise records an error.
func (p *parser) expectIdent() token.Token {
	t := p.peek()
	if t.Kind() == token.Ident {
		return p.next()
	}
	p.errorf(t, "expected a name, found %q", t.Text())
	return token.Zero
}

func (p *parser) node(kind Kind, elems ...Elem) *Node {
	return NewNode(p.stream, kind, elems...)
}

// parseDocument parses the top level: a sequence of definitions with no
// delimiter or terminator between them.
func (p *parser) parseDocument() *Node {
	var elems []Elem
	guard := -1
	for p.peek().Kind() != token.EOF {
		if p.cursor.Pos() == guard {
			// Nothing was consumed by the last attempt; force progress so
			// a malformed input cannot loop forever.
			p.errorf(p.peek(), "unexpected token %q", p.peek().Text())
			p.next()
			continue
		}
		guard = p.cursor.Pos()
		elems = append(elems, sub(p.parseDefinition()))
	}
	return p.node(KindDocument, elems...)
}

func (p *parser) parseDefinition() *Node {
	t := p.peek()
	switch {
	case t.Kind() == token.Punct && t.Text() == "{":
		// The shorthand query form: a bare SelectionSet.
		return p.parseOperationDefinition()
	case t.Kind() == token.String || t.Kind() == token.Block:
		// A description always precedes a type-system definition.
		return p.parseTypeSystemDefOrExt(p.parseDescription())
	case t.Kind() != token.Ident:
		p.errorf(t, "expected a definition, found %q", t.Text())
		return p.node(KindInvalid, tok(p.next()))
	}
	switch t.Text() {
	case "query", "mutation", "subscription":
		return p.parseOperationDefinition()
	case "fragment":
		return p.parseFragmentDefinition()
	case "schema", "scalar", "type", "interface", "union", "enum", "input", "directive", "extend":
		return p.parseTypeSystemDefOrExt(nil)
	default:
		p.errorf(t, "expected a definition, found %q", t.Text())
		return p.node(KindInvalid, tok(p.next()))
	}
}

func (p *parser) parseDescription() *Node {
	return p.node(KindDescription, tok(p.next()))
}

// parseOperationDefinition also handles the shorthand query form, which
// begins directly with a SelectionSet.
func (p *parser) parseOperationDefinition() *Node {
	var elems []Elem
	if p.atPunct("{") {
		elems = append(elems, sub(p.parseSelectionSet()))
		return p.node(KindOperationDefinition, elems...)
	}

	elems = append(elems, tok(p.next())) // query|mutation|subscription
	if p.peek().Kind() == token.Ident {
		elems = append(elems, tok(p.next())) // name
	}
	if p.atPunct("(") {
		elems = append(elems, sub(p.parseVariableDefinitions()))
	}
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	elems = append(elems, sub(p.parseSelectionSet()))
	return p.node(KindOperationDefinition, elems...)
}

func (p *parser) parseVariableDefinitions() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectPunct("(")))
	for !p.atPunct(")") && p.peek().Kind() != token.EOF {
		elems = append(elems, sub(p.parseVariableDefinition()))
	}
	elems = append(elems, tok(p.expectPunct(")")))
	return p.node(KindVariableDefinitions, elems...)
}

func (p *parser) parseVariableDefinition() *Node {
	var elems []Elem
	elems = append(elems, sub(p.parseVariable()))
	elems = append(elems, tok(p.expectPunct(":")))
	elems = append(elems, sub(p.parseType()))
	if p.atPunct("=") {
		elems = append(elems, tok(p.next()))
		elems = append(elems, sub(p.parseValue()))
	}
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	return p.node(KindVariableDefinition, elems...)
}

func (p *parser) parseVariable() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectPunct("$")))
	elems = append(elems, tok(p.expectIdent()))
	return p.node(KindVariable, elems...)
}

func (p *parser) parseSelectionSet() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectPunct("{")))
	for !p.atPunct("}") && p.peek().Kind() != token.EOF {
		elems = append(elems, sub(p.parseSelection()))
	}
	elems = append(elems, tok(p.expectPunct("}")))
	return p.node(KindSelectionSet, elems...)
}

func (p *parser) parseSelection() *Node {
	if p.atPunct("...") {
		return p.parseFragment()
	}
	return p.parseField()
}

func (p *parser) parseField() *Node {
	var elems []Elem
	first := p.expectIdent()
	if p.atPunct(":") {
		aliasElems := []Elem{tok(first), tok(p.next())}
		elems = append(elems, sub(p.node(KindAlias, aliasElems...)))
		elems = append(elems, tok(p.expectIdent()))
	} else {
		elems = append(elems, tok(first))
	}
	if p.atPunct("(") {
		elems = append(elems, sub(p.parseArguments()))
	}
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	if p.atPunct("{") {
		elems = append(elems, sub(p.parseSelectionSet()))
	}
	return p.node(KindField, elems...)
}

func (p *parser) parseArguments() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectPunct("(")))
	for !p.atPunct(")") && p.peek().Kind() != token.EOF {
		elems = append(elems, sub(p.parseArgument()))
	}
	elems = append(elems, tok(p.expectPunct(")")))
	return p.node(KindArguments, elems...)
}

func (p *parser) parseArgument() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectIdent()))
	elems = append(elems, tok(p.expectPunct(":")))
	elems = append(elems, sub(p.parseValue()))
	return p.node(KindArgument, elems...)
}

func (p *parser) parseFragment() *Node {
	dots := p.expectPunct("...")
	switch {
	case p.atKeyword("on"):
		var elems []Elem
		elems = append(elems, tok(dots), sub(p.parseTypeCondition()))
		if p.atPunct("@") {
			elems = append(elems, sub(p.parseDirectives()))
		}
		elems = append(elems, sub(p.parseSelectionSet()))
		return p.node(KindInlineFragment, elems...)

	case p.peek().Kind() == token.Ident:
		var elems []Elem
		elems = append(elems, tok(dots), tok(p.next()))
		if p.atPunct("@") {
			elems = append(elems, sub(p.parseDirectives()))
		}
		return p.node(KindFragmentSpread, elems...)

	default:
		var elems []Elem
		elems = append(elems, tok(dots))
		if p.atPunct("@") {
			elems = append(elems, sub(p.parseDirectives()))
		}
		elems = append(elems, sub(p.parseSelectionSet()))
		return p.node(KindInlineFragment, elems...)
	}
}

func (p *parser) parseTypeCondition() *Node {
	var elems []Elem
	elems = append(elems, tok(p.next())) // 'on'
	elems = append(elems, tok(p.expectIdent()))
	return p.node(KindTypeCondition, elems...)
}

func (p *parser) parseFragmentDefinition() *Node {
	var elems []Elem
	elems = append(elems, tok(p.next())) // 'fragment'
	elems = append(elems, tok(p.expectIdent()))
	elems = append(elems, sub(p.parseTypeCondition()))
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	elems = append(elems, sub(p.parseSelectionSet()))
	return p.node(KindFragmentDefinition, elems...)
}

func (p *parser) parseDirectives() *Node {
	var elems []Elem
	for p.atPunct("@") {
		elems = append(elems, sub(p.parseDirective()))
	}
	return p.node(KindDirectives, elems...)
}

func (p *parser) parseDirective() *Node {
	var elems []Elem
	elems = append(elems, tok(p.next())) // '@'
	elems = append(elems, tok(p.expectIdent()))
	if p.atPunct("(") {
		elems = append(elems, sub(p.parseArguments()))
	}
	return p.node(KindDirective, elems...)
}

func (p *parser) parseValue() *Node {
	t := p.peek()
	switch {
	case t.Kind() == token.Punct && t.Text() == "$":
		return p.parseVariable()
	case t.Kind() == token.Int:
		return p.node(KindIntValue, tok(p.next()))
	case t.Kind() == token.Float:
		return p.node(KindFloatValue, tok(p.next()))
	case t.Kind() == token.String:
		return p.node(KindStringValue, tok(p.next()))
	case t.Kind() == token.Block:
		return p.node(KindBlockStringValue, tok(p.next()))
	case t.Kind() == token.Ident && (t.Text() == "true" || t.Text() == "false"):
		return p.node(KindBooleanValue, tok(p.next()))
	case t.Kind() == token.Ident && t.Text() == "null":
		return p.node(KindNullValue, tok(p.next()))
	case t.Kind() == token.Ident:
		return p.node(KindEnumValue, tok(p.next()))
	case t.Kind() == token.Punct && t.Text() == "[":
		return p.parseListValue()
	case t.Kind() == token.Punct && t.Text() == "{":
		return p.parseObjectValue()
	default:
		p.errorf(t, "expected a value, found %q", t.Text())
		return p.node(KindInvalid, tok(p.next()))
	}
}

func (p *parser) parseListValue() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectPunct("[")))
	for !p.atPunct("]") && p.peek().Kind() != token.EOF {
		elems = append(elems, sub(p.parseValue()))
	}
	elems = append(elems, tok(p.expectPunct("]")))
	return p.node(KindListValue, elems...)
}

func (p *parser) parseObjectValue() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectPunct("{")))
	for !p.atPunct("}") && p.peek().Kind() != token.EOF {
		elems = append(elems, sub(p.parseObjectField()))
	}
	elems = append(elems, tok(p.expectPunct("}")))
	return p.node(KindObjectValue, elems...)
}

func (p *parser) parseObjectField() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectIdent()))
	elems = append(elems, tok(p.expectPunct(":")))
	elems = append(elems, sub(p.parseValue()))
	return p.node(KindObjectField, elems...)
}

func (p *parser) parseType() *Node {
	var base *Node
	if p.atPunct("[") {
		var elems []Elem
		elems = append(elems, tok(p.next()))
		elems = append(elems, sub(p.parseType()))
		elems = append(elems, tok(p.expectPunct("]")))
		base = p.node(KindListType, elems...)
	} else {
		base = p.node(KindNamedType, tok(p.expectIdent()))
	}
	if p.atPunct("!") {
		return p.node(KindNonNullType, sub(base), tok(p.next()))
	}
	return base
}
