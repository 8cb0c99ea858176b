package ast

import "github.com/g-plane/pretty-graphql/token"

// parseTypeSystemDefOrExt parses any type-system definition or extension.
// desc is the already-parsed leading Description, or nil if there was none
// (descriptions cannot precede `extend ...`).
func (p *parser) parseTypeSystemDefOrExt(desc *Node) *Node {
	if p.atKeyword("extend") {
		return p.parseTypeSystemExtension()
	}

	var lead []Elem
	if desc != nil {
		lead = append(lead, sub(desc))
	}

	switch p.peek().Text() {
	case "schema":
		return p.parseSchemaDefinition(lead)
	case "scalar":
		return p.parseScalarTypeDefinition(lead)
	case "type":
		return p.parseObjectTypeDefinition(lead)
	case "interface":
		return p.parseInterfaceTypeDefinition(lead)
	case "union":
		return p.parseUnionTypeDefinition(lead)
	case "enum":
		return p.parseEnumTypeDefinition(lead)
	case "input":
		return p.parseInputObjectTypeDefinition(lead)
	case "directive":
		return p.parseDirectiveDefinition(lead)
	default:
		t := p.peek()
		p.errorf(t, "expected a type system definition, found %q", t.Text())
		return p.node(KindInvalid, tok(p.next()))
	}
}

func (p *parser) parseTypeSystemExtension() *Node {
	extend := p.next() // 'extend'
	switch p.peek().Text() {
	case "schema":
		n := p.parseSchemaDefinition(nil)
		n.Elems = append([]Elem{tok(extend)}, n.Elems...)
		n.Kind = KindSchemaExtension
		return n
	case "scalar":
		n := p.parseScalarTypeDefinition(nil)
		n.Elems = append([]Elem{tok(extend)}, n.Elems...)
		n.Kind = KindScalarTypeExtension
		return n
	case "type":
		n := p.parseObjectTypeDefinition(nil)
		n.Elems = append([]Elem{tok(extend)}, n.Elems...)
		n.Kind = KindObjectTypeExtension
		return n
	case "interface":
		n := p.parseInterfaceTypeDefinition(nil)
		n.Elems = append([]Elem{tok(extend)}, n.Elems...)
		n.Kind = KindInterfaceTypeExtension
		return n
	case "union":
		n := p.parseUnionTypeDefinition(nil)
		n.Elems = append([]Elem{tok(extend)}, n.Elems...)
		n.Kind = KindUnionTypeExtension
		return n
	case "enum":
		n := p.parseEnumTypeDefinition(nil)
		n.Elems = append([]Elem{tok(extend)}, n.Elems...)
		n.Kind = KindEnumTypeExtension
		return n
	case "input":
		n := p.parseInputObjectTypeDefinition(nil)
		n.Elems = append([]Elem{tok(extend)}, n.Elems...)
		n.Kind = KindInputObjectTypeExtension
		return n
	default:
		t := p.peek()
		p.errorf(t, "expected a type to extend, found %q", t.Text())
		return p.node(KindInvalid, tok(extend), tok(p.next()))
	}
}

func (p *parser) parseSchemaDefinition(lead []Elem) *Node {
	elems := append(lead, tok(p.next())) // 'schema'
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	if p.atPunct("{") {
		elems = append(elems, tok(p.expectPunct("{")))
		for !p.atPunct("}") && p.peek().Kind() != token.EOF {
			elems = append(elems, sub(p.parseRootOperationTypeDefinition()))
		}
		elems = append(elems, tok(p.expectPunct("}")))
	}
	return p.node(KindSchemaDefinition, elems...)
}

func (p *parser) parseRootOperationTypeDefinition() *Node {
	var elems []Elem
	elems = append(elems, tok(p.next())) // query|mutation|subscription
	elems = append(elems, tok(p.expectPunct(":")))
	elems = append(elems, sub(p.parseNamedType()))
	return p.node(KindRootOperationTypeDefinition, elems...)
}

func (p *parser) parseNamedType() *Node {
	return p.node(KindNamedType, tok(p.expectIdent()))
}

func (p *parser) parseScalarTypeDefinition(lead []Elem) *Node {
	elems := append(lead, tok(p.next())) // 'scalar'
	elems = append(elems, tok(p.expectIdent()))
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	return p.node(KindScalarTypeDefinition, elems...)
}

func (p *parser) parseObjectTypeDefinition(lead []Elem) *Node {
	elems := append(lead, tok(p.next())) // 'type'
	elems = append(elems, tok(p.expectIdent()))
	if p.atKeyword("implements") {
		elems = append(elems, sub(p.parseImplementsInterfaces()))
	}
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	if p.atPunct("{") {
		elems = append(elems, sub(p.parseFieldsDefinition()))
	}
	return p.node(KindObjectTypeDefinition, elems...)
}

func (p *parser) parseInterfaceTypeDefinition(lead []Elem) *Node {
	elems := append(lead, tok(p.next())) // 'interface'
	elems = append(elems, tok(p.expectIdent()))
	if p.atKeyword("implements") {
		elems = append(elems, sub(p.parseImplementsInterfaces()))
	}
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	if p.atPunct("{") {
		elems = append(elems, sub(p.parseFieldsDefinition()))
	}
	return p.node(KindInterfaceTypeDefinition, elems...)
}

func (p *parser) parseImplementsInterfaces() *Node {
	var elems []Elem
	elems = append(elems, tok(p.next())) // 'implements'
	if p.atPunct("&") {
		elems = append(elems, tok(p.next()))
	}
	elems = append(elems, sub(p.parseNamedType()))
	for p.atPunct("&") {
		elems = append(elems, tok(p.next()))
		elems = append(elems, sub(p.parseNamedType()))
	}
	return p.node(KindImplementsInterfaces, elems...)
}

func (p *parser) parseFieldsDefinition() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectPunct("{")))
	for !p.atPunct("}") && p.peek().Kind() != token.EOF {
		elems = append(elems, sub(p.parseFieldDefinition()))
	}
	elems = append(elems, tok(p.expectPunct("}")))
	return p.node(KindFieldsDefinition, elems...)
}

func (p *parser) parseFieldDefinition() *Node {
	var elems []Elem
	if p.peek().Kind() == token.String || p.peek().Kind() == token.Block {
		elems = append(elems, sub(p.parseDescription()))
	}
	elems = append(elems, tok(p.expectIdent()))
	if p.atPunct("(") {
		elems = append(elems, sub(p.parseArgumentsDefinition()))
	}
	elems = append(elems, tok(p.expectPunct(":")))
	elems = append(elems, sub(p.parseType()))
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	return p.node(KindFieldDefinition, elems...)
}

func (p *parser) parseArgumentsDefinition() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectPunct("(")))
	for !p.atPunct(")") && p.peek().Kind() != token.EOF {
		elems = append(elems, sub(p.parseInputValueDefinition()))
	}
	elems = append(elems, tok(p.expectPunct(")")))
	return p.node(KindArgumentsDefinition, elems...)
}

func (p *parser) parseInputValueDefinition() *Node {
	var elems []Elem
	if p.peek().Kind() == token.String || p.peek().Kind() == token.Block {
		elems = append(elems, sub(p.parseDescription()))
	}
	elems = append(elems, tok(p.expectIdent()))
	elems = append(elems, tok(p.expectPunct(":")))
	elems = append(elems, sub(p.parseType()))
	if p.atPunct("=") {
		elems = append(elems, tok(p.next()))
		elems = append(elems, sub(p.parseValue()))
	}
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	return p.node(KindInputValueDefinition, elems...)
}

func (p *parser) parseUnionTypeDefinition(lead []Elem) *Node {
	elems := append(lead, tok(p.next())) // 'union'
	elems = append(elems, tok(p.expectIdent()))
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	if p.atPunct("=") {
		elems = append(elems, sub(p.parseUnionMemberTypes()))
	}
	return p.node(KindUnionTypeDefinition, elems...)
}

func (p *parser) parseUnionMemberTypes() *Node {
	var elems []Elem
	elems = append(elems, tok(p.next())) // '='
	if p.atPunct("|") {
		elems = append(elems, tok(p.next()))
	}
	elems = append(elems, sub(p.parseNamedType()))
	for p.atPunct("|") {
		elems = append(elems, tok(p.next()))
		elems = append(elems, sub(p.parseNamedType()))
	}
	return p.node(KindUnionMemberTypes, elems...)
}

func (p *parser) parseEnumTypeDefinition(lead []Elem) *Node {
	elems := append(lead, tok(p.next())) // 'enum'
	elems = append(elems, tok(p.expectIdent()))
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	if p.atPunct("{") {
		elems = append(elems, sub(p.parseEnumValuesDefinition()))
	}
	return p.node(KindEnumTypeDefinition, elems...)
}

func (p *parser) parseEnumValuesDefinition() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectPunct("{")))
	for !p.atPunct("}") && p.peek().Kind() != token.EOF {
		elems = append(elems, sub(p.parseEnumValueDefinition()))
	}
	elems = append(elems, tok(p.expectPunct("}")))
	return p.node(KindEnumValuesDefinition, elems...)
}

func (p *parser) parseEnumValueDefinition() *Node {
	var elems []Elem
	if p.peek().Kind() == token.String || p.peek().Kind() == token.Block {
		elems = append(elems, sub(p.parseDescription()))
	}
	elems = append(elems, tok(p.expectIdent()))
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	return p.node(KindEnumValueDefinition, elems...)
}

func (p *parser) parseInputObjectTypeDefinition(lead []Elem) *Node {
	elems := append(lead, tok(p.next())) // 'input'
	elems = append(elems, tok(p.expectIdent()))
	if p.atPunct("@") {
		elems = append(elems, sub(p.parseDirectives()))
	}
	if p.atPunct("{") {
		elems = append(elems, sub(p.parseInputFieldsDefinition()))
	}
	return p.node(KindInputObjectTypeDefinition, elems...)
}

func (p *parser) parseInputFieldsDefinition() *Node {
	var elems []Elem
	elems = append(elems, tok(p.expectPunct("{")))
	for !p.atPunct("}") && p.peek().Kind() != token.EOF {
		elems = append(elems, sub(p.parseInputValueDefinition()))
	}
	elems = append(elems, tok(p.expectPunct("}")))
	return p.node(KindInputFieldsDefinition, elems...)
}

func (p *parser) parseDirectiveDefinition(lead []Elem) *Node {
	elems := append(lead, tok(p.next())) // 'directive'
	elems = append(elems, tok(p.expectPunct("@")))
	elems = append(elems, tok(p.expectIdent()))
	if p.atPunct("(") {
		elems = append(elems, sub(p.parseArgumentsDefinition()))
	}
	if p.atKeyword("repeatable") {
		elems = append(elems, tok(p.next()))
	}
	if p.atKeyword("on") {
		elems = append(elems, tok(p.next()))
	} else {
		p.errorf(p.peek(), "expected %q, found %q", "on", p.peek().Text())
	}
	elems = append(elems, sub(p.parseDirectiveLocations()))
	return p.node(KindDirectiveDefinition, elems...)
}

func (p *parser) parseDirectiveLocations() *Node {
	var elems []Elem
	if p.atPunct("|") {
		elems = append(elems, tok(p.next()))
	}
	elems = append(elems, sub(p.parseDirectiveLocation()))
	for p.atPunct("|") {
		elems = append(elems, tok(p.next()))
		elems = append(elems, sub(p.parseDirectiveLocation()))
	}
	return p.node(KindDirectiveLocations, elems...)
}

func (p *parser) parseDirectiveLocation() *Node {
	return p.node(KindDirectiveLocation, tok(p.expectIdent()))
}
