package ast

import "github.com/g-plane/pretty-graphql/token"

// Elem is one child of a [Node]: either a semantic [token.Token] (Tok is
// non-zero) or a nested [Node] (Sub is non-nil). Never both.
type Elem struct {
	Tok token.Token
	Sub *Node
}

// IsToken reports whether this element is a leaf token.
func (e Elem) IsToken() bool { return e.Sub == nil }

func tok(t token.Token) Elem { return Elem{Tok: t} }
func sub(n *Node) Elem       { return Elem{Sub: n} }

// Node is one node of the GraphQL concrete syntax tree: a *kind* (§6.3) and
// an ordered sequence of children, each either a token or a nested node.
//
// Node is produced by [github.com/g-plane/pretty-graphql/ast.Parse] and
// consumed by the printer through [Node.Children], [Node.Kind], and
// [Node.Span] — the node-kind/children/text interface spec.md §6 describes
// as the contract a parser must expose.
type Node struct {
	Kind   Kind
	Elems  []Elem
	stream *token.Stream
}

// NewNode constructs a Node of the given kind with the given children.
func NewNode(stream *token.Stream, kind Kind, elems ...Elem) *Node {
	return &Node{Kind: kind, Elems: elems, stream: stream}
}

// Children returns this node's children in source order.
func (n *Node) Children() []Elem {
	if n == nil {
		return nil
	}
	return n.Elems
}

// Stream returns the token stream this node's tokens were minted from.
func (n *Node) Stream() *token.Stream { return n.stream }

// FirstToken returns the first semantic token spanned by this node,
// recursing into the first child node as needed.
func (n *Node) FirstToken() token.Token {
	if n == nil {
		return token.Zero
	}
	for _, e := range n.Elems {
		if e.IsToken() {
			if !e.Tok.IsZero() {
				return e.Tok
			}
			continue
		}
		if t := e.Sub.FirstToken(); !t.IsZero() {
			return t
		}
	}
	return token.Zero
}

// LastToken returns the last semantic token spanned by this node.
func (n *Node) LastToken() token.Token {
	if n == nil {
		return token.Zero
	}
	for i := len(n.Elems) - 1; i >= 0; i-- {
		e := n.Elems[i]
		if e.IsToken() {
			if !e.Tok.IsZero() {
				return e.Tok
			}
			continue
		}
		if t := e.Sub.LastToken(); !t.IsZero() {
			return t
		}
	}
	return token.Zero
}

// Span returns the byte range of source text from the start of this node's
// first semantic token to the end of its last one. Trivia before the first
// token and after the last is not included; trivia between them is.
func (n *Node) Span() (start, end int) {
	first, last := n.FirstToken(), n.LastToken()
	if first.IsZero() || last.IsZero() {
		return 0, 0
	}
	return first.Offset(), last.Offset() + len(last.Text())
}

// Text returns the exact source slice given by [Node.Span]: no surrounding
// trivia, but any whitespace and comments between its tokens kept as-is.
func (n *Node) Text() string {
	if n == nil || n.stream == nil {
		return ""
	}
	start, end := n.Span()
	return n.stream.Source()[start:end]
}

// IsZero reports whether n is nil.
func (n *Node) IsZero() bool { return n == nil }
