// Package token defines the lexical tokens produced by the GraphQL lexer and
// consumed by the parser, trivia attacher, and printer.
//
// A [Stream] is an immutable, append-only sequence of [Token]s over a single
// source file. Tokens are addressed by [ID] rather than by pointer so that a
// [Stream] can be passed around and indexed cheaply.
package token

import "fmt"

// Kind identifies what kind of token a particular [Token] is.
type Kind byte

const (
	Unrecognized Kind = iota // Garbage the lexer could not classify.

	Space   // Contiguous whitespace, possibly containing line breaks.
	Comment // A `#...` line comment, not including the line break.
	Ident   // A GraphQL Name: /[_A-Za-z][_0-9A-Za-z]*/.
	Punct   // Punctuation: ! $ & ( ) ... : = @ [ ] { | }
	Int     // An integer literal.
	Float   // A float literal.
	String  // A single-quoted string literal, `"..."`.
	Block   // A block string literal, `"""..."""`.
	EOF     // The single end-of-file token.
)

// String implements [fmt.Stringer].
func (k Kind) String() string {
	switch k {
	case Unrecognized:
		return "Unrecognized"
	case Space:
		return "Space"
	case Comment:
		return "Comment"
	case Ident:
		return "Ident"
	case Punct:
		return "Punct"
	case Int:
		return "Int"
	case Float:
		return "Float"
	case String:
		return "String"
	case Block:
		return "Block"
	case EOF:
		return "EOF"
	default:
		return fmt.Sprintf("token.Kind(%d)", int(k))
	}
}

// IsTrivia reports whether tokens of this kind are skipped during syntactic
// analysis and instead folded into leading/trailing trivia by the printer.
func (k Kind) IsTrivia() bool {
	return k == Space || k == Comment
}

// ID addresses a single token within the [Stream] that minted it.
//
// IDs are 1-indexed so that the zero value can mean "no token".
type ID uint32

// IsZero reports whether this ID refers to no token.
func (id ID) IsZero() bool { return id == 0 }

// Token is a lexical token together with its originating [Stream].
//
// Token is a small value type; it is cheap to copy and compare.
type Token struct {
	stream *Stream
	id     ID
}

// Zero is the zero [Token], which refers to no token.
var Zero = Token{}

// IsZero reports whether this is the zero Token.
func (t Token) IsZero() bool { return t.stream == nil || t.id.IsZero() }

// ID returns the token's identity within its [Stream].
func (t Token) ID() ID { return t.id }

// Kind returns the token's [Kind].
func (t Token) Kind() Kind {
	if t.IsZero() {
		return Unrecognized
	}
	return t.stream.nat(t.id).kind
}

// Text returns the token's exact source text, including quotes for string
// literals and the leading `#` for comments.
func (t Token) Text() string {
	if t.IsZero() {
		return ""
	}
	return t.stream.text(t.id)
}

// Offset returns the byte offset of the start of this token within the
// source text.
func (t Token) Offset() int {
	if t.IsZero() {
		return 0
	}
	return t.stream.nat(t.id).start
}

// Line and Column return the 1-indexed source position of the start of this
// token, as measured by the [Stream] that produced it.
func (t Token) Line() int {
	if t.IsZero() {
		return 0
	}
	line, _ := t.stream.lineCol(t.Offset())
	return line
}

func (t Token) Column() int {
	if t.IsZero() {
		return 0
	}
	_, col := t.stream.lineCol(t.Offset())
	return col
}

// NewlineCount returns the number of line breaks contained in a [Space]
// token's text. It is zero for every other kind.
func (t Token) NewlineCount() int {
	if t.Kind() != Space {
		return 0
	}
	n := 0
	for _, r := range t.Text() {
		if r == '\n' {
			n++
		}
	}
	return n
}
