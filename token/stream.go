package token

import "sort"

// nat is the storage for one "natural" (lexed, as opposed to synthetic)
// token. Adapted from protocompile's experimental/token.Stream, simplified
// to a plain slice since our token volumes do not need bit-packed storage.
type nat struct {
	start int
	end   int
	kind  Kind
}

// Stream is the complete, immutable token sequence for one source file.
//
// A Stream is built once by the [github.com/g-plane/pretty-graphql/lexer]
// package and then shared read-only between the parser, the trivia
// attacher, and the printer.
type Stream struct {
	source string
	nats   []nat
	// lineStarts[i] is the byte offset of the first byte of line i+1.
	lineStarts []int
}

// NewStream constructs an empty Stream over source. Tokens are appended with
// [Stream.Push] by the lexer; once lexing is complete the Stream is
// immutable.
func NewStream(source string) *Stream {
	s := &Stream{source: source}
	s.lineStarts = append(s.lineStarts, 0)
	for i, r := range source {
		if r == '\n' {
			s.lineStarts = append(s.lineStarts, i+1)
		}
	}
	return s
}

// Source returns the complete source text this Stream was lexed from.
func (s *Stream) Source() string { return s.source }

// Push appends a new token spanning source[start:end] and returns it.
func (s *Stream) Push(start, end int, kind Kind) Token {
	s.nats = append(s.nats, nat{start: start, end: end, kind: kind})
	return Token{stream: s, id: ID(len(s.nats))}
}

// Len returns the number of tokens in the stream, including the trailing
// EOF token.
func (s *Stream) Len() int { return len(s.nats) }

// At returns the i'th token (0-indexed).
func (s *Stream) At(i int) Token {
	if i < 0 || i >= len(s.nats) {
		return Zero
	}
	return Token{stream: s, id: ID(i + 1)}
}

func (s *Stream) nat(id ID) nat {
	return s.nats[int(id)-1]
}

func (s *Stream) text(id ID) string {
	n := s.nat(id)
	return s.source[n.start:n.end]
}

func (s *Stream) lineCol(offset int) (line, col int) {
	i := sort.Search(len(s.lineStarts), func(i int) bool {
		return s.lineStarts[i] > offset
	})
	line = i // lineStarts[0]==0 is line 1, so i itself is the 1-indexed line.
	col = offset - s.lineStarts[i-1] + 1
	return line, col
}

// Cursor returns a [Cursor] positioned before the first token, including
// trivia tokens.
func (s *Stream) Cursor() *Cursor {
	return &Cursor{stream: s, pos: 0}
}

// Cursor is a position within a [Stream] that can be advanced one token (of
// any kind, including trivia) at a time.
type Cursor struct {
	stream *Stream
	pos    int
}

// Next returns the next token, including trivia, and advances the cursor.
// Returns [Zero] at the end of the stream.
func (c *Cursor) Next() Token {
	if c.pos >= c.stream.Len() {
		return Zero
	}
	t := c.stream.At(c.pos)
	c.pos++
	return t
}

// Peek returns the next token without advancing the cursor.
func (c *Cursor) Peek() Token {
	if c.pos >= c.stream.Len() {
		return Zero
	}
	return c.stream.At(c.pos)
}

// Prev moves the cursor back one token, undoing the last [Cursor.Next].
func (c *Cursor) Prev() {
	if c.pos > 0 {
		c.pos--
	}
}

// Pos returns the cursor's current index into the stream.
func (c *Cursor) Pos() int { return c.pos }

// SeekTo repositions the cursor at the given stream index.
func (c *Cursor) SeekTo(pos int) { c.pos = pos }

// NextToken returns the next non-trivia token, skipping over any Space and
// Comment tokens along the way, and advances the cursor past it. Used by the
// parser, which only ever looks at semantic tokens; the trivia attacher is
// the only consumer that walks every token via [Cursor.Next].
func (c *Cursor) NextToken() Token {
	for {
		t := c.Next()
		if t.IsZero() || !t.Kind().IsTrivia() {
			return t
		}
	}
}

// PeekToken returns the next non-trivia token without advancing the cursor.
func (c *Cursor) PeekToken() Token {
	save := c.pos
	t := c.NextToken()
	c.pos = save
	return t
}
