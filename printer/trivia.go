// Package printer implements the Trivia Attacher, Ignore Scanner, List
// Formatter, and Document Builder of spec.md §4.2-§4.5: the passes that turn
// a parsed [ast.Node] CST into a [dom.Doc] ready for [dom.Render].
//
// The trivia index is keyed by [token.ID] and built once per document,
// mirroring protocompile's experimental/ast/printer.buildTriviaIndex: trivia
// lookup is decoupled from tree shape, so the recursive document builder
// never has to thread trivia through its call signatures.
package printer

import "github.com/g-plane/pretty-graphql/token"

// EntryKind distinguishes the two things a trivia attachment can carry.
type EntryKind uint8

const (
	EntryComment EntryKind = iota
	EntryBlankLine
)

// Entry is one leading or trailing trivia attachment (spec.md §3's "trivia
// attachment" entry).
type Entry struct {
	Kind EntryKind
	Text string // Comment body, including the leading '#'. Unset for EntryBlankLine.
}

// Trivia is the complete leading/trailing trivia index for one token
// stream, built once by [BuildTrivia].
type Trivia struct {
	leading  map[token.ID][]Entry
	trailing map[token.ID][]Entry
}

// Leading returns the leading trivia entries anchored to t, in source order.
func (tv *Trivia) Leading(t token.Token) []Entry {
	if t.IsZero() {
		return nil
	}
	return tv.leading[t.ID()]
}

// Trailing returns the trailing trivia entries anchored to t, in source
// order.
func (tv *Trivia) Trailing(t token.Token) []Entry {
	if t.IsZero() {
		return nil
	}
	return tv.trailing[t.ID()]
}

// BuildTrivia walks every token in stream, including trivia, and classifies
// each comment and blank-line run per the rules of spec.md §4.2:
//
//  1. A comment on the same source line as the previous meaningful token,
//     with no intervening line break, is trailing of the previous token.
//  2. Otherwise a comment is leading of the next meaningful token.
//  3. A whitespace run with ≥2 line breaks produces one blank-line marker
//     at that position in the target sequence.
//
// Trivia preceding the stream's EOF token is attached as leading trivia of
// EOF, which callers use to recover trailing comments at the end of a
// document.
func BuildTrivia(stream *token.Stream) *Trivia {
	tv := &Trivia{leading: map[token.ID][]Entry{}, trailing: map[token.ID][]Entry{}}

	cursor := stream.Cursor()
	var prevSemantic token.Token
	var run []token.Token

	flush := func(next token.Token) {
		if len(run) == 0 {
			return
		}
		i := 0
		// A single inline Space token (no line break) may separate
		// prevSemantic from a trailing comment, since the lexer always folds
		// "<space>#..." into two tokens rather than one: skip past it before
		// checking rule 1's same-line condition.
		j := 0
		if j < len(run) && run[j].Kind() == token.Space && run[j].NewlineCount() == 0 {
			j++
		}
		if !prevSemantic.IsZero() && j < len(run) && run[j].Kind() == token.Comment {
			tv.trailing[prevSemantic.ID()] = append(tv.trailing[prevSemantic.ID()], Entry{
				Kind: EntryComment,
				Text: run[j].Text(),
			})
			i = j + 1
		}
		for ; i < len(run); i++ {
			t := run[i]
			switch t.Kind() {
			case token.Comment:
				tv.leading[next.ID()] = append(tv.leading[next.ID()], Entry{Kind: EntryComment, Text: t.Text()})
			case token.Space:
				if t.NewlineCount() >= 2 {
					tv.leading[next.ID()] = append(tv.leading[next.ID()], Entry{Kind: EntryBlankLine})
				}
			}
		}
		run = run[:0]
	}

	for {
		t := cursor.Next()
		if t.IsZero() {
			break
		}
		if t.Kind().IsTrivia() {
			run = append(run, t)
			continue
		}
		flush(t)
		prevSemantic = t
		if t.Kind() == token.EOF {
			break
		}
	}

	return tv
}

// LeadingComments returns just the comment bodies among t's leading trivia,
// dropping blank-line markers.
func (tv *Trivia) LeadingComments(t token.Token) []string {
	var out []string
	for _, e := range tv.Leading(t) {
		if e.Kind == EntryComment {
			out = append(out, e.Text)
		}
	}
	return out
}

// HasLeadingComment reports whether t has at least one leading comment.
func (tv *Trivia) HasLeadingComment(t token.Token) bool {
	for _, e := range tv.Leading(t) {
		if e.Kind == EntryComment {
			return true
		}
	}
	return false
}

// HasBlankLineBefore reports whether a blank-line marker appears anywhere
// in t's leading trivia.
func (tv *Trivia) HasBlankLineBefore(t token.Token) bool {
	for _, e := range tv.Leading(t) {
		if e.Kind == EntryBlankLine {
			return true
		}
	}
	return false
}
