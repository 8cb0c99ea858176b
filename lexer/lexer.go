// Package lexer turns GraphQL source text into a trivia-preserving
// [token.Stream]. It stands in for the "assumed" external parser's lexical
// layer described in spec.md §6.3: every whitespace run and every comment
// becomes its own token, so that no source information is lost before the
// trivia attacher and printer see it.
//
// Adapted from the scanning style of protocompile's lexer packages
// (experimental/internal/lexer, parser/), generalized to GraphQL's simpler
// lexical grammar (no nested string concatenation, no hex/octal literals).
package lexer

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/g-plane/pretty-graphql/token"
)

// Error reports a single lexical error, with a byte offset into the source.
type Error struct {
	Offset  int
	Line    int
	Column  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%d:%d: %s", e.Line, e.Column, e.Message)
}

// Lex scans source into a complete [token.Stream]. It returns every error it
// encountered; a non-empty error slice means source is not valid GraphQL.
// The stream still covers all of source, with a [token.Unrecognized] token
// wherever a character could not be scanned.
func Lex(source string) (*token.Stream, []*Error) {
	l := &lexer{src: source, stream: token.NewStream(source)}
	l.run()
	return l.stream, l.errs
}

type lexer struct {
	src    string
	pos    int
	stream *token.Stream
	errs   []*Error
}

// bom is the 3-byte UTF-8 encoding of U+FEFF, which GraphQL treats as
// insignificant whitespace when it appears as a byte-order mark.
const bom = "\xef\xbb\xbf"

func (l *lexer) run() {
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == ',' || strings.HasPrefix(l.src[l.pos:], bom):
			l.lexSpace()
		case c == '#':
			l.lexComment()
		case c == '"':
			l.lexString()
		case isNameStart(c):
			l.lexName()
		case c == '-' || isDigit(c):
			l.lexNumber()
		case strings.IndexByte("!$&():=@[]{|}", c) >= 0:
			l.push(l.pos, l.pos+1, token.Punct)
			l.pos++
		case c == '.':
			if strings.HasPrefix(l.src[l.pos:], "...") {
				l.push(l.pos, l.pos+3, token.Punct)
				l.pos += 3
			} else {
				l.errorAt(l.pos, "unexpected character '.'")
				l.push(l.pos, l.pos+1, token.Unrecognized)
				l.pos++
			}
		default:
			_, size := utf8.DecodeRuneInString(l.src[l.pos:])
			l.errorAt(l.pos, fmt.Sprintf("unexpected character %q", l.src[l.pos:l.pos+size]))
			l.push(l.pos, l.pos+size, token.Unrecognized)
			l.pos += size
		}
	}
	l.push(len(l.src), len(l.src), token.EOF)
}

func (l *lexer) push(start, end int, kind token.Kind) token.Token {
	return l.stream.Push(start, end, kind)
}

func (l *lexer) errorAt(offset int, msg string) {
	line, col := lineCol(l.src, offset)
	l.errs = append(l.errs, &Error{Offset: offset, Line: line, Column: col, Message: msg})
}

func lineCol(src string, offset int) (line, col int) {
	line = 1
	lastNL := -1
	for i := 0; i < offset && i < len(src); i++ {
		if src[i] == '\n' {
			line++
			lastNL = i
		}
	}
	return line, offset - lastNL
}

// lexSpace consumes a maximal run of whitespace and commas. GraphQL treats
// commas as purely insignificant whitespace, on par with spaces; they are
// folded into Space tokens so that the printer can decide the comma policy
// itself rather than echo the user's commas.
func (l *lexer) lexSpace() {
	start := l.pos
	for l.pos < len(l.src) {
		c := l.src[l.pos]
		if c == ' ' || c == '\t' || c == ',' {
			l.pos++
		} else if strings.HasPrefix(l.src[l.pos:], bom) {
			l.pos += len(bom)
		} else if c == '\r' {
			l.pos++
			if l.pos < len(l.src) && l.src[l.pos] == '\n' {
				l.pos++
			}
		} else if c == '\n' {
			l.pos++
		} else {
			break
		}
	}
	l.push(start, l.pos, token.Space)
}

// lexComment consumes a `#` line comment, not including the terminating
// line break.
func (l *lexer) lexComment() {
	start := l.pos
	l.pos++ // '#'
	for l.pos < len(l.src) && l.src[l.pos] != '\n' && l.src[l.pos] != '\r' {
		l.pos++
	}
	l.push(start, l.pos, token.Comment)
}

func isNameStart(c byte) bool {
	return c == '_' || (c >= 'A' && c <= 'Z') || (c >= 'a' && c <= 'z')
}

func isNameCont(c byte) bool {
	return isNameStart(c) || isDigit(c)
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }

func (l *lexer) lexName() {
	start := l.pos
	l.pos++
	for l.pos < len(l.src) && isNameCont(l.src[l.pos]) {
		l.pos++
	}
	l.push(start, l.pos, token.Ident)
}

// lexNumber consumes an Int or Float literal per the GraphQL grammar:
//
//	IntValue   ::= -? (0 | [1-9][0-9]*)
//	FloatValue ::= IntValue ( Fractional | Exponent | Fractional Exponent )
func (l *lexer) lexNumber() {
	start := l.pos
	if l.src[l.pos] == '-' {
		l.pos++
	}
	if l.pos < len(l.src) && l.src[l.pos] == '0' {
		l.pos++
	} else {
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	isFloat := false
	if l.pos < len(l.src) && l.src[l.pos] == '.' && l.pos+1 < len(l.src) && isDigit(l.src[l.pos+1]) {
		isFloat = true
		l.pos++
		for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
			l.pos++
		}
	}
	if l.pos < len(l.src) && (l.src[l.pos] == 'e' || l.src[l.pos] == 'E') {
		save := l.pos
		p := l.pos + 1
		if p < len(l.src) && (l.src[p] == '+' || l.src[p] == '-') {
			p++
		}
		if p < len(l.src) && isDigit(l.src[p]) {
			isFloat = true
			l.pos = p
			for l.pos < len(l.src) && isDigit(l.src[l.pos]) {
				l.pos++
			}
		} else {
			l.pos = save
		}
	}
	kind := token.Int
	if isFloat {
		kind = token.Float
	}
	l.push(start, l.pos, kind)
}

// lexString consumes a StringValue, either the ordinary single-quoted form
// or a block string (`"""..."""`).
func (l *lexer) lexString() {
	start := l.pos
	if strings.HasPrefix(l.src[l.pos:], `"""`) {
		l.pos += 3
		for {
			if l.pos >= len(l.src) {
				l.errorAt(start, "unterminated block string")
				break
			}
			if strings.HasPrefix(l.src[l.pos:], `\"""`) {
				l.pos += 4
				continue
			}
			if strings.HasPrefix(l.src[l.pos:], `"""`) {
				l.pos += 3
				break
			}
			_, size := utf8.DecodeRuneInString(l.src[l.pos:])
			l.pos += size
		}
		l.push(start, l.pos, token.Block)
		return
	}

	l.pos++ // opening quote
	for {
		if l.pos >= len(l.src) {
			l.errorAt(start, "unterminated string")
			break
		}
		c := l.src[l.pos]
		if c == '\n' {
			l.errorAt(start, "unterminated string")
			break
		}
		if c == '\\' && l.pos+1 < len(l.src) {
			l.pos += 2
			continue
		}
		l.pos++
		if c == '"' {
			break
		}
	}
	l.push(start, l.pos, token.String)
}
