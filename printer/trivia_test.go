package printer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/g-plane/pretty-graphql/lexer"
	"github.com/g-plane/pretty-graphql/token"
)

func streamOf(t *testing.T, src string) *token.Stream {
	t.Helper()
	s, errs := lexer.Lex(src)
	require.Empty(t, errs)
	return s
}

// semanticTokens returns every non-trivia token in the stream, in order.
func semanticTokens(s *token.Stream) []token.Token {
	var out []token.Token
	c := s.Cursor()
	for {
		tok := c.NextToken()
		if tok.IsZero() {
			break
		}
		out = append(out, tok)
		if tok.Kind() == token.EOF {
			break
		}
	}
	return out
}

func TestBuildTriviaTrailingCommentSameLine(t *testing.T) {
	s := streamOf(t, "a # trailing\nb")
	tv := BuildTrivia(s)
	toks := semanticTokens(s)
	require.Len(t, toks, 3) // a, b, EOF

	trailing := tv.Trailing(toks[0])
	require.Len(t, trailing, 1)
	assert.Equal(t, EntryComment, trailing[0].Kind)
	assert.Equal(t, "# trailing", trailing[0].Text)
	assert.False(t, tv.HasLeadingComment(toks[1]))
}

func TestBuildTriviaLeadingCommentNextLine(t *testing.T) {
	s := streamOf(t, "a\n# leading\nb")
	tv := BuildTrivia(s)
	toks := semanticTokens(s)

	assert.True(t, tv.HasLeadingComment(toks[1]))
	assert.Equal(t, []string{"# leading"}, tv.LeadingComments(toks[1]))
}

func TestBuildTriviaBlankLineMarker(t *testing.T) {
	s := streamOf(t, "a\n\nb")
	tv := BuildTrivia(s)
	toks := semanticTokens(s)

	assert.True(t, tv.HasBlankLineBefore(toks[1]))
}

func TestBuildTriviaSingleLineBreakIsNotBlank(t *testing.T) {
	s := streamOf(t, "a\nb")
	tv := BuildTrivia(s)
	toks := semanticTokens(s)

	assert.False(t, tv.HasBlankLineBefore(toks[1]))
}

func TestBuildTriviaTrailingCommentAtEOF(t *testing.T) {
	s := streamOf(t, "a # trailing")
	tv := BuildTrivia(s)
	toks := semanticTokens(s)

	trailing := tv.Trailing(toks[0])
	require.Len(t, trailing, 1)
	assert.Equal(t, "# trailing", trailing[0].Text)
}

func TestBuildTriviaLeadingCommentBeforeEOF(t *testing.T) {
	s := streamOf(t, "a\n# dangling")
	tv := BuildTrivia(s)
	toks := semanticTokens(s)
	eof := toks[len(toks)-1]
	require.Equal(t, token.EOF, eof.Kind())

	assert.Equal(t, []string{"# dangling"}, tv.LeadingComments(eof))
}
