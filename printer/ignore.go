package printer

import "strings"

// IsIgnoreComment reports whether the body of a leading comment (including
// its '#') matches the configured ignore-comment directive: the directive
// text, optionally preceded by a single space after '#', matched
// case-sensitively. This implements the Ignore Scanner of spec.md §4.3.
func IsIgnoreComment(commentText, directive string) bool {
	rest, ok := strings.CutPrefix(commentText, "#")
	if !ok {
		return false
	}
	rest = strings.TrimPrefix(rest, " ")
	return rest == directive
}
