package prettygraphql

import (
	"testing"

	"github.com/g-plane/pretty-graphql/internal/golden"
)

// TestGolden runs every fixture under testdata/golden through FormatText and
// compares the result against its recorded ".graphql.out" file. Set
// GOLDEN_REFRESH to a glob of case names (e.g. "*") to regenerate them.
func TestGolden(t *testing.T) {
	golden.Corpus{Root: "testdata/golden", Refresh: "GOLDEN_REFRESH"}.Run(t, func(t *testing.T, tc golden.Case) string {
		out, err := FormatText(tc.Input, tc.Options)
		if err != nil {
			t.Fatalf("FormatText(%q): %v", tc.Name, err)
		}
		return out
	})
}
