// Package golden provides a framework for writing file-based golden tests
// over the formatter: a directory of `.graphql` inputs, each with a sibling
// `.graphql.out` expectation and an optional `.graphql.yaml` config file.
//
// Corpora can be refreshed by setting the environment variable named by
// [Corpus.Refresh] to a glob matching the test names to regenerate.
package golden

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/pmezard/go-difflib/difflib"
	"gopkg.in/yaml.v3"
)

// Corpus describes a golden test data corpus: a directory of input files,
// each formatted by Run's callback and compared against a sibling output
// file.
type Corpus struct {
	// Root is the corpus directory, relative to the directory of the Go
	// source file that calls [Corpus.Run].
	Root string

	// Refresh is the name of an environment variable holding a glob of test
	// names to regenerate instead of compare, e.g. "GOLDEN_REFRESH=*".
	Refresh string
}

// Case is one golden test case: an input file's contents plus whatever
// per-test configuration its sibling ".yaml" file carried, if any.
type Case struct {
	Name    string
	Input   string
	Options map[string]string
}

// Run enumerates every "*.graphql" file under c.Root, invokes format for
// each, and compares the result against the sibling ".graphql.out" file
// (refreshing it instead, when requested via c.Refresh).
func (c Corpus) Run(t *testing.T, format func(t *testing.T, tc Case) string) {
	root := c.Root
	t.Logf("golden: searching for cases in %q", root)

	var inputs []string
	err := filepath.Walk(root, func(p string, fi fs.FileInfo, err error) error {
		if err != nil || fi.IsDir() {
			return err
		}
		if strings.HasSuffix(p, ".graphql") {
			inputs = append(inputs, p)
		}
		return nil
	})
	if err != nil {
		t.Fatalf("golden: walking %q: %v", root, err)
	}

	var refreshGlob string
	if c.Refresh != "" {
		refreshGlob = os.Getenv(c.Refresh)
	}

	for _, path := range inputs {
		path := path
		name, _ := filepath.Rel(root, path)
		name = filepath.ToSlash(name)

		t.Run(name, func(t *testing.T) {
			src, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("golden: reading %q: %v", path, err)
			}

			tc := Case{Name: name, Input: string(src)}
			if opts, err := loadOptions(path + ".yaml"); err != nil {
				t.Fatalf("golden: reading options for %q: %v", path, err)
			} else {
				tc.Options = opts
			}

			got := runCatching(t, func() string { return format(t, tc) })

			outPath := path + ".out"
			refresh := refreshGlob != "" && matchGlob(t, refreshGlob, name)
			if refresh {
				if err := os.WriteFile(outPath, []byte(got), 0o600); err != nil {
					t.Fatalf("golden: writing %q: %v", outPath, err)
				}
				return
			}

			want, err := os.ReadFile(outPath)
			if err != nil && !errors.Is(err, os.ErrNotExist) {
				t.Fatalf("golden: reading %q: %v", outPath, err)
			}
			if diff := compareAndDiff(got, string(want)); diff != "" {
				t.Errorf("golden: mismatch for %q (set %s=%s to refresh):\n%s", name, c.Refresh, name, diff)
			}
		})
	}
}

func loadOptions(path string) (map[string]string, error) {
	bytes, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var opts map[string]string
	if err := yaml.Unmarshal(bytes, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func matchGlob(t *testing.T, glob, name string) bool {
	ok, err := doublestar.Match(glob, name)
	if err != nil {
		t.Fatalf("golden: invalid glob %q: %v", glob, err)
	}
	return ok
}

func compareAndDiff(got, want string) string {
	if got == want {
		return ""
	}
	diff, err := difflib.GetUnifiedDiffString(difflib.UnifiedDiff{
		A:        difflib.SplitLines(want),
		B:        difflib.SplitLines(got),
		FromFile: "want",
		ToFile:   "got",
		Context:  2,
	})
	if err != nil {
		return err.Error()
	}
	return diff
}

func runCatching(t *testing.T, f func() string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			t.Fatalf("golden: panic: %v\n%s", r, debug.Stack())
		}
	}()
	return f()
}
