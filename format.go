// Package prettygraphql formats GraphQL source text: it parses a document,
// resolves a flat option map into a [config.Config], and renders a layout
// that wraps at the configured print width while preserving comments and
// blank lines. See [FormatText] and [PrintTree].
package prettygraphql

import (
	"strings"

	"github.com/g-plane/pretty-graphql/ast"
	"github.com/g-plane/pretty-graphql/config"
	"github.com/g-plane/pretty-graphql/dom"
	"github.com/g-plane/pretty-graphql/printer"
)

// ErrorKind distinguishes the two user-visible failure modes of
// [FormatText], per spec.md §7.
type ErrorKind int

const (
	// ErrorKindSyntax means the parser reported at least one diagnostic; no
	// output is produced.
	ErrorKindSyntax ErrorKind = iota
	// ErrorKindConfig means an option key or value in the input map was
	// invalid.
	ErrorKindConfig
)

func (k ErrorKind) String() string {
	if k == ErrorKindConfig {
		return "config"
	}
	return "syntax"
}

// Error is returned by [FormatText] when formatting could not proceed.
type Error struct {
	Kind ErrorKind
	// SyntaxErrors holds the parser's diagnostics when Kind is
	// [ErrorKindSyntax].
	SyntaxErrors []*ast.Error
	// ConfigError holds the offending key and message when Kind is
	// [ErrorKindConfig].
	ConfigError *config.Error
}

func (e *Error) Error() string {
	switch e.Kind {
	case ErrorKindConfig:
		return e.ConfigError.Error()
	default:
		var b strings.Builder
		for i, se := range e.SyntaxErrors {
			if i > 0 {
				b.WriteByte('\n')
			}
			b.WriteString(se.Error())
		}
		return b.String()
	}
}

// FormatText parses source as a GraphQL document and reformats it per
// options, a flat map of global keys (e.g. "printWidth") and dotted
// per-node-kind keys (e.g. "selectionSet.comma"). It implements spec.md
// §4.6's format_text: parse, resolve configuration, build the print
// document, render, and ensure exactly one trailing line break.
func FormatText(source string, options map[string]string) (string, error) {
	doc, errs := ast.Parse(source)
	if len(errs) > 0 {
		return "", &Error{Kind: ErrorKindSyntax, SyntaxErrors: errs}
	}

	cfg, err := config.Resolve(options)
	if err != nil {
		return "", &Error{Kind: ErrorKindConfig, ConfigError: err.(*config.Error)}
	}

	return render(doc, cfg), nil
}

// PrintTree renders an already-parsed document per options. Unlike
// [FormatText] it cannot fail on malformed source (none is reparsed), but it
// can still fail on an invalid option value.
func PrintTree(doc *ast.Node, options map[string]string) (string, error) {
	cfg, err := config.Resolve(options)
	if err != nil {
		return "", &Error{Kind: ErrorKindConfig, ConfigError: err.(*config.Error)}
	}
	return render(doc, cfg), nil
}

func render(doc *ast.Node, cfg *config.Config) string {
	root := printer.FormatDoc(doc, cfg)
	out := dom.Render(root, dom.Options{
		PrintWidth:  cfg.PrintWidth,
		UseTabs:     cfg.UseTabs,
		IndentWidth: cfg.IndentWidth,
		NewLine:     cfg.LineBreak.Sequence(),
	})
	out = strings.TrimRight(out, "\r\n")
	return out + cfg.LineBreak.Sequence()
}
