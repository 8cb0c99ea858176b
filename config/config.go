// Package config implements the Configuration Resolver: it turns a flat map
// of option keys (global and dotted per-node-kind, e.g. "selectionSet.comma")
// into a [Config] that answers "what is the effective value of option X at
// node kind Y" in O(1), with the "inherit" sentinel always resolving against
// the global option rather than an enclosing node's effective value.
package config

import (
	"fmt"
	"strconv"
	"strings"
)

// Comma is the comma-insertion policy for a delimited list.
type Comma int

const (
	CommaAlways Comma = iota
	CommaNever
	CommaNoTrailing
	CommaOnlySingleLine
)

func (c Comma) String() string {
	switch c {
	case CommaAlways:
		return "always"
	case CommaNever:
		return "never"
	case CommaNoTrailing:
		return "noTrailing"
	case CommaOnlySingleLine:
		return "onlySingleLine"
	default:
		return fmt.Sprintf("Comma(%d)", int(c))
	}
}

func parseComma(s string) (Comma, bool) {
	switch s {
	case "always":
		return CommaAlways, true
	case "never":
		return CommaNever, true
	case "noTrailing":
		return CommaNoTrailing, true
	case "onlySingleLine":
		return CommaOnlySingleLine, true
	default:
		return 0, false
	}
}

// SingleLine is the policy deciding whether a list prefers to stay flat.
type SingleLine int

const (
	SingleLinePrefer SingleLine = iota
	SingleLineSmart
	SingleLineNever
)

func (s SingleLine) String() string {
	switch s {
	case SingleLinePrefer:
		return "prefer"
	case SingleLineSmart:
		return "smart"
	case SingleLineNever:
		return "never"
	default:
		return fmt.Sprintf("SingleLine(%d)", int(s))
	}
}

func parseSingleLine(s string) (SingleLine, bool) {
	switch s {
	case "prefer":
		return SingleLinePrefer, true
	case "smart":
		return SingleLineSmart, true
	case "never":
		return SingleLineNever, true
	default:
		return 0, false
	}
}

// LineBreak selects the line terminator the renderer emits.
type LineBreak int

const (
	LineBreakLF LineBreak = iota
	LineBreakCRLF
)

func (l LineBreak) String() string {
	if l == LineBreakCRLF {
		return "crlf"
	}
	return "lf"
}

// Sequence returns the literal line terminator bytes.
func (l LineBreak) Sequence() string {
	if l == LineBreakCRLF {
		return "\r\n"
	}
	return "\n"
}

func parseLineBreak(s string) (LineBreak, bool) {
	switch s {
	case "lf":
		return LineBreakLF, true
	case "crlf":
		return LineBreakCRLF, true
	default:
		return 0, false
	}
}

// Namespace is one of the per-node-kind key prefixes listed in §6.4.
type Namespace string

const (
	NsArguments            Namespace = "arguments"
	NsArgumentsDefinition  Namespace = "argumentsDefinition"
	NsDirectiveLocations   Namespace = "directiveLocations"
	NsDirectives           Namespace = "directives"
	NsEnumValuesDefinition Namespace = "enumValuesDefinition"
	NsFieldsDefinition     Namespace = "fieldsDefinition"
	NsImplementsInterfaces Namespace = "implementsInterfaces"
	NsInputFieldsDefinition Namespace = "inputFieldsDefinition"
	NsListValue            Namespace = "listValue"
	NsObjectValue          Namespace = "objectValue"
	NsSchemaDefinition     Namespace = "schemaDefinition"
	NsSchemaExtension      Namespace = "schemaExtension"
	NsSelectionSet         Namespace = "selectionSet"
	NsUnionMemberTypes     Namespace = "unionMemberTypes"
	NsVariableDefinitions  Namespace = "variableDefinitions"
)

// hardCommaNever and hardSingleLineNever hold the non-inherit defaults baked
// in per §6.4, applied
// before any user override and overridable by an explicit "inherit".
var hardCommaNever = map[Namespace]bool{
	NsDirectives:            true,
	NsEnumValuesDefinition:  true,
	NsFieldsDefinition:      true,
	NsInputFieldsDefinition: true,
	NsSchemaDefinition:      true,
	NsSchemaExtension:       true,
	NsSelectionSet:          true,
}

var hardSingleLineNever = map[Namespace]bool{
	NsEnumValuesDefinition:  true,
	NsFieldsDefinition:      true,
	NsInputFieldsDefinition: true,
	NsSchemaDefinition:      true,
	NsSchemaExtension:       true,
	NsSelectionSet:          true,
}

// scoped holds, per namespace, the raw override strings the user supplied
// (keyed by the bare option name, e.g. "comma", "singleLine"). A present key
// with value "inherit" is a deliberate restore-to-global, distinct from the
// key being entirely absent (which falls through to the hardcoded default
// table, then to global).
type scoped map[string]string

// Config is the fully resolved configuration record: the global option
// values plus every per-node-kind override the user supplied.
type Config struct {
	PrintWidth             uint32
	UseTabs                bool
	IndentWidth            uint32
	LineBreak              LineBreak
	Comma                  Comma
	SingleLine             SingleLine
	ParenSpacing           bool
	BracketSpacing         bool
	BraceSpacing           bool
	FormatComments         bool
	IgnoreCommentDirective string

	overrides map[Namespace]scoped
}

// Default returns the configuration with every documented default value and
// no per-kind overrides.
func Default() *Config {
	return &Config{
		PrintWidth:             80,
		UseTabs:                false,
		IndentWidth:            2,
		LineBreak:              LineBreakLF,
		Comma:                  CommaOnlySingleLine,
		SingleLine:             SingleLineSmart,
		ParenSpacing:           false,
		BracketSpacing:         true,
		BraceSpacing:           true,
		FormatComments:         false,
		IgnoreCommentDirective: "pretty-graphql-ignore",
		overrides:              map[Namespace]scoped{},
	}
}

// Error reports an invalid configuration value.
type Error struct {
	Key     string
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("config: %s: %s", e.Key, e.Message) }

// Resolve parses a flat option map — global keys like "printWidth" and
// dotted per-kind keys like "selectionSet.comma" — into a [Config]. It
// returns a [*Error] for any unknown enum variant or out-of-range numeric
// value, matching the Config error kind of §7.
func Resolve(raw map[string]string) (*Config, error) {
	c := Default()
	c.overrides = map[Namespace]scoped{}

	// Global keys first, so per-kind "inherit" resolution has something to
	// fall back to.
	for key, val := range raw {
		if strings.Contains(key, ".") {
			continue
		}
		if err := c.setGlobal(key, val); err != nil {
			return nil, err
		}
	}

	for key, val := range raw {
		ns, opt, ok := strings.Cut(key, ".")
		if !ok {
			continue
		}
		namespace := Namespace(ns)
		if !validNamespace(namespace) {
			return nil, &Error{Key: key, Message: fmt.Sprintf("unknown node kind namespace %q", ns)}
		}
		if val != "inherit" {
			if err := validateScopedValue(opt, val); err != nil {
				return nil, &Error{Key: key, Message: err.Error()}
			}
		}
		if c.overrides[namespace] == nil {
			c.overrides[namespace] = scoped{}
		}
		c.overrides[namespace][opt] = val
	}

	return c, nil
}

func validNamespace(ns Namespace) bool {
	switch ns {
	case NsArguments, NsArgumentsDefinition, NsDirectiveLocations, NsDirectives,
		NsEnumValuesDefinition, NsFieldsDefinition, NsImplementsInterfaces,
		NsInputFieldsDefinition, NsListValue, NsObjectValue, NsSchemaDefinition,
		NsSchemaExtension, NsSelectionSet, NsUnionMemberTypes, NsVariableDefinitions:
		return true
	default:
		return false
	}
}

func validateScopedValue(opt, val string) error {
	switch opt {
	case "comma":
		if _, ok := parseComma(val); !ok {
			return fmt.Errorf("unknown comma variant %q", val)
		}
	case "singleLine":
		if _, ok := parseSingleLine(val); !ok {
			return fmt.Errorf("unknown singleLine variant %q", val)
		}
	case "parenSpacing", "bracketSpacing", "braceSpacing", "formatComments":
		if _, err := strconv.ParseBool(val); err != nil {
			return fmt.Errorf("expected a boolean, found %q", val)
		}
	default:
		return fmt.Errorf("unknown option %q", opt)
	}
	return nil
}

func (c *Config) setGlobal(key, val string) error {
	switch key {
	case "printWidth":
		n, err := strconv.ParseUint(val, 10, 32)
		if err != nil || n == 0 {
			return &Error{Key: key, Message: "must be a positive integer"}
		}
		c.PrintWidth = uint32(n)
	case "useTabs":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return &Error{Key: key, Message: "expected a boolean"}
		}
		c.UseTabs = b
	case "indentWidth":
		n, err := strconv.ParseUint(val, 10, 32)
		if err != nil || n == 0 {
			return &Error{Key: key, Message: "must be a positive integer"}
		}
		c.IndentWidth = uint32(n)
	case "lineBreak":
		lb, ok := parseLineBreak(val)
		if !ok {
			return &Error{Key: key, Message: fmt.Sprintf("unknown lineBreak variant %q", val)}
		}
		c.LineBreak = lb
	case "comma":
		comma, ok := parseComma(val)
		if !ok {
			return &Error{Key: key, Message: fmt.Sprintf("unknown comma variant %q", val)}
		}
		c.Comma = comma
	case "singleLine":
		sl, ok := parseSingleLine(val)
		if !ok {
			return &Error{Key: key, Message: fmt.Sprintf("unknown singleLine variant %q", val)}
		}
		c.SingleLine = sl
	case "parenSpacing":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return &Error{Key: key, Message: "expected a boolean"}
		}
		c.ParenSpacing = b
	case "bracketSpacing":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return &Error{Key: key, Message: "expected a boolean"}
		}
		c.BracketSpacing = b
	case "braceSpacing":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return &Error{Key: key, Message: "expected a boolean"}
		}
		c.BraceSpacing = b
	case "formatComments":
		b, err := strconv.ParseBool(val)
		if err != nil {
			return &Error{Key: key, Message: "expected a boolean"}
		}
		c.FormatComments = b
	case "ignoreCommentDirective":
		c.IgnoreCommentDirective = val
	default:
		return &Error{Key: key, Message: "unknown option"}
	}
	return nil
}

func (c *Config) raw(ns Namespace, opt string) (string, bool) {
	s, ok := c.overrides[ns]
	if !ok {
		return "", false
	}
	v, ok := s[opt]
	return v, ok
}

// CommaFor returns the effective comma policy at the given namespace.
func (c *Config) CommaFor(ns Namespace) Comma {
	if v, ok := c.raw(ns, "comma"); ok {
		if v == "inherit" {
			return c.Comma
		}
		if parsed, ok := parseComma(v); ok {
			return parsed
		}
	}
	if hardCommaNever[ns] {
		return CommaNever
	}
	return c.Comma
}

// SingleLineFor returns the effective single-line policy at the given
// namespace.
func (c *Config) SingleLineFor(ns Namespace) SingleLine {
	if v, ok := c.raw(ns, "singleLine"); ok {
		if v == "inherit" {
			return c.SingleLine
		}
		if parsed, ok := parseSingleLine(v); ok {
			return parsed
		}
	}
	if hardSingleLineNever[ns] {
		return SingleLineNever
	}
	return c.SingleLine
}

func (c *Config) boolFor(ns Namespace, opt string, global bool) bool {
	if v, ok := c.raw(ns, opt); ok {
		if v == "inherit" {
			return global
		}
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return global
}

// ParenSpacingFor returns the effective paren-spacing toggle at ns.
func (c *Config) ParenSpacingFor(ns Namespace) bool {
	return c.boolFor(ns, "parenSpacing", c.ParenSpacing)
}

// BracketSpacingFor returns the effective bracket-spacing toggle at ns.
func (c *Config) BracketSpacingFor(ns Namespace) bool {
	return c.boolFor(ns, "bracketSpacing", c.BracketSpacing)
}

// BraceSpacingFor returns the effective brace-spacing toggle at ns.
func (c *Config) BraceSpacingFor(ns Namespace) bool {
	return c.boolFor(ns, "braceSpacing", c.BraceSpacing)
}

// FormatCommentsFor returns the effective comment-normalization toggle at ns.
func (c *Config) FormatCommentsFor(ns Namespace) bool {
	return c.boolFor(ns, "formatComments", c.FormatComments)
}
