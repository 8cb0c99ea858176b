package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultComma(t *testing.T) {
	c := Default()
	assert.Equal(t, CommaOnlySingleLine, c.Comma)
	assert.Equal(t, SingleLineSmart, c.SingleLine)
}

func TestResolveHardcodedDefaults(t *testing.T) {
	c, err := Resolve(nil)
	require.NoError(t, err)
	assert.Equal(t, CommaNever, c.CommaFor(NsSelectionSet))
	assert.Equal(t, SingleLineNever, c.SingleLineFor(NsSelectionSet))
	// variableDefinitions has no hardcoded default: falls through to global.
	assert.Equal(t, CommaOnlySingleLine, c.CommaFor(NsVariableDefinitions))
	assert.Equal(t, SingleLineSmart, c.SingleLineFor(NsVariableDefinitions))
}

func TestResolveInheritRestoresGlobalNotHardcoded(t *testing.T) {
	c, err := Resolve(map[string]string{
		"comma":             "always",
		"selectionSet.comma": "inherit",
	})
	require.NoError(t, err)
	// "inherit" always falls back to the global value, never to the
	// hardcoded per-kind default it would otherwise have received.
	assert.Equal(t, CommaAlways, c.CommaFor(NsSelectionSet))
}

func TestResolveUserOverrideWinsOverHardcodedDefault(t *testing.T) {
	c, err := Resolve(map[string]string{"selectionSet.comma": "noTrailing"})
	require.NoError(t, err)
	assert.Equal(t, CommaNoTrailing, c.CommaFor(NsSelectionSet))
}

func TestResolveRejectsUnknownNamespace(t *testing.T) {
	_, err := Resolve(map[string]string{"bogusKind.comma": "always"})
	require.Error(t, err)
	var ce *Error
	require.ErrorAs(t, err, &ce)
}

func TestResolveRejectsUnknownEnumVariant(t *testing.T) {
	_, err := Resolve(map[string]string{"comma": "sometimes"})
	require.Error(t, err)
}

func TestResolveRejectsZeroPrintWidth(t *testing.T) {
	_, err := Resolve(map[string]string{"printWidth": "0"})
	require.Error(t, err)
}

func TestLineBreakSequence(t *testing.T) {
	c, err := Resolve(map[string]string{"lineBreak": "crlf"})
	require.NoError(t, err)
	assert.Equal(t, "\r\n", c.LineBreak.Sequence())
}

func TestBoolForInherit(t *testing.T) {
	c, err := Resolve(map[string]string{
		"parenSpacing":          "false",
		"arguments.parenSpacing": "inherit",
	})
	require.NoError(t, err)
	assert.False(t, c.ParenSpacingFor(NsArguments))
}
