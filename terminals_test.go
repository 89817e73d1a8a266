package peglr_test

import (
	"testing"

	"github.com/parsekit/peglr"
	"github.com/stretchr/testify/require"
)

func TestTerminalMatchesExactSymbol(t *testing.T) {
	out := parseRunes(t, peglr.Terminal[rune]('a'), "a", peglr.DefaultConfig())
	require.True(t, out.OK)

	out = parseRunes(t, peglr.Terminal[rune]('a'), "b", peglr.Config{RequireFullInput: false})
	require.False(t, out.OK)
}

func TestTerminalRangeBounds(t *testing.T) {
	g := peglr.TerminalRange[rune]('0', '9')
	require.True(t, parseRunes(t, g, "5", peglr.DefaultConfig()).OK)
	require.False(t, parseRunes(t, g, "a", peglr.Config{RequireFullInput: false}).OK)
}

func TestTerminalSetMembership(t *testing.T) {
	g := peglr.TerminalSet[rune]('+', '-', '*', '/')
	require.True(t, parseRunes(t, g, "*", peglr.DefaultConfig()).OK)
	require.False(t, parseRunes(t, g, "%", peglr.Config{RequireFullInput: false}).OK)
}

func TestTerminalStringAllOrNothing(t *testing.T) {
	g := peglr.TerminalString[rune]('f', 'o', 'o')
	out := parseRunes(t, g, "fo", peglr.Config{RequireFullInput: false})
	require.False(t, out.OK)
	require.Equal(t, 2, out.Furthest.Offset, "the mismatch at offset 2 is the furthest failure, and the partial prefix is not consumed as a match")
}

func TestTrueAndFalse(t *testing.T) {
	require.True(t, parseRunes(t, peglr.True[rune](), "", peglr.DefaultConfig()).OK)
	require.False(t, parseRunes(t, peglr.False[rune](), "", peglr.Config{RequireFullInput: false}).OK)
}

func TestTerminalStringSetLongestMatch(t *testing.T) {
	g := peglr.TerminalStringSet[rune]([]rune("in"), []rune("instanceof"), []rune("int"))
	out := parseRunes(t, g, "instanceof", peglr.DefaultConfig())
	require.True(t, out.OK)
	require.Equal(t, 10, out.End.Offset)

	out = parseRunes(t, g, "interface", peglr.Config{RequireFullInput: false})
	require.True(t, out.OK)
	require.Equal(t, 3, out.End.Offset, "falls back to the longest candidate that IS a prefix, not the longest attempted")
}

func TestTerminalStringSetNoMatch(t *testing.T) {
	g := peglr.TerminalStringSet[rune]([]rune("in"), []rune("int"))
	out := parseRunes(t, g, "xyz", peglr.Config{RequireFullInput: false})
	require.False(t, out.OK)
}
