package ascii_test

import (
	"testing"

	"github.com/parsekit/peglr"
	"github.com/parsekit/peglr/ascii"
	"github.com/parsekit/peglr/sliceinput"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, g peglr.Expr[rune], text string) peglr.Outcome {
	t.Helper()
	return peglr.Parse[rune](g, sliceinput.New([]rune(text)), peglr.DefaultConfig())
}

func TestIdentifier(t *testing.T) {
	require.True(t, parse(t, ascii.Identifier, "_foo123").OK)
	require.True(t, parse(t, ascii.Identifier, "Bar").OK)

	out := peglr.Parse[rune](ascii.Identifier, sliceinput.New([]rune("1abc")), peglr.Config{RequireFullInput: false})
	require.False(t, out.OK, "an identifier cannot start with a digit")
}

func TestDecimalUint(t *testing.T) {
	require.True(t, parse(t, ascii.DecimalUint, "0").OK)
	require.True(t, parse(t, ascii.DecimalUint, "31415").OK)

	out := peglr.Parse[rune](ascii.DecimalUint, sliceinput.New([]rune("")), peglr.Config{RequireFullInput: false})
	require.False(t, out.OK)
}

func TestSpaces(t *testing.T) {
	require.True(t, parse(t, ascii.Spaces, "   \t\n").OK)
	require.True(t, parse(t, ascii.OptionalSpaces, "").OK)
}
