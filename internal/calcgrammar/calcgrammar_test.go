package calcgrammar_test

import (
	"testing"

	"github.com/parsekit/peglr"
	"github.com/parsekit/peglr/internal/calcgrammar"
	"github.com/stretchr/testify/require"
)

func eval(t *testing.T, text string) int {
	t.Helper()
	g := calcgrammar.New()
	out := g.Parse(text, peglr.DefaultConfig())
	require.True(t, out.OK, "expected %q to parse", text)
	tree := calcgrammar.Reconstruct(out.Matches)
	return calcgrammar.Eval(text, tree)
}

func TestEvalArithmetic(t *testing.T) {
	cases := map[string]int{
		"1+2":     3,
		"1+2+3":   6,
		"2*3+4":   10,
		"2+3*4":   14,
		"(1+2)*3": 9,
		"((1))":   1,
		"12345":   12345,
		"10-4/2":  8,
	}
	for text, want := range cases {
		require.Equal(t, want, eval(t, text), "input %q", text)
	}
}

func TestIncompleteInputFails(t *testing.T) {
	g := calcgrammar.New()
	out := g.Parse("1+", peglr.DefaultConfig())
	require.False(t, out.OK)
}
