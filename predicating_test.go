package peglr_test

import (
	"testing"

	"github.com/parsekit/peglr"
	"github.com/stretchr/testify/require"
)

func TestAndPredicateConsumesNothing(t *testing.T) {
	g := peglr.Seq(peglr.And(peglr.Terminal[rune]('a')), peglr.Terminal[rune]('a'))
	out := parseRunes(t, g, "a", peglr.DefaultConfig())
	require.True(t, out.OK)
}

func TestAndPredicateDoesNotCapture(t *testing.T) {
	g := peglr.Seq(
		peglr.And(peglr.Mark[rune]("peek", peglr.Terminal[rune]('a'))),
		peglr.Mark[rune]("real", peglr.Terminal[rune]('a')),
	)
	out := parseRunes(t, g, "a", peglr.DefaultConfig())
	require.True(t, out.OK)
	require.Len(t, out.Matches, 1)
	require.Equal(t, "real", out.Matches[0].ID)
}

func TestNotPredicateFailsWhenInnerSucceeds(t *testing.T) {
	g := peglr.Not(peglr.Terminal[rune]('a'))
	out := parseRunes(t, g, "a", peglr.Config{RequireFullInput: false})
	require.False(t, out.OK)
}

func TestNotPredicateSucceedsWithoutConsumingWhenInnerFails(t *testing.T) {
	g := peglr.Seq(peglr.Not(peglr.Terminal[rune]('b')), peglr.Terminal[rune]('a'))
	out := parseRunes(t, g, "a", peglr.DefaultConfig())
	require.True(t, out.OK)
}
