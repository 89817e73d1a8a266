package sliceinput_test

import (
	"testing"

	"github.com/parsekit/peglr"
	"github.com/parsekit/peglr/sliceinput"
	"github.com/stretchr/testify/require"
)

type tokenKind int

const (
	tokNum tokenKind = iota
	tokPlus
)

func TestSliceInputOverTokenKinds(t *testing.T) {
	toks := []tokenKind{tokNum, tokPlus, tokNum}
	in := sliceinput.New(toks)

	require.Equal(t, peglr.Position{Offset: 0}, in.Begin())
	require.Equal(t, peglr.Position{Offset: 3}, in.End())
	require.Equal(t, tokNum, in.At(in.Begin()))
	require.Equal(t, tokPlus, in.At(in.Next(in.Begin())))
}

func TestSliceInputParsesWithEngine(t *testing.T) {
	toks := []tokenKind{tokNum, tokPlus, tokNum}
	in := sliceinput.New(toks)

	g := peglr.Seq(
		peglr.Terminal(tokNum),
		peglr.Terminal(tokPlus),
		peglr.Terminal(tokNum),
	)
	out := peglr.Parse[tokenKind](g, in, peglr.DefaultConfig())
	require.True(t, out.OK)
	require.Equal(t, 3, out.End.Offset)
}
