// Package sliceinput implements peglr.InputView over an in-memory slice of
// arbitrary ordered symbols, for grammars over token streams rather than
// text. Line/Column are not meaningful here and are always zero; use
// textinput for text.
package sliceinput

import "github.com/parsekit/peglr"

// Input is a peglr.InputView[S] over a slice.
type Input[S peglr.Ordered] struct {
	symbols []S
}

// New wraps symbols as an InputView. symbols is not copied; callers must
// not mutate it during a parse.
func New[S peglr.Ordered](symbols []S) *Input[S] {
	return &Input[S]{symbols: symbols}
}

func (in *Input[S]) Begin() peglr.Position {
	return peglr.Position{Offset: 0}
}

func (in *Input[S]) End() peglr.Position {
	return peglr.Position{Offset: len(in.symbols)}
}

func (in *Input[S]) At(pos peglr.Position) S {
	return in.symbols[pos.Offset]
}

func (in *Input[S]) Next(pos peglr.Position) peglr.Position {
	return peglr.Position{Offset: pos.Offset + 1}
}
