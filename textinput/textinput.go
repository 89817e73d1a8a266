// Package textinput implements peglr.InputView[rune] over a UTF-8 string,
// with line/column bookkeeping adapted from the same binary-search
// line-ending cache the teacher library used for its Position type.
package textinput

import (
	"unicode/utf8"

	"github.com/parsekit/peglr"
)

// NewlinePredicate decides whether a rune counts as a line break for
// Line/Column bookkeeping. The default, DefaultNewline, treats '\n' and '\r'
// as line breaks, the same pair the teacher library's positionCalculator
// special-cased.
type NewlinePredicate func(r rune) bool

// DefaultNewline is the default newline predicate: '\n' or '\r'. A lone '\r'
// is a line break (old Mac convention); a "\r\n" pair is not double-counted,
// see cacheUpTo.
func DefaultNewline(r rune) bool { return r == '\n' || r == '\r' }

// Input is a peglr.InputView[rune] over a string.
type Input struct {
	text    string
	offsets []int // byte offset of the start of rune i
	newline NewlinePredicate

	cached int   // rune index line/column has been computed up to
	lnends []int // rune indexes immediately following each line ending
}

// New builds an Input over text using the default newline predicate.
func New(text string) *Input {
	return NewWithNewline(text, DefaultNewline)
}

// NewWithNewline builds an Input over text using a custom newline
// predicate, for callers whose line convention differs from DefaultNewline
// (for example '\n' alone). A '\r' immediately followed by '\n' is never
// counted as a line ending of its own, whatever the predicate.
func NewWithNewline(text string, newline NewlinePredicate) *Input {
	offsets := make([]int, 0, len(text)+1)
	for i := range text {
		offsets = append(offsets, i)
	}
	offsets = append(offsets, len(text))
	return &Input{text: text, offsets: offsets, newline: newline}
}

// Begin implements peglr.InputView.
func (in *Input) Begin() peglr.Position {
	return in.position(0)
}

// End implements peglr.InputView.
func (in *Input) End() peglr.Position {
	return in.position(len(in.offsets) - 1)
}

// At implements peglr.InputView.
func (in *Input) At(pos peglr.Position) rune {
	r, _ := utf8.DecodeRuneInString(in.text[in.offsets[pos.Offset]:])
	return r
}

// Next implements peglr.InputView.
func (in *Input) Next(pos peglr.Position) peglr.Position {
	return in.position(pos.Offset + 1)
}

// Text returns the substring spanning [begin, end).
func (in *Input) Text(begin, end peglr.Position) string {
	return in.text[in.offsets[begin.Offset]:in.offsets[end.Offset]]
}

func (in *Input) position(runeIndex int) peglr.Position {
	line, lineStart := in.lineOf(runeIndex)
	return peglr.Position{Offset: runeIndex, Line: line, Column: runeIndex - lineStart}
}

func (in *Input) lineOf(runeIndex int) (line, lineStart int) {
	in.cacheUpTo(runeIndex)
	if len(in.lnends) == 0 {
		return 0, 0
	}
	i, j := 0, len(in.lnends)
	for i < j {
		m := i + (j-i)/2
		if runeIndex > in.lnends[m] {
			i = m + 1
		} else if runeIndex < in.lnends[m] {
			j = m
		} else {
			return m + 1, runeIndex
		}
	}
	if i == 0 {
		return 0, 0
	}
	return i, in.lnends[i-1]
}

func (in *Input) cacheUpTo(runeIndex int) {
	for ; in.cached < runeIndex && in.cached < len(in.offsets)-1; in.cached++ {
		r, _ := utf8.DecodeRuneInString(in.text[in.offsets[in.cached]:])
		if !in.newline(r) {
			continue
		}
		if r == '\r' && in.runeAt(in.cached+1) == '\n' {
			continue // "\r\n" counts once, at the "\n"
		}
		in.lnends = append(in.lnends, in.cached+1)
	}
}

// runeAt returns the rune at rune index i, or utf8.RuneError if i is out of
// range (including the past-the-end sentinel offset).
func (in *Input) runeAt(i int) rune {
	if i < 0 || i >= len(in.offsets)-1 {
		return utf8.RuneError
	}
	r, _ := utf8.DecodeRuneInString(in.text[in.offsets[i]:])
	return r
}
