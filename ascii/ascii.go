// Package ascii provides reusable rune-terminal patterns, the same kind of
// convenience the teacher library shipped as its pegutil subpackage
// (Digit/Letter/Integer helpers built from R/S), generalized onto peglr's
// TerminalRange/TerminalSet/Choice combinators.
package ascii

import "github.com/parsekit/peglr"

var (
	// Digit matches a single '0'-'9'.
	Digit = peglr.TerminalRange[rune]('0', '9')

	// Lower matches a single 'a'-'z'.
	Lower = peglr.TerminalRange[rune]('a', 'z')

	// Upper matches a single 'A'-'Z'.
	Upper = peglr.TerminalRange[rune]('A', 'Z')

	// Letter matches a single letter of either case.
	Letter = Lower.Or(Upper)

	// LetterOrDigit matches a single letter or digit.
	LetterOrDigit = Letter.Or(Digit)

	// Underscore matches a literal '_'.
	Underscore = peglr.Terminal[rune]('_')

	// IdentifierHead matches the first symbol of a C-style identifier.
	IdentifierHead = Letter.Or(Underscore)

	// IdentifierTail matches any subsequent symbol of a C-style
	// identifier.
	IdentifierTail = LetterOrDigit.Or(Underscore)

	// Identifier matches a whole C-style identifier: letter-or-underscore
	// followed by zero or more letter/digit/underscore.
	Identifier = IdentifierHead.Then(IdentifierTail.Star())

	// Space matches a single ASCII space, tab, CR or LF.
	Space = peglr.TerminalSet[rune](' ', '\t', '\r', '\n')

	// Spaces matches one or more ASCII whitespace symbols.
	Spaces = Space.Plus()

	// OptionalSpaces matches zero or more ASCII whitespace symbols.
	OptionalSpaces = Space.Star()

	// DecimalUint matches one or more decimal digits.
	DecimalUint = Digit.Plus()
)
