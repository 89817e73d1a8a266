package peglr

import "fmt"

// Position is an offset into an InputView together with the line/column it
// was found at. Ordering is by Offset alone; Line/Column are bookkeeping
// supplied by the InputView for diagnostics and are not consulted by the
// core engine itself.
type Position struct {
	Offset int
	Line   int
	Column int
}

// Before reports whether pos comes strictly before other.
func (pos Position) Before(other Position) bool {
	return pos.Offset < other.Offset
}

func (pos Position) String() string {
	return fmt.Sprintf("%d:%d+%d", pos.Line+1, pos.Column+1, pos.Offset)
}

func maxPosition(a, b Position) Position {
	if b.Offset > a.Offset {
		return b
	}
	return a
}
