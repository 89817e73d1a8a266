package peglr

// Context is the mutable state threaded through every combinator of a
// single parse: current position, match log, furthest-failure position and
// the left-recursion memo. It is exclusively owned by the Driver for the
// duration of one parse and passed to combinators by pointer.
type Context[S Ordered] struct {
	input    InputView[S]
	position Position
	matches  []Match
	furthest Position

	lrMemo map[lrKey[S]]*lrEntry
}

// checkpoint is the atomicity primitive every combinator uses: on failure,
// restore(checkpoint()) undoes all position and match-log effects of the
// failed attempt.
type checkpoint struct {
	position Position
	matchLen int
}

func newContext[S Ordered](input InputView[S], preallocateLog int) *Context[S] {
	return &Context[S]{
		input:    input,
		position: input.Begin(),
		matches:  make([]Match, 0, preallocateLog),
		furthest: input.Begin(),
		lrMemo:   make(map[lrKey[S]]*lrEntry),
	}
}

func (ctx *Context[S]) current() Position {
	return ctx.position
}

func (ctx *Context[S]) atEnd() bool {
	return !ctx.position.Before(ctx.input.End())
}

func (ctx *Context[S]) peek() S {
	return ctx.input.At(ctx.position)
}

// advance consumes the symbol under the cursor and returns the new position.
func (ctx *Context[S]) advance() Position {
	ctx.position = ctx.input.Next(ctx.position)
	return ctx.position
}

func (ctx *Context[S]) save() checkpoint {
	return checkpoint{position: ctx.position, matchLen: len(ctx.matches)}
}

// restore rewinds position and the match log to a prior checkpoint.
// furthest is never rewound -- it is monotonically non-decreasing.
func (ctx *Context[S]) restore(cp checkpoint) {
	ctx.position = cp.position
	ctx.matches = ctx.matches[:cp.matchLen]
}

func (ctx *Context[S]) appendMatch(id any, begin, end Position, childCount int) int {
	ctx.matches = append(ctx.matches, Match{ID: id, Begin: begin, End: end, ChildCount: childCount})
	return len(ctx.matches)
}

func (ctx *Context[S]) truncateMatches(n int) {
	ctx.matches = ctx.matches[:n]
}

func (ctx *Context[S]) recordFailure(pos Position) {
	ctx.furthest = maxPosition(ctx.furthest, pos)
}

// resetContinuationFlags clears continuationResolved on every left-recursion
// entry currently in the Continuation state. Choice calls this before each
// alternative's attempt (section 4.2's ordered-choice interaction), so that
// whether a given alternative actually reached a recursion point is known
// per-alternative rather than leaking a stale true from an earlier sibling.
func (ctx *Context[S]) resetContinuationFlags() {
	for _, entry := range ctx.lrMemo {
		if entry.state == lrContinuation {
			entry.continuationResolved = false
		}
	}
}

// snapshotMatches copies the tail of the log from index from onward, used by
// the rule dispatcher to remember the best grow iteration's matches across
// the next seed-and-compare attempt.
func (ctx *Context[S]) snapshotMatches(from int) []Match {
	tail := ctx.matches[from:]
	snap := make([]Match, len(tail))
	copy(snap, tail)
	return snap
}

// replaceTail truncates the log to from and appends snap in its place.
func (ctx *Context[S]) replaceTail(from int, snap []Match) {
	ctx.matches = append(ctx.matches[:from], snap...)
}
