package peglr

// Underlying types implementing Pattern for the composite combinators.
type (
	patternSequence[S Ordered] struct {
		pats []Pattern[S]
	}

	patternChoice[S Ordered] struct {
		pats []Pattern[S]
	}

	// patternRepeat implements both ZeroOrMore (min=0) and OneOrMore
	// (min=1): repeat pat, guarding against an infinite loop by treating a
	// zero-advance success as the final iteration.
	patternRepeat[S Ordered] struct {
		pat Pattern[S]
		min int
	}

	patternOptional[S Ordered] struct {
		pat Pattern[S]
	}
)

// Seq matches every pattern in order; it fails only if some pattern in the
// sequence fails, restoring position and the match log to the pre-call
// snapshot.
func Seq[S Ordered](pats ...Expr[S]) Expr[S] {
	if len(pats) == 0 {
		return True[S]()
	}
	nodes := make([]Pattern[S], len(pats))
	for i, p := range pats {
		nodes[i] = p.node
	}
	return wrap[S](&patternSequence[S]{pats: nodes})
}

// Choice tries every pattern in order, succeeding with the first that
// matches; it fails only if none of them do.
func Choice[S Ordered](pats ...Expr[S]) Expr[S] {
	if len(pats) == 0 {
		return False[S]()
	}
	nodes := make([]Pattern[S], len(pats))
	for i, p := range pats {
		nodes[i] = p.node
	}
	return wrap[S](&patternChoice[S]{pats: nodes})
}

// ZeroOrMore matches pat repeated any number of times; it always succeeds.
func ZeroOrMore[S Ordered](pat Expr[S]) Expr[S] {
	return wrap[S](&patternRepeat[S]{pat: pat.node, min: 0})
}

// OneOrMore matches pat repeated at least once.
func OneOrMore[S Ordered](pat Expr[S]) Expr[S] {
	return wrap[S](&patternRepeat[S]{pat: pat.node, min: 1})
}

// Optional matches pat zero or one times; it always succeeds.
func Optional[S Ordered](pat Expr[S]) Expr[S] {
	return wrap[S](&patternOptional[S]{pat: pat.node})
}

func (pat *patternSequence[S]) match(ctx *Context[S]) bool {
	cp := ctx.save()
	for _, child := range pat.pats {
		if !child.match(ctx) {
			ctx.restore(cp)
			return false
		}
	}
	return true
}

func (pat *patternChoice[S]) match(ctx *Context[S]) bool {
	cp := ctx.save()
	for _, child := range pat.pats {
		// Each alternative gets a fresh read on whether it reaches a
		// recursion point: an earlier sibling resolving its own
		// Continuation entry must not leak into this one's attempt.
		ctx.resetContinuationFlags()
		if child.match(ctx) {
			return true
		}
		ctx.restore(cp)
	}
	return false
}

func (pat *patternRepeat[S]) match(ctx *Context[S]) bool {
	count := 0
	for {
		cp := ctx.save()
		if !pat.pat.match(ctx) {
			ctx.restore(cp)
			break
		}
		count++
		if ctx.current() == cp.position {
			// zero-advance success: treat as the final iteration to
			// avoid looping forever.
			break
		}
	}
	return count >= pat.min
}

func (pat *patternOptional[S]) match(ctx *Context[S]) bool {
	cp := ctx.save()
	if !pat.pat.match(ctx) {
		ctx.restore(cp)
	}
	return true
}
