package peglr

// Underlying types implementing the lookahead predicates. Neither consumes
// input nor, per the combinator contract table, appends matches -- any
// Match combinator nested inside a predicate has its effects discarded
// along with everything else on failure, and discarded deliberately on
// success too (predicates never keep what they look at).
type (
	patternAnd[S Ordered] struct {
		pat Pattern[S]
	}

	patternNot[S Ordered] struct {
		pat Pattern[S]
	}
)

// And is the and-predicate: pat must succeed, but no input is consumed and
// no matches are kept.
func And[S Ordered](pat Expr[S]) Expr[S] {
	return wrap[S](&patternAnd[S]{pat: pat.node})
}

// Not is the not-predicate: pat must fail, consuming no input.
func Not[S Ordered](pat Expr[S]) Expr[S] {
	return wrap[S](&patternNot[S]{pat: pat.node})
}

func (pat *patternAnd[S]) match(ctx *Context[S]) bool {
	cp := ctx.save()
	ok := pat.pat.match(ctx)
	ctx.restore(cp)
	return ok
}

func (pat *patternNot[S]) match(ctx *Context[S]) bool {
	cp := ctx.save()
	ok := pat.pat.match(ctx)
	ctx.restore(cp)
	if ok {
		ctx.recordFailure(cp.position)
		return false
	}
	return true
}
