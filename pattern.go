package peglr

// Pattern is the combinator tree representation. The match method is
// unexported, sealing the interface to this package -- a Pattern is always
// produced by one of the constructors or fluent builder methods below.
type Pattern[S Ordered] interface {
	match(ctx *Context[S]) bool
}

// Expr wraps a Pattern so it can be composed with fluent builder methods,
// for languages (Go among them) that lack operator overloading. Every
// constructor in this package (Terminal, Seq, Choice, ...) returns an Expr;
// Expr itself satisfies Pattern so it can be passed anywhere a Pattern is
// expected.
type Expr[S Ordered] struct {
	node Pattern[S]
}

func wrap[S Ordered](p Pattern[S]) Expr[S] {
	return Expr[S]{node: p}
}

func (e Expr[S]) match(ctx *Context[S]) bool {
	return e.node.match(ctx)
}

// Then builds a Sequence of e followed by other, flattening runs of Then
// calls into a single Sequence node the way Seq(a, b, c) would.
func (e Expr[S]) Then(other Expr[S]) Expr[S] {
	if seq, ok := e.node.(*patternSequence[S]); ok {
		pats := append(append([]Pattern[S]{}, seq.pats...), other.node)
		return wrap[S](&patternSequence[S]{pats: pats})
	}
	return wrap[S](&patternSequence[S]{pats: []Pattern[S]{e.node, other.node}})
}

// Or builds an ordered Choice of e then other, flattening the same way.
func (e Expr[S]) Or(other Expr[S]) Expr[S] {
	if alt, ok := e.node.(*patternChoice[S]); ok {
		pats := append(append([]Pattern[S]{}, alt.pats...), other.node)
		return wrap[S](&patternChoice[S]{pats: pats})
	}
	return wrap[S](&patternChoice[S]{pats: []Pattern[S]{e.node, other.node}})
}

// Star matches e zero or more times (ZeroOrMore).
func (e Expr[S]) Star() Expr[S] {
	return wrap[S](&patternRepeat[S]{pat: e.node, min: 0})
}

// Plus matches e one or more times (OneOrMore).
func (e Expr[S]) Plus() Expr[S] {
	return wrap[S](&patternRepeat[S]{pat: e.node, min: 1})
}

// Opt matches e zero or one times (Optional).
func (e Expr[S]) Opt() Expr[S] {
	return wrap[S](&patternOptional[S]{pat: e.node})
}

// And is the and-predicate: e must match, but no input is consumed.
func (e Expr[S]) And() Expr[S] {
	return wrap[S](&patternAnd[S]{pat: e.node})
}

// Not is the not-predicate: e must fail, and no input is consumed.
func (e Expr[S]) Not() Expr[S] {
	return wrap[S](&patternNot[S]{pat: e.node})
}

// Mark tags a successful match of e with id, appending a Match record.
func (e Expr[S]) Mark(id any) Expr[S] {
	return wrap[S](&patternMark[S]{pat: e.node, id: id})
}
