// Package calcgrammar builds the four-function calculator grammar used by
// the spec's worked left-recursion examples ("1+2", "(1+2)*3", "1+2+3", ...)
// and evaluates it, since the engine itself deliberately stops at a flat
// match log and builds no AST (spec §1 Non-goals).
package calcgrammar

import (
	"strconv"

	"github.com/parsekit/peglr"
	"github.com/parsekit/peglr/ascii"
	"github.com/parsekit/peglr/textinput"
)

// Match tag ids, kept as plain strings.
const (
	TagDigit  = "digit"
	TagFactor = "factor"
	TagTerm   = "term"
	TagExpr   = "expr"
)

// Grammar is expr <- expr ('+'|'-') term | term
//
//	term   <- term ('*'|'/') factor | factor
//	factor <- digit+ | '(' expr ')'
type Grammar struct {
	Expr, Term, Factor *peglr.Rule[rune]
}

// New builds a fresh Grammar. Rules are stateless once defined, but the
// left-recursion memo inside a Context is per-parse, so a single Grammar
// value is safe to reuse across many parses (unlike the Context it drives).
func New() *Grammar {
	g := &Grammar{
		Expr:   peglr.NewRule[rune]("expr"),
		Term:   peglr.NewRule[rune]("term"),
		Factor: peglr.NewRule[rune]("factor"),
	}

	digit := ascii.Digit.Mark(TagDigit)

	g.Factor.Define(peglr.Choice(
		peglr.OneOrMore(digit),
		peglr.Seq(peglr.Terminal[rune]('('), g.Expr.Ref(), peglr.Terminal[rune](')')),
	).Mark(TagFactor))

	g.Term.Define(peglr.Choice(
		peglr.Seq(g.Term.Ref(), peglr.Terminal[rune]('*'), g.Factor.Ref()),
		peglr.Seq(g.Term.Ref(), peglr.Terminal[rune]('/'), g.Factor.Ref()),
		g.Factor.Ref(),
	).Mark(TagTerm))

	g.Expr.Define(peglr.Choice(
		peglr.Seq(g.Expr.Ref(), peglr.Terminal[rune]('+'), g.Term.Ref()),
		peglr.Seq(g.Expr.Ref(), peglr.Terminal[rune]('-'), g.Term.Ref()),
		g.Term.Ref(),
	).Mark(TagExpr))

	return g
}

// Parse runs the grammar over text with the full-input requirement cfg
// carries, and returns the raw Outcome for callers that want the match log
// directly (e.g. for tracing).
func (g *Grammar) Parse(text string, cfg peglr.Config) peglr.Outcome {
	return peglr.Parse[rune](g.Expr.Ref(), textinput.New(text), cfg)
}

// Node is a reconstructed parse tree node, built from the flat match log the
// engine returns. Reconstruction lives here, one layer above the engine,
// exactly as spec §1 requires ("tree reconstruction is not in scope").
type Node struct {
	Match    peglr.Match
	Children []Node
}

// Reconstruct rebuilds the tree rooted at the last match in the log by
// walking right-to-left, each node covering the ChildCount preceding
// entries that are its descendants, per the documented encoding of
// peglr.Match.ChildCount.
func Reconstruct(matches []peglr.Match) Node {
	if len(matches) == 0 {
		return Node{}
	}
	n, _ := reconstructAt(matches, len(matches)-1)
	return n
}

func reconstructAt(matches []peglr.Match, i int) (Node, int) {
	m := matches[i]
	var children []Node
	consumed := 0
	j := i - 1
	for consumed < m.ChildCount {
		child, slots := reconstructAt(matches, j)
		children = append(children, child)
		consumed += 1 + slots
		j -= 1 + slots
	}
	for l, r := 0, len(children)-1; l < r; l, r = l+1, r-1 {
		children[l], children[r] = children[r], children[l]
	}
	return Node{Match: m, Children: children}, m.ChildCount
}

// Eval walks a reconstructed tree and computes its arithmetic value. It
// trusts the grammar's shape (expr/term nodes have exactly one child unless
// they carry an operator, factor nodes are either a digit run or a
// parenthesized expr) rather than re-validating it, since Eval is only ever
// called on a tree built from a successful Outcome.
func Eval(text string, n Node) int {
	switch n.Match.ID {
	case TagExpr, TagTerm:
		if len(n.Children) == 1 {
			return Eval(text, n.Children[0])
		}
		left := Eval(text, n.Children[0])
		right := Eval(text, n.Children[1])
		op := text[n.Children[0].Match.End.Offset]
		switch op {
		case '+':
			return left + right
		case '-':
			return left - right
		case '*':
			return left * right
		case '/':
			return left / right
		}
		return 0
	case TagFactor:
		if n.Children[0].Match.ID == TagDigit {
			return digitsToInt(text, n.Children)
		}
		return Eval(text, n.Children[0])
	default:
		return digitsToInt(text, n.Children)
	}
}

func digitsToInt(text string, digits []Node) int {
	begin := digits[0].Match.Begin.Offset
	end := digits[len(digits)-1].Match.End.Offset
	v, _ := strconv.Atoi(text[begin:end])
	return v
}
