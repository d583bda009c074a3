package lr

import (
	"github.com/hhenn/grouper/grammar"
)

// closure computes the smallest superset of seed that is closed under
// spec.md §4.6's rule: for every item [A -> alpha . B beta, L] where B is a
// non-terminal, compute the lookahead for B (FIRST of beta if beta begins
// with a terminal or non-terminal, or L itself if beta is empty), and ensure
// every B-production's initial item is present with that lookahead, merging
// into any item that already shares the same (non-terminal, production,
// dot). Iterates to a fixed point.
func closure(g *grammar.Grammar, first *grammar.First, seed *ItemSet) *ItemSet {
	set := newItemSet()
	for _, c := range seed.cores() {
		set.add(c, seed.lookaheads(c))
	}

	changed := true
	for changed {
		changed = false
		for _, c := range append([]core{}, set.cores()...) {
			sym, ok := dotSymbol(g, c)
			if !ok || g.IsTerminal(sym) {
				continue
			}

			p := g.Productions()[c.Prod]
			beta := p.Symbols[c.Dot+1:]
			var la map[int]bool
			if len(beta) > 0 {
				la = first.OfSeq(g, beta)
			} else {
				la = set.lookaheads(c)
			}

			for _, prodIdx := range g.ProductionsFor(sym) {
				nc := core{Prod: prodIdx, Dot: 0}
				if set.add(nc, la) {
					changed = true
				}
			}
		}
	}

	return set
}

// gotoSet advances every item in set whose dot precedes symbol x, then
// returns the closure of the result. Per spec.md §4.6.
func gotoSet(g *grammar.Grammar, first *grammar.First, set *ItemSet, x int) *ItemSet {
	seed := newItemSet()
	for _, c := range set.cores() {
		sym, ok := dotSymbol(g, c)
		if !ok || sym != x {
			continue
		}
		nc := core{Prod: c.Prod, Dot: c.Dot + 1}
		seed.add(nc, set.lookaheads(c))
	}
	return closure(g, first, seed)
}

// symbolsAfterDot returns the distinct symbols that appear immediately after
// the dot in some item of set, in first-encountered order.
func symbolsAfterDot(g *grammar.Grammar, set *ItemSet) []int {
	seen := map[int]bool{}
	var out []int
	for _, c := range set.cores() {
		sym, ok := dotSymbol(g, c)
		if !ok || seen[sym] {
			continue
		}
		seen[sym] = true
		out = append(out, sym)
	}
	return out
}
