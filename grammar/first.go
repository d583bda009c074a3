package grammar

import "github.com/hhenn/grouper/util"

// First computes FIRST(A) for every non-terminal by fixed-point iteration,
// per spec.md §4.6: FIRST(A) starts empty; for each production
// A -> X1 X2 ... Xn, if X1 is a terminal it is added directly, if X1 is a
// non-terminal then FIRST(X1) is folded in. No non-terminal is ever treated
// as nullable, so only the first symbol of each production contributes.
type First struct {
	sets map[int]util.IntSet
}

// ComputeFirst builds the FIRST-set table for g.
func ComputeFirst(g *Grammar) *First {
	f := &First{sets: map[int]util.IntSet{}}
	for _, id := range g.nonTermByName {
		f.sets[id] = util.NewIntSet()
	}

	changed := true
	for changed {
		changed = false
		for _, p := range g.productions {
			if len(p.Symbols) == 0 {
				if !f.sets[p.LHS].Has(EndOfInput) {
					f.sets[p.LHS].Add(EndOfInput)
					changed = true
				}
				continue
			}
			x1 := p.Symbols[0]
			if g.IsTerminal(x1) {
				if !f.sets[p.LHS].Has(x1) {
					f.sets[p.LHS].Add(x1)
					changed = true
				}
				continue
			}
			before := f.sets[p.LHS].Len()
			f.sets[p.LHS].AddAll(f.sets[x1])
			if f.sets[p.LHS].Len() != before {
				changed = true
			}
		}
	}

	return f
}

// Of returns the FIRST set of symbol id: for a terminal, the singleton set
// containing itself; for a non-terminal, its computed FIRST set.
func (f *First) Of(g *Grammar, id int) util.IntSet {
	if g.IsTerminal(id) {
		return util.NewIntSet(id)
	}
	return f.sets[id]
}

// OfSeq returns FIRST of the first symbol in syms, or — if syms is empty —
// the singleton {EndOfInput}, matching the grammar's no-nullable-non-terminal
// convention from spec.md §4.6.
func (f *First) OfSeq(g *Grammar, syms []int) util.IntSet {
	if len(syms) == 0 {
		return util.NewIntSet(EndOfInput)
	}
	return f.Of(g, syms[0])
}
