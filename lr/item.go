// Package lr implements the LR(1) item-set parser constructor and action
// table builder described in spec.md §4.6: closure, goto, canonical state
// collection, and a conflict-resolving (not aborting) action table.
//
// Grounded on the teacher's internal/ictiobus/automaton.go
// NewLR1ViablePrefixDFA (closure/goto loop shape) and
// internal/ictiobus/parse/clr1.go (constructCanonicalLR1ParseTable), but
// REDESIGNED per spec.md: the teacher aborts construction on any shift/reduce
// or reduce/reduce conflict ("grammar is not LR(1)"); this package resolves
// conflicts (shift wins, first-declared production wins) and returns them to
// the caller as a slice of Conflict values instead; no sink is taken.
package lr

import (
	"sort"

	"github.com/hhenn/grouper/grammar"
)

// core identifies an LR(1) item ignoring its lookahead set: a production and
// a dot position within it.
type core struct {
	Prod int
	Dot  int
}

// ItemSet is an LR(1) state: an ordered collection of item cores, each with
// an associated (and separately mutable) lookahead set. Per spec.md §9's
// design note, this is the item-set representation: keyed by
// (production, dot), lookahead merged in place rather than re-hashed.
type ItemSet struct {
	order []core
	la    map[core]map[int]bool
}

func newItemSet() *ItemSet {
	return &ItemSet{la: map[core]map[int]bool{}}
}

// add ensures c is present in the set with at least the lookahead symbols in
// las. Returns true if the set actually grew (c is new, or la grew).
func (s *ItemSet) add(c core, las map[int]bool) bool {
	existing, ok := s.la[c]
	if !ok {
		cp := map[int]bool{}
		grown := false
		for t := range las {
			cp[t] = true
			grown = true
		}
		s.la[c] = cp
		s.order = append(s.order, c)
		return grown
	}
	grown := false
	for t := range las {
		if !existing[t] {
			existing[t] = true
			grown = true
		}
	}
	return grown
}

// cores returns every item core in the set, in discovery order.
func (s *ItemSet) cores() []core {
	return s.order
}

func (s *ItemSet) lookaheads(c core) map[int]bool {
	return s.la[c]
}

// key returns a canonical string encoding of the set's (core, lookahead)
// content, used for set-equality comparisons when deciding whether a goto
// target is a previously-discovered state (spec.md §4.6's "compare against
// all existing states using set-equality of items, including lookahead
// sets").
func (s *ItemSet) key() string {
	cores := append([]core{}, s.order...)
	sort.Slice(cores, func(i, j int) bool {
		if cores[i].Prod != cores[j].Prod {
			return cores[i].Prod < cores[j].Prod
		}
		return cores[i].Dot < cores[j].Dot
	})

	var sb []byte
	for _, c := range cores {
		sb = appendInt(sb, c.Prod)
		sb = append(sb, ':')
		sb = appendInt(sb, c.Dot)
		sb = append(sb, '[')
		las := sortedInts(s.la[c])
		for i, t := range las {
			if i > 0 {
				sb = append(sb, ',')
			}
			sb = appendInt(sb, t)
		}
		sb = append(sb, ']', ';')
	}
	return string(sb)
}

func sortedInts(m map[int]bool) []int {
	out := make([]int, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	sort.Ints(out)
	return out
}

func appendInt(b []byte, n int) []byte {
	if n == 0 {
		return append(b, '0')
	}
	neg := n < 0
	if neg {
		n = -n
	}
	start := len(b)
	for n > 0 {
		b = append(b, byte('0'+n%10))
		n /= 10
	}
	if neg {
		b = append(b, '-')
	}
	// reverse the digits just appended
	for i, j := start, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	return b
}

// dotSymbol returns the symbol immediately after the dot in c, and whether
// one exists (false if the dot is at the end of the production).
func dotSymbol(g *grammar.Grammar, c core) (int, bool) {
	p := g.Productions()[c.Prod]
	if c.Dot >= len(p.Symbols) {
		return 0, false
	}
	return p.Symbols[c.Dot], true
}
