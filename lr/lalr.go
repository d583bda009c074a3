package lr

import (
	"sort"

	"github.com/hhenn/grouper/grammar"
)

// coreSetKey is the set-equality key used for LALR(1) state merging: the
// item cores alone, ignoring lookahead.
func coreSetKey(s *ItemSet) string {
	cores := append([]core{}, s.cores()...)
	sort.Slice(cores, func(i, j int) bool {
		if cores[i].Prod != cores[j].Prod {
			return cores[i].Prod < cores[j].Prod
		}
		return cores[i].Dot < cores[j].Dot
	})
	var b []byte
	for _, c := range cores {
		b = appendInt(b, c.Prod)
		b = append(b, ':')
		b = appendInt(b, c.Dot)
		b = append(b, ';')
	}
	return string(b)
}

// BuildLALR constructs LALR(1) tables by merging canonical LR(1) states that
// share an identical item-core set, unioning their lookahead sets — the
// classical "merge states with equal cores" reduction of the canonical
// collection. This mirrors the teacher's NewLALR1ViablePrefixDFA (which
// merges the equivalent core-identical states of an NFA-based LR(0)
// intermediate), and is supplemented from original_source/fox-yacc, which
// builds LALR tables the same way: full canonical construction, then a
// core-based merge pass, reusing the same conflict-resolution policy
// (shift wins, first-declared reduce wins) as canonical Build.
//
// LALR(1) has at most as many states as canonical LR(1) for the same
// grammar (equally many when no two canonical states share a core), at the cost of occasionally accepting a lookahead the canonical
// table would reject (a "merge conflict" — never a correctness hazard for
// grammars without embedded actions sensitive to reduce timing, which this
// reference does not have).
func BuildLALR(g *grammar.Grammar) (*Table, []Conflict, error) {
	first := grammar.ComputeFirst(g)

	canonStates, canonEdges, err := buildCanonicalStates(g, first)
	if err != nil {
		return nil, nil, err
	}

	// group canonical state ids by core-only key, in first-encountered order
	groupOf := make([]int, len(canonStates))
	keyToGroup := map[string]int{}
	var groups []*ItemSet

	for id, s := range canonStates {
		key := coreSetKey(s)
		gid, ok := keyToGroup[key]
		if !ok {
			gid = len(groups)
			keyToGroup[key] = gid
			merged := newItemSet()
			for _, c := range s.cores() {
				merged.add(c, s.lookaheads(c))
			}
			groups = append(groups, merged)
		} else {
			for _, c := range s.cores() {
				groups[gid].add(c, s.lookaheads(c))
			}
		}
		groupOf[id] = gid
	}

	var mergedEdges []stateEdge
	seen := map[[3]int]bool{}
	for _, e := range canonEdges {
		me := stateEdge{from: groupOf[e.from], to: groupOf[e.to], sym: e.sym}
		key := [3]int{me.from, me.to, me.sym}
		if seen[key] {
			continue
		}
		seen[key] = true
		mergedEdges = append(mergedEdges, me)
	}

	table, conflicts := tabulate(g, groups, mergedEdges)
	return table, conflicts, nil
}
