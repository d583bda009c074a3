package automaton

import (
	"sort"
	"strconv"
	"strings"
)

// EpsilonClosure returns the set of NFA state ids reachable from start via
// zero or more epsilon edges (inclusive of start itself), computed by
// fixed-point iteration per spec.md §4.4 step 1: seed with the state itself
// plus its immediate epsilon targets, then repeatedly union in the closures
// of newly discovered members until nothing grows.
func EpsilonClosure[V any, R comparable, E Edge[E]](m *Machine[V, R, E], start int) []int {
	closure := map[int]bool{start: true}
	frontier := []int{start}

	for len(frontier) > 0 {
		next := []int{}
		for _, id := range frontier {
			for _, t := range m.Out(id) {
				if t.Label.IsEpsilon() && !closure[t.To] {
					closure[t.To] = true
					next = append(next, t.To)
				}
			}
		}
		frontier = next
	}

	out := make([]int, 0, len(closure))
	for id := range closure {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func closureOfSet[V any, R comparable, E Edge[E]](m *Machine[V, R, E], ids []int) []int {
	seen := map[int]bool{}
	for _, id := range ids {
		for _, c := range EpsilonClosure(m, id) {
			seen[c] = true
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

func setKey(ids []int) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.Itoa(id)
	}
	return strings.Join(parts, ",")
}

// move returns, for every NFA state in the set X, the set of states reachable
// by a single transition on an edge overlapping label.
func move[V any, R comparable, E Edge[E]](m *Machine[V, R, E], xs []int, label E) []int {
	seen := map[int]bool{}
	for _, id := range xs {
		for _, t := range m.Out(id) {
			if t.Label.IsEpsilon() {
				continue
			}
			if !t.Label.Disjoint(label) {
				seen[t.To] = true
			}
		}
	}
	out := make([]int, 0, len(seen))
	for id := range seen {
		out = append(out, id)
	}
	sort.Ints(out)
	return out
}

// allOutgoingLabels collects every non-epsilon edge label reachable from any
// state in xs.
func allOutgoingLabels[V any, R comparable, E Edge[E]](m *Machine[V, R, E], xs []int) []E {
	var out []E
	for _, id := range xs {
		for _, t := range m.Out(id) {
			if !t.Label.IsEpsilon() {
				out = append(out, t.Label)
			}
		}
	}
	return out
}

// Determinize performs classical subset construction (dragon-book algorithm
// 3.20) over an NFA, producing a deterministic Machine of the same edge and
// value types. per spec.md §4.4:
//
//   - partition computes the coarsest disjoint refinement of an overlapping
//     label multiset (EdgeAlgebra.unique_edges); for character classes this is
//     charclass.Partition, for scalar edges automaton.UniqueSyms.
//   - reduceResolve folds the reduction tags of the member NFA states that
//     make up a DFA state into a single tag (e.g. minimum token id).
//   - valueResolve folds their value payloads (e.g. left-biased pick).
//
// The returned DFA's values additionally record, via the caller's
// valueResolve starting point, whatever aggregate the caller wants; this
// function itself only drives the fixed point and delegates all merging.
func Determinize[V any, R comparable, E Edge[E]](
	nfa *Machine[V, R, E],
	partition func([]E) []E,
	reduceResolve func(R, R) R,
	valueResolve func(V, V) V,
) *Machine[V, R, E] {
	dfa := New[V, R, E](true)

	startSet := EpsilonClosure(nfa, nfa.Start())
	startKey := setKey(startSet)

	dStateOf := map[string]int{}
	setOf := map[int][]int{}

	startID := dfa.Insert()
	dStateOf[startKey] = startID
	setOf[startID] = startSet
	dfa.SetStart(startID)

	pending := []int{startID}

	for len(pending) > 0 {
		id := pending[0]
		pending = pending[1:]

		members := setOf[id]

		// fold reduction tags and values, and accepting-ness, from every NFA
		// member state.
		var hasReduction bool
		var reduction R
		var hasValue bool
		var value V
		accepting := false

		for _, nid := range members {
			if nfa.IsAccepting(nid) {
				accepting = true
			}
			if r, ok := nfa.Reduction(nid); ok {
				if !hasReduction {
					reduction, hasReduction = r, true
				} else {
					reduction = reduceResolve(reduction, r)
				}
			}
			v := nfa.Value(nid)
			if !hasValue {
				value, hasValue = v, true
			} else {
				value = valueResolve(value, v)
			}
		}

		dfa.SetAccept(id, accepting)
		if hasReduction {
			dfa.SetReduction(id, reduction)
		}
		if hasValue {
			dfa.SetValue(id, value)
		}

		labels := partition(allOutgoingLabels(nfa, members))

		for _, label := range labels {
			targetSet := closureOfSet(nfa, move(nfa, members, label))
			if len(targetSet) == 0 {
				continue
			}
			key := setKey(targetSet)

			targetID, ok := dStateOf[key]
			if !ok {
				targetID = dfa.Insert()
				dStateOf[key] = targetID
				setOf[targetID] = targetSet
				pending = append(pending, targetID)
			}

			dfa.Connect(id, targetID, label)
		}
	}

	return dfa
}

// MinReduceResolve is the lexer's default reduction-conflict resolver: the
// numerically smallest tag wins, i.e. the earliest-declared token matches
// when multiple patterns accept the same string (spec.md §4.4/§4.5).
func MinReduceResolve(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// LeftValueResolve is the default value-merge resolver: the left (first
// encountered) value wins.
func LeftValueResolve[V any](a, b V) V {
	return a
}
