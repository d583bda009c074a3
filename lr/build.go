package lr

import (
	"fmt"

	"github.com/hhenn/grouper/grammar"
)

// stateEdge is one goto transition discovered during canonical collection.
type stateEdge struct {
	from, to int
	sym      int
}

// buildCanonicalStates runs the closure/goto fixed point from spec.md §4.6,
// discovering the canonical LR(1) collection in BFS order. States are
// deduplicated by full (core, lookahead) set-equality, per spec.md's
// "compare against all existing states using set-equality of items,
// including lookahead sets."
func buildCanonicalStates(g *grammar.Grammar, first *grammar.First) ([]*ItemSet, []stateEdge, error) {
	startProds := g.ProductionsFor(g.Start())
	if len(startProds) == 0 {
		return nil, nil, fmt.Errorf("lr: start non-terminal %s has no productions", g.SymbolName(g.Start()))
	}

	seed := newItemSet()
	for _, prod := range startProds {
		seed.add(core{Prod: prod, Dot: 0}, map[int]bool{grammar.EndOfInput: true})
	}
	state0 := closure(g, first, seed)

	var states []*ItemSet
	keyToState := map[string]int{}

	states = append(states, state0)
	keyToState[state0.key()] = 0

	var edges []stateEdge

	pending := []int{0}
	for len(pending) > 0 {
		id := pending[0]
		pending = pending[1:]
		set := states[id]

		for _, x := range symbolsAfterDot(g, set) {
			target := gotoSet(g, first, set, x)
			if len(target.cores()) == 0 {
				continue
			}
			key := target.key()
			tid, ok := keyToState[key]
			if !ok {
				tid = len(states)
				states = append(states, target)
				keyToState[key] = tid
				pending = append(pending, tid)
			}
			edges = append(edges, stateEdge{from: id, to: tid, sym: x})
		}
	}

	return states, edges, nil
}

// tabulate builds the action/goto table from a discovered state collection
// (canonical or core-merged), applying the conflict-resolving policy from
// spec.md §4.6/§7.
func tabulate(g *grammar.Grammar, states []*ItemSet, edges []stateEdge) (*Table, []Conflict) {
	// accept sits on end-of-input in the state the start state reaches on the
	// start symbol; that state is added when no edge already leads there.
	numStates := len(states)
	acceptState := numStates
	for _, e := range edges {
		if e.from == 0 && e.sym == g.Start() {
			acceptState = e.to
		}
	}
	if acceptState == numStates {
		numStates++
	}
	table := newTable(numStates)
	table.StartState = 0
	table.goto_[0][g.Start()] = acceptState
	table.action[acceptState][grammar.EndOfInput] = Action{Kind: ActionAccept}

	for _, e := range edges {
		table.goto_[e.from][e.sym] = e.to
	}

	var conflicts []Conflict

	for id, set := range states {
		for _, e := range edges {
			if e.from != id || !g.IsTerminal(e.sym) {
				continue
			}
			applyAction(table, &conflicts, id, e.sym, Action{Kind: ActionShift, Target: e.to})
		}

		for _, c := range set.cores() {
			p := g.Productions()[c.Prod]
			if c.Dot != len(p.Symbols) {
				continue
			}
			for a := range set.lookaheads(c) {
				applyAction(table, &conflicts, id, a, Action{Kind: ActionReduce, Production: c.Prod})
			}
		}
	}

	return table, conflicts
}

// Build constructs the canonical LR(1) action/goto tables for g, per
// spec.md §4.6. Conflicts are resolved (shift beats reduce; on reduce/reduce
// the first-declared production wins) and appended to the returned conflict
// list rather than aborting, per spec.md §7 — the REDESIGN from the
// teacher's clr1.go, which errors out on any conflict.
func Build(g *grammar.Grammar) (*Table, []Conflict, error) {
	first := grammar.ComputeFirst(g)

	states, edges, err := buildCanonicalStates(g, first)
	if err != nil {
		return nil, nil, err
	}

	table, conflicts := tabulate(g, states, edges)
	return table, conflicts, nil
}

// applyAction installs act into table's (state, terminal) action slot,
// resolving any conflict with an action already present per spec.md §4.6's
// policy: shift beats reduce; between two reduces, the first-declared
// production (lower production index) wins. The single accept action is
// installed by tabulate before any other action, on end-of-input in the state
// the start state reaches on the start symbol.
func applyAction(table *Table, conflicts *[]Conflict, state, terminal int, act Action) {
	existing, ok := table.action[state][terminal]
	if !ok {
		table.action[state][terminal] = act
		return
	}
	if existing.Kind == act.Kind && existing.Target == act.Target && existing.Production == act.Production {
		return // identical, not a conflict
	}

	chosen, lost, kind := resolve(existing, act)
	table.action[state][terminal] = chosen
	*conflicts = append(*conflicts, Conflict{
		Kind: kind, State: state, Terminal: terminal, Chosen: chosen, Lost: lost,
	})
}

func resolve(a, b Action) (chosen, lost Action, kind ConflictKind) {
	if a.Kind == ActionShift || b.Kind == ActionShift {
		if a.Kind == ActionShift {
			return a, b, ShiftReduceConflict
		}
		return b, a, ShiftReduceConflict
	}
	// reduce/reduce: first-declared (lower production index) wins
	if a.Production <= b.Production {
		return a, b, ReduceReduceConflict
	}
	return b, a, ReduceReduceConflict
}
