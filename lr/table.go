package lr

import "fmt"

// ActionKind distinguishes the three parser moves, per spec.md §4.6/§4.7.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionShift
	ActionReduce
	ActionAccept
)

// Action is one entry of a state's action table on some lookahead terminal.
type Action struct {
	Kind ActionKind
	// Target is the destination state for ActionShift.
	Target int
	// Production is the production index for ActionReduce.
	Production int
}

func (a Action) String() string {
	switch a.Kind {
	case ActionShift:
		return fmt.Sprintf("shift %d", a.Target)
	case ActionReduce:
		return fmt.Sprintf("reduce %d", a.Production)
	case ActionAccept:
		return "accept"
	default:
		return "none"
	}
}

// ConflictKind distinguishes the two reportable (non-fatal) conflict kinds
// from spec.md §7.
type ConflictKind int

const (
	ShiftReduceConflict ConflictKind = iota
	ReduceReduceConflict
)

func (k ConflictKind) String() string {
	switch k {
	case ShiftReduceConflict:
		return "shift/reduce conflict"
	case ReduceReduceConflict:
		return "reduce/reduce conflict"
	default:
		return "conflict"
	}
}

// Conflict describes one resolved action-table conflict. Build and BuildLALR
// return every Conflict in a slice rather than aborting construction — the
// REDESIGN from the teacher's clr1.go, which fails the whole build on any
// conflict. No callback or sink is taken; the caller reads the slice.
type Conflict struct {
	Kind     ConflictKind
	State    int
	Terminal int
	// Chosen is the action the resolution policy kept.
	Chosen Action
	// Lost is the action the resolution policy discarded.
	Lost Action
}

// Table is the compiled action/goto tables over an LR(1) state collection:
// the canonical one (Build) or its core-merged LALR(1) form (BuildLALR).
type Table struct {
	NumStates int
	// action[state][terminal] -> Action
	action []map[int]Action
	// goto_[state][symbol] -> state
	goto_ []map[int]int

	StartState int
}

func newTable(n int) *Table {
	t := &Table{
		NumStates: n,
		action:    make([]map[int]Action, n),
		goto_:     make([]map[int]int, n),
	}
	for i := range t.action {
		t.action[i] = map[int]Action{}
		t.goto_[i] = map[int]int{}
	}
	return t
}

// ActionOf returns the action for (state, terminal) and whether one exists.
func (t *Table) ActionOf(state, terminal int) (Action, bool) {
	a, ok := t.action[state][terminal]
	return a, ok
}

// GotoOf returns the goto target for (state, symbol) and whether one exists.
func (t *Table) GotoOf(state, symbol int) (int, bool) {
	s, ok := t.goto_[state][symbol]
	return s, ok
}

// ExpectedTerminals returns the terminal ids that have some action defined in
// state, in no particular order. Used to build a helpful "expected one of..."
// message when a lookahead has no action.
func (t *Table) ExpectedTerminals(state int) []int {
	out := make([]int, 0, len(t.action[state]))
	for term := range t.action[state] {
		out = append(out, term)
	}
	return out
}
