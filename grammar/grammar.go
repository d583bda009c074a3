// Package grammar implements the token and production tables described in
// spec.md §4.6: an ordered symbol space (terminals at low ids, non-terminals
// at high ids), productions referencing that space by resolved id, and
// fixed-point FIRST-set computation.
//
// The teacher's internal/ictiobus/grammar package was retrieved only as
// item.go and grammar_test.go — its own grammar.go (the Grammar type itself)
// was never present in the retrieved file set. This package rebuilds that
// type from the test's call-site API (AddTerm, AddRule, Validate) and from
// spec.md §4.6, deliberately simpler than the teacher's original: per
// spec.md, "the reference design does not treat any non-terminal as
// nullable," so there is no epsilon-production or left-recursion-removal
// machinery here, unlike the teacher's fuller LL-oriented package.
package grammar

import "fmt"

// EndOfInput is the reserved terminal id for end-of-input, per spec.md §4.6
// and §6. No grammar token may claim it.
const EndOfInput = 0

// Assoc records a terminal's declared associativity. spec.md §9 notes the
// reference exposes this on the terminal record without using it in conflict
// resolution; it is carried here for the same reason.
type Assoc int

const (
	AssocNone Assoc = iota
	AssocLeft
	AssocRight
	AssocNonAssoc
)

// Terminal is one entry in the token table.
type Terminal struct {
	ID    int
	Name  string
	Regex string
	Assoc Assoc
}

// Production is one right-hand side of a non-terminal's rule: a sequence of
// resolved symbol ids (terminal or non-terminal), plus the optional action
// name attached by a braced `{ action_name }` in grammar source.
type Production struct {
	LHS     int // non-terminal id
	Symbols []int
	Action  string
}

// Len returns the number of symbols on the right-hand side.
func (p Production) Len() int {
	return len(p.Symbols)
}

// Grammar holds the resolved terminal/non-terminal tables and the ordered
// production list, built incrementally via AddTerm/AddNonTerminal/AddRule and
// finalized with Validate.
type Grammar struct {
	terms      []Terminal
	termByName map[string]int

	nonTerms      []string
	nonTermByName map[string]int

	productions []Production
	// prodsByLHS indexes into productions, in declaration order, for each
	// non-terminal id.
	prodsByLHS map[int][]int

	start    int
	hasStart bool
}

// New creates an empty Grammar. Terminal id 0 is reserved for end-of-input
// before any AddTerm call.
func New() *Grammar {
	g := &Grammar{
		termByName:    map[string]int{},
		nonTermByName: map[string]int{},
		prodsByLHS:    map[int][]int{},
	}
	g.terms = append(g.terms, Terminal{ID: EndOfInput, Name: "$end"})
	g.termByName["$end"] = EndOfInput
	return g
}

// AddTerm declares a terminal with the given name, regex and associativity,
// returning its assigned id. Declaring the same name twice is a fatal error.
func (g *Grammar) AddTerm(name, regex string, assoc Assoc) (int, error) {
	if _, ok := g.termByName[name]; ok {
		return 0, fmt.Errorf("grammar: terminal %q declared twice", name)
	}
	id := len(g.terms)
	g.terms = append(g.terms, Terminal{ID: id, Name: name, Regex: regex, Assoc: assoc})
	g.termByName[name] = id
	return id, nil
}

// nonTermID returns the id for name, allocating a fresh one (at a high index,
// above every terminal) if name has not been seen before. Non-terminal ids
// are only finalized relative to each other once every non-terminal named in
// the grammar has been seen; SymbolID resolves by name lookup in either
// table, so the exact numeric values only need to be internally consistent.
func (g *Grammar) nonTermID(name string) int {
	if id, ok := g.nonTermByName[name]; ok {
		return id
	}
	id := len(g.terms) + len(g.nonTerms)
	g.nonTerms = append(g.nonTerms, name)
	g.nonTermByName[name] = id
	return id
}

// AddRule adds one production for non-terminal lhs (allocating its id on
// first mention), with rhs symbol names resolved against the terminal and
// non-terminal tables. Unknown names are only diagnosed once table
// population is finished, at Validate time, since a non-terminal mentioned on
// a right-hand side may not yet have been AddRule'd itself.
func (g *Grammar) AddRule(lhs string, rhsNames []string, action string) int {
	lhsID := g.nonTermID(lhs)
	syms := make([]int, len(rhsNames))
	for i, name := range rhsNames {
		syms[i] = g.resolveOrForward(name)
	}
	p := Production{LHS: lhsID, Symbols: syms, Action: action}
	idx := len(g.productions)
	g.productions = append(g.productions, p)
	g.prodsByLHS[lhsID] = append(g.prodsByLHS[lhsID], idx)
	if !g.hasStart {
		g.start = lhsID
		g.hasStart = true
	}
	return idx
}

// resolveOrForward resolves name against the terminal table, then the
// non-terminal table, allocating a forward non-terminal id if neither knows
// it yet (it is assumed to be a not-yet-declared non-terminal; Validate
// catches names that turn out to never be defined).
func (g *Grammar) resolveOrForward(name string) int {
	if id, ok := g.termByName[name]; ok {
		return id
	}
	return g.nonTermID(name)
}

// SetStart overrides the start non-terminal by name, per the grammar source's
// optional %start directive.
func (g *Grammar) SetStart(name string) error {
	id, ok := g.nonTermByName[name]
	if !ok {
		return fmt.Errorf("grammar: %%start names unknown non-terminal %q", name)
	}
	g.start = id
	g.hasStart = true
	return nil
}

// Start returns the id of the start non-terminal.
func (g *Grammar) Start() int {
	return g.start
}

// NumTerminals returns the number of terminals, including end-of-input.
func (g *Grammar) NumTerminals() int {
	return len(g.terms)
}

// Terminals returns the terminal table in declared order.
func (g *Grammar) Terminals() []Terminal {
	return g.terms
}

// TerminalName returns the declared name of terminal id.
func (g *Grammar) TerminalName(id int) string {
	if id < 0 || id >= len(g.terms) {
		return fmt.Sprintf("<bad terminal %d>", id)
	}
	return g.terms[id].Name
}

// IsTerminal reports whether id names a terminal (including end-of-input).
func (g *Grammar) IsTerminal(id int) bool {
	return id >= 0 && id < len(g.terms)
}

// NonTerminalName returns the declared name of non-terminal id.
func (g *Grammar) NonTerminalName(id int) string {
	idx := id - len(g.terms)
	if idx < 0 || idx >= len(g.nonTerms) {
		return fmt.Sprintf("<bad non-terminal %d>", id)
	}
	return g.nonTerms[idx]
}

// SymbolName returns the display name of any symbol id, terminal or
// non-terminal.
func (g *Grammar) SymbolName(id int) string {
	if g.IsTerminal(id) {
		return g.TerminalName(id)
	}
	return g.NonTerminalName(id)
}

// Productions returns every production, in declaration order.
func (g *Grammar) Productions() []Production {
	return g.productions
}

// ProductionsFor returns the indices into Productions() of every production
// whose left-hand side is non-terminal lhs, in declaration order.
func (g *Grammar) ProductionsFor(lhs int) []int {
	return g.prodsByLHS[lhs]
}

// Validate checks that every symbol referenced by a production's right-hand
// side names either a declared terminal or a non-terminal that itself has at
// least one production — the grammar-reference error kind from spec.md §7.
func (g *Grammar) Validate() error {
	defined := map[int]bool{}
	for lhs := range g.prodsByLHS {
		defined[lhs] = true
	}
	for _, p := range g.productions {
		for _, sym := range p.Symbols {
			if g.IsTerminal(sym) {
				continue
			}
			if !defined[sym] {
				return fmt.Errorf("grammar: %s references undefined non-terminal %s", g.SymbolName(p.LHS), g.SymbolName(sym))
			}
		}
	}
	if !g.hasStart {
		return fmt.Errorf("grammar: no productions declared")
	}
	return nil
}
