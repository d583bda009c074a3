package lr

import (
	"testing"

	"github.com/hhenn/grouper/grammar"
	"github.com/stretchr/testify/assert"
)

// buildXYZGrammar builds "S : A B; A : x; B : y;" directly via the grammar
// API (bypassing grammarfile), matching spec.md §8 seed scenario 6.
func buildXYZGrammar(t *testing.T) *grammar.Grammar {
	t.Helper()
	g := grammar.New()
	_, err := g.AddTerm("x", "x", grammar.AssocNone)
	assert.NoError(t, err)
	_, err = g.AddTerm("y", "y", grammar.AssocNone)
	assert.NoError(t, err)

	g.AddRule("S", []string{"A", "B"}, "")
	g.AddRule("A", []string{"x"}, "")
	g.AddRule("B", []string{"y"}, "")
	assert.NoError(t, g.Validate())
	return g
}

func TestBuildNoConflictsOnSimpleGrammar(t *testing.T) {
	g := buildXYZGrammar(t)
	_, conflicts, err := Build(g)
	assert.NoError(t, err)
	assert.Empty(t, conflicts)
}

func TestBuildAcceptOnlyOnStartNonTerminalAtEndOfInput(t *testing.T) {
	g := buildXYZGrammar(t)
	table, _, err := Build(g)
	assert.NoError(t, err)

	acceptCount := 0
	for s := 0; s < table.NumStates; s++ {
		for term := 0; term < g.NumTerminals(); term++ {
			if a, ok := table.ActionOf(s, term); ok && a.Kind == ActionAccept {
				acceptCount++
			}
		}
	}
	assert.Equal(t, 1, acceptCount)
}

func TestBuildEveryReduceActionPopCountMatchesProductionLength(t *testing.T) {
	g := buildXYZGrammar(t)
	table, _, err := Build(g)
	assert.NoError(t, err)

	expectedArity := map[string]int{"S": 2, "A": 1, "B": 1}
	for s := 0; s < table.NumStates; s++ {
		for term := 0; term < g.NumTerminals(); term++ {
			a, ok := table.ActionOf(s, term)
			if !ok || a.Kind != ActionReduce {
				continue
			}
			prod := g.Productions()[a.Production]
			// pop count is implicit in the driver (prod.Len()); assert the
			// production index is in range and has the expected arity.
			assert.Equal(t, expectedArity[g.SymbolName(prod.LHS)], prod.Len())
		}
	}
}

func TestBuildLALRHasNoMoreStatesThanCanonical(t *testing.T) {
	g := buildXYZGrammar(t)
	canon, _, err := Build(g)
	assert.NoError(t, err)
	lalr, _, err := BuildLALR(g)
	assert.NoError(t, err)
	assert.LessOrEqual(t, lalr.NumStates, canon.NumStates)
}

func TestBuildRejectsGrammarWithNoProductions(t *testing.T) {
	g := grammar.New()
	_, _, err := Build(g)
	assert.Error(t, err)
}
