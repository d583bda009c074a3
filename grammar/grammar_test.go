package grammar

import (
	"testing"

	"github.com/hhenn/grouper/util"
	"github.com/stretchr/testify/assert"
)

func buildXYGrammar(t *testing.T) *Grammar {
	t.Helper()
	g := New()
	x, err := g.AddTerm("x", "x", AssocNone)
	assert.NoError(t, err)
	y, err := g.AddTerm("y", "y", AssocNone)
	assert.NoError(t, err)

	g.AddRule("S", []string{"A", "B"}, "")
	g.AddRule("A", []string{"x"}, "")
	g.AddRule("B", []string{"y"}, "")

	assert.NoError(t, g.Validate())
	_ = x
	_ = y
	return g
}

func TestFirstSets(t *testing.T) {
	g := buildXYGrammar(t)
	first := ComputeFirst(g)

	x, _ := lookupTerm(g, "x")
	y, _ := lookupTerm(g, "y")

	sID, _ := lookupNonTerm(g, "S")
	aID, _ := lookupNonTerm(g, "A")
	bID, _ := lookupNonTerm(g, "B")

	assert.Equal(t, util.NewIntSet(x), first.Of(g, sID))
	assert.Equal(t, util.NewIntSet(x), first.Of(g, aID))
	assert.Equal(t, util.NewIntSet(y), first.Of(g, bID))
}

func lookupTerm(g *Grammar, name string) (int, bool) {
	for _, term := range g.Terminals() {
		if term.Name == name {
			return term.ID, true
		}
	}
	return 0, false
}

func lookupNonTerm(g *Grammar, name string) (int, bool) {
	for id, n := range g.nonTerms {
		if n == name {
			return len(g.terms) + id, true
		}
	}
	return 0, false
}

func TestAddTermRejectsDuplicateName(t *testing.T) {
	g := New()
	_, err := g.AddTerm("x", "x", AssocNone)
	assert.NoError(t, err)
	_, err = g.AddTerm("x", "y", AssocNone)
	assert.Error(t, err)
}

func TestValidateRejectsUndefinedNonTerminal(t *testing.T) {
	g := New()
	_, err := g.AddTerm("a", "a", AssocNone)
	assert.NoError(t, err)
	g.AddRule("S", []string{"a", "Missing"}, "")
	assert.Error(t, g.Validate())
}

func TestEndOfInputReserved(t *testing.T) {
	g := New()
	assert.Equal(t, EndOfInput, g.terms[0].ID)
	assert.True(t, g.IsTerminal(EndOfInput))
}
