package automaton

import (
	"testing"

	"github.com/hhenn/grouper/charclass"
	"github.com/stretchr/testify/assert"
)

// buildAB builds the NFA for "a|b" by hand via Thompson's alternation rule,
// tagging the accept state with reduction tag 1.
func buildAB(t *testing.T) *Machine[any, int, charclass.Class] {
	t.Helper()
	m := New[any, int, charclass.Class](false)

	s1, e1 := m.Insert(), m.Insert()
	m.Connect(s1, e1, charclass.Single('a'))

	s2, e2 := m.Insert(), m.Insert()
	m.Connect(s2, e2, charclass.Single('b'))

	start, end := m.Insert(), m.Insert()
	m.Connect(start, s1, charclass.Epsilon)
	m.Connect(start, s2, charclass.Epsilon)
	m.Connect(e1, end, charclass.Epsilon)
	m.Connect(e2, end, charclass.Epsilon)

	m.SetStart(start)
	m.SetAccept(end, true)
	m.SetReduction(end, 1)

	return m
}

func TestEpsilonClosureIncludesSelfAndEpsilonTargets(t *testing.T) {
	m := buildAB(t)
	closure := EpsilonClosure(m, m.Start())
	assert.Contains(t, closure, m.Start())
	assert.GreaterOrEqual(t, len(closure), 3) // start + both branch starts
}

func TestDeterminizeProducesDisjointOutgoingEdges(t *testing.T) {
	nfa := buildAB(t)
	dfa := Determinize(nfa, charclass.Partition, MinReduceResolve, LeftValueResolve[any])

	for _, id := range dfa.States() {
		out := dfa.Out(id)
		for i := 0; i < len(out); i++ {
			for j := i + 1; j < len(out); j++ {
				assert.True(t, out[i].Label.Disjoint(out[j].Label))
			}
		}
	}
}

func TestDeterminizeAcceptsBothAlternatives(t *testing.T) {
	nfa := buildAB(t)
	dfa := Determinize(nfa, charclass.Partition, MinReduceResolve, LeftValueResolve[any])

	for _, input := range []byte{'a', 'b'} {
		state := dfa.Start()
		var ok bool
		for _, tr := range dfa.Out(state) {
			if tr.Label.Has(input) {
				state, ok = tr.To, true
				break
			}
		}
		assert.True(t, ok, "no edge for %c", input)
		assert.True(t, dfa.IsAccepting(state))
		r, has := dfa.Reduction(state)
		assert.True(t, has)
		assert.Equal(t, 1, r)
	}
}

func TestDeterminizeValidates(t *testing.T) {
	nfa := buildAB(t)
	dfa := Determinize(nfa, charclass.Partition, MinReduceResolve, LeftValueResolve[any])
	assert.NoError(t, dfa.Validate())
}

func TestMinReduceResolvePicksEarliest(t *testing.T) {
	assert.Equal(t, 1, MinReduceResolve(1, 3))
	assert.Equal(t, 1, MinReduceResolve(3, 1))
}
