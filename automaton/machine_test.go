package automaton

import (
	"testing"

	"github.com/hhenn/grouper/charclass"
	"github.com/stretchr/testify/assert"
)

func TestInsertAndConnect(t *testing.T) {
	m := New[any, int, charclass.Class](false)
	s := m.Insert()
	e := m.Insert()
	m.Connect(s, e, charclass.Single('a'))

	assert.Equal(t, 2, m.NumStates())
	assert.Len(t, m.Out(s), 1)
	assert.Len(t, m.In(e), 1)
}

func TestConnectDuplicateIsNoOp(t *testing.T) {
	m := New[any, int, charclass.Class](false)
	s := m.Insert()
	e := m.Insert()
	m.Connect(s, e, charclass.Single('a'))
	m.Connect(s, e, charclass.Single('a'))
	assert.Len(t, m.Out(s), 1)
}

func TestDeterministicConnectPanicsOnOverlap(t *testing.T) {
	m := New[any, int, charclass.Class](true)
	s := m.Insert()
	e1 := m.Insert()
	e2 := m.Insert()
	m.Connect(s, e1, charclass.Single('a'))

	assert.Panics(t, func() {
		m.Connect(s, e2, charclass.Single('a'))
	})
}

func TestEraseCompactsIds(t *testing.T) {
	m := New[any, int, charclass.Class](false)
	a := m.Insert()
	b := m.Insert()
	c := m.Insert()
	m.Connect(a, c, charclass.Single('x'))

	m.Erase(b)

	assert.Equal(t, 2, m.NumStates())
	assert.True(t, m.Live(a))
	assert.True(t, m.Live(b)) // c moved into b's old slot
	assert.False(t, m.Live(c))

	// the edge a->c must now point at b (c's new home)
	out := m.Out(a)
	assert.Len(t, out, 1)
	assert.Equal(t, b, out[0].To)
}

func TestEraseLastStateJustTruncates(t *testing.T) {
	m := New[any, int, charclass.Class](false)
	a := m.Insert()
	b := m.Insert()
	m.Erase(b)
	assert.Equal(t, 1, m.NumStates())
	assert.True(t, m.Live(a))
}

func TestInsertMachineRebasesIds(t *testing.T) {
	other := New[any, int, charclass.Class](false)
	s := other.Insert()
	e := other.Insert()
	other.Connect(s, e, charclass.Single('z'))
	other.SetStart(s)
	other.SetAccept(e, true)

	m := New[any, int, charclass.Class](false)
	existing := m.Insert()

	mapping := m.InsertMachine(other)

	assert.Equal(t, 3, m.NumStates())
	newStart := mapping[s]
	newEnd := mapping[e]
	assert.NotEqual(t, existing, newStart)
	out := m.Out(newStart)
	assert.Len(t, out, 1)
	assert.Equal(t, newEnd, out[0].To)
}

func TestValidateAcceptsWellFormedMachine(t *testing.T) {
	m := New[any, int, charclass.Class](false)
	s := m.Insert()
	m.SetStart(s)
	assert.NoError(t, m.Validate())
}

func TestReductionRoundTrip(t *testing.T) {
	m := New[any, int, charclass.Class](false)
	s := m.Insert()
	m.SetReduction(s, 7)
	r, ok := m.Reduction(s)
	assert.True(t, ok)
	assert.Equal(t, 7, r)

	m.ClearReduction(s)
	_, ok = m.Reduction(s)
	assert.False(t, ok)
}
