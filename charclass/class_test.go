package charclass

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSingleAndHas(t *testing.T) {
	c := Single('a')
	assert.True(t, c.Has('a'))
	assert.False(t, c.Has('b'))
}

func TestRange(t *testing.T) {
	c := Range('0', '9')
	for b := byte('0'); b <= '9'; b++ {
		assert.True(t, c.Has(b), "expected %c in range", b)
	}
	assert.False(t, c.Has('a'))
}

func TestUnionIntersect(t *testing.T) {
	a := Range('a', 'c')
	b := Range('b', 'd')
	u := a.Union(b)
	for _, r := range []byte{'a', 'b', 'c', 'd'} {
		assert.True(t, u.Has(r))
	}
	i := a.Intersect(b)
	assert.True(t, i.Has('b'))
	assert.True(t, i.Has('c'))
	assert.False(t, i.Has('a'))
	assert.False(t, i.Has('d'))
}

func TestDisjoint(t *testing.T) {
	a := Range('a', 'c')
	b := Range('d', 'f')
	assert.True(t, a.Disjoint(b))
	c := Range('c', 'e')
	assert.False(t, a.Disjoint(c))
}

func TestEpsilonIsUniversal(t *testing.T) {
	assert.True(t, Epsilon.IsEpsilon())
	assert.False(t, Single('a').IsEpsilon())
}

func TestPartitionDisjointResult(t *testing.T) {
	tests := []struct {
		name  string
		edges []Class
	}{
		{"no overlap", []Class{Single('a'), Single('b')}},
		{"full overlap", []Class{Range('a', 'z'), Range('a', 'z')}},
		{"partial overlap", []Class{Range('a', 'm'), Range('g', 'z')}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			parts := Partition(tt.edges)
			for i := 0; i < len(parts); i++ {
				for j := i + 1; j < len(parts); j++ {
					assert.True(t, parts[i].Disjoint(parts[j]), "parts %d and %d overlap", i, j)
				}
			}
			// every byte covered by some input edge must be covered by
			// exactly one output partition.
			for b := 0; b < 128; b++ {
				coveredByInput := false
				for _, e := range tt.edges {
					if e.Has(byte(b)) {
						coveredByInput = true
					}
				}
				if !coveredByInput {
					continue
				}
				count := 0
				for _, p := range parts {
					if p.Has(byte(b)) {
						count++
					}
				}
				assert.Equal(t, 1, count, "byte %d covered %d times", b, count)
			}
		})
	}
}

func TestPartialOverlapSplitsIntoThreeClasses(t *testing.T) {
	parts := Partition([]Class{Range('a', 'm'), Range('g', 'z')})
	assert.Len(t, parts, 3)
}
