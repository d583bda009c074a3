package regex

import (
	"testing"

	"github.com/hhenn/grouper/automaton"
	"github.com/hhenn/grouper/charclass"
	"github.com/stretchr/testify/assert"
)

// accepts runs s through the determinized form of pattern's NFA and reports
// whether it is fully consumed and ends in an accepting state.
func accepts(t *testing.T, pattern, s string) bool {
	t.Helper()
	nfa, err := Compile[any, int](pattern)
	if err != nil {
		t.Fatalf("compile %q: %s", pattern, err)
	}
	nfa.SetReduction(nfa.AcceptSet()[0], 1)
	dfa := automaton.Determinize(nfa, charclass.Partition, automaton.MinReduceResolve, automaton.LeftValueResolve[any])

	state := dfa.Start()
	for i := 0; i < len(s); i++ {
		var next int
		found := false
		for _, tr := range dfa.Out(state) {
			if tr.Label.Has(s[i]) {
				next, found = tr.To, true
				break
			}
		}
		if !found {
			return false
		}
		state = next
	}
	return dfa.IsAccepting(state)
}

func TestCompileLiteralConcatenation(t *testing.T) {
	assert.True(t, accepts(t, "abc", "abc"))
	assert.False(t, accepts(t, "abc", "ab"))
	assert.False(t, accepts(t, "abc", "abcd"))
}

func TestCompileAlternation(t *testing.T) {
	assert.True(t, accepts(t, "cat|dog", "cat"))
	assert.True(t, accepts(t, "cat|dog", "dog"))
	assert.False(t, accepts(t, "cat|dog", "cow"))
}

func TestCompileKleeneStar(t *testing.T) {
	assert.True(t, accepts(t, "a*", ""))
	assert.True(t, accepts(t, "a*", "aaaa"))
	assert.False(t, accepts(t, "a*", "aaab"))
}

func TestCompileKleenePlus(t *testing.T) {
	assert.False(t, accepts(t, "a+", ""))
	assert.True(t, accepts(t, "a+", "a"))
	assert.True(t, accepts(t, "a+", "aaa"))
}

func TestCompileOptional(t *testing.T) {
	assert.True(t, accepts(t, "ab?c", "ac"))
	assert.True(t, accepts(t, "ab?c", "abc"))
	assert.False(t, accepts(t, "ab?c", "abbc"))
}

func TestCompileCharClassRange(t *testing.T) {
	assert.True(t, accepts(t, "[0-9]+", "12345"))
	assert.False(t, accepts(t, "[0-9]+", "12a45"))
}

func TestCompileParenGrouping(t *testing.T) {
	assert.True(t, accepts(t, "(ab)+", "abab"))
	assert.False(t, accepts(t, "(ab)+", "aba"))
}

func TestCompileEscapes(t *testing.T) {
	assert.True(t, accepts(t, `\d+`, "123"))
	// '.' is not an operator in this dialect (only ( ) | * + ? are), so it
	// stands for itself without escaping.
	assert.True(t, accepts(t, `a.b`, "a.b"))
	assert.True(t, accepts(t, `a\(b`, "a(b"))
}

func TestCompileRejectsMismatchedParen(t *testing.T) {
	_, err := Compile[any, int]("(a|b")
	assert.Error(t, err)

	_, err = Compile[any, int]("a|b)")
	assert.Error(t, err)
}

func TestCompileRejectsUnterminatedClass(t *testing.T) {
	_, err := Compile[any, int]("[abc")
	assert.Error(t, err)
}

func TestCompileRejectsUnknownEscape(t *testing.T) {
	_, err := Compile[any, int](`\q`)
	assert.Error(t, err)
}

func TestCompileRejectsEmptyPattern(t *testing.T) {
	_, err := Compile[any, int]("")
	assert.Error(t, err)
}

func TestImplicitConcatenationBetweenGroupAndClass(t *testing.T) {
	assert.True(t, accepts(t, "(a|b)c", "ac"))
	assert.True(t, accepts(t, "(a|b)c", "bc"))
}
