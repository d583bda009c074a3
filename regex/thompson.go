package regex

import (
	"github.com/hhenn/grouper/automaton"
	"github.com/hhenn/grouper/charclass"
)

// fragment is a Thompson sub-NFA under construction: a start state and the
// set of current accept states, both already inserted into the shared
// Machine.
type fragment struct {
	start  int
	accept []int
}

// Compile parses and builds pattern into a non-deterministic
// automaton.Machine with charclass.Class edges, following the standard
// Thompson construction rules from spec.md §4.3. The returned machine's
// accepting states are exactly the final fragment's accept set; no
// reduction tag or value is set on them — callers (the lexer compiler) tag
// them afterward.
func Compile[V any, R comparable](pattern string) (*automaton.Machine[V, R, charclass.Class], error) {
	tokens, err := tokenize(pattern)
	if err != nil {
		return nil, err
	}

	rpn, err := toRPN(tokens)
	if err != nil {
		return nil, err
	}

	m := automaton.New[V, R, charclass.Class](false)

	var stack []fragment

	pop := func(pos int, opName string) (fragment, error) {
		if len(stack) == 0 {
			return fragment{}, syntaxErr(pos, "operator %q missing operand", opName)
		}
		n := len(stack) - 1
		f := stack[n]
		stack = stack[:n]
		return f, nil
	}

	for _, t := range rpn {
		switch t.kind {
		case tokClass:
			s := m.Insert()
			e := m.Insert()
			m.Connect(s, e, t.class)
			stack = append(stack, fragment{start: s, accept: []int{e}})

		case tokOp:
			switch t.op {
			case '.':
				b, err := pop(t.pos, ".")
				if err != nil {
					return nil, err
				}
				a, err := pop(t.pos, ".")
				if err != nil {
					return nil, err
				}
				for _, acc := range a.accept {
					m.Connect(acc, b.start, charclass.Epsilon)
				}
				stack = append(stack, fragment{start: a.start, accept: b.accept})

			case '|':
				b, err := pop(t.pos, "|")
				if err != nil {
					return nil, err
				}
				a, err := pop(t.pos, "|")
				if err != nil {
					return nil, err
				}
				s := m.Insert()
				e := m.Insert()
				m.Connect(s, a.start, charclass.Epsilon)
				m.Connect(s, b.start, charclass.Epsilon)
				for _, acc := range a.accept {
					m.Connect(acc, e, charclass.Epsilon)
				}
				for _, acc := range b.accept {
					m.Connect(acc, e, charclass.Epsilon)
				}
				stack = append(stack, fragment{start: s, accept: []int{e}})

			case '*':
				a, err := pop(t.pos, "*")
				if err != nil {
					return nil, err
				}
				for _, acc := range a.accept {
					m.Connect(acc, a.start, charclass.Epsilon)
					m.Connect(a.start, acc, charclass.Epsilon)
				}
				stack = append(stack, a)

			case '+':
				a, err := pop(t.pos, "+")
				if err != nil {
					return nil, err
				}
				for _, acc := range a.accept {
					m.Connect(acc, a.start, charclass.Epsilon)
				}
				stack = append(stack, a)

			case '?':
				a, err := pop(t.pos, "?")
				if err != nil {
					return nil, err
				}
				for _, acc := range a.accept {
					m.Connect(a.start, acc, charclass.Epsilon)
				}
				stack = append(stack, a)
			}

		case tokEnd:
			// sentinel, never reaches RPN output
		}
	}

	if len(stack) != 1 {
		return nil, syntaxErr(0, "malformed pattern")
	}

	final := stack[0]
	m.SetStart(final.start)
	for _, acc := range final.accept {
		m.SetAccept(acc, true)
	}

	return m, nil
}
