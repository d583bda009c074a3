// Package runtime implements the RuntimeDriver from spec.md §4.7: the
// maximal-munch lexer scanning loop and the two-stack shift/reduce parser
// driver, dispatching registered actions directly at reduce time instead of
// building a parse tree for later evaluation.
//
// Grounded in shape on the teacher's parse.lrParser.Parse
// (internal/ictiobus/parse/lr.go) — the state-stack-plus-value-stack
// pattern — REDESIGNED per spec.md to drop the parse-tree/SDD two-phase
// evaluation the teacher performs in favor of direct reduce-time dispatch.
package runtime

import (
	"github.com/hhenn/grouper/automaton"
	"github.com/hhenn/grouper/ccerrors"
	"github.com/hhenn/grouper/charclass"
	"github.com/hhenn/grouper/lex"
)

// Token is one lexical unit: its id, the matched lexeme text, and its start
// offset in the source.
type Token struct {
	ID     int
	Lexeme string
	Pos    int
}

// Lexer drives a compiled DFA over an input string with the maximal-munch
// policy from spec.md §4.7: on each byte, follow an edge whose character
// class contains it; remember the latest accepting (position, token id,
// state) triple reached; on a dead end, back off to that last accepting
// point and emit the accumulated token, resuming scanning from there. End of
// input flushes any pending accept, then yields token id 0 exactly once.
type Lexer struct {
	compiled *lex.Compiled
	input    string
	pos      int
	emittedEnd bool
}

// NewLexer creates a Lexer scanning input with compiled.
func NewLexer(compiled *lex.Compiled, input string) *Lexer {
	return &Lexer{compiled: compiled, input: input}
}

// Next returns the next token, or an "unknown token" / truncated-input
// ccerrors.LexerRuntime error. After the final real token, Next returns one
// token with id 0 (end-of-input) and then must not be called again.
func (l *Lexer) Next() (Token, error) {
	if l.pos >= len(l.input) {
		if l.emittedEnd {
			return Token{}, ccerrors.New(ccerrors.LexerRuntime, "read past end-of-input")
		}
		l.emittedEnd = true
		return Token{ID: 0, Pos: l.pos}, nil
	}

	dfa := l.compiled.DFA
	state := dfa.Start()
	tokenStart := l.pos
	cursor := l.pos

	type accepted struct {
		pos   int
		token int
	}
	var last *accepted
	if r, ok := dfa.Reduction(state); ok && dfa.IsAccepting(state) {
		last = &accepted{pos: cursor, token: r}
	}

	for cursor < len(l.input) {
		b := l.input[cursor]
		next, ok := stepDFA(dfa, state, b)
		if !ok {
			break
		}
		state = next
		cursor++
		if dfa.IsAccepting(state) {
			if r, ok := dfa.Reduction(state); ok {
				last = &accepted{pos: cursor, token: r}
			}
		}
	}

	if last == nil {
		return Token{}, ccerrors.NewAt(ccerrors.LexerRuntime, tokenStart, "unknown token")
	}

	lexeme := l.input[tokenStart:last.pos]
	l.pos = last.pos
	return Token{ID: last.token, Lexeme: lexeme, Pos: tokenStart}, nil
}

// stepDFA follows the deterministic edge out of state whose character class
// contains b, if one exists. Deterministic machines guarantee at most one
// outgoing edge can match.
func stepDFA(dfa *automaton.Machine[any, int, charclass.Class], state int, b byte) (int, bool) {
	for _, t := range dfa.Out(state) {
		if t.Label.Has(b) {
			return t.To, true
		}
	}
	return 0, false
}
