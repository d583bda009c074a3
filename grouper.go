// Package grouper is the root façade over the whole compiler-compiler
// pipeline: parse grammar source, compile the lexer and parser tables, and
// run the combined lex/parse/act pipeline over an input string.
//
// Grounded on the teacher's internal/ictiobus/ictiobus.go Frontend[E] façade
// (NewLexer/NewParser/AnalyzeString pipeline), simplified since registered
// actions replace the teacher's separate attribute-grammar SDD evaluation
// pass: there is no Analyze/Evaluate split here, just Compile.
package grouper

import (
	"github.com/hhenn/grouper/actions"
	"github.com/hhenn/grouper/grammar"
	"github.com/hhenn/grouper/grammarfile"
	"github.com/hhenn/grouper/lex"
	"github.com/hhenn/grouper/lr"
	"github.com/hhenn/grouper/runtime"
)

// Mode selects the LR table construction algorithm.
type Mode int

const (
	// CanonicalLR1 is the default: the full canonical LR(1) collection,
	// per spec.md §4.6.
	CanonicalLR1 Mode = iota
	// LALR1 merges canonical states with identical item cores, per the
	// DOMAIN STACK supplement grounded on original_source/fox-yacc.
	LALR1
)

// Compiler holds a fully compiled grammar: its lexer DFA, its parser action
// table, and the registered action callables.
type Compiler struct {
	grammar    *grammar.Grammar
	lexer      *lex.Compiled
	table      *lr.Table
	registry   *actions.Registry
	Conflicts  []lr.Conflict
}

// New parses grammarSource (the %%-delimited format from spec.md §6),
// compiles its lexer and parser tables, and returns a ready Compiler.
// Conflicts encountered while building the parser table are resolved per
// the declared policy and recorded on the returned Compiler rather than
// aborting construction.
func New(grammarSource string, mode Mode) (*Compiler, error) {
	parsed, err := grammarfile.Parse(grammarSource)
	if err != nil {
		return nil, err
	}

	compiledLexer, err := lex.Compile(parsed.Tokens)
	if err != nil {
		return nil, err
	}

	var table *lr.Table
	var conflicts []lr.Conflict
	if mode == LALR1 {
		table, conflicts, err = lr.BuildLALR(parsed.Grammar)
	} else {
		table, conflicts, err = lr.Build(parsed.Grammar)
	}
	if err != nil {
		return nil, err
	}

	return &Compiler{
		grammar:   parsed.Grammar,
		lexer:     compiledLexer,
		table:     table,
		registry:  actions.NewRegistry(),
		Conflicts: conflicts,
	}, nil
}

// RegisterAction associates name with fn; a duplicate name replaces the
// previous registration (idempotent replace, per spec.md §6).
func (c *Compiler) RegisterAction(name string, fn actions.Func) {
	c.registry.Register(name, fn)
}

// Compile runs the lex/parse/act pipeline over input, returning the single
// value produced by the accepting reduction.
func (c *Compiler) Compile(input string) (any, error) {
	lexerInstance := runtime.NewLexer(c.lexer, input)
	parser := runtime.NewParser(c.grammar, c.table, c.registry)
	return parser.Run(lexerInstance)
}
