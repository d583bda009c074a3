package runtime

import (
	"github.com/hhenn/grouper/actions"
	"github.com/hhenn/grouper/ccerrors"
	"github.com/hhenn/grouper/grammar"
	"github.com/hhenn/grouper/lr"
	"github.com/hhenn/grouper/util"
)

// frame is one entry of the parser's control stack: the state reached, and
// the symbol most recently shifted or reduced into it.
type frame struct {
	state  int
	symbol int
}

// Parser drives lr.Table over a token stream, maintaining the two-stack
// shift/reduce machine from spec.md §4.7: a control stack interleaving state
// ids with the symbol shifted into each, and a parallel value stack holding
// one value per control-stack frame.
type Parser struct {
	g        *grammar.Grammar
	table    *lr.Table
	registry *actions.Registry
}

// NewParser creates a Parser over the given grammar, compiled table, and
// action registry.
func NewParser(g *grammar.Grammar, table *lr.Table, registry *actions.Registry) *Parser {
	return &Parser{g: g, table: table, registry: registry}
}

// Run executes the shift/reduce driver against lexer, returning the single
// value remaining on the value stack when the accept action fires.
func (p *Parser) Run(lexer *Lexer) (any, error) {
	var control util.Stack[frame]
	var values util.Stack[any]

	control.Push(frame{state: p.table.StartState})

	lookahead, err := lexer.Next()
	if err != nil {
		return nil, err
	}

	for {
		top := control.Peek()
		action, ok := p.table.ActionOf(top.state, lookahead.ID)
		if !ok {
			expected := make([]string, 0)
			for _, term := range p.table.ExpectedTerminals(top.state) {
				expected = append(expected, p.g.SymbolName(term))
			}
			return nil, ccerrors.New(ccerrors.ParserRuntime,
				"unexpected %s, expected %s", p.g.SymbolName(lookahead.ID), util.MakeTextList(expected))
		}

		switch action.Kind {
		case lr.ActionShift:
			control.Push(frame{state: action.Target, symbol: lookahead.ID})
			values.Push(lookahead.Lexeme)
			lookahead, err = lexer.Next()
			if err != nil {
				return nil, err
			}

		case lr.ActionReduce:
			prod := p.g.Productions()[action.Production]
			n := prod.Len()
			args := make([]any, n)
			for i := n - 1; i >= 0; i-- {
				args[i] = values.Pop()
				control.Pop()
			}

			var result any
			if prod.Action != "" {
				fn, ok := p.registry.Lookup(prod.Action)
				if !ok {
					return nil, ccerrors.New(ccerrors.ActionRuntime, "no registered action %q", prod.Action)
				}
				result = fn(args)
			}

			gotoState, ok := p.table.GotoOf(control.Peek().state, prod.LHS)
			if !ok {
				return nil, ccerrors.New(ccerrors.ParserRuntime, "no goto from state %d on %s", control.Peek().state, p.g.SymbolName(prod.LHS))
			}
			control.Push(frame{state: gotoState, symbol: prod.LHS})
			values.Push(result)

		case lr.ActionAccept:
			return values.Peek(), nil

		default:
			return nil, ccerrors.New(ccerrors.ParserRuntime, "compilation error at token %s", p.g.SymbolName(lookahead.ID))
		}
	}
}
