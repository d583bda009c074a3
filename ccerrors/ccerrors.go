// Package ccerrors implements the six error kinds from spec.md §7: regex
// syntax, grammar reference, grammar conflict, lexer runtime, parser
// runtime, and action runtime. Every error carries a human-readable message
// and, where meaningful, a position index; every error raised is fatal to its
// enclosing top-level call (grammar build or input compile) and no partial
// output is ever returned alongside one. Grammar conflicts are not raised as
// errors: the lr package resolves them and returns them as lr.Conflict values.
//
// Grounded on internal/tqerrors.go's wrap/human-message shape (the teacher's
// own icterrors package, which parse/lr.go and clr1.go actually import, was
// never present among the retrieved files). Human-facing messages are
// word-wrapped with github.com/dekarrin/rosed, the same library the teacher
// uses for long narrative text elsewhere in the repo.
package ccerrors

import (
	"fmt"

	"github.com/dekarrin/rosed"
)

// Kind distinguishes the six error categories from spec.md §7.
type Kind int

const (
	RegexSyntax Kind = iota
	GrammarReference
	GrammarConflict
	LexerRuntime
	ParserRuntime
	ActionRuntime
)

func (k Kind) String() string {
	switch k {
	case RegexSyntax:
		return "regex syntax error"
	case GrammarReference:
		return "grammar reference error"
	case GrammarConflict:
		return "grammar conflict"
	case LexerRuntime:
		return "lexer error"
	case ParserRuntime:
		return "parser error"
	case ActionRuntime:
		return "action error"
	default:
		return "error"
	}
}

// Error is the uniform error type grouper raises. HasPos reports whether Pos
// is meaningful: errors built with NewAt (lexer errors and the grammar-source
// errors that point at a byte offset) carry one; the others do not.
type Error struct {
	Kind   Kind
	Msg    string
	Pos    int
	HasPos bool
	wrap   error
}

func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Kind, e.Msg)
	if e.HasPos {
		msg = fmt.Sprintf("%s (at position %d)", msg, e.Pos)
	}
	return rosed.Edit(msg).Wrap(100).String()
}

// Unwrap exposes any wrapped underlying error.
func (e *Error) Unwrap() error {
	return e.wrap
}

// New builds an Error of the given kind with no position.
func New(kind Kind, format string, a ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...)}
}

// NewAt builds an Error of the given kind carrying a byte position.
func NewAt(kind Kind, pos int, format string, a ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...), Pos: pos, HasPos: true}
}

// Wrap builds an Error of the given kind that wraps an underlying cause.
func Wrap(kind Kind, cause error, format string, a ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, a...), wrap: cause}
}
