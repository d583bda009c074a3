// Package actions implements the ActionRegistry from spec.md §4.8: a mapping
// from action names to callables of type (sequence of value) -> value, where
// value is the uniform exchange type. The reference design uses strings;
// this implementation generalizes to any, per spec.md §9's design note that
// doing so affects no algorithm, since the driver only moves values and never
// inspects them.
//
// Grounded in shape on the teacher's lex.Action/ActionType enum
// (internal/ictiobus/lex/action.go, internal/ictiobus/types/token.go), which
// registers lexer-side actions by similarly simple value; this package plays
// the same role for parser-side reduction actions.
package actions

// Func is one registered action: given the reduced production's argument
// values in left-to-right order, it returns the reduction's result value.
type Func func(args []any) any

// Registry holds named actions. Registering the same name twice replaces the
// previous callable (idempotent replace, per spec.md §6).
type Registry struct {
	byName map[string]Func
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{byName: map[string]Func{}}
}

// Register associates name with fn, replacing any existing registration.
func (r *Registry) Register(name string, fn Func) {
	r.byName[name] = fn
}

// Lookup returns the action registered under name, and whether one exists.
func (r *Registry) Lookup(name string) (Func, bool) {
	fn, ok := r.byName[name]
	return fn, ok
}
