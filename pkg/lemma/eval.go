package lemma

import (
	"log/slog"

	"github.com/pkg/errors"
)

// Evaluator evaluates terms symbolically: user functions are applied by
// substitution, match expressions are resolved through the pattern matcher,
// and built-in operations go through the algebraic simplifier. Numeric
// constants are never folded.
//
// The function table is populated during a load phase and read-only
// afterwards; concurrent Eval calls against a loaded evaluator are safe.
// Callers that need to reload a program construct a fresh evaluator rather
// than mutating one mid-evaluation.
type Evaluator struct {
	fns map[string]*Closure
	cfg EvalConfig
}

// New creates an evaluator with an empty function table and no recursion
// bound.
func New() *Evaluator {
	return NewWithConfig(EvalConfig{})
}

// NewWithConfig creates an evaluator honoring the given limits.
func NewWithConfig(cfg EvalConfig) *Evaluator {
	return &Evaluator{
		fns: map[string]*Closure{},
		cfg: cfg,
	}
}

// LoadFunctionDef stores one top-level function definition. Loading the same
// name again overwrites the previous definition; "already defined"
// diagnostics are the caller's concern.
func (e *Evaluator) LoadFunctionDef(def *FunctionDef) error {
	if def == nil {
		return errors.Errorf("cannot load a nil function definition")
	}
	if def.Body == nil {
		return errors.Errorf("function %s has no body", def.Name)
	}
	slog.Debug("loading function definition", "function", def.Name, "params", len(def.Params))
	e.fns[def.Name] = &Closure{
		Params: append([]string{}, def.Params...),
		Body:   def.Body.Clone(),
	}
	return nil
}

// LoadProgram loads every top-level function definition of a program.
func (e *Evaluator) LoadProgram(prog *Program) error {
	if prog == nil {
		return errors.Errorf("cannot load a nil program")
	}
	for _, def := range prog.Defs {
		if err := e.LoadFunctionDef(def); err != nil {
			return err
		}
	}
	slog.Debug("program loaded", "functions", len(e.fns))
	return nil
}

// HasFunction reports whether a function name is defined.
func (e *Evaluator) HasFunction(name string) bool {
	_, ok := e.fns[name]
	return ok
}

// GetFunction returns a copy of a stored closure, for introspection and
// pretty-printing rather than evaluation.
func (e *Evaluator) GetFunction(name string) (*Closure, bool) {
	fn, ok := e.fns[name]
	if !ok {
		return nil, false
	}
	return &Closure{
		Params: append([]string{}, fn.Params...),
		Body:   fn.Body.Clone(),
	}, true
}

// ApplyFunction applies a user function to already-evaluated arguments: the
// closure body has each parameter substituted with its argument and the
// result is evaluated.
func (e *Evaluator) ApplyFunction(name string, args []Term) (Term, error) {
	return e.applyFunction(name, args, 0)
}

func (e *Evaluator) applyFunction(name string, args []Term, depth int) (Term, error) {
	fn, ok := e.fns[name]
	if !ok {
		return nil, &UndefinedFunctionError{Name: name}
	}
	if len(args) != len(fn.Params) {
		return nil, &ArityMismatchError{Name: name, Expected: len(fn.Params), Actual: len(args)}
	}

	binds := make(Bindings, len(args))
	for i, param := range fn.Params {
		binds[param] = args[i]
	}

	// a closure has no captured environment, so substitution is the whole
	// instantiation step
	return e.eval(Substitute(fn.Body, binds), depth+1)
}

// Eval reduces a term: arguments are evaluated left to right, user functions
// are applied by substitution, built-ins are handed to the simplifier, and
// match results are evaluated again. Constants and references are fixed
// points.
func (e *Evaluator) Eval(t Term) (Term, error) {
	return e.eval(t, 0)
}

func (e *Evaluator) eval(t Term, depth int) (Term, error) {
	if e.cfg.MaxDepth > 0 && depth > e.cfg.MaxDepth {
		return nil, &RecursionLimitError{Limit: e.cfg.MaxDepth}
	}

	switch t := t.(type) {
	case *Operation:
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			val, err := e.eval(arg, depth+1)
			if err != nil {
				return nil, err
			}
			args[i] = val
		}
		if e.HasFunction(t.Name) {
			return e.applyFunction(t.Name, args, depth)
		}
		return Simplify(&Operation{Name: t.Name, Args: args}), nil

	case *MatchExpr:
		scrutinee, err := e.eval(t.Scrutinee, depth+1)
		if err != nil {
			return nil, err
		}
		body, err := EvalMatch(scrutinee, t.Clauses)
		if err != nil {
			return nil, err
		}
		// the matched body may itself contain operations or function
		// calls that still have to be reduced
		return e.eval(body, depth+1)

	case *Sequence:
		items := make([]Term, len(t.Items))
		for i, item := range t.Items {
			val, err := e.eval(item, depth+1)
			if err != nil {
				return nil, err
			}
			items[i] = val
		}
		return &Sequence{Items: items}, nil

	default:
		return t, nil
	}
}

// Substitute replaces every reference bound in binds with its value,
// recursing through operation arguments, sequence elements, and both the
// scrutinee and every clause body of a match expression. Patterns are left
// untouched; they introduce their own bindings independently.
func Substitute(t Term, binds Bindings) Term {
	switch t := t.(type) {
	case *Reference:
		if val, ok := binds[t.Name]; ok {
			return val.Clone()
		}
		return t

	case *Operation:
		args := make([]Term, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Substitute(arg, binds)
		}
		return &Operation{Name: t.Name, Args: args}

	case *Sequence:
		items := make([]Term, len(t.Items))
		for i, item := range t.Items {
			items[i] = Substitute(item, binds)
		}
		return &Sequence{Items: items}

	case *MatchExpr:
		clauses := make([]Clause, len(t.Clauses))
		for i, cl := range t.Clauses {
			clauses[i] = Clause{Pattern: cl.Pattern, Body: Substitute(cl.Body, binds)}
		}
		return &MatchExpr{Scrutinee: Substitute(t.Scrutinee, binds), Clauses: clauses}

	default:
		return t
	}
}
