package lemma

import (
	"fmt"
	"strings"
)

// Pattern represents a structural pattern in a match clause.
type Pattern interface {
	// Equal reports structural equality.
	Equal(Pattern) bool
	fmt.Stringer
}

// Wildcard matches any term and binds nothing.
type Wildcard struct{}

func (w *Wildcard) Equal(other Pattern) bool {
	_, ok := other.(*Wildcard)
	return ok
}

func (w *Wildcard) String() string { return "_" }

// VariablePattern matches any term and binds it to a name.
type VariablePattern struct {
	Name string
}

func (v *VariablePattern) Equal(other Pattern) bool {
	ov, ok := other.(*VariablePattern)
	return ok && v.Name == ov.Name
}

func (v *VariablePattern) String() string { return v.Name }

// ConstructorPattern matches an operation term by name and arity, matching
// each sub-pattern against the corresponding argument.
type ConstructorPattern struct {
	Name string
	Args []Pattern
}

func (c *ConstructorPattern) Equal(other Pattern) bool {
	oc, ok := other.(*ConstructorPattern)
	if !ok || c.Name != oc.Name || len(c.Args) != len(oc.Args) {
		return false
	}
	for i := range c.Args {
		if !c.Args[i].Equal(oc.Args[i]) {
			return false
		}
	}
	return true
}

func (c *ConstructorPattern) String() string {
	if len(c.Args) == 0 {
		return c.Name
	}
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

// LiteralPattern matches a constant term with identical text.
type LiteralPattern struct {
	Text string
}

func (l *LiteralPattern) Equal(other Pattern) bool {
	ol, ok := other.(*LiteralPattern)
	return ok && l.Text == ol.Text
}

func (l *LiteralPattern) String() string { return l.Text }

// MatchPattern structurally matches a term against a pattern, returning the
// bindings it produced. The boolean is false when the term does not match.
func MatchPattern(term Term, pattern Pattern) (Bindings, bool) {
	binds := Bindings{}
	if !matchInto(term, pattern, binds) {
		return nil, false
	}
	return binds, true
}

// matchInto accumulates bindings into a map shared across sub-patterns, so a
// later sub-pattern observes bindings from an earlier sibling. Duplicate
// variable names within one pattern are not rejected; the last bound
// occurrence wins.
func matchInto(term Term, pattern Pattern, binds Bindings) bool {
	switch p := pattern.(type) {
	case *Wildcard:
		return true

	case *VariablePattern:
		binds[p.Name] = term.Clone()
		return true

	case *LiteralPattern:
		c, ok := term.(*Constant)
		return ok && c.Text == p.Text

	case *ConstructorPattern:
		// zero-argument data constructors like True reach us as plain
		// references once the parser has processed them
		if len(p.Args) == 0 {
			if ref, ok := term.(*Reference); ok {
				return ref.Name == p.Name
			}
		}
		op, ok := term.(*Operation)
		if !ok || op.Name != p.Name || len(op.Args) != len(p.Args) {
			return false
		}
		for i := range p.Args {
			if !matchInto(op.Args[i], p.Args[i], binds) {
				return false
			}
		}
		return true

	default:
		return false
	}
}

// EvalMatch tries each clause strictly in source order and returns the first
// matching clause's body with the pattern's bindings substituted in. The
// result has not been further evaluated; callers that need a reduced term
// evaluate it again.
func EvalMatch(scrutinee Term, clauses []Clause) (Term, error) {
	for _, cl := range clauses {
		binds, ok := MatchPattern(scrutinee, cl.Pattern)
		if !ok {
			continue
		}
		return Substitute(cl.Body, binds), nil
	}
	return nil, &NonExhaustiveMatchError{Scrutinee: scrutinee}
}
