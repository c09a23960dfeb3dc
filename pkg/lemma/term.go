package lemma

import (
	"fmt"
	"strings"
)

// Term represents a node in the evaluated-expression tree. Terms are finite,
// acyclic, and compared structurally.
type Term interface {
	// Equal reports structural equality.
	Equal(Term) bool
	// Clone returns a deep copy of the term.
	Clone() Term
	fmt.Stringer
}

// Constant is a literal constant carried as text; the evaluator never
// interprets it numerically.
type Constant struct {
	Text string
}

func (c *Constant) Equal(other Term) bool {
	oc, ok := other.(*Constant)
	return ok && c.Text == oc.Text
}

func (c *Constant) Clone() Term { return &Constant{Text: c.Text} }

func (c *Constant) String() string { return c.Text }

// Reference is a free or bound identifier.
type Reference struct {
	Name string
}

func (r *Reference) Equal(other Term) bool {
	or, ok := other.(*Reference)
	return ok && r.Name == or.Name
}

func (r *Reference) Clone() Term { return &Reference{Name: r.Name} }

func (r *Reference) String() string { return r.Name }

// Operation is a named n-ary operation applied to ordered arguments.
type Operation struct {
	Name string
	Args []Term
}

func (o *Operation) Equal(other Term) bool {
	oo, ok := other.(*Operation)
	if !ok || o.Name != oo.Name || len(o.Args) != len(oo.Args) {
		return false
	}
	for i := range o.Args {
		if !o.Args[i].Equal(oo.Args[i]) {
			return false
		}
	}
	return true
}

func (o *Operation) Clone() Term {
	args := make([]Term, len(o.Args))
	for i, arg := range o.Args {
		args[i] = arg.Clone()
	}
	return &Operation{Name: o.Name, Args: args}
}

func (o *Operation) String() string {
	args := make([]string, len(o.Args))
	for i, arg := range o.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", o.Name, strings.Join(args, ", "))
}

// Sequence is an ordered sequence of terms.
type Sequence struct {
	Items []Term
}

func (s *Sequence) Equal(other Term) bool {
	os, ok := other.(*Sequence)
	if !ok || len(s.Items) != len(os.Items) {
		return false
	}
	for i := range s.Items {
		if !s.Items[i].Equal(os.Items[i]) {
			return false
		}
	}
	return true
}

func (s *Sequence) Clone() Term {
	items := make([]Term, len(s.Items))
	for i, item := range s.Items {
		items[i] = item.Clone()
	}
	return &Sequence{Items: items}
}

func (s *Sequence) String() string {
	items := make([]string, len(s.Items))
	for i, item := range s.Items {
		items[i] = item.String()
	}
	return fmt.Sprintf("[%s]", strings.Join(items, ", "))
}

// MatchExpr matches a scrutinee against an ordered list of clauses.
type MatchExpr struct {
	Scrutinee Term
	Clauses   []Clause
}

func (m *MatchExpr) Equal(other Term) bool {
	om, ok := other.(*MatchExpr)
	if !ok || len(m.Clauses) != len(om.Clauses) || !m.Scrutinee.Equal(om.Scrutinee) {
		return false
	}
	for i := range m.Clauses {
		if !m.Clauses[i].Pattern.Equal(om.Clauses[i].Pattern) {
			return false
		}
		if !m.Clauses[i].Body.Equal(om.Clauses[i].Body) {
			return false
		}
	}
	return true
}

func (m *MatchExpr) Clone() Term {
	clauses := make([]Clause, len(m.Clauses))
	for i, cl := range m.Clauses {
		clauses[i] = Clause{Pattern: cl.Pattern, Body: cl.Body.Clone()}
	}
	return &MatchExpr{Scrutinee: m.Scrutinee.Clone(), Clauses: clauses}
}

func (m *MatchExpr) String() string {
	clauses := make([]string, len(m.Clauses))
	for i, cl := range m.Clauses {
		clauses[i] = fmt.Sprintf("%s => %s", cl.Pattern, cl.Body)
	}
	return fmt.Sprintf("match %s { %s }", m.Scrutinee, strings.Join(clauses, ", "))
}

// Clause pairs one pattern with one body term.
type Clause struct {
	Pattern Pattern
	Body    Term
}

// Closure is a stored function definition: parameter names plus a body, with
// no captured environment. Instantiation at call time is pure substitution.
type Closure struct {
	Params []string
	Body   Term
}

// FunctionDef is a top-level function definition as produced by the parser.
type FunctionDef struct {
	Name   string
	Params []string
	Body   Term
}

// Program is the parser's view of a source file: an ordered list of top-level
// function definitions.
type Program struct {
	Defs []*FunctionDef
}

// Bindings maps variable names to terms. A fresh map is built per match
// attempt and per function application and is never shared across attempts.
type Bindings map[string]Term
