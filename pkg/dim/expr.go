package dim

import (
	"fmt"
	"strings"
)

// Expr represents a dimension expression: the arithmetic that appears as a
// type-level parameter, e.g. the 2n in Matrix(2n, 2n).
type Expr interface {
	// Apply applies a substitution to the expression.
	Apply(Subs) Expr
	// FreeVars returns the dimension variables appearing in the expression.
	FreeVars() VarSet
	// Eq reports structural equality.
	Eq(Expr) bool
	fmt.Stringer
}

// Lit is an integer literal. Dimensions are non-negative; nothing in this
// package constructs a negative Lit (checked subtraction stays symbolic
// rather than going below zero), and callers building expressions by hand
// carry the same obligation.
type Lit int

func (l Lit) Apply(subs Subs) Expr { return l }

func (l Lit) FreeVars() VarSet { return nil }

func (l Lit) Eq(other Expr) bool {
	ol, ok := other.(Lit)
	return ok && l == ol
}

func (l Lit) String() string { return fmt.Sprintf("%d", int(l)) }

// Var is a named dimension variable.
type Var string

func (v Var) Apply(subs Subs) Expr {
	if e, exists := subs[string(v)]; exists {
		// Resolve chains where one bound value mentions another bound
		// variable. Terminates because the substitution constructors
		// enforce the occurs check; see Subs.
		return e.Apply(subs)
	}
	return v
}

func (v Var) FreeVars() VarSet { return NewVarSet(string(v)) }

func (v Var) Eq(other Expr) bool {
	ov, ok := other.(Var)
	return ok && v == ov
}

func (v Var) String() string { return string(v) }

// Op identifies a binary arithmetic operator.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpDiv
	OpPow
)

func (op Op) String() string {
	switch op {
	case OpAdd:
		return "+"
	case OpSub:
		return "-"
	case OpMul:
		return "*"
	case OpDiv:
		return "/"
	case OpPow:
		return "^"
	default:
		return "?"
	}
}

// Binary is a binary arithmetic node.
type Binary struct {
	Op    Op
	Left  Expr
	Right Expr
}

func (b *Binary) Apply(subs Subs) Expr {
	return &Binary{
		Op:    b.Op,
		Left:  b.Left.Apply(subs),
		Right: b.Right.Apply(subs),
	}
}

func (b *Binary) FreeVars() VarSet {
	return b.Left.FreeVars().Union(b.Right.FreeVars())
}

func (b *Binary) Eq(other Expr) bool {
	ob, ok := other.(*Binary)
	return ok && b.Op == ob.Op && b.Left.Eq(ob.Left) && b.Right.Eq(ob.Right)
}

func (b *Binary) String() string {
	return fmt.Sprintf("(%s %s %s)", b.Left, b.Op, b.Right)
}

// Add returns l + r.
func Add(l, r Expr) *Binary { return &Binary{Op: OpAdd, Left: l, Right: r} }

// Sub returns l - r.
func Sub(l, r Expr) *Binary { return &Binary{Op: OpSub, Left: l, Right: r} }

// Mul returns l * r.
func Mul(l, r Expr) *Binary { return &Binary{Op: OpMul, Left: l, Right: r} }

// Div returns l / r.
func Div(l, r Expr) *Binary { return &Binary{Op: OpDiv, Left: l, Right: r} }

// Pow returns l ^ r.
func Pow(l, r Expr) *Binary { return &Binary{Op: OpPow, Left: l, Right: r} }

// Call is a named dimension function applied to arguments, e.g. min(m, n).
type Call struct {
	Name string
	Args []Expr
}

func (c *Call) Apply(subs Subs) Expr {
	args := make([]Expr, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.Apply(subs)
	}
	return &Call{Name: c.Name, Args: args}
}

func (c *Call) FreeVars() VarSet {
	vars := NewVarSet()
	for _, arg := range c.Args {
		vars = vars.Union(arg.FreeVars())
	}
	return vars
}

func (c *Call) Eq(other Expr) bool {
	oc, ok := other.(*Call)
	if !ok || c.Name != oc.Name || len(c.Args) != len(oc.Args) {
		return false
	}
	for i := range c.Args {
		if !c.Args[i].Eq(oc.Args[i]) {
			return false
		}
	}
	return true
}

func (c *Call) String() string {
	args := make([]string, len(c.Args))
	for i, arg := range c.Args {
		args[i] = arg.String()
	}
	return fmt.Sprintf("%s(%s)", c.Name, strings.Join(args, ", "))
}

// VarSet represents a set of dimension variable names.
type VarSet map[string]bool

// NewVarSet creates a new VarSet.
func NewVarSet(names ...string) VarSet {
	set := make(VarSet)
	for _, name := range names {
		set[name] = true
	}
	return set
}

// Union returns the union of two VarSets.
func (vs VarSet) Union(other VarSet) VarSet {
	result := make(VarSet)
	for name := range vs {
		result[name] = true
	}
	for name := range other {
		result[name] = true
	}
	return result
}

// Contains checks if a variable name is in the set.
func (vs VarSet) Contains(name string) bool {
	return vs[name]
}
