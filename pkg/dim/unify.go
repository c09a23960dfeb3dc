package dim

import "fmt"

// UnifyResult is the outcome of unifying two dimension expressions: either
// the two sides are equal under Subs, or they are unequal for Reason.
// Unequal is an ordinary outcome for the caller to report, not a Go error.
type UnifyResult struct {
	Equal  bool
	Subs   Subs
	Reason string
}

func unified(subs Subs) UnifyResult {
	return UnifyResult{Equal: true, Subs: subs}
}

func unequal(format string, args ...any) UnifyResult {
	return UnifyResult{Reason: fmt.Sprintf(format, args...)}
}

// Unify attempts to unify two dimension expressions, producing a substitution
// under which they are equal.
func Unify(e1, e2 Expr) UnifyResult {
	if e1.Eq(e2) {
		return unified(NewSubs())
	}

	e1 = Simplify(e1)
	e2 = Simplify(e2)
	if e1.Eq(e2) {
		return unified(NewSubs())
	}

	if v, ok := e1.(Var); ok {
		return bindVar(v, e2)
	}
	if v, ok := e2.(Var); ok {
		return bindVar(v, e1)
	}

	if l1, ok := e1.(Lit); ok {
		if l2, ok := e2.(Lit); ok {
			return unequal("dimension %s does not equal %s", l1, l2)
		}
	}

	// solve linear and power shapes against a literal, in either order
	if n, ok := e2.(Lit); ok {
		if result, solved := solveAgainstLit(e1, int(n)); solved {
			return result
		}
	}
	if n, ok := e1.(Lit); ok {
		if result, solved := solveAgainstLit(e2, int(n)); solved {
			return result
		}
	}

	if b1, ok := e1.(*Binary); ok {
		if b2, ok := e2.(*Binary); ok && b1.Op == b2.Op {
			return unifyChildren(b1.Left, b2.Left, b1.Right, b2.Right)
		}
	}

	if c1, ok := e1.(*Call); ok {
		if c2, ok := e2.(*Call); ok {
			return unifyCalls(c1, c2)
		}
	}

	return unequal("cannot unify %s with %s", e1, e2)
}

// bindVar binds a dimension variable to an expression.
func bindVar(v Var, e Expr) UnifyResult {
	if occursCheck(v, e) {
		return unequal("occurs check failed: %s occurs in %s", v, e)
	}
	return unified(Singleton(string(v), e))
}

// occursCheck checks if a dimension variable occurs in an expression.
func occursCheck(v Var, e Expr) bool {
	return e.FreeVars().Contains(string(v))
}

// solveAgainstLit handles the linear and power shapes that can be solved
// against a known literal n: c*x=n, x+c=n, x^2=n, x^3=n, c^x=n. The second
// return is false when the shape does not apply or has no exact solution.
func solveAgainstLit(e Expr, n int) (UnifyResult, bool) {
	b, ok := e.(*Binary)
	if !ok {
		return UnifyResult{}, false
	}

	switch b.Op {
	case OpMul:
		if c, ok := b.Left.(Lit); ok {
			return solveScaled(b.Right, int(c), n)
		}
		if c, ok := b.Right.(Lit); ok {
			return solveScaled(b.Left, int(c), n)
		}

	case OpAdd:
		if c, ok := b.Left.(Lit); ok {
			return solveShifted(b.Right, int(c), n)
		}
		if c, ok := b.Right.(Lit); ok {
			return solveShifted(b.Left, int(c), n)
		}

	case OpPow:
		if exp, ok := b.Right.(Lit); ok {
			switch exp {
			case 2:
				return solveRoot(b.Left, n, isqrt(n))
			case 3:
				return solveRoot(b.Left, n, icbrt(n))
			}
		}
		if base, ok := b.Left.(Lit); ok && base > 1 {
			return solveExponent(b.Right, int(base), n)
		}
	}

	return UnifyResult{}, false
}

func solveScaled(x Expr, c, n int) (UnifyResult, bool) {
	if c == 0 || n%c != 0 {
		return UnifyResult{}, false
	}
	return Unify(x, Lit(n/c)), true
}

func solveShifted(x Expr, c, n int) (UnifyResult, bool) {
	if n < c {
		return UnifyResult{}, false
	}
	return Unify(x, Lit(n-c)), true
}

func solveRoot(x Expr, n, root int) (UnifyResult, bool) {
	if root < 0 {
		return UnifyResult{}, false
	}
	return Unify(x, Lit(root)), true
}

// solveExponent solves c^x = n for a literal base c > 1 by repeated
// multiplication, accepting only an exact hit.
func solveExponent(x Expr, c, n int) (UnifyResult, bool) {
	power, exp := 1, 0
	for power < n {
		power *= c
		exp++
	}
	if power != n {
		return UnifyResult{}, false
	}
	return Unify(x, Lit(exp)), true
}

// unifyChildren unifies two same-shape binary expressions: left children
// first, then the right children under the substitution the left side
// produced. The left-to-right order is a fixed tie-break.
func unifyChildren(l1, l2, r1, r2 Expr) UnifyResult {
	left := Unify(l1, l2)
	if !left.Equal {
		return left
	}

	right := Unify(left.Subs.Apply(r1), left.Subs.Apply(r2))
	if !right.Equal {
		return right
	}

	return unified(left.Subs.Compose(right.Subs))
}

func unifyCalls(c1, c2 *Call) UnifyResult {
	if c1.Name != c2.Name {
		return unequal("cannot unify call %s with call %s", c1.Name, c2.Name)
	}
	if len(c1.Args) != len(c2.Args) {
		return unequal("cannot unify %s: %d arguments vs %d", c1.Name, len(c1.Args), len(c2.Args))
	}

	subs := NewSubs()
	for i := range c1.Args {
		result := Unify(subs.Apply(c1.Args[i]), subs.Apply(c2.Args[i]))
		if !result.Equal {
			return result
		}
		subs = subs.Compose(result.Subs)
	}
	return unified(subs)
}

// isqrt returns the integer square root of n, or -1 if n is not an exact
// square.
func isqrt(n int) int {
	for i := 0; i*i <= n; i++ {
		if i*i == n {
			return i
		}
	}
	return -1
}

// icbrt returns the integer cube root of n, or -1 if n is not an exact cube.
func icbrt(n int) int {
	for i := 0; i*i*i <= n; i++ {
		if i*i*i == n {
			return i
		}
	}
	return -1
}
