package dim

// Simplify rewrites an expression into a simpler equivalent form: fully
// concrete expressions collapse to a literal, and per-operator algebraic
// identities (x+0=x, x*1=x, x^1=x, ...) are applied after simplifying
// children. Simplify is idempotent.
func Simplify(e Expr) Expr {
	if n, ok := Evaluate(e); ok {
		return Lit(n)
	}

	switch t := e.(type) {
	case *Binary:
		return simplifyBinary(t.Op, Simplify(t.Left), Simplify(t.Right))

	case *Call:
		args := make([]Expr, len(t.Args))
		for i, arg := range t.Args {
			args[i] = Simplify(arg)
		}
		// folding to a literal only happens when every argument became
		// concrete and the function is recognized, which the top-level
		// Evaluate already covers; here the call stays symbolic
		return &Call{Name: t.Name, Args: args}

	default:
		return e
	}
}

func simplifyBinary(op Op, l, r Expr) Expr {
	switch op {
	case OpAdd:
		if l.Eq(Lit(0)) {
			return r
		}
		if r.Eq(Lit(0)) {
			return l
		}

	case OpSub:
		if r.Eq(Lit(0)) {
			return l
		}

	case OpMul:
		if l.Eq(Lit(0)) || r.Eq(Lit(0)) {
			return Lit(0)
		}
		if l.Eq(Lit(1)) {
			return r
		}
		if r.Eq(Lit(1)) {
			return l
		}

	case OpDiv:
		if l.Eq(Lit(0)) {
			return Lit(0)
		}
		if r.Eq(Lit(1)) {
			return l
		}

	case OpPow:
		if r.Eq(Lit(0)) {
			return Lit(1)
		}
		if r.Eq(Lit(1)) {
			return l
		}
		if l.Eq(Lit(0)) {
			return Lit(0)
		}
		if l.Eq(Lit(1)) {
			return Lit(1)
		}
	}

	folded := &Binary{Op: op, Left: l, Right: r}
	if n, ok := Evaluate(folded); ok {
		return Lit(n)
	}
	return folded
}
