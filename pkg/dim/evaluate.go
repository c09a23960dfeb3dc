package dim

// Evaluate reduces a fully concrete expression to an integer. The boolean is
// false when the expression is still symbolic (it mentions a variable, an
// unrecognized function, a subtraction that would go negative, or a division
// by zero); that is an "undetermined" signal, not an error.
func Evaluate(e Expr) (int, bool) {
	switch t := e.(type) {
	case Lit:
		return int(t), true

	case Var:
		return 0, false

	case *Binary:
		l, ok := Evaluate(t.Left)
		if !ok {
			return 0, false
		}
		r, ok := Evaluate(t.Right)
		if !ok {
			return 0, false
		}
		return evalOp(t.Op, l, r)

	case *Call:
		if len(t.Args) != 2 {
			return 0, false
		}
		a, ok := Evaluate(t.Args[0])
		if !ok {
			return 0, false
		}
		b, ok := Evaluate(t.Args[1])
		if !ok {
			return 0, false
		}
		return evalCall(t.Name, a, b)

	default:
		return 0, false
	}
}

// IsConcrete reports whether the expression reduces to an integer.
func IsConcrete(e Expr) bool {
	_, ok := Evaluate(e)
	return ok
}

func evalOp(op Op, l, r int) (int, bool) {
	switch op {
	case OpAdd:
		return l + r, true
	case OpSub:
		if l < r {
			// dimensions are non-negative
			return 0, false
		}
		return l - r, true
	case OpMul:
		return l * r, true
	case OpDiv:
		if r == 0 {
			return 0, false
		}
		return l / r, true
	case OpPow:
		result := 1
		for i := 0; i < r; i++ {
			result *= l
		}
		return result, true
	default:
		return 0, false
	}
}

func evalCall(name string, a, b int) (int, bool) {
	switch name {
	case "min":
		return min(a, b), true
	case "max":
		return max(a, b), true
	case "gcd":
		return gcd(a, b), true
	case "lcm":
		g := gcd(a, b)
		if g == 0 {
			return 0, true
		}
		return a / g * b, true
	default:
		return 0, false
	}
}

// gcd computes the greatest common divisor via the Euclidean algorithm.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}
