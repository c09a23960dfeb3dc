package lemma

// builtin identifies an operation the simplifier knows about. Keeping the set
// closed lets the dispatch switch be exhaustive; anything outside it is a
// user function resolved by name through the evaluator's table.
type builtin int

const (
	builtinPlus builtin = iota
	builtinTimes
)

// builtinFor resolves an operation name to a known built-in.
func builtinFor(name string) (builtin, bool) {
	switch name {
	case "plus":
		return builtinPlus, true
	case "times":
		return builtinTimes, true
	default:
		return 0, false
	}
}

// Simplify applies the built-in algebraic rewrites to a term, simplifying
// arguments first. It rewrites shapes, never numbers: plus(5, 5) stays
// plus(5, 5).
func Simplify(t Term) Term {
	op, ok := t.(*Operation)
	if !ok {
		return t
	}

	args := make([]Term, len(op.Args))
	for i, arg := range op.Args {
		args[i] = Simplify(arg)
	}
	op = &Operation{Name: op.Name, Args: args}

	b, ok := builtinFor(op.Name)
	if !ok {
		return op
	}
	switch b {
	case builtinPlus:
		return simplifyPlus(op)
	case builtinTimes:
		// matrix multiplication is recognized but not rewritten yet
		return op
	default:
		return op
	}
}

// simplifyPlus rewrites the elementwise addition of two same-shape Matrix or
// Vector terms into a single term whose elements are the pairwise symbolic
// sums. Operands whose dimensions disagree, or whose elements are not given
// as an explicit sequence, are left alone.
func simplifyPlus(op *Operation) Term {
	if len(op.Args) != 2 {
		return op
	}

	left, ok := structured(op.Args[0])
	if !ok {
		return op
	}
	right, ok := structured(op.Args[1])
	if !ok || left.Name != right.Name {
		return op
	}

	ldims, lelems, ok := splitStructure(left)
	if !ok {
		return op
	}
	rdims, relems, ok := splitStructure(right)
	if !ok || len(ldims) != len(rdims) || len(lelems.Items) != len(relems.Items) {
		return op
	}

	for i := range ldims {
		if !ldims[i].Equal(rdims[i]) {
			return op
		}
	}

	sums := make([]Term, len(lelems.Items))
	for i := range lelems.Items {
		sums[i] = &Operation{Name: "plus", Args: []Term{lelems.Items[i], relems.Items[i]}}
	}

	args := make([]Term, 0, len(ldims)+1)
	args = append(args, ldims...)
	args = append(args, &Sequence{Items: sums})
	return &Operation{Name: left.Name, Args: args}
}

// structured recognizes the Matrix and Vector structure constructors.
func structured(t Term) (*Operation, bool) {
	op, ok := t.(*Operation)
	if !ok {
		return nil, false
	}
	switch op.Name {
	case "Matrix", "Vector":
		return op, true
	default:
		return nil, false
	}
}

// splitStructure splits a Matrix or Vector term into its dimension arguments
// and its element sequence. Dimensions must be literal constants so they can
// be compared directly.
func splitStructure(op *Operation) ([]Term, *Sequence, bool) {
	if len(op.Args) < 2 {
		return nil, nil, false
	}

	dims := op.Args[:len(op.Args)-1]
	for _, d := range dims {
		if _, ok := d.(*Constant); !ok {
			return nil, nil, false
		}
	}

	elems, ok := op.Args[len(op.Args)-1].(*Sequence)
	if !ok {
		return nil, nil, false
	}
	return dims, elems, true
}
