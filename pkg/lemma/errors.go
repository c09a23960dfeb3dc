package lemma

import "fmt"

// UndefinedFunctionError reports an application of a function name that was
// never loaded.
type UndefinedFunctionError struct {
	Name string
}

func (e *UndefinedFunctionError) Error() string {
	return fmt.Sprintf("undefined function: %s", e.Name)
}

// ArityMismatchError reports a function applied to the wrong number of
// arguments.
type ArityMismatchError struct {
	Name     string
	Expected int
	Actual   int
}

func (e *ArityMismatchError) Error() string {
	return fmt.Sprintf("%s expects %d arguments, got %d", e.Name, e.Expected, e.Actual)
}

// NonExhaustiveMatchError reports a match expression whose scrutinee matched
// no clause. This is a runtime failure, not a compile-time exhaustiveness
// check.
type NonExhaustiveMatchError struct {
	Scrutinee Term
}

func (e *NonExhaustiveMatchError) Error() string {
	return fmt.Sprintf("non-exhaustive match: no pattern matched %s", e.Scrutinee)
}

// RecursionLimitError reports an evaluation that exceeded the configured
// depth bound.
type RecursionLimitError struct {
	Limit int
}

func (e *RecursionLimitError) Error() string {
	return fmt.Sprintf("recursion limit exceeded (%d)", e.Limit)
}
