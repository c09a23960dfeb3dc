package lemma

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMatchWildcard(t *testing.T) {
	binds, ok := MatchPattern(&Constant{Text: "5"}, &Wildcard{})
	require.True(t, ok)
	require.Empty(t, binds)

	binds, ok = MatchPattern(&Operation{Name: "Cons", Args: []Term{&Constant{Text: "1"}}}, &Wildcard{})
	require.True(t, ok)
	require.Empty(t, binds)
}

func TestMatchVariableBindsClone(t *testing.T) {
	term := &Operation{Name: "Cons", Args: []Term{&Constant{Text: "1"}, &Reference{Name: "rest"}}}
	binds, ok := MatchPattern(term, &VariablePattern{Name: "x"})
	require.True(t, ok)
	require.True(t, binds["x"].Equal(term))
	require.NotSame(t, term, binds["x"], "variable patterns bind a copy, not the original")
}

func TestMatchLiteral(t *testing.T) {
	_, ok := MatchPattern(&Constant{Text: "5"}, &LiteralPattern{Text: "5"})
	require.True(t, ok)

	_, ok = MatchPattern(&Constant{Text: "6"}, &LiteralPattern{Text: "5"})
	require.False(t, ok)

	// a reference is not a constant
	_, ok = MatchPattern(&Reference{Name: "5"}, &LiteralPattern{Text: "5"})
	require.False(t, ok)
}

func TestMatchConstructor(t *testing.T) {
	term := &Operation{Name: "Cons", Args: []Term{&Constant{Text: "1"}, &Reference{Name: "rest"}}}

	binds, ok := MatchPattern(term, &ConstructorPattern{
		Name: "Cons",
		Args: []Pattern{&VariablePattern{Name: "head"}, &VariablePattern{Name: "tail"}},
	})
	require.True(t, ok)
	require.True(t, binds["head"].Equal(&Constant{Text: "1"}))
	require.True(t, binds["tail"].Equal(&Reference{Name: "rest"}))

	_, ok = MatchPattern(term, &ConstructorPattern{
		Name: "Pair",
		Args: []Pattern{&VariablePattern{Name: "a"}, &VariablePattern{Name: "b"}},
	})
	require.False(t, ok, "constructor names must agree")

	_, ok = MatchPattern(term, &ConstructorPattern{
		Name: "Cons",
		Args: []Pattern{&VariablePattern{Name: "head"}},
	})
	require.False(t, ok, "arity must agree")
}

func TestMatchNullaryConstructorAsReference(t *testing.T) {
	// the parser leaves zero-argument constructors like True as plain
	// identifiers
	_, ok := MatchPattern(&Reference{Name: "True"}, &ConstructorPattern{Name: "True"})
	require.True(t, ok)

	_, ok = MatchPattern(&Reference{Name: "False"}, &ConstructorPattern{Name: "True"})
	require.False(t, ok)

	_, ok = MatchPattern(&Operation{Name: "None"}, &ConstructorPattern{Name: "None"})
	require.True(t, ok)
}

func TestMatchDuplicateNamesLastWriteWins(t *testing.T) {
	term := &Operation{Name: "Pair", Args: []Term{&Constant{Text: "1"}, &Constant{Text: "2"}}}
	binds, ok := MatchPattern(term, &ConstructorPattern{
		Name: "Pair",
		Args: []Pattern{&VariablePattern{Name: "x"}, &VariablePattern{Name: "x"}},
	})
	require.True(t, ok)
	require.True(t, binds["x"].Equal(&Constant{Text: "2"}))
}

func TestEvalMatchClauseOrder(t *testing.T) {
	// both clauses match; the first one in source order wins
	result, err := EvalMatch(&Constant{Text: "5"}, []Clause{
		{Pattern: &Wildcard{}, Body: &Reference{Name: "first"}},
		{Pattern: &LiteralPattern{Text: "5"}, Body: &Reference{Name: "second"}},
	})
	require.NoError(t, err)
	require.True(t, result.Equal(&Reference{Name: "first"}))
}

func TestEvalMatchSubstitutesBindings(t *testing.T) {
	scrutinee := &Operation{Name: "Cons", Args: []Term{&Constant{Text: "1"}, &Reference{Name: "Nil"}}}
	result, err := EvalMatch(scrutinee, []Clause{
		{
			Pattern: &ConstructorPattern{
				Name: "Cons",
				Args: []Pattern{&VariablePattern{Name: "head"}, &Wildcard{}},
			},
			Body: &Operation{Name: "plus", Args: []Term{&Reference{Name: "head"}, &Reference{Name: "head"}}},
		},
	})
	require.NoError(t, err)
	require.True(t, result.Equal(&Operation{Name: "plus", Args: []Term{&Constant{Text: "1"}, &Constant{Text: "1"}}}))
}

func TestEvalMatchNonExhaustive(t *testing.T) {
	_, err := EvalMatch(&Constant{Text: "7"}, []Clause{
		{Pattern: &LiteralPattern{Text: "5"}, Body: &Reference{Name: "unused"}},
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), "non-exhaustive")

	var nonExhaustive *NonExhaustiveMatchError
	require.ErrorAs(t, err, &nonExhaustive)
	require.True(t, nonExhaustive.Scrutinee.Equal(&Constant{Text: "7"}))
}
