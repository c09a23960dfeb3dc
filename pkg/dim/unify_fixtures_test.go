package dim

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/kr/pretty"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

type unifyFixture struct {
	Name    string         `yaml:"name"`
	Left    any            `yaml:"left"`
	Right   any            `yaml:"right"`
	Want    map[string]any `yaml:"want"`
	Unequal bool           `yaml:"unequal"`
	Reason  string         `yaml:"reason"`
}

func TestUnifyFixtures(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("testdata", "unify.yaml"))
	require.NoError(t, err)

	var fixtures []unifyFixture
	require.NoError(t, yaml.Unmarshal(data, &fixtures))
	require.NotEmpty(t, fixtures)

	for _, fx := range fixtures {
		t.Run(fx.Name, func(t *testing.T) {
			left := exprFromFixture(t, fx.Left)
			right := exprFromFixture(t, fx.Right)

			result := Unify(left, right)
			if fx.Unequal {
				require.False(t, result.Equal, "expected unequal, got %s", pretty.Sprint(result))
				if fx.Reason != "" {
					require.Contains(t, result.Reason, fx.Reason)
				}
				return
			}

			require.True(t, result.Equal, "unify(%s, %s): %s", left, right, result.Reason)
			require.Len(t, result.Subs, len(fx.Want))
			for name, raw := range fx.Want {
				want := exprFromFixture(t, raw)
				bound, ok := result.Subs.Get(name)
				require.True(t, ok, "missing binding for %s in %s", name, pretty.Sprint(result.Subs))
				require.True(t, bound.Eq(want), "%s bound to %s, want %s", name, bound, want)
			}
		})
	}
}

// exprFromFixture decodes the compact YAML form: integers are literals,
// strings are variables, and a single-key mapping is an operator or named
// function applied to its argument list.
func exprFromFixture(t *testing.T, raw any) Expr {
	t.Helper()

	switch v := raw.(type) {
	case int:
		require.GreaterOrEqual(t, v, 0, "dimension literals are non-negative")
		return Lit(v)

	case string:
		return Var(v)

	case map[string]any:
		require.Len(t, v, 1, "operator mappings have a single key: %s", pretty.Sprint(raw))
		for name, rawArgs := range v {
			args, ok := rawArgs.([]any)
			require.True(t, ok, "arguments of %s must be a list", name)

			exprs := make([]Expr, len(args))
			for i, arg := range args {
				exprs[i] = exprFromFixture(t, arg)
			}

			if op, ok := opFromName(name); ok {
				require.Len(t, exprs, 2, "operator %s is binary", name)
				return &Binary{Op: op, Left: exprs[0], Right: exprs[1]}
			}
			return &Call{Name: name, Args: exprs}
		}
	}

	t.Fatalf("unsupported fixture value (%T): %s", raw, pretty.Sprint(raw))
	return nil
}

func opFromName(name string) (Op, bool) {
	switch name {
	case "add":
		return OpAdd, true
	case "sub":
		return OpSub, true
	case "mul":
		return OpMul, true
	case "div":
		return OpDiv, true
	case "pow":
		return OpPow, true
	default:
		return 0, false
	}
}
