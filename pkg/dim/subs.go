package dim

// Subs represents a substitution mapping from dimension variable names to
// dimension expressions.
//
// Apply resolves variables recursively through their bound values, so a
// substitution whose entry mentions its own key would never terminate. That
// cannot happen for substitutions built by Unify, which refuses such a
// binding at bind time (the occurs check); the safety is an invariant of the
// constructors, not of Apply itself. Callers constructing substitutions by
// hand carry the same obligation.
type Subs map[string]Expr

// NewSubs creates a new empty substitution.
func NewSubs() Subs {
	return make(Subs)
}

// Singleton creates a substitution with a single mapping.
func Singleton(name string, e Expr) Subs {
	return Subs{name: e}
}

// Apply applies the substitution to an expression.
func (s Subs) Apply(e Expr) Expr {
	return e.Apply(s)
}

// Compose composes two substitutions. The result's domain is the union of
// both; applying it behaves as "apply s, then other".
func (s Subs) Compose(other Subs) Subs {
	result := make(Subs)

	for name, e := range s {
		result[name] = e.Apply(other)
	}

	for name, e := range other {
		if _, exists := result[name]; !exists {
			result[name] = e
		}
	}

	return result
}

// Clone creates a copy of the substitution.
func (s Subs) Clone() Subs {
	result := make(Subs)
	for name, e := range s {
		result[name] = e
	}
	return result
}

// Get gets the expression bound to a variable name.
func (s Subs) Get(name string) (Expr, bool) {
	e, exists := s[name]
	return e, exists
}
