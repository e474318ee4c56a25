package freeab

// Evaluation maps a combination into a concrete algebraic structure:
// each generator a is replaced by f(a) repeated by its multiplicity,
// and the results are folded with the target's Combine. Three entry
// points exist because the target's capability decides what negative,
// zero, and absent multiplicities can mean there.

// EvalGroup evaluates c in the abelian group g under f. It always
// succeeds: the group's inverse represents negative multiplicities and
// its identity represents the empty combination.
func EvalGroup[A comparable, B any](c Combination[A], f func(A) B, g AbelianGroup[B]) B {
	acc := g.Empty()
	for a, n := range c.terms {
		if n == 0 {
			continue
		}
		acc = g.Combine(acc, g.Repeat(f(a), n))
	}
	return acc
}

// EvalMonoid evaluates c in the commutative monoid m under f. A monoid
// has no inverse, so a term with negative multiplicity has no image:
// the result is then absent (ok == false). An empty or all-zero
// combination evaluates to m.Empty(), present.
func EvalMonoid[A comparable, B any](c Combination[A], f func(A) B, m CommutativeMonoid[B]) (value B, ok bool) {
	acc := m.Empty()
	for a, n := range c.terms {
		if n < 0 {
			var zero B
			return zero, false
		}
		if n == 0 {
			continue
		}
		acc = m.Combine(acc, m.Repeat(f(a), n))
	}
	return acc, true
}

// EvalSemigroup evaluates c in the commutative semigroup s under f. A
// semigroup has neither inverse nor identity, so the result is absent
// (ok == false) when any multiplicity is negative, and also when no
// term has strictly positive multiplicity: with no identity element an
// empty sum has no value. Zero-multiplicity terms are skipped and do
// not by themselves force absence.
func EvalSemigroup[A comparable, B any](c Combination[A], f func(A) B, s CommutativeSemigroup[B]) (value B, ok bool) {
	var acc B
	seeded := false
	for a, n := range c.terms {
		if n < 0 {
			var zero B
			return zero, false
		}
		if n == 0 {
			continue
		}
		term := s.Repeat(f(a), n)
		if !seeded {
			acc = term
			seeded = true
		} else {
			acc = s.Combine(acc, term)
		}
	}
	if !seeded {
		var zero B
		return zero, false
	}
	return acc, true
}
