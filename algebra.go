package freeab

// The three algebraic capability contracts the evaluators consume.
// Callers supply implementations; this package never provides one.
// Each contract widens the previous: a semigroup only combines, a
// monoid adds an identity, a group adds inversion. That widening is
// exactly what determines which multiplicities an evaluator can
// represent (see EvalGroup, EvalMonoid, EvalSemigroup).

// CommutativeSemigroup is a commutative, associative combination over
// B with no identity element assumed.
//
// Repeat(x, n) must equal x combined with itself n times. Callers in
// this package pass n >= 1 when only semigroup capability is available.
type CommutativeSemigroup[B any] interface {
	Combine(x, y B) B
	Repeat(x B, n int) B
}

// CommutativeMonoid is a CommutativeSemigroup with an identity.
//
// Empty must be neutral for Combine, and Repeat(x, 0) must return
// Empty(); callers in this package pass n >= 0.
type CommutativeMonoid[B any] interface {
	CommutativeSemigroup[B]
	Empty() B
}

// AbelianGroup is a CommutativeMonoid in which every element has an
// inverse.
//
// Invert(x) combined with x must give Empty(), and Repeat(x, n) for
// negative n must equal Repeat(Invert(x), -n); callers in this package
// may pass any n.
type AbelianGroup[B any] interface {
	CommutativeMonoid[B]
	Invert(x B) B
}
