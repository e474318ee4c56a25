// Package freeab implements the free abelian group over an arbitrary
// generator type: finite formal integer-weighted combinations of
// generators, with the group operations (combination, inversion,
// subtraction) and evaluation into caller-supplied abelian groups,
// commutative monoids, and commutative semigroups.
//
// A Combination is a value; every operation returns a fresh value and
// never mutates its inputs, so combinations may be shared and evaluated
// concurrently without coordination. The zero value of Combination is
// the group identity.
//
// Zero external dependencies beyond the standard library; the test
// suite uses testify.
package freeab

// Combination is an element of the free abelian group over A: a finite
// mapping from generators to signed integer multiplicities, read as a
// symbolic sum. Two combinations are equal iff their nonzero
// multiplicities agree on every generator; iteration order never
// carries meaning.
//
// The zero value is the identity element e.
type Combination[A comparable] struct {
	terms map[A]int
}

// Identity returns the identity element e (the empty combination).
func Identity[A comparable]() Combination[A] {
	return Combination[A]{}
}

// Singleton returns the combination carrying a with multiplicity 1.
func Singleton[A comparable](a A) Combination[A] {
	return Combination[A]{terms: map[A]int{a: 1}}
}

// FromTerms builds a combination from a generator→multiplicity map.
// The input is copied, never retained; zero multiplicities are dropped.
func FromTerms[A comparable](terms map[A]int) Combination[A] {
	out := make(map[A]int, len(terms))
	for a, n := range terms {
		if n != 0 {
			out[a] = n
		}
	}
	return Combination[A]{terms: out}
}

// Combine returns the group operation applied to c and other: each
// generator's multiplicity is the sum of its multiplicities on the two
// sides. Combine is commutative and associative, with Identity as the
// neutral element.
func (c Combination[A]) Combine(other Combination[A]) Combination[A] {
	out := make(map[A]int, len(c.terms)+len(other.terms))
	for a, n := range c.terms {
		if n != 0 {
			out[a] = n
		}
	}
	for a, n := range other.terms {
		if n == 0 {
			continue
		}
		if sum := out[a] + n; sum != 0 {
			out[a] = sum
		} else {
			delete(out, a)
		}
	}
	return Combination[A]{terms: out}
}

// Invert returns the group inverse: every multiplicity negated.
// c.Combine(c.Invert()) equals Identity for all c.
func (c Combination[A]) Invert() Combination[A] {
	return c.Scale(-1)
}

// Subtract returns c combined with the inverse of other.
func (c Combination[A]) Subtract(other Combination[A]) Combination[A] {
	return c.Combine(other.Invert())
}

// Scale multiplies every multiplicity by n. Scale(1) is a copy,
// Scale(-1) is Invert, Scale(0) is Identity.
func (c Combination[A]) Scale(n int) Combination[A] {
	if n == 0 {
		return Combination[A]{}
	}
	out := make(map[A]int, len(c.terms))
	for a, m := range c.terms {
		if m != 0 {
			out[a] = m * n
		}
	}
	return Combination[A]{terms: out}
}

// Multiplicity returns the multiplicity of a in c; 0 if absent.
func (c Combination[A]) Multiplicity(a A) int {
	return c.terms[a]
}

// Terms returns a fresh copy of the term map with zero entries dropped.
// Mutating the result does not affect c.
func (c Combination[A]) Terms() map[A]int {
	out := make(map[A]int, len(c.terms))
	for a, n := range c.terms {
		if n != 0 {
			out[a] = n
		}
	}
	return out
}

// Len returns the number of generators with nonzero multiplicity.
func (c Combination[A]) Len() int {
	n := 0
	for _, m := range c.terms {
		if m != 0 {
			n++
		}
	}
	return n
}

// IsIdentity reports whether c is the identity element.
func (c Combination[A]) IsIdentity() bool {
	return c.Len() == 0
}

// Equal reports algebraic equality: the term maps agree on every
// generator once zero entries are ignored.
func (c Combination[A]) Equal(other Combination[A]) bool {
	for a, n := range c.terms {
		if n != 0 && other.terms[a] != n {
			return false
		}
	}
	for a, n := range other.terms {
		if n != 0 && c.terms[a] != n {
			return false
		}
	}
	return true
}
