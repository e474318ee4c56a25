package freeab

// Split partitions c by multiplicity sign and evaluates each side in
// the commutative monoid m under f. The negative side is folded with
// absolute multiplicities, so both folds see only positive counts and
// always succeed. Zero-multiplicity terms contribute to neither side.
//
// When m embeds in a group, inverting the negative side and combining
// it with the positive side recovers EvalGroup of c.
func Split[A comparable, B any](c Combination[A], f func(A) B, m CommutativeMonoid[B]) (neg, pos B) {
	neg, pos = m.Empty(), m.Empty()
	for a, n := range c.terms {
		switch {
		case n > 0:
			pos = m.Combine(pos, m.Repeat(f(a), n))
		case n < 0:
			neg = m.Combine(neg, m.Repeat(f(a), -n))
		}
	}
	return neg, pos
}

// SplitSemigroup is Split for a target with only semigroup capability.
// Each side is folded in the commutative monoid induced from s by
// adjoining an absent value as identity, so a side is absent
// (its ok result is false) exactly when it has no term of strictly
// positive multiplicity on that side, mirroring EvalSemigroup.
func SplitSemigroup[A comparable, B any](c Combination[A], f func(A) B, s CommutativeSemigroup[B]) (neg B, negOK bool, pos B, posOK bool) {
	lift := func(a A) presence[B] {
		return presence[B]{value: f(a), present: true}
	}
	n, p := Split(c, lift, presenceMonoid[B]{s: s})
	return n.value, n.present, p.value, p.present
}

// presence is B with an adjoined "no value" element.
type presence[B any] struct {
	value   B
	present bool
}

// presenceMonoid is the commutative monoid induced from a semigroup by
// letting the absent presence act as identity. Present values combine
// via the underlying semigroup.
type presenceMonoid[B any] struct {
	s CommutativeSemigroup[B]
}

func (m presenceMonoid[B]) Empty() presence[B] {
	return presence[B]{}
}

func (m presenceMonoid[B]) Combine(x, y presence[B]) presence[B] {
	switch {
	case !x.present:
		return y
	case !y.present:
		return x
	default:
		return presence[B]{value: m.s.Combine(x.value, y.value), present: true}
	}
}

func (m presenceMonoid[B]) Repeat(x presence[B], n int) presence[B] {
	if !x.present || n == 0 {
		return presence[B]{}
	}
	return presence[B]{value: m.s.Repeat(x.value, n), present: true}
}
