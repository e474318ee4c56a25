package freeab

import (
	"fmt"
	"strings"
)

// String renders c for debugging. The identity renders as "e". Every
// other term renders its generator via fmt.Sprint when the multiplicity
// is exactly 1, and as "(generator)^n" otherwise; zero-multiplicity
// terms are dropped. Terms are joined with " |+| " in map iteration
// order, which carries no meaning beyond display.
func (c Combination[A]) String() string {
	parts := make([]string, 0, len(c.terms))
	for a, n := range c.terms {
		switch {
		case n == 0:
			continue
		case n == 1:
			parts = append(parts, fmt.Sprint(a))
		default:
			parts = append(parts, fmt.Sprintf("(%v)^%d", a, n))
		}
	}
	if len(parts) == 0 {
		return "e"
	}
	return strings.Join(parts, " |+| ")
}
