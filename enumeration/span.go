package enumeration

import (
	"fmt"

	"golang.org/x/exp/constraints"
)

// Span is the closed interval [Lo, Hi] covered by an enumeration.
type Span[E Enumeration[E, S], S constraints.Signed] struct {
	lo, hi E
	n      int
}

// Bounds returns the span of E, from Base to Last.
func Bounds[E Enumeration[E, S], S constraints.Signed]() Span[E, S] {
	cases := Cases[E, S]()
	return Span[E, S]{lo: cases[0], hi: cases[len(cases)-1], n: len(cases)}
}

func (s Span[E, S]) Lo() E { return s.lo }

func (s Span[E, S]) Hi() E { return s.hi }

// Contains reports whether v lies within the span, both ends inclusive.
func (s Span[E, S]) Contains(v E) bool {
	return Compare[E, S](s.lo, v) <= 0 && Compare[E, S](v, s.hi) <= 0
}

// Len returns the number of values in the span.
func (s Span[E, S]) Len() int {
	return s.n
}

// String implements fmt.Stringer, e.g. "[Brian, Daniel]".
func (s Span[E, S]) String() string {
	return fmt.Sprintf("[%v, %v]", s.lo, s.hi)
}
