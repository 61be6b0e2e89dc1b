package enumeration

import "golang.org/x/exp/constraints"

// Enumeration is implemented by types whose values form a contiguous
// enumeration.
//
// Base is a type-level accessor: it is called on the zero value of E and must
// not depend on its receiver. It returns the value at stride 0 of the domain.
//
// Advance returns the value n strides from the receiver, or false when that
// position is outside the domain. It must never panic. Base().Advance(0) must
// return Base(), and for n1 < n2 with both advances present the first result
// precedes the second.
type Enumeration[E any, S constraints.Signed] interface {
	Strideable[E, S]
	Base() E
	Advance(n S) (E, bool)
}

// Base returns the base value of E.
func Base[E Enumeration[E, S], S constraints.Signed]() E {
	var zero E
	return zero.Base()
}

// MustAdvance returns the value n strides from v. It panics with a
// *BoundsError when that position is outside the domain: callers use it to
// assert that the step is valid.
func MustAdvance[E Enumeration[E, S], S constraints.Signed](v E, n S) E {
	next, ok := v.Advance(n)
	if !ok {
		panic(&BoundsError{From: v, By: int64(n)})
	}
	return next
}

// Cases returns every value of E in ascending stride order, starting with
// Base. The slice is built on each call.
//
// Cases terminates only if Advance(1) eventually reports absence; a type
// whose Advance always succeeds makes it loop forever.
func Cases[E Enumeration[E, S], S constraints.Signed]() []E {
	current := Base[E, S]()
	cases := []E{current}
	for {
		next, ok := current.Advance(1)
		if !ok {
			return cases
		}
		cases = append(cases, next)
		current = next
	}
}

// Count returns the number of values of E. It is always len(Cases[E, S]()).
func Count[E Enumeration[E, S], S constraints.Signed]() int {
	return len(Cases[E, S]())
}

// Last returns the final value of E.
func Last[E Enumeration[E, S], S constraints.Signed]() E {
	cases := Cases[E, S]()
	return cases[len(cases)-1]
}

// Index returns the stride of v relative to Base. The result may exceed S:
// the last case of every int8 from -128 is at index 255.
func Index[E Enumeration[E, S], S constraints.Signed](v E) int {
	return int(strideBetween[E, S](Base[E, S](), v))
}
