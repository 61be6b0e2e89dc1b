package enumeration

import (
	"cmp"

	"golang.org/x/exp/constraints"
)

// Strideable is implemented by discrete types that can measure the signed
// number of strides between two of their values.
//
// Distance must satisfy a.Distance(a) == 0 and
// a.Distance(b) == -b.Distance(a).
type Strideable[E any, S constraints.Signed] interface {
	Distance(to E) S
}

// rawValued is the part of IntegerBacked that orders values.
type rawValued[S constraints.Signed] interface {
	Raw() S
}

// strideBetween returns the strides from a to b. Integer-backed values are
// measured on their raw values widened to int64, so a distance that does not
// fit in S is still exact.
func strideBetween[E Strideable[E, S], S constraints.Signed](a, b E) int64 {
	ra, ok := any(a).(rawValued[S])
	if !ok {
		return int64(a.Distance(b))
	}
	return int64(any(b).(rawValued[S]).Raw()) - int64(ra.Raw())
}

// Compare returns -1 if a precedes b, 0 if they are the same position and +1
// if a follows b. The order is the one induced by Distance; integer-backed
// values compare by raw value, which agrees with it and cannot overflow.
func Compare[E Strideable[E, S], S constraints.Signed](a, b E) int {
	return cmp.Compare(0, strideBetween[E, S](a, b))
}

// Less reports whether a precedes b.
func Less[E Strideable[E, S], S constraints.Signed](a, b E) bool {
	return Compare[E, S](a, b) < 0
}
