package enumeration

import "golang.org/x/exp/constraints"

// IntegerBacked is implemented by types represented by a signed integer raw
// value whose stride type is that same integer type.
//
// FromRaw is the only validity check: it reports false when no value of E
// corresponds to raw. Raw values increase with stride. Like Base, it must
// not depend on its receiver.
type IntegerBacked[E any, S constraints.Signed] interface {
	Raw() S
	FromRaw(raw S) (E, bool)
}

// AdvanceRaw implements Enumeration.Advance for integer-backed types: it
// reconstructs the value at v.Raw()+n. A sum that overflows S is absent.
func AdvanceRaw[E IntegerBacked[E, S], S constraints.Signed](v E, n S) (E, bool) {
	raw := v.Raw()
	sum := raw + n
	if (n > 0 && sum < raw) || (n < 0 && sum > raw) {
		var zero E
		return zero, false
	}
	return v.FromRaw(sum)
}

// DistanceRaw implements Strideable.Distance for integer-backed types. The
// result is only defined when the distance fits in S; Compare, Less, Index
// and Span measure integer-backed values in int64 instead.
func DistanceRaw[E IntegerBacked[E, S], S constraints.Signed](from, to E) S {
	return to.Raw() - from.Raw()
}
