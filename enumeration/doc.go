// Package enumeration derives the full list of values of a contiguous
// enumeration from two primitives: a base value and a fallible step function.
//
// A contiguous enumeration is a finite, ordered, gapless sequence of discrete
// values. A conforming type supplies:
//
//   - Base, the value at stride 0, and
//   - Advance, which returns the value n strides away or reports absence
//     when that position is outside the domain.
//
// From these, the package derives Cases, Count, Last, Index and Bounds, plus
// MustAdvance, a total variant of Advance that panics on out-of-bounds steps.
//
// Types backed by a signed integer raw value can implement Advance and
// Distance with AdvanceRaw and DistanceRaw:
//
//	type RollCall int
//
//	const (
//		Brian RollCall = iota
//		Nur
//		Gavan
//		Daniel
//	)
//
//	func (RollCall) Base() RollCall                  { return Brian }
//	func (r RollCall) Raw() int                      { return int(r) }
//	func (RollCall) FromRaw(raw int) (RollCall, bool) { return RollCall(raw), raw >= 0 && raw <= 3 }
//	func (r RollCall) Advance(n int) (RollCall, bool) { return enumeration.AdvanceRaw(r, n) }
//	func (r RollCall) Distance(to RollCall) int       { return enumeration.DistanceRaw(r, to) }
//
//	enumeration.Cases[RollCall, int]() // [Brian Nur Gavan Daniel]
//
// Every function is pure and safe for concurrent use. Results are computed on
// each call and owned by the caller.
package enumeration
