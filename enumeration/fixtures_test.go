package enumeration_test

import (
	"fmt"
	"slices"

	"github.com/chamander/harry/enumeration"
)

type rollCall int

const (
	brian rollCall = iota
	nur
	gavan
	daniel
)

var rollCallNames = []string{"Brian", "Nur", "Gavan", "Daniel"}

func (rollCall) Base() rollCall { return brian }

func (r rollCall) Raw() int { return int(r) }

func (rollCall) FromRaw(raw int) (rollCall, bool) {
	if raw < int(brian) || raw > int(daniel) {
		return 0, false
	}
	return rollCall(raw), true
}

func (r rollCall) Advance(n int) (rollCall, bool) { return enumeration.AdvanceRaw(r, n) }

func (r rollCall) Distance(to rollCall) int { return enumeration.DistanceRaw(r, to) }

func (r rollCall) String() string {
	if r < brian || r > daniel {
		return fmt.Sprintf("rollCall(%d)", int(r))
	}
	return rollCallNames[r]
}

// floor's base is not its raw minimum.
type floor int8

const (
	lowerGround floor = iota - 2
	basement
	ground
	first
	second
	third
)

func (floor) Base() floor { return ground }

func (f floor) Raw() int8 { return int8(f) }

func (floor) FromRaw(raw int8) (floor, bool) {
	if raw < int8(lowerGround) || raw > int8(third) {
		return 0, false
	}
	return floor(raw), true
}

func (f floor) Advance(n int8) (floor, bool) { return enumeration.AdvanceRaw(f, n) }

func (f floor) Distance(to floor) int8 { return enumeration.DistanceRaw(f, to) }

// tick accepts every int8, so only overflow ends its walk.
type tick int8

func (tick) Base() tick { return -128 }

func (t tick) Raw() int8 { return int8(t) }

func (tick) FromRaw(raw int8) (tick, bool) { return tick(raw), true }

func (t tick) Advance(n int8) (tick, bool) { return enumeration.AdvanceRaw(t, n) }

func (t tick) Distance(to tick) int8 { return enumeration.DistanceRaw(t, to) }

// solfege is not integer-backed; it steps through a fixed scale.
type solfege string

var scale = []solfege{"do", "re", "mi", "fa", "sol", "la", "ti"}

func (solfege) Base() solfege { return scale[0] }

func (s solfege) Advance(n int) (solfege, bool) {
	i := slices.Index(scale, s)
	if i < 0 || i+n < 0 || i+n >= len(scale) {
		return "", false
	}
	return scale[i+n], true
}

func (s solfege) Distance(to solfege) int {
	return slices.Index(scale, to) - slices.Index(scale, s)
}
