package catalog

import (
	"fmt"

	"github.com/chamander/harry/enumeration"
)

// Floor is a floor of the office. The walk starts at the ground floor, so
// the floors below it are valid values but not cases.
type Floor int8

const (
	FloorLowerGround Floor = iota - 2
	FloorBasement
	FloorGround
	FloorFirst
	FloorSecond
	FloorThird
)

var floorNames = map[Floor]string{
	FloorLowerGround: "lower-ground",
	FloorBasement:    "basement",
	FloorGround:      "ground",
	FloorFirst:       "first",
	FloorSecond:      "second",
	FloorThird:       "third",
}

func (Floor) Base() Floor { return FloorGround }

func (f Floor) Raw() int8 { return int8(f) }

func (Floor) FromRaw(raw int8) (Floor, bool) {
	if raw < int8(FloorLowerGround) || raw > int8(FloorThird) {
		return FloorGround, false
	}
	return Floor(raw), true
}

func (f Floor) Advance(n int8) (Floor, bool) { return enumeration.AdvanceRaw(f, n) }

func (f Floor) Distance(to Floor) int8 { return enumeration.DistanceRaw(f, to) }

func (f Floor) String() string {
	if name, ok := floorNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Floor(%d)", int8(f))
}
