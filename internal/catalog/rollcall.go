//go:generate go run github.com/dmarkham/enumer -type=RollCall -trimprefix=RollCall
package catalog

import "github.com/chamander/harry/enumeration"

// RollCall is the team roll call, in calling order.
type RollCall int

const (
	RollCallBrian RollCall = iota
	RollCallNur
	RollCallGavan
	RollCallDaniel
)

func (RollCall) Base() RollCall { return RollCallBrian }

func (r RollCall) Raw() int { return int(r) }

func (RollCall) FromRaw(raw int) (RollCall, bool) {
	if r := RollCall(raw); r.IsARollCall() {
		return r, true
	}
	return RollCallBrian, false
}

func (r RollCall) Advance(n int) (RollCall, bool) { return enumeration.AdvanceRaw(r, n) }

func (r RollCall) Distance(to RollCall) int { return enumeration.DistanceRaw(r, to) }
