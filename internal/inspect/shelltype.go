//go:generate go run github.com/dmarkham/enumer -type=ShellType -trimprefix=ShellType -transform=kebab
package inspect

import "github.com/chamander/harry/enumeration"

// ShellType is the dialect an export statement is rendered in. Its values
// form a contiguous enumeration starting at ShellTypeAuto.
type ShellType int

const (
	ShellTypeAuto ShellType = iota
	ShellTypeSh
	ShellTypePowershell
	ShellTypeCmd
)

func (ShellType) Base() ShellType { return ShellTypeAuto }

func (s ShellType) Raw() int { return int(s) }

func (ShellType) FromRaw(raw int) (ShellType, bool) {
	if s := ShellType(raw); s.IsAShellType() {
		return s, true
	}
	return ShellTypeAuto, false
}

func (s ShellType) Advance(n int) (ShellType, bool) { return enumeration.AdvanceRaw(s, n) }

func (s ShellType) Distance(to ShellType) int { return enumeration.DistanceRaw(s, to) }

// ShellNames lists the accepted --shell values in stride order.
func ShellNames() []string {
	var names []string
	for _, s := range enumeration.Cases[ShellType, int]() {
		names = append(names, s.String())
	}
	return names
}
