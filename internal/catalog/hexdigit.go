package catalog

import "strings"

const hexDigits = "0123456789abcdef"

// HexDigit is a lower-case hexadecimal digit character. Its byte values are
// not contiguous ('9' is followed by 'a'), so it steps by position instead of
// by raw value.
type HexDigit byte

func (HexDigit) Base() HexDigit { return '0' }

func (h HexDigit) index() int { return strings.IndexByte(hexDigits, byte(h)) }

func (h HexDigit) Advance(n int) (HexDigit, bool) {
	i := h.index()
	if i < 0 || n < -i || n >= len(hexDigits)-i {
		return 0, false
	}
	return HexDigit(hexDigits[i+n]), true
}

func (h HexDigit) Distance(to HexDigit) int { return to.index() - h.index() }

func (h HexDigit) String() string { return string(rune(h)) }
