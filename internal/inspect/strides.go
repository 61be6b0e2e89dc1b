package inspect

import (
	"cmp"
	"fmt"
	"slices"
	"strconv"
	"strings"
)

// strideRange is the closed range [lo, hi], or [lo, +inf) when open is set.
type strideRange struct {
	lo, hi int
	open   bool
}

func (r strideRange) contains(n int) bool {
	return n >= r.lo && (r.open || n <= r.hi)
}

// StrideFilter selects case positions by their stride from the base value.
// A stride is accepted when it falls within any of the filter's ranges; the
// zero StrideFilter accepts nothing.
type StrideFilter struct {
	ranges []strideRange
}

// AllStrides accepts every stride.
func AllStrides() StrideFilter {
	return StrideFilter{ranges: []strideRange{{lo: 0, open: true}}}
}

// ParseStrideFilter parses v, a list of tokens separated by '_':
//
//	"all"    every stride
//	"N"      the single stride N
//	"N-M"    strides N through M
//	"N-"     strides N and above
//	"-M"     strides 0 through M
//
// Numbers must be non-decreasing when read left to right, so "1_3-5_7" is
// valid and "3_1-4" is not. An empty v yields the empty filter.
func ParseStrideFilter(v string) (StrideFilter, error) {
	var f StrideFilter
	v = strings.TrimSpace(v)
	if v == "" {
		return f, nil
	}
	if v == "all" {
		return AllStrides(), nil
	}

	prev := 0
	ascending := func(ns ...int) error {
		for _, n := range ns {
			if n < prev {
				return fmt.Errorf("strides must be non-decreasing: %d < %d", n, prev)
			}
			prev = n
		}
		return nil
	}

	for i, tok := range strings.Split(v, "_") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			return StrideFilter{}, fmt.Errorf("empty token at position %d", i)
		}
		if strings.Count(tok, "-") > 1 || tok == "-" {
			return StrideFilter{}, fmt.Errorf("invalid token %q", tok)
		}

		left, right, isRange := strings.Cut(tok, "-")
		var r strideRange
		switch {
		case !isRange:
			n, err := parseStride(tok)
			if err != nil {
				return StrideFilter{}, fmt.Errorf("invalid token %q: %w", tok, err)
			}
			r = strideRange{lo: n, hi: n}
		case left == "":
			n, err := parseStride(right)
			if err != nil {
				return StrideFilter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			r = strideRange{lo: 0, hi: n}
		case right == "":
			n, err := parseStride(left)
			if err != nil {
				return StrideFilter{}, fmt.Errorf("invalid bound in %q: %w", tok, err)
			}
			r = strideRange{lo: n, open: true}
		default:
			lo, err := parseStride(left)
			if err != nil {
				return StrideFilter{}, fmt.Errorf("invalid left bound in %q: %w", tok, err)
			}
			hi, err := parseStride(right)
			if err != nil {
				return StrideFilter{}, fmt.Errorf("invalid right bound in %q: %w", tok, err)
			}
			if lo > hi {
				return StrideFilter{}, fmt.Errorf("invalid range %q: %d > %d", tok, lo, hi)
			}
			r = strideRange{lo: lo, hi: hi}
		}

		bounds := []int{r.hi}
		if left != "" || !isRange {
			bounds = []int{r.lo, r.hi}
		}
		if r.open {
			bounds = bounds[:1]
		}
		if err := ascending(bounds...); err != nil {
			return StrideFilter{}, err
		}
		f.ranges = append(f.ranges, r)
	}
	return f, nil
}

func parseStride(s string) (int, error) {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, fmt.Errorf("not a stride: %q", s)
	}
	return n, nil
}

// Test reports whether stride is accepted.
func (f StrideFilter) Test(stride int) bool {
	for _, r := range f.ranges {
		if r.contains(stride) {
			return true
		}
	}
	return false
}

// IsEmpty reports whether the filter accepts nothing.
func (f StrideFilter) IsEmpty() bool {
	return len(f.ranges) == 0
}

// IsAll reports whether the filter accepts every stride.
func (f StrideFilter) IsAll() bool {
	norm := f.normalize()
	return len(norm) == 1 && norm[0].lo == 0 && norm[0].open
}

// Apply returns the values whose position is accepted.
func (f StrideFilter) Apply(values []string) []string {
	var out []string
	for i, v := range values {
		if f.Test(i) {
			out = append(out, v)
		}
	}
	return out
}

// normalize sorts the ranges and merges overlapping or adjacent ones.
func (f StrideFilter) normalize() []strideRange {
	rs := slices.Clone(f.ranges)
	slices.SortFunc(rs, func(a, b strideRange) int {
		return cmp.Compare(a.lo, b.lo)
	})
	var merged []strideRange
	for _, r := range rs {
		if len(merged) == 0 {
			merged = append(merged, r)
			continue
		}
		last := &merged[len(merged)-1]
		if last.open {
			break
		}
		if r.lo > last.hi+1 {
			merged = append(merged, r)
			continue
		}
		last.open = r.open
		last.hi = max(last.hi, r.hi)
	}
	return merged
}

// String returns the canonical, parseable form of the filter: adjacent
// ranges are merged and "all" is used when every stride is accepted.
func (f StrideFilter) String() string {
	if f.IsAll() {
		return "all"
	}
	var parts []string
	for _, r := range f.normalize() {
		switch {
		case r.open:
			parts = append(parts, fmt.Sprintf("%d-", r.lo))
		case r.lo == r.hi:
			parts = append(parts, strconv.Itoa(r.lo))
		default:
			parts = append(parts, fmt.Sprintf("%d-%d", r.lo, r.hi))
		}
	}
	return strings.Join(parts, "_")
}

// Set parses v into f, so a *StrideFilter can back a command-line flag.
func (f *StrideFilter) Set(v string) error {
	parsed, err := ParseStrideFilter(v)
	if err != nil {
		return err
	}
	*f = parsed
	return nil
}

func (f *StrideFilter) Type() string { return "strides" }
