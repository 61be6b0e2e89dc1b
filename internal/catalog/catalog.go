// Package catalog holds the built-in contiguous enumerations and a registry
// that exposes them by name, with their values addressed by case name.
package catalog

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"golang.org/x/exp/constraints"

	"github.com/chamander/harry/enumeration"
	"github.com/chamander/harry/internal/inspect"
)

var (
	ErrUnknownEnumeration = errors.New("unknown enumeration")
	ErrUnknownCase        = errors.New("unknown case")
)

// Named is a contiguous enumeration whose values print as their case names.
type Named[E any, S constraints.Signed] interface {
	fmt.Stringer
	enumeration.Enumeration[E, S]
}

// Entry is a type-erased view of one enumeration.
type Entry struct {
	Name        string
	Description string

	cases    func() []string
	advance  func(from string, by int64) (string, bool, error)
	distance func(from, to string) (int64, error)
	span     func() string
}

// NewEntry builds the Entry of E.
func NewEntry[E Named[E, S], S constraints.Signed](name, description string) *Entry {
	// Values behind the base are not cases but Advance can reach them, so
	// they resolve too.
	lookup := func(s string) (E, error) {
		for _, v := range enumeration.Cases[E, S]() {
			if v.String() == s {
				return v, nil
			}
		}
		for v, ok := enumeration.Base[E, S]().Advance(-1); ok; v, ok = v.Advance(-1) {
			if v.String() == s {
				return v, nil
			}
		}
		var zero E
		return zero, fmt.Errorf("%w: %q in %s", ErrUnknownCase, s, name)
	}

	return &Entry{
		Name:        name,
		Description: description,
		cases: func() []string {
			var names []string
			for _, v := range enumeration.Cases[E, S]() {
				names = append(names, v.String())
			}
			return names
		},
		advance: func(from string, by int64) (string, bool, error) {
			v, err := lookup(from)
			if err != nil {
				return "", false, err
			}
			n := S(by)
			if int64(n) != by {
				return "", false, nil
			}
			next, ok := v.Advance(n)
			if !ok {
				return "", false, nil
			}
			return next.String(), true, nil
		},
		distance: func(from, to string) (int64, error) {
			a, err := lookup(from)
			if err != nil {
				return 0, err
			}
			b, err := lookup(to)
			if err != nil {
				return 0, err
			}
			return int64(enumeration.Index[E, S](b)) - int64(enumeration.Index[E, S](a)), nil
		},
		span: func() string {
			return enumeration.Bounds[E, S]().String()
		},
	}
}

// Cases returns the case names in stride order.
func (e *Entry) Cases() []string { return e.cases() }

// Count returns the number of cases.
func (e *Entry) Count() int { return len(e.cases()) }

// Advance returns the name of the value by strides from the value named from.
// Names resolve over the cases and the values behind the base.
// It reports false when that position is outside the enumeration, including
// strides too large for the enumeration's stride type.
func (e *Entry) Advance(from string, by int64) (string, bool, error) {
	return e.advance(from, by)
}

// Distance returns the strides from one case to another.
func (e *Entry) Distance(from, to string) (int64, error) {
	return e.distance(from, to)
}

// Span returns the closed span of the enumeration, e.g. "[Brian, Daniel]".
func (e *Entry) Span() string { return e.span() }

// Catalog is a set of entries keyed by name.
type Catalog struct {
	entries map[string]*Entry
}

func New(entries ...*Entry) *Catalog {
	c := &Catalog{entries: make(map[string]*Entry, len(entries))}
	for _, e := range entries {
		c.entries[e.Name] = e
	}
	return c
}

// Default returns the built-in enumerations.
func Default() *Catalog {
	return New(
		NewEntry[RollCall, int]("roll-call", "The team roll call, in calling order"),
		NewEntry[HexDigit, int]("hex-digit", "Lower-case hexadecimal digits"),
		NewEntry[Floor, int8]("floor", "Office floors, from the ground floor up"),
		NewEntry[inspect.ShellType, int]("shell", "Shell dialects understood by export"),
	)
}

func (c *Catalog) Lookup(name string) (*Entry, error) {
	e, ok := c.entries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEnumeration, name)
	}
	return e, nil
}

// Names returns the entry names in sorted order.
func (c *Catalog) Names() []string {
	return slices.Sorted(maps.Keys(c.entries))
}
