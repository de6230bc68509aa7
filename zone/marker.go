package zone

import (
	"fmt"
	"strings"
)

// Kind tags a marker as opening or closing a zone.
type Kind uint8

const (
	Start Kind = iota
	End
)

func (k Kind) String() string {
	switch k {
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("kind(%d)", k)
	}
}

// ParseKind accepts "start" or "end".
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "start":
		return Start, nil
	case "end":
		return End, nil
	default:
		return Start, fmt.Errorf("zone: unknown marker kind %q", s)
	}
}

// Ref identifies the world object a marker was read from. The object can be
// destroyed at any time, so a Ref is only ever resolved through a Resolver.
type Ref uint64

// Marker is a boundary position on the gate axis.
type Marker struct {
	Ref      Ref
	Kind     Kind
	Category string
}

// Resolver maps a marker reference to its current position on the axis.
// ok is false once the backing object is gone.
type Resolver interface {
	ResolveX(ref Ref) (x float64, ok bool)
}

type ResolverFunc func(ref Ref) (float64, bool)

func (f ResolverFunc) ResolveX(ref Ref) (float64, bool) {
	if f == nil {
		return 0, false
	}
	return f(ref)
}

// Set holds the starts and ends of one category in discovery order.
type Set struct {
	Category string
	Starts   []Ref
	Ends     []Ref
}

// NewSet keeps the markers belonging to category.
func NewSet(category string, markers []Marker) Set {
	set := Set{Category: category}
	for _, m := range markers {
		if m.Category != category {
			continue
		}
		switch m.Kind {
		case Start:
			set.Starts = append(set.Starts, m.Ref)
		case End:
			set.Ends = append(set.Ends, m.Ref)
		}
	}
	return set
}

// Empty reports whether the set can never produce an interval.
func (s Set) Empty() bool {
	return len(s.Starts) == 0 || len(s.Ends) == 0
}

// Positions resolves the live markers of the set. Dead references are
// skipped on every call.
func (s Set) Positions(r Resolver) (starts, ends []float64) {
	if r == nil {
		return nil, nil
	}
	return resolveAll(r, s.Starts), resolveAll(r, s.Ends)
}

func resolveAll(r Resolver, refs []Ref) []float64 {
	if len(refs) == 0 {
		return nil
	}
	out := make([]float64, 0, len(refs))
	for _, ref := range refs {
		x, ok := r.ResolveX(ref)
		if !ok {
			continue
		}
		out = append(out, x)
	}
	return out
}
