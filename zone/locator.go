package zone

import (
	"fmt"
	"math"
	"strings"
)

// Interval is an active zone on the axis. High may be +Inf for the passed
// policy when no end lies ahead.
type Interval struct {
	Low  float64
	High float64
}

func (iv Interval) Contains(x float64) bool {
	return x >= iv.Low && x <= iv.High
}

func (iv Interval) Length() float64 {
	return iv.High - iv.Low
}

// LastPassed returns the greatest position not exceeding x.
func LastPassed(x float64, positions []float64) (float64, bool) {
	best := math.Inf(-1)
	found := false
	for _, p := range positions {
		if p <= x && p > best {
			best = p
			found = true
		}
	}
	return best, found
}

// NextAhead returns the smallest position not less than x.
func NextAhead(x float64, positions []float64) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, p := range positions {
		if p >= x && p < best {
			best = p
			found = true
		}
	}
	return best, found
}

// NextBeyond returns the smallest position strictly greater than x.
func NextBeyond(x float64, positions []float64) (float64, bool) {
	best := math.Inf(1)
	found := false
	for _, p := range positions {
		if p > x && p < best {
			best = p
			found = true
		}
	}
	return best, found
}

// Locate finds the zone around x bounded by the last passed start and the
// next end at or ahead of x. A zone with no end ahead is not a zone.
func Locate(x float64, starts, ends []float64) (Interval, bool) {
	low, ok := LastPassed(x, starts)
	if !ok {
		return Interval{}, false
	}
	high, ok := NextAhead(x, ends)
	if !ok {
		return Interval{}, false
	}
	iv := Interval{Low: low, High: high}
	if !iv.Contains(x) {
		return Interval{}, false
	}
	return iv, true
}

// Passed reports whether the most recent marker behind x is a start, i.e. a
// start has been passed and no end has been passed since. It returns that
// start.
func Passed(x float64, starts, ends []float64) (float64, bool) {
	lastStart, ok := LastPassed(x, starts)
	if !ok {
		return 0, false
	}
	if lastEnd, ok := LastPassed(x, ends); ok && lastEnd >= lastStart {
		return 0, false
	}
	return lastStart, true
}

// Cap is the distance from origin to the nearest end strictly ahead of it,
// or +Inf when there is none.
func Cap(origin float64, ends []float64) float64 {
	end, ok := NextBeyond(origin, ends)
	if !ok {
		return math.Inf(1)
	}
	return math.Abs(end - origin)
}

// Policy selects how zone membership is decided. The two rules answer the
// same question differently and are kept apart on purpose.
type Policy uint8

const (
	// PolicyBounded requires a passed start and an end at or ahead of the
	// agent. Used by jump and blow-up gates.
	PolicyBounded Policy = iota
	// PolicyPassed requires the last passed marker to be a start; the zone
	// may be open-ended. Used by the bridge builder.
	PolicyPassed
)

func (p Policy) String() string {
	switch p {
	case PolicyBounded:
		return "bounded"
	case PolicyPassed:
		return "passed"
	default:
		return fmt.Sprintf("policy(%d)", p)
	}
}

// ParsePolicy accepts "bounded" or "passed"; empty means bounded.
func ParsePolicy(s string) (Policy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "bounded":
		return PolicyBounded, nil
	case "passed":
		return PolicyPassed, nil
	default:
		return PolicyBounded, fmt.Errorf("zone: unknown policy %q", s)
	}
}

// Locate applies the policy to x.
func (p Policy) Locate(x float64, starts, ends []float64) (Interval, bool) {
	switch p {
	case PolicyPassed:
		low, ok := Passed(x, starts, ends)
		if !ok {
			return Interval{}, false
		}
		high, ok := NextBeyond(x, ends)
		if !ok {
			high = math.Inf(1)
		}
		return Interval{Low: low, High: high}, true
	default:
		return Locate(x, starts, ends)
	}
}

// Permits reports whether x lies in an active zone under the policy.
func (p Policy) Permits(x float64, starts, ends []float64) bool {
	_, ok := p.Locate(x, starts, ends)
	return ok
}
