package common

import "math"

const (
	BaseWidth  = 1280
	BaseHeight = 720

	// Gravity is in pixels per second squared; screen y grows downward.
	Gravity = 900.0
)

// SmoothDamp moves current toward target like a critically damped spring
// reaching it in roughly smoothTime seconds. velocity carries state between
// calls.
func SmoothDamp(current, target float64, velocity *float64, smoothTime, dt float64) float64 {
	if smoothTime < 0.0001 {
		smoothTime = 0.0001
	}
	if dt <= 0 {
		return current
	}
	omega := 2 / smoothTime
	x := omega * dt
	exp := 1 / (1 + x + 0.48*x*x + 0.235*x*x*x)

	change := current - target
	temp := (*velocity + omega*change) * dt
	*velocity = (*velocity - omega*temp) * exp
	out := target + (change+temp)*exp

	// no overshoot
	if (target-current > 0) == (out > target) {
		out = target
		*velocity = (out - target) / dt
	}
	if math.IsNaN(out) {
		return target
	}
	return out
}

// Intersects reports whether two top-left anchored boxes overlap.
func Intersects(ax, ay, aw, ah, bx, by, bw, bh float64) bool {
	return ax < bx+bw && ax+aw > bx && ay < by+bh && ay+ah > by
}

// SameXY reports whether two points are within epsilon on both axes.
func SameXY(ax, ay, bx, by, epsilon float64) bool {
	return math.Abs(ax-bx) < epsilon && math.Abs(ay-by) < epsilon
}
