package control

import "math"

// Limit is an optional symmetric bound on a scalar. The zero value is
// unbounded, replacing the conventional "0 means no limit" float sentinel
// so that an actual zero clamp stays expressible.
type Limit struct {
	max float64
	set bool
}

// LimitOf returns a symmetric bound of |v| <= max.
func LimitOf(max float64) Limit {
	return Limit{max: math.Abs(max), set: true}
}

// Unbounded returns the no-op limit.
func Unbounded() Limit {
	return Limit{}
}

// limitFromLegacy maps the "0 means no limit" float encoding used by older
// configs onto a Limit.
func limitFromLegacy(max float64) Limit {
	if max == 0 {
		return Unbounded()
	}
	return LimitOf(max)
}

// Apply returns v bounded into [-max, max], or v unchanged for an
// unbounded limit.
func (l Limit) Apply(v float64) float64 {
	if !l.set {
		return v
	}
	if v > l.max {
		return l.max
	}
	if v < -l.max {
		return -l.max
	}
	return v
}

// Max returns the bound and whether one is set.
func (l Limit) Max() (float64, bool) {
	return l.max, l.set
}
