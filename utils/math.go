// Package utils contains scalar and angle helpers shared by the control
// package and its consumers.
package utils

import "math"

const twoPi = 2 * math.Pi

// DegToRad converts degrees to radians.
func DegToRad(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// RadToDeg converts radians to degrees.
func RadToDeg(radians float64) float64 {
	return radians * 180 / math.Pi
}

// ModAngRad normalizes an angle in radians into [0, 2Pi).
func ModAngRad(ang float64) float64 {
	return math.Mod(math.Mod(ang, twoPi)+twoPi, twoPi)
}

// AngleDiffRad returns the signed smallest difference a1-a2 going around
// the circle, in (-Pi, Pi].
func AngleDiffRad(a1, a2 float64) float64 {
	d := math.Mod(a1-a2, twoPi)
	if d > math.Pi {
		d -= twoPi
	} else if d <= -math.Pi {
		d += twoPi
	}
	return d
}

// Clamp returns v bounded into [min, max].
func Clamp(v, min, max float64) float64 {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
