package control

import "github.com/Team997Coders/spartanLib2-sub000/utils"

// errorPolicy defines how a controller measures the distance between a
// setpoint and a measurement, and how it canonicalizes incoming values.
// It is fixed at construction.
type errorPolicy interface {
	normalize(v float64) float64
	distance(setpoint, measurement float64) float64
}

// linearPolicy treats values as points on a line.
type linearPolicy struct{}

func (linearPolicy) normalize(v float64) float64 {
	return v
}

func (linearPolicy) distance(setpoint, measurement float64) float64 {
	return setpoint - measurement
}

// angularPolicy treats values as angles in radians. Values are normalized
// into [0, 2Pi) and distances are the signed shortest way around the
// circle, in (-Pi, Pi].
type angularPolicy struct{}

func (angularPolicy) normalize(v float64) float64 {
	return utils.ModAngRad(v)
}

func (p angularPolicy) distance(setpoint, measurement float64) float64 {
	return utils.AngleDiffRad(p.normalize(setpoint), p.normalize(measurement))
}
