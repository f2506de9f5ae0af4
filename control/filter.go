package control

import (
	"math"
	"time"

	"github.com/Team997Coders/spartanLib2-sub000/utils"
)

// Filter is a stateful scalar signal transform. A filter consumes one
// sample per control cycle and has no side effects beyond its own state.
type Filter interface {
	// Next consumes the next input sample, dt after the previous one, and
	// returns the filter output.
	Next(x float64, dt time.Duration) float64

	// Reset returns the filter to its initial state.
	Reset()

	// Output returns the most recent value produced by Next.
	Output() float64
}

type identity struct {
	y float64
}

// NewIdentityFilter returns a stateless pass-through filter. It is the
// proportional term of a composed controller.
func NewIdentityFilter() Filter {
	return &identity{}
}

func (f *identity) Next(x float64, dt time.Duration) float64 {
	f.y = x
	return f.y
}

func (f *identity) Reset() {
	f.y = 0
}

func (f *identity) Output() float64 {
	return f.y
}

type derivative struct {
	diff  func(a, b float64) float64
	lastX float64
	y     float64
}

// NewDerivativeFilter returns a filter differentiating its input with
// respect to time. A zero dt yields 0 rather than an infinity.
func NewDerivativeFilter() Filter {
	return &derivative{diff: func(a, b float64) float64 { return a - b }}
}

// NewAngularDerivativeFilter differentiates an angular input, measuring
// each step as the signed smallest angle between consecutive samples.
func NewAngularDerivativeFilter() Filter {
	return &derivative{diff: utils.AngleDiffRad}
}

func (f *derivative) Next(x float64, dt time.Duration) float64 {
	if dt == 0 {
		f.lastX = x
		f.y = 0
		return f.y
	}
	f.y = f.diff(x, f.lastX) / dt.Seconds()
	f.lastX = x
	return f.y
}

func (f *derivative) Reset() {
	f.lastX = 0
	f.y = 0
}

func (f *derivative) Output() float64 {
	return f.y
}

type integrator struct {
	sum float64
}

// NewIntegratorFilter returns a filter accumulating the running integral
// of its input over time.
func NewIntegratorFilter() Filter {
	return &integrator{}
}

func (f *integrator) Next(x float64, dt time.Duration) float64 {
	f.sum += x * dt.Seconds()
	return f.sum
}

func (f *integrator) Reset() {
	f.sum = 0
}

func (f *integrator) Output() float64 {
	return f.sum
}

type threshold struct {
	cutoff float64
	atten  float64
	y      float64
}

// NewThresholdFilter returns a filter passing samples whose magnitude is
// at least cutoff and multiplying smaller samples by atten. An atten of 0
// squelches sub-threshold samples entirely, which makes this a deadband
// for noisy near-zero error signals.
func NewThresholdFilter(cutoff, atten float64) Filter {
	return &threshold{cutoff: math.Abs(cutoff), atten: atten}
}

func (f *threshold) Next(x float64, dt time.Duration) float64 {
	if math.Abs(x) >= f.cutoff {
		f.y = x
	} else {
		f.y = x * f.atten
	}
	return f.y
}

func (f *threshold) Reset() {
	f.y = 0
}

func (f *threshold) Output() float64 {
	return f.y
}
