package control

import (
	"math"
	"time"
)

// DefaultTolerance is the position and velocity tolerance a controller
// starts with, as a proportion of the setpoint magnitude.
const DefaultTolerance = 0.05

// PID is a proportional-integral-derivative feedback controller. The
// integral term accumulates dt*error products over a bounded sliding
// window; each term and the summed effort can carry an optional symmetric
// clamp. An angular PID normalizes setpoints and measurements into
// [0, 2Pi) and measures error as the signed shortest way around the
// circle.
//
// A PID is not safe for concurrent use. It is meant to be owned by a
// single control loop; the Loop driver in this package provides that
// ownership.
type PID struct {
	policy errorPolicy
	gains  Gains

	setpoint        float64
	lastMeasurement float64
	lastSetpoint    float64

	window *integralWindow

	lastP      float64
	lastI      float64
	lastD      float64
	lastEffort float64
	velocity   float64

	pLimit      Limit
	iLimit      Limit
	dLimit      Limit
	effortLimit Limit

	positionTolerance float64
	velocityTolerance float64
}

// NewPID returns a linear PID controller with the given gains and initial
// setpoint. windowSize bounds how many dt*error samples the integral term
// remembers; zero or less means the window is unbounded. Gains are not
// validated; a NaN or negative gain propagates into the effort.
func NewPID(gains Gains, setpoint float64, windowSize int) *PID {
	return newPID(linearPolicy{}, gains, setpoint, windowSize)
}

// NewAngularPID returns a PID controller over an angular quantity in
// radians. The setpoint is normalized into [0, 2Pi) on every assignment
// and errors take the short way around the circle.
func NewAngularPID(gains Gains, setpoint float64, windowSize int) *PID {
	return newPID(angularPolicy{}, gains, setpoint, windowSize)
}

func newPID(policy errorPolicy, gains Gains, setpoint float64, windowSize int) *PID {
	p := &PID{
		policy:            policy,
		gains:             gains,
		window:            newIntegralWindow(windowSize),
		positionTolerance: DefaultTolerance,
		velocityTolerance: DefaultTolerance,
	}
	p.setpoint = policy.normalize(setpoint)
	p.lastSetpoint = p.setpoint
	return p
}

// Calculate advances the controller by one cycle and returns the control
// effort. A zero dt forces the derivative term to 0 and contributes a
// zero-weighted sample to the integral window.
func (p *PID) Calculate(measurement float64, dt time.Duration) float64 {
	m := p.policy.normalize(measurement)
	err := p.policy.distance(p.setpoint, m)
	dtS := dt.Seconds()

	p.window.push(dtS * err)

	prevErr := p.policy.distance(p.lastSetpoint, p.lastMeasurement)
	if dtS != 0 {
		p.velocity = (err - prevErr) / dtS
	} else {
		p.velocity = 0
	}

	p.lastP = p.pLimit.Apply(p.gains.P * err)
	p.lastI = p.iLimit.Apply(p.gains.I * p.window.total())
	p.lastD = p.dLimit.Apply(p.gains.D * p.velocity)

	p.lastMeasurement = m
	p.lastSetpoint = p.setpoint

	p.lastEffort = p.effortLimit.Apply(p.lastP + p.lastI + p.lastD)
	return p.lastEffort
}

// Reset clears the integral window and zeroes the remembered measurement.
// The setpoint is kept.
func (p *PID) Reset() {
	p.window.reset()
	p.lastMeasurement = 0
	p.lastSetpoint = p.setpoint
	p.lastP = 0
	p.lastI = 0
	p.lastD = 0
	p.lastEffort = 0
	p.velocity = 0
}

// SetSetpoint changes the target value, normalized per the controller's
// error policy.
func (p *PID) SetSetpoint(setpoint float64) {
	p.setpoint = p.policy.normalize(setpoint)
}

// Setpoint returns the current target value.
func (p *PID) Setpoint() float64 {
	return p.setpoint
}

// SetTolerances sets the position and velocity tolerances used by
// AtSetpoint, each a proportion of the setpoint magnitude.
func (p *PID) SetTolerances(position, velocity float64) {
	p.positionTolerance = position
	p.velocityTolerance = velocity
}

// AtSetpoint reports whether the last measurement is within the position
// tolerance of the setpoint and the error velocity within the velocity
// tolerance. Both tolerances scale with the setpoint itself, so a zero
// setpoint is only ever "at setpoint" in exact-zero corner cases.
func (p *PID) AtSetpoint() bool {
	posErr := p.policy.distance(p.setpoint, p.lastMeasurement)
	return math.Abs(posErr) < math.Abs(p.positionTolerance*p.setpoint) &&
		math.Abs(p.velocity) < math.Abs(p.velocityTolerance*p.setpoint)
}

// SetGains replaces all three gains.
func (p *PID) SetGains(gains Gains) {
	p.gains = gains
}

// GetGains returns the current gains.
func (p *PID) GetGains() Gains {
	return p.gains
}

// SetTermLimits sets the optional per-term clamps applied to the P, I and
// D contributions before they are summed.
func (p *PID) SetTermLimits(pTerm, iTerm, dTerm Limit) {
	p.pLimit = pTerm
	p.iLimit = iTerm
	p.dLimit = dTerm
}

// SetEffortLimit sets the optional clamp applied to the summed effort.
func (p *PID) SetEffortLimit(l Limit) {
	p.effortLimit = l
}

// SetLegacyLimits sets all four clamps from the older float encoding
// where 0 means no limit.
func (p *PID) SetLegacyLimits(maxP, maxI, maxD, maxEffort float64) {
	p.pLimit = limitFromLegacy(maxP)
	p.iLimit = limitFromLegacy(maxI)
	p.dLimit = limitFromLegacy(maxD)
	p.effortLimit = limitFromLegacy(maxEffort)
}

// PContribution returns the post-clamp proportional term of the last
// cycle.
func (p *PID) PContribution() float64 {
	return p.lastP
}

// IContribution returns the post-clamp integral term of the last cycle.
func (p *PID) IContribution() float64 {
	return p.lastI
}

// DContribution returns the post-clamp derivative term of the last cycle.
func (p *PID) DContribution() float64 {
	return p.lastD
}

// IntegralAccumulation returns the current sum of the integral window.
func (p *PID) IntegralAccumulation() float64 {
	return p.window.total()
}

// LastEffort returns the effort computed by the last Calculate call.
func (p *PID) LastEffort() float64 {
	return p.lastEffort
}

// LastMeasurement returns the measurement seen by the last Calculate
// call, normalized per the controller's error policy.
func (p *PID) LastMeasurement() float64 {
	return p.lastMeasurement
}

// Error returns the current distance from the last measurement to the
// setpoint.
func (p *PID) Error() float64 {
	return p.policy.distance(p.setpoint, p.lastMeasurement)
}
