package control

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// ProfiledPID follows a motion profile by retargeting an inner PID
// controller at the profile's time-sampled position every cycle. The
// profile is externally owned and never mutated.
type ProfiledPID struct {
	pid     *PID
	profile MotionProfile

	lastReference time.Duration
}

// NewProfiledPID returns a controller driving the given PID along the
// given profile.
func NewProfiledPID(pid *PID, profile MotionProfile) (*ProfiledPID, error) {
	if pid == nil {
		return nil, errors.New("profiled controller needs an inner PID")
	}
	if profile == nil {
		return nil, errors.New("profiled controller needs a motion profile")
	}
	return &ProfiledPID{pid: pid, profile: profile}, nil
}

// CalculateAt advances the controller to the given reference time along
// the profile, deriving dt from the previous reference time.
func (c *ProfiledPID) CalculateAt(measurement float64, reference time.Duration) float64 {
	return c.Calculate(measurement, reference, reference-c.lastReference)
}

// Calculate retargets the inner PID at the profile position for the
// reference time, then runs one PID cycle with the given dt.
func (c *ProfiledPID) Calculate(measurement float64, reference, dt time.Duration) float64 {
	c.pid.SetSetpoint(c.profile.State(reference).Position)
	effort := c.pid.Calculate(measurement, dt)
	c.lastReference = reference
	return effort
}

// Reset resets the inner PID and rewinds the reference time.
func (c *ProfiledPID) Reset() {
	c.pid.Reset()
	c.lastReference = 0
}

// AtSetpoint reports whether the tracked measurement has reached the
// profile's terminal position within the inner controller's position
// tolerance. This checks arrival at the end of the trajectory, not
// proximity to the current intermediate target, so it stays false for
// most of a well-tracked profile.
func (c *ProfiledPID) AtSetpoint() bool {
	terminal := c.profile.State(c.profile.Duration()).Position
	dist := terminal - c.pid.LastMeasurement()
	return math.Abs(dist) < math.Abs(c.pid.positionTolerance*terminal)
}

// Controller returns the inner PID for tuning and telemetry.
func (c *ProfiledPID) Controller() *PID {
	return c.pid
}

// Profile returns the profile being followed.
func (c *ProfiledPID) Profile() MotionProfile {
	return c.profile
}
