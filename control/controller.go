// Package control implements feedback controllers for robot actuators: a
// PID controller with a bounded integral window and optional angular
// wraparound, a composed controller summing arbitrary weighted filters, a
// motion-profile-following controller, and a loop driver that runs
// controllers against measured plants at a fixed cadence.
//
// Controllers are single-threaded by design. Each instance is owned and
// mutated by one control loop; the Loop type adds synchronization for its
// own bookkeeping only.
package control

import "time"

// Controller is a stateful feedback controller driving a measured quantity
// toward a setpoint.
type Controller interface {
	// SetSetpoint changes the target value.
	SetSetpoint(setpoint float64)

	// Setpoint returns the current target value.
	Setpoint() float64

	// Calculate advances the controller by one cycle with the given
	// measurement and the time elapsed since the previous cycle, and
	// returns the control effort to hand to an actuator. A zero dt is
	// tolerated; time-derivative terms are 0 for that cycle.
	Calculate(measurement float64, dt time.Duration) float64

	// Reset clears accumulated state (integral history, last measurement)
	// but keeps the setpoint.
	Reset()

	// SetTolerances sets the position and velocity tolerances used by
	// AtSetpoint, each a proportion of the setpoint magnitude.
	SetTolerances(position, velocity float64)

	// AtSetpoint reports whether the last measurement and error velocity
	// are within tolerance of the setpoint.
	AtSetpoint() bool
}
