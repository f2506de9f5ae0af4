package control

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// Term pairs a filter with the gain applied to its output.
type Term struct {
	Filter Filter
	Gain   float64
}

// Composed is a feedback controller summing an arbitrary set of weighted
// filters applied to the error signal. It generalizes PID: an identity
// filter gives a proportional term, an integrator filter an integral
// term, a derivative filter a derivative term. Terms are evaluated in the
// order given. Unlike PID there is no per-term clamping; the gain on each
// term is the tuning lever.
type Composed struct {
	terms    []Term
	setpoint float64

	lastError  float64
	velocity   float64
	lastEffort float64

	positionTolerance float64
	velocityTolerance float64
}

// NewComposed returns a controller summing gain*filter(error) over the
// given terms. The terms slice is retained; the controller takes
// ownership of the filters and resets them alongside itself.
func NewComposed(terms []Term, setpoint float64) (*Composed, error) {
	if len(terms) == 0 {
		return nil, errors.New("composed controller needs at least one term")
	}
	for i, term := range terms {
		if term.Filter == nil {
			return nil, errors.Errorf("composed controller term %d has no filter", i)
		}
	}
	return &Composed{
		terms:             terms,
		setpoint:          setpoint,
		positionTolerance: DefaultTolerance,
		velocityTolerance: DefaultTolerance,
	}, nil
}

// Calculate advances every term by one cycle with the current error and
// returns the weighted sum of their outputs. The caller's dt is forwarded
// to each filter.
func (c *Composed) Calculate(measurement float64, dt time.Duration) float64 {
	err := c.setpoint - measurement
	dtS := dt.Seconds()

	if dtS != 0 {
		c.velocity = (err - c.lastError) / dtS
	} else {
		c.velocity = 0
	}

	var effort float64
	for _, term := range c.terms {
		effort += term.Gain * term.Filter.Next(err, dt)
	}

	c.lastError = err
	c.lastEffort = effort
	return effort
}

// Reset resets every owned filter and the remembered error. The setpoint
// is kept.
func (c *Composed) Reset() {
	for _, term := range c.terms {
		term.Filter.Reset()
	}
	c.lastError = 0
	c.velocity = 0
	c.lastEffort = 0
}

// SetSetpoint changes the target value.
func (c *Composed) SetSetpoint(setpoint float64) {
	c.setpoint = setpoint
}

// Setpoint returns the current target value.
func (c *Composed) Setpoint() float64 {
	return c.setpoint
}

// SetTolerances sets the position and velocity tolerances used by
// AtSetpoint, each a proportion of the setpoint magnitude.
func (c *Composed) SetTolerances(position, velocity float64) {
	c.positionTolerance = position
	c.velocityTolerance = velocity
}

// AtSetpoint reports whether the last error and error velocity are within
// tolerance, each tolerance scaling with the setpoint itself.
func (c *Composed) AtSetpoint() bool {
	return math.Abs(c.lastError) < math.Abs(c.positionTolerance*c.setpoint) &&
		math.Abs(c.velocity) < math.Abs(c.velocityTolerance*c.setpoint)
}

// LastEffort returns the effort computed by the last Calculate call.
func (c *Composed) LastEffort() float64 {
	return c.lastEffort
}
