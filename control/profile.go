package control

import (
	"math"
	"time"

	"github.com/pkg/errors"
)

// ProfileState is a sampled point along a motion profile.
type ProfileState struct {
	Position float64
	Velocity float64
}

// MotionProfile maps elapsed time to a target state along a trajectory.
// Implementations are pure: State may be sampled at any time in any
// order. Times before zero sample the start of the trajectory, times past
// Duration its end.
type MotionProfile interface {
	State(t time.Duration) ProfileState
	Duration() time.Duration
}

// TrapezoidProfile is a MotionProfile that accelerates at a constant rate
// to a cruise velocity, holds it, then decelerates to rest at the goal.
// When the travel distance is too short to reach maxVel the profile
// degenerates to a triangular accelerate/decelerate shape.
type TrapezoidProfile struct {
	start float64
	goal  float64
	dir   float64

	maxAcc    float64
	cruiseVel float64

	accelTime  float64
	cruiseTime float64
}

// NewTrapezoidProfile plans a profile from start to goal bounded by
// maxVel and maxAcc, both of which must be positive.
func NewTrapezoidProfile(start, goal, maxVel, maxAcc float64) (*TrapezoidProfile, error) {
	if maxVel <= 0 {
		return nil, errors.Errorf("trapezoid profile needs a positive max velocity, got %f", maxVel)
	}
	if maxAcc <= 0 {
		return nil, errors.Errorf("trapezoid profile needs a positive max acceleration, got %f", maxAcc)
	}
	p := &TrapezoidProfile{start: start, goal: goal, maxAcc: maxAcc, dir: 1}
	if goal < start {
		p.dir = -1
	}
	distance := math.Abs(goal - start)
	// Velocity reachable in half the distance, capped at the cruise cap.
	p.cruiseVel = math.Min(math.Sqrt(distance*maxAcc), maxVel)
	if p.cruiseVel > 0 {
		p.accelTime = p.cruiseVel / maxAcc
		accelDist := p.cruiseVel * p.cruiseVel / (2 * maxAcc)
		p.cruiseTime = (distance - 2*accelDist) / p.cruiseVel
	}
	return p, nil
}

// Duration returns the total time the profile takes.
func (p *TrapezoidProfile) Duration() time.Duration {
	return time.Duration((2*p.accelTime + p.cruiseTime) * float64(time.Second))
}

// State samples the profile at time t.
func (p *TrapezoidProfile) State(t time.Duration) ProfileState {
	tS := t.Seconds()
	total := 2*p.accelTime + p.cruiseTime
	switch {
	case tS <= 0:
		return ProfileState{Position: p.start}
	case tS >= total:
		return ProfileState{Position: p.goal}
	case tS < p.accelTime:
		return ProfileState{
			Position: p.start + p.dir*0.5*p.maxAcc*tS*tS,
			Velocity: p.dir * p.maxAcc * tS,
		}
	case tS < p.accelTime+p.cruiseTime:
		accelDist := 0.5 * p.maxAcc * p.accelTime * p.accelTime
		return ProfileState{
			Position: p.start + p.dir*(accelDist+p.cruiseVel*(tS-p.accelTime)),
			Velocity: p.dir * p.cruiseVel,
		}
	default:
		remaining := total - tS
		return ProfileState{
			Position: p.goal - p.dir*0.5*p.maxAcc*remaining*remaining,
			Velocity: p.dir * p.maxAcc * remaining,
		}
	}
}
