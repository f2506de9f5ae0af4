// Package main runs a PID controller against a simulated motor through
// the control loop driver, logging convergence toward the setpoint.
package main

import (
	"context"
	"sync"
	"time"

	"github.com/edaniels/golog"

	"github.com/Team997Coders/spartanLib2-sub000/control"
)

// simMotor is a first-order plant: the applied effort moves the position
// proportionally each tick, as a voltage moves a geared motor.
type simMotor struct {
	mu       sync.Mutex
	position float64
}

func (m *simMotor) State(ctx context.Context) (float64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position, nil
}

func (m *simMotor) SetState(ctx context.Context, effort float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.position += effort * 0.02
	return nil
}

func (m *simMotor) Position() float64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.position
}

func main() {
	logger := golog.NewDevelopmentLogger("motorloop")

	pid := control.NewPID(control.Gains{P: 2, I: 0.5, D: 0.05}, 100, 50)
	pid.SetEffortLimit(control.LimitOf(12))
	pid.SetTolerances(0.02, 0.05)

	loop, err := control.NewLoop(logger, 50)
	if err != nil {
		logger.Fatal(err)
	}
	motor := &simMotor{}
	if err := loop.Add("motor", pid, motor); err != nil {
		logger.Fatal(err)
	}
	if err := loop.Start(); err != nil {
		logger.Fatal(err)
	}
	defer loop.Stop()

	for i := 0; i < 20; i++ {
		time.Sleep(250 * time.Millisecond)
		effort, err := loop.LastEffort("motor")
		if err != nil {
			logger.Fatal(err)
		}
		done, err := loop.AtSetpoint("motor")
		if err != nil {
			logger.Fatal(err)
		}
		logger.Infow("tracking",
			"position", motor.Position(),
			"effort", effort,
			"at_setpoint", done,
		)
		if done {
			logger.Info("reached setpoint")
			return
		}
	}
	logger.Warn("did not reach setpoint in time")
}
