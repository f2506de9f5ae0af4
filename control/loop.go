package control

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/edaniels/golog"
	"github.com/pkg/errors"
	"go.uber.org/multierr"
	"go.viam.com/utils"
)

// maxLoopFrequency bounds how fast a loop may tick; robot control loops
// conventionally run at 20-100Hz.
const maxLoopFrequency = 200.0

// Plant is a measured process a loop drives: a measurement source and an
// actuator sink. Implementations typically read an encoder and command a
// motor.
type Plant interface {
	// State returns the current measurement of the process.
	State(ctx context.Context) (float64, error)

	// SetState applies the given control effort to the process.
	SetState(ctx context.Context, effort float64) error
}

type loopPair struct {
	name  string
	ctrl  Controller
	plant Plant

	// telemetry snapshot, guarded by Loop.mu so readers outside the loop
	// goroutine never touch live controller state
	lastEffort float64
	atSetpoint bool
}

// Loop drives an ordered set of controller/plant pairs at a fixed
// frequency from a single background goroutine. Each tick it reads every
// plant's state, runs the paired controller one cycle, and applies the
// resulting effort, in registration order. Registration happens before
// Start; controllers are exclusively owned by the loop once it runs.
type Loop struct {
	logger golog.Logger
	clk    clock.Clock
	dt     time.Duration

	mu      sync.Mutex
	pairs   []*loopPair
	running bool

	cancelCtx               context.Context
	cancel                  context.CancelFunc
	activeBackgroundWorkers sync.WaitGroup
}

// NewLoop returns a stopped loop ticking at the given frequency in Hz.
func NewLoop(logger golog.Logger, frequency float64) (*Loop, error) {
	if frequency <= 0 || frequency > maxLoopFrequency {
		return nil, errors.Errorf("loop frequency must be in (0, %.0f]Hz, got %f", maxLoopFrequency, frequency)
	}
	cancelCtx, cancel := context.WithCancel(context.Background())
	return &Loop{
		logger:    logger,
		clk:       clock.New(),
		dt:        time.Duration(float64(time.Second) / frequency),
		cancelCtx: cancelCtx,
		cancel:    cancel,
	}, nil
}

// Add registers a controller/plant pair under a unique name. It fails
// once the loop is running.
func (l *Loop) Add(name string, ctrl Controller, plant Plant) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return errors.Errorf("cannot add %s to a running loop", name)
	}
	for _, p := range l.pairs {
		if p.name == name {
			return errors.Errorf("loop already has a pair named %s", name)
		}
	}
	l.pairs = append(l.pairs, &loopPair{name: name, ctrl: ctrl, plant: plant})
	return nil
}

// LastEffort returns a snapshot of the effort last applied to the named
// pair. Safe to call from outside the loop goroutine.
func (l *Loop) LastEffort(name string) (float64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.pairs {
		if p.name == name {
			return p.lastEffort, nil
		}
	}
	return 0, errors.Errorf("no controller named %s", name)
}

// AtSetpoint returns a snapshot of whether the named pair's controller
// reported itself at setpoint on its last cycle.
func (l *Loop) AtSetpoint(name string) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.pairs {
		if p.name == name {
			return p.atSetpoint, nil
		}
	}
	return false, errors.Errorf("no controller named %s", name)
}

// ControllerByName returns the registered controller with the given name.
// Controllers are not safe for concurrent use; mutate the result only
// while the loop is stopped, and use LastEffort/AtSetpoint for telemetry
// while it runs.
func (l *Loop) ControllerByName(name string) (Controller, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, p := range l.pairs {
		if p.name == name {
			return p.ctrl, nil
		}
	}
	return nil, errors.Errorf("no controller named %s", name)
}

// Period returns the tick period the loop was configured with.
func (l *Loop) Period() time.Duration {
	return l.dt
}

// Running reports whether the loop goroutine is active.
func (l *Loop) Running() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.running
}

// Start launches the background ticker. Tick errors from plants are
// logged, not fatal; the loop keeps running until Stop.
func (l *Loop) Start() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.running {
		return errors.New("loop already running")
	}
	if l.cancelCtx.Err() != nil {
		return errors.New("loop cannot be restarted after Stop")
	}
	if len(l.pairs) == 0 {
		return errors.New("cannot start a loop with no registered pairs")
	}
	l.logger.Debugf("starting control loop with period %v and %d pairs", l.dt, len(l.pairs))

	ticker := l.clk.Ticker(l.dt)
	l.activeBackgroundWorkers.Add(1)
	utils.ManagedGo(func() {
		defer ticker.Stop()
		for {
			select {
			case <-l.cancelCtx.Done():
				return
			case <-ticker.C:
			}
			if err := l.tick(l.cancelCtx); err != nil {
				l.logger.Errorw("control loop tick failed", "error", err)
			}
		}
	}, l.activeBackgroundWorkers.Done)
	l.running = true
	return nil
}

// tick runs every pair once, in registration order. A failing pair does
// not stop later pairs; their errors are aggregated.
func (l *Loop) tick(ctx context.Context) error {
	l.mu.Lock()
	pairs := l.pairs
	l.mu.Unlock()

	var errs error
	for _, p := range pairs {
		measurement, err := p.plant.State(ctx)
		if err != nil {
			errs = multierr.Combine(errs, errors.Wrapf(err, "reading state of %s", p.name))
			continue
		}
		effort := p.ctrl.Calculate(measurement, l.dt)
		l.mu.Lock()
		p.lastEffort = effort
		p.atSetpoint = p.ctrl.AtSetpoint()
		l.mu.Unlock()
		if err := p.plant.SetState(ctx, effort); err != nil {
			errs = multierr.Combine(errs, errors.Wrapf(err, "applying effort to %s", p.name))
		}
	}
	return errs
}

// Stop halts the ticker and waits for the loop goroutine to exit. A
// stopped loop cannot be restarted.
func (l *Loop) Stop() {
	l.mu.Lock()
	if !l.running {
		l.mu.Unlock()
		return
	}
	l.running = false
	l.mu.Unlock()

	l.logger.Debug("closing control loop")
	l.cancel()
	l.activeBackgroundWorkers.Wait()
}
