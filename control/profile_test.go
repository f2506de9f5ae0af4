package control

import (
	"testing"
	"time"

	"go.viam.com/test"
)

func TestTrapezoidProfileValidation(t *testing.T) {
	_, err := NewTrapezoidProfile(0, 10, 0, 1)
	test.That(t, err, test.ShouldNotBeNil)
	_, err = NewTrapezoidProfile(0, 10, 1, -1)
	test.That(t, err, test.ShouldNotBeNil)
}

func TestTrapezoidProfileEndpoints(t *testing.T) {
	p, err := NewTrapezoidProfile(2, 12, 2, 1)
	test.That(t, err, test.ShouldBeNil)

	test.That(t, p.State(0).Position, test.ShouldEqual, 2.0)
	test.That(t, p.State(0).Velocity, test.ShouldEqual, 0.0)
	test.That(t, p.State(-time.Second).Position, test.ShouldEqual, 2.0)

	end := p.State(p.Duration())
	test.That(t, end.Position, test.ShouldEqual, 12.0)
	test.That(t, end.Velocity, test.ShouldEqual, 0.0)
	test.That(t, p.State(p.Duration()+time.Minute).Position, test.ShouldEqual, 12.0)
}

func TestTrapezoidProfileCruise(t *testing.T) {
	// 10 units at maxVel 2, maxAcc 1: 2s accel, 2s decel, 3s cruise.
	p, err := NewTrapezoidProfile(0, 10, 2, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Duration(), test.ShouldEqual, 7*time.Second)

	mid := p.State(3500 * time.Millisecond)
	test.That(t, mid.Velocity, test.ShouldAlmostEqual, 2.0)
	test.That(t, mid.Position, test.ShouldAlmostEqual, 5.0)

	accel := p.State(time.Second)
	test.That(t, accel.Velocity, test.ShouldAlmostEqual, 1.0)
	test.That(t, accel.Position, test.ShouldAlmostEqual, 0.5)

	decel := p.State(6 * time.Second)
	test.That(t, decel.Velocity, test.ShouldAlmostEqual, 1.0)
	test.That(t, decel.Position, test.ShouldAlmostEqual, 9.5)
}

func TestTrapezoidProfileTriangular(t *testing.T) {
	// 1 unit of travel never reaches maxVel 10: triangular shape peaking
	// at sqrt(distance*acc) = 1.
	p, err := NewTrapezoidProfile(0, 1, 10, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Duration(), test.ShouldEqual, 2*time.Second)

	peak := p.State(time.Second)
	test.That(t, peak.Velocity, test.ShouldAlmostEqual, 1.0)
	test.That(t, peak.Position, test.ShouldAlmostEqual, 0.5)
}

func TestTrapezoidProfileReverse(t *testing.T) {
	p, err := NewTrapezoidProfile(10, 0, 2, 1)
	test.That(t, err, test.ShouldBeNil)

	mid := p.State(p.Duration() / 2)
	test.That(t, mid.Velocity, test.ShouldAlmostEqual, -2.0)
	test.That(t, mid.Position, test.ShouldAlmostEqual, 5.0)
	test.That(t, p.State(p.Duration()).Position, test.ShouldEqual, 0.0)
}

func TestTrapezoidProfileZeroDistance(t *testing.T) {
	p, err := NewTrapezoidProfile(3, 3, 2, 1)
	test.That(t, err, test.ShouldBeNil)
	test.That(t, p.Duration(), test.ShouldEqual, time.Duration(0))
	test.That(t, p.State(time.Second).Position, test.ShouldEqual, 3.0)
}
