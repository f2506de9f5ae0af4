package control

import (
	"math"
	"testing"
	"time"

	"go.viam.com/test"
)

func TestDerivativeFilter(t *testing.T) {
	f := NewDerivativeFilter()

	test.That(t, f.Next(2, time.Second), test.ShouldAlmostEqual, 2.0)
	test.That(t, f.Next(5, time.Second), test.ShouldAlmostEqual, 3.0)
	test.That(t, f.Next(5, 500*time.Millisecond), test.ShouldAlmostEqual, 0.0)
	test.That(t, f.Output(), test.ShouldAlmostEqual, 0.0)

	f.Reset()
	test.That(t, f.Output(), test.ShouldEqual, 0.0)
	test.That(t, f.Next(1, time.Second), test.ShouldAlmostEqual, 1.0)
}

func TestDerivativeFilterZeroDt(t *testing.T) {
	f := NewDerivativeFilter()
	f.Next(2, time.Second)

	// A zero dt yields 0, not an infinity, and still records the sample.
	test.That(t, f.Next(10, 0), test.ShouldEqual, 0.0)
	test.That(t, f.Next(11, time.Second), test.ShouldAlmostEqual, 1.0)
}

func TestAngularDerivativeFilter(t *testing.T) {
	f := NewAngularDerivativeFilter()

	f.Next(2*math.Pi-0.1, time.Second)
	// Crossing the wrap is a 0.2rad step, not a -6.08rad one.
	test.That(t, f.Next(0.1, time.Second), test.ShouldAlmostEqual, 0.2)
}

func TestIntegratorFilter(t *testing.T) {
	f := NewIntegratorFilter()

	test.That(t, f.Next(2, time.Second), test.ShouldAlmostEqual, 2.0)
	test.That(t, f.Next(2, 500*time.Millisecond), test.ShouldAlmostEqual, 3.0)
	test.That(t, f.Next(-6, 500*time.Millisecond), test.ShouldAlmostEqual, 0.0)
	test.That(t, f.Next(1, 0), test.ShouldAlmostEqual, 0.0)

	f.Reset()
	test.That(t, f.Output(), test.ShouldEqual, 0.0)
}

func TestThresholdFilter(t *testing.T) {
	f := NewThresholdFilter(1.0, 0.5)

	test.That(t, f.Next(2, time.Second), test.ShouldEqual, 2.0)
	test.That(t, f.Next(-2, time.Second), test.ShouldEqual, -2.0)
	test.That(t, f.Next(0.5, time.Second), test.ShouldEqual, 0.25)
	test.That(t, f.Next(-0.5, time.Second), test.ShouldEqual, -0.25)
	test.That(t, f.Next(1.0, time.Second), test.ShouldEqual, 1.0)

	// Zero attenuation is a deadband.
	dead := NewThresholdFilter(1.0, 0)
	test.That(t, dead.Next(0.9, time.Second), test.ShouldEqual, 0.0)
}

func TestIdentityFilter(t *testing.T) {
	f := NewIdentityFilter()
	test.That(t, f.Next(3.5, 0), test.ShouldEqual, 3.5)
	test.That(t, f.Output(), test.ShouldEqual, 3.5)
	f.Reset()
	test.That(t, f.Output(), test.ShouldEqual, 0.0)
}
