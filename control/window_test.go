package control

import (
	"testing"

	"go.viam.com/test"
)

func TestIntegralWindowBounded(t *testing.T) {
	w := newIntegralWindow(3)

	w.push(1)
	w.push(2)
	test.That(t, w.total(), test.ShouldAlmostEqual, 3.0)

	w.push(3)
	test.That(t, w.total(), test.ShouldAlmostEqual, 6.0)

	// Oldest samples fall out of the window.
	w.push(4)
	test.That(t, w.total(), test.ShouldAlmostEqual, 9.0)
	w.push(5)
	test.That(t, w.total(), test.ShouldAlmostEqual, 12.0)
}

func TestIntegralWindowUnbounded(t *testing.T) {
	for _, size := range []int{0, -5} {
		w := newIntegralWindow(size)
		for i := 0; i < 1000; i++ {
			w.push(0.5)
		}
		test.That(t, w.total(), test.ShouldAlmostEqual, 500.0)
	}
}

func TestIntegralWindowReset(t *testing.T) {
	w := newIntegralWindow(2)
	w.push(1)
	w.push(2)
	w.reset()
	test.That(t, w.total(), test.ShouldEqual, 0.0)
	w.push(3)
	test.That(t, w.total(), test.ShouldAlmostEqual, 3.0)
}

func TestIntegralWindowSizeOne(t *testing.T) {
	w := newIntegralWindow(1)
	w.push(7)
	test.That(t, w.total(), test.ShouldAlmostEqual, 7.0)
	w.push(-2)
	test.That(t, w.total(), test.ShouldAlmostEqual, -2.0)
}
