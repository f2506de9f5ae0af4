package control

import "gonum.org/v1/gonum/floats"

// integralWindow accumulates dt*error products over a sliding window of at
// most size samples, maintaining the window sum incrementally so a push is
// O(1) and allocation free. A size of zero or less means the window is
// unbounded and the sum only clears on reset.
type integralWindow struct {
	samples []float64 // nil when unbounded
	head    int
	count   int
	sum     float64
}

func newIntegralWindow(size int) *integralWindow {
	w := &integralWindow{}
	if size > 0 {
		w.samples = make([]float64, size)
	}
	return w
}

func (w *integralWindow) push(v float64) {
	if w.samples == nil {
		w.sum += v
		return
	}
	if w.count == len(w.samples) {
		w.sum -= w.samples[w.head]
	} else {
		w.count++
	}
	w.samples[w.head] = v
	w.sum += v
	w.head = (w.head + 1) % len(w.samples)
	if w.head == 0 {
		// Re-sum once per wrap so incremental add/subtract drift cannot
		// grow without bound.
		w.sum = floats.Sum(w.samples)
	}
}

func (w *integralWindow) total() float64 {
	return w.sum
}

func (w *integralWindow) reset() {
	for i := range w.samples {
		w.samples[i] = 0
	}
	w.head = 0
	w.count = 0
	w.sum = 0
}
