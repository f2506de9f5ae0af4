package control

import "gonum.org/v1/gonum/floats/scalar"

// gainsEpsilon tolerates gains drifting through a float round trip in
// storage or telemetry.
const gainsEpsilon = 1e-4

// Gains holds the proportional, integral and derivative gains of a PID
// controller. Gains are accepted uncritically; tuning sanity is the
// caller's responsibility.
type Gains struct {
	P float64 `json:"p"`
	I float64 `json:"i"`
	D float64 `json:"d"`
}

// ApproxEqual reports whether two sets of gains are equal within 1e-4.
func (g Gains) ApproxEqual(other Gains) bool {
	return scalar.EqualWithinAbs(g.P, other.P, gainsEpsilon) &&
		scalar.EqualWithinAbs(g.I, other.I, gainsEpsilon) &&
		scalar.EqualWithinAbs(g.D, other.D, gainsEpsilon)
}

// Unset reports whether all three gains are zero, the usual marker for a
// controller that still needs tuning.
func (g Gains) Unset() bool {
	return g.P == 0.0 && g.I == 0.0 && g.D == 0.0
}
