package smorrery

import (
	"fmt"
	"math"
)

const (
	// keplerTolerance is the convergence tolerance on the residual of
	// Kepler's equation, M = E - e·sin(E).
	keplerTolerance = 1e-6
	// maxKeplerIterations bounds the Newton-Raphson loop: near-parabolic
	// eccentricities can converge slowly, and an unbounded loop must never
	// reach the simulation.
	maxKeplerIterations = 100
)

// MeanAnomalyAt advances a mean anomaly by the elapsed time (same unit as the
// period) with mean motion n = 2π/T, and reduces the result into [0, 2π).
func MeanAnomalyAt(period, m0, elapsed float64) (float64, error) {
	if math.IsNaN(period) || period <= 0 {
		return 0, InvalidOrbitError{fmt.Sprintf("non-positive period %f", period)}
	}
	n := 2 * math.Pi / period
	return wrapTau(m0 + n*elapsed), nil
}

// SolveKepler solves Kepler's equation M = E - e·sin(E) for the eccentric
// anomaly via Newton-Raphson with initial guess E₀ = M. Valid for closed
// orbits (e < 1) only.
func SolveKepler(e, m float64) (float64, error) {
	E := m
	var f float64
	for it := 0; it < maxKeplerIterations; it++ {
		sinE, cosE := math.Sincos(E)
		f = E - e*sinE - m
		if math.Abs(f) < keplerTolerance {
			return E, nil
		}
		E -= f / (1 - e*cosE)
	}
	return E, ConvergenceError{maxKeplerIterations, f}
}

// TrueAnomaly converts an eccentric anomaly to the true anomaly, reduced into
// [0, 2π). Valid for e < 1 only; parabolic and hyperbolic paths use the conic
// equation r(θ) directly and never go through the anomalies.
func TrueAnomaly(e, E float64) float64 {
	sE, cE := math.Sincos(E / 2)
	return wrapTau(2 * math.Atan2(math.Sqrt(1+e)*sE, math.Sqrt(1-e)*cE))
}

// EccentricFromTrue is the inverse of TrueAnomaly.
func EccentricFromTrue(e, ν float64) float64 {
	sν, cν := math.Sincos(ν / 2)
	return wrapTau(2 * math.Atan2(math.Sqrt(1-e)*sν, math.Sqrt(1+e)*cν))
}
