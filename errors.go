package smorrery

import "fmt"

// InvalidOrbitError signals orbital elements which cannot describe a physical
// orbit (negative or non-finite eccentricity, non-positive period, and so on).
type InvalidOrbitError struct {
	Reason string
}

func (e InvalidOrbitError) Error() string {
	return "invalid orbit: " + e.Reason
}

// ConvergenceError signals that the Kepler solver exhausted its iteration
// budget. The residual is that of the last iterate.
type ConvergenceError struct {
	Iterations int
	Residual   float64
}

func (e ConvergenceError) Error() string {
	return fmt.Sprintf("kepler solver did not converge after %d iterations (residual %e)", e.Iterations, e.Residual)
}

// DegenerateOrbitError signals a Cartesian state from which orbital elements
// are undefined, e.g. a radial trajectory (zero angular momentum) or an
// exactly parabolic energy.
type DegenerateOrbitError struct {
	Reason string
}

func (e DegenerateOrbitError) Error() string {
	return "degenerate orbit: " + e.Reason
}
