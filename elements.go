package smorrery

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

const (
	eccentricityε = 5e-5                         // 0.00005
	angleε        = (5e-3 / 360) * (2 * math.Pi) // 0.005 degrees

	// J2000 is the Julian date of the J2000.0 reference epoch.
	J2000 = 2451545.0
	// DaysPerYear is the number of days in a Julian year.
	DaysPerYear = 365.25
)

// OrbitShape is the conic regime of an orbit. It is classified once at
// construction so call sites dispatch on the tag instead of re-comparing
// the eccentricity.
type OrbitShape uint8

// The three conic regimes.
const (
	Elliptical OrbitShape = iota
	Parabolic
	Hyperbolic
)

// String implements the Stringer interface.
func (s OrbitShape) String() string {
	switch s {
	case Elliptical:
		return "elliptical"
	case Parabolic:
		return "parabolic"
	case Hyperbolic:
		return "hyperbolic"
	default:
		panic(fmt.Errorf("unknown orbit shape %d", s))
	}
}

func shapeOf(e float64) OrbitShape {
	if floats.EqualWithinAbs(e, 1, eccentricityε) {
		return Parabolic
	}
	if e > 1 {
		return Hyperbolic
	}
	return Elliptical
}

// OrbitalElements defines a heliocentric orbit via its Keplerian elements at
// a reference epoch. Distances are in AU, angles are stored in radians, the
// epoch is a Julian date. The set is immutable after construction; only the
// transient anomaly-derived quantities change from one propagation step to
// the next, and those are never stored here.
type OrbitalElements struct {
	a, e, i, Ω, ϖ, M0 float64
	epoch             float64
	shape             OrbitShape
}

// NewOrbitalElements creates an element set from the catalog parameterization.
// WARNING: Angles must be in degrees not radians.
func NewOrbitalElements(a, e, i, Ω, ϖ, M, epochJD float64) (*OrbitalElements, error) {
	for _, v := range []float64{a, e, i, Ω, ϖ, M, epochJD} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, InvalidOrbitError{"non-finite element"}
		}
	}
	if e < 0 {
		return nil, InvalidOrbitError{fmt.Sprintf("negative eccentricity %f", e)}
	}
	shape := shapeOf(e)
	if shape == Elliptical && a <= 0 {
		return nil, InvalidOrbitError{fmt.Sprintf("closed orbit with non-positive semi-major axis %f", a)}
	}
	if shape != Elliptical && a == 0 {
		return nil, InvalidOrbitError{"open orbit with zero semi-major axis"}
	}
	return &OrbitalElements{a, e, Deg2rad(i), Deg2rad(Ω), Deg2rad(ϖ), Deg2rad(M), epochJD, shape}, nil
}

// Shape returns the conic regime classified at construction.
func (el OrbitalElements) Shape() OrbitShape {
	return el.shape
}

// Elements returns a, e, i, Ω, ϖ and the mean anomaly at epoch, angles in radians.
func (el OrbitalElements) Elements() (a, e, i, Ω, ϖ, M0 float64) {
	return el.a, el.e, el.i, el.Ω, el.ϖ, el.M0
}

// Epoch returns the reference epoch as a Julian date.
func (el OrbitalElements) Epoch() float64 {
	return el.epoch
}

// ArgPeriapsisω returns the argument of perihelion ω = ϖ - Ω. It is always
// derived so that ϖ and Ω can never drift apart.
func (el OrbitalElements) ArgPeriapsisω() float64 {
	return wrapTau(el.ϖ - el.Ω)
}

// Periapsis returns the perihelion distance q. Only meaningful for closed orbits.
func (el OrbitalElements) Periapsis() float64 {
	return el.a * (1 - el.e)
}

// Apoapsis returns the aphelion distance Q. Only meaningful for closed orbits.
func (el OrbitalElements) Apoapsis() float64 {
	return el.a * (1 + el.e)
}

// SemiParameter returns the semi-latus rectum p.
func (el OrbitalElements) SemiParameter() float64 {
	return el.a * (1 - el.e*el.e)
}

// Period returns the orbital period in Julian years via Kepler's third law
// for a in AU around the Sun. NaN for open orbits; MeanAnomalyAt rejects it.
func (el OrbitalElements) Period() float64 {
	return math.Sqrt(math.Pow(el.a, 3))
}

// String implements the Stringer interface.
func (el OrbitalElements) String() string {
	return fmt.Sprintf("%s a=%.4f e=%.4f i=%.3f Ω=%.3f ϖ=%.3f M0=%.3f @%f",
		el.shape, el.a, el.e, Rad2deg(el.i), Rad2deg(el.Ω), Rad2deg(el.ϖ), Rad2deg(el.M0), el.epoch)
}

// Equals returns whether two element sets describe the same orbit within the
// package tolerances, ignoring the anomaly and epoch.
func (el OrbitalElements) Equals(o OrbitalElements) (bool, error) {
	if el.shape != o.shape {
		return false, fmt.Errorf("different shapes: %s vs %s", el.shape, o.shape)
	}
	if !floats.EqualWithinAbs(el.a, o.a, 1e-4*math.Abs(el.a)) {
		return false, fmt.Errorf("semi-major axis invalid")
	}
	if !floats.EqualWithinAbs(el.e, o.e, eccentricityε) {
		return false, fmt.Errorf("eccentricity invalid")
	}
	if !floats.EqualWithinAbs(el.i, o.i, angleε) {
		return false, fmt.Errorf("inclination invalid")
	}
	if !floats.EqualWithinAbs(wrapTau(el.Ω), wrapTau(o.Ω), angleε) {
		return false, fmt.Errorf("longitude of ascending node invalid")
	}
	if el.e > eccentricityε && !floats.EqualWithinAbs(el.ArgPeriapsisω(), o.ArgPeriapsisω(), angleε) {
		return false, fmt.Errorf("argument of perihelion invalid")
	}
	return true, nil
}
