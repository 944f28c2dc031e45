package smorrery

import (
	"math"
)

const (
	// OrbitCurvePoints is the default sample count for displayed orbit curves.
	OrbitCurvePoints = 100
	// HighlightCurvePoints is the sample count for highlighted or user-launched orbits.
	HighlightCurvePoints = 300

	parabolicCurveHalfSpan  = math.Pi / 2
	hyperbolicCurveHalfSpan = math.Pi / 4
)

// planePosition returns the orbital-plane coordinates for radius r at the
// in-plane angle θ. The plane is the local XZ plane and the minus sign on Z
// encodes the scene handedness convention; it carries no physical meaning on
// its own but must be preserved for every consumer of these coordinates.
func planePosition(r, θ float64) []float64 {
	sθ, cθ := math.Sincos(θ)
	return []float64{r * cθ, 0, -r * sθ}
}

func (el OrbitalElements) plane2World(v []float64) []float64 {
	return Plane2World(el.i, el.ArgPeriapsisω(), el.Ω, v)
}

// Propagate returns the world-frame position of the body at the given Julian
// date. Only closed orbits have a defined period and can be propagated; open
// orbits are rejected with an InvalidOrbitError.
func (el OrbitalElements) Propagate(jd float64) ([]float64, error) {
	ν, err := el.trueAnomalyAt(jd)
	if err != nil {
		return nil, err
	}
	r := el.SemiParameter() / (1 + el.e*math.Cos(ν))
	return el.plane2World(planePosition(r, ν)), nil
}

// StateAt returns the world-frame position (AU) and velocity (AU/year) at the
// given Julian date, suitable as input to DetermineOrbit with μ = SunGM.
func (el OrbitalElements) StateAt(jd float64) (R, V []float64, err error) {
	ν, err := el.trueAnomalyAt(jd)
	if err != nil {
		return nil, nil, err
	}
	sν, cν := math.Sincos(ν)
	r := el.SemiParameter() / (1 + el.e*cν)
	vc := math.Sqrt(SunGM / el.SemiParameter())
	R = el.plane2World(planePosition(r, ν))
	// Perifocal velocity, with the Z axis flipped like the position.
	V = el.plane2World([]float64{-vc * sν, 0, -vc * (el.e + cν)})
	return
}

func (el OrbitalElements) trueAnomalyAt(jd float64) (float64, error) {
	if el.shape != Elliptical {
		return 0, InvalidOrbitError{"open orbits have no defined period"}
	}
	elapsed := (jd - el.epoch) / DaysPerYear
	m, err := MeanAnomalyAt(el.Period(), el.M0, elapsed)
	if err != nil {
		return 0, err
	}
	E, err := SolveKepler(el.e, m)
	if err != nil {
		return 0, err
	}
	return TrueAnomaly(el.e, E), nil
}

// SampleOrbitCurve samples the orbit as n world-frame points for the display
// layer. Closed orbits span the full [0, 2π] so the first and last points
// coincide; parabolic and hyperbolic arcs are truncated to a finite window
// around periapsis, which is a display choice, not a physical one.
func (el OrbitalElements) SampleOrbitCurve(n int) ([][]float64, error) {
	if n < 2 {
		n = OrbitCurvePoints
	}
	var from, to float64
	switch el.shape {
	case Elliptical:
		from, to = 0, 2*math.Pi
	case Parabolic:
		from, to = -parabolicCurveHalfSpan, parabolicCurveHalfSpan
	case Hyperbolic:
		from, to = -hyperbolicCurveHalfSpan, hyperbolicCurveHalfSpan
	default:
		return nil, InvalidOrbitError{"unclassified orbit shape"}
	}
	pts := make([][]float64, n)
	step := (to - from) / float64(n-1)
	for k := 0; k < n; k++ {
		θ := from + float64(k)*step
		pts[k] = el.plane2World(planePosition(el.conicRadius(θ), θ))
	}
	return pts, nil
}

// conicRadius evaluates the conic equation r(θ) for the shape classified at
// construction. The semi-major axis enters as its magnitude so that both the
// a<0 and a>0 hyperbolic conventions describe the same curve.
func (el OrbitalElements) conicRadius(θ float64) float64 {
	switch el.shape {
	case Parabolic:
		p := math.Abs(el.a) * (1 + el.e)
		return p / (1 + math.Cos(θ))
	case Hyperbolic:
		return math.Abs(el.a) * (el.e*el.e - 1) / (1 + el.e*math.Cos(θ))
	default:
		return el.a * (1 - el.e*el.e) / (1 + el.e*math.Cos(θ))
	}
}
