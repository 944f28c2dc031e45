package smorrery

import (
	"math"

	"github.com/gonum/floats"
)

// AngularMomentum returns the specific angular momentum vector h = r × v.
func AngularMomentum(R, V []float64) []float64 {
	return cross(R, V)
}

// EccentricityVector returns the vector pointing at perihelion whose
// magnitude is the eccentricity.
func EccentricityVector(R, V []float64, μ float64) []float64 {
	h := cross(R, V)
	vxh := cross(V, h)
	rHat := unit(R)
	eVec := make([]float64, 3)
	for i := 0; i < 3; i++ {
		eVec[i] = vxh[i]/μ - rHat[i]
	}
	return eVec
}

// NodeVector returns the ascending-node vector for the +Y reference pole of
// the world frame.
func NodeVector(h []float64) []float64 {
	return []float64{h[2], 0, -h[0]}
}

// DetermineOrbit recovers orbital elements from a Cartesian state, following
// Vallado's RV2COE recast into the Y-up world frame used by the projection.
// The state must be non-degenerate: a radial trajectory (h = 0) or an exactly
// parabolic energy leaves part of the element set undefined and is rejected
// with a DegenerateOrbitError. The mean anomaly at epoch is derived from the
// state so that a freshly launched body starts exactly where it was injected.
func DetermineOrbit(R, V []float64, μ, epochJD float64) (*OrbitalElements, error) {
	r := norm(R)
	v := norm(V)
	if floats.EqualWithinAbs(r, 0, 1e-12) || floats.EqualWithinAbs(v, 0, 1e-12) {
		return nil, DegenerateOrbitError{"zero position or velocity"}
	}
	h := AngularMomentum(R, V)
	if floats.EqualWithinAbs(norm(h), 0, 1e-12) {
		return nil, DegenerateOrbitError{"radial trajectory: angular momentum is zero"}
	}
	ξ := v*v/2 - μ/r
	if floats.EqualWithinAbs(ξ, 0, 1e-12) {
		return nil, DegenerateOrbitError{"exactly parabolic energy"}
	}
	a := -μ / (2 * ξ)
	eVec := EccentricityVector(R, V, μ)
	e := norm(eVec)

	i := math.Acos(h[1] / norm(h))
	n := NodeVector(h)
	// The node direction is (cos Ω, 0, -sin Ω) under the Ry(Ω)·Rx(i)·Ry(ω)
	// projection, hence this argument order.
	Ω := wrapTau(math.Atan2(-n[2], n[0]))

	ω := math.Acos(dot(n, eVec) / (norm(n) * e))
	if math.IsNaN(ω) {
		// Circular or equatorial: the perihelion direction is undefined.
		ω = 0
	}
	// acos cannot tell the two halves of the plane apart: a perihelion below
	// the reference plane means ω is in (π, 2π).
	if eVec[1] < 0 {
		ω = 2*math.Pi - ω
	}

	var m0 float64
	shape := shapeOf(e)
	switch {
	case shape != Elliptical:
		// Anomalies are left at perihelion for open orbits; the projection
		// never propagates them anyway.
		m0 = 0
	case e < eccentricityε:
		// Circular: measure the anomaly as the argument of latitude.
		cosu := dot(n, R) / (norm(n) * r)
		cosu = clampCosine(cosu)
		u := math.Acos(cosu)
		if R[1] < 0 {
			u = 2*math.Pi - u
		}
		if math.IsNaN(u) {
			u = 0
		}
		m0 = u
	default:
		cosν := dot(eVec, R) / (e * r)
		cosν = clampCosine(cosν)
		ν := math.Acos(cosν)
		if dot(R, V) < 0 {
			ν = 2*math.Pi - ν
		}
		E := EccentricFromTrue(e, ν)
		m0 = wrapTau(E - e*math.Sin(E))
	}

	ϖ := wrapTau(ω + Ω)
	return &OrbitalElements{a, e, wrapTau(i), Ω, ϖ, m0, epochJD, shape}, nil
}

// clampCosine pulls a cosine hit by rounding error back into [-1, 1] when it
// is within 1e-12 of the boundary, so that math.Acos does not return NaN.
func clampCosine(c float64) float64 {
	if abs := math.Abs(c); abs > 1 && floats.EqualWithinAbs(abs, 1, 1e-12) {
		return sign(c)
	}
	return c
}
