package smorrery

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R1 rotation about the 1st axis.
func R1(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 rotation about the 2nd axis.
func R2(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 rotation about the 3rd axis.
func R3(x float64) *mat64.Dense {
	s, c := math.Sincos(x)
	return mat64.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MxV33 multiplies a matrix with a vector. Note that there is no dimension check!
func MxV33(m *mat64.Dense, v []float64) (o []float64) {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0), rVec.At(2, 0)}
}

// Plane2World rotates a vector from the orbital plane (the local XZ plane,
// +Y as the orbit normal) into the world frame. The composite is
// Ry(Ω)·Rx(i)·Ry(ω) with active right-handed rotations, which is the Y-up
// scene convention used throughout; the negative angles below express the
// active rotations through the R1/R2 frame matrices.
func Plane2World(i, ω, Ω float64, vI []float64) []float64 {
	var mulM mat64.Dense
	mulM.Mul(R2(-Ω), R1(-i))
	mulM.Mul(&mulM, R2(-ω))
	return MxV33(&mulM, vI)
}
