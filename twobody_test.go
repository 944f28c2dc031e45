package smorrery

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestTwoBodyCircular(t *testing.T) {
	// A circular 1 AU orbit integrated for a quarter period must land a
	// quarter of the way around, still at 1 AU.
	R := []float64{1, 0, 0}
	V := []float64{0, 0, -2 * math.Pi}
	prop := NewTwoBodyProp(R, V, SunGM, 0.25, 1e-3)
	prop.Propagate()
	if !floats.EqualWithinAbs(norm(prop.R), 1, 1e-6) {
		t.Fatalf("|r|=%f", norm(prop.R))
	}
	if !floats.EqualWithinAbs(norm(prop.V), 2*math.Pi, 1e-5) {
		t.Fatalf("|v|=%f", norm(prop.V))
	}
	for i, want := range []float64{0, 0, -1} {
		if !floats.EqualWithinAbs(prop.R[i], want, 1e-4) {
			t.Fatalf("r=%+v", prop.R)
		}
	}
}

func TestTwoBodyMatchesKepler(t *testing.T) {
	// The numerical integrator and the closed-form propagation must agree.
	el, err := NewOrbitalElements(1.523, 0.0934, 1.85, 49.58, 336.04, 19.41, J2000)
	if err != nil {
		t.Fatal(err)
	}
	R0, V0, err := el.StateAt(J2000)
	if err != nil {
		t.Fatal(err)
	}
	const years = 0.3
	prop := NewTwoBodyProp(R0, V0, SunGM, years, 1e-3)
	prop.Propagate()
	want, err := el.Propagate(J2000 + years*DaysPerYear)
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		if !floats.EqualWithinAbs(prop.R[i], want[i], 1e-4) {
			t.Fatalf("numerical %+v vs closed form %+v", prop.R, want)
		}
	}
}
