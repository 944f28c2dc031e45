package smorrery

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestNewOrbitalElements(t *testing.T) {
	el, err := NewOrbitalElements(2.2, 0.53, 10.6, 80, 110, 230, J2000)
	if err != nil {
		t.Fatal(err)
	}
	if el.Shape() != Elliptical {
		t.Fatalf("shape %s", el.Shape())
	}
	if ok, err := anglesEqual(Deg2rad(30), el.ArgPeriapsisω()); !ok {
		t.Fatalf("ω invalid: %s", err)
	}
	if !floats.EqualWithinAbs(el.Periapsis(), 2.2*(1-0.53), 1e-12) {
		t.Fatalf("q=%f", el.Periapsis())
	}
	if !floats.EqualWithinAbs(el.Apoapsis(), 2.2*(1+0.53), 1e-12) {
		t.Fatalf("Q=%f", el.Apoapsis())
	}
	if !floats.EqualWithinAbs(el.Period(), math.Sqrt(2.2*2.2*2.2), 1e-12) {
		t.Fatalf("T=%f", el.Period())
	}
}

func TestNewOrbitalElementsRejections(t *testing.T) {
	var invalid InvalidOrbitError
	cases := []struct {
		name             string
		a, e, i, Ω, ϖ, M float64
	}{
		{"negative eccentricity", 1, -0.1, 0, 0, 0, 0},
		{"NaN eccentricity", 1, math.NaN(), 0, 0, 0, 0},
		{"NaN axis", math.NaN(), 0.5, 0, 0, 0, 0},
		{"closed orbit with negative axis", -1, 0.5, 0, 0, 0, 0},
		{"infinite node", 1, 0.5, 0, math.Inf(1), 0, 0},
	}
	for _, c := range cases {
		if _, err := NewOrbitalElements(c.a, c.e, c.i, c.Ω, c.ϖ, c.M, J2000); !errors.As(err, &invalid) {
			t.Fatalf("%s: expected InvalidOrbitError, got %v", c.name, err)
		}
	}
}

func TestOrbitShapeClassification(t *testing.T) {
	cases := []struct {
		a, e  float64
		shape OrbitShape
	}{
		{1, 0, Elliptical},
		{1, 0.9999, Elliptical},
		{2.5, 1.0, Parabolic},
		{2.5, 1.00003, Parabolic}, // within the boundary tolerance
		{-3, 1.8, Hyperbolic},
		{3, 1.2, Hyperbolic},
	}
	for _, c := range cases {
		el, err := NewOrbitalElements(c.a, c.e, 5, 10, 20, 0, J2000)
		if err != nil {
			t.Fatalf("e=%f: %s", c.e, err)
		}
		if el.Shape() != c.shape {
			t.Fatalf("e=%f: got %s, want %s", c.e, el.Shape(), c.shape)
		}
	}
}

func TestOrbitShapeString(t *testing.T) {
	for s, want := range map[OrbitShape]string{Elliptical: "elliptical", Parabolic: "parabolic", Hyperbolic: "hyperbolic"} {
		if s.String() != want {
			t.Fatalf("got %s", s)
		}
	}
	assertPanic(t, func() { _ = OrbitShape(42).String() })
}

func TestElementsEquals(t *testing.T) {
	el0, _ := NewOrbitalElements(1.5, 0.2, 12, 40, 95, 0, J2000)
	el1, _ := NewOrbitalElements(1.5, 0.2, 12, 40, 95, 180, J2000+100)
	if ok, err := el0.Equals(*el1); !ok {
		t.Fatalf("anomaly and epoch must not matter: %s", err)
	}
	el2, _ := NewOrbitalElements(1.5, 0.21, 12, 40, 95, 0, J2000)
	if ok, _ := el0.Equals(*el2); ok {
		t.Fatal("different eccentricities found equal")
	}
}
