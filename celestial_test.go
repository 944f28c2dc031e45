package smorrery

import (
	"testing"
	"time"

	"github.com/gonum/floats"
)

func TestPlanetTable(t *testing.T) {
	if len(Planets) != 9 {
		t.Fatalf("%d planets", len(Planets))
	}
	for _, p := range Planets {
		if p.Elements == nil {
			t.Fatalf("%s has no elements", p.Name)
		}
		if p.Elements.Shape() != Elliptical {
			t.Fatalf("%s is %s", p.Name, p.Elements.Shape())
		}
		if p.Elements.Epoch() != J2000 {
			t.Fatalf("%s epoch %f", p.Name, p.Elements.Epoch())
		}
		pos, err := p.Elements.Propagate(J2000 + 123.4)
		if err != nil {
			t.Fatalf("%s: %s", p.Name, err)
		}
		r := norm(pos)
		if r < p.Elements.Periapsis()-1e-9 || r > p.Elements.Apoapsis()+1e-9 {
			t.Fatalf("%s at r=%f outside [q, Q]", p.Name, r)
		}
	}
}

func TestEarthDistance(t *testing.T) {
	pos, err := Earth.HelioPosition(J2000 + 200)
	if err != nil {
		t.Fatal(err)
	}
	r := norm(pos)
	if r < 0.98 || r > 1.02 {
		t.Fatalf("|r|=%f AU", r)
	}
}

func TestJupiterPeriod(t *testing.T) {
	if T := Jupiter.Elements.Period(); !floats.EqualWithinAbs(T, 11.86, 0.02) {
		t.Fatalf("T=%f years", T)
	}
}

func TestSunPosition(t *testing.T) {
	pos, err := Sun.HelioPosition(J2000)
	if err != nil {
		t.Fatal(err)
	}
	if !vectorsEqual(pos, []float64{0, 0, 0}) {
		t.Fatalf("the Sun moved to %+v", pos)
	}
}

func TestCelestialObjectFromString(t *testing.T) {
	for _, name := range []string{"earth", "Earth", "NEPTUNE", "pluto", "sun"} {
		if _, err := CelestialObjectFromString(name); err != nil {
			t.Fatalf("%s: %s", name, err)
		}
	}
	if _, err := CelestialObjectFromString("vulcan"); err == nil {
		t.Fatal("expected an error")
	}
}

func TestJulianDate(t *testing.T) {
	// J2000.0 is 2000-01-01 12:00 TT; within a minute of UTC for this check.
	jd := JulianDate(time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC))
	if !floats.EqualWithinAbs(jd, J2000, 1e-3) {
		t.Fatalf("jd=%f", jd)
	}
	// One day later is exactly +1.
	jd1 := JulianDate(time.Date(2000, 1, 2, 12, 0, 0, 0, time.UTC))
	if !floats.EqualWithinAbs(jd1-jd, 1, 1e-9) {
		t.Fatalf("Δjd=%f", jd1-jd)
	}
}
