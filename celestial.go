package smorrery

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/soniakeys/meeus/julian"
	"github.com/soniakeys/meeus/planetposition"
	"github.com/soniakeys/meeus/pluto"
)

const (
	// AU is one astronomical unit in kilometers.
	AU = 1.49597870700e8
	// SunGM is the heliocentric gravitational parameter in AU³/year², i.e.
	// 4π² by Kepler's third law with a in AU and T in Julian years.
	SunGM = 4 * math.Pi * math.Pi
)

// JulianDate converts a time.Time to a Julian date.
func JulianDate(t time.Time) float64 {
	return julian.TimeToJD(t.UTC())
}

// CelestialObject defines a solar-system body: its physical radius (km) and
// its J2000 osculating heliocentric elements, which the kernel propagates
// unless VSOP87 ephemerides are configured.
type CelestialObject struct {
	Name     string
	Radius   float64
	Elements *OrbitalElements
	PP       *planetposition.V87Planet
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// HelioPosition returns the heliocentric world-frame position of this body at
// the given Julian date. With VSOP87 enabled in the configuration the meeus
// ephemerides are used (full files are loaded once and cached); otherwise the
// position comes from Keplerian propagation of the J2000 elements.
func (c *CelestialObject) HelioPosition(jd float64) ([]float64, error) {
	if c.Name == "Sun" {
		return []float64{0, 0, 0}, nil
	}
	if smorreryConfig().VSOP87 {
		if c.Name == "Pluto" {
			// Special case in Sonia Keys' Meeus.
			l, b, r := pluto.Heliocentric(jd)
			return lbr2World(l.Rad(), b.Rad(), r), nil
		}
		if c.PP == nil {
			var vsopPosition int
			switch c.Name {
			case "Mercury":
				vsopPosition = 1
			case "Venus":
				vsopPosition = 2
			case "Earth":
				vsopPosition = 3
			case "Mars":
				vsopPosition = 4
			case "Jupiter":
				vsopPosition = 5
			case "Saturn":
				vsopPosition = 6
			case "Uranus":
				vsopPosition = 7
			case "Neptune":
				vsopPosition = 8
			default:
				return nil, fmt.Errorf("no VSOP87 data for %q", c.Name)
			}
			planet, err := planetposition.LoadPlanetPath(vsopPosition-1, smorreryConfig().VSOP87Dir)
			if err != nil {
				return nil, fmt.Errorf("could not load planet number %d: %s", vsopPosition, err)
			}
			c.PP = planet
		}
		l, b, r := c.PP.Position2000(jd)
		return lbr2World(l.Rad(), b.Rad(), r), nil
	}
	return c.Elements.Propagate(jd)
}

// lbr2World converts ecliptic spherical coordinates (radians, AU) into the
// Y-up world frame: ecliptic north maps to +Y and the longitude sense matches
// the Plane2World node convention.
func lbr2World(l, b, r float64) []float64 {
	sb, cb := math.Sincos(b)
	sl, cl := math.Sincos(l)
	return []float64{r * cb * cl, r * sb, -r * cb * sl}
}

// CelestialObjectFromString returns the object from its name.
func CelestialObjectFromString(name string) (CelestialObject, error) {
	for _, p := range Planets {
		if strings.EqualFold(name, p.Name) {
			return p, nil
		}
	}
	if strings.EqualFold(name, "sun") {
		return Sun, nil
	}
	return CelestialObject{}, fmt.Errorf("undefined planet '%s'", name)
}

func mustElements(a, e, i, Ω, ϖ, M float64) *OrbitalElements {
	el, err := NewOrbitalElements(a, e, i, Ω, ϖ, M, J2000)
	if err != nil {
		panic(err)
	}
	return el
}

/* Definitions. Osculating elements are the J2000 mean values; the mean
anomaly is the mean longitude L minus ϖ. */

// Sun is our closest star.
var Sun = CelestialObject{"Sun", 695700, nil, nil}

// Mercury is the smallest one.
var Mercury = CelestialObject{"Mercury", 2439.7, mustElements(0.38709893, 0.20563069, 7.00487, 48.33167, 77.45645, 174.79439), nil}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 6051.8, mustElements(0.72333199, 0.00677323, 3.39471, 76.68069, 131.53298, 50.44675), nil}

// Earth is home.
var Earth = CelestialObject{"Earth", 6378.1363, mustElements(1.00000011, 0.01671022, 0.00005, -11.26064, 102.94719, 357.51716), nil}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3396.19, mustElements(1.52366231, 0.09341233, 1.85061, 49.57854, 336.04084, 19.41248), nil}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 71492.0, mustElements(5.20336301, 0.04839266, 1.30530, 100.55615, 14.75385, 19.65053), nil}

// Saturn floats and that's really cool.
var Saturn = CelestialObject{"Saturn", 60268.0, mustElements(9.53707032, 0.05415060, 2.48446, 113.71504, 92.43194, 317.51238), nil}

// Uranus is no joke.
var Uranus = CelestialObject{"Uranus", 25559.0, mustElements(19.19126393, 0.04716771, 0.76986, 74.22988, 170.96424, 142.26794), nil}

// Neptune is deep blue.
var Neptune = CelestialObject{"Neptune", 24764.0, mustElements(30.06896348, 0.00858587, 1.76917, 131.72169, 44.97135, 259.90868), nil}

// Pluto is not a planet and had that down ranking coming.
var Pluto = CelestialObject{"Pluto", 1151.0, mustElements(39.48168677, 0.24880766, 17.14175, 110.30347, 224.06676, 14.86205), nil}

// Planets lists every body the simulation seeds by default.
var Planets = []CelestialObject{Mercury, Venus, Earth, Mars, Jupiter, Saturn, Uranus, Neptune, Pluto}
