// Public domain.

// Package semidiameter computes apparent semidiameters of the Sun, Moon,
// planets and asteroids.
package semidiameter

import (
	"math"

	"github.com/soniakeys/unit"
)

// Standard semidiameters at unit distance of 1 AU.
var (
	Sun               = unit.AngleFromSec(959.63)
	Mercury           = unit.AngleFromSec(3.36)
	VenusSurface      = unit.AngleFromSec(8.34)
	VenusCloud        = unit.AngleFromSec(8.41)
	Mars              = unit.AngleFromSec(4.68)
	JupiterEquatorial = unit.AngleFromSec(98.44)
	JupiterPolar      = unit.AngleFromSec(92.06)
	SaturnEquatorial  = unit.AngleFromSec(82.73)
	SaturnPolar       = unit.AngleFromSec(73.82)
	Uranus            = unit.AngleFromSec(35.02)
	Neptune           = unit.AngleFromSec(33.5)
	Pluto             = unit.AngleFromSec(2.07)
)

// Moon radius in units of Earth's equatorial radius.
const MoonRadius = .272481

// Semidiameter returns the semidiameter at distance Δ AU of a body with
// semidiameter s0 at 1 AU.
func Semidiameter(s0 unit.Angle, Δ float64) unit.Angle {
	return s0.Div(Δ)
}

// polar semidiameter seen from planetocentric declination D of the Earth
func polar(equ, pol, D unit.Angle) unit.Angle {
	k := 1 - (pol.Rad()/equ.Rad())*(pol.Rad()/equ.Rad())
	c := D.Cos()
	return equ.Mul(math.Sqrt(1 - k*c*c))
}

// Jupiter returns equatorial and apparent polar semidiameters of Jupiter
// at distance Δ AU, with D the planetocentric declination of the Earth.
func Jupiter(Δ float64, D unit.Angle) (equ, pol unit.Angle) {
	equ = Semidiameter(JupiterEquatorial, Δ)
	return equ, polar(equ, Semidiameter(JupiterPolar, Δ), D)
}

// Saturn returns equatorial and apparent polar semidiameters of the globe
// of Saturn at distance Δ AU, with B the Saturnicentric latitude of the
// Earth.
func Saturn(Δ float64, B unit.Angle) (equ, pol unit.Angle) {
	equ = Semidiameter(SaturnEquatorial, Δ)
	return equ, polar(equ, Semidiameter(SaturnPolar, Δ), B)
}

// SaturnRings returns the apparent major and minor semi-axes of the outer
// edge of Saturn's outer ring.
func SaturnRings(Δ float64, B unit.Angle) (a, b unit.Angle) {
	a = unit.AngleFromSec(375.35 / Δ)
	return a, a.Mul(math.Abs(B.Sin()))
}

// Moon returns the geocentric semidiameter of the Moon at distance Δ km.
func Moon(Δ float64) unit.Angle {
	return unit.AngleFromSec(358473400 / Δ)
}

// MoonTopocentric returns the semidiameter of the Moon as seen by an
// observer with parallax constants ρsφ′, ρcφ′.
//
// Δ is geocentric distance in km, δ geocentric declination and H the
// geocentric hour angle.
func MoonTopocentric(Δ float64, δ unit.Angle, H unit.HourAngle, ρsφʹ, ρcφʹ float64) unit.Angle {
	// sin π, with distance in Earth radii
	sπ := 6378.14 / Δ
	sδ, cδ := δ.Sincos()
	sH, cH := H.Sincos()
	A := cδ * sH
	B := cδ*cH - ρcφʹ*sπ
	C := sδ - ρsφʹ*sπ
	q := math.Sqrt(A*A + B*B + C*C)
	return unit.Angle(math.Asin(MoonRadius * sπ / q))
}

// AsteroidDiameter returns the approximate diameter in km of an asteroid
// of absolute magnitude H and albedo A.
func AsteroidDiameter(H, A float64) float64 {
	return math.Pow(10, 3.12-H/5-.217147*math.Log10(A))
}

// Asteroid returns the semidiameter of an asteroid of diameter d km at
// distance Δ AU.
func Asteroid(d, Δ float64) unit.Angle {
	return unit.AngleFromSec(.0013788 * d / Δ)
}
