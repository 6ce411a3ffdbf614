// Public domain.

// Package illum computes the illuminated fraction of a planet's disk and
// planetary magnitudes.
//
// Distances r (body to Sun), Δ (body to Earth) and R (Earth to Sun) are in
// AU.
package illum

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

// PhaseAngle returns the phase angle i of a body, the angle Sun-body-Earth.
func PhaseAngle(r, Δ, R float64) unit.Angle {
	return unit.Angle(math.Acos((r*r + Δ*Δ - R*R) / (2 * r * Δ)))
}

// Fraction returns the illuminated fraction k of a body's disk.
func Fraction(r, Δ, R float64) float64 {
	return ((r+Δ)*(r+Δ) - R*R) / (4 * r * Δ)
}

// FractionFromPhase returns the illuminated fraction for phase angle i.
func FractionFromPhase(i unit.Angle) float64 {
	return (1 + i.Cos()) / 2
}

// Magnitudes after G. Müller, suitable for visual observations before
// about 1950.  Phase angle i is converted to degrees internally.

// Mercury returns the visual magnitude of Mercury.
func Mercury(r, Δ float64, i unit.Angle) float64 {
	s := i.Deg() - 50
	return 1.16 + 5*math.Log10(r*Δ) + .02838*s + .0001023*s*s
}

// Venus returns the visual magnitude of Venus.
func Venus(r, Δ float64, i unit.Angle) float64 {
	d := i.Deg()
	return -4 + 5*math.Log10(r*Δ) + (.01322+.0000004247*d*d)*d
}

// Mars returns the visual magnitude of Mars.
func Mars(r, Δ float64, i unit.Angle) float64 {
	return -1.3 + 5*math.Log10(r*Δ) + .01486*i.Deg()
}

// Jupiter returns the visual magnitude of Jupiter.
func Jupiter(r, Δ float64) float64 {
	return -8.93 + 5*math.Log10(r*Δ)
}

// Saturn returns the visual magnitude of Saturn.
//
// B is the Saturnicentric latitude of the Earth referred to the plane of
// the rings, ΔU the difference between the Saturnicentric longitudes of the
// Sun and the Earth.
func Saturn(r, Δ float64, B, ΔU unit.Angle) float64 {
	s := math.Sin(math.Abs(B.Rad()))
	return -8.68 + 5*math.Log10(r*Δ) + .044*math.Abs(ΔU.Deg()) -
		2.6*s + 1.25*s*s
}

// SaturnRingTilt returns B, the Saturnicentric latitude of the Earth
// referred to the plane of the rings, for geocentric ecliptic coordinates
// λ, β of Saturn referred to the equinox of date, T centuries from J2000.
func SaturnRingTilt(λ, β unit.Angle, T float64) unit.Angle {
	i := unit.AngleFromDeg(base.Horner(T, 28.075216, -.012998, .000004))
	Ω := unit.AngleFromDeg(base.Horner(T, 169.50847, 1.394681, .000412))
	si, ci := i.Sincos()
	sβ, cβ := β.Sincos()
	return unit.Angle(math.Asin(si*cβ*(λ-Ω).Sin() - ci*sβ))
}

// Uranus returns the visual magnitude of Uranus.
func Uranus(r, Δ float64) float64 {
	return -6.85 + 5*math.Log10(r*Δ)
}

// Neptune returns the visual magnitude of Neptune.
func Neptune(r, Δ float64) float64 {
	return -7.05 + 5*math.Log10(r*Δ)
}

// Magnitudes from the Astronomical Almanac since 1984.

// Mercury84 returns the visual magnitude of Mercury.
func Mercury84(r, Δ float64, i unit.Angle) float64 {
	d := i.Deg()
	return -.42 + 5*math.Log10(r*Δ) + ((.000002*d-.000273)*d+.038)*d
}

// Venus84 returns the visual magnitude of Venus.
func Venus84(r, Δ float64, i unit.Angle) float64 {
	d := i.Deg()
	return -4.4 + 5*math.Log10(r*Δ) + ((-.00000065*d+.000239)*d+.0009)*d
}

// Mars84 returns the visual magnitude of Mars.
func Mars84(r, Δ float64, i unit.Angle) float64 {
	return -1.52 + 5*math.Log10(r*Δ) + .016*i.Deg()
}

// Jupiter84 returns the visual magnitude of Jupiter.
func Jupiter84(r, Δ float64, i unit.Angle) float64 {
	return -9.4 + 5*math.Log10(r*Δ) + .005*i.Deg()
}

// Saturn84 returns the visual magnitude of Saturn.  B and ΔU are as for
// Saturn.
func Saturn84(r, Δ float64, B, ΔU unit.Angle) float64 {
	s := math.Sin(math.Abs(B.Rad()))
	return -8.88 + 5*math.Log10(r*Δ) + .044*math.Abs(ΔU.Deg()) -
		2.6*s + 1.25*s*s
}

// Uranus84 returns the visual magnitude of Uranus.
func Uranus84(r, Δ float64) float64 {
	return -7.19 + 5*math.Log10(r*Δ)
}

// Neptune84 returns the visual magnitude of Neptune.
func Neptune84(r, Δ float64) float64 {
	return -6.87 + 5*math.Log10(r*Δ)
}

// Pluto84 returns the visual magnitude of Pluto.
func Pluto84(r, Δ float64) float64 {
	return -1 + 5*math.Log10(r*Δ)
}

// HG returns the visual magnitude of an asteroid with absolute magnitude
// H and slope parameter G, at phase angle i.
//
// This is the IAU two-parameter system, valid for phase angles below
// about 120°.
func HG(H, G, r, Δ float64, i unit.Angle) float64 {
	t := math.Tan(i.Rad() / 2)
	φ1 := math.Exp(-3.33 * math.Pow(t, .63))
	φ2 := math.Exp(-1.87 * math.Pow(t, 1.22))
	return H + 5*math.Log10(r*Δ) - 2.5*math.Log10((1-G)*φ1+G*φ2)
}
