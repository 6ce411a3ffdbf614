// Public domain.

// Package solar computes the position of the Sun to low accuracy.
//
// The theory is that of Meeus chapter 25, with the Sun's orbit taken as an
// unperturbed ellipse.  Accuracy is 0.01°.
package solar

import (
	"math"

	"github.com/soniakeys/almanac/julian"
	"github.com/soniakeys/almanac/nutation"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

// MeanLongitude returns the geometric mean longitude of the Sun, L0,
// referred to the mean equinox of date.  T is Julian centuries from J2000.
func MeanLongitude(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T, 280.46646, 36000.76983, .0003032)).Mod1()
}

// MeanAnomaly returns the mean anomaly of the Sun (of the Earth).
func MeanAnomaly(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T, 357.52911, 35999.05029, -.0001537))
}

// Eccentricity returns the eccentricity of Earth's orbit.
func Eccentricity(T float64) float64 {
	return base.Horner(T, .016708634, -.000042037, -.0000001267)
}

// EquationOfCenter returns C, the difference between true and mean
// anomaly.
func EquationOfCenter(T float64) unit.Angle {
	sM, cM := MeanAnomaly(T).Sincos()
	// sin 2M and sin 3M from sin M, cos M
	s2M := 2 * sM * cM
	s3M := sM * (3 - 4*sM*sM)
	return unit.AngleFromDeg(base.Horner(T, 1.914602, -.004817, -.000014)*sM +
		(.019993-.000101*T)*s2M +
		.000289*s3M)
}

// True returns the true geometric longitude ☉ of the Sun, referred to the
// mean equinox of date, and the true anomaly ν.
func True(T float64) (s, ν unit.Angle) {
	C := EquationOfCenter(T)
	return (MeanLongitude(T) + C).Mod1(), (MeanAnomaly(T) + C).Mod1()
}

// Radius returns the Sun-Earth distance R in AU.
func Radius(T float64) float64 {
	_, ν := True(T)
	e := Eccentricity(T)
	return 1.000001018 * (1 - e*e) / (1 + e*ν.Cos())
}

// node returns the longitude of the Moon's ascending node as used for the
// nutation and aberration terms of this theory.
func node(T float64) unit.Angle {
	return unit.AngleFromDeg(125.04 - 1934.136*T)
}

// ApparentLongitude returns λ, the apparent longitude of the Sun referred
// to the true equinox of date, with nutation and aberration.
func ApparentLongitude(T float64) unit.Angle {
	s, _ := True(T)
	return (s - unit.AngleFromDeg(.00569) -
		unit.AngleFromDeg(.00478).Mul(node(T).Sin())).Mod1()
}

// TrueEquatorial returns the geometric equatorial position of the Sun,
// referred to the mean equinox of date.
func TrueEquatorial(jde float64) (α unit.RA, δ unit.Angle) {
	T := julian.J2000Century(jde)
	s, _ := True(T)
	return toEquatorial(s, nutation.MeanObliquity(jde))
}

// ApparentEquatorial returns the apparent right ascension and declination
// of the Sun, referred to the true equinox of date.
func ApparentEquatorial(jde float64) (α unit.RA, δ unit.Angle) {
	T := julian.J2000Century(jde)
	ε := nutation.MeanObliquity(jde) +
		unit.AngleFromDeg(.00256).Mul(node(T).Cos())
	return toEquatorial(ApparentLongitude(T), ε)
}

// β = 0 for this theory
func toEquatorial(λ, ε unit.Angle) (α unit.RA, δ unit.Angle) {
	sλ, cλ := λ.Sincos()
	sε, cε := ε.Sincos()
	α = unit.RAFromRad(math.Atan2(cε*sλ, cλ))
	δ = unit.Angle(math.Asin(sε * sλ))
	return
}
