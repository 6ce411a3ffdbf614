// Public domain.

// Package nutation computes nutation in longitude and obliquity and the
// obliquity of the ecliptic.
//
// Nutation uses the 1980 IAU theory as tabulated by Meeus, good to about
// 0.0003″ in longitude and 0.0001″ in obliquity relative to the full theory.
package nutation

import (
	"math"

	"github.com/soniakeys/almanac/julian"
	"github.com/soniakeys/almanac/series"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

// Args returns the fundamental arguments of the nutation series at T
// Julian centuries from J2000.
func Args(T float64) *series.Args {
	return &series.Args{
		series.D:     series.Poly(T, 297.85036, 445267.11148, -.0019142, 1./189474),
		series.M:     series.Poly(T, 357.52772, 35999.05034, -.0001603, -1./300000),
		series.MPrm:  series.Poly(T, 134.96298, 477198.867398, .0086972, 1./56250),
		series.F:     series.Poly(T, 93.27191, 483202.017538, -.0036825, 1./327270),
		series.Omega: series.Poly(T, 125.04452, -1934.136261, .0020708, 1./450000),
	}
}

// Nutation returns nutation in longitude (Δψ) and nutation in obliquity (Δε)
// for a given JDE.
func Nutation(jde float64) (Δψ, Δε unit.Angle) {
	T := julian.J2000Century(jde)
	s, c := series.Sum(table22A, Args(T), T, nil)
	// table unit is .0001″
	return unit.AngleFromSec(s * .0001), unit.AngleFromSec(c * .0001)
}

// ApproxNutation returns a fast approximation of nutation in longitude and
// obliquity.
//
// Accuracy is 0.5″ in Δψ and 0.1″ in Δε.
func ApproxNutation(jde float64) (Δψ, Δε unit.Angle) {
	T := julian.J2000Century(jde)
	Ω := unit.AngleFromDeg(125.04452 - 1934.136261*T).Rad()
	L := unit.AngleFromDeg(280.4665 + 36000.7698*T).Rad()
	Lʹ := unit.AngleFromDeg(218.3165 + 481267.8813*T).Rad()
	Δψ = unit.AngleFromSec(-17.2*math.Sin(Ω) - 1.32*math.Sin(2*L) -
		.23*math.Sin(2*Lʹ) + .21*math.Sin(2*Ω))
	Δε = unit.AngleFromSec(9.2*math.Cos(Ω) + .57*math.Cos(2*L) +
		.1*math.Cos(2*Lʹ) - .09*math.Cos(2*Ω))
	return
}

// MeanObliquity returns the mean obliquity of the ecliptic by the IAU
// formula.
//
// Accuracy is 1″ over the range 1000 to 3000 years and 10″ over 0 to 4000.
func MeanObliquity(jde float64) unit.Angle {
	return unit.AngleFromSec(base.Horner(julian.J2000Century(jde),
		unit.FromSexaSec(' ', 23, 26, 21.448),
		-46.815,
		-.00059,
		.001813))
}

// MeanObliquityLaskar returns the mean obliquity of the ecliptic by
// Laskar's formula.
//
// Accuracy is 0.01″ between 1000 and 3000 and a few arc seconds after
// 10000 years.  The formula is valid for 10000 years either side of J2000.
func MeanObliquityLaskar(jde float64) unit.Angle {
	return unit.AngleFromSec(base.Horner(julian.J2000Century(jde)*.01,
		unit.FromSexaSec(' ', 23, 26, 21.448),
		-4680.93,
		-1.55,
		1999.25,
		-51.38,
		-249.67,
		-39.05,
		7.12,
		27.87,
		5.79,
		2.45))
}

// TrueObliquity returns the obliquity of the ecliptic corrected for
// nutation.
func TrueObliquity(jde float64) unit.Angle {
	_, Δε := Nutation(jde)
	return MeanObliquity(jde) + Δε
}

// NutationInRA returns the nutation in right ascension, also known as the
// equation of the equinoxes.
func NutationInRA(jde float64) unit.HourAngle {
	Δψ, Δε := Nutation(jde)
	ε0 := MeanObliquity(jde)
	return unit.HourAngle(Δψ.Rad() * math.Cos((ε0 + Δε).Rad()))
}
