// Public domain.

// Package apparent corrects mean positions of date for nutation and the
// annual aberration.
package apparent

import (
	"github.com/soniakeys/almanac/julian"
	"github.com/soniakeys/almanac/nutation"
	"github.com/soniakeys/almanac/solar"
	"github.com/soniakeys/almanac/transform"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

// κ is the constant of aberration.
var κ = unit.AngleFromSec(20.49552)

// longitude of Earth's perihelion, ϖ
func perihelion(T float64) unit.Angle {
	return unit.AngleFromDeg(base.Horner(T, 102.93735, 1.71946, .00046))
}

// Nutation returns corrections in right ascension and declination due to
// nutation, for a mean position of date.
//
// Not valid close to the celestial poles.
func Nutation(eq *transform.Equatorial, jde float64) (Δα1 unit.HourAngle, Δδ1 unit.Angle) {
	Δψ, Δε := nutation.Nutation(jde)
	ε := nutation.MeanObliquity(jde) + Δε
	sε, cε := ε.Sincos()
	sα, cα := eq.RA.Sincos()
	tδ := eq.Dec.Tan()
	Δα1 = unit.HourAngle((cε+sε*sα*tδ)*Δψ.Rad() - cα*tδ*Δε.Rad())
	Δδ1 = Δψ.Mul(sε*cα) + Δε.Mul(sα)
	return
}

// Aberration returns corrections in right ascension and declination due
// to the annual aberration, including the terms of Earth's eccentricity.
func Aberration(eq *transform.Equatorial, jde float64) (Δα2 unit.HourAngle, Δδ2 unit.Angle) {
	ε := nutation.MeanObliquity(jde)
	T := julian.J2000Century(jde)
	s, _ := solar.True(T)
	e := solar.Eccentricity(T)
	ϖ := perihelion(T)
	sα, cα := eq.RA.Sincos()
	sδ, cδ := eq.Dec.Sincos()
	ss, cs := s.Sincos()
	sϖ, cϖ := ϖ.Sincos()
	cε := ε.Cos()
	q1 := cα * cε
	Δα2 = unit.HourAngle((κ.Rad()*(-(q1*cs+sα*ss)+e*(q1*cϖ+sα*sϖ)))/cδ)
	q2 := cε * (ε.Tan()*cδ - sα*sδ)
	q3 := cα * sδ
	Δδ2 = κ.Mul(-(cs*q2 + q3*ss) + e*(cϖ*q2+q3*sϖ))
	return
}

// Position returns the apparent position of a star or other body, given
// its mean position of date, by adding corrections for nutation and
// aberration.
//
// Proper motion and precession to the date must already be applied.
func Position(eq *transform.Equatorial, jde float64) *transform.Equatorial {
	Δα1, Δδ1 := Nutation(eq, jde)
	Δα2, Δδ2 := Aberration(eq, jde)
	return &transform.Equatorial{
		RA:  eq.RA.Add(Δα1 + Δα2),
		Dec: eq.Dec + Δδ1 + Δδ2,
	}
}

// EclipticAberration returns corrections in ecliptic longitude and
// latitude due to the annual aberration.
func EclipticAberration(λ, β unit.Angle, jde float64) (Δλ, Δβ unit.Angle) {
	T := julian.J2000Century(jde)
	s, _ := solar.True(T)
	e := solar.Eccentricity(T)
	ϖ := perihelion(T)
	Δλ = κ.Mul((e*(ϖ-λ).Cos() - (s-λ).Cos()) / β.Cos())
	Δβ = κ.Mul(-β.Sin() * ((s - λ).Sin() - e*(ϖ-λ).Sin()))
	return
}

// Ecliptic returns apparent ecliptic longitude and latitude of date from
// geometric mean ones, adding nutation in longitude and the annual
// aberration.
func Ecliptic(λ, β unit.Angle, jde float64) (λa, βa unit.Angle) {
	Δψ, _ := nutation.Nutation(jde)
	Δλ, Δβ := EclipticAberration(λ, β, jde)
	return (λ + Δψ + Δλ).Mod1(), β + Δβ
}
