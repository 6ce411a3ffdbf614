// Public domain.

// Package precession reduces equatorial coordinates from one epoch to
// another by the rigorous IAU 1976 method.
package precession

import (
	"math"

	"github.com/soniakeys/almanac/julian"
	"github.com/soniakeys/almanac/transform"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

// Angles returns the precession angles ζ, z and θ for reducing from epoch
// jdeFrom to epoch jdeTo.
func Angles(jdeFrom, jdeTo float64) (ζ, z, θ unit.Angle) {
	T := julian.J2000Century(jdeFrom)
	t := (jdeTo - jdeFrom) / julian.JulianCentury
	c1 := base.Horner(T, 2306.2181, 1.39656, -.000139)
	ζ = unit.AngleFromSec(base.Horner(t, 0, c1, .30188-.000344*T, .017998))
	z = unit.AngleFromSec(base.Horner(t, 0, c1, 1.09468+.000066*T, .018203))
	θ = unit.AngleFromSec(base.Horner(t, 0,
		base.Horner(T, 2004.3109, -.8533, -.000217),
		-.42665-.000217*T,
		-.041833))
	return
}

// Position precesses equatorial coordinates eq from epoch jdeFrom to epoch
// jdeTo.
//
// Proper motions mα and mδ are per Julian year; pass zero for bodies
// without proper motion.
func Position(eq *transform.Equatorial, jdeFrom, jdeTo float64, mα unit.HourAngle, mδ unit.Angle) *transform.Equatorial {
	years := (jdeTo - jdeFrom) / 365.25
	α0 := unit.Angle(eq.RA) + mα.Angle().Mul(years)
	δ0 := eq.Dec + mδ.Mul(years)
	ζ, z, θ := Angles(jdeFrom, jdeTo)
	sθ, cθ := θ.Sincos()
	sδ0, cδ0 := δ0.Sincos()
	sα0ζ, cα0ζ := (α0 + ζ).Sincos()
	A := cδ0 * sα0ζ
	B := cθ*cδ0*cα0ζ - sθ*sδ0
	C := sθ*cδ0*cα0ζ + cθ*sδ0
	δ := math.Asin(C)
	if math.Abs(C) > .99 {
		// near the pole
		δ = math.Copysign(math.Acos(math.Hypot(A, B)), C)
	}
	return &transform.Equatorial{
		RA:  unit.RAFromRad(math.Atan2(A, B) + z.Rad()),
		Dec: unit.Angle(δ),
	}
}

// ToDate precesses J2000 coordinates without proper motion to the epoch
// jde.
func ToDate(eq *transform.Equatorial, jde float64) *transform.Equatorial {
	return Position(eq, julian.J2000, jde, 0, 0)
}
