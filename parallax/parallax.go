// Public domain.

// Package parallax computes diurnal parallax: the shift from geocentric
// to topocentric position for an observer on Earth's surface.
package parallax

import (
	"math"

	"github.com/soniakeys/almanac/transform"
	"github.com/soniakeys/unit"
)

// solar parallax at 1 AU
var horPar = unit.AngleFromSec(8.794)

// Horizontal returns equatorial horizontal parallax of a body at
// distance Δ in AU.
//
// For the Moon, with Δ in km, see moonposition.Parallax.
func Horizontal(Δ float64) (π unit.Angle) {
	return unit.Angle(math.Asin(horPar.Sin() / Δ))
}

// Topocentric returns the topocentric position of a body.
//
//	eq      geocentric right ascension and declination
//	π       equatorial horizontal parallax of the body
//	ρsφʹ    parallax constant, ρ sin φ′
//	ρcφʹ    parallax constant, ρ cos φ′
//	H       geocentric hour angle of the body
//
// The parallax constants come from globe.Ellipsoid.ParallaxConstants.
func Topocentric(eq *transform.Equatorial, π unit.Angle, ρsφʹ, ρcφʹ float64, H unit.HourAngle) *transform.Equatorial {
	sπ := π.Sin()
	sH, cH := H.Sincos()
	sδ, cδ := eq.Dec.Sincos()
	den := cδ - ρcφʹ*sπ*cH
	Δα := unit.HourAngle(math.Atan2(-ρcφʹ*sπ*sH, den))
	return &transform.Equatorial{
		RA:  eq.RA.Add(Δα),
		Dec: unit.Angle(math.Atan2((sδ-ρsφʹ*sπ)*Δα.Cos(), den)),
	}
}

// TopocentricDiff returns the parallax corrections in right ascension and
// declination by the approximate differential formulas, good for bodies
// other than the Moon.
func TopocentricDiff(eq *transform.Equatorial, π unit.Angle, ρsφʹ, ρcφʹ float64, H unit.HourAngle) (Δα unit.HourAngle, Δδ unit.Angle) {
	sH, cH := H.Sincos()
	sδ, cδ := eq.Dec.Sincos()
	Δα = unit.HourAngle(-π.Rad() * ρcφʹ * sH / cδ)
	Δδ = π.Mul(-(ρsφʹ*cδ - ρcφʹ*cH*sδ))
	return
}
