// Public domain.

// Package angsep computes angular separations and position angles of
// points on the celestial sphere.
//
// Coordinates may be any spherical pair: right ascension and declination,
// or longitude and latitude.
package angsep

import (
	"math"

	"github.com/soniakeys/unit"
)

// Sep returns the angular separation between two points by the spherical
// law of cosines.
//
// Loses precision for separations near 0 and near 180°.  Prefer SepRobust
// there.
func Sep(α1, δ1, α2, δ2 unit.Angle) unit.Angle {
	sδ1, cδ1 := δ1.Sincos()
	sδ2, cδ2 := δ2.Sincos()
	cd := sδ1*sδ2 + cδ1*cδ2*(α1-α2).Cos()
	// rounding may push cd just outside [-1, 1]
	return unit.Angle(math.Acos(math.Max(-1, math.Min(1, cd))))
}

func hav(a float64) float64 {
	s := math.Sin(a / 2)
	return s * s
}

// SepHav returns the angular separation between two points by the
// haversine formula.
//
// Accurate near 0, loses precision near 180°.
func SepHav(α1, δ1, α2, δ2 unit.Angle) unit.Angle {
	h := hav((δ2 - δ1).Rad()) + δ1.Cos()*δ2.Cos()*hav((α2-α1).Rad())
	return unit.Angle(2 * math.Asin(math.Sqrt(math.Min(1, h))))
}

// SepRobust returns the angular separation between two points by the
// atan2 (Vincenty) form, accurate over the whole range 0 to 180°.
func SepRobust(α1, δ1, α2, δ2 unit.Angle) unit.Angle {
	sΔα, cΔα := (α2 - α1).Sincos()
	sδ1, cδ1 := δ1.Sincos()
	sδ2, cδ2 := δ2.Sincos()
	x := cδ2 * sΔα
	y := cδ1*sδ2 - sδ1*cδ2*cΔα
	z := sδ1*sδ2 + cδ1*cδ2*cΔα
	return unit.Angle(math.Atan2(math.Hypot(x, y), z))
}

// RelativePosition returns the position angle of point 2 relative to
// point 1, measured from the north through east, in the range (-180°, 180°].
func RelativePosition(α1, δ1, α2, δ2 unit.Angle) unit.Angle {
	sΔα, cΔα := (α2 - α1).Sincos()
	sδ1, cδ1 := δ1.Sincos()
	return unit.Angle(math.Atan2(sΔα, cδ1*δ2.Tan()-sδ1*cΔα))
}
