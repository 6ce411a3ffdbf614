// Public domain.

// Package moonposition computes the geocentric position of the Moon.
//
// The theory is the abridged ELP-2000/82 of Meeus chapter 47, accurate to
// about 10″ in longitude and 4″ in latitude.
package moonposition

import (
	"math"

	"github.com/soniakeys/almanac/julian"
	"github.com/soniakeys/almanac/series"
	"github.com/soniakeys/unit"
)

// Equatorial radius of Earth in km, for parallax.
const earthRadius = 6378.14

// Mean distance of the Moon in km, the constant term of the distance series.
const meanDistance = 385000.56

// Parallax returns the equatorial horizontal parallax of the Moon at
// distance Δ km.
func Parallax(Δ float64) unit.Angle {
	return unit.Angle(math.Asin(earthRadius / Δ))
}

// MeanLongitude returns the Moon's mean longitude L′, referred to the mean
// equinox of date.
func MeanLongitude(jde float64) unit.Angle {
	return meanLongitude(julian.J2000Century(jde))
}

func meanLongitude(T float64) unit.Angle {
	return series.Poly(T, 218.3164477, 481267.88123421,
		-.0015786, 1/538841., -1/65194000.)
}

// Node returns the longitude of the mean ascending node of the lunar orbit.
func Node(jde float64) unit.Angle {
	return series.Poly(julian.J2000Century(jde),
		125.0445479, -1934.1362891, .0020754, 1/467441., -1/60616000.)
}

// Args returns the fundamental arguments of lunar theory at T Julian
// centuries from J2000.  The Omega slot is unused and left zero.
func Args(T float64) *series.Args {
	return &series.Args{
		series.D: series.Poly(T, 297.8501921, 445267.1114034,
			-.0018819, 1/545868., -1/113065000.),
		series.M: series.Poly(T, 357.5291092, 35999.0502909,
			-.0001536, 1/24490000.),
		series.MPrm: series.Poly(T, 134.9633964, 477198.8675055,
			.0087414, 1/69699., -1/14712000.),
		series.F: series.Poly(T, 93.272095, 483202.0175233,
			-.0036539, -1/3526000., 1/863310000.),
	}
}

// Position returns geocentric location of the Moon.
//
// Results are referenced to mean equinox of date and do not include
// the effect of nutation.
//
//	λ  Geocentric longitude.
//	β  Geocentric latitude.
//	Δ  Distance between centers of the Earth and Moon, in km.
func Position(jde float64) (λ, β unit.Angle, Δ float64) {
	T := julian.J2000Century(jde)
	Lʹ := meanLongitude(T)
	a := Args(T)
	w := series.Eccentricity(series.EarthEccentricity(T))
	Σl, Σr := series.Sum(tableLR, a, T, w)
	Σb, _ := series.Sum(tableB, a, T, w)

	// additive terms: action of Venus, Jupiter and the flattening of Earth
	A1 := unit.AngleFromDeg(119.75 + 131.849*T)
	A2 := unit.AngleFromDeg(53.09 + 479264.29*T)
	A3 := unit.AngleFromDeg(313.45 + 481266.484*T)
	F := a[series.F]
	Mʹ := a[series.MPrm]
	Σl += 3958*A1.Sin() + 1962*(Lʹ-F).Sin() + 318*A2.Sin()
	Σb += -2235*Lʹ.Sin() + 382*A3.Sin() + 175*(A1-F).Sin() +
		175*(A1+F).Sin() + 127*(Lʹ-Mʹ).Sin() - 115*(Lʹ+Mʹ).Sin()

	λ = (Lʹ + unit.AngleFromDeg(Σl*1e-6)).Mod1()
	β = unit.AngleFromDeg(Σb * 1e-6)
	Δ = meanDistance + Σr*.001
	return
}
