// Public domain.

// Package transform converts between the equatorial, ecliptic, horizontal
// and galactic coordinate systems.
//
// Each frame has its own type; points move between frames only through the
// functions here.  All conversions are closed forms and each has an
// inverse.
package transform

import (
	"math"

	"github.com/soniakeys/unit"
)

// Ecliptic holds ecliptic longitude and latitude.
type Ecliptic struct {
	Lon unit.Angle // Longitude (λ)
	Lat unit.Angle // Latitude (β)
}

// Equatorial holds right ascension and declination.
type Equatorial struct {
	RA  unit.RA    // Right ascension (α)
	Dec unit.Angle // Declination (δ)
}

// Horizontal holds azimuth and altitude.
//
// Azimuth is measured westward from the south.
type Horizontal struct {
	Az  unit.Angle // Azimuth (A)
	Alt unit.Angle // Altitude (h)
}

// Galactic holds galactic longitude and latitude, referred to the B1950
// galactic pole.
type Galactic struct {
	Lon unit.Angle // Longitude (l)
	Lat unit.Angle // Latitude (b)
}

// Geographic holds geographic latitude and longitude of a point on Earth.
//
// Longitude is positive east.
type Geographic struct {
	Lat unit.Angle // Latitude (φ)
	Lon unit.Angle // Longitude (L)
}

// EqToEcl converts equatorial coordinates to ecliptic coordinates.
//
// sε, cε are sine and cosine of the obliquity of the ecliptic.
func EqToEcl(eq *Equatorial, sε, cε float64) *Ecliptic {
	sα, cα := eq.RA.Sincos()
	sδ, cδ := eq.Dec.Sincos()
	return &Ecliptic{
		Lon: unit.Angle(math.Atan2(sα*cε+(sδ/cδ)*sε, cα)).Mod1(),
		Lat: unit.Angle(math.Asin(sδ*cε - cδ*sε*sα)),
	}
}

// EclToEq converts ecliptic coordinates to equatorial coordinates.
//
// sε, cε are sine and cosine of the obliquity of the ecliptic.
func EclToEq(ecl *Ecliptic, sε, cε float64) *Equatorial {
	sλ, cλ := ecl.Lon.Sincos()
	sβ, cβ := ecl.Lat.Sincos()
	return &Equatorial{
		RA:  unit.RAFromRad(math.Atan2(sλ*cε-(sβ/cβ)*sε, cλ)),
		Dec: unit.Angle(math.Asin(sβ*cε + cβ*sε*sλ)),
	}
}

// EqToEclObliquity is EqToEcl with the obliquity given as an angle.
func EqToEclObliquity(eq *Equatorial, ε unit.Angle) *Ecliptic {
	sε, cε := ε.Sincos()
	return EqToEcl(eq, sε, cε)
}

// EclToEqObliquity is EclToEq with the obliquity given as an angle.
func EclToEqObliquity(ecl *Ecliptic, ε unit.Angle) *Equatorial {
	sε, cε := ε.Sincos()
	return EclToEq(ecl, sε, cε)
}

// EqToHz computes horizontal coordinates from declination and local hour
// angle H for an observer at latitude φ.
func EqToHz(δ, φ unit.Angle, H unit.HourAngle) *Horizontal {
	sH, cH := H.Sincos()
	sφ, cφ := φ.Sincos()
	sδ, cδ := δ.Sincos()
	return &Horizontal{
		Az:  unit.Angle(math.Atan2(sH, cH*sφ-(sδ/cδ)*cφ)),
		Alt: unit.Angle(math.Asin(sφ*sδ + cφ*cδ*cH)),
	}
}

// EqToHzAt computes horizontal coordinates of eq for an observer at g,
// given the Greenwich sidereal time st.
//
// The local hour angle is H = st + L − α with L positive east.
func EqToHzAt(eq *Equatorial, g *Geographic, st unit.Time) *Horizontal {
	H := st.HourAngle() + g.Lon.HourAngle() - eq.RA.HourAngle()
	return EqToHz(eq.Dec, g.Lat, H)
}

// HzToEq recovers local hour angle and declination from horizontal
// coordinates for an observer at latitude φ.
func HzToEq(hz *Horizontal, φ unit.Angle) (H unit.HourAngle, δ unit.Angle) {
	sA, cA := hz.Az.Sincos()
	sh, ch := hz.Alt.Sincos()
	sφ, cφ := φ.Sincos()
	H = unit.HourAngle(math.Atan2(sA, cA*sφ+sh/ch*cφ))
	δ = unit.Angle(math.Asin(sφ*sh - cφ*ch*cA))
	return
}

// HzToEqAt recovers equatorial coordinates from horizontal coordinates for
// an observer at g, given the Greenwich sidereal time st.
func HzToEqAt(hz *Horizontal, g *Geographic, st unit.Time) *Equatorial {
	H, δ := HzToEq(hz, g.Lat)
	return &Equatorial{
		RA:  unit.RAFromRad(st.Rad() + g.Lon.Rad() - H.Rad()),
		Dec: δ,
	}
}

// B1950 galactic pole and node.
var (
	galacticNorth = Equatorial{
		RA:  unit.RAFromDeg(192.25),
		Dec: unit.AngleFromDeg(27.4),
	}
	galacticNodeLon   = unit.AngleFromDeg(123)
	galacticNode      = unit.AngleFromDeg(303)
	galacticNodeRAOff = unit.AngleFromDeg(12.25)
)

// EqToGal converts B1950 equatorial coordinates to galactic coordinates.
func EqToGal(eq *Equatorial) *Galactic {
	sdα, cdα := (galacticNorth.RA.Angle() - eq.RA.Angle()).Sincos()
	sgδ, cgδ := galacticNorth.Dec.Sincos()
	sδ, cδ := eq.Dec.Sincos()
	x := unit.Angle(math.Atan2(sdα, cdα*sgδ-(sδ/cδ)*cgδ))
	return &Galactic{
		Lon: (galacticNode - x).Mod1(),
		Lat: unit.Angle(math.Asin(sδ*sgδ + cδ*cgδ*cdα)),
	}
}

// GalToEq converts galactic coordinates to B1950 equatorial coordinates.
func GalToEq(g *Galactic) *Equatorial {
	sdl, cdl := (g.Lon - galacticNodeLon).Sincos()
	sgδ, cgδ := galacticNorth.Dec.Sincos()
	sb, cb := g.Lat.Sincos()
	y := math.Atan2(sdl, cdl*sgδ-(sb/cb)*cgδ)
	return &Equatorial{
		RA:  unit.RAFromRad(y + galacticNodeRAOff.Rad()),
		Dec: unit.Angle(math.Asin(sb*sgδ + cb*cgδ*cdl)),
	}
}
