// Public domain.

// Package globe computes geodetic quantities on Earth's reference
// ellipsoid.
//
// Longitudes are positive east; see transform.Geographic.
package globe

import (
	"math"

	"github.com/soniakeys/almanac/transform"
	"github.com/soniakeys/unit"
)

// Ellipsoid is a reference ellipsoid.
type Ellipsoid struct {
	Er float64 // equatorial radius, km
	Fl float64 // flattening
}

// Earth76 is the IAU 1976 reference ellipsoid.
var Earth76 = Ellipsoid{Er: 6378.14, Fl: 1 / 298.257}

// MeanRadius is the radius of the sphere used by the approximate distance
// functions, in km.
const MeanRadius = 6371

// A returns the equatorial radius, km.
func (e Ellipsoid) A() float64 { return e.Er }

// B returns the polar radius, km.
func (e Ellipsoid) B() float64 { return e.Er * (1 - e.Fl) }

// Eccentricity of the meridian.
func (e Ellipsoid) Eccentricity() float64 {
	return math.Sqrt((2 - e.Fl) * e.Fl)
}

// ParallaxConstants computes ρ sin φ′ and ρ cos φ′ for an observer at
// geographic latitude φ and height h meters above the ellipsoid.
func (e Ellipsoid) ParallaxConstants(φ unit.Angle, h float64) (ρsφʹ, ρcφʹ float64) {
	boa := 1 - e.Fl
	su, cu := math.Sincos(math.Atan(boa * φ.Tan()))
	s, c := φ.Sincos()
	hoa := h * 1e-3 / e.Er
	return su*boa + hoa*s, cu + hoa*c
}

// Geodetic returns geographic latitude φ and height h in meters above the
// ellipsoid for an observer with parallax constants ρ sin φ′ and ρ cos φ′.
// It inverts ParallaxConstants.
func (e Ellipsoid) Geodetic(ρsφʹ, ρcφʹ float64) (φ unit.Angle, h float64) {
	e2 := (2 - e.Fl) * e.Fl
	p := ρcφʹ * e.Er
	z := ρsφʹ * e.Er
	height := func(lat float64) float64 {
		s, c := math.Sincos(lat)
		N := e.Er / math.Sqrt(1-e2*s*s)
		if math.Abs(c) > .1 {
			return p/c - N
		}
		return z/s - N*(1-e2)
	}
	lat := math.Atan2(z, p*(1-e2))
	for i := 0; i < 8; i++ {
		s := math.Sin(lat)
		N := e.Er / math.Sqrt(1-e2*s*s)
		lat = math.Atan2(z, p*(1-e2*N/(N+height(lat))))
	}
	return unit.Angle(lat), height(lat) * 1e3
}

// Rho returns ρ, the observer's distance from the center of the Earth in
// units of the equatorial radius, at sea level and geographic latitude φ.
func Rho(φ unit.Angle) float64 {
	return .9983271 + .0016764*(2*φ).Cos() - .0000035*(4*φ).Cos()
}

// GeocentricLatitudeDifference returns φ − φ′, the difference between
// geographic and geocentric latitude.
//
// The result is good to about 0.1″.
func GeocentricLatitudeDifference(φ unit.Angle) unit.Angle {
	return unit.AngleFromSec(692.73*(2*φ).Sin() - 1.16*(4*φ).Sin())
}

// RadiusAtLatitude returns the radius of the circle of latitude φ, in km.
func (e Ellipsoid) RadiusAtLatitude(φ unit.Angle) float64 {
	s, c := φ.Sincos()
	e2 := (2 - e.Fl) * e.Fl
	return e.Er * c / math.Sqrt(1-e2*s*s)
}

// RadiusOfCurvature returns the radius of curvature of the meridian at
// latitude φ, in km.
func (e Ellipsoid) RadiusOfCurvature(φ unit.Angle) float64 {
	s := φ.Sin()
	e2 := (2 - e.Fl) * e.Fl
	return e.Er * (1 - e2) / math.Pow(1-e2*s*s, 1.5)
}

// OneDegreeOfLongitude returns the length of one degree of longitude for
// a circle of latitude of radius rp.
func OneDegreeOfLongitude(rp float64) float64 {
	return rp * math.Pi / 180
}

// OneDegreeOfLatitude returns the length of one degree of latitude for a
// meridian radius of curvature rm.
func OneDegreeOfLatitude(rm float64) float64 {
	return rm * math.Pi / 180
}

// Distance returns the distance in km between two points on the surface
// of the ellipsoid, by Andoyer's method.
//
// The error is of the order of the square of the flattening, about 50 m
// for Earth.
func (e Ellipsoid) Distance(c1, c2 transform.Geographic) float64 {
	F := (c1.Lat + c2.Lat) / 2
	G := (c1.Lat - c2.Lat) / 2
	λ := (c1.Lon - c2.Lon) / 2
	sF, cF := F.Sincos()
	sG, cG := G.Sincos()
	sλ, cλ := λ.Sincos()
	S := sG*sG*cλ*cλ + cF*cF*sλ*sλ
	C := cG*cG*cλ*cλ + sF*sF*sλ*sλ
	if S == 0 {
		return 0
	}
	if C == 0 {
		// antipodal; the series is singular
		return math.Pi * e.Er
	}
	ω := math.Atan(math.Sqrt(S / C))
	R := math.Sqrt(S*C) / ω
	D := 2 * ω * e.Er
	H1 := (3*R - 1) / (2 * C)
	H2 := (3*R + 1) / (2 * S)
	return D * (1 + e.Fl*H1*sF*sF*cG*cG - e.Fl*H2*cF*cF*sG*sG)
}

// ApproxAngularDistance returns the angular distance between two points on
// a sphere.
func ApproxAngularDistance(c1, c2 transform.Geographic) unit.Angle {
	s1, c1φ := c1.Lat.Sincos()
	s2, c2φ := c2.Lat.Sincos()
	cd := s1*s2 + c1φ*c2φ*(c1.Lon-c2.Lon).Cos()
	return unit.Angle(math.Acos(math.Max(-1, math.Min(1, cd))))
}

// ApproxLinearDistance converts an angular distance to km on the sphere of
// radius MeanRadius.
func ApproxLinearDistance(d unit.Angle) float64 {
	return MeanRadius * d.Rad()
}
