// Public domain.

// Package elliptic computes positions of bodies in elliptic orbits about
// the Sun.
//
// Positions are geometric, referred to the mean ecliptic and equinox of
// J2000, and corrected for light time.
package elliptic

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/almanac/julian"
	"github.com/soniakeys/almanac/kepler"
	"github.com/soniakeys/almanac/nutation"
	pe "github.com/soniakeys/almanac/planetelements"
	"github.com/soniakeys/almanac/transform"
	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// MaxLightTimeIterations caps the light time loop of Observe.
const MaxLightTimeIterations = 10

// LightTimeFactor converts distance in AU to light time in days.
const LightTimeFactor = .0057755183

const (
	keplerTol    = 1e-12 // radians
	lightTimeTol = 1e-9  // days
)

// ErrObserverBody is returned when asked to observe the Earth-Moon
// barycentre from the Earth.
var ErrObserverBody = errors.New("body is the observer")

// Object is anything with heliocentric elements at a given JDE.
type Object interface {
	Elements(jde float64) pe.Elements
}

// Planet adapts a planetelements.Body to Object.
type Planet pe.Body

// Elements returns mean elements of the planet.
func (p Planet) Elements(jde float64) pe.Elements {
	return pe.Mean(pe.Body(p), jde)
}

// Orbit is a two-body orbit with elements given at an epoch.
type Orbit struct {
	El    pe.Elements
	Epoch float64 // JDE of El
}

// MeanMotion returns the mean daily motion for semimajor axis a in AU,
// neglecting the mass of the body.
func MeanMotion(a float64) unit.Angle {
	return unit.Angle(astro.K / (a * math.Sqrt(a)))
}

// Elements propagates the orbit to jde, advancing the mean longitude at
// the mean motion.
func (o *Orbit) Elements(jde float64) pe.Elements {
	e := o.El
	e.Lon = (e.Lon + MeanMotion(e.Axis).Mul(jde-o.Epoch)).Mod1()
	return e
}

// Heliocentric returns the heliocentric ecliptic rectangular position of
// a body with elements el, in AU.
//
// Kepler's equation is solved to tol radians.
func Heliocentric(el *pe.Elements, tol float64) (p coord.Cart, err error) {
	E, err := kepler.Kepler2(el.Ecc, el.MeanAnomaly(), tol)
	if err != nil {
		return
	}
	sE, cE := E.Sincos()
	// position in the orbital plane, x toward perihelion
	x := el.Axis * (cE - el.Ecc)
	y := el.Axis * math.Sqrt(1-el.Ecc*el.Ecc) * sE
	sω, cω := el.ArgPerihelion().Sincos()
	sΩ, cΩ := el.Node.Sincos()
	si, ci := el.Inc.Sincos()
	p.X = (cω*cΩ-sω*sΩ*ci)*x - (sω*cΩ+cω*sΩ*ci)*y
	p.Y = (cω*sΩ+sω*cΩ*ci)*x - (sω*sΩ-cω*cΩ*ci)*y
	p.Z = sω*si*x + cω*si*y
	return
}

// Observation is the geometry of a body seen from the center of the Earth.
type Observation struct {
	Lon       unit.Angle // geocentric ecliptic longitude, λ
	Lat       unit.Angle // geocentric ecliptic latitude, β
	Range     float64    // distance from Earth, Δ, AU
	LightTime float64    // τ, days
	R         float64    // Sun-Earth distance, AU
	Rb        float64    // Sun-body distance at jde − τ, r, AU
}

// Observe computes the position of obj seen from Earth at jde.
//
// The body is recomputed at jde − τ until the light time τ settles,
// normally in two or three passes.  The Earth is represented by the
// Earth-Moon barycentre.
func Observe(obj Object, jde float64) (*Observation, error) {
	if p, ok := obj.(Planet); ok && pe.Body(p) == pe.EarthMoon {
		return nil, ErrObserverBody
	}
	ee := pe.Mean(pe.EarthMoon, jde)
	earth, err := Heliocentric(&ee, keplerTol)
	if err != nil {
		return nil, fmt.Errorf("Earth: %w", err)
	}
	var τ float64
	for i := 0; i < MaxLightTimeIterations; i++ {
		el := obj.Elements(jde - τ)
		b, err := Heliocentric(&el, keplerTol)
		if err != nil {
			return nil, err
		}
		var g coord.Cart
		g.Sub(&b, &earth)
		Δ := math.Sqrt(g.Square())
		τ0 := τ
		τ = LightTimeFactor * Δ
		if math.Abs(τ-τ0) < lightTimeTol {
			return &Observation{
				Lon:       unit.Angle(math.Atan2(g.Y, g.X)).Mod1(),
				Lat:       unit.Angle(math.Asin(g.Z / Δ)),
				Range:     Δ,
				LightTime: τ,
				R:         math.Sqrt(earth.Square()),
				Rb:        math.Sqrt(b.Square()),
			}, nil
		}
	}
	return nil, fmt.Errorf("light time at JDE %.5f, %d iterations: %w",
		jde, MaxLightTimeIterations, kepler.ErrNoConvergence)
}

// Position returns the geocentric ecliptic position of planet b, J2000,
// its distance Δ in AU and the light time τ in days.
func Position(b pe.Body, jde float64) (λ, β unit.Angle, Δ, τ float64, err error) {
	o, err := Observe(Planet(b), jde)
	if err != nil {
		return
	}
	return o.Lon, o.Lat, o.Range, o.LightTime, nil
}

// Elongation returns the angular distance of the body from the Sun.
func (o *Observation) Elongation() unit.Angle {
	c := (o.R*o.R + o.Range*o.Range - o.Rb*o.Rb) / (2 * o.R * o.Range)
	return unit.Angle(math.Acos(math.Max(-1, math.Min(1, c))))
}

// Equatorial returns the position as J2000 right ascension and
// declination.
func (o *Observation) Equatorial() *transform.Equatorial {
	return transform.EclToEqObliquity(
		&transform.Ecliptic{Lon: o.Lon, Lat: o.Lat},
		nutation.MeanObliquity(julian.J2000))
}
