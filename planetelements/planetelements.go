// Public domain.

// Package planetelements gives mean orbital elements of the major planets.
//
// Elements are the approximate Keplerian elements of Standish (JPL), each
// linear in time, referred to the mean ecliptic and equinox of J2000.
// They are valid 1800 to 2050 with errors up to about 20″ in longitude for
// the inner planets and a few arc minutes for the outer ones.
package planetelements

import (
	"errors"
	"fmt"
	"strings"

	"github.com/soniakeys/almanac/julian"
	"github.com/soniakeys/unit"
)

// Body identifies a planet.
type Body int

// Bodies with elements.  EarthMoon is the Earth-Moon barycentre.
const (
	Mercury Body = iota
	Venus
	EarthMoon
	Mars
	Jupiter
	Saturn
	Uranus
	Neptune
	nBodies
)

var bodyNames = [nBodies]string{
	"Mercury", "Venus", "Earth", "Mars",
	"Jupiter", "Saturn", "Uranus", "Neptune",
}

func (b Body) String() string {
	if b < 0 || b >= nBodies {
		return fmt.Sprintf("Body(%d)", int(b))
	}
	return bodyNames[b]
}

// ErrUnknownBody is returned by ParseBody for an unrecognized name.
var ErrUnknownBody = errors.New("unknown body")

// ParseBody returns the body named by s, ignoring case.
func ParseBody(s string) (Body, error) {
	for b, n := range bodyNames {
		if strings.EqualFold(s, n) {
			return Body(b), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", s, ErrUnknownBody)
}

// Elements holds Keplerian elements of an orbit about the Sun.
type Elements struct {
	Axis float64    // semimajor axis, a, AU
	Ecc  float64    // eccentricity, e
	Inc  unit.Angle // inclination, i
	Node unit.Angle // longitude of ascending node, Ω
	Peri unit.Angle // longitude of perihelion, ϖ
	Lon  unit.Angle // mean longitude, L
}

// MeanAnomaly returns M = L − ϖ.
func (e *Elements) MeanAnomaly() unit.Angle {
	return (e.Lon - e.Peri).Mod1()
}

// ArgPerihelion returns ω = ϖ − Ω.
func (e *Elements) ArgPerihelion() unit.Angle {
	return (e.Peri - e.Node).Mod1()
}

// element value at J2000 and rate per Julian century
type lin struct{ v, r float64 }

func (l lin) at(T float64) float64 { return l.v + l.r*T }

type coeff struct {
	a, e, i, L, ϖ, Ω lin
}

var tab = [nBodies]coeff{
	Mercury: {
		lin{.38709927, .00000037},
		lin{.20563593, .00001906},
		lin{7.00497902, -.00594749},
		lin{252.2503235, 149472.67411175},
		lin{77.45779628, .16047689},
		lin{48.33076593, -.12534081},
	},
	Venus: {
		lin{.72333566, .0000039},
		lin{.00677672, -.00004107},
		lin{3.39467605, -.0007889},
		lin{181.9790995, 58517.81538729},
		lin{131.60246718, .00268329},
		lin{76.67984255, -.27769418},
	},
	EarthMoon: {
		lin{1.00000261, .00000562},
		lin{.01671123, -.00004392},
		lin{-.00001531, -.01294668},
		lin{100.46457166, 35999.37244981},
		lin{102.93768193, .32327364},
		lin{0, 0},
	},
	Mars: {
		lin{1.52371034, .00001847},
		lin{.0933941, .00007882},
		lin{1.84969142, -.00813131},
		lin{-4.55343205, 19140.30268499},
		lin{-23.94362959, .44441088},
		lin{49.55953891, -.29257343},
	},
	Jupiter: {
		lin{5.202887, -.00011607},
		lin{.04838624, -.00013253},
		lin{1.30439695, -.00183714},
		lin{34.39644051, 3034.74612775},
		lin{14.72847983, .21252668},
		lin{100.47390909, .20469106},
	},
	Saturn: {
		lin{9.53667594, -.0012506},
		lin{.05386179, -.00050991},
		lin{2.48599187, .00193609},
		lin{49.95424423, 1222.49362201},
		lin{92.59887831, -.41897216},
		lin{113.66242448, -.28867794},
	},
	Uranus: {
		lin{19.18916464, -.00196176},
		lin{.04725744, -.00004397},
		lin{.77263783, -.00242939},
		lin{313.23810451, 428.48202785},
		lin{170.9542763, .40805281},
		lin{74.01692503, .04240589},
	},
	Neptune: {
		lin{30.06992276, .00026291},
		lin{.00859048, .00005105},
		lin{1.77004347, .00035372},
		lin{-55.12002969, 218.45945325},
		lin{44.96476227, -.32241464},
		lin{131.78422574, -.00508664},
	},
}

// Mean returns mean orbital elements of body b at the given JDE.
//
// Angles L, ϖ and Ω are reduced to [0, 2π).  Mean returns zero Elements
// for an invalid body.
func Mean(b Body, jde float64) Elements {
	if b < 0 || b >= nBodies {
		return Elements{}
	}
	c := &tab[b]
	T := julian.J2000Century(jde)
	return Elements{
		Axis: c.a.at(T),
		Ecc:  c.e.at(T),
		Inc:  unit.AngleFromDeg(c.i.at(T)),
		Node: unit.AngleFromDeg(c.Ω.at(T)).Mod1(),
		Peri: unit.AngleFromDeg(c.ϖ.at(T)).Mod1(),
		Lon:  unit.AngleFromDeg(c.L.at(T)).Mod1(),
	}
}
