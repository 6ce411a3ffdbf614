// Public domain.

// Package sidereal computes Greenwich sidereal time.
//
// The argument is JD in UT.  Results are unit.Time reduced to one day.
package sidereal

import (
	"math"

	"github.com/soniakeys/almanac/julian"
	"github.com/soniakeys/almanac/nutation"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

// sidereal seconds per solar second
const ratio = 1.00273790935

// JDToCFrac splits jd into the JD of the preceding 0h UT and the fraction
// of the day since.
func JDToCFrac(jd float64) (jd0, f float64) {
	jd0 = math.Floor(jd-.5) + .5
	return jd0, jd - jd0
}

func mean0UT(jd0 float64) float64 {
	return base.Horner(julian.J2000Century(jd0),
		unit.FromSexaSec(' ', 6, 41, 50.54841),
		8640184.812866, .093104, -.0000062)
}

// Mean0UT returns mean sidereal time at Greenwich at 0h UT on the day
// containing jd.
func Mean0UT(jd float64) unit.Time {
	jd0, _ := JDToCFrac(jd)
	return unit.Time(mean0UT(jd0)).Mod1()
}

// Mean returns mean sidereal time at Greenwich for the instant jd.
func Mean(jd float64) unit.Time {
	jd0, f := JDToCFrac(jd)
	return unit.Time(mean0UT(jd0) + f*86400*ratio).Mod1()
}

// equation of the equinoxes, seconds of time
func eqEquinoxes(jd float64) float64 {
	return nutation.NutationInRA(jd).Sec()
}

// Apparent returns apparent sidereal time at Greenwich for the instant jd,
// the mean time corrected by nutation in right ascension.
func Apparent(jd float64) unit.Time {
	return unit.Time(float64(Mean(jd)) + eqEquinoxes(jd)).Mod1()
}

// Apparent0UT returns apparent sidereal time at Greenwich at 0h UT on the
// day containing jd.
func Apparent0UT(jd float64) unit.Time {
	jd0, _ := JDToCFrac(jd)
	return unit.Time(mean0UT(jd0) + eqEquinoxes(jd0)).Mod1()
}

// Local returns local sidereal time for an observer at longitude L,
// positive east, given Greenwich sidereal time st.
func Local(st unit.Time, L unit.Angle) unit.Time {
	return (st + L.Time()).Mod1()
}
