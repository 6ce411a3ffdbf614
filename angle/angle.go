// Public domain.

// Package angle has the sexagesimal and range reduction primitives used
// throughout the almanac packages.
//
// Values are carried as github.com/soniakeys/unit types, which are radians
// underneath.  Functions here build those values from degree, minute and
// second fields and split them back apart.
package angle

import (
	"errors"
	"math"

	"github.com/soniakeys/unit"
)

// ErrSexaField is returned when a minute or second field is negative or not
// less than 60.
var ErrSexaField = errors.New("sexagesimal field out of range")

// FromDMS returns decimal degrees for the sexagesimal value d°m′s″.
//
// The sign is carried separately in neg.  Pass '-' for a negative value,
// anything else for a positive one.  This allows -0°30′ to be represented,
// which a signed degree field cannot.  Fields d, m, s must be non-negative,
// and m and s must be less than 60.
func FromDMS(neg byte, d, m int, s float64) (float64, error) {
	if d < 0 || m < 0 || m >= 60 || !(s >= 0 && s < 60) {
		return 0, ErrSexaField
	}
	return unit.FromSexa(neg, d, m, s), nil
}

// AngleFromDMS is FromDMS returning a unit.Angle.
func AngleFromDMS(neg byte, d, m int, s float64) (unit.Angle, error) {
	if _, err := FromDMS(neg, d, m, s); err != nil {
		return 0, err
	}
	return unit.NewAngle(neg, d, m, s), nil
}

// RAFromHMS returns a right ascension for h hours, m minutes, s seconds.
func RAFromHMS(h, m int, s float64) (unit.RA, error) {
	if h < 0 || h >= 24 {
		return 0, ErrSexaField
	}
	if _, err := FromDMS(' ', h, m, s); err != nil {
		return 0, err
	}
	return unit.NewRA(h, m, s), nil
}

// DMS splits an angle into sign, degrees, minutes and seconds.
//
// Returned neg is '-' for a negative angle and ' ' otherwise.  Minutes and
// seconds are magnitudes.
func DMS(a unit.Angle) (neg byte, d, m int, s float64) {
	return split(a.Deg())
}

// HMS splits a right ascension into hours, minutes and seconds.
func HMS(ra unit.RA) (h, m int, s float64) {
	_, h, m, s = split(ra.Hour())
	return
}

// HourAngleHMS splits an hour angle into sign, hours, minutes and seconds.
func HourAngleHMS(ha unit.HourAngle) (neg byte, h, m int, s float64) {
	return split(ha.Hour())
}

// TimeHMS splits a time of day into sign, hours, minutes and seconds.
func TimeHMS(t unit.Time) (neg byte, h, m int, s float64) {
	return split(t.Hour())
}

func split(x float64) (neg byte, d, m int, s float64) {
	neg = ' '
	if x < 0 {
		neg = '-'
		x = -x
	}
	// work in seconds so whole-second inputs come back whole.
	sec := x * 3600
	ws := math.Floor(sec / 60)
	s = sec - ws*60
	// float noise can leave s a hair under 60 or a hair negative.
	switch {
	case s < 0:
		s = 0
	case 60-s < 1e-12*math.Max(1, sec):
		s = 0
		ws++
	}
	wm := int64(ws)
	d = int(wm / 60)
	m = int(wm % 60)
	return
}

// Norm360 reduces an angle in degrees to the range [0, 360).
//
// Reduction is by floor-division remainder, so negative inputs come back
// positive.  Norm360 is idempotent.
func Norm360(deg float64) float64 {
	r := deg - 360*math.Floor(deg/360)
	if r >= 360 || r < 0 {
		// deg tiny and negative can round up to exactly 360.
		return 0
	}
	return r
}

// Norm180 reduces an angle in degrees to the range (-180, 180].
func Norm180(deg float64) float64 {
	r := Norm360(deg)
	if r > 180 {
		r -= 360
	}
	return r
}

// NormRad reduces an angle to the range [0, 2π).
func NormRad(a unit.Angle) unit.Angle {
	r := a.Mod1()
	if r >= 2*math.Pi {
		return 0
	}
	return r
}

// Deg is a shorthand for unit.AngleFromDeg.
func Deg(d float64) unit.Angle { return unit.AngleFromDeg(d) }
