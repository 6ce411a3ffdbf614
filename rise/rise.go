// Public domain.

// Package rise computes times of rising, transit and setting.
//
// Times are computed for the Greenwich date given by the apparent sidereal
// time at 0h UT, and are returned as UT times of day.  Events that would
// fall on the previous or next date are reduced into the same day, so a
// setting time may precede the rising time.
package rise

import (
	"errors"
	"math"

	"github.com/soniakeys/almanac/angle"
	"github.com/soniakeys/almanac/moonposition"
	"github.com/soniakeys/almanac/nutation"
	"github.com/soniakeys/almanac/sidereal"
	"github.com/soniakeys/almanac/solar"
	"github.com/soniakeys/almanac/transform"
	"github.com/soniakeys/meeus/v3/interp"
	"github.com/soniakeys/unit"
)

var (
	ErrCircumpolar   = errors.New("circumpolar")
	ErrNoConvergence = errors.New("rise: failure to converge")
)

// MaxIterations caps the refinement of each event time.
const MaxIterations = 20

// Standard altitudes of the center of a body at rising and setting.
var (
	Stdh0Stellar = unit.AngleFromMin(-34)
	Stdh0Solar   = unit.AngleFromMin(-50)
)

// Stdh0Lunar returns the standard altitude of the Moon for horizontal
// parallax π.
func Stdh0Lunar(π unit.Angle) unit.Angle {
	return π.Mul(.7275) - unit.AngleFromMin(34)
}

// hourAngle returns the cosine of the hour angle at which a body of
// declination δ stands at altitude h0.
func hourAngle(φ, h0, δ unit.Angle) (float64, error) {
	c := (h0.Sin() - φ.Sin()*δ.Sin()) / (φ.Cos() * δ.Cos())
	if c < -1 || c > 1 {
		return 0, ErrCircumpolar
	}
	return c, nil
}

// day reduces a fraction of a day to [0, 1).
func day(m float64) float64 {
	m -= math.Floor(m)
	if m >= 1 {
		return 0
	}
	return m
}

// ApproxTimes computes approximate UT rise, transit and set times for a
// body whose coordinates are taken as constant over the day.
//
// h0 is the standard altitude, Th0 the apparent sidereal time at 0h UT at
// Greenwich.
func ApproxTimes(p *transform.Geographic, h0 unit.Angle, Th0 unit.Time, α unit.RA, δ unit.Angle) (rise, transit, set unit.Time, err error) {
	cH0, err := hourAngle(p.Lat, h0, δ)
	if err != nil {
		return
	}
	H0 := math.Acos(cH0) / (2 * math.Pi)
	m0 := day((α.Rad() - p.Lon.Rad() - Th0.Rad()) / (2 * math.Pi))
	return unit.TimeFromDay(day(m0 - H0)), unit.TimeFromDay(m0),
		unit.TimeFromDay(day(m0 + H0)), nil
}

// corrector refines event times by interpolating the body's coordinates.
type corrector struct {
	φ, L, h0 float64 // degrees
	th0      float64 // degrees
	ΔT       float64 // days
	α, δ     *interp.Len3
}

func (c *corrector) transit(m float64) float64 {
	θ := c.th0 + 360.985647*m
	n := m + c.ΔT
	return -angle.Norm180(θ+c.L-c.α.InterpolateN(n)) / 360
}

func (c *corrector) riseSet(m float64) float64 {
	θ := c.th0 + 360.985647*m
	n := m + c.ΔT
	H := unit.AngleFromDeg(angle.Norm180(θ + c.L - c.α.InterpolateN(n)))
	δ := unit.AngleFromDeg(c.δ.InterpolateN(n))
	sφ, cφ := math.Sincos(c.φ * math.Pi / 180)
	sδ, cδ := δ.Sincos()
	sH, cH := H.Sincos()
	h := math.Asin(sφ*sδ+cφ*cδ*cH) * 180 / math.Pi
	return (h - c.h0) / (360 * cδ * cφ * sH)
}

// Times computes UT rise, transit and set times for a body on the date
// whose 0h UT apparent sidereal time at Greenwich is Th0.
//
// ΔT is in seconds.  h0 is the standard altitude.  α3 and δ3 are
// coordinates of the body at 0h TD on the previous, current and following
// dates.
//
// A body that does not rise or set on the date gives ErrCircumpolar.
func Times(p *transform.Geographic, ΔT float64, h0 unit.Angle, Th0 unit.Time, α3 []unit.RA, δ3 []unit.Angle) (rise, transit, set unit.Time, err error) {
	if len(α3) != 3 || len(δ3) != 3 {
		err = interp.ErrorNot3
		return
	}
	cH0, err := hourAngle(p.Lat, h0, δ3[1])
	if err != nil {
		return
	}
	H0 := math.Acos(cH0) * 180 / math.Pi
	// right ascensions unwrapped about the middle value
	a2 := α3[1].Deg()
	a := make([]float64, 3)
	d := make([]float64, 3)
	for i := range a {
		a[i] = a2 + angle.Norm180(α3[i].Deg()-a2)
		d[i] = δ3[i].Deg()
	}
	c := &corrector{
		φ:   p.Lat.Deg(),
		L:   p.Lon.Deg(),
		h0:  h0.Deg(),
		th0: unit.Angle(Th0.Rad()).Deg(),
		ΔT:  ΔT / 86400,
	}
	if c.α, err = interp.NewLen3(-1, 1, a); err != nil {
		return
	}
	if c.δ, err = interp.NewLen3(-1, 1, d); err != nil {
		return
	}
	mt := day((a2 - c.L - c.th0) / 360)
	mr := day(mt - H0/360)
	ms := day(mt + H0/360)
	for i := 0; ; i++ {
		if i == MaxIterations {
			err = ErrNoConvergence
			return
		}
		dt := c.transit(mt)
		dr := c.riseSet(mr)
		ds := c.riseSet(ms)
		mt += dt
		mr += dr
		ms += ds
		if math.Abs(dt) < 1e-9 && math.Abs(dr) < 1e-9 && math.Abs(ds) < 1e-9 {
			break
		}
	}
	return unit.TimeFromDay(day(mr)), unit.TimeFromDay(day(mt)),
		unit.TimeFromDay(day(ms)), nil
}

// Sun computes UT times of sunrise, transit and sunset on the UT date
// containing jd.  ΔT is in seconds.
func Sun(jd float64, p *transform.Geographic, ΔT float64) (rise, transit, set unit.Time, err error) {
	jd0, _ := sidereal.JDToCFrac(jd)
	α3 := make([]unit.RA, 3)
	δ3 := make([]unit.Angle, 3)
	for i := range α3 {
		α3[i], δ3[i] = solar.ApparentEquatorial(jd0 + float64(i-1) + ΔT/86400)
	}
	return Times(p, ΔT, Stdh0Solar, sidereal.Apparent0UT(jd0), α3, δ3)
}

// MoonEquatorial returns the apparent geocentric equatorial coordinates
// and horizontal parallax of the Moon.
func MoonEquatorial(jde float64) (*transform.Equatorial, unit.Angle) {
	λ, β, Δ := moonposition.Position(jde)
	Δψ, _ := nutation.Nutation(jde)
	eq := transform.EclToEqObliquity(&transform.Ecliptic{
		Lon: λ + Δψ,
		Lat: β,
	}, nutation.TrueObliquity(jde))
	return eq, moonposition.Parallax(Δ)
}

// Moon computes UT times of moonrise, transit and moonset on the UT date
// containing jd.  ΔT is in seconds.
func Moon(jd float64, p *transform.Geographic, ΔT float64) (rise, transit, set unit.Time, err error) {
	jd0, _ := sidereal.JDToCFrac(jd)
	α3 := make([]unit.RA, 3)
	δ3 := make([]unit.Angle, 3)
	var π unit.Angle
	for i := range α3 {
		eq, πi := MoonEquatorial(jd0 + float64(i-1) + ΔT/86400)
		α3[i], δ3[i] = eq.RA, eq.Dec
		if i == 1 {
			π = πi
		}
	}
	return Times(p, ΔT, Stdh0Lunar(π), sidereal.Apparent0UT(jd0), α3, δ3)
}
