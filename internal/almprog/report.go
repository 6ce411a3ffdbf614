// Public domain.

package almprog

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/soniakeys/almanac/angsep"
	"github.com/soniakeys/almanac/apparent"
	"github.com/soniakeys/almanac/elliptic"
	"github.com/soniakeys/almanac/globe"
	"github.com/soniakeys/almanac/illum"
	"github.com/soniakeys/almanac/julian"
	"github.com/soniakeys/almanac/parallax"
	pe "github.com/soniakeys/almanac/planetelements"
	"github.com/soniakeys/almanac/precession"
	"github.com/soniakeys/almanac/refraction"
	"github.com/soniakeys/almanac/rise"
	"github.com/soniakeys/almanac/semidiameter"
	"github.com/soniakeys/almanac/sidereal"
	"github.com/soniakeys/almanac/solar"
	"github.com/soniakeys/almanac/transform"
	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"
)

// km per AU
const au = 149597870.7

// site holds the observer and instant of a job.
type site struct {
	jd, jde    float64 // UT, TD
	ΔT         float64 // seconds
	g          transform.Geographic
	ρsφʹ, ρcφʹ float64
	st         unit.Time // apparent sidereal time at Greenwich
	P, T       float64   // millibars, °C
}

func newSite(j *job) *site {
	s := &site{
		jd: julian.TimeToJD(j.Date),
		ΔT: float64(j.DeltaT),
		g: transform.Geographic{
			Lat: unit.AngleFromDeg(float64(j.Lat)),
			Lon: unit.AngleFromDeg(float64(j.Lon)),
		},
		P: float64(j.Pressure),
		T: float64(j.Temperature),
	}
	s.jde = s.jd + s.ΔT/86400
	s.ρsφʹ, s.ρcφʹ = globe.Earth76.ParallaxConstants(s.g.Lat, float64(j.Height))
	s.st = sidereal.Apparent(s.jd)
	return s
}

// row is one line of the report.
type row struct {
	name     string
	eq       *transform.Equatorial // apparent topocentric
	hz       *transform.Horizontal // altitude includes refraction
	Δ        float64               // AU, or km for the Moon
	km       bool
	elong    unit.Angle
	k        float64 // illuminated fraction
	mag      float64
	hasMag   bool
	sd       unit.Angle // semidiameter
	riseErr  error
	r, tr, t unit.Time // rise, transit, set
}

// hourAngle returns the local hour angle of eq.
func (s *site) hourAngle(eq *transform.Equatorial) unit.HourAngle {
	return s.st.HourAngle() + s.g.Lon.HourAngle() - eq.RA.HourAngle()
}

// topocentric finishes a row from the apparent geocentric position.
func (s *site) topocentric(r *row, eq *transform.Equatorial, π unit.Angle) {
	r.eq = parallax.Topocentric(eq, π, s.ρsφʹ, s.ρcφʹ, s.hourAngle(eq))
	r.hz = transform.EqToHzAt(r.eq, &s.g, s.st)
	if r.hz.Alt > unit.AngleFromDeg(-1) {
		R := refraction.Saemundsson(r.hz.Alt)
		r.hz.Alt += refraction.Correction(R, s.P, s.T)
	}
}

func sunRow(s *site) (*row, error) {
	α, δ := solar.ApparentEquatorial(s.jde)
	R := solar.Radius(julian.J2000Century(s.jde))
	r := &row{
		name:   "Sun",
		Δ:      R,
		k:      1,
		sd:     semidiameter.Semidiameter(semidiameter.Sun, R),
		mag:    -26.74,
		hasMag: true,
	}
	s.topocentric(r, &transform.Equatorial{RA: α, Dec: δ},
		parallax.Horizontal(R))
	r.r, r.tr, r.t, r.riseErr = rise.Sun(s.jd, &s.g, s.ΔT)
	return r, nil
}

func moonRow(s *site) (*row, error) {
	eq, π := rise.MoonEquatorial(s.jde)
	Δ := 6378.14 / π.Sin()
	r := &row{
		name: "Moon",
		Δ:    Δ,
		km:   true,
		sd: semidiameter.MoonTopocentric(Δ, eq.Dec, s.hourAngle(eq),
			s.ρsφʹ, s.ρcφʹ),
	}
	// elongation from the Sun and phase angle
	α0, δ0 := solar.ApparentEquatorial(s.jde)
	R := solar.Radius(julian.J2000Century(s.jde)) * au
	ψ := angsep.Sep(unit.Angle(α0), δ0, unit.Angle(eq.RA), eq.Dec)
	sψ, cψ := ψ.Sincos()
	i := unit.Angle(math.Atan2(R*sψ, Δ-R*cψ))
	r.elong = ψ
	r.k = illum.FractionFromPhase(i)
	s.topocentric(r, eq, π)
	r.r, r.tr, r.t, r.riseErr = rise.Moon(s.jd, &s.g, s.ΔT)
	return r, nil
}

// planetEquatorial returns apparent geocentric coordinates of b.
func planetEquatorial(b pe.Body, jde float64) (*transform.Equatorial, *elliptic.Observation, error) {
	o, err := elliptic.Observe(elliptic.Planet(b), jde)
	if err != nil {
		return nil, nil, err
	}
	return apparent.Position(precession.ToDate(o.Equatorial(), jde), jde), o, nil
}

var sd0 = map[pe.Body]unit.Angle{
	pe.Mercury: semidiameter.Mercury,
	pe.Venus:   semidiameter.VenusCloud,
	pe.Mars:    semidiameter.Mars,
	pe.Jupiter: semidiameter.JupiterEquatorial,
	pe.Saturn:  semidiameter.SaturnEquatorial,
	pe.Uranus:  semidiameter.Uranus,
	pe.Neptune: semidiameter.Neptune,
}

func magnitude(b pe.Body, o *elliptic.Observation, i unit.Angle, jde float64) float64 {
	r, Δ := o.Rb, o.Range
	switch b {
	case pe.Mercury:
		return illum.Mercury(r, Δ, i)
	case pe.Venus:
		return illum.Venus(r, Δ, i)
	case pe.Mars:
		return illum.Mars(r, Δ, i)
	case pe.Jupiter:
		return illum.Jupiter(r, Δ)
	case pe.Saturn:
		// ecliptic of date by general precession in longitude; the
		// difference of Saturnicentric longitudes taken as the phase angle
		T := julian.J2000Century(jde)
		λ := o.Lon + unit.AngleFromSec(5029.0966*T)
		return illum.Saturn(r, Δ, illum.SaturnRingTilt(λ, o.Lat, T), i)
	case pe.Uranus:
		return illum.Uranus(r, Δ)
	}
	return illum.Neptune(r, Δ)
}

func planetRow(s *site, b pe.Body) (*row, error) {
	eq, o, err := planetEquatorial(b, s.jde)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", b, err)
	}
	i := illum.PhaseAngle(o.Rb, o.Range, o.R)
	r := &row{
		name:   b.String(),
		Δ:      o.Range,
		elong:  o.Elongation(),
		k:      illum.Fraction(o.Rb, o.Range, o.R),
		mag:    magnitude(b, o, i, s.jde),
		hasMag: true,
		sd:     semidiameter.Semidiameter(sd0[b], o.Range),
	}
	s.topocentric(r, eq, parallax.Horizontal(o.Range))
	// coordinates at 0h TD on the surrounding dates
	jd0, _ := sidereal.JDToCFrac(s.jd)
	α3 := make([]unit.RA, 3)
	δ3 := make([]unit.Angle, 3)
	for d := range α3 {
		eq, _, err := planetEquatorial(b, jd0+float64(d-1)+s.ΔT/86400)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", b, err)
		}
		α3[d], δ3[d] = eq.RA, eq.Dec
	}
	r.r, r.tr, r.t, r.riseErr = rise.Times(&s.g, s.ΔT, rise.Stdh0Stellar,
		sidereal.Apparent0UT(jd0), α3, δ3)
	return r, nil
}

func hm(t unit.Time) string {
	m := int(math.Floor(t.Sec()/60+.5)) % 1440
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

const heading = "Body      RA            Dec            Distance     Az      Alt     Elong   Illum  Mag    SD      Rise  Trans Set"

// format renders a row as a report line.
func (r *row) format() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%-8s  %2.1s  %3.0s  ", r.name,
		sexa.FmtRA(r.eq.RA), sexa.FmtAngle(r.eq.Dec))
	if r.km {
		fmt.Fprintf(&b, "%9.0f km", r.Δ)
	} else {
		fmt.Fprintf(&b, "%9.6f AU", r.Δ)
	}
	fmt.Fprintf(&b, "  %6.2f  %+6.2f  %6.2f  %5.3f  ",
		r.hz.Az.Deg(), r.hz.Alt.Deg(), r.elong.Deg(), r.k)
	if r.hasMag {
		fmt.Fprintf(&b, "%+5.1f", r.mag)
	} else {
		b.WriteString("     ")
	}
	fmt.Fprintf(&b, "  %6.1f″", r.sd.Sec())
	switch {
	case r.riseErr == nil:
		fmt.Fprintf(&b, "  %s %s %s", hm(r.r), hm(r.tr), hm(r.t))
	case errors.Is(r.riseErr, rise.ErrCircumpolar):
		if r.hz.Alt > 0 {
			b.WriteString("  always up")
		} else {
			b.WriteString("  never up")
		}
	default:
		b.WriteString("  " + r.riseErr.Error())
	}
	return b.String()
}
