// Public domain.

package precession_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/almanac/angle"
	"github.com/soniakeys/almanac/julian"
	"github.com/soniakeys/almanac/precession"
	"github.com/soniakeys/almanac/transform"
	"github.com/soniakeys/unit"
	xrand "golang.org/x/exp/rand"
)

func ExamplePosition() {
	// θ Persei, J2000 to 2028 November 13.19 TD.
	eq := &transform.Equatorial{
		RA:  unit.NewRA(2, 44, 11.986),
		Dec: unit.NewAngle(' ', 49, 13, 42.48),
	}
	p := precession.Position(eq, julian.J2000, 2462088.69,
		unit.HourAngleFromSec(.03425), unit.AngleFromSec(-.0895))
	h, m, s := angle.HMS(p.RA)
	fmt.Printf("α = %dʰ%02dᵐ%06.3fˢ\n", h, m, s)
	neg, d, m, s := angle.DMS(p.Dec)
	fmt.Printf("δ = %c%d°%02d′%05.2f″\n", neg, d, m, s)
	// Output:
	// α = 2ʰ46ᵐ11.331ˢ
	// δ =  49°20′54.54″
}

func TestAngles(t *testing.T) {
	ζ, z, θ := precession.Angles(julian.J2000, 2462088.69)
	for _, tc := range []struct {
		got  unit.Angle
		want float64
	}{{ζ, 665.7627}, {z, 665.8288}, {θ, 578.5489}} {
		if math.Abs(tc.got.Sec()-tc.want) > 1e-4 {
			t.Errorf("%.4f″, want %.4f″", tc.got.Sec(), tc.want)
		}
	}
	if ζ, z, θ := precession.Angles(2440000.5, 2440000.5); ζ != 0 || z != 0 || θ != 0 {
		t.Fatal("zero interval:", ζ, z, θ)
	}
}

// Precessing forward then back returns the starting position.
func TestRoundTrip(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(21)
	for i := 0; i < 1000; i++ {
		eq := &transform.Equatorial{
			RA:  unit.RAFromRad(rnd.Float64() * 2 * math.Pi),
			Dec: unit.Angle(math.Asin(2*rnd.Float64() - 1)),
		}
		jde := julian.J2000 + (rnd.Float64()-.5)*2*julian.JulianCentury
		p := precession.Position(precession.ToDate(eq, jde), jde, julian.J2000, 0, 0)
		dα := math.Remainder(p.RA.Rad()-eq.RA.Rad(), 2*math.Pi) * eq.Dec.Cos()
		if math.Abs(dα) > 1e-9 || math.Abs(p.Dec.Rad()-eq.Dec.Rad()) > 1e-9 {
			t.Fatalf("%+v -> %f -> %+v", eq, jde, p)
		}
	}
}

// The pole of J2000 moves along the colure of 0ʰ by θ.
func TestPole(t *testing.T) {
	jde := julian.J2000 + julian.JulianCentury
	_, _, θ := precession.Angles(julian.J2000, jde)
	p := precession.ToDate(&transform.Equatorial{
		Dec: unit.AngleFromDeg(90),
	}, jde)
	if math.Abs(p.Dec.Rad()-(math.Pi/2-θ.Rad())) > 1e-12 {
		t.Fatal(p.Dec.Deg(), 90-θ.Deg())
	}
}
