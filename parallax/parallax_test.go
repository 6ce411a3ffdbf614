// Public domain.

package parallax_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/almanac/angle"
	"github.com/soniakeys/almanac/globe"
	"github.com/soniakeys/almanac/parallax"
	"github.com/soniakeys/almanac/transform"
	"github.com/soniakeys/unit"
)

// Mars from Palomar, 2003 August 28, 3h17m UT
var (
	mars = &transform.Equatorial{
		RA:  unit.RAFromDeg(339.530208),
		Dec: unit.AngleFromDeg(-15.771083),
	}
	marsΔ = .37276
	marsH = unit.HourAngle(unit.AngleFromDeg(288.7958))
)

func palomar() (ρsφʹ, ρcφʹ float64) {
	return globe.Earth76.ParallaxConstants(unit.NewAngle(' ', 33, 21, 22), 1706)
}

func ExampleTopocentric() {
	s, c := palomar()
	tp := parallax.Topocentric(mars, parallax.Horizontal(marsΔ), s, c, marsH)
	h, m, sec := angle.HMS(tp.RA)
	fmt.Printf("α′ = %dʰ%02dᵐ%05.2fˢ\n", h, m, sec)
	neg, d, m, sec := angle.DMS(tp.Dec)
	fmt.Printf("δ′ = %c%d°%02d′%04.1f″\n", neg, d, m, sec)
	// Output:
	// α′ = 22ʰ38ᵐ08.54ˢ
	// δ′ = -15°46′30.0″
}

func TestHorizontal(t *testing.T) {
	if π := parallax.Horizontal(1); math.Abs(π.Sec()-8.794) > 1e-9 {
		t.Fatal(π.Sec())
	}
	if π := parallax.Horizontal(marsΔ); math.Abs(π.Sec()-23.592) > .001 {
		t.Fatal(π.Sec())
	}
}

// The differential formulas agree with the rigorous ones to a small
// fraction of an arc second for a planet.
func TestTopocentricDiff(t *testing.T) {
	s, c := palomar()
	π := parallax.Horizontal(marsΔ)
	tp := parallax.Topocentric(mars, π, s, c, marsH)
	Δα, Δδ := parallax.TopocentricDiff(mars, π, s, c, marsH)
	dα := math.Remainder(tp.RA.Rad()-mars.RA.Rad(), 2*math.Pi)
	if d := unit.Angle(dα - Δα.Rad()).Sec(); math.Abs(d) > .01 {
		t.Fatal("Δα", d)
	}
	if d := (tp.Dec - mars.Dec - Δδ).Sec(); math.Abs(d) > .01 {
		t.Fatal("Δδ", d)
	}
}

// An observer at the center of the Earth sees no parallax.
func TestGeocenter(t *testing.T) {
	tp := parallax.Topocentric(mars, parallax.Horizontal(marsΔ), 0, 0, marsH)
	if tp.RA != mars.RA || math.Abs((tp.Dec-mars.Dec).Rad()) > 1e-15 {
		t.Fatal(tp)
	}
}
