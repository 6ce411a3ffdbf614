// Public domain.

package solar_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/almanac/julian"
	"github.com/soniakeys/almanac/solar"
	"github.com/soniakeys/astro"
	ms "github.com/soniakeys/meeus/v3/solar"
	xrand "golang.org/x/exp/rand"
)

func ExampleApparentEquatorial() {
	// 1992 October 13, 0h TD
	jde := 2448908.5
	T := julian.J2000Century(jde)
	s, _ := solar.True(T)
	fmt.Printf("☉ = %.4f\n", s.Deg())
	fmt.Printf("R = %.5f\n", solar.Radius(T))
	fmt.Printf("λ = %.4f\n", solar.ApparentLongitude(T).Deg())
	α, δ := solar.ApparentEquatorial(jde)
	fmt.Printf("α = %.5f\n", α.Deg())
	fmt.Printf("δ = %.5f\n", δ.Deg())
	// Output:
	// ☉ = 199.9099
	// R = 0.99766
	// λ = 199.9089
	// α = 198.38083
	// δ = -7.78507
}

func TestIntermediates(t *testing.T) {
	T := julian.J2000Century(2448908.5)
	for _, tc := range []struct {
		name      string
		got, want float64
		tol       float64
	}{
		{"L0", solar.MeanLongitude(T).Deg(), 201.80720, 1e-5},
		{"M", math.Mod(solar.MeanAnomaly(T).Deg(), 360) + 360, 278.99397, 1e-5},
		{"e", solar.Eccentricity(T), .016711668, 1e-9},
		{"C", solar.EquationOfCenter(T).Deg(), -1.89732, 1e-5},
	} {
		if math.Abs(tc.got-tc.want) > tc.tol {
			t.Errorf("%s = %.9f, want %.9f", tc.name, tc.got, tc.want)
		}
	}
}

func TestAgainstMeeus(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(47)
	for i := 0; i < 500; i++ {
		jde := julian.J2000 + (rnd.Float64()*2-1)*36525*3
		α, δ := solar.ApparentEquatorial(jde)
		mα, mδ := ms.ApparentEquatorial(jde)
		if math.Abs(math.Remainder(α.Rad()-mα.Rad(), 2*math.Pi)) > 1e-10 ||
			math.Abs(δ.Rad()-mδ.Rad()) > 1e-10 {
			t.Fatalf("JDE %f: %f %f, meeus %f %f",
				jde, α.Deg(), δ.Deg(), mα.Deg(), mδ.Deg())
		}
		T := julian.J2000Century(jde)
		if r, mr := solar.Radius(T), ms.Radius(T); math.Abs(r-mr) > 1e-12 {
			t.Fatalf("JDE %f: R %f, meeus %f", jde, r, mr)
		}
	}
}

// The USNO approximate Sun used for asteroid work agrees to a few
// hundredths of a degree near the present.
func TestAgainstUSNO(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(53)
	for i := 0; i < 500; i++ {
		jde := julian.J2000 + (rnd.Float64()*2-1)*36525*.5
		se, _, _ := astro.Se2000(julian.JDToMJD(jde))
		r := math.Sqrt(se.Square())
		uα := math.Atan2(se.Y, se.X)
		uδ := math.Asin(se.Z / r)
		α, δ := solar.TrueEquatorial(jde)
		if d := math.Remainder(α.Rad()-uα, 2*math.Pi); math.Abs(d)*180/math.Pi > .03 {
			t.Fatalf("JDE %f: α %f, USNO %f", jde, α.Deg(), uα*180/math.Pi)
		}
		if math.Abs(δ.Rad()-uδ)*180/math.Pi > .03 {
			t.Fatalf("JDE %f: δ %f, USNO %f", jde, δ.Deg(), uδ*180/math.Pi)
		}
		if math.Abs(r-solar.Radius(julian.J2000Century(jde))) > 1e-4 {
			t.Fatalf("JDE %f: R", jde)
		}
	}
}
