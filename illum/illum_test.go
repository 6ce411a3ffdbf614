// Public domain.

package illum_test

import (
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/almanac/illum"
	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

func ExampleFraction() {
	// Venus, 1992 December 20 at 0h TD.
	r, Δ, R := .724604, .910947, .983824
	fmt.Printf("i = %.2f°\n", illum.PhaseAngle(r, Δ, R).Deg())
	fmt.Printf("k = %.3f\n", illum.Fraction(r, Δ, R))
	// Output:
	// i = 72.96°
	// k = 0.647
}

func ExampleVenus() {
	r, Δ, R := .724604, .910947, .983824
	i := illum.PhaseAngle(r, Δ, R)
	fmt.Printf("V = %.1f\n", illum.Venus(r, Δ, i))
	// Output:
	// V = -3.8
}

func ExampleSaturn() {
	// Saturn, 1992 December 16 at 0h UT.
	B := unit.AngleFromDeg(16.442)
	ΔU := unit.AngleFromDeg(4.198)
	fmt.Printf("%+.1f\n", illum.Saturn(9.867882, 10.464606, B, ΔU))
	// Output:
	// +0.9
}

func TestFractionFromPhase(t *testing.T) {
	for _, tc := range []struct{ r, Δ, R float64 }{
		{.724604, .910947, .983824},
		{1.5, .6, 1},
		{5.2, 4.3, 1.01},
		{.39, 1.2, .99},
	} {
		i := illum.PhaseAngle(tc.r, tc.Δ, tc.R)
		k := illum.Fraction(tc.r, tc.Δ, tc.R)
		if math.Abs(k-illum.FractionFromPhase(i)) > 1e-12 {
			t.Fatalf("%+v: k = %f, from phase %f",
				tc, k, illum.FractionFromPhase(i))
		}
		if k < 0 || k > 1 {
			t.Fatalf("%+v: k = %f", tc, k)
		}
	}
	// full phase and new phase
	if k := illum.Fraction(1.5, .5, 1); math.Abs(k-1) > 1e-15 {
		t.Fatal("opposition:", k)
	}
	if k := illum.Fraction(.7, .3, 1); math.Abs(k) > 1e-15 {
		t.Fatal("inferior conjunction:", k)
	}
}

func TestVenus84(t *testing.T) {
	r, Δ, R := .724604, .910947, .983824
	i := illum.PhaseAngle(r, Δ, R)
	if v := illum.Venus84(r, Δ, i); math.Abs(v - -4.2167) > 1e-4 {
		t.Fatal(v)
	}
}

func TestDistanceModulus(t *testing.T) {
	// At unit distances and zero phase only the constant remains.
	for _, tc := range []struct {
		name string
		v, c float64
	}{
		{"Mercury84", illum.Mercury84(1, 1, 0), -.42},
		{"Venus84", illum.Venus84(1, 1, 0), -4.4},
		{"Mars", illum.Mars(1, 1, 0), -1.3},
		{"Mars84", illum.Mars84(1, 1, 0), -1.52},
		{"Jupiter", illum.Jupiter(1, 1), -8.93},
		{"Jupiter84", illum.Jupiter84(1, 1, 0), -9.4},
		{"Uranus", illum.Uranus(1, 1), -6.85},
		{"Uranus84", illum.Uranus84(1, 1), -7.19},
		{"Neptune", illum.Neptune(1, 1), -7.05},
		{"Neptune84", illum.Neptune84(1, 1), -6.87},
		{"Pluto84", illum.Pluto84(1, 1), -1},
		{"Mercury", illum.Mercury(1, 1, unit.AngleFromDeg(50)), 1.16},
	} {
		if math.Abs(tc.v-tc.c) > 1e-12 {
			t.Errorf("%s: %f, want %f", tc.name, tc.v, tc.c)
		}
	}
	// ten times farther is five magnitudes fainter
	if d := illum.Jupiter(10, 1) - illum.Jupiter(1, 1); math.Abs(d-5) > 1e-12 {
		t.Fatal(d)
	}
}

// HG inverts the absolute magnitude computation of astro.HMag.
func TestHG(t *testing.T) {
	const H = 15.3
	for _, tc := range []struct{ r, Δ, i float64 }{
		{2.5, 1.6, 10},
		{1.2, .3, 60},
		{3.1, 2.2, 1},
		{1.05, .1, 110},
	} {
		i := unit.AngleFromDeg(tc.i)
		V := illum.HG(H, .15, tc.r, tc.Δ, i)
		s, c := i.Sincos()
		sov := coord.Cart{X: tc.r}
		oov := coord.Cart{X: tc.Δ * c, Y: tc.Δ * s}
		if h := astro.HMag(&oov, &sov, V, tc.Δ, tc.r); math.Abs(h-H) > 1e-9 {
			t.Fatalf("%+v: V = %f, H = %f, want %f", tc, V, h, H)
		}
	}
	// at zero phase the phase function vanishes
	if V := illum.HG(H, .15, 1, 1, 0); math.Abs(V-H) > 1e-12 {
		t.Fatal(V)
	}
}

func TestSaturnRingTilt(t *testing.T) {
	// In the plane of the ecliptic, 90° from the node, B equals the
	// inclination of the ring plane.
	B := illum.SaturnRingTilt(unit.AngleFromDeg(169.50847+90), 0, 0)
	if math.Abs(B.Deg()-28.075216) > 1e-9 {
		t.Fatal(B.Deg())
	}
	// At the node the Earth is in the ring plane.
	if B := illum.SaturnRingTilt(unit.AngleFromDeg(169.50847), 0, 0); math.Abs(B.Rad()) > 1e-15 {
		t.Fatal(B.Deg())
	}
	// At the pole of the ecliptic, B is the complement of the inclination.
	B = illum.SaturnRingTilt(0, unit.AngleFromDeg(-90), 0)
	if math.Abs(B.Deg()-(90-28.075216)) > 1e-9 {
		t.Fatal(B.Deg())
	}
}
