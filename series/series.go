// Public domain.

// Package series evaluates the periodic series of nutation and lunar
// theory.
//
// A series is a table of terms.  Each term holds small integer multipliers
// of the fundamental arguments D, M, M′, F and Ω, and amplitudes for a
// sine and a cosine channel, each optionally varying linearly with time.
// Evaluation forms the argument
//
//	k1·D + k2·M + k3·M′ + k4·F + k5·Ω
//
// for every term and accumulates
//
//	Σ w·(A + T·AT)·sin(argument)
//	Σ w·(B + T·BT)·cos(argument)
//
// where w is a per-term weight, normally 1.  Amplitudes are left in the
// units of the published table; callers scale the sums once afterward.
package series

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
)

// Indexes of the fundamental arguments.
const (
	D     = iota // mean elongation of the Moon from the Sun
	M            // mean anomaly of the Sun (Earth)
	MPrm         // mean anomaly of the Moon
	F            // Moon's argument of latitude
	Omega        // longitude of the ascending node of the Moon's mean orbit
	NArgs
)

// Args holds values of the fundamental arguments, indexed by D, M, MPrm,
// F and Omega.
type Args [NArgs]unit.Angle

// Poly evaluates a polynomial in T with coefficients in degrees, lowest
// power first, and returns the result reduced to [0°, 360°).
func Poly(T float64, c ...float64) unit.Angle {
	return unit.AngleFromDeg(unit.PMod(base.Horner(T, c...), 360))
}

// Term is one row of a periodic series.
type Term struct {
	K     [NArgs]int // multipliers of D, M, M′, F, Ω
	A, AT float64    // sine amplitude and its rate per unit T
	B, BT float64    // cosine amplitude and its rate per unit T
}

// Arg returns the argument of the term for fundamental arguments a.
func (t *Term) Arg(a *Args) float64 {
	var s float64
	for i, k := range t.K {
		if k != 0 {
			s += float64(k) * a[i].Rad()
		}
	}
	return s
}

// Weight returns the factor applied to the amplitudes of a term.
type Weight func(k *[NArgs]int) float64

// Unweighted gives every term weight 1.
func Unweighted(*[NArgs]int) float64 { return 1 }

// Eccentricity returns a weight that multiplies a term by E for each unit
// of its M multiplier, E for M = ±1 and E² for M = ±2.
//
// This accounts for the decreasing eccentricity of Earth's orbit in
// lunar theory.
func Eccentricity(E float64) Weight {
	E2 := E * E
	return func(k *[NArgs]int) float64 {
		switch k[M] {
		case 1, -1:
			return E
		case 2, -2:
			return E2
		case 0:
			return 1
		}
		return math.Pow(E, math.Abs(float64(k[M])))
	}
}

// EarthEccentricity is the factor E of lunar theory,
// 1 − 0.002516·T − 0.0000074·T², T in Julian centuries from J2000.
func EarthEccentricity(T float64) float64 {
	return base.Horner(T, 1, -.002516, -.0000074)
}

// Sum evaluates a series at time T.
//
// A nil w is the same as Unweighted.
func Sum(terms []Term, a *Args, T float64, w Weight) (sin, cos float64) {
	if w == nil {
		w = Unweighted
	}
	for i := range terms {
		t := &terms[i]
		s, c := math.Sincos(t.Arg(a))
		f := w(&t.K)
		if t.A != 0 || t.AT != 0 {
			sin += f * (t.A + T*t.AT) * s
		}
		if t.B != 0 || t.BT != 0 {
			cos += f * (t.B + T*t.BT) * c
		}
	}
	return
}
