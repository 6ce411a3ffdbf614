// Public domain.

// Package kepler solves Kepler's equation, M = E − e sin E, for the
// eccentric anomaly E of an elliptic orbit.
package kepler

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/unit"
)

// DefaultMaxIterations is the iteration cap used by Kepler2 and suggested
// for Kepler1.
const DefaultMaxIterations = 100

var (
	// ErrNoConvergence is returned when an iterative solution does not
	// reach the requested tolerance within its iteration cap, or cannot
	// converge at all.
	ErrNoConvergence = errors.New("no convergence")
	// ErrEccentricity is returned for a negative eccentricity.
	ErrEccentricity = errors.New("negative eccentricity")
)

func check(e float64) error {
	switch {
	case e < 0:
		return fmt.Errorf("kepler: e = %g: %w", e, ErrEccentricity)
	case e >= 1:
		return fmt.Errorf("kepler: e = %g, orbit not elliptic: %w",
			e, ErrNoConvergence)
	}
	return nil
}

// Kepler1 solves Kepler's equation by fixed point iteration,
// E(n+1) = M + e sin E(n), starting from E = M.
//
// Iteration stops when successive values differ by less than tol radians.
// It converges for any e < 1 but slowly as e approaches 1; more than
// maxIter iterations gives an error wrapping ErrNoConvergence.  So does
// e ≥ 1.
func Kepler1(e float64, M unit.Angle, tol float64, maxIter int) (E unit.Angle, err error) {
	if err = check(e); err != nil {
		return
	}
	E = M
	for i := 0; i < maxIter; i++ {
		E0 := E
		E = M + unit.Angle(e*E0.Sin())
		if math.Abs((E - E0).Rad()) < tol {
			return
		}
	}
	return E, fmt.Errorf("kepler: e = %g, M = %g rad, %d iterations: %w",
		e, M.Rad(), maxIter, ErrNoConvergence)
}

// Kepler2 solves Kepler's equation by Newton's method with Danby's
// starting value, iterating until the correction is less than tol radians.
//
// Convergence is fast for all e < 1, typically under ten iterations.
func Kepler2(e float64, M unit.Angle, tol float64) (E unit.Angle, err error) {
	if err = check(e); err != nil {
		return
	}
	// work with M in (-π, π] and add back the whole revolutions
	m := math.Remainder(M.Rad(), 2*math.Pi)
	rev := M.Rad() - m
	x := m + .85*e*math.Copysign(1, math.Sin(m))
	for i := 0; i < DefaultMaxIterations; i++ {
		s, c := math.Sincos(x)
		d := (x - e*s - m) / (1 - e*c)
		x -= d
		if math.Abs(d) < tol {
			return unit.Angle(rev + x), nil
		}
	}
	return unit.Angle(rev + x), fmt.Errorf("kepler: e = %g, M = %g rad: %w",
		e, M.Rad(), ErrNoConvergence)
}

// Kepler3 solves Kepler's equation by binary search (Sinnott's method).
//
// It always terminates and is good to full float64 precision for any
// e in [0, 1).  The result is in the range (-π, π].
func Kepler3(e float64, M unit.Angle) unit.Angle {
	m := math.Remainder(M.Rad(), 2*math.Pi)
	f := 1.
	if m < 0 {
		f = -1
		m = -m
	}
	E0 := math.Pi * .5
	d := math.Pi * .25
	for i := 0; i < 53; i++ {
		M1 := E0 - e*math.Sin(E0)
		if m-M1 < 0 {
			E0 -= d
		} else {
			E0 += d
		}
		d *= .5
	}
	return unit.Angle(E0 * f)
}

// Kepler4 returns an approximate solution to Kepler's equation,
// tan E = sin M / (cos M − e).
//
// It is good only for small e; at e = 0.1 the error reaches 0.01°.
func Kepler4(e float64, M unit.Angle) unit.Angle {
	s, c := M.Sincos()
	return unit.Angle(math.Atan2(s, c-e))
}

// True returns the true anomaly ν for eccentric anomaly E and
// eccentricity e.
func True(E unit.Angle, e float64) unit.Angle {
	s, c := (E * .5).Sincos()
	return unit.Angle(2 * math.Atan2(math.Sqrt(1+e)*s, math.Sqrt(1-e)*c))
}

// Radius returns the radius vector r for eccentric anomaly E,
// eccentricity e and semimajor axis a.  r is in the units of a.
func Radius(E unit.Angle, e, a float64) float64 {
	return a * (1 - e*E.Cos())
}
