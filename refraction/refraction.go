// Public domain.

// Package refraction computes atmospheric refraction near the horizon.
//
// Formulas assume a pressure of 1010 millibars and a temperature of 10°C;
// Correction scales for other conditions.  Accuracy degrades for
// altitudes below about 15°, and the formulas are not meant for negative
// altitudes.  None of this is enforced.
package refraction

import (
	"math"

	"github.com/soniakeys/unit"
)

// Bennett returns refraction for apparent (observed) altitude h0.
//
// Results are accurate to 0.07′ for all altitudes from 0 to 90°.
func Bennett(h0 unit.Angle) unit.Angle {
	hd := h0.Deg()
	return unit.AngleFromMin(1 / math.Tan((hd+7.31/(hd+4.4))*math.Pi/180))
}

// Bennett2 is Bennett with a correction term, accurate to 0.015′ for
// altitudes above about 5°.
func Bennett2(h0 unit.Angle) unit.Angle {
	R := Bennett(h0).Min()
	return unit.AngleFromMin(R - .06*math.Sin((14.7*R+13)*math.Pi/180))
}

// Saemundsson returns refraction for true (airless) altitude h.
//
// Results are consistent with Bennett to about 4″.
func Saemundsson(h unit.Angle) unit.Angle {
	hd := h.Deg()
	return unit.AngleFromMin(1.02 / math.Tan((hd+10.3/(hd+5.11))*math.Pi/180))
}

// Correction scales refraction R for pressure P in millibars and
// temperature T in °C.
func Correction(R unit.Angle, P, T float64) unit.Angle {
	return R.Mul(P / 1010 * 283 / (273 + T))
}

// Apparent returns the apparent altitude of a body at true altitude h.
func Apparent(h unit.Angle) unit.Angle {
	return h + Saemundsson(h)
}

// True returns the true altitude of a body observed at apparent
// altitude h0.
func True(h0 unit.Angle) unit.Angle {
	return h0 - Bennett(h0)
}
