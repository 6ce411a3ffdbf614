// Public domain.

package nutation

import "github.com/soniakeys/almanac/series"

// Periodic terms for nutation in longitude (A, AT, sine) and obliquity
// (B, BT, cosine), unit 0.0001″.  Rates are per Julian century.
// Multipliers are of D, M, M′, F, Ω.
var table22A = []series.Term{
	{K: [5]int{0, 0, 0, 0, 1}, A: -171996, AT: -174.2, B: 92025, BT: 8.9},
	{K: [5]int{-2, 0, 0, 2, 2}, A: -13187, AT: -1.6, B: 5736, BT: -3.1},
	{K: [5]int{0, 0, 0, 2, 2}, A: -2274, AT: -.2, B: 977, BT: -.5},
	{K: [5]int{0, 0, 0, 0, 2}, A: 2062, AT: .2, B: -895, BT: .5},
	{K: [5]int{0, 1, 0, 0, 0}, A: 1426, AT: -3.4, B: 54, BT: -.1},
	{K: [5]int{0, 0, 1, 0, 0}, A: 712, AT: .1, B: -7},
	{K: [5]int{-2, 1, 0, 2, 2}, A: -517, AT: 1.2, B: 224, BT: -.6},
	{K: [5]int{0, 0, 0, 2, 1}, A: -386, AT: -.4, B: 200},
	{K: [5]int{0, 0, 1, 2, 2}, A: -301, B: 129, BT: -.1},
	{K: [5]int{-2, -1, 0, 2, 2}, A: 217, AT: -.5, B: -95, BT: .3},
	{K: [5]int{-2, 0, 1, 0, 0}, A: -158},
	{K: [5]int{-2, 0, 0, 2, 1}, A: 129, AT: .1, B: -70},
	{K: [5]int{0, 0, -1, 2, 2}, A: 123, B: -53},
	{K: [5]int{2, 0, 0, 0, 0}, A: 63},
	{K: [5]int{0, 0, 1, 0, 1}, A: 63, AT: .1, B: -33},
	{K: [5]int{2, 0, -1, 2, 2}, A: -59, B: 26},
	{K: [5]int{0, 0, -1, 0, 1}, A: -58, AT: -.1, B: 32},
	{K: [5]int{0, 0, 1, 2, 1}, A: -51, B: 27},
	{K: [5]int{-2, 0, 2, 0, 0}, A: 48},
	{K: [5]int{0, 0, -2, 2, 1}, A: 46, B: -24},
	{K: [5]int{2, 0, 0, 2, 2}, A: -38, B: 16},
	{K: [5]int{0, 0, 2, 2, 2}, A: -31, B: 13},
	{K: [5]int{0, 0, 2, 0, 0}, A: 29},
	{K: [5]int{-2, 0, 1, 2, 2}, A: 29, B: -12},
	{K: [5]int{0, 0, 0, 2, 0}, A: 26},
	{K: [5]int{-2, 0, 0, 2, 0}, A: -22},
	{K: [5]int{0, 0, -1, 2, 1}, A: 21, B: -10},
	{K: [5]int{0, 2, 0, 0, 0}, A: 17, AT: -.1},
	{K: [5]int{2, 0, -1, 0, 1}, A: 16, B: -8},
	{K: [5]int{-2, 2, 0, 2, 2}, A: -16, AT: .1, B: 7},
	{K: [5]int{0, 1, 0, 0, 1}, A: -15, B: 9},
	{K: [5]int{-2, 0, 1, 0, 1}, A: -13, B: 7},
	{K: [5]int{0, -1, 0, 0, 1}, A: -12, B: 6},
	{K: [5]int{0, 0, 2, -2, 0}, A: 11},
	{K: [5]int{2, 0, -1, 2, 1}, A: -10, B: 5},
	{K: [5]int{2, 0, 1, 2, 2}, A: -8, B: 3},
	{K: [5]int{0, 1, 0, 2, 2}, A: 7, B: -3},
	{K: [5]int{-2, 1, 1, 0, 0}, A: -7},
	{K: [5]int{0, -1, 0, 2, 2}, A: -7, B: 3},
	{K: [5]int{2, 0, 0, 2, 1}, A: -7, B: 3},
	{K: [5]int{2, 0, 1, 0, 0}, A: 6},
	{K: [5]int{-2, 0, 2, 2, 2}, A: 6, B: -3},
	{K: [5]int{-2, 0, 1, 2, 1}, A: 6, B: -3},
	{K: [5]int{2, 0, -2, 0, 1}, A: -6, B: 3},
	{K: [5]int{2, 0, 0, 0, 1}, A: -6, B: 3},
	{K: [5]int{0, -1, 1, 0, 0}, A: 5},
	{K: [5]int{-2, -1, 0, 2, 1}, A: -5, B: 3},
	{K: [5]int{-2, 0, 0, 0, 1}, A: -5, B: 3},
	{K: [5]int{0, 0, 2, 2, 1}, A: -5, B: 3},
	{K: [5]int{-2, 0, 2, 0, 1}, A: 4},
	{K: [5]int{-2, 1, 0, 2, 1}, A: 4},
	{K: [5]int{0, 0, 1, -2, 0}, A: 4},
	{K: [5]int{-1, 0, 1, 0, 0}, A: -4},
	{K: [5]int{-2, 1, 0, 0, 0}, A: -4},
	{K: [5]int{1, 0, 0, 0, 0}, A: -4},
	{K: [5]int{0, 0, 1, 2, 0}, A: 3},
	{K: [5]int{0, 0, -2, 2, 2}, A: -3},
	{K: [5]int{-1, -1, 1, 0, 0}, A: -3},
	{K: [5]int{0, 1, 1, 0, 0}, A: -3},
	{K: [5]int{0, -1, 1, 2, 2}, A: -3},
	{K: [5]int{2, -1, -1, 2, 2}, A: -3},
	{K: [5]int{0, 0, 3, 2, 2}, A: -3},
	{K: [5]int{2, -1, 0, 2, 2}, A: -3},
}
