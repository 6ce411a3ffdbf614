// Public domain.

package moonposition

import "github.com/soniakeys/almanac/series"

// Periodic terms for the longitude (A, sine) and distance (B, cosine) of
// the Moon.  Units are 0.000001° and 0.001 km.
var tableLR = []series.Term{
	{K: [5]int{0, 0, 1, 0, 0}, A: 6288774, B: -20905355},
	{K: [5]int{2, 0, -1, 0, 0}, A: 1274027, B: -3699111},
	{K: [5]int{2, 0, 0, 0, 0}, A: 658314, B: -2955968},
	{K: [5]int{0, 0, 2, 0, 0}, A: 213618, B: -569925},
	{K: [5]int{0, 1, 0, 0, 0}, A: -185116, B: 48888},
	{K: [5]int{0, 0, 0, 2, 0}, A: -114332, B: -3149},
	{K: [5]int{2, 0, -2, 0, 0}, A: 58793, B: 246158},
	{K: [5]int{2, -1, -1, 0, 0}, A: 57066, B: -152138},
	{K: [5]int{2, 0, 1, 0, 0}, A: 53322, B: -170733},
	{K: [5]int{2, -1, 0, 0, 0}, A: 45758, B: -204586},
	{K: [5]int{0, 1, -1, 0, 0}, A: -40923, B: -129620},
	{K: [5]int{1, 0, 0, 0, 0}, A: -34720, B: 108743},
	{K: [5]int{0, 1, 1, 0, 0}, A: -30383, B: 104755},
	{K: [5]int{2, 0, 0, -2, 0}, A: 15327, B: 10321},
	{K: [5]int{0, 0, 1, 2, 0}, A: -12528},
	{K: [5]int{0, 0, 1, -2, 0}, A: 10980, B: 79661},
	{K: [5]int{4, 0, -1, 0, 0}, A: 10675, B: -34782},
	{K: [5]int{0, 0, 3, 0, 0}, A: 10034, B: -23210},
	{K: [5]int{4, 0, -2, 0, 0}, A: 8548, B: -21636},
	{K: [5]int{2, 1, -1, 0, 0}, A: -7888, B: 24208},
	{K: [5]int{2, 1, 0, 0, 0}, A: -6766, B: 30824},
	{K: [5]int{1, 0, -1, 0, 0}, A: -5163, B: -8379},
	{K: [5]int{1, 1, 0, 0, 0}, A: 4987, B: -16675},
	{K: [5]int{2, -1, 1, 0, 0}, A: 4036, B: -12831},
	{K: [5]int{2, 0, 2, 0, 0}, A: 3994, B: -10445},
	{K: [5]int{4, 0, 0, 0, 0}, A: 3861, B: -11650},
	{K: [5]int{2, 0, -3, 0, 0}, A: 3665, B: 14403},
	{K: [5]int{0, 1, -2, 0, 0}, A: -2689, B: -7003},
	{K: [5]int{2, 0, -1, 2, 0}, A: -2602},
	{K: [5]int{2, -1, -2, 0, 0}, A: 2390, B: 10056},
	{K: [5]int{1, 0, 1, 0, 0}, A: -2348, B: 6322},
	{K: [5]int{2, -2, 0, 0, 0}, A: 2236, B: -9884},
	{K: [5]int{0, 1, 2, 0, 0}, A: -2120, B: 5751},
	{K: [5]int{0, 2, 0, 0, 0}, A: -2069},
	{K: [5]int{2, -2, -1, 0, 0}, A: 2048, B: -4950},
	{K: [5]int{2, 0, 1, -2, 0}, A: -1773, B: 4130},
	{K: [5]int{2, 0, 0, 2, 0}, A: -1595},
	{K: [5]int{4, -1, -1, 0, 0}, A: 1215, B: -3958},
	{K: [5]int{0, 0, 2, 2, 0}, A: -1110},
	{K: [5]int{3, 0, -1, 0, 0}, A: -892, B: 3258},
	{K: [5]int{2, 1, 1, 0, 0}, A: -810, B: 2616},
	{K: [5]int{4, -1, -2, 0, 0}, A: 759, B: -1897},
	{K: [5]int{0, 2, -1, 0, 0}, A: -713, B: -2117},
	{K: [5]int{2, 2, -1, 0, 0}, A: -700, B: 2354},
	{K: [5]int{2, 1, -2, 0, 0}, A: 691},
	{K: [5]int{2, -1, 0, -2, 0}, A: 596},
	{K: [5]int{4, 0, 1, 0, 0}, A: 549, B: -1423},
	{K: [5]int{0, 0, 4, 0, 0}, A: 537, B: -1117},
	{K: [5]int{4, -1, 0, 0, 0}, A: 520, B: -1571},
	{K: [5]int{1, 0, -2, 0, 0}, A: -487, B: -1739},
	{K: [5]int{2, 1, 0, -2, 0}, A: -399},
	{K: [5]int{0, 0, 2, -2, 0}, A: -381, B: -4421},
	{K: [5]int{1, 1, 1, 0, 0}, A: 351},
	{K: [5]int{3, 0, -2, 0, 0}, A: -340},
	{K: [5]int{4, 0, -3, 0, 0}, A: 330},
	{K: [5]int{2, -1, 2, 0, 0}, A: 327},
	{K: [5]int{0, 2, 1, 0, 0}, A: -323, B: 1165},
	{K: [5]int{1, 1, -1, 0, 0}, A: 299},
	{K: [5]int{2, 0, 3, 0, 0}, A: 294},
	{K: [5]int{2, 0, -1, -2, 0}, B: 8752},
}

// Periodic terms for the latitude of the Moon, unit 0.000001°.
var tableB = []series.Term{
	{K: [5]int{0, 0, 0, 1, 0}, A: 5128122},
	{K: [5]int{0, 0, 1, 1, 0}, A: 280602},
	{K: [5]int{0, 0, 1, -1, 0}, A: 277693},
	{K: [5]int{2, 0, 0, -1, 0}, A: 173237},
	{K: [5]int{2, 0, -1, 1, 0}, A: 55413},
	{K: [5]int{2, 0, -1, -1, 0}, A: 46271},
	{K: [5]int{2, 0, 0, 1, 0}, A: 32573},
	{K: [5]int{0, 0, 2, 1, 0}, A: 17198},
	{K: [5]int{2, 0, 1, -1, 0}, A: 9266},
	{K: [5]int{0, 0, 2, -1, 0}, A: 8822},
	{K: [5]int{2, -1, 0, -1, 0}, A: 8216},
	{K: [5]int{2, 0, -2, -1, 0}, A: 4324},
	{K: [5]int{2, 0, 1, 1, 0}, A: 4200},
	{K: [5]int{2, 1, 0, -1, 0}, A: -3359},
	{K: [5]int{2, -1, -1, 1, 0}, A: 2463},
	{K: [5]int{2, -1, 0, 1, 0}, A: 2211},
	{K: [5]int{2, -1, -1, -1, 0}, A: 2065},
	{K: [5]int{0, 1, -1, -1, 0}, A: -1870},
	{K: [5]int{4, 0, -1, -1, 0}, A: 1828},
	{K: [5]int{0, 1, 0, 1, 0}, A: -1794},
	{K: [5]int{0, 0, 0, 3, 0}, A: -1749},
	{K: [5]int{0, 1, -1, 1, 0}, A: -1565},
	{K: [5]int{1, 0, 0, 1, 0}, A: -1491},
	{K: [5]int{0, 1, 1, 1, 0}, A: -1475},
	{K: [5]int{0, 1, 1, -1, 0}, A: -1410},
	{K: [5]int{0, 1, 0, -1, 0}, A: -1344},
	{K: [5]int{1, 0, 0, -1, 0}, A: -1335},
	{K: [5]int{0, 0, 3, 1, 0}, A: 1107},
	{K: [5]int{4, 0, 0, -1, 0}, A: 1021},
	{K: [5]int{4, 0, -1, 1, 0}, A: 833},
	{K: [5]int{0, 0, 1, -3, 0}, A: 777},
	{K: [5]int{4, 0, -2, 1, 0}, A: 671},
	{K: [5]int{2, 0, 0, -3, 0}, A: 607},
	{K: [5]int{2, 0, 2, -1, 0}, A: 596},
	{K: [5]int{2, -1, 1, -1, 0}, A: 491},
	{K: [5]int{2, 0, -2, 1, 0}, A: -451},
	{K: [5]int{0, 0, 3, -1, 0}, A: 439},
	{K: [5]int{2, 0, 2, 1, 0}, A: 422},
	{K: [5]int{2, 0, -3, -1, 0}, A: 421},
	{K: [5]int{2, 1, -1, 1, 0}, A: -366},
	{K: [5]int{2, 1, 0, 1, 0}, A: -351},
	{K: [5]int{4, 0, 0, 1, 0}, A: 331},
	{K: [5]int{2, -1, 1, 1, 0}, A: 315},
	{K: [5]int{2, -2, 0, -1, 0}, A: 302},
	{K: [5]int{0, 0, 1, 3, 0}, A: -283},
	{K: [5]int{2, 1, 1, -1, 0}, A: -229},
	{K: [5]int{1, 1, 0, -1, 0}, A: 223},
	{K: [5]int{1, 1, 0, 1, 0}, A: 223},
	{K: [5]int{0, 1, -2, -1, 0}, A: -220},
	{K: [5]int{2, 1, -1, -1, 0}, A: -220},
	{K: [5]int{1, 0, 1, 1, 0}, A: -185},
	{K: [5]int{2, -1, -2, -1, 0}, A: 181},
	{K: [5]int{0, 1, 2, 1, 0}, A: -177},
	{K: [5]int{4, 0, -2, -1, 0}, A: 176},
	{K: [5]int{4, -1, -1, -1, 0}, A: 166},
	{K: [5]int{1, 0, 1, -1, 0}, A: -164},
	{K: [5]int{4, 0, 1, -1, 0}, A: 132},
	{K: [5]int{1, 0, -1, -1, 0}, A: -119},
	{K: [5]int{4, -1, 0, -1, 0}, A: 115},
	{K: [5]int{2, -2, 0, 1, 0}, A: 107},
}
