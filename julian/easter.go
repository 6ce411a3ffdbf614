// Public domain.

package julian

// GregorianEaster returns the month and day of Easter Sunday in the
// Gregorian calendar for year y.
//
// Valid for all years after 1582.
func GregorianEaster(y int) (month, day int) {
	a := y % 19
	b, c := y/100, y%100
	d, e := b/4, b%4
	f := (b + 8) / 25
	g := (b - f + 1) / 3
	h := (19*a + b - d - g + 15) % 30
	i, k := c/4, c%4
	l := (32 + 2*e + 2*i - h - k) % 7
	m := (a + 11*h + 22*l) / 451
	n := h + l - 7*m + 114
	return n / 31, n%31 + 1
}

// JulianEaster returns the month and day of Easter Sunday in the Julian
// calendar for year y.
func JulianEaster(y int) (month, day int) {
	a, b, c := y%4, y%7, y%19
	d := (19*c + 15) % 30
	e := (2*a + 4*b - d + 34) % 7
	n := d + e + 114
	return n / 31, n%31 + 1
}
