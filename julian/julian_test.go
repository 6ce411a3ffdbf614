// Public domain.

package julian_test

import (
	"errors"
	"fmt"
	"math"
	"testing"
	"time"

	"github.com/soniakeys/almanac/julian"
	mj "github.com/soniakeys/meeus/v3/julian"
	xrand "golang.org/x/exp/rand"
)

func ExampleDate_JD() {
	// Launch of Sputnik 1.
	jd, err := julian.Date{1957, 10, 4.81, julian.Gregorian}.JD()
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%.2f\n", jd)
	// Output:
	// 2436116.31
}

func ExampleJDToCalendar() {
	d, err := julian.JDToCalendar(1842713)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Printf("%d %d %.1f %s\n", d.Year, d.Month, d.Day, d.Calendar)
	// Output:
	// 333 1 27.5 Julian
}

var jdTestCases = []struct {
	date julian.Date
	jd   float64
}{
	{julian.Date{1957, 10, 4.81, julian.Gregorian}, 2436116.31},
	{julian.Date{-4712, 1, 1.5, julian.Julian}, 0},
	{julian.Date{333, 1, 27.5, julian.Julian}, 1842713},
	{julian.Date{2000, 1, 1.5, julian.Gregorian}, 2451545},
	{julian.Date{1999, 1, 1, julian.Gregorian}, 2451179.5},
	{julian.Date{1987, 1, 27, julian.Gregorian}, 2446822.5},
	{julian.Date{1987, 6, 19.5, julian.Gregorian}, 2446966},
	{julian.Date{1988, 1, 27, julian.Gregorian}, 2447187.5},
	{julian.Date{1988, 6, 19.5, julian.Gregorian}, 2447332},
	{julian.Date{1900, 1, 1, julian.Gregorian}, 2415020.5},
	{julian.Date{1600, 1, 1, julian.Gregorian}, 2305447.5},
	{julian.Date{1600, 12, 31, julian.Gregorian}, 2305812.5},
	{julian.Date{837, 4, 10.3, julian.Julian}, 2026871.8},
	{julian.Date{-123, 12, 31, julian.Julian}, 1676496.5},
	{julian.Date{-122, 1, 1, julian.Julian}, 1676497.5},
	{julian.Date{-1000, 7, 12.5, julian.Julian}, 1356001},
	{julian.Date{-1000, 2, 29, julian.Julian}, 1355866.5},
	{julian.Date{-1001, 8, 17.9, julian.Julian}, 1355671.4},
	{julian.Date{-584, 5, 28.63, julian.Julian}, 1507900.13},
	// the calendar reform
	{julian.Date{1582, 10, 4, julian.Julian}, 2299159.5},
	{julian.Date{1582, 10, 15, julian.Gregorian}, 2299160.5},
}

func TestJD(t *testing.T) {
	for _, tc := range jdTestCases {
		jd, err := tc.date.JD()
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(jd-tc.jd) > 1e-6 {
			t.Fatalf("%+v: JD = %.6f, want %.6f", tc.date, jd, tc.jd)
		}
		d, err := julian.JDToCalendar(tc.jd)
		if err != nil {
			t.Fatal(err)
		}
		if d.Year != tc.date.Year || d.Month != tc.date.Month ||
			math.Abs(d.Day-tc.date.Day) > 1e-6 ||
			d.Calendar != tc.date.Calendar {
			t.Fatalf("JDToCalendar(%.6f) = %+v, want %+v", tc.jd, d, tc.date)
		}
	}
}

func TestJDErrors(t *testing.T) {
	if _, err := (julian.Date{2000, 13, 1, julian.Gregorian}).JD(); !errors.Is(err, julian.ErrMonth) {
		t.Fatal("month 13:", err)
	}
	if _, err := (julian.Date{2000, 0, 1, julian.Julian}).JD(); !errors.Is(err, julian.ErrMonth) {
		t.Fatal("month 0:", err)
	}
	if _, err := julian.JDToCalendar(-.01); !errors.Is(err, julian.ErrNegativeJD) {
		t.Fatal("negative JD:", err)
	}
	if _, err := julian.JDToTime(-1); !errors.Is(err, julian.ErrNegativeJD) {
		t.Fatal("JDToTime negative JD:", err)
	}
}

// Round trip every day over a span crossing the calendar reform, and random
// instants over the whole valid range.
func TestCalendarRoundTrip(t *testing.T) {
	for jd := 2299000.5; jd < 2299400; jd++ {
		d, err := julian.JDToCalendar(jd)
		if err != nil {
			t.Fatal(err)
		}
		back, err := d.JD()
		if err != nil {
			t.Fatal(err)
		}
		if back != jd {
			t.Fatalf("JD %.1f -> %+v -> %.6f", jd, d, back)
		}
	}
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(3)
	for i := 0; i < 20000; i++ {
		jd := rnd.Float64() * 3e6
		d, err := julian.JDToCalendar(jd)
		if err != nil {
			t.Fatal(err)
		}
		if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day >= 32 {
			t.Fatalf("JD %f -> %+v", jd, d)
		}
		back, err := d.JD()
		if err != nil {
			t.Fatal(err)
		}
		if math.Abs(back-jd) > 1e-6 {
			t.Fatalf("JD %f -> %+v -> %f", jd, d, back)
		}
	}
}

// Gregorian conversion agrees with the meeus julian package.
func TestGregorianAgainstMeeus(t *testing.T) {
	rnd := xrand.New(&xrand.PCGSource{})
	rnd.Seed(5)
	for i := 0; i < 2000; i++ {
		y := 1583 + rnd.Intn(1000)
		m := 1 + rnd.Intn(12)
		d := 1 + rnd.Float64()*27
		got, err := julian.CalendarGregorianToJD(y, m, d)
		if err != nil {
			t.Fatal(err)
		}
		want := mj.CalendarGregorianToJD(y, m, d)
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("%d-%d-%f: got %f, meeus %f", y, m, d, got, want)
		}
	}
}

func TestCenturies(t *testing.T) {
	if c := julian.J2000Century(2446895.5); math.Abs(c - -.127296372348) > 1e-12 {
		t.Fatal("J2000Century:", c)
	}
	if m := julian.J2000Millennium(julian.J2000 + 365250); m != 1 {
		t.Fatal("J2000Millennium:", m)
	}
	if mjd := julian.JDToMJD(2400000.5); mjd != 0 {
		t.Fatal("JDToMJD:", mjd)
	}
	if jd := julian.MJDToJD(51544.5); jd != julian.J2000 {
		t.Fatal("MJDToJD:", jd)
	}
}

func TestTime(t *testing.T) {
	for _, tc := range []struct {
		t  time.Time
		jd float64
	}{
		{time.Date(2000, 1, 1, 12, 0, 0, 0, time.UTC), 2451545},
		{time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), 2440587.5},
		{time.Date(1957, 10, 4, 19, 26, 24, 0, time.UTC), 2436116.31},
		{time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), 2460310.5},
	} {
		jd := julian.TimeToJD(tc.t)
		if math.Abs(jd-tc.jd) > 1e-8 {
			t.Fatalf("TimeToJD(%v) = %f, want %f", tc.t, jd, tc.jd)
		}
		back, err := julian.JDToTime(jd)
		if err != nil {
			t.Fatal(err)
		}
		if d := back.Sub(tc.t); d > time.Millisecond || d < -time.Millisecond {
			t.Fatalf("JDToTime(%f) = %v, want %v", jd, back, tc.t)
		}
	}
	// before the reform, still by day count
	tm, err := julian.JDToTime(2299159.5)
	if err != nil {
		t.Fatal(err)
	}
	if y, m, d := tm.Date(); y != 1582 || m != time.October || d != 14 {
		t.Fatal("proleptic Gregorian date of 1582 Oct 4 Julian:", tm)
	}
}

func TestDayOfWeek(t *testing.T) {
	// 1954 June 30 was a Wednesday.
	if wd := julian.DayOfWeek(2434923.5); wd != time.Wednesday {
		t.Fatal(wd)
	}
	if wd := julian.DayOfWeek(julian.J2000); wd != time.Saturday {
		t.Fatal(wd)
	}
	// JD 0 is a Monday; the week continues before it.
	for _, tc := range []struct {
		jd float64
		wd time.Weekday
	}{
		{0, time.Monday},
		{-1, time.Sunday},
		{-3.2, time.Friday},
		{-1.5, time.Sunday},
		{-1.6, time.Saturday},
		{-700.25, time.Monday},
	} {
		if wd := julian.DayOfWeek(tc.jd); wd != tc.wd {
			t.Fatalf("DayOfWeek(%g) = %d, want %s", tc.jd, int(wd), tc.wd)
		}
	}
}

func TestDayOfYear(t *testing.T) {
	if n := julian.DayOfYear(1978, 11, 14, julian.Gregorian); n != 318 {
		t.Fatal(n)
	}
	if n := julian.DayOfYear(1988, 4, 22, julian.Gregorian); n != 113 {
		t.Fatal(n)
	}
	// 1900 is a leap year only in the Julian calendar.
	if n := julian.DayOfYear(1900, 3, 1, julian.Julian); n != 61 {
		t.Fatal(n)
	}
	if n := julian.DayOfYear(1900, 3, 1, julian.Gregorian); n != 60 {
		t.Fatal(n)
	}
}

func TestLeapYear(t *testing.T) {
	for _, tc := range []struct {
		y         int
		jul, greg bool
	}{
		{900, true, false},
		{1236, true, true},
		{750, false, false},
		{1429, false, false},
		{1700, true, false},
		{2000, true, true},
	} {
		if julian.LeapYearJulian(tc.y) != tc.jul ||
			julian.LeapYearGregorian(tc.y) != tc.greg {
			t.Fatal("leap year", tc.y)
		}
	}
}

func TestEaster(t *testing.T) {
	for _, tc := range []struct{ y, m, d int }{
		{1991, 3, 31},
		{1992, 4, 19},
		{1993, 4, 11},
		{1954, 4, 18},
		{2000, 4, 23},
		{1818, 3, 22},
	} {
		if m, d := julian.GregorianEaster(tc.y); m != tc.m || d != tc.d {
			t.Fatalf("GregorianEaster(%d) = %d %d, want %d %d",
				tc.y, m, d, tc.m, tc.d)
		}
	}
	for _, y := range []int{179, 711, 1243} {
		if m, d := julian.JulianEaster(y); m != 4 || d != 12 {
			t.Fatalf("JulianEaster(%d) = %d %d", y, m, d)
		}
	}
}
