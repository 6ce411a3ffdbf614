// Public domain.

// Package julian converts between calendar dates and Julian days.
//
// A Julian day is a continuous count of days and fractions from noon,
// January 1, 4713 BC of the Julian calendar.  Years are astronomical, year 0
// is 1 BC and year -4712 is 4713 BC.
package julian

import (
	"errors"
	"math"
	"time"
)

// J2000 is the Julian day of the epoch 2000 January 1.5 TD.
const J2000 = 2451545.0

// JulianCentury and JulianMillennium are lengths in days.
const (
	JulianCentury    = 36525
	JulianMillennium = 365250
)

// GregorianStart is the first Julian day number of the Gregorian calendar,
// 1582 October 15.
const GregorianStart = 2299161

var (
	ErrMonth      = errors.New("month not in range 1-12")
	ErrNegativeJD = errors.New("negative Julian day")
)

// Calendar selects Julian or Gregorian calendar rules.
type Calendar int

const (
	Julian Calendar = iota
	Gregorian
)

func (c Calendar) String() string {
	if c == Gregorian {
		return "Gregorian"
	}
	return "Julian"
}

// Date is a calendar date with a decimal day of month.
//
// Hours, minutes and seconds are folded into Day, see DecimalDay.
type Date struct {
	Year     int
	Month    int
	Day      float64
	Calendar Calendar
}

// DecimalDay folds a time of day into a day of month.
func DecimalDay(day, h, m int, s float64) float64 {
	return float64(day) + float64(h)/24 + float64(m)/1440 + s/86400
}

// JD returns the Julian day of the date.
func (d Date) JD() (float64, error) {
	if d.Month < 1 || d.Month > 12 {
		return 0, ErrMonth
	}
	y, m := d.Year, d.Month
	if m < 3 {
		y--
		m += 12
	}
	var b float64
	if d.Calendar == Gregorian {
		a := math.Floor(float64(y) / 100)
		b = 2 - a + math.Floor(a/4)
	}
	return math.Floor(365.25*float64(y+4716)) +
		math.Floor(30.6001*float64(m+1)) +
		d.Day + b - 1524.5, nil
}

// CalendarGregorianToJD returns the Julian day of a Gregorian calendar date.
func CalendarGregorianToJD(y, m int, d float64) (float64, error) {
	return Date{y, m, d, Gregorian}.JD()
}

// CalendarJulianToJD returns the Julian day of a Julian calendar date.
func CalendarJulianToJD(y, m int, d float64) (float64, error) {
	return Date{y, m, d, Julian}.JD()
}

// JDToCalendar returns the calendar date for a Julian day.
//
// Dates before 1582 October 15 are returned in the Julian calendar, later
// dates in the Gregorian.  Negative Julian days return ErrNegativeJD.
func JDToCalendar(jd float64) (Date, error) {
	if jd < 0 || math.IsNaN(jd) {
		return Date{}, ErrNegativeJD
	}
	zf, f := math.Modf(jd + .5)
	z := int64(zf)
	a := z
	cal := Julian
	if z >= GregorianStart {
		cal = Gregorian
		α := int64(math.Floor((zf - 1867216.25) / 36524.25))
		a = z + 1 + α - α/4
	}
	b := a + 1524
	c := int64(math.Floor((float64(b) - 122.1) / 365.25))
	d := int64(math.Floor(365.25 * float64(c)))
	e := int64(math.Floor(float64(b-d) / 30.6001))
	day := float64(b-d-int64(math.Floor(30.6001*float64(e)))) + f
	month := int(e - 1)
	if e >= 14 {
		month = int(e - 13)
	}
	year := int(c - 4716)
	if month <= 2 {
		year = int(c - 4715)
	}
	return Date{year, month, day, cal}, nil
}

// J2000Century returns the number of Julian centuries since J2000.
//
// This is the time argument T used by most polynomial expressions.
func J2000Century(jd float64) float64 {
	return (jd - J2000) / JulianCentury
}

// J2000Millennium returns the number of Julian millennia since J2000.
func J2000Millennium(jd float64) float64 {
	return (jd - J2000) / JulianMillennium
}

// MJD offset, MJD = JD - 2400000.5.
const mjdOffset = 2400000.5

// JDToMJD converts a Julian day to a modified Julian day.
func JDToMJD(jd float64) float64 { return jd - mjdOffset }

// MJDToJD converts a modified Julian day to a Julian day.
func MJDToJD(mjd float64) float64 { return mjd + mjdOffset }

// unixEpoch is the Julian day of 1970 January 1 0h UT.
const unixEpoch = 2440587.5

// TimeToJD returns the Julian day for t.  Leap seconds are ignored.
func TimeToJD(t time.Time) float64 {
	return unixEpoch + float64(t.Unix())/86400 +
		float64(t.Nanosecond())/86400e9
}

// JDToTime returns the UTC time for a Julian day.
//
// Negative Julian days return ErrNegativeJD.
func JDToTime(jd float64) (time.Time, error) {
	if jd < 0 || math.IsNaN(jd) {
		return time.Time{}, ErrNegativeJD
	}
	d, err := JDToCalendar(jd)
	if err != nil {
		return time.Time{}, err
	}
	if d.Calendar == Julian {
		// time.Time is proleptic Gregorian; go by day count instead.
		sec := (jd - unixEpoch) * 86400
		whole := math.Floor(sec)
		return time.Unix(int64(whole),
			int64((sec-whole)*1e9)).UTC(), nil
	}
	day, frac := math.Modf(d.Day)
	ns := time.Duration(math.Round(frac * 86400e9))
	return time.Date(d.Year, time.Month(d.Month), int(day), 0, 0, 0, 0,
		time.UTC).Add(ns), nil
}

// LeapYearJulian reports whether y is a leap year in the Julian calendar.
func LeapYearJulian(y int) bool {
	return y%4 == 0
}

// LeapYearGregorian reports whether y is a leap year in the Gregorian
// calendar.
func LeapYearGregorian(y int) bool {
	return (y%4 == 0 && y%100 != 0) || y%400 == 0
}

// DayOfWeek returns the day of week for a Julian day, 0 is Sunday.
func DayOfWeek(jd float64) time.Weekday {
	d := math.Mod(math.Floor(jd+1.5), 7)
	if d < 0 {
		d += 7
	}
	return time.Weekday(d)
}

// DayOfYear returns the day number within the year, 1 for January 1.
func DayOfYear(y, m, d int, cal Calendar) int {
	leap := LeapYearJulian(y)
	if cal == Gregorian {
		leap = LeapYearGregorian(y)
	}
	k := 2
	if leap {
		k = 1
	}
	return (275*m)/9 - k*((m+9)/12) + d - 30
}
