// Public domain.

// Package obscode reads the Minor Planet Center list of observatory codes.
//
// Each line of the list holds a three-character code, east longitude in
// degrees, parallax constants ρ cos φ′ and ρ sin φ′ in units of the
// Earth's equatorial radius, and the observatory name.
package obscode

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
	"strings"

	"github.com/soniakeys/almanac/angle"
	"github.com/soniakeys/almanac/globe"
	"github.com/soniakeys/almanac/transform"
	"github.com/soniakeys/unit"
)

// URL links to the present location of the list, also known as
// obscode.dat.  The page has column headings and an enclosing <pre> tag;
// these are safely ignored.
var URL = "https://www.minorplanetcenter.net/iau/lists/ObsCodes.html"

// ErrNoData is returned when no line of a file parses as a site.
var ErrNoData = errors.New("no observatory codes found")

// Site is an observatory location.
type Site struct {
	Lon                  unit.Angle // east positive, (-180°, 180°]
	RhoCosPhi, RhoSinPhi float64    // Earth equatorial radii
	Name                 string
}

// Geographic returns the site's geographic latitude and longitude, and
// its height in meters, on ellipsoid e.
func (s *Site) Geographic(e globe.Ellipsoid) (g transform.Geographic, h float64) {
	g.Lat, h = e.Geodetic(s.RhoSinPhi, s.RhoCosPhi)
	g.Lon = s.Lon
	return
}

// Map is a map from code to site.  Codes without parallax constants, such
// as those of spacecraft, map to nil.
type Map map[string]*Site

// Fetch gets a fresh copy of the list at URL and writes it to file fn.
func Fetch(fn string) error {
	r, err := http.Get(URL)
	if err != nil {
		return err
	}
	defer r.Body.Close()
	if r.StatusCode != http.StatusOK {
		return fmt.Errorf("%s: %s", URL, r.Status)
	}
	f, err := os.Create(fn)
	if err != nil {
		return err
	}
	if _, err = io.Copy(f, r.Body); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// ReadFile reads a list of observatory codes from file fn.
func ReadFile(fn string) (Map, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	m, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return m, nil
}

// Read reads a list of observatory codes.
//
// Lines that do not parse as data are quietly ignored.
func Read(r io.Reader) (Map, error) {
	m := make(Map)
	for sc := bufio.NewScanner(r); sc.Scan(); {
		code, s, ok := parseLine(sc.Text())
		if ok {
			m[code] = s
		}
	}
	if len(m) == 0 {
		return nil, ErrNoData
	}
	return m, nil
}

// field parses a fixed column field; blank fields are 0.
func field(line string, i, j int) (float64, error) {
	ts := strings.TrimSpace(line[i:j])
	if ts == "" {
		return 0, nil
	}
	return strconv.ParseFloat(ts, 64)
}

func parseLine(line string) (code string, s *Site, ok bool) {
	if len(line) < 30 {
		return // such as <pre>
	}
	lon, err := field(line, 4, 13)
	if err != nil || lon < 0 || lon >= 360 {
		return // such as the column heading line
	}
	rc, err := field(line, 13, 21)
	if err != nil || rc < 0 || rc > 1 {
		return
	}
	rs, err := field(line, 21, 30)
	if err != nil || rs < -1 || rs > 1 {
		return
	}
	code = line[:3]
	if rc == 0 && rs == 0 {
		return code, nil, true
	}
	return code, &Site{
		Lon:       unit.AngleFromDeg(angle.Norm180(lon)),
		RhoCosPhi: rc,
		RhoSinPhi: rs,
		Name:      strings.TrimSpace(line[30:]),
	}, true
}
