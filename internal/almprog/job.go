// Public domain.

package almprog

import (
	"errors"
	"fmt"
	"log"
	"math"
	"os"
	"time"

	"github.com/naoina/toml"
	"github.com/soniakeys/almanac/globe"
	"github.com/soniakeys/almanac/internal/obscode"
	pe "github.com/soniakeys/almanac/planetelements"
)

// job is the content of a job file.
type job struct {
	Date        time.Time // instant of the report, UT
	Lat         number    // degrees, north positive
	Lon         number    // degrees, east positive
	Height      number    // meters above sea level
	DeltaT      number    // TD − UT, seconds
	Pressure    number    // millibars
	Temperature number    // °C
	Sun, Moon   bool
	Bodies      []string // planet names
	Site        string   // MPC observatory code, overrides Lat, Lon, Height
	ObsCodes    string   // MPC observatory code file

	planets []pe.Body // parsed Bodies
}

var errField = errors.New("invalid job field")

// number is a numeric job field.  It takes TOML integers as well as floats,
// so that Height = 46 reads the same as Height = 46.0.
type number float64

func (n *number) UnmarshalTOML(decode func(interface{}) error) error {
	var f float64
	if decode(&f) == nil {
		*n = number(f)
		return nil
	}
	var i int64
	if err := decode(&i); err != nil {
		return err
	}
	*n = number(i)
	return nil
}

// defaultJob reports on everything for Greenwich at the current time.
func defaultJob() *job {
	return &job{
		Date:        time.Now().UTC(),
		Lat:         51.4769,
		Lon:         -.0005,
		Height:      46,
		DeltaT:      69,
		Pressure:    1010,
		Temperature: 10,
		Sun:         true,
		Moon:        true,
		Bodies: []string{"Mercury", "Venus", "Mars",
			"Jupiter", "Saturn", "Uranus", "Neptune"},
		ObsCodes: "obscode.dat",
	}
}

// readJob reads and validates a job file.  An empty file name gives the
// default job.  Fields missing from the file keep their default values.
func readJob(fn string) (*job, error) {
	j := defaultJob()
	if fn != "" {
		b, err := os.ReadFile(fn)
		if err != nil {
			return nil, err
		}
		if err := parseJob(b, j); err != nil {
			return nil, fmt.Errorf("%s: %w", fn, err)
		}
	}
	if j.Site != "" {
		m, err := readObsCodes(j.ObsCodes)
		if err != nil {
			return nil, err
		}
		if err := j.applySite(m); err != nil {
			return nil, err
		}
	}
	return j, j.validate()
}

// readObsCodes reads the observatory code file, fetching a fresh copy if
// the file cannot be read.
func readObsCodes(fn string) (obscode.Map, error) {
	m, readErr := obscode.ReadFile(fn)
	if readErr == nil {
		return m, nil
	}
	if err := obscode.Fetch(fn); err != nil {
		log.Println(readErr) // show error from read attempt,
		return nil, err      // and error from download attempt
	}
	// retry with downloaded file
	return obscode.ReadFile(fn)
}

// applySite replaces the observer location with that of an MPC site.
func (j *job) applySite(m obscode.Map) error {
	s, ok := m[j.Site]
	switch {
	case !ok:
		return fmt.Errorf("Site %q: %w", j.Site, errField)
	case s == nil:
		return fmt.Errorf("Site %q, no parallax constants: %w", j.Site, errField)
	}
	g, h := s.Geographic(globe.Earth76)
	j.Lat, j.Lon, j.Height = number(g.Lat.Deg()), number(g.Lon.Deg()), number(h)
	return nil
}

// parseJob decodes TOML job text over j.
func parseJob(b []byte, j *job) error {
	return toml.Unmarshal(b, j)
}

func (j *job) validate() error {
	switch {
	case math.IsNaN(float64(j.Lat)) || j.Lat < -90 || j.Lat > 90:
		return fmt.Errorf("Lat %g: %w", j.Lat, errField)
	case math.IsNaN(float64(j.Lon)) || j.Lon < -180 || j.Lon > 360:
		return fmt.Errorf("Lon %g: %w", j.Lon, errField)
	case j.Height < -500 || j.Height > 1e4:
		return fmt.Errorf("Height %g: %w", j.Height, errField)
	case math.Abs(float64(j.DeltaT)) > 1e5:
		return fmt.Errorf("DeltaT %g: %w", j.DeltaT, errField)
	case j.Pressure < 0:
		return fmt.Errorf("Pressure %g: %w", j.Pressure, errField)
	case j.Temperature <= -273:
		return fmt.Errorf("Temperature %g: %w", j.Temperature, errField)
	case j.Date.IsZero():
		return fmt.Errorf("Date: %w", errField)
	}
	j.planets = j.planets[:0]
	for _, s := range j.Bodies {
		b, err := pe.ParseBody(s)
		if err != nil {
			return fmt.Errorf("Bodies: %w", err)
		}
		if b == pe.EarthMoon {
			return fmt.Errorf("Bodies %q: %w", s, errField)
		}
		j.planets = append(j.planets, b)
	}
	if !j.Sun && !j.Moon && len(j.planets) == 0 {
		return fmt.Errorf("nothing to report: %w", errField)
	}
	return nil
}
