// Public domain.

// Package almprog is the almanac command.
package almprog

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"

	"github.com/charmbracelet/lipgloss"
	"github.com/soniakeys/almanac/angle"
	"github.com/soniakeys/exit"
	"github.com/soniakeys/sexagesimal"
)

const versionString = "almanac version 1.0 Go source."
const copyrightString = "Public domain."

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	headingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
)

func Main() {
	defer exit.Handler()

	cl := parseCommandLine()
	if cl.v {
		os.Exit(0)
	}
	j, err := readJob(cl.fnJob)
	if err != nil {
		exit.Log(err)
	}
	s := newSite(j)

	// a target computes one row of the report.
	var targets []target
	if j.Sun {
		targets = append(targets, sunRow)
	}
	if j.Moon {
		targets = append(targets, moonRow)
	}
	for _, b := range j.planets {
		b := b
		targets = append(targets, func(s *site) (*row, error) {
			return planetRow(s, b)
		})
	}

	// results are printed in the order of targets regardless of which
	// worker finishes first.  each target gets a buffered return channel
	// that works like a ticket for picking up its row.
	maxWorkers := runtime.GOMAXPROCS(0)
	prCh := make(chan chan result, maxWorkers*2)
	tCh := make(chan *targetSeq)
	go func() {
		for _, t := range targets {
			rch := make(chan result, 1)
			tCh <- &targetSeq{t, rch}
			prCh <- rch
		}
		close(prCh)
		close(tCh)
	}()
	for n := 0; n < maxWorkers && n < len(targets); n++ {
		go compute(s, tCh)
	}

	printHeadings(j, s)
	for rch := range prCh {
		r := <-rch
		if r.err != nil {
			// one body failing does not spoil the rest of the report.
			log.Println(r.err)
			continue
		}
		fmt.Println(r.row.format())
	}
}

type target func(*site) (*row, error)

type result struct {
	row *row
	err error
}

type targetSeq struct {
	t   target
	rch chan result
}

// worker process, computes rows until targets run out.
func compute(s *site, tCh chan *targetSeq) {
	for ts := range tCh {
		r, err := ts.t(s)
		ts.rch <- result{r, err} // buffered.  just drop off results and continue
	}
}

type commandLine struct {
	fnJob string // job file
	v     bool   // -v option
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dh := flag.Bool("h", false, "")
	dv := flag.Bool("v", false, "")
	flag.StringVar(&cl.fnJob, "j", "", "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: almanac [-j <job-file>]   report positions and events
       almanac -h                display help and quick reference
       almanac -v                display version and copyright
`)
	}
	flag.Parse()
	switch {
	case *dh:
		printHelp()
		os.Exit(0)
	case *dv:
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		cl.v = true
	case flag.NArg() != 0:
		flag.Usage()
		os.Exit(1)
	}
	return &cl
}

func printHeadings(j *job, s *site) {
	fmt.Println(titleStyle.Render(versionString))
	neg, d, m, sec := angle.DMS(s.g.Lat)
	fmt.Printf("%s UT  JD %.5f  ΔT %.1fs  φ %c%d°%02d′%02.0f″  L %+.4f°  %.0f m\n",
		j.Date.Format("2006-01-02 15:04:05"), s.jd, s.ΔT,
		neg, d, m, sec, j.Lon, j.Height)
	fmt.Printf("Apparent sidereal time at Greenwich %.1s\n\n",
		sexa.FmtTime(s.st))
	fmt.Println(headingStyle.Render(heading))
}

func printHelp() {
	fmt.Println(`
Almanac computes apparent topocentric places of the Sun, Moon and planets
for one instant and one observer, with times of rising, transit and
setting on the UT date.

Job file, TOML.  All keys are optional:
   Date         instant of the report, e.g. 2024-03-20T18:00:00Z
   Lat          latitude, degrees north
   Lon          longitude, degrees east
   Height       meters above sea level
   DeltaT       TD - UT in seconds
   Pressure     millibars, for refraction
   Temperature  degrees C, for refraction
   Sun          true or false
   Moon         true or false
   Bodies       list of planet names
   Site         MPC observatory code, replaces Lat, Lon and Height
   ObsCodes     MPC observatory code file, fetched if unreadable

Without a job file the report is for Greenwich at the current time.

Columns:
   RA, Dec      apparent topocentric, equinox of date
   Az           degrees westward from south
   Alt          degrees, refraction applied above -1°
   Elong        angular distance from the Sun
   Illum        illuminated fraction of the disk
   SD           semidiameter
   Rise, Trans, Set   UT on the date of the report`)
}
