/*
Command almanac reports apparent places of the Sun, Moon and planets for an
observer, with times of rising, transit and setting.

Contents

  Program overview
  Command line usage
  Job file
  Output
  Library packages
  Accuracy


Program overview

Input is an optional job file naming an instant, an observer and the bodies
of interest.  Output is one line per body: apparent topocentric right
ascension and declination, distance, azimuth and altitude, elongation,
illuminated fraction, magnitude, semidiameter, and UT times of rising,
transit and setting on the UT date of the instant.

Bodies are computed concurrently, one worker per processor, and printed in
the order they are named in the job.

Sample run:

	$ almanac -j boston.toml

with boston.toml containing

	Date = 1992-04-12T00:00:00Z
	Lat = 42.3333
	Lon = -71.0833
	DeltaT = 59
	Bodies = ["Venus", "Jupiter"]


Command line usage

	almanac [-j <job-file>]   report positions and events
	almanac -h                display help and quick reference
	almanac -v                display version and copyright

Without -j, the report is for Greenwich at the current time.


Job file

The job file is TOML.  All keys are optional and default to the Greenwich
report.

	Date         instant of the report, UT
	Lat          latitude in degrees, north positive
	Lon          longitude in degrees, east positive
	Height       meters above sea level
	DeltaT       TD − UT in seconds
	Pressure     millibars, for refraction
	Temperature  °C, for refraction
	Sun, Moon    true or false
	Bodies       list of planet names, Mercury through Neptune
	Site         MPC observatory code; replaces Lat, Lon and Height
	ObsCodes     MPC observatory code file, default obscode.dat

When Site is given and the observatory code file cannot be read, a fresh
copy is downloaded from the Minor Planet Center.

An invalid value terminates the program with a message naming the field.


Output

Right ascension and declination are apparent and topocentric, referred to
the equator and equinox of date.  Azimuth is measured westward from the
south.  Altitude includes refraction for the job's pressure and
temperature.  Times of rising and setting are for the upper limb of the Sun,
the center of the Moon corrected for parallax and semidiameter, and the
center of a planet, all with standard refraction at the horizon.  A body
that neither rises nor sets on the date is shown as always up or never up.


Library packages

The command is a thin layer over importable packages:

	angle           sexagesimal conversion and angle reduction
	julian          calendar dates, Julian days, Easter
	series          periodic series of nutation and lunar theory
	nutation        nutation and obliquity of the ecliptic
	moonposition    geocentric position of the Moon
	solar           low accuracy position of the Sun
	sidereal        Greenwich sidereal time
	transform       equatorial, ecliptic, horizontal and galactic coordinates
	angsep          angular separation
	precession      reduction between equinoxes
	apparent        nutation and aberration of star places
	kepler          solutions of Kepler's equation
	planetelements  mean orbital elements of the planets
	elliptic        geocentric positions from orbital elements
	parallax        horizontal parallax and topocentric places
	refraction      atmospheric refraction
	semidiameter    apparent semidiameters
	illum           illuminated fraction and magnitudes
	globe           the Earth's figure and geodesic distance
	rise            times of rising, transit and setting


Accuracy

Positions of the Sun are good to about 0.01°, of the Moon to about 10″ in
longitude, of the planets to several arc minutes, limited by the use of mean
elements without perturbations.  Times of rising and setting are good to
about a minute at moderate latitudes.

-------------
Public domain.
*/
package main
