// Public domain.

package main

import (
	"context"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"time"

	"github.com/naoina/toml"
	"github.com/soniakeys/exit"
	"github.com/soniakeys/mpcformat"
	"github.com/soniakeys/observation"
	"github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/sitepv"
	"github.com/soniakeys/sitepv/eop"
	"github.com/soniakeys/sitepv/sidereal"
)

const versionString = "sitepv version 0.1 Go source"
const copyrightString = "Public domain."

func main() {
	defer exit.Handler()

	cl := parseCommandLine()
	site, name := resolveSite(cl)
	series := readEop(cl.fnEop)

	pos, vel, err := site.PosVel(cl.mjd, series)
	if err != nil {
		exit.Log(err)
	}
	// the resolution just applied, for display
	dut1, err := series.DeltaUT1(cl.mjd)
	if err != nil {
		exit.Log(err)
	}
	ut1 := cl.mjd + dut1/86400
	gmst := sidereal.GMST(ut1)
	gast := gmst + sidereal.EquationOfEquinoxes(cl.mjd)

	fmt.Printf("%s  mjd %.8f utc\n", name, cl.mjd)
	fmt.Printf("ut1-utc %+.4f s  gmst %2v  gast %2v\n", dut1,
		sexa.FmtRA(unit.RAFromRad(gmst.Rad())), sexa.FmtRA(unit.RAFromRad(gast.Rad())))
	fmt.Printf("position %16.9e %16.9e %16.9e au\n", pos.X, pos.Y, pos.Z)
	fmt.Printf("velocity %16.9e %16.9e %16.9e au/day\n", vel.X, vel.Y, vel.Z)
	if cl.sun {
		so, err := site.SunObserver(cl.mjd, series)
		if err != nil {
			exit.Log(err)
		}
		fmt.Printf("sun-site %16.9e %16.9e %16.9e au\n", so.X, so.Y, so.Z)
	}
}

type commandLine struct {
	mjd           float64
	code          string
	lon, lat, alt float64
	fnOcd, fnEop  string
	sun           bool
}

// job file fields, all optional
type job struct {
	Mjd           float64
	Code          string
	Lon, Lat, Alt float64
	Obscode, Eop  string
	Sun           bool
}

func parseCommandLine() *commandLine {
	var cl commandLine
	dv := flag.Bool("v", false, "")
	dj := flag.String("j", "", "")
	flag.Float64Var(&cl.mjd, "e", 0, "")
	flag.StringVar(&cl.code, "c", "", "")
	flag.Float64Var(&cl.lon, "lon", 0, "")
	flag.Float64Var(&cl.lat, "lat", 0, "")
	flag.Float64Var(&cl.alt, "alt", 0, "")
	flag.StringVar(&cl.fnOcd, "o", "obscode.dat", "")
	flag.StringVar(&cl.fnEop, "u", "eop2.short", "")
	flag.BoolVar(&cl.sun, "s", false, "")
	flag.Usage = func() {
		os.Stderr.WriteString(`
Usage: sitepv [options]    compute observer position and velocity
       sitepv -v           display version and copyright

Options:
       -e <mjd>     epoch, modified Julian date, UTC.  required
       -c <code>    site by MPC observatory code
       -lon <deg>   site east longitude
       -lat <deg>   site geodetic latitude
       -alt <m>     site height above the ellipsoid
       -o <file>    obscode file, default obscode.dat
       -u <file>    Earth orientation file, default eop2.short
       -j <file>    job file in TOML, fields override options
       -s           also print the sun-site vector
`)
	}
	flag.Parse()
	if *dv {
		fmt.Println(versionString)
		fmt.Println(copyrightString)
		os.Exit(0)
	}
	if *dj > "" {
		readJob(*dj, &cl)
	}
	if !(cl.mjd > 0) {
		flag.Usage()
		os.Exit(1)
	}
	return &cl
}

func readJob(fn string, cl *commandLine) {
	td, err := ioutil.ReadFile(fn)
	if err != nil {
		exit.Log(err)
	}
	var j job
	if err = toml.Unmarshal(td, &j); err != nil {
		exit.Log(err)
	}
	if j.Mjd != 0 {
		cl.mjd = j.Mjd
	}
	if j.Code > "" {
		cl.code = j.Code
	}
	if j.Lon != 0 {
		cl.lon = j.Lon
	}
	if j.Lat != 0 {
		cl.lat = j.Lat
	}
	if j.Alt != 0 {
		cl.alt = j.Alt
	}
	if j.Obscode > "" {
		cl.fnOcd = j.Obscode
	}
	if j.Eop > "" {
		cl.fnEop = j.Eop
	}
	if j.Sun {
		cl.sun = true
	}
}

func resolveSite(cl *commandLine) (sitepv.Site, string) {
	if cl.code == "" {
		s, err := sitepv.NewSite(cl.lon, cl.lat, cl.alt)
		if err != nil {
			exit.Log(err)
		}
		return s, fmt.Sprintf("site %.5f %.5f %.0fm", cl.lon, cl.lat, cl.alt)
	}
	p, ok := readOcd(cl.fnOcd)[cl.code]
	if !ok {
		exit.Log("obscode " + cl.code + " not in obscode file")
	}
	if p == nil {
		exit.Log("no parallax data for obscode " + cl.code)
	}
	return sitepv.SiteFromMPC(p), cl.code
}

func readOcd(path string) observation.ParallaxMap {
	m, readErr := mpcformat.ReadObscodeDatFile(path)
	if readErr == nil {
		return m
	}
	// read failed.  try fetching a fresh copy.
	if err := mpcformat.FetchObscodeDat(path); err != nil {
		log.Println(readErr) // error from the read attempt,
		exit.Log(err)        // and from the download attempt
	}
	// reread, see if the downloaded copy works better
	if m, readErr = mpcformat.ReadObscodeDatFile(path); readErr != nil {
		exit.Log(readErr)
	}
	return m
}

func readEop(path string) *eop.Series {
	s, readErr := eop.ReadFile(path)
	if readErr == nil {
		return s
	}
	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()
	if err := eop.Fetch(ctx, "", path); err != nil {
		log.Println(readErr)
		exit.Log(err)
	}
	if s, readErr = eop.ReadFile(path); readErr != nil {
		exit.Log(readErr)
	}
	return s
}
