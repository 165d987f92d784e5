// Public domain.

package sitepv_test

import (
	"errors"
	"fmt"
	"math"
	"testing"

	"github.com/soniakeys/observation"

	"github.com/soniakeys/sitepv"
	"github.com/soniakeys/sitepv/geodesy"
)

// Haleakala, the Pan-STARRS 1 site.  MPC code F51.
const (
	f51Lon = 203.744090000
	f51Lat = 20.707233557
	f51Alt = 3067.694
)

// A night of 2015 January 6, with UT1 resolved once from an Earth
// orientation dataset and pinned here.
const (
	tUTC = 57028.479297592596
	tUT1 = 57028.478514610404
)

// ut1Stub resolves a single pinned epoch.
type ut1Stub struct{ utc, ut1 float64 }

func (s ut1Stub) ResolveUT1(utc float64) (float64, error) {
	if utc != s.utc {
		return 0, fmt.Errorf("resolver got utc %v, pinned to %v", utc, s.utc)
	}
	return s.ut1, nil
}

var errResolver = errors.New("resolver down")

type badResolver struct{}

func (badResolver) ResolveUT1(float64) (float64, error) { return 0, errResolver }

func f51(t *testing.T) sitepv.Site {
	t.Helper()
	s, err := sitepv.NewSite(f51Lon, f51Lat, f51Alt)
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestPosVel(t *testing.T) {
	pos, vel, err := f51(t).PosVel(tUTC, ut1Stub{tUTC, tUT1})
	if err != nil {
		t.Fatal(err)
	}
	wantPos := []float64{
		-2.1029664445055886e-5,
		3.7089965349631534e-5,
		2.911548164794497e-7,
	}
	wantVel := []float64{
		-2.1367298085517918e-4,
		-1.2156695591212987e-4,
		5.304083328775301e-5,
	}
	for i, g := range []float64{pos.X, pos.Y, pos.Z} {
		if math.Abs(g-wantPos[i]) > 1e-9 {
			t.Fatalf("position component %d: %g, want %g", i, g, wantPos[i])
		}
	}
	for i, g := range []float64{vel.X, vel.Y, vel.Z} {
		if math.Abs(g-wantVel[i]) > 1e-9 {
			t.Fatalf("velocity component %d: %g, want %g", i, g, wantVel[i])
		}
	}
}

// The geodetic convenience wrapper and the Site method agree.
func TestPosVelFlat(t *testing.T) {
	p1, v1, err := sitepv.PosVel(tUTC, f51Lon, f51Lat, f51Alt, ut1Stub{tUTC, tUT1})
	if err != nil {
		t.Fatal(err)
	}
	p2, v2, err := f51(t).PosVel(tUTC, ut1Stub{tUTC, tUT1})
	if err != nil {
		t.Fatal(err)
	}
	if p1 != p2 || v1 != v2 {
		t.Fatal("wrapper disagrees with method")
	}
}

// Rotations preserve the geocentric distance, and the rigid rotation
// velocity stays perpendicular to the site vector.
func TestPosVelGeometry(t *testing.T) {
	site := f51(t)
	pos, vel, err := site.PosVel(tUTC, ut1Stub{tUTC, tUT1})
	if err != nil {
		t.Fatal(err)
	}
	bf := site.BodyFixed()
	if r, want := math.Sqrt(pos.Square()), math.Sqrt(bf.Square()); math.Abs(r-want) > 1e-14*want {
		t.Fatal("geocentric distance", r, "want", want)
	}
	if d := pos.Dot(&vel); math.Abs(d) > 1e-20 {
		t.Fatal("pos·vel =", d)
	}
}

func TestPosVelResolverError(t *testing.T) {
	_, _, err := f51(t).PosVel(tUTC, badResolver{})
	if !errors.Is(err, errResolver) {
		t.Fatal(err)
	}
}

func TestPosVelDomain(t *testing.T) {
	// three and a half millennia out
	if _, _, err := f51(t).PosVel(1.3e6, ut1Stub{}); !errors.Is(err, sitepv.ErrDomain) {
		t.Fatal(err)
	}
	if _, err := sitepv.NewSite(0, 91, 0); !errors.Is(err, sitepv.ErrDomain) {
		t.Fatal(err)
	}
	if _, err := sitepv.NewSite(0, -91, 0); !errors.Is(err, sitepv.ErrDomain) {
		t.Fatal(err)
	}
}

func TestSunObserver(t *testing.T) {
	so, err := f51(t).SunObserver(tUTC, ut1Stub{tUTC, tUT1})
	if err != nil {
		t.Fatal(err)
	}
	// heliocentric distance of an Earth site in early January
	if r := math.Sqrt(so.Square()); r < .96 || r > 1.04 {
		t.Fatal("distance from sun", r, "AU")
	}
	if _, err = f51(t).SunObserver(tUTC, badResolver{}); !errors.Is(err, errResolver) {
		t.Fatal(err)
	}
}

func TestSiteFromParallax(t *testing.T) {
	rcp, rsp := geodesy.ParallaxDeg(f51Lat, f51Alt)
	a := f51(t).BodyFixed()
	b := sitepv.SiteFromParallax(f51Lon, rcp, rsp).BodyFixed()
	if a != b {
		t.Fatal(a, "!=", b)
	}
}

func TestSiteFromMPC(t *testing.T) {
	const sf = 6.37814e6 / 149.59787e9
	rcp, rsp := geodesy.ParallaxDeg(f51Lat, f51Alt)
	s := sitepv.SiteFromMPC(&observation.ParallaxConst{
		Longitude: f51Lon / 360,
		RhoCosPhi: rcp * sf,
		RhoSinPhi: rsp * sf,
	})
	a := f51(t).BodyFixed()
	b := s.BodyFixed()
	for i, d := range []float64{b.X - a.X, b.Y - a.Y, b.Z - a.Z} {
		if math.Abs(d) > 1e-15 {
			t.Fatal("component", i, "differs by", d)
		}
	}
}
