// Public domain.

package sitepv

import (
	"fmt"
	"math"

	"github.com/soniakeys/astro"
	"github.com/soniakeys/coord"
	"gonum.org/v1/gonum/mat"

	"github.com/soniakeys/sitepv/refsys"
	"github.com/soniakeys/sitepv/sidereal"
)

// A Resolver converts a UTC epoch to the corresponding UT1 epoch, both
// modified Julian dates.  Package eop has implementations.
type Resolver interface {
	ResolveUT1(utc float64) (float64, error)
}

// Extrapolating the sidereal time and precession polynomials much past
// a couple of centuries from J2000 returns numbers, not angles.
const maxCenturies = 2

// PosVel computes the position and velocity of the site relative to the
// center of mass of the Earth.
//
// Args:
//   mjd: epoch as a modified Julian date, UTC.
//   ut1: resolver for the UT1 epoch of mjd.
//
// Returns position in AU and velocity in AU per day, both in the mean
// ecliptic and equinox of J2000.  Velocity is the rigid rotation term
// ω×r.  Polar motion and tidal deformation are not modeled.
//
// An epoch more than two Julian centuries from J2000 fails with an
// error wrapping ErrDomain.  A resolver failure propagates, wrapped.
func (s Site) PosVel(mjd float64, ut1 Resolver) (pos, vel coord.Cart, err error) {
	rot, err := rotation(refsys.EclMean, mjd, ut1)
	if err != nil {
		return pos, vel, err
	}
	dx, dv := s.bodyFixedPV()
	return refsys.MulVec(rot, dx), refsys.MulVec(rot, dv), nil
}

// PosVel computes the observer state from geodetic coordinates.
// It is NewSite followed by Site.PosVel.
func PosVel(mjd, lonDeg, latDeg, heightM float64, ut1 Resolver) (pos, vel coord.Cart, err error) {
	s, err := NewSite(lonDeg, latDeg, heightM)
	if err != nil {
		return pos, vel, err
	}
	return s.PosVel(mjd, ut1)
}

// SunObserver computes the heliocentric position of the site in AU,
// mean equator and equinox of J2000.
//
// The earth-sun leg uses the approximate USNO solar ephemeris, so the
// result suits magnitude and elongation work, not astrometry.
func (s Site) SunObserver(mjd float64, ut1 Resolver) (coord.Cart, error) {
	rot, err := rotation(refsys.EquMean, mjd, ut1)
	if err != nil {
		return coord.Cart{}, err
	}
	site := refsys.MulVec(rot, s.BodyFixed())
	sunEarth, _, _ := astro.Se2000(mjd)
	var so coord.Cart
	so.Sub(&site, &sunEarth)
	return so, nil
}

// bodyFixedPV returns the Earth-fixed site vector and its rigid
// rotation velocity, AU and AU per day.
func (s Site) bodyFixedPV() (dx, dv coord.Cart) {
	// Earth angular velocity along the spin axis, radians per day.
	omega := coord.Cart{Z: 2 * math.Pi * sidereal.Ratio}
	dx = s.BodyFixed()
	dv.Cross(&omega, &dx)
	return
}

// rotation builds the rotation from Earth-fixed coordinates to an
// inertial J2000 system at a UTC epoch.
func rotation(sys refsys.System, mjd float64, ut1 Resolver) (*mat.Dense, error) {
	if t := math.Abs(mjd-sidereal.T2000) / 36525; t > maxCenturies {
		return nil, fmt.Errorf("%w: mjd %.5f is %.1f centuries from J2000",
			ErrDomain, mjd, t)
	}
	tut, err := ut1.ResolveUT1(mjd)
	if err != nil {
		return nil, fmt.Errorf("resolving ut1 for mjd %.8f: %w", mjd, err)
	}
	gast := sidereal.GMST(tut) + sidereal.EquationOfEquinoxes(mjd)
	// Earth-fixed to the true equator and equinox of date,
	rot := refsys.R3(-gast.Rad())
	// then on to J2000.
	pn, err := refsys.Rotpn(refsys.EquTrue, refsys.OfDate, sys, refsys.J2000, mjd)
	if err != nil {
		return nil, err
	}
	var r mat.Dense
	r.Mul(pn, rot)
	return &r, nil
}
