// Public domain.

package sitepv

import (
	"errors"
	"fmt"
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/observation"
	"github.com/soniakeys/unit"

	"github.com/soniakeys/sitepv/geodesy"
)

// ErrDomain flags an input outside the range the model supports.
var ErrDomain = errors.New("sitepv: input outside supported range")

// A Site is a ground station fixed to the reference ellipsoid.
//
// Lon is east longitude.  RhoCosPhi and RhoSinPhi are the parallax
// constants in units of the Earth equatorial radius.
type Site struct {
	Lon                  unit.Angle
	RhoCosPhi, RhoSinPhi float64
}

// NewSite builds a Site from geodetic coordinates.
//
// Args:
//   lonDeg:  east longitude in degrees.
//   latDeg:  geodetic latitude in degrees.
//   heightM: height above the ellipsoid in meters.
//
// A latitude outside [-90,90] fails with an error wrapping ErrDomain.
func NewSite(lonDeg, latDeg, heightM float64) (Site, error) {
	if latDeg < -90 || latDeg > 90 {
		return Site{}, fmt.Errorf("%w: latitude %v deg", ErrDomain, latDeg)
	}
	rcp, rsp := geodesy.ParallaxDeg(latDeg, heightM)
	return Site{
		Lon:       unit.AngleFromDeg(lonDeg),
		RhoCosPhi: rcp,
		RhoSinPhi: rsp,
	}, nil
}

// SiteFromParallax builds a Site from MPC style parallax constants,
// longitude in degrees, ρ cos φ′ and ρ sin φ′ in Earth radii.
func SiteFromParallax(lonDeg, rhoCosPhi, rhoSinPhi float64) Site {
	return Site{
		Lon:       unit.AngleFromDeg(lonDeg),
		RhoCosPhi: rhoCosPhi,
		RhoSinPhi: rhoSinPhi,
	}
}

// SiteFromMPC adapts a parsed obscode.dat entry.
//
// The observation package stores longitude as a fraction of a circle
// and the parallax constants rescaled to AU.  Both convert back here to
// the units Site carries.
func SiteFromMPC(p *observation.ParallaxConst) Site {
	// scale used by the obscode.dat reader
	const sf = 6.37814e6 / 149.59787e9
	return Site{
		Lon:       unit.Angle(p.Longitude * 2 * math.Pi),
		RhoCosPhi: p.RhoCosPhi / sf,
		RhoSinPhi: p.RhoSinPhi / sf,
	}
}

// BodyFixed returns the Earth-fixed position of the site in AU.
func (s Site) BodyFixed() coord.Cart {
	return geodesy.BodyFixedParallax(s.Lon, s.RhoCosPhi, s.RhoSinPhi)
}
