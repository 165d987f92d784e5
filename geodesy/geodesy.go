// Package geodesy, site positions on the reference ellipsoid.
//
// Functions here work in an Earth-fixed frame with the x axis leaving
// through the Greenwich meridian and the z axis through the north pole.
package geodesy

import (
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/unit"
)

// WGS84 ellipsoid and the DE405 astronomical unit.
const (
	// EarthMajorAxis is the equatorial radius of the Earth in meters.
	EarthMajorAxis = 6378137.0

	// EarthMinorAxis is the polar radius of the Earth in meters.
	EarthMinorAxis = 6356752.314245

	// AxisRatio is the polar to equatorial ratio b/a.
	AxisRatio = EarthMinorAxis / EarthMajorAxis

	// AU is the astronomical unit in meters.
	AU = 1.49597870691e11

	// ERAU is the Earth equatorial radius in AU.
	ERAU = EarthMajorAxis / AU
)

// Parallax computes the parallax constants of a site.
//
// Args:
//   lat:     geodetic latitude.
//   heightM: height above the ellipsoid in meters.
//
// Returns ρ cos φ′ and ρ sin φ′, the projections of the geocentric site
// vector on the equatorial plane and the polar axis, in units of the
// Earth equatorial radius.  These are the constants observatories report
// to the MPC.
func Parallax(lat unit.Angle, heightM float64) (rhoCosPhi, rhoSinPhi float64) {
	slat, clat := math.Sincos(lat.Rad())
	// reduced latitude
	su, cu := math.Sincos(math.Atan2(slat*AxisRatio, clat))
	h := heightM / EarthMajorAxis
	rhoCosPhi = cu + h*clat
	rhoSinPhi = su*AxisRatio + h*slat
	return
}

// ParallaxDeg is Parallax with latitude in degrees.
func ParallaxDeg(latDeg, heightM float64) (rhoCosPhi, rhoSinPhi float64) {
	return Parallax(unit.AngleFromDeg(latDeg), heightM)
}

// BodyFixed computes the Earth-fixed position of a site in AU.
//
// Args:
//   lonDeg:  east longitude in degrees.
//   latDeg:  geodetic latitude in degrees.
//   heightM: height above the ellipsoid in meters.
func BodyFixed(lonDeg, latDeg, heightM float64) coord.Cart {
	rcp, rsp := ParallaxDeg(latDeg, heightM)
	return BodyFixedParallax(unit.AngleFromDeg(lonDeg), rcp, rsp)
}

// BodyFixedParallax computes the Earth-fixed position of a site in AU
// from its east longitude and parallax constants in Earth radii.
func BodyFixedParallax(lon unit.Angle, rhoCosPhi, rhoSinPhi float64) coord.Cart {
	slon, clon := math.Sincos(lon.Rad())
	return coord.Cart{
		X: ERAU * rhoCosPhi * clon,
		Y: ERAU * rhoCosPhi * slon,
		Z: ERAU * rhoSinPhi,
	}
}
