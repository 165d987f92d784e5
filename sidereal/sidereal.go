// Package sidereal, Greenwich sidereal time.
//
// Times in and out of this package are modified Julian dates, the
// angles are unit.Angle.
package sidereal

import (
	"math"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"
)

// T2000 is J2000.0 as a modified Julian date.
const T2000 = base.J2000 - base.JMod

// Ratio of the rotational speed of the Earth to the mean motion of the
// fictitious mean sun, sidereal over solar.
const Ratio = 1.00273790934

// IAU 1982 expression for mean sidereal time at 0h UT1,
// seconds of sidereal time per Julian century.
const (
	gmst0 = 24110.54841
	gmst1 = 8640184.812866
	gmst2 = 9.3104e-2
	gmst3 = -6.2e-6
)

const twoPi = 2 * math.Pi

// GMST computes Greenwich mean sidereal time.
//
// Args:
//   ut1: epoch as a modified Julian date in the UT1 time scale.
//
// The result is in [0,2π).
func GMST(ut1 float64) unit.Angle {
	day := math.Floor(ut1)
	t := (day - T2000) / 36525
	// sidereal time at 0h UT1, in seconds
	s := gmst0 + t*(gmst1+t*(gmst2+t*gmst3))
	g := s*(twoPi/86400) + (ut1-day)*twoPi*Ratio
	return unit.Angle(unit.PMod(g, twoPi))
}

// EquationOfEquinoxes computes the offset of apparent from mean sidereal
// time, the nutation in longitude projected on the equator.
//
// Adding the result to GMST for the same epoch gives Greenwich apparent
// sidereal time.
func EquationOfEquinoxes(mjd float64) unit.Angle {
	jde := mjd + base.JMod
	Δψ, _ := nutation.Nutation(jde)
	ε := nutation.MeanObliquity(jde)
	return unit.Angle(Δψ.Rad() * math.Cos(ε.Rad()))
}
