// Package refsys rotates coordinates between astronomical reference
// systems.
//
// A reference system here is a fundamental plane, the mean equator,
// true equator or mean ecliptic, paired with an epoch for that plane,
// either fixed J2000.0 or the epoch of date.  Matrices are passive
// rotations.  Multiplying one with a column vector of coordinates in
// the source system gives coordinates of the same point in the
// destination system.
package refsys

import (
	"fmt"
	"math"

	"github.com/soniakeys/coord"
	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/nutation"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/mat"
)

// System identifies the fundamental plane and equinox of a frame.
type System int

const (
	EquMean System = iota // mean equator and equinox
	EquTrue               // true equator and equinox
	EclMean               // mean ecliptic and equinox
)

func (s System) String() string {
	switch s {
	case EquMean:
		return "mean equator"
	case EquTrue:
		return "true equator"
	case EclMean:
		return "mean ecliptic"
	}
	return fmt.Sprintf("System(%d)", int(s))
}

// Epoch selects the fundamental epoch of a frame.
type Epoch int

const (
	J2000  Epoch = iota // fixed J2000.0 frame
	OfDate              // frame of the date passed to Rotpn
)

func (e Epoch) String() string {
	switch e {
	case J2000:
		return "J2000"
	case OfDate:
		return "of date"
	}
	return fmt.Sprintf("Epoch(%d)", int(e))
}

// t2000 is J2000.0 as a modified Julian date.
const t2000 = base.J2000 - base.JMod

// R1 returns the passive rotation by angle x about the first axis.
func R1(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, c, s, 0, -s, c})
}

// R2 returns the passive rotation by angle x about the second axis.
func R2(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, 0, -s, 0, 1, 0, s, 0, c})
}

// R3 returns the passive rotation by angle x about the third axis.
func R3(x float64) *mat.Dense {
	s, c := math.Sincos(x)
	return mat.NewDense(3, 3, []float64{c, s, 0, -s, c, 0, 0, 0, 1})
}

// MulVec applies a 3×3 rotation to a Cartesian vector.
func MulVec(m mat.Matrix, v coord.Cart) coord.Cart {
	return coord.Cart{
		X: m.At(0, 0)*v.X + m.At(0, 1)*v.Y + m.At(0, 2)*v.Z,
		Y: m.At(1, 0)*v.X + m.At(1, 1)*v.Y + m.At(1, 2)*v.Z,
		Z: m.At(2, 0)*v.X + m.At(2, 1)*v.Y + m.At(2, 2)*v.Z,
	}
}

// Obliquity returns the mean obliquity of the ecliptic, IAU 1980.
//
// The epoch is a modified Julian date, TT and UTC interchangeable at
// this precision.
func Obliquity(mjd float64) unit.Angle {
	return nutation.MeanObliquity(mjd + base.JMod)
}

// Nutation returns nutation in longitude and in obliquity, IAU 1980.
//
// The epoch is a modified Julian date.
func Nutation(mjd float64) (Δψ, Δε unit.Angle) {
	return nutation.Nutation(mjd + base.JMod)
}
