package refsys

import (
	"fmt"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/unit"
	"gonum.org/v1/gonum/mat"
)

func eye() *mat.Dense {
	return mat.NewDense(3, 3, []float64{1, 0, 0, 0, 1, 0, 0, 0, 1})
}

// mul returns the product ab in a fresh matrix.
func mul(a, b mat.Matrix) *mat.Dense {
	var m mat.Dense
	m.Mul(a, b)
	return &m
}

// Precession returns the rotation from the mean equator and equinox of
// J2000 to the mean equator and equinox of date, IAU 1976.
func Precession(mjd float64) *mat.Dense {
	t := base.J2000Century(mjd + base.JMod)
	ζ := unit.AngleFromSec(t * (2306.2181 + t*(0.30188+t*0.017998)))
	z := unit.AngleFromSec(t * (2306.2181 + t*(1.09468+t*0.018203)))
	θ := unit.AngleFromSec(t * (2004.3109 - t*(0.42665+t*0.041833)))
	return mul(R3(-z.Rad()), mul(R2(θ.Rad()), R3(-ζ.Rad())))
}

// NutationMatrix returns the rotation from the mean equator and equinox
// of date to the true equator and equinox of the same date.
func NutationMatrix(mjd float64) *mat.Dense {
	ε := Obliquity(mjd).Rad()
	Δψ, Δε := Nutation(mjd)
	return mul(R1(-ε-Δε.Rad()), mul(R3(-Δψ.Rad()), R1(ε)))
}

func (s System) valid() bool {
	return s >= EquMean && s <= EclMean
}

func (e Epoch) valid() bool {
	return e == J2000 || e == OfDate
}

// epoch of date for OfDate sides, J2000 otherwise
func at(e Epoch, mjd float64) float64 {
	if e == OfDate {
		return mjd
	}
	return t2000
}

// Rotpn builds the rotation taking coordinates from one reference
// system to another.
//
// Args:
//   from, fromEp: source system and its fundamental epoch.
//   to, toEp:     destination system and its fundamental epoch.
//   mjd:          the date, as a modified Julian date, of any side
//                 declared OfDate.
//
// The rotation works through the mean equator, applying nutation or
// obliquity terms to leave the source plane, precession to move between
// epochs, and their inverses to reach the destination plane.
func Rotpn(from System, fromEp Epoch, to System, toEp Epoch, mjd float64) (*mat.Dense, error) {
	switch {
	case !from.valid():
		return nil, fmt.Errorf("refsys: unknown source system %v", from)
	case !to.valid():
		return nil, fmt.Errorf("refsys: unknown destination system %v", to)
	case !fromEp.valid():
		return nil, fmt.Errorf("refsys: unknown source epoch %v", fromEp)
	case !toEp.valid():
		return nil, fmt.Errorf("refsys: unknown destination epoch %v", toEp)
	}
	r := eye()
	// to the mean equator and equinox of the source epoch
	switch from {
	case EquTrue:
		r = mul(NutationMatrix(at(fromEp, mjd)).T(), r)
	case EclMean:
		r = mul(R1(-Obliquity(at(fromEp, mjd)).Rad()), r)
	}
	// across epochs
	if fromEp == OfDate && toEp == J2000 {
		r = mul(Precession(mjd).T(), r)
	} else if fromEp == J2000 && toEp == OfDate {
		r = mul(Precession(mjd), r)
	}
	// to the destination plane
	switch to {
	case EquTrue:
		r = mul(NutationMatrix(at(toEp, mjd)), r)
	case EclMean:
		r = mul(R1(Obliquity(at(toEp, mjd)).Rad()), r)
	}
	return r, nil
}
