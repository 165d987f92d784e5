// Public domain.

package eop_test

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/soniakeys/sitepv/eop"
)

// A few lines in the shape of the JPL EOP2 product, headers included.
const testData = `EOP2=TEST
# MJD      x        y        UT1-UTC
 57024.00  0.03000  0.26600 -0.44300  .1154
 57032.00  0.02800  0.27400 -0.48700  .1150
 57028.00  0.02900  0.27000 -0.46500  .1152
no data on this line
 57020.00  0.03100  0.26240 -0.42100
`

func testSeries(t *testing.T) *eop.Series {
	t.Helper()
	s, err := eop.Read(strings.NewReader(testData))
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestReadSpan(t *testing.T) {
	first, last := testSeries(t).Span()
	if first != 57020 || last != 57032 {
		t.Fatal("span", first, last)
	}
}

func TestDeltaUT1(t *testing.T) {
	s := testSeries(t)
	for _, c := range []struct{ utc, want float64 }{
		{57020, -.421},  // first record
		{57028, -.465},  // exact record, out of file order
		{57030, -.476},  // midpoint of the last interval
		{57025, -.4485}, // a quarter into a four day gap
		{57032, -.487},  // last record
	} {
		d, err := s.DeltaUT1(c.utc)
		if err != nil {
			t.Fatal(c.utc, err)
		}
		if math.Abs(d-c.want) > 1e-12 {
			t.Fatal("DeltaUT1 at", c.utc, "=", d, "want", c.want)
		}
	}
}

func TestDeltaUT1Range(t *testing.T) {
	s := testSeries(t)
	for _, utc := range []float64{57019.99, 57032.01, 0, 1e6} {
		if _, err := s.DeltaUT1(utc); !errors.Is(err, eop.ErrOutOfRange) {
			t.Fatal("utc", utc, "err", err)
		}
	}
}

func TestResolveUT1(t *testing.T) {
	s := testSeries(t)
	ut1, err := s.ResolveUT1(57028)
	if err != nil {
		t.Fatal(err)
	}
	if want := 57028 - .465/86400; math.Abs(ut1-want) > 1e-12 {
		t.Fatal("ut1", ut1, "want", want)
	}
}

func TestReadNoData(t *testing.T) {
	if _, err := eop.Read(strings.NewReader("EOP2=TEST\nno usable lines\n")); !errors.Is(err, eop.ErrNoData) {
		t.Fatal(err)
	}
}

func TestReadFileMissing(t *testing.T) {
	if _, err := eop.ReadFile("no such file"); err == nil {
		t.Fatal("expected error")
	}
}

func TestOffset(t *testing.T) {
	ut1, err := eop.Offset(-67.65).ResolveUT1(57028.479297592596)
	if err != nil {
		t.Fatal(err)
	}
	if want := 57028.479297592596 - 67.65/86400; ut1 != want {
		t.Fatal("ut1", ut1, "want", want)
	}
}
