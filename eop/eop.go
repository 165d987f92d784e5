// Package eop reads Earth orientation data and resolves UT1 from UTC.
//
// The file format handled is the plain text EOP2 distribution from JPL,
// one line per day with columns MJD, pole x, pole y and UT1-UTC in
// seconds.  Header and comment lines are skipped without fuss, so other
// whitespace separated products with the same leading columns load too.
package eop

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"sort"
	"strconv"
	"strings"
	"time"
)

// DefaultURL is the short form EOP2 file, about a century of data.
const DefaultURL = "https://eop2-external.jpl.nasa.gov/eop2/latest_eop2.short"

var (
	// ErrNoData means a dataset held no usable records.
	ErrNoData = errors.New("eop: no usable records")

	// ErrOutOfRange means an epoch fell outside the dataset span.
	ErrOutOfRange = errors.New("eop: epoch outside dataset span")
)

// One day of Earth orientation data.  Pole coordinates are parsed to
// validate the line but not kept.  Nothing here models polar motion.
type record struct {
	mjd  float64 // UTC
	dut1 float64 // UT1-UTC in seconds
}

// Series is an Earth orientation dataset ordered by epoch.
type Series struct {
	recs []record
}

// Read parses Earth orientation data from r.
func Read(r io.Reader) (*Series, error) {
	var s Series
	scn := bufio.NewScanner(r)
	for scn.Scan() {
		f := strings.Fields(scn.Text())
		if len(f) < 4 {
			continue
		}
		mjd, err := strconv.ParseFloat(f[0], 64)
		if err != nil {
			continue
		}
		if _, err = strconv.ParseFloat(f[1], 64); err != nil {
			continue
		}
		if _, err = strconv.ParseFloat(f[2], 64); err != nil {
			continue
		}
		dut1, err := strconv.ParseFloat(f[3], 64)
		if err != nil {
			continue
		}
		s.recs = append(s.recs, record{mjd, dut1})
	}
	if err := scn.Err(); err != nil {
		return nil, err
	}
	if len(s.recs) == 0 {
		return nil, ErrNoData
	}
	sort.Slice(s.recs, func(i, j int) bool { return s.recs[i].mjd < s.recs[j].mjd })
	return &s, nil
}

// ReadFile parses Earth orientation data from a file.
func ReadFile(path string) (*Series, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	s, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// Fetch downloads an Earth orientation file to path.  An empty url
// means DefaultURL.
func Fetch(ctx context.Context, url, path string) error {
	if url == "" {
		url = DefaultURL
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	c := http.Client{Timeout: 30 * time.Second}
	resp, err := c.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("eop: get %s: %s", url, resp.Status)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	_, err = io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}

// Span returns the first and last epochs of the dataset.
func (s *Series) Span() (first, last float64) {
	return s.recs[0].mjd, s.recs[len(s.recs)-1].mjd
}

// DeltaUT1 interpolates UT1-UTC in seconds at a UTC epoch.
//
// Interpolation is linear between daily records.  An epoch outside the
// dataset span fails with an error wrapping ErrOutOfRange.
func (s *Series) DeltaUT1(utc float64) (float64, error) {
	n := len(s.recs)
	if utc < s.recs[0].mjd || utc > s.recs[n-1].mjd {
		return 0, fmt.Errorf("%w: mjd %.5f not in [%.5f,%.5f]",
			ErrOutOfRange, utc, s.recs[0].mjd, s.recs[n-1].mjd)
	}
	i := sort.Search(n, func(i int) bool { return s.recs[i].mjd >= utc })
	if s.recs[i].mjd == utc {
		return s.recs[i].dut1, nil
	}
	r0, r1 := s.recs[i-1], s.recs[i]
	p := (utc - r0.mjd) / (r1.mjd - r0.mjd)
	return r0.dut1 + p*(r1.dut1-r0.dut1), nil
}

// ResolveUT1 returns the UT1 epoch corresponding to a UTC epoch, both
// modified Julian dates.
func (s *Series) ResolveUT1(utc float64) (float64, error) {
	d, err := s.DeltaUT1(utc)
	if err != nil {
		return 0, err
	}
	return utc + d/86400, nil
}

// Offset resolves UT1 by a fixed UT1-UTC shift in seconds.  It stands
// in for a Series when no dataset is at hand.
type Offset float64

// ResolveUT1 returns utc shifted by the fixed number of seconds.
func (o Offset) ResolveUT1(utc float64) (float64, error) {
	return utc + float64(o)/86400, nil
}
