// Package forcing loads and cleans the input series consumed by the search:
// three scalar station files plus the directional wind file. Files are
// semicolon-delimited with no header; malformed rows are logged and skipped,
// never fatal.
package forcing

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/KmiroK/GridSearch"
	"github.com/maseology/mmio"
)

var timeLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// LoadSeries reads a scalar station file: timestamp;value per line,
// comma-decimal tolerant.
func LoadSeries(fp string) (gridsearch.Series, error) {
	lns, err := mmio.ReadTextLines(fp)
	if err != nil {
		return nil, fmt.Errorf("forcing.LoadSeries: %v", err)
	}
	var s gridsearch.Series
	for i, ln := range lns {
		ln = strings.TrimSpace(ln)
		if ln == "" {
			continue
		}
		cols := strings.Split(ln, ";")
		if len(cols) < 2 {
			log.Printf(" forcing: %s line %d: expected 2 columns, skipped", fp, i+1)
			continue
		}
		t, err := parseTime(cols[0])
		if err != nil {
			log.Printf(" forcing: %s line %d: %v, skipped", fp, i+1, err)
			continue
		}
		v, err := parseFloat(cols[1])
		if err != nil {
			log.Printf(" forcing: %s line %d: %v, skipped", fp, i+1, err)
			continue
		}
		s = append(s, gridsearch.TimeSeriesPoint{T: t, V: v})
	}
	return s, nil
}

// Split cuts the observed series at the training fraction; the remainder is
// the held-out test segment.
func Split(s gridsearch.Series, frac float64) (train, test gridsearch.Series) {
	n := int(float64(len(s)) * frac)
	if n > len(s) {
		n = len(s)
	}
	return s[:n], s[n:]
}

func parseTime(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, l := range timeLayouts {
		if t, err := time.Parse(l, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable timestamp %q", s)
}

// parseFloat tolerates comma decimals ("3,14").
func parseFloat(s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	if err != nil {
		return 0., fmt.Errorf("unparseable value %q", s)
	}
	return v, nil
}
