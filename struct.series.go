package gridsearch

import (
	"math"
	"time"
)

// TimeSeriesPoint is one sample of a scalar source series. Immutable once
// loaded; series are shared read-only across workers.
type TimeSeriesPoint struct {
	T time.Time
	V float64
}

// WindPoint is one sample of the wind series: speed plus bucketed direction.
type WindPoint struct {
	T     time.Time
	Speed float64
	Dir   string
}

type Series []TimeSeriesPoint

type WindSeries []WindPoint

// NearestValue returns the value of the sample minimizing |sample time - t|
// by linear scan; the first-encountered minimum wins on ties. ok is false
// for an empty series or a zero query time.
func (s Series) NearestValue(t time.Time) (float64, bool) {
	if len(s) == 0 || t.IsZero() {
		return 0., false
	}
	imin, dmin := 0, math.Inf(1)
	for i, p := range s {
		if d := math.Abs(p.T.Sub(t).Seconds()); d < dmin {
			imin, dmin = i, d
		}
	}
	return s[imin].V, true
}

// Nearest returns the wind sample closest in time to t; same tie rule as
// Series.NearestValue.
func (w WindSeries) Nearest(t time.Time) (WindPoint, bool) {
	if len(w) == 0 || t.IsZero() {
		return WindPoint{}, false
	}
	imin, dmin := 0, math.Inf(1)
	for i, p := range w {
		if d := math.Abs(p.T.Sub(t).Seconds()); d < dmin {
			imin, dmin = i, d
		}
	}
	return w[imin], true
}

// Values strips timestamps, preserving order.
func (s Series) Values() []float64 {
	v := make([]float64, len(s))
	for i, p := range s {
		v[i] = p.V
	}
	return v
}
