package gridsearch

import (
	"math"
	"time"
)

// InputSet bundles the four input series handed (shared, read-only) to every
// worker at spawn.
type InputSet struct {
	Palmas, Itu, Ba Series
	Wind            WindSeries
}

func (in *InputSet) scalar(src string) Series {
	switch src {
	case SrcPalmas:
		return in.Palmas
	case SrcItu:
		return in.Itu
	case SrcBa:
		return in.Ba
	}
	return nil
}

// Predict evaluates the weighted additive formula at the target time:
// each scalar source contributes weight × value at (t - lag), wind
// contributes speed × fator[direction] × windFactor at its own lag, plus
// the offset. Missing data, missing coefficients and non-finite speeds
// degrade to a zero contribution; the result is always finite.
func Predict(m *ModelConfig, in *InputSet, t time.Time) float64 {
	if t.IsZero() { // shifting an invalid target would make it look valid
		return m.Offset
	}
	p := m.Offset
	for _, src := range []string{SrcPalmas, SrcItu, SrcBa} {
		s := in.scalar(src)
		v, ok := s.NearestValue(t.Add(lagDuration(m.Lags[src])))
		if !ok {
			continue
		}
		p += m.Weights[src] * v
	}
	p += windContribution(m, in.Wind, t)
	if math.IsNaN(p) || math.IsInf(p, 0) {
		return m.Offset
	}
	return p
}

func windContribution(m *ModelConfig, w WindSeries, t time.Time) float64 {
	wp, ok := w.Nearest(t.Add(lagDuration(m.Lags[SrcVento])))
	if !ok {
		return 0.
	}
	coeff, ok := m.Coeff[wp.Dir]
	if !ok {
		return 0.
	}
	if math.IsNaN(wp.Speed) || math.IsInf(wp.Speed, 0) {
		return 0.
	}
	return wp.Speed * coeff * m.WindFactor
}
