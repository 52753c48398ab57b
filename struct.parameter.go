package gridsearch

import (
	"math"
	"strconv"
	"strings"
)

// ParameterSet is one point in the calibration search space. Fully populated
// by the generator and never mutated afterwards. Weights, lags and the two
// 8-vectors follow the Sources/Directions column order.
type ParameterSet struct {
	Weights    [4]float64 // peso per source (the vento weight is persisted but not consumed by the model)
	Lags       [4]int     // hours each source is shifted backward
	WindFactor float64
	Offset     float64
	Fator      [8]float64 // wind coefficient per direction
	Peso       [8]float64 // auxiliary direction weight, drawn from [0.3,1.0), persisted only
}

// ModelConfig is the subset of a ParameterSet reshaped for evaluation.
type ModelConfig struct {
	Weights    map[string]float64
	Lags       map[string]int
	Coeff      map[string]float64 // direction -> fator
	WindFactor float64
	Offset     float64
}

// Model derives the evaluation view of p.
func (p *ParameterSet) Model() ModelConfig {
	m := ModelConfig{
		Weights:    make(map[string]float64, 4),
		Lags:       make(map[string]int, 4),
		Coeff:      make(map[string]float64, 8),
		WindFactor: p.WindFactor,
		Offset:     p.Offset,
	}
	for i, s := range Sources {
		m.Weights[s] = p.Weights[i]
		m.Lags[s] = p.Lags[i]
	}
	for i, d := range Directions {
		m.Coeff[d] = p.Fator[i]
	}
	return m
}

// EvaluationResult is a scored ParameterSet. Metrics default to their
// sentinels (-Inf for R², +Inf for RMSE) so threshold filters naturally
// exclude anything that was never evaluated.
type EvaluationResult struct {
	Par       ParameterSet
	TrainR2   float64
	TestR2    float64
	TrainRmse float64
	TestRmse  float64
}

func NewEvaluationResult(p ParameterSet) EvaluationResult {
	return EvaluationResult{
		Par:       p,
		TrainR2:   math.Inf(-1),
		TestR2:    math.Inf(-1),
		TrainRmse: math.Inf(1),
		TestRmse:  math.Inf(1),
	}
}

// fixed 30-column result schema
const NResultCols = 30

var ResultHeader = strings.Join(resultCols(), ";")

func resultCols() []string {
	c := make([]string, 0, NResultCols)
	for _, s := range Sources {
		c = append(c, "peso_"+s)
	}
	for _, s := range Sources {
		c = append(c, "lag_"+s)
	}
	c = append(c, "fator_vento", "offset")
	for _, d := range Directions {
		c = append(c, "fator_"+d)
	}
	for _, d := range Directions {
		c = append(c, "peso_"+d)
	}
	return append(c, "r2_treino", "r2_teste", "rmse_treino", "rmse_teste")
}

// Row renders r as the fixed column set, metrics at 4 decimal places.
func (r *EvaluationResult) Row() []string {
	f := make([]string, 0, NResultCols)
	for _, w := range r.Par.Weights {
		f = append(f, ftoa(w))
	}
	for _, l := range r.Par.Lags {
		f = append(f, strconv.Itoa(l))
	}
	f = append(f, ftoa(r.Par.WindFactor), ftoa(r.Par.Offset))
	for _, v := range r.Par.Fator {
		f = append(f, ftoa(v))
	}
	for _, v := range r.Par.Peso {
		f = append(f, ftoa(v))
	}
	return append(f,
		metrictoa(r.TrainR2),
		metrictoa(r.TestR2),
		metrictoa(r.TrainRmse),
		metrictoa(r.TestRmse))
}

func ftoa(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func metrictoa(v float64) string {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return strconv.FormatFloat(v, 'g', -1, 64) // "+Inf"/"-Inf"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

// columnDefault is the substitution for an absent or malformed field:
// 0 for base parameters and fator columns, 0.5 for the direction peso
// columns, -Inf for R², +Inf for RMSE.
func columnDefault(i int) string {
	switch {
	case i < 18: // weights, lags, fator_vento, offset, fator_<dir>
		return "0"
	case i < 26: // peso_<dir>
		return "0.5"
	case i < 28: // r2
		return "-Inf"
	default: // rmse
		return "+Inf"
	}
}

// NormalizeRow forces fields to exactly NResultCols entries, substituting
// the column default for anything absent, empty or unparseable.
func NormalizeRow(fields []string) []string {
	out := make([]string, NResultCols)
	for i := 0; i < NResultCols; i++ {
		if i >= len(fields) {
			out[i] = columnDefault(i)
			continue
		}
		s := strings.TrimSpace(fields[i])
		if s == "" {
			out[i] = columnDefault(i)
			continue
		}
		if _, err := strconv.ParseFloat(s, 64); err != nil {
			out[i] = columnDefault(i)
			continue
		}
		out[i] = s
	}
	return out
}
