package gridsearch

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResultHeader(t *testing.T) {
	cols := strings.Split(ResultHeader, ";")
	require.Len(t, cols, NResultCols)
	assert.Equal(t, "peso_palmas", cols[0])
	assert.Equal(t, "lag_vento", cols[7])
	assert.Equal(t, "fator_vento", cols[8])
	assert.Equal(t, "offset", cols[9])
	assert.Equal(t, "fator_N", cols[10])
	assert.Equal(t, "peso_NW", cols[25])
	assert.Equal(t, "rmse_teste", cols[29])
}

func TestRowWidthAndSentinels(t *testing.T) {
	r := NewEvaluationResult(ParameterSet{})
	row := r.Row()
	require.Len(t, row, NResultCols)
	assert.Equal(t, "-Inf", row[26])
	assert.Equal(t, "-Inf", row[27])
	assert.Equal(t, "+Inf", row[28])
	assert.Equal(t, "+Inf", row[29])

	r.TrainR2, r.TrainRmse = 0.9876, 0.1234
	row = r.Row()
	assert.Equal(t, "0.9876", row[26])
	assert.Equal(t, "0.1234", row[28])
}

func TestNormalizeRow(t *testing.T) {
	t.Run("short row filled with column defaults", func(t *testing.T) {
		out := NormalizeRow([]string{"1", "2"})
		require.Len(t, out, NResultCols)
		assert.Equal(t, "1", out[0])
		assert.Equal(t, "2", out[1])
		assert.Equal(t, "0", out[2])    // base parameter
		assert.Equal(t, "0", out[17])   // fator
		assert.Equal(t, "0.5", out[18]) // peso
		assert.Equal(t, "0.5", out[25])
		assert.Equal(t, "-Inf", out[26]) // r2
		assert.Equal(t, "+Inf", out[29]) // rmse
	})
	t.Run("malformed and empty fields replaced", func(t *testing.T) {
		in := make([]string, NResultCols)
		in[0] = "not-a-number"
		in[18] = " "
		in[26] = "0.5"
		out := NormalizeRow(in)
		assert.Equal(t, "0", out[0])
		assert.Equal(t, "0.5", out[18])
		assert.Equal(t, "0.5", out[26])
	})
	t.Run("overlong row truncated", func(t *testing.T) {
		in := make([]string, NResultCols+5)
		for i := range in {
			in[i] = "1"
		}
		assert.Len(t, NormalizeRow(in), NResultCols)
	})
	t.Run("infinities survive round trips", func(t *testing.T) {
		r := NewEvaluationResult(ParameterSet{})
		out := NormalizeRow(r.Row())
		assert.Equal(t, "-Inf", out[26])
		assert.Equal(t, "+Inf", out[29])
	})
}

func TestModelConfigDerivation(t *testing.T) {
	p := ParameterSet{
		Weights:    [4]float64{1., 2., 3., 4.},
		Lags:       [4]int{1, 2, 3, 4},
		WindFactor: 0.5,
		Offset:     7.,
	}
	for i := range p.Fator {
		p.Fator[i] = float64(i)
	}
	m := p.Model()
	assert.Equal(t, 1., m.Weights[SrcPalmas])
	assert.Equal(t, 4., m.Weights[SrcVento])
	assert.Equal(t, 3, m.Lags[SrcBa])
	assert.Equal(t, 0.5, m.WindFactor)
	assert.Equal(t, 7., m.Offset)
	assert.Equal(t, 0., m.Coeff["N"])
	assert.Equal(t, 7., m.Coeff["NW"])
	assert.False(t, math.IsNaN(m.Offset))
}
