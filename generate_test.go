package gridsearch

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRanges() Ranges {
	var r Ranges
	r.Weights = [4][]float64{{0., 1.}, {0.5}, {1.}, {0.}}
	r.Lags = [4][]int{{0, 6, 12}, {0}, {24}, {0}}
	r.WindFactor = []float64{0., 0.1}
	r.Offset = []float64{-1., 0., 1.}
	for i := range r.Fator {
		r.Fator[i] = []float64{-1., 0., 1.}
	}
	return r
}

func drain(src ParameterSource) []ParameterSet {
	var out []ParameterSet
	for {
		p, ok := src.Next()
		if !ok {
			return out
		}
		out = append(out, p)
	}
}

func TestGridGeneratorExhaustsSpace(t *testing.T) {
	rs := testRanges()
	g := NewGridGenerator(rs, 1)
	want := 2 * 3 * 2 * 3 // weights[0] x lags[0] x windFactor x offset
	require.Equal(t, want, g.Size())

	all := drain(g)
	require.Len(t, all, want)

	// single-pass: exhausted for good
	_, ok := g.Next()
	assert.False(t, ok)

	// every base combination appears exactly once
	seen := map[[4]float64]int{}
	for _, p := range all {
		k := [4]float64{p.Weights[0], float64(p.Lags[0]), p.WindFactor, p.Offset}
		seen[k]++
	}
	require.Len(t, seen, want)
	for k, n := range seen {
		assert.Equal(t, 1, n, "combination %v", k)
	}
}

func TestGridGeneratorBaseFieldsDeterministic(t *testing.T) {
	rs := testRanges()
	a := drain(NewGridGenerator(rs, 1))
	b := drain(NewGridGenerator(rs, 99)) // different seed
	require.Equal(t, len(a), len(b))
	for i := range a {
		assert.Equal(t, a[i].Weights, b[i].Weights)
		assert.Equal(t, a[i].Lags, b[i].Lags)
		assert.Equal(t, a[i].WindFactor, b[i].WindFactor)
		assert.Equal(t, a[i].Offset, b[i].Offset)
	}
}

func TestGridGeneratorSeedReproducible(t *testing.T) {
	rs := testRanges()
	a := drain(NewGridGenerator(rs, 42))
	b := drain(NewGridGenerator(rs, 42))
	assert.Equal(t, a, b) // including the random fator/peso draws
}

func TestGridGeneratorRandomDraws(t *testing.T) {
	rs := testRanges()
	for _, p := range drain(NewGridGenerator(rs, 7)) {
		for i := range Directions {
			assert.Contains(t, rs.Fator[i], p.Fator[i])
			assert.GreaterOrEqual(t, p.Peso[i], 0.3)
			assert.Less(t, p.Peso[i], 1.0)
		}
	}
}

func TestGridGeneratorEmptyDimension(t *testing.T) {
	rs := testRanges()
	rs.Offset = nil
	g := NewGridGenerator(rs, 1)
	assert.Equal(t, 0, g.Size())
	_, ok := g.Next()
	assert.False(t, ok)
}

func TestLHCSampler(t *testing.T) {
	rs := testRanges()
	s := NewLHCSampler(rs, 50, 42)
	require.Equal(t, 50, s.Size())

	all := drain(s)
	require.Len(t, all, 50)
	for _, p := range all {
		assert.Contains(t, rs.Weights[0], p.Weights[0])
		assert.Contains(t, rs.Lags[0], p.Lags[0])
		assert.Contains(t, rs.WindFactor, p.WindFactor)
		assert.Contains(t, rs.Offset, p.Offset)
		for i := range Directions {
			assert.Contains(t, rs.Fator[i], p.Fator[i])
			assert.GreaterOrEqual(t, p.Peso[i], 0.3)
			assert.Less(t, p.Peso[i], 1.0)
		}
	}
}
