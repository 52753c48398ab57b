package gridsearch

import (
	"math/rand"

	"github.com/maseology/mmaths"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// ParameterSource is a lazy, finite, single-pass sequence of parameter sets.
// It must be driven by exactly one consumer; pulling from two places
// concurrently is not safe.
type ParameterSource interface {
	Next() (ParameterSet, bool)
	Size() int
}

// Ranges holds the candidate lists enumerated by the generator, in
// Sources/Directions order.
type Ranges struct {
	Weights    [4][]float64
	Lags       [4][]int
	WindFactor []float64
	Offset     []float64
	Fator      [8][]float64 // wind coefficient candidates per direction
}

const nBaseDims = 10 // 4 weights + 4 lags + windFactor + offset

func (r *Ranges) dim(i int) int {
	switch {
	case i < 4:
		return len(r.Weights[i])
	case i < 8:
		return len(r.Lags[i-4])
	case i == 8:
		return len(r.WindFactor)
	default:
		return len(r.Offset)
	}
}

// Size is the cartesian product of the base dimensions.
func (r *Ranges) Size() int {
	n := 1
	for i := 0; i < nBaseDims; i++ {
		n *= r.dim(i)
	}
	return n
}

// GridGenerator enumerates the base dimensions as a deterministic nested
// cartesian product (last dimension fastest); for every yielded set the 8
// direction coefficients are drawn from their candidate lists and each peso
// from [0.3,1.0) using the seeded source, so two instances with the same
// seed yield identical sequences while the base fields are reproducible
// regardless of seed.
type GridGenerator struct {
	rng  *rand.Rand
	rs   Ranges
	idx  [nBaseDims]int
	done bool
}

func NewGridGenerator(rs Ranges, seed int64) *GridGenerator {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	g := &GridGenerator{rng: rng, rs: rs}
	for i := 0; i < nBaseDims; i++ {
		if rs.dim(i) == 0 {
			g.done = true // an empty candidate list empties the whole space
			break
		}
	}
	return g
}

func (g *GridGenerator) Size() int { return g.rs.Size() }

// Next yields the next fully populated ParameterSet; ok is false once the
// space is exhausted.
func (g *GridGenerator) Next() (ParameterSet, bool) {
	if g.done {
		return ParameterSet{}, false
	}

	var p ParameterSet
	for i := 0; i < 4; i++ {
		p.Weights[i] = g.rs.Weights[i][g.idx[i]]
		p.Lags[i] = g.rs.Lags[i][g.idx[i+4]]
	}
	p.WindFactor = g.rs.WindFactor[g.idx[8]]
	p.Offset = g.rs.Offset[g.idx[9]]
	g.draw(&p)

	// advance odometer
	for i := nBaseDims - 1; i >= 0; i-- {
		g.idx[i]++
		if g.idx[i] < g.rs.dim(i) {
			return p, true
		}
		g.idx[i] = 0
	}
	g.done = true
	return p, true
}

func (g *GridGenerator) draw(p *ParameterSet) {
	for i := range Directions {
		c := g.rs.Fator[i]
		if len(c) > 0 {
			p.Fator[i] = c[g.rng.Intn(len(c))]
		}
		p.Peso[i] = mmaths.LinearTransform(0.3, 1.0, g.rng.Float64())
	}
}
