package gridsearch

import (
	"math/rand"

	"github.com/maseology/montecarlo/smpln"
	mrg63k3a "github.com/maseology/goRNG/MRG63k3a"
)

// LHCSampler is an alternate parameter source: instead of exhausting the
// cartesian product it draws n Latin-hypercube samples over the same base
// dimensions, each deviate mapped onto its candidate list. Wind coefficients
// and peso values are drawn exactly as the grid generator draws them.
type LHCSampler struct {
	rng *rand.Rand
	rs  Ranges
	u   [][]float64 // sampling plan deviates, u[dim][sample]
	n   int
	k   int
}

func NewLHCSampler(rs Ranges, n int, seed int64) *LHCSampler {
	rng := rand.New(mrg63k3a.New())
	rng.Seed(seed)
	sp := smpln.NewLHC(rng, n, nBaseDims, false)
	return &LHCSampler{
		rng: rng,
		rs:  rs,
		u:   sp.U,
		n:   n,
	}
}

func (s *LHCSampler) Size() int { return s.n }

func (s *LHCSampler) Next() (ParameterSet, bool) {
	if s.k >= s.n {
		return ParameterSet{}, false
	}
	k := s.k
	s.k++

	pick := func(j int) int {
		nd := s.rs.dim(j)
		i := int(s.u[j][k] * float64(nd))
		if i >= nd {
			i = nd - 1
		}
		return i
	}

	var p ParameterSet
	for i := 0; i < 4; i++ {
		p.Weights[i] = s.rs.Weights[i][pick(i)]
		p.Lags[i] = s.rs.Lags[i][pick(i+4)]
	}
	p.WindFactor = s.rs.WindFactor[pick(8)]
	p.Offset = s.rs.Offset[pick(9)]

	g := GridGenerator{rng: s.rng, rs: s.rs}
	g.draw(&p)
	return p, true
}
