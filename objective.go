package gridsearch

import (
	"math"

	"github.com/maseology/objfunc"
)

// R2 scores sim against obs as 1-SSE/SST (Nash-Sutcliffe against the sample
// mean). Near-constant observations (SST ≤ 1e-10) and empty inputs score 0.
// Rounded to 4 decimal places.
func R2(obs, sim []float64) float64 {
	if len(obs) == 0 || len(obs) != len(sim) {
		return 0.
	}
	mean := 0.
	for _, o := range obs {
		mean += o
	}
	mean /= float64(len(obs))
	sst := 0.
	for _, o := range obs {
		sst += (o - mean) * (o - mean)
	}
	if sst <= nearzero {
		return 0.
	}
	return round4(objfunc.NSE(obs, sim))
}

// Rmse is the root mean squared error, +Inf on empty input, rounded to 4
// decimal places.
func Rmse(obs, sim []float64) float64 {
	if len(obs) == 0 || len(obs) != len(sim) {
		return math.Inf(1)
	}
	return round4(objfunc.RMSE(obs, sim))
}

func round4(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return math.Round(v*10000.) / 10000.
}
