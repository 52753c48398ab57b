// Package gridsearch calibrates a lagged multi-source river level model by
// exhaustive enumeration: every combination of station weights, lags, wind
// factors and offsets is evaluated against an observed series and scored
// (R², RMSE). Work is chunked out to a fixed pool of workers, partial
// results are written to rotating csv files and merged once the pool drains.
package gridsearch

import "time"

// the three scalar source stations plus the wind series
const (
	SrcPalmas = "palmas"
	SrcItu    = "itu"
	SrcBa     = "ba"
	SrcVento  = "vento"
)

// Sources in persisted column order.
var Sources = [4]string{SrcPalmas, SrcItu, SrcBa, SrcVento}

// Directions in persisted column order (8 cardinal sectors).
var Directions = [8]string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

const nearzero = 1e-10

// SectorFromDegrees buckets a compass bearing into one of the 8 cardinal
// sectors; boundaries every 45° starting at 22.5°, wrapping to N beyond 337.5°.
func SectorFromDegrees(deg float64) string {
	switch {
	case deg <= 22.5:
		return "N"
	case deg <= 67.5:
		return "NE"
	case deg <= 112.5:
		return "E"
	case deg <= 157.5:
		return "SE"
	case deg <= 202.5:
		return "S"
	case deg <= 247.5:
		return "SW"
	case deg <= 292.5:
		return "W"
	case deg <= 337.5:
		return "NW"
	default:
		return "N"
	}
}

func lagDuration(hours int) time.Duration {
	return -time.Duration(hours) * 3600 * time.Second
}
