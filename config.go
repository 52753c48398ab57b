package gridsearch

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// Config is the run configuration, decoded from a JSON file. Directory
// fields are used as path prefixes and are normalized to a trailing slash.
type Config struct {
	DataDir       string `json:"dataDir"`
	ResultsDir    string `json:"resultsDir"`
	CheckpointDir string `json:"checkpointDir"`
	FinalFile     string `json:"finalFile"`

	Workers   int     `json:"workers"`
	ChunkSize int     `json:"chunkSize"`
	TrainFrac float64 `json:"trainFrac"` // fraction of the observed series used for training

	GCEvery         int `json:"gcEvery"`
	ProgressEvery   int `json:"progressEvery"`
	CheckpointEvery int `json:"checkpointEvery"`
	MaxFileBytes    int `json:"maxFileBytes"`

	MinR2   float64 `json:"minR2"`
	MaxRmse float64 `json:"maxRmse"`

	Sampler string `json:"sampler"` // "grid" (exhaustive, default) or "lhc"
	Samples int    `json:"samples"` // lhc only
	Seed    int64  `json:"seed"`    // 0 seeds from the clock

	Weights    map[string][]float64 `json:"weights"`    // keyed by source
	Lags       map[string][]int     `json:"lags"`       // keyed by source
	WindFactor []float64            `json:"windFactor"`
	Offset     []float64            `json:"offset"`
	Fator      map[string][]float64 `json:"fator"` // keyed by direction
}

func DefaultConfig() Config {
	c := Config{
		DataDir:         "dat/",
		ResultsDir:      "results/",
		CheckpointDir:   "checkpoints/",
		FinalFile:       "results_final.csv",
		Workers:         4,
		ChunkSize:       250,
		TrainFrac:       0.8,
		GCEvery:         100000,
		ProgressEvery:   10000,
		CheckpointEvery: 50000,
		MaxFileBytes:    10 << 20,
		MinR2:           0.9,
		MaxRmse:         0.35,
		Sampler:         "grid",
		Samples:         10000,
		Weights:         map[string][]float64{},
		Lags:            map[string][]int{},
		Fator:           map[string][]float64{},
	}
	for _, s := range Sources {
		c.Weights[s] = []float64{0., 0.5, 1.}
		c.Lags[s] = []int{0, 6, 12, 24}
	}
	c.WindFactor = []float64{0., 0.05, 0.1}
	c.Offset = []float64{0.}
	for _, d := range Directions {
		c.Fator[d] = []float64{-1., 0., 1.}
	}
	return c
}

// LoadConfig reads fp over the defaults; a missing file is an error.
func LoadConfig(fp string) (Config, error) {
	c := DefaultConfig()
	b, err := os.ReadFile(fp)
	if err != nil {
		return c, fmt.Errorf("LoadConfig: %v", err)
	}
	if err := json.Unmarshal(b, &c); err != nil {
		return c, fmt.Errorf("LoadConfig: %s: %v", fp, err)
	}
	c.normalize()
	return c, c.check()
}

func (c *Config) normalize() {
	for _, d := range []*string{&c.DataDir, &c.ResultsDir, &c.CheckpointDir} {
		if *d != "" && !strings.HasSuffix(*d, "/") {
			*d += "/"
		}
	}
}

func (c *Config) check() error {
	if c.Workers < 1 {
		return fmt.Errorf("config: workers must be >= 1")
	}
	if c.ChunkSize < 1 {
		return fmt.Errorf("config: chunkSize must be >= 1")
	}
	if c.TrainFrac <= 0. || c.TrainFrac > 1. {
		return fmt.Errorf("config: trainFrac must be in (0,1]")
	}
	if c.Sampler != "grid" && c.Sampler != "lhc" {
		return fmt.Errorf("config: unknown sampler %q", c.Sampler)
	}
	if c.Sampler == "lhc" && c.Samples < 1 {
		return fmt.Errorf("config: samples must be >= 1 for the lhc sampler")
	}
	for _, s := range Sources {
		if len(c.Weights[s]) == 0 {
			return fmt.Errorf("config: empty weight list for source %s", s)
		}
		if len(c.Lags[s]) == 0 {
			return fmt.Errorf("config: empty lag list for source %s", s)
		}
	}
	if len(c.WindFactor) == 0 || len(c.Offset) == 0 {
		return fmt.Errorf("config: windFactor and offset lists must not be empty")
	}
	for _, d := range Directions {
		if len(c.Fator[d]) == 0 {
			return fmt.Errorf("config: empty fator list for direction %s", d)
		}
	}
	return nil
}

// Ranges assembles the generator's candidate lists in column order.
func (c *Config) Ranges() Ranges {
	var r Ranges
	for i, s := range Sources {
		r.Weights[i] = c.Weights[s]
		r.Lags[i] = c.Lags[s]
	}
	r.WindFactor = c.WindFactor
	r.Offset = c.Offset
	for i, d := range Directions {
		r.Fator[i] = c.Fator[d]
	}
	return r
}

// Source builds the configured parameter source.
func (c *Config) Source(seed int64) ParameterSource {
	if c.Sampler == "lhc" {
		return NewLHCSampler(c.Ranges(), c.Samples, seed)
	}
	return NewGridGenerator(c.Ranges(), seed)
}
