package main

import (
	"flag"
	"fmt"
	"log"
	"runtime/debug"
	"time"

	"github.com/KmiroK/GridSearch"
	"github.com/KmiroK/GridSearch/forcing"
	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"
)

// input file names expected under dataDir
const (
	fpNivel  = "nivel.csv" // observed level (mandatory)
	fpPalmas = "palmas.csv"
	fpItu    = "itu.csv"
	fpBa     = "ba.csv"
	fpVento  = "vento.csv"
)

func main() {
	cfgfp := flag.String("c", "config.json", "run configuration (json)")
	flag.Parse()

	fmt.Println("")
	tt := mmio.NewTimer()

	cfg, err := gridsearch.LoadConfig(*cfgfp)
	if err != nil {
		log.Fatalf(" gridsearch: %v", err)
	}

	// bootstrap output directories, clearing stale partials
	mmio.MakeDir(cfg.ResultsDir)
	mmio.MakeDir(cfg.CheckpointDir)
	mmio.DeleteAllInDirectory(cfg.ResultsDir, ".csv")

	// the observed series is the one mandatory input
	obs, err := forcing.LoadSeries(cfg.DataDir + fpNivel)
	if err != nil || len(obs) == 0 {
		log.Fatalf(" gridsearch: observed series %s%s: %v (rows: %d)", cfg.DataDir, fpNivel, err, len(obs))
	}
	train, test := forcing.Split(obs, cfg.TrainFrac)

	in := &gridsearch.InputSet{
		Palmas: loadScalar(cfg.DataDir + fpPalmas),
		Itu:    loadScalar(cfg.DataDir + fpItu),
		Ba:     loadScalar(cfg.DataDir + fpBa),
	}
	if in.Wind, err = forcing.LoadWind(cfg.DataDir + fpVento); err != nil {
		log.Printf(" gridsearch: wind series unavailable, contribution degrades to 0: %v", err)
	}
	tt.Print("input load complete")

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	src := cfg.Source(seed)
	fmt.Printf(" searching %s parameter sets: %d workers, chunks of %d, train/test %d/%d steps\n",
		mmio.Thousands(int64(src.Size())), cfg.Workers, cfg.ChunkSize, len(train), len(test))

	uiprogress.Start()
	bar := uiprogress.AddBar(src.Size()).AppendCompleted().PrependElapsed()

	sinks := make([]*gridsearch.ResultWriter, cfg.Workers)
	for i := range sinks {
		sinks[i] = gridsearch.NewResultWriter(cfg.ResultsDir, i, cfg.Workers, cfg.MaxFileBytes)
	}

	d := gridsearch.Pool{
		Nwrkrs:          cfg.Workers,
		ChunkSize:       cfg.ChunkSize,
		GCEvery:         cfg.GCEvery,
		ProgressEvery:   cfg.ProgressEvery,
		CheckpointEvery: cfg.CheckpointEvery,
		MinR2:           cfg.MinR2,
		MaxRmse:         cfg.MaxRmse,
		Hooks: gridsearch.Hooks{
			FreeMemory: debug.FreeOSMemory,
			Progress:   func(processed, _ int) { bar.Set(processed) },
			Checkpoint: func(processed, relevant int) {
				if err := gridsearch.WriteCheckpoint(cfg.CheckpointDir, processed, relevant); err != nil {
					log.Printf(" gridsearch: %v", err)
				}
			},
		},
	}
	cnt := d.Run(src, in, train, test, sinks)
	for _, s := range sinks {
		s.Close()
	}
	bar.Set(cnt.Processed)
	uiprogress.Stop()

	if err := gridsearch.WriteCheckpoint(cfg.CheckpointDir, cnt.Processed, cnt.Relevant); err != nil {
		log.Printf(" gridsearch: %v", err)
	}

	nrows, err := gridsearch.Merge(cfg.ResultsDir, cfg.FinalFile)
	if err != nil {
		log.Printf(" gridsearch: merge: %v", err)
	}
	fmt.Printf(" %s sets evaluated (%s relevant); %s rows merged to %s\n",
		mmio.Thousands(int64(cnt.Processed)), mmio.Thousands(int64(cnt.Relevant)),
		mmio.Thousands(int64(nrows)), cfg.FinalFile)
	tt.Lap("run complete")
}

// loadScalar warns and degrades to an empty series so the model contributes
// 0 for that source rather than failing the run.
func loadScalar(fp string) gridsearch.Series {
	s, err := forcing.LoadSeries(fp)
	if err != nil {
		log.Printf(" gridsearch: %s unavailable, contribution degrades to 0: %v", fp, err)
		return nil
	}
	return s
}
