package gridsearch

import (
	"log"
	"time"
)

// Counters are the run-wide totals, owned solely by the dispatcher; workers
// report deltas over the completion channel and never touch them directly.
type Counters struct {
	Processed int
	Relevant  int
}

// Hooks are the periodic side effects the dispatcher triggers at its counter
// cadences. Any nil hook is skipped.
type Hooks struct {
	FreeMemory func()                        // every Pool.GCEvery processed
	Progress   func(processed, relevant int) // every Pool.ProgressEvery processed
	Checkpoint func(processed, relevant int) // every Pool.CheckpointEvery processed
}

// Pool is the dispatcher over a fixed set of long-lived workers. One chunk in
// flight per worker; an idle-poll with a bounded delay is the only flow
// control.
type Pool struct {
	Nwrkrs    int
	ChunkSize int
	PollDelay time.Duration

	GCEvery         int
	ProgressEvery   int
	CheckpointEvery int

	MinR2   float64
	MaxRmse float64

	Hooks Hooks
}

// Run drives src to exhaustion. Each worker is spawned once with shared
// read-only series data and its own result writer (sinks[i]); termination
// waits for the generator to drain AND every outstanding chunk to return,
// so a worker's last chunk is never abandoned.
func (d *Pool) Run(src ParameterSource, in *InputSet, train, test Series, sinks []*ResultWriter) Counters {
	n := d.Nwrkrs
	if n < 1 {
		n = 1
	}
	poll := d.PollDelay
	if poll <= 0 {
		poll = 5 * time.Millisecond
	}

	ev := newEvaluator(in, train, test, d.MinR2, d.MaxRmse)

	rin := make([]chan WorkChunk, n)
	rout := make(chan chunkResult, n)
	busy := make([]bool, n)
	for i := 0; i < n; i++ {
		rin[i] = make(chan WorkChunk, 1)
		go func(wid int) {
			for c := range rin[wid] {
				p, r, err := ev.evalChunk(c, sinks[wid])
				rout <- chunkResult{wid: wid, processed: p, relevant: r, err: err}
			}
		}(i)
	}

	var cnt Counters
	var lastGC, lastProg, lastChk int
	outstanding, nextID, drained := 0, 0, false

	collect := func(res chunkResult) {
		busy[res.wid] = false
		outstanding--
		if res.err != nil {
			// drop the chunk's results; no retry, no escalation
			log.Printf(" gridsearch: worker %d: %v", res.wid, res.err)
			return
		}
		cnt.Processed += res.processed
		cnt.Relevant += res.relevant
		d.fire(&cnt, &lastGC, &lastProg, &lastChk)
	}

	for !drained {
		// reap any finished workers without blocking
		for {
			select {
			case res := <-rout:
				collect(res)
				continue
			default:
			}
			break
		}

		wid := -1
		for i := 0; i < n; i++ {
			if !busy[i] {
				wid = i
				break
			}
		}
		if wid < 0 {
			time.Sleep(poll)
			continue
		}

		c := WorkChunk{ID: nextID}
		for len(c.Pars) < d.ChunkSize {
			p, ok := src.Next()
			if !ok {
				drained = true
				break
			}
			c.Pars = append(c.Pars, p)
		}
		if len(c.Pars) == 0 {
			break // drained on a chunk boundary
		}
		nextID++
		busy[wid] = true
		outstanding++
		rin[wid] <- c
	}

	// generator drained: wait out the in-flight chunks
	for outstanding > 0 {
		collect(<-rout)
	}
	for i := 0; i < n; i++ {
		close(rin[i])
	}
	return cnt
}

// fire invokes each hook once per cadence interval crossed since the last
// invocation.
func (d *Pool) fire(cnt *Counters, lastGC, lastProg, lastChk *int) {
	if d.Hooks.FreeMemory != nil && d.GCEvery > 0 && cnt.Processed/d.GCEvery > *lastGC {
		*lastGC = cnt.Processed / d.GCEvery
		d.Hooks.FreeMemory()
	}
	if d.Hooks.Progress != nil && d.ProgressEvery > 0 && cnt.Processed/d.ProgressEvery > *lastProg {
		*lastProg = cnt.Processed / d.ProgressEvery
		d.Hooks.Progress(cnt.Processed, cnt.Relevant)
	}
	if d.Hooks.Checkpoint != nil && d.CheckpointEvery > 0 && cnt.Processed/d.CheckpointEvery > *lastChk {
		*lastChk = cnt.Processed / d.CheckpointEvery
		d.Hooks.Checkpoint(cnt.Processed, cnt.Relevant)
	}
}
