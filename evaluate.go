package gridsearch

import (
	"fmt"
	"log"
	"time"
)

// WorkChunk is the unit of dispatch: an ordered batch of parameter sets
// consumed exactly once by exactly one worker.
type WorkChunk struct {
	ID   int
	Pars []ParameterSet
}

type chunkResult struct {
	wid       int
	processed int
	relevant  int
	err       error
}

// evaluator holds one worker's read-only view of the input and observation
// series. Workers never mutate it.
type evaluator struct {
	in       *InputSet
	trainT   []time.Time
	trainObs []float64
	testT    []time.Time
	testObs  []float64
	minR2    float64
	maxRmse  float64
}

func newEvaluator(in *InputSet, train, test Series, minR2, maxRmse float64) *evaluator {
	ev := &evaluator{in: in, minR2: minR2, maxRmse: maxRmse}
	for _, p := range train {
		ev.trainT = append(ev.trainT, p.T)
		ev.trainObs = append(ev.trainObs, p.V)
	}
	for _, p := range test {
		ev.testT = append(ev.testT, p.T)
		ev.testObs = append(ev.testObs, p.V)
	}
	return ev
}

// evalSet scores one parameter set on the training split and independently
// on the held-out split.
func (ev *evaluator) evalSet(p ParameterSet) EvaluationResult {
	m := p.Model()
	r := NewEvaluationResult(p)

	sim := make([]float64, len(ev.trainT))
	for i, t := range ev.trainT {
		sim[i] = Predict(&m, ev.in, t)
	}
	r.TrainR2 = R2(ev.trainObs, sim)
	r.TrainRmse = Rmse(ev.trainObs, sim)

	tsim := make([]float64, len(ev.testT))
	for i, t := range ev.testT {
		tsim[i] = Predict(&m, ev.in, t)
	}
	r.TestR2 = R2(ev.testObs, tsim)
	r.TestRmse = Rmse(ev.testObs, tsim)
	return r
}

func (ev *evaluator) isRelevant(r *EvaluationResult) bool {
	return r.TrainR2 >= ev.minR2 && r.TrainRmse <= ev.maxRmse
}

// evalChunk scores every set in the chunk, writing each result through the
// worker's own sink. A panic while scoring one set is logged and that one
// result omitted; a write failure fails the whole chunk.
func (ev *evaluator) evalChunk(c WorkChunk, w *ResultWriter) (processed, relevant int, err error) {
	for _, p := range c.Pars {
		r, ok := ev.evalOne(c.ID, p)
		if !ok {
			continue
		}
		if err = w.Write(&r); err != nil {
			return processed, relevant, fmt.Errorf("chunk %d: %v", c.ID, err)
		}
		processed++
		if ev.isRelevant(&r) {
			relevant++
		}
	}
	return processed, relevant, nil
}

func (ev *evaluator) evalOne(cid int, p ParameterSet) (r EvaluationResult, ok bool) {
	defer func() {
		if rec := recover(); rec != nil {
			log.Printf(" gridsearch: chunk %d: evaluation panic, result dropped: %v", cid, rec)
			ok = false
		}
	}()
	return ev.evalSet(p), true
}
