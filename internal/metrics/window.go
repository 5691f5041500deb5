// Package metrics accumulates training statistics between status reports.
package metrics

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Window accumulates the output errors of the steps since the last Snapshot.
type Window struct {
	steps    int
	absSum   float64
	sqSum    float64
	count    int
	lastRate float64
	lastErrs []float64
}

// Record adds the errors of a single step, and the learning rate it used.
func (w *Window) Record(errs []float64, learningRate float64) {
	w.steps++
	w.count += len(errs)
	for _, e := range errs {
		w.absSum += math.Abs(e)
	}
	w.sqSum += floats.Dot(errs, errs)
	w.lastRate = learningRate
	w.lastErrs = append(w.lastErrs[:0], errs...)
}

// Snapshot returns the aggregated statistics and resets the window.
func (w *Window) Snapshot() Snapshot {
	snap := Snapshot{Steps: w.steps, LearningRate: w.lastRate}
	if w.count > 0 {
		snap.MeanAbsError = w.absSum / float64(w.count)
		snap.RMSError = math.Sqrt(w.sqSum / float64(w.count))
	}
	snap.LastErrors = make([]float64, len(w.lastErrs))
	copy(snap.LastErrors, w.lastErrs)

	w.steps = 0
	w.absSum = 0
	w.sqSum = 0
	w.count = 0
	w.lastErrs = w.lastErrs[:0]
	return snap
}

// Snapshot represents loggable statistics.
type Snapshot struct {
	Steps        int
	MeanAbsError float64
	RMSError     float64
	LearningRate float64
	// the errors of the most recent step
	LastErrors []float64
}
