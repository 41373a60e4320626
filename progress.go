package imexport

import (
	"math"
	"sync"
)

// Tracker holds the progress counters for one im-/export run and the
// percentage computation over them.
//
// All counter mutations run under one mutex so a percentage computation
// always observes a consistent snapshot of the counter set. Publishing to
// the hub happens after the lock is released.
//
// Counters are reset only by constructing a new tracker (a new orchestrator
// instance); there is no explicit reset.
type Tracker struct {
	hub *Hub

	mu                sync.Mutex
	dataSetsToProcess int
	processedDataSets int
	subRuns           int
	finishedSubRuns   int
	percentage        float64
}

// ProgressSnapshot is a consistent copy of the tracker's counters.
type ProgressSnapshot struct {
	DataSetsToProcess int
	ProcessedDataSets int
	SubRuns           int
	FinishedSubRuns   int
	Percentage        float64
}

// NewTracker creates a tracker publishing through the given hub.
func NewTracker(hub *Hub) *Tracker {
	return &Tracker{hub: hub}
}

// AddDataSetsToProcess increases the total units of work by n.
func (t *Tracker) AddDataSetsToProcess(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.dataSetsToProcess += n
}

// SetSubRuns sets the number of sub-runs (tables) in the run. Intended to
// be called once, before processing begins.
func (t *Tracker) SetSubRuns(n int) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.subRuns = n
}

// AddProcessedDataSets increases the processed count by n, then recomputes
// the percentage and publishes it.
func (t *Tracker) AddProcessedDataSets(n int) {
	t.mu.Lock()
	t.processedDataSets += n
	p := t.recalculateLocked()
	t.mu.Unlock()

	t.hub.PublishProgress(p)
}

// FinishDataSetProcess marks one data set as processed. Equivalent to
// AddProcessedDataSets(1).
func (t *Tracker) FinishDataSetProcess() {
	t.AddProcessedDataSets(1)
}

// FinishSubRun marks one sub-run as finished. It does not itself trigger a
// recompute or publish.
func (t *Tracker) FinishSubRun() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.finishedSubRuns++
}

// Recalculate recomputes the percentage from the current counters and
// publishes it.
func (t *Tracker) Recalculate() {
	t.mu.Lock()
	p := t.recalculateLocked()
	t.mu.Unlock()

	t.hub.PublishProgress(p)
}

// Republish publishes the last computed percentage without recomputing.
// Used to refresh observers when no new progress has been made.
func (t *Tracker) Republish() {
	t.mu.Lock()
	p := t.percentage
	t.mu.Unlock()

	t.hub.PublishProgress(p)
}

// Snapshot returns a consistent copy of the counters.
func (t *Tracker) Snapshot() ProgressSnapshot {
	t.mu.Lock()
	defer t.mu.Unlock()
	return ProgressSnapshot{
		DataSetsToProcess: t.dataSetsToProcess,
		ProcessedDataSets: t.processedDataSets,
		SubRuns:           t.subRuns,
		FinishedSubRuns:   t.finishedSubRuns,
		Percentage:        t.percentage,
	}
}

// recalculateLocked computes and stores the percentage. Caller must hold
// t.mu.
//
// Progress is apportioned across the remaining sub-runs so that completing
// one table does not make the overall percentage jump ahead of tables not
// yet started.
func (t *Tracker) recalculateLocked() float64 {
	var p float64
	if t.dataSetsToProcess != 0 {
		p = float64(t.processedDataSets) / float64(t.dataSetsToProcess) * 100 /
			float64(t.unfinishedSubRunsLocked())
	}
	if math.IsNaN(p) {
		p = 0
	}
	t.percentage = p
	return p
}

// unfinishedSubRunsLocked returns subRuns - finishedSubRuns, clamped to a
// minimum of 1 so progress is never amplified once all sub-runs are
// nominally finished. Caller must hold t.mu.
func (t *Tracker) unfinishedSubRunsLocked() int {
	unfinished := t.subRuns - t.finishedSubRuns
	if unfinished <= 0 {
		unfinished = 1
	}
	return unfinished
}
