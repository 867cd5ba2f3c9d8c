package advanced

import "sync"

// Stages of a top level analysis, in the order they are emitted.
type Stage string

const (
	StageSort   Stage = "sort"
	StageSplit  Stage = "split"
	StageHalves Stage = "halves"
	StageDelta  Stage = "delta"
	StageStrip  Stage = "strip"
	StageScan   Stage = "scan"
	StageMerge  Stage = "merge"
)

// Summary of one stage of the top level analysis. Only the fields relevant to
// the stage are set; the rest are zero.
type Event struct {
	Stage Stage

	// sort
	Points int
	// split
	LeftCount, RightCount int
	MidX                  float64
	// halves
	LeftDistance, RightDistance float64
	// delta
	Delta float64
	// strip
	StripSize int
	// scan
	Comparisons int
	// scan, merge
	Distance float64
	// merge
	CrossCase bool
}

// Receives stage events. Observers are called synchronously from Analyze, and
// only for the top level split, never from inside the recursion.
type Observer interface {
	Observe(Event)
}

type ObserverFunc func(Event)

func (f ObserverFunc) Observe(e Event) { f(e) }

// Observer that keeps every event it sees.
type Recorder struct {
	mu     sync.Mutex
	events []Event
}

func (r *Recorder) Observe(e Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, e)
}

func (r *Recorder) Events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	result := make([]Event, len(r.events))
	copy(result, r.events)
	return result
}

// Find the first event for the given stage.
func (r *Recorder) Find(stage Stage) (Event, bool) {
	for _, e := range r.Events() {
		if e.Stage == stage {
			return e, true
		}
	}
	return Event{}, false
}
