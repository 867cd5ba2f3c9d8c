package advanced

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Subsets at or below this size are solved by brute force instead of being
// split further.
const DefaultLeafSize = 3

// Options configures an Engine.
type Options struct {
	// Largest subset handed to BruteForce. Must be at least 2, since a subset
	// of 2 or more points is always split into two non-empty halves.
	LeafSize int

	// Subsets with at least this many points solve their two halves
	// concurrently. Zero disables parallelism.
	ParallelCutoff int

	// Receives a summary of each stage of the top level split. May be nil.
	Observer Observer
}

// DefaultOptions returns the options used by Analyze.
func DefaultOptions() Options {
	return Options{
		LeafSize:       DefaultLeafSize,
		ParallelCutoff: 0,
	}
}

// An Engine holds configuration only. It is safe to call Analyze on the same
// Engine from multiple goroutines. Build one with NewEngine; a zero Engine
// fails every Analyze call.
type Engine struct {
	opts Options
}

func NewEngine(opts Options) (*Engine, error) {
	if opts.LeafSize < 2 {
		return nil, errors.Errorf("leaf size must be at least 2, got %d", opts.LeafSize)
	}
	if opts.ParallelCutoff < 0 {
		return nil, errors.Errorf("parallel cutoff must not be negative, got %d", opts.ParallelCutoff)
	}
	return &Engine{opts: opts}, nil
}

// Analyze with the default options.
func Analyze(points PointList) (*AnalysisResult, error) {
	engine, _ := NewEngine(DefaultOptions())
	return engine.Analyze(points)
}

// Find the closest pair of points, and report every intermediate value of the
// top level split along with it.
//
// The input is copied and sorted by x (ties by y), so the result depends only
// on the set of points given, not their order. The split puts the first
// floor(n/2) sorted points on the left; the dividing line MidX is the x
// coordinate of the first right half point.
//
// Fewer than two points is not an error: the result has no pairs and every
// distance is +Inf. A point with a NaN or infinite coordinate is rejected with
// ErrNonFinitePoint before any work is done.
func (e *Engine) Analyze(points PointList) (result *AnalysisResult, err error) {
	defer func() {
		recoveredErr := HandleAnalyzePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
		}
	}()
	if e.opts.LeafSize < 2 {
		fatalf("engine is not configured: leaf size %d", e.opts.LeafSize)
	}
	validatePoints(points)
	return e.analyze(points), nil
}

func (e *Engine) analyze(points PointList) *AnalysisResult {
	inf := math.Inf(1)
	result := &AnalysisResult{
		LeftDistance:    inf,
		RightDistance:   inf,
		Delta:           inf,
		StripPoints:     PointList{},
		StripDistance:   inf,
		OverallDistance: inf,
	}

	sorted := points.SortedByX()
	result.Points = sorted
	e.emit(Event{Stage: StageSort, Points: len(sorted)})
	if len(sorted) < 2 {
		e.emit(Event{Stage: StageMerge, Distance: inf})
		return result
	}

	left, right, mid := SplitHalves(sorted)
	result.MidIndex = mid
	result.MidX = sorted[mid].X
	e.emit(Event{Stage: StageSplit, LeftCount: len(left), RightCount: len(right), MidX: result.MidX})

	l, r := e.solveHalves(left, right)
	result.Left, result.LeftDistance = l.pair, l.dist
	result.Right, result.RightDistance = r.pair, r.dist
	e.emit(Event{Stage: StageHalves, LeftDistance: l.dist, RightDistance: r.dist})

	delta := math.Min(l.dist, r.dist)
	result.Delta = delta
	e.emit(Event{Stage: StageDelta, Delta: delta})

	byY := mergeByY(l.byY, r.byY)
	result.StripPoints = FilterStrip(byY, result.MidX, delta)
	e.emit(Event{Stage: StageStrip, StripSize: len(result.StripPoints), Delta: delta})

	stripPair, stripDist, comparisons := ScanStrip(result.StripPoints, delta)
	result.StripPair, result.StripDistance = stripPair, stripDist
	e.emit(Event{Stage: StageScan, Comparisons: comparisons, Distance: stripDist})

	switch {
	case stripDist < delta:
		result.Overall, result.OverallDistance = stripPair, stripDist
		// With one point per half there is no half pair for the strip to
		// improve on, so the pair doesn't count as a cross case.
		result.CrossCase = !math.IsInf(delta, 1)
	case l.dist <= r.dist:
		result.Overall, result.OverallDistance = l.pair, l.dist
	default:
		result.Overall, result.OverallDistance = r.pair, r.dist
	}
	e.emit(Event{Stage: StageMerge, Distance: result.OverallDistance, CrossCase: result.CrossCase})
	return result
}

func (e *Engine) emit(event Event) {
	if e.opts.Observer != nil {
		e.opts.Observer.Observe(event)
	}
}

// Result of solving one x-sorted subset. byY holds the same points ordered by
// y, which the caller merges to build its own strip without re-sorting.
type subResult struct {
	pair *Pair
	dist float64
	byY  PointList
}

func (e *Engine) solveHalves(left, right PointList) (l, r subResult) {
	if e.opts.ParallelCutoff == 0 || len(left)+len(right) < e.opts.ParallelCutoff {
		return e.solve(left), e.solve(right)
	}

	// The halves share nothing, so the only synchronization needed is the
	// join.
	var g errgroup.Group
	g.Go(func() error {
		l = e.solve(left)
		return nil
	})
	g.Go(func() error {
		r = e.solve(right)
		return nil
	})
	_ = g.Wait()
	return l, r
}

// Recursive closest pair on an x-sorted subset.
func (e *Engine) solve(sorted PointList) subResult {
	if len(sorted) <= e.opts.LeafSize {
		pair, dist := BruteForce(sorted)
		return subResult{pair: pair, dist: dist, byY: sorted.SortedByY()}
	}

	left, right, mid := SplitHalves(sorted)
	midX := sorted[mid].X
	l, r := e.solveHalves(left, right)

	best := l
	if r.dist < l.dist {
		best = r
	}
	byY := mergeByY(l.byY, r.byY)
	stripPair, stripDist, _ := ScanStrip(FilterStrip(byY, midX, best.dist), best.dist)
	if stripDist < best.dist {
		return subResult{pair: stripPair, dist: stripDist, byY: byY}
	}
	return subResult{pair: best.pair, dist: best.dist, byY: byY}
}

// Merge two y-ordered lists. Ties take the left point first, so merging is
// stable with respect to the x order of the halves.
func mergeByY(left, right PointList) PointList {
	merged := make(PointList, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if right[j].Y < left[i].Y {
			merged = append(merged, right[j])
			j++
		} else {
			merged = append(merged, left[i])
			i++
		}
	}
	merged = append(merged, left[i:]...)
	return append(merged, right[j:]...)
}
