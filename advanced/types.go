package advanced

// Points are plain values. The engine copies them freely, so nothing a caller
// holds is ever modified by an analysis.
type Point struct {
	X float64
	Y float64
}

type PointList []Point

// A pair of points, together with the distance between them. A nil *Pair means
// no pair exists (fewer than two points were available).
type Pair struct {
	A, B     Point
	Distance float64
}

// Everything computed during one top level analysis, including the
// intermediate values drawing and verification inspect.
type AnalysisResult struct {
	// The input, sorted by x (then y).
	Points PointList
	// Index of the first right half point in Points, and the x coordinate of
	// the dividing line. MidX is always Points[MidIndex].X.
	MidIndex int
	MidX     float64

	Left, Right                 *Pair
	LeftDistance, RightDistance float64

	// min(LeftDistance, RightDistance)
	Delta float64

	// Points within Delta of the dividing line, ordered by y.
	StripPoints PointList
	// Best pair found in the strip, only set if it beats Delta.
	StripPair     *Pair
	StripDistance float64

	Overall         *Pair
	OverallDistance float64
	// True iff the overall pair came from the strip, meaning it straddles the
	// dividing line.
	CrossCase bool
}

// Points in the left half of the split
func (r *AnalysisResult) LeftHalf() PointList {
	return r.Points[:r.MidIndex]
}

// Points in the right half of the split
func (r *AnalysisResult) RightHalf() PointList {
	return r.Points[r.MidIndex:]
}
